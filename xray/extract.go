// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package xray

import (
	"bytes"

	"github.com/DataDog/amzn-trace-go/internal/log"
	"github.com/DataDog/amzn-trace-go/propagation"
)

// Extractor reads trace contexts out of carriers of type C. An Extractor
// holds only immutable configuration and is safe for concurrent use.
type Extractor[C, K any] struct {
	p      *Propagation[K]
	getter propagation.Getter[C, K]
}

var _ propagation.Extractor[propagation.TextMapCarrier] = (*Extractor[propagation.TextMapCarrier, string])(nil)

// NewExtractor binds the scheme to a getter for carrier type C. It returns
// propagation.ErrNilGetter when getter is nil.
func NewExtractor[C, K any](p *Propagation[K], getter propagation.Getter[C, K]) (*Extractor[C, K], error) {
	if getter == nil {
		return nil, propagation.ErrNilGetter
	}
	return &Extractor[C, K]{p: p, getter: getter}, nil
}

// Extract reads the trace header from carrier. A missing header yields the
// empty extraction; any other content degrades through Parse's fallback
// chain. Extract never fails.
func (e *Extractor[C, K]) Extract(carrier C) propagation.Extraction {
	value, ok := e.getter(carrier, e.p.traceIDKey)
	if !ok {
		return propagation.Extraction{}
	}
	return Parse(value)
}

// op tags the field whose value is currently being consumed.
type op uint8

const (
	opNone op = iota
	opSkip
	opRoot
	opParent
	opSampled
)

var (
	fieldRoot    = []byte("Root")
	fieldParent  = []byte("Parent")
	fieldSampled = []byte("Sampled")
)

// Parse scans a raw x-amzn-trace-id value in a single left-to-right pass.
// Recognized fields are Root, Parent and Sampled; anything else is skipped.
// Fields may appear in any order and spaces between fields are ignored.
//
// Malformed content never surfaces as an error. A structural failure inside
// a Root or Parent value discards that field's contribution entirely, and
// the result degrades to the most specific shape still supported by what
// parsed cleanly: full context, then trace id only, then sampling flags.
func Parse(value string) propagation.Extraction {
	var (
		sampling                = propagation.SamplingUnknown
		traceIDHigh, traceIDLow uint64
		parent                  uint64
		haveParent              bool
		name                    = make([]byte, 0, len(fieldSampled))
		current                 = opNone
	)
	n := len(value)
scan:
	for i := 0; i < n; i++ {
		c := value[i]
		if c == ' ' { // trim whitespace
			continue
		}
		if c == '=' { // we reached a field name
			i++ // skip the '=' character
			if i == n {
				break
			}
			switch {
			case bytes.HasPrefix(name, fieldRoot):
				current = opRoot
			case bytes.HasPrefix(name, fieldParent):
				current = opParent
			case bytes.HasPrefix(name, fieldSampled):
				current = opSampled
			default: // unrecognized or unused name
				current = opSkip
			}
			name = name[:0]
		} else if current == opNone {
			name = append(name, c)
			continue
		}
		switch current {
		case opSkip:
			for i++; i < n && value[i] != ';'; i++ {
				// skip until we hit a delimiter
			}
		case opRoot:
			// 35 = len("1-67891233-abcdef012345678912345678")
			if i+traceIDLen > n || value[i] != '1' || value[i+1] != '-' {
				log.Debug("%s: unsupported version or truncated Root field, dropping trace id", TraceHeader)
				break scan
			}
			i += 2
			// The epoch seconds and the first 8 digits of the 96-bit random
			// part form the high word; the remaining 16 digits the low word.
			var high, low uint64
			hyphen := i + 8
			for end := hyphen + 1 + 8; i < end; i++ {
				c = value[i]
				if i == hyphen { // delimiter between epoch and random part
					if c != '-' {
						log.Debug("%s: malformed Root field, dropping trace id", TraceHeader)
						break scan
					}
					continue
				}
				d, ok := hexDigit(c)
				if !ok {
					log.Debug("%s: malformed Root field, dropping trace id", TraceHeader)
					break scan
				}
				high = high<<4 | uint64(d)
			}
			for end := i + 16; i < end; i++ {
				d, ok := hexDigit(value[i])
				if !ok {
					log.Debug("%s: malformed Root field, dropping trace id", TraceHeader)
					break scan
				}
				low = low<<4 | uint64(d)
			}
			traceIDHigh, traceIDLow = high, low
		case opParent:
			if i+16 > n {
				log.Debug("%s: truncated Parent field, dropping span id", TraceHeader)
				break scan
			}
			var id uint64
			for end := i + 16; i < end; i++ {
				d, ok := hexDigit(value[i])
				if !ok {
					log.Debug("%s: malformed Parent field, dropping span id", TraceHeader)
					break scan
				}
				id = id<<4 | uint64(d)
			}
			parent, haveParent = id, true
		case opSampled:
			switch value[i] {
			case '1':
				sampling = propagation.SamplingKeep
			case '0':
				sampling = propagation.SamplingDrop
			}
			// anything else, including '?', means no decision was made
			i++
		}
		current = opNone
	}

	// A non-zero high word is the sentinel that a Root field ever parsed.
	if traceIDHigh == 0 {
		return propagation.FromFlags(propagation.SamplingFlags{Sampling: sampling})
	}
	if !haveParent {
		return propagation.FromTraceID(propagation.TraceIDContext{
			TraceIDHigh: traceIDHigh,
			TraceIDLow:  traceIDLow,
			Sampling:    sampling,
		})
	}
	return propagation.FromContext(propagation.TraceContext{
		TraceIDHigh: traceIDHigh,
		TraceIDLow:  traceIDLow,
		SpanID:      parent,
		Sampling:    sampling,
	})
}

// hexDigit maps '0'..'9' and 'a'..'f' by explicit range checks. Uppercase is
// rejected like any other byte.
func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
