// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

// Package xray implements trace propagation over the single x-amzn-trace-id
// field consumed by AWS X-Ray and the Application Load Balancer.
//
// The field follows RFC 6265 style syntax (https://tools.ietf.org/html/rfc6265#section-2.2):
// fields are split on semicolon and optional whitespace, for example
//
//	Root=1-67891233-abcdef012345678912345678;Parent=463ac35c9f6413ad;Sampled=1
//
// A trace id consists of three numbers separated by hyphens: the version
// (always 1), the time of the original request in Unix epoch time as 8
// hexadecimal digits, and a 96-bit globally unique identifier as 24
// hexadecimal digits.
package xray

import (
	"github.com/DataDog/amzn-trace-go/propagation"
)

// TraceHeader is the single carrier field used by this scheme. The lowercase
// form is used because HTTP is case-insensitive but the HTTP/2 transport
// downcases field names.
const TraceHeader = "x-amzn-trace-id"

// Propagation implements propagation.Scheme for the x-amzn-trace-id format.
// Its carrier key is created once at construction and it holds no mutable
// state afterwards, so a single value may be shared freely.
type Propagation[K any] struct {
	traceIDKey K
	keys       []K
}

var _ propagation.Scheme[string] = (*Propagation[string])(nil)

// New returns the scheme with its carrier key produced by keys. Calling New
// with a nil KeyFactory panics.
func New[K any](keys propagation.KeyFactory[K]) *Propagation[K] {
	k := keys(TraceHeader)
	return &Propagation[K]{traceIDKey: k, keys: []K{k}}
}

// NewString returns the scheme with plain string carrier keys.
func NewString() *Propagation[string] {
	return New(propagation.StringKeys)
}

// Keys returns the single propagated field key.
func (p *Propagation[K]) Keys() []K { return p.keys }

// SupportsJoin reports false. The Parent field names the caller's span, not
// one the receiver may adopt, so the receiver always forks a new child.
func (p *Propagation[K]) SupportsJoin() bool { return false }

// Requires128BitTraceID reports true: the wire format always encodes both
// words of the trace id.
func (p *Propagation[K]) Requires128BitTraceID() bool { return true }
