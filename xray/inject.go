// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package xray

import (
	"github.com/DataDog/amzn-trace-go/internal/hexutil"
	"github.com/DataDog/amzn-trace-go/propagation"
)

const (
	rootPrefix    = "Root="
	parentPrefix  = ";Parent="
	sampledPrefix = ";Sampled="

	// injectedLen is the length of the injected value. No optional fields are
	// ever omitted, so the layout is fixed:
	//
	//	Root=1-67891233-abcdef012345678912345678;Parent=463ac35c9f6413ad;Sampled=1
	injectedLen = 74

	// traceIDLen is the length of the standalone trace id form, e.g.
	// "1-67891233-abcdef012345678912345678".
	traceIDLen = 35
)

// Injector serializes trace contexts into carriers of type C. An Injector
// holds only immutable configuration and is safe for concurrent use.
type Injector[C, K any] struct {
	p      *Propagation[K]
	setter propagation.Setter[C, K]
}

var _ propagation.Injector[propagation.TextMapCarrier] = (*Injector[propagation.TextMapCarrier, string])(nil)

// NewInjector binds the scheme to a setter for carrier type C. It returns
// propagation.ErrNilSetter when setter is nil.
func NewInjector[C, K any](p *Propagation[K], setter propagation.Setter[C, K]) (*Injector[C, K], error) {
	if setter == nil {
		return nil, propagation.ErrNilSetter
	}
	return &Injector[C, K]{p: p, setter: setter}, nil
}

// Inject writes ctx into carrier under the trace header. The producer side
// of a call always has an active span, so a span id is assumed present and
// the injected value is always exactly 74 characters. The setter is invoked
// exactly once; nothing else in the carrier is touched.
func (i *Injector[C, K]) Inject(ctx propagation.TraceContext, carrier C) {
	i.setter(carrier, i.p.traceIDKey, Format(ctx))
}

// Format returns the 74-character wire form of ctx.
func Format(ctx propagation.TraceContext) string {
	var buf [injectedLen]byte
	copy(buf[:], rootPrefix)
	writeTraceID(ctx, buf[:], 5)
	copy(buf[40:], parentPrefix)
	hexutil.WriteUint64(buf[:], 48, ctx.SpanID)
	copy(buf[64:], sampledPrefix)
	// Sampled status is the same idea as B3, except ? means the downstream
	// service decides, like omitting X-B3-Sampled.
	switch ctx.Sampling {
	case propagation.SamplingKeep:
		buf[73] = '1'
	case propagation.SamplingDrop:
		buf[73] = '0'
	default:
		buf[73] = '?'
	}
	return string(buf[:])
}

// TraceIDString returns the 35-character form of ctx's trace id, e.g.
// "1-67891233-abcdef012345678912345678". Used for log correlation and tag
// values; no carrier is involved.
func TraceIDString(ctx propagation.TraceContext) string {
	var buf [traceIDLen]byte
	writeTraceID(ctx, buf[:], 0)
	return string(buf[:])
}

// writeTraceID writes the 35-character trace id encoding at dst[off]: the
// version digit, a hyphen, the top four bytes of the high word, another
// hyphen, the rest of the high word, then the full low word.
func writeTraceID(ctx propagation.TraceContext, dst []byte, off int) {
	dst[off] = '1' // version
	dst[off+1] = '-'
	high := ctx.TraceIDHigh
	hexutil.WriteByte(dst, off+2, byte(high>>56))
	hexutil.WriteByte(dst, off+4, byte(high>>48))
	hexutil.WriteByte(dst, off+6, byte(high>>40))
	hexutil.WriteByte(dst, off+8, byte(high>>32))
	dst[off+10] = '-'
	hexutil.WriteByte(dst, off+11, byte(high>>24))
	hexutil.WriteByte(dst, off+13, byte(high>>16))
	hexutil.WriteByte(dst, off+15, byte(high>>8))
	hexutil.WriteByte(dst, off+17, byte(high))
	hexutil.WriteUint64(dst, off+19, ctx.TraceIDLow)
}
