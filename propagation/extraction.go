// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package propagation

type extractionKind uint8

const (
	extractionEmpty extractionKind = iota
	extractionFlags
	extractionTraceID
	extractionContext
)

// Extraction is the outcome of reading a carrier. Exactly one of four shapes
// is populated: a full TraceContext, a TraceIDContext, bare SamplingFlags,
// or nothing at all. Callers should branch most-specific first:
//
//	if ctx, ok := e.Context(); ok {
//		// resume the trace as a child of ctx.SpanID
//	} else if tc, ok := e.TraceID(); ok {
//		// known trace, start a new root span
//	} else if f, ok := e.Flags(); ok {
//		// no identifiers, but f.Sampling may carry a decision
//	}
//
// The zero value is the empty outcome.
type Extraction struct {
	kind    extractionKind
	context TraceContext
	traceID TraceIDContext
	flags   SamplingFlags
}

// FromContext returns an Extraction holding a full trace context.
func FromContext(ctx TraceContext) Extraction {
	return Extraction{kind: extractionContext, context: ctx}
}

// FromTraceID returns an Extraction holding a trace id without a parent span.
func FromTraceID(tc TraceIDContext) Extraction {
	return Extraction{kind: extractionTraceID, traceID: tc}
}

// FromFlags returns an Extraction holding sampling flags alone.
func FromFlags(f SamplingFlags) Extraction {
	return Extraction{kind: extractionFlags, flags: f}
}

// Context returns the full trace context, if that is what was extracted.
func (e Extraction) Context() (TraceContext, bool) {
	return e.context, e.kind == extractionContext
}

// TraceID returns the trace-id-only context, if that is what was extracted.
func (e Extraction) TraceID() (TraceIDContext, bool) {
	return e.traceID, e.kind == extractionTraceID
}

// Flags returns the bare sampling flags, if that is what was extracted.
func (e Extraction) Flags() (SamplingFlags, bool) {
	return e.flags, e.kind == extractionFlags
}

// IsEmpty reports that the carrier held no propagation field at all.
func (e Extraction) IsEmpty() bool { return e.kind == extractionEmpty }

// Sampling returns the sampling decision of whichever shape is populated,
// or SamplingUnknown for the empty outcome.
func (e Extraction) Sampling() SamplingDecision {
	switch e.kind {
	case extractionContext:
		return e.context.Sampling
	case extractionTraceID:
		return e.traceID.Sampling
	case extractionFlags:
		return e.flags.Sampling
	}
	return SamplingUnknown
}
