// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package propagation

// SamplingDecision is the tri-state sampling decision that travels next to
// the trace identifiers. It is deliberately not a *bool: the "no decision"
// state is part of the contract and should stay visible at interfaces.
type SamplingDecision uint8

const (
	// SamplingUnknown means no decision was made or propagated; a downstream
	// service may still decide.
	SamplingUnknown SamplingDecision = iota

	// SamplingKeep means the trace was sampled and should be recorded.
	SamplingKeep

	// SamplingDrop means the trace was explicitly not sampled.
	SamplingDrop
)

// String implements fmt.Stringer.
func (d SamplingDecision) String() string {
	switch d {
	case SamplingKeep:
		return "keep"
	case SamplingDrop:
		return "drop"
	default:
		return "unknown"
	}
}

// TraceContext carries the identifiers correlating one span with the rest of
// its distributed call tree: the 128-bit trace id split into two unsigned
// 64-bit words, the span id of the caller, and the propagated sampling
// decision.
//
// A TraceContext produced by extraction always has a non-zero TraceIDHigh;
// the high word doubles as the presence sentinel for the trace id.
type TraceContext struct {
	TraceIDHigh uint64
	TraceIDLow  uint64
	SpanID      uint64
	Sampling    SamplingDecision
}

// TraceIDContext carries a trace id and sampling decision without a parent
// span id: the trace is known, but the receiver must start a new root span
// rather than a child of the caller.
type TraceIDContext struct {
	TraceIDHigh uint64
	TraceIDLow  uint64
	Sampling    SamplingDecision
}

// SamplingFlags carries a sampling decision alone, with no identifiers.
type SamplingFlags struct {
	Sampling SamplingDecision
}
