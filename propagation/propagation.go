// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

// Package propagation defines how trace identifiers travel in-band across
// process boundaries as text, encoded into carrier fields such as HTTP
// headers, messaging headers or RPC metadata.
//
// On the sending side of a call an Injector writes the identifiers of the
// active span into an outbound carrier; on the receiving side an Extractor
// reads them, or whatever subset survived transit, back out. Propagation is
// usually wired into library-specific request interceptors, so the carrier
// and key types are left abstract: a scheme binds to a carrier through the
// Setter and Getter capabilities supplied by the caller.
package propagation

import "errors"

// Setter places value under key in a carrier. A Setter should replace any
// value previously held under key.
//
// For an http.Header carrier this is HTTPHeadersCarrier.Set; other carriers
// provide their own, see the contrib packages.
type Setter[C, K any] func(carrier C, key K, value string)

// Getter returns the first value held under key in a carrier. The boolean
// reports whether the key was present at all, which distinguishes an absent
// field from one carrying an empty value.
type Getter[C, K any] func(carrier C, key K) (string, bool)

// Injector writes a trace context into an outbound carrier.
type Injector[C any] interface {
	// Inject serializes ctx into carrier using the Setter the Injector was
	// constructed with.
	Inject(ctx TraceContext, carrier C)
}

// Extractor reads a trace context, or a partial subset of one, from an
// inbound carrier.
type Extractor[C any] interface {
	// Extract never fails: carrier content is partially trusted at best, so
	// malformed or missing data degrades to a coarser Extraction variant
	// instead of an error.
	Extract(carrier C) Extraction
}

// KeyFactory creates carrier keys from field names. It lets a scheme
// pre-allocate its keys once at construction, which matters for carriers
// with a richer key type than string, such as gRPC metadata.
type KeyFactory[K any] func(name string) K

// StringKeys is the identity KeyFactory for plain string-keyed carriers.
func StringKeys(name string) string { return name }

// Scheme describes a propagation format independently of any carrier type.
// Injector and Extractor construction is scheme-specific because Go methods
// cannot introduce the carrier type parameter; see the xray package.
type Scheme[K any] interface {
	// Keys returns the carrier fields this scheme reads and writes. If a
	// mutable carrier is reused across calls, the caller should clear these
	// fields before re-injecting; a scheme never clears prior values itself.
	Keys() []K

	// SupportsJoin reports whether the client and server side of one logical
	// call may share identical span identifiers. That requires a parent span
	// id on the wire that the receiver can adopt as its own; when false, the
	// receiver must always fork a new child span.
	SupportsJoin() bool

	// Requires128BitTraceID reports whether the wire format always encodes
	// both 64-bit words of the trace id.
	Requires128BitTraceID() bool
}

var (
	// ErrNilSetter is returned when an injector is constructed without a setter.
	ErrNilSetter = errors.New("nil setter")

	// ErrNilGetter is returned when an extractor is constructed without a getter.
	ErrNilGetter = errors.New("nil getter")
)
