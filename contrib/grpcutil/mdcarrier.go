// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

// Package grpcutil allows gRPC metadata to carry trace propagation fields.
package grpcutil

import (
	"strings"

	"google.golang.org/grpc/metadata"

	"github.com/DataDog/amzn-trace-go/propagation"
)

// MDCarrier implements the propagation Setter and Getter capabilities on top
// of gRPC's metadata, allowing it to be used as a trace context carrier for
// distributed tracing.
type MDCarrier metadata.MD

var (
	_ propagation.Setter[MDCarrier, string] = MDCarrier.Set
	_ propagation.Getter[MDCarrier, string] = MDCarrier.Get
)

// Get returns the first entry in the metadata at the given key, reporting
// whether the key was present.
func (mdc MDCarrier) Get(key string) (string, bool) {
	if m := mdc[key]; len(m) > 0 {
		return m[0], true
	}
	return "", false
}

// Set adds the given value to the values found at key. Key is lowercased to
// match the metadata implementation.
func (mdc MDCarrier) Set(key, value string) {
	k := strings.ToLower(key) // as per google.golang.org/grpc/metadata/metadata.go
	mdc[k] = append(mdc[k], value)
}
