// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package propagation

import "net/http"

// TextMapCarrier allows a regular map[string]string to be used as a carrier.
// Its Set and Get method expressions satisfy Setter and Getter directly:
//
//	inj, err := xray.NewInjector(prop, propagation.TextMapCarrier.Set)
type TextMapCarrier map[string]string

var (
	_ Setter[TextMapCarrier, string] = TextMapCarrier.Set
	_ Getter[TextMapCarrier, string] = TextMapCarrier.Get
)

// Set replaces the value under key.
func (c TextMapCarrier) Set(key, value string) {
	c[key] = value
}

// Get returns the value under key, reporting whether the key was present.
func (c TextMapCarrier) Get(key string) (string, bool) {
	v, ok := c[key]
	return v, ok
}

// HTTPHeadersCarrier wraps an http.Header as a carrier. Keys are
// canonicalized the way net/http does, so lookups are effectively
// case-insensitive.
type HTTPHeadersCarrier http.Header

var (
	_ Setter[HTTPHeadersCarrier, string] = HTTPHeadersCarrier.Set
	_ Getter[HTTPHeadersCarrier, string] = HTTPHeadersCarrier.Get
)

// Set replaces the header under key.
func (c HTTPHeadersCarrier) Set(key, value string) {
	http.Header(c).Set(key, value)
}

// Get returns the first header value under key, reporting whether the header
// was present.
func (c HTTPHeadersCarrier) Get(key string) (string, bool) {
	vs := http.Header(c).Values(key)
	if len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}
