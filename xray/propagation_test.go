// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package xray

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DataDog/amzn-trace-go/propagation"
)

const sampledHeader = "Root=1-67891233-abcdef012345678912345678;Parent=463ac35c9f6413ad;Sampled=1"

var sampledContext = propagation.TraceContext{
	TraceIDHigh: 0x67891233abcdef01,
	TraceIDLow:  0x2345678912345678,
	SpanID:      0x463ac35c9f6413ad,
	Sampling:    propagation.SamplingKeep,
}

func newMapInjector(t *testing.T) *Injector[propagation.TextMapCarrier, string] {
	t.Helper()
	inj, err := NewInjector(NewString(), propagation.TextMapCarrier.Set)
	require.NoError(t, err)
	return inj
}

func newMapExtractor(t *testing.T) *Extractor[propagation.TextMapCarrier, string] {
	t.Helper()
	ext, err := NewExtractor(NewString(), propagation.TextMapCarrier.Get)
	require.NoError(t, err)
	return ext
}

func TestKeys(t *testing.T) {
	p := NewString()
	assert.Equal(t, []string{"x-amzn-trace-id"}, p.Keys())
	assert.False(t, p.SupportsJoin())
	assert.True(t, p.Requires128BitTraceID())
}

func TestNewInjectorNilSetter(t *testing.T) {
	inj, err := NewInjector[propagation.TextMapCarrier](NewString(), nil)
	assert.Nil(t, inj)
	assert.Equal(t, propagation.ErrNilSetter, err)
}

func TestNewExtractorNilGetter(t *testing.T) {
	ext, err := NewExtractor[propagation.TextMapCarrier](NewString(), nil)
	assert.Nil(t, ext)
	assert.Equal(t, propagation.ErrNilGetter, err)
}

func TestInject(t *testing.T) {
	carrier := propagation.TextMapCarrier{}
	newMapInjector(t).Inject(sampledContext, carrier)
	assert.Equal(t, propagation.TextMapCarrier{"x-amzn-trace-id": sampledHeader}, carrier)
}

func TestInjectFixedWidth(t *testing.T) {
	for _, ctx := range []propagation.TraceContext{
		{},
		{TraceIDHigh: 1, TraceIDLow: 1, SpanID: 1},
		{TraceIDHigh: 0x00000001deadbeef, TraceIDLow: 2, SpanID: 3, Sampling: propagation.SamplingDrop},
		sampledContext,
	} {
		assert.Len(t, Format(ctx), 74)
	}
}

func TestInjectSampledCharacter(t *testing.T) {
	for name, tt := range map[string]struct {
		sampling propagation.SamplingDecision
		want     byte
	}{
		"keep":    {propagation.SamplingKeep, '1'},
		"drop":    {propagation.SamplingDrop, '0'},
		"unknown": {propagation.SamplingUnknown, '?'},
	} {
		t.Run(name, func(t *testing.T) {
			ctx := sampledContext
			ctx.Sampling = tt.sampling
			out := Format(ctx)
			assert.Equal(t, tt.want, out[73])
		})
	}
}

func TestExtract(t *testing.T) {
	carrier := propagation.TextMapCarrier{"x-amzn-trace-id": sampledHeader}
	got, ok := newMapExtractor(t).Extract(carrier).Context()
	require.True(t, ok)
	assert.Equal(t, sampledContext, got)
}

func TestRoundTrip(t *testing.T) {
	carrier := propagation.TextMapCarrier{}
	newMapInjector(t).Inject(sampledContext, carrier)
	got, ok := newMapExtractor(t).Extract(carrier).Context()
	require.True(t, ok)
	assert.Equal(t, sampledContext, got)
	// injecting what we extracted reproduces the identical string
	assert.Equal(t, sampledHeader, Format(got))
}

func TestExtractAbsentField(t *testing.T) {
	e := newMapExtractor(t).Extract(propagation.TextMapCarrier{})
	assert.True(t, e.IsEmpty())
	_, ok := e.Flags()
	assert.False(t, ok)
}

func TestExtractEmptyValue(t *testing.T) {
	// present but empty is not the same as absent
	carrier := propagation.TextMapCarrier{"x-amzn-trace-id": ""}
	e := newMapExtractor(t).Extract(carrier)
	assert.False(t, e.IsEmpty())
	flags, ok := e.Flags()
	require.True(t, ok)
	assert.Equal(t, propagation.SamplingFlags{}, flags)
}

func TestExtractDifferentOrder(t *testing.T) {
	got, ok := Parse("Sampled=1;Parent=463ac35c9f6413ad;Root=1-67891233-abcdef012345678912345678").Context()
	require.True(t, ok)
	assert.Equal(t, sampledContext, got)
}

func TestExtractNoParent(t *testing.T) {
	got, ok := Parse("Root=1-5759e988-bd862e3fe1be46a994272793;Sampled=1").TraceID()
	require.True(t, ok)
	assert.Equal(t, propagation.TraceIDContext{
		TraceIDHigh: 0x5759e988bd862e3f,
		TraceIDLow:  0xe1be46a994272793,
		Sampling:    propagation.SamplingKeep,
	}, got)
}

func TestExtractNoSamplingDecision(t *testing.T) {
	got, ok := Parse(strings.Replace(sampledHeader, "Sampled=1", "Sampled=?", 1)).Context()
	require.True(t, ok)
	want := sampledContext
	want.Sampling = propagation.SamplingUnknown
	assert.Equal(t, want, got)
}

func TestExtractSampledFalse(t *testing.T) {
	got, ok := Parse(strings.Replace(sampledHeader, "Sampled=1", "Sampled=0", 1)).Context()
	require.True(t, ok)
	want := sampledContext
	want.Sampling = propagation.SamplingDrop
	assert.Equal(t, want, got)
}

// Shows we skip whitespace and extra fields like Self or custom ones.
// https://aws.amazon.com/blogs/aws/application-performance-percentiles-and-request-tracing-for-aws-application-load-balancer/
func TestExtractSkipsExtraFields(t *testing.T) {
	got, ok := Parse("Self=1-582113d1-1e48b74b3603af8479078ed6;  " +
		"Root=1-58211399-36d228ad5d99923122bbe354;  " +
		"TotalTimeSoFar=112ms;CalledFrom=Foo").TraceID()
	require.True(t, ok)
	assert.Equal(t, propagation.TraceIDContext{
		TraceIDHigh: 0x5821139936d228ad,
		TraceIDLow:  0x5d99923122bbe354,
	}, got)
}

func TestExtractWhitespaceAfterDelimiter(t *testing.T) {
	spaced := strings.ReplaceAll(sampledHeader, ";", "; ")
	got, ok := Parse(spaced).Context()
	require.True(t, ok)
	assert.Equal(t, sampledContext, got)
}

func TestExtractMalformed(t *testing.T) {
	for name, value := range map[string]string{
		"later-version":    "Root=2-58211399-36d228ad5d99923122bbe354",
		"truncated-id":     "Root=1-58211399-36d228ad5d99923122bbe35",
		"leading-equals":   "=Root=1-58211399-36d228ad5d99923122bbe354",
		"double-equals":    "Root==1-58211399-36d228ad5d99923122bbe354",
		"no-equals":        "1-58211399-36d228ad5d99923122bbe354",
		"missing-hyphen":   "Root=1-58211399x36d228ad5d99923122bbe354",
		"non-hex-in-epoch": "Root=1-5821139z-36d228ad5d99923122bbe354",
	} {
		t.Run(name, func(t *testing.T) {
			e := Parse(value)
			flags, ok := e.Flags()
			assert.True(t, ok)
			assert.Equal(t, propagation.SamplingFlags{}, flags)
		})
	}
}

// A structural failure midway through a Root value must not leak a
// half-parsed trace id into the result.
func TestExtractPartialRootDiscarded(t *testing.T) {
	e := Parse("Root=1-58211399-36d228ad5d9992312zbbe354;Parent=463ac35c9f6413ad")
	flags, ok := e.Flags()
	assert.True(t, ok)
	assert.Equal(t, propagation.SamplingFlags{}, flags)
}

// A malformed Parent keeps an earlier valid Root, degrading to a
// trace-id-only result instead of a full context.
func TestExtractTruncatedParent(t *testing.T) {
	for name, value := range map[string]string{
		"truncated": "Root=1-67891233-abcdef012345678912345678;Parent=463a",
		"non-hex":   "Sampled=1;Root=1-67891233-abcdef012345678912345678;Parent=463ac35c9f6413aZ",
	} {
		t.Run(name, func(t *testing.T) {
			got, ok := Parse(value).TraceID()
			require.True(t, ok)
			assert.Equal(t, uint64(0x67891233abcdef01), got.TraceIDHigh)
			assert.Equal(t, uint64(0x2345678912345678), got.TraceIDLow)
		})
	}
}

func TestExtractSampledOnly(t *testing.T) {
	flags, ok := Parse("Sampled=0").Flags()
	require.True(t, ok)
	assert.Equal(t, propagation.SamplingDrop, flags.Sampling)
}

func TestTraceIDString(t *testing.T) {
	assert.Equal(t, "1-67891233-abcdef012345678912345678", TraceIDString(sampledContext))
}

func TestParseEnv(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		assert.True(t, ParseEnv().IsEmpty())
	})
	t.Run("set", func(t *testing.T) {
		t.Setenv(EnvTraceHeader, "Root=1-5759e988-bd862e3fe1be46a994272793;Sampled=1")
		got, ok := ParseEnv().TraceID()
		require.True(t, ok)
		assert.Equal(t, uint64(0x5759e988bd862e3f), got.TraceIDHigh)
	})
}

func TestHTTPHeadersCarrierRoundTrip(t *testing.T) {
	inj, err := NewInjector(NewString(), propagation.HTTPHeadersCarrier.Set)
	require.NoError(t, err)
	ext, err := NewExtractor(NewString(), propagation.HTTPHeadersCarrier.Get)
	require.NoError(t, err)

	carrier := propagation.HTTPHeadersCarrier{}
	inj.Inject(sampledContext, carrier)
	got, ok := ext.Extract(carrier).Context()
	require.True(t, ok)
	assert.Equal(t, sampledContext, got)
}

// headerKey exercises a carrier with a non-string key type.
type headerKey struct{ name string }

func TestCustomKeyType(t *testing.T) {
	p := New(func(name string) headerKey { return headerKey{name} })
	assert.Equal(t, []headerKey{{"x-amzn-trace-id"}}, p.Keys())

	type carrier map[headerKey]string
	inj, err := NewInjector(p, func(c carrier, k headerKey, v string) { c[k] = v })
	require.NoError(t, err)
	ext, err := NewExtractor(p, func(c carrier, k headerKey) (string, bool) {
		v, ok := c[k]
		return v, ok
	})
	require.NoError(t, err)

	c := carrier{}
	inj.Inject(sampledContext, c)
	got, ok := ext.Extract(c).Context()
	require.True(t, ok)
	assert.Equal(t, sampledContext, got)
}

func TestConcurrentUse(t *testing.T) {
	inj := newMapInjector(t)
	ext := newMapExtractor(t)
	for i := 0; i < 8; i++ {
		i := i
		t.Run(fmt.Sprintf("goroutine-%d", i), func(t *testing.T) {
			t.Parallel()
			ctx := sampledContext
			ctx.SpanID = uint64(i + 1)
			carrier := propagation.TextMapCarrier{}
			inj.Inject(ctx, carrier)
			got, ok := ext.Extract(carrier).Context()
			require.True(t, ok)
			assert.Equal(t, ctx, got)
		})
	}
}
