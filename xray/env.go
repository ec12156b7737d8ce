// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

package xray

import (
	"os"

	"github.com/DataDog/amzn-trace-go/propagation"
)

// EnvTraceHeader is the environment variable AWS Lambda uses to hand a
// function its trace header, since the invocation has no carrier of its own.
const EnvTraceHeader = "_X_AMZN_TRACE_ID"

// ParseEnv reads the trace header from the process environment. Outside
// Lambda, or when the variable is unset, the extraction is empty.
func ParseEnv() propagation.Extraction {
	v, ok := os.LookupEnv(EnvTraceHeader)
	if !ok {
		return propagation.Extraction{}
	}
	return Parse(v)
}
