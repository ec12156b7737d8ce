// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

// Package hexutil writes fixed-width lowercase hexadecimal into caller-sized
// buffers without allocating. Callers guarantee the buffer is large enough;
// there is no bounds checking beyond the slice itself.
package hexutil

const digits = "0123456789abcdef"

// WriteByte writes b as two lowercase hex characters at dst[off].
func WriteByte(dst []byte, off int, b byte) {
	dst[off] = digits[b>>4]
	dst[off+1] = digits[b&0xf]
}

// WriteUint64 writes v as 16 zero-padded lowercase hex characters at dst[off].
func WriteUint64(dst []byte, off int, v uint64) {
	for i := 0; i < 8; i++ {
		WriteByte(dst, off+2*i, byte(v>>(56-8*i)))
	}
}
