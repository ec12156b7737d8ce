// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

// Package kafka allows segmentio/kafka-go message headers to carry trace
// propagation fields.
package kafka

import (
	"github.com/segmentio/kafka-go"

	"github.com/DataDog/amzn-trace-go/propagation"
)

// A MessageCarrier injects and extracts trace headers from a kafka.Message.
type MessageCarrier struct {
	msg *kafka.Message
}

var (
	_ propagation.Setter[MessageCarrier, string] = MessageCarrier.Set
	_ propagation.Getter[MessageCarrier, string] = MessageCarrier.Get
)

// NewMessageCarrier creates a new MessageCarrier.
func NewMessageCarrier(msg *kafka.Message) MessageCarrier {
	return MessageCarrier{msg}
}

// Get returns the first header at the given key, reporting whether the key
// was present.
func (c MessageCarrier) Get(key string) (string, bool) {
	for _, h := range c.msg.Headers {
		if h.Key == key {
			return string(h.Value), true
		}
	}
	return "", false
}

// Set sets a header.
func (c MessageCarrier) Set(key, value string) {
	// ensure uniqueness of keys
	for i := 0; i < len(c.msg.Headers); i++ {
		if c.msg.Headers[i].Key == key {
			c.msg.Headers = append(c.msg.Headers[:i], c.msg.Headers[i+1:]...)
			i--
		}
	}
	c.msg.Headers = append(c.msg.Headers, kafka.Header{
		Key:   key,
		Value: []byte(value),
	})
}
