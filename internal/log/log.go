// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016 Datadog, Inc.

// Package log provides logging utilities for the propagation library.
package log

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/DataDog/amzn-trace-go/internal/version"
)

// Level specifies the logging level that the log package prints at.
type Level int

const (
	// LevelDebug represents debug level messages.
	LevelDebug Level = iota
	// LevelWarn represents warnings and errors.
	LevelWarn
)

// Logger implementations are able to log given messages.
type Logger interface {
	// Log takes a message and logs it.
	Log(msg string)
}

var prefixMsg = fmt.Sprintf("amzn-trace-go %s", version.Tag)

var (
	mu     sync.RWMutex // guards below fields
	level               = LevelWarn
	logger Logger       = &defaultLogger{l: log.New(os.Stderr, "", log.LstdFlags)}
)

// UseLogger sets l as the active logger.
func UseLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetLevel sets the given lvl for logging.
func SetLevel(lvl Level) {
	mu.Lock()
	defer mu.Unlock()
	level = lvl
}

// DebugEnabled reports whether debug level messages are printed.
func DebugEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return level == LevelDebug
}

// Debug prints the given message if the level is LevelDebug.
func Debug(format string, a ...interface{}) {
	if !DebugEnabled() {
		return
	}
	printMsg("DEBUG", format, a...)
}

// Warn prints a warning message.
func Warn(format string, a ...interface{}) {
	printMsg("WARN", format, a...)
}

// Error prints an error message.
func Error(format string, a ...interface{}) {
	printMsg("ERROR", format, a...)
}

func printMsg(lvl, format string, a ...interface{}) {
	msg := fmt.Sprintf("%s %s: %s", prefixMsg, lvl, fmt.Sprintf(format, a...))
	mu.RLock()
	logger.Log(msg)
	mu.RUnlock()
}

type defaultLogger struct{ l *log.Logger }

func (p *defaultLogger) Log(msg string) { p.l.Print(msg) }
