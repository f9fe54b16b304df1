/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the CLI's diagnostic output. Library packages never log.
package logger

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

var (
	logger  atomic.Pointer[log.Logger]
	verbose atomic.Bool
)

func init() {
	SetOutput(os.Stderr)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	logger.Store(log.New(w, "", 0))
}

// SetVerbose enables or disables Debug output.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	logger.Load().Printf("warning: "+format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logger.Load().Printf(format, args...)
}

// Debug logs a message only in verbose mode.
func Debug(format string, args ...any) {
	if verbose.Load() {
		logger.Load().Printf("debug: "+format, args...)
	}
}
