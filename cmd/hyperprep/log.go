// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newZap builds a console logger writing to w. Verbose mode enables zap level
// -1, which is where logr V(1) lines land.
func newZap(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.Level(-1)
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))

	return zap.New(core)
}

func newLogger(z *zap.Logger) logr.Logger {
	return zapr.NewLogger(z).WithName("hyperprep")
}
