// SPDX-License-Identifier: MIT
// Package: hyperprep/pipeline
//
// options.go - functional options for Prepare.

package pipeline

import (
	"github.com/go-logr/logr"

	"github.com/katalvlaran/hyperprep/colormap"
)

// Option customizes a Prepare call.
type Option func(*options)

type options struct {
	log      logr.Logger
	provider colormap.Provider
}

func newOptions(opts ...Option) options {
	o := options{log: logr.Discard(), provider: colormap.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger routes stage progress to l. Stages log at V(1).
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithProvider replaces the palette provider used for hue colors.
// Panics if p is nil.
func WithProvider(p colormap.Provider) Option {
	if p == nil {
		panic("pipeline: WithProvider(nil)")
	}

	return func(o *options) { o.provider = p }
}
