// SPDX-License-Identifier: MIT

// Package mlc: functional configuration for Transformer and Classifier.
//
// Notes:
//   - WithDecomposer and WithLogger panic on nil (programmer error).
//   - WithSize and WithThreshold are not checked here; Train validates them
//     and reports ErrInvalidSize / ErrInvalidThreshold like Fit does.
package mlc

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/bmad/bmd"
)

const (
	// PredictionCut turns a latent score into a boolean: score > PredictionCut.
	// It is fixed and independent of the decomposition threshold.
	PredictionCut = 0.5

	// DefaultThreshold is the decomposition threshold used by Classifier.
	DefaultThreshold = 0.5

	// DefaultSize is the number of latent labels used by Classifier.
	DefaultSize = 5

	// MinSize is the smallest latent label count a Transformer accepts.
	MinSize = 2
)

const (
	panicNilDecomposer = "mlc: WithDecomposer: nil decomposer"
	panicNilLogger     = "mlc: WithLogger: nil logger"
)

// Option mutates Transformer/Classifier options.
type Option func(*Options)

// Options stores the effective configuration.
type Options struct {
	decomposer bmd.Decomposer // bmd.NewAsso()
	logger     *zap.Logger    // zap.NewNop()
	size       int            // DefaultSize (Classifier only)
	threshold  float64        // DefaultThreshold (Classifier only)
}

// WithDecomposer injects the decomposition strategy.
func WithDecomposer(d bmd.Decomposer) Option {
	if d == nil {
		panic(panicNilDecomposer)
	}

	return func(o *Options) { o.decomposer = d }
}

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithSize sets the latent label count a Classifier fits with.
func WithSize(n int) Option {
	return func(o *Options) { o.size = n }
}

// WithThreshold sets the decomposition threshold a Classifier fits with.
func WithThreshold(t float64) Option {
	return func(o *Options) { o.threshold = t }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		decomposer: bmd.NewAsso(),
		logger:     zap.NewNop(),
		size:       DefaultSize,
		threshold:  DefaultThreshold,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
