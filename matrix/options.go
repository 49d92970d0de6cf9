// SPDX-License-Identifier: MIT

// Package matrix: functional options for Dense construction.
//
// Datasets store a missing cell as NaN, so every builder that carries
// missing values (CSV ingestion, latent placeholders, merged training sets)
// turns the finite-only guard off with WithNoValidateNaNInf.
package matrix

// DefaultValidateNaNInf is the guard a Dense gets when no option says otherwise.
const DefaultValidateNaNInf = true

// Option adjusts Options before a Dense is built.
type Option func(*Options)

// Options is the resolved construction configuration.
type Options struct {
	validateNaNInf bool
}

// WithValidateNaNInf makes the new Dense reject NaN and ±Inf (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets the new Dense hold NaN, which marks a missing cell.
// Matrices that already exist keep their own guard.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user options over the defaults; the last one wins.
func gatherOptions(user ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, set := range user {
		set(&o)
	}

	return o
}
