// SPDX-License-Identifier: MIT

// Package bmd: functional configuration for the Asso cover weights.
//
// Notes:
//   - The threshold and size are per-call arguments of Decompose, not options:
//     they are fit-time configuration owned by the caller.
//   - WithX constructors panic only on nonsensical values (programmer error).
package bmd

import "math"

// Defaults (single source of truth).
const (
	// DefaultBonus rewards each newly covered true cell.
	DefaultBonus = 1.0

	// DefaultPenalty charges each newly covered false cell.
	DefaultPenalty = 1.0
)

const (
	panicBonusInvalid   = "bmd: WithBonus: weight must be finite and > 0"
	panicPenaltyInvalid = "bmd: WithPenalty: weight must be finite and > 0"
)

// Option mutates Asso options.
type Option func(*Options)

// Options stores the effective Asso configuration.
type Options struct {
	bonus   float64 // DefaultBonus
	penalty float64 // DefaultPenalty
}

// WithBonus sets the weight of a newly covered true cell.
// Panics when w is not finite or not positive.
func WithBonus(w float64) Option {
	if !validWeight(w) {
		panic(panicBonusInvalid)
	}

	return func(o *Options) { o.bonus = w }
}

// WithPenalty sets the weight of a newly covered false cell.
// Raising it relative to the bonus makes the cover more conservative
// (fewer false positives in the reconstruction).
// Panics when w is not finite or not positive.
func WithPenalty(w float64) Option {
	if !validWeight(w) {
		panic(panicPenaltyInvalid)
	}

	return func(o *Options) { o.penalty = w }
}

func validWeight(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w > 0
}

// gatherOptions applies setters over the defaults, last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{bonus: DefaultBonus, penalty: DefaultPenalty}
	for _, set := range user {
		set(&o)
	}

	return o
}
