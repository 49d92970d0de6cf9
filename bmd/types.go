// SPDX-License-Identifier: MIT

package bmd

import "github.com/katalvlaran/bmad/matrix"

// Decomposer factors a boolean label matrix.
//
// Contract:
//   - compressed has shape labels.Rows() × size.
//   - upper has shape size × labels.Cols().
//   - ErrInvalidSize when size < 1 or size >= labels.Cols().
//   - ErrInvalidThreshold when threshold is outside (0, 1].
//   - The same input and configuration always produce the same factors.
type Decomposer interface {
	Decompose(labels *matrix.Boolean, size int, threshold float64) (compressed, upper *matrix.Boolean, err error)
}

// Func adapts a plain function to Decomposer, so alternative strategies can
// be injected without declaring a type.
type Func func(labels *matrix.Boolean, size int, threshold float64) (*matrix.Boolean, *matrix.Boolean, error)

// Decompose calls f.
func (f Func) Decompose(labels *matrix.Boolean, size int, threshold float64) (*matrix.Boolean, *matrix.Boolean, error) {
	return f(labels, size, threshold)
}

var (
	_ Decomposer = Func(nil)
	_ Decomposer = (*Asso)(nil)
)
