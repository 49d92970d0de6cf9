// SPDX-License-Identifier: MIT

// Package matrix: sentinel errors. Every operation returns one of these,
// wrapped with a call-site tag, and callers match them with errors.Is.
// When several checks fail at once the order is nil, shape, index, value.
package matrix

import "errors"

var (
	// ErrBadShape covers every shape conflict: a ragged layout, a.Cols != b.Rows
	// in BooleanProduct, differing row counts in HStack, a vector of the
	// wrong length.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange reports a row or column index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf reports a non-finite value written to a finite-only Dense.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix reports a nil matrix argument.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidDimensions reports a requested size that is not positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)

// ErrIndexOutOfBounds is the older name of ErrOutOfRange.
//
// Deprecated: use ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange
