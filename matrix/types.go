// SPDX-License-Identifier: MIT

// Package matrix: the float matrix contract shared by Dense and the
// conversions to and from Boolean.
package matrix

// Matrix is a mutable rows×cols table of float64. Feature blocks, latent
// placeholder rows and merged training sets are passed around as Matrix.
// Bad coordinates are reported as ErrOutOfRange, never as a panic.
type Matrix interface {
	Rows() int
	Cols() int
	At(i, j int) (float64, error)
	Set(i, j int, v float64) error

	// Clone returns a deep copy that shares no storage with the receiver.
	Clone() Matrix
}

// Float images of boolean cells, used when labels move between Boolean and Dense.
const (
	True  = 1.0
	False = 0.0
)
