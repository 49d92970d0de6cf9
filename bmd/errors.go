// SPDX-License-Identifier: MIT

package bmd

import "errors"

var (
	// ErrInvalidSize is returned when size < 1 or size >= number of labels.
	ErrInvalidSize = errors.New("bmd: invalid decomposition size")

	// ErrInvalidThreshold is returned when the threshold is NaN or outside (0, 1].
	ErrInvalidThreshold = errors.New("bmd: threshold must be in (0, 1]")
)
