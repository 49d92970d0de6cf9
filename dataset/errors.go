// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrInvalidLabelCount is returned when the split index is outside [1, cols].
	ErrInvalidLabelCount = errors.New("dataset: invalid label count")

	// ErrNonBinaryLabel is returned when a label cell is neither 0 nor 1.
	ErrNonBinaryLabel = errors.New("dataset: label cell is not 0 or 1")

	// ErrEmpty is returned for input without data rows.
	ErrEmpty = errors.New("dataset: no instances")

	// ErrParse is returned when a CSV cell is not a number or missing marker.
	ErrParse = errors.New("dataset: cannot parse cell")
)
