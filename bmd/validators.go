// SPDX-License-Identifier: MIT

package bmd

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bmad/matrix"
)

// ValidateThreshold rejects NaN and values outside (0, 1].
func ValidateThreshold(threshold float64) error {
	if math.IsNaN(threshold) || threshold <= 0 || threshold > 1 {
		return fmt.Errorf("threshold %v: %w", threshold, ErrInvalidThreshold)
	}

	return nil
}

// ValidateSize rejects size < 1 and size >= numLabels.
func ValidateSize(size, numLabels int) error {
	if size < 1 || size >= numLabels {
		return fmt.Errorf("size %d with %d labels: %w", size, numLabels, ErrInvalidSize)
	}

	return nil
}

// validateInput runs the fixed check sequence NotNil → Size → Threshold.
func validateInput(labels *matrix.Boolean, size int, threshold float64) error {
	if err := matrix.ValidateBooleanNotNil(labels); err != nil {
		return err
	}
	if err := ValidateSize(size, labels.Cols()); err != nil {
		return err
	}

	return ValidateThreshold(threshold)
}

// ValidateFactors checks that compressed/upper honor the Decomposer shape
// contract for labels and size. Used to guard injected strategies.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrBadShape.
func ValidateFactors(labels, compressed, upper *matrix.Boolean, size int) error {
	if err := matrix.ValidateBooleanNotNil(compressed); err != nil {
		return fmt.Errorf("compressed: %w", err)
	}
	if err := matrix.ValidateBooleanNotNil(upper); err != nil {
		return fmt.Errorf("upper: %w", err)
	}
	if compressed.Rows() != labels.Rows() || compressed.Cols() != size {
		return fmt.Errorf("compressed is %dx%d, want %dx%d: %w",
			compressed.Rows(), compressed.Cols(), labels.Rows(), size, matrix.ErrBadShape)
	}
	if upper.Rows() != size || upper.Cols() != labels.Cols() {
		return fmt.Errorf("upper is %dx%d, want %dx%d: %w",
			upper.Rows(), upper.Cols(), size, labels.Cols(), matrix.ErrBadShape)
	}

	return nil
}
