// SPDX-License-Identifier: MIT

// Package matrix: conversions between the float and boolean domains.
package matrix

import "fmt"

const (
	opBooleanFromDense = "BooleanFromDense"
	opDenseFromBoolean = "DenseFromBoolean"
)

// BooleanFromDense maps every cell v of m to (v > cut).
// NaN compares false and therefore maps to false.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (empty m).
//
// Complexity: O(r*c).
func BooleanFromDense(m Matrix, cut float64) (*Boolean, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opBooleanFromDense, err)
	}
	res, err := NewBoolean(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opBooleanFromDense, err)
	}
	var i, j int
	var v float64
	for i = 0; i < res.r; i++ {
		for j = 0; j < res.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opBooleanFromDense, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*res.c+j] = v > cut
		}
	}

	return res, nil
}

// BooleanRow thresholds a single vector into a 1×len(x) Boolean (x[j] > cut).
//
// Errors:
//   - ErrInvalidDimensions for an empty vector.
func BooleanRow(x []float64, cut float64) (*Boolean, error) {
	res, err := NewBoolean(1, len(x))
	if err != nil {
		return nil, matrixErrorf(opBooleanFromDense, err)
	}
	for j, v := range x {
		res.data[j] = v > cut
	}

	return res, nil
}

// DenseFromBoolean maps true to True (1.0) and false to False (0.0).
// Complexity: O(r*c).
func DenseFromBoolean(m *Boolean) (*Dense, error) {
	if err := ValidateBooleanNotNil(m); err != nil {
		return nil, matrixErrorf(opDenseFromBoolean, err)
	}
	res, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opDenseFromBoolean, err)
	}
	for k, v := range m.data {
		if v {
			res.data[k] = True
		} else {
			res.data[k] = False
		}
	}

	return res, nil
}
