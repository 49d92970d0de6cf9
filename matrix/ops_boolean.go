// SPDX-License-Identifier: MIT

// Package matrix - boolean algebra kernels.
//
// Purpose:
//   - BooleanProduct over the AND-OR semiring: C[i,j] = OR_k (A[i,k] AND B[k,j]).
//   - Element-wise Or, transposition and the counting helpers the
//     decomposition needs (column support, co-occurrence, cell difference).
//
// Determinism:
//   - Fixed loop orders; results never depend on map iteration or scheduling.
//   - Operands are never mutated; every kernel allocates a fresh result.

package matrix

import "fmt"

// Operation tags used in error wrappers.
const (
	opBooleanProduct = "BooleanProduct"
	opOr             = "Or"
	opTranspose      = "TransposeBoolean"
	opDifference     = "Difference"
	opColumnSupport  = "ColumnSupport"
	opCoOccurrence   = "CoOccurrence"
)

// matrixErrorf wraps err with an operation tag; err must be non-nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// BooleanProduct returns a ⊗ b with shape a.Rows × b.Cols.
//
// Implementation:
//   - Stage 1: ValidateProductCompatible (nil, a.Cols == b.Rows).
//   - Stage 2: i→k→j with row-major strides; rows of a with A[i,k]=false are
//     skipped, and row i of the result ORs in row k of b otherwise.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c) worst case, Space O(r*c).
func BooleanProduct(a, b *Boolean) (*Boolean, error) {
	if err := ValidateProductCompatible(a, b); err != nil {
		return nil, matrixErrorf(opBooleanProduct, err)
	}
	res, err := NewBoolean(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opBooleanProduct, err)
	}

	var i, k, j int
	var rowA, rowB, rowR int
	for i = 0; i < a.r; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for k = 0; k < a.c; k++ {
			if !a.data[rowA+k] {
				continue // AND with false contributes nothing
			}
			rowB = k * b.c
			for j = 0; j < b.c; j++ {
				if b.data[rowB+j] {
					res.data[rowR+j] = true
				}
			}
		}
	}

	return res, nil
}

// Or returns the element-wise disjunction of two same-shaped matrices.
// Complexity: O(r*c).
func Or(a, b *Boolean) (*Boolean, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opOr, err)
	}
	res := a.Clone()
	for k, v := range b.data {
		if v {
			res.data[k] = true
		}
	}

	return res, nil
}

// TransposeBoolean returns mᵀ.
// Complexity: O(r*c).
func TransposeBoolean(m *Boolean) (*Boolean, error) {
	if err := ValidateBooleanNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewBoolean(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// Difference counts the cells where a and b disagree (Hamming distance of
// the flattened matrices). With a = labels and b = compressed ⊗ upper this is
// the reconstruction error of a factorization.
// Complexity: O(r*c).
func Difference(a, b *Boolean) (int, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opDifference, err)
	}
	n := 0
	for k := range a.data {
		if a.data[k] != b.data[k] {
			n++
		}
	}

	return n, nil
}

// ColumnSupport returns, for every column j, the number of rows with m[i,j]=true.
// Complexity: O(r*c).
func ColumnSupport(m *Boolean) ([]int, error) {
	if err := ValidateBooleanNotNil(m); err != nil {
		return nil, matrixErrorf(opColumnSupport, err)
	}
	out := make([]int, m.c)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if m.data[i*m.c+j] {
				out[j]++
			}
		}
	}

	return out, nil
}

// CoOccurrence returns the c×c table co[i][j] = |{rows with m[·,i] and m[·,j]}|.
// The diagonal equals ColumnSupport.
//
// Complexity:
//   - Time O(r*c²) worst case (only true pairs are visited), Space O(c²).
func CoOccurrence(m *Boolean) ([][]int, error) {
	if err := ValidateBooleanNotNil(m); err != nil {
		return nil, matrixErrorf(opCoOccurrence, err)
	}
	co := make([][]int, m.c)
	for j := range co {
		co[j] = make([]int, m.c)
	}
	active := make([]int, 0, m.c) // columns set in the current row
	var i, j, p, q int
	for i = 0; i < m.r; i++ {
		active = active[:0]
		for j = 0; j < m.c; j++ {
			if m.data[i*m.c+j] {
				active = append(active, j)
			}
		}
		for p = 0; p < len(active); p++ {
			for q = 0; q < len(active); q++ {
				co[active[p]][active[q]]++
			}
		}
	}

	return co, nil
}
