// SPDX-License-Identifier: MIT

// Package matrix: Dense, the float table behind datasets and latent rows.
//
// Dense keeps cells in one row-major slice (cell (i,j) lives at i*cols+j).
// Accessors report bad coordinates as errors. Loops run in fixed i→j order.
// A per-matrix numeric guard decides whether NaN/±Inf may be stored; datasets
// switch it off because NaN marks a missing cell.
//
// Costs: construction O(r*c), At/Set O(1), Clone O(r*c), Induced O(r'*c'),
// HStack O(r*(c1+c2)).
package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxInduce = "Induced"
	ctxFrom   = "NewDenseFromRows"
	ctxHStack = "HStack"
)

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf tags err with the method name and the offending cell.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major float64 matrix.
type Dense struct {
	r, c           int       // zero only through newDenseZeroOK (empty feature blocks)
	data           []float64 // len == r*c
	validateNaNInf bool      // reject NaN/±Inf on Set when true
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense allocates a zero-filled rows×cols matrix.
// Options choose the numeric guard (finite-only by default).
//
// Errors:
//   - ErrInvalidDimensions when rows or cols is not positive.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// newDenseZeroOK also accepts a zero dimension, so a dataset without
// feature columns still yields a legal N×0 feature block.
func newDenseZeroOK(rows, cols int, validateNaNInf bool) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: validateNaNInf}, nil
}

// NewDenseFromRows copies a rectangular layout into a new Dense.
// With the guard on, the first non-finite cell aborts the copy.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape (ragged rows), ErrNaNInf.
func NewDenseFromRows(layout [][]float64, opts ...Option) (*Dense, error) {
	rows, cols, err := ValidateRectangular(layout)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFrom, err)
	}
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFrom, err)
	}

	for i, src := range layout {
		if m.validateNaNInf {
			for j, v := range src {
				if isNonFinite(v) {
					return nil, denseErrorf(ctxFrom, i, j, ErrNaNInf)
				}
			}
		}
		copy(m.data[i*cols:(i+1)*cols], src)
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (Rows, Cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// AllowsNaN reports whether the finite-only guard is off for this matrix.
func (m *Dense) AllowsNaN() bool { return !m.validateNaNInf }

// offset maps (row, col) into data or fails with ErrOutOfRange.
func (m *Dense) offset(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At reads cell (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	k, err := m.offset(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[k], nil
}

// Set writes cell (row, col).
//
// Errors:
//   - ErrOutOfRange, ErrNaNInf (guard on and v not finite).
func (m *Dense) Set(row, col int, v float64) error {
	k, err := m.offset(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[k] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return append([]float64(nil), m.data[i*m.c:(i+1)*m.c]...), nil
}

// Clone returns an independent copy with the same guard.
func (m *Dense) Clone() Matrix {
	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           append([]float64(nil), m.data...),
		validateNaNInf: m.validateNaNInf,
	}
}

// String prints one bracketed, comma-separated line per row (shortest %g form).
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j, v := range m.data[i*m.c : (i+1)*m.c] {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Induced copies the cells selected by rowsIdx × colsIdx into a new matrix
// with the same guard. Either index set may be empty, and indices may repeat.
// This is how a dataset cuts its label and feature blocks.
//
// Errors:
//   - ErrOutOfRange for an index outside the matrix.
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	out, err := newDenseZeroOK(len(rowsIdx), len(colsIdx), m.validateNaNInf)
	if err != nil {
		return nil, err
	}

	for i, ri := range rowsIdx {
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j, cj := range colsIdx {
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			out.data[i*out.c+j] = m.data[ri*m.c+cj]
		}
	}

	return out, nil
}

// Do calls f(i, j, v) for every cell in row-major order until f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	for k, v := range m.data {
		if !f(k/m.c, k%m.c, v) {
			return
		}
	}
}

// HStack returns [a | b]. Either side may have zero columns. The result
// admits NaN when either operand does, so missing cells survive a merge.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape (row counts differ), ErrInvalidDimensions
//     (no rows or no columns at all).
func HStack(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxHStack, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxHStack, err)
	}
	if a.Rows() != b.Rows() {
		return nil, fmt.Errorf("%s: rows %d != %d: %w", ctxHStack, a.Rows(), b.Rows(), ErrBadShape)
	}
	rows, ca, cb := a.Rows(), a.Cols(), b.Cols()
	if rows == 0 || ca+cb == 0 {
		return nil, fmt.Errorf("%s: %w", ctxHStack, ErrInvalidDimensions)
	}

	out, err := newDenseZeroOK(rows, ca+cb, !(allowsNaN(a) || allowsNaN(b)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxHStack, err)
	}
	var v float64
	for i := 0; i < rows; i++ {
		dst := out.data[i*out.c : (i+1)*out.c]
		for j := 0; j < ca; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxHStack, err)
			}
			dst[j] = v
		}
		for j := 0; j < cb; j++ {
			if v, err = b.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxHStack, err)
			}
			dst[ca+j] = v
		}
	}

	return out, nil
}

// allowsNaN reports the guard of m; matrices other than *Dense count as strict.
func allowsNaN(m Matrix) bool {
	if d, ok := m.(*Dense); ok {
		return d.AllowsNaN()
	}

	return false
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
