// SPDX-License-Identifier: MIT

// Package matrix - Boolean storage (row-major) & safe accessors.
//
// Purpose:
//   - Dense matrix over the boolean domain {false, true} with the same
//     flat row-major layout as Dense (offset = i*cols + j).
//   - Safe public surface: At/Set return ErrOutOfRange instead of panicking.
//   - Construction from a 2-D layout rejects ragged rows with ErrBadShape.
//
// Complexity quicksheet:
//   - NewBoolean: O(r*c) zero-init; At/Set: O(1); Clone/Equal/Count: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

const (
	ctxBoolAt   = "At"
	ctxBoolSet  = "Set"
	ctxBoolRow  = "Row"
	ctxBoolFrom = "NewBooleanFromRows"

	_fmtTrue  = "1"
	_fmtFalse = "0"
)

// booleanErrorf wraps an error with a uniform Boolean context and callsite indices.
func booleanErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Boolean.%s(%d,%d): %w", method, row, col, err)
}

// Boolean is a concrete row-major matrix of booleans.
// The zero value is not usable; construct with NewBoolean or NewBooleanFromRows.
type Boolean struct {
	r, c int    // row and column counts (>0)
	data []bool // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*Boolean)(nil)

// NewBoolean creates an r×c all-false matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewBoolean(rows, cols int) (*Boolean, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Boolean{r: rows, c: cols, data: make([]bool, rows*cols)}, nil
}

// NewBooleanFromRows copies a rectangular 2-D boolean layout.
//
// Implementation:
//   - Stage 1: ValidateRectangular (ErrInvalidDimensions / ErrBadShape).
//   - Stage 2: copy rows into the flat buffer in i order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewBooleanFromRows(layout [][]bool) (*Boolean, error) {
	rows, cols, err := ValidateRectangular(layout)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxBoolFrom, err)
	}
	m := &Boolean{r: rows, c: cols, data: make([]bool, rows*cols)}
	for i := 0; i < rows; i++ {
		copy(m.data[i*cols:(i+1)*cols], layout[i])
	}

	return m, nil
}

// MustBoolean builds a Boolean from 0/1 ints and panics on a malformed layout.
// Intended for fixtures and examples where the layout is a literal.
func MustBoolean(layout [][]int) *Boolean {
	rows := make([][]bool, len(layout))
	for i, row := range layout {
		rows[i] = make([]bool, len(row))
		for j, v := range row {
			rows[i][j] = v != 0
		}
	}
	m, err := NewBooleanFromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Rows returns the row count.
func (m *Boolean) Rows() int { return m.r }

// Cols returns the column count.
func (m *Boolean) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Boolean) Shape() (rows, cols int) { return m.r, m.c }

// offset computes the row-major index or returns ErrOutOfRange.
func (m *Boolean) offset(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the cell at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Boolean) At(row, col int) (bool, error) {
	off, err := m.offset(row, col)
	if err != nil {
		return false, booleanErrorf(ctxBoolAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Boolean) Set(row, col int, v bool) error {
	off, err := m.offset(row, col)
	if err != nil {
		return booleanErrorf(ctxBoolSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Boolean) Row(i int) ([]bool, error) {
	if i < 0 || i >= m.r {
		return nil, booleanErrorf(ctxBoolRow, i, 0, ErrOutOfRange)
	}
	out := make([]bool, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy.
// Complexity: O(r*c).
func (m *Boolean) Clone() *Boolean {
	cp := make([]bool, len(m.data))
	copy(cp, m.data)

	return &Boolean{r: m.r, c: m.c, data: cp}
}

// Count returns the number of true cells.
// Complexity: O(r*c).
func (m *Boolean) Count() int {
	n := 0
	for _, v := range m.data {
		if v {
			n++
		}
	}

	return n
}

// Equal reports whether m and other have the same shape and cells.
// A nil operand equals only another nil.
func (m *Boolean) Equal(other *Boolean) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != other.data[k] {
			return false
		}
	}

	return true
}

// String renders rows as "[1, 0, 1]" lines.
// Complexity: O(r*c).
func (m *Boolean) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if m.data[i*m.c+j] {
				b.WriteString(_fmtTrue)
			} else {
				b.WriteString(_fmtFalse)
			}
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
