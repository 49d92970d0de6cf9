// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"

	"github.com/katalvlaran/bmad/matrix"
)

// Dataset is an immutable N×(L+F) table: columns [0, L) are labels and
// columns [L, L+F) are features. Accessors return copies.
type Dataset struct {
	data      *matrix.Dense // NaN allowed (missing)
	numLabels int           // split index L
	names     []string      // optional column names, len == cols when set
}

// New wraps a copy of data with split index numLabels.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrEmpty, ErrInvalidLabelCount (numLabels outside [1, cols]).
func New(data *matrix.Dense, numLabels int) (*Dataset, error) {
	if err := matrix.ValidateNotNil(data); err != nil {
		return nil, fmt.Errorf("dataset.New: %w", err)
	}
	if data.Rows() == 0 {
		return nil, fmt.Errorf("dataset.New: %w", ErrEmpty)
	}
	if err := validateSplit(numLabels, data.Cols()); err != nil {
		return nil, fmt.Errorf("dataset.New: %w", err)
	}

	// Copy into a NaN-tolerant matrix so missing cells survive.
	cp, err := matrix.NewDense(data.Rows(), data.Cols(), matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("dataset.New: %w", err)
	}
	data.Do(func(i, j int, v float64) bool {
		_ = cp.Set(i, j, v) // in range by construction
		return true
	})

	return &Dataset{data: cp, numLabels: numLabels}, nil
}

// FromRows builds a Dataset from a rectangular layout. NaN marks a missing cell.
func FromRows(rows [][]float64, numLabels int) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset.FromRows: %w", ErrEmpty)
	}
	m, err := matrix.NewDenseFromRows(rows, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("dataset.FromRows: %w", err)
	}

	if err = validateSplit(numLabels, m.Cols()); err != nil {
		return nil, fmt.Errorf("dataset.FromRows: %w", err)
	}

	return &Dataset{data: m, numLabels: numLabels}, nil
}

func validateSplit(numLabels, cols int) error {
	if numLabels < 1 || numLabels > cols {
		return fmt.Errorf("%d labels of %d columns: %w", numLabels, cols, ErrInvalidLabelCount)
	}

	return nil
}

// Merge concatenates labels and features column-wise, the way a training
// set for the scorer is assembled: the split index becomes labels.Cols().
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrBadShape (row counts differ).
func Merge(labels matrix.Matrix, features *matrix.Dense) (*Dataset, error) {
	if err := matrix.ValidateNotNil(labels); err != nil {
		return nil, fmt.Errorf("dataset.Merge: %w", err)
	}
	m, err := matrix.HStack(labels, features)
	if err != nil {
		return nil, fmt.Errorf("dataset.Merge: %w", err)
	}

	return New(m, labels.Cols())
}

// WithNames returns a copy of d carrying column names (len must equal Cols).
func (d *Dataset) WithNames(names []string) (*Dataset, error) {
	if names != nil && len(names) != d.Cols() {
		return nil, fmt.Errorf("dataset.WithNames: %d names for %d columns: %w", len(names), d.Cols(), matrix.ErrBadShape)
	}
	out := *d
	out.names = nil
	if names != nil {
		out.names = append([]string(nil), names...)
	}

	return &out, nil
}

// Rows returns the number of instances N.
func (d *Dataset) Rows() int { return d.data.Rows() }

// Cols returns L+F.
func (d *Dataset) Cols() int { return d.data.Cols() }

// NumLabels returns the split index L.
func (d *Dataset) NumLabels() int { return d.numLabels }

// NumFeatures returns F.
func (d *Dataset) NumFeatures() int { return d.data.Cols() - d.numLabels }

// Names returns a copy of the column names, or nil when unnamed.
func (d *Dataset) Names() []string {
	if d.names == nil {
		return nil
	}

	return append([]string(nil), d.names...)
}

// LabelNames returns the names of the label columns, or nil when unnamed.
func (d *Dataset) LabelNames() []string {
	if d.names == nil {
		return nil
	}

	return append([]string(nil), d.names[:d.numLabels]...)
}

// FeatureNames returns the names of the feature columns, or nil when unnamed.
func (d *Dataset) FeatureNames() []string {
	if d.names == nil {
		return nil
	}

	return append([]string(nil), d.names[d.numLabels:]...)
}

// At returns cell (i, j).
func (d *Dataset) At(i, j int) (float64, error) { return d.data.At(i, j) }

// Instance returns a copy of row i (labels then features).
func (d *Dataset) Instance(i int) ([]float64, error) { return d.data.Row(i) }

// Data returns a copy of the whole table.
func (d *Dataset) Data() *matrix.Dense { return d.data.Clone().(*matrix.Dense) }

// Labels reads columns [0, L) as a boolean label matrix.
//
// Errors:
//   - ErrNonBinaryLabel when a label cell is not exactly 0 or 1 (NaN included).
func (d *Dataset) Labels() (*matrix.Boolean, error) {
	out, err := matrix.NewBoolean(d.Rows(), d.numLabels)
	if err != nil {
		return nil, fmt.Errorf("dataset.Labels: %w", err)
	}
	var bad error
	d.data.Do(func(i, j int, v float64) bool {
		if j >= d.numLabels {
			return true
		}
		switch v {
		case matrix.True:
			_ = out.Set(i, j, true)
		case matrix.False:
		default:
			bad = fmt.Errorf("dataset.Labels: cell (%d,%d)=%v: %w", i, j, v, ErrNonBinaryLabel)
			return false
		}
		return true
	})
	if bad != nil {
		return nil, bad
	}

	return out, nil
}

// Features returns columns [L, L+F) as an N×F matrix (F may be 0).
func (d *Dataset) Features() (*matrix.Dense, error) {
	rows := make([]int, d.Rows())
	for i := range rows {
		rows[i] = i
	}
	cols := make([]int, d.NumFeatures())
	for j := range cols {
		cols[j] = d.numLabels + j
	}

	return d.data.Induced(rows, cols)
}
