package dataset_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bmad/dataset"
	"github.com/katalvlaran/bmad/matrix"
	"github.com/stretchr/testify/require"
)

// TestFromRowsSplit verifies the label/feature split and the accessors.
func TestFromRowsSplit(t *testing.T) {
	d, err := dataset.FromRows([][]float64{
		{1, 0, 1, 0.5, 2},
		{0, 1, 1, 1.5, math.NaN()},
	}, 3)
	require.NoError(t, err)
	require.Equal(t, 2, d.Rows())
	require.Equal(t, 5, d.Cols())
	require.Equal(t, 3, d.NumLabels())
	require.Equal(t, 2, d.NumFeatures())
	require.Nil(t, d.Names())

	labels, err := d.Labels()
	require.NoError(t, err)
	require.True(t, labels.Equal(matrix.MustBoolean([][]int{{1, 0, 1}, {0, 1, 1}})), labels.String())

	features, err := d.Features()
	require.NoError(t, err)
	require.Equal(t, 2, features.Rows())
	require.Equal(t, 2, features.Cols())
	v, err := features.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)
	v, err = features.At(1, 1)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))

	row, err := d.Instance(1)
	require.NoError(t, err)
	require.Len(t, row, 5)
	require.Equal(t, 1.5, row[3])

	_, err = d.Instance(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestInvalidSplit rejects a split index outside [1, cols].
func TestInvalidSplit(t *testing.T) {
	rows := [][]float64{{1, 0, 3}}
	for _, l := range []int{0, -1, 4} {
		_, err := dataset.FromRows(rows, l)
		require.ErrorIs(t, err, dataset.ErrInvalidLabelCount, "numLabels=%d", l)
	}

	_, err := dataset.FromRows(nil, 1)
	require.ErrorIs(t, err, dataset.ErrEmpty)

	_, err = dataset.FromRows([][]float64{{1, 0}, {1}}, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestLabelsOnlyDataset allows zero feature columns.
func TestLabelsOnlyDataset(t *testing.T) {
	d, err := dataset.FromRows([][]float64{{1, 0}, {0, 1}}, 2)
	require.NoError(t, err)
	require.Zero(t, d.NumFeatures())

	f, err := d.Features()
	require.NoError(t, err)
	require.Equal(t, 2, f.Rows())
	require.Zero(t, f.Cols())
}

// TestLabelsRejectNonBinary checks that a label cell must be exactly 0 or 1.
func TestLabelsRejectNonBinary(t *testing.T) {
	tests := []struct {
		name string
		cell float64
	}{
		{"fraction", 0.5},
		{"two", 2},
		{"missing", math.NaN()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := dataset.FromRows([][]float64{{1, tc.cell, 7}}, 2)
			require.NoError(t, err)
			_, err = d.Labels()
			require.ErrorIs(t, err, dataset.ErrNonBinaryLabel)
		})
	}
}

// TestNewCopiesInput shows that later writes to the source do not leak in.
func TestNewCopiesInput(t *testing.T) {
	src, err := matrix.NewDenseFromRows([][]float64{{1, 0, 4}})
	require.NoError(t, err)
	d, err := dataset.New(src, 2)
	require.NoError(t, err)

	require.NoError(t, src.Set(0, 2, 9))
	v, err := d.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	// Data is a copy as well, and it admits missing cells.
	cp := d.Data()
	require.True(t, cp.AllowsNaN())
	require.NoError(t, cp.Set(0, 2, math.NaN()))
	v, err = d.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	_, err = dataset.New(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMerge concatenates latent labels and features with the new split.
func TestMerge(t *testing.T) {
	latent, err := matrix.DenseFromBoolean(matrix.MustBoolean([][]int{{1, 0}, {0, 1}}))
	require.NoError(t, err)
	features, err := matrix.NewDenseFromRows([][]float64{{3.5}, {4.5}})
	require.NoError(t, err)

	d, err := dataset.Merge(latent, features)
	require.NoError(t, err)
	require.Equal(t, 2, d.NumLabels())
	require.Equal(t, 1, d.NumFeatures())
	row, err := d.Instance(1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 4.5}, row)

	short, err := matrix.NewDenseFromRows([][]float64{{1}})
	require.NoError(t, err)
	_, err = dataset.Merge(latent, short)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = dataset.Merge(nil, features)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestWithNames attaches column names and splits them at the label index.
func TestWithNames(t *testing.T) {
	d, err := dataset.FromRows([][]float64{{1, 0, 2}}, 2)
	require.NoError(t, err)

	named, err := d.WithNames([]string{"a", "b", "x"})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, named.LabelNames())
	require.Equal(t, []string{"x"}, named.FeatureNames())
	require.Nil(t, d.Names(), "receiver stays unnamed")

	_, err = d.WithNames([]string{"a"})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
