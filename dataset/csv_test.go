package dataset_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/bmad/dataset"
	"github.com/katalvlaran/bmad/matrix"
	"github.com/stretchr/testify/require"
)

// TestReadCSVHeaderAndMissing detects the header row and reads "?" and
// empty cells as NaN.
func TestReadCSVHeaderAndMissing(t *testing.T) {
	in := "sport,news,len\n1,0,12.5\n0,1,?\n# comment\n1,1,\n"

	d, err := dataset.ReadCSV(strings.NewReader(in), 2)
	require.NoError(t, err)
	require.Equal(t, 3, d.Rows())
	require.Equal(t, []string{"sport", "news", "len"}, d.Names())

	v, err := d.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 12.5, v)
	for i := 1; i < 3; i++ {
		v, err = d.At(i, 2)
		require.NoError(t, err)
		require.True(t, math.IsNaN(v), "row %d", i)
	}

	labels, err := d.Labels()
	require.NoError(t, err)
	require.True(t, labels.Equal(matrix.MustBoolean([][]int{{1, 0}, {0, 1}, {1, 1}})))
}

// TestReadCSVWithoutHeader keeps an all-numeric first record as data.
func TestReadCSVWithoutHeader(t *testing.T) {
	d, err := dataset.ReadCSV(strings.NewReader("1,0,3\n0,1,4\n"), 2)
	require.NoError(t, err)
	require.Equal(t, 2, d.Rows())
	require.Nil(t, d.Names())
}

// TestReadCSVErrors maps malformed input onto the package errors.
func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", dataset.ErrEmpty},
		{"header only", "a,b\n", dataset.ErrEmpty},
		{"bad cell", "a,b\n1,x\n", dataset.ErrParse},
		{"ragged", "1,0\n1\n", matrix.ErrBadShape},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dataset.ReadCSV(strings.NewReader(tc.in), 1)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := dataset.ReadCSV(strings.NewReader("1,0\n"), 3)
	require.ErrorIs(t, err, dataset.ErrInvalidLabelCount)
}

// TestWriteCSVRoundTrip writes names and missing markers and reads them back.
func TestWriteCSVRoundTrip(t *testing.T) {
	d, err := dataset.FromRows([][]float64{{1, 0, 0.25}, {0, 1, math.NaN()}}, 2)
	require.NoError(t, err)
	d, err = d.WithNames([]string{"a", "b", "f"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dataset.WriteCSV(&buf, d))
	require.Equal(t, "a,b,f\n1,0,0.25\n0,1,?\n", buf.String())

	back, err := dataset.ReadCSV(&buf, 2)
	require.NoError(t, err)
	require.Equal(t, d.Names(), back.Names())
	v, err := back.At(1, 2)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))

	require.ErrorIs(t, dataset.WriteCSV(&buf, nil), matrix.ErrNilMatrix)
}
