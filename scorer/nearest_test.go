package scorer_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bmad/dataset"
	"github.com/katalvlaran/bmad/matrix"
	"github.com/katalvlaran/bmad/scorer"
)

func trainingSet(t *testing.T) *dataset.Dataset {
	t.Helper()
	d, err := dataset.FromRows([][]float64{
		{1, 0, 0, 0},
		{1, 1, 0, 1},
		{0, 1, 10, 10},
		{0, 1, 11, 10},
	}, 2)
	require.NoError(t, err)

	return d
}

// TestNearestNeighbourScores averages the labels of the k closest rows.
func TestNearestNeighbourScores(t *testing.T) {
	tests := []struct {
		name string
		k    int
		x    []float64
		want []float64
	}{
		{"single neighbour", 1, []float64{math.NaN(), math.NaN(), 0.1, 0.1}, []float64{1, 0}},
		{"two neighbours", 2, []float64{math.NaN(), math.NaN(), 0, 0.4}, []float64{1, 0.5}},
		{"far cluster", 2, []float64{math.NaN(), math.NaN(), 10, 9}, []float64{0, 1}},
		{"k above N", 10, []float64{0, 0, 5, 5}, []float64{0.5, 0.75}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := scorer.NewNearestNeighbour(tc.k)
			require.NoError(t, err)
			require.NoError(t, s.Train(trainingSet(t)))

			got, err := s.Score(tc.x)
			require.NoError(t, err)
			require.InDeltaSlice(t, tc.want, got, 1e-12)
		})
	}
}

// TestNearestNeighbourTiesKeepOrder picks the earliest row among equals.
func TestNearestNeighbourTiesKeepOrder(t *testing.T) {
	d, err := dataset.FromRows([][]float64{{1, 0, 5}, {0, 1, 5}}, 2)
	require.NoError(t, err)
	s, err := scorer.NewNearestNeighbour(1)
	require.NoError(t, err)
	require.NoError(t, s.Train(d))

	got, err := s.Score([]float64{0, 0, 5})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0}, got)
}

// TestNearestNeighbourErrors covers construction and call-order errors.
func TestNearestNeighbourErrors(t *testing.T) {
	_, err := scorer.NewNearestNeighbour(0)
	require.ErrorIs(t, err, scorer.ErrInvalidK)

	s, err := scorer.NewNearestNeighbour(3)
	require.NoError(t, err)
	require.Equal(t, 3, s.K())
	_, err = s.Score([]float64{0, 0, 1, 1})
	require.ErrorIs(t, err, scorer.ErrNotTrained)

	require.ErrorIs(t, s.Train(nil), matrix.ErrNilMatrix)
	require.NoError(t, s.Train(trainingSet(t)))
	_, err = s.Score([]float64{0, 0, 1})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
