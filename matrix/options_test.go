package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bmad/matrix"
	"github.com/stretchr/testify/require"
)

// TestOptionsLastWriterWins checks that later options override earlier ones.
func TestOptionsLastWriterWins(t *testing.T) {
	m, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.False(t, m.AllowsNaN())
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	m, err = matrix.NewDense(1, 1, matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, m.AllowsNaN())
}

// TestPolicySurvivesCloneAndInduced ensures derived matrices keep the base policy.
func TestPolicySurvivesCloneAndInduced(t *testing.T) {
	m, err := matrix.NewDense(2, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, math.NaN()))

	sub, err := m.Induced([]int{0}, []int{1})
	require.NoError(t, err)
	require.True(t, sub.AllowsNaN())
}
