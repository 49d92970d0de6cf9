// SPDX-License-Identifier: MIT

package mlc

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bmad/matrix"
)

const (
	opTransformInstance = "TransformInstance"
	opReconstruct       = "Reconstruct"
)

// Model is the payload of the Fit state: one decomposition run and the
// layout it was fitted on. It is immutable and safe for concurrent use.
type Model struct {
	size        int
	threshold   float64
	numLabels   int
	numFeatures int
	compressed  *matrix.Boolean // N×size
	upper       *matrix.Boolean // size×L
	reconErr    int
}

// Size returns the number of latent labels.
func (m *Model) Size() int { return m.size }

// Threshold returns the decomposition threshold used at fit time.
func (m *Model) Threshold() float64 { return m.threshold }

// NumLabels returns L, the number of original labels.
func (m *Model) NumLabels() int { return m.numLabels }

// NumFeatures returns the number of feature columns seen at fit time.
func (m *Model) NumFeatures() int { return m.numFeatures }

// Compressed returns a copy of the N×size factor.
func (m *Model) Compressed() *matrix.Boolean { return m.compressed.Clone() }

// Upper returns a copy of the size×L factor.
func (m *Model) Upper() *matrix.Boolean { return m.upper.Clone() }

// ReconstructionError returns the number of label cells where
// compressed ⊗ upper disagreed with the training labels.
func (m *Model) ReconstructionError() int { return m.reconErr }

// TransformInstance turns a full instance [labels | features] into a
// prediction row [size × NaN | features] for the scorer. The label cells of
// x are ignored.
//
// Errors:
//   - matrix.ErrBadShape when len(x) != NumLabels()+NumFeatures().
//
// Complexity: O(size + F).
func (m *Model) TransformInstance(x []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(x, m.numLabels+m.numFeatures); err != nil {
		return nil, fmt.Errorf("%s: %w", opTransformInstance, err)
	}
	out := make([]float64, m.size+m.numFeatures)
	for k := 0; k < m.size; k++ {
		out[k] = math.NaN() // filled in by the scorer
	}
	copy(out[m.size:], x[m.numLabels:])

	return out, nil
}

// Reconstruct expands latent scores into an L-length 0/1 prediction.
//
// Implementation:
//   - Stage 1: z[k] = scores[k] > PredictionCut (0.5 itself maps to false).
//   - Stage 2: y = z ⊗ upper over the AND-OR semiring (1×L).
//   - Stage 3: map true/false to 1.0/0.0.
//
// Errors:
//   - matrix.ErrBadShape when len(scores) != Size().
//
// Complexity: O(size*L).
func (m *Model) Reconstruct(scores []float64) ([]float64, error) {
	y, err := m.reconstructBoolean(scores)
	if err != nil {
		return nil, err
	}
	row, err := y.Row(0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}
	out := make([]float64, len(row))
	for j, on := range row {
		if on {
			out[j] = matrix.True
		} else {
			out[j] = matrix.False
		}
	}

	return out, nil
}

func (m *Model) reconstructBoolean(scores []float64) (*matrix.Boolean, error) {
	if err := matrix.ValidateVecLen(scores, m.size); err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}
	z, err := matrix.BooleanRow(scores, PredictionCut)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}
	y, err := matrix.BooleanProduct(z, m.upper)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}

	return y, nil
}
