// SPDX-License-Identifier: MIT

package scorer

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/bmad/dataset"
	"github.com/katalvlaran/bmad/matrix"
)

const (
	opTrain = "NearestNeighbour.Train"
	opScore = "NearestNeighbour.Score"
)

// NearestNeighbour scores a row with the mean label vector of its k
// closest training rows (Euclidean distance over the feature columns).
// It is safe for concurrent use.
type NearestNeighbour struct {
	k int

	mu        sync.RWMutex
	numLabels int
	labels    [][]float64
	features  [][]float64
}

// NewNearestNeighbour returns an untrained scorer.
//
// Errors:
//   - ErrInvalidK when k < 1.
func NewNearestNeighbour(k int) (*NearestNeighbour, error) {
	if k < 1 {
		return nil, fmt.Errorf("NewNearestNeighbour: k=%d: %w", k, ErrInvalidK)
	}

	return &NearestNeighbour{k: k}, nil
}

// K returns the neighbour count.
func (s *NearestNeighbour) K() int { return s.k }

// Train memorises the label and feature columns of train.
// It replaces any earlier training state.
func (s *NearestNeighbour) Train(train *dataset.Dataset) error {
	if train == nil {
		return fmt.Errorf("%s: %w", opTrain, matrix.ErrNilMatrix)
	}
	l := train.NumLabels()
	labels := make([][]float64, train.Rows())
	features := make([][]float64, train.Rows())
	for i := range labels {
		row, err := train.Instance(i)
		if err != nil {
			return fmt.Errorf("%s: %w", opTrain, err)
		}
		labels[i], features[i] = row[:l:l], row[l:]
	}

	s.mu.Lock()
	s.numLabels, s.labels, s.features = l, labels, features
	s.mu.Unlock()

	return nil
}

// Score ignores the first NumLabels cells of row and returns the per-label
// mean over the k closest training rows. Ties keep training order; rows
// whose distance is NaN (missing features) rank last.
//
// Errors:
//   - ErrNotTrained, matrix.ErrBadShape (row width differs from training).
//
// Complexity: O(N*F + N log N).
func (s *NearestNeighbour) Score(row []float64) ([]float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.labels == nil {
		return nil, fmt.Errorf("%s: %w", opScore, ErrNotTrained)
	}
	width := s.numLabels + len(s.features[0])
	if err := matrix.ValidateVecLen(row, width); err != nil {
		return nil, fmt.Errorf("%s: %w", opScore, err)
	}
	x := row[s.numLabels:]

	dist := make([]float64, len(s.features))
	order := make([]int, len(s.features))
	for i, f := range s.features {
		order[i] = i
		dist[i] = floats.Distance(x, f, 2)
		if math.IsNaN(dist[i]) {
			dist[i] = math.Inf(1)
		}
	}
	sort.SliceStable(order, func(a, b int) bool { return dist[order[a]] < dist[order[b]] })

	k := s.k
	if k > len(order) {
		k = len(order)
	}
	out := make([]float64, s.numLabels)
	for _, i := range order[:k] {
		floats.Add(out, s.labels[i])
	}
	floats.Scale(1/float64(k), out)

	return out, nil
}
