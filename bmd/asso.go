// SPDX-License-Identifier: MIT

package bmd

import (
	"fmt"

	"github.com/katalvlaran/bmad/matrix"
)

const opDecompose = "Asso.Decompose"

// Asso is the association-based greedy boolean matrix decomposition.
// It is stateless after construction and safe for concurrent use.
type Asso struct {
	opts Options
}

// NewAsso returns an Asso with the given cover weights.
func NewAsso(opts ...Option) *Asso {
	return &Asso{opts: gatherOptions(opts...)}
}

// Decompose factors labels (N×L) into compressed (N×size) and upper (size×L).
//
// Implementation:
//   - Stage 1: validate (nil → size → threshold).
//   - Stage 2: candidates = rows of Association(labels, threshold).
//   - Stage 3: for l = 0..size-1 pick the unused candidate with the largest
//     strictly positive cover gain (lowest index on ties), write it to
//     upper row l, mark the instances that profit from it in compressed
//     column l and extend the running cover.
//   - Stage 4: stop early once no candidate gains; remaining latent labels
//     stay all-false.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrInvalidSize, ErrInvalidThreshold.
//
// Complexity:
//   - Time O(size * L * N * L), Space O(N*L + L²).
func (a *Asso) Decompose(labels *matrix.Boolean, size int, threshold float64) (*matrix.Boolean, *matrix.Boolean, error) {
	if err := validateInput(labels, size, threshold); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	n, l := labels.Shape()

	co, err := matrix.CoOccurrence(labels)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	candidates := associationRows(co, threshold)

	data := make([][]bool, n)
	covered := make([][]bool, n)
	compressed := make([][]bool, n)
	for i := 0; i < n; i++ {
		if data[i], err = labels.Row(i); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", opDecompose, err)
		}
		covered[i] = make([]bool, l)
		compressed[i] = make([]bool, size)
	}
	upper := make([][]bool, size)
	for k := 0; k < size; k++ {
		upper[k] = make([]bool, l)
	}

	used := make([]bool, l)
	usage := make([]bool, n)
	bestUsage := make([]bool, n)
	for k := 0; k < size; k++ {
		best, bestGain := -1, 0.0
		for c := 0; c < l; c++ {
			if used[c] {
				continue
			}
			gain := a.coverGain(data, covered, candidates[c], usage)
			if gain > bestGain {
				best, bestGain = c, gain
				copy(bestUsage, usage)
			}
		}
		if best < 0 {
			break // nothing left that improves the cover
		}

		used[best] = true
		copy(upper[k], candidates[best])
		for i := 0; i < n; i++ {
			if !bestUsage[i] {
				continue
			}
			compressed[i][k] = true
			for j, on := range candidates[best] {
				if on {
					covered[i][j] = true
				}
			}
		}
	}

	cm, err := matrix.NewBooleanFromRows(compressed)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	um, err := matrix.NewBooleanFromRows(upper)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opDecompose, err)
	}

	return cm, um, nil
}

// coverGain scores adding basis row b on top of the current cover.
// For every instance i it sums bonus for each not-yet-covered true cell in
// b's support and subtracts penalty for each not-yet-covered false cell;
// instances with a positive sum are recorded in usage and contribute it.
func (a *Asso) coverGain(data, covered [][]bool, b []bool, usage []bool) float64 {
	total := 0.0
	var gain float64
	for i := range data {
		gain = 0
		for j, on := range b {
			if !on || covered[i][j] {
				continue
			}
			if data[i][j] {
				gain += a.opts.bonus
			} else {
				gain -= a.opts.penalty
			}
		}
		usage[i] = gain > 0
		if usage[i] {
			total += gain
		}
	}

	return total
}
