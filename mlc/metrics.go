// SPDX-License-Identifier: MIT

package mlc

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/bmad/matrix"
)

// Multi-label metrics over N×L truth/prediction pairs. Each one computes a
// per-instance value and averages it over the instances.

// HammingLoss is the mean fraction of label cells predicted wrongly.
func HammingLoss(truth, pred *matrix.Boolean) (float64, error) {
	return perInstanceMean("HammingLoss", truth, pred, func(t, p []bool) float64 {
		wrong := 0
		for j := range t {
			if t[j] != p[j] {
				wrong++
			}
		}
		return float64(wrong) / float64(len(t))
	})
}

// ExactMatch is the fraction of instances whose label set is predicted exactly.
func ExactMatch(truth, pred *matrix.Boolean) (float64, error) {
	return perInstanceMean("ExactMatch", truth, pred, func(t, p []bool) float64 {
		for j := range t {
			if t[j] != p[j] {
				return 0
			}
		}
		return 1
	})
}

// JaccardAccuracy is the mean |truth ∩ pred| / |truth ∪ pred| per instance.
// An instance with both sets empty scores 1.
func JaccardAccuracy(truth, pred *matrix.Boolean) (float64, error) {
	return perInstanceMean("JaccardAccuracy", truth, pred, func(t, p []bool) float64 {
		inter, union := 0, 0
		for j := range t {
			if t[j] && p[j] {
				inter++
			}
			if t[j] || p[j] {
				union++
			}
		}
		if union == 0 {
			return 1
		}
		return float64(inter) / float64(union)
	})
}

func perInstanceMean(tag string, truth, pred *matrix.Boolean, score func(t, p []bool) float64) (float64, error) {
	if err := matrix.ValidateSameShape(truth, pred); err != nil {
		return 0, fmt.Errorf("%s: %w", tag, err)
	}
	values := make([]float64, truth.Rows())
	var t, p []bool
	var err error
	for i := range values {
		if t, err = truth.Row(i); err != nil {
			return 0, fmt.Errorf("%s: %w", tag, err)
		}
		if p, err = pred.Row(i); err != nil {
			return 0, fmt.Errorf("%s: %w", tag, err)
		}
		values[i] = score(t, p)
	}

	return stat.Mean(values, nil), nil
}
