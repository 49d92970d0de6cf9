// SPDX-License-Identifier: MIT

package bmd

import (
	"fmt"

	"github.com/katalvlaran/bmad/matrix"
)

// Association builds the L×L candidate matrix of labels (N×L):
//
//	A[i][j] = support(i) > 0 && co(i,j) >= threshold * support(i)
//
// i.e. the confidence of the rule "label i ⇒ label j" reaches threshold.
// Row i is the basis candidate seeded by label i; a label that never occurs
// yields an all-false row. The diagonal is true for every occurring label.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrInvalidThreshold.
//
// Complexity:
//   - Time O(N*L²) worst case, Space O(L²).
func Association(labels *matrix.Boolean, threshold float64) (*matrix.Boolean, error) {
	if err := matrix.ValidateBooleanNotNil(labels); err != nil {
		return nil, fmt.Errorf("Association: %w", err)
	}
	if err := ValidateThreshold(threshold); err != nil {
		return nil, fmt.Errorf("Association: %w", err)
	}
	co, err := matrix.CoOccurrence(labels)
	if err != nil {
		return nil, fmt.Errorf("Association: %w", err)
	}

	return matrix.NewBooleanFromRows(associationRows(co, threshold))
}

// associationRows evaluates the confidence rule on a co-occurrence table.
func associationRows(co [][]int, threshold float64) [][]bool {
	n := len(co)
	rows := make([][]bool, n)
	var i, j int
	var support float64
	for i = 0; i < n; i++ {
		rows[i] = make([]bool, n)
		support = float64(co[i][i])
		if support == 0 {
			continue // label i never occurs: no rule has it as antecedent
		}
		for j = 0; j < n; j++ {
			rows[i][j] = float64(co[i][j]) >= threshold*support
		}
	}

	return rows
}
