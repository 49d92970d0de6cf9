// SPDX-License-Identifier: MIT

package mlc

import (
	"errors"

	"github.com/katalvlaran/bmad/bmd"
)

var (
	// ErrNotFitted is returned by model-dependent calls before a successful fit.
	ErrNotFitted = errors.New("mlc: transformer is not fitted")

	// ErrInvalidSize is the decomposition size error, shared with bmd.
	ErrInvalidSize = bmd.ErrInvalidSize

	// ErrInvalidThreshold is the decomposition threshold error, shared with bmd.
	ErrInvalidThreshold = bmd.ErrInvalidThreshold

	// ErrScoreLength is returned when a scorer yields a vector whose length
	// differs from the fitted size.
	ErrScoreLength = errors.New("mlc: scorer returned wrong number of scores")
)
