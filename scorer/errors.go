// SPDX-License-Identifier: MIT

package scorer

import "errors"

var (
	// ErrNotTrained is returned by Score before a successful Train.
	ErrNotTrained = errors.New("scorer: not trained")

	// ErrInvalidK is returned for a neighbour count below 1.
	ErrInvalidK = errors.New("scorer: k must be >= 1")
)
