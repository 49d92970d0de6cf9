// Package dataset holds multi-label data in the column layout the label
// transformer and its scorer share: label columns first, feature columns
// after, and the split index (NumLabels) between them.
//
// Cells are float64; a missing cell is NaN. Label cells must be exactly 0
// or 1 when they are read as a boolean label matrix.
package dataset
