// Package matrix offers the dense containers behind label compression.
//
// The matrix package provides:
//
//   - Boolean, a row-major matrix over {false, true} with the AND-OR
//     BooleanProduct (C[i,j] = OR_k A[i,k] AND B[k,j]) and the counting
//     helpers a boolean matrix decomposition needs (ColumnSupport,
//     CoOccurrence, Difference).
//   - Dense, a row-major float64 matrix used for feature blocks, latent-label
//     placeholders (NaN = missing) and score rows, with Induced and HStack
//     for splitting and merging column ranges.
//   - Conversions between the two domains (BooleanFromDense, DenseFromBoolean).
//
// Every public accessor validates its indices and returns a sentinel error
// (ErrOutOfRange, ErrBadShape, ...) instead of panicking. Kernels never
// mutate their operands.
package matrix
