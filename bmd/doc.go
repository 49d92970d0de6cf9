// Package bmd factors a binary label matrix into two boolean matrices.
//
// Given labels C (N×L), a target rank size and a frequency threshold τ,
// a Decomposer returns compressed S (N×size) and upper B (size×L) such
// that S ⊗ B (boolean product) approximates C.
//
// The reference strategy, Asso, works in two phases:
//
//	1. Association: candidate basis rows are the rows of the L×L matrix
//	   A[i][j] = conf(i→j) ≥ τ, where conf(i→j) = |c_i ∧ c_j| / |c_i|.
//	2. Greedy cover: for each latent label, pick the candidate whose
//	   addition yields the largest weighted gain (bonus per newly covered 1,
//	   penalty per newly covered 0) and let every instance with a positive
//	   gain use it.
//
// Lower τ admits rarer co-occurrence patterns into a single basis row, so
// fewer latent labels cover more of C at the price of more false ones.
//
// Determinism: loops run in fixed index order, ties go to the lowest
// candidate index, and nothing is random. Identical inputs always produce
// identical factors.
package bmd
