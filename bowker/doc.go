// SPDX-License-Identifier: MIT

// Package bowker computes an exact (permutation-based) p-value for the
// Bowker test of symmetry on a square K×K contingency table. For K=2 the
// test reduces to the exact McNemar test.
//
// 🚀 What does it test?
//
//	Whether the joint distribution of the row and column variables is
//	symmetric: P(i,j) = P(j,i) for all i ≠ j. Unlike the large-sample
//	chi-square approximation, the exact test remains valid on sparse tables.
//
// Algorithm outline:
//
//  1. Collect every unordered off-diagonal pair (i<j) with a positive
//     margin T = F(i,j)+F(j,i); pairs with T = 0 are degenerate and drop
//     out entirely.
//  2. Compute the observed statistic Σ (F(i,j)−F(j,i))² / T.
//  3. Enumerate the Cartesian product of per-pair splits f ∈ [0, T]
//     lazily with a mixed-radix odometer (memory O(#pairs), never the
//     product size).
//  4. For every candidate whose statistic is ≥ the observed one
//     (inclusive — ties count toward the p-value), accumulate its
//     combinatorial weight Π C(T, f), carried in natural-log space via
//     the log-gamma function.
//  5. Normalize by 2^S, S = Σ T, rescaling by a power of two derived from
//     the precision bound k so intermediate sums stay representable.
//
// Cost: time Π(T+1) over non-degenerate pairs — exponential in the
// off-diagonal mass. Options.MaxPermutations rejects infeasible spaces
// before enumeration; Options.Workers splits the index space across
// goroutines with a deterministic reduction.
//
// Usage:
//
//	res, err := bowker.Exact(table, bowker.DefaultOptions())
//	if errors.Is(err, bowker.ErrInsufficientPrecision) {
//	    // diagnostics in res are valid; the p-value is not
//	}
//
// Results are deterministic: fixed enumeration order, fixed reduction
// order, no randomness.
package bowker
