// SPDX-License-Identifier: MIT

package bowker

import "github.com/mzaikin/symmetria/freqtab"

// Statistic returns the observed Bowker chi-square statistic for t:
// Σ over pairs i<j with margin > 0 of (F(i,j)−F(j,i))² / margin.
// Zero-margin pairs are skipped, which also rules out division by zero.
//
// Pure and side-effect free. O(K²) time, O(K²) transient space for the pair
// list.
//
// Errors: ErrNilTable.
func Statistic(t *freqtab.FrequencyTable) (float64, error) {
	if t == nil {
		return 0, ErrNilTable
	}
	pairs := collectPairs(t)

	return statisticFor(observedAssignment(pairs), pairs), nil
}

// statisticFor returns the Bowker statistic of candidate assignment f, where
// f[idx] is the hypothetical F(i,j) of pairs[idx] and the mirrored cell holds
// margin−f[idx]. The per-pair term (f − (margin−f))² / margin is computed as
// (2f − margin)² / margin with integer deltas, so the observed assignment
// reproduces the observed statistic exactly.
//
// Precondition: len(f) == len(pairs) and every pair has margin > 0.
// O(len(pairs)).
func statisticFor(f []int64, pairs []cellPair) float64 {
	var sum float64
	for idx := range pairs {
		d := 2*f[idx] - pairs[idx].margin
		sum += float64(d*d) / float64(pairs[idx].margin)
	}

	return sum
}
