// SPDX-License-Identifier: MIT

package bowker

import "github.com/mzaikin/symmetria/freqtab"

// Result holds the outcome of the exact symmetry test.
type Result struct {
	// Statistic is the observed Bowker chi-square statistic:
	// Σ over pairs i<j with positive margin of (F(i,j)−F(j,i))² / margin.
	Statistic float64

	// PValue is the exact p-value in (0, 1]. Only meaningful when Exact
	// returned a nil error; on ErrInsufficientPrecision it is zero and must
	// not be read as a probability.
	PValue float64

	// Permutations is the number of combinatorially distinct reassignments
	// enumerated: Π(margin+1) over non-degenerate pairs (1 if none).
	Permutations uint64

	// WeightedExponent is S = Σ margin over non-degenerate pairs; the number
	// of weighted permutations underlying the reference distribution is 2^S.
	WeightedExponent int64
}

// cellPair is one unordered off-diagonal pair (i<j) with a positive margin.
// margin == fij+fji is the invariant preserved across all reassignments of
// the pair.
type cellPair struct {
	i, j   int
	fij    int64
	fji    int64
	margin int64
}

// collectPairs extracts the non-degenerate cell pairs from t in fixed
// upper-triangle (i→j) order. Pairs with margin 0 contribute nothing to the
// statistic, the enumeration, or the weights, and are excluded here once so
// no later stage needs a degenerate branch. O(K²).
func collectPairs(t *freqtab.FrequencyTable) []cellPair {
	k := t.Order()
	pairs := make([]cellPair, 0, k*(k-1)/2)
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			fij, _ := t.Count(i, j) // indices are in range by construction
			fji, _ := t.Count(j, i)
			if fij+fji == 0 {
				continue
			}
			pairs = append(pairs, cellPair{i: i, j: j, fij: fij, fji: fji, margin: fij + fji})
		}
	}

	return pairs
}

// observedAssignment returns the observed F(i,j) of every pair as a
// candidate vector, so the observed table can be scored through the same
// code path as enumerated candidates (bit-exact tie comparison).
func observedAssignment(pairs []cellPair) []int64 {
	f := make([]int64, len(pairs))
	for idx := range pairs {
		f[idx] = pairs[idx].fij
	}

	return f
}
