// SPDX-License-Identifier: MIT

package bowker

import "math"

// logChoose returns ln C(n, x) through the log-gamma function:
// lnΓ(n+1) − lnΓ(x+1) − lnΓ(n−x+1). Direct factorial arithmetic would
// overflow float64 near n = 170 and lose precision long before that, so the
// log-gamma form is used at every size, not only for large margins.
//
// Precondition: 0 ≤ x ≤ n. O(1).
func logChoose(n, x int64) float64 {
	ln, _ := math.Lgamma(float64(n + 1))
	lx, _ := math.Lgamma(float64(x + 1))
	lr, _ := math.Lgamma(float64(n - x + 1))

	return ln - lx - lr
}

// logWeight returns the natural log of the combinatorial weight of candidate
// assignment f: Σ ln C(margin, f) over pairs. Pair reassignments are
// independent, so weights multiply and their logs add. An empty pair list
// yields 0 (weight 1). O(len(pairs)).
func logWeight(f []int64, pairs []cellPair) float64 {
	var sum float64
	for idx := range pairs {
		sum += logChoose(pairs[idx].margin, f[idx])
	}

	return sum
}
