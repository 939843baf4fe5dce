// SPDX-License-Identifier: MIT

package bowker

import (
	"math"
	"math/bits"
)

// scaling holds the normalization derived once from S = Σ margin and the
// precision bound k. The unnormalized qualifying sum can need up to 2^S
// representable states; factor rescales intermediate terms by a power of two
// close to S so they stay within floating range, and the final division by
// 2^(S−factor) restores the true normalization. When S < 2^k no rescaling
// happens at all (adjust = 0 ⇒ factor = 0), so the safety valve is exactly
// neutral on small inputs.
type scaling struct {
	weightedExp int64   // S
	adjust      int     // rescaling exponent; 0 means no rescaling
	factor      float64 // S × (1 − 2^(−adjust))
	factorLn2   float64 // ln(2) × factor, subtracted from log weights
}

// newScaling derives the scaling parameters from S and the precision bound.
//
//   - S < 2^k:  adjust = 0.
//   - otherwise: adjust = floor(log2(S)) − k + 1, computed with an exact
//     integer bit-length so no float rounding can shift the exponent.
//
// Precondition: weightedExp ≥ 0, precision ≥ MinPrecision. O(1).
func newScaling(weightedExp int64, precision int) scaling {
	sc := scaling{weightedExp: weightedExp}
	if weightedExp > 0 && float64(weightedExp) >= math.Exp2(float64(precision)) {
		// floor(log2(S)) == bits.Len64(S) − 1 for S > 0.
		sc.adjust = bits.Len64(uint64(weightedExp)) - precision
	}
	sc.factor = float64(weightedExp) * (1 - math.Exp2(-float64(sc.adjust)))
	sc.factorLn2 = math.Ln2 * sc.factor

	return sc
}

// normalize divides the accumulated (rescaled) sum by 2^(S−factor),
// producing the final p-value. With adjust > 0 the residual exponent
// S−factor = S·2^(−adjust) lies in [2^(k−1), 2^k), which is finite in
// binary64 for k ≤ 10. O(1).
func (sc scaling) normalize(sum float64) float64 {
	return sum / math.Exp2(float64(sc.weightedExp)-sc.factor)
}
