// SPDX-License-Identifier: MIT

package bowker

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/mzaikin/symmetria/freqtab"
)

// oneClampTol is the tolerance for rounding a floating-point-fuzzed p-value
// up to exactly 1. It must stay far tighter than the gap 2^(−S) between 1
// and the largest true sub-1 p-value on any table small enough to enumerate.
const oneClampTol = 1e-12

// Exact runs the exact Bowker test of symmetry on t.
//
// Implementation:
//   - Stage 1 (Init): validate the table reference and Options.
//   - Stage 2 (Margins): collect non-degenerate pairs, derive S = Σ margin
//     and the product-space size Π(margin+1); enforce MaxPermutations.
//   - Stage 3 (Observed): score the observed assignment through the same
//     candidate routine used during enumeration, so the reflexive tie
//     (stat ≥ obs on the observed table itself) is bit-exact.
//   - Stage 4 (Scaling): derive the normalization from S and Precision.
//   - Stage 5 (Enumerate): fold exp(logWeight − factorLn2) over every
//     candidate with statistic ≥ observed, sequentially or across Workers
//     disjoint index ranges with an ordered reduction.
//   - Stage 6 (Finalize): divide by 2^(S−factor); clamp near-1 fuzz to 1;
//     a non-positive result surfaces ErrInsufficientPrecision with the
//     diagnostic counts still populated.
//
// Behavior highlights:
//   - Ties count toward the p-value (stat ≥ obs, inclusive): the observed
//     assignment always qualifies, so a computable p-value is always > 0.
//   - Deterministic: fixed enumeration order, worker partials added in
//     worker order; no randomness, no retries.
//
// Errors: ErrNilTable, ErrBadPrecision, ErrBadWorkers, ErrSpaceTooLarge,
// ErrInsufficientPrecision.
//
// Complexity: time O(P·Q) where Q = Π(margin+1) and P = #pairs; memory
// O(P) per worker.
func Exact(t *freqtab.FrequencyTable, opts Options) (Result, error) {
	// Stage 1 — validate inputs before any computation.
	if t == nil {
		return Result{}, ErrNilTable
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	// Stage 2 — derive pairs, S, and the enumeration size.
	pairs := collectPairs(t)
	var weightedExp int64
	for idx := range pairs {
		weightedExp += pairs[idx].margin
	}
	size, ok := spaceSize(pairs)
	if !ok || (opts.MaxPermutations > 0 && size > opts.MaxPermutations) {
		return Result{}, ErrSpaceTooLarge
	}

	// Stage 3 — observed statistic.
	obs := statisticFor(observedAssignment(pairs), pairs)

	// Stage 4 — scaling parameters from S and the precision bound.
	sc := newScaling(weightedExp, opts.Precision)

	// Stage 5 — enumerate and accumulate the qualifying weight mass.
	workers := opts.Workers
	if workers < 2 || size < uint64(workers) {
		workers = 1
	}
	var sum float64
	if workers == 1 {
		sum = accumulate(pairs, obs, sc, 0, size)
	} else {
		sum = accumulateParallel(pairs, obs, sc, size, workers)
	}

	// Stage 6 — finalize.
	res := Result{
		Statistic:        obs,
		Permutations:     size,
		WeightedExponent: weightedExp,
	}
	p := sc.normalize(sum)
	if p <= 0 || math.IsNaN(p) {
		return res, ErrInsufficientPrecision
	}
	if p > 1 || 1-p < oneClampTol {
		p = 1 // fuzz correction only; true sub-1 values sit far below the tolerance
	}
	res.PValue = p

	return res, nil
}

// accumulate folds the qualifying weight mass over the linear index range
// [lo, hi) of the permutation space. Each candidate is scored first (cheap
// integer deltas); the log-gamma weight is only evaluated for qualifiers.
// O((hi−lo)·#pairs) time, O(#pairs) space.
func accumulate(pairs []cellPair, obs float64, sc scaling, lo, hi uint64) float64 {
	if lo >= hi {
		return 0
	}
	// No non-degenerate pairs: the single empty assignment qualifies with
	// weight 1 (log 0).
	if len(pairs) == 0 {
		return math.Exp(-sc.factorLn2)
	}

	od := newOdometer(pairLimits(pairs))
	od.seek(lo)

	var sum float64
	for n := lo; n < hi; n++ {
		if statisticFor(od.digits, pairs) >= obs {
			sum += math.Exp(logWeight(od.digits, pairs) - sc.factorLn2)
		}
		od.advance()
	}

	return sum
}

// accumulateParallel splits [0, size) into workers contiguous chunks, folds
// each on its own goroutine, and adds the partial sums in worker order so
// the reduction is independent of goroutine scheduling.
func accumulateParallel(pairs []cellPair, obs float64, sc scaling, size uint64, workers int) float64 {
	partials := make([]float64, workers)
	chunk := size / uint64(workers)
	rem := size % uint64(workers)

	var g errgroup.Group
	var lo uint64
	for w := 0; w < workers; w++ {
		hi := lo + chunk
		if uint64(w) < rem {
			hi++ // spread the remainder over the first workers
		}
		w := w             // per-worker copy; required under the go1.21 loop scoping
		wlo, whi := lo, hi // per-worker copies; lo keeps moving below
		g.Go(func() error {
			partials[w] = accumulate(pairs, obs, sc, wlo, whi)

			return nil
		})
		lo = hi
	}
	_ = g.Wait() // workers cannot fail; Wait only synchronizes

	var sum float64
	for _, p := range partials {
		sum += p
	}

	return sum
}
