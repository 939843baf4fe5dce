// SPDX-License-Identifier: MIT

package bowker

import "math"

// odometer enumerates the Cartesian product of the per-pair split ranges
// [0, margin] as a mixed-radix counter: digit idx runs over radix
// limits[idx]+1, least-significant digit first. Memory stays O(#pairs)
// regardless of the product size, each joint assignment is visited exactly
// once, and seek allows restarting from any linear index — the hook used to
// partition the space across workers.
type odometer struct {
	limits []int64 // inclusive upper bound per digit (the pair's margin)
	digits []int64 // current assignment, digits[idx] ∈ [0, limits[idx]]
}

// newOdometer returns an odometer positioned at the all-zero assignment.
func newOdometer(limits []int64) *odometer {
	return &odometer{limits: limits, digits: make([]int64, len(limits))}
}

// seek positions the odometer at mixed-radix linear index n.
// Precondition: n < Π(limits+1). O(#digits).
func (o *odometer) seek(n uint64) {
	for idx := range o.limits {
		radix := uint64(o.limits[idx]) + 1
		o.digits[idx] = int64(n % radix)
		n /= radix
	}
}

// advance steps to the next assignment, carrying like an odometer wheel.
// Returns false exactly once, when the last assignment wraps back to zero.
// Amortized O(1).
func (o *odometer) advance() bool {
	for idx := range o.digits {
		if o.digits[idx] < o.limits[idx] {
			o.digits[idx]++

			return true
		}
		o.digits[idx] = 0
	}

	return false
}

// spaceSize returns Π(margin+1) over pairs (1 when pairs is empty) and
// whether the product fits in uint64. O(#pairs).
func spaceSize(pairs []cellPair) (uint64, bool) {
	size := uint64(1)
	for idx := range pairs {
		radix := uint64(pairs[idx].margin) + 1
		if size > math.MaxUint64/radix {
			return 0, false
		}
		size *= radix
	}

	return size, true
}

// pairLimits returns the odometer limits (margins) for pairs. O(#pairs).
func pairLimits(pairs []cellPair) []int64 {
	limits := make([]int64, len(pairs))
	for idx := range pairs {
		limits[idx] = pairs[idx].margin
	}

	return limits
}
