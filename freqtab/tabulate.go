// SPDX-License-Identifier: MIT

package freqtab

import "math"

// Case is one case-level record: a (row, col) level pair observed with a
// replication weight. Weight must be a non-negative finite integer value;
// a zero weight drops the record from tabulation.
type Case struct {
	Row, Col int
	Weight   float64
}

// Obs returns an unweighted case (Weight == 1) for the given level pair.
func Obs(row, col int) Case {
	return Case{Row: row, Col: col, Weight: 1}
}

// Tabulate aggregates case-level records into an order×order FrequencyTable.
//
// Each surviving case adds its integer Weight to cell (Row, Col); level
// combinations never observed stay at zero, so the result is always square.
// When keep is non-nil it acts as a record filter: cases for which keep
// returns false are skipped before any validation of their levels or weight.
//
// Errors: ErrOrderOutOfRange, ErrLevelOutOfRange, ErrBadWeight.
// Complexity: O(len(cases) + order²) time, O(order²) space.
func Tabulate(cases []Case, order int, keep func(Case) bool) (*FrequencyTable, error) {
	if order < MinOrder || order > MaxOrder {
		return nil, ErrOrderOutOfRange
	}

	flat := make([]int64, order*order)
	for _, c := range cases {
		if keep != nil && !keep(c) {
			continue
		}
		if c.Row < 0 || c.Row >= order || c.Col < 0 || c.Col >= order {
			return nil, ErrLevelOutOfRange
		}
		w := c.Weight
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 || w != math.Trunc(w) {
			return nil, ErrBadWeight
		}
		flat[c.Row*order+c.Col] += int64(w)
	}

	return &FrequencyTable{order: order, counts: flat}, nil
}
