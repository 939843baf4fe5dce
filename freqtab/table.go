// SPDX-License-Identifier: MIT

package freqtab

import "math"

// Order bounds for a FrequencyTable. MaxOrder is a tractability bound for
// exact enumeration, not a mathematical limit.
const (
	MinOrder = 2
	MaxOrder = 9
)

// FrequencyTable is an immutable square matrix of non-negative integer
// counts. The zero value is not usable; construct via New, FromFloats or
// Tabulate.
type FrequencyTable struct {
	order  int
	counts []int64 // row-major, len == order*order
}

// New validates counts and wraps them in a FrequencyTable.
//
// Validation order: shape first (every row must have len(counts) entries),
// then order bounds, then cell domain (non-negative). The input slices are
// copied; later mutation of counts does not affect the table.
//
// Errors: ErrNonSquare, ErrOrderOutOfRange, ErrNegativeCount.
// Complexity: O(K²) time and space.
func New(counts [][]int64) (*FrequencyTable, error) {
	k := len(counts)
	for i := 0; i < k; i++ {
		if len(counts[i]) != k {
			return nil, ErrNonSquare
		}
	}
	if k < MinOrder || k > MaxOrder {
		return nil, ErrOrderOutOfRange
	}

	flat := make([]int64, k*k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			v := counts[i][j]
			if v < 0 {
				return nil, ErrNegativeCount
			}
			flat[i*k+j] = v
		}
	}

	return &FrequencyTable{order: k, counts: flat}, nil
}

// FromFloats validates a float-valued count matrix and wraps it in a
// FrequencyTable. Useful when counts arrive from parsers or numeric
// pipelines that only speak float64.
//
// Beyond the checks in New, every entry must be finite and integer-valued.
//
// Errors: ErrNonSquare, ErrOrderOutOfRange, ErrNonFiniteCount,
// ErrNonIntegerCount, ErrNegativeCount.
// Complexity: O(K²) time and space.
func FromFloats(values [][]float64) (*FrequencyTable, error) {
	k := len(values)
	for i := 0; i < k; i++ {
		if len(values[i]) != k {
			return nil, ErrNonSquare
		}
	}
	if k < MinOrder || k > MaxOrder {
		return nil, ErrOrderOutOfRange
	}

	flat := make([]int64, k*k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			v := values[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNonFiniteCount
			}
			if v != math.Trunc(v) {
				return nil, ErrNonIntegerCount
			}
			if v < 0 {
				return nil, ErrNegativeCount
			}
			flat[i*k+j] = int64(v)
		}
	}

	return &FrequencyTable{order: k, counts: flat}, nil
}

// Order returns K, the number of row (and column) levels.
func (t *FrequencyTable) Order() int {
	return t.order
}

// Count returns the observed count F(i, j).
//
// Errors: ErrNilTable, ErrIndexOutOfRange.
func (t *FrequencyTable) Count(i, j int) (int64, error) {
	if t == nil {
		return 0, ErrNilTable
	}
	if i < 0 || i >= t.order || j < 0 || j >= t.order {
		return 0, ErrIndexOutOfRange
	}

	return t.counts[i*t.order+j], nil
}

// Total returns the sum of all cell counts (the table's N).
func (t *FrequencyTable) Total() int64 {
	var n int64
	for _, v := range t.counts {
		n += v
	}

	return n
}

// Transpose returns a new table with the row and column variables swapped.
// The receiver is left untouched.
func (t *FrequencyTable) Transpose() *FrequencyTable {
	k := t.order
	flat := make([]int64, k*k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			flat[j*k+i] = t.counts[i*k+j]
		}
	}

	return &FrequencyTable{order: k, counts: flat}
}
