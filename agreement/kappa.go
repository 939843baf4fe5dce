// SPDX-License-Identifier: MIT

package agreement

import (
	"errors"

	"github.com/mzaikin/symmetria/freqtab"
)

var (
	// ErrNilTable indicates a nil frequency table.
	ErrNilTable = errors.New("agreement: nil frequency table")
	// ErrEmptyTable indicates a table with zero total count.
	ErrEmptyTable = errors.New("agreement: table has no observations")
	// ErrDegenerateExpected indicates chance agreement of exactly 1
	// (all mass in one level pair), leaving kappa undefined.
	ErrDegenerateExpected = errors.New("agreement: expected agreement is 1; kappa undefined")
)

// Kappa holds Cohen's kappa and the agreement proportions it is built from.
type Kappa struct {
	// Observed is the raw proportion of agreement Σ F(i,i) / N.
	Observed float64
	// Expected is the chance agreement Σ row(i)·col(i) / N².
	Expected float64
	// Value is (Observed − Expected) / (1 − Expected).
	Value float64
}

// Percent returns the observed proportion of agreement: the diagonal mass
// divided by the table total.
//
// Errors: ErrNilTable, ErrEmptyTable. O(K²).
func Percent(t *freqtab.FrequencyTable) (float64, error) {
	if t == nil {
		return 0, ErrNilTable
	}
	total := t.Total()
	if total == 0 {
		return 0, ErrEmptyTable
	}

	var diag int64
	k := t.Order()
	for i := 0; i < k; i++ {
		v, _ := t.Count(i, i) // in range by construction
		diag += v
	}

	return float64(diag) / float64(total), nil
}

// CohenKappa returns Cohen's kappa for t, with the observed and expected
// agreement proportions used to derive it.
//
// Errors: ErrNilTable, ErrEmptyTable, ErrDegenerateExpected. O(K²).
func CohenKappa(t *freqtab.FrequencyTable) (Kappa, error) {
	if t == nil {
		return Kappa{}, ErrNilTable
	}
	total := t.Total()
	if total == 0 {
		return Kappa{}, ErrEmptyTable
	}

	k := t.Order()
	rows := make([]int64, k)
	cols := make([]int64, k)
	var diag int64
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			v, _ := t.Count(i, j)
			rows[i] += v
			cols[j] += v
			if i == j {
				diag += v
			}
		}
	}

	n := float64(total)
	po := float64(diag) / n
	var pe float64
	for i := 0; i < k; i++ {
		pe += float64(rows[i]) * float64(cols[i])
	}
	pe /= n * n

	if pe == 1 {
		return Kappa{Observed: po, Expected: pe}, ErrDegenerateExpected
	}

	return Kappa{Observed: po, Expected: pe, Value: (po - pe) / (1 - pe)}, nil
}
