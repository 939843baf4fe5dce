package freqtab_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzaikin/symmetria/freqtab"
)

// TestTabulate_Unweighted verifies plain aggregation with zero padding for
// unobserved level combinations.
func TestTabulate_Unweighted(t *testing.T) {
	cases := []freqtab.Case{
		freqtab.Obs(0, 1),
		freqtab.Obs(0, 1),
		freqtab.Obs(2, 0),
	}
	tab, err := freqtab.Tabulate(cases, 3, nil)
	require.NoError(t, err)

	v, _ := tab.Count(0, 1)
	assert.Equal(t, int64(2), v)
	v, _ = tab.Count(2, 0)
	assert.Equal(t, int64(1), v)
	v, _ = tab.Count(1, 2)
	assert.Equal(t, int64(0), v, "unobserved combinations pad with zero")
	assert.Equal(t, int64(3), tab.Total())
}

// TestTabulate_Weighted verifies integer replication weights, including the
// zero weight dropping a record.
func TestTabulate_Weighted(t *testing.T) {
	cases := []freqtab.Case{
		{Row: 0, Col: 1, Weight: 5},
		{Row: 1, Col: 0, Weight: 0}, // weight 0 drops the record
	}
	tab, err := freqtab.Tabulate(cases, 2, nil)
	require.NoError(t, err)

	v, _ := tab.Count(0, 1)
	assert.Equal(t, int64(5), v)
	v, _ = tab.Count(1, 0)
	assert.Equal(t, int64(0), v)
}

// TestTabulate_Filter verifies the keep predicate runs before level/weight
// validation, mirroring record filtering in tabulation pipelines.
func TestTabulate_Filter(t *testing.T) {
	cases := []freqtab.Case{
		freqtab.Obs(0, 1),
		{Row: 99, Col: 99, Weight: 1}, // invalid, but filtered out below
	}
	keep := func(c freqtab.Case) bool { return c.Row < 2 }

	tab, err := freqtab.Tabulate(cases, 2, keep)
	require.NoError(t, err, "filtered records must not be validated")
	assert.Equal(t, int64(1), tab.Total())
}

// TestTabulate_Errors verifies the sentinel for each invalid input.
func TestTabulate_Errors(t *testing.T) {
	_, err := freqtab.Tabulate(nil, 1, nil)
	assert.ErrorIs(t, err, freqtab.ErrOrderOutOfRange)

	_, err = freqtab.Tabulate([]freqtab.Case{freqtab.Obs(2, 0)}, 2, nil)
	assert.ErrorIs(t, err, freqtab.ErrLevelOutOfRange)

	_, err = freqtab.Tabulate([]freqtab.Case{{Row: 0, Col: 1, Weight: -1}}, 2, nil)
	assert.ErrorIs(t, err, freqtab.ErrBadWeight)

	_, err = freqtab.Tabulate([]freqtab.Case{{Row: 0, Col: 1, Weight: 1.5}}, 2, nil)
	assert.ErrorIs(t, err, freqtab.ErrBadWeight)

	_, err = freqtab.Tabulate([]freqtab.Case{{Row: 0, Col: 1, Weight: math.Inf(1)}}, 2, nil)
	assert.ErrorIs(t, err, freqtab.ErrBadWeight)
}
