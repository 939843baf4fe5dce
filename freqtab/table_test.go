package freqtab_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzaikin/symmetria/freqtab"
)

// TestNew_Valid verifies that a well-formed count matrix round-trips through
// the accessors.
func TestNew_Valid(t *testing.T) {
	tab, err := freqtab.New([][]int64{
		{1, 2},
		{3, 4},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, tab.Order())
	assert.Equal(t, int64(10), tab.Total())

	v, err := tab.Count(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)

	v, err = tab.Count(1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)
}

// TestNew_NonSquare verifies ragged input fails with ErrNonSquare.
func TestNew_NonSquare(t *testing.T) {
	_, err := freqtab.New([][]int64{
		{1, 2},
		{3},
	})
	assert.ErrorIs(t, err, freqtab.ErrNonSquare)

	// 3 rows of width 2 is rectangular, not square.
	_, err = freqtab.New([][]int64{
		{1, 2},
		{3, 4},
		{5, 6},
	})
	assert.ErrorIs(t, err, freqtab.ErrNonSquare)
}

// TestNew_OrderBounds verifies the [MinOrder, MaxOrder] gate.
func TestNew_OrderBounds(t *testing.T) {
	_, err := freqtab.New([][]int64{{7}})
	assert.ErrorIs(t, err, freqtab.ErrOrderOutOfRange, "1×1 is below MinOrder")

	_, err = freqtab.New(nil)
	assert.ErrorIs(t, err, freqtab.ErrOrderOutOfRange, "empty input is below MinOrder")

	// 10×10 exceeds MaxOrder.
	big := make([][]int64, 10)
	for i := range big {
		big[i] = make([]int64, 10)
	}
	_, err = freqtab.New(big)
	assert.ErrorIs(t, err, freqtab.ErrOrderOutOfRange)
}

// TestNew_NegativeCount verifies negative cells fail with ErrNegativeCount.
func TestNew_NegativeCount(t *testing.T) {
	_, err := freqtab.New([][]int64{
		{0, -1},
		{2, 0},
	})
	assert.ErrorIs(t, err, freqtab.ErrNegativeCount)
}

// TestFromFloats_Domain verifies the extra float-side domain checks.
func TestFromFloats_Domain(t *testing.T) {
	_, err := freqtab.FromFloats([][]float64{
		{0, math.NaN()},
		{1, 0},
	})
	assert.ErrorIs(t, err, freqtab.ErrNonFiniteCount, "NaN must be rejected")

	_, err = freqtab.FromFloats([][]float64{
		{0, math.Inf(1)},
		{1, 0},
	})
	assert.ErrorIs(t, err, freqtab.ErrNonFiniteCount, "+Inf must be rejected")

	_, err = freqtab.FromFloats([][]float64{
		{0, 1.5},
		{1, 0},
	})
	assert.ErrorIs(t, err, freqtab.ErrNonIntegerCount, "fractional counts must be rejected")

	_, err = freqtab.FromFloats([][]float64{
		{0, -2},
		{1, 0},
	})
	assert.ErrorIs(t, err, freqtab.ErrNegativeCount)

	tab, err := freqtab.FromFloats([][]float64{
		{0, 8},
		{1, 0},
	})
	require.NoError(t, err)
	v, _ := tab.Count(0, 1)
	assert.Equal(t, int64(8), v)
}

// TestCount_Bounds verifies index validation on the accessor.
func TestCount_Bounds(t *testing.T) {
	tab, err := freqtab.New([][]int64{
		{0, 1},
		{2, 0},
	})
	require.NoError(t, err)

	_, err = tab.Count(-1, 0)
	assert.ErrorIs(t, err, freqtab.ErrIndexOutOfRange)
	_, err = tab.Count(0, 2)
	assert.ErrorIs(t, err, freqtab.ErrIndexOutOfRange)

	var nilTab *freqtab.FrequencyTable
	_, err = nilTab.Count(0, 0)
	assert.ErrorIs(t, err, freqtab.ErrNilTable)
}

// TestTranspose verifies the row/column swap and that the receiver is
// untouched.
func TestTranspose(t *testing.T) {
	tab, err := freqtab.New([][]int64{
		{0, 8, 0},
		{0, 0, 1},
		{0, 0, 0},
	})
	require.NoError(t, err)

	tr := tab.Transpose()
	v, _ := tr.Count(1, 0)
	assert.Equal(t, int64(8), v, "transpose must mirror (0,1) into (1,0)")
	v, _ = tr.Count(0, 1)
	assert.Equal(t, int64(0), v)

	// Receiver unchanged.
	v, _ = tab.Count(0, 1)
	assert.Equal(t, int64(8), v)

	assert.Equal(t, tab.Total(), tr.Total(), "transposition preserves total mass")
}
