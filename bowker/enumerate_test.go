package bowker

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOdometer_Exhaustive verifies the counter visits exactly Π(limit+1)
// distinct assignments before wrapping.
func TestOdometer_Exhaustive(t *testing.T) {
	limits := []int64{2, 1, 3} // product space 3·2·4 = 24
	od := newOdometer(limits)

	seen := make(map[string]struct{})
	for ok := true; ok; ok = od.advance() {
		key := fmt.Sprint(od.digits)
		_, dup := seen[key]
		require.False(t, dup, "assignment %s visited twice", key)
		seen[key] = struct{}{}
	}

	assert.Len(t, seen, 24, "odometer must cover the full product space")
}

// TestOdometer_Seek verifies that seek(n) lands on the same assignment as
// advancing n times from zero.
func TestOdometer_Seek(t *testing.T) {
	limits := []int64{3, 2, 2}

	walker := newOdometer(limits)
	for n := uint64(0); n < 4*3*3; n++ {
		seeker := newOdometer(limits)
		seeker.seek(n)
		assert.Equal(t, walker.digits, seeker.digits, "mismatch at linear index %d", n)
		walker.advance()
	}
}

// TestOdometer_SingleWrap verifies advance returns false exactly once per
// full cycle.
func TestOdometer_SingleWrap(t *testing.T) {
	od := newOdometer([]int64{1, 1})

	steps := 0
	for ok := true; ok; ok = od.advance() {
		steps++
	}
	assert.Equal(t, 4, steps)
	assert.Equal(t, []int64{0, 0}, od.digits, "wrap must return to the origin")
}

// TestSpaceSize verifies the product formula and its overflow guard.
func TestSpaceSize(t *testing.T) {
	size, ok := spaceSize([]cellPair{{margin: 8}, {margin: 1}})
	require.True(t, ok)
	assert.Equal(t, uint64(18), size)

	size, ok = spaceSize(nil)
	require.True(t, ok)
	assert.Equal(t, uint64(1), size, "empty pair set has exactly one (empty) assignment")

	// 2^63-ish margins overflow the uint64 product.
	huge := []cellPair{{margin: 1<<62 - 1}, {margin: 1<<62 - 1}}
	_, ok = spaceSize(huge)
	assert.False(t, ok, "overflowing products must be flagged")
}
