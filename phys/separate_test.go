package phys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func separationTuning() SeparationTuning {
	return SeparationTuning{Slop: 0.5, Damping: 0.5}
}

func TestSeparateSameClassPair(t *testing.T) {
	s := newStage(20, 10, 8)
	a := Body{X: 10, Y: 40, W: 8, H: 8}
	b := Body{X: 14, Y: 40, W: 8, H: 8} // 4px horizontal overlap

	bodies := []SeparationBody{
		{Body: &a, Class: 1, Weight: 1},
		{Body: &b, Class: 1, Weight: 1},
	}
	moved := Separate(bodies, separationTuning(), s.world, s, nil)

	// push = (4 - 0.5) * 0.5 = 1.75, split evenly.
	require.True(t, moved)
	assert.InDelta(t, 10-0.875, a.X, 1e-9)
	assert.InDelta(t, 14+0.875, b.X, 1e-9)
}

func TestSeparateCrossClassPassesThrough(t *testing.T) {
	s := newStage(20, 10, 8)
	a := Body{X: 10, Y: 40, W: 8, H: 8}
	b := Body{X: 12, Y: 40, W: 8, H: 8}

	bodies := []SeparationBody{
		{Body: &a, Class: 1, Weight: 1},
		{Body: &b, Class: 2, Weight: 1},
	}
	moved := Separate(bodies, separationTuning(), s.world, s, nil)

	assert.False(t, moved)
	assert.Equal(t, 10.0, a.X)
	assert.Equal(t, 12.0, b.X)
}

func TestSeparateWeightShares(t *testing.T) {
	s := newStage(20, 10, 8)
	a := Body{X: 10, Y: 40, W: 8, H: 8}
	b := Body{X: 14, Y: 40, W: 8, H: 8}

	bodies := []SeparationBody{
		{Body: &a, Class: 1, Weight: 3},
		{Body: &b, Class: 1, Weight: 1},
	}
	Separate(bodies, separationTuning(), s.world, s, nil)

	// a absorbs 3/4 of the 1.75px push, b the remaining 1/4.
	assert.InDelta(t, 10-1.3125, a.X, 1e-9)
	assert.InDelta(t, 14+0.4375, b.X, 1e-9)
}

func TestSeparateSlopAndZeroOverlap(t *testing.T) {
	s := newStage(20, 10, 8)

	t.Run("overlap within slop is tolerated", func(t *testing.T) {
		a := Body{X: 10, Y: 40, W: 8, H: 8}
		b := Body{X: 17.7, Y: 40, W: 8, H: 8} // 0.3px deep, under the 0.5 slop
		bodies := []SeparationBody{
			{Body: &a, Class: 1, Weight: 1},
			{Body: &b, Class: 1, Weight: 1},
		}
		assert.False(t, Separate(bodies, separationTuning(), s.world, s, nil))
	})

	t.Run("edge contact is not overlap", func(t *testing.T) {
		a := Body{X: 10, Y: 40, W: 8, H: 8}
		b := Body{X: 18, Y: 40, W: 8, H: 8}
		bodies := []SeparationBody{
			{Body: &a, Class: 1, Weight: 1},
			{Body: &b, Class: 1, Weight: 1},
		}
		assert.False(t, Separate(bodies, separationTuning(), s.world, s, nil))
	})

	t.Run("vertically disjoint boxes are skipped", func(t *testing.T) {
		a := Body{X: 10, Y: 40, W: 8, H: 8}
		b := Body{X: 10, Y: 50, W: 8, H: 8}
		bodies := []SeparationBody{
			{Body: &a, Class: 1, Weight: 1},
			{Body: &b, Class: 1, Weight: 1},
		}
		assert.False(t, Separate(bodies, separationTuning(), s.world, s, nil))
	})
}

func TestSeparateBlockedByWall(t *testing.T) {
	// a sits flush against the left wall column; pushing it further left
	// must be dropped and its horizontal velocity zeroed, while b still
	// takes its share.
	s := newStage(20, 10, 8)
	s.wall(0, 0, 9)

	a := Body{X: 8, Y: 40, W: 8, H: 8, VX: -30}
	b := Body{X: 12, Y: 40, W: 8, H: 8, VX: 10}
	bodies := []SeparationBody{
		{Body: &a, Class: 1, Weight: 1},
		{Body: &b, Class: 1, Weight: 1},
	}
	moved := Separate(bodies, separationTuning(), s.world, s, nil)

	assert.True(t, moved, "b still moves")
	assert.Equal(t, 8.0, a.X, "a stays out of the wall")
	assert.Zero(t, a.VX, "blocked push zeroes horizontal velocity")
	assert.Greater(t, b.X, 12.0)
	assert.Equal(t, 10.0, b.VX)
}

func TestSeparateNeverTunnelsUnderRepetition(t *testing.T) {
	s := newStage(20, 10, 8)
	s.wall(0, 0, 9)

	a := Body{X: 8, Y: 40, W: 8, H: 8}
	b := Body{X: 9, Y: 40, W: 8, H: 8} // deep overlap, both near the wall
	bodies := []SeparationBody{
		{Body: &a, Class: 1, Weight: 1},
		{Body: &b, Class: 1, Weight: 1},
	}

	for i := 0; i < 100; i++ {
		Separate(bodies, separationTuning(), s.world, s, nil)
		require.GreaterOrEqual(t, a.X, 8.0, "iteration %d pushed a into the wall", i)
		require.GreaterOrEqual(t, b.X, 8.0, "iteration %d pushed b into the wall", i)
	}
	// The overlap must have shrunk to (or below) the slop by now.
	assert.LessOrEqual(t, a.X+a.W-b.X, separationTuning().Slop+1e-9)
}

func TestSeparateCoincidentCentersAreDeterministic(t *testing.T) {
	s := newStage(20, 10, 8)
	tn := separationTuning()

	run := func() (float64, float64) {
		a := Body{X: 40, Y: 40, W: 8, H: 8}
		b := Body{X: 40, Y: 40, W: 8, H: 8}
		bodies := []SeparationBody{
			{Body: &a, Class: 1, Weight: 1},
			{Body: &b, Class: 1, Weight: 1},
		}
		Separate(bodies, tn, s.world, s, nil)
		return a.X, b.X
	}

	ax1, bx1 := run()
	ax2, bx2 := run()

	assert.NotEqual(t, ax1, bx1, "coincident bodies must split")
	assert.Equal(t, ax1, ax2, "direction choice must be stable")
	assert.Equal(t, bx1, bx2)
}

func TestSeparateZeroWeightPairIsSkipped(t *testing.T) {
	s := newStage(20, 10, 8)
	a := Body{X: 10, Y: 40, W: 8, H: 8}
	b := Body{X: 12, Y: 40, W: 8, H: 8}
	bodies := []SeparationBody{
		{Body: &a, Class: 1, Weight: 0},
		{Body: &b, Class: 1, Weight: 0},
	}

	assert.False(t, Separate(bodies, separationTuning(), s.world, s, nil))
	assert.Equal(t, 10.0, a.X)
	assert.Equal(t, 12.0, b.X)
}
