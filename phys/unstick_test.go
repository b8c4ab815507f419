package phys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unstickTuning() UnstickTuning {
	return UnstickTuning{
		FallSpeed: 20,
		WedgeTime: 0.04,
		Cooldown:  0.25,
	}
}

func TestUnstickFiresAfterPersistence(t *testing.T) {
	s := newStage(20, 20, 8)
	tn := unstickTuning()

	b := Body{X: 40, Y: 40, W: 6, H: 12, VY: 100}
	st := State{HitRight: true}
	var us UnstickState

	// Two frames under the threshold, the third crosses it.
	assert.False(t, Unstick(frame, &b, &st, s, s.world, &us, 40, tn, nil))
	assert.False(t, Unstick(frame, &b, &st, s, s.world, &us, 40, tn, nil))
	require.True(t, Unstick(frame, &b, &st, s, s.world, &us, 40, tn, nil))

	assert.Equal(t, 39.0, b.X, "nudged one pixel away from the right-side hit")
	assert.False(t, st.HitRight, "contact flag cleared after the nudge")
	assert.Equal(t, tn.Cooldown, us.Cooldown)
	assert.Zero(t, us.Wedged)
}

func TestUnstickCooldownBlocksRepeat(t *testing.T) {
	s := newStage(20, 20, 8)
	tn := unstickTuning()

	b := Body{X: 40, Y: 40, W: 6, H: 12, VY: 100}
	st := State{HitRight: true}
	us := UnstickState{Wedged: 1, Cooldown: tn.Cooldown}

	for i := 0; i < 5; i++ {
		assert.False(t, Unstick(frame, &b, &st, s, s.world, &us, 40, tn, nil))
	}
	assert.Equal(t, 40.0, b.X, "no nudge while cooling down")
	assert.True(t, st.HitRight)
}

func TestUnstickIgnoresNormalWallSlide(t *testing.T) {
	s := newStage(20, 20, 8)
	tn := unstickTuning()

	b := Body{X: 40, Y: 41, W: 6, H: 12, VY: 100}
	st := State{HitRight: true}
	var us UnstickState

	// The body moved down a pixel this frame: sliding, not wedged.
	for i := 0; i < 10; i++ {
		assert.False(t, Unstick(frame, &b, &st, s, s.world, &us, 40, tn, nil))
	}
	assert.Zero(t, us.Wedged, "slide must not accumulate wedge time")
	assert.Equal(t, 40.0, b.X)
}

func TestUnstickRequiresFalling(t *testing.T) {
	s := newStage(20, 20, 8)
	tn := unstickTuning()
	var us UnstickState

	t.Run("slow fall", func(t *testing.T) {
		b := Body{X: 40, Y: 40, W: 6, H: 12, VY: 5}
		st := State{HitLeft: true}
		assert.False(t, Unstick(frame, &b, &st, s, s.world, &us, 40, tn, nil))
	})
	t.Run("grounded", func(t *testing.T) {
		b := Body{X: 40, Y: 40, W: 6, H: 12, VY: 100}
		st := State{HitLeft: true, Grounded: true}
		assert.False(t, Unstick(frame, &b, &st, s, s.world, &us, 40, tn, nil))
	})
	t.Run("no side contact", func(t *testing.T) {
		b := Body{X: 40, Y: 40, W: 6, H: 12, VY: 100}
		st := State{}
		assert.False(t, Unstick(frame, &b, &st, s, s.world, &us, 40, tn, nil))
	})
}

func TestUnstickFallsBackToOppositeSide(t *testing.T) {
	// A wall hugging the body's left edge: the away-from-hit nudge (left,
	// since HitRight is set... but the left pixel is solid) must retry
	// rightward.
	s := newStage(20, 20, 8)
	s.wall(4, 0, 19) // cells x in [32,40)

	tn := unstickTuning()
	b := Body{X: 40, Y: 40, W: 6, H: 12, VY: 100}
	st := State{HitRight: true}
	us := UnstickState{Wedged: 1}

	require.True(t, Unstick(frame, &b, &st, s, s.world, &us, 40, tn, nil))
	assert.Equal(t, 41.0, b.X, "left was blocked, pushed right instead")
	assert.False(t, st.HitRight)
}

func TestUnstickBothSidesBlocked(t *testing.T) {
	// Walls snug on both sides of an 8px-wide body.
	s := newStage(20, 20, 8)
	s.wall(0, 0, 19)
	s.wall(2, 0, 19)

	tn := unstickTuning()
	b := Body{X: 8, Y: 40, W: 8, H: 12, VY: 100}
	st := State{HitRight: true}
	us := UnstickState{Wedged: 1}

	assert.False(t, Unstick(frame, &b, &st, s, s.world, &us, 40, tn, nil))
	assert.Equal(t, 8.0, b.X, "no free pixel on either side")
	assert.True(t, st.HitRight)
}

func TestMoveByThenUnstick(t *testing.T) {
	// The follower wedge: a kinematic body driven sideways into a wall
	// with no vertical displacement, while its velocity field says it is
	// falling. The side contact plus zero downward progress accumulates
	// into a nudge within a few frames.
	s := newStage(20, 20, 8)
	s.wall(10, 0, 19) // cells x in [80,88)

	tn := testTuning()
	utn := unstickTuning()
	b := Body{X: 70, Y: 40, W: 6, H: 12, VY: 100}
	var st State
	var us UnstickState

	freed := false
	for i := 0; i < 60; i++ {
		yBefore := b.Y
		MoveBy(&b, &st, 4, 0, s, s.world, tn, nil)
		if Unstick(frame, &b, &st, s, s.world, &us, yBefore, utn, nil) {
			freed = true
			break
		}
	}

	assert.True(t, freed, "wedged contact should trigger a nudge")
	assert.Equal(t, 73.0, b.X, "one pixel back from the flush position")
	assert.False(t, st.HitRight)
}

func TestUnstickKinematicFall(t *testing.T) {
	// A follower swept hard into an overhung ledge: the curb climb lifts
	// it over the lip, the face behind flags a side hit, and the fall
	// speed its driver integrated and mirrored onto the body makes the
	// zero-progress frame count as a wedge. Before the mirror the body's
	// VY would read zero here and the accumulator could never start.
	s := newStage(20, 20, 8)
	s.set(10, 10)     // ledge lip
	s.wall(13, 0, 19) // the face behind it, two cells thick
	s.wall(14, 0, 19)

	tn := testTuning()
	utn := UnstickTuning{FallSpeed: 20, WedgeTime: 0.01, Cooldown: 0.25}

	fall := 30.0 // carried over from earlier falling frames
	b := Body{X: 70, Y: 80, W: 6, H: 6, VY: fall}
	var st State
	var us UnstickState

	yBefore := b.Y
	MoveBy(&b, &st, 144, fall*frame, s, s.world, tn, nil)
	require.True(t, st.HitRight)
	require.False(t, st.Grounded)
	require.LessOrEqual(t, b.Y-yBefore, 0.0, "climb outweighs the fall")

	require.True(t, Unstick(frame, &b, &st, s, s.world, &us, yBefore, utn, nil))
	assert.Equal(t, 97.0, b.X, "nudged off the face")
	assert.False(t, st.HitRight)
	assert.Zero(t, us.Wedged)
}
