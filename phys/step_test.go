package phys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepZeroDt(t *testing.T) {
	s := newStage(10, 10, 8)
	b := Body{X: 30, Y: 20, W: 6, H: 12, VX: 40, VY: 15}
	var st State

	Step(&b, &st, 0, s, s.world, testTuning(), nil)

	assert.Equal(t, 30.0, b.X)
	assert.Equal(t, 20.0, b.Y)
	assert.Equal(t, 40.0, b.VX)
	assert.Equal(t, 15.0, b.VY)
	assert.Equal(t, State{}, st)
}

func TestStepGravityToRest(t *testing.T) {
	s := newStage(10, 10, 8)
	s.floor(7, 0, 9) // floor top at y=56

	b := Body{X: 30, Y: 56 - 12 - 40, W: 6, H: 12} // 40px above the floor
	var st State
	tn := testTuning()

	settled := -1
	for i := 0; i < 600; i++ {
		Step(&b, &st, frame, s, s.world, tn, nil)
		if st.Grounded && b.VY == 0 {
			settled = i
			break
		}
	}

	require.NotEqual(t, -1, settled, "body never settled")
	assert.InDelta(t, 56.0, b.Y+b.H, 1e-9, "bottom should rest exactly on the floor top")
	assert.True(t, st.Grounded)

	// Resting must be stable frame over frame.
	for i := 0; i < 10; i++ {
		Step(&b, &st, frame, s, s.world, tn, nil)
		assert.True(t, st.Grounded)
		assert.Zero(t, b.VY)
		assert.InDelta(t, 56.0, b.Y+b.H, 1e-9)
	}
}

func TestStepCurbClimb(t *testing.T) {
	// Floor at row 7 with a one-tile curb at column 10: an 8px step.
	build := func() *stage {
		s := newStage(20, 10, 8)
		s.floor(7, 0, 19)
		s.set(10, 6)
		return s
	}

	t.Run("curb within the budget is climbed", func(t *testing.T) {
		s := build()
		tn := testTuning()
		tn.StepUp = 8
		b := Body{X: 60, Y: 44, W: 6, H: 12, VX: 60}
		var st State

		// 20 frames at 1px/frame walks the body from x=60 onto the curb.
		for i := 0; i < 20; i++ {
			b.VX = 60 // constant drive, as a walk cycle would
			Step(&b, &st, frame, s, s.world, tn, nil)
		}

		assert.InDelta(t, 80.0, b.X, 1e-9, "no frame of travel was lost")
		assert.InDelta(t, 48.0, b.Y+b.H, 1e-9, "body should stand on the curb top")
		assert.Equal(t, 60.0, b.VX)
		assert.False(t, st.HitRight)
	})

	t.Run("curb one pixel over the budget blocks", func(t *testing.T) {
		s := build()
		tn := testTuning()
		tn.StepUp = 7 // curb is stepUp+1
		b := Body{X: 60, Y: 44, W: 6, H: 12, VX: 60}
		var st State

		var hitFrame State
		for i := 0; i < 240; i++ {
			b.VX = 60
			Step(&b, &st, frame, s, s.world, tn, nil)
			if st.HitRight {
				hitFrame = st
				break
			}
		}

		assert.True(t, hitFrame.HitRight)
		assert.Zero(t, b.VX)
		assert.InDelta(t, 74.0, b.X, 1e-9, "flush against the curb column")
	})
}

func TestStepWorldBoundary(t *testing.T) {
	s := newStage(10, 10, 8) // nothing solid in bounds
	tn := testTuning()
	tn.Grav = 0

	b := Body{X: 3, Y: 40, W: 6, H: 12, VX: -300}
	var st State
	Step(&b, &st, frame, s, s.world, tn, nil)

	assert.Equal(t, 0.0, b.X)
	assert.True(t, st.HitLeft)
	assert.Zero(t, b.VX)
}

func TestStepCeiling(t *testing.T) {
	s := newStage(10, 10, 8)
	s.floor(2, 0, 9) // ceiling band, underside at y=24

	b := Body{X: 30, Y: 34, W: 6, H: 12, VY: -200}
	var st State
	for i := 0; i < 10; i++ {
		Step(&b, &st, frame, s, s.world, testTuning(), nil)
		if st.HitCeil {
			break
		}
	}

	assert.True(t, st.HitCeil)
	assert.Zero(t, b.VY)
	assert.InDelta(t, 24.0, b.Y, 1e-9, "flush under the ceiling")
}

func TestStepSnapDownGlue(t *testing.T) {
	// 2px tiles: the floor drops one tile (2px) at column 20, well within
	// the 4px glue reach, so a walking body must never go airborne.
	s := newStage(40, 20, 2)
	s.floor(10, 0, 19)  // top at y=20
	s.floor(11, 20, 39) // top at y=22

	tn := testTuning()
	b := Body{X: 20, Y: 14, W: 4, H: 6, VX: 60}
	var st State

	for i := 0; i < 180; i++ {
		b.VX = 60
		Step(&b, &st, frame, s, s.world, tn, nil)
		require.True(t, st.Grounded, "frame %d: walked off the ledge at x=%.2f", i, b.X)
		if b.X > 50 {
			break
		}
	}

	assert.Greater(t, b.X, 50.0)
	assert.InDelta(t, 22.0, b.Y+b.H, 1e-9, "glued onto the lower floor")
}

func TestStepNoTunneling(t *testing.T) {
	// Extreme speed against a thin wall with the sub-step cap maxed out:
	// the axis sweep scans every crossed column, so the wall always wins.
	s := newStage(40, 10, 8)
	s.wall(20, 0, 9)

	tn := testTuning()
	tn.Grav = 0
	tn.MaxSubSteps = 2

	b := Body{X: 50, Y: 40, W: 6, H: 12, VX: 9000}
	var st State
	Step(&b, &st, frame, s, s.world, tn, nil)

	assert.InDelta(t, 154.0, b.X, 1e-9, "flush against the wall, not through it")
	assert.True(t, st.HitRight)
	assert.Zero(t, b.VX)
}

func TestStepSubStepCount(t *testing.T) {
	cases := []struct {
		name   string
		travel float64
		max    int
		want   int
	}{
		{"zero travel still steps once", 0, 8, 1},
		{"small travel", 5, 8, 1},
		{"one per 8px", 33, 8, 5},
		{"cap wins", 200, 4, 4},
		{"no cap configured", 40, 0, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, subSteps(tc.travel, tc.max))
		})
	}
}

func TestMoveByLeavesVelocityAlone(t *testing.T) {
	s := newStage(20, 10, 8)
	s.wall(10, 0, 9)

	b := Body{X: 60, Y: 40, W: 6, H: 12, VX: 123, VY: -45}
	var st State
	MoveBy(&b, &st, 30, 0, s, s.world, testTuning(), nil)

	assert.InDelta(t, 74.0, b.X, 1e-9, "flush against the wall")
	assert.True(t, st.HitRight)
	assert.Equal(t, 123.0, b.VX, "kinematic move must not touch VX")
	assert.Equal(t, -45.0, b.VY, "kinematic move must not touch VY")
}

func TestMoveByCurbClimb(t *testing.T) {
	s := newStage(20, 10, 8)
	s.floor(7, 0, 19)
	s.set(10, 6)

	b := Body{X: 74, Y: 44, W: 6, H: 12}
	var st State
	MoveBy(&b, &st, 4, 0, s, s.world, testTuning(), nil)

	assert.InDelta(t, 78.0, b.X, 1e-9)
	assert.InDelta(t, 36.0, b.Y, 1e-9, "raised onto the curb")
	assert.False(t, st.HitRight)
}

func TestMoveByGroundedFlag(t *testing.T) {
	s := newStage(10, 10, 8)
	s.floor(7, 0, 9)

	b := Body{X: 30, Y: 44, W: 6, H: 12} // resting flush on the floor
	var st State
	MoveBy(&b, &st, 2, 0, s, s.world, testTuning(), nil)

	assert.True(t, st.Grounded)
	assert.InDelta(t, 56.0, b.Y+b.H, 1e-9)
}

func TestStepTraceEvents(t *testing.T) {
	s := newStage(20, 10, 8)
	s.floor(7, 0, 19)
	s.set(10, 6)

	var kinds []TraceKind
	tr := func(ev TraceEvent) { kinds = append(kinds, ev.Kind) }

	tn := testTuning()
	b := Body{X: 73, Y: 44, W: 6, H: 12, VX: 120}
	var st State
	Step(&b, &st, frame, s, s.world, tn, tr)

	assert.Contains(t, kinds, TraceStepUp)
}

func BenchmarkStep(b *testing.B) {
	s := newStage(64, 32, 8)
	s.floor(30, 0, 63)
	s.wall(40, 20, 29)
	tn := testTuning()

	body := Body{X: 30, Y: 200, W: 6, H: 12, VX: 90}
	var st State
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Step(&body, &st, frame, s, s.world, tn, nil)
		if st.HitRight || body.X > 300 {
			body.X, body.VX = 30, 90
		}
	}
}
