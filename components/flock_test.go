package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestTrailPushCapsLength(t *testing.T) {
	tr := TrailData{Max: 4}
	for i := 0; i < 10; i++ {
		tr.Push(math.Vec2{X: float64(i)})
	}
	assert.Len(t, tr.Points, 4)
	assert.Equal(t, 6.0, tr.Points[0].X, "oldest kept sample")
	assert.Equal(t, 9.0, tr.Points[3].X, "newest sample last")
}

func TestTrailAt(t *testing.T) {
	tr := TrailData{Max: 8}

	_, ok := tr.At(0)
	assert.False(t, ok, "empty trail has no samples")

	for i := 0; i < 5; i++ {
		tr.Push(math.Vec2{X: float64(i * 10)})
	}

	p, ok := tr.At(0)
	assert.True(t, ok)
	assert.Equal(t, 40.0, p.X, "zero back is the newest")

	p, _ = tr.At(3)
	assert.Equal(t, 10.0, p.X)

	p, _ = tr.At(100)
	assert.Equal(t, 0.0, p.X, "deep lookups clamp to the oldest")
}
