package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TrailData is the leader's breadcrumb ring buffer: one world position
// per frame, newest last. Goslings sample it at slot-spaced offsets so
// the flock strings out behind the goose instead of piling on it.
type TrailData struct {
	Points []math.Vec2
	Max    int
}

// Push appends a sample, dropping the oldest once Max is reached.
func (t *TrailData) Push(p math.Vec2) {
	t.Points = append(t.Points, p)
	if len(t.Points) > t.Max {
		copy(t.Points, t.Points[len(t.Points)-t.Max:])
		t.Points = t.Points[:t.Max]
	}
}

// At returns the sample framesBack from the newest, clamped to the
// oldest available. ok is false while the trail is empty.
func (t *TrailData) At(framesBack int) (math.Vec2, bool) {
	if len(t.Points) == 0 {
		return math.Vec2{}, false
	}
	i := len(t.Points) - 1 - framesBack
	if i < 0 {
		i = 0
	}
	return t.Points[i], true
}

var Trail = donburi.NewComponentType[TrailData]()

// FlockData is a gosling's membership in the flock. FallVY is the
// kinematic fall speed the gosling system integrates itself, since the
// kinematic mover never touches velocity fields.
type FlockData struct {
	Leader    donburi.Entity
	Slot      int
	Recruited bool
	FallVY    float64
}

var Flock = donburi.NewComponentType[FlockData]()
