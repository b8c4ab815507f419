package components

import "github.com/yohamta/donburi"

// ProgressData tracks the run through the current level.
type ProgressData struct {
	Rescued      int  // goslings currently in the flock
	Total        int  // goslings placed in the level
	Frames       int  // elapsed gameplay frames
	Complete     bool // the flock reached the nest
	InvulnFrames int  // hazard grace period after a respawn
}

var Progress = donburi.NewComponentType[ProgressData]()
