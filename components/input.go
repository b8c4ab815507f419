package components

import "github.com/yohamta/donburi"

// InputData is the per-frame movement intent read by the goose system.
type InputData struct {
	MoveX      float64 // -1, 0, or 1
	Jump       bool    // held this frame
	JumpedPrev bool    // held last frame, for edge detection
}

var Input = donburi.NewComponentType[InputData]()
