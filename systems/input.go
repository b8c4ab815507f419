package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pondworks/gaggle/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepad into each InputData. Must run
// before UpdateGoose in the system order.
func UpdateInput(ecs *ecs.ECS) {
	components.Input.Each(ecs.World, func(e *donburi.Entry) {
		in := components.Input.Get(e)
		in.JumpedPrev = in.Jump
		in.MoveX = 0
		in.Jump = false

		if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
			in.MoveX -= 1
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
			in.MoveX += 1
		}
		if ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
			in.Jump = true
		}

		gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			axis := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
			if axis < -0.25 {
				in.MoveX = -1
			} else if axis > 0.25 {
				in.MoveX = 1
			}
			if ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButtonLeftLeft) {
				in.MoveX = -1
			}
			if ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButtonLeftRight) {
				in.MoveX = 1
			}
			if ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButtonRightBottom) {
				in.Jump = true
			}
		}
	})
}
