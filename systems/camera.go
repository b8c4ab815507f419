package systems

import (
	"math"

	"github.com/pondworks/gaggle/components"
	"github.com/pondworks/gaggle/config"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	gEntry, ok := gooseEntry(e)
	if !ok {
		return
	}
	body := components.Body.Get(gEntry)

	ld, ok := currentLevel(e)
	if !ok {
		return
	}

	// Only update look-ahead while the goose is moving - freeze the
	// offset when idle.
	if math.Abs(body.Body.VX) > config.Camera.LookAheadSpeedThreshold {
		target := math.Copysign(config.Camera.LookAheadDistanceX, body.Body.VX)
		camera.LookAheadX += (target - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX := body.Body.X + body.Body.W/2 + camera.LookAheadX
	targetY := body.Body.Y + body.Body.H/2

	// Camera bounds: keep the level filling the screen.
	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(ld.CurrentLevel.World.W)
	levelHeight := float64(ld.CurrentLevel.World.H)

	minCameraX := screenWidth / 2
	maxCameraX := levelWidth - screenWidth/2
	minCameraY := screenHeight / 2
	maxCameraY := levelHeight - screenHeight/2

	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}
