package config

import (
	"image/color"

	"github.com/pondworks/gaggle/phys"
	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every entity and renderer lives on.
const Default = ecs.LayerID(0)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// GooseConfig contains leader movement and tuning values
type GooseConfig struct {
	// Movement
	Accel     float64 // ground acceleration, px/s^2
	AirAccel  float64 // acceleration while airborne, px/s^2
	MaxSpeed  float64 // horizontal speed cap, px/s
	Friction  float64 // deceleration with no input, px/s^2
	JumpSpeed float64 // initial jump velocity, px/s (upward)

	// Dimensions
	Width  float64
	Height float64

	Tuning phys.Tuning
}

// GoslingConfig contains follower behavior and tuning values
type GoslingConfig struct {
	// Trail following
	TrailSpacing int     // frames of trail between consecutive goslings
	CatchUp      float64 // max horizontal catch-up speed, px/s
	SettleDist   float64 // distance below which a gosling stops adjusting, px
	FallMax      float64 // terminal fall speed for the kinematic fall, px/s
	Grav         float64 // fall acceleration, px/s^2

	// Recruiting
	RecruitPad float64 // extra reach around the leader box for recruiting, px

	// Dimensions
	Width  float64
	Height float64

	Tuning phys.Tuning
}

// SeparationConfig shapes the per-frame flock separation pass
type SeparationConfig struct {
	Tuning        phys.SeparationTuning
	GoslingWeight float64
	GooseWeight   float64
}

// UnstickConfig bounds the corner-catch escape for both archetypes
type UnstickConfig struct {
	Tuning phys.UnstickTuning
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 // How fast camera follows the goose (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum speed to update look-ahead
}

// TilesConfig carries the fallback tile-role local indexes used when a
// level's tileset does not declare roles through tile properties, plus
// the layer names role queries run over.
type TilesConfig struct {
	HazardIndexes []int
	FinishIndexes []int
	GateIndexes   []int
	QueryLayers   []string
}

// GatesConfig contains gate dissolve configuration
type GatesConfig struct {
	DissolveSeconds   float32
	ParticlesPerCell  int
	ParticleLife      float64 // seconds
	ParticleSpeed     float64 // initial scatter speed, px/s
	ParticleGravity   float64 // px/s^2
	ParticleBounce    float64 // velocity kept on a pixel-solid bounce
	ParticleSkipSolid int     // sample every Nth solid mask pixel for debris
}

// HazardConfig contains respawn behavior after a hazard hit
type HazardConfig struct {
	RespawnInvulnFrames int
}

// DebugConfig contains debug toggles
type DebugConfig struct {
	Enabled    bool // draw body boxes and contact flags (F1)
	TraceToLog bool // forward phys trace events to the log
}

// Global configuration instances
var C *Config
var Goose GooseConfig
var Gosling GoslingConfig
var Separation SeparationConfig
var Unstick UnstickConfig
var Camera CameraConfig
var Tiles TilesConfig
var Gates GatesConfig
var Hazard HazardConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	GooseBody  = color.RGBA{R: 240, G: 240, B: 235, A: 255}
	GooseBeak  = color.RGBA{R: 255, G: 150, B: 40, A: 255}
	GoslingDot = color.RGBA{R: 255, G: 220, B: 90, A: 255}
	SkyBlue    = color.RGBA{R: 90, G: 150, B: 200, A: 255}
	DebugBox   = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	DebugHit   = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	HUDText    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	HUDShadow  = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	// Stepper budgets assume the 16px tiles the shipped levels use; the
	// curb and glue reach scale with tile size, not with a fixed pixel
	// count, so a different tile scale only touches these two numbers.
	Goose = GooseConfig{
		Accel:     900.0,
		AirAccel:  500.0,
		MaxSpeed:  140.0,
		Friction:  1100.0,
		JumpSpeed: 260.0,

		Width:  12,
		Height: 14,

		Tuning: phys.Tuning{
			Grav:        700.0,
			FallMax:     320.0,
			StepUp:      4.0,
			SnapDown:    4.0,
			MaxSubSteps: 8,
		},
	}

	Gosling = GoslingConfig{
		TrailSpacing: 12,
		CatchUp:      180.0,
		SettleDist:   1.5,
		FallMax:      320.0,
		Grav:         700.0,

		RecruitPad: 6.0,

		Width:  7,
		Height: 8,

		Tuning: phys.Tuning{
			Grav:        0, // kinematic: the gosling system supplies dy itself
			FallMax:     320.0,
			StepUp:      4.0,
			SnapDown:    4.0,
			MaxSubSteps: 6,
		},
	}

	Separation = SeparationConfig{
		Tuning: phys.SeparationTuning{
			Slop:    0.5,
			Damping: 0.4,
		},
		GoslingWeight: 1.0,
		GooseWeight:   1.0,
	}

	Unstick = UnstickConfig{
		Tuning: phys.UnstickTuning{
			FallSpeed: 5.0,
			WedgeTime: 0.05,
			Cooldown:  0.15,
		},
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.08,
		LookAheadDistanceX:      48.0,
		LookAheadSmoothing:      0.06,
		LookAheadSpeedThreshold: 10.0,
	}

	Tiles = TilesConfig{
		HazardIndexes: []int{5},
		FinishIndexes: []int{7},
		GateIndexes:   []int{6},
		QueryLayers:   []string{"collision", "tiles", "decor"},
	}

	Gates = GatesConfig{
		DissolveSeconds:   1.2,
		ParticlesPerCell:  24,
		ParticleLife:      0.9,
		ParticleSpeed:     70.0,
		ParticleGravity:   350.0,
		ParticleBounce:    0.35,
		ParticleSkipSolid: 4,
	}

	Hazard = HazardConfig{
		RespawnInvulnFrames: 45,
	}

	Debug = DebugConfig{
		Enabled:    false,
		TraceToLog: false,
	}
}
