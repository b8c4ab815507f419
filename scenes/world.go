package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pondworks/gaggle/components"
	cfg "github.com/pondworks/gaggle/config"
	"github.com/pondworks/gaggle/systems"
	"github.com/pondworks/gaggle/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger lets a scene swap itself out.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// WorldScene runs one level of the flock walk. The system registration
// order is the physics contract: step each body and unstick it, then one
// separation pass, then the overlap-query consumers.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelIndex   int
	once         sync.Once
}

func NewWorldScene(sc SceneChanger, levelIndex int) *WorldScene {
	return &WorldScene{sceneChanger: sc, levelIndex: levelIndex}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ws.sceneChanger.ChangeScene(NewWorldScene(ws.sceneChanger, ws.levelIndex))
		return
	}

	if progressEntry, ok := components.Progress.First(ws.ecs.World); ok {
		progress := components.Progress.Get(progressEntry)
		if progress.Complete && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			next := ws.levelIndex + 1
			if levelEntry, ok := components.Level.First(ws.ecs.World); ok {
				if next >= len(components.Level.Get(levelEntry).Levels) {
					next = 0
				}
			}
			ws.sceneChanger.ChangeScene(NewWorldScene(ws.sceneChanger, next))
		}
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Clear every frame so scene swaps never flash stale frames.
	if ws.ecs == nil {
		screen.Fill(color.Black)
		return
	}
	screen.Fill(cfg.SkyBlue)
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateDebug)

	// Per-body stepping (each runs step + unstick for its bodies), then
	// the single separation pass, then zone sync and the query-driven
	// gameplay systems.
	e.AddSystem(systems.UpdateGoose)
	e.AddSystem(systems.UpdateGoslings)
	e.AddSystem(systems.UpdateSeparation)
	e.AddSystem(systems.UpdateZones)
	e.AddSystem(systems.UpdateGates)
	e.AddSystem(systems.UpdateParticles)
	e.AddSystem(systems.UpdateHazards)
	e.AddSystem(systems.UpdateNest)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawFlock)
	e.AddRenderer(cfg.Default, systems.DrawParticles)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	ws.ecs = e

	levelEntry := factory.CreateLevelAtIndex(e, ws.levelIndex)
	levelData := components.Level.Get(levelEntry)
	level := levelData.CurrentLevel

	factory.CreateSpace(e, level.World.W, level.World.H, level.World.TileW, level.World.TileH)
	factory.CreateCamera(e)
	factory.CreateParticles(e)
	factory.CreateProgress(e, len(level.GoslingSpawns))

	goose := factory.CreateGoose(e, level.GooseSpawn)
	for _, spawn := range level.GoslingSpawns {
		factory.CreateGosling(e, spawn, goose.Entity())
	}
	for _, gate := range level.Gates {
		factory.CreateGate(e, gate)
	}
	for _, pond := range level.Ponds {
		factory.CreatePond(e, pond)
	}
}
