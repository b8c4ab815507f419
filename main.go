package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pondworks/gaggle/config"
	"github.com/pondworks/gaggle/scenes"
	"github.com/pondworks/gaggle/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{}

	// Resume at the highest level reached.
	startLevel := 0
	if saved, err := systems.LoadProgress(); err == nil && saved != nil {
		startLevel = saved.Level
	}
	g.scene = scenes.NewWorldScene(g, startLevel)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowTitle("gaggle")
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetTPS(config.C.TPS)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
