package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	cfg "github.com/pondworks/gaggle/config"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMargin = 10
	hudLine   = 14
)

// DrawHUD renders the rescue counter and the level timer in the top-left
// corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	progress := progressData(ecs)

	line1 := fmt.Sprintf("goslings %d/%d", progress.Rescued, progress.Total)
	secs := progress.Frames / cfg.C.TPS
	line2 := fmt.Sprintf("time %d:%02d", secs/60, secs%60)

	drawShadowed(screen, line1, hudMargin, hudMargin+hudLine)
	drawShadowed(screen, line2, hudMargin, hudMargin+2*hudLine)

	if progress.Complete {
		msg := "the flock is home - press Enter"
		w := len(msg) * 7
		drawShadowed(screen, msg, (screen.Bounds().Dx()-w)/2, screen.Bounds().Dy()/3)
	}
}

func drawShadowed(screen *ebiten.Image, s string, x, y int) {
	text.Draw(screen, s, basicfont.Face7x13, x+1, y+1, cfg.HUDShadow)
	text.Draw(screen, s, basicfont.Face7x13, x, y, cfg.HUDText)
}
