package phys

import "github.com/pondworks/gaggle/tilegrid"

// stage is a hand-built solid grid for tests: marked cells block,
// everything else is open, and out-of-bounds blocks per the SolidSource
// contract.
type stage struct {
	world tilegrid.World
	cells map[[2]int]bool
}

func newStage(tilesW, tilesH, tileSize int) *stage {
	return &stage{
		world: tilegrid.NewWorld(tilesW, tilesH, tileSize, tileSize),
		cells: map[[2]int]bool{},
	}
}

func (s *stage) set(tx, ty int) { s.cells[[2]int{tx, ty}] = true }

// floor fills one row from txFrom to txTo inclusive.
func (s *stage) floor(ty, txFrom, txTo int) {
	for tx := txFrom; tx <= txTo; tx++ {
		s.set(tx, ty)
	}
}

// wall fills one column from tyFrom to tyTo inclusive.
func (s *stage) wall(tx, tyFrom, tyTo int) {
	for ty := tyFrom; ty <= tyTo; ty++ {
		s.set(tx, ty)
	}
}

func (s *stage) Solid(tx, ty int) bool {
	if tx < 0 || ty < 0 || tx >= s.world.TilesW || ty >= s.world.TilesH {
		return true
	}
	return s.cells[[2]int{tx, ty}]
}

func testTuning() Tuning {
	return Tuning{
		Grav:        600,
		FallMax:     300,
		StepUp:      8,
		SnapDown:    4,
		MaxSubSteps: 8,
	}
}

const frame = 1.0 / 60.0
