package tilegrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testTable builds a 10x10 map of 8px tiles with a single tileset at
// firstgid 1 and one "tiles" layer.
func testTable(t *testing.T, cells map[[2]int]uint32) *LayerTable {
	t.Helper()
	w := NewWorld(10, 10, 8, 8)
	table := NewLayerTable(w, []GidRange{{Name: "ground", FirstGID: 1, TileCount: 16}})
	gids := make([]uint32, 100)
	for cell, gid := range cells {
		gids[cell[1]*10+cell[0]] = gid
	}
	require.NoError(t, table.AddLayer("tiles", gids))
	return table
}

func TestLocalIndex(t *testing.T) {
	assert.Equal(t, 5, LocalIndex(5, 1))
	assert.Equal(t, 1, LocalIndex(17, 17))
	assert.Equal(t, 0, LocalIndex(0, 1))
	assert.Equal(t, 0, LocalIndex(3, 17), "gid below firstgid")
	assert.Equal(t, 5, LocalIndex(5|FlipH|FlipD, 1), "flip flags are masked off")
}

func TestOverlapsAABB(t *testing.T) {
	// Local index 5 placed at cell (3,4).
	table := testTable(t, map[[2]int]uint32{{3, 4}: 5})

	t.Run("covering cell matches", func(t *testing.T) {
		assert.True(t, table.OverlapsAABB(Rect{X: 24, Y: 32, W: 8, H: 8}, []int{5}))
	})
	t.Run("one tile left misses", func(t *testing.T) {
		assert.False(t, table.OverlapsAABB(Rect{X: 16, Y: 32, W: 8, H: 8}, []int{5}))
	})
	t.Run("wrong index misses", func(t *testing.T) {
		assert.False(t, table.OverlapsAABB(Rect{X: 24, Y: 32, W: 8, H: 8}, []int{4, 6}))
	})
	t.Run("unknown layer is skipped", func(t *testing.T) {
		assert.False(t, table.OverlapsAABB(Rect{X: 24, Y: 32, W: 8, H: 8}, []int{5}, "fog"))
		assert.True(t, table.OverlapsAABB(Rect{X: 24, Y: 32, W: 8, H: 8}, []int{5}, "fog", "tiles"))
	})
	t.Run("flip flags do not change the index", func(t *testing.T) {
		flipped := testTable(t, map[[2]int]uint32{{3, 4}: 5 | FlipH | FlipV})
		assert.True(t, flipped.OverlapsAABB(Rect{X: 24, Y: 32, W: 8, H: 8}, []int{5}))
	})
}

func TestOverlapsPolygon(t *testing.T) {
	table := testTable(t, map[[2]int]uint32{{3, 4}: 5})

	t.Run("triangle over the cell", func(t *testing.T) {
		poly := []Point{{20, 30}, {40, 30}, {30, 44}}
		assert.True(t, table.OverlapsPolygon(poly, []int{5}))
	})
	t.Run("triangle elsewhere", func(t *testing.T) {
		poly := []Point{{60, 60}, {70, 60}, {65, 70}}
		assert.False(t, table.OverlapsPolygon(poly, []int{5}))
	})
	t.Run("tiny polygon inside the cell", func(t *testing.T) {
		// No cell corner or the center is inside it; the vertex-in-rect
		// branch has to catch this one.
		poly := []Point{{25, 33}, {26, 33}, {25.5, 34}}
		assert.True(t, table.OverlapsPolygon(poly, []int{5}))
	})
	t.Run("degenerate polygon", func(t *testing.T) {
		assert.False(t, table.OverlapsPolygon([]Point{{1, 1}, {2, 2}}, []int{5}))
	})
}

func TestCollisionLayerFallback(t *testing.T) {
	w := NewWorld(4, 4, 8, 8)

	t.Run("prefers collision", func(t *testing.T) {
		table := NewLayerTable(w, nil)
		require.NoError(t, table.AddLayer("decor", make([]uint32, 16)))
		require.NoError(t, table.AddLayer("collision", make([]uint32, 16)))
		assert.Equal(t, "collision", table.CollisionLayer())
	})
	t.Run("then tiles", func(t *testing.T) {
		table := NewLayerTable(w, nil)
		require.NoError(t, table.AddLayer("decor", make([]uint32, 16)))
		require.NoError(t, table.AddLayer("tiles", make([]uint32, 16)))
		assert.Equal(t, "tiles", table.CollisionLayer())
	})
	t.Run("then first added", func(t *testing.T) {
		table := NewLayerTable(w, nil)
		require.NoError(t, table.AddLayer("decor", make([]uint32, 16)))
		assert.Equal(t, "decor", table.CollisionLayer())
	})
}

func TestLayerSolid(t *testing.T) {
	table := testTable(t, map[[2]int]uint32{{2, 2}: 1, {5, 5}: 7 | FlipD})
	solid := table.Solids()

	assert.True(t, solid.Solid(2, 2))
	assert.True(t, solid.Solid(5, 5), "flipped gid still blocks")
	assert.False(t, solid.Solid(3, 3))

	t.Run("out of bounds blocks", func(t *testing.T) {
		assert.True(t, solid.Solid(-1, 0))
		assert.True(t, solid.Solid(0, -1))
		assert.True(t, solid.Solid(10, 0))
		assert.True(t, solid.Solid(0, 10))
	})

	t.Run("cleared cell opens on the live view", func(t *testing.T) {
		table.ClearCell("tiles", 2, 2)
		assert.False(t, solid.Solid(2, 2))
	})
}

func TestAddLayerValidation(t *testing.T) {
	table := NewLayerTable(NewWorld(4, 4, 8, 8), nil)
	assert.Error(t, table.AddLayer("short", make([]uint32, 3)))
	require.NoError(t, table.AddLayer("tiles", make([]uint32, 16)))
	assert.Error(t, table.AddLayer("tiles", make([]uint32, 16)), "duplicate name")
}
