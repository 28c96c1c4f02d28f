package level

import (
	"testing"

	"github.com/Faultbox/libsm64-go/internal/surface"
)

// gridProbe answers floor queries from a tile map: 0 is flat floor, -1 is
// a hole, anything else a floor at that height.
type gridProbe struct {
	tile    float32
	heights map[[2]int]float32
	lava    map[[2]int]bool
}

func (p *gridProbe) SurfaceFindFloor(x, y, z float32) (float32, int16, bool) {
	key := [2]int{int(x / p.tile), int(z / p.tile)}
	if p.lava[key] {
		return 0, surface.TypeBurning, true
	}
	h, ok := p.heights[key]
	if ok && h < 0 {
		return surface.FloorLowerLimit, 0, false
	}
	return h, surface.TypeDefault, true
}

// mockGrid creates a 5x5 grid with holes at blocked.
func mockGrid(blocked [][2]int) *NavGrid {
	p := &gridProbe{tile: 100, heights: map[[2]int]float32{}, lava: map[[2]int]bool{}}
	for _, b := range blocked {
		p.heights[b] = -1
	}
	return BuildNavGrid(p, Navigation{Width: 5, Height: 5, Tile: 100, ProbeY: 1000})
}

func TestNavGrid_FindPath_Simple(t *testing.T) {
	g := mockGrid(nil)

	path := g.FindPath(0, 0, 4, 4)
	if path == nil {
		t.Fatal("expected path, got nil")
	}

	if path[0][0] != 0 || path[0][1] != 0 {
		t.Errorf("path should start at (0,0), got (%d,%d)", path[0][0], path[0][1])
	}

	lastIdx := len(path) - 1
	if path[lastIdx][0] != 4 || path[lastIdx][1] != 4 {
		t.Errorf("path should end at (4,4), got (%d,%d)", path[lastIdx][0], path[lastIdx][1])
	}
	if len(path) != 5 {
		t.Errorf("diagonal path length = %d, want 5", len(path))
	}
}

func TestNavGrid_FindPath_WithObstacle(t *testing.T) {
	g := mockGrid([][2]int{{2, 0}, {2, 1}, {2, 2}, {2, 3}})

	path := g.FindPath(0, 2, 4, 2)
	if path == nil {
		t.Fatal("expected path around obstacle, got nil")
	}

	for _, p := range path {
		if p[0] == 2 && p[1] < 4 {
			t.Errorf("path went through a hole at (%d,%d)", p[0], p[1])
		}
	}
}

func TestNavGrid_FindPath_NoPath(t *testing.T) {
	g := mockGrid([][2]int{{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}})

	if path := g.FindPath(0, 2, 4, 2); path != nil {
		t.Errorf("expected no path, got %v", path)
	}
}

func TestNavGrid_FindPath_SameStartGoal(t *testing.T) {
	g := mockGrid(nil)

	path := g.FindPath(2, 2, 2, 2)
	if len(path) != 1 {
		t.Errorf("expected path length 1, got %d", len(path))
	}
}

func TestNavGrid_FindPath_OutOfBounds(t *testing.T) {
	g := mockGrid(nil)

	if path := g.FindPath(-1, 0, 4, 4); path != nil {
		t.Error("expected nil for out of bounds start")
	}
	if path := g.FindPath(0, 0, 10, 10); path != nil {
		t.Error("expected nil for out of bounds goal")
	}
}

func TestNavGrid_AvoidsHazardsAndCliffs(t *testing.T) {
	p := &gridProbe{
		tile: 100,
		heights: map[[2]int]float32{
			{2, 0}: 500, {2, 1}: 500, {2, 2}: 500, {2, 3}: 500,
		},
		lava: map[[2]int]bool{{2, 4}: true},
	}
	g := BuildNavGrid(p, Navigation{Width: 5, Height: 5, Tile: 100, ProbeY: 1000})

	if g.IsWalkable(2, 4) {
		t.Error("lava tile should not be walkable")
	}
	if !g.IsWalkable(2, 0) {
		t.Error("raised tile should be walkable")
	}
	if h := g.FloorHeight(2, 0); h != 500 {
		t.Errorf("raised tile height = %v, want 500", h)
	}
	if path := g.FindPath(0, 2, 4, 2); path != nil {
		t.Errorf("expected the wall of raised tiles to block, got %v", path)
	}
}

func TestNavGrid_TileConversion(t *testing.T) {
	g := BuildNavGrid(&gridProbe{tile: 100}, Navigation{Origin: [2]float32{-250, -250}, Width: 5, Height: 5, Tile: 100})

	x, z := g.TileToWorld(0, 0)
	if x != -200 || z != -200 {
		t.Errorf("tile (0,0) centre = (%v,%v), want (-200,-200)", x, z)
	}
	tx, ty := g.WorldToTile(0, 0)
	if tx != 2 || ty != 2 {
		t.Errorf("origin tile = (%d,%d), want (2,2)", tx, ty)
	}
	tx, _ = g.WorldToTile(-300, 0)
	if tx != -1 {
		t.Errorf("left of grid = %d, want -1", tx)
	}
}
