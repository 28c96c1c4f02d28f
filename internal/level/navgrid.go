package level

import (
	"container/heap"

	"github.com/Faultbox/libsm64-go/internal/surface"
)

// MaxStepHeight is the largest floor height change between neighbouring
// tiles a walking character can follow.
const MaxStepHeight = 78

// FloorProbe answers floor queries. *sm64.Library satisfies it.
type FloorProbe interface {
	SurfaceFindFloor(x, y, z float32) (height float32, floorType int16, ok bool)
}

// PathNode represents a node in the A* search.
type PathNode struct {
	X, Y   int     // Tile coordinates
	G      float32 // Cost from start
	H      float32 // Heuristic (estimated cost to goal)
	F      float32 // Total cost (G + H)
	Parent *PathNode
	Index  int // Index in heap
}

// PathHeap implements a priority queue for A* pathfinding.
type PathHeap []*PathNode

func (h PathHeap) Len() int           { return len(h) }
func (h PathHeap) Less(i, j int) bool { return h[i].F < h[j].F }
func (h PathHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].Index = i
	h[j].Index = j
}

func (h *PathHeap) Push(x interface{}) {
	n := len(*h)
	node := x.(*PathNode)
	node.Index = n
	*h = append(*h, node)
}

func (h *PathHeap) Pop() interface{} {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.Index = -1
	*h = old[0 : n-1]
	return node
}

// tile is one sampled grid cell.
type tile struct {
	walkable bool
	height   float32
}

// NavGrid is a walkability grid sampled from level floors.
type NavGrid struct {
	origin [2]float32
	size   float32
	width  int
	height int
	tiles  []tile
}

// hazardous reports floor types a walker should never step on.
func hazardous(floorType int16) bool {
	switch floorType {
	case surface.TypeBurning, surface.TypeDeathPlane, surface.TypeInstantQuicksand:
		return true
	}
	return false
}

// BuildNavGrid samples probe at the centre of every tile, looking down from
// nav.ProbeY.
func BuildNavGrid(probe FloorProbe, nav Navigation) *NavGrid {
	g := &NavGrid{
		origin: nav.Origin,
		size:   nav.Tile,
		width:  nav.Width,
		height: nav.Height,
		tiles:  make([]tile, nav.Width*nav.Height),
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			wx, wz := g.TileToWorld(x, y)
			h, typ, ok := probe.SurfaceFindFloor(wx, nav.ProbeY, wz)
			g.tiles[g.key(x, y)] = tile{walkable: ok && !hazardous(typ), height: h}
		}
	}
	return g
}

// FindPath finds a path from start to goal using A*. Returns nil if no path
// exists.
func (g *NavGrid) FindPath(startX, startY, goalX, goalY int) [][2]int {
	if g == nil {
		return nil
	}

	// Check bounds
	if !g.inBounds(startX, startY) || !g.inBounds(goalX, goalY) {
		return nil
	}

	// Check if goal is walkable
	if !g.IsWalkable(goalX, goalY) {
		return nil
	}

	openSet := &PathHeap{}
	heap.Init(openSet)

	closedSet := make(map[int]bool)
	nodeMap := make(map[int]*PathNode)

	startNode := &PathNode{
		X: startX,
		Y: startY,
		G: 0,
		H: g.heuristic(startX, startY, goalX, goalY),
	}
	startNode.F = startNode.G + startNode.H
	heap.Push(openSet, startNode)
	nodeMap[g.key(startX, startY)] = startNode

	// 8-way movement, straight and diagonal alternating
	directions := [][2]int{
		{0, 1},
		{-1, 1},
		{-1, 0},
		{-1, -1},
		{0, -1},
		{1, -1},
		{1, 0},
		{1, 1},
	}

	diagonalCost := float32(1.414)
	straightCost := float32(1.0)

	maxIterations := g.width * g.height // Prevent infinite loops
	iterations := 0

	for openSet.Len() > 0 && iterations < maxIterations {
		iterations++

		current := heap.Pop(openSet).(*PathNode)

		if current.X == goalX && current.Y == goalY {
			return g.reconstructPath(current)
		}

		closedSet[g.key(current.X, current.Y)] = true

		for i, dir := range directions {
			nx, ny := current.X+dir[0], current.Y+dir[1]

			if !g.canStep(current.X, current.Y, nx, ny) {
				continue
			}
			if closedSet[g.key(nx, ny)] {
				continue
			}

			var moveCost float32
			if i%2 == 1 {
				moveCost = diagonalCost
				// Diagonal moves may not cut corners
				if !g.canStep(current.X, current.Y, current.X+dir[0], current.Y) ||
					!g.canStep(current.X, current.Y, current.X, current.Y+dir[1]) {
					continue
				}
			} else {
				moveCost = straightCost
			}

			cost := current.G + moveCost

			neighbor, exists := nodeMap[g.key(nx, ny)]
			if !exists {
				neighbor = &PathNode{
					X:      nx,
					Y:      ny,
					G:      cost,
					H:      g.heuristic(nx, ny, goalX, goalY),
					Parent: current,
				}
				neighbor.F = neighbor.G + neighbor.H
				nodeMap[g.key(nx, ny)] = neighbor
				heap.Push(openSet, neighbor)
			} else if cost < neighbor.G {
				neighbor.G = cost
				neighbor.F = neighbor.G + neighbor.H
				neighbor.Parent = current
				heap.Fix(openSet, neighbor.Index)
			}
		}
	}

	return nil
}

// IsWalkable checks if a tile is walkable.
func (g *NavGrid) IsWalkable(x, y int) bool {
	if g == nil || !g.inBounds(x, y) {
		return false
	}
	return g.tiles[g.key(x, y)].walkable
}

// canStep reports whether a walker can move between two adjacent tiles.
func (g *NavGrid) canStep(fromX, fromY, toX, toY int) bool {
	if !g.IsWalkable(toX, toY) {
		return false
	}
	dh := g.tiles[g.key(toX, toY)].height - g.tiles[g.key(fromX, fromY)].height
	return dh <= MaxStepHeight && dh >= -MaxStepHeight
}

// FloorHeight returns the sampled floor height of a tile.
func (g *NavGrid) FloorHeight(x, y int) float32 {
	if !g.inBounds(x, y) {
		return surface.FloorLowerLimit
	}
	return g.tiles[g.key(x, y)].height
}

// WorldToTile converts world XZ coordinates to tile coordinates.
func (g *NavGrid) WorldToTile(worldX, worldZ float32) (int, int) {
	fx := (worldX - g.origin[0]) / g.size
	fz := (worldZ - g.origin[1]) / g.size
	x, y := int(fx), int(fz)
	if fx < 0 {
		x--
	}
	if fz < 0 {
		y--
	}
	return x, y
}

// TileToWorld converts tile coordinates to world coordinates (center of tile).
func (g *NavGrid) TileToWorld(tileX, tileY int) (float32, float32) {
	return g.origin[0] + (float32(tileX)+0.5)*g.size, g.origin[1] + (float32(tileY)+0.5)*g.size
}

// heuristic calculates the estimated distance using octile distance.
func (g *NavGrid) heuristic(x1, y1, x2, y2 int) float32 {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	if dx < dy {
		return float32(dx)*1.414 + float32(dy-dx)
	}
	return float32(dy)*1.414 + float32(dx-dy)
}

func (g *NavGrid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *NavGrid) key(x, y int) int {
	return y*g.width + x
}

func (g *NavGrid) reconstructPath(node *PathNode) [][2]int {
	var path [][2]int
	for node != nil {
		path = append(path, [2]int{node.X, node.Y})
		node = node.Parent
	}
	// Reverse path (it's built from goal to start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
