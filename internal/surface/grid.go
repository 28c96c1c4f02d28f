package surface

import "math"

type cellKey struct {
	X, Z int32
}

type cell struct {
	floors   []*Surface
	ceilings []*Surface
	walls    []*Surface
}

func (c *cell) list(class Class) *[]*Surface {
	switch class {
	case ClassFloor:
		return &c.floors
	case ClassCeiling:
		return &c.ceilings
	default:
		return &c.walls
	}
}

// grid partitions surfaces by the XZ cells their bounding box touches.
type grid struct {
	size  float32
	cells map[cellKey]*cell
}

func newGrid(size int) *grid {
	if size <= 0 {
		size = DefaultCellSize
	}
	return &grid{size: float32(size), cells: make(map[cellKey]*cell)}
}

func (g *grid) coord(v float32) int32 {
	return int32(math.Floor(float64(v / g.size)))
}

func (g *grid) keyAt(x, z float32) cellKey {
	return cellKey{X: g.coord(x), Z: g.coord(z)}
}

func (g *grid) insert(s *Surface) {
	minX := min(s.Vertex1[0], s.Vertex2[0], s.Vertex3[0])
	maxX := max(s.Vertex1[0], s.Vertex2[0], s.Vertex3[0])
	minZ := min(s.Vertex1[2], s.Vertex2[2], s.Vertex3[2])
	maxZ := max(s.Vertex1[2], s.Vertex2[2], s.Vertex3[2])

	x0, x1 := g.coord(float32(minX)), g.coord(float32(maxX))
	z0, z1 := g.coord(float32(minZ)), g.coord(float32(maxZ))

	s.cells = s.cells[:0]
	for cx := x0; cx <= x1; cx++ {
		for cz := z0; cz <= z1; cz++ {
			key := cellKey{X: cx, Z: cz}
			c := g.cells[key]
			if c == nil {
				c = &cell{}
				g.cells[key] = c
			}
			l := c.list(s.Class)
			*l = append(*l, s)
			s.cells = append(s.cells, key)
		}
	}
}

func (g *grid) remove(s *Surface) {
	for _, key := range s.cells {
		c := g.cells[key]
		if c == nil {
			continue
		}
		l := c.list(s.Class)
		for i, other := range *l {
			if other == s {
				*l = append((*l)[:i], (*l)[i+1:]...)
				break
			}
		}
		if len(c.floors) == 0 && len(c.ceilings) == 0 && len(c.walls) == 0 {
			delete(g.cells, key)
		}
	}
	s.cells = s.cells[:0]
}

func (g *grid) at(x, z float32) *cell {
	return g.cells[g.keyAt(x, z)]
}

func (g *grid) clear() {
	g.cells = make(map[cellKey]*cell)
}
