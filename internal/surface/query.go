package surface

// FindFloor returns the highest floor at (x, z) whose height is at or below y.
// Floors of type TypeIntangible are ignored. With no candidate it returns
// FloorLowerLimit and nil.
func (idx *Index) FindFloor(x, y, z float32) (float32, *Surface) {
	height, floor := FloorLowerLimit, (*Surface)(nil)

	// Static first so an equal dynamic height cannot displace it.
	if c := idx.static.at(x, z); c != nil {
		height, floor = floorFromList(c.floors, x, y, z, height, floor)
	}
	if c := idx.dynamic.at(x, z); c != nil {
		dynHeight, dynFloor := floorFromList(c.floors, x, y, z, FloorLowerLimit, nil)
		if dynFloor != nil && (floor == nil || dynHeight > height) {
			height, floor = dynHeight, dynFloor
		}
	}
	return height, floor
}

// FindFloorHeight is FindFloor without the surface.
func (idx *Index) FindFloorHeight(x, y, z float32) float32 {
	h, _ := idx.FindFloor(x, y, z)
	return h
}

func floorFromList(list []*Surface, x, y, z float32, best float32, bestSurf *Surface) (float32, *Surface) {
	for _, s := range list {
		if s.Type == TypeIntangible {
			continue
		}
		if !insideXZ(s, x, z, false) {
			continue
		}
		h := s.HeightAt(x, z)
		if h > y {
			continue
		}
		if bestSurf == nil || h > best || (h == best && s.seq > bestSurf.seq) {
			best, bestSurf = h, s
		}
	}
	return best, bestSurf
}

// FindCeiling returns the lowest ceiling at (x, z) whose height is at or
// above y. With no candidate it returns CeilUpperLimit and nil.
func (idx *Index) FindCeiling(x, y, z float32) (float32, *Surface) {
	height, ceil := CeilUpperLimit, (*Surface)(nil)

	if c := idx.static.at(x, z); c != nil {
		height, ceil = ceilFromList(c.ceilings, x, y, z, height, ceil)
	}
	if c := idx.dynamic.at(x, z); c != nil {
		dynHeight, dynCeil := ceilFromList(c.ceilings, x, y, z, CeilUpperLimit, nil)
		if dynCeil != nil && (ceil == nil || dynHeight < height) {
			height, ceil = dynHeight, dynCeil
		}
	}
	return height, ceil
}

func ceilFromList(list []*Surface, x, y, z float32, best float32, bestSurf *Surface) (float32, *Surface) {
	for _, s := range list {
		if !insideXZ(s, x, z, true) {
			continue
		}
		h := s.HeightAt(x, z)
		if h < y {
			continue
		}
		if bestSurf == nil || h < best || (h == best && s.seq > bestSurf.seq) {
			best, bestSurf = h, s
		}
	}
	return best, bestSurf
}

// insideXZ tests whether (x, z) lies within the triangle's XZ projection.
// Floors wind one way and ceilings the other.
func insideXZ(s *Surface, x, z float32, ceiling bool) bool {
	x1, z1 := float32(s.Vertex1[0]), float32(s.Vertex1[2])
	x2, z2 := float32(s.Vertex2[0]), float32(s.Vertex2[2])
	x3, z3 := float32(s.Vertex3[0]), float32(s.Vertex3[2])

	e1 := (z1-z)*(x2-x1) - (x1-x)*(z2-z1)
	e2 := (z2-z)*(x3-x2) - (x2-x)*(z3-z2)
	e3 := (z3-z)*(x1-x3) - (x3-x)*(z1-z3)

	if ceiling {
		return e1 <= 0 && e2 <= 0 && e3 <= 0
	}
	return e1 >= 0 && e2 >= 0 && e3 >= 0
}

// WallCollision is the in/out parameter of FindWallCollisions. X, Y, Z are
// pushed out of any wall closer than Radius at height Y+OffsetY.
type WallCollision struct {
	X, Y, Z  float32
	OffsetY  float32
	Radius   float32
	Walls    [MaxWallHits]*Surface
	NumWalls int
}

// FindWallCollisions resolves the query point against nearby walls and
// returns the number of walls that pushed it.
func (idx *Index) FindWallCollisions(col *WallCollision) int {
	col.NumWalls = 0
	if col.Radius < 0 {
		col.Radius = 0
	}
	count := 0

	// One cell lookup per query, taken before any push.
	x, z := col.X, col.Z
	if c := idx.dynamic.at(x, z); c != nil {
		count += wallsFromList(c.walls, col)
	}
	if c := idx.static.at(x, z); c != nil {
		count += wallsFromList(c.walls, col)
	}
	return count
}

func wallsFromList(list []*Surface, col *WallCollision) int {
	radius := col.Radius
	x, y, z := col.X, col.Y+col.OffsetY, col.Z
	n := 0

	for _, s := range list {
		if y < float32(s.LowerY) || y > float32(s.UpperY) {
			continue
		}

		offset := s.Normal.X*x + s.Normal.Y*y + s.Normal.Z*z + s.OriginOffset
		if offset < -radius || offset > radius {
			continue
		}

		y1, y2, y3 := float32(s.Vertex1[1]), float32(s.Vertex2[1]), float32(s.Vertex3[1])
		if s.XProjection {
			w1, w2, w3 := -float32(s.Vertex1[2]), -float32(s.Vertex2[2]), -float32(s.Vertex3[2])
			p := -z
			e1 := (y1-y)*(w2-w1) - (w1-p)*(y2-y1)
			e2 := (y2-y)*(w3-w2) - (w2-p)*(y3-y2)
			e3 := (y3-y)*(w1-w3) - (w3-p)*(y1-y3)
			if s.Normal.X > 0 {
				if e1 > 0 || e2 > 0 || e3 > 0 {
					continue
				}
			} else if e1 < 0 || e2 < 0 || e3 < 0 {
				continue
			}
		} else {
			w1, w2, w3 := float32(s.Vertex1[0]), float32(s.Vertex2[0]), float32(s.Vertex3[0])
			p := x
			e1 := (y1-y)*(w2-w1) - (w1-p)*(y2-y1)
			e2 := (y2-y)*(w3-w2) - (w2-p)*(y3-y2)
			e3 := (y3-y)*(w1-w3) - (w3-p)*(y1-y3)
			if s.Normal.Z > 0 {
				if e1 > 0 || e2 > 0 || e3 > 0 {
					continue
				}
			} else if e1 < 0 || e2 < 0 || e3 < 0 {
				continue
			}
		}

		// Pushes accumulate on the output while tests keep using the entry point.
		col.X += s.Normal.X * (radius - offset)
		col.Z += s.Normal.Z * (radius - offset)

		if col.NumWalls < MaxWallHits {
			col.Walls[col.NumWalls] = s
			col.NumWalls++
		}
		n++
	}
	return n
}
