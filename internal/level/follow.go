package level

import (
	"github.com/Faultbox/libsm64-go/internal/mario"
	smath "github.com/Faultbox/libsm64-go/pkg/math"
)

// ArriveRadius is how close a walker must get to a waypoint before heading
// for the next one.
const ArriveRadius = 40

// slowRadius is where the stick starts easing off before the final waypoint.
const slowRadius = 200

// Steer returns inputs that walk a character at pos toward the XZ target.
// The camera looks down +Z so the stick maps straight onto world axes.
func Steer(pos smath.Vec3, targetX, targetZ float32, ease bool) mario.Inputs {
	dx := targetX - pos.X
	dz := targetZ - pos.Z
	dist := smath.Sqrtf(dx*dx + dz*dz)
	in := mario.Inputs{CamLookZ: 1}
	if dist < 1 {
		return in
	}
	mag := float32(1)
	if ease && dist < slowRadius {
		mag = dist / slowRadius
	}
	in.StickX = -dx / dist * mag
	in.StickY = -dz / dist * mag
	return in
}

// Follower walks one character along a path on a NavGrid.
type Follower struct {
	grid *NavGrid

	// Current path in world XZ
	path      [][2]float32
	pathIndex int

	// IsFollowingPath is set while waypoints remain.
	IsFollowingPath bool
}

// NewFollower creates a follower on grid. A nil grid makes every MoveTo a
// straight line.
func NewFollower(grid *NavGrid) *Follower {
	return &Follower{grid: grid}
}

// MoveTo plans a route from pos to the XZ target. It returns false when the
// grid has no route; the follower then does nothing.
func (f *Follower) MoveTo(pos smath.Vec3, targetX, targetZ float32) bool {
	f.ClearPath()

	if f.grid == nil {
		f.path = [][2]float32{{targetX, targetZ}}
		f.IsFollowingPath = true
		return true
	}

	sx, sy := f.grid.WorldToTile(pos.X, pos.Z)
	gx, gy := f.grid.WorldToTile(targetX, targetZ)
	tiles := f.grid.FindPath(sx, sy, gx, gy)
	if len(tiles) == 0 {
		return false
	}

	// Skip the first node as it's the current position, and finish on the
	// exact target rather than its tile centre.
	for _, t := range tiles[1:] {
		x, z := f.grid.TileToWorld(t[0], t[1])
		f.path = append(f.path, [2]float32{x, z})
	}
	if len(f.path) > 0 {
		f.path[len(f.path)-1] = [2]float32{targetX, targetZ}
	} else {
		f.path = [][2]float32{{targetX, targetZ}}
	}
	f.IsFollowingPath = true
	return true
}

// Update returns the inputs for this tick and advances past reached
// waypoints.
func (f *Follower) Update(pos smath.Vec3) mario.Inputs {
	for f.IsFollowingPath {
		wp := f.path[f.pathIndex]
		if pos.HorizontalDistance(smath.Vec3{X: wp[0], Z: wp[1]}) > ArriveRadius {
			return Steer(pos, wp[0], wp[1], f.pathIndex == len(f.path)-1)
		}
		f.pathIndex++
		if f.pathIndex >= len(f.path) {
			f.IsFollowingPath = false
		}
	}
	return mario.Inputs{CamLookZ: 1}
}

// ClearPath stops the current path following.
func (f *Follower) ClearPath() {
	f.path = nil
	f.pathIndex = 0
	f.IsFollowingPath = false
}

// Path returns the remaining waypoints.
func (f *Follower) Path() [][2]float32 {
	if f.pathIndex >= len(f.path) {
		return nil
	}
	return f.path[f.pathIndex:]
}
