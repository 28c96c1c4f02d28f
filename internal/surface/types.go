// Package surface stores collidable level triangles in a uniform XZ grid and
// answers floor, ceiling and wall queries against them.
package surface

import (
	"math"

	m "github.com/Faultbox/libsm64-go/pkg/math"
)

// Surface types. Only the ones the movement code branches on are named.
const (
	TypeDefault                int16 = 0x0000
	TypeBurning                int16 = 0x0001
	TypeHangable               int16 = 0x0005
	TypeSlow                   int16 = 0x0009
	TypeDeathPlane             int16 = 0x000A
	TypeWater                  int16 = 0x000D
	TypeFlowingWater           int16 = 0x000E
	TypeIntangible             int16 = 0x0012
	TypeVerySlippery           int16 = 0x0013
	TypeSlippery               int16 = 0x0014
	TypeNotSlippery            int16 = 0x0015
	TypeShallowQuicksand       int16 = 0x0021
	TypeDeepQuicksand          int16 = 0x0022
	TypeInstantQuicksand       int16 = 0x0023
	TypeDeepMovingQuicksand    int16 = 0x0024
	TypeShallowMovingQuicksand int16 = 0x0025
	TypeQuicksand              int16 = 0x0026
	TypeMovingQuicksand        int16 = 0x0027
	TypeWallMisc               int16 = 0x0028
	TypeNoiseDefault           int16 = 0x0029
	TypeNoiseSlippery          int16 = 0x002A
	TypeHorizontalWind         int16 = 0x002C
	TypeInstantMovingQuicksand int16 = 0x002D
	TypeIce                    int16 = 0x002E
	TypeHard                   int16 = 0x0030
	TypeHardSlippery           int16 = 0x0035
	TypeHardVerySlippery       int16 = 0x0036
	TypeHardNotSlippery        int16 = 0x0037
	TypeVerticalWind           int16 = 0x0038
	TypeNoiseVerySlippery73    int16 = 0x0073
	TypeNoiseVerySlippery74    int16 = 0x0074
	TypeNoiseVerySlippery      int16 = 0x0075
	TypeNoCamColVerySlippery   int16 = 0x0078
	TypeNoCamColSlippery       int16 = 0x0079
	TypeSwitch                 int16 = 0x007A
	TypeVanishCapWalls         int16 = 0x007B
)

// Terrain kinds select footstep sounds and slide behaviour.
const (
	TerrainGrass  uint16 = 0x0000
	TerrainStone  uint16 = 0x0001
	TerrainSnow   uint16 = 0x0002
	TerrainSand   uint16 = 0x0003
	TerrainSpooky uint16 = 0x0004
	TerrainWater  uint16 = 0x0005
	TerrainSlide  uint16 = 0x0006
	TerrainMask   uint16 = 0x0007
)

// Query limits returned when nothing is found.
const (
	FloorLowerLimit float32 = -11000
	CeilUpperLimit  float32 = 20000
)

// DefaultCellSize is the edge length of a grid cell in world units.
const DefaultCellSize = 1024

// MaxWallHits is the number of walls a single collision query records.
const MaxWallHits = 4

// Class is the collision role of a triangle, derived from its normal.
type Class uint8

const (
	ClassFloor Class = iota
	ClassCeiling
	ClassWall
)

func (c Class) String() string {
	switch c {
	case ClassFloor:
		return "floor"
	case ClassCeiling:
		return "ceiling"
	default:
		return "wall"
	}
}

// Def is a triangle as supplied by the host: integer vertices plus metadata.
type Def struct {
	Type     int16       `yaml:"type" msgpack:"type"`
	Force    int16       `yaml:"force" msgpack:"force"`
	Terrain  uint16      `yaml:"terrain" msgpack:"terrain"`
	Vertices [3][3]int32 `yaml:"vertices" msgpack:"vertices"`
}

// Transform places a surface object in the world.
type Transform struct {
	Position m.Vec3
	Rotation m.Vec3s
}

// TransformFromEuler converts a host transform with rotations in degrees.
func TransformFromEuler(position, eulerDegrees [3]float32) Transform {
	var rot m.Vec3s
	rot.X = degreesToAngle(eulerDegrees[0])
	rot.Y = degreesToAngle(eulerDegrees[1])
	rot.Z = degreesToAngle(eulerDegrees[2])
	return Transform{
		Position: m.Vec3{X: position[0], Y: position[1], Z: position[2]},
		Rotation: rot,
	}
}

func degreesToAngle(deg float32) int16 {
	return int16(int32(math.Round(float64(deg) / 180.0 * 32768.0)))
}

// Matrix returns the world matrix for the transform.
func (t Transform) Matrix() m.Mat4 {
	return m.RotateZXY(t.Position, t.Rotation)
}

// ObjectDef is a group of triangles that share one transform.
type ObjectDef struct {
	Transform Transform
	Surfaces  []Def
}

// ObjectHandle addresses a loaded surface object. The low 16 bits are the
// slot, the high 16 bits a generation that changes when the slot is freed.
// The zero value never resolves.
type ObjectHandle uint32

// NoObject is the handle of static geometry.
const NoObject ObjectHandle = 0

func makeHandle(slot int, gen uint16) ObjectHandle {
	return ObjectHandle(uint32(gen)<<16 | uint32(slot)&0xFFFF)
}

// Slot returns the pool slot encoded in the handle.
func (h ObjectHandle) Slot() int { return int(uint32(h) & 0xFFFF) }

// Gen returns the generation encoded in the handle.
func (h ObjectHandle) Gen() uint16 { return uint16(uint32(h) >> 16) }

// Surface is a world-space triangle ready for collision queries.
type Surface struct {
	Type    int16
	Force   int16
	Terrain uint16
	Class   Class

	Vertex1, Vertex2, Vertex3 [3]int32

	Normal       m.Vec3
	OriginOffset float32
	LowerY       int32
	UpperY       int32

	// XProjection is set on walls that face mostly along X; their inside
	// test runs in the ZY plane.
	XProjection bool

	Object ObjectHandle
	seq    uint64
	cells  []cellKey
}

// Dynamic reports whether the surface belongs to a surface object.
func (s *Surface) Dynamic() bool { return s.Object != NoObject }

// HeightAt evaluates the surface plane at (x, z).
func (s *Surface) HeightAt(x, z float32) float32 {
	return -(x*s.Normal.X + s.Normal.Z*z + s.OriginOffset) / s.Normal.Y
}

// newSurface builds a Surface from world vertices. Degenerate triangles
// return nil.
func newSurface(def Def, verts [3][3]int32) *Surface {
	x1, y1, z1 := float64(verts[0][0]), float64(verts[0][1]), float64(verts[0][2])
	x2, y2, z2 := float64(verts[1][0]), float64(verts[1][1]), float64(verts[1][2])
	x3, y3, z3 := float64(verts[2][0]), float64(verts[2][1]), float64(verts[2][2])

	nx := (y2-y1)*(z3-z2) - (z2-z1)*(y3-y2)
	ny := (z2-z1)*(x3-x2) - (x2-x1)*(z3-z2)
	nz := (x2-x1)*(y3-y2) - (y2-y1)*(x3-x2)
	mag := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if mag < 0.0001 {
		return nil
	}
	nx /= mag
	ny /= mag
	nz /= mag

	minY := min(verts[0][1], verts[1][1], verts[2][1])
	maxY := max(verts[0][1], verts[1][1], verts[2][1])

	s := &Surface{
		Type:         def.Type,
		Force:        def.Force,
		Terrain:      def.Terrain,
		Vertex1:      verts[0],
		Vertex2:      verts[1],
		Vertex3:      verts[2],
		Normal:       m.Vec3{X: float32(nx), Y: float32(ny), Z: float32(nz)},
		OriginOffset: float32(-(nx*x1 + ny*y1 + nz*z1)),
		LowerY:       minY - 5,
		UpperY:       maxY + 5,
	}

	switch {
	case ny > 0.01:
		s.Class = ClassFloor
	case ny < -0.01:
		s.Class = ClassCeiling
	default:
		s.Class = ClassWall
		s.XProjection = nx < -0.707 || nx > 0.707
	}
	return s
}
