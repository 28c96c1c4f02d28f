package mario

import (
	"github.com/Faultbox/libsm64-go/internal/audio"
	"github.com/Faultbox/libsm64-go/internal/surface"
	smath "github.com/Faultbox/libsm64-go/pkg/math"
)

// findFloor looks for a floor at most FloorStepTolerance above y.
func (m *Mario) findFloor(x, y, z float32) (float32, *surface.Surface) {
	if m.idx == nil {
		return surface.FloorLowerLimit, nil
	}
	return m.idx.FindFloor(x, y+FloorStepTolerance, z)
}

// findCeil looks for a ceiling above a floor at height.
func (m *Mario) findCeil(x, height, z float32) (float32, *surface.Surface) {
	if m.idx == nil {
		return surface.CeilUpperLimit, nil
	}
	return m.idx.FindCeiling(x, height+80-FloorStepTolerance, z)
}

// resolveWalls pushes pos out of nearby walls and returns the last wall hit.
func (m *Mario) resolveWalls(pos *smath.Vec3, offsetY, radius float32) *surface.Surface {
	if m.idx == nil {
		return nil
	}
	col := surface.WallCollision{X: pos.X, Y: pos.Y, Z: pos.Z, OffsetY: offsetY, Radius: radius}
	var wall *surface.Surface
	if m.idx.FindWallCollisions(&col) > 0 && col.NumWalls > 0 {
		wall = col.Walls[col.NumWalls-1]
	}
	pos.X, pos.Y, pos.Z = col.X, col.Y, col.Z
	return wall
}

func (m *Mario) pushOutOfWalls(pos *smath.Vec3, offsetY, radius float32) int {
	if m.idx == nil {
		return 0
	}
	col := surface.WallCollision{X: pos.X, Y: pos.Y, Z: pos.Z, OffsetY: offsetY, Radius: radius}
	n := m.idx.FindWallCollisions(&col)
	pos.X, pos.Y, pos.Z = col.X, col.Y, col.Z
	return n
}

// SetFloorOverride forces the terrain and floor type used by slide logic.
// A negative floorType disables the floor part of the override.
func (m *Mario) SetFloorOverride(terrain uint16, floorType int16) {
	m.floorOverride = true
	m.overrideTerrain = terrain
	m.overrideFloor = floorType
}

// ClearFloorOverride restores per-surface terrain and floor types.
func (m *Mario) ClearFloorOverride() {
	m.floorOverride = false
	m.overrideFloor = -1
}

func (m *Mario) floorType() int16 {
	if m.floorOverride && m.overrideFloor >= 0 {
		return m.overrideFloor
	}
	if m.Floor == nil {
		return surface.TypeDefault
	}
	return m.Floor.Type
}

func (m *Mario) terrainType() uint16 {
	if m.floorOverride {
		return m.overrideTerrain & surface.TerrainMask
	}
	if m.Floor == nil {
		return surface.TerrainGrass
	}
	return m.Floor.Terrain & surface.TerrainMask
}

// FloorClass returns the slipperiness class of the current floor.
func (m *Mario) FloorClass() int16 {
	class := FloorClassDefault
	if m.terrainType() == surface.TerrainSlide {
		class = FloorClassVerySlippery
	}

	if m.Floor != nil || m.floorOverride {
		switch m.floorType() {
		case surface.TypeNotSlippery, surface.TypeHardNotSlippery, surface.TypeSwitch:
			class = FloorClassNotSlippery
		case surface.TypeSlippery, surface.TypeNoiseSlippery, surface.TypeHardSlippery, surface.TypeNoCamColSlippery:
			class = FloorClassSlippery
		case surface.TypeVerySlippery, surface.TypeIce, surface.TypeHardVerySlippery,
			surface.TypeNoiseVerySlippery73, surface.TypeNoiseVerySlippery74,
			surface.TypeNoiseVerySlippery, surface.TypeNoCamColVerySlippery:
			class = FloorClassVerySlippery
		}
	}

	// Crawling lets the character climb otherwise slippery floors.
	if m.Action == ActCrawling && m.Floor != nil && m.Floor.Normal.Y > 0.5 && class == FloorClassDefault {
		class = FloorClassNotSlippery
	}
	return class
}

var terrainSounds = [7][6]uint32{
	{audio.TerrainSoundDefault, audio.TerrainSoundStone, audio.TerrainSoundGrass, audio.TerrainSoundGrass, audio.TerrainSoundGrass, audio.TerrainSoundDefault},
	{audio.TerrainSoundStone, audio.TerrainSoundStone, audio.TerrainSoundStone, audio.TerrainSoundStone, audio.TerrainSoundGrass, audio.TerrainSoundGrass},
	{audio.TerrainSoundSnow, audio.TerrainSoundIce, audio.TerrainSoundSnow, audio.TerrainSoundIce, audio.TerrainSoundStone, audio.TerrainSoundStone},
	{audio.TerrainSoundSand, audio.TerrainSoundStone, audio.TerrainSoundSand, audio.TerrainSoundSand, audio.TerrainSoundStone, audio.TerrainSoundStone},
	{audio.TerrainSoundSpooky, audio.TerrainSoundSpooky, audio.TerrainSoundSpooky, audio.TerrainSoundSpooky, audio.TerrainSoundStone, audio.TerrainSoundStone},
	{audio.TerrainSoundDefault, audio.TerrainSoundStone, audio.TerrainSoundGrass, audio.TerrainSoundIce, audio.TerrainSoundStone, audio.TerrainSoundIce},
	{audio.TerrainSoundStone, audio.TerrainSoundStone, audio.TerrainSoundStone, audio.TerrainSoundStone, audio.TerrainSoundIce, audio.TerrainSoundIce},
}

func isQuicksand(t int16) bool {
	return t >= surface.TypeShallowQuicksand && t <= surface.TypeMovingQuicksand ||
		t == surface.TypeInstantMovingQuicksand
}

func (m *Mario) terrainSoundAddend() uint32 {
	if m.Floor == nil {
		return audio.TerrainSoundDefault << 16
	}
	ft := m.floorType()
	if m.FloorHeight < float32(m.WaterLevel)-10 {
		return audio.TerrainSoundWater << 16
	}
	if isQuicksand(ft) {
		return audio.TerrainSoundSand << 16
	}

	var kind int
	switch ft {
	case surface.TypeNotSlippery, surface.TypeHard, surface.TypeHardNotSlippery, surface.TypeSwitch:
		kind = 1
	case surface.TypeSlippery, surface.TypeHardSlippery, surface.TypeNoCamColSlippery:
		kind = 2
	case surface.TypeVerySlippery, surface.TypeIce, surface.TypeHardVerySlippery,
		surface.TypeNoiseVerySlippery73, surface.TypeNoiseVerySlippery74,
		surface.TypeNoiseVerySlippery, surface.TypeNoCamColVerySlippery:
		kind = 3
	case surface.TypeNoiseDefault:
		kind = 4
	case surface.TypeNoiseSlippery:
		kind = 5
	}
	terrain := m.terrainType()
	if int(terrain) >= len(terrainSounds) {
		terrain = 0
	}
	return terrainSounds[terrain][kind] << 16
}

func (m *Mario) facingDownhill(turnYaw bool) bool {
	yaw := m.FaceAngle.Y
	if turnYaw && m.ForwardVel < 0 {
		yaw += -0x8000
	}
	yaw = m.FloorAngle - yaw
	return -0x4000 < yaw && yaw < 0x4000
}

func (m *Mario) floorNormalY() float32 {
	if m.Floor == nil {
		return 1
	}
	return m.Floor.Normal.Y
}

func (m *Mario) floorIsSlippery() bool {
	if m.terrainType() == surface.TerrainSlide && m.floorNormalY() < 0.9998477 {
		return true
	}
	var normY float32
	switch m.FloorClass() {
	case FloorClassVerySlippery:
		normY = 0.9848077
	case FloorClassSlippery:
		normY = 0.9396926
	case FloorClassNotSlippery:
		normY = 0
	default:
		normY = 0.7880108
	}
	return m.floorNormalY() <= normY
}

func (m *Mario) floorIsSlope() bool {
	if m.terrainType() == surface.TerrainSlide && m.floorNormalY() < 0.9998477 {
		return true
	}
	var normY float32
	switch m.FloorClass() {
	case FloorClassVerySlippery:
		normY = 0.9961947
	case FloorClassSlippery:
		normY = 0.9848077
	case FloorClassNotSlippery:
		normY = 0.9396926
	default:
		normY = 0.9659258
	}
	return m.floorNormalY() <= normY
}

func (m *Mario) floorIsSteep() bool {
	if m.facingDownhill(false) {
		return false
	}
	var normY float32
	switch m.FloorClass() {
	case FloorClassVerySlippery:
		normY = 0.9659258
	case FloorClassSlippery:
		normY = 0.9396926
	default:
		normY = 0.8660254
	}
	return m.floorNormalY() <= normY
}

// floorHeightRelativePolar returns the floor height at a point around the
// character relative to its feet.
func (m *Mario) floorHeightRelativePolar(angle int16, dist float32) float32 {
	y := smath.Sins(m.FaceAngle.Y+angle) * dist
	x := smath.Coss(m.FaceAngle.Y+angle) * dist
	h, _ := m.findFloor(m.Pos.X+y, m.Pos.Y+100, m.Pos.Z+x)
	return h - m.Pos.Y
}

func (m *Mario) floorSlope(yawOffset int16) int16 {
	x := smath.Sins(m.FaceAngle.Y+yawOffset) * 5
	z := smath.Coss(m.FaceAngle.Y+yawOffset) * 5
	fwd, _ := m.findFloor(m.Pos.X+x, m.Pos.Y+100, m.Pos.Z+z)
	back, _ := m.findFloor(m.Pos.X-x, m.Pos.Y+100, m.Pos.Z-z)

	fwdDelta := fwd - m.Pos.Y
	backDelta := m.Pos.Y - back
	if fwdDelta*fwdDelta < backDelta*backDelta {
		return smath.Atan2s(5, fwdDelta)
	}
	return smath.Atan2s(5, backDelta)
}

func (m *Mario) setYVelBasedOnForwardSpeed(initial, multiplier float32) {
	m.Vel.Y = initial + m.ForwardVel*multiplier
	if m.SquishTimer != 0 || m.QuicksandDepth > 1 {
		m.Vel.Y *= 0.5
	}
}

func (m *Mario) setVelFromPitchAndYaw() {
	m.SlideVelX = smath.Coss(m.FaceAngle.X) * m.ForwardVel * smath.Sins(m.FaceAngle.Y)
	m.Vel.X = m.SlideVelX
	m.Vel.Y = m.ForwardVel * smath.Sins(m.FaceAngle.X)
	m.SlideVelZ = smath.Coss(m.FaceAngle.X) * m.ForwardVel * smath.Coss(m.FaceAngle.Y)
	m.Vel.Z = m.SlideVelZ
}
