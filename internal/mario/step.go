package mario

import (
	"github.com/Faultbox/libsm64-go/internal/surface"
	smath "github.com/Faultbox/libsm64-go/pkg/math"
)

var movingSandSpeeds = [4]float32{12, 8, 4, 0}

func (m *Mario) updateGfxFromPos() {
	m.GfxPos = m.Pos
	m.GfxAngle = smath.Vec3s{Y: m.FaceAngle.Y}
}

func (m *Mario) stopAndSetHeightToFloor() {
	m.SetForwardVel(0)
	m.Vel.Y = 0
	m.Pos.Y = m.FloorHeight
	m.updateGfxFromPos()
}

func (m *Mario) updateQuicksand(sinkingSpeed float32) bool {
	if m.Action&ActFlagRidingShell != 0 {
		m.QuicksandDepth = 0
		return false
	}
	if m.QuicksandDepth < 1.1 {
		m.QuicksandDepth = 1.1
	}

	switch m.floorType() {
	case surface.TypeShallowQuicksand:
		if m.QuicksandDepth += sinkingSpeed; m.QuicksandDepth >= 10 {
			m.QuicksandDepth = 10
		}
	case surface.TypeShallowMovingQuicksand:
		if m.QuicksandDepth += sinkingSpeed; m.QuicksandDepth >= 25 {
			m.QuicksandDepth = 25
		}
	case surface.TypeQuicksand, surface.TypeMovingQuicksand:
		if m.QuicksandDepth += sinkingSpeed; m.QuicksandDepth >= 60 {
			m.QuicksandDepth = 60
		}
	case surface.TypeDeepQuicksand, surface.TypeDeepMovingQuicksand:
		if m.QuicksandDepth += sinkingSpeed; m.QuicksandDepth >= 160 {
			return m.dropAndSetAction(ActQuicksandDeath, 0)
		}
	case surface.TypeInstantQuicksand, surface.TypeInstantMovingQuicksand:
		return m.dropAndSetAction(ActQuicksandDeath, 0)
	default:
		m.QuicksandDepth = 0
	}
	return false
}

func (m *Mario) updateMovingSand() bool {
	if m.Floor == nil {
		return false
	}
	switch m.Floor.Type {
	case surface.TypeDeepMovingQuicksand, surface.TypeShallowMovingQuicksand,
		surface.TypeMovingQuicksand, surface.TypeInstantMovingQuicksand:
		pushAngle := m.Floor.Force << 8
		pushSpeed := movingSandSpeeds[(m.Floor.Force>>8)&3]
		m.Vel.X += pushSpeed * smath.Sins(pushAngle)
		m.Vel.Z += pushSpeed * smath.Coss(pushAngle)
		return true
	}
	return false
}

func (m *Mario) updateWindyGround() bool {
	if m.Floor == nil || m.Floor.Type != surface.TypeHorizontalWind {
		return false
	}
	pushAngle := m.Floor.Force << 8
	var pushSpeed float32
	if m.Action&ActFlagMoving != 0 {
		dyaw := m.FaceAngle.Y - pushAngle
		if m.ForwardVel > 0 {
			pushSpeed = -m.ForwardVel * 0.5
		} else {
			pushSpeed = -8
		}
		if dyaw > -0x4000 && dyaw < 0x4000 {
			pushSpeed *= -1
		}
		pushSpeed *= smath.Coss(dyaw)
	} else {
		pushSpeed = 3.2 + float32(m.counter%4)
	}
	m.Vel.X += pushSpeed * smath.Sins(pushAngle)
	m.Vel.Z += pushSpeed * smath.Coss(pushAngle)
	return true
}

func (m *Mario) stationaryGroundStep() int {
	m.SetForwardVel(0)
	takeStep := m.updateMovingSand()
	takeStep = m.updateWindyGround() || takeStep
	if takeStep {
		return m.performGroundStep()
	}
	m.Pos.Y = m.FloorHeight
	m.updateGfxFromPos()
	return GroundStepNone
}

func (m *Mario) performGroundQuarterStep(next smath.Vec3) int {
	m.resolveWalls(&next, 30, 24)
	upperWall := m.resolveWalls(&next, 60, 50)

	floorHeight, floor := m.findFloor(next.X, next.Y, next.Z)
	ceilHeight, _ := m.findCeil(next.X, floorHeight, next.Z)

	m.Wall = upperWall
	if floor == nil {
		return GroundStepHitWallStopQSteps
	}

	if m.Action&ActFlagRidingShell != 0 && floorHeight < float32(m.WaterLevel) {
		floorHeight = float32(m.WaterLevel)
	}

	if next.Y > floorHeight+100 {
		if next.Y+HitboxHeight >= ceilHeight {
			return GroundStepHitWallStopQSteps
		}
		m.Pos = next
		m.Floor = floor
		m.FloorHeight = floorHeight
		return GroundStepLeftGround
	}

	if floorHeight+HitboxHeight >= ceilHeight {
		return GroundStepHitWallStopQSteps
	}

	m.Pos = smath.Vec3{X: next.X, Y: floorHeight, Z: next.Z}
	m.Floor = floor
	m.FloorHeight = floorHeight

	if upperWall != nil {
		dyaw := smath.Atan2s(upperWall.Normal.Z, upperWall.Normal.X) - m.FaceAngle.Y
		if dyaw >= 0x2AAA && dyaw <= 0x5555 {
			return GroundStepNone
		}
		if dyaw <= -0x2AAA && dyaw >= -0x5555 {
			return GroundStepNone
		}
		return GroundStepHitWallContinueQSteps
	}
	return GroundStepNone
}

// performGroundStep moves along the floor in four quarter steps.
func (m *Mario) performGroundStep() int {
	result := GroundStepNone
	for i := 0; i < 4; i++ {
		ny := m.floorNormalY()
		next := smath.Vec3{
			X: m.Pos.X + ny*(m.Vel.X/4),
			Y: m.Pos.Y,
			Z: m.Pos.Z + ny*(m.Vel.Z/4),
		}
		result = m.performGroundQuarterStep(next)
		if result == GroundStepLeftGround || result == GroundStepHitWallStopQSteps {
			break
		}
	}

	m.TerrainSoundAddend = m.terrainSoundAddend()
	m.updateGfxFromPos()
	if result == GroundStepHitWallContinueQSteps {
		result = GroundStepHitWall
	}
	return result
}

func (m *Mario) checkLedgeGrab(wall *surface.Surface, intended, next smath.Vec3) bool {
	if m.Vel.Y > 0 {
		return false
	}
	dx := next.X - intended.X
	dz := next.Z - intended.Z
	if dx*m.Vel.X+dz*m.Vel.Z > 0 {
		return false
	}

	ledge := smath.Vec3{
		X: next.X - wall.Normal.X*60,
		Z: next.Z - wall.Normal.Z*60,
	}
	var ledgeFloor *surface.Surface
	ledge.Y, ledgeFloor = m.findFloor(ledge.X, next.Y+160, ledge.Z)
	if ledgeFloor == nil || ledge.Y-next.Y <= 100 {
		return false
	}

	m.Pos = ledge
	m.Floor = ledgeFloor
	m.FloorHeight = ledge.Y
	m.FloorAngle = smath.Atan2s(ledgeFloor.Normal.Z, ledgeFloor.Normal.X)
	m.FaceAngle.X = 0
	m.FaceAngle.Y = smath.Atan2s(wall.Normal.Z, wall.Normal.X) + -0x8000
	return true
}

func (m *Mario) performAirQuarterStep(intended smath.Vec3, stepArg uint32) int {
	next := intended
	upperWall := m.resolveWalls(&next, 150, 50)
	lowerWall := m.resolveWalls(&next, 30, 50)

	floorHeight, floor := m.findFloor(next.X, next.Y, next.Z)
	ceilHeight, _ := m.findCeil(next.X, floorHeight, next.Z)

	m.Wall = nil

	if floor == nil {
		if next.Y <= m.FloorHeight {
			m.Pos.Y = m.FloorHeight
			return AirStepLanded
		}
		m.Pos.Y = next.Y
		return AirStepHitWall
	}

	if m.Action&ActFlagRidingShell != 0 && floorHeight < float32(m.WaterLevel) {
		floorHeight = float32(m.WaterLevel)
	}

	if next.Y <= floorHeight {
		if ceilHeight-floorHeight > HitboxHeight {
			m.Pos.X = next.X
			m.Pos.Z = next.Z
			m.Floor = floor
			m.FloorHeight = floorHeight
		}
		m.Pos.Y = floorHeight
		return AirStepLanded
	}

	if next.Y+HitboxHeight > ceilHeight {
		if m.Vel.Y >= 0 {
			m.Vel.Y = 0
			if stepArg&AirStepCheckHang != 0 && m.Ceil != nil && m.Ceil.Type == surface.TypeHangable {
				return AirStepGrabbedCeiling
			}
			return AirStepNone
		}
		if next.Y <= m.FloorHeight {
			m.Pos.Y = m.FloorHeight
			return AirStepLanded
		}
		m.Pos.Y = next.Y
		return AirStepHitWall
	}

	if stepArg&AirStepCheckLedgeGrab != 0 && upperWall == nil && lowerWall != nil {
		if m.checkLedgeGrab(lowerWall, intended, next) {
			return AirStepGrabbedLedge
		}
		m.Pos = next
		m.Floor = floor
		m.FloorHeight = floorHeight
		return AirStepNone
	}

	m.Pos = next
	m.Floor = floor
	m.FloorHeight = floorHeight

	if upperWall != nil || lowerWall != nil {
		m.Wall = upperWall
		if m.Wall == nil {
			m.Wall = lowerWall
		}
		dyaw := smath.Atan2s(m.Wall.Normal.Z, m.Wall.Normal.X) - m.FaceAngle.Y
		if m.Wall.Type == surface.TypeBurning {
			return AirStepHitLavaWall
		}
		if dyaw < -0x6000 || dyaw > 0x6000 {
			m.Flags |= FlagHitWallInAir
			return AirStepHitWall
		}
	}
	return AirStepNone
}

func (m *Mario) applyTwirlGravity() {
	heaviness := float32(1)
	if m.AngleVel.Y > 1024 {
		heaviness = 1024 / float32(m.AngleVel.Y)
	}
	terminal := TerminalVelocity * heaviness
	m.Vel.Y -= 4 * heaviness
	if m.Vel.Y < terminal {
		m.Vel.Y = terminal
	}
}

func (m *Mario) shouldStrengthenGravityForJumpAscent() bool {
	if m.Flags&FlagJumping == 0 {
		return false
	}
	if m.Action&(ActFlagIntangible|ActFlagInvulnerable) != 0 {
		return false
	}
	if m.Input&InputADown == 0 && m.Vel.Y > 20 {
		return m.Action&ActFlagControlJumpHeight != 0
	}
	return false
}

func (m *Mario) fallTo(accel, limit float32) {
	m.Vel.Y -= accel
	if m.Vel.Y < limit {
		m.Vel.Y = limit
	}
}

func (m *Mario) applyGravity() {
	switch {
	case m.Action == ActTwirling && m.Vel.Y < 0:
		m.applyTwirlGravity()
	case m.Action == ActShotFromCannon:
		m.fallTo(1, TerminalVelocity)
	case m.Action == ActLongJump || m.Action == ActSlideKick || m.Action == ActBbhEnterSpin:
		m.fallTo(2, TerminalVelocity)
	case m.Action == ActLavaBoost || m.Action == ActFallAfterStarGrab:
		m.fallTo(3.2, -65)
	case m.Action == ActGettingBlown:
		m.fallTo(m.windGravity, TerminalVelocity)
	case m.shouldStrengthenGravityForJumpAscent():
		m.Vel.Y /= 4
	case m.Action&ActFlagMetalWater != 0:
		m.fallTo(1.6, -16)
	case m.Flags&FlagWingCap != 0 && m.Vel.Y < 0 && m.Input&InputADown != 0:
		m.Body.WingFlutter = true
		m.Vel.Y -= 2
		if m.Vel.Y < -37.5 {
			if m.Vel.Y += 4; m.Vel.Y > -37.5 {
				m.Vel.Y = -37.5
			}
		}
	default:
		m.fallTo(4, TerminalVelocity)
	}
}

func (m *Mario) applyVerticalWind() {
	if m.Action == ActGroundPound || m.Floor == nil || m.Floor.Type != surface.TypeVerticalWind {
		return
	}
	offsetY := m.Pos.Y + 1500
	if offsetY <= -3000 || offsetY >= 2000 {
		return
	}
	maxVelY := float32(50)
	if offsetY >= 0 {
		maxVelY = 10000 / (offsetY + 200)
	}
	if m.Vel.Y < maxVelY {
		if m.Vel.Y += maxVelY / 8; m.Vel.Y > maxVelY {
			m.Vel.Y = maxVelY
		}
	}
}

// performAirStep moves through the air in four quarter steps, then applies
// gravity. A landing, grab or lava wall ends the remaining quarter steps.
func (m *Mario) performAirStep(stepArg uint32) int {
	result := AirStepNone
	m.Wall = nil

	for i := 0; i < 4; i++ {
		intended := smath.Vec3{
			X: m.Pos.X + m.Vel.X/4,
			Y: m.Pos.Y + m.Vel.Y/4,
			Z: m.Pos.Z + m.Vel.Z/4,
		}
		q := m.performAirQuarterStep(intended, stepArg)
		if q != AirStepNone {
			result = q
		}
		if q == AirStepLanded || q == AirStepGrabbedLedge || q == AirStepGrabbedCeiling || q == AirStepHitLavaWall {
			break
		}
	}

	if m.Vel.Y >= 0 {
		m.PeakHeight = m.Pos.Y
	}
	m.TerrainSoundAddend = m.terrainSoundAddend()
	if m.Action != ActFlying {
		m.applyGravity()
	}
	m.applyVerticalWind()
	m.updateGfxFromPos()
	return result
}
