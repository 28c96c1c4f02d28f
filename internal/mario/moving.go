package mario

import (
	"github.com/Faultbox/libsm64-go/internal/anim"
	"github.com/Faultbox/libsm64-go/internal/audio"
	"github.com/Faultbox/libsm64-go/internal/surface"
	smath "github.com/Faultbox/libsm64-go/pkg/math"
)

// landingAction describes how a landing resolves.
type landingAction struct {
	numFrames       uint16
	doubleJumpTimer uint8
	verySteep       Action
	end             Action
	aPressed        Action
	offFloor        Action
	slide           Action
}

var (
	jumpLandAction          = landingAction{4, 5, ActFreefall, ActJumpLandStop, ActDoubleJump, ActFreefall, ActBeginSliding}
	freefallLandAction      = landingAction{4, 5, ActFreefall, ActFreefallLandStop, ActDoubleJump, ActFreefall, ActBeginSliding}
	sideFlipLandAction      = landingAction{4, 5, ActFreefall, ActSideFlipLandStop, ActDoubleJump, ActFreefall, ActBeginSliding}
	longJumpLandAction      = landingAction{6, 5, ActFreefall, ActLongJumpLandStop, ActLongJump, ActFreefall, ActBeginSliding}
	doubleJumpLandAction    = landingAction{4, 5, ActFreefall, ActDoubleJumpLandStop, ActJump, ActFreefall, ActBeginSliding}
	tripleJumpLandAction    = landingAction{4, 0, ActFreefall, ActTripleJumpLandStop, ActUninitialized, ActFreefall, ActBeginSliding}
	backflipLandAction      = landingAction{4, 0, ActFreefall, ActBackflipLandStop, ActBackflip, ActFreefall, ActBeginSliding}
	quicksandJumpLandAction = landingAction{25, 5, ActFreefall, ActJumpLandStop, ActDoubleJump, ActFreefall, ActBeginSliding}
)

func init() {
	registerActions(map[Action]handler{
		ActWalking:              (*Mario).actWalking,
		ActTurningAround:        (*Mario).actTurningAround,
		ActFinishTurningAround:  (*Mario).actFinishTurningAround,
		ActBraking:              (*Mario).actBraking,
		ActDecelerating:         (*Mario).actDecelerating,
		ActCrawling:             (*Mario).actCrawling,
		ActBurningGround:        (*Mario).actBurningGround,
		ActButtSlide:            (*Mario).actButtSlide,
		ActStomachSlide:         (*Mario).actStomachSlide,
		ActDiveSlide:            (*Mario).actDiveSlide,
		ActCrouchSlide:          (*Mario).actCrouchSlide,
		ActSlideKickSlide:       (*Mario).actSlideKickSlide,
		ActMovePunching:         (*Mario).actMovePunching,
		ActHardBackwardGroundKb: (*Mario).actHardBackwardGroundKb,
		ActHardForwardGroundKb:  (*Mario).actHardForwardGroundKb,
		ActBackwardGroundKb:     (*Mario).actBackwardGroundKb,
		ActForwardGroundKb:      (*Mario).actForwardGroundKb,
		ActSoftBackwardGroundKb: (*Mario).actSoftBackwardGroundKb,
		ActSoftForwardGroundKb:  (*Mario).actSoftForwardGroundKb,
		ActGroundBonk:           (*Mario).actGroundBonk,
		ActJumpLand:             (*Mario).actJumpLand,
		ActFreefallLand:         (*Mario).actFreefallLand,
		ActDoubleJumpLand:       (*Mario).actDoubleJumpLand,
		ActSideFlipLand:         (*Mario).actSideFlipLand,
		ActQuicksandJumpLand:    (*Mario).actQuicksandJumpLand,
		ActTripleJumpLand:       (*Mario).actTripleJumpLand,
		ActLongJumpLand:         (*Mario).actLongJumpLand,
		ActBackflipLand:         (*Mario).actBackflipLand,
	})
}

func (m *Mario) tiltBodyRunning() int16 {
	pitch := m.floorSlope(0)
	pitch = int16(float32(pitch) * m.ForwardVel / 40)
	return -pitch
}

func (m *Mario) playStepSound(frame1, frame2 int16) {
	if !m.isAnimPastFrame(frame1) && !m.isAnimPastFrame(frame2) {
		return
	}
	tiptoe := m.Anim.ID == anim.Tiptoe
	switch {
	case m.Flags&FlagMetalCap != 0:
		if tiptoe {
			m.playSoundAndSpawnParticles(audio.SoundActionMetalStepTiptoe, false)
		} else {
			m.playSoundAndSpawnParticles(audio.SoundActionMetalStep, false)
		}
	case m.QuicksandDepth > 50:
		m.playSound(audio.SoundActionQuicksandStep)
	case tiptoe:
		m.playSoundAndSpawnParticles(audio.SoundActionTerrainStepTiptoe, false)
	default:
		m.playSoundAndSpawnParticles(audio.SoundActionTerrainStep, false)
	}
}

// alignWithFloor snaps to the floor and tilts the model along its slope.
func (m *Mario) alignWithFloor() {
	m.Pos.Y = m.FloorHeight
	m.GfxPos = m.Pos
	m.GfxAngle = smath.Vec3s{
		X: -m.floorSlope(0),
		Y: m.FaceAngle.Y,
		Z: m.floorSlope(-0x4000),
	}
}

func (m *Mario) beginWalkingAction(fwd float32, action Action, arg uint32) bool {
	m.FaceAngle.Y = m.IntendedYaw
	m.SetForwardVel(fwd)
	return m.SetAction(action, arg)
}

func (m *Mario) checkLedgeClimbDown() {
	if m.ForwardVel >= 10 || m.idx == nil {
		return
	}
	col := surface.WallCollision{X: m.Pos.X, Y: m.Pos.Y, Z: m.Pos.Z, Radius: 10, OffsetY: -10}
	if m.idx.FindWallCollisions(&col) == 0 || col.NumWalls == 0 {
		return
	}
	floorHeight, floor := m.findFloor(col.X, col.Y, col.Z)
	if floor == nil || col.Y-floorHeight <= 160 {
		return
	}
	wall := col.Walls[col.NumWalls-1]
	wallAngle := smath.Atan2s(wall.Normal.Z, wall.Normal.X)
	dyaw := wallAngle - m.FaceAngle.Y
	if dyaw > -0x4000 && dyaw < 0x4000 {
		m.Pos.X = col.X - 20*wall.Normal.X
		m.Pos.Z = col.Z - 20*wall.Normal.Z
		m.FaceAngle.X = 0
		m.FaceAngle.Y = wallAngle + -0x8000
		m.SetAction(ActLedgeClimbDown, 0)
		m.setAnim(anim.ClimbDownLedge)
	}
}

func (m *Mario) slideBonk(fastAction, slowAction Action) {
	if m.ForwardVel > 16 {
		m.bonkReflection(true)
		m.dropAndSetAction(fastAction, 0)
	} else {
		m.SetForwardVel(0)
		m.SetAction(slowAction, 0)
	}
}

func (m *Mario) setTripleJumpAction(Action, uint32) bool {
	switch {
	case m.Flags&FlagWingCap != 0:
		return m.SetAction(ActFlyingTripleJump, 0)
	case m.ForwardVel > 20:
		return m.SetAction(ActTripleJump, 0)
	default:
		return m.SetAction(ActJump, 0)
	}
}

func (m *Mario) updateSlidingAngle(accel, lossFactor float32) {
	floor := m.Floor
	slopeAngle := smath.Atan2s(floor.Normal.Z, floor.Normal.X)
	steepness := smath.Sqrtf(floor.Normal.X*floor.Normal.X + floor.Normal.Z*floor.Normal.Z)

	m.SlideVelX += accel * steepness * smath.Sins(slopeAngle)
	m.SlideVelZ += accel * steepness * smath.Coss(slopeAngle)
	m.SlideVelX *= lossFactor
	m.SlideVelZ *= lossFactor

	m.SlideYaw = smath.Atan2s(m.SlideVelZ, m.SlideVelX)

	dyaw := int32(m.FaceAngle.Y - m.SlideYaw)
	switch {
	case dyaw > 0 && dyaw <= 0x4000:
		if dyaw -= 0x200; dyaw < 0 {
			dyaw = 0
		}
	case dyaw > -0x4000 && dyaw < 0:
		if dyaw += 0x200; dyaw > 0 {
			dyaw = 0
		}
	case dyaw > 0x4000 && dyaw < 0x8000:
		if dyaw += 0x200; dyaw > 0x8000 {
			dyaw = 0x8000
		}
	case dyaw > -0x8000 && dyaw < -0x4000:
		if dyaw -= 0x200; dyaw < -0x8000 {
			dyaw = -0x8000
		}
	}

	m.FaceAngle.Y = m.SlideYaw + int16(dyaw)
	m.Vel = smath.Vec3{X: m.SlideVelX, Z: m.SlideVelZ}

	m.updateMovingSand()
	m.updateWindyGround()

	m.ForwardVel = smath.Sqrtf(m.SlideVelX*m.SlideVelX + m.SlideVelZ*m.SlideVelZ)
	if m.ForwardVel > 100 {
		m.SlideVelX = m.SlideVelX * 100 / m.ForwardVel
		m.SlideVelZ = m.SlideVelZ * 100 / m.ForwardVel
	}
	if dyaw < -0x4000 || dyaw > 0x4000 {
		m.ForwardVel *= -1
	}
}

// updateSliding steers a slide and reports whether it came to rest.
func (m *Mario) updateSliding(stopSpeed float32) bool {
	dyaw := m.IntendedYaw - m.SlideYaw
	forward := smath.Coss(dyaw)
	sideward := smath.Sins(dyaw)
	if forward < 0 && m.ForwardVel >= 0 {
		forward *= 0.5 + 0.5*m.ForwardVel/100
	}

	steer := m.IntendedMag / 32 * forward * 0.02
	var accel, lossFactor float32
	switch m.FloorClass() {
	case FloorClassVerySlippery:
		accel, lossFactor = 10, steer+0.98
	case FloorClassSlippery:
		accel, lossFactor = 8, steer+0.96
	case FloorClassNotSlippery:
		accel, lossFactor = 5, steer+0.92
	default:
		accel, lossFactor = 7, steer+0.92
	}

	oldSpeed := smath.Sqrtf(m.SlideVelX*m.SlideVelX + m.SlideVelZ*m.SlideVelZ)
	m.SlideVelX += m.SlideVelZ * (m.IntendedMag / 32) * sideward * 0.05
	m.SlideVelZ -= m.SlideVelX * (m.IntendedMag / 32) * sideward * 0.05
	newSpeed := smath.Sqrtf(m.SlideVelX*m.SlideVelX + m.SlideVelZ*m.SlideVelZ)
	if oldSpeed > 0 && newSpeed > 0 {
		m.SlideVelX = m.SlideVelX * oldSpeed / newSpeed
		m.SlideVelZ = m.SlideVelZ * oldSpeed / newSpeed
	}

	m.updateSlidingAngle(accel, lossFactor)

	if !m.floorIsSlope() && m.ForwardVel*m.ForwardVel < stopSpeed*stopSpeed {
		m.SetForwardVel(0)
		return true
	}
	return false
}

func (m *Mario) applySlopeAccel() {
	floor := m.Floor
	steepness := smath.Sqrtf(floor.Normal.X*floor.Normal.X + floor.Normal.Z*floor.Normal.Z)
	floorDYaw := m.FloorAngle - m.FaceAngle.Y

	if m.floorIsSlope() {
		class := FloorClassDefault
		if m.Action != ActSoftBackwardGroundKb && m.Action != ActSoftForwardGroundKb {
			class = m.FloorClass()
		}
		var slopeAccel float32
		switch class {
		case FloorClassVerySlippery:
			slopeAccel = 5.3
		case FloorClassSlippery:
			slopeAccel = 2.7
		case FloorClassNotSlippery:
			slopeAccel = 0
		default:
			slopeAccel = 1.7
		}
		if floorDYaw > -0x4000 && floorDYaw < 0x4000 {
			m.ForwardVel += slopeAccel * steepness
		} else {
			m.ForwardVel -= slopeAccel * steepness
		}
	}

	m.SlideYaw = m.FaceAngle.Y
	m.SlideVelX = m.ForwardVel * smath.Sins(m.FaceAngle.Y)
	m.SlideVelZ = m.ForwardVel * smath.Coss(m.FaceAngle.Y)
	m.Vel = smath.Vec3{X: m.SlideVelX, Z: m.SlideVelZ}

	m.updateMovingSand()
	m.updateWindyGround()
}

func (m *Mario) applyLandingAccel(friction float32) bool {
	m.applySlopeAccel()
	if !m.floorIsSlope() {
		m.ForwardVel *= friction
		if m.ForwardVel*m.ForwardVel < 1 {
			m.SetForwardVel(0)
			return true
		}
	}
	return false
}

func (m *Mario) applySlopeDecel(coef float32) bool {
	var decel float32
	switch m.FloorClass() {
	case FloorClassVerySlippery:
		decel = coef * 0.2
	case FloorClassSlippery:
		decel = coef * 0.7
	case FloorClassNotSlippery:
		decel = coef * 3
	default:
		decel = coef * 2
	}
	m.ForwardVel = smath.Approach(m.ForwardVel, 0, decel, decel)
	stopped := m.ForwardVel == 0
	m.applySlopeAccel()
	return stopped
}

func (m *Mario) updateDeceleratingSpeed() bool {
	m.ForwardVel = smath.Approach(m.ForwardVel, 0, 1, 1)
	stopped := m.ForwardVel == 0
	m.SetForwardVel(m.ForwardVel)
	m.updateMovingSand()
	m.updateWindyGround()
	return stopped
}

func (m *Mario) updateWalkingSpeed() {
	maxTarget := float32(32)
	if m.Floor != nil && m.Floor.Type == surface.TypeSlow {
		maxTarget = 24
	}
	target := min(m.IntendedMag, maxTarget)
	if m.QuicksandDepth > 10 {
		target *= 6.25 / m.QuicksandDepth
	}

	switch {
	case m.ForwardVel <= 0:
		m.ForwardVel += 1.1
	case m.ForwardVel <= target:
		m.ForwardVel += 1.1 - m.ForwardVel/43
	case m.floorNormalY() >= 0.95:
		m.ForwardVel -= 1
	}
	if m.ForwardVel > 48 {
		m.ForwardVel = 48
	}

	m.FaceAngle.Y = m.IntendedYaw - int16(smath.ApproachInt(int32(m.IntendedYaw-m.FaceAngle.Y), 0, 0x800, 0x800))
	m.applySlopeAccel()
}

func (m *Mario) shouldBeginSliding() bool {
	if m.Input&InputAboveSlide == 0 {
		return false
	}
	slideLevel := m.terrainType() == surface.TerrainSlide
	return slideLevel || m.ForwardVel <= -1 || m.facingDownhill(false)
}

func (m *Mario) analogStickHeldBack() bool {
	dyaw := m.IntendedYaw - m.FaceAngle.Y
	return dyaw < -0x471C || dyaw > 0x471C
}

func (m *Mario) checkGroundDiveOrPunch() bool {
	if m.Input&InputBPressed == 0 {
		return false
	}
	if m.ForwardVel >= 29 && m.Controller.StickMag > 48 {
		m.Vel.Y = 20
		return m.SetAction(ActDive, 1)
	}
	return m.SetAction(ActMovePunching, 0)
}

func (m *Mario) beginBrakingAction() bool {
	if m.ActionState == 1 {
		m.FaceAngle.Y = int16(m.ActionArg)
		return m.SetAction(ActStandingAgainstWall, 0)
	}
	if m.ForwardVel >= 16 && m.floorNormalY() >= 0.17364818 {
		return m.SetAction(ActBraking, 0)
	}
	return m.SetAction(ActDecelerating, 0)
}

func animAccel(speed float32) int32 { return int32(speed * 0x10000) }

func (m *Mario) animAndAudioForWalk() {
	speed := max(m.IntendedMag, m.ForwardVel)
	if speed < 4 {
		speed = 4
	}

	var targetPitch int16
	if m.QuicksandDepth > 50 {
		m.setAnimWithAccel(anim.MoveInQuicksand, animAccel(speed/4))
		m.playStepSound(19, 93)
		m.ActionTimer = 0
	} else {
	loop:
		for {
			switch m.ActionTimer {
			case 0:
				if speed > 8 {
					m.ActionTimer = 2
					continue
				}
				m.setAnimWithAccel(anim.StartTiptoe, max(animAccel(speed/4), 0x1000))
				m.playStepSound(7, 22)
				if m.isAnimPastFrame(23) {
					m.ActionTimer = 2
				}
				break loop
			case 1:
				if speed > 8 {
					m.ActionTimer = 2
					continue
				}
				m.setAnimWithAccel(anim.Tiptoe, max(animAccel(speed), 0x1000))
				m.playStepSound(14, 72)
				break loop
			case 2:
				if speed < 5 {
					m.ActionTimer = 1
					continue
				}
				if speed > 22 {
					m.ActionTimer = 3
					continue
				}
				m.setAnimWithAccel(anim.Walking, animAccel(speed/4))
				m.playStepSound(10, 49)
				break loop
			case 3:
				if speed < 18 {
					m.ActionTimer = 2
					continue
				}
				m.setAnimWithAccel(anim.Running, animAccel(speed/4))
				m.playStepSound(9, 45)
				targetPitch = m.tiltBodyRunning()
				break loop
			default:
				m.ActionTimer = 0
			}
		}
	}

	m.walkingPitch = int16(smath.ApproachInt(int32(m.walkingPitch), int32(targetPitch), 0x800, 0x800))
	m.GfxAngle.X = m.walkingPitch
}

func (m *Mario) pushOrSidleWall(start smath.Vec3) {
	dx := m.Pos.X - start.X
	dz := m.Pos.Z - start.Z
	moved := smath.Sqrtf(dx*dx + dz*dz)
	accel := animAccel(moved * 2)

	if m.ForwardVel > 6 {
		m.SetForwardVel(6)
	}

	var wallAngle, dWallAngle int16
	if m.Wall != nil {
		wallAngle = smath.Atan2s(m.Wall.Normal.Z, m.Wall.Normal.X)
		dWallAngle = wallAngle - m.FaceAngle.Y
	}

	if m.Wall == nil || dWallAngle <= -0x71C8 || dWallAngle >= 0x71C8 {
		m.setAnim(anim.Pushing)
		m.playStepSound(6, 18)
		return
	}

	if dWallAngle < 0 {
		m.setAnimWithAccel(anim.SidestepRight, accel)
	} else {
		m.setAnimWithAccel(anim.SidestepLeft, accel)
	}
	if m.Anim.Frame < 20 {
		m.playSound(audio.SoundMovingTerrainSlide + m.TerrainSoundAddend)
		m.ParticleFlags |= ParticleDust
	}

	m.ActionState = 1
	m.ActionArg = uint32(uint16(wallAngle + -0x8000))
	m.GfxAngle.Y = wallAngle + -0x8000
	m.GfxAngle.Z = m.floorSlope(0x4000)
}

func (m *Mario) tiltBodyWalking(startYaw int16) {
	b := &m.Body
	if m.Anim.ID != anim.Walking && m.Anim.ID != anim.Running {
		b.TorsoAngle.Z = 0
		b.TorsoAngle.X = 0
		return
	}

	dyaw := m.FaceAngle.Y - startYaw
	roll := int32(-int16(float32(dyaw) * m.ForwardVel / 12))
	pitch := int32(int16(m.ForwardVel * 170))
	roll = min(max(roll, -0x1555), 0x1555)
	pitch = min(max(pitch, 0), 0x1555)

	b.TorsoAngle.Z = int16(smath.ApproachInt(int32(b.TorsoAngle.Z), roll, 0x400, 0x400))
	b.TorsoAngle.X = int16(smath.ApproachInt(int32(b.TorsoAngle.X), pitch, 0x400, 0x400))
}

func (m *Mario) actWalking() bool {
	startYaw := m.FaceAngle.Y

	switch {
	case m.shouldBeginSliding():
		return m.SetAction(ActBeginSliding, 0)
	case m.Input&InputFirstPerson != 0:
		return m.beginBrakingAction()
	case m.Input&InputAPressed != 0:
		return m.setJumpFromLanding()
	case m.checkGroundDiveOrPunch():
		return true
	case m.Input&InputNoMovement != 0:
		return m.beginBrakingAction()
	case m.analogStickHeldBack() && m.ForwardVel >= 16:
		return m.SetAction(ActTurningAround, 0)
	case m.Input&InputZPressed != 0:
		return m.SetAction(ActCrouchSlide, 0)
	}

	m.ActionState = 0
	start := m.Pos
	m.updateWalkingSpeed()

	switch m.performGroundStep() {
	case GroundStepLeftGround:
		m.SetAction(ActFreefall, 0)
		m.setAnim(anim.GeneralFall)
	case GroundStepNone:
		m.animAndAudioForWalk()
		if m.IntendedMag-m.ForwardVel > 16 {
			m.ParticleFlags |= ParticleDust
		}
	case GroundStepHitWall:
		m.pushOrSidleWall(start)
		m.ActionTimer = 0
	}

	m.checkLedgeClimbDown()
	m.tiltBodyWalking(startYaw)
	return false
}

func (m *Mario) actTurningAround() bool {
	switch {
	case m.Input&InputAboveSlide != 0:
		return m.SetAction(ActBeginSliding, 0)
	case m.Input&InputAPressed != 0:
		return m.setJumpingAction(ActSideFlip, 0)
	case m.Input&InputNoMovement != 0:
		return m.SetAction(ActBraking, 0)
	case !m.analogStickHeldBack():
		return m.SetAction(ActWalking, 0)
	}

	if m.applySlopeDecel(2) {
		return m.beginWalkingAction(8, ActFinishTurningAround, 0)
	}

	m.playSound(audio.SoundMovingTerrainSlide + m.TerrainSoundAddend)

	switch m.performGroundStep() {
	case GroundStepLeftGround:
		m.SetAction(ActFreefall, 0)
	case GroundStepNone:
		m.ParticleFlags |= ParticleDust
	}

	if m.ForwardVel >= 18 {
		m.setAnim(anim.TurningPart1)
	} else {
		m.setAnim(anim.TurningPart2)
		if m.isAnimAtEnd() {
			if m.ForwardVel > 0 {
				m.beginWalkingAction(-m.ForwardVel, ActWalking, 0)
			} else {
				m.beginWalkingAction(8, ActWalking, 0)
			}
		}
	}
	return false
}

func (m *Mario) actFinishTurningAround() bool {
	switch {
	case m.Input&InputAboveSlide != 0:
		return m.SetAction(ActBeginSliding, 0)
	case m.Input&InputAPressed != 0:
		return m.setJumpingAction(ActSideFlip, 0)
	}

	m.updateWalkingSpeed()
	m.setAnim(anim.TurningPart2)
	if m.performGroundStep() == GroundStepLeftGround {
		m.SetAction(ActFreefall, 0)
	}
	if m.isAnimAtEnd() {
		m.SetAction(ActWalking, 0)
	}
	m.GfxAngle.Y += -0x8000
	return false
}

func (m *Mario) actBraking() bool {
	if m.Input&InputFirstPerson == 0 && m.Input&inputCommonExits != 0 {
		return m.checkCommonActionExits()
	}
	if m.applySlopeDecel(2) {
		return m.SetAction(ActBrakingStop, 0)
	}
	if m.Input&InputBPressed != 0 {
		return m.SetAction(ActMovePunching, 0)
	}

	switch m.performGroundStep() {
	case GroundStepLeftGround:
		m.SetAction(ActFreefall, 0)
	case GroundStepNone:
		m.ParticleFlags |= ParticleDust
	case GroundStepHitWall:
		m.slideBonk(ActBackwardGroundKb, ActBrakingStop)
	}

	m.playSound(audio.SoundMovingTerrainSlide + m.TerrainSoundAddend)
	m.setAnim(anim.SkidOnGround)
	return false
}

func (m *Mario) actDecelerating() bool {
	class := m.FloorClass()

	if m.Input&InputFirstPerson == 0 {
		switch {
		case m.shouldBeginSliding():
			return m.SetAction(ActBeginSliding, 0)
		case m.Input&InputAPressed != 0:
			return m.setJumpFromLanding()
		case m.checkGroundDiveOrPunch():
			return true
		case m.Input&InputNonzeroAnalog != 0:
			return m.SetAction(ActWalking, 0)
		case m.Input&InputZPressed != 0:
			return m.SetAction(ActCrouchSlide, 0)
		}
	}

	if m.updateDeceleratingSpeed() {
		return m.SetAction(ActIdle, 0)
	}

	switch m.performGroundStep() {
	case GroundStepLeftGround:
		m.SetAction(ActFreefall, 0)
	case GroundStepHitWall:
		if class == FloorClassVerySlippery {
			m.bonkReflection(true)
		} else {
			m.SetForwardVel(0)
		}
	}

	if class == FloorClassVerySlippery {
		m.setAnim(anim.IdleHeadLeft)
		m.playSound(audio.SoundMovingTerrainSlide + m.TerrainSoundAddend)
		m.ParticleFlags |= ParticleDust
	} else {
		m.setAnimWithAccel(anim.Walking, max(animAccel(m.ForwardVel/4), 0x1000))
		m.playStepSound(10, 49)
	}
	return false
}

func (m *Mario) actCrawling() bool {
	switch {
	case m.shouldBeginSliding():
		return m.SetAction(ActBeginSliding, 0)
	case m.Input&InputFirstPerson != 0:
		return m.SetAction(ActStopCrawling, 0)
	case m.Input&InputAPressed != 0:
		return m.setJumpingAction(ActJump, 0)
	case m.checkGroundDiveOrPunch():
		return true
	case m.Input&InputNoMovement != 0, m.Input&InputZDown == 0:
		return m.SetAction(ActStopCrawling, 0)
	}

	m.IntendedMag *= 0.1
	m.updateWalkingSpeed()

	switch m.performGroundStep() {
	case GroundStepLeftGround:
		m.SetAction(ActFreefall, 0)
	case GroundStepHitWall:
		if m.ForwardVel > 10 {
			m.SetForwardVel(10)
		}
		m.alignWithFloor()
	case GroundStepNone:
		m.alignWithFloor()
	}

	m.setAnimWithAccel(anim.Crawling, animAccel(m.IntendedMag*2))
	m.playStepSound(26, 79)
	return false
}

func (m *Mario) actBurningGround() bool {
	if m.Input&InputAPressed != 0 {
		return m.SetAction(ActBurningJump, 0)
	}

	m.burnTimer += 2
	if m.burnTimer > 160 {
		return m.SetAction(ActWalking, 0)
	}
	if float32(m.WaterLevel)-m.FloorHeight > 50 {
		m.playSound(audio.SoundGeneralFlameOut)
		return m.SetAction(ActWalking, 0)
	}

	m.ForwardVel = smath.Clampf(m.ForwardVel, 8, 48)
	m.ForwardVel = smath.Approach(m.ForwardVel, 32, 4, 1)
	if m.Input&InputNonzeroAnalog != 0 {
		m.FaceAngle.Y = m.IntendedYaw - int16(smath.ApproachInt(int32(m.IntendedYaw-m.FaceAngle.Y), 0, 0x600, 0x600))
	}

	m.applySlopeAccel()
	if m.performGroundStep() == GroundStepLeftGround {
		m.SetAction(ActBurningFall, 0)
	}

	m.setAnimWithAccel(anim.Running, animAccel(m.ForwardVel/2))
	m.playStepSound(9, 45)
	m.ParticleFlags |= ParticleFire
	m.playSound(audio.SoundMovingLavaBurn)

	m.Health -= 10
	if m.Health < 0x100 {
		m.SetAction(ActStandingDeath, 0)
	}
	m.Body.EyeState = anim.EyesDead
	return false
}

func (m *Mario) tiltBodyButtSlide() {
	dyaw := m.IntendedYaw - m.FaceAngle.Y
	m.Body.TorsoAngle.X = int16(5461.3335 * m.IntendedMag / 32 * smath.Coss(dyaw))
	m.Body.TorsoAngle.Z = int16(-(5461.3335 * m.IntendedMag / 32 * smath.Sins(dyaw)))
}

func (m *Mario) commonSlideAction(endAction, airAction Action, clip int16) {
	m.playSound(audio.SoundMovingTerrainSlide + m.TerrainSoundAddend)

	switch m.performGroundStep() {
	case GroundStepLeftGround:
		m.SetAction(airAction, 0)
		if m.ForwardVel < -50 || m.ForwardVel > 50 {
			m.playSound(audio.SoundMarioHoohoo)
		}
	case GroundStepNone:
		m.setAnim(clip)
		m.alignWithFloor()
		m.ParticleFlags |= ParticleDust
	case GroundStepHitWall:
		if !m.floorIsSlippery() {
			if m.ForwardVel > 16 {
				m.ParticleFlags |= ParticleVerticalStar
			}
			m.slideBonk(ActGroundBonk, endAction)
		} else if m.Wall != nil {
			wallAngle := smath.Atan2s(m.Wall.Normal.Z, m.Wall.Normal.X)
			speed := smath.Sqrtf(m.SlideVelX*m.SlideVelX+m.SlideVelZ*m.SlideVelZ) * 0.9
			if speed < 4 {
				speed = 4
			}
			m.SlideYaw = wallAngle - (m.SlideYaw - wallAngle) + -0x8000
			m.SlideVelX = speed * smath.Sins(m.SlideYaw)
			m.SlideVelZ = speed * smath.Coss(m.SlideYaw)
			m.Vel.X = m.SlideVelX
			m.Vel.Z = m.SlideVelZ
		}
		m.alignWithFloor()
	}
}

func (m *Mario) commonSlideActionWithJump(stopAction, jumpAction, airAction Action, clip int16) bool {
	if m.ActionTimer == 5 {
		if m.Input&InputAPressed != 0 {
			return m.setJumpingAction(jumpAction, 0)
		}
	} else {
		m.ActionTimer++
	}

	if m.updateSliding(4) {
		return m.SetAction(stopAction, 0)
	}
	m.commonSlideAction(stopAction, airAction, clip)
	return false
}

func (m *Mario) actButtSlide() bool {
	cancel := m.commonSlideActionWithJump(ActButtSlideStop, ActJump, ActButtSlideAir, anim.Slide)
	m.tiltBodyButtSlide()
	return cancel
}

func (m *Mario) actCrouchSlide() bool {
	if m.Input&InputAboveSlide != 0 {
		return m.SetAction(ActButtSlide, 0)
	}

	if m.ActionTimer < 30 {
		m.ActionTimer++
		if m.Input&InputAPressed != 0 && m.ForwardVel > 10 {
			return m.setJumpingAction(ActLongJump, 0)
		}
	}

	if m.Input&InputBPressed != 0 {
		if m.ForwardVel >= 10 {
			return m.SetAction(ActSlideKick, 0)
		}
		return m.SetAction(ActMovePunching, 9)
	}
	if m.Input&InputAPressed != 0 {
		return m.setJumpingAction(ActJump, 0)
	}
	if m.Input&InputFirstPerson != 0 {
		return m.SetAction(ActBraking, 0)
	}

	return m.commonSlideActionWithJump(ActCrouching, ActJump, ActFreefall, anim.StartCrouching)
}

func (m *Mario) actSlideKickSlide() bool {
	if m.Input&InputAPressed != 0 {
		return m.setJumpingAction(ActForwardRollout, 0)
	}

	m.setAnim(anim.SlideKick)
	if m.isAnimAtEnd() && m.ForwardVel < 1 {
		return m.SetAction(ActSlideKickSlideStop, 0)
	}

	m.updateSliding(1)
	switch m.performGroundStep() {
	case GroundStepLeftGround:
		m.SetAction(ActFreefall, 2)
	case GroundStepHitWall:
		m.bonkReflection(true)
		m.ParticleFlags |= ParticleVerticalStar
		m.SetAction(ActBackwardGroundKb, 0)
	}

	m.playSound(audio.SoundMovingTerrainSlide + m.TerrainSoundAddend)
	m.ParticleFlags |= ParticleDust
	return false
}

func (m *Mario) rolloutAction() Action {
	if m.ForwardVel >= 0 {
		return ActForwardRollout
	}
	return ActBackwardRollout
}

func (m *Mario) actStomachSlide() bool {
	if m.ActionTimer == 5 {
		if m.Input&InputAboveSlide == 0 && m.Input&(InputAPressed|InputBPressed) != 0 {
			return m.dropAndSetAction(m.rolloutAction(), 0)
		}
	} else {
		m.ActionTimer++
	}

	if m.updateSliding(4) {
		return m.SetAction(ActStomachSlideStop, 0)
	}
	m.commonSlideAction(ActStomachSlideStop, ActFreefall, anim.SlideDive)
	return false
}

func (m *Mario) actDiveSlide() bool {
	if m.Input&InputAboveSlide == 0 && m.Input&(InputAPressed|InputBPressed) != 0 {
		if m.ForwardVel > 0 {
			return m.SetAction(ActForwardRollout, 0)
		}
		return m.SetAction(ActBackwardRollout, 0)
	}

	m.playLandingSoundOnce(audio.SoundActionTerrainBodyHitGround)

	if m.updateSliding(8) && m.isAnimAtEnd() {
		m.SetForwardVel(0)
		m.SetAction(ActStomachSlideStop, 0)
	}
	m.commonSlideAction(ActStomachSlideStop, ActFreefall, anim.Dive)
	return false
}

func (m *Mario) commonGroundKnockbackAction(clip int16, frameThreshold int16, heavy bool, arg uint32) int16 {
	if heavy {
		m.playHeavyLandingSoundOnce(audio.SoundActionTerrainBodyHitGround)
	}
	if arg > 0 {
		m.playSoundIfNoFlag(audio.SoundMarioAttacked, FlagMarioSoundPlayed)
	} else {
		m.playSoundIfNoFlag(audio.SoundMarioOoof2, FlagMarioSoundPlayed)
	}

	m.ForwardVel = smath.Clampf(m.ForwardVel, -32, 32)

	frame := m.setAnim(clip)
	switch {
	case frame < frameThreshold:
		m.applyLandingAccel(0.9)
	case m.ForwardVel >= 0:
		m.SetForwardVel(0.1)
	default:
		m.SetForwardVel(-0.1)
	}

	if m.performGroundStep() == GroundStepLeftGround {
		if m.ForwardVel >= 0 {
			m.SetAction(ActForwardAirKb, arg)
		} else {
			m.SetAction(ActBackwardAirKb, arg)
		}
	} else if m.isAnimAtEnd() {
		if m.Health < 0x100 {
			m.SetAction(ActStandingDeath, 0)
		} else {
			if arg > 0 {
				m.InvincTimer = 30
			}
			m.SetAction(ActIdle, 0)
		}
	}
	return frame
}

func (m *Mario) actHardBackwardGroundKb() bool {
	frame := m.commonGroundKnockbackAction(anim.FallOverBackwards, 43, true, m.ActionArg)
	if frame == 43 && m.Health < 0x100 {
		m.SetAction(ActDeathOnBack, 0)
	}
	if frame == 54 && m.PrevAction == ActSpecialDeathExit {
		m.playSound(audio.SoundMarioMamaMia)
	}
	if frame == 69 {
		m.playLandingSoundOnce(audio.SoundActionTerrainLanding)
	}
	return false
}

func (m *Mario) actHardForwardGroundKb() bool {
	frame := m.commonGroundKnockbackAction(anim.LandOnStomach, 21, true, m.ActionArg)
	if frame == 23 && m.Health < 0x100 {
		m.SetAction(ActDeathOnStomach, 0)
	}
	return false
}

func (m *Mario) actBackwardGroundKb() bool {
	m.commonGroundKnockbackAction(anim.BackwardKb, 22, true, m.ActionArg)
	return false
}

func (m *Mario) actForwardGroundKb() bool {
	m.commonGroundKnockbackAction(anim.ForwardKb, 20, true, m.ActionArg)
	return false
}

func (m *Mario) actSoftBackwardGroundKb() bool {
	m.commonGroundKnockbackAction(anim.SoftBackKb, 100, false, m.ActionArg)
	return false
}

func (m *Mario) actSoftForwardGroundKb() bool {
	m.commonGroundKnockbackAction(anim.SoftFrontKb, 100, false, m.ActionArg)
	return false
}

func (m *Mario) actGroundBonk() bool {
	frame := m.commonGroundKnockbackAction(anim.GroundBonk, 32, true, m.ActionArg)
	if frame == 32 {
		m.playLandingSound(audio.SoundActionTerrainLanding)
	}
	return false
}

func (m *Mario) actMovePunching() bool {
	if m.shouldBeginSliding() {
		return m.SetAction(ActBeginSliding, 0)
	}
	if m.ActionState == 0 && m.Input&InputADown != 0 {
		return m.SetAction(ActJumpKick, 0)
	}

	m.ActionState = 1
	m.updatePunchSequence()

	if m.ForwardVel >= 0 {
		m.applySlopeDecel(0.5)
	} else {
		if m.ForwardVel += 8; m.ForwardVel >= 0 {
			m.ForwardVel = 0
		}
		m.applySlopeAccel()
	}

	switch m.performGroundStep() {
	case GroundStepLeftGround:
		m.SetAction(ActFreefall, 0)
	case GroundStepNone:
		m.ParticleFlags |= ParticleDust
	}
	return false
}

func (m *Mario) commonLandingAction(clip int16, airAction Action) int {
	switch {
	case m.Input&InputNonzeroAnalog != 0:
		m.applyLandingAccel(0.98)
	case m.ForwardVel >= 16:
		m.applySlopeDecel(2)
	default:
		m.Vel.Y = 0
	}

	result := m.performGroundStep()
	switch result {
	case GroundStepLeftGround:
		m.SetAction(airAction, 0)
	case GroundStepHitWall:
		m.setAnim(anim.Pushing)
	}

	if m.ForwardVel > 16 {
		m.ParticleFlags |= ParticleDust
	}

	m.setAnim(clip)
	m.playLandingSoundOnce(audio.SoundActionTerrainLanding)

	if t := m.Floor.Type; t >= surface.TypeShallowQuicksand && t <= surface.TypeMovingQuicksand {
		m.QuicksandDepth += (4-float32(m.ActionTimer))*3.5 - 0.5
	}
	return result
}

func (m *Mario) commonLandingCancels(land *landingAction, setAPress func(*Mario, Action, uint32) bool) bool {
	if m.floorNormalY() < 0.2923717 {
		return m.pushOffSteepFloor(land.verySteep, 0)
	}

	m.DoubleJumpTimer = land.doubleJumpTimer

	if m.shouldBeginSliding() {
		return m.SetAction(land.slide, 0)
	}
	if m.Input&InputFirstPerson != 0 {
		return m.SetAction(land.end, 0)
	}
	if m.ActionTimer++; m.ActionTimer >= land.numFrames {
		return m.SetAction(land.end, 0)
	}
	if m.Input&InputAPressed != 0 {
		return setAPress(m, land.aPressed, 0)
	}
	if m.Input&InputOffFloor != 0 {
		return m.SetAction(land.offFloor, 0)
	}
	return false
}

func (m *Mario) actJumpLand() bool {
	if m.commonLandingCancels(&jumpLandAction, (*Mario).setJumpingAction) {
		return true
	}
	m.commonLandingAction(anim.LandFromSingleJump, ActFreefall)
	return false
}

func (m *Mario) actFreefallLand() bool {
	if m.commonLandingCancels(&freefallLandAction, (*Mario).setJumpingAction) {
		return true
	}
	m.commonLandingAction(anim.GeneralLand, ActFreefall)
	return false
}

func (m *Mario) actSideFlipLand() bool {
	if m.commonLandingCancels(&sideFlipLandAction, (*Mario).setJumpingAction) {
		return true
	}
	if m.commonLandingAction(anim.SlideflipLand, ActFreefall) != GroundStepHitWall {
		m.GfxAngle.Y += -0x8000
	}
	return false
}

func (m *Mario) actLongJumpLand() bool {
	if m.Input&InputZDown == 0 {
		m.Input &^= InputAPressed
	}
	if m.commonLandingCancels(&longJumpLandAction, (*Mario).setJumpingAction) {
		return true
	}

	if m.Input&InputNonzeroAnalog == 0 {
		m.playSoundIfNoFlag(audio.SoundMarioUh2Low, FlagMarioSoundPlayed)
	}
	clip := anim.CrouchFromFastLongjump
	if m.longJumpIsSlow {
		clip = anim.CrouchFromSlowLongjump
	}
	m.commonLandingAction(clip, ActFreefall)
	return false
}

func (m *Mario) actDoubleJumpLand() bool {
	if m.commonLandingCancels(&doubleJumpLandAction, (*Mario).setTripleJumpAction) {
		return true
	}
	m.commonLandingAction(anim.LandFromDoubleJump, ActFreefall)
	return false
}

func (m *Mario) actTripleJumpLand() bool {
	m.Input &^= InputAPressed
	if m.commonLandingCancels(&tripleJumpLandAction, (*Mario).setJumpingAction) {
		return true
	}
	if m.Input&InputNonzeroAnalog == 0 {
		m.playSoundIfNoFlag(audio.SoundMarioHaha, FlagMarioSoundPlayed)
	}
	m.commonLandingAction(anim.TripleJumpLand, ActFreefall)
	return false
}

func (m *Mario) actBackflipLand() bool {
	if m.Input&InputZDown == 0 {
		m.Input &^= InputAPressed
	}
	if m.commonLandingCancels(&backflipLandAction, (*Mario).setJumpingAction) {
		return true
	}
	if m.Input&InputNonzeroAnalog == 0 {
		m.playSoundIfNoFlag(audio.SoundMarioHaha, FlagMarioSoundPlayed)
	}
	m.commonLandingAction(anim.TripleJumpLand, ActFreefall)
	return false
}

func (m *Mario) actQuicksandJumpLand() bool {
	if m.commonLandingCancels(&quicksandJumpLandAction, (*Mario).setJumpingAction) {
		return true
	}

	if m.ActionTimer++; m.ActionTimer <= 6 {
		m.QuicksandDepth -= (7 - float32(m.ActionTimer)) * 0.8
		if m.QuicksandDepth < 1 {
			m.QuicksandDepth = 1.1
		}
		m.playJumpSound()
		m.setAnim(anim.SingleJump)
	} else {
		if m.ActionTimer >= 13 {
			return m.SetAction(ActJumpLandStop, 0)
		}
		m.setAnim(anim.LandFromSingleJump)
	}

	m.applyLandingAccel(0.95)
	if m.performGroundStep() == GroundStepLeftGround {
		m.SetAction(ActFreefall, 0)
	}
	return false
}
