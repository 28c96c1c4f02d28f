package mario

import (
	"github.com/Faultbox/libsm64-go/internal/audio"
	"github.com/Faultbox/libsm64-go/internal/logger"
	smath "github.com/Faultbox/libsm64-go/pkg/math"
	"go.uber.org/zap"
)

func (m *Mario) setActionAirborne(action Action, arg uint32) Action {
	if (m.SquishTimer != 0 || m.QuicksandDepth >= 1) && (action == ActDoubleJump || action == ActTwirling) {
		action = ActJump
	}

	switch action {
	case ActDoubleJump:
		m.setYVelBasedOnForwardSpeed(52, 0.25)
		m.ForwardVel *= 0.8
	case ActBackflip:
		m.Anim.ID = -1
		m.ForwardVel = -16
		m.setYVelBasedOnForwardSpeed(62, 0)
	case ActTripleJump:
		m.setYVelBasedOnForwardSpeed(69, 0)
		m.ForwardVel *= 0.8
	case ActFlyingTripleJump:
		m.setYVelBasedOnForwardSpeed(82, 0)
	case ActWaterJump, ActHoldWaterJump:
		if arg == 0 {
			m.setYVelBasedOnForwardSpeed(42, 0)
		}
	case ActBurningJump:
		m.Vel.Y = 31.5
		m.ForwardVel = 8
	case ActJump, ActHoldJump:
		m.Anim.ID = -1
		m.setYVelBasedOnForwardSpeed(42, 0.25)
		m.ForwardVel *= 0.8
	case ActWallKickAir, ActTopOfPoleJump:
		m.setYVelBasedOnForwardSpeed(62, 0)
		if m.ForwardVel < 24 {
			m.ForwardVel = 24
		}
		m.WallKickTimer = 0
	case ActSideFlip:
		m.setYVelBasedOnForwardSpeed(62, 0)
		m.ForwardVel = 8
		m.FaceAngle.Y = m.IntendedYaw
	case ActSteepJump:
		m.Anim.ID = -1
		m.setYVelBasedOnForwardSpeed(42, 0.25)
		m.FaceAngle.X = -0x2000
	case ActLavaBoost:
		m.Vel.Y = 84
		if arg == 0 {
			m.ForwardVel = 0
		}
	case ActDive:
		m.SetForwardVel(min(m.ForwardVel+15, 48))
	case ActLongJump:
		m.Anim.ID = -1
		m.setYVelBasedOnForwardSpeed(30, 0)
		m.longJumpIsSlow = m.ForwardVel <= 16
		m.ForwardVel *= 1.5
		if m.ForwardVel > 48 {
			m.ForwardVel = 48
		}
	case ActSlideKick:
		m.Vel.Y = 12
		if m.ForwardVel < 32 {
			m.ForwardVel = 32
		}
	case ActJumpKick:
		m.Vel.Y = 20
	}

	m.PeakHeight = m.Pos.Y
	m.Flags |= FlagJumping
	return action
}

func (m *Mario) setActionMoving(action Action) Action {
	floorClass := m.FloorClass()
	fwd := m.ForwardVel
	mag := min(m.IntendedMag, 8)

	switch action {
	case ActWalking:
		if floorClass != FloorClassVerySlippery && fwd >= 0 && fwd < mag {
			m.ForwardVel = mag
		}
	case ActHoldWalking:
		if fwd >= 0 && fwd < mag/2 {
			m.ForwardVel = mag / 2
		}
	case ActBeginSliding:
		if m.facingDownhill(false) {
			action = ActButtSlide
		} else {
			action = ActStomachSlide
		}
	}
	return action
}

func (m *Mario) setActionSubmerged(action Action) Action {
	if action == ActMetalWaterJump || action == ActHoldMetalWaterJump {
		m.Vel.Y = 32
	}
	return action
}

func (m *Mario) setActionCutscene(action Action) Action {
	switch action {
	case ActEmergeFromPipe:
		m.Vel.Y = 52
	case ActFallAfterStarGrab:
		m.SetForwardVel(0)
	case ActSpawnSpinAirborne:
		// Start with one step of gravity so the drop shows on the first tick.
		m.SetForwardVel(2)
		m.fallTo(4, TerminalVelocity)
	case ActSpecialExitAirborne, ActSpecialDeathExit:
		m.Vel.Y = 64
	}
	return action
}

// SetAction transitions to action. Group entry rules may substitute a
// different action and set entry velocities. It always returns true.
func (m *Mario) SetAction(action Action, arg uint32) bool {
	switch action.Group() {
	case GroupMoving:
		action = m.setActionMoving(action)
	case GroupAirborne:
		action = m.setActionAirborne(action, arg)
	case GroupSubmerged:
		action = m.setActionSubmerged(action)
	case GroupCutscene:
		action = m.setActionCutscene(action)
	}

	if isBurning(action) && !isBurning(m.Action) {
		m.burnTimer = 0
	}

	m.Flags &^= FlagActionSoundPlayed | FlagMarioSoundPlayed
	if !m.Action.IsAir() {
		m.Flags &^= FlagFallingFar
	}

	if logger.Log.Core().Enabled(zap.DebugLevel) {
		logger.Debug("action change",
			zap.Stringer("from", m.Action),
			zap.Stringer("to", action),
			zap.Uint32("arg", arg))
	}

	m.PrevAction = m.Action
	m.Action = action
	m.ActionArg = arg
	m.ActionState = 0
	m.ActionTimer = 0
	return true
}

func isBurning(a Action) bool {
	return a == ActBurningGround || a == ActBurningJump || a == ActBurningFall
}

func (m *Mario) setSteepJumpAction() {
	m.steepJumpYaw = m.FaceAngle.Y
	if m.ForwardVel > 0 {
		angle := m.FloorAngle + -0x8000
		faceAngle := m.FaceAngle.Y - angle
		y := smath.Sins(faceAngle) * m.ForwardVel
		x := smath.Coss(faceAngle) * m.ForwardVel * 0.75
		m.ForwardVel = smath.Sqrtf(y*y + x*x)
		m.FaceAngle.Y = smath.Atan2s(x, y) + angle
	}
	m.dropAndSetAction(ActSteepJump, 0)
}

// setJumpFromLanding picks the follow-up jump when A is pressed on landing.
func (m *Mario) setJumpFromLanding() bool {
	if m.QuicksandDepth >= 11 {
		return m.SetAction(ActQuicksandJumpLand, 0)
	}

	if m.floorIsSteep() {
		m.setSteepJumpAction()
	} else if m.DoubleJumpTimer == 0 || m.SquishTimer != 0 {
		m.SetAction(ActJump, 0)
	} else {
		switch m.PrevAction {
		case ActJumpLand, ActFreefallLand, ActSideFlipLandStop:
			m.SetAction(ActDoubleJump, 0)
		case ActDoubleJumpLand:
			switch {
			case m.Flags&FlagWingCap != 0:
				m.SetAction(ActFlyingTripleJump, 0)
			case m.ForwardVel > 20:
				m.SetAction(ActTripleJump, 0)
			default:
				m.SetAction(ActJump, 0)
			}
		default:
			m.SetAction(ActJump, 0)
		}
	}

	m.DoubleJumpTimer = 0
	return true
}

func (m *Mario) setJumpingAction(action Action, arg uint32) bool {
	if m.QuicksandDepth >= 11 {
		return m.SetAction(ActQuicksandJumpLand, 0)
	}
	if m.floorIsSteep() {
		m.setSteepJumpAction()
	} else {
		m.SetAction(action, arg)
	}
	return true
}

// dropAndSetAction is SetAction for a character that holds nothing.
func (m *Mario) dropAndSetAction(action Action, arg uint32) bool {
	return m.SetAction(action, arg)
}

func (m *Mario) hurtAndSetAction(action Action, arg uint32, hurt uint8) bool {
	m.HurtCounter = hurt
	return m.SetAction(action, arg)
}

func (m *Mario) checkCommonActionExits() bool {
	switch {
	case m.Input&InputAPressed != 0:
		return m.SetAction(ActJump, 0)
	case m.Input&InputOffFloor != 0:
		return m.SetAction(ActFreefall, 0)
	case m.Input&InputNonzeroAnalog != 0:
		return m.SetAction(ActWalking, 0)
	case m.Input&InputAboveSlide != 0:
		return m.SetAction(ActBeginSliding, 0)
	}
	return false
}

func (m *Mario) transitionSubmergedToWalking() bool {
	m.AngleVel = smath.Vec3s{}
	return m.SetAction(ActWalking, 0)
}

func (m *Mario) setWaterPlungeAction() bool {
	m.ForwardVel /= 4
	m.Vel.Y /= 2
	m.Pos.Y = float32(m.WaterLevel) - 100
	m.FaceAngle.Z = 0
	m.AngleVel = smath.Vec3s{}
	if m.Action&ActFlagDiving == 0 {
		m.FaceAngle.X = 0
	}
	return m.SetAction(ActWaterPlunge, 0)
}

func (m *Mario) pushOffSteepFloor(action Action, arg uint32) bool {
	dyaw := m.FloorAngle - m.FaceAngle.Y
	if dyaw > -0x4000 && dyaw < 0x4000 {
		m.ForwardVel = 16
		m.FaceAngle.Y = m.FloorAngle
	} else {
		m.ForwardVel = -16
		m.FaceAngle.Y = m.FloorAngle + -0x8000
	}
	return m.SetAction(action, arg)
}

func (m *Mario) bonkReflection(negateSpeed bool) {
	if m.Wall != nil {
		wallAngle := smath.Atan2s(m.Wall.Normal.Z, m.Wall.Normal.X)
		m.FaceAngle.Y = wallAngle - (m.FaceAngle.Y - wallAngle)
		if m.Flags&FlagMetalCap != 0 {
			m.playSound(audio.SoundActionMetalBonk)
		} else {
			m.playSound(audio.SoundActionBonk)
		}
	} else {
		m.playSound(audio.SoundActionHit)
	}

	if negateSpeed {
		m.SetForwardVel(-m.ForwardVel)
	} else {
		m.FaceAngle.Y += -0x8000
	}
}
