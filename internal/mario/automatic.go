package mario

import (
	"github.com/Faultbox/libsm64-go/internal/anim"
	"github.com/Faultbox/libsm64-go/internal/audio"
	"github.com/Faultbox/libsm64-go/internal/surface"
	smath "github.com/Faultbox/libsm64-go/pkg/math"
)

// Results of a hanging step.
const (
	hangNone = iota
	hangHitCeilOrOOB
	hangLeftCeil
)

func init() {
	registerActions(map[Action]handler{
		ActLedgeGrab:       (*Mario).actLedgeGrab,
		ActLedgeClimbSlow1: (*Mario).actLedgeClimbSlow,
		ActLedgeClimbSlow2: (*Mario).actLedgeClimbSlow,
		ActLedgeClimbDown:  (*Mario).actLedgeClimbDown,
		ActLedgeClimbFast:  (*Mario).actLedgeClimbFast,
		ActStartHanging:    (*Mario).actStartHanging,
		ActHanging:         (*Mario).actHanging,
		ActHangMoving:      (*Mario).actHangMoving,
	})
}

func (m *Mario) letGoOfLedge() bool {
	m.Vel.Y = 0
	m.ForwardVel = -8
	m.Pos.X -= 60 * smath.Sins(m.FaceAngle.Y)
	m.Pos.Z -= 60 * smath.Coss(m.FaceAngle.Y)

	if floorHeight, _ := m.findFloor(m.Pos.X, m.Pos.Y, m.Pos.Z); floorHeight < m.Pos.Y-100 {
		m.Pos.Y -= 100
	} else {
		m.Pos.Y = floorHeight
	}
	return m.SetAction(ActSoftBonk, 0)
}

func (m *Mario) climbUpLedge() {
	m.setAnim(anim.IdleHeadLeft)
	m.Pos.X += 14 * smath.Sins(m.FaceAngle.Y)
	m.Pos.Z += 14 * smath.Coss(m.FaceAngle.Y)
	m.GfxPos = m.Pos
}

func (m *Mario) updateLedgeClimb(clip int16, endAction Action) {
	m.stopAndSetHeightToFloor()
	m.setAnim(clip)
	if m.isAnimAtEnd() {
		m.SetAction(endAction, 0)
		if endAction == ActIdle {
			m.climbUpLedge()
		}
	}
}

func (m *Mario) hasSpaceToClimb() bool {
	return m.CeilHeight-m.FloorHeight >= 160
}

func (m *Mario) actLedgeGrab() bool {
	dYaw := m.IntendedYaw - m.FaceAngle.Y

	if m.ActionTimer < 10 {
		m.ActionTimer++
	}

	switch {
	case m.floorNormalY() < 0.9063078:
		return m.letGoOfLedge()
	case m.Input&(InputZPressed|InputOffFloor) != 0:
		return m.letGoOfLedge()
	case m.Input&InputAPressed != 0 && m.hasSpaceToClimb():
		return m.SetAction(ActLedgeClimbFast, 0)
	case m.Input&InputStomped != 0:
		if m.interactDamage != 0 {
			m.HurtCounter += m.capHurt(12, 18)
		}
		return m.letGoOfLedge()
	}

	if m.ActionTimer == 10 && m.Input&InputNonzeroAnalog != 0 {
		if dYaw >= -0x4000 && dYaw <= 0x4000 {
			if m.hasSpaceToClimb() {
				return m.SetAction(ActLedgeClimbSlow1, 0)
			}
		} else {
			return m.letGoOfLedge()
		}
	}

	heightAboveFloor := m.Pos.Y - m.floorHeightRelativePolar(-0x8000, 30)
	if m.hasSpaceToClimb() && heightAboveFloor < 100 {
		return m.SetAction(ActLedgeClimbFast, 0)
	}

	if m.ActionArg == 0 {
		m.playSoundIfNoFlag(audio.SoundMarioWhoa, FlagMarioSoundPlayed)
	}

	m.stopAndSetHeightToFloor()
	m.setAnim(anim.IdleOnLedge)
	return false
}

// actLedgeClimbSlow runs both halves of the slow climb; the action word flips
// to the second half on frame 17 without resetting the timer.
func (m *Mario) actLedgeClimbSlow() bool {
	if m.Input&InputOffFloor != 0 {
		return m.letGoOfLedge()
	}

	if m.ActionTimer >= 28 && m.Input&inputCommonExits != 0 {
		m.climbUpLedge()
		return m.checkCommonActionExits()
	}

	if m.ActionTimer == 10 {
		m.playSoundIfNoFlag(audio.SoundMarioEeuh, FlagMarioSoundPlayed)
	}

	m.updateLedgeClimb(anim.SlowLedgeGrab, ActIdle)
	m.ActionTimer++

	if m.Anim.Frame == 17 && m.Action == ActLedgeClimbSlow1 {
		m.Action = ActLedgeClimbSlow2
	}
	return false
}

func (m *Mario) actLedgeClimbDown() bool {
	if m.Input&InputOffFloor != 0 {
		return m.letGoOfLedge()
	}

	m.playSoundIfNoFlag(audio.SoundMarioWhoa, FlagMarioSoundPlayed)
	m.updateLedgeClimb(anim.ClimbDownLedge, ActLedgeGrab)
	m.ActionArg = 1
	m.ActionTimer++
	return false
}

func (m *Mario) actLedgeClimbFast() bool {
	if m.Input&InputOffFloor != 0 {
		return m.letGoOfLedge()
	}

	m.playSoundIfNoFlag(audio.SoundMarioUh2, FlagMarioSoundPlayed)
	m.updateLedgeClimb(anim.FastLedgeGrab, ActIdle)
	if m.Anim.Frame == 8 {
		m.playLandingSound(audio.SoundActionTerrainLanding)
	}
	m.ActionTimer++
	return false
}

func (m *Mario) ceilIsHangable() bool {
	return m.Ceil != nil && m.Ceil.Type == surface.TypeHangable
}

// checkHangExits handles the exits shared by every hanging action.
func (m *Mario) checkHangExits() bool {
	switch {
	case m.Input&InputADown == 0:
		return m.SetAction(ActFreefall, 0)
	case m.Input&InputZPressed != 0:
		return m.SetAction(ActGroundPound, 0)
	case !m.ceilIsHangable():
		return m.SetAction(ActFreefall, 0)
	}
	return false
}

func (m *Mario) updateHangStationary() {
	m.ForwardVel = 0
	m.SlideVelX = 0
	m.SlideVelZ = 0
	m.Pos.Y = m.CeilHeight - 160
	m.Vel = smath.Vec3{}
	m.GfxPos = m.Pos
}

func (m *Mario) performHangingStep(next smath.Vec3) int {
	m.Wall = m.resolveWalls(&next, 50, 50)
	floorHeight, floor := m.findFloor(next.X, next.Y, next.Z)
	ceilHeight, ceil := m.findCeil(next.X, floorHeight, next.Z)

	switch {
	case floor == nil:
		return hangHitCeilOrOOB
	case ceil == nil:
		return hangLeftCeil
	case ceilHeight-floorHeight <= 160:
		return hangHitCeilOrOOB
	case ceil.Type != surface.TypeHangable:
		return hangLeftCeil
	}

	offset := ceilHeight - (next.Y + 160)
	if offset < -30 {
		return hangHitCeilOrOOB
	}
	if offset > 30 {
		return hangLeftCeil
	}

	next.Y = m.CeilHeight - 160
	m.Pos = next
	m.Floor, m.FloorHeight = floor, floorHeight
	m.Ceil, m.CeilHeight = ceil, ceilHeight
	return hangNone
}

func (m *Mario) updateHangMoving() int {
	const maxSpeed = 4

	if m.ForwardVel += 1; m.ForwardVel > maxSpeed {
		m.ForwardVel = maxSpeed
	}

	m.FaceAngle.Y = m.IntendedYaw - int16(smath.ApproachInt(int32(m.IntendedYaw-m.FaceAngle.Y), 0, 0x800, 0x800))
	m.SlideYaw = m.FaceAngle.Y
	m.SlideVelX = m.ForwardVel * smath.Sins(m.FaceAngle.Y)
	m.SlideVelZ = m.ForwardVel * smath.Coss(m.FaceAngle.Y)
	m.Vel = smath.Vec3{X: m.SlideVelX, Z: m.SlideVelZ}

	next := smath.Vec3{
		X: m.Pos.X - m.Ceil.Normal.Y*m.Vel.X,
		Y: m.Pos.Y,
		Z: m.Pos.Z - m.Ceil.Normal.Y*m.Vel.Z,
	}
	result := m.performHangingStep(next)

	m.GfxPos = m.Pos
	m.GfxAngle = smath.Vec3s{Y: m.FaceAngle.Y}
	return result
}

func (m *Mario) actStartHanging() bool {
	m.ActionTimer++

	if m.Input&InputNonzeroAnalog != 0 && m.ActionTimer >= 31 {
		return m.SetAction(ActHanging, 0)
	}
	if m.checkHangExits() {
		return true
	}

	m.setAnim(anim.HangOnCeiling)
	m.playSoundIfNoFlag(audio.SoundActionHangingStep, FlagActionSoundPlayed)
	m.updateHangStationary()

	if m.isAnimAtEnd() {
		m.SetAction(ActHanging, 0)
	}
	return false
}

func (m *Mario) actHanging() bool {
	if m.Input&InputNonzeroAnalog != 0 {
		return m.SetAction(ActHangMoving, m.ActionArg)
	}
	if m.checkHangExits() {
		return true
	}

	if m.ActionArg&1 != 0 {
		m.setAnim(anim.HandstandLeft)
	} else {
		m.setAnim(anim.HandstandRight)
	}
	m.updateHangStationary()
	return false
}

func (m *Mario) actHangMoving() bool {
	if m.checkHangExits() {
		return true
	}

	if m.ActionArg&1 != 0 {
		m.setAnim(anim.MoveOnWireNetRight)
	} else {
		m.setAnim(anim.MoveOnWireNetLeft)
	}

	if m.Anim.Frame == 12 {
		m.playSound(audio.SoundActionHangingStep)
	}

	if m.isAnimPastEnd() {
		m.ActionArg ^= 1
		if m.Input&InputNoMovement != 0 {
			return m.SetAction(ActHanging, m.ActionArg)
		}
	}

	if m.updateHangMoving() == hangLeftCeil {
		m.SetAction(ActFreefall, 0)
	}
	return false
}
