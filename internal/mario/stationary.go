package mario

import (
	"github.com/Faultbox/libsm64-go/internal/anim"
	"github.com/Faultbox/libsm64-go/internal/audio"
	"github.com/Faultbox/libsm64-go/internal/surface"
	smath "github.com/Faultbox/libsm64-go/pkg/math"
)

// inputAnyMovement is every input that wakes the character up.
const inputAnyMovement = InputNonzeroAnalog | InputAPressed | InputOffFloor | InputAboveSlide |
	InputFirstPerson | InputStomped | InputBPressed | InputZPressed

const inputCommonExits = InputNonzeroAnalog | InputAPressed | InputOffFloor | InputAboveSlide

func init() {
	registerActions(map[Action]handler{
		ActIdle:                (*Mario).actIdle,
		ActStartSleeping:       (*Mario).actStartSleeping,
		ActSleeping:            (*Mario).actSleeping,
		ActWakingUp:            (*Mario).actWakingUp,
		ActShivering:           (*Mario).actShivering,
		ActStandingAgainstWall: (*Mario).actStandingAgainstWall,
		ActInQuicksand:         (*Mario).actInQuicksand,
		ActCrouching:           (*Mario).actCrouching,
		ActPanting:             (*Mario).actPanting,
		ActStartCrouching:      (*Mario).actStartCrouching,
		ActStopCrouching:       (*Mario).actStopCrouching,
		ActStartCrawling:       (*Mario).actStartCrawling,
		ActStopCrawling:        (*Mario).actStopCrawling,
		ActShockwaveBounce:     (*Mario).actShockwaveBounce,
		ActJumpLandStop:        (*Mario).actJumpLandStop,
		ActDoubleJumpLandStop:  (*Mario).actDoubleJumpLandStop,
		ActSideFlipLandStop:    (*Mario).actSideFlipLandStop,
		ActFreefallLandStop:    (*Mario).actFreefallLandStop,
		ActTripleJumpLandStop:  (*Mario).actTripleJumpLandStop,
		ActBackflipLandStop:    (*Mario).actBackflipLandStop,
		ActLavaBoostLand:       (*Mario).actLavaBoostLand,
		ActLongJumpLandStop:    (*Mario).actLongJumpLandStop,
		ActTwirlLand:           (*Mario).actTwirlLand,
		ActGroundPoundLand:     (*Mario).actGroundPoundLand,
		ActBrakingStop:         (*Mario).actBrakingStop,
		ActButtSlideStop:       (*Mario).actButtSlideStop,
		ActSlideKickSlideStop:  (*Mario).actSlideKickSlideStop,
	})
}

func (m *Mario) checkCommonIdleCancels() bool {
	switch {
	case m.floorNormalY() < 0.29237169:
		return m.pushOffSteepFloor(ActFreefall, 0)
	case m.Input&InputStomped != 0:
		return m.SetAction(ActShockwaveBounce, 0)
	case m.Input&InputAPressed != 0:
		return m.setJumpingAction(ActJump, 0)
	case m.Input&InputOffFloor != 0:
		return m.SetAction(ActFreefall, 0)
	case m.Input&InputAboveSlide != 0:
		return m.SetAction(ActBeginSliding, 0)
	case m.Input&InputNonzeroAnalog != 0:
		m.FaceAngle.Y = m.IntendedYaw
		return m.SetAction(ActWalking, 0)
	case m.Input&InputBPressed != 0:
		return m.SetAction(ActPunching, 0)
	case m.Input&InputZDown != 0:
		return m.SetAction(ActStartCrouching, 0)
	}
	return false
}

func (m *Mario) actIdle() bool {
	if m.QuicksandDepth > 30 {
		return m.SetAction(ActInQuicksand, 0)
	}
	if m.ActionArg&1 == 0 && m.Health < 0x300 {
		return m.SetAction(ActPanting, 0)
	}
	if m.checkCommonIdleCancels() {
		return true
	}

	if m.ActionState == 3 {
		if m.terrainType()&surface.TerrainMask == surface.TerrainSnow {
			return m.SetAction(ActShivering, 0)
		}
		return m.SetAction(ActStartSleeping, 0)
	}

	if m.ActionArg&1 != 0 {
		m.setAnim(anim.StandAgainstWall)
	} else {
		switch m.ActionState {
		case 0:
			m.setAnim(anim.IdleHeadLeft)
		case 1:
			m.setAnim(anim.IdleHeadRight)
		case 2:
			m.setAnim(anim.IdleHeadCenter)
		}

		if m.isAnimAtEnd() {
			m.ActionState++
			if m.ActionState == 3 {
				dy := m.Pos.Y - m.floorHeightRelativePolar(-0x8000, 60)
				if dy < -24 || dy > 24 || m.Floor.Dynamic() {
					m.ActionState = 0
				} else if m.ActionTimer++; m.ActionTimer < 10 {
					m.ActionState = 0
				}
			}
		}
	}

	m.stationaryGroundStep()
	return false
}

func (m *Mario) playAnimSound(state uint16, frame int16, bits uint32) {
	if m.ActionState == state && m.Anim.Frame == frame {
		m.playSound(bits)
	}
}

func (m *Mario) actStartSleeping() bool {
	if m.checkCommonIdleCancels() {
		return true
	}
	if m.QuicksandDepth > 30 {
		return m.SetAction(ActInQuicksand, 0)
	}
	if m.ActionState == 4 {
		return m.SetAction(ActSleeping, 0)
	}

	var frame int16
	switch m.ActionState {
	case 0:
		frame = m.setAnim(anim.StartSleepIdle)
	case 1:
		frame = m.setAnim(anim.StartSleepScratch)
	case 2:
		frame = m.setAnim(anim.StartSleepYawn)
		m.Body.EyeState = anim.EyesHalfClosed
	case 3:
		frame = m.setAnim(anim.StartSleepSitting)
		m.Body.EyeState = anim.EyesHalfClosed
	}

	m.playAnimSound(1, 41, audio.SoundActionPatBack)
	m.playAnimSound(1, 49, audio.SoundActionPatBack)
	m.playAnimSound(3, 15, m.TerrainSoundAddend+audio.SoundActionTerrainBodyHitGround)

	if m.isAnimAtEnd() {
		m.ActionState++
	}
	if frame == -1 {
		switch m.ActionState {
		case 1:
			m.playSound(audio.SoundActionBrushHair)
		case 2:
			m.playSound(audio.SoundMarioYawning)
		}
	}

	m.stationaryGroundStep()
	return false
}

func (m *Mario) actSleeping() bool {
	if m.Input&inputAnyMovement != 0 || m.QuicksandDepth > 30 ||
		m.Pos.Y-m.floorHeightRelativePolar(-0x8000, 60) > 24 {
		return m.SetAction(ActWakingUp, uint32(m.ActionState))
	}

	m.Body.EyeState = anim.EyesClosed
	m.stationaryGroundStep()

	switch m.ActionState {
	case 0:
		frame := m.setAnim(anim.SleepIdle)
		if frame == 2 {
			m.playSound(audio.SoundMarioSnoring1)
		}
		if frame == 20 {
			m.playSound(audio.SoundMarioSnoring2)
		}
		if m.isAnimAtEnd() {
			if m.ActionTimer++; m.ActionTimer > 45 {
				m.ActionState++
			}
		}
	case 1:
		if m.setAnim(anim.SleepStartLying) == 18 {
			m.playHeavyLandingSound(audio.SoundActionTerrainBodyHitGround)
		}
		if m.isAnimAtEnd() {
			m.ActionState++
		}
	case 2:
		m.setAnim(anim.SleepLying)
		m.playSoundIfNoFlag(audio.SoundMarioSnoring3, FlagActionSoundPlayed)
	}
	return false
}

func (m *Mario) actWakingUp() bool {
	switch {
	case m.Input&InputStomped != 0:
		return m.SetAction(ActShockwaveBounce, 0)
	case m.Input&InputOffFloor != 0:
		return m.SetAction(ActFreefall, 0)
	case m.Input&InputAboveSlide != 0:
		return m.SetAction(ActBeginSliding, 0)
	}

	if m.ActionTimer++; m.ActionTimer > 20 {
		return m.SetAction(ActIdle, 0)
	}

	m.stationaryGroundStep()
	if m.ActionArg == 0 {
		m.setAnim(anim.WakeFromSleep)
	} else {
		m.setAnim(anim.WakeFromLying)
	}
	return false
}

func (m *Mario) actShivering() bool {
	if m.Input&InputStomped != 0 {
		return m.SetAction(ActShockwaveBounce, 0)
	}
	if m.Input&inputAnyMovement != 0 {
		m.ActionState = 2
	}

	m.stationaryGroundStep()
	switch m.ActionState {
	case 0:
		frame := m.setAnim(anim.ShiveringWarmingHand)
		if frame == 49 {
			m.ParticleFlags |= ParticleBreath
			m.playSound(audio.SoundMarioPantingCold)
		}
		if frame == 7 || frame == 81 {
			m.playSound(audio.SoundActionClapHandsCold)
		}
		if m.isAnimPastEnd() {
			m.ActionState = 1
		}
	case 1:
		switch m.setAnim(anim.Shivering) {
		case 9, 25, 44:
			m.playSound(audio.SoundActionClapHandsCold)
		}
	case 2:
		m.setAnim(anim.ShiveringReturnToIdle)
		if m.isAnimPastEnd() {
			m.SetAction(ActIdle, 0)
		}
	}
	return false
}

func (m *Mario) actStandingAgainstWall() bool {
	switch {
	case m.Input&InputStomped != 0:
		return m.SetAction(ActShockwaveBounce, 0)
	case m.Input&inputCommonExits != 0:
		return m.checkCommonActionExits()
	case m.Input&InputBPressed != 0:
		return m.SetAction(ActPunching, 0)
	}

	m.setAnim(anim.StandAgainstWall)
	m.stationaryGroundStep()
	return false
}

func (m *Mario) actInQuicksand() bool {
	if m.QuicksandDepth < 30 {
		return m.SetAction(ActIdle, 0)
	}
	if m.checkCommonIdleCancels() {
		return true
	}

	if m.QuicksandDepth > 70 {
		m.setAnim(anim.DyingInQuicksand)
	} else {
		m.setAnim(anim.IdleInQuicksand)
	}
	m.stationaryGroundStep()
	return false
}

func (m *Mario) actCrouching() bool {
	switch {
	case m.Input&InputStomped != 0:
		return m.SetAction(ActShockwaveBounce, 0)
	case m.Input&InputAPressed != 0:
		return m.setJumpingAction(ActBackflip, 0)
	case m.Input&InputOffFloor != 0:
		return m.SetAction(ActFreefall, 0)
	case m.Input&InputAboveSlide != 0:
		return m.SetAction(ActBeginSliding, 0)
	case m.Input&InputZDown == 0:
		return m.SetAction(ActStopCrouching, 0)
	case m.Input&InputNonzeroAnalog != 0:
		return m.SetAction(ActStartCrawling, 0)
	case m.Input&InputBPressed != 0:
		return m.SetAction(ActPunching, 9)
	}

	m.stationaryGroundStep()
	m.setAnim(anim.Crouching)
	return false
}

func (m *Mario) actPanting() bool {
	if m.Input&InputStomped != 0 {
		return m.SetAction(ActShockwaveBounce, 0)
	}
	if m.Health >= 0x500 {
		return m.SetAction(ActIdle, 0)
	}
	if m.checkCommonIdleCancels() {
		return true
	}

	if m.setAnim(anim.WalkPanting) == 1 {
		m.playSound(audio.SoundMarioPanting + uint32(m.random()%3)<<16)
	}
	m.stationaryGroundStep()
	m.Body.EyeState = anim.EyesHalfClosed
	return false
}

// stoppingStep plays clip in place and moves on to action when it ends.
func (m *Mario) stoppingStep(clip int16, action Action) {
	m.stationaryGroundStep()
	m.setAnim(clip)
	if m.isAnimAtEnd() {
		m.SetAction(action, 0)
	}
}

func (m *Mario) actStartCrouching() bool {
	switch {
	case m.Input&InputStomped != 0:
		return m.SetAction(ActShockwaveBounce, 0)
	case m.Input&InputOffFloor != 0:
		return m.SetAction(ActFreefall, 0)
	case m.Input&InputAPressed != 0:
		return m.setJumpingAction(ActBackflip, 0)
	case m.Input&InputAboveSlide != 0:
		return m.SetAction(ActBeginSliding, 0)
	}

	m.stationaryGroundStep()
	m.setAnim(anim.StartCrouching)
	if m.isAnimPastEnd() {
		m.SetAction(ActCrouching, 0)
	}
	return false
}

func (m *Mario) actStopCrouching() bool {
	switch {
	case m.Input&InputStomped != 0:
		return m.SetAction(ActShockwaveBounce, 0)
	case m.Input&InputOffFloor != 0:
		return m.SetAction(ActFreefall, 0)
	case m.Input&InputAPressed != 0:
		return m.setJumpingAction(ActBackflip, 0)
	case m.Input&InputAboveSlide != 0:
		return m.SetAction(ActBeginSliding, 0)
	}

	m.stationaryGroundStep()
	m.setAnim(anim.StopCrouching)
	if m.isAnimPastEnd() {
		m.SetAction(ActIdle, 0)
	}
	return false
}

func (m *Mario) actStartCrawling() bool {
	switch {
	case m.Input&InputOffFloor != 0:
		return m.SetAction(ActFreefall, 0)
	case m.Input&InputStomped != 0:
		return m.SetAction(ActShockwaveBounce, 0)
	case m.Input&InputAboveSlide != 0:
		return m.SetAction(ActBeginSliding, 0)
	}

	m.stationaryGroundStep()
	m.setAnim(anim.StartCrawling)
	if m.isAnimPastEnd() {
		m.SetAction(ActCrawling, 0)
	}
	return false
}

func (m *Mario) actStopCrawling() bool {
	switch {
	case m.Input&InputOffFloor != 0:
		return m.SetAction(ActFreefall, 0)
	case m.Input&InputStomped != 0:
		return m.SetAction(ActShockwaveBounce, 0)
	case m.Input&InputAboveSlide != 0:
		return m.SetAction(ActBeginSliding, 0)
	}

	m.stationaryGroundStep()
	m.setAnim(anim.StopCrawling)
	if m.isAnimPastEnd() {
		m.SetAction(ActCrouching, 0)
	}
	return false
}

func (m *Mario) actShockwaveBounce() bool {
	if m.ActionTimer++; m.ActionTimer == 48 {
		return m.SetAction(ActIdle, 0)
	}

	phase := int16((m.ActionTimer % 16) << 12)
	height := float32(6-int(m.ActionTimer/8))*8 + 4

	m.SetForwardVel(0)
	m.Vel = smath.Vec3{}
	if s := smath.Sins(phase); s >= 0 {
		m.Pos.Y = s*height + m.FloorHeight
	} else {
		m.Pos.Y = m.FloorHeight - s*height
	}

	m.updateGfxFromPos()
	m.setAnim(anim.APose)
	return false
}

func (m *Mario) landingStep(clip int16, action Action) bool {
	m.stationaryGroundStep()
	m.setAnim(clip)
	if m.isAnimAtEnd() {
		return m.SetAction(action, 0)
	}
	return false
}

// checkCommonLandingCancels handles exits from a landing. A zero jump
// picks the follow-up jump from the landing chain.
func (m *Mario) checkCommonLandingCancels(jump Action) bool {
	switch {
	case m.Input&InputStomped != 0:
		return m.SetAction(ActShockwaveBounce, 0)
	case m.Input&InputFirstPerson != 0:
		return m.SetAction(ActIdle, 0)
	case m.Input&InputAPressed != 0:
		if jump == 0 {
			return m.setJumpFromLanding()
		}
		return m.setJumpingAction(jump, 0)
	case m.Input&inputCommonExits != 0:
		return m.checkCommonActionExits()
	case m.Input&InputBPressed != 0:
		return m.SetAction(ActPunching, 0)
	}
	return false
}

func (m *Mario) actJumpLandStop() bool {
	if m.checkCommonLandingCancels(0) {
		return true
	}
	m.landingStep(anim.LandFromSingleJump, ActIdle)
	return false
}

func (m *Mario) actDoubleJumpLandStop() bool {
	if m.checkCommonLandingCancels(0) {
		return true
	}
	m.landingStep(anim.LandFromDoubleJump, ActIdle)
	return false
}

func (m *Mario) actSideFlipLandStop() bool {
	if m.checkCommonLandingCancels(0) {
		return true
	}
	m.landingStep(anim.SlideflipLand, ActIdle)
	m.GfxAngle.Y += -0x8000
	return false
}

func (m *Mario) actFreefallLandStop() bool {
	if m.checkCommonLandingCancels(0) {
		return true
	}
	m.landingStep(anim.GeneralLand, ActIdle)
	return false
}

func (m *Mario) actTripleJumpLandStop() bool {
	if m.checkCommonLandingCancels(ActJump) {
		return true
	}
	m.landingStep(anim.TripleJumpLand, ActIdle)
	return false
}

func (m *Mario) actBackflipLandStop() bool {
	if m.Input&InputZDown == 0 || m.Anim.Frame >= 6 {
		m.Input &^= InputAPressed
	}
	if m.checkCommonLandingCancels(ActBackflip) {
		return true
	}
	m.landingStep(anim.TripleJumpLand, ActIdle)
	return false
}

func (m *Mario) actLavaBoostLand() bool {
	m.Input &^= InputFirstPerson | InputBPressed
	if m.checkCommonLandingCancels(0) {
		return true
	}
	m.landingStep(anim.StandUpFromLavaBoost, ActIdle)
	return false
}

func (m *Mario) actLongJumpLandStop() bool {
	m.Input &^= InputBPressed
	if m.checkCommonLandingCancels(ActJump) {
		return true
	}
	clip := anim.CrouchFromFastLongjump
	if m.longJumpIsSlow {
		clip = anim.CrouchFromSlowLongjump
	}
	m.landingStep(clip, ActCrouching)
	return false
}

func (m *Mario) actTwirlLand() bool {
	m.ActionState = 1
	switch {
	case m.Input&InputStomped != 0:
		return m.SetAction(ActShockwaveBounce, 0)
	case m.Input&InputOffFloor != 0:
		return m.SetAction(ActFreefall, 0)
	}

	m.stationaryGroundStep()
	m.setAnim(anim.TwirlLand)
	if m.AngleVel.Y > 0 {
		m.AngleVel.Y -= 0x400
		if m.AngleVel.Y < 0 {
			m.AngleVel.Y = 0
		}
		m.TwirlYaw += m.AngleVel.Y
	}

	m.GfxAngle.Y += m.TwirlYaw
	if m.isAnimAtEnd() && m.AngleVel.Y == 0 {
		m.FaceAngle.Y += m.TwirlYaw
		m.SetAction(ActIdle, 0)
	}
	return false
}

func (m *Mario) actGroundPoundLand() bool {
	m.ActionState = 1
	switch {
	case m.Input&InputStomped != 0:
		return m.SetAction(ActShockwaveBounce, 0)
	case m.Input&InputOffFloor != 0:
		return m.SetAction(ActFreefall, 0)
	case m.Input&InputAboveSlide != 0:
		return m.SetAction(ActButtSlide, 0)
	}

	m.landingStep(anim.GroundPoundLanding, ActButtSlideStop)
	return false
}

func (m *Mario) actBrakingStop() bool {
	switch {
	case m.Input&InputStomped != 0:
		return m.SetAction(ActShockwaveBounce, 0)
	case m.Input&InputOffFloor != 0:
		return m.SetAction(ActFreefall, 0)
	case m.Input&InputBPressed != 0:
		return m.SetAction(ActPunching, 0)
	case m.Input&InputFirstPerson == 0 && m.Input&inputCommonExits != 0:
		return m.checkCommonActionExits()
	}

	m.stoppingStep(anim.StopSkid, ActIdle)
	return false
}

func (m *Mario) actButtSlideStop() bool {
	switch {
	case m.Input&InputStomped != 0:
		return m.SetAction(ActShockwaveBounce, 0)
	case m.Input&inputCommonExits != 0:
		return m.checkCommonActionExits()
	}

	m.stoppingStep(anim.StopSlide, ActIdle)
	if m.Anim.Frame == 6 {
		m.playLandingSound(audio.SoundActionTerrainLanding)
	}
	return false
}

func (m *Mario) actSlideKickSlideStop() bool {
	switch {
	case m.Input&InputStomped != 0:
		return m.SetAction(ActShockwaveBounce, 0)
	case m.Input&InputOffFloor != 0:
		return m.dropAndSetAction(ActFreefall, 0)
	}

	m.stoppingStep(anim.CrouchFromSlideKick, ActCrouching)
	return false
}
