package mario

import (
	"github.com/Faultbox/libsm64-go/internal/anim"
	"github.com/Faultbox/libsm64-go/internal/audio"
	"github.com/Faultbox/libsm64-go/internal/surface"
	smath "github.com/Faultbox/libsm64-go/pkg/math"
)

// Fall damage thresholds.
const (
	fallDamageHeight     = 1150
	hardFallDamageHeight = 3000
)

func init() {
	registerActions(map[Action]handler{
		ActJump:              (*Mario).actJump,
		ActDoubleJump:        (*Mario).actDoubleJump,
		ActTripleJump:        (*Mario).actTripleJump,
		ActBackflip:          (*Mario).actBackflip,
		ActFreefall:          (*Mario).actFreefall,
		ActSideFlip:          (*Mario).actSideFlip,
		ActWallKickAir:       (*Mario).actWallKickAir,
		ActLongJump:          (*Mario).actLongJump,
		ActTwirling:          (*Mario).actTwirling,
		ActDive:              (*Mario).actDive,
		ActWaterJump:         (*Mario).actWaterJump,
		ActSteepJump:         (*Mario).actSteepJump,
		ActGroundPound:       (*Mario).actGroundPound,
		ActBurningJump:       (*Mario).actBurningJump,
		ActBurningFall:       (*Mario).actBurningFall,
		ActBackwardAirKb:     (*Mario).actBackwardAirKb,
		ActForwardAirKb:      (*Mario).actForwardAirKb,
		ActHardBackwardAirKb: (*Mario).actHardBackwardAirKb,
		ActHardForwardAirKb:  (*Mario).actHardForwardAirKb,
		ActSoftBonk:          (*Mario).actSoftBonk,
		ActGettingBlown:      (*Mario).actGettingBlown,
		ActAirHitWall:        (*Mario).actAirHitWall,
		ActForwardRollout:    (*Mario).actForwardRollout,
		ActBackwardRollout:   (*Mario).actBackwardRollout,
		ActButtSlideAir:      (*Mario).actButtSlideAir,
		ActLavaBoost:         (*Mario).actLavaBoost,
		ActSlideKick:         (*Mario).actSlideKick,
		ActJumpKick:          (*Mario).actJumpKick,
		ActFlying:            (*Mario).actFlying,
		ActFlyingTripleJump:  (*Mario).actFlyingTripleJump,
		ActVerticalWind:      (*Mario).actVerticalWind,
	})
}

func (m *Mario) playFlipSounds(frames ...int16) {
	frame := m.Anim.Frame
	for _, f := range frames {
		if frame == f {
			m.playSound(audio.SoundActionSideFlip)
			return
		}
	}
}

func (m *Mario) playKnockbackSound() {
	if m.ActionArg == 0 && (m.ForwardVel <= -28 || m.ForwardVel >= 28) {
		m.playSoundIfNoFlag(audio.SoundMarioDoh, FlagMarioSoundPlayed)
	} else {
		m.playSoundIfNoFlag(audio.SoundMarioUh, FlagMarioSoundPlayed)
	}
}

func (m *Mario) capHurt(onHead, bare uint8) uint8 {
	if m.Flags&FlagCapOnHead != 0 {
		return onHead
	}
	return bare
}

func (m *Mario) lavaBoostOnWall() bool {
	if m.Wall != nil {
		m.FaceAngle.Y = smath.Atan2s(m.Wall.Normal.Z, m.Wall.Normal.X)
	}
	if m.ForwardVel < 24 {
		m.ForwardVel = 24
	}
	if m.Flags&FlagMetalCap == 0 {
		m.HurtCounter += m.capHurt(12, 18)
	}
	m.playSound(audio.SoundMarioOnFire)
	return m.dropAndSetAction(ActLavaBoost, 1)
}

func (m *Mario) checkFallDamage(hardFallAction Action) bool {
	fallHeight := m.PeakHeight - m.Pos.Y

	if m.Action == ActTwirling || m.Floor.Type == surface.TypeBurning {
		return false
	}
	if m.Vel.Y >= -55 {
		return false
	}
	if fallHeight > hardFallDamageHeight {
		m.HurtCounter += m.capHurt(16, 24)
		m.playSound(audio.SoundMarioAttacked)
		return m.dropAndSetAction(hardFallAction, 4)
	}
	if fallHeight > fallDamageHeight && !m.floorIsSlippery() {
		m.HurtCounter += m.capHurt(8, 12)
		m.SquishTimer = 30
		m.playSound(audio.SoundMarioAttacked)
	}
	return false
}

func (m *Mario) checkKickOrDiveInAir() bool {
	if m.Input&InputBPressed == 0 {
		return false
	}
	if m.ForwardVel > 28 {
		return m.SetAction(ActDive, 0)
	}
	return m.SetAction(ActJumpKick, 0)
}

func (m *Mario) checkHorizontalWind() bool {
	if m.Floor == nil || m.Floor.Type != surface.TypeHorizontalWind {
		return false
	}
	pushAngle := m.Floor.Force << 8
	m.SlideVelX += 1.2 * smath.Sins(pushAngle)
	m.SlideVelZ += 1.2 * smath.Coss(pushAngle)

	speed := smath.Sqrtf(m.SlideVelX*m.SlideVelX + m.SlideVelZ*m.SlideVelZ)
	if speed > 48 {
		m.SlideVelX = m.SlideVelX * 48 / speed
		m.SlideVelZ = m.SlideVelZ * 48 / speed
		speed = 32
	} else if speed > 32 {
		speed = 32
	}

	m.Vel.X = m.SlideVelX
	m.Vel.Z = m.SlideVelZ
	m.SlideYaw = smath.Atan2s(m.SlideVelZ, m.SlideVelX)
	m.ForwardVel = speed * smath.Coss(m.FaceAngle.Y-m.SlideYaw)
	return true
}

func (m *Mario) airDragThreshold() float32 {
	if m.Action == ActLongJump {
		return 48
	}
	return 32
}

func (m *Mario) applyAirDrag(threshold float32) {
	if m.ForwardVel > threshold {
		m.ForwardVel -= 1
	}
	if m.ForwardVel < -16 {
		m.ForwardVel += 2
	}
}

func (m *Mario) updateAirWithTurn() {
	if m.checkHorizontalWind() {
		return
	}
	threshold := m.airDragThreshold()
	m.ForwardVel = smath.Approach(m.ForwardVel, 0, 0.35, 0.35)

	if m.Input&InputNonzeroAnalog != 0 {
		dyaw := m.IntendedYaw - m.FaceAngle.Y
		mag := m.IntendedMag / 32
		m.ForwardVel += 1.5 * smath.Coss(dyaw) * mag
		m.FaceAngle.Y += int16(512 * smath.Sins(dyaw) * mag)
	}

	m.applyAirDrag(threshold)
	m.SlideVelX = m.ForwardVel * smath.Sins(m.FaceAngle.Y)
	m.SlideVelZ = m.ForwardVel * smath.Coss(m.FaceAngle.Y)
	m.Vel.X = m.SlideVelX
	m.Vel.Z = m.SlideVelZ
}

func (m *Mario) updateAirWithoutTurn() {
	if m.checkHorizontalWind() {
		return
	}
	threshold := m.airDragThreshold()
	m.ForwardVel = smath.Approach(m.ForwardVel, 0, 0.35, 0.35)

	var sideways float32
	if m.Input&InputNonzeroAnalog != 0 {
		dyaw := m.IntendedYaw - m.FaceAngle.Y
		mag := m.IntendedMag / 32
		m.ForwardVel += mag * smath.Coss(dyaw) * 1.5
		sideways = mag * smath.Sins(dyaw) * 10
	}

	m.applyAirDrag(threshold)
	m.SlideVelX = m.ForwardVel*smath.Sins(m.FaceAngle.Y) + sideways*smath.Sins(m.FaceAngle.Y+0x4000)
	m.SlideVelZ = m.ForwardVel*smath.Coss(m.FaceAngle.Y) + sideways*smath.Coss(m.FaceAngle.Y+0x4000)
	m.Vel.X = m.SlideVelX
	m.Vel.Z = m.SlideVelZ
}

func (m *Mario) updateLavaBoostOrTwirling() {
	if m.Input&InputNonzeroAnalog != 0 {
		dyaw := m.IntendedYaw - m.FaceAngle.Y
		mag := m.IntendedMag / 32
		m.ForwardVel += smath.Coss(dyaw) * mag
		m.FaceAngle.Y += int16(smath.Sins(dyaw) * mag * 1024)
		if m.ForwardVel < 0 {
			m.FaceAngle.Y += -0x8000
			m.ForwardVel *= -1
		}
		if m.ForwardVel > 32 {
			m.ForwardVel -= 2
		}
	}
	m.SlideVelX = m.ForwardVel * smath.Sins(m.FaceAngle.Y)
	m.SlideVelZ = m.ForwardVel * smath.Coss(m.FaceAngle.Y)
	m.Vel.X = m.SlideVelX
	m.Vel.Z = m.SlideVelZ
}

// approachVel steers an angular velocity towards target, braking hard when
// the sign flips.
func approachVel(vel int16, target int16, flip, small, up, down int32) int16 {
	switch {
	case target > 0:
		if vel < 0 {
			v := int32(vel) + flip
			return int16(min(v, small))
		}
		return int16(smath.ApproachInt(int32(vel), int32(target), up, down))
	case target < 0:
		if vel > 0 {
			v := int32(vel) - flip
			return int16(max(v, -small))
		}
		return int16(smath.ApproachInt(int32(vel), int32(target), down, up))
	default:
		return int16(smath.ApproachInt(int32(vel), 0, 0x40, 0x40))
	}
}

func (m *Mario) updateFlying() {
	targetPitch := -int16(m.Controller.StickY * (m.ForwardVel / 5))
	m.AngleVel.X = approachVel(m.AngleVel.X, targetPitch, 0x40, 0x20, 0x20, 0x40)

	targetYaw := -int16(m.Controller.StickX * (m.ForwardVel / 4))
	m.AngleVel.Y = approachVel(m.AngleVel.Y, targetYaw, 0x40, 0x10, 0x10, 0x20)
	m.FaceAngle.Y += m.AngleVel.Y
	m.FaceAngle.Z = 20 * -m.AngleVel.Y

	m.ForwardVel -= 2*(float32(m.FaceAngle.X)/0x4000) + 0.1
	m.ForwardVel -= 0.5 * (1 - smath.Coss(m.AngleVel.Y))
	if m.ForwardVel < 0 {
		m.ForwardVel = 0
	}

	pitch := int32(m.FaceAngle.X)
	switch {
	case m.ForwardVel > 16:
		pitch += int32((m.ForwardVel - 32) * 6)
	case m.ForwardVel > 4:
		pitch += int32((m.ForwardVel - 32) * 10)
	default:
		pitch -= 0x400
	}
	pitch += int32(m.AngleVel.X)
	m.FaceAngle.X = int16(min(max(pitch, -0x2AAA), 0x2AAA))

	m.Vel.X = m.ForwardVel * smath.Coss(m.FaceAngle.X) * smath.Sins(m.FaceAngle.Y)
	m.Vel.Y = m.ForwardVel * smath.Sins(m.FaceAngle.X)
	m.Vel.Z = m.ForwardVel * smath.Coss(m.FaceAngle.X) * smath.Coss(m.FaceAngle.Y)
	m.SlideVelX = m.Vel.X
	m.SlideVelZ = m.Vel.Z
}

func (m *Mario) commonAirActionStep(landAction Action, clip int16, stepArg uint32) int {
	m.updateAirWithoutTurn()

	result := m.performAirStep(stepArg)
	switch result {
	case AirStepNone:
		m.setAnim(clip)
	case AirStepLanded:
		if !m.checkFallDamage(ActHardBackwardGroundKb) {
			m.SetAction(landAction, 0)
		}
	case AirStepHitWall:
		m.setAnim(clip)
		if m.ForwardVel <= 16 {
			m.SetForwardVel(0)
			break
		}
		m.bonkReflection(false)
		m.FaceAngle.Y += -0x8000
		if m.Wall != nil {
			m.SetAction(ActAirHitWall, 0)
			break
		}
		if m.Vel.Y > 0 {
			m.Vel.Y = 0
		}
		if m.ForwardVel >= 38 {
			m.ParticleFlags |= ParticleVerticalStar
			m.SetAction(ActBackwardAirKb, 0)
		} else {
			if m.ForwardVel > 8 {
				m.SetForwardVel(-8)
			}
			m.SetAction(ActSoftBonk, 0)
		}
	case AirStepGrabbedLedge:
		m.setAnim(anim.IdleOnLedge)
		m.dropAndSetAction(ActLedgeGrab, 0)
	case AirStepGrabbedCeiling:
		m.SetAction(ActStartHanging, 0)
	case AirStepHitLavaWall:
		m.lavaBoostOnWall()
	}
	return result
}

func (m *Mario) actJump() bool {
	if m.checkKickOrDiveInAir() {
		return true
	}
	if m.Input&InputZPressed != 0 {
		return m.SetAction(ActGroundPound, 0)
	}
	m.playMarioSound(audio.SoundActionTerrainJump, voiceJump)
	m.commonAirActionStep(ActJumpLand, anim.SingleJump, AirStepCheckLedgeGrab|AirStepCheckHang)
	return false
}

func (m *Mario) actDoubleJump() bool {
	clip := anim.DoubleJumpFall
	if m.Vel.Y >= 0 {
		clip = anim.DoubleJumpRise
	}
	if m.checkKickOrDiveInAir() {
		return true
	}
	if m.Input&InputZPressed != 0 {
		return m.SetAction(ActGroundPound, 0)
	}
	m.playMarioSound(audio.SoundActionTerrainJump, audio.SoundMarioHoohoo)
	m.commonAirActionStep(ActDoubleJumpLand, clip, AirStepCheckLedgeGrab|AirStepCheckHang)
	return false
}

func (m *Mario) actTripleJump() bool {
	if m.Input&InputBPressed != 0 {
		return m.SetAction(ActDive, 0)
	}
	if m.Input&InputZPressed != 0 {
		return m.SetAction(ActGroundPound, 0)
	}
	m.playMarioSound(audio.SoundActionTerrainJump, voiceJump)
	m.commonAirActionStep(ActTripleJumpLand, anim.TripleJump, 0)
	m.playFlipSounds(2, 8, 20)
	return false
}

func (m *Mario) actBackflip() bool {
	if m.Input&InputZPressed != 0 {
		return m.SetAction(ActGroundPound, 0)
	}
	m.playMarioSound(audio.SoundActionTerrainJump, audio.SoundMarioYahWahHoo)
	m.commonAirActionStep(ActBackflipLand, anim.Backflip, 0)
	m.playFlipSounds(2, 3, 17)
	return false
}

func (m *Mario) actFreefall() bool {
	if m.Input&InputBPressed != 0 {
		return m.SetAction(ActDive, 0)
	}
	if m.Input&InputZPressed != 0 {
		return m.SetAction(ActGroundPound, 0)
	}

	clip := anim.GeneralFall
	switch m.ActionArg {
	case 1:
		clip = anim.FallFromSlide
	case 2:
		clip = anim.FallFromSlideKick
	}
	m.commonAirActionStep(ActFreefallLand, clip, AirStepCheckLedgeGrab)
	return false
}

func (m *Mario) actSideFlip() bool {
	if m.Input&InputBPressed != 0 {
		return m.SetAction(ActDive, 0)
	}
	if m.Input&InputZPressed != 0 {
		return m.SetAction(ActGroundPound, 0)
	}

	m.playMarioSound(audio.SoundActionTerrainJump, voiceJump)
	if m.commonAirActionStep(ActSideFlipLand, anim.Slideflip, AirStepCheckLedgeGrab) != AirStepGrabbedLedge {
		m.GfxAngle.Y += -0x8000
	}
	if m.Anim.Frame == 6 {
		m.playSound(audio.SoundActionSideFlip)
	}
	return false
}

func (m *Mario) actWallKickAir() bool {
	if m.Input&InputBPressed != 0 {
		return m.SetAction(ActDive, 0)
	}
	if m.Input&InputZPressed != 0 {
		return m.SetAction(ActGroundPound, 0)
	}
	m.playJumpSound()
	m.commonAirActionStep(ActJumpLand, anim.Slidejump, AirStepCheckLedgeGrab)
	return false
}

func (m *Mario) actLongJump() bool {
	clip := anim.FastLongjump
	if m.longJumpIsSlow {
		clip = anim.SlowLongjump
	}

	m.playMarioSound(audio.SoundActionTerrainJump, audio.SoundMarioYahoo)
	if m.Floor.Type == surface.TypeVerticalWind && m.ActionState == 0 {
		m.playSound(audio.SoundMarioHereWeGo)
		m.ActionState = 1
	}
	m.commonAirActionStep(ActLongJumpLand, clip, AirStepCheckLedgeGrab)
	return false
}

func (m *Mario) actTwirling() bool {
	startYaw := m.TwirlYaw

	target := int32(0x1800)
	if m.Input&InputADown != 0 {
		target = 0x2000
	}
	m.AngleVel.Y = int16(smath.ApproachInt(int32(m.AngleVel.Y), target, 0x200, 0x200))
	m.TwirlYaw += m.AngleVel.Y

	if m.ActionArg == 0 {
		m.setAnim(anim.StartTwirl)
	} else {
		m.setAnim(anim.Twirl)
	}
	if m.isAnimPastEnd() {
		m.ActionArg = 1
	}
	if startYaw > m.TwirlYaw {
		m.playSound(audio.SoundActionTwirl)
	}

	m.updateLavaBoostOrTwirling()

	switch m.performAirStep(0) {
	case AirStepLanded:
		m.SetAction(ActTwirlLand, 0)
	case AirStepHitWall:
		m.bonkReflection(false)
	case AirStepHitLavaWall:
		m.lavaBoostOnWall()
	}

	m.GfxAngle.Y += m.TwirlYaw
	return false
}

func (m *Mario) actDive() bool {
	if m.ActionArg == 0 {
		m.playMarioSound(audio.SoundActionThrow, audio.SoundMarioHoohoo)
	} else {
		m.playMarioSound(audio.SoundActionTerrainJump, voiceJump)
	}

	m.setAnim(anim.Dive)
	m.updateAirWithoutTurn()

	switch m.performAirStep(0) {
	case AirStepNone:
		if m.Vel.Y < 0 && m.FaceAngle.X > -0x2AAA {
			m.FaceAngle.X -= 0x200
			if m.FaceAngle.X < -0x2AAA {
				m.FaceAngle.X = -0x2AAA
			}
		}
		m.GfxAngle.X = -m.FaceAngle.X
	case AirStepLanded:
		if !m.checkFallDamage(ActHardForwardGroundKb) {
			m.SetAction(ActDiveSlide, 0)
		}
		m.FaceAngle.X = 0
	case AirStepHitWall:
		m.bonkReflection(true)
		m.FaceAngle.X = 0
		if m.Vel.Y > 0 {
			m.Vel.Y = 0
		}
		m.ParticleFlags |= ParticleVerticalStar
		m.dropAndSetAction(ActBackwardAirKb, 0)
	case AirStepHitLavaWall:
		m.lavaBoostOnWall()
	}
	return false
}

func (m *Mario) actWaterJump() bool {
	if m.ForwardVel < 15 {
		m.SetForwardVel(15)
	}

	m.playMarioSound(audio.SoundActionWaterJump, voiceJump)
	m.setAnim(anim.SingleJump)

	switch m.performAirStep(AirStepCheckLedgeGrab) {
	case AirStepLanded:
		m.SetAction(ActJumpLand, 0)
	case AirStepHitWall:
		m.SetForwardVel(15)
	case AirStepGrabbedLedge:
		m.setAnim(anim.IdleOnLedge)
		m.SetAction(ActLedgeGrab, 0)
	case AirStepHitLavaWall:
		m.lavaBoostOnWall()
	}
	return false
}

func (m *Mario) actSteepJump() bool {
	if m.Input&InputBPressed != 0 {
		return m.SetAction(ActDive, 0)
	}

	m.playMarioSound(audio.SoundActionTerrainJump, voiceJump)
	m.SetForwardVel(0.98 * m.ForwardVel)

	switch m.performAirStep(0) {
	case AirStepLanded:
		if !m.checkFallDamage(ActHardBackwardGroundKb) {
			m.FaceAngle.X = 0
			if m.ForwardVel < 0 {
				m.SetAction(ActBeginSliding, 0)
			} else {
				m.SetAction(ActJumpLand, 0)
			}
		}
	case AirStepHitWall:
		m.SetForwardVel(0)
	}

	m.setAnim(anim.SingleJump)
	m.GfxAngle.Y = m.steepJumpYaw
	return false
}

func (m *Mario) animLoopEnd() int16 {
	if m.Anim.Clip == nil {
		return 0
	}
	return m.Anim.Clip.LoopEnd
}

func (m *Mario) actGroundPound() bool {
	m.playSoundIfNoFlag(audio.SoundActionThrow, FlagActionSoundPlayed)

	if m.ActionState == 0 {
		if m.ActionTimer < 10 {
			offset := 20 - 2*float32(m.ActionTimer)
			if m.Pos.Y+offset+HitboxHeight < m.CeilHeight {
				m.Pos.Y += offset
				m.PeakHeight = m.Pos.Y
				m.GfxPos = m.Pos
			}
		}

		m.Vel.Y = -50
		m.SetForwardVel(0)

		if m.ActionArg == 0 {
			m.setAnim(anim.StartGroundPound)
		} else {
			m.setAnim(anim.TripleJumpGroundPound)
		}
		if m.ActionTimer == 0 {
			m.playSound(audio.SoundActionSpin)
		}

		m.ActionTimer++
		if int32(m.ActionTimer) >= int32(m.animLoopEnd())+4 {
			m.playSound(audio.SoundMarioGroundPoundWah)
			m.ActionState = 1
		}
		return false
	}

	m.setAnim(anim.GroundPound)
	switch m.performAirStep(0) {
	case AirStepLanded:
		m.playHeavyLandingSound(audio.SoundActionTerrainHeavyLanding)
		if !m.checkFallDamage(ActHardBackwardGroundKb) {
			m.ParticleFlags |= ParticleMistCircle | ParticleHorizontalStar
			m.SetAction(ActGroundPoundLand, 0)
		}
	case AirStepHitWall:
		m.SetForwardVel(-16)
		if m.Vel.Y > 0 {
			m.Vel.Y = 0
		}
		m.ParticleFlags |= ParticleVerticalStar
		m.SetAction(ActBackwardAirKb, 0)
	}
	return false
}

func (m *Mario) burn() {
	m.ParticleFlags |= ParticleFire
	m.burnTimer += 3
	m.Health -= 10
	if m.Health < 0x100 {
		m.Health = HealthDead
	}
}

func (m *Mario) actBurningJump() bool {
	voice := voiceJump
	if m.ActionArg != 0 {
		voice = voiceNone
	}
	m.playMarioSound(audio.SoundActionTerrainJump, voice)
	m.SetForwardVel(m.ForwardVel)

	if m.performAirStep(0) == AirStepLanded {
		m.playLandingSound(audio.SoundActionTerrainLanding)
		m.SetAction(ActBurningGround, 0)
	}

	if m.ActionArg == 0 {
		m.setAnim(anim.SingleJump)
	} else {
		m.setAnim(anim.FireLavaBurn)
	}
	m.playSound(audio.SoundMovingLavaBurn)
	m.burn()
	return false
}

func (m *Mario) actBurningFall() bool {
	m.SetForwardVel(m.ForwardVel)
	if m.performAirStep(0) == AirStepLanded {
		m.playLandingSound(audio.SoundActionTerrainLanding)
		m.SetAction(ActBurningGround, 0)
	}
	m.setAnim(anim.GeneralFall)
	m.burn()
	return false
}

func (m *Mario) commonAirKnockbackStep(landAction, hardFallAction Action, clip int16, speed float32) int {
	m.SetForwardVel(speed)

	result := m.performAirStep(0)
	switch result {
	case AirStepNone:
		m.setAnim(clip)
	case AirStepLanded:
		if !m.checkFallDamage(hardFallAction) {
			m.SetAction(landAction, m.ActionArg)
		}
	case AirStepHitWall:
		m.setAnim(anim.BackwardAirKb)
		m.bonkReflection(false)
		if m.Vel.Y > 0 {
			m.Vel.Y = 0
		}
		m.SetForwardVel(-speed)
	case AirStepHitLavaWall:
		m.lavaBoostOnWall()
	}
	return result
}

func (m *Mario) checkWallKick() bool {
	if m.Input&InputAPressed != 0 && m.WallKickTimer != 0 && m.PrevAction == ActAirHitWall {
		m.FaceAngle.Y += -0x8000
		return m.SetAction(ActWallKickAir, 0)
	}
	return false
}

func (m *Mario) actBackwardAirKb() bool {
	if m.checkWallKick() {
		return true
	}
	m.playKnockbackSound()
	m.commonAirKnockbackStep(ActBackwardGroundKb, ActHardBackwardGroundKb, anim.BackwardAirKb, -16)
	return false
}

func (m *Mario) actForwardAirKb() bool {
	if m.checkWallKick() {
		return true
	}
	m.playKnockbackSound()
	m.commonAirKnockbackStep(ActForwardGroundKb, ActHardForwardGroundKb, anim.AirForwardKb, 16)
	return false
}

func (m *Mario) actHardBackwardAirKb() bool {
	m.playKnockbackSound()
	m.commonAirKnockbackStep(ActHardBackwardGroundKb, ActHardBackwardGroundKb, anim.BackwardAirKb, -16)
	return false
}

func (m *Mario) actHardForwardAirKb() bool {
	m.playKnockbackSound()
	m.commonAirKnockbackStep(ActHardForwardGroundKb, ActHardForwardGroundKb, anim.AirForwardKb, 16)
	return false
}

func (m *Mario) actSoftBonk() bool {
	if m.checkWallKick() {
		return true
	}
	m.playKnockbackSound()
	m.commonAirKnockbackStep(ActFreefallLand, ActHardBackwardGroundKb, anim.GeneralFall, m.ForwardVel)
	return false
}

func (m *Mario) actGettingBlown() bool {
	if m.ActionState == 0 {
		if m.ForwardVel > -60 {
			m.ForwardVel -= 6
		} else {
			m.ActionState = 1
		}
	} else {
		if m.ForwardVel < -16 {
			m.ForwardVel += 0.8
		}
		if m.Vel.Y < 0 && m.windGravity < 4 {
			m.windGravity += 0.05
		}
	}

	m.ActionTimer++
	m.SetForwardVel(m.ForwardVel)
	m.setAnim(anim.BackwardAirKb)

	switch m.performAirStep(0) {
	case AirStepLanded:
		m.SetAction(ActHardBackwardAirKb, 0)
	case AirStepHitWall:
		m.setAnim(anim.AirForwardKb)
		m.bonkReflection(false)
		if m.Vel.Y > 0 {
			m.Vel.Y = 0
		}
		m.SetForwardVel(-m.ForwardVel)
	}
	return false
}

func (m *Mario) actAirHitWall() bool {
	if m.ActionTimer++; m.ActionTimer <= 2 {
		if m.Input&InputAPressed != 0 {
			m.Vel.Y = 52
			m.FaceAngle.Y += -0x8000
			return m.SetAction(ActWallKickAir, 0)
		}
	} else {
		m.WallKickTimer = 5
		if m.Vel.Y > 0 {
			m.Vel.Y = 0
		}
		if m.ForwardVel >= 38 {
			m.ParticleFlags |= ParticleVerticalStar
			return m.SetAction(ActBackwardAirKb, 0)
		}
		if m.ForwardVel > 8 {
			m.SetForwardVel(-8)
		}
		return m.SetAction(ActSoftBonk, 0)
	}

	m.setAnim(anim.StartWallKick)
	return false
}

func (m *Mario) rollout(spin int16) bool {
	if m.ActionState == 0 {
		m.Vel.Y = 30
		m.ActionState = 1
	}

	m.playMarioSound(audio.SoundActionTerrainJump, voiceJump)
	m.updateAirWithoutTurn()

	switch m.performAirStep(0) {
	case AirStepNone:
		if m.ActionState == 1 {
			if m.setAnim(spin) == 4 {
				m.playSound(audio.SoundActionSpin)
			}
		} else {
			m.setAnim(anim.GeneralFall)
		}
	case AirStepLanded:
		m.SetAction(ActFreefallLandStop, 0)
		m.playLandingSound(audio.SoundActionTerrainLanding)
	case AirStepHitWall:
		m.SetForwardVel(0)
	case AirStepHitLavaWall:
		m.lavaBoostOnWall()
	}

	if m.ActionState == 1 && m.isAnimPastEnd() {
		m.ActionState = 2
	}
	return false
}

func (m *Mario) actForwardRollout() bool  { return m.rollout(anim.ForwardSpinning) }
func (m *Mario) actBackwardRollout() bool { return m.rollout(anim.BackwardSpinning) }

func (m *Mario) actButtSlideAir() bool {
	if m.ActionTimer++; m.ActionTimer > 30 && m.Pos.Y-m.FloorHeight > 500 {
		return m.SetAction(ActFreefall, 1)
	}

	m.updateAirWithTurn()

	switch m.performAirStep(0) {
	case AirStepLanded:
		if m.ActionState == 0 && m.Vel.Y < 0 && m.floorNormalY() >= 0.9848077 {
			m.Vel.Y = -m.Vel.Y / 2
			m.ActionState = 1
		} else {
			m.SetAction(ActButtSlide, 0)
		}
		m.playLandingSound(audio.SoundActionTerrainLanding)
	case AirStepHitWall:
		if m.Vel.Y > 0 {
			m.Vel.Y = 0
		}
		m.ParticleFlags |= ParticleVerticalStar
		m.SetAction(ActBackwardAirKb, 0)
	case AirStepHitLavaWall:
		m.lavaBoostOnWall()
	}

	m.setAnim(anim.Slide)
	return false
}

func (m *Mario) actLavaBoost() bool {
	m.playSoundIfNoFlag(audio.SoundMarioOnFire, FlagMarioSoundPlayed)

	if m.Input&InputNonzeroAnalog == 0 {
		m.ForwardVel = smath.Approach(m.ForwardVel, 0, 0.35, 0.35)
	}
	m.updateLavaBoostOrTwirling()

	switch m.performAirStep(0) {
	case AirStepLanded:
		if m.Floor.Type == surface.TypeBurning {
			m.ActionState = 0
			if m.Flags&FlagMetalCap == 0 {
				m.HurtCounter += m.capHurt(12, 18)
			}
			m.Vel.Y = 84
			m.playSound(audio.SoundMarioOnFire)
		} else {
			m.playHeavyLandingSound(audio.SoundActionTerrainBodyHitGround)
			if m.ActionState < 2 && m.Vel.Y < 0 {
				m.Vel.Y = -m.Vel.Y * 0.4
				m.SetForwardVel(m.ForwardVel * 0.5)
				m.ActionState++
			} else {
				m.SetAction(ActLavaBoostLand, 0)
			}
		}
	case AirStepHitWall:
		m.bonkReflection(false)
	case AirStepHitLavaWall:
		m.lavaBoostOnWall()
	}

	m.setAnim(anim.FireLavaBurn)
	if m.terrainType() != surface.TerrainSnow && m.Flags&FlagMetalCap == 0 && m.Vel.Y > 0 {
		m.ParticleFlags |= ParticleFire
		if m.ActionState == 0 {
			m.playSound(audio.SoundMovingLavaBurn)
		}
	}

	m.burnTimer = 0
	return false
}

func (m *Mario) actSlideKick() bool {
	if m.ActionTimer == 0 {
		m.playSoundIfNoFlag(audio.SoundMarioHoohoo, FlagMarioSoundPlayed)
		m.setAnim(anim.SlideKick)
	}

	if m.ActionTimer++; m.ActionTimer > 30 && m.Pos.Y-m.FloorHeight > 500 {
		return m.SetAction(ActFreefall, 2)
	}

	m.updateAirWithoutTurn()

	switch m.performAirStep(0) {
	case AirStepNone:
		if m.ActionState == 0 {
			m.GfxAngle.X = min(smath.Atan2s(m.ForwardVel, -m.Vel.Y), 0x1800)
		}
	case AirStepLanded:
		if m.ActionState == 0 && m.Vel.Y < 0 {
			m.Vel.Y = -m.Vel.Y / 2
			m.ActionState = 1
			m.ActionTimer = 0
		} else {
			m.SetAction(ActSlideKickSlide, 0)
		}
		m.playLandingSound(audio.SoundActionTerrainLanding)
	case AirStepHitWall:
		if m.Vel.Y > 0 {
			m.Vel.Y = 0
		}
		m.ParticleFlags |= ParticleVerticalStar
		m.SetAction(ActBackwardAirKb, 0)
	case AirStepHitLavaWall:
		m.lavaBoostOnWall()
	}
	return false
}

func (m *Mario) actJumpKick() bool {
	if m.ActionState == 0 {
		m.playSoundIfNoFlag(audio.SoundMarioPunchHoo, FlagActionSoundPlayed)
		m.Anim.ID = -1
		m.setAnim(anim.AirKick)
		m.ActionState = 1
	}

	frame := m.Anim.Frame
	if frame == 0 {
		m.Body.PunchState = 2<<6 | 6
	}
	if frame >= 0 && frame < 8 {
		m.Flags |= FlagKicking
	}

	m.updateAirWithoutTurn()

	switch m.performAirStep(0) {
	case AirStepLanded:
		if !m.checkFallDamage(ActHardBackwardGroundKb) {
			m.SetAction(ActFreefallLand, 0)
		}
	case AirStepHitWall:
		m.SetForwardVel(0)
	}
	return false
}

func (m *Mario) actFlying() bool {
	startPitch := m.FaceAngle.X

	if m.Input&InputZPressed != 0 {
		return m.SetAction(ActGroundPound, 1)
	}
	if m.Flags&FlagWingCap == 0 {
		return m.SetAction(ActFreefall, 0)
	}

	if m.ActionState == 0 {
		if m.ActionArg == 0 {
			m.setAnim(anim.FlyFromCannon)
		} else {
			m.setAnim(anim.ForwardSpinningFlip)
			if m.Anim.Frame == 1 {
				m.playSound(audio.SoundActionSpin)
			}
		}
		if m.isAnimAtEnd() {
			m.setAnim(anim.WingCapFly)
			m.ActionState = 1
		}
	}

	m.updateFlying()

	switch m.performAirStep(0) {
	case AirStepNone:
		m.GfxAngle.X = -m.FaceAngle.X
		m.GfxAngle.Z = m.FaceAngle.Z
		m.ActionTimer = 0
	case AirStepLanded:
		m.SetAction(ActDiveSlide, 0)
		m.setAnim(anim.Dive)
		m.setAnimFrame(7)
		m.FaceAngle.X = 0
	case AirStepHitWall:
		if m.Wall != nil {
			m.SetForwardVel(-16)
			m.FaceAngle.X = 0
			if m.Vel.Y > 0 {
				m.Vel.Y = 0
			}
			if m.Flags&FlagMetalCap != 0 {
				m.playSound(audio.SoundActionMetalBonk)
			} else {
				m.playSound(audio.SoundActionBonk)
			}
			m.ParticleFlags |= ParticleVerticalStar
			m.SetAction(ActBackwardAirKb, 0)
		} else {
			if m.ActionTimer == 0 {
				m.playSound(audio.SoundActionHit)
			}
			if m.ActionTimer++; m.ActionTimer == 30 {
				m.ActionTimer = 0
			}
			m.FaceAngle.X -= 0x200
			if m.FaceAngle.X < -0x2AAA {
				m.FaceAngle.X = -0x2AAA
			}
			m.GfxAngle.X = -m.FaceAngle.X
			m.GfxAngle.Z = m.FaceAngle.Z
		}
	case AirStepHitLavaWall:
		m.lavaBoostOnWall()
	}

	if m.FaceAngle.X > 0x800 && m.ForwardVel >= 48 {
		m.ParticleFlags |= ParticleDust
	}
	if startPitch <= 0 && m.FaceAngle.X > 0 && m.ForwardVel >= 48 {
		m.playSound(audio.SoundActionFlyingFast)
		m.playSound(audio.SoundMarioYahooWahaYippee + uint32(m.random()%5)<<16)
	}
	m.playSound(audio.SoundMovingFlying)
	return false
}

func (m *Mario) actFlyingTripleJump() bool {
	if m.Input&InputBPressed != 0 {
		return m.SetAction(ActDive, 0)
	}
	if m.Input&InputZPressed != 0 {
		return m.SetAction(ActGroundPound, 0)
	}

	m.playMarioSound(audio.SoundActionTerrainJump, audio.SoundMarioYahoo)
	if m.ActionState == 0 {
		m.setAnim(anim.TripleJumpFly)
		if m.Anim.Frame == 7 {
			m.playSound(audio.SoundActionSpin)
		}
		if m.isAnimPastEnd() {
			m.setAnim(anim.ForwardSpinning)
			m.ActionState = 1
		}
	}
	if m.ActionState == 1 && m.Anim.Frame == 1 {
		m.playSound(audio.SoundActionSpin)
	}

	if m.Vel.Y < 4 {
		if m.ForwardVel < 32 {
			m.SetForwardVel(32)
		}
		m.SetAction(ActFlying, 1)
	}

	m.ActionTimer++
	m.updateAirWithoutTurn()

	switch m.performAirStep(0) {
	case AirStepLanded:
		if !m.checkFallDamage(ActHardBackwardGroundKb) {
			m.SetAction(ActDoubleJumpLand, 0)
		}
	case AirStepHitWall:
		m.bonkReflection(false)
	case AirStepHitLavaWall:
		m.lavaBoostOnWall()
	}
	return false
}

func (m *Mario) actVerticalWind() bool {
	dyaw := m.IntendedYaw - m.FaceAngle.Y
	mag := m.IntendedMag / 32

	m.playSoundIfNoFlag(audio.SoundMarioHereWeGo, FlagMarioSoundPlayed)
	if m.ActionState == 0 {
		m.setAnim(anim.ForwardSpinningFlip)
		if m.Anim.Frame == 1 {
			m.playSound(audio.SoundActionSpin)
		}
		if m.isAnimPastEnd() {
			m.ActionState = 1
		}
	} else {
		m.setAnim(anim.AirborneOnStomach)
	}

	m.updateAirWithoutTurn()

	switch m.performAirStep(0) {
	case AirStepLanded:
		m.SetAction(ActDiveSlide, 0)
	case AirStepHitWall:
		m.SetForwardVel(-16)
	}

	m.GfxAngle.X = int16(6144 * mag * smath.Coss(dyaw))
	m.GfxAngle.Z = int16(-4096 * mag * smath.Sins(dyaw))
	return false
}
