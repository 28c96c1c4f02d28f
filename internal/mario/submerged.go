package mario

import (
	"github.com/Faultbox/libsm64-go/internal/anim"
	"github.com/Faultbox/libsm64-go/internal/audio"
	"github.com/Faultbox/libsm64-go/internal/surface"
	smath "github.com/Faultbox/libsm64-go/pkg/math"
)

const (
	minSwimStrength int16   = 160
	maxSwimStrength int16   = 280
	minSwimSpeed    float32 = 16
	maxSwimSpeed    float32 = 28
)

// waterCurrentSpeeds is indexed by the high byte of a flowing water floor's
// force; the low byte is the current's direction.
var waterCurrentSpeeds = [4]float32{28, 12, 8, 4}

func init() {
	registerActions(map[Action]handler{
		ActWaterIdle:      (*Mario).actWaterIdle,
		ActBreaststroke:   (*Mario).actBreaststroke,
		ActSwimmingEnd:    (*Mario).actSwimmingEnd,
		ActFlutterKick:    (*Mario).actFlutterKick,
		ActWaterActionEnd: (*Mario).actWaterActionEnd,
		ActWaterPunch:     (*Mario).actWaterPunch,
		ActBackwardWaterKb: func(m *Mario) bool {
			return m.commonWaterKnockbackStep(anim.BackwardsWaterKb, ActWaterIdle, m.ActionArg)
		},
		ActForwardWaterKb: func(m *Mario) bool {
			return m.commonWaterKnockbackStep(anim.WaterForwardKb, ActWaterIdle, m.ActionArg)
		},
		ActDrowning:    (*Mario).actDrowning,
		ActWaterDeath:  (*Mario).actWaterDeath,
		ActWaterPlunge: (*Mario).actWaterPlunge,
	})
}

func (m *Mario) setSwimmingAtSurfaceParticles(flag uint32) {
	atSurface := m.Pos.Y >= float32(m.WaterLevel)-130
	if atSurface {
		m.ParticleFlags |= flag
		if !m.wasAtSurface {
			m.playSound(audio.SoundActionWaterExit)
		}
	}
	m.wasAtSurface = atSurface
}

func (m *Mario) swimmingNearSurface() bool {
	if m.Flags&FlagMetalCap != 0 {
		return false
	}
	return float32(m.WaterLevel)-WaterSurfaceOffset-m.Pos.Y < 400
}

func (m *Mario) buoyancy() float32 {
	switch {
	case m.Flags&FlagMetalCap != 0:
		if m.Action.IsInvulnerable() {
			return -2
		}
		return -18
	case m.swimmingNearSurface():
		return 1.25
	case m.Action&ActFlagMoving == 0:
		return -2
	}
	return 0
}

// performWaterFullStep moves to next in one step, clamped between the floor
// and ceiling.
func (m *Mario) performWaterFullStep(next smath.Vec3) int {
	wall := m.resolveWalls(&next, 10, 110)
	floorHeight, floor := m.findFloor(next.X, next.Y, next.Z)
	ceilHeight, _ := m.findCeil(next.X, floorHeight, next.Z)

	if floor == nil {
		return WaterStepCancelled
	}

	if next.Y >= floorHeight {
		if ceilHeight-next.Y >= HitboxHeight {
			m.Pos = next
			m.Floor = floor
			m.FloorHeight = floorHeight
			if wall != nil {
				return WaterStepHitWall
			}
			return WaterStepNone
		}
		if ceilHeight-floorHeight < HitboxHeight {
			return WaterStepCancelled
		}
		m.Pos = smath.Vec3{X: next.X, Y: ceilHeight - HitboxHeight, Z: next.Z}
		m.Floor = floor
		m.FloorHeight = floorHeight
		return WaterStepHitCeiling
	}

	if ceilHeight-floorHeight < HitboxHeight {
		return WaterStepCancelled
	}
	m.Pos = smath.Vec3{X: next.X, Y: floorHeight, Z: next.Z}
	m.Floor = floor
	m.FloorHeight = floorHeight
	return WaterStepHitFloor
}

func (m *Mario) applyWaterCurrent(step *smath.Vec3) {
	if m.Floor == nil || m.Floor.Type != surface.TypeFlowingWater {
		return
	}
	angle := m.Floor.Force << 8
	speed := waterCurrentSpeeds[(m.Floor.Force>>8)&3]
	step.X += speed * smath.Sins(angle)
	step.Z += speed * smath.Coss(angle)
}

func (m *Mario) performWaterStep() int {
	step := m.Vel
	if m.Action.IsSwimming() {
		m.applyWaterCurrent(&step)
	}

	next := m.Pos.Add(step)
	if surfaceY := float32(m.WaterLevel) - WaterSurfaceOffset; next.Y > surfaceY {
		next.Y = surfaceY
		m.Vel.Y = 0
	}

	result := m.performWaterFullStep(next)
	m.GfxPos = m.Pos
	m.GfxAngle = smath.Vec3s{X: -m.FaceAngle.X, Y: m.FaceAngle.Y, Z: m.FaceAngle.Z}
	return result
}

func (m *Mario) updateWaterPitch() {
	if m.GfxAngle.X > 0 {
		s := smath.Sins(m.GfxAngle.X)
		m.GfxPos.Y += 60 * s * s
	}
	if m.GfxAngle.X < 0 {
		m.GfxAngle.X = int16(int32(m.GfxAngle.X) * 6 / 10)
	}
	if m.GfxAngle.X > 0 {
		m.GfxAngle.X = int16(int32(m.GfxAngle.X) * 10 / 8)
	}
}

func (m *Mario) stationarySlowDown() {
	buoyancy := m.buoyancy()

	m.AngleVel.X = 0
	m.AngleVel.Y = 0
	m.ForwardVel = smath.Approach(m.ForwardVel, 0, 1, 1)
	m.Vel.Y = smath.Approach(m.Vel.Y, buoyancy, 2, 1)
	m.FaceAngle.X = int16(smath.ApproachInt(int32(m.FaceAngle.X), 0, 0x200, 0x200))
	m.FaceAngle.Z = int16(smath.ApproachInt(int32(m.FaceAngle.Z), 0, 0x100, 0x100))

	m.Vel.X = m.ForwardVel * smath.Coss(m.FaceAngle.X) * smath.Sins(m.FaceAngle.Y)
	m.Vel.Z = m.ForwardVel * smath.Coss(m.FaceAngle.X) * smath.Coss(m.FaceAngle.Y)
}

func (m *Mario) updateSwimmingSpeed(decelThreshold float32) {
	buoyancy := m.buoyancy()

	if m.Action&ActFlagStationary != 0 {
		m.ForwardVel -= 2
	}
	m.ForwardVel = smath.Clampf(m.ForwardVel, 0, maxSwimSpeed)
	if m.ForwardVel > decelThreshold {
		m.ForwardVel -= 0.5
	}

	m.Vel.X = m.ForwardVel * smath.Coss(m.FaceAngle.X) * smath.Sins(m.FaceAngle.Y)
	m.Vel.Y = m.ForwardVel*smath.Sins(m.FaceAngle.X) + buoyancy
	m.Vel.Z = m.ForwardVel * smath.Coss(m.FaceAngle.X) * smath.Coss(m.FaceAngle.Y)
}

func (m *Mario) updateSwimmingYaw() {
	target := -int16(10 * m.Controller.StickX)
	m.AngleVel.Y = approachVel(m.AngleVel.Y, target, 0x40, 0x10, 0x10, 0x20)
	m.FaceAngle.Y += m.AngleVel.Y
	m.FaceAngle.Z = -m.AngleVel.Y * 8
}

func (m *Mario) updateSwimmingPitch() {
	target := -int16(252 * m.Controller.StickY)

	step := int16(0x200)
	if m.FaceAngle.X < 0 {
		step = 0x100
	}

	if m.FaceAngle.X < target {
		if m.FaceAngle.X += step; m.FaceAngle.X > target {
			m.FaceAngle.X = target
		}
	} else if m.FaceAngle.X > target {
		if m.FaceAngle.X -= step; m.FaceAngle.X < target {
			m.FaceAngle.X = target
		}
	}
}

func (m *Mario) commonIdleStep(clip int16, accel int32) {
	m.updateSwimmingYaw()
	m.updateSwimmingPitch()
	m.updateSwimmingSpeed(minSwimSpeed)
	m.performWaterStep()
	m.updateWaterPitch()

	head := &m.Body.HeadAngle.X
	if m.FaceAngle.X > 0 {
		*head = int16(smath.ApproachInt(int32(*head), int32(m.FaceAngle.X/2), 0x80, 0x200))
	} else {
		*head = int16(smath.ApproachInt(int32(*head), 0, 0x200, 0x200))
	}

	if accel == 0 {
		m.setAnim(clip)
	} else {
		m.setAnimWithAccel(clip, accel)
	}
	m.setSwimmingAtSurfaceParticles(ParticleIdleWaterWave)
}

func (m *Mario) resetFloatBob() {
	m.bobAngle = 0
	m.bobIncrement = 0x800
	m.bobHeight = float32(m.FaceAngle.X)/256 + 20
}

func (m *Mario) floatSurfaceGfx() {
	if m.bobIncrement != 0 && m.Pos.Y > float32(m.WaterLevel)-85 && m.FaceAngle.X >= 0 {
		if m.bobAngle += m.bobIncrement; m.bobAngle >= 0 {
			m.GfxPos.Y += m.bobHeight * smath.Sins(m.bobAngle)
			return
		}
	}
	m.bobIncrement = 0
}

func (m *Mario) commonSwimmingStep(strength int16) {
	m.updateSwimmingYaw()
	m.updateSwimmingPitch()
	m.updateSwimmingSpeed(float32(strength) / 10)

	switch m.performWaterStep() {
	case WaterStepHitFloor:
		floorPitch := -m.floorSlope(-0x8000)
		if m.FaceAngle.X < floorPitch {
			m.FaceAngle.X = floorPitch
		}
	case WaterStepHitCeiling:
		if m.FaceAngle.X > -0x3000 {
			m.FaceAngle.X -= 0x100
		}
	case WaterStepHitWall:
		if m.Controller.StickY == 0 {
			if m.FaceAngle.X > 0 {
				if m.FaceAngle.X += 0x200; m.FaceAngle.X > 0x3F00 {
					m.FaceAngle.X = 0x3F00
				}
			} else {
				if m.FaceAngle.X -= 0x200; m.FaceAngle.X < -0x3F00 {
					m.FaceAngle.X = -0x3F00
				}
			}
		}
	}

	m.updateWaterPitch()
	m.Body.HeadAngle.X = int16(smath.ApproachInt(int32(m.Body.HeadAngle.X), 0, 0x200, 0x200))
	m.floatSurfaceGfx()
	m.setSwimmingAtSurfaceParticles(ParticleWaveTrail)
}

func (m *Mario) checkWaterJump() bool {
	probe := int32(m.Pos.Y + 1.5)
	if m.Input&InputAPressed == 0 {
		return false
	}
	if probe >= int32(m.WaterLevel)-80 && m.FaceAngle.X >= 0 && m.Controller.StickY < -60 {
		m.AngleVel = smath.Vec3s{}
		m.Vel.Y = 62
		return m.SetAction(ActWaterJump, 0)
	}
	return false
}

func (m *Mario) actWaterIdle() bool {
	if m.Input&InputBPressed != 0 {
		return m.SetAction(ActWaterPunch, 0)
	}
	if m.Input&InputAPressed != 0 {
		return m.SetAction(ActBreaststroke, 0)
	}

	accel := int32(0x10000)
	if m.FaceAngle.X < -0x1000 {
		accel = 0x30000
	}
	m.commonIdleStep(anim.WaterIdle, accel)
	return false
}

func (m *Mario) actBreaststroke() bool {
	if m.ActionArg == 0 {
		m.swimStrength = minSwimStrength
	}
	if m.Input&InputBPressed != 0 {
		return m.SetAction(ActWaterPunch, 0)
	}
	if m.ActionTimer++; m.ActionTimer == 14 {
		return m.SetAction(ActFlutterKick, 0)
	}
	if m.checkWaterJump() {
		return true
	}

	if m.ActionTimer < 6 {
		m.ForwardVel += 0.5
	}
	if m.ActionTimer >= 9 {
		m.ForwardVel += 1.5
	}

	if m.ActionTimer >= 2 {
		if m.ActionTimer < 6 && m.Input&InputAPressed != 0 {
			m.ActionState = 1
		}
		if m.ActionTimer == 9 && m.ActionState == 1 {
			m.setAnimFrame(0)
			m.ActionState = 0
			m.ActionTimer = 1
			m.swimStrength = minSwimStrength
		}
	}

	if m.ActionTimer == 1 {
		if m.swimStrength == minSwimStrength {
			m.playSound(audio.SoundActionSwim)
		} else {
			m.playSound(audio.SoundActionSwimFast)
		}
		m.resetFloatBob()
	}

	m.setAnim(anim.SwimPart1)
	m.commonSwimmingStep(m.swimStrength)
	return false
}

func (m *Mario) actSwimmingEnd() bool {
	if m.Input&InputBPressed != 0 {
		return m.SetAction(ActWaterPunch, 0)
	}
	if m.ActionTimer >= 15 {
		return m.SetAction(ActWaterActionEnd, 0)
	}
	if m.checkWaterJump() {
		return true
	}

	if m.Input&InputADown != 0 && m.ActionTimer >= 7 {
		if m.ActionTimer == 7 && m.swimStrength < maxSwimStrength {
			m.swimStrength += 10
		}
		return m.SetAction(ActBreaststroke, 1)
	}
	if m.ActionTimer >= 7 {
		m.swimStrength = minSwimStrength
	}

	m.ActionTimer++
	m.ForwardVel -= 0.25
	m.setAnim(anim.SwimPart2)
	m.commonSwimmingStep(m.swimStrength)
	return false
}

func (m *Mario) actFlutterKick() bool {
	if m.Input&InputBPressed != 0 {
		return m.SetAction(ActWaterPunch, 0)
	}
	if m.Input&InputADown == 0 {
		if m.ActionTimer == 0 && m.swimStrength < maxSwimStrength {
			m.swimStrength += 10
		}
		return m.SetAction(ActSwimmingEnd, 0)
	}

	m.ForwardVel = smath.Approach(m.ForwardVel, 12, 0.1, 0.15)
	m.ActionTimer = 1
	m.swimStrength = minSwimStrength

	if m.ForwardVel < 14 {
		if f := m.Anim.Frame; f == 0 || f == 12 {
			m.playSound(audio.SoundActionSwimKick)
		}
		m.setAnim(anim.Flutterkick)
	}

	m.commonSwimmingStep(m.swimStrength)
	return false
}

func (m *Mario) actWaterActionEnd() bool {
	if m.Input&InputBPressed != 0 {
		return m.SetAction(ActWaterPunch, 0)
	}
	if m.Input&InputAPressed != 0 {
		return m.SetAction(ActBreaststroke, 0)
	}

	m.commonIdleStep(anim.WaterActionEnd, 0)
	if m.isAnimAtEnd() {
		m.SetAction(ActWaterIdle, 0)
	}
	return false
}

// actWaterPunch swings at nothing: there are no objects to grab.
func (m *Mario) actWaterPunch() bool {
	if m.ForwardVel < 7 {
		m.ForwardVel += 1
	}

	m.updateSwimmingYaw()
	m.updateSwimmingPitch()
	m.updateSwimmingSpeed(minSwimSpeed)
	m.performWaterStep()
	m.updateWaterPitch()

	m.Body.HeadAngle.X = int16(smath.ApproachInt(int32(m.Body.HeadAngle.X), 0, 0x200, 0x200))
	m.playSoundIfNoFlag(audio.SoundActionSwim, FlagActionSoundPlayed)

	switch m.ActionState {
	case 0:
		m.setAnim(anim.WaterGrabObjPart1)
		if m.isAnimAtEnd() {
			m.ActionState = 1
		}
	case 1:
		m.setAnim(anim.WaterGrabObjPart2)
		if m.isAnimAtEnd() {
			m.SetAction(ActWaterActionEnd, 0)
		}
	}
	return false
}

func (m *Mario) commonWaterKnockbackStep(clip int16, endAction Action, arg uint32) bool {
	m.stationarySlowDown()
	m.performWaterStep()
	m.setAnim(clip)

	m.Body.HeadAngle.X = 0

	if m.isAnimAtEnd() {
		if arg > 0 {
			m.InvincTimer = 30
		}
		if m.Health >= 0x100 {
			m.SetAction(endAction, 0)
		} else {
			m.SetAction(ActWaterDeath, 0)
		}
	}
	return false
}

func (m *Mario) actDrowning() bool {
	switch m.ActionState {
	case 0:
		m.setAnim(anim.DrowningPart1)
		m.Body.EyeState = anim.EyesHalfClosed
		if m.isAnimAtEnd() {
			m.ActionState = 1
		}
	case 1:
		m.setAnim(anim.DrowningPart2)
		m.Body.EyeState = anim.EyesDead
	}

	m.playSoundIfNoFlag(audio.SoundMarioDrowning, FlagActionSoundPlayed)
	m.stationarySlowDown()
	m.performWaterStep()
	return false
}

func (m *Mario) actWaterDeath() bool {
	m.stationarySlowDown()
	m.performWaterStep()

	m.Body.EyeState = anim.EyesDead
	m.setAnim(anim.WaterDying)
	return false
}

func (m *Mario) actWaterPlunge() bool {
	endVSpeed := float32(-5)
	if m.swimmingNearSurface() {
		endVSpeed = 0
	}
	kick := m.Flags&FlagMetalCap == 0 && (m.PrevAction&ActFlagDiving != 0 || m.Input&InputADown != 0)

	m.ActionTimer++
	m.stationarySlowDown()
	result := m.performWaterStep()

	if m.ActionState == 0 {
		m.playSound(audio.SoundActionWaterEnter)
		if m.PeakHeight-m.Pos.Y > fallDamageHeight {
			m.playSound(audio.SoundMarioHaha)
		}
		m.ParticleFlags |= ParticleWaterSplash
		m.ActionState = 1
	}

	if result == WaterStepHitFloor || m.Vel.Y >= endVSpeed || m.ActionTimer > 20 {
		if kick {
			m.SetAction(ActFlutterKick, 0)
		} else {
			m.SetAction(ActWaterActionEnd, 0)
		}
		m.bobIncrement = 0
	}

	if kick {
		m.setAnim(anim.Flutterkick)
	} else {
		m.setAnim(anim.WaterActionEnd)
	}
	m.ParticleFlags |= ParticlePlungeBubble
	return false
}
