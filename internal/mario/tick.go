package mario

import (
	"github.com/Faultbox/libsm64-go/internal/anim"
	"github.com/Faultbox/libsm64-go/internal/audio"
	"github.com/Faultbox/libsm64-go/internal/logger"
	"github.com/Faultbox/libsm64-go/internal/surface"
	smath "github.com/Faultbox/libsm64-go/pkg/math"
	"go.uber.org/zap"
)

// handler runs one action for one iteration of the action loop. Returning
// true means the action changed and the loop runs again.
type handler func(*Mario) bool

var handlers = map[Action]handler{}

func registerActions(set map[Action]handler) {
	for action, h := range set {
		handlers[action] = h
	}
}

// Implemented reports whether action has a registered handler.
func Implemented(action Action) bool {
	_, ok := handlers[action]
	return ok
}

// maxActionIterations bounds the action loop. Real chains settle in a
// handful of iterations.
const maxActionIterations = 32

var capFlickerFrames uint64 = 0x4444449249255555

var squishScaleOverTime = [16]uint8{
	0x46, 0x32, 0x32, 0x3C, 0x46, 0x50, 0x50, 0x3C,
	0x28, 0x14, 0x14, 0x1E, 0x32, 0x3C, 0x3C, 0x28,
}

// Tick advances the character by one simulation step.
func (m *Mario) Tick(in Inputs) {
	m.updateController(in)
	m.applyPlatformDisplacement()

	if m.executeAction() {
		m.updatePlatform()
	}

	m.Anim.Advance(m.counter)
	m.counter++
}

func (m *Mario) updateController(in Inputs) {
	var down uint16
	if in.ButtonA {
		down |= ButtonA
	}
	if in.ButtonB {
		down |= ButtonB
	}
	if in.ButtonZ {
		down |= ButtonZ
	}
	c := &m.Controller
	c.ButtonPressed = down &^ c.ButtonDown
	c.ButtonDown = down

	m.CameraYaw = smath.Atan2s(in.CamLookZ, in.CamLookX)

	c.StickX = -64 * in.StickX
	c.StickY = 64 * in.StickY
	c.StickMag = smath.Sqrtf(c.StickX*c.StickX + c.StickY*c.StickY)
	if c.StickMag > 64 {
		c.StickX *= 64 / c.StickMag
		c.StickY *= 64 / c.StickMag
		c.StickMag = 64
	}
}

// executeAction runs one frame of the character. It returns false when the
// character has no floor and nothing was simulated.
func (m *Mario) executeAction() bool {
	m.resetBodyState()
	m.updateInputs()
	m.handleSpecialFloors()
	if m.Floor == nil {
		return false
	}

	for i := 0; ; i++ {
		if i == maxActionIterations {
			logger.Warn("action loop did not settle", zap.Stringer("action", m.Action))
			break
		}
		if !m.runAction() {
			break
		}
	}

	m.GfxPos.Y -= m.QuicksandDepth
	m.squishModel()
	m.spawnSubmergedBubbles()
	m.updateHealth()
	m.updateHitboxAndCapModel()

	switch m.Floor.Type {
	case surface.TypeHorizontalWind, surface.TypeVerticalWind:
		m.playSound(audio.SoundEnvWind2)
	}

	if m.InvincTimer > 0 {
		m.InvincTimer--
	}
	return true
}

// runAction dispatches the current action through its group and returns
// true when the loop should run again.
func (m *Mario) runAction() bool {
	h, ok := handlers[m.Action]
	if !ok {
		fallback := fallbackAction(m.Action)
		logger.Warn("unimplemented action, falling back",
			zap.Stringer("action", m.Action),
			zap.Stringer("fallback", fallback))
		return m.SetAction(fallback, 0)
	}

	switch m.Action.Group() {
	case GroupStationary:
		if m.checkCommonStationaryCancels() || m.updateQuicksand(0.5) {
			return true
		}
		cancel := h(m)
		if !cancel && m.Input&InputInWater != 0 {
			m.ParticleFlags |= ParticleIdleWaterWave
		}
		return cancel

	case GroupMoving:
		if m.checkCommonMovingCancels() || m.updateQuicksand(0.25) {
			return true
		}
		cancel := h(m)
		if !cancel && m.Input&InputInWater != 0 {
			m.ParticleFlags |= ParticleWaveTrail
			m.ParticleFlags &^= ParticleDust
		}
		return cancel

	case GroupAirborne:
		if m.checkCommonAirborneCancels() {
			return true
		}
		m.playFarFallSound()
		return h(m)

	case GroupSubmerged:
		if m.checkCommonSubmergedCancels() {
			return true
		}
		m.QuicksandDepth = 0
		m.Body.HeadAngle.Y = 0
		m.Body.HeadAngle.Z = 0
		return h(m)

	case GroupCutscene:
		cancel := h(m)
		if !cancel && m.Input&InputInWater != 0 {
			m.ParticleFlags |= ParticleIdleWaterWave
		}
		return cancel

	case GroupAutomatic:
		if m.Pos.Y < float32(m.WaterLevel)-100 {
			return m.setWaterPlungeAction()
		}
		m.QuicksandDepth = 0
		return h(m)

	default:
		if m.checkCommonObjectCancels() || m.updateQuicksand(0.5) {
			return true
		}
		return h(m)
	}
}

// fallbackAction picks a safe resting action in the same medium as action.
func fallbackAction(action Action) Action {
	switch {
	case action.Group() == GroupSubmerged || action.IsSwimming():
		return ActWaterIdle
	case action.IsAir():
		return ActFreefall
	default:
		return ActIdle
	}
}

func (m *Mario) updateInputs() {
	m.ParticleFlags = 0
	m.Input = 0
	m.Flags &= 0xFFFFFF

	m.updateButtonInputs()
	m.updateJoystickInputs()
	m.updateGeometryInputs()

	if m.Input&(InputNonzeroAnalog|InputAPressed) == 0 {
		m.Input |= InputNoMovement
	}
	if m.stomped {
		m.Input |= InputStomped
		m.stomped = false
	} else {
		m.interactDamage = 0
	}
	if m.WallKickTimer > 0 {
		m.WallKickTimer--
	}
	if m.DoubleJumpTimer > 0 {
		m.DoubleJumpTimer--
	}
}

func (m *Mario) updateButtonInputs() {
	c := &m.Controller
	if c.ButtonPressed&ButtonA != 0 {
		m.Input |= InputAPressed
	}
	if c.ButtonDown&ButtonA != 0 {
		m.Input |= InputADown
	}
	if m.SquishTimer == 0 {
		if c.ButtonPressed&ButtonB != 0 {
			m.Input |= InputBPressed
		}
		if c.ButtonDown&ButtonZ != 0 {
			m.Input |= InputZDown
		}
		if c.ButtonPressed&ButtonZ != 0 {
			m.Input |= InputZPressed
		}
	}

	if m.Input&InputAPressed != 0 {
		m.FramesSinceA = 0
	} else if m.FramesSinceA < 0xFF {
		m.FramesSinceA++
	}
	if m.Input&InputBPressed != 0 {
		m.FramesSinceB = 0
	} else if m.FramesSinceB < 0xFF {
		m.FramesSinceB++
	}
}

func (m *Mario) updateJoystickInputs() {
	c := &m.Controller
	mag := (c.StickMag / 64) * (c.StickMag / 64) * 64
	if m.SquishTimer == 0 {
		m.IntendedMag = mag / 2
	} else {
		m.IntendedMag = mag / 8
	}

	if m.IntendedMag > 0 {
		m.IntendedYaw = smath.Atan2s(-c.StickY, c.StickX) + m.CameraYaw
		m.Input |= InputNonzeroAnalog
	} else {
		m.IntendedYaw = m.FaceAngle.Y
	}
}

func (m *Mario) updateGeometryInputs() {
	m.pushOutOfWalls(&m.Pos, 60, 50)
	m.pushOutOfWalls(&m.Pos, 30, 24)

	m.FloorHeight, m.Floor = m.findFloor(m.Pos.X, m.Pos.Y, m.Pos.Z)
	if m.Floor == nil {
		m.Pos = m.GfxPos
		m.FloorHeight, m.Floor = m.findFloor(m.Pos.X, m.Pos.Y, m.Pos.Z)
	}
	m.CeilHeight, m.Ceil = m.findCeil(m.Pos.X, m.FloorHeight, m.Pos.Z)

	if m.Floor == nil {
		return
	}
	m.FloorAngle = smath.Atan2s(m.Floor.Normal.Z, m.Floor.Normal.X)
	m.TerrainSoundAddend = m.terrainSoundAddend()

	water := float32(m.WaterLevel)
	if m.Pos.Y > water-40 && m.floorIsSlippery() {
		m.Input |= InputAboveSlide
	}
	if m.Floor.Dynamic() || (m.Ceil != nil && m.Ceil.Dynamic()) {
		if d := m.CeilHeight - m.FloorHeight; d >= 0 && d <= 150 {
			m.Input |= InputSquished
		}
	}
	if m.Pos.Y > m.FloorHeight+100 {
		m.Input |= InputOffFloor
	}
	if m.Pos.Y < water-10 {
		m.Input |= InputInWater
	}
}

func (m *Mario) handleSpecialFloors() {
	if m.Action.Group() == GroupCutscene || m.Floor == nil {
		return
	}

	if m.Floor.Type == surface.TypeDeathPlane && m.Pos.Y < m.FloorHeight+2048 {
		m.playSoundIfNoFlag(audio.SoundMarioWaaaooow, FlagFallingFar)
	}

	if !m.Action.IsAir() && !m.Action.IsSwimming() && m.Floor.Type == surface.TypeBurning {
		m.checkLavaBoost()
	}
}

func (m *Mario) checkLavaBoost() {
	if m.Action&ActFlagRidingShell != 0 || m.Pos.Y >= m.FloorHeight+10 {
		return
	}
	if m.Flags&FlagMetalCap == 0 {
		if m.Flags&FlagCapOnHead != 0 {
			m.HurtCounter += 12
		} else {
			m.HurtCounter += 18
		}
	}
	m.dropAndSetAction(ActLavaBoost, 0)
}

func (m *Mario) checkCommonStationaryCancels() bool {
	if m.Pos.Y < float32(m.WaterLevel)-100 {
		return m.setWaterPlungeAction()
	}
	if m.Input&InputSquished != 0 {
		return m.dropAndSetAction(ActSquished, 0)
	}
	if m.Health < 0x100 {
		return m.dropAndSetAction(ActStandingDeath, 0)
	}
	return false
}

func (m *Mario) checkCommonMovingCancels() bool {
	if m.Pos.Y < float32(m.WaterLevel)-100 {
		return m.setWaterPlungeAction()
	}
	if !m.Action.IsInvulnerable() && m.Input&InputStomped != 0 {
		return m.dropAndSetAction(ActShockwaveBounce, 0)
	}
	if m.Input&InputSquished != 0 {
		return m.dropAndSetAction(ActSquished, 0)
	}
	if !m.Action.IsInvulnerable() && m.Health < 0x100 {
		return m.dropAndSetAction(ActStandingDeath, 0)
	}
	return false
}

func (m *Mario) checkCommonAirborneCancels() bool {
	if m.Pos.Y < float32(m.WaterLevel)-100 {
		return m.setWaterPlungeAction()
	}
	if m.Input&InputSquished != 0 {
		return m.dropAndSetAction(ActSquished, 0)
	}
	if m.Floor.Type == surface.TypeVerticalWind && m.Action&ActFlagAllowVerticalWindAction != 0 {
		return m.dropAndSetAction(ActVerticalWind, 0)
	}
	m.QuicksandDepth = 0
	return false
}

func (m *Mario) checkCommonSubmergedCancels() bool {
	surfaceY := float32(m.WaterLevel) - WaterSurfaceOffset
	if m.Pos.Y > surfaceY {
		if surfaceY > m.FloorHeight {
			m.Pos.Y = surfaceY
		} else {
			return m.transitionSubmergedToWalking()
		}
	}
	if m.Health < 0x100 && m.Action&(ActFlagIntangible|ActFlagInvulnerable) == 0 {
		m.SetAction(ActDrowning, 0)
	}
	return false
}

func (m *Mario) checkCommonObjectCancels() bool {
	if m.Pos.Y < float32(m.WaterLevel)-100 {
		return m.setWaterPlungeAction()
	}
	if m.Input&InputSquished != 0 {
		return m.dropAndSetAction(ActSquished, 0)
	}
	if m.Health < 0x100 {
		return m.dropAndSetAction(ActStandingDeath, 0)
	}
	return false
}

func (m *Mario) playFarFallSound() {
	a := m.Action
	if a.IsInvulnerable() || a == ActTwirling || a == ActFlying || m.Flags&FlagFallingFar != 0 {
		return
	}
	if m.PeakHeight-m.Pos.Y > 1150 {
		m.playSound(audio.SoundMarioWaaaooow)
		m.Flags |= FlagFallingFar
	}
}

func (m *Mario) squishModel() {
	switch {
	case m.SquishTimer == 0xFF:
	case m.SquishTimer == 0:
		m.GfxScale = smath.Vec3{X: 1, Y: 1, Z: 1}
	case m.SquishTimer <= 16:
		m.SquishTimer--
		s := float32(squishScaleOverTime[15-m.SquishTimer])
		m.GfxScale.Y = 1 - s*0.6/100
		m.GfxScale.X = s*0.4/100 + 1
		m.GfxScale.Z = m.GfxScale.X
	default:
		m.SquishTimer--
		m.GfxScale = smath.Vec3{X: 1.4, Y: 0.4, Z: 1.4}
	}
}

func (m *Mario) spawnSubmergedBubbles() {
	if m.Action.Group() != GroupSubmerged || m.Action&ActFlagMetalWater != 0 {
		return
	}
	if m.Action.IsIntangible() {
		return
	}
	if m.Pos.Y < float32(m.WaterLevel)-160 || m.FaceAngle.X < -0x800 {
		m.ParticleFlags |= ParticleBubble
	}
}

func (m *Mario) updateHealth() {
	if m.Health < 0x100 {
		return
	}

	if m.HealCounter == 0 && m.HurtCounter == 0 &&
		m.Action.IsSwimming() && !m.Action.IsIntangible() {
		snow := m.terrainType()&surface.TerrainMask == surface.TerrainSnow
		switch {
		case m.Pos.Y >= float32(m.WaterLevel)-140 && !snow:
			m.Health += 0x1A
		case snow:
			m.Health -= 3
		default:
			m.Health--
		}
	}

	if m.HealCounter > 0 {
		m.Health += HealthStep
		m.HealCounter--
	}
	if m.HurtCounter > 0 {
		m.Health -= HealthStep
		m.HurtCounter--
	}

	if m.Health > HealthFull {
		m.Health = HealthFull
	}
	if m.Health < 0x100 {
		m.Health = HealthDead
	}

	if m.Action.Group() == GroupSubmerged && m.Health < 0x300 {
		m.playSound(audio.SoundMovingAlmostDrowning)
	}
}

// updateCapFlags runs the cap timer and returns the flags to draw with,
// which flicker while a special cap is running out.
func (m *Mario) updateCapFlags() uint32 {
	flags := m.Flags
	if m.CapTimer == 0 {
		return flags
	}

	m.CapTimer--
	if m.CapTimer == 0 {
		m.stopCapMusic()
		m.Flags &^= FlagSpecialCaps
		if m.Flags&FlagCaps == 0 {
			m.Flags &^= FlagCapOnHead
		}
	}
	if m.CapTimer == 60 {
		m.fadeoutCapMusic()
	}

	if m.CapTimer < 64 && (uint64(1)<<m.CapTimer)&capFlickerFrames != 0 {
		flags &^= FlagSpecialCaps
		if flags&FlagCaps == 0 {
			flags &^= FlagCapOnHead
		}
	}
	return flags
}

func (m *Mario) updateHitboxAndCapModel() {
	flags := m.updateCapFlags()
	b := &m.Body

	if flags&FlagVanishCap != 0 {
		b.ModelState = ModelStateNoiseAlpha
	}
	if flags&(FlagMetalCap|FlagMetalShock) != 0 {
		b.ModelState |= ModelStateMetal
	}

	m.Invisible = m.Action == ActDisappeared || m.InvincTimer >= 3 && m.counter&1 != 0

	if flags&FlagCapInHand != 0 {
		if flags&FlagWingCap != 0 {
			b.HandState = anim.HandHoldingWingCap
		} else {
			b.HandState = anim.HandHoldingCap
		}
	}
	if flags&FlagCapOnHead != 0 {
		if flags&FlagWingCap != 0 {
			b.CapState = WingCapOn
		} else {
			b.CapState = CapOn
		}
	}

	if m.Action&ActFlagShortHitbox != 0 {
		m.Hitbox.Height = ShortHitboxHeight
	} else {
		m.Hitbox.Height = HitboxHeight
	}
}

// ModelState converts the body state into what the mesh evaluator draws.
func (m *Mario) ModelState() anim.ModelState {
	b := m.Body
	return anim.ModelState{
		CapOnHead:  b.CapState == CapOn || b.CapState == WingCapOn,
		WingCap:    b.CapState == WingCapOn || b.CapState == WingCapOff,
		HandState:  b.HandState,
		EyeState:   b.EyeState,
		Metal:      b.ModelState&ModelStateMetal != 0,
		Vanish:     b.ModelState&ModelStateNoiseAlpha == ModelStateNoiseAlpha,
		Invisible:  m.Invisible,
		HeadAngle:  [3]int16{b.HeadAngle.X, b.HeadAngle.Y, b.HeadAngle.Z},
		TorsoAngle: [3]int16{b.TorsoAngle.X, b.TorsoAngle.Y, b.TorsoAngle.Z},
		Scale:      m.GfxScale,
	}
}
