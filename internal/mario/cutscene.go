package mario

import (
	"github.com/Faultbox/libsm64-go/internal/anim"
	"github.com/Faultbox/libsm64-go/internal/audio"
	smath "github.com/Faultbox/libsm64-go/pkg/math"
)

func init() {
	registerActions(map[Action]handler{
		ActSpawnSpinAirborne:   (*Mario).actSpawnSpinAirborne,
		ActSpawnSpinLanding:    (*Mario).actSpawnSpinLanding,
		ActSpawnNoSpinAirborne: (*Mario).actSpawnNoSpinAirborne,
		ActSpawnNoSpinLanding:  (*Mario).actSpawnNoSpinLanding,
		ActPuttingOnCap:        (*Mario).actPuttingOnCap,
		ActStandingDeath:       (*Mario).actStandingDeath,
		ActQuicksandDeath:      (*Mario).actQuicksandDeath,
		ActElectrocution: func(m *Mario) bool {
			m.playSoundIfNoFlag(audio.SoundMarioDying, FlagActionSoundPlayed)
			m.commonDeath(anim.Electrocution)
			return false
		},
		ActSuffocation: func(m *Mario) bool {
			m.playSoundIfNoFlag(audio.SoundMarioDying, FlagActionSoundPlayed)
			m.commonDeath(anim.Suffocating)
			return false
		},
		ActDeathOnBack: func(m *Mario) bool {
			m.playSoundIfNoFlag(audio.SoundMarioDying, FlagActionSoundPlayed)
			if m.commonDeath(anim.DyingOnBack) == 40 {
				m.playHeavyLandingSound(audio.SoundActionTerrainBodyHitGround)
			}
			return false
		},
		ActDeathOnStomach: func(m *Mario) bool {
			m.playSoundIfNoFlag(audio.SoundMarioDying, FlagActionSoundPlayed)
			if m.commonDeath(anim.DyingOnStomach) == 37 {
				m.playHeavyLandingSound(audio.SoundActionTerrainBodyHitGround)
			}
			return false
		},
		ActDisappeared: (*Mario).actDisappeared,
		ActSquished:    (*Mario).actSquished,
	})
}

// commonDeath holds the character on the floor with dead eyes while a death
// clip plays, and returns the clip frame.
func (m *Mario) commonDeath(clip int16) int16 {
	frame := m.setAnim(clip)
	m.Body.EyeState = anim.EyesDead
	m.stopAndSetHeightToFloor()
	return frame
}

func (m *Mario) actSpawnSpinAirborne() bool {
	if m.Pos.Y < float32(m.WaterLevel)-100 {
		return m.setWaterPlungeAction()
	}

	m.SetForwardVel(m.ForwardVel)
	if m.performAirStep(0) == AirStepLanded {
		m.playLandingSound(audio.SoundActionTerrainLanding)
		m.SetAction(ActSpawnSpinLanding, 0)
	}

	if m.ActionState == 0 && m.Pos.Y-m.FloorHeight > 300 {
		if m.setAnim(anim.ForwardSpinning) == 0 {
			m.playSound(audio.SoundActionSpin)
		}
	} else {
		m.ActionState = 1
		m.setAnim(anim.GeneralFall)
	}
	return false
}

func (m *Mario) actSpawnSpinLanding() bool {
	m.stopAndSetHeightToFloor()
	m.setAnim(anim.GeneralLand)
	if m.isAnimAtEnd() {
		m.SetAction(ActIdle, 0)
	}
	return false
}

func (m *Mario) actSpawnNoSpinAirborne() bool {
	if m.Pos.Y < float32(m.WaterLevel)-100 {
		return m.setWaterPlungeAction()
	}

	m.SetForwardVel(0)
	if m.performAirStep(0) == AirStepLanded {
		m.playLandingSound(audio.SoundActionTerrainLanding)
		m.SetAction(ActSpawnNoSpinLanding, 0)
	}
	m.setAnim(anim.GeneralFall)
	return false
}

func (m *Mario) actSpawnNoSpinLanding() bool {
	m.playLandingSoundOnce(audio.SoundActionTerrainLanding)
	m.setAnim(anim.GeneralLand)
	m.stopAndSetHeightToFloor()
	if m.isAnimAtEnd() {
		m.SetAction(ActIdle, 0)
	}
	return false
}

func (m *Mario) actPuttingOnCap() bool {
	if m.setAnim(anim.PutCapOn) == 28 {
		m.Flags &^= FlagCapInHand
		m.Flags |= FlagCapOnHead
		m.playSound(audio.SoundActionPutCapOn)
	}
	if m.isAnimAtEnd() {
		m.SetAction(ActIdle, 0)
	}
	m.stationaryGroundStep()
	return false
}

func (m *Mario) actStandingDeath() bool {
	if m.Input&InputInPoisonGas != 0 {
		return m.SetAction(ActSuffocation, 0)
	}

	m.playSoundIfNoFlag(audio.SoundMarioDying, FlagActionSoundPlayed)
	m.commonDeath(anim.DyingFallOver)
	if m.Anim.Frame == 77 {
		m.playLandingSound(audio.SoundActionTerrainBodyHitGround)
	}
	return false
}

func (m *Mario) actQuicksandDeath() bool {
	if m.ActionState == 0 {
		m.setAnim(anim.DyingInQuicksand)
		m.setAnimFrame(60)
		m.ActionState = 1
	}
	if m.ActionState == 1 {
		if m.QuicksandDepth >= 100 {
			m.playSoundIfNoFlag(audio.SoundMarioWaaaooow, FlagActionSoundPlayed)
		}
		if m.QuicksandDepth += 5; m.QuicksandDepth >= 180 {
			m.ActionState = 2
		}
	}
	m.stationaryGroundStep()
	m.playSound(audio.SoundMovingQuicksandDeath)
	return false
}

// actDisappeared hides the character. A non-zero arg counts ticks down in its
// low 16 bits; the character stays hidden once it reaches zero.
func (m *Mario) actDisappeared() bool {
	m.setAnim(anim.APose)
	m.stopAndSetHeightToFloor()
	if m.ActionArg&0xFFFF != 0 {
		m.ActionArg--
	}
	return false
}

func (m *Mario) actSquished() bool {
	space := m.CeilHeight - m.FloorHeight
	if space < 0 {
		space = 0
	}

	switch m.ActionState {
	case 0:
		if space > 160 {
			m.SquishTimer = 0
			return m.SetAction(ActIdle, 0)
		}

		m.SquishTimer = 0xFF
		if space >= 10.1 {
			squish := space / 160
			m.GfxScale = smath.Vec3{X: 2 - squish, Y: squish, Z: 2 - squish}
		} else {
			if m.Flags&FlagMetalCap == 0 && m.InvincTimer == 0 {
				m.HurtCounter += m.capHurt(12, 18)
				m.playSoundIfNoFlag(audio.SoundMarioAttacked, FlagMarioSoundPlayed)
			}
			m.GfxScale = smath.Vec3{X: 1.8, Y: 0.05, Z: 1.8}
			m.ActionState = 1
		}
	case 1:
		if space >= 30 {
			m.ActionState = 2
		}
	case 2:
		m.ActionTimer++
		if m.ActionTimer >= 15 {
			if m.Health < 0x100 {
				m.ActionState = 3
			} else if m.HurtCounter == 0 {
				m.SquishTimer = 30
				return m.SetAction(ActIdle, 0)
			}
		}
	}

	// A steep floor or ceiling pushes the character out from under it.
	var pushYaw int16
	pushed := false
	if m.Floor != nil && m.Floor.Normal.Y < 0.5 {
		pushYaw = smath.Atan2s(m.Floor.Normal.Z, m.Floor.Normal.X)
		pushed = true
	}
	if m.Ceil != nil && m.Ceil.Normal.Y > -0.5 {
		pushYaw = smath.Atan2s(m.Ceil.Normal.Z, m.Ceil.Normal.X)
		pushed = true
	}
	if pushed {
		m.Vel = smath.Vec3{X: smath.Sins(pushYaw) * 10, Z: smath.Coss(pushYaw) * 10}
		if m.performGroundStep() == GroundStepLeftGround {
			m.SquishTimer = 0
			return m.SetAction(ActIdle, 0)
		}
	}

	// Held under a ceiling for ten seconds.
	if m.ActionArg++; m.ActionArg > 301 {
		m.Health = HealthDead
		m.HurtCounter = 0
		m.ActionState = 3
	}

	m.stopAndSetHeightToFloor()
	m.setAnim(anim.APose)
	return false
}
