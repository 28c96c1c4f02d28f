package mario

import (
	"github.com/Faultbox/libsm64-go/internal/audio"
	smath "github.com/Faultbox/libsm64-go/pkg/math"
)

// Damage subtypes accepted by TakeDamage.
const (
	DamageDelayInvincibility uint32 = 1 << 1
	DamageBigKnockback       uint32 = 1 << 3
)

// Interaction kinds resolved by an attack.
const (
	interactGroundPoundOrTwirl uint32 = 1 << iota
	interactPunch
	interactKick
	interactTrip
	interactSlideKick
	interactFastAttack
	interactHitFromAbove
	interactHitFromBelow

	interactAttackNotFromBelow = interactGroundPoundOrTwirl | interactPunch | interactKick |
		interactTrip | interactSlideKick | interactFastAttack | interactHitFromAbove
)

var forwardKnockbackActions = [3][3]Action{
	{ActSoftForwardGroundKb, ActForwardGroundKb, ActHardForwardGroundKb},
	{ActForwardAirKb, ActForwardAirKb, ActHardForwardAirKb},
	{ActForwardWaterKb, ActForwardWaterKb, ActForwardWaterKb},
}

var backwardKnockbackActions = [3][3]Action{
	{ActSoftBackwardGroundKb, ActBackwardGroundKb, ActHardBackwardGroundKb},
	{ActBackwardAirKb, ActBackwardAirKb, ActHardBackwardAirKb},
	{ActBackwardWaterKb, ActBackwardWaterKb, ActBackwardWaterKb},
}

func (m *Mario) invulnerable() bool {
	return m.Action.IsInvulnerable() || m.InvincTimer != 0
}

// TakeDamage hurts the character by damage units as if struck by something
// at source and knocks it back away from that point. It reports whether the
// hit landed.
func (m *Mario) TakeDamage(damage, subtype uint32, source smath.Vec3) bool {
	if m.invulnerable() || m.Flags&FlagVanishCap != 0 || subtype&DamageDelayInvincibility != 0 {
		return false
	}

	hurt := damage
	if m.Flags&FlagCapOnHead == 0 {
		hurt += (hurt + 1) / 2
	}
	if m.Flags&FlagMetalCap != 0 {
		hurt = 0
	}
	m.HurtCounter += uint8(4 * hurt)

	if subtype&DamageBigKnockback != 0 {
		m.ForwardVel = 40
	}
	if damage > 0 {
		m.playSound(audio.SoundMarioAttacked)
	}
	return m.dropAndSetAction(m.knockbackAction(damage, source), hurt)
}

func (m *Mario) knockbackAction(damage uint32, source smath.Vec3) Action {
	medium := 0
	switch {
	case m.Action&(ActFlagSwimming|ActFlagMetalWater) != 0:
		medium = 2
	case m.Action&(ActFlagAir|ActFlagOnPole|ActFlagHanging) != 0:
		medium = 1
	}

	strength := 0
	switch remaining := int32(m.Health) - 0x40*int32(m.HurtCounter); {
	case remaining < 0x100, damage >= 4:
		strength = 2
	case damage >= 2:
		strength = 1
	}

	toSource := smath.Atan2s(source.Z-m.Pos.Z, source.X-m.Pos.X)
	dYaw := toSource - m.FaceAngle.Y
	m.FaceAngle.Y = toSource

	if medium == 2 {
		if m.ForwardVel < 28 {
			m.SetForwardVel(28)
		}
		if m.Pos.Y >= source.Y {
			if m.Vel.Y < 20 {
				m.Vel.Y = 20
			}
		} else if m.Vel.Y > 0 {
			m.Vel.Y = 0
		}
	} else if m.ForwardVel < 16 {
		m.SetForwardVel(16)
	}

	if dYaw >= -0x4000 && dYaw <= 0x4000 {
		m.ForwardVel = -m.ForwardVel
		return backwardKnockbackActions[medium][strength]
	}
	m.FaceAngle.Y += -0x8000
	return forwardKnockbackActions[medium][strength]
}

// Heal queues n health steps.
func (m *Mario) Heal(n uint8) { m.HealCounter += n }

// SetHealth overwrites health directly.
func (m *Mario) SetHealth(h int16) { m.Health = h }

// Kill drops health to the dead value; the death action follows on the
// next tick.
func (m *Mario) Kill() { m.Health = HealthDead }

// Stomp marks the character as stomped for the next tick. A non-zero damage
// hurts it if it is hanging from a ledge.
func (m *Mario) Stomp(damage uint32) {
	m.stomped = true
	m.interactDamage = damage
}

// InteractCap gives the character a cap. A zero duration uses the cap's
// default; a running timer is only ever extended.
func (m *Mario) InteractCap(flag uint32, duration uint16, playMusic bool) {
	if flag == 0 || m.Action == ActGettingBlown || m.Action == ActPuttingOnCap {
		return
	}

	m.Flags &^= FlagCapOnHead | FlagCapInHand
	m.Flags |= flag

	var music uint16
	switch flag {
	case FlagVanishCap:
		if duration == 0 {
			duration = VanishCapTime
		}
		music = audio.SequenceArgs(4, audio.SeqEventPowerup)
	case FlagMetalCap:
		if duration == 0 {
			duration = MetalCapTime
		}
		music = audio.SequenceArgs(4, audio.SeqEventMetalCap)
	case FlagWingCap:
		if duration == 0 {
			duration = WingCapTime
		}
		music = audio.SequenceArgs(4, audio.SeqEventPowerup)
	}
	if duration > m.CapTimer {
		m.CapTimer = duration
	}

	if m.Action.IsIdle() || m.Action == ActWalking {
		m.Flags |= FlagCapInHand
		m.SetAction(ActPuttingOnCap, 0)
	} else {
		m.Flags |= FlagCapOnHead
	}

	m.playSound(audio.SoundMenuStarSound)
	m.playSound(audio.SoundMarioHereWeGo)
	if playMusic && music != audio.NoMusic {
		m.playCapMusic(music)
	}
}

// AttackTargetRadius is the radius of the cylinder an attack target is
// assumed to occupy.
const AttackTargetRadius float32 = 50

// touches reports whether the character's hitbox overlaps a target cylinder
// standing at target with the given height.
func (m *Mario) touches(target smath.Vec3, hitboxHeight float32) bool {
	dx, dz := target.X-m.Pos.X, target.Z-m.Pos.Z
	reach := m.Hitbox.Radius + AttackTargetRadius
	if dx*dx+dz*dz > reach*reach {
		return false
	}
	if hitboxHeight < 0 {
		hitboxHeight = 0
	}
	return m.Pos.Y <= target.Y+hitboxHeight && m.Pos.Y+m.Hitbox.Height >= target.Y
}

// attackInteraction works out how the character's current move meets
// something at target. Zero means no contact.
func (m *Mario) attackInteraction(target smath.Vec3, hitboxHeight float32) uint32 {
	if !m.touches(target, hitboxHeight) {
		return 0
	}
	if m.Flags&FlagMetalCap != 0 {
		return interactFastAttack
	}

	var kind uint32
	action := m.Action
	if action&ActFlagAttacking != 0 {
		switch action {
		case ActPunching, ActMovePunching, ActJumpKick:
			dYaw := smath.Atan2s(target.Z-m.Pos.Z, target.X-m.Pos.X) - m.FaceAngle.Y
			if m.Flags&FlagPunching != 0 && dYaw >= -0x2AAA && dYaw <= 0x2AAA {
				kind = interactPunch
			}
			if m.Flags&FlagKicking != 0 && dYaw >= -0x2AAA && dYaw <= 0x2AAA {
				kind = interactKick
			}
			if m.Flags&FlagTripping != 0 && dYaw >= -0x4000 && dYaw <= 0x4000 {
				kind = interactTrip
			}
		case ActGroundPound, ActTwirling:
			if m.Vel.Y < 0 {
				kind = interactGroundPoundOrTwirl
			}
		case ActGroundPoundLand, ActTwirlLand:
			if m.Vel.Y < 0 && m.ActionState == 0 {
				kind = interactGroundPoundOrTwirl
			}
		case ActSlideKick, ActSlideKickSlide:
			kind = interactSlideKick
		default:
			if action&ActFlagRidingShell != 0 || m.ForwardVel <= -26 || m.ForwardVel >= 26 {
				kind = interactFastAttack
			}
		}
	}

	if kind == 0 && action.IsAir() {
		if m.Vel.Y < 0 {
			if m.Pos.Y > target.Y {
				kind = interactHitFromAbove
			}
		} else if m.Pos.Y < target.Y {
			kind = interactHitFromBelow
		}
	}
	return kind
}

// AttackQuery reports whether the character's current move would land an
// attack on something at target whose hitbox is hitboxHeight tall. Targets
// outside the character's hitbox are missed. It does not change any state.
func (m *Mario) AttackQuery(target smath.Vec3, hitboxHeight float32) bool {
	return m.attackInteraction(target, hitboxHeight)&interactAttackNotFromBelow != 0
}

// BounceFromAttack applies the recoil of a successful attack on something at
// target with the given hitbox height: a push back after punches and kicks,
// or a bounce off its top after landing on it.
func (m *Mario) BounceFromAttack(target smath.Vec3, hitboxHeight float32) {
	kind := m.attackInteraction(target, hitboxHeight)
	if kind&interactAttackNotFromBelow == 0 {
		return
	}

	if kind&(interactPunch|interactKick|interactTrip) != 0 {
		if m.Action == ActPunching {
			m.Action = ActMovePunching
		}
		if m.Action.IsAir() {
			m.SetForwardVel(-16)
		} else {
			m.SetForwardVel(-48)
		}
		m.ParticleFlags |= ParticleTriangle
	}
	if kind&(interactPunch|interactKick|interactTrip|interactFastAttack) != 0 {
		m.playSound(audio.SoundActionHit2)
	}

	if kind&interactHitFromAbove != 0 {
		m.Pos.Y = target.Y + hitboxHeight
		m.Vel.Y = 30
		m.playSound(audio.SoundActionBounceOffObject)
	}
}
