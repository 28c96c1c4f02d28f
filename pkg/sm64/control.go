package sm64

import (
	"github.com/Faultbox/libsm64-go/internal/mario"
	smath "github.com/Faultbox/libsm64-go/pkg/math"
)

// MarioSetAction switches character h to action.
func (l *Library) MarioSetAction(h int32, action uint32) {
	if m := l.lookup(h, "set_mario_action"); m != nil {
		m.SetAction(mario.Action(action), 0)
	}
}

// MarioSetActionArg switches character h to action with an argument.
func (l *Library) MarioSetActionArg(h int32, action, arg uint32) {
	if m := l.lookup(h, "set_mario_action_arg"); m != nil {
		m.SetAction(mario.Action(action), arg)
	}
}

// MarioSetAnimation plays clip id on character h. Playback restarts only if
// id differs from the current clip.
func (l *Library) MarioSetAnimation(h int32, id int16) {
	if m := l.lookup(h, "set_mario_animation"); m != nil {
		m.SetAnimation(id)
	}
}

// MarioSetAnimFrame jumps character h's animation to frame.
func (l *Library) MarioSetAnimFrame(h int32, frame int16) {
	if m := l.lookup(h, "set_mario_anim_frame"); m != nil {
		m.SetAnimFrame(frame)
	}
}

// MarioSetState overwrites the state flags of character h.
func (l *Library) MarioSetState(h int32, flags uint32) {
	if m := l.lookup(h, "set_mario_state"); m != nil {
		m.SetFlags(flags)
	}
}

// MarioSetPosition teleports character h.
func (l *Library) MarioSetPosition(h int32, x, y, z float32) {
	if m := l.lookup(h, "set_mario_position"); m != nil {
		m.SetPosition(smath.Vec3{X: x, Y: y, Z: z})
	}
}

// MarioSetAngle sets the face angles of character h, in radians.
func (l *Library) MarioSetAngle(h int32, x, y, z float32) {
	if m := l.lookup(h, "set_mario_angle"); m != nil {
		m.SetAngle(smath.Vec3s{
			X: smath.RadiansToAngle(x),
			Y: smath.RadiansToAngle(y),
			Z: smath.RadiansToAngle(z),
		})
	}
}

// MarioSetFaceAngle sets the facing yaw of character h, in radians.
func (l *Library) MarioSetFaceAngle(h int32, y float32) {
	if m := l.lookup(h, "set_mario_faceangle"); m != nil {
		m.SetFaceYaw(smath.RadiansToAngle(y))
	}
}

// MarioSetVelocity overwrites the velocity of character h.
func (l *Library) MarioSetVelocity(h int32, x, y, z float32) {
	if m := l.lookup(h, "set_mario_velocity"); m != nil {
		m.SetVelocity(smath.Vec3{X: x, Y: y, Z: z})
	}
}

// MarioSetForwardVelocity sets the forward speed of character h along its
// facing yaw.
func (l *Library) MarioSetForwardVelocity(h int32, v float32) {
	if m := l.lookup(h, "set_mario_forward_velocity"); m != nil {
		m.SetForwardVel(v)
	}
}

// MarioSetWaterLevel moves the water surface seen by character h.
func (l *Library) MarioSetWaterLevel(h int32, level int32) {
	if m := l.lookup(h, "set_mario_water_level"); m != nil {
		m.SetWaterLevel(int16(level))
	}
}

// MarioGetWaterLevel returns the water level seen by character h, or 0 for
// an invalid handle.
func (l *Library) MarioGetWaterLevel(h int32) int32 {
	if m := l.lookup(h, "get_mario_water_level"); m != nil {
		return int32(m.WaterLevel)
	}
	return 0
}

// MarioSetFloorOverride forces the terrain and floor type character h sees.
// A negative floorType only overrides the terrain.
func (l *Library) MarioSetFloorOverride(h int32, terrain uint16, floorType int16) {
	if m := l.lookup(h, "set_mario_floor_override"); m != nil {
		m.SetFloorOverride(terrain, floorType)
	}
}

// MarioClearFloorOverride restores per-surface terrain for character h.
func (l *Library) MarioClearFloorOverride(h int32) {
	if m := l.lookup(h, "clear_mario_floor_override"); m != nil {
		m.ClearFloorOverride()
	}
}

// MarioTakeDamage hurts character h from a source at (x, y, z).
func (l *Library) MarioTakeDamage(h int32, damage, subtype uint32, x, y, z float32) {
	if m := l.lookup(h, "mario_take_damage"); m != nil {
		m.TakeDamage(damage, subtype, smath.Vec3{X: x, Y: y, Z: z})
	}
}

// MarioHeal queues n health wedges' worth of healing.
func (l *Library) MarioHeal(h int32, n uint8) {
	if m := l.lookup(h, "mario_heal"); m != nil {
		m.Heal(n)
	}
}

// MarioSetHealth overwrites the health of character h.
func (l *Library) MarioSetHealth(h int32, health uint16) {
	if m := l.lookup(h, "mario_set_health"); m != nil {
		m.SetHealth(int16(health))
	}
}

// MarioKill drops character h's health to zero.
func (l *Library) MarioKill(h int32) {
	if m := l.lookup(h, "mario_kill"); m != nil {
		m.Kill()
	}
}

// MarioStomp tells character h something landed on it.
func (l *Library) MarioStomp(h int32, damage uint32) {
	if m := l.lookup(h, "mario_stomp"); m != nil {
		m.Stomp(damage)
	}
}

// MarioInteractCap gives character h a cap. A zero capTime selects the
// cap's default duration.
func (l *Library) MarioInteractCap(h int32, capFlag uint32, capTime uint16, playMusic bool) {
	if m := l.lookup(h, "mario_interact_cap"); m != nil {
		m.InteractCap(capFlag, capTime, playMusic)
	}
}

// MarioAttack reports whether character h's current move hits something
// standing at (x, y, z) and hitboxHeight tall. Targets out of reach of the
// character's hitbox are missed. Nothing changes; call MarioBounceFromAttack
// to apply the recoil.
func (l *Library) MarioAttack(h int32, x, y, z, hitboxHeight float32) bool {
	if m := l.lookup(h, "mario_attack"); m != nil {
		return m.AttackQuery(smath.Vec3{X: x, Y: y, Z: z}, hitboxHeight)
	}
	return false
}

// MarioBounceFromAttack applies the recoil of a hit on something at
// (x, y, z).
func (l *Library) MarioBounceFromAttack(h int32, x, y, z, hitboxHeight float32) {
	if m := l.lookup(h, "mario_bounce_from_attack"); m != nil {
		m.BounceFromAttack(smath.Vec3{X: x, Y: y, Z: z}, hitboxHeight)
	}
}
