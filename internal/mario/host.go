package mario

import (
	"github.com/Faultbox/libsm64-go/internal/anim"
	smath "github.com/Faultbox/libsm64-go/pkg/math"
)

// SetPosition teleports the character. The model follows immediately.
func (m *Mario) SetPosition(pos smath.Vec3) {
	m.Pos = pos
	m.GfxPos = pos
}

// SetAngle overwrites all three face angles. The model only takes the yaw.
func (m *Mario) SetAngle(a smath.Vec3s) {
	m.FaceAngle = a
	m.GfxAngle = smath.Vec3s{Y: a.Y}
}

// SetFaceYaw overwrites the facing yaw.
func (m *Mario) SetFaceYaw(yaw int16) {
	m.FaceAngle.Y = yaw
	m.GfxAngle = smath.Vec3s{Y: yaw}
}

// SetVelocity overwrites the velocity vector.
func (m *Mario) SetVelocity(v smath.Vec3) { m.Vel = v }

// SetFlags overwrites the state flags.
func (m *Mario) SetFlags(flags uint32) { m.Flags = flags }

// SetWaterLevel moves the water surface seen by this character.
func (m *Mario) SetWaterLevel(level int16) { m.WaterLevel = level }

// SetAnimation plays clip id. The cursor is only reset when id differs from
// the playing clip.
func (m *Mario) SetAnimation(id int16) int16 { return m.setAnim(id) }

// SetAnimFrame jumps the playback cursor to frame.
func (m *Mario) SetAnimFrame(frame int16) { m.Anim.Frame = frame }

// AnimTick advances only the appearance of the character: flags, cap model
// and animation come from the caller and no physics runs. An id of -1 keeps
// the current clip.
func (m *Mario) AnimTick(flags uint32, info anim.Info, rot smath.Vec3s) {
	m.GfxAngle = rot
	m.Flags = flags
	m.updateHitboxAndCapModel()

	if info.ID != -1 && info.ID != m.Anim.ID {
		m.setAnimWithAccel(info.ID, info.Accel)
	}
	m.Anim.Accel = info.Accel

	m.Anim.Advance(m.counter)
	m.counter++
}
