package mario

import (
	"github.com/Faultbox/libsm64-go/internal/surface"
	smath "github.com/Faultbox/libsm64-go/pkg/math"
)

// platformSnapDistance is how close to the floor the character must be to
// ride the object the floor belongs to.
const platformSnapDistance = 4

// applyPlatformDisplacement carries the character along with the platform
// it stood on last tick. A platform that was unloaded is dropped.
func (m *Mario) applyPlatformDisplacement() {
	if m.Platform == surface.NoObject {
		return
	}
	cur, ok := m.idx.ObjectTransform(m.Platform)
	if !ok {
		m.Platform = surface.NoObject
		return
	}
	last := m.platformLast
	if cur == last {
		return
	}

	local := last.Matrix().TransposeDirection(m.Pos.Sub(last.Position))
	m.Pos = cur.Matrix().TransformDirection(local).Add(cur.Position)
	m.FaceAngle.Y += cur.Rotation.Y - last.Rotation.Y
	m.platformLast = cur
}

// updatePlatform picks the object under the character as its platform.
func (m *Mario) updatePlatform() {
	m.Platform = surface.NoObject
	if m.Floor == nil || !m.Floor.Dynamic() {
		return
	}
	if smath.Absf(m.Pos.Y-m.FloorHeight) >= platformSnapDistance {
		return
	}
	t, ok := m.idx.ObjectTransform(m.Floor.Object)
	if !ok {
		return
	}
	m.Platform = m.Floor.Object
	m.platformLast = t
}

// ForgetPlatform clears the platform reference when it matches h.
func (m *Mario) ForgetPlatform(h surface.ObjectHandle) {
	if m.Platform == h {
		m.Platform = surface.NoObject
	}
}
