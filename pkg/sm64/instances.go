package sm64

import (
	"go.uber.org/zap"

	"github.com/Faultbox/libsm64-go/internal/logger"
	"github.com/Faultbox/libsm64-go/internal/mario"
	smath "github.com/Faultbox/libsm64-go/pkg/math"
)

// instance is one pool slot.
type instance struct {
	mario *mario.Mario
}

// alloc returns the lowest free slot.
func (l *Library) alloc() int32 {
	for i, inst := range l.instances {
		if inst == nil {
			return int32(i)
		}
	}
	l.instances = append(l.instances, nil)
	return int32(len(l.instances) - 1)
}

// lookup resolves h, warning when it names no live character.
func (l *Library) lookup(h int32, op string) *mario.Mario {
	if !l.ready(op) {
		return nil
	}
	if h < 0 || int(h) >= len(l.instances) || l.instances[h] == nil {
		logger.Log.Warn("invalid mario handle", zap.Int32("id", h), zap.String("op", op))
		return nil
	}
	return l.instances[h].mario
}

// MarioCreate spawns a character at the given position facing the given
// binary angles. Unless fake is set the spawn needs a floor below it;
// otherwise InvalidHandle is returned and nothing is kept. Fake characters
// skip that check and can be animated with MarioAnimTick.
func (l *Library) MarioCreate(x, y, z float32, rx, ry, rz int16, fake bool) int32 {
	if !l.ready("mario_create") {
		return InvalidHandle
	}
	if l.opts.MaxInstances > 0 && l.live >= l.opts.MaxInstances {
		logger.Log.Warn("mario pool full", zap.Int("max", l.opts.MaxInstances))
		return InvalidHandle
	}

	h := l.alloc()
	var sink mario.SoundSink
	if l.audio != nil {
		sink = l.audio
	}
	m := mario.New(l.index, l.clips, sink)
	if err := m.Init(smath.Vec3{X: x, Y: y, Z: z}, fake); err != nil {
		logger.Log.Warn("mario spawn rejected",
			zap.Float32("x", x), zap.Float32("y", y), zap.Float32("z", z),
			zap.Error(err))
		return InvalidHandle
	}
	m.SetAngle(smath.Vec3s{X: rx, Y: ry, Z: rz})

	l.instances[h] = &instance{mario: m}
	l.live++
	logger.Log.Debug("mario created", zap.Int32("id", h), zap.Bool("fake", fake))
	return h
}

// MarioTick advances character h by one frame. state and buf are optional;
// when given they receive the snapshot and the mesh.
func (l *Library) MarioTick(h int32, in Inputs, state *State, buf *GeometryBuffers) {
	m := l.lookup(h, "mario_tick")
	if m == nil {
		return
	}
	m.Tick(in)
	l.render(m, buf)
	if state != nil {
		*state = snapshot(m)
	}
}

// MarioAnimTick poses character h from an externally driven animation
// without running physics. An info.ID of -1 keeps the current clip.
func (l *Library) MarioAnimTick(h int32, stateFlags uint32, info AnimInfo, rot [3]int16, buf *GeometryBuffers) {
	m := l.lookup(h, "mario_anim_tick")
	if m == nil {
		return
	}
	m.AnimTick(stateFlags, info, smath.Vec3s{X: rot[0], Y: rot[1], Z: rot[2]})
	l.render(m, buf)
}

// MarioGetAnimInfo returns the animation cursor of character h and the
// rotation its model is drawn with.
func (l *Library) MarioGetAnimInfo(h int32) (AnimInfo, [3]int16, bool) {
	m := l.lookup(h, "mario_get_anim_info")
	if m == nil {
		return AnimInfo{ID: -1}, [3]int16{}, false
	}
	return m.Anim, [3]int16{m.GfxAngle.X, m.GfxAngle.Y, m.GfxAngle.Z}, true
}

// MarioDelete frees character h. The handle may be returned again by a later
// MarioCreate.
func (l *Library) MarioDelete(h int32) {
	if l.lookup(h, "mario_delete") == nil {
		return
	}
	l.instances[h] = nil
	l.live--
	logger.Log.Debug("mario deleted", zap.Int32("id", h))
}

// MarioCount returns the number of live characters.
func (l *Library) MarioCount() int { return l.live }

// MarioState returns the current snapshot of character h without ticking.
func (l *Library) MarioState(h int32) (State, bool) {
	m := l.lookup(h, "mario_state")
	if m == nil {
		return State{}, false
	}
	return snapshot(m), true
}

func (l *Library) render(m *mario.Mario, buf *GeometryBuffers) {
	if buf == nil {
		return
	}
	pose := m.Anim.Clip.Sample(m.Anim.Frame, m.Anim.YTrans)
	l.eval.Emit(buf, m.GfxPos, m.GfxAngle, pose, m.ModelState(), m.Counter())
}

func snapshot(m *mario.Mario) State {
	return State{
		Position:      m.Pos.Array(),
		Velocity:      m.Vel.Array(),
		FaceAngle:     smath.AngleToRadians(m.FaceAngle.Y),
		Health:        m.Health,
		Action:        uint32(m.Action),
		Flags:         m.Flags,
		ParticleFlags: m.ParticleFlags,
		InvincTimer:   m.InvincTimer,
	}
}
