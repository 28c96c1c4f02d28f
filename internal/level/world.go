package level

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/Faultbox/libsm64-go/internal/logger"
	"github.com/Faultbox/libsm64-go/internal/mario"
	smath "github.com/Faultbox/libsm64-go/pkg/math"
	"github.com/Faultbox/libsm64-go/pkg/sm64"
)

// Character is one spawned character in a running world.
type Character struct {
	Name   string
	Handle int32
	State  sm64.State

	follower *Follower
	target   *[2]float32
}

// World is a level loaded into a Library.
type World struct {
	Level      *Level
	Characters []*Character
	Nav        *NavGrid

	lib       *sm64.Library
	platforms []uint32
	tick      int
}

// Apply loads lv into lib: static geometry, platforms and spawns. A spawn
// the library rejects fails the whole level.
func (lv *Level) Apply(lib *sm64.Library) (*World, error) {
	w := &World{Level: lv, lib: lib}

	lib.StaticSurfacesLoad(lv.StaticGeometry())
	for _, p := range lv.Platforms {
		id := lib.SurfaceObjectCreate(sm64.SurfaceObject{
			Transform: sm64.ObjectTransform{Position: p.Position, EulerRotation: p.Rotation},
			Surfaces:  p.Geometry(),
		})
		w.platforms = append(w.platforms, id)
	}

	if lv.Navigation != nil {
		w.Nav = BuildNavGrid(lib, *lv.Navigation)
	}

	for _, s := range lv.Spawns {
		yaw := smath.RadiansToAngle(s.Yaw * math.Pi / 180)
		h := lib.MarioCreate(s.Position[0], s.Position[1], s.Position[2], 0, yaw, 0, s.Fake)
		if h == sm64.InvalidHandle {
			w.Close()
			return nil, fmt.Errorf("level %s: spawn %q at %v rejected", lv.Name, s.Name, s.Position)
		}
		if s.WaterLevel != nil {
			lib.MarioSetWaterLevel(h, *s.WaterLevel)
		}
		c := &Character{Name: s.Name, Handle: h, follower: NewFollower(w.Nav)}
		c.State, _ = lib.MarioState(h)
		w.Characters = append(w.Characters, c)
	}

	logger.Log.Info("level applied",
		zap.String("level", lv.Name),
		zap.Int("platforms", len(w.platforms)),
		zap.Int("characters", len(w.Characters)))
	return w, nil
}

// Tick returns the number of ticks run so far.
func (w *World) Tick() int { return w.tick }

// Done reports whether the script has run out.
func (w *World) Done() bool { return w.tick >= w.Level.Duration() }

// Inputs returns what character c is fed on the current tick.
func (w *World) Inputs(c *Character) mario.Inputs {
	step, ok := w.Level.StepAt(w.tick)
	if !ok {
		return mario.Inputs{CamLookZ: 1}
	}

	var in mario.Inputs
	if step.Goto != nil {
		if c.target == nil || *c.target != *step.Goto {
			target := *step.Goto
			c.target = &target
			pos := smath.Vec3{X: c.State.Position[0], Y: c.State.Position[1], Z: c.State.Position[2]}
			if !c.follower.MoveTo(pos, target[0], target[1]) {
				logger.Log.Warn("no route", zap.String("character", c.Name), zap.Any("target", target))
			}
		}
		pos := smath.Vec3{X: c.State.Position[0], Y: c.State.Position[1], Z: c.State.Position[2]}
		in = c.follower.Update(pos)
	} else {
		c.target = nil
		c.follower.ClearPath()
		in = mario.Inputs{StickX: step.Stick[0], StickY: step.Stick[1], CamLookZ: 1}
		if step.Camera != nil {
			in.CamLookX, in.CamLookZ = step.Camera[0], step.Camera[1]
		}
	}
	in.ButtonA, in.ButtonB, in.ButtonZ = step.A, step.B, step.Z
	return in
}

// movePlatforms places every animated platform for tick.
func (w *World) movePlatforms(tick int) {
	for i, p := range w.Level.Platforms {
		if p.Motion == nil {
			continue
		}
		offset, spin := p.Motion.At(tick)
		var t sm64.ObjectTransform
		for k := 0; k < 3; k++ {
			t.Position[k] = p.Position[k] + offset[k]
			t.EulerRotation[k] = p.Rotation[k] + spin[k]
		}
		w.lib.SurfaceObjectMove(w.platforms[i], t)
	}
}

// Step advances the world by one tick with the scripted inputs and returns
// them. observe, if set, sees each character's input and resulting state.
func (w *World) Step(buf *sm64.GeometryBuffers, observe func(c *Character, in mario.Inputs)) []mario.Inputs {
	ins := make([]mario.Inputs, len(w.Characters))
	for i, c := range w.Characters {
		ins[i] = w.Inputs(c)
	}
	w.StepWith(ins, buf)
	if observe != nil {
		for i, c := range w.Characters {
			observe(c, ins[i])
		}
	}
	return ins
}

// StepWith advances the world by one tick: platforms move, then character i
// ticks with ins[i]. Characters without an input get none.
func (w *World) StepWith(ins []mario.Inputs, buf *sm64.GeometryBuffers) {
	w.movePlatforms(w.tick + 1)
	for i, c := range w.Characters {
		var in mario.Inputs
		if i < len(ins) {
			in = ins[i]
		}
		w.lib.MarioTick(c.Handle, in, &c.State, buf)
	}
	w.tick++
}

// States returns the latest snapshot of every character.
func (w *World) States() []sm64.State {
	out := make([]sm64.State, len(w.Characters))
	for i, c := range w.Characters {
		out[i] = c.State
	}
	return out
}

// Close deletes the level's characters and platforms from the library.
func (w *World) Close() {
	for _, c := range w.Characters {
		w.lib.MarioDelete(c.Handle)
	}
	w.Characters = nil
	for _, id := range w.platforms {
		w.lib.SurfaceObjectDelete(id)
	}
	w.platforms = nil
}
