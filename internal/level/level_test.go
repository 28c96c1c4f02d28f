package level

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/libsm64-go/internal/mario"
	smath "github.com/Faultbox/libsm64-go/pkg/math"
	"github.com/Faultbox/libsm64-go/pkg/sm64"
)

func pos(x, z float32) smath.Vec3 { return smath.Vec3{X: x, Z: z} }

const courtyard = `
name: courtyard
floors:
  - {y: 0, min_x: -1000, min_z: -1000, max_x: 1000, max_z: 1000}
platforms:
  - name: lift
    position: [1500, 0, 0]
    floors:
      - {y: 0, min_x: -200, min_z: -200, max_x: 200, max_z: 200}
    motion:
      velocity: [0, 5, 0]
      period: 20
spawns:
  - name: hero
    position: [0, 0, 0]
  - name: statue
    position: [300, 0, 300]
    yaw: 90
    fake: true
navigation:
  origin: [-1000, -1000]
  width: 20
  height: 20
  tile: 100
  probe_y: 2000
script:
  - ticks: 10
  - ticks: 150
    goto: [600, 0]
  - ticks: 2
    a: true
`

func newLibrary(t *testing.T) *sm64.Library {
	t.Helper()
	opts := sm64.DefaultOptions()
	opts.Audio = false
	lib := sm64.NewLibrary(opts)
	_, err := lib.GlobalInit(nil, nil)
	require.NoError(t, err)
	t.Cleanup(lib.GlobalTerminate)
	return lib
}

func TestParse(t *testing.T) {
	lv, err := Parse([]byte(courtyard))
	require.NoError(t, err)

	assert.Equal(t, "courtyard", lv.Name)
	assert.Len(t, lv.StaticGeometry(), 2)
	require.Len(t, lv.Platforms, 1)
	assert.Len(t, lv.Platforms[0].Geometry(), 2)
	require.Len(t, lv.Spawns, 2)
	assert.True(t, lv.Spawns[1].Fake)
	assert.Equal(t, float32(90), lv.Spawns[1].Yaw)
	assert.Equal(t, 162, lv.Duration())

	step, ok := lv.StepAt(10)
	require.True(t, ok)
	require.NotNil(t, step.Goto)
	assert.Equal(t, [2]float32{600, 0}, *step.Goto)

	step, ok = lv.StepAt(161)
	require.True(t, ok)
	assert.True(t, step.A)

	_, ok = lv.StepAt(162)
	assert.False(t, ok)
}

func TestParseRejectsBadLevels(t *testing.T) {
	_, err := Parse([]byte("name: empty\n"))
	assert.ErrorIs(t, err, ErrNoSpawns)

	_, err = Parse([]byte("spawns: [{position: [0,0,0]}]\nscript: [{ticks: 0}]\n"))
	assert.ErrorIs(t, err, ErrBadStep)

	_, err = Parse([]byte("spawns: [{position: [0,0,0]}]\nnavigation: {width: 0}\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("spawns: ["))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courtyard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(courtyard), 0o644))

	lv, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "courtyard", lv.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRectFacesUp(t *testing.T) {
	lib := newLibrary(t)
	r := Rect{Y: 120, MinX: -50, MinZ: -50, MaxX: 50, MaxZ: 50}
	lib.StaticSurfacesLoad(r.Triangles())

	h, _, ok := lib.SurfaceFindFloor(10, 500, -20)
	require.True(t, ok)
	assert.Equal(t, float32(120), h)

	_, _, ok = lib.SurfaceFindFloor(80, 500, 0)
	assert.False(t, ok)
}

func TestMotionAt(t *testing.T) {
	m := &Motion{Velocity: [3]float32{0, 5, 0}, Spin: [3]float32{0, 2, 0}, Period: 10}

	off, rot := m.At(4)
	assert.Equal(t, float32(20), off[1])
	assert.Equal(t, float32(8), rot[1])

	off, _ = m.At(10)
	assert.Equal(t, float32(50), off[1])
	off, _ = m.At(15)
	assert.Equal(t, float32(25), off[1], "on the way back")
	off, _ = m.At(20)
	assert.Zero(t, off[1])

	linear := &Motion{Velocity: [3]float32{1, 0, 0}}
	off, _ = linear.At(100)
	assert.Equal(t, float32(100), off[0])
}

func TestSteer(t *testing.T) {
	in := Steer(pos(0, 0), 1000, 0, false)
	assert.Equal(t, float32(-1), in.StickX)
	assert.Zero(t, in.StickY)
	assert.Equal(t, float32(1), in.CamLookZ)

	eased := Steer(pos(0, 0), 0, 100, true)
	assert.InDelta(t, -0.5, eased.StickY, 1e-6)

	assert.Equal(t, mario.Inputs{CamLookZ: 1}, Steer(pos(5, 5), 5, 5, true))
}

func TestFollowerWithoutGrid(t *testing.T) {
	f := NewFollower(nil)
	require.True(t, f.MoveTo(pos(0, 0), 0, 500))
	assert.True(t, f.IsFollowingPath)

	in := f.Update(pos(0, 0))
	assert.Negative(t, in.StickY)

	f.Update(pos(0, 490))
	assert.False(t, f.IsFollowingPath)
	assert.Nil(t, f.Path())
}

func TestApplyAndRun(t *testing.T) {
	lib := newLibrary(t)
	lv, err := Parse([]byte(courtyard))
	require.NoError(t, err)

	w, err := lv.Apply(lib)
	require.NoError(t, err)
	require.Len(t, w.Characters, 2)
	require.NotNil(t, w.Nav)
	assert.Equal(t, 2, lib.MarioCount())

	statue := w.Characters[1]
	assert.InDelta(t, 1.5708, statue.State.FaceAngle, 1e-3)

	var jumped bool
	for !w.Done() {
		w.Step(nil, func(c *Character, in mario.Inputs) {
			if c.Name == "hero" && in.ButtonA && mario.Action(c.State.Action).IsAir() {
				jumped = true
			}
		})
	}
	assert.Equal(t, lv.Duration(), w.Tick())

	hero := w.Characters[0]
	assert.InDelta(t, 600, hero.State.Position[0], 150)
	assert.InDelta(t, 0, hero.State.Position[2], 150)
	assert.True(t, jumped, "the last step jumps")

	w.Close()
	assert.Zero(t, lib.MarioCount())
}

func TestApplyRejectsFloatingSpawn(t *testing.T) {
	lib := newLibrary(t)
	lv, err := Parse([]byte(`
floors:
  - {y: 0, min_x: -100, min_z: -100, max_x: 100, max_z: 100}
spawns:
  - {name: ok, position: [0, 10, 0]}
  - {name: void, position: [5000, 10, 0]}
`))
	require.NoError(t, err)

	_, err = lv.Apply(lib)
	assert.ErrorContains(t, err, "void")
	assert.Zero(t, lib.MarioCount())
}
