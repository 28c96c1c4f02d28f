package replay

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/Faultbox/libsm64-go/internal/level"
	"github.com/Faultbox/libsm64-go/internal/mario"
	"github.com/Faultbox/libsm64-go/pkg/sm64"
)

const plaza = `
name: plaza
floors:
  - {y: 0, min_x: -2000, min_z: -2000, max_x: 2000, max_z: 2000}
spawns:
  - name: runner
    position: [0, 0, 0]
  - name: jumper
    position: [500, 0, 0]
script:
  - ticks: 20
    stick: [0, -1]
  - ticks: 5
    a: true
  - ticks: 15
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

func parse(t *testing.T, doc string) *level.Level {
	t.Helper()
	lv, err := level.Parse([]byte(doc))
	require.NoError(t, err)
	return lv
}

// record runs lv to the end and returns the recording.
func record(t *testing.T, lib *sm64.Library, lv *level.Level) *Recording {
	t.Helper()
	w, err := lv.Apply(lib)
	require.NoError(t, err)
	defer w.Close()

	names := make([]string, len(w.Characters))
	for i, c := range w.Characters {
		names[i] = c.Name
	}
	r, err := NewRecorder(lv, names)
	require.NoError(t, err)
	for !w.Done() {
		tick := w.Tick()
		ins := w.Step(nil, nil)
		r.Record(tick, ins, w.States())
	}
	return r.Recording()
}

func TestInputRoundTrip(t *testing.T) {
	in := mario.Inputs{StickX: 0.5, StickY: -1, CamLookX: 0.25, CamLookZ: 1, ButtonA: true, ButtonZ: true}
	packed := FromInputs(in)
	assert.Equal(t, ButtonA|ButtonZ, packed.Buttons)
	assert.Equal(t, in, packed.Inputs())
}

func TestStateDigest(t *testing.T) {
	a := []sm64.State{{Position: [3]float32{1, 2, 3}, Health: 0x880}}
	b := []sm64.State{{Position: [3]float32{1, 2, 3}, Health: 0x880}}
	assert.Equal(t, StateDigest(a), StateDigest(b))

	b[0].Position[1] = 2.0001
	assert.NotEqual(t, StateDigest(a), StateDigest(b))

	assert.NotEqual(t, StateDigest(a), StateDigest(append(a, a[0])), "character count matters")
}

func TestLevelDigest(t *testing.T) {
	a, err := LevelDigest(parse(t, plaza))
	require.NoError(t, err)
	b, err := LevelDigest(parse(t, plaza))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	edited := parse(t, plaza)
	edited.Spawns[0].Position[0] = 10
	c, err := LevelDigest(edited)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestRecorder(t *testing.T) {
	lib := newLibrary(t)
	lv := parse(t, plaza)
	rec := record(t, lib, lv)

	assert.Equal(t, FormatVersion, rec.Version)
	assert.Equal(t, "plaza", rec.Level)
	assert.Equal(t, []string{"runner", "jumper"}, rec.Characters)
	_, err := uuid.Parse(rec.RunID)
	assert.NoError(t, err)

	require.Len(t, rec.Frames, lv.Duration())
	assert.Equal(t, 0, rec.Frames[0].Tick)
	assert.Equal(t, float32(-1), rec.Frames[0].Inputs[0].StickY)
	assert.Equal(t, ButtonA, rec.Frames[20].Inputs[1].Buttons)
	assert.Zero(t, rec.Frames[30].Inputs[0].Buttons)
}

func TestSaveLoad(t *testing.T) {
	lib := newLibrary(t)
	rec := record(t, lib, parse(t, plaza))

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, rec))
	got, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, rec.RunID, got.RunID)
	assert.Equal(t, rec.Frames, got.Frames)
	assert.True(t, rec.Created.Equal(got.Created))

	path := filepath.Join(t.TempDir(), "plaza.replay")
	require.NoError(t, SaveFile(path, rec))
	got, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, rec.LevelDigest, got.LevelDigest)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestLoadRejectsOtherVersions(t *testing.T) {
	data, err := msgpack.Marshal(&Recording{Version: FormatVersion + 1})
	require.NoError(t, err)
	_, err = Load(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrVersion)

	_, err = Load(bytes.NewReader([]byte{0xc1}))
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	lib := newLibrary(t)
	lv := parse(t, plaza)
	rec := record(t, lib, lv)
	require.Zero(t, lib.MarioCount())

	require.NoError(t, Verify(lib, lv, rec))
	assert.Zero(t, lib.MarioCount(), "verify cleans up its world")
}

func TestVerifyDetectsDivergence(t *testing.T) {
	lib := newLibrary(t)
	lv := parse(t, plaza)
	rec := record(t, lib, lv)

	// Tick 20 is the runner's first jump press; dropping it keeps the
	// runner on the ground.
	require.Equal(t, ButtonA, rec.Frames[20].Inputs[0].Buttons)
	rec.Frames[20].Inputs[0].Buttons = 0
	err := Verify(lib, lv, rec)
	assert.ErrorIs(t, err, ErrDiverged)
	assert.ErrorContains(t, err, "tick 20")
}

func TestVerifyRejectsOtherLevel(t *testing.T) {
	lib := newLibrary(t)
	lv := parse(t, plaza)
	rec := record(t, lib, lv)

	lv.Spawns[1].Position[2] = 100
	assert.ErrorIs(t, Verify(lib, lv, rec), ErrLevelMismatch)
}
