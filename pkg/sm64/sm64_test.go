package sm64

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/libsm64-go/internal/anim"
	"github.com/Faultbox/libsm64-go/internal/assets"
	"github.com/Faultbox/libsm64-go/internal/audio"
	"github.com/Faultbox/libsm64-go/internal/logger"
	"github.com/Faultbox/libsm64-go/internal/mario"
	"github.com/Faultbox/libsm64-go/internal/surface"
)

func square(half, y int32) []Surface {
	return []Surface{
		{Type: surface.TypeDefault, Vertices: [3][3]int32{{-half, y, -half}, {-half, y, half}, {half, y, half}}},
		{Type: surface.TypeDefault, Vertices: [3][3]int32{{-half, y, -half}, {half, y, half}, {half, y, -half}}},
	}
}

func newTestLibrary(t *testing.T) *Library {
	t.Helper()
	opts := DefaultOptions()
	opts.Audio = false
	l := NewLibrary(opts)
	_, err := l.GlobalInit(nil, nil)
	require.NoError(t, err)
	t.Cleanup(l.GlobalTerminate)
	return l
}

// observe captures warnings for the duration of the test.
func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.WarnLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })
	return logs
}

func tickN(l *Library, h int32, n int, state *State) {
	for i := 0; i < n; i++ {
		l.MarioTick(h, Inputs{}, state, nil)
	}
}

func TestGlobalInitReturnsAtlas(t *testing.T) {
	l := NewLibrary(Options{})
	atlas, err := l.GlobalInit(nil, nil)
	require.NoError(t, err)
	assert.Len(t, atlas, AtlasSize)
	assert.Equal(t, TextureWidth*TextureHeight*4, AtlasSize)
	assert.True(t, l.Initialized())

	// The atlas is a copy.
	atlas[0] ^= 0xFF
	again, err := l.Atlas()
	require.NoError(t, err)
	assert.NotEqual(t, atlas[0], again[0])

	l.GlobalTerminate()
	l.GlobalTerminate()
	assert.False(t, l.Initialized())
	_, err = l.Atlas()
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestGlobalInitRejectsCorruptBlob(t *testing.T) {
	l := NewLibrary(Options{})
	_, err := l.GlobalInit([]byte("garbage"), nil)
	assert.ErrorIs(t, err, assets.ErrBadMagic)
	assert.False(t, l.Initialized())
}

func TestGlobalInitTwiceResets(t *testing.T) {
	l := newTestLibrary(t)
	l.StaticSurfacesLoad(square(1000, 0))
	require.NotEqual(t, InvalidHandle, l.MarioCreate(0, 100, 0, 0, 0, 0, false))

	blob, err := assets.Encode(assets.Default())
	require.NoError(t, err)
	_, err = l.GlobalInit(blob, nil)
	require.NoError(t, err)
	assert.Zero(t, l.MarioCount())
	assert.Equal(t, InvalidHandle, l.MarioCreate(0, 100, 0, 0, 0, 0, false), "surfaces were unloaded")
}

func TestDebugPrintReceivesLogs(t *testing.T) {
	prev := logger.Log
	t.Cleanup(func() { logger.Log = prev })

	var mu sync.Mutex
	var lines []string
	l := NewLibrary(Options{LogLevel: "warn"})
	_, err := l.GlobalInit(nil, func(line string) {
		mu.Lock()
		lines = append(lines, line)
		mu.Unlock()
	})
	require.NoError(t, err)
	defer l.GlobalTerminate()

	l.MarioDelete(7)
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "invalid mario handle")
}

func TestCallsBeforeInitAreHarmless(t *testing.T) {
	logs := observe(t)
	l := NewLibrary(Options{})
	assert.Equal(t, InvalidHandle, l.MarioCreate(0, 0, 0, 0, 0, 0, true))
	assert.Zero(t, l.SurfaceObjectCreate(SurfaceObject{}))
	l.MarioTick(0, Inputs{}, &State{}, nil)
	assert.Equal(t, audio.NoBackgroundMusic, l.CurrentBackgroundMusic())
	assert.Equal(t, 4, logs.FilterMessage("library not initialized").Len())
}

func TestSpawnWithoutFloorFails(t *testing.T) {
	l := newTestLibrary(t)
	assert.Equal(t, InvalidHandle, l.MarioCreate(0, 100, 0, 0, 0, 0, false))
	assert.Zero(t, l.MarioCount())

	h := l.MarioCreate(0, 100, 0, 0, 0, 0, true)
	assert.Equal(t, int32(0), h, "the rejected spawn released its slot")
	assert.Equal(t, 1, l.MarioCount())
}

func TestFallScenario(t *testing.T) {
	l := newTestLibrary(t)
	l.StaticSurfacesLoad(square(500, 0))
	h := l.MarioCreate(0, 1000, 0, 0, 0, 0, false)
	require.NotEqual(t, InvalidHandle, h)

	var s State
	l.MarioTick(h, Inputs{}, &s, nil)
	assert.Less(t, s.Position[1], float32(1000), "dropped on the first tick")
	assert.Negative(t, s.Velocity[1])
	assert.True(t, mario.Action(s.Action).IsAir())
	assert.Equal(t, mario.HealthFull, s.Health)

	prev := s.Position[1]
	l.MarioTick(h, Inputs{}, &s, nil)
	assert.Less(t, s.Position[1], prev)
	assert.True(t, mario.Action(s.Action).IsAir())

	for i := 0; i < 300 && mario.Action(s.Action).IsAir(); i++ {
		l.MarioTick(h, Inputs{}, &s, nil)
	}
	assert.False(t, mario.Action(s.Action).IsAir(), "never landed")
	tickN(l, h, 30, &s)
	assert.Equal(t, float32(0), s.Position[1])
}

func TestTickFillsGeometry(t *testing.T) {
	l := newTestLibrary(t)
	l.StaticSurfacesLoad(square(500, 0))
	h := l.MarioCreate(0, 0, 0, 0, 0, 0, false)
	require.NotEqual(t, InvalidHandle, h)

	buf := NewGeometryBuffers(0)
	l.MarioTick(h, Inputs{}, nil, buf)
	assert.Positive(t, buf.TrianglesUsed)
	assert.Zero(t, buf.Dropped)

	small := NewGeometryBuffers(4)
	l.MarioTick(h, Inputs{}, nil, small)
	assert.Equal(t, 4, small.TrianglesUsed)
	assert.Positive(t, small.Dropped)
}

func TestHandlesAreReusedLowestFirst(t *testing.T) {
	l := newTestLibrary(t)
	l.StaticSurfacesLoad(square(1000, 0))

	var handles []int32
	for i := 0; i < 5; i++ {
		handles = append(handles, l.MarioCreate(float32(i*100), 0, 0, 0, 0, 0, false))
	}
	assert.Equal(t, []int32{0, 1, 2, 3, 4}, handles)

	l.MarioDelete(3)
	l.MarioDelete(1)
	assert.Equal(t, 3, l.MarioCount())

	assert.Equal(t, int32(1), l.MarioCreate(0, 0, 0, 0, 0, 0, false))
	assert.Equal(t, int32(3), l.MarioCreate(0, 0, 0, 0, 0, 0, false))
	assert.Equal(t, int32(5), l.MarioCreate(0, 0, 0, 0, 0, 0, false))
	assert.Equal(t, 6, l.MarioCount())
}

func TestMaxInstances(t *testing.T) {
	opts := DefaultOptions()
	opts.Audio = false
	opts.MaxInstances = 2
	l := NewLibrary(opts)
	_, err := l.GlobalInit(nil, nil)
	require.NoError(t, err)
	defer l.GlobalTerminate()

	assert.Equal(t, int32(0), l.MarioCreate(0, 0, 0, 0, 0, 0, true))
	assert.Equal(t, int32(1), l.MarioCreate(0, 0, 0, 0, 0, 0, true))
	assert.Equal(t, InvalidHandle, l.MarioCreate(0, 0, 0, 0, 0, 0, true))
	l.MarioDelete(0)
	assert.Equal(t, int32(0), l.MarioCreate(0, 0, 0, 0, 0, 0, true))
}

func TestDeletedHandleDoesNotDisturbOthers(t *testing.T) {
	logs := observe(t)
	l := newTestLibrary(t)
	l.StaticSurfacesLoad(square(2000, 0))

	a := l.MarioCreate(-500, 500, 0, 0, 0, 0, false)
	b := l.MarioCreate(500, 500, 0, 0, 0, 0, false)
	var sa, sb State
	l.MarioTick(a, Inputs{}, &sa, nil)
	l.MarioTick(b, Inputs{}, &sb, nil)

	l.MarioDelete(a)
	stale := State{Health: -1}
	l.MarioTick(a, Inputs{StickX: 1, ButtonA: true}, &stale, nil)
	assert.Equal(t, int16(-1), stale.Health, "stale tick wrote a snapshot")

	got, ok := l.MarioState(b)
	require.True(t, ok)
	assert.Equal(t, sb, got)

	entries := logs.FilterMessage("invalid mario handle").All()
	require.Len(t, entries, 1)
	assert.Equal(t, a, entries[0].ContextMap()["id"])
	assert.Equal(t, "mario_tick", entries[0].ContextMap()["op"])
}

func TestInvalidHandlesAreNoOps(t *testing.T) {
	logs := observe(t)
	l := newTestLibrary(t)

	for _, h := range []int32{-1, 0, 99} {
		l.MarioSetPosition(h, 1, 2, 3)
		l.MarioKill(h)
		assert.False(t, l.MarioAttack(h, 0, 0, 0, 100))
		assert.Zero(t, l.MarioGetWaterLevel(h))
		info, _, ok := l.MarioGetAnimInfo(h)
		assert.False(t, ok)
		assert.Equal(t, int16(-1), info.ID)
	}
	assert.Equal(t, 15, logs.FilterMessage("invalid mario handle").Len())
}

func TestAngleRoundTrip(t *testing.T) {
	l := newTestLibrary(t)
	h := l.MarioCreate(0, 0, 0, 0, 0, 0, true)
	require.NotEqual(t, InvalidHandle, h)

	const resolution = 2 * math.Pi / 65536
	for _, yaw := range []float32{0, 0.5, 1.234, -2.5, 3.1} {
		l.MarioSetFaceAngle(h, yaw)
		s, ok := l.MarioState(h)
		require.True(t, ok)
		assert.InDelta(t, yaw, s.FaceAngle, resolution, "yaw %v", yaw)
	}

	l.MarioSetAngle(h, 0, -1, 0)
	s, _ := l.MarioState(h)
	assert.InDelta(t, -1, s.FaceAngle, resolution)
}

func TestCreateUsesSpawnAngle(t *testing.T) {
	l := newTestLibrary(t)
	h := l.MarioCreate(0, 0, 0, 0, 0x4000, 0, true)
	s, ok := l.MarioState(h)
	require.True(t, ok)
	assert.InDelta(t, math.Pi/2, s.FaceAngle, 1e-4)

	_, rot, ok := l.MarioGetAnimInfo(h)
	require.True(t, ok)
	assert.Equal(t, int16(0x4000), rot[1])
}

func TestSurfaceObjectDeletionClearsPlatform(t *testing.T) {
	l := newTestLibrary(t)
	l.StaticSurfacesLoad(square(2000, -500))
	id := l.SurfaceObjectCreate(SurfaceObject{
		Transform: ObjectTransform{Position: [3]float32{0, 0, 0}},
		Surfaces:  square(300, 0),
	})
	require.NotZero(t, id)

	h := l.MarioCreate(0, 200, 0, 0, 0, 0, false)
	require.NotEqual(t, InvalidHandle, h)
	var s State
	tickN(l, h, 120, &s)
	require.Equal(t, float32(0), s.Position[1])

	m := l.instances[h].mario
	assert.Equal(t, surface.ObjectHandle(id), m.Platform)

	l.SurfaceObjectDelete(id)
	assert.Equal(t, surface.NoObject, m.Platform)

	// Deleting again only warns.
	logs := observe(t)
	l.SurfaceObjectDelete(id)
	assert.Equal(t, 1, logs.FilterMessage("invalid surface object").Len())

	tickN(l, h, 120, &s)
	assert.Equal(t, float32(-500), s.Position[1])
}

func TestSurfaceObjectCarriesCharacter(t *testing.T) {
	l := newTestLibrary(t)
	id := l.SurfaceObjectCreate(SurfaceObject{Surfaces: square(1000, 0)})
	h := l.MarioCreate(0, 0, 0, 0, 0, 0, false)
	require.NotEqual(t, InvalidHandle, h)

	var s State
	tickN(l, h, 60, &s)
	x0 := s.Position[0]

	l.SurfaceObjectMove(id, ObjectTransform{Position: [3]float32{50, 0, 0}})
	l.MarioTick(h, Inputs{}, &s, nil)
	assert.InDelta(t, x0+50, s.Position[0], 0.01)
}

func TestWingCapDefaultDuration(t *testing.T) {
	l := newTestLibrary(t)
	l.StaticSurfacesLoad(square(1000, 0))
	h := l.MarioCreate(0, 1000, 0, 0, 0, 0, false)
	require.NotEqual(t, InvalidHandle, h)

	l.MarioInteractCap(h, mario.FlagWingCap, 0, false)
	m := l.instances[h].mario
	assert.Equal(t, uint16(1800), m.CapTimer)
	assert.NotZero(t, m.Flags&mario.FlagWingCap)
}

func TestSettersReachTheCharacter(t *testing.T) {
	l := newTestLibrary(t)
	l.StaticSurfacesLoad(square(1000, 0))
	h := l.MarioCreate(0, 0, 0, 0, 0, 0, false)
	require.NotEqual(t, InvalidHandle, h)
	m := l.instances[h].mario

	l.MarioSetPosition(h, 10, 20, 30)
	l.MarioSetVelocity(h, 1, 2, 3)
	l.MarioSetWaterLevel(h, -400)
	l.MarioSetHealth(h, 0x500)
	s, _ := l.MarioState(h)
	assert.Equal(t, [3]float32{10, 20, 30}, s.Position)
	assert.Equal(t, [3]float32{1, 2, 3}, s.Velocity)
	assert.Equal(t, int32(-400), l.MarioGetWaterLevel(h))
	assert.Equal(t, int16(0x500), s.Health)

	l.MarioSetActionArg(h, uint32(mario.ActFreefall), 1)
	assert.Equal(t, mario.ActFreefall, m.Action)
	assert.Equal(t, uint32(1), m.ActionArg)

	l.MarioSetState(h, mario.FlagMetalCap)
	assert.Equal(t, mario.FlagMetalCap, m.Flags)

	l.MarioSetForwardVelocity(h, 12)
	assert.Equal(t, float32(12), m.ForwardVel)

	l.MarioSetFloorOverride(h, surface.TerrainSnow, surface.TypeVerySlippery)
	assert.Equal(t, mario.FloorClassVerySlippery, m.FloorClass())
	l.MarioClearFloorOverride(h)

	l.MarioKill(h)
	s, _ = l.MarioState(h)
	assert.Equal(t, mario.HealthDead, s.Health)
}

func TestSetAnimationOnlyResetsOnChange(t *testing.T) {
	l := newTestLibrary(t)
	h := l.MarioCreate(0, 0, 0, 0, 0, 0, true)

	l.MarioSetAnimation(h, anim.Walking)
	l.MarioSetAnimFrame(h, 5)
	l.MarioSetAnimation(h, anim.Walking)
	info, _, _ := l.MarioGetAnimInfo(h)
	assert.Equal(t, anim.Walking, info.ID)
	assert.Equal(t, int16(5), info.Frame)

	l.MarioSetAnimation(h, anim.Running)
	info, _, _ = l.MarioGetAnimInfo(h)
	assert.Equal(t, anim.Running, info.ID)
	assert.NotEqual(t, int16(5), info.Frame)
}

func TestAnimTickPosesFakeCharacter(t *testing.T) {
	l := newTestLibrary(t)
	h := l.MarioCreate(0, 0, 0, 0, 0, 0, true)
	require.NotEqual(t, InvalidHandle, h)

	buf := NewGeometryBuffers(0)
	info := AnimInfo{ID: anim.Walking, Accel: 0x10000}
	l.MarioAnimTick(h, mario.FlagCapOnHead|mario.FlagNormalCap, info, [3]int16{0, 0x2000, 0}, buf)
	assert.Positive(t, buf.TrianglesUsed)

	got, rot, ok := l.MarioGetAnimInfo(h)
	require.True(t, ok)
	assert.Equal(t, anim.Walking, got.ID)
	assert.Equal(t, int16(0x2000), rot[1])

	// An id of -1 keeps the clip.
	l.MarioAnimTick(h, 0, AnimInfo{ID: -1, Accel: 0x10000}, [3]int16{}, nil)
	got, _, _ = l.MarioGetAnimInfo(h)
	assert.Equal(t, anim.Walking, got.ID)
}

func TestAttackIsAQuery(t *testing.T) {
	l := newTestLibrary(t)
	l.StaticSurfacesLoad(square(1000, 0))
	h := l.MarioCreate(0, 500, 0, 0, 0, 0, false)
	require.NotEqual(t, InvalidHandle, h)
	l.MarioSetAction(h, uint32(mario.ActFreefall))
	l.MarioSetVelocity(h, 0, -20, 0)

	before, _ := l.MarioState(h)
	assert.True(t, l.MarioAttack(h, 0, 400, 0, 100), "falling onto something below is a stomp")
	after, _ := l.MarioState(h)
	assert.Equal(t, before, after)

	assert.False(t, l.MarioAttack(h, 15000, 0, 15000, 50), "far out of reach")
	assert.False(t, l.MarioAttack(h, 0, 0, 0, 100), "well below the feet")
	l.MarioBounceFromAttack(h, 15000, 400, 15000, 100)
	after, _ = l.MarioState(h)
	assert.Equal(t, before, after, "a miss does not bounce")

	l.MarioBounceFromAttack(h, 0, 400, 0, 100)
	after, _ = l.MarioState(h)
	assert.Positive(t, after.Velocity[1])
}

func TestAudioWrappers(t *testing.T) {
	opts := DefaultOptions()
	l := NewLibrary(opts)
	_, err := l.GlobalInit(nil, nil)
	require.NoError(t, err)
	defer l.GlobalTerminate()
	require.NotNil(t, l.Audio())
	assert.True(t, l.Audio().Running())

	args := audio.SequenceArgs(0, audio.SeqLevelGrass)
	l.PlayMusic(audio.SeqPlayerLevel, args, 0)
	assert.Equal(t, args, l.CurrentBackgroundMusic())
	l.StopBackgroundMusic(args)
	assert.Equal(t, audio.NoBackgroundMusic, l.CurrentBackgroundMusic())

	l.SeqPlayerPlaySequence(audio.SeqPlayerEnv, uint8(audio.SeqLevelWater), 0)
	seq, ok := l.Audio().PlayingSequence(audio.SeqPlayerEnv)
	assert.True(t, ok)
	assert.Equal(t, audio.SeqLevelWater, seq&0xFF)

	l.PlaySound(audio.SoundMarioYahoo, [3]float32{0, 0, 0})
	l.PlaySoundGlobal(audio.SoundMenuStarSound)

	engine := l.Audio()
	l.GlobalTerminate()
	assert.False(t, engine.Running())
}

func TestPackageLevelFunctions(t *testing.T) {
	opts := DefaultOptions()
	opts.Audio = false
	prev := Default()
	SetDefault(NewLibrary(opts))
	t.Cleanup(func() { SetDefault(prev) })

	_, err := GlobalInit(nil, nil)
	require.NoError(t, err)
	StaticSurfacesLoad(square(1000, 0))
	h := MarioCreate(0, 300, 0, 0, 0, 0, false)
	require.NotEqual(t, InvalidHandle, h)

	var s State
	MarioTick(h, Inputs{}, &s, nil)
	MarioTick(h, Inputs{}, &s, nil)
	assert.Less(t, s.Position[1], float32(300))

	MarioDelete(h)
	assert.Zero(t, Default().MarioCount())
	GlobalTerminate()
	assert.Equal(t, "1.0.0", Version())
}
