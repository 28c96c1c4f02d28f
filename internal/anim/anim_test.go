package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/Faultbox/libsm64-go/pkg/math"
)

// rampClip returns a clip whose root X channel equals the frame number.
func rampClip(frames int16, flags int16) *Clip {
	values := make([]int16, frames)
	for i := range values {
		values[i] = int16(i)
	}
	return &Clip{
		Flags:     flags,
		LoopStart: 0,
		LoopEnd:   frames,
		Index:     []uint16{uint16(frames), 0},
		Values:    values,
	}
}

func advance(info *Info, n int) {
	for i := 0; i < n; i++ {
		info.Advance(info.Timer + 1)
	}
}

func TestSetStartsBeforeFirstFrame(t *testing.T) {
	lib := NewLibrary(map[int16]*Clip{Walking: rampClip(10, 0)})
	var info Info
	info.Reset()

	assert.Equal(t, int16(-1), info.Set(lib, Walking))
	assert.Equal(t, Walking, info.ID)
	assert.Equal(t, DefaultYTrans, info.YTrans)

	info.Advance(1)
	assert.Equal(t, int16(0), info.Frame)

	// Setting the playing clip again keeps the cursor.
	assert.Equal(t, int16(0), info.Set(lib, Walking))
}

func TestAdvanceOncePerCounter(t *testing.T) {
	lib := NewLibrary(map[int16]*Clip{Walking: rampClip(10, 0)})
	var info Info
	info.Reset()
	info.Set(lib, Walking)

	info.Advance(5)
	info.Advance(5)
	assert.Equal(t, int16(0), info.Frame)
	info.Advance(6)
	assert.Equal(t, int16(1), info.Frame)
}

func TestAdvanceLoopsAndClamps(t *testing.T) {
	lib := NewLibrary(map[int16]*Clip{
		Walking:     rampClip(4, 0),
		GeneralLand: rampClip(4, FlagNoLoop),
	})

	var loop Info
	loop.Reset()
	loop.Set(lib, Walking)
	advance(&loop, 5)
	assert.Equal(t, int16(0), loop.Frame, "looping clip wraps to loop start")

	var once Info
	once.Reset()
	once.Set(lib, GeneralLand)
	advance(&once, 4)
	assert.True(t, once.IsAtEnd())
	advance(&once, 10)
	assert.Equal(t, int16(3), once.Frame, "no-loop clip holds its last frame")
	assert.True(t, once.IsPastEnd())
}

func TestSetWithAccel(t *testing.T) {
	lib := NewLibrary(map[int16]*Clip{Walking: rampClip(20, 0)})
	var info Info
	info.Reset()

	info.SetWithAccel(lib, Walking, 0x8000)
	advance(&info, 4)
	assert.Equal(t, int16(1), info.Frame, "half speed covers two frames in four ticks")

	info.SetWithAccel(lib, Walking, 0x20000)
	advance(&info, 2)
	assert.Equal(t, int16(5), info.Frame)
}

func TestSetFrame(t *testing.T) {
	lib := NewLibrary(map[int16]*Clip{Walking: rampClip(20, 0)})
	var info Info
	info.Reset()
	info.Set(lib, Walking)

	info.SetFrame(12)
	assert.True(t, info.IsPastFrame(12))
	info.Advance(info.Timer + 1)
	assert.Equal(t, int16(12), info.Frame)
}

func TestMissingClipFallsBack(t *testing.T) {
	idle := rampClip(8, 0)
	lib := NewLibrary(map[int16]*Clip{IdleHeadLeft: idle})

	var info Info
	info.Reset()
	info.Fallback = FallbackIdle
	info.Set(lib, Breakdance)
	assert.Equal(t, Breakdance, info.ID)
	assert.Same(t, idle, info.Clip)

	info.Reset()
	assert.Equal(t, FallbackIdle, info.Fallback, "reset keeps the fallback group")
	info.Fallback = FallbackSwim
	info.Set(lib, Breakdance)
	assert.Nil(t, info.Clip)
	assert.True(t, info.IsAtEnd(), "a missing clip always reads as finished")
}

func TestClipSample(t *testing.T) {
	c := &Clip{
		YTransDivisor: 189,
		Index:         []uint16{1, 0, 2, 1, 1, 3},
		Values:        []int16{7, 100, 200, 9},
	}
	p := c.Sample(1, 189)
	assert.Equal(t, m.Vec3{X: 7, Y: 200, Z: 9}, p.Root)

	half := c.Sample(0, 94)
	assert.InDelta(t, 100*94.0/189.0, half.Root.Y, 0.001)

	assert.Zero(t, c.Value(40, 0), "missing channels read as zero")
	assert.Equal(t, int16(200), c.Value(1, 50), "frames past the channel clamp")
}

func TestClipName(t *testing.T) {
	assert.Equal(t, "walking", ClipName(Walking))
	assert.Equal(t, "unknown", ClipName(-1))
	assert.Equal(t, "unknown", ClipName(NumClips))
}

func TestEmitTriangleCounts(t *testing.T) {
	e := NewEvaluator(nil, DefaultColors)
	buf := NewMeshBuffer(0)
	require.Equal(t, MaxTriangles, buf.Capacity())

	const body = 18 * TrianglesPerPart

	e.Emit(buf, m.Vec3{}, m.Vec3s{}, Pose{}, ModelState{}, 0)
	assert.Equal(t, body, buf.TrianglesUsed)

	e.Emit(buf, m.Vec3{}, m.Vec3s{}, Pose{}, ModelState{CapOnHead: true}, 0)
	assert.Equal(t, body+TrianglesPerPart, buf.TrianglesUsed)

	e.Emit(buf, m.Vec3{}, m.Vec3s{}, Pose{}, ModelState{CapOnHead: true, WingCap: true}, 0)
	assert.Equal(t, body+3*TrianglesPerPart, buf.TrianglesUsed)

	e.Emit(buf, m.Vec3{}, m.Vec3s{}, Pose{}, ModelState{Invisible: true}, 0)
	assert.Zero(t, buf.TrianglesUsed)
	assert.Zero(t, buf.Dropped)
}

func TestEmitOverflowCountsDropped(t *testing.T) {
	e := NewEvaluator(nil, DefaultColors)
	buf := NewMeshBuffer(10)

	e.Emit(buf, m.Vec3{}, m.Vec3s{}, Pose{}, ModelState{}, 0)
	assert.Equal(t, 10, buf.TrianglesUsed)
	assert.Equal(t, 18*TrianglesPerPart-10, buf.Dropped)
}

func TestEmitVanishAndMetal(t *testing.T) {
	e := NewEvaluator(nil, DefaultColors)
	buf := NewMeshBuffer(0)

	e.Emit(buf, m.Vec3{}, m.Vec3s{}, Pose{}, ModelState{Vanish: true}, 0)
	assert.Equal(t, float32(0.5), buf.Alpha)

	e.Emit(buf, m.Vec3{}, m.Vec3s{}, Pose{}, ModelState{Metal: true}, 0)
	assert.Equal(t, float32(1), buf.Alpha)
	metalU := (float32(TileMetal) + quadUV[0][0]) / float32(NumTiles)
	assert.Equal(t, metalU, buf.UV[0])
}

func TestEmitTranslatesModel(t *testing.T) {
	e := NewEvaluator(nil, DefaultColors)
	a := NewMeshBuffer(0)
	b := NewMeshBuffer(0)

	e.Emit(a, m.Vec3{}, m.Vec3s{}, Pose{}, ModelState{}, 0)
	e.Emit(b, m.Vec3{X: 100, Y: 50}, m.Vec3s{}, Pose{}, ModelState{}, 0)
	for i := 0; i < a.TrianglesUsed*9; i += 3 {
		assert.InDelta(t, a.Position[i]+100, b.Position[i], 0.001)
		assert.InDelta(t, a.Position[i+1]+50, b.Position[i+1], 0.001)
	}
}

func TestEyeTileBlinks(t *testing.T) {
	assert.Equal(t, TileEyesDead, ModelState{EyeState: EyesDead}.eyeTile(0))
	assert.Equal(t, TileEyesHalf, ModelState{EyeState: EyesHalfClosed}.eyeTile(0))
	assert.Equal(t, TileEyesHalf, ModelState{EyeState: EyesBlink}.eyeTile(0))
	assert.Equal(t, TileEyesOpen, ModelState{EyeState: EyesBlink}.eyeTile(40))
}
