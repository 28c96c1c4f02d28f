package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/Faultbox/libsm64-go/pkg/math"
)

// square returns two floor triangles covering [-half, half] at height y.
func square(half, y int32, typ int16) []Def {
	return []Def{
		{Type: typ, Vertices: [3][3]int32{{-half, y, -half}, {-half, y, half}, {half, y, half}}},
		{Type: typ, Vertices: [3][3]int32{{-half, y, -half}, {half, y, half}, {half, y, -half}}},
	}
}

func TestNewSurfaceClassification(t *testing.T) {
	floor := newSurface(Def{}, [3][3]int32{{0, 0, 0}, {0, 0, 100}, {100, 0, 0}})
	require.NotNil(t, floor)
	assert.Equal(t, ClassFloor, floor.Class)
	assert.Equal(t, float32(1), floor.Normal.Y)

	ceil := newSurface(Def{}, [3][3]int32{{0, 50, 0}, {100, 50, 0}, {0, 50, 100}})
	require.NotNil(t, ceil)
	assert.Equal(t, ClassCeiling, ceil.Class)

	wall := newSurface(Def{}, [3][3]int32{{0, 0, 0}, {0, 100, 0}, {0, 0, 100}})
	require.NotNil(t, wall)
	assert.Equal(t, ClassWall, wall.Class)
	assert.True(t, wall.XProjection)
	assert.Equal(t, int32(-5), wall.LowerY)
	assert.Equal(t, int32(105), wall.UpperY)

	degenerate := newSurface(Def{}, [3][3]int32{{0, 0, 0}, {10, 0, 0}, {20, 0, 0}})
	assert.Nil(t, degenerate)
}

func TestFindFloorExactHeight(t *testing.T) {
	for _, h := range []int32{0, 37, -1200, 4095} {
		idx := NewIndex(DefaultCellSize)
		idx.LoadStatic(square(500, h, TypeDefault))

		for _, dy := range []float32{0.5, 1, 78, 1000} {
			height, floor := idx.FindFloor(12.25, float32(h)+dy, -317.5)
			require.NotNil(t, floor)
			assert.Equal(t, float32(h), height, "query %v above %d", dy, h)
		}
	}
}

func TestFindFloorAtQueryHeight(t *testing.T) {
	idx := NewIndex(DefaultCellSize)
	idx.LoadStatic(square(500, 100, TypeDefault))

	height, floor := idx.FindFloor(12.25, 100, -317.5)
	require.NotNil(t, floor, "a floor level with the query point counts")
	assert.Equal(t, float32(100), height)

	_, floor = idx.FindFloor(12.25, 99.99, -317.5)
	assert.Nil(t, floor)
}

func TestFindFloorNoneBelow(t *testing.T) {
	idx := NewIndex(DefaultCellSize)
	idx.LoadStatic(square(500, 100, TypeDefault))

	height, floor := idx.FindFloor(0, 50, 0)
	assert.Nil(t, floor)
	assert.Equal(t, FloorLowerLimit, height)

	height, floor = idx.FindFloor(2000, 500, 0)
	assert.Nil(t, floor)
	assert.Equal(t, FloorLowerLimit, height)
}

func TestFindFloorPicksHighest(t *testing.T) {
	idx := NewIndex(DefaultCellSize)
	defs := append(square(500, 0, TypeDefault), square(200, 300, TypeSlippery)...)
	idx.LoadStatic(defs)

	height, floor := idx.FindFloor(0, 1000, 0)
	require.NotNil(t, floor)
	assert.Equal(t, float32(300), height)
	assert.Equal(t, TypeSlippery, floor.Type)

	height, _ = idx.FindFloor(0, 200, 0)
	assert.Equal(t, float32(0), height)

	height, _ = idx.FindFloor(400, 1000, 0)
	assert.Equal(t, float32(0), height)
}

func TestFindFloorSkipsIntangible(t *testing.T) {
	idx := NewIndex(DefaultCellSize)
	idx.LoadStatic(append(square(500, 0, TypeDefault), square(500, 100, TypeIntangible)...))

	height, _ := idx.FindFloor(0, 500, 0)
	assert.Equal(t, float32(0), height)
}

func TestFindFloorAcrossCells(t *testing.T) {
	idx := NewIndex(256)
	idx.LoadStatic(square(2000, 10, TypeDefault))

	for _, x := range []float32{-1999, -700, 0, 257, 1999} {
		height, floor := idx.FindFloor(x, 100, x/2)
		require.NotNil(t, floor, "x=%v", x)
		assert.Equal(t, float32(10), height)
	}
}

func TestTieBreakStaticBeatsDynamic(t *testing.T) {
	idx := NewIndex(DefaultCellSize)
	idx.LoadStatic(square(500, 0, TypeDefault))
	h := idx.LoadObject(ObjectDef{Surfaces: square(500, 0, TypeSlippery)})
	require.True(t, idx.Valid(h))

	_, floor := idx.FindFloor(0, 10, 0)
	require.NotNil(t, floor)
	assert.False(t, floor.Dynamic())
	assert.Equal(t, TypeDefault, floor.Type)

	// A strictly higher platform still wins.
	idx.MoveObject(h, Transform{Position: m.Vec3{Y: 1}})
	height, floor := idx.FindFloor(0, 10, 0)
	assert.Equal(t, float32(1), height)
	assert.True(t, floor.Dynamic())
}

func TestTieBreakMostRecentWithinKind(t *testing.T) {
	idx := NewIndex(DefaultCellSize)
	idx.LoadStatic(append(square(500, 0, TypeSlippery), square(500, 0, TypeNotSlippery)...))

	_, floor := idx.FindFloor(0, 10, 0)
	require.NotNil(t, floor)
	assert.Equal(t, TypeNotSlippery, floor.Type)

	dyn := NewIndex(DefaultCellSize)
	first := dyn.LoadObject(ObjectDef{Surfaces: square(500, 0, TypeSlippery)})
	second := dyn.LoadObject(ObjectDef{Surfaces: square(500, 0, TypeIce)})

	_, floor = dyn.FindFloor(0, 10, 0)
	require.NotNil(t, floor)
	assert.Equal(t, second, floor.Object)

	// Moving the older object in place does not change insertion order.
	dyn.MoveObject(first, Transform{})
	_, floor = dyn.FindFloor(0, 10, 0)
	assert.Equal(t, second, floor.Object)
}

func TestFindCeiling(t *testing.T) {
	idx := NewIndex(DefaultCellSize)
	idx.LoadStatic([]Def{
		{Vertices: [3][3]int32{{-500, 400, -500}, {500, 400, 500}, {-500, 400, 500}}},
		{Vertices: [3][3]int32{{-500, 400, -500}, {500, 400, -500}, {500, 400, 500}}},
	})

	height, ceil := idx.FindCeiling(0, 100, 0)
	require.NotNil(t, ceil)
	assert.Equal(t, ClassCeiling, ceil.Class)
	assert.Equal(t, float32(400), height)

	height, ceil = idx.FindCeiling(0, 500, 0)
	assert.Nil(t, ceil)
	assert.Equal(t, CeilUpperLimit, height)
}

func TestFindWallCollisions(t *testing.T) {
	idx := NewIndex(DefaultCellSize)
	// Wall in the plane x = 100 facing -X.
	idx.LoadStatic([]Def{
		{Vertices: [3][3]int32{{100, 0, -500}, {100, 0, 500}, {100, 500, 0}}},
	})

	col := WallCollision{X: 80, Y: 0, Z: 0, OffsetY: 60, Radius: 50}
	n := idx.FindWallCollisions(&col)
	require.Equal(t, 1, n)
	assert.Equal(t, 1, col.NumWalls)
	assert.InDelta(t, 50, col.X, 0.001)
	assert.InDelta(t, 0, col.Z, 0.001)

	far := WallCollision{X: 0, Y: 0, Z: 0, OffsetY: 60, Radius: 50}
	assert.Equal(t, 0, idx.FindWallCollisions(&far))
	assert.Equal(t, float32(0), far.X)

	above := WallCollision{X: 80, Y: 600, Z: 0, OffsetY: 60, Radius: 50}
	assert.Equal(t, 0, idx.FindWallCollisions(&above))
}

func TestObjectLifecycle(t *testing.T) {
	idx := NewIndex(DefaultCellSize)
	h := idx.LoadObject(ObjectDef{
		Transform: Transform{Position: m.Vec3{X: 1000, Y: 200}},
		Surfaces:  square(100, 0, TypeDefault),
	})
	assert.Equal(t, 1, idx.ObjectCount())

	height, floor := idx.FindFloor(1000, 500, 0)
	require.NotNil(t, floor)
	assert.Equal(t, float32(200), height)
	assert.Equal(t, h, floor.Object)

	require.True(t, idx.MoveObject(h, Transform{Position: m.Vec3{X: 1000, Y: 250}}))
	height, _ = idx.FindFloor(1000, 500, 0)
	assert.Equal(t, float32(250), height)

	tr, ok := idx.ObjectTransform(h)
	require.True(t, ok)
	assert.Equal(t, float32(250), tr.Position.Y)

	freed, ok := idx.UnloadObject(h)
	require.True(t, ok)
	assert.Equal(t, h, freed)
	assert.False(t, idx.Valid(h))
	assert.Equal(t, 0, idx.ObjectCount())

	_, floor = idx.FindFloor(1000, 500, 0)
	assert.Nil(t, floor)

	assert.False(t, idx.MoveObject(h, Transform{}))
	_, ok = idx.UnloadObject(h)
	assert.False(t, ok)
}

func TestStaleHandleAfterSlotReuse(t *testing.T) {
	idx := NewIndex(DefaultCellSize)
	a := idx.LoadObject(ObjectDef{Surfaces: square(100, 0, TypeDefault)})
	idx.UnloadObject(a)
	b := idx.LoadObject(ObjectDef{Surfaces: square(100, 50, TypeDefault)})

	assert.Equal(t, a.Slot(), b.Slot())
	assert.NotEqual(t, a, b)
	assert.False(t, idx.Valid(a))
	assert.True(t, idx.Valid(b))
	assert.False(t, idx.MoveObject(a, Transform{}))
}

func TestRotatedObject(t *testing.T) {
	idx := NewIndex(DefaultCellSize)
	// A ramp rotated a quarter turn about Y keeps its height at the centre.
	h := idx.LoadObject(ObjectDef{
		Transform: TransformFromEuler([3]float32{0, 100, 0}, [3]float32{0, 90, 0}),
		Surfaces:  square(200, 0, TypeDefault),
	})
	require.True(t, idx.Valid(h))

	height, floor := idx.FindFloor(0, 500, 0)
	require.NotNil(t, floor)
	assert.InDelta(t, 100, height, 0.5)
}

func TestTransformFromEuler(t *testing.T) {
	tr := TransformFromEuler([3]float32{1, 2, 3}, [3]float32{90, -90, 180})
	assert.Equal(t, int16(0x4000), tr.Rotation.X)
	assert.Equal(t, int16(-0x4000), tr.Rotation.Y)
	assert.Equal(t, int16(-0x8000), tr.Rotation.Z)
	assert.Equal(t, m.Vec3{X: 1, Y: 2, Z: 3}, tr.Position)
}

func TestClear(t *testing.T) {
	idx := NewIndex(DefaultCellSize)
	idx.LoadStatic(square(500, 0, TypeDefault))
	h := idx.LoadObject(ObjectDef{Surfaces: square(100, 10, TypeDefault)})

	idx.Clear()
	assert.Equal(t, 0, idx.StaticCount())
	assert.False(t, idx.Valid(h))
	_, floor := idx.FindFloor(12.25, 100, -317.5)
	assert.Nil(t, floor)
}
