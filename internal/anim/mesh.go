package anim

import (
	m "github.com/Faultbox/libsm64-go/pkg/math"
)

// MaxTriangles is the default capacity of a MeshBuffer.
const MaxTriangles = 1024

// UntexturedUV marks triangles that use vertex colour only.
const UntexturedUV = 1.0

// MeshBuffer receives the evaluated character mesh. Arrays are sized at
// construction; triangles past capacity are dropped and counted.
type MeshBuffer struct {
	Position []float32 // 9 per triangle
	Normal   []float32 // 9 per triangle
	Color    []float32 // 9 per triangle
	UV       []float32 // 6 per triangle

	TrianglesUsed int
	Dropped       int
	Alpha         float32
}

// NewMeshBuffer allocates a buffer holding up to capacity triangles.
func NewMeshBuffer(capacity int) *MeshBuffer {
	if capacity <= 0 {
		capacity = MaxTriangles
	}
	return &MeshBuffer{
		Position: make([]float32, capacity*9),
		Normal:   make([]float32, capacity*9),
		Color:    make([]float32, capacity*9),
		UV:       make([]float32, capacity*6),
	}
}

// Capacity returns the triangle capacity.
func (b *MeshBuffer) Capacity() int {
	n := len(b.Position) / 9
	if c := len(b.Normal) / 9; c < n {
		n = c
	}
	if c := len(b.Color) / 9; c < n {
		n = c
	}
	if c := len(b.UV) / 6; c < n {
		n = c
	}
	return n
}

func (b *MeshBuffer) reset() {
	b.TrianglesUsed = 0
	b.Dropped = 0
	b.Alpha = 1
}

func (b *MeshBuffer) push(p [3]m.Vec3, n m.Vec3, c [3]float32, uv [3][2]float32) {
	if b.TrianglesUsed >= b.Capacity() {
		b.Dropped++
		return
	}
	t := b.TrianglesUsed
	for v := 0; v < 3; v++ {
		i := t*9 + v*3
		b.Position[i], b.Position[i+1], b.Position[i+2] = p[v].X, p[v].Y, p[v].Z
		b.Normal[i], b.Normal[i+1], b.Normal[i+2] = n.X, n.Y, n.Z
		b.Color[i], b.Color[i+1], b.Color[i+2] = c[0], c[1], c[2]
		j := t*6 + v*2
		b.UV[j], b.UV[j+1] = uv[v][0], uv[v][1]
	}
	b.TrianglesUsed++
}

// Evaluator turns poses into triangles using one skeleton and palette.
type Evaluator struct {
	Skeleton *Skeleton
	Colors   ColorGroups
	light    m.Vec3
}

// NewEvaluator creates an evaluator. A nil skeleton selects the default rig.
func NewEvaluator(skel *Skeleton, colors ColorGroups) *Evaluator {
	if skel == nil {
		skel = DefaultSkeleton()
	}
	return &Evaluator{
		Skeleton: skel,
		Colors:   colors,
		light:    m.Vec3{X: 0.4, Y: 1, Z: 0.6}.Normalize(),
	}
}

// Emit writes the posed character into buf, replacing its previous content.
// pos and rot place the model in the world; counter drives eye blinking.
func (e *Evaluator) Emit(buf *MeshBuffer, pos m.Vec3, rot m.Vec3s, pose Pose, state ModelState, counter uint16) {
	buf.reset()
	if state.Vanish {
		buf.Alpha = 0.5
	}
	if state.Invisible {
		return
	}

	var world [NumJoints]m.Mat4
	base := m.RotateZXY(pos, rot)
	if sc := state.Scale; sc != (m.Vec3{}) {
		base = base.Mul(m.Scale(sc.X, sc.Y, sc.Z))
	}

	for j := 0; j < NumJoints; j++ {
		node := &e.Skeleton.Nodes[j]
		jointRot := pose.Joints[j]
		switch j {
		case JointHead:
			jointRot = addAngles(jointRot, state.HeadAngle)
		case JointTorso:
			jointRot = addAngles(jointRot, state.TorsoAngle)
		}

		offset := node.Offset
		if j == JointRoot {
			offset = offset.Add(pose.Root)
		}
		local := m.RotateXYZ(offset, jointRot)

		if node.Parent < 0 {
			world[j] = base.Mul(local)
		} else {
			world[j] = world[node.Parent].Mul(local)
		}

		for _, part := range node.Parts {
			if !e.partVisible(part, state) {
				continue
			}
			e.emitBox(buf, world[j], part, state, counter)
		}
	}
}

func (e *Evaluator) partVisible(p Part, s ModelState) bool {
	if p.CapOnly && !s.CapOnHead {
		return false
	}
	if p.Wing && !(s.CapOnHead && s.WingCap) {
		return false
	}
	return true
}

func addAngles(a m.Vec3s, b [3]int16) m.Vec3s {
	return m.Vec3s{X: a.X + b[0], Y: a.Y + b[1], Z: a.Z + b[2]}
}

// cube corners and faces. Faces are listed front, back, top, bottom,
// left, right; each is two triangles wound counter-clockwise from outside.
var (
	cubeCorners = [8]m.Vec3{
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
	}
	cubeFaces = [6]struct {
		quad   [4]int
		normal m.Vec3
		face   Face
	}{
		{[4]int{4, 5, 6, 7}, m.Vec3{Z: 1}, FaceFront},
		{[4]int{1, 0, 3, 2}, m.Vec3{Z: -1}, FaceBack},
		{[4]int{3, 7, 6, 2}, m.Vec3{Y: 1}, FaceTop},
		{[4]int{0, 1, 5, 4}, m.Vec3{Y: -1}, FaceNone},
		{[4]int{0, 4, 7, 3}, m.Vec3{X: -1}, FaceNone},
		{[4]int{5, 1, 2, 6}, m.Vec3{X: 1}, FaceNone},
	}
	quadUV = [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
)

// TrianglesPerPart is the triangle count of one box part.
const TrianglesPerPart = 12

func (e *Evaluator) emitBox(buf *MeshBuffer, mtx m.Mat4, p Part, s ModelState, counter uint16) {
	group := e.Colors[p.Group]
	if s.Metal {
		group = metalColor
	}

	for _, f := range cubeFaces {
		var corners [4]m.Vec3
		for i, ci := range f.quad {
			c := cubeCorners[ci]
			local := m.Vec3{
				X: p.Center.X + c.X*p.Half.X,
				Y: p.Center.Y + c.Y*p.Half.Y,
				Z: p.Center.Z + c.Z*p.Half.Z,
			}
			corners[i] = mtx.TransformVec3(local)
		}
		normal := mtx.TransformDirection(f.normal).Normalize()
		color := shade(group, normal, e.light)

		tile := -1
		switch {
		case s.Metal:
			tile = TileMetal
		case p.Tile >= 0 && f.face == p.Face && p.Face != FaceNone:
			tile = p.Tile
			if tile == TileEyesOpen {
				tile = s.eyeTile(counter)
			}
		}

		var uv [4][2]float32
		for i := range uv {
			if tile < 0 {
				uv[i] = [2]float32{UntexturedUV, UntexturedUV}
				continue
			}
			uv[i] = [2]float32{
				(float32(tile) + quadUV[i][0]) / float32(NumTiles),
				quadUV[i][1],
			}
		}

		buf.push([3]m.Vec3{corners[0], corners[1], corners[2]}, normal, color,
			[3][2]float32{uv[0], uv[1], uv[2]})
		buf.push([3]m.Vec3{corners[0], corners[2], corners[3]}, normal, color,
			[3][2]float32{uv[0], uv[2], uv[3]})
	}
}

// shade blends the shade and lit colours by a clamped Lambert term.
func shade(g ColorGroupDef, n, light m.Vec3) [3]float32 {
	k := m.Clampf(n.Dot(light), 0, 1)
	var out [3]float32
	for i := 0; i < 3; i++ {
		s := float32(g.Shade[i]) / 255
		c := float32(g.Color[i]) / 255
		out[i] = s + (c-s)*k
	}
	return out
}
