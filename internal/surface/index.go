package surface

import m "github.com/Faultbox/libsm64-go/pkg/math"

// object is a loaded surface object slot.
type object struct {
	gen       uint16
	live      bool
	transform Transform
	seqBase   uint64
	defs      []Def
	surfaces  []*Surface
}

// Index holds the static level geometry and every loaded surface object.
// It is not safe for concurrent use; mutate it only between ticks.
type Index struct {
	static  *grid
	dynamic *grid

	staticSurfaces []*Surface
	objects        []*object
	free           []int
	seq            uint64
}

// NewIndex creates an empty index with the given grid cell size.
func NewIndex(cellSize int) *Index {
	return &Index{
		static:  newGrid(cellSize),
		dynamic: newGrid(cellSize),
	}
}

// LoadStatic replaces the static surface set. Degenerate triangles are
// skipped; the number of surfaces kept is returned.
func (idx *Index) LoadStatic(defs []Def) int {
	idx.UnloadStaticAll()
	for _, def := range defs {
		s := newSurface(def, def.Vertices)
		if s == nil {
			continue
		}
		idx.seq++
		s.seq = idx.seq
		idx.static.insert(s)
		idx.staticSurfaces = append(idx.staticSurfaces, s)
	}
	return len(idx.staticSurfaces)
}

// UnloadStaticAll removes all static surfaces.
func (idx *Index) UnloadStaticAll() {
	idx.static.clear()
	idx.staticSurfaces = nil
}

// StaticCount returns the number of loaded static surfaces.
func (idx *Index) StaticCount() int { return len(idx.staticSurfaces) }

// LoadObject registers a surface object and returns its handle.
func (idx *Index) LoadObject(def ObjectDef) ObjectHandle {
	var slot int
	if n := len(idx.free); n > 0 {
		slot = idx.free[n-1]
		idx.free = idx.free[:n-1]
	} else {
		slot = len(idx.objects)
		idx.objects = append(idx.objects, &object{})
	}

	obj := idx.objects[slot]
	obj.gen++
	if obj.gen == 0 {
		obj.gen = 1
	}
	obj.live = true
	obj.transform = def.Transform
	obj.defs = append(obj.defs[:0], def.Surfaces...)
	// Moves rebuild triangles but keep their insertion order.
	obj.seqBase = idx.seq
	idx.seq += uint64(len(def.Surfaces))

	h := makeHandle(slot, obj.gen)
	idx.buildObject(h, obj)
	return h
}

// MoveObject updates an object's transform and recomputes its world-space
// triangles. It reports false for unknown handles.
func (idx *Index) MoveObject(h ObjectHandle, t Transform) bool {
	obj := idx.resolve(h)
	if obj == nil {
		return false
	}
	for _, s := range obj.surfaces {
		idx.dynamic.remove(s)
	}
	obj.transform = t
	idx.buildObject(h, obj)
	return true
}

// UnloadObject removes an object. The returned handle is the one that was
// freed so callers can drop references that compare equal to it.
func (idx *Index) UnloadObject(h ObjectHandle) (ObjectHandle, bool) {
	obj := idx.resolve(h)
	if obj == nil {
		return NoObject, false
	}
	for _, s := range obj.surfaces {
		idx.dynamic.remove(s)
		s.Object = NoObject
	}
	obj.surfaces = nil
	obj.defs = obj.defs[:0]
	obj.live = false
	idx.free = append(idx.free, h.Slot())
	return h, true
}

// ObjectTransform returns the current transform of a live object.
func (idx *Index) ObjectTransform(h ObjectHandle) (Transform, bool) {
	obj := idx.resolve(h)
	if obj == nil {
		return Transform{}, false
	}
	return obj.transform, true
}

// Valid reports whether h refers to a live object.
func (idx *Index) Valid(h ObjectHandle) bool {
	return idx.resolve(h) != nil
}

// ObjectCount returns the number of live surface objects.
func (idx *Index) ObjectCount() int {
	return len(idx.objects) - len(idx.free)
}

// Clear drops every static surface and object. Outstanding handles go stale.
func (idx *Index) Clear() {
	idx.UnloadStaticAll()
	for slot, obj := range idx.objects {
		if obj.live {
			idx.UnloadObject(makeHandle(slot, obj.gen))
		}
	}
	idx.dynamic.clear()
}

func (idx *Index) resolve(h ObjectHandle) *object {
	if h == NoObject {
		return nil
	}
	slot := h.Slot()
	if slot >= len(idx.objects) {
		return nil
	}
	obj := idx.objects[slot]
	if !obj.live || obj.gen != h.Gen() {
		return nil
	}
	return obj
}

func (idx *Index) buildObject(h ObjectHandle, obj *object) {
	mtx := obj.transform.Matrix()
	obj.surfaces = obj.surfaces[:0]
	for i, def := range obj.defs {
		var verts [3][3]int32
		for i, v := range def.Vertices {
			w := mtx.TransformVec3(m.Vec3{X: float32(v[0]), Y: float32(v[1]), Z: float32(v[2])})
			verts[i] = [3]int32{int32(w.X), int32(w.Y), int32(w.Z)}
		}
		s := newSurface(def, verts)
		if s == nil {
			continue
		}
		s.seq = obj.seqBase + uint64(i) + 1
		s.Object = h
		idx.dynamic.insert(s)
		obj.surfaces = append(obj.surfaces, s)
	}
}
