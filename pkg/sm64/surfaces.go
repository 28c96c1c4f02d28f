package sm64

import (
	"go.uber.org/zap"

	"github.com/Faultbox/libsm64-go/internal/logger"
	"github.com/Faultbox/libsm64-go/internal/surface"
)

func (t ObjectTransform) internal() surface.Transform {
	return surface.TransformFromEuler(t.Position, t.EulerRotation)
}

// StaticSurfacesLoad replaces the static level geometry.
func (l *Library) StaticSurfacesLoad(surfaces []Surface) {
	if !l.ready("static_surfaces_load") {
		return
	}
	n := l.index.LoadStatic(surfaces)
	logger.Log.Debug("static surfaces loaded", zap.Int("count", n))
}

// SurfaceObjectCreate registers a movable group of surfaces and returns its
// id. Zero is returned when the library is not initialized.
func (l *Library) SurfaceObjectCreate(obj SurfaceObject) uint32 {
	if !l.ready("surface_object_create") {
		return uint32(surface.NoObject)
	}
	h := l.index.LoadObject(surface.ObjectDef{
		Transform: obj.Transform.internal(),
		Surfaces:  obj.Surfaces,
	})
	return uint32(h)
}

// SurfaceObjectMove moves a surface object. Characters standing on it are
// carried along on their next tick.
func (l *Library) SurfaceObjectMove(id uint32, t ObjectTransform) {
	if !l.ready("surface_object_move") {
		return
	}
	if !l.index.MoveObject(surface.ObjectHandle(id), t.internal()) {
		logger.Log.Warn("invalid surface object", zap.Uint32("id", id), zap.String("op", "surface_object_move"))
	}
}

// SurfaceObjectDelete removes a surface object. Every character standing on
// it loses its platform.
func (l *Library) SurfaceObjectDelete(id uint32) {
	if !l.ready("surface_object_delete") {
		return
	}
	gone, ok := l.index.UnloadObject(surface.ObjectHandle(id))
	if !ok {
		logger.Log.Warn("invalid surface object", zap.Uint32("id", id), zap.String("op", "surface_object_delete"))
		return
	}
	for _, inst := range l.instances {
		if inst != nil {
			inst.mario.ForgetPlatform(gone)
		}
	}
}

// SurfaceFindFloor returns the height and type of the highest floor at or
// below (x, y, z). ok is false when there is no floor there.
func (l *Library) SurfaceFindFloor(x, y, z float32) (height float32, floorType int16, ok bool) {
	if !l.ready("surface_find_floor") {
		return surface.FloorLowerLimit, 0, false
	}
	height, s := l.index.FindFloor(x, y, z)
	if s == nil {
		return height, 0, false
	}
	return height, s.Type, true
}
