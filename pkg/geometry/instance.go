package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/xerrors"
)

// Instance places a shared shape in the scene through an affine transform.
// Rays are moved into object space, so one mesh can appear many times.
type Instance struct {
	object   core.Shape
	material core.Material // Overrides the object's material when non-nil
	forward  mgl64.Mat4
	inverse  mgl64.Mat4
	normal   mgl64.Mat4 // Inverse transpose, for normals
	bbox     core.AABB
}

// NewInstance wraps object with the object-to-world transform. A nil material
// keeps whatever material the object reports.
func NewInstance(object core.Shape, transform mgl64.Mat4, material core.Material) (*Instance, error) {
	if math.Abs(transform.Det()) < 1e-12 {
		return nil, xerrors.Errorf("determinant %g: %w", transform.Det(), ErrSingularTransform)
	}

	inverse := transform.Inv()
	in := &Instance{
		object:   object,
		material: material,
		forward:  transform,
		inverse:  inverse,
		normal:   inverse.Transpose(),
	}

	corners := object.BoundingBox().Corners()
	for i, c := range corners {
		corners[i] = transformPoint(transform, c)
	}
	in.bbox = core.NewAABBFromPoints(corners[:]...)
	return in, nil
}

func transformPoint(m mgl64.Mat4, p core.Vec3) core.Vec3 {
	v := m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return core.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

func transformVector(m mgl64.Mat4, d core.Vec3) core.Vec3 {
	v := m.Mul4x1(mgl64.Vec4{d.X, d.Y, d.Z, 0})
	return core.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// toObject maps a world ray into object space. The direction is left
// unnormalized so that t means the same thing in both spaces.
func (in *Instance) toObject(ray core.Ray) core.Ray {
	return core.Ray{
		Origin:    transformPoint(in.inverse, ray.Origin),
		Direction: transformVector(in.inverse, ray.Direction),
	}
}

// Hit intersects the object in object space and maps the record back to world space
func (in *Instance) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	rec, ok := in.object.Hit(in.toObject(ray), tMin, tMax)
	if !ok {
		return nil, false
	}

	rec.Point = ray.At(rec.T)
	rec.Normal = transformVector(in.normal, rec.Normal).Normalize()
	if in.material != nil {
		rec.Material = in.material
	}
	return rec, true
}

// HitAny reports whether the transformed object blocks the ray
func (in *Instance) HitAny(ray core.Ray, tMin, tMax float64) bool {
	return in.object.HitAny(in.toObject(ray), tMin, tMax)
}

// BoundingBox returns the world-space bounds of the transformed object
func (in *Instance) BoundingBox() core.AABB {
	return in.bbox
}

// Transform returns the object-to-world matrix
func (in *Instance) Transform() mgl64.Mat4 {
	return in.forward
}
