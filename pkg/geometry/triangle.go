package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3     // The three vertices
	Material   core.Material // Material of the triangle
	normal     core.Vec3     // Cached geometric normal
	normals    *[3]core.Vec3 // Optional per-vertex normals for smooth shading
	bbox       core.AABB     // Cached bounding box
}

// NewTriangle creates a new flat-shaded triangle. The normal follows the
// counter-clockwise winding of v0, v1, v2.
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
		normal:   v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize(),
		bbox:     core.NewAABBFromPoints(v0, v1, v2),
	}
}

// NewSmoothTriangle creates a triangle whose normal is interpolated from per-vertex normals
func NewSmoothTriangle(v0, v1, v2, n0, n1, n2 core.Vec3, material core.Material) *Triangle {
	t := NewTriangle(v0, v1, v2, material)
	t.normals = &[3]core.Vec3{n0.Normalize(), n1.Normalize(), n2.Normalize()}
	return t
}

// intersectTriangle runs the Möller-Trumbore test and returns the ray parameter
// and the barycentric coordinates (u, v) of the hit.
func intersectTriangle(ray core.Ray, v0, v1, v2 core.Vec3, tMin, tMax float64) (float64, float64, float64, bool) {
	const epsilon = 1e-8

	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in the plane of the triangle
	if a > -epsilon && a < epsilon {
		return 0, 0, 0, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(v0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return 0, 0, 0, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return 0, 0, 0, false
	}

	t := f * edge2.Dot(q)
	if t <= tMin || t >= tMax {
		return 0, 0, 0, false
	}
	return t, u, v, true
}

// interpolateNormal blends three vertex normals with barycentric weights
func interpolateNormal(n0, n1, n2 core.Vec3, u, v float64) core.Vec3 {
	return n0.Multiply(1 - u - v).Add(n1.Multiply(u)).Add(n2.Multiply(v)).Normalize()
}

// Hit tests if a ray intersects with the triangle
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	tHit, u, v, ok := intersectTriangle(ray, t.V0, t.V1, t.V2, tMin, tMax)
	if !ok {
		return nil, false
	}

	normal := t.normal
	if t.normals != nil {
		normal = interpolateNormal(t.normals[0], t.normals[1], t.normals[2], u, v)
	}

	return &core.HitRecord{
		T:        tHit,
		Point:    ray.At(tHit),
		Normal:   normal,
		Material: t.Material,
	}, true
}

// HitAny reports whether the ray crosses the triangle inside (tMin, tMax)
func (t *Triangle) HitAny(ray core.Ray, tMin, tMax float64) bool {
	_, _, _, ok := intersectTriangle(ray, t.V0, t.V1, t.V2, tMin, tMax)
	return ok
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Normal returns the triangle's geometric normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}
