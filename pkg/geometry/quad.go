package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Quad is a parallelogram spanned by two edges from a corner. Its normal
// follows U × V.
type Quad struct {
	Corner   core.Vec3
	U, V     core.Vec3
	Material core.Material
	normal   core.Vec3
	d        float64   // Plane offset, normal·corner
	w        core.Vec3 // Scaled normal for edge coordinates
}

// NewQuad creates a quad from a corner and two edge vectors
func NewQuad(corner, u, v core.Vec3, material core.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()
	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Material: material,
		normal:   normal,
		d:        normal.Dot(corner),
		w:        n.Multiply(1 / n.Dot(n)),
	}
}

// intersect returns the ray parameter where the ray meets the quad
func (q *Quad) intersect(ray core.Ray, tMin, tMax float64) (float64, bool) {
	denom := ray.Direction.Dot(q.normal)
	if math.Abs(denom) < 1e-12 {
		return 0, false
	}
	t := (q.d - ray.Origin.Dot(q.normal)) / denom
	if t <= tMin || t >= tMax {
		return 0, false
	}

	// Edge coordinates of the hit point
	p := ray.At(t).Subtract(q.Corner)
	alpha := q.w.Dot(p.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(p))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return 0, false
	}
	return t, true
}

func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	t, ok := q.intersect(ray, tMin, tMax)
	if !ok {
		return nil, false
	}
	return &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   q.normal,
		Material: q.Material,
	}, true
}

func (q *Quad) HitAny(ray core.Ray, tMin, tMax float64) bool {
	_, ok := q.intersect(ray, tMin, tMax)
	return ok
}

// BoundingBox returns the bounds of the four corners
func (q *Quad) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	)
}

// Normal returns the unit normal
func (q *Quad) Normal() core.Vec3 {
	return q.normal
}
