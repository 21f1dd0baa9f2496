package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// roots returns the two ray parameters where the ray crosses the sphere, near first
func (s *Sphere) roots(ray core.Ray) (float64, float64, bool) {
	// Quadratic equation coefficients: at² + 2*halfB*t + c = 0
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 || a == 0 {
		return 0, 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	return (-halfB - sqrtD) / a, (-halfB + sqrtD) / a, true
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	near, far, ok := s.roots(ray)
	if !ok {
		return nil, false
	}

	// Try the closer intersection point first
	root := near
	if root <= tMin || root >= tMax {
		root = far
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	return &core.HitRecord{
		T:        root,
		Point:    point,
		Normal:   point.Subtract(s.Center).Multiply(1.0 / s.Radius),
		Material: s.Material,
	}, true
}

// HitAny reports whether either crossing lies inside (tMin, tMax)
func (s *Sphere) HitAny(ray core.Ray, tMin, tMax float64) bool {
	near, far, ok := s.roots(ray)
	if !ok {
		return false
	}
	return (near > tMin && near < tMax) || (far > tMin && far < tMax)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}
