package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Disc is a flat circle facing along Normal
type Disc struct {
	Center   core.Vec3
	Normal   core.Vec3
	Radius   float64
	Material core.Material
}

// NewDisc creates a disc. The normal need not be normalized.
func NewDisc(center, normal core.Vec3, radius float64, material core.Material) *Disc {
	return &Disc{
		Center:   center,
		Normal:   normal.Normalize(),
		Radius:   radius,
		Material: material,
	}
}

func (d *Disc) intersect(ray core.Ray, tMin, tMax float64) (float64, bool) {
	denom := d.Normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-12 {
		return 0, false
	}
	t := d.Normal.Dot(d.Center.Subtract(ray.Origin)) / denom
	if t <= tMin || t >= tMax {
		return 0, false
	}
	if ray.At(t).Subtract(d.Center).LengthSquared() > d.Radius*d.Radius {
		return 0, false
	}
	return t, true
}

func (d *Disc) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	t, ok := d.intersect(ray, tMin, tMax)
	if !ok {
		return nil, false
	}
	return &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   d.Normal,
		Material: d.Material,
	}, true
}

func (d *Disc) HitAny(ray core.Ray, tMin, tMax float64) bool {
	_, ok := d.intersect(ray, tMin, tMax)
	return ok
}

// BoundingBox returns tight bounds: along each axis the disc reaches
// radius*sqrt(1 - n²) from its center.
func (d *Disc) BoundingBox() core.AABB {
	extent := core.NewVec3(
		d.Radius*math.Sqrt(math.Max(0, 1-d.Normal.X*d.Normal.X)),
		d.Radius*math.Sqrt(math.Max(0, 1-d.Normal.Y*d.Normal.Y)),
		d.Radius*math.Sqrt(math.Max(0, 1-d.Normal.Z*d.Normal.Z)),
	)
	return core.NewAABB(d.Center.Subtract(extent), d.Center.Add(extent))
}
