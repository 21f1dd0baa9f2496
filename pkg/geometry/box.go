package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Box is an axis-aligned cuboid. Rotated boxes are built by wrapping a Box in an Instance.
type Box struct {
	Min, Max core.Vec3
	Material core.Material
}

// NewBox creates a box spanning the two opposite corners p0 and p1
func NewBox(p0, p1 core.Vec3, material core.Material) *Box {
	bounds := core.NewAABB(p0, p1)
	return &Box{Min: bounds.Min, Max: bounds.Max, Material: material}
}

// NewAxisAlignedBox creates a box from its center and half-extents
// (so a size of (1,1,1) creates a 2x2x2 box)
func NewAxisAlignedBox(center, size core.Vec3, material core.Material) *Box {
	return NewBox(center.Subtract(size), center.Add(size), material)
}

// slabs returns the entry and exit distances together with the axis and
// sign of the face crossed at each.
func (b *Box) slabs(ray core.Ray) (tIn, tOut float64, inFace, outFace int, ok bool) {
	tIn, tOut = math.Inf(-1), math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Axis(axis)
		dir := ray.Direction.Axis(axis)
		lo, hi := b.Min.Axis(axis), b.Max.Axis(axis)

		if dir == 0 {
			if origin < lo || origin > hi {
				return 0, 0, 0, 0, false
			}
			continue
		}

		inv := 1 / dir
		t0 := (lo - origin) * inv
		t1 := (hi - origin) * inv
		// Faces are encoded as axis*2 for the low side and axis*2+1 for the high side
		f0, f1 := axis*2, axis*2+1
		if t0 > t1 {
			t0, t1 = t1, t0
			f0, f1 = f1, f0
		}
		if t0 > tIn {
			tIn, inFace = t0, f0
		}
		if t1 < tOut {
			tOut, outFace = t1, f1
		}
	}
	return tIn, tOut, inFace, outFace, tIn < tOut
}

func faceNormal(face int) core.Vec3 {
	sign := -1.0
	if face%2 == 1 {
		sign = 1.0
	}
	return core.Vec3{}.WithAxis(face/2, sign)
}

// Hit tests if a ray intersects the box. A ray starting inside hits the exit face.
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	tIn, tOut, inFace, outFace, ok := b.slabs(ray)
	if !ok {
		return nil, false
	}

	t, face := tIn, inFace
	if t <= tMin {
		t, face = tOut, outFace
	}
	if t <= tMin || t >= tMax {
		return nil, false
	}

	return &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   faceNormal(face),
		Material: b.Material,
	}, true
}

// HitAny reports whether the ray crosses the box surface inside (tMin, tMax)
func (b *Box) HitAny(ray core.Ray, tMin, tMax float64) bool {
	tIn, tOut, _, _, ok := b.slabs(ray)
	if !ok {
		return false
	}
	return (tIn > tMin && tIn < tMax) || (tOut > tMin && tOut < tMax)
}

// BoundingBox returns the box itself
func (b *Box) BoundingBox() core.AABB {
	return core.AABB{Min: b.Min, Max: b.Max}
}
