package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// HitEpsilon offsets the start of secondary and shadow rays from the surface
// they leave, so a ray never re-hits the point it was spawned from.
const HitEpsilon = 1e-4

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T        float64  // Ray parameter at the hit point
	Point    Vec3     // World-space hit point
	Normal   Vec3     // Outward geometric normal (unit length)
	Material Material // Material of the surface that was hit
}

// Shape is a bounded primitive that can be intersected by rays
type Shape interface {
	// Hit returns the nearest intersection with t in (tMin, tMax)
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
	// HitAny reports whether any intersection exists with t in (tMin, tMax)
	HitAny(ray Ray, tMin, tMax float64) bool
	BoundingBox() AABB
}

// Material turns an intersection into outgoing radiance along -ray.Direction
type Material interface {
	Shade(ctx *ShadeContext) Vec3
}

// Light is a source of direct illumination
type Light interface {
	// Direction returns the unit direction from the hit point towards the light
	Direction(ctx *ShadeContext) Vec3
	// Radiance returns the incident radiance arriving at the hit point
	Radiance(ctx *ShadeContext) Vec3
	// CastsShadows reports whether shadow rays should be traced for this light
	CastsShadows() bool
	// InShadow reports whether shadowRay is blocked before reaching the light
	InShadow(ctx *ShadeContext, shadowRay Ray) bool
}

// Sampler produces a stream of sample points for one pixel or ray
type Sampler interface {
	// NextSquare returns the next sample on the unit square
	NextSquare() Vec2
	// NextHemisphere returns the next sample mapped to a cosine-power
	// hemisphere around +Z with the given exponent
	NextHemisphere(exp float64) Vec3
}

// Scene is the read-only view of a built scene used during rendering
type Scene interface {
	NearestHit(ray Ray) (*HitRecord, bool)
	// AnyHit reports whether ray is blocked in (HitEpsilon, maxT)
	AnyHit(ray Ray, maxT float64) bool
	Lights() []Light
	Ambient() Light
	Background() Vec3
}

// Tracer computes the radiance carried along a ray
type Tracer interface {
	Trace(scene Scene, ray Ray, depth int, sampler Sampler) Vec3
	// TraceDistance also returns the distance to the nearest hit, or +Inf on a miss
	TraceDistance(scene Scene, ray Ray, depth int, sampler Sampler) (Vec3, float64)
}

// Camera generates primary rays for image pixels
type Camera interface {
	// RayFor returns the primary ray through pixel (col, row), offset inside
	// the pixel by sample; row 0 is the top of the image
	RayFor(col, row int, sample Vec2) Ray
	// Exposure scales the averaged pixel radiance
	Exposure() float64
}
