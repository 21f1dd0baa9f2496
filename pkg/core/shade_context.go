package core

// ShadeContext is the per-intersection record handed to a Material.
// A context belongs to exactly one traced ray and is never shared.
type ShadeContext struct {
	Ray     Ray
	Point   Vec3    // World-space hit point
	Normal  Vec3    // Outward geometric normal
	T       float64 // Hit distance along Ray
	Depth   int     // Recursion depth of Ray
	Scene   Scene
	Tracer  Tracer
	Sampler Sampler
}

// Wo returns the outgoing direction, pointing back along the incoming ray
func (ctx *ShadeContext) Wo() Vec3 {
	return ctx.Ray.Direction.Negate()
}

// FacingNormal returns the normal flipped, if needed, to the side the ray arrived from
func (ctx *ShadeContext) FacingNormal() Vec3 {
	if ctx.Normal.Dot(ctx.Ray.Direction) > 0 {
		return ctx.Normal.Negate()
	}
	return ctx.Normal
}

// Spawn returns a ray leaving the hit point in direction dir
func (ctx *ShadeContext) Spawn(dir Vec3) Ray {
	return NewRay(ctx.Point, dir)
}

// Trace follows a secondary ray one level deeper
func (ctx *ShadeContext) Trace(ray Ray) Vec3 {
	return ctx.Tracer.Trace(ctx.Scene, ray, ctx.Depth+1, ctx.Sampler)
}

// TraceDistance follows a secondary ray one level deeper and also returns its hit distance
func (ctx *ShadeContext) TraceDistance(ray Ray) (Vec3, float64) {
	return ctx.Tracer.TraceDistance(ctx.Scene, ray, ctx.Depth+1, ctx.Sampler)
}
