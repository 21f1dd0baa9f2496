package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Point is an isotropic point light without distance falloff
type Point struct {
	Ls       float64
	Color    core.Vec3
	Position core.Vec3
	Shadows  bool
}

// NewPoint creates a point light at position
func NewPoint(ls float64, color, position core.Vec3) *Point {
	return &Point{Ls: ls, Color: color, Position: position, Shadows: true}
}

func (p *Point) Direction(ctx *core.ShadeContext) core.Vec3 {
	return p.Position.Subtract(ctx.Point).Normalize()
}

func (p *Point) Radiance(ctx *core.ShadeContext) core.Vec3 {
	return p.Color.Multiply(p.Ls)
}

func (p *Point) CastsShadows() bool {
	return p.Shadows
}

// InShadow reports whether an occluder lies between the shadow ray origin and the light
func (p *Point) InShadow(ctx *core.ShadeContext, shadowRay core.Ray) bool {
	return ctx.Scene.AnyHit(shadowRay, p.Position.Subtract(shadowRay.Origin).Length())
}
