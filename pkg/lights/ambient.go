// Package lights provides the light sources used for direct illumination.
package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Ambient is constant, direction-less illumination
type Ambient struct {
	Ls    float64   // Radiance scale
	Color core.Vec3 // Light color
}

// NewAmbient creates an ambient light
func NewAmbient(ls float64, color core.Vec3) *Ambient {
	return &Ambient{Ls: ls, Color: color}
}

// Direction is undefined for ambient light
func (a *Ambient) Direction(ctx *core.ShadeContext) core.Vec3 {
	return core.Vec3{}
}

// Radiance returns ls*color
func (a *Ambient) Radiance(ctx *core.ShadeContext) core.Vec3 {
	return a.Color.Multiply(a.Ls)
}

// CastsShadows is always false for ambient light
func (a *Ambient) CastsShadows() bool {
	return false
}

// InShadow is always false for ambient light
func (a *Ambient) InShadow(ctx *core.ShadeContext, shadowRay core.Ray) bool {
	return false
}

// AmbientOccluder is ambient light attenuated by the geometry around the hit
// point. Each evaluation casts one hemisphere-sampled ray.
type AmbientOccluder struct {
	Ls        float64
	Color     core.Vec3
	MinAmount core.Vec3 // Fraction of the radiance that remains when fully occluded
}

// NewAmbientOccluder creates an ambient occluder
func NewAmbientOccluder(ls float64, color, minAmount core.Vec3) *AmbientOccluder {
	return &AmbientOccluder{Ls: ls, Color: color, MinAmount: minAmount}
}

// Direction draws a cosine-weighted direction around the facing normal
func (o *AmbientOccluder) Direction(ctx *core.ShadeContext) core.Vec3 {
	sp := ctx.Sampler.NextHemisphere(1)
	return core.NewONB(ctx.FacingNormal()).Local(sp).Normalize()
}

// Radiance returns the full ambient radiance when the sampled direction is
// open and MinAmount of it when something blocks it
func (o *AmbientOccluder) Radiance(ctx *core.ShadeContext) core.Vec3 {
	radiance := o.Color.Multiply(o.Ls)
	if o.InShadow(ctx, ctx.Spawn(o.Direction(ctx))) {
		return radiance.MultiplyVec(o.MinAmount)
	}
	return radiance
}

// CastsShadows reports true; occlusion is resolved inside Radiance
func (o *AmbientOccluder) CastsShadows() bool {
	return true
}

// InShadow reports whether anything blocks the ray at any distance
func (o *AmbientOccluder) InShadow(ctx *core.ShadeContext, shadowRay core.Ray) bool {
	return ctx.Scene.AnyHit(shadowRay, math.Inf(1))
}
