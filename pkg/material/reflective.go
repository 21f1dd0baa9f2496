package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/brdf"
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Reflective is a Phong surface with an added perfect mirror reflection
type Reflective struct {
	*Phong
	mirror brdf.PerfectSpecular
}

// NewReflective adds a mirror term with coefficient kr and color cr on top of base
func NewReflective(base *Phong, kr float64, cr core.Vec3) *Reflective {
	return &Reflective{Phong: base, mirror: brdf.NewPerfectSpecular(kr, cr)}
}

func (r *Reflective) Shade(ctx *core.ShadeContext) core.Vec3 {
	L := r.Phong.Shade(ctx)
	n := ctx.FacingNormal()
	wi, fr := r.mirror.SampleF(n, ctx.Wo())
	reflected := ctx.Trace(ctx.Spawn(wi))
	return L.Add(fr.MultiplyVec(reflected).Multiply(n.Dot(wi)))
}

// GlossyReflector is a Phong surface whose reflection is blurred by
// sampling a glossy lobe, one ray per evaluation.
type GlossyReflector struct {
	*Phong
	glossy brdf.GlossySpecular
}

// NewGlossyReflector adds a glossy reflection with coefficient kr, color cr and lobe exponent exp
func NewGlossyReflector(base *Phong, kr float64, cr core.Vec3, exp float64) *GlossyReflector {
	return &GlossyReflector{Phong: base, glossy: brdf.NewGlossySpecular(kr, cr, exp)}
}

func (g *GlossyReflector) Shade(ctx *core.ShadeContext) core.Vec3 {
	L := g.Phong.Shade(ctx)
	n := ctx.FacingNormal()
	wi, fr, pdf := g.glossy.SampleF(n, ctx.Wo(), ctx.Sampler)
	if pdf < 1e-9 {
		return L
	}
	reflected := ctx.Trace(ctx.Spawn(wi))
	return L.Add(fr.MultiplyVec(reflected).Multiply(n.Dot(wi) / pdf))
}
