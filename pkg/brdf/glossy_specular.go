package brdf

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// GlossySpecular is a Phong specular lobe around the mirror direction
type GlossySpecular struct {
	Ks  float64   // Specular coefficient
	Cs  core.Vec3 // Specular color
	Exp float64   // Phong exponent
}

// NewGlossySpecular creates a glossy specular BRDF
func NewGlossySpecular(ks float64, cs core.Vec3, exp float64) GlossySpecular {
	return GlossySpecular{Ks: ks, Cs: cs, Exp: exp}
}

// Reflect mirrors wo about n
func Reflect(n, wo core.Vec3) core.Vec3 {
	return wo.Negate().Add(n.Multiply(2 * n.Dot(wo)))
}

// F evaluates the lobe for light arriving from wi
func (g GlossySpecular) F(n, wo, wi core.Vec3) core.Vec3 {
	r := Reflect(n, wi)
	rDotWo := r.Dot(wo)
	if rDotWo <= 0 {
		return core.Vec3{}
	}
	return g.Cs.Multiply(g.Ks * math.Pow(rDotWo, g.Exp))
}

// Rho is zero; the lobe takes no part in ambient reflection
func (g GlossySpecular) Rho() core.Vec3 {
	return core.Vec3{}
}

// SampleF draws wi from the lobe and returns the BRDF value and pdf for it.
// Samples that fall below the surface are mirrored back above it.
func (g GlossySpecular) SampleF(n, wo core.Vec3, sampler core.Sampler) (wi core.Vec3, f core.Vec3, pdf float64) {
	r := Reflect(n, wo)
	basis := core.NewONB(r)

	sp := sampler.NextHemisphere(g.Exp)
	wi = basis.Local(sp)
	if n.Dot(wi) < 0 {
		wi = basis.Local(core.NewVec3(-sp.X, -sp.Y, sp.Z))
	}
	wi = wi.Normalize()

	phongLobe := math.Pow(math.Max(0, r.Dot(wi)), g.Exp)
	pdf = phongLobe * n.Dot(wi)
	return wi, g.Cs.Multiply(g.Ks * phongLobe), pdf
}
