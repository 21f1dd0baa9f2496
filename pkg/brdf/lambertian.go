// Package brdf holds the reflectance and transmittance functions shared by materials.
// Every function works on unit vectors: n is the shading normal, wo points back
// along the incoming ray and wi/wt point away from the surface.
package brdf

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Lambertian is a perfectly diffuse reflector
type Lambertian struct {
	Kd float64   // Diffuse coefficient
	Cd core.Vec3 // Diffuse color
}

// NewLambertian creates a Lambertian BRDF
func NewLambertian(kd float64, cd core.Vec3) Lambertian {
	return Lambertian{Kd: kd, Cd: cd}
}

// F returns kd*cd/π for every pair of directions
func (l Lambertian) F(n, wo, wi core.Vec3) core.Vec3 {
	return l.Cd.Multiply(l.Kd / math.Pi)
}

// Rho returns the hemispherical reflectance kd*cd
func (l Lambertian) Rho() core.Vec3 {
	return l.Cd.Multiply(l.Kd)
}

// SampleF draws a cosine-distributed direction around n
func (l Lambertian) SampleF(n, wo core.Vec3, sampler core.Sampler) (wi core.Vec3, f core.Vec3, pdf float64) {
	sp := sampler.NextHemisphere(1)
	wi = core.NewONB(n).Local(sp).Normalize()
	pdf = n.Dot(wi) / math.Pi
	return wi, l.F(n, wo, wi), pdf
}
