package brdf

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Fresnel returns the unpolarized Fresnel reflectance for light leaving along
// wo across an interface with the given inside and outside indices.
func Fresnel(n, wo core.Vec3, etaIn, etaOut float64) float64 {
	_, eta, cosI := orient(n, wo, etaIn/etaOut)
	temp := 1 - (1-cosI*cosI)/(eta*eta)
	if temp < 0 {
		return 1
	}
	cosT := math.Sqrt(temp)
	rParallel := (eta*cosI - cosT) / (eta*cosI + cosT)
	rPerpendicular := (cosI - eta*cosT) / (cosI + eta*cosT)
	return 0.5 * (rParallel*rParallel + rPerpendicular*rPerpendicular)
}

// FresnelReflector reflects the Fresnel share of the light
type FresnelReflector struct {
	EtaIn, EtaOut float64
	Cr            core.Vec3
}

// NewFresnelReflector creates a reflector for the given pair of indices
func NewFresnelReflector(etaIn, etaOut float64, cr core.Vec3) FresnelReflector {
	return FresnelReflector{EtaIn: etaIn, EtaOut: etaOut, Cr: cr}
}

// SampleF returns the mirror direction and cr*kr/|n·wi|
func (f FresnelReflector) SampleF(n, wo core.Vec3) (core.Vec3, core.Vec3) {
	wi := Reflect(n, wo)
	cos := math.Abs(n.Dot(wi))
	if cos == 0 {
		return wi, core.Vec3{}
	}
	kr := Fresnel(n, wo, f.EtaIn, f.EtaOut)
	return wi, f.Cr.Multiply(kr / cos)
}

// FresnelTransmitter transmits the share of the light the reflector does not take
type FresnelTransmitter struct {
	EtaIn, EtaOut float64
}

// NewFresnelTransmitter creates a transmitter for the given pair of indices
func NewFresnelTransmitter(etaIn, etaOut float64) FresnelTransmitter {
	return FresnelTransmitter{EtaIn: etaIn, EtaOut: etaOut}
}

// TIR reports total internal reflection for light leaving along wo
func (f FresnelTransmitter) TIR(n, wo core.Vec3) bool {
	return totalInternalReflection(n, wo, f.EtaIn/f.EtaOut)
}

// SampleF returns the refracted direction and kt/η²/|n·wt| with kt = 1 - kr
func (f FresnelTransmitter) SampleF(n, wo core.Vec3) (core.Vec3, core.Vec3) {
	wt, eta := refract(n, wo, f.EtaIn/f.EtaOut)
	cos := math.Abs(n.Dot(wt))
	if cos == 0 {
		return wt, core.Vec3{}
	}
	kt := 1 - Fresnel(n, wo, f.EtaIn, f.EtaOut)
	white := core.NewVec3(1, 1, 1)
	return wt, white.Multiply(kt / (eta * eta) / cos)
}
