package brdf

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PerfectSpecular is an ideal mirror
type PerfectSpecular struct {
	Kr float64   // Reflection coefficient
	Cr core.Vec3 // Reflection color
}

// NewPerfectSpecular creates a mirror BRDF
func NewPerfectSpecular(kr float64, cr core.Vec3) PerfectSpecular {
	return PerfectSpecular{Kr: kr, Cr: cr}
}

// SampleF returns the mirror direction and kr*cr/|n·wi|, so that multiplying
// by the cosine leaves exactly kr*cr.
func (p PerfectSpecular) SampleF(n, wo core.Vec3) (wi core.Vec3, f core.Vec3) {
	wi = Reflect(n, wo)
	cos := math.Abs(n.Dot(wi))
	if cos == 0 {
		return wi, core.Vec3{}
	}
	return wi, p.Cr.Multiply(p.Kr / cos)
}

// PerfectTransmitter is an ideal refracting interface with a constant transmission coefficient
type PerfectTransmitter struct {
	Kt  float64 // Transmission coefficient
	IOR float64 // Index of refraction of the inside relative to the outside
}

// NewPerfectTransmitter creates an ideal transmitter
func NewPerfectTransmitter(kt, ior float64) PerfectTransmitter {
	return PerfectTransmitter{Kt: kt, IOR: ior}
}

// TIR reports total internal reflection for light leaving along wo
func (p PerfectTransmitter) TIR(n, wo core.Vec3) bool {
	return totalInternalReflection(n, wo, p.IOR)
}

// SampleF returns the refracted direction and kt/η²/|n·wt|
func (p PerfectTransmitter) SampleF(n, wo core.Vec3) (wt core.Vec3, f core.Vec3) {
	wt, eta := refract(n, wo, p.IOR)
	cos := math.Abs(n.Dot(wt))
	if cos == 0 {
		return wt, core.Vec3{}
	}
	white := core.NewVec3(1, 1, 1)
	return wt, white.Multiply(p.Kt / (eta * eta) / cos)
}

// orient returns the normal on the side of wo together with the relative index
// of refraction for light crossing from that side.
func orient(n, wo core.Vec3, ior float64) (core.Vec3, float64, float64) {
	cosI := n.Dot(wo)
	if cosI < 0 {
		return n.Negate(), 1 / ior, -cosI
	}
	return n, ior, cosI
}

func totalInternalReflection(n, wo core.Vec3, ior float64) bool {
	_, eta, cosI := orient(n, wo, ior)
	return 1-(1-cosI*cosI)/(eta*eta) < 0
}

// refract bends wo through the interface. It must not be called under total internal reflection.
func refract(n, wo core.Vec3, ior float64) (core.Vec3, float64) {
	n, eta, cosI := orient(n, wo, ior)
	cosT := math.Sqrt(math.Max(0, 1-(1-cosI*cosI)/(eta*eta)))
	wt := wo.Multiply(-1 / eta).Subtract(n.Multiply(cosT - cosI/eta))
	return wt.Normalize(), eta
}
