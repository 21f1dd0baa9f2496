package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/brdf"
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Dielectric is a Fresnel-weighted transparent surface with Beer-style color
// filtering of the light traveling inside and outside of it.
type Dielectric struct {
	*Phong
	reflector   brdf.FresnelReflector
	transmitter brdf.FresnelTransmitter
	cfIn, cfOut core.Vec3
}

// NewDielectric creates a dielectric with indices etaIn, etaOut. Light
// traveling a distance d inside is scaled by cfIn^d; outside by cfOut^d.
func NewDielectric(base *Phong, etaIn, etaOut float64, cfIn, cfOut core.Vec3) *Dielectric {
	return &Dielectric{
		Phong:       base,
		reflector:   brdf.NewFresnelReflector(etaIn, etaOut, core.NewVec3(1, 1, 1)),
		transmitter: brdf.NewFresnelTransmitter(etaIn, etaOut),
		cfIn:        cfIn,
		cfOut:       cfOut,
	}
}

func (d *Dielectric) Shade(ctx *core.ShadeContext) core.Vec3 {
	L := d.Phong.Shade(ctx)
	n := ctx.Normal
	wo := ctx.Wo()

	wi, fr := d.reflector.SampleF(n, wo)
	reflected := ctx.Spawn(wi)
	ndotwi := n.Dot(wi)

	if d.transmitter.TIR(n, wo) {
		lr, dist := ctx.TraceDistance(reflected)
		return L.Add(d.filter(ndotwi < 0, dist).MultiplyVec(lr))
	}

	wt, ft := d.transmitter.SampleF(n, wo)
	ndotwt := n.Dot(wt)

	lr, rDist := ctx.TraceDistance(reflected)
	lr = fr.MultiplyVec(lr).Multiply(math.Abs(ndotwi))
	lt, tDist := ctx.TraceDistance(ctx.Spawn(wt))
	lt = ft.MultiplyVec(lt).Multiply(math.Abs(ndotwt))

	L = L.Add(d.filter(ndotwi < 0, rDist).MultiplyVec(lr))
	return L.Add(d.filter(ndotwt < 0, tDist).MultiplyVec(lt))
}

// filter returns the attenuation over dist for a ray traveling inside or outside
func (d *Dielectric) filter(inside bool, dist float64) core.Vec3 {
	if inside {
		return d.cfIn.Pow(dist)
	}
	return d.cfOut.Pow(dist)
}
