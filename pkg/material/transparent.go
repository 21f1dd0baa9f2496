package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/brdf"
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Transparent is a Phong surface with constant reflection and transmission coefficients
type Transparent struct {
	*Phong
	mirror      brdf.PerfectSpecular
	transmitter brdf.PerfectTransmitter
}

// NewTransparent creates a transparent material. ior is the index of the
// inside relative to the outside, as defined by the geometric normal.
func NewTransparent(base *Phong, kr, kt, ior float64) *Transparent {
	return &Transparent{
		Phong:       base,
		mirror:      brdf.NewPerfectSpecular(kr, core.NewVec3(1, 1, 1)),
		transmitter: brdf.NewPerfectTransmitter(kt, ior),
	}
}

// Shade adds reflected and refracted light. Under total internal
// reflection all of the light is reflected.
func (t *Transparent) Shade(ctx *core.ShadeContext) core.Vec3 {
	L := t.Phong.Shade(ctx)
	n := ctx.Normal
	wo := ctx.Wo()

	wi, fr := t.mirror.SampleF(n, wo)
	reflected := ctx.Spawn(wi)
	if t.transmitter.TIR(n, wo) {
		return L.Add(ctx.Trace(reflected))
	}

	wt, ft := t.transmitter.SampleF(n, wo)
	L = L.Add(fr.MultiplyVec(ctx.Trace(reflected)).Multiply(math.Abs(n.Dot(wi))))
	return L.Add(ft.MultiplyVec(ctx.Trace(ctx.Spawn(wt))).Multiply(math.Abs(n.Dot(wt))))
}
