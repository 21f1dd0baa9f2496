package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Emissive is a surface that glows on the side its normal points to
type Emissive struct {
	Ls float64
	Ce core.Vec3
}

// NewEmissive creates an emissive material
func NewEmissive(ls float64, ce core.Vec3) *Emissive {
	return &Emissive{Ls: ls, Ce: ce}
}

// Shade returns ce*ls when seen from the front and black from behind
func (e *Emissive) Shade(ctx *core.ShadeContext) core.Vec3 {
	if ctx.Normal.Dot(ctx.Ray.Direction) < 0 {
		return e.Ce.Multiply(e.Ls)
	}
	return core.Vec3{}
}
