package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Directional is light arriving from a fixed direction, as from a distant source
type Directional struct {
	Ls      float64
	Color   core.Vec3
	Towards core.Vec3 // Unit direction pointing at the light
	Shadows bool
}

// NewDirectional creates a directional light shining from towards
func NewDirectional(ls float64, color, towards core.Vec3) *Directional {
	return &Directional{Ls: ls, Color: color, Towards: towards.Normalize(), Shadows: true}
}

func (d *Directional) Direction(ctx *core.ShadeContext) core.Vec3 {
	return d.Towards
}

func (d *Directional) Radiance(ctx *core.ShadeContext) core.Vec3 {
	return d.Color.Multiply(d.Ls)
}

func (d *Directional) CastsShadows() bool {
	return d.Shadows
}

// InShadow reports whether anything lies along the shadow ray
func (d *Directional) InShadow(ctx *core.ShadeContext, shadowRay core.Ray) bool {
	return ctx.Scene.AnyHit(shadowRay, math.Inf(1))
}
