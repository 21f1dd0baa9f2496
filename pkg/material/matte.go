package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Matte is a purely diffuse surface
type Matte struct {
	surface
}

// NewMatte creates a matte material with ambient and diffuse coefficients ka, kd
func NewMatte(ka, kd float64, cd core.Vec3) *Matte {
	return NewTexturedMatte(ka, kd, NewSolidColor(cd))
}

// NewTexturedMatte creates a matte material whose color varies over space
func NewTexturedMatte(ka, kd float64, color ColorSource) *Matte {
	return &Matte{surface{ka: ka, kd: kd, color: color}}
}

func (m *Matte) Shade(ctx *core.ShadeContext) core.Vec3 {
	return m.directLighting(ctx, ctx.FacingNormal())
}
