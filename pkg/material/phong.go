package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/brdf"
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Phong is a diffuse surface with a glossy highlight
type Phong struct {
	surface
}

// NewPhong creates a Phong material. ks, cs and exp shape the highlight.
func NewPhong(ka, kd float64, cd core.Vec3, ks float64, cs core.Vec3, exp float64) *Phong {
	return NewTexturedPhong(ka, kd, NewSolidColor(cd), ks, cs, exp)
}

// NewTexturedPhong creates a Phong material whose diffuse color varies over space
func NewTexturedPhong(ka, kd float64, color ColorSource, ks float64, cs core.Vec3, exp float64) *Phong {
	specular := brdf.NewGlossySpecular(ks, cs, exp)
	return &Phong{surface{ka: ka, kd: kd, color: color, specular: &specular}}
}

func (p *Phong) Shade(ctx *core.ShadeContext) core.Vec3 {
	return p.directLighting(ctx, ctx.FacingNormal())
}
