// Package material implements the Whitted shading models. Every material
// computes the radiance leaving its surface toward the viewer, spawning
// reflected and transmitted rays through the shade context as needed.
package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/brdf"
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// surface holds the diffuse and optional glossy reflectance shared by the opaque models
type surface struct {
	ka, kd   float64
	color    ColorSource
	specular *brdf.GlossySpecular
}

// directLighting sums ambient light and the unoccluded contribution of every
// scene light at the hit point, using n as the shading normal.
func (s surface) directLighting(ctx *core.ShadeContext, n core.Vec3) core.Vec3 {
	cd := s.color.Evaluate(ctx.Point)
	ambient := brdf.NewLambertian(s.ka, cd)
	diffuse := brdf.NewLambertian(s.kd, cd)
	wo := ctx.Wo()

	L := ctx.Scene.Ambient().Radiance(ctx).MultiplyVec(ambient.Rho())
	for _, light := range ctx.Scene.Lights() {
		wi := light.Direction(ctx)
		ndotwi := n.Dot(wi)
		if ndotwi <= 0 {
			continue
		}
		if light.CastsShadows() && light.InShadow(ctx, ctx.Spawn(wi)) {
			continue
		}
		f := diffuse.F(n, wo, wi)
		if s.specular != nil {
			f = f.Add(s.specular.F(n, wo, wi))
		}
		L = L.Add(f.MultiplyVec(light.Radiance(ctx)).Multiply(ndotwi))
	}
	return L
}
