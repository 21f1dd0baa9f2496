package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewMaterialsScene lines up one sphere per material on a checkered floor,
// with a glowing sphere above them
func NewMaterialsScene() (*Definition, error) {
	s := New()

	checker := material.NewChecker(core.NewVec3(0.85, 0.85, 0.85), core.NewVec3(0.15, 0.15, 0.2), 8)
	s.AddShape(geometry.NewBox(core.NewVec3(-100, -1, -100), core.NewVec3(100, 0, 100), material.NewTexturedMatte(0.3, 0.7, checker)))

	// Clear surfaces keep only a tight highlight from their Phong base
	highlight := func() *material.Phong {
		return material.NewPhong(0, 0, core.Vec3{}, 0.3, white, 2000)
	}
	spheres := []core.Material{
		material.NewMatte(0.25, 0.75, core.NewVec3(0.9, 0.6, 0.2)),
		material.NewPhong(0.25, 0.6, core.NewVec3(0.2, 0.5, 0.9), 0.4, white, 50),
		material.NewReflective(material.NewPhong(0.1, 0.2, core.NewVec3(0.8, 0.8, 0.8), 0.2, white, 100), 0.75, white),
		material.NewGlossyReflector(material.NewPhong(0.1, 0.2, core.NewVec3(0.9, 0.8, 0.3), 0.2, white, 100), 0.7, core.NewVec3(1, 0.85, 0.5), 200),
		material.NewTransparent(highlight(), 0.1, 0.9, 1.5),
		material.NewDielectric(highlight(), 1.5, 1, core.NewVec3(0.65, 0.9, 0.75), white),
	}
	for i, mat := range spheres {
		x := -35 + 14*float64(i)
		s.AddShape(geometry.NewSphere(core.NewVec3(x, 6, 0), 6, mat))
	}
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 32, -5), 4, material.NewEmissive(2, core.NewVec3(1, 0.9, 0.7))))

	// Dim mirror wall behind the row
	wall := material.NewReflective(material.NewPhong(0.1, 0.1, core.NewVec3(0.3, 0.3, 0.35), 0, white, 1), 0.5, white)
	s.AddShape(geometry.NewQuad(core.NewVec3(-50, 0, -15), core.NewVec3(100, 0, 0), core.NewVec3(0, 30, 0), wall))

	s.AddLight(
		lights.NewDirectional(1.5, white, core.NewVec3(1, 2, 1.5)),
		lights.NewPoint(1.5, white, core.NewVec3(0, 40, 40)),
	)
	s.SetAmbient(lights.NewAmbient(0.2, white))
	s.SetBackground(core.NewVec3(0.4, 0.55, 0.8))

	return &Definition{
		Scene: s,
		Camera: renderer.CameraConfig{
			Eye:       core.NewVec3(0, 30, 120),
			LookAt:    core.NewVec3(0, 6, 0),
			Up:        core.NewVec3(0, 1, 0),
			Distance:  100,
			Zoom:      1,
			ViewWidth: 100,
			Exposure:  1,
		},
	}, nil
}
