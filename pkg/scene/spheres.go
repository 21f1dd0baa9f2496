package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

var white = core.NewVec3(1, 1, 1)

// NewSpheresScene creates two Phong spheres and a large triangle standing on a matte floor
func NewSpheresScene() (*Definition, error) {
	s := New()

	floor := material.NewMatte(0.25, 0.6, core.NewVec3(0.7, 0.7, 0.7))
	green := material.NewPhong(0.25, 0.6, core.NewVec3(0.2, 0.8, 0.3), 0.3, white, 30)
	red := material.NewPhong(0.25, 0.6, core.NewVec3(0.9, 0.2, 0.2), 0.5, white, 80)
	blue := material.NewPhong(0.25, 0.5, core.NewVec3(0.3, 0.4, 0.9), 0.1, white, 5)

	s.AddShape(
		geometry.NewBox(core.NewVec3(-100, -1, -100), core.NewVec3(100, 0, 100), floor),
		geometry.NewSphere(core.NewVec3(-12, 10, 0), 10, green),
		geometry.NewSphere(core.NewVec3(15, 8, -8), 8, red),
		geometry.NewTriangle(core.NewVec3(-35, 0, -30), core.NewVec3(35, 0, -30), core.NewVec3(0, 40, -45), blue),
	)
	s.AddLight(
		lights.NewPoint(3, white, core.NewVec3(-30, 50, 40)),
		lights.NewPoint(1.5, core.NewVec3(1, 0.4, 0.4), core.NewVec3(40, 30, 20)),
	)
	s.SetAmbient(lights.NewAmbient(0.15, core.NewVec3(0.6, 0.7, 1)))
	s.SetBackground(core.NewVec3(0.05, 0.07, 0.12))

	return &Definition{
		Scene: s,
		Camera: renderer.CameraConfig{
			Eye:       core.NewVec3(0, 25, 110),
			LookAt:    core.NewVec3(0, 10, 0),
			Up:        core.NewVec3(0, 1, 0),
			Distance:  100,
			Zoom:      1,
			ViewWidth: 80,
			Exposure:  1,
		},
	}, nil
}
