package scene

import (
	"math/rand/v2"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

const numRandomTriangles = 1000

// NewTrianglesScene scatters small random triangles through a cube. The
// layout is fixed by a constant seed.
func NewTrianglesScene() (*Definition, error) {
	s := New()
	rng := rand.New(rand.NewPCG(7, numRandomTriangles))

	palette := make([]core.Material, 8)
	for i := range palette {
		color := core.NewVec3(0.2+0.8*rng.Float64(), 0.2+0.8*rng.Float64(), 0.2+0.8*rng.Float64())
		palette[i] = material.NewPhong(0.2, 0.7, color, 0.3, white, 20)
	}

	randomPoint := func(center core.Vec3, spread float64) core.Vec3 {
		return center.Add(core.NewVec3(
			spread*(2*rng.Float64()-1),
			spread*(2*rng.Float64()-1),
			spread*(2*rng.Float64()-1),
		))
	}
	for i := 0; i < numRandomTriangles; i++ {
		center := randomPoint(core.Vec3{}, 20)
		s.AddShape(geometry.NewTriangle(
			randomPoint(center, 4),
			randomPoint(center, 4),
			randomPoint(center, 4),
			palette[rng.IntN(len(palette))],
		))
	}

	s.AddLight(
		lights.NewDirectional(2, white, core.NewVec3(1, 1, 1)),
		lights.NewDirectional(0.8, core.NewVec3(0.6, 0.7, 1), core.NewVec3(-1, 0.3, 0.5)),
	)
	s.SetAmbient(lights.NewAmbient(0.2, white))
	s.SetBackground(core.NewVec3(0.02, 0.02, 0.05))

	return &Definition{
		Scene: s,
		Camera: renderer.CameraConfig{
			Eye:       core.NewVec3(30, 25, 80),
			LookAt:    core.Vec3{},
			Up:        core.NewVec3(0, 1, 0),
			Distance:  100,
			Zoom:      1,
			ViewWidth: 70,
			Exposure:  1,
		},
	}, nil
}
