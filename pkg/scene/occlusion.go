package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewOcclusionScene has no direct lights at all. Shading comes entirely
// from an ambient occluder, which darkens creases and contact points.
func NewOcclusionScene() (*Definition, error) {
	s := New()

	matte := material.NewMatte(1, 0, core.NewVec3(0.9, 0.9, 0.9))
	tinted := material.NewMatte(1, 0, core.NewVec3(0.95, 0.8, 0.6))

	s.AddShape(
		geometry.NewBox(core.NewVec3(-100, -1, -100), core.NewVec3(100, 0, 100), matte),
		geometry.NewSphere(core.NewVec3(-10, 8, 0), 8, tinted),
		geometry.NewAxisAlignedBox(core.NewVec3(12, 6, -4), core.NewVec3(6, 6, 6), matte),
		geometry.NewTriangle(core.NewVec3(-30, 0, -20), core.NewVec3(30, 0, -20), core.NewVec3(0, 30, -25), tinted),
		geometry.NewDisc(core.NewVec3(28, 1, 18), core.NewVec3(0, 1, 0), 6, tinted),
		geometry.NewQuad(core.NewVec3(-40, 0, 10), core.NewVec3(0, 0, 20), core.NewVec3(0, 14, 0), matte),
	)
	s.SetAmbient(lights.NewAmbientOccluder(1, white, core.Vec3{}))
	s.SetBackground(core.NewVec3(0.8, 0.85, 0.95))

	return &Definition{
		Scene: s,
		Camera: renderer.CameraConfig{
			Eye:       core.NewVec3(0, 30, 90),
			LookAt:    core.NewVec3(0, 6, 0),
			Up:        core.NewVec3(0, 1, 0),
			Distance:  100,
			Zoom:      1,
			ViewWidth: 90,
			Exposure:  1,
		},
	}, nil
}
