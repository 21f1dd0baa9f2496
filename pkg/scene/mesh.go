package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/xerrors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewTorusMesh creates a smooth-shaded torus around the Y axis with ring
// radius major and tube radius minor
func NewTorusMesh(major, minor float64, rings, sides int, mat core.Material) (*geometry.TriangleMesh, error) {
	vertices := make([]core.Vec3, 0, rings*sides)
	normals := make([]core.Vec3, 0, rings*sides)
	for i := 0; i < rings; i++ {
		u := 2 * math.Pi * float64(i) / float64(rings)
		center := core.NewVec3(major*math.Cos(u), 0, major*math.Sin(u))
		for j := 0; j < sides; j++ {
			v := 2 * math.Pi * float64(j) / float64(sides)
			n := core.NewVec3(math.Cos(v)*math.Cos(u), math.Sin(v), math.Cos(v)*math.Sin(u))
			vertices = append(vertices, center.Add(n.Multiply(minor)))
			normals = append(normals, n)
		}
	}

	faces := make([]int, 0, rings*sides*6)
	for i := 0; i < rings; i++ {
		next := (i + 1) % rings
		for j := 0; j < sides; j++ {
			k := (j + 1) % sides
			a, b, c, d := i*sides+j, next*sides+j, next*sides+k, i*sides+k
			faces = append(faces, a, c, b, a, d, c)
		}
	}

	return geometry.NewTriangleMesh(vertices, faces, mat, &geometry.TriangleMeshOptions{Normals: normals})
}

// NewMeshScene shares one torus mesh between several instances, each with
// its own transform and material, next to a rotated box instance
func NewMeshScene() (*Definition, error) {
	s := New()

	torus, err := NewTorusMesh(6, 2, 48, 24, material.NewMatte(0.2, 0.8, core.NewVec3(0.7, 0.7, 0.7)))
	if err != nil {
		return nil, xerrors.Errorf("while creating torus: %w", err)
	}

	gold := material.NewPhong(0.2, 0.5, core.NewVec3(0.9, 0.7, 0.2), 0.6, core.NewVec3(1, 0.9, 0.6), 60)
	mirror := material.NewReflective(material.NewPhong(0.1, 0.1, white, 0.3, white, 200), 0.8, white)
	teal := material.NewGlossyReflector(material.NewPhong(0.2, 0.6, core.NewVec3(0.2, 0.7, 0.7), 0.2, white, 40), 0.4, white, 100)

	placements := []struct {
		transform mgl64.Mat4
		material  core.Material
	}{
		// Standing upright on the floor
		{mgl64.Translate3D(-20, 8, 0).Mul4(mgl64.HomogRotate3DX(math.Pi / 2)), gold},
		// Lying flat, enlarged
		{mgl64.Translate3D(0, 2, 5).Mul4(mgl64.Scale3D(1.4, 1, 1.4)), mirror},
		// Tilted and squashed
		{mgl64.Translate3D(20, 7, -5).Mul4(mgl64.HomogRotate3DZ(math.Pi / 5)).Mul4(mgl64.Scale3D(1, 0.6, 1)), teal},
		// Default material
		{mgl64.Translate3D(0, 14, -20).Mul4(mgl64.HomogRotate3DX(math.Pi / 3)), nil},
	}
	for _, p := range placements {
		instance, err := geometry.NewInstance(torus, p.transform, p.material)
		if err != nil {
			return nil, xerrors.Errorf("while placing torus: %w", err)
		}
		s.AddShape(instance)
	}

	block := geometry.NewAxisAlignedBox(core.Vec3{}, core.NewVec3(4, 4, 4), material.NewMatte(0.2, 0.7, core.NewVec3(0.8, 0.3, 0.3)))
	rotated, err := geometry.NewInstance(block, mgl64.Translate3D(-30, 4, -25).Mul4(mgl64.HomogRotate3DY(math.Pi/4)), nil)
	if err != nil {
		return nil, xerrors.Errorf("while placing box: %w", err)
	}
	s.AddShape(rotated)

	checker := material.NewChecker(core.NewVec3(0.8, 0.8, 0.8), core.NewVec3(0.3, 0.3, 0.3), 10)
	s.AddShape(geometry.NewBox(core.NewVec3(-100, -1, -100), core.NewVec3(100, 0, 100), material.NewTexturedMatte(0.3, 0.7, checker)))

	s.AddLight(
		lights.NewPoint(2, white, core.NewVec3(-20, 60, 50)),
		lights.NewDirectional(1, core.NewVec3(1, 0.95, 0.9), core.NewVec3(2, 3, 1)),
	)
	s.SetAmbient(lights.NewAmbient(0.25, white))
	s.SetBackground(core.NewVec3(0.5, 0.6, 0.75))

	return &Definition{
		Scene: s,
		Camera: renderer.CameraConfig{
			Eye:       core.NewVec3(0, 35, 100),
			LookAt:    core.NewVec3(0, 6, -5),
			Up:        core.NewVec3(0, 1, 0),
			Distance:  100,
			Zoom:      1,
			ViewWidth: 90,
			Exposure:  1,
		},
	}, nil
}
