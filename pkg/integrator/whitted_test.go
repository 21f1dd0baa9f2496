package integrator

import (
	"math"
	"testing"

	"golang.org/x/xerrors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// hallOfMirrors reports a hit one unit ahead of every ray
type hallOfMirrors struct {
	material   core.Material
	background core.Vec3
	ambient    core.Light
}

func (s *hallOfMirrors) NearestHit(ray core.Ray) (*core.HitRecord, bool) {
	return &core.HitRecord{T: 1, Point: ray.At(1), Normal: ray.Direction.Negate(), Material: s.material}, true
}
func (s *hallOfMirrors) AnyHit(ray core.Ray, maxT float64) bool { return maxT > 1 }
func (s *hallOfMirrors) Lights() []core.Light                   { return nil }
func (s *hallOfMirrors) Ambient() core.Light                    { return s.ambient }
func (s *hallOfMirrors) Background() core.Vec3                  { return s.background }

// bouncer always reflects straight back and records the depth of every call
type bouncer struct {
	depths []int
}

func (b *bouncer) Shade(ctx *core.ShadeContext) core.Vec3 {
	b.depths = append(b.depths, ctx.Depth)
	return ctx.Trace(ctx.Spawn(ctx.Wo())).Add(core.NewVec3(1, 0, 0))
}

// emptyScene has nothing to hit
type emptyScene struct {
	background core.Vec3
}

func (s emptyScene) NearestHit(ray core.Ray) (*core.HitRecord, bool) { return nil, false }
func (s emptyScene) AnyHit(ray core.Ray, maxT float64) bool          { return false }
func (s emptyScene) Lights() []core.Light                            { return nil }
func (s emptyScene) Ambient() core.Light                             { return lights.NewAmbient(0, core.Vec3{}) }
func (s emptyScene) Background() core.Vec3                           { return s.background }

func TestNewWhitted_InvalidDepth(t *testing.T) {
	for _, depth := range []int{0, -3} {
		if _, err := NewWhitted(depth); !xerrors.Is(err, ErrInvalidDepth) {
			t.Errorf("Expected ErrInvalidDepth for %d, got %v", depth, err)
		}
	}
}

func TestWhitted_RecursionTerminates(t *testing.T) {
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	for _, maxDepth := range []int{1, 2, 5, 10} {
		tracer, err := NewWhitted(maxDepth)
		if err != nil {
			t.Fatal(err)
		}
		b := &bouncer{}
		L := tracer.Trace(&hallOfMirrors{material: b}, ray, 0, nil)

		// Depths 0..maxDepth are shaded, the call at maxDepth+1 returns black
		if len(b.depths) != maxDepth+1 {
			t.Errorf("Expected %d shade calls for max depth %d, got %d", maxDepth+1, maxDepth, len(b.depths))
		}
		for i, d := range b.depths {
			if d != i {
				t.Errorf("Expected call %d at depth %d, got %d", i, i, d)
			}
		}
		if L.X != float64(maxDepth+1) {
			t.Errorf("Expected radiance %d, got %v", maxDepth+1, L)
		}
	}
}

func TestWhitted_BeyondMaxDepth(t *testing.T) {
	tracer, _ := NewWhitted(3)
	b := &bouncer{}
	L, dist := tracer.TraceDistance(&hallOfMirrors{material: b}, core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), 4, nil)
	if L != (core.Vec3{}) || !math.IsInf(dist, 1) {
		t.Errorf("Expected black at +Inf, got %v at %f", L, dist)
	}
	if len(b.depths) != 0 {
		t.Errorf("Expected no shading, got %d calls", len(b.depths))
	}
}

func TestWhitted_MissReturnsBackground(t *testing.T) {
	tracer, _ := NewWhitted(5)
	bg := core.NewVec3(0.1, 0.2, 0.3)

	L, dist := tracer.TraceDistance(emptyScene{background: bg}, core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)), 0, nil)
	if L != bg {
		t.Errorf("Expected background %v, got %v", bg, L)
	}
	if !math.IsInf(dist, 1) {
		t.Errorf("Expected +Inf distance on a miss, got %f", dist)
	}
}

func TestWhitted_ReportsHitDistance(t *testing.T) {
	tracer, _ := NewWhitted(5)
	scene := &hallOfMirrors{material: material.NewEmissive(1, core.NewVec3(1, 1, 1))}

	L, dist := tracer.TraceDistance(scene, core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)), 0, nil)
	if dist != 1 {
		t.Errorf("Expected distance 1, got %f", dist)
	}
	if L != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected emitted white, got %v", L)
	}
}

func TestWhitted_MissingMaterialPanics(t *testing.T) {
	tracer, _ := NewWhitted(5)
	scene := &hallOfMirrors{}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !xerrors.Is(err, core.ErrMissingMaterial) {
			t.Errorf("Expected a panic with ErrMissingMaterial, got %v", r)
		}
	}()
	tracer.Trace(scene, core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)), 0, nil)
}

func TestWhitted_MirrorShowsHiddenSide(t *testing.T) {
	// A point light sits between a matte sphere and a mirror, lighting only
	// the side of the sphere that faces the mirror
	white := core.NewVec3(1, 1, 1)
	matte := material.NewMatte(0, 1, white)
	mirror := material.NewReflective(material.NewPhong(0, 0, white, 0, white, 1), 1, white)

	sc := &shapeScene{
		shapes: []core.Shape{
			geometry.NewSphere(core.NewVec3(0, 0, 0), 1, matte),
			geometry.NewBox(core.NewVec3(-5, -5, -10), core.NewVec3(5, 5, -9), mirror),
		},
		lights:  []core.Light{lights.NewPoint(math.Pi, white, core.NewVec3(0, 0, -3))},
		ambient: lights.NewAmbient(0, white),
	}
	tracer, _ := NewWhitted(2)

	front := tracer.Trace(sc, core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 0, nil)
	inMirror := tracer.Trace(sc, core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, -1)), 0, nil)

	if math.Abs(front.X) > 1e-9 {
		t.Errorf("Expected the unlit front of the sphere to be black, got %v", front)
	}
	if math.Abs(inMirror.X-1) > 1e-9 {
		t.Errorf("Expected the mirror to show the lit back of the sphere, got %v", inMirror)
	}
}

// shapeScene intersects a handful of shapes linearly
type shapeScene struct {
	shapes  []core.Shape
	lights  []core.Light
	ambient core.Light
}

func (s *shapeScene) NearestHit(ray core.Ray) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	tMax := math.Inf(1)
	for _, shape := range s.shapes {
		if hit, ok := shape.Hit(ray, core.HitEpsilon, tMax); ok {
			closest, tMax = hit, hit.T
		}
	}
	return closest, closest != nil
}

func (s *shapeScene) AnyHit(ray core.Ray, maxT float64) bool {
	for _, shape := range s.shapes {
		if shape.HitAny(ray, core.HitEpsilon, maxT) {
			return true
		}
	}
	return false
}

func (s *shapeScene) Lights() []core.Light  { return s.lights }
func (s *shapeScene) Ambient() core.Light   { return s.ambient }
func (s *shapeScene) Background() core.Vec3 { return core.Vec3{} }
