package material

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// stubScene answers every occlusion query with blocked
type stubScene struct {
	lights  []core.Light
	ambient core.Light
	blocked bool
}

func (s *stubScene) NearestHit(ray core.Ray) (*core.HitRecord, bool) { return nil, false }
func (s *stubScene) AnyHit(ray core.Ray, maxT float64) bool          { return s.blocked }
func (s *stubScene) Lights() []core.Light                            { return s.lights }
func (s *stubScene) Ambient() core.Light                             { return s.ambient }
func (s *stubScene) Background() core.Vec3                           { return core.Vec3{} }

// stubTracer returns a constant radiance and distance and records what it was asked to trace
type stubTracer struct {
	radiance core.Vec3
	distance float64
	rays     []core.Ray
	depths   []int
}

func (t *stubTracer) Trace(scene core.Scene, ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	L, _ := t.TraceDistance(scene, ray, depth, sampler)
	return L
}

func (t *stubTracer) TraceDistance(scene core.Scene, ray core.Ray, depth int, sampler core.Sampler) (core.Vec3, float64) {
	t.rays = append(t.rays, ray)
	t.depths = append(t.depths, depth)
	return t.radiance, t.distance
}

type poleSampler struct{}

func (poleSampler) NextSquare() core.Vec2                { return core.Vec2{X: 0.5, Y: 0.5} }
func (poleSampler) NextHemisphere(exp float64) core.Vec3 { return core.NewVec3(0, 0, 1) }

var white = core.NewVec3(1, 1, 1)

// newContext builds a context for a ray travelling straight down onto the
// plane y=0 at the origin, whose normal points up.
func newContext(scene core.Scene, tracer core.Tracer) *core.ShadeContext {
	return &core.ShadeContext{
		Ray:     core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)),
		Point:   core.NewVec3(0, 0, 0),
		Normal:  core.NewVec3(0, 1, 0),
		T:       1,
		Depth:   2,
		Scene:   scene,
		Tracer:  tracer,
		Sampler: poleSampler{},
	}
}

func assertColor(t *testing.T, expected, got core.Vec3) {
	t.Helper()
	if got.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestMatte_DirectLighting(t *testing.T) {
	noAmbient := lights.NewAmbient(0, white)

	tests := []struct {
		name     string
		light    core.Light
		blocked  bool
		expected core.Vec3
	}{
		{"light along the normal", lights.NewDirectional(math.Pi, white, core.NewVec3(0, 1, 0)), false, white},
		{"light at 60 degrees", lights.NewDirectional(math.Pi, white, core.NewVec3(math.Sqrt(3), 1, 0)), false, white.Multiply(0.5)},
		{"light below the surface", lights.NewDirectional(math.Pi, white, core.NewVec3(0, -1, 0)), false, core.Vec3{}},
		{"occluded point light", lights.NewPoint(math.Pi, white, core.NewVec3(0, 5, 0)), true, core.Vec3{}},
		{"unoccluded point light", lights.NewPoint(math.Pi, white, core.NewVec3(0, 5, 0)), false, white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene := &stubScene{lights: []core.Light{tt.light}, ambient: noAmbient, blocked: tt.blocked}
			got := NewMatte(0, 1, white).Shade(newContext(scene, &stubTracer{}))
			assertColor(t, tt.expected, got)
		})
	}
}

func TestMatte_NonShadowingLightIgnoresOccluders(t *testing.T) {
	light := lights.NewPoint(math.Pi, white, core.NewVec3(0, 5, 0))
	light.Shadows = false
	scene := &stubScene{lights: []core.Light{light}, ambient: lights.NewAmbient(0, white), blocked: true}

	assertColor(t, white, NewMatte(0, 1, white).Shade(newContext(scene, &stubTracer{})))
}

func TestMatte_AmbientTerm(t *testing.T) {
	scene := &stubScene{ambient: lights.NewAmbient(0.5, white)}
	got := NewMatte(0.4, 1, core.NewVec3(1, 0.5, 0)).Shade(newContext(scene, &stubTracer{}))
	assertColor(t, core.NewVec3(0.2, 0.1, 0), got)
}

func TestMatte_LitFromBehind(t *testing.T) {
	// Ray arrives from below; the light is below too, so the facing side is lit
	scene := &stubScene{
		lights:  []core.Light{lights.NewDirectional(math.Pi, white, core.NewVec3(0, -1, 0))},
		ambient: lights.NewAmbient(0, white),
	}
	ctx := newContext(scene, &stubTracer{})
	ctx.Ray = core.NewRay(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0))

	assertColor(t, white, NewMatte(0, 1, white).Shade(ctx))
}

func TestPhong_Highlight(t *testing.T) {
	scene := &stubScene{
		lights:  []core.Light{lights.NewDirectional(1, white, core.NewVec3(0, 1, 0))},
		ambient: lights.NewAmbient(0, white),
	}
	// Viewer and light both along the normal sit at the lobe peak
	got := NewPhong(0, 0, white, 0.25, white, 50).Shade(newContext(scene, &stubTracer{}))
	assertColor(t, white.Multiply(0.25), got)
}

func TestReflective_TracesMirrorRay(t *testing.T) {
	tracer := &stubTracer{radiance: white}
	scene := &stubScene{ambient: lights.NewAmbient(0, white)}
	ctx := newContext(scene, tracer)
	ctx.Ray = core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))

	got := NewReflective(NewPhong(0, 0, white, 0, white, 1), 0.5, white).Shade(ctx)
	assertColor(t, white.Multiply(0.5), got)

	if len(tracer.rays) != 1 {
		t.Fatalf("Expected 1 traced ray, got %d", len(tracer.rays))
	}
	if d := tracer.rays[0].Direction.Subtract(core.NewVec3(1, 1, 0).Normalize()); d.Length() > 1e-9 {
		t.Errorf("Expected mirror direction (1,1,0)/√2, got %v", tracer.rays[0].Direction)
	}
	if tracer.depths[0] != 3 {
		t.Errorf("Expected depth 3, got %d", tracer.depths[0])
	}
}

func TestGlossyReflector_LobeCenter(t *testing.T) {
	tracer := &stubTracer{radiance: white}
	scene := &stubScene{ambient: lights.NewAmbient(0, white)}

	got := NewGlossyReflector(NewPhong(0, 0, white, 0, white, 1), 0.6, white, 100).Shade(newContext(scene, tracer))
	assertColor(t, white.Multiply(0.6), got)
}

func TestTransparent_EnergySplit(t *testing.T) {
	tracer := &stubTracer{radiance: white}
	scene := &stubScene{ambient: lights.NewAmbient(0, white)}

	got := NewTransparent(NewPhong(0, 0, white, 0, white, 1), 0.1, 0.9, 1.0).Shade(newContext(scene, tracer))
	assertColor(t, white, got)
	if len(tracer.rays) != 2 {
		t.Errorf("Expected reflected and transmitted rays, got %d", len(tracer.rays))
	}
}

func TestTransparent_TotalInternalReflection(t *testing.T) {
	tracer := &stubTracer{radiance: white}
	scene := &stubScene{ambient: lights.NewAmbient(0, white)}
	ctx := newContext(scene, tracer)
	// Steep ray from inside the glass toward the outward normal
	ctx.Ray = core.NewRay(core.NewVec3(-0.9, -math.Sqrt(1-0.81), 0), core.NewVec3(0.9, math.Sqrt(1-0.81), 0))

	got := NewTransparent(NewPhong(0, 0, white, 0, white, 1), 0.1, 0.9, 1.5).Shade(ctx)
	assertColor(t, white, got)
	if len(tracer.rays) != 1 {
		t.Errorf("Expected only the reflected ray, got %d", len(tracer.rays))
	}
}

func TestDielectric_FiltersByDistance(t *testing.T) {
	tracer := &stubTracer{radiance: white, distance: 2}
	scene := &stubScene{ambient: lights.NewAmbient(0, white)}
	cfIn := core.NewVec3(0.5, 0.5, 0.5)

	got := NewDielectric(NewPhong(0, 0, white, 0, white, 1), 1.5, 1.0, cfIn, white).Shade(newContext(scene, tracer))

	// Reflected 4% travels outside, transmitted 96%/η² travels inside
	expected := 0.04 + 0.96/2.25*0.25
	assertColor(t, white.Multiply(expected), got)
}

func TestEmissive(t *testing.T) {
	e := NewEmissive(2, core.NewVec3(1, 0.5, 0))
	ctx := newContext(&stubScene{}, &stubTracer{})
	assertColor(t, core.NewVec3(2, 1, 0), e.Shade(ctx))

	ctx.Ray = core.NewRay(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0))
	assertColor(t, core.Vec3{}, e.Shade(ctx))
}

func TestChecker(t *testing.T) {
	c := NewChecker(white, core.Vec3{}, 1)

	tests := []struct {
		point    core.Vec3
		expected core.Vec3
	}{
		{core.NewVec3(0.5, 0.5, 0.5), white},
		{core.NewVec3(1.5, 0.5, 0.5), core.Vec3{}},
		{core.NewVec3(-0.5, 0.5, 0.5), core.Vec3{}},
		{core.NewVec3(1.5, 1.5, 0.5), white},
		{core.NewVec3(0.5, 0, 0.5), white},
	}
	for _, tt := range tests {
		if got := c.Evaluate(tt.point); got != tt.expected {
			t.Errorf("Expected %v at %v, got %v", tt.expected, tt.point, got)
		}
	}
}
