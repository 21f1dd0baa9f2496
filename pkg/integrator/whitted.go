// Package integrator turns rays into radiance.
package integrator

import (
	"math"

	"golang.org/x/xerrors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrInvalidDepth is returned for a maximum recursion depth below one
var ErrInvalidDepth = xerrors.New("integrator: max depth must be at least 1")

// Whitted is a recursive ray tracer. Materials compute direct lighting and
// call back into the tracer for reflected and transmitted rays; recursion
// stops once a ray's depth exceeds the configured maximum.
type Whitted struct {
	maxDepth int
}

// NewWhitted creates a tracer following secondary rays up to maxDepth levels deep
func NewWhitted(maxDepth int) (*Whitted, error) {
	if maxDepth < 1 {
		return nil, xerrors.Errorf("got %d: %w", maxDepth, ErrInvalidDepth)
	}
	return &Whitted{maxDepth: maxDepth}, nil
}

// MaxDepth returns the deepest recursion level that is still shaded
func (w *Whitted) MaxDepth() int {
	return w.maxDepth
}

// Trace returns the radiance arriving along ray. Primary rays have depth 0.
func (w *Whitted) Trace(scene core.Scene, ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	L, _ := w.TraceDistance(scene, ray, depth, sampler)
	return L
}

// TraceDistance is Trace that also reports the hit distance, +Inf when the
// ray escapes or is cut off by the depth limit.
func (w *Whitted) TraceDistance(scene core.Scene, ray core.Ray, depth int, sampler core.Sampler) (core.Vec3, float64) {
	if depth > w.maxDepth {
		return core.Vec3{}, math.Inf(1)
	}

	hit, ok := scene.NearestHit(ray)
	if !ok {
		return scene.Background(), math.Inf(1)
	}
	if hit.Material == nil {
		panic(xerrors.Errorf("hit at %v: %w", hit.Point, core.ErrMissingMaterial))
	}

	ctx := &core.ShadeContext{
		Ray:     ray,
		Point:   hit.Point,
		Normal:  hit.Normal,
		T:       hit.T,
		Depth:   depth,
		Scene:   scene,
		Tracer:  w,
		Sampler: sampler,
	}
	return hit.Material.Shade(ctx), hit.T
}
