// Package scene assembles shapes, lights and an ambient term into a
// renderable scene, and provides a registry of built-in scenes.
package scene

import (
	"math"

	"golang.org/x/xerrors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering. Add everything,
// call Build, then share the scene read-only between render workers.
type Scene struct {
	shapes     []core.Shape
	lights     []core.Light
	ambient    core.Light
	background core.Vec3
	index      *core.KDTree // nil until Build; queries fall back to a linear scan
}

// New creates an empty scene with white ambient light and a black background
func New() *Scene {
	return &Scene{ambient: lights.NewAmbient(1, core.NewVec3(1, 1, 1))}
}

// AddShape adds shapes to the scene. Shapes added after Build are not
// visible through the index until Build is called again.
func (s *Scene) AddShape(shapes ...core.Shape) {
	s.shapes = append(s.shapes, shapes...)
	s.index = nil
}

// AddLight adds lights used for direct illumination
func (s *Scene) AddLight(lights ...core.Light) {
	s.lights = append(s.lights, lights...)
}

// SetAmbient replaces the ambient light
func (s *Scene) SetAmbient(ambient core.Light) {
	s.ambient = ambient
}

// SetBackground sets the radiance returned for rays that escape the scene
func (s *Scene) SetBackground(color core.Vec3) {
	s.background = color
}

// Build creates the kd-tree over the scene's shapes
func (s *Scene) Build(config core.KDTreeConfig, logger core.Logger) error {
	index, err := core.NewKDTree(s.shapes, config)
	if err != nil {
		return xerrors.Errorf("while building scene index: %w", err)
	}
	s.index = index

	stats := index.Stats()
	logger.Printf("kd-tree: %d primitives, %d nodes, %d leaves (%d empty), depth %d/%d, %.2f primitives per leaf",
		stats.Primitives, stats.TotalNodes, stats.LeafNodes, stats.EmptyLeaves, stats.MaxDepth, stats.DepthLimit, stats.AvgPrimsInLeaf)
	return nil
}

// Stats returns the index statistics, or false if the scene is not built
func (s *Scene) Stats() (core.KDTreeStats, bool) {
	if s.index == nil {
		return core.KDTreeStats{}, false
	}
	return s.index.Stats(), true
}

// NearestHit returns the closest intersection in front of the ray origin
func (s *Scene) NearestHit(ray core.Ray) (*core.HitRecord, bool) {
	if s.index != nil {
		return s.index.Hit(ray, core.HitEpsilon, math.Inf(1))
	}

	var closest *core.HitRecord
	closestT := math.Inf(1)
	for _, shape := range s.shapes {
		if hit, ok := shape.Hit(ray, core.HitEpsilon, closestT); ok {
			closest, closestT = hit, hit.T
		}
	}
	return closest, closest != nil
}

// AnyHit reports whether anything intersects the ray before maxT
func (s *Scene) AnyHit(ray core.Ray, maxT float64) bool {
	if s.index != nil {
		return s.index.HitAny(ray, core.HitEpsilon, maxT)
	}
	for _, shape := range s.shapes {
		if shape.HitAny(ray, core.HitEpsilon, maxT) {
			return true
		}
	}
	return false
}

// Shapes returns the shapes in insertion order
func (s *Scene) Shapes() []core.Shape { return s.shapes }

// Lights returns the lights used for direct illumination
func (s *Scene) Lights() []core.Light { return s.lights }

// Ambient returns the ambient light
func (s *Scene) Ambient() core.Light { return s.ambient }

// Background returns the radiance of rays that hit nothing
func (s *Scene) Background() core.Vec3 { return s.background }
