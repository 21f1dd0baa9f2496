package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns the color at a world-space point
	Evaluate(point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of position
func (s *SolidColor) Evaluate(point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker is a solid 3D checkerboard made of cubes of edge Size
type Checker struct {
	Even, Odd core.Vec3
	Size      float64
}

// NewChecker creates a procedural checker pattern
func NewChecker(even, odd core.Vec3, size float64) *Checker {
	return &Checker{Even: even, Odd: odd, Size: size}
}

// Evaluate picks the cube the point falls in. Points are nudged slightly so
// that planes aligned with cube faces don't flicker between colors.
func (c *Checker) Evaluate(point core.Vec3) core.Vec3 {
	const nudge = 1e-6
	ix := int(math.Floor(point.X/c.Size + nudge))
	iy := int(math.Floor(point.Y/c.Size + nudge))
	iz := int(math.Floor(point.Z/c.Size + nudge))
	if (ix+iy+iz)%2 == 0 {
		return c.Even
	}
	return c.Odd
}
