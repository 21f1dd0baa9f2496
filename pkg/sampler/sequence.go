package sampler

import (
	"math"
	"math/rand/v2"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Streams used by the renderer. Separate streams keep the pixel positions
// and the shading decisions of a pixel independent.
const (
	PixelStream   uint64 = 0
	ShadingStream uint64 = 1
)

// Sequence walks a Pattern for one pixel. It implements core.Sampler and
// must not be shared between goroutines. Two sequences created with the
// same key and stream produce identical output.
type Sequence struct {
	pattern *Pattern
	rng     *rand.Rand
	count   int
	jump    int
}

// Sequence creates the sample sequence for key, typically a pixel index
func (p *Pattern) Sequence(key, stream uint64) *Sequence {
	return &Sequence{
		pattern: p,
		rng:     rand.New(rand.NewPCG(p.seed^(key*0x9e3779b97f4a7c15), stream)),
	}
}

// NextSquare returns the next point in the unit square. A fresh set is
// picked at random every NumSamples calls.
func (s *Sequence) NextSquare() core.Vec2 {
	p := s.pattern
	i := s.count % p.numSamples
	if i == 0 {
		s.jump = s.rng.IntN(p.numSets) * p.numSamples
	}
	s.count++
	return p.samples[s.jump+p.shuffled[s.jump+i]]
}

// NextHemisphere maps the next square sample onto the hemisphere around +Z
// with density proportional to cos^exp θ
func (s *Sequence) NextHemisphere(exp float64) core.Vec3 {
	return MapToHemisphere(s.NextSquare(), exp)
}

// MapToHemisphere maps a unit-square point onto the hemisphere around +Z.
// exp = 1 gives a cosine distribution; larger exponents tighten the lobe.
func MapToHemisphere(sp core.Vec2, exp float64) core.Vec3 {
	phi := 2 * math.Pi * sp.X
	cosTheta := math.Pow(1-sp.Y, 1/(exp+1))
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	return core.NewVec3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)
}
