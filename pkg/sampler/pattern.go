// Package sampler generates stratified sample patterns over the unit square
// and hands them out as per-pixel sequences.
//
// A Pattern holds NumSets independently generated sets of NumSamples points.
// Sequences draw whole sets in a random order and walk each set through a
// shuffled index, so neighbouring pixels don't see correlated samples.
package sampler

import (
	"math"
	"math/rand/v2"

	"golang.org/x/xerrors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Pattern is an immutable collection of sample sets, safe for concurrent use
type Pattern struct {
	kind       Kind
	numSamples int
	numSets    int
	seed       uint64
	samples    []core.Vec2 // numSets consecutive sets of numSamples points
	shuffled   []int       // per-set permutation of 0..numSamples-1
}

// New generates a pattern. Regular, Jittered and MultiJittered require
// numSamples to be a perfect square.
func New(kind Kind, numSamples, numSets int, seed uint64) (*Pattern, error) {
	if numSamples < 1 {
		return nil, xerrors.Errorf("need at least one sample, got %d: %w", numSamples, ErrInvalidPattern)
	}
	if numSets < 1 {
		return nil, xerrors.Errorf("need at least one set, got %d: %w", numSets, ErrInvalidPattern)
	}
	if kind.needsSquare() {
		if n := int(math.Sqrt(float64(numSamples))); n*n != numSamples {
			return nil, xerrors.Errorf("%s sampling needs a perfect square sample count, got %d: %w", kind, numSamples, ErrInvalidPattern)
		}
	}

	p := &Pattern{
		kind:       kind,
		numSamples: numSamples,
		numSets:    numSets,
		seed:       seed,
		samples:    make([]core.Vec2, 0, numSamples*numSets),
	}
	rng := rand.New(rand.NewPCG(seed, uint64(kind)))

	for set := 0; set < numSets; set++ {
		switch kind {
		case Regular:
			p.samples = appendRegular(p.samples, numSamples)
		case Jittered:
			p.samples = appendJittered(p.samples, numSamples, rng)
		case NRooks:
			p.samples = appendNRooks(p.samples, numSamples, rng)
		case MultiJittered:
			p.samples = appendMultiJittered(p.samples, numSamples, rng)
		default:
			return nil, xerrors.Errorf("unknown sampler kind %d: %w", int(kind), ErrInvalidPattern)
		}
	}

	p.shuffled = make([]int, 0, numSamples*numSets)
	for set := 0; set < numSets; set++ {
		p.shuffled = append(p.shuffled, rng.Perm(numSamples)...)
	}
	return p, nil
}

// Kind returns the generator used for the pattern
func (p *Pattern) Kind() Kind { return p.kind }

// NumSamples returns the number of samples in each set, i.e. the samples per pixel
func (p *Pattern) NumSamples() int { return p.numSamples }

// NumSets returns the number of sample sets
func (p *Pattern) NumSets() int { return p.numSets }

// Set returns a copy of the points of one set in generation order
func (p *Pattern) Set(i int) []core.Vec2 {
	out := make([]core.Vec2, p.numSamples)
	copy(out, p.samples[i*p.numSamples:(i+1)*p.numSamples])
	return out
}

func appendRegular(dst []core.Vec2, numSamples int) []core.Vec2 {
	n := int(math.Sqrt(float64(numSamples)))
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			dst = append(dst, core.Vec2{
				X: (float64(col) + 0.5) / float64(n),
				Y: (float64(row) + 0.5) / float64(n),
			})
		}
	}
	return dst
}

func appendJittered(dst []core.Vec2, numSamples int, rng *rand.Rand) []core.Vec2 {
	n := int(math.Sqrt(float64(numSamples)))
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			dst = append(dst, core.Vec2{
				X: (float64(col) + rng.Float64()) / float64(n),
				Y: (float64(row) + rng.Float64()) / float64(n),
			})
		}
	}
	return dst
}

// appendNRooks places one sample per row and per column of an N×N grid
func appendNRooks(dst []core.Vec2, numSamples int, rng *rand.Rand) []core.Vec2 {
	start := len(dst)
	for i := 0; i < numSamples; i++ {
		dst = append(dst, core.Vec2{
			X: (float64(i) + rng.Float64()) / float64(numSamples),
			Y: (float64(i) + rng.Float64()) / float64(numSamples),
		})
	}
	set := dst[start:]
	rng.Shuffle(numSamples, func(i, j int) { set[i].X, set[j].X = set[j].X, set[i].X })
	rng.Shuffle(numSamples, func(i, j int) { set[i].Y, set[j].Y = set[j].Y, set[i].Y })
	return dst
}

// appendMultiJittered is jittered on the n×n grid and n-rooks on the N×N
// subgrid at the same time. Sample (i, j) starts in coarse cell (i, j); the
// shuffles only exchange fine strata between samples of the same coarse
// column or row, which keeps both properties.
func appendMultiJittered(dst []core.Vec2, numSamples int, rng *rand.Rand) []core.Vec2 {
	n := int(math.Sqrt(float64(numSamples)))
	sub := 1 / float64(numSamples)
	start := len(dst)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dst = append(dst, core.Vec2{
				X: (float64(i*n+j) + rng.Float64()) * sub,
				Y: (float64(j*n+i) + rng.Float64()) * sub,
			})
		}
	}
	set := dst[start:]
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			k := j + rng.IntN(n-j)
			set[i*n+j].X, set[i*n+k].X = set[i*n+k].X, set[i*n+j].X
		}
	}
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			k := i + rng.IntN(n-i)
			set[i*n+j].Y, set[k*n+j].Y = set[k*n+j].Y, set[i*n+j].Y
		}
	}
	return dst
}
