package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/sampler"
)

// TileRenderer renders the pixels of one tile. It holds only read-only
// state and is shared by all workers.
type TileRenderer struct {
	scene   core.Scene
	camera  core.Camera
	tracer  core.Tracer
	pattern *sampler.Pattern
	width   int
}

// NewTileRenderer creates a tile renderer for an image width pixels wide
func NewTileRenderer(scene core.Scene, camera core.Camera, tracer core.Tracer, pattern *sampler.Pattern, width int) *TileRenderer {
	return &TileRenderer{
		scene:   scene,
		camera:  camera,
		tracer:  tracer,
		pattern: pattern,
		width:   width,
	}
}

// RenderTile returns the tile's pixels, row-major, and the work it took.
// Each pixel averages one primary ray per pattern sample, scaled by the
// camera exposure. Samplers are keyed by pixel, so the output does not
// depend on which worker renders the tile.
func (tr *TileRenderer) RenderTile(tile Tile) ([]core.Vec3, TileStats) {
	bounds := tile.Bounds
	pixels := make([]core.Vec3, 0, bounds.Dx()*bounds.Dy())
	numSamples := tr.pattern.NumSamples()
	scale := tr.camera.Exposure() / float64(numSamples)

	for row := bounds.Min.Y; row < bounds.Max.Y; row++ {
		for col := bounds.Min.X; col < bounds.Max.X; col++ {
			key := uint64(row*tr.width + col)
			pixelSamples := tr.pattern.Sequence(key, sampler.PixelStream)
			shadingSamples := tr.pattern.Sequence(key, sampler.ShadingStream)

			var L core.Vec3
			for s := 0; s < numSamples; s++ {
				ray := tr.camera.RayFor(col, row, pixelSamples.NextSquare())
				L = L.Add(tr.tracer.Trace(tr.scene, ray, 0, shadingSamples))
			}
			pixels = append(pixels, L.Multiply(scale))
		}
	}

	return pixels, TileStats{Pixels: len(pixels), Samples: len(pixels) * numSamples}
}
