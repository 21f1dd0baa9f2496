package renderer

import (
	"image"
	"image/color"
	"sync/atomic"

	"golang.org/x/xerrors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// RenderBuffer holds the linear radiance of a render, one slot per tile.
// Each slot is claimed exactly once; workers never share pixel storage.
type RenderBuffer struct {
	width, height int
	tileSize      int
	tilesX        int
	tiles         []Tile
	slots         []tileSlot
}

type tileSlot struct {
	written atomic.Bool
	pixels  []core.Vec3 // Row-major over the tile bounds
}

// NewRenderBuffer creates an empty buffer for a width×height image cut into tileSize tiles
func NewRenderBuffer(width, height, tileSize int) *RenderBuffer {
	tiles := NewTileGrid(width, height, tileSize)
	return &RenderBuffer{
		width:    width,
		height:   height,
		tileSize: tileSize,
		tilesX:   (width + tileSize - 1) / tileSize,
		tiles:    tiles,
		slots:    make([]tileSlot, len(tiles)),
	}
}

// Width returns the image width in pixels
func (b *RenderBuffer) Width() int { return b.width }

// Height returns the image height in pixels
func (b *RenderBuffer) Height() int { return b.height }

// Tiles returns the tile grid. The slice must not be modified.
func (b *RenderBuffer) Tiles() []Tile { return b.tiles }

// Commit stores the pixels of a finished tile. Writing a tile twice, or
// with the wrong number of pixels, panics.
func (b *RenderBuffer) Commit(tile Tile, pixels []core.Vec3) {
	slot := &b.slots[tile.Index]
	if !slot.written.CompareAndSwap(false, true) {
		panic(xerrors.Errorf("tile %d: %w", tile.Index, ErrTileWrittenTwice))
	}
	if want := tile.Bounds.Dx() * tile.Bounds.Dy(); len(pixels) != want {
		panic(xerrors.Errorf("tile %d has %d pixels, got %d", tile.Index, want, len(pixels)))
	}
	slot.pixels = pixels
}

// Complete reports whether every tile has been written
func (b *RenderBuffer) Complete() bool {
	for i := range b.slots {
		if !b.slots[i].written.Load() {
			return false
		}
	}
	return true
}

// Pixel returns the radiance at (x, y), black for tiles not yet written.
// It must not race with Commit for the same tile.
func (b *RenderBuffer) Pixel(x, y int) core.Vec3 {
	index := (y/b.tileSize)*b.tilesX + x/b.tileSize
	slot := &b.slots[index]
	if slot.pixels == nil {
		return core.Vec3{}
	}
	bounds := b.tiles[index].Bounds
	return slot.pixels[(y-bounds.Min.Y)*bounds.Dx()+(x-bounds.Min.X)]
}

// AverageLuminance returns the mean luminance over all pixels
func (b *RenderBuffer) AverageLuminance() float64 {
	var sum float64
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			sum += b.Pixel(x, y).Luminance()
		}
	}
	return sum / float64(b.width*b.height)
}

// Image clamps the radiance to [0,1], applies gamma correction and
// converts to 8-bit RGBA
func (b *RenderBuffer) Image(gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.Pixel(x, y).Clamp(0, 1).GammaCorrect(gamma)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255*c.X + 0.5),
				G: uint8(255*c.Y + 0.5),
				B: uint8(255*c.Z + 0.5),
				A: 255,
			})
		}
	}
	return img
}
