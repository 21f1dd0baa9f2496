package renderer

import (
	"image/color"
	"testing"

	"golang.org/x/xerrors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestNewTileGrid_CoversImageOnce(t *testing.T) {
	tests := []struct {
		width, height, tileSize int
		expectedTiles           int
	}{
		{64, 64, 32, 4},
		{100, 50, 32, 8},
		{7, 3, 16, 1},
		{33, 33, 32, 4},
		{1, 1, 1, 1},
	}

	for _, tt := range tests {
		tiles := NewTileGrid(tt.width, tt.height, tt.tileSize)
		if len(tiles) != tt.expectedTiles {
			t.Errorf("Expected %d tiles for %dx%d/%d, got %d", tt.expectedTiles, tt.width, tt.height, tt.tileSize, len(tiles))
		}

		covered := make([]int, tt.width*tt.height)
		for i, tile := range tiles {
			if tile.Index != i {
				t.Errorf("Expected tile index %d, got %d", i, tile.Index)
			}
			if tile.Bounds.Empty() {
				t.Errorf("Expected non-empty tile %d", i)
			}
			for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
				for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
					covered[y*tt.width+x]++
				}
			}
		}
		for i, n := range covered {
			if n != 1 {
				t.Fatalf("Expected pixel %d covered once in %dx%d/%d, got %d", i, tt.width, tt.height, tt.tileSize, n)
			}
		}
	}
}

// fillTile gives every pixel a value derived from its coordinates
func fillTile(tile Tile) []core.Vec3 {
	var pixels []core.Vec3
	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			pixels = append(pixels, core.NewVec3(float64(x), float64(y), 0))
		}
	}
	return pixels
}

func TestRenderBuffer_PixelAddressing(t *testing.T) {
	buffer := NewRenderBuffer(10, 7, 4)
	if buffer.Complete() {
		t.Fatal("Expected a fresh buffer to be incomplete")
	}
	for _, tile := range buffer.Tiles() {
		buffer.Commit(tile, fillTile(tile))
	}
	if !buffer.Complete() {
		t.Fatal("Expected the buffer to be complete")
	}

	for y := 0; y < 7; y++ {
		for x := 0; x < 10; x++ {
			if got := buffer.Pixel(x, y); got != core.NewVec3(float64(x), float64(y), 0) {
				t.Fatalf("Expected (%d,%d,0), got %v", x, y, got)
			}
		}
	}
}

func TestRenderBuffer_DoubleCommitPanics(t *testing.T) {
	buffer := NewRenderBuffer(8, 8, 4)
	tile := buffer.Tiles()[1]
	buffer.Commit(tile, fillTile(tile))

	defer func() {
		err, ok := recover().(error)
		if !ok || !xerrors.Is(err, ErrTileWrittenTwice) {
			t.Errorf("Expected a panic with ErrTileWrittenTwice, got %v", err)
		}
	}()
	buffer.Commit(tile, fillTile(tile))
}

func TestRenderBuffer_Image(t *testing.T) {
	buffer := NewRenderBuffer(2, 1, 1)
	tiles := buffer.Tiles()
	buffer.Commit(tiles[0], []core.Vec3{core.NewVec3(0.25, 2, -1)})

	img := buffer.Image(2)
	expected := color.RGBA{R: 128, G: 255, B: 0, A: 255}
	if got := img.RGBAAt(0, 0); got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{A: 255}) {
		t.Errorf("Expected black for an unwritten tile, got %v", got)
	}
}

func TestRenderBuffer_AverageLuminance(t *testing.T) {
	buffer := NewRenderBuffer(2, 2, 1)
	colors := []core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
		{},
	}
	for i, tile := range buffer.Tiles() {
		buffer.Commit(tile, []core.Vec3{colors[i]})
	}

	expected := (0.2126 + 0.7152 + 0.0722) / 4
	if got := buffer.AverageLuminance(); got < expected-1e-9 || got > expected+1e-9 {
		t.Errorf("Expected average luminance %f, got %f", expected, got)
	}
}
