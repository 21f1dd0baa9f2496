package renderer

import "image"

// Tile is a rectangular block of pixels rendered as one unit of work
type Tile struct {
	Index  int             // Position in the tile grid, row-major
	Bounds image.Rectangle // Pixel bounds, max exclusive
}

// NewTileGrid splits a width×height image into tileSize squares, row-major.
// Tiles on the right and bottom edges are clipped to the image.
func NewTileGrid(width, height, tileSize int) []Tile {
	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	tiles := make([]Tile, 0, tilesX*tilesY)
	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)
			tiles = append(tiles, Tile{Index: len(tiles), Bounds: image.Rect(x0, y0, x1, y1)})
		}
	}
	return tiles
}
