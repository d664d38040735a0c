package renderer

import (
	"image"
	"math/rand"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier, in raster order
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}

// TileRenderer renders tiles of a frame with per-pixel seeded randomness
type TileRenderer struct {
	raytracer *Raytracer
	random    *rand.Rand
}

// NewTileRenderer creates a tile renderer. Each goroutine needs its own.
func NewTileRenderer(rt *Raytracer) *TileRenderer {
	return &TileRenderer{
		raytracer: rt,
		random:    newPixelRandom(),
	}
}

// RenderTileBounds renders pixels within the specified bounds directly into frame.
// Tiles never overlap, so concurrent calls on distinct tiles do not alias.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, frame *Frame) RenderStats {
	config := tr.raytracer.config

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			tr.random.Seed(PixelSeed(config.Seed, j*config.Width+i))
			frame.Set(i, j, tr.raytracer.samplePixel(i, j, tr.random))
		}
	}

	pixelCount := bounds.Dx() * bounds.Dy()
	return RenderStats{
		TotalPixels:  pixelCount,
		TotalSamples: pixelCount * config.SamplesPerPixel,
	}
}
