package imageio

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// RGB8 is one quantized pixel
type RGB8 struct {
	R, G, B uint8
}

// Quantize maps each channel from [min, max] to [0, 255], rounding to nearest
// and saturating out-of-range values. min must be less than max.
func Quantize(pixels []core.Vec3, min, max float64) []RGB8 {
	out := make([]RGB8, len(pixels))
	scale := 255 / (max - min)
	for i, p := range pixels {
		out[i] = RGB8{
			R: quantizeChannel(p.X, min, scale),
			G: quantizeChannel(p.Y, min, scale),
			B: quantizeChannel(p.Z, min, scale),
		}
	}
	return out
}

func quantizeChannel(v, min, scale float64) uint8 {
	q := (v-min)*scale + 0.5
	if !(q > 0) { // also catches NaN
		return 0
	}
	if q > 255 {
		return 255
	}
	return uint8(q)
}

// ToImage converts a row-major pixel buffer into an RGBA image with opaque alpha
func ToImage(width, height int, pixels []RGB8) (*image.RGBA, error) {
	if err := checkSize(width, height, pixels); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := pixels[y*width+x]
			img.Set(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img, nil
}
