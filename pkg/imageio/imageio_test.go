package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected uint8
	}{
		{"zero", 0, 0},
		{"one", 1, 255},
		{"half rounds up", 0.5, 128},
		{"tenth", 0.1, 26},
		{"negative saturates", -0.3, 0},
		{"overbright saturates", 2.5, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quantize([]core.Vec3{core.Splat(tt.value)}, 0, 1)[0]
			if got != (RGB8{tt.expected, tt.expected, tt.expected}) {
				t.Errorf("Quantize(%v): expected %d, got %v", tt.value, tt.expected, got)
			}
		})
	}
}

func TestQuantize_Range(t *testing.T) {
	got := Quantize([]core.Vec3{core.NewVec3(-1, 0, 1)}, -1, 1)[0]
	expected := RGB8{0, 128, 255}
	if got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestQuantize_NaN(t *testing.T) {
	nan := core.NewVec3(math.NaN(), 0, 0)
	if got := Quantize([]core.Vec3{nan}, 0, 1)[0]; got.R != 0 {
		t.Errorf("Expected NaN to quantize to 0, got %d", got.R)
	}
}

func TestEncodePPM(t *testing.T) {
	pixels := []RGB8{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {10, 20, 30}}

	var buf bytes.Buffer
	if err := EncodePPM(&buf, 2, 2, pixels); err != nil {
		t.Fatalf("EncodePPM failed: %v", err)
	}

	expected := "P3\n2 2\n255\n255 0 0\n0 255 0\n0 0 255\n10 20 30\n"
	if buf.String() != expected {
		t.Errorf("Expected:\n%q\ngot:\n%q", expected, buf.String())
	}
}

func TestEncode_BufferTooSmall(t *testing.T) {
	for _, format := range Formats {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			err := Encode(&buf, format, 3, 3, make([]RGB8, 8))
			if !errors.Is(err, ErrBufferTooSmall) {
				t.Errorf("Expected ErrBufferTooSmall, got %v", err)
			}
		})
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, Format("gif"), 1, 1, make([]RGB8, 1))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func TestEncode_RasterFormats(t *testing.T) {
	width, height := 3, 2
	pixels := []RGB8{
		{255, 0, 0}, {0, 255, 0}, {0, 0, 255},
		{12, 34, 56}, {200, 100, 50}, {255, 255, 255},
	}

	decoders := map[Format]func(*bytes.Buffer) (image.Image, error){
		FormatPNG:  func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) },
		FormatBMP:  func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) },
		FormatTIFF: func(b *bytes.Buffer) (image.Image, error) { return tiff.Decode(b) },
	}

	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, format, width, height, pixels); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			img, err := decode(&buf)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if img.Bounds().Dx() != width || img.Bounds().Dy() != height {
				t.Fatalf("Expected %dx%d, got %v", width, height, img.Bounds())
			}

			for y := 0; y < height; y++ {
				for x := 0; x < width; x++ {
					r, g, b, _ := img.At(x, y).RGBA()
					want := pixels[y*width+x]
					if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B {
						t.Errorf("Pixel (%d,%d): expected %v, got (%d,%d,%d)", x, y, want, r>>8, g>>8, b>>8)
					}
				}
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"ppm", FormatPPM, false},
		{"PNG", FormatPNG, false},
		{".bmp", FormatBMP, false},
		{"tif", FormatTIFF, false},
		{"tiff", FormatTIFF, false},
		{"jpeg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("Expected ErrUnknownFormat, got %v", err)
				}
				return
			}
			if err != nil || got != tt.expected {
				t.Errorf("Expected %s, got %s (err %v)", tt.expected, got, err)
			}
		})
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	pixels := []RGB8{{1, 2, 3}}

	path := filepath.Join(dir, "out.ppm")
	if err := Save(path, 1, 1, pixels); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "P3\n1 1\n255\n1 2 3\n" {
		t.Errorf("Unexpected file contents %q", data)
	}

	err = Save(filepath.Join(dir, "missing", "out.png"), 1, 1, pixels)
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped not-exist error, got %v", err)
	}

	if err := Save(filepath.Join(dir, "out.xyz"), 1, 1, pixels); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}
