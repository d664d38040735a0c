package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var (
	// ErrBufferTooSmall is returned when a pixel buffer holds fewer than width*height pixels
	ErrBufferTooSmall = errors.New("pixel buffer too small")
	// ErrUnknownFormat is returned for an unsupported output format
	ErrUnknownFormat = errors.New("unknown image format")
)

// Format names an output encoding
type Format string

const (
	FormatPPM  Format = "ppm" // ASCII P3 pixmap
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// Formats lists every supported format
var Formats = []Format{FormatPPM, FormatPNG, FormatBMP, FormatTIFF}

// ParseFormat converts a format name (case-insensitive, "tif" accepted) into a Format
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimPrefix(name, "."))
	if name == "tif" {
		return FormatTIFF, nil
	}
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath infers the format from a file extension
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

func checkSize(width, height int, pixels []RGB8) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if len(pixels) < width*height {
		return fmt.Errorf("%w: have %d pixels, need %d", ErrBufferTooSmall, len(pixels), width*height)
	}
	return nil
}

// Encode writes width*height pixels from a row-major buffer to w
func Encode(w io.Writer, format Format, width, height int, pixels []RGB8) error {
	if format == FormatPPM {
		return EncodePPM(w, width, height, pixels)
	}

	img, err := ToImage(width, height, pixels)
	if err != nil {
		return err
	}

	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}

// EncodePPM writes an ASCII P3 pixmap: a three line header, then one "r g b" line per pixel
func EncodePPM(w io.Writer, width, height int, pixels []RGB8) error {
	if err := checkSize(width, height, pixels); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height)
	for _, p := range pixels[:width*height] {
		fmt.Fprintf(bw, "%d %d %d\n", p.R, p.G, p.B)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write ppm: %w", err)
	}
	return nil
}

// Save encodes pixels to the file at path, inferring the format from its extension
func Save(path string, width, height int, pixels []RGB8) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := checkSize(width, height, pixels); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot open destination %s: %w", path, err)
	}

	if err := Encode(file, format, width, height, pixels); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
