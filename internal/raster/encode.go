package raster

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an export image encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

var ErrUnknownFormat = errors.New("unknown image format")

// Formats lists the supported export formats in display order.
func Formats() []Format { return []Format{FormatPNG, FormatJPEG, FormatBMP, FormatTIFF} }

// ParseFormat accepts a format name or file extension, case-insensitively.
// The empty string selects PNG.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "", "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f Format) ContentType() string {
	switch f {
	case FormatJPEG:
		return "image/jpeg"
	case FormatBMP:
		return "image/bmp"
	case FormatTIFF:
		return "image/tiff"
	}
	return "image/png"
}

func (f Format) Ext() string {
	if f == FormatJPEG {
		return ".jpg"
	}
	return "." + string(f)
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG, "":
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	case FormatJPEG:
		// Single-pixel stars smear below ~90.
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
}
