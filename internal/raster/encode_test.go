package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatPNG, false},
		{"png", FormatPNG, false},
		{".PNG", FormatPNG, false},
		{"jpg", FormatJPEG, false},
		{"jpeg", FormatJPEG, false},
		{"bmp", FormatBMP, false},
		{"tif", FormatTIFF, false},
		{" tiff ", FormatTIFF, false},
		{"gif", "", true},
		{"webp", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("error %v does not wrap ErrUnknownFormat", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncodeDecodes(t *testing.T) {
	c := NewCanvas(24, 16)
	c.FillRect(c.Bounds(), color.RGBA{A: 0xFF})
	c.FillRect(image.Rect(4, 4, 10, 8), color.RGBA{R: 0xFB, G: 0xF8, B: 0xFF, A: 0xFF})

	for _, f := range Formats() {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, c.Image(), f); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			img, name, err := image.Decode(&buf)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if name != string(f) {
				t.Errorf("decoded format = %q, want %q", name, f)
			}
			if img.Bounds() != c.Bounds() {
				t.Errorf("bounds = %v, want %v", img.Bounds(), c.Bounds())
			}
			if f == FormatJPEG {
				return
			}
			r, g, b, _ := img.At(5, 5).RGBA()
			if r>>8 != 0xFB || g>>8 != 0xF8 || b>>8 != 0xFF {
				t.Errorf("pixel = (%x,%x,%x), want fbf8ff", r>>8, g>>8, b>>8)
			}
		})
	}

	if err := Encode(&bytes.Buffer{}, c.Image(), Format("gif")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Encode(gif) error = %v, want ErrUnknownFormat", err)
	}
}

func TestFormatMetadata(t *testing.T) {
	if FormatJPEG.Ext() != ".jpg" || FormatPNG.Ext() != ".png" || FormatTIFF.Ext() != ".tiff" {
		t.Error("unexpected extensions")
	}
	if FormatBMP.ContentType() != "image/bmp" || FormatPNG.ContentType() != "image/png" {
		t.Error("unexpected content types")
	}
}
