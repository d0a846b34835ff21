package starfield

import (
	"fmt"
	"image/color"
	"strconv"
)

// White is the star color when color variation is off.
var White = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// Palette holds apparent star colors from blue-white O/B stars to orange K/M
// stars, after vendian.org's "What color are the stars?" table. The repeated
// entries weight the draw towards near-white.
var Palette = mustParsePalette(
	"#9db4ff", "#a2b9ff", "#a7bcff", "#aabfff", "#afc3ff",
	"#baccff", "#c0d1ff", "#cad8ff", "#e4e8ff", "#edeeff",
	"#fbf8ff", "#fbf8ff", "#fbf8ff", "#fbf8ff", "#fbf8ff",
	"#fbf8ff", "#fbf8ff", "#fbf8ff", "#fbf8ff", "#fbf8ff",
	"#fff9f9", "#fff5ec", "#fff4e8", "#fff1df", "#ffebd1",
	"#ffd7ae", "#ffc690", "#ffbe7f", "#ffbb7b", "#ffbb7b",
)

// InPalette reports whether c is one of the Palette entries.
func InPalette(c color.RGBA) bool {
	for _, p := range Palette {
		if p == c {
			return true
		}
	}
	return false
}

// ParseHexColor parses "#rrggbb" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

func mustParsePalette(hex ...string) []color.RGBA {
	out := make([]color.RGBA, len(hex))
	for i, h := range hex {
		c, err := ParseHexColor(h)
		if err != nil {
			panic(err)
		}
		out[i] = c
	}
	return out
}
