package raster

import (
	"testing"
)

func TestAddColorStopOrdering(t *testing.T) {
	g := NewLinearGradient(0, 0, 1, 0)
	g.AddColorStop(1, 3, 3, 3).AddColorStop(0, 0, 0, 0).AddColorStop(0.5, 1, 1, 1).AddColorStop(0.5, 2, 2, 2).AddColorStop(-2, 9, 9, 9)

	wantOffsets := []float64{0, 0, 0.5, 0.5, 1}
	wantR := []float64{0, 9, 1, 2, 3}
	if len(g.Stops) != len(wantOffsets) {
		t.Fatalf("got %d stops, want %d", len(g.Stops), len(wantOffsets))
	}
	for i, s := range g.Stops {
		if s.Offset != wantOffsets[i] || s.R != wantR[i] {
			t.Errorf("stop %d = %+v, want offset %v r %v", i, s, wantOffsets[i], wantR[i])
		}
	}
}

func TestGradientColorAt(t *testing.T) {
	g := NewLinearGradient(0, 0, 100, 0).
		AddColorStop(0, 0, 0, 0).
		AddColorStop(0.45, 90, 90, 93).
		AddColorStop(0.55, 90, 90, 93).
		AddColorStop(1, 0, 0, 0)

	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"start", 0, 0, 0},
		{"before start pads", -50, 0, 0},
		{"ramp midpoint", 22.5, 0, 45},
		{"plateau begin", 45, 7, 90},
		{"plateau center", 50, -30, 90},
		{"plateau end", 55, 0, 90},
		{"falling ramp", 77.5, 0, 45},
		{"end", 100, 0, 0},
		{"after end pads", 400, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := g.ColorAt(tt.x, tt.y)
			if diff := r - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("ColorAt(%v,%v) r = %v, want %v", tt.x, tt.y, r, tt.want)
			}
		})
	}
}

func TestGradientZeroLengthAxis(t *testing.T) {
	g := NewLinearGradient(5, 5, 5, 5).AddColorStop(0, 10, 20, 30).AddColorStop(1, 0, 0, 0)
	r, gr, b := g.ColorAt(100, -3)
	if r != 10 || gr != 20 || b != 30 {
		t.Errorf("ColorAt = (%v,%v,%v), want first stop", r, gr, b)
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		v, threshold float64
		want         uint8
	}{
		{0, 0.999, 0},
		{-4, 0.5, 0},
		{20, 0.999, 20},
		{20.4, 0.5, 20},
		{20.5, 0.5, 21},
		{254.9, 0.5, 255},
		{258, 0.0, 255},
	}
	for _, tt := range tests {
		if got := quantize(tt.v, tt.threshold); got != tt.want {
			t.Errorf("quantize(%v, %v) = %d, want %d", tt.v, tt.threshold, got, tt.want)
		}
	}
}

func TestDitherPreservesMean(t *testing.T) {
	g := NewLinearGradient(0, 0, 8, 0).AddColorStop(0, 20.5, 20.5, 20.5).AddColorStop(1, 20.5, 20.5, 20.5)

	sum := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			px := g.PixelAt(x, y)
			if px.R != 20 && px.R != 21 {
				t.Fatalf("pixel (%d,%d) = %d, want 20 or 21", x, y, px.R)
			}
			sum += int(px.R)
		}
	}
	if sum != 64*20+32 {
		t.Errorf("8x8 block sum = %d, want %d", sum, 64*20+32)
	}

	g.Dither = false
	for x := 0; x < 8; x++ {
		if px := g.PixelAt(x, 0); px.R != 21 {
			t.Errorf("undithered pixel %d = %d, want 21", x, px.R)
		}
	}
}

func TestBayerThresholds(t *testing.T) {
	seen := map[float64]bool{}
	for y := range bayer8 {
		for x := range bayer8[y] {
			v := bayer8[y][x]
			if v <= 0 || v >= 1 {
				t.Fatalf("threshold (%d,%d) = %v, out of (0,1)", x, y, v)
			}
			seen[v] = true
		}
	}
	if len(seen) != 64 {
		t.Errorf("got %d distinct thresholds, want 64", len(seen))
	}
}
