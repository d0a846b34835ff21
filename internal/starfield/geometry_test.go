package starfield

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestNormalizeVector(t *testing.T) {
	got := NormalizeVector(Vec{X: 3, Y: 4})
	if math.Abs(got.X-0.6) > eps || math.Abs(got.Y-0.8) > eps {
		t.Fatalf("NormalizeVector(3,4) = %+v, want (0.6, 0.8)", got)
	}

	for _, v := range []Vec{{1, 0}, {0, -7}, {-2, 5}, {1e-6, 3e-6}, {1920, -1080}} {
		if l := NormalizeVector(v).Len(); math.Abs(l-1) > 1e-12 {
			t.Errorf("|NormalizeVector(%v)| = %v, want 1", v, l)
		}
	}

	zero := NormalizeVector(Vec{})
	if !math.IsNaN(zero.X) || !math.IsNaN(zero.Y) {
		t.Errorf("NormalizeVector(0) = %+v, want NaN components", zero)
	}
}

func TestDistFromLine(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		x, y   float64
		want   float64
	}{
		{"on horizontal line", Point{0, 10}, Point{100, 10}, 42, 10, 0},
		{"above horizontal line", Point{0, 10}, Point{100, 10}, 42, 3, 7},
		{"beyond segment end", Point{0, 0}, Point{10, 0}, 50, 4, 4},
		{"on diagonal", Point{0, 0}, Point{10, 10}, 3, 3, 0},
		{"off diagonal", Point{0, 0}, Point{10, 10}, 0, 2, math.Sqrt2},
		{"endpoint", Point{0, 25}, Point{640, 300}, 640, 300, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistFromLine(tt.p1, tt.p2, tt.x, tt.y)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DistFromLine = %v, want %v", got, tt.want)
			}
			swapped := DistFromLine(tt.p2, tt.p1, tt.x, tt.y)
			if math.Abs(got-swapped) > 1e-9 {
				t.Errorf("DistFromLine not symmetric: %v vs %v", got, swapped)
			}
		})
	}
}

func TestThickness(t *testing.T) {
	tests := []struct {
		d    float64
		want int
	}{
		{0, 4},
		{1, 3},
		{166, 3},
		{167, 2},
		{250, 2},
		{333, 2},
		{334, 1},
		{499.99, 1},
		{500, 1},
		{750, 1},
		{1e9, 1},
	}
	for _, tt := range tests {
		if got := Thickness(tt.d); got != tt.want {
			t.Errorf("Thickness(%v) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestThicknessMonotonic(t *testing.T) {
	prev := Thickness(0)
	for d := 0.0; d < ConcentrationRadius; d += 0.25 {
		got := Thickness(d)
		if got > prev {
			t.Fatalf("Thickness(%v) = %d, increased from %d", d, got, prev)
		}
		if got < 1 || got > MaxThickness {
			t.Fatalf("Thickness(%v) = %d, out of [1,%d]", d, got, MaxThickness)
		}
		prev = got
	}
}
