package starfield

import (
	"errors"
	"testing"
)

func TestRandomInt(t *testing.T) {
	rng := NewRand(1)

	for i := 0; i < 100; i++ {
		n, err := RandomInt(rng, 0, 1)
		if err != nil || n != 0 {
			t.Fatalf("RandomInt(0,1) = %d, %v; want 0, nil", n, err)
		}
	}

	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		n, err := RandomInt(rng, 3, 7)
		if err != nil {
			t.Fatalf("RandomInt(3,7): %v", err)
		}
		if n < 3 || n >= 7 {
			t.Fatalf("RandomInt(3,7) = %d, out of range", n)
		}
		seen[n] = true
	}
	if len(seen) != 4 {
		t.Errorf("RandomInt(3,7) produced %v, want all of 3..6", seen)
	}
}

func TestRandomIntEmptyRange(t *testing.T) {
	rng := NewRand(1)
	for _, r := range [][2]int{{5, 5}, {0, 0}, {4, 2}} {
		if _, err := RandomInt(rng, r[0], r[1]); !errors.Is(err, ErrEmptyRange) {
			t.Errorf("RandomInt(%d,%d) error = %v, want ErrEmptyRange", r[0], r[1], err)
		}
	}
}

func TestNewRandDeterministic(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 50; i++ {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}
