package starfield

import (
	"errors"
	"math/rand/v2"
)

// ErrEmptyRange is returned by RandomInt when hi <= lo.
var ErrEmptyRange = errors.New("starfield: empty random range")

// RandomInt returns a uniform integer in [lo, hi).
func RandomInt(rng *rand.Rand, lo, hi int) (int, error) {
	if hi <= lo {
		return 0, ErrEmptyRange
	}
	return lo + rng.IntN(hi-lo), nil
}

// mustRandomInt is RandomInt for ranges the caller has already checked.
func mustRandomInt(rng *rand.Rand, lo, hi int) int {
	n, err := RandomInt(rng, lo, hi)
	if err != nil {
		panic(err)
	}
	return n
}

// NewRand returns a deterministic source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// NewSeed draws a fresh seed from the runtime's random source.
func NewSeed() uint64 { return rand.Uint64() }
