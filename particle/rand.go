package particle

import "math"

// Rand is the random source consumed at spawn time. *math/rand/v2.Rand
// satisfies it, as does the xorshift generator below.
type Rand interface {
	Float64() float64
}

// XorShift is a tiny deterministic RNG (xorshift64*).
type XorShift struct {
	s uint64
}

// NewRand seeds a XorShift. A zero seed is remapped because xorshift
// never leaves the all-zero state.
func NewRand(seed uint64) *XorShift {
	if seed == 0 {
		seed = 0x9E3779B97F4A7C15
	}
	return &XorShift{s: seed}
}

func (r *XorShift) next() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

// Float64 returns a value in [0, 1).
func (r *XorShift) Float64() float64 {
	return float64(r.next()>>11) * (1.0 / (1 << 53))
}

func rangeF(r Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float64()
}

func intn(r Rand, n int) int {
	if n <= 1 {
		return 0
	}
	i := int(r.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

func randomAngle(r Rand) float64 {
	return r.Float64() * 2 * math.Pi
}
