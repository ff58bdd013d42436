package mt19937

import (
	"math"
	"math/bits"
)

// Getrandbits returns a uniform k-bit value for 0 <= k <= 64, consuming
// the same words as Python's getrandbits(k): one raw word per started
// 32-bit chunk, low chunk first, with the final chunk keeping only its
// top bits. Getrandbits(0) returns 0 without consuming the stream.
func (g *MT19937) Getrandbits(k uint) uint64 {
	switch {
	case k == 0:
		return 0
	case k <= 32:
		return uint64(g.Uint32() >> (32 - k))
	case k <= 64:
		lo := uint64(g.Uint32())
		hi := uint64(g.Uint32() >> (64 - k))
		return lo | hi<<32
	default:
		panic("mt19937: Getrandbits bit count exceeds 64")
	}
}

// Uint64 returns a uniform 64-bit value, equivalent to Getrandbits(64).
func (g *MT19937) Uint64() uint64 {
	lo := uint64(g.Uint32())
	hi := uint64(g.Uint32())
	return lo | hi<<32
}

// Intn returns a uniform int in [0, n). It panics if n <= 0.
// Rejection sampling over bit_length(n) bit draws keeps the stream in
// step with Python's _randbelow, including the redraws.
func (g *MT19937) Intn(n int) int {
	if n <= 0 {
		panic("mt19937: Intn called with n <= 0")
	}
	k := uint(bits.Len64(uint64(n)))
	r := g.Getrandbits(k)
	for r >= uint64(n) {
		r = g.Getrandbits(k)
	}
	return int(r)
}

// Uniform returns a uniform double in [low, high), matching Python's
// uniform(low, high).
func (g *MT19937) Uniform(low, high float64) float64 {
	return low + (high-low)*g.Float64()
}

// Shuffle permutes n elements through the swap function, visiting the
// same index pairs as Python's shuffle.
func (g *MT19937) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := g.Intn(i + 1)
		swap(i, j)
	}
}

// NormFloat64 returns a normal variate with mean mu and standard
// deviation sigma, generating cosine/sine pairs from the [0, 1) stream
// the way Python's gauss does. The cached second variate of a pair is
// discarded on reseed.
func (g *MT19937) NormFloat64(mu, sigma float64) float64 {
	if g.hasGauss {
		g.hasGauss = false
		return mu + g.gaussNext*sigma
	}
	x2pi := g.Float64() * (2 * math.Pi)
	g2rad := math.Sqrt(-2.0 * math.Log(1.0-g.Float64()))
	z := math.Cos(x2pi) * g2rad
	g.gaussNext = math.Sin(x2pi) * g2rad
	g.hasGauss = true
	return mu + z*sigma
}
