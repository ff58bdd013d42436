// Package mt19937 implements the 32-bit Mersenne Twister (MT19937)
// pseudo-random number generator with seeding compatible with CPython's
// random module. A generator built with NewSeeded(n) produces exactly the
// stream of 32-bit words and [0, 1) doubles that Python's
// random.Random(n) produces for the same n, including negative, zero, and
// arbitrarily large seeds.
//
// MT19937 is not cryptographically secure. A generator must not be shared
// between goroutines without external locking; use one generator per
// stream instead.
package mt19937

const (
	mtN       = 624
	mtM       = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff

	temperingB = 0x9d2c5680
	temperingC = 0xefc60000
)

// MT19937 holds the 624-word generator state and the read position within
// the current block. The zero value is unseeded and must not be used;
// construct with New, NewSeeded, NewFromBig, or NewFromReader.
type MT19937 struct {
	mt  [mtN]uint32
	mti int

	// cached second variate from NormFloat64; discarded on reseed
	gaussNext float64
	hasGauss  bool
}

// Uint32 returns the next tempered 32-bit word of the stream.
// This matches Python's getrandbits(32).
func (g *MT19937) Uint32() uint32 {
	var y uint32
	mag01 := [2]uint32{0, matrixA}

	if g.mti >= mtN {
		// Regenerate all N words in place. Positions past mtN-mtM read
		// words already updated earlier in the same pass.
		var kk int
		for kk = 0; kk < mtN-mtM; kk++ {
			y = (g.mt[kk] & upperMask) | (g.mt[kk+1] & lowerMask)
			g.mt[kk] = g.mt[kk+mtM] ^ (y >> 1) ^ mag01[y&1]
		}
		for ; kk < mtN-1; kk++ {
			y = (g.mt[kk] & upperMask) | (g.mt[kk+1] & lowerMask)
			g.mt[kk] = g.mt[kk+(mtM-mtN)] ^ (y >> 1) ^ mag01[y&1]
		}
		y = (g.mt[mtN-1] & upperMask) | (g.mt[0] & lowerMask)
		g.mt[mtN-1] = g.mt[mtM-1] ^ (y >> 1) ^ mag01[y&1]
		g.mti = 0
	}

	y = g.mt[g.mti]
	g.mti++

	// Tempering
	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18

	return y
}

// Float64 returns the next double in [0, 1) with 53-bit resolution.
// This matches Python's random(): the top 27 bits of one word and the top
// 26 bits of the next, drawn in that order.
func (g *MT19937) Float64() float64 {
	a := g.Uint32() >> 5
	b := g.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}
