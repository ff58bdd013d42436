package mt19937

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"time"
)

const (
	seedBase  = 19650218
	initMult  = 1812433253
	mixMultA  = 1664525
	mixMultB  = 1566083941
	seedBytes = 32
)

// New returns a generator seeded from the operating system entropy
// source. The resulting stream is not reproducible; for a reproducible
// stream construct with NewSeeded or call Seed.
func New() *MT19937 {
	g := &MT19937{}
	if err := g.seedFromReader(cryptorand.Reader); err != nil {
		// Entropy source unavailable; fall back to a time-based seed
		// mixed with the pid, as the reference does.
		g.Seed(time.Now().UnixNano() ^ int64(os.Getpid()))
	}
	return g
}

// NewSeeded returns a generator producing the reproducible stream for
// seed. This matches Python's random.Random(seed).
func NewSeeded(seed int64) *MT19937 {
	g := &MT19937{}
	g.Seed(seed)
	return g
}

// NewFromBig returns a generator seeded with an arbitrary-precision
// integer. It returns an error if seed is nil.
func NewFromBig(seed *big.Int) (*MT19937, error) {
	g := &MT19937{}
	if err := g.SeedBig(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// NewFromReader returns a generator seeded with 32 bytes drawn from r,
// interpreted as a big-endian unsigned integer. Injecting a fixed reader
// gives a deterministic generator; passing an OS entropy source gives the
// same behavior as New.
func NewFromReader(r io.Reader) (*MT19937, error) {
	g := &MT19937{}
	if err := g.seedFromReader(r); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *MT19937) seedFromReader(r io.Reader) error {
	buf := make([]byte, seedBytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return fmt.Errorf("reading seed entropy: %w", err)
	}
	return g.SeedBig(new(big.Int).SetBytes(buf))
}

// Seed reinitializes the generator to the reproducible stream for seed.
// Negative seeds produce the same stream as their absolute value.
func (g *MT19937) Seed(seed int64) {
	v := uint64(seed)
	if seed < 0 {
		v = -v
	}
	key := []uint32{uint32(v)}
	if hi := uint32(v >> 32); hi != 0 {
		key = append(key, hi)
	}
	g.SeedKey(key)
}

// SeedBig reinitializes the generator from an arbitrary-precision seed.
// The magnitude of seed is split into little-endian 32-bit words and fed
// to the array-seeding path, the same derivation Python applies to int
// seeds of any size. The state is unchanged if an error is returned.
func (g *MT19937) SeedBig(seed *big.Int) error {
	if seed == nil {
		return errors.New("mt19937: nil seed")
	}
	g.SeedKey(leWords(seed))
	return nil
}

// leWords returns the little-endian 32-bit words of the magnitude of v.
// A zero value yields the single-word key {0}.
func leWords(v *big.Int) []uint32 {
	b := new(big.Int).Abs(v).Bytes() // big-endian, no leading zeros
	if len(b) == 0 {
		return []uint32{0}
	}
	if pad := len(b) % 4; pad != 0 {
		b = append(make([]byte, 4-pad), b...)
	}
	words := make([]uint32, 0, len(b)/4)
	for i := len(b); i > 0; i -= 4 {
		words = append(words, binary.BigEndian.Uint32(b[i-4:i]))
	}
	return words
}

// SeedKey reinitializes the generator directly from a key of 32-bit
// words, least-significant word first. An empty key is treated as the
// single zero word; every key, including {0}, runs the full mixing
// passes.
func (g *MT19937) SeedKey(key []uint32) {
	if len(key) == 0 {
		key = []uint32{0}
	}

	// Base state, always the same regardless of key.
	g.mt[0] = seedBase
	for i := 1; i < mtN; i++ {
		g.mt[i] = initMult*(g.mt[i-1]^(g.mt[i-1]>>30)) + uint32(i)
	}

	// Circular walk over positions 1..N-1; wrapping carries the last
	// word into position 0 before restarting at 1.
	i := 1
	advance := func() {
		i++
		if i >= mtN {
			g.mt[0] = g.mt[mtN-1]
			i = 1
		}
	}

	count := mtN
	if len(key) > count {
		count = len(key)
	}
	for k := 0; count > 0; count-- {
		g.mt[i] = (g.mt[i] ^ ((g.mt[i-1] ^ (g.mt[i-1] >> 30)) * mixMultA)) + key[k] + uint32(k)
		advance()
		k++
		if k >= len(key) {
			k = 0
		}
	}
	for count = mtN - 1; count > 0; count-- {
		g.mt[i] = (g.mt[i] ^ ((g.mt[i-1] ^ (g.mt[i-1] >> 30)) * mixMultB)) - uint32(i)
		advance()
	}

	// Guarantees a non-zero state.
	g.mt[0] = upperMask

	g.mti = mtN
	g.hasGauss = false
}
