package mt19937_test

import (
	"math"
	"math/big"
	"testing"

	mt19937 "github.com/j-echevarria/mersenne-twister"
)

func TestNegativeSeedMatchesAbs(t *testing.T) {
	a := mt19937.NewSeeded(-42)
	b := mt19937.NewSeeded(42)
	for i := 0; i < 1000; i++ {
		if ga, gb := a.Uint32(), b.Uint32(); ga != gb {
			t.Fatalf("word %d: seed -42 gave %d, seed 42 gave %d", i, ga, gb)
		}
	}
}

func TestZeroSeed(t *testing.T) {
	g := mt19937.NewSeeded(0)
	// Zero runs the full mixing path with the single-word key {0};
	// the stream must be non-degenerate.
	seen := map[uint32]bool{}
	for i := 0; i < 100; i++ {
		seen[g.Uint32()] = true
	}
	if len(seen) < 90 {
		t.Errorf("zero seed produced only %d distinct words in 100", len(seen))
	}

	a := mt19937.NewSeeded(0)
	b := &mt19937.MT19937{}
	b.SeedKey([]uint32{0})
	for i := 0; i < 100; i++ {
		if ga, gb := a.Uint32(), b.Uint32(); ga != gb {
			t.Fatalf("word %d: Seed(0) gave %d, SeedKey({0}) gave %d", i, ga, gb)
		}
	}
}

func TestSeedKey(t *testing.T) {
	// Reference: random.Random(1 + (2<<32) + (3<<64)), whose key
	// derivation is the little-endian word sequence {1, 2, 3}.
	g := &mt19937.MT19937{}
	g.SeedKey([]uint32{1, 2, 3})
	want := []uint32{2619334238, 1552691353, 3808334787, 2540200029}
	for i, w := range want {
		if got := g.Uint32(); got != w {
			t.Errorf("word %d: got %d, want %d", i, got, w)
		}
	}
}

func TestSeedKeyEmpty(t *testing.T) {
	a := &mt19937.MT19937{}
	a.SeedKey(nil)
	b := mt19937.NewSeeded(0)
	for i := 0; i < 100; i++ {
		if ga, gb := a.Uint32(), b.Uint32(); ga != gb {
			t.Fatalf("word %d: empty key gave %d, Seed(0) gave %d", i, ga, gb)
		}
	}
}

func TestSeedWideInt64(t *testing.T) {
	// Seeds past 2^32 must split into two key words; the int64 and
	// big.Int paths must agree.
	const seed = int64(1)<<33 + 5
	a := mt19937.NewSeeded(seed)
	b, err := mt19937.NewFromBig(big.NewInt(seed))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 1000; i++ {
		if ga, gb := a.Uint32(), b.Uint32(); ga != gb {
			t.Fatalf("word %d: int64 path gave %d, big path gave %d", i, ga, gb)
		}
	}
}

func TestSeedMinInt64(t *testing.T) {
	// abs(MinInt64) overflows int64; the magnitude 2^63 must still chunk
	// into two words. First word from random.Random(-2**63).
	g := mt19937.NewSeeded(math.MinInt64)
	if got, want := g.Uint32(), uint32(2377109768); got != want {
		t.Errorf("first word: got %d, want %d", got, want)
	}
}

func TestSeedBigNilLeavesStateUnchanged(t *testing.T) {
	g := mt19937.NewSeeded(42)
	ref := mt19937.NewSeeded(42)
	g.Uint32()
	ref.Uint32()

	if err := g.SeedBig(nil); err == nil {
		t.Fatal("expected error for nil seed")
	}
	for i := 0; i < 100; i++ {
		if got, want := g.Uint32(), ref.Uint32(); got != want {
			t.Fatalf("word %d after failed seed: got %d, want %d", i, got, want)
		}
	}
}

func TestReseedRestartsStream(t *testing.T) {
	g := mt19937.NewSeeded(7)
	for i := 0; i < 700; i++ {
		g.Uint32()
	}
	g.Seed(7)
	ref := mt19937.NewSeeded(7)
	for i := 0; i < 1000; i++ {
		if got, want := g.Uint32(), ref.Uint32(); got != want {
			t.Fatalf("word %d after reseed: got %d, want %d", i, got, want)
		}
	}
}
