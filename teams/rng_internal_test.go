package teams

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRNGFromSeed_ZeroUsesDefault(t *testing.T) {
	a, b := rngFromSeed(0), rngFromSeed(defaultRNGSeed)
	for i := 0; i < 8; i++ {
		require.Equal(t, b.Int63(), a.Int63())
	}
}

func TestDeriveSeed_StreamsDiffer(t *testing.T) {
	seen := make(map[int64]uint64)
	var s uint64
	for s = 0; s < 256; s++ {
		v := deriveSeed(42, s)
		prev, dup := seen[v]
		require.False(t, dup, "streams %d and %d collide", prev, s)
		seen[v] = s
	}
	require.NotEqual(t, deriveSeed(1, 0), deriveSeed(2, 0))
}

func TestDeriveRNG_NilBase(t *testing.T) {
	a := deriveRNG(nil, 3)
	b := rand.New(rand.NewSource(deriveSeed(defaultRNGSeed, 3)))
	require.Equal(t, b.Int63(), a.Int63())
}

func TestRoundStreams_Deterministic(t *testing.T) {
	x := roundStreams(rngFromSeed(9), 4)
	y := roundStreams(rngFromSeed(9), 4)
	require.Len(t, x, 4)
	for r := range x {
		require.Equal(t, x[r].Int63(), y[r].Int63(), "round %d", r)
	}

	// Each round draws from its own stream.
	z := roundStreams(rngFromSeed(9), 2)
	require.NotEqual(t, z[0].Int63(), z[1].Int63())
}

func TestOptions_BaseRand(t *testing.T) {
	injected := rand.New(rand.NewSource(5))
	o := Options{Seed: 100, Rand: injected}
	require.Same(t, injected, o.baseRand())

	o.Rand = nil
	require.Equal(t, rngFromSeed(100).Int63(), o.baseRand().Int63())
}
