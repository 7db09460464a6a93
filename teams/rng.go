// Package teams - RNG utilities for multi-start diversification.
//
// Goals:
//   - Determinism: same seed ⇒ identical noise on every platform.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independence: one derived stream per round so rounds can run in any order.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Streams are derived sequentially
//     before any worker starts and each worker owns exactly one stream.
package teams

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64 finalizer, so neighbouring stream ids produce
// unrelated seeds.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent deterministic stream from base and a
// stream id. base.Int63() is consumed once per call; base==nil falls back
// to defaultRNGSeed as the parent.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultRNGSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// roundStreams derives one stream per diversification round, in round order.
func roundStreams(base *rand.Rand, rounds int) []*rand.Rand {
	out := make([]*rand.Rand, rounds)

	var r int
	for r = 0; r < rounds; r++ {
		out[r] = deriveRNG(base, uint64(r))
	}

	return out
}
