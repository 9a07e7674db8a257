// Package cluster - RNG utilities for randomized initialization.
//
// Goals:
//   - Determinism: same seed ⇒ identical initial centroids across runs.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     anywhere.
package cluster

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// samplePoints returns k starting centroids drawn from pts without
// replacement via a partial Fisher–Yates pass over an index permutation.
// When k exceeds len(pts), the extra centroids repeat points in shuffled
// order; duplicates simply receive no members (lowest index wins ties)
// and stay unmoved.
//
// Complexity: O(n + k).
func samplePoints(pts []Point, k int, rng *rand.Rand) []Point {
	n := len(pts)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		idx[i], idx[j] = idx[j], idx[i]
	}

	out := make([]Point, k)
	for i := 0; i < k; i++ {
		out[i] = pts[idx[i%n]]
	}

	return out
}
