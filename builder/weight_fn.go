// SPDX-License-Identifier: MIT
// Package: grafos/builder
//
// weight_fn.go: edge-weight generators.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is set.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeight returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeight(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("builder: ConstantWeight(%g) must be ≥ 0", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeight returns a WeightFn sampling uniformly in [lo, hi).
// With a nil RNG it yields lo. Panics if lo < 0 or hi < lo.
func UniformWeight(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("builder: UniformWeight requires 0 ≤ lo ≤ hi, got lo=%g hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || hi == lo {
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// IntegerWeight returns a WeightFn sampling integers uniformly in [lo, hi].
// Integral weights keep MST totals exact in floating point.
// With a nil RNG it yields lo. Panics if lo < 0 or hi < lo.
func IntegerWeight(lo, hi int) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("builder: IntegerWeight requires 0 ≤ lo ≤ hi, got lo=%d hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(lo)
		}

		return float64(lo + rng.Intn(hi-lo+1))
	}
}
