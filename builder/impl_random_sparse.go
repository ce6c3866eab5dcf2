// SPDX-License-Identifier: MIT
// Package: grafos/builder
//
// impl_random_sparse.go: RandomSparse(n, p): Erdős–Rényi-like G(n, p).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   • One Bernoulli trial per unordered pair {i,j}, i asc then j asc (j > i);
//     the weight is drawn right after a successful trial.
//
// Determinism: fixed trial order ⇒ identical graphs for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/grafos/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n, p).
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		// RNG is only required for true stochastic sampling.
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base, err := b.Grow(n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, err)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !trial(cfg, p) {
					continue
				}
				if err := addEdge(methodRandomSparse, b, cfg, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// trial performs one Bernoulli(p) draw; p ∈ {0,1} never touches the RNG.
func trial(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
