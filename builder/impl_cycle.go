// SPDX-License-Identifier: MIT
// Package: grafos/builder
//
// impl_cycle.go: Cycle(n): simple cycle C_n.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i-(i+1)%n for i = 0..n-1.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/grafos/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that appends an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		// Validate parameter domain early (no work on invalid input).
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base, err := b.Grow(n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}

		// For i == n-1 connect back to the first vertex to close the ring.
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, b, cfg, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
