// SPDX-License-Identifier: MIT
// Package: grafos/builder
//
// impl_complete.go: Complete(n): complete graph K_n.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); K_1 is a single isolated vertex.
//   • Emits edges for i asc, j asc with i < j.
//
// Complexity: O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/grafos/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that appends K_n.
func Complete(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base, err := b.Grow(n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodComplete, err)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, b, cfg, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
