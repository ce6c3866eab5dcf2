// SPDX-License-Identifier: MIT
// Package: grafos/builder
//
// impl_path.go: Path(n): simple path P_n.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges i-(i+1) for i = 0..n-2 (offsets relative to the first new vertex).

package builder

import (
	"fmt"

	"github.com/katalvlaran/grafos/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that appends an n-vertex path.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base, err := b.Grow(n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodPath, err)
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(methodPath, b, cfg, base+i, base+i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
