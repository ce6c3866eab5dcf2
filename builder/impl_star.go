// SPDX-License-Identifier: MIT
// Package: grafos/builder
//
// impl_star.go: Star(n): center plus n-1 leaves.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The center is the first new vertex; leaves follow in ascending order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/grafos/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that appends a star with n vertices.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		center, err := b.Grow(n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodStar, err)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, b, cfg, center, center+i); err != nil {
				return err
			}
		}

		return nil
	}
}
