// SPDX-License-Identifier: MIT
// Package: grafos/builder
//
// impl_bipartite.go: CompleteBipartite(n1, n2): K_{n1,n2}.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side is the first n1 new vertices, right side the next n2.
//   • Emits edges for left asc, right asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/grafos/core"
)

const (
	methodBipartite = "CompleteBipartite"
	minPartSize     = 1
)

// CompleteBipartite returns a Constructor that appends K_{n1,n2}.
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n1 < minPartSize || n2 < minPartSize {
			return fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w",
				methodBipartite, n1, n2, minPartSize, ErrTooFewVertices)
		}
		left, err := b.Grow(n1 + n2)
		if err != nil {
			return fmt.Errorf("%s: %w", methodBipartite, err)
		}
		right := left + n1
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := addEdge(methodBipartite, b, cfg, left+i, right+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
