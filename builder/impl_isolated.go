// SPDX-License-Identifier: MIT
// Package: grafos/builder
//
// impl_isolated.go: Isolated(n): n vertices without edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/grafos/core"
)

const methodIsolated = "Isolated"

// Isolated returns a Constructor that appends n isolated vertices (n ≥ 1).
// Complexity: O(n).
func Isolated(n int) Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodIsolated, n, ErrTooFewVertices)
		}
		if _, err := b.Grow(n); err != nil {
			return fmt.Errorf("%s: %w", methodIsolated, err)
		}

		return nil
	}
}
