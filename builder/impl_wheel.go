// SPDX-License-Identifier: MIT
// Package: grafos/builder
//
// impl_wheel.go: Wheel(n): W_n = C_{n-1} + center.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • The center is the first new vertex; the rim is the next n-1 vertices.
//   • Emits rim edges first (as Cycle), then spokes center-rim[i].
//
// Odd rims make the wheel 4-chromatic, even rims 3-chromatic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/grafos/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that appends an n-vertex wheel.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		center, err := b.Grow(n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}

		rim := n - 1
		for i := 0; i < rim; i++ {
			u := center + 1 + i
			v := center + 1 + (i+1)%rim
			if err := addEdge(methodWheel, b, cfg, u, v); err != nil {
				return err
			}
		}
		for i := 0; i < rim; i++ {
			if err := addEdge(methodWheel, b, cfg, center, center+1+i); err != nil {
				return err
			}
		}

		return nil
	}
}
