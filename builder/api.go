// SPDX-License-Identifier: MIT
// Package: grafos/builder
//
// api.go: thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates a core.Builder,
//     resolves cfg, runs cons in order, freezes the result.
//   - Every constructor appends its own fresh vertices, so composing several
//     constructors yields their disjoint union (useful for disconnected
//     fixtures).
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/grafos/core"
)

// Constructor appends a topology to b using the resolved builderConfig.
// Constructors MUST validate parameters before growing b and MUST emit
// edges in a stable, documented order.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildGraph resolves bopts, applies every constructor in order to an empty
// core.Builder and returns the frozen graph.
// Any constructor error is wrapped as "BuildGraph: %w".
//
// Complexity: Σ cost of each constructor plus O(V + E log Δ) for Build.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	b, err := core.NewBuilder(0)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return b.Build(), nil
}

// MustBuild is BuildGraph for fixtures known to be valid; it panics on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *core.Graph {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}

// addEdge inserts {u, v} with the next configured weight.
func addEdge(method string, b *core.Builder, cfg builderConfig, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if err := b.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d, w=%g): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}
