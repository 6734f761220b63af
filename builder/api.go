// SPDX-License-Identifier: MIT
// Package: mintri/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Every constructor appends fresh nodes, so composing constructors yields a disjoint union.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.
//
// Usage hints:
//   - BuildGraph(nil, Cycle(4), Cycle(4)) gives two disjoint chordless 4-cycles on nodes 0..7.
//   - Use WithSeed(...) to freeze RandomSparse.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mintri/graph"
)

// Constructor appends a deterministic topology to g using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add their own nodes via g.AddNode and only connect those nodes.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *graph.Graph, cfg builderConfig) error

// BuildGraph creates an empty graph, resolves the builder configuration from
// bopts, and applies all constructors in order. Any constructor error is
// wrapped with the context "BuildGraph: %w" and returned immediately; no
// partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	g := graph.New(0)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addNodes appends n fresh nodes and returns the id of the first one.
// The new ids are first, first+1, ..., first+n-1.
func addNodes(g *graph.Graph, n int) graph.Node {
	first := graph.Node(g.NodeCount())
	for i := 0; i < n; i++ {
		g.AddNode()
	}

	return first
}

// connect adds {u,v} and wraps any failure with method context.
func connect(g *graph.Graph, method string, u, v graph.Node) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
	}

	return nil
}
