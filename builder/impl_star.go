// SPDX-License-Identifier: MIT
// Package: mintri/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is the first appended node; leaves follow in ascending order.
//   - Emits spokes in stable order hub → leaf[i].
//
// Complexity: O(n) nodes + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mintri/graph"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		hub := addNodes(g, n)
		for i := 1; i < n; i++ {
			if err := connect(g, methodStar, hub, hub+graph.Node(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
