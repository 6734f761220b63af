// SPDX-License-Identifier: MIT
// Package: mintri/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges i -> i+1 for i=0..n-2.
//
// Complexity: O(n) nodes + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mintri/graph"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n. Paths are trees
// and therefore chordal.
func Path(n int) Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		first := addNodes(g, n)
		for i := 0; i+1 < n; i++ {
			if err := connect(g, methodPath, first+graph.Node(i), first+graph.Node(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}
