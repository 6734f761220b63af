// SPDX-License-Identifier: MIT
// Package: mintri/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Appends n nodes first..first+n-1.
//   • Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) nodes + O(n) edges.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mintri/graph"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-node simple cycle C_n.
// For n ≥ 4 the cycle is chordless, the smallest non-chordal graphs.
func Cycle(n int) Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		first := addNodes(g, n)
		// Emit edges in ascending i; for i==n-1, connect to first to close the ring.
		for i := 0; i < n; i++ {
			u := first + graph.Node(i)
			v := first + graph.Node((i+1)%n)
			if err := connect(g, methodCycle, u, v); err != nil {
				return err
			}
		}

		return nil
	}
}
