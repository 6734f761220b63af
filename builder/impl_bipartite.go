// SPDX-License-Identifier: MIT
// Package: mintri/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side gets the first n1 appended nodes, right side the next n2.
//   • Emits edges left[i] -> right[j], i ascending then j ascending.
//
// Complexity: O(n1+n2) nodes + O(n1·n2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mintri/graph"
)

const (
	methodBipartite = "CompleteBipartite"
	minPartition    = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
// K_{m,n} with m,n ≥ 2 contains chordless 4-cycles.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		if n1 < minPartition || n2 < minPartition {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodBipartite, n1, n2, minPartition, ErrTooFewVertices)
		}

		left := addNodes(g, n1+n2)
		right := left + graph.Node(n1)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := connect(g, methodBipartite, left+graph.Node(i), right+graph.Node(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
