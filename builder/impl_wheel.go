// SPDX-License-Identifier: MIT
// Package: mintri/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices): a rim cycle C_{n-1} plus a hub.
//   • The hub is the first appended node; rim nodes follow.
//   • Emits rim edges first (i -> i+1 mod n-1), then spokes hub -> rim[i].
//
// Complexity: O(n) nodes + O(2n-2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mintri/graph"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds the wheel W_n. For n ≥ 5 the rim is
// a chordless cycle, so the wheel is not chordal.
func Wheel(n int) Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		hub := addNodes(g, n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			u := hub + 1 + graph.Node(i)
			v := hub + 1 + graph.Node((i+1)%rim)
			if err := connect(g, methodWheel, u, v); err != nil {
				return err
			}
		}
		for i := 0; i < rim; i++ {
			if err := connect(g, methodWheel, hub, hub+1+graph.Node(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
