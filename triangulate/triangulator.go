// SPDX-License-Identifier: MIT
// Package: mintri/triangulate
//
// triangulator.go - the Triangulator facade and the ChordalGraph result.
//
// Policy:
//   - A Triangulator holds one immutable heuristic and resolved options.
//   - Each Triangulate call allocates its own working copy and auxiliary
//     state; nothing is cached across calls.

package triangulate

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/mintri/chordal"
	"github.com/katalvlaran/mintri/graph"
)

// Triangulator dispatches to MCS-M or one of the LB-Triang variants.
type Triangulator struct {
	heuristic Heuristic
	opts      Options
}

// New returns a Triangulator fixed to heuristic h.
//
// Errors:
//   - ErrUnknownHeuristic if h is not one of Heuristics().
//   - ErrOptionViolation for invalid options.
func New(h Heuristic, opts ...Option) (*Triangulator, error) {
	if !h.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownHeuristic, h)
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Triangulator{heuristic: h, opts: o}, nil
}

// Heuristic returns the configured heuristic.
func (t *Triangulator) Heuristic() Heuristic { return t.heuristic }

// Triangulate returns a chordal supergraph of g built by the configured
// heuristic. g is read-only for the duration of the call.
//
// Errors: ErrGraphNil, or a hook error wrapped in ErrHook.
func (t *Triangulator) Triangulate(g *graph.Graph) (*ChordalGraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if t.heuristic == HeuristicMCSM {
		return runMCSM(g, t.opts)
	}

	return runLBTriang(g, t.heuristic, t.opts)
}

// ChordalGraph is a triangulation result. It owns its graph, which contains
// every edge of the input plus the fill edges.
type ChordalGraph struct {
	*graph.Graph

	heuristic Heuristic
	order     []graph.Node
	fill      []graph.Edge
}

// Heuristic returns the heuristic that produced this triangulation.
func (c *ChordalGraph) Heuristic() Heuristic { return c.heuristic }

// Fill returns the edges added to the input, sorted by (U, V).
func (c *ChordalGraph) Fill() []graph.Edge { return slices.Clone(c.fill) }

// Order returns the vertices in the order the engine processed them.
func (c *ChordalGraph) Order() []graph.Node { return slices.Clone(c.order) }

// IsChordal reports whether the graph is chordal.
func (c *ChordalGraph) IsChordal() bool { return chordal.IsChordal(c.Graph) }

// MaximalCliques returns the maximal cliques of the triangulation; they are
// the bags of a tree decomposition of the input.
func (c *ChordalGraph) MaximalCliques() ([]graph.NodeSet, error) {
	return chordal.MaximalCliques(c.Graph)
}

// IsMinimal reports whether the triangulation is chordal and no single fill
// edge can be removed while keeping it chordal. For chordal supergraphs this
// single-edge test is equivalent to inclusion-minimality.
//
// Complexity: O(|Fill|·(V + E)·log V).
func (c *ChordalGraph) IsMinimal() bool {
	if !c.IsChordal() {
		return false
	}
	for _, e := range c.fill {
		probe := c.Graph.Clone()
		if err := probe.RemoveEdge(e.U, e.V); err != nil {
			return false
		}
		if chordal.IsChordal(probe) {
			return false
		}
	}

	return true
}
