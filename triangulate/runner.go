// SPDX-License-Identifier: MIT
// Package: mintri/triangulate
//
// runner.go - per-call mutable state shared by both engines.

package triangulate

import (
	"fmt"

	"github.com/katalvlaran/mintri/graph"
)

// runner owns the result graph of one triangulation call and routes
// progress to the configured logger and hooks.
type runner struct {
	opts      Options
	heuristic Heuristic
	res       *graph.Graph // copy of the input; only gains edges
	order     []graph.Node
	fill      []graph.Edge
}

func newRunner(g *graph.Graph, h Heuristic, opts Options) *runner {
	opts.Logger.Debug("triangulation started",
		"heuristic", h, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	return &runner{
		opts:      opts,
		heuristic: h,
		res:       g.Clone(),
		order:     make([]graph.Node, 0, g.NodeCount()),
	}
}

// visit records v as processed.
func (r *runner) visit(v graph.Node) {
	r.order = append(r.order, v)
	r.opts.OnVisit(v)
}

// addEdge inserts {u,v} into the result and reports it if new.
func (r *runner) addEdge(u, v graph.Node) error {
	if r.res.HasEdge(u, v) {
		return nil
	}
	if err := r.res.AddEdge(u, v); err != nil {
		return err
	}

	return r.recordFill(graph.NewEdge(u, v))
}

// recordFill reports edges that were already inserted into the result.
func (r *runner) recordFill(edges ...graph.Edge) error {
	for _, e := range edges {
		r.fill = append(r.fill, e)
		if err := r.opts.OnFill(e); err != nil {
			return fmt.Errorf("%w: edge {%d,%d}: %w", ErrHook, e.U, e.V, err)
		}
	}

	return nil
}

// finish packages the run into a ChordalGraph.
func (r *runner) finish() *ChordalGraph {
	graph.SortEdges(r.fill)
	r.opts.Logger.Debug("triangulation finished",
		"heuristic", r.heuristic, "fill", len(r.fill), "edges", r.res.EdgeCount())

	return &ChordalGraph{
		Graph:     r.res,
		heuristic: r.heuristic,
		order:     r.order,
		fill:      r.fill,
	}
}
