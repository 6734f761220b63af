// Package triangulate turns an undirected graph into a chordal supergraph
// (a triangulation) by adding fill edges.
//
// What
//
//   - MCSM: exact minimal triangulation by weighted multi-level reachability
//     search (MCS-M). No single fill edge can be removed without breaking
//     chordality.
//   - LBTriang: saturates the minimal separators included in each vertex
//     neighborhood, visiting vertices in natural, min-degree or min-fill order.
//   - Triangulator: immutable facade selecting one of the four heuristics.
//   - Building blocks: FillCost, PickMinDegree, PickMinFill, Substars,
//     MakeVertexLBSimplicial.
//
// Why
//
//	Triangulations underpin tree decompositions, exact inference in graphical
//	models and separator enumeration. Minimality is local: none of these
//	heuristics promises a minimum fill, which is NP-hard.
//
// Determinism
//
//	Ties are always broken by smallest node id: the MCS-M queue pops the
//	smallest id among maximum weights, and the selectors keep the first
//	minimum in ascending order. Repeated runs on equal inputs add identical
//	fill edges.
//
// Observability
//
//	WithLogger attaches a github.com/charmbracelet/log logger that receives
//	Debug records; WithOnVisit and WithOnFill expose per-vertex and per-edge
//	hooks. An OnFill error aborts the run.
//
// Usage
//
//	t, err := triangulate.New(triangulate.HeuristicMCSM)
//	if err != nil {
//	    // ErrUnknownHeuristic or ErrOptionViolation
//	}
//	h, err := t.Triangulate(g)
//	if err != nil {
//	    // ErrGraphNil or ErrHook
//	}
//	fmt.Println(h.Fill())
//
// Concurrency
//
//	A call owns all of its state. A Triangulator may be shared across
//	goroutines as long as the input graphs are not mutated during a call and
//	the configured hooks are safe for concurrent use.
package triangulate
