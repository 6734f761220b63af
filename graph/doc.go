// Package graph provides the simple undirected graph consumed by the
// triangulation engines: dense integer nodes, sorted neighbor sets,
// component enumeration with an exclusion set, and batch saturation.
//
// What
//
//   - Node is an index in [0, n); NodeSet is a sorted, duplicate-free slice.
//   - Graph is simple and undirected: symmetric adjacency, no loops, no multi-edges.
//   - Clone produces an independent copy; triangulations are built on clones
//     and only ever gain edges.
//
// Determinism
//
//	Neighbors, Nodes, Edges, NeighborsOfSet and ComponentsExcluding return
//	sorted results regardless of the internal map layout.
//
// Complexity (V = nodes, E = edges)
//
//   - HasEdge, AddEdge, RemoveEdge: O(1)
//   - Neighbors(v): O(d·log d)
//   - ComponentsExcluding: O(V + E)
//   - Saturate(sets): O(Σ |s|²)
//
// Usage
//
//	g := graph.New(4)
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(1, 2)
//	comps := g.ComponentsExcluding(graph.NewNodeSet(1)) // [[0] [2] [3]]
package graph
