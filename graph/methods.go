// SPDX-License-Identifier: MIT
// Package: mintri/graph
//
// methods.go - node/edge lifecycle and adjacency queries.
//
// Determinism:
//   - Every query returning several nodes or edges returns them sorted, so
//     algorithms built on top never observe map iteration order.

package graph

import (
	"fmt"
	"slices"
)

// AddNode appends a new isolated node and returns its id (the previous NodeCount).
// Complexity: O(1) amortized.
func (g *Graph) AddNode() Node {
	g.adj = append(g.adj, make(map[Node]struct{}))

	return Node(len(g.adj) - 1)
}

// NodeCount returns n.
func (g *Graph) NodeCount() int { return len(g.adj) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// HasNode reports whether v lies in [0, n).
func (g *Graph) HasNode(v Node) bool { return v >= 0 && int(v) < len(g.adj) }

// Nodes returns the full node set {0..n-1}.
// Complexity: O(n).
func (g *Graph) Nodes() NodeSet {
	s := make(NodeSet, len(g.adj))
	for i := range s {
		s[i] = Node(i)
	}

	return s
}

// HasEdge reports whether {u,v} is an edge. Out-of-range ids report false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v Node) bool {
	if !g.HasNode(u) || !g.HasNode(v) {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// AddEdge inserts {u,v}. Adding an existing edge is a no-op.
//
// Errors:
//   - ErrNodeOutOfRange if either endpoint is outside [0, n).
//   - ErrLoopNotAllowed if u == v.
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v Node) error {
	if !g.HasNode(u) || !g.HasNode(v) {
		return fmt.Errorf("%w: AddEdge(%d,%d) with n=%d", ErrNodeOutOfRange, u, v, len(g.adj))
	}
	if u == v {
		return fmt.Errorf("%w: AddEdge(%d,%d)", ErrLoopNotAllowed, u, v)
	}
	g.link(u, v)

	return nil
}

// link inserts {u,v} for in-range, distinct endpoints and reports whether the edge is new.
func (g *Graph) link(u, v Node) bool {
	if _, ok := g.adj[u][v]; ok {
		return false
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edges++

	return true
}

// RemoveEdge deletes {u,v}.
//
// Errors:
//   - ErrNodeOutOfRange if either endpoint is outside [0, n).
//   - ErrEdgeNotFound if the edge is absent.
func (g *Graph) RemoveEdge(u, v Node) error {
	if !g.HasNode(u) || !g.HasNode(v) {
		return fmt.Errorf("%w: RemoveEdge(%d,%d) with n=%d", ErrNodeOutOfRange, u, v, len(g.adj))
	}
	if _, ok := g.adj[u][v]; !ok {
		return fmt.Errorf("%w: {%d,%d}", ErrEdgeNotFound, u, v)
	}
	delete(g.adj[u], v)
	delete(g.adj[v], u)
	g.edges--

	return nil
}

// Degree returns |N(v)|, or 0 for an out-of-range id.
func (g *Graph) Degree(v Node) int {
	if !g.HasNode(v) {
		return 0
	}

	return len(g.adj[v])
}

// Neighbors returns N(v) as a sorted copy. Out-of-range ids yield an empty set.
// Complexity: O(d·log d).
func (g *Graph) Neighbors(v Node) NodeSet {
	if !g.HasNode(v) {
		return NodeSet{}
	}
	s := make(NodeSet, 0, len(g.adj[v]))
	for u := range g.adj[v] {
		s = append(s, u)
	}
	slices.Sort(s)

	return s
}

// Edges returns every edge once, sorted by (U, V).
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for u := range g.adj {
		for v := range g.adj[u] {
			if Node(u) < v {
				out = append(out, Edge{U: Node(u), V: v})
			}
		}
	}
	SortEdges(out)

	return out
}

// Clone returns an independent deep copy.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{adj: make([]map[Node]struct{}, len(g.adj)), edges: g.edges}
	for v, nbrs := range g.adj {
		m := make(map[Node]struct{}, len(nbrs))
		for u := range nbrs {
			m[u] = struct{}{}
		}
		clone.adj[v] = m
	}

	return clone
}

// Equal reports whether both graphs have the same node count and edge set.
func (g *Graph) Equal(other *Graph) bool {
	if other == nil || len(g.adj) != len(other.adj) || g.edges != other.edges {
		return false
	}
	for v, nbrs := range g.adj {
		for u := range nbrs {
			if _, ok := other.adj[v][u]; !ok {
				return false
			}
		}
	}

	return true
}

// Contains reports whether every edge of sub is an edge of g over the same node range.
func (g *Graph) Contains(sub *Graph) bool {
	if sub == nil || len(sub.adj) > len(g.adj) {
		return false
	}
	for v, nbrs := range sub.adj {
		for u := range nbrs {
			if _, ok := g.adj[v][u]; !ok {
				return false
			}
		}
	}

	return true
}
