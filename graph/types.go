// SPDX-License-Identifier: MIT
// Package: mintri/graph
//
// types.go - Node, NodeSet, Edge, Graph and sentinel errors.
//
// Contract:
//   - Nodes are dense integers in [0, n).
//   - NodeSet is always sorted ascending and duplicate-free.
//   - Graph is simple and undirected: symmetric adjacency, no loops, no multi-edges.
//
// Concurrency:
//   - Graph carries no locks. A triangulation run owns its working copy and
//     treats its input as read-only, so no synchronization is needed.

package graph

import (
	"errors"
	"slices"
	"strconv"
	"strings"
)

// Sentinel errors for graph operations.
var (
	// ErrNodeOutOfRange indicates a node id outside [0, NodeCount()).
	ErrNodeOutOfRange = errors.New("graph: node out of range")

	// ErrLoopNotAllowed indicates an attempt to add an edge (v,v).
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrEdgeNotFound indicates RemoveEdge on an absent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")
)

// Node identifies a vertex by its dense index.
type Node int

// NodeSet is a sorted, duplicate-free set of nodes.
type NodeSet []Node

// NewNodeSet returns the sorted, deduplicated set of the given nodes.
// The input slice is not modified.
func NewNodeSet(nodes ...Node) NodeSet {
	s := make(NodeSet, len(nodes))
	copy(s, nodes)
	slices.Sort(s)

	return slices.Compact(s)
}

// Len returns the number of members.
func (s NodeSet) Len() int { return len(s) }

// Contains reports membership in O(log |s|).
func (s NodeSet) Contains(v Node) bool {
	_, found := slices.BinarySearch(s, v)

	return found
}

// Equal reports whether both sets hold the same members.
func (s NodeSet) Equal(other NodeSet) bool { return slices.Equal(s, other) }

// Key returns a canonical string form of the set, usable as a map key.
// Equal sets produce equal keys.
func (s NodeSet) Key() string {
	var b strings.Builder
	for i, v := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(v)))
	}

	return b.String()
}

// Edge is an undirected edge with U < V.
type Edge struct {
	U, V Node
}

// NewEdge returns the normalized edge {u,v}.
func NewEdge(u, v Node) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}

// compareEdges orders edges lexicographically by (U, V).
func compareEdges(a, b Edge) int {
	if a.U != b.U {
		return int(a.U) - int(b.U)
	}

	return int(a.V) - int(b.V)
}

// SortEdges sorts edges in place by (U, V).
func SortEdges(edges []Edge) { slices.SortFunc(edges, compareEdges) }

// Graph is a simple undirected graph over nodes 0..n-1.
//
// adj[v] holds the neighbors of v; adjacency is kept symmetric by every
// mutating method.
type Graph struct {
	adj   []map[Node]struct{}
	edges int
}

// New returns a graph with n isolated nodes. A negative n yields an empty graph.
// Complexity: O(n).
func New(n int) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{adj: make([]map[Node]struct{}, n)}
	for i := range g.adj {
		g.adj[i] = make(map[Node]struct{})
	}

	return g
}
