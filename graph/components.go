// SPDX-License-Identifier: MIT
// Package: mintri/graph
//
// components.go - connected components with an exclusion set, set neighborhoods,
// and batch saturation.

package graph

import "slices"

// ComponentsExcluding returns the vertex sets of the connected components of the
// subgraph induced on V \ removed. Components are discovered by BFS seeded in
// ascending id order; each returned set is sorted.
// Out-of-range ids in removed are ignored.
//
// Time:   O(V + E).
// Memory: O(V) for seen flags and the queue.
func (g *Graph) ComponentsExcluding(removed NodeSet) []NodeSet {
	n := len(g.adj)
	seen := make([]bool, n)
	for _, r := range removed {
		if g.HasNode(r) {
			seen[r] = true
		}
	}

	var comps []NodeSet
	queue := make([]Node, 0, n)
	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		// BFS to collect component
		queue = append(queue[:0], Node(s))
		seen[s] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for w := range g.adj[u] {
				if !seen[w] {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}
		comp := make(NodeSet, len(queue))
		copy(comp, queue)
		slices.Sort(comp)
		comps = append(comps, comp)
	}

	return comps
}

// Components returns the connected components of the whole graph.
func (g *Graph) Components() []NodeSet { return g.ComponentsExcluding(nil) }

// NeighborsOfSet returns N(s) = (∪_{x∈s} N(x)) \ s, sorted.
// Complexity: O(Σ deg(x)).
func (g *Graph) NeighborsOfSet(s NodeSet) NodeSet {
	marked := make(map[Node]struct{})
	for _, x := range s {
		if !g.HasNode(x) {
			continue
		}
		for u := range g.adj[x] {
			marked[u] = struct{}{}
		}
	}
	out := make(NodeSet, 0, len(marked))
	for u := range marked {
		if !s.Contains(u) {
			out = append(out, u)
		}
	}
	slices.Sort(out)

	return out
}

// IsClique reports whether every pair of members is adjacent.
// Sets of size 0 or 1 are cliques.
func (g *Graph) IsClique(s NodeSet) bool {
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			if !g.HasEdge(s[i], s[j]) {
				return false
			}
		}
	}

	return true
}

// MissingEdges returns, sorted, the pairs of s that are not adjacent in g.
func (g *Graph) MissingEdges(s NodeSet) []Edge {
	var out []Edge
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			if !g.HasEdge(s[i], s[j]) {
				out = append(out, NewEdge(s[i], s[j]))
			}
		}
	}

	return out
}

// Saturate turns each set into a clique by adding all missing edges among its
// members. Out-of-range members are skipped. Returns the edges that were newly
// added, in insertion order.
// Complexity: O(Σ |s|²).
func (g *Graph) Saturate(sets []NodeSet) []Edge {
	var added []Edge
	for _, s := range sets {
		for i := 0; i < len(s); i++ {
			if !g.HasNode(s[i]) {
				continue
			}
			for j := i + 1; j < len(s); j++ {
				if !g.HasNode(s[j]) || s[i] == s[j] {
					continue
				}
				if g.link(s[i], s[j]) {
					added = append(added, NewEdge(s[i], s[j]))
				}
			}
		}
	}

	return added
}
