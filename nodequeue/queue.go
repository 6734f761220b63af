// SPDX-License-Identifier: MIT
// Package: mintri/nodequeue
//
// queue.go - max-weight node queue over an indexed binary heap.
//
// Contract:
//   - New(n) holds nodes 0..n-1, all at weight 0, none removed.
//   - Pop returns the unremoved node of maximum weight; ties go to the smallest id.
//   - Weights only grow (IncreaseWeight); a node's weight freezes when popped.
//
// Complexity:
//   - Pop, IncreaseWeight: O(log n). Weight, Removed, Len: O(1).

package nodequeue

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/katalvlaran/mintri/graph"
)

// Sentinel errors for queue operations.
var (
	// ErrEmptyQueue is returned by Pop when every node has been removed.
	ErrEmptyQueue = errors.New("nodequeue: queue is empty")

	// ErrNodeRemoved is returned by IncreaseWeight for an already popped node.
	ErrNodeRemoved = errors.New("nodequeue: node already removed")

	// ErrNodeOutOfRange is returned for ids outside [0, n).
	ErrNodeOutOfRange = errors.New("nodequeue: node out of range")
)

// removedPos marks a node that is no longer in the heap.
const removedPos = -1

// Queue yields nodes in order of decreasing weight.
type Queue struct {
	h nodeHeap
}

// New returns a queue of nodes 0..n-1 at weight 0. A negative n yields an empty queue.
// Complexity: O(n).
func New(n int) *Queue {
	if n < 0 {
		n = 0
	}
	q := &Queue{h: nodeHeap{
		order:  make([]graph.Node, n),
		pos:    make([]int, n),
		weight: make([]int, n),
	}}
	for i := 0; i < n; i++ {
		q.h.order[i] = graph.Node(i)
		q.h.pos[i] = i
	}
	// Equal weights and ascending ids already satisfy the heap property;
	// Init keeps the invariant explicit.
	heap.Init(&q.h)

	return q
}

// Len returns the number of nodes not yet popped.
func (q *Queue) Len() int { return q.h.Len() }

// IsEmpty reports whether every node has been popped.
func (q *Queue) IsEmpty() bool { return q.h.Len() == 0 }

// Pop removes and returns the maximum-weight node (smallest id on ties).
func (q *Queue) Pop() (graph.Node, error) {
	if q.h.Len() == 0 {
		return 0, ErrEmptyQueue
	}

	return heap.Pop(&q.h).(graph.Node), nil
}

// Weight returns the current weight of v; for popped nodes, the weight at pop time.
// Out-of-range ids report 0.
func (q *Queue) Weight(v graph.Node) int {
	if !q.inRange(v) {
		return 0
	}

	return q.h.weight[v]
}

// Removed reports whether v has been popped. Out-of-range ids report false.
func (q *Queue) Removed(v graph.Node) bool {
	return q.inRange(v) && q.h.pos[v] == removedPos
}

// IncreaseWeight adds 1 to the weight of v.
//
// Errors:
//   - ErrNodeOutOfRange if v is outside [0, n).
//   - ErrNodeRemoved if v has already been popped.
func (q *Queue) IncreaseWeight(v graph.Node) error {
	if !q.inRange(v) {
		return fmt.Errorf("%w: %d (n=%d)", ErrNodeOutOfRange, v, len(q.h.pos))
	}
	if q.h.pos[v] == removedPos {
		return fmt.Errorf("%w: %d", ErrNodeRemoved, v)
	}
	q.h.weight[v]++
	heap.Fix(&q.h, q.h.pos[v])

	return nil
}

func (q *Queue) inRange(v graph.Node) bool { return v >= 0 && int(v) < len(q.h.pos) }

// nodeHeap implements heap.Interface over node ids.
// order is the heap array; pos[v] is v's index in order, or removedPos.
type nodeHeap struct {
	order  []graph.Node
	pos    []int
	weight []int
}

// Len returns the number of nodes in the heap.
func (h nodeHeap) Len() int { return len(h.order) }

// Less: larger weight first, then smaller id.
func (h nodeHeap) Less(i, j int) bool {
	a, b := h.order[i], h.order[j]
	if h.weight[a] != h.weight[b] {
		return h.weight[a] > h.weight[b]
	}

	return a < b
}

// Swap swaps two heap slots and keeps pos in sync.
func (h nodeHeap) Swap(i, j int) {
	h.order[i], h.order[j] = h.order[j], h.order[i]
	h.pos[h.order[i]] = i
	h.pos[h.order[j]] = j
}

// Push is required by heap.Interface; the queue never grows after New.
func (h *nodeHeap) Push(x interface{}) {
	v := x.(graph.Node)
	h.pos[v] = len(h.order)
	h.order = append(h.order, v)
}

// Pop removes the last heap slot and marks the node removed.
func (h *nodeHeap) Pop() interface{} {
	old := h.order
	n := len(old)
	v := old[n-1]
	h.order = old[:n-1]
	h.pos[v] = removedPos

	return v
}
