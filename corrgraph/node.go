// SPDX-License-Identifier: MIT

// Package corrgraph: the Node type and its read-only accessors.
// Adjacency is stored flat, keyed by neighbor id rather than by node
// pointer, so mutually linked nodes never reference each other directly.
package corrgraph

import "sort"

// Node is a single feature vertex. Its id is the feature's column index in
// the input matrix and is immutable for the life of the graph.
//
// Nodes are created by Build and mutated only through Graph.Link, Unlink,
// Drop and Discard; the accessors below never modify the node.
type Node struct {
	id  int
	adj map[int]float64 // neighbor id → correlation weight
}

// ID returns the feature index this node represents.
func (n *Node) ID() int { return n.id }

// Degree returns the number of current neighbors.
// Complexity: O(1).
func (n *Node) Degree() int { return len(n.adj) }

// Weight returns the correlation weight to the given neighbor and whether
// that neighbor is currently adjacent.
func (n *Node) Weight(other int) (float64, bool) {
	w, ok := n.adj[other]
	return w, ok
}

// TotalWeight returns the sum of all current adjacency weights — a
// degree-and-strength-weighted collinearity score.
// Complexity: O(degree).
func (n *Node) TotalWeight() float64 {
	var sum float64
	for _, w := range n.adj {
		sum += w
	}
	return sum
}

// Neighbors returns the ids of all current neighbors in ascending order.
// The slice is a fresh copy; mutating it does not affect the node.
// Complexity: O(degree·log degree).
func (n *Node) Neighbors() []int {
	ids := make([]int, 0, len(n.adj))
	for id := range n.adj {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// newNode creates an isolated node for the given feature index.
func newNode(id int) *Node {
	return &Node{id: id, adj: make(map[int]float64)}
}
