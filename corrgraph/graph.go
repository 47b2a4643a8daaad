// SPDX-License-Identifier: MIT

// Package corrgraph: the Graph type — active node store, undirected edge
// count and the append-only drop list — plus all mutators and queries.
//
// Structural invariants maintained here:
//   - if u's adjacency contains v with weight w, v's contains u with w;
//   - edgeCount equals the number of undirected edges, each counted once;
//   - dropList is append-only and duplicate-free (a dropped node leaves the
//     active set and can never be dropped again).
package corrgraph

import (
	"math"
	"sort"
)

// Graph is an undirected weighted graph over feature indices 0..Order()-1.
//
// nodes is the active set: it starts covering the full index universe and
// shrinks as pruning drops or discards nodes. The drop list records dropped
// feature indices in removal order; discarded (isolated) nodes are retained
// and never enter it.
//
// A Graph is exclusively owned by one pruner during a prune run; it is not
// safe for concurrent use.
type Graph struct {
	order   int           // universe size n; ids are 0..n-1
	nodes   map[int]*Node // active node set, keyed by feature index
	edges   int           // undirected edge count
	dropped []int         // feature indices selected for removal, in order
}

// newGraph creates a graph whose active set covers every index 0..n-1,
// all isolated.
func newGraph(n int) *Graph {
	g := &Graph{order: n, nodes: make(map[int]*Node, n)}
	for id := 0; id < n; id++ {
		g.nodes[id] = newNode(id)
	}
	return g
}

// Order returns the size of the original feature universe (the matrix
// dimension n), regardless of how many nodes are still active.
func (g *Graph) Order() int { return g.order }

// EdgeCount returns the number of undirected edges currently present,
// each counted once.
func (g *Graph) EdgeCount() int { return g.edges }

// Pruned reports whether the graph holds no edges: no two active nodes are
// adjacent and pruning has nothing left to do.
func (g *Graph) Pruned() bool { return g.edges == 0 }

// Node returns the active node for the given feature index, if present.
func (g *Graph) Node(id int) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// ActiveIDs returns the feature indices of all active nodes in ascending
// order. The slice is a snapshot: later mutation of the graph does not
// affect it, which makes it safe to iterate while dropping nodes.
// Complexity: O(k·log k) for k active nodes.
func (g *Graph) ActiveIDs() []int {
	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Link establishes a mutual edge between two distinct active nodes with the
// given non-negative correlation weight and increments the edge count.
//
// Returns ErrSelfLoop if u == v, ErrNodeNotFound if either endpoint is not
// active, ErrBadWeight if w is negative or NaN, and ErrEdgeExists if the
// pair is already linked (callers must not double-link a pair).
func (g *Graph) Link(u, v int, w float64) error {
	if u == v {
		return ErrSelfLoop
	}
	nu, ok := g.nodes[u]
	if !ok {
		return ErrNodeNotFound
	}
	nv, ok := g.nodes[v]
	if !ok {
		return ErrNodeNotFound
	}
	if w < 0 || math.IsNaN(w) {
		return ErrBadWeight
	}
	if _, dup := nu.adj[v]; dup {
		return ErrEdgeExists
	}
	nu.adj[v] = w
	nv.adj[u] = w
	g.edges++
	return nil
}

// Unlink removes the mutual edge between two active nodes and decrements
// the edge count.
//
// Returns ErrNodeNotFound if either endpoint is not active, and
// ErrNotAdjacent if the pair is not currently linked — the latter signals a
// broken invariant in the calling algorithm, not a normal runtime condition.
func (g *Graph) Unlink(u, v int) error {
	nu, ok := g.nodes[u]
	if !ok {
		return ErrNodeNotFound
	}
	nv, ok := g.nodes[v]
	if !ok {
		return ErrNodeNotFound
	}
	if _, adj := nu.adj[v]; !adj {
		return ErrNotAdjacent
	}
	delete(nu.adj, v)
	delete(nv.adj, u)
	g.edges--
	return nil
}

// HasLeafNeighbor reports whether the given active node currently has at
// least one neighbor of degree exactly 1 (a leaf).
// Complexity: O(degree).
func (g *Graph) HasLeafNeighbor(id int) bool {
	n, ok := g.nodes[id]
	if !ok {
		return false
	}
	for nb := range n.adj {
		if g.nodes[nb].Degree() == 1 {
			return true
		}
	}
	return false
}

// Drop selects the given node for removal: its feature index is appended to
// the drop list, every incident edge is unlinked (decrementing the edge
// count once per edge), and the node leaves the active set.
//
// Returns ErrNodeNotFound if the node is not active. Any unlink failure is
// a broken structural invariant and is returned as-is.
func (g *Graph) Drop(id int) error {
	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	for _, nb := range n.Neighbors() {
		if err := g.Unlink(id, nb); err != nil {
			return err
		}
	}
	delete(g.nodes, id)
	g.dropped = append(g.dropped, id)
	return nil
}

// Discard removes an isolated node from the active set WITHOUT recording it
// in the drop list: a feature that never crossed the threshold (or whose
// last neighbor was dropped) carries no collinearity risk and is retained.
//
// Returns ErrNodeNotFound if the node is not active, ErrNotIsolated if it
// still has neighbors.
func (g *Graph) Discard(id int) error {
	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	if n.Degree() != 0 {
		return ErrNotIsolated
	}
	delete(g.nodes, id)
	return nil
}

// DropList returns the feature indices selected for removal, in removal
// order. The slice is a fresh copy.
func (g *Graph) DropList() []int {
	out := make([]int, len(g.dropped))
	copy(out, g.dropped)
	return out
}

// Retained returns the complement of the drop list over the full feature
// universe 0..Order()-1, ascending: the columns to keep when re-indexing
// the original feature table.
func (g *Graph) Retained() []int {
	dropped := make(map[int]struct{}, len(g.dropped))
	for _, id := range g.dropped {
		dropped[id] = struct{}{}
	}
	kept := make([]int, 0, g.order-len(g.dropped))
	for id := 0; id < g.order; id++ {
		if _, gone := dropped[id]; !gone {
			kept = append(kept, id)
		}
	}
	return kept
}
