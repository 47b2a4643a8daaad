// Package corrgraph models a correlation matrix as an undirected weighted
// graph over integer feature indices, ready for collinearity pruning.
//
// 🚀 What is corrgraph?
//
//	Given an n×n correlation matrix and a threshold in [0,1], Build creates
//	one Node per feature index 0..n-1 and links every pair (i, j), i < j,
//	whose correlation meets or exceeds the threshold. Edge weights are the
//	correlations themselves. Features that never cross the threshold stay in
//	the graph as isolated nodes — they carry no collinearity risk and are
//	always retained.
//
// ✨ Key guarantees:
//
//   - Mutual adjacency: if A lists B with weight w, B lists A with the same w
//   - EdgeCount counts each undirected edge exactly once
//   - No self-loops, at most one edge per pair (ErrSelfLoop, ErrEdgeExists)
//   - Deterministic queries: ActiveIDs, Neighbors and Retained are sorted
//
// ⚙️ Usage:
//
//	import (
//	  "gonum.org/v1/gonum/mat"
//
//	  "github.com/katalvlaran/corrprune/corrgraph"
//	)
//
//	c := mat.NewSymDense(3, []float64{
//	  1.00, 0.95, 0.10,
//	  0.95, 1.00, 0.95,
//	  0.10, 0.95, 1.00,
//	})
//	g, err := corrgraph.Build(c, corrgraph.DefaultOptions())
//	if err != nil {
//	  // ErrNotSquare or ErrBadThreshold
//	}
//	fmt.Println(g.Order(), g.EdgeCount()) // 3 2
//
// The graph is NOT safe for concurrent use: it is meant to be owned by a
// single pruner for the duration of a prune run (see package prune).
//
// Performance: Build is O(n²) over matrix entries; all single-node queries
// are O(degree) or better.
package corrgraph
