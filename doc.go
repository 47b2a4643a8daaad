// Package corrprune removes redundant, highly collinear features from a
// feature set by graph pruning over a pairwise correlation matrix.
//
// 🚀 What is corrprune?
//
//	A small, deterministic, in-memory library that turns an n×n correlation
//	matrix into an undirected weighted graph (features as nodes, strong
//	correlations as edges) and iteratively prunes a maximal set of features
//	so that no two retained features remain correlated at or above a chosen
//	threshold:
//		• corrgraph/ — graph model + builder: Node, Graph, Build, BuildSlice
//		• prune/     — the two-round pruning loop: leaf elimination, then
//		               max-weight cycle breaking
//
// ✨ Why choose corrprune?
//
//   - Deterministic – sorted scans, explicit tie-breaks, no hidden randomness
//   - Pure Go – no cgo, no I/O, no goroutines; a prune run is a pure function
//     of its input matrix and threshold
//   - Minimal API – build a graph, prune it, read DropList / Retained
//   - Plays well with gonum – any mat.Matrix works as input
//
// Quick ASCII example (threshold 0.9):
//
//	A─(0.95)─B─(0.95)─C        corr(A,C)=0.10, below threshold
//
//	Pruning drops B — the node adjacent to both leaves — and retains {A, C},
//	which are no longer correlated above the threshold.
//
// Typical use:
//
//	g, err := corrgraph.Build(corrMatrix, corrgraph.DefaultOptions())
//	if err != nil { ... }
//	if err = prune.Prune(g); err != nil { ... }
//	keep := g.Retained() // re-index your feature table by these columns
//
//	go get github.com/katalvlaran/corrprune
package corrprune
