// Package prune eliminates collinear features from a correlation graph by
// iterative two-round node removal.
//
// 🚀 How pruning works
//
//	Prune alternates two rounds over the live graph until no edge remains:
//
//	  R1 (leaf elimination)    — drop every node that has a degree-1
//	                             neighbor: removing it resolves the leaf's
//	                             only edge "for free" while also discharging
//	                             all of the node's other edges.
//	  R2 (cycle/pair breaking) — reached only when R1 made no progress, i.e.
//	                             the remaining structure is all cycles. Drop
//	                             the single node with the greatest total
//	                             adjacency weight (ties → lowest index).
//
//	Isolated nodes are quietly discarded from the active set and retained;
//	they never enter the drop list.
//
// ✨ Guarantees:
//
//   - Terminates in at most O(n) rounds: every R1+R2 cycle strictly
//     decreases the edge count
//   - Deterministic: rounds scan feature indices in ascending order and R2
//     breaks ties toward the lowest index
//   - Idempotent: pruning an already-pruned graph changes nothing
//   - The retained set induces a subgraph with zero edges — no retained
//     pair is correlated at or above the build threshold
//
// ⚙️ Usage:
//
//	g, err := corrgraph.Build(corrMatrix, corrgraph.DefaultOptions())
//	if err != nil { ... }
//	if err = prune.Prune(g); err != nil {
//	  // only ever a broken structural invariant — a bug, not bad data
//	}
//	fmt.Println(g.DropList(), g.Retained())
//
// Complexity: each round is O(n · average degree); total work is bounded by
// the feature count, expected in the hundreds to low thousands.
package prune
