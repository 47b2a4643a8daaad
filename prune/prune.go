// SPDX-License-Identifier: MIT

package prune

import (
	"fmt"

	"github.com/katalvlaran/corrprune/corrgraph"
)

// Prune — iterative collinearity pruning
//
// Description:
//
//	Prune mutates g in place until its edge count reaches zero, selecting at
//	each step the locally best feature to remove. Afterwards g.DropList()
//	holds the removed feature indices in removal order and g.Retained()
//	holds the complement — a feature set in which no pair is correlated at
//	or above the build threshold.
//
// Algorithm outline:
//
//  1. While g.EdgeCount() > 0:
//     a. Run R1 (leafRound): snapshot the active ids ascending; for each id
//     still live — Discard it if isolated, Drop it if it has a degree-1
//     neighbor.
//     b. If the edge count hit zero, stop.
//     c. If R1 removed no edge, the remaining structure is all cycles and
//     mutual pairs; run R2 (cycleRound): Drop the node with the strictly
//     greatest TotalWeight, ties resolved to the lowest feature index.
//  2. A repeated call on a pruned graph is a no-op.
//
// Termination: whenever the loop body runs, either R1 or R2 removes at
// least one edge (the R2 maximum is taken over nodes of positive degree),
// so the edge count strictly decreases and the loop ends after O(n) rounds.
//
// Errors:
//
//	A non-nil error reports a broken structural invariant inside the graph
//	(e.g. an unlink of a non-adjacent pair). It is never expected for a
//	graph produced by corrgraph.Build and indicates a logic bug, not bad
//	input; there is nothing to retry.
func Prune(g *corrgraph.Graph) error {
	for g.EdgeCount() > 0 {
		before := g.EdgeCount()
		if err := leafRound(g); err != nil {
			return fmt.Errorf("prune: leaf round: %w", err)
		}
		if g.EdgeCount() == 0 {
			break
		}
		if g.EdgeCount() == before {
			if err := cycleRound(g); err != nil {
				return fmt.Errorf("prune: cycle round: %w", err)
			}
		}
	}
	return nil
}

// leafRound is R1: one pass of leaf elimination over a snapshot of the
// active node set. Mutation during the pass never affects which ids are
// visited; ids dropped earlier in the same pass are skipped.
func leafRound(g *corrgraph.Graph) error {
	for _, id := range g.ActiveIDs() {
		n, ok := g.Node(id)
		if !ok {
			continue // removed earlier in this pass
		}
		if n.Degree() == 0 {
			// No collinearity risk: retain silently.
			if err := g.Discard(id); err != nil {
				return err
			}
			continue
		}
		if g.HasLeafNeighbor(id) {
			if err := g.Drop(id); err != nil {
				return err
			}
		}
	}
	return nil
}

// cycleRound is R2: drop the single active node with the strictly greatest
// total adjacency weight. The scan runs over ascending ids with a strict
// greater-than comparison, so ties resolve to the lowest feature index.
// The "no candidate yet" state is the explicit best == -1, never a
// placeholder node.
func cycleRound(g *corrgraph.Graph) error {
	best, bestWeight := -1, 0.0
	for _, id := range g.ActiveIDs() {
		n, ok := g.Node(id)
		if !ok {
			continue
		}
		if n.Degree() == 0 {
			if err := g.Discard(id); err != nil {
				return err
			}
			continue
		}
		if w := n.TotalWeight(); best == -1 || w > bestWeight {
			best, bestWeight = id, w
		}
	}
	if best == -1 {
		return nil // no edges left; nothing to break
	}
	return g.Drop(best)
}
