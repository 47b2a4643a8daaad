// SPDX-License-Identifier: MIT

// Package corrgraph: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// corrgraph package. All errors are comparable with errors.Is.
package corrgraph

import "errors"

// Sentinel errors for graph construction and mutation.
var (
	// ErrNotSquare indicates the input correlation matrix is not n×n.
	ErrNotSquare = errors.New("corrgraph: correlation matrix must be square")

	// ErrBadThreshold indicates a threshold outside [0,1] (or NaN).
	ErrBadThreshold = errors.New("corrgraph: threshold must lie within [0,1]")

	// ErrNodeNotFound indicates an operation referenced a feature index with
	// no node in the active set.
	ErrNodeNotFound = errors.New("corrgraph: node not found")

	// ErrSelfLoop indicates an attempt to link a node to itself.
	ErrSelfLoop = errors.New("corrgraph: self-loops not allowed")

	// ErrEdgeExists indicates an attempt to link an already-linked pair.
	// Callers must not double-link a pair, even with the same weight.
	ErrEdgeExists = errors.New("corrgraph: node pair already linked")

	// ErrNotAdjacent indicates an unlink target that is not a current
	// neighbor. This is a broken structural invariant inside the calling
	// algorithm, never an expected runtime condition.
	ErrNotAdjacent = errors.New("corrgraph: nodes are not adjacent")

	// ErrBadWeight indicates a negative or NaN correlation weight.
	ErrBadWeight = errors.New("corrgraph: correlation weight must be non-negative")

	// ErrNotIsolated indicates a Discard on a node that still has neighbors.
	ErrNotIsolated = errors.New("corrgraph: node still has neighbors")
)
