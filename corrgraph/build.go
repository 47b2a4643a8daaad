// SPDX-License-Identifier: MIT

package corrgraph

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Build constructs a correlation graph from an n×n correlation matrix.
//
// For every unordered pair (i, j), i < j, whose entry c.At(i, j) meets or
// exceeds opts.Threshold, nodes i and j are linked with that entry as the
// edge weight and the edge count grows by one. Every feature index 0..n-1
// becomes a node whether or not it ends up linked; indices that never cross
// the threshold stay isolated and are always retained.
//
// Only the upper triangle is read, so symmetry of the input is assumed, not
// checked. NaN entries never compare ≥ threshold and are skipped.
//
// Returns ErrNotSquare if the matrix is not n×n and ErrBadThreshold if the
// threshold lies outside [0,1].
// Complexity: O(n²) time over matrix entries, O(n + edges) memory.
func Build(c mat.Matrix, opts Options) (*Graph, error) {
	r, n := c.Dims()
	if r != n {
		return nil, ErrNotSquare
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	g := newGraph(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := c.At(i, j)
			if w >= opts.Threshold {
				if err := g.Link(i, j, w); err != nil {
					return nil, fmt.Errorf("corrgraph: linking pair (%d,%d): %w", i, j, err)
				}
			}
		}
	}
	return g, nil
}

// BuildSlice is a convenience wrapper around Build for callers holding the
// correlation matrix as a plain [][]float64 rather than a gonum matrix.
// Returns ErrNotSquare if any row length differs from the row count.
func BuildSlice(c [][]float64, opts Options) (*Graph, error) {
	n := len(c)
	for _, row := range c {
		if len(row) != n {
			return nil, ErrNotSquare
		}
	}
	return Build(sliceMatrix(c), opts)
}

// sliceMatrix adapts a square [][]float64 to mat.Matrix without copying.
type sliceMatrix [][]float64

func (s sliceMatrix) Dims() (r, c int)    { return len(s), len(s) }
func (s sliceMatrix) At(i, j int) float64 { return s[i][j] }
func (s sliceMatrix) T() mat.Matrix       { return mat.Transpose{Matrix: s} }
