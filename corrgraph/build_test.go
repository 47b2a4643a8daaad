package corrgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/corrprune/corrgraph"
)

// docMatrix returns the 5-feature correlation matrix used throughout the
// package documentation. With threshold 0.9 it yields exactly six edges:
// (0,2) (1,2) (1,3) (1,4) (2,3) (3,4).
func docMatrix() *mat.SymDense {
	m := mat.NewSymDense(5, nil)
	for i := 0; i < 5; i++ {
		m.SetSym(i, i, 1)
	}
	m.SetSym(0, 1, 0.11)
	m.SetSym(0, 2, 0.93)
	m.SetSym(0, 3, 0.54)
	m.SetSym(0, 4, 0.75)
	m.SetSym(1, 2, 0.96)
	m.SetSym(1, 3, 0.99)
	m.SetSym(1, 4, 0.95)
	m.SetSym(2, 3, 1.00)
	m.SetSym(2, 4, 0.44)
	m.SetSym(3, 4, 0.92)
	return m
}

// TestBuild_NotSquare verifies that a rectangular matrix is rejected
// with ErrNotSquare.
func TestBuild_NotSquare(t *testing.T) {
	c := mat.NewDense(2, 3, []float64{1, 0, 0, 0, 1, 0})

	_, err := corrgraph.Build(c, corrgraph.DefaultOptions())
	assert.ErrorIs(t, err, corrgraph.ErrNotSquare, "2×3 input must error ErrNotSquare")
}

// TestBuildSlice_Ragged verifies that ragged or rectangular slices are
// rejected with ErrNotSquare before any node is created.
func TestBuildSlice_Ragged(t *testing.T) {
	ragged := [][]float64{
		{1, 0.5},
		{0.5},
	}

	_, err := corrgraph.BuildSlice(ragged, corrgraph.DefaultOptions())
	assert.ErrorIs(t, err, corrgraph.ErrNotSquare, "ragged rows must error ErrNotSquare")
}

// TestBuild_BadThreshold ensures thresholds outside [0,1] (and NaN) error
// with ErrBadThreshold.
func TestBuild_BadThreshold(t *testing.T) {
	c := mat.NewSymDense(2, []float64{1, 0, 0, 1})

	for _, bad := range []float64{-0.1, 1.5, math.NaN()} {
		_, err := corrgraph.Build(c, corrgraph.Options{Threshold: bad})
		assert.ErrorIs(t, err, corrgraph.ErrBadThreshold, "threshold %v must be rejected", bad)
	}
}

// TestBuild_EdgeCountMatchesThresholdPairs checks that the edge count
// equals the number of upper-triangle entries at or above the threshold.
func TestBuild_EdgeCountMatchesThresholdPairs(t *testing.T) {
	g, err := corrgraph.Build(docMatrix(), corrgraph.DefaultOptions())
	require.NoError(t, err, "valid square input must build")

	assert.Equal(t, 5, g.Order(), "universe must span all five features")
	assert.Equal(t, 6, g.EdgeCount(), "six pairs meet the 0.9 threshold")
	assert.Equal(t, []int{0, 1, 2, 3, 4}, g.ActiveIDs(), "every index must get a node")
}

// TestBuild_IsolatedUniverse verifies that features with no qualifying
// correlation still appear as (isolated) nodes and that the graph counts
// zero edges.
func TestBuild_IsolatedUniverse(t *testing.T) {
	c := [][]float64{
		{1.0, 0.2, 0.3},
		{0.2, 1.0, 0.1},
		{0.3, 0.1, 1.0},
	}

	g, err := corrgraph.BuildSlice(c, corrgraph.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 0, g.EdgeCount(), "no pair crosses the threshold")
	assert.True(t, g.Pruned(), "zero edges means already pruned")
	assert.Equal(t, []int{0, 1, 2}, g.ActiveIDs(), "isolated nodes are still present")
}

// TestBuild_MutualWeights confirms that linking during construction keeps
// adjacency symmetric with identical weights on both endpoints.
func TestBuild_MutualWeights(t *testing.T) {
	g, err := corrgraph.Build(docMatrix(), corrgraph.DefaultOptions())
	require.NoError(t, err)

	a, ok := g.Node(2)
	require.True(t, ok, "node 2 must be active")
	b, ok := g.Node(3)
	require.True(t, ok, "node 3 must be active")

	wAB, okAB := a.Weight(3)
	wBA, okBA := b.Weight(2)
	require.True(t, okAB, "2 must list 3 as neighbor")
	require.True(t, okBA, "3 must list 2 as neighbor")
	assert.Equal(t, wAB, wBA, "mutual weights must match")
	assert.InDelta(t, 1.00, wAB, 1e-12, "weight must equal the matrix entry")
}

// TestBuildSlice_Empty verifies that a 0×0 matrix builds an empty,
// already-pruned graph.
func TestBuildSlice_Empty(t *testing.T) {
	g, err := corrgraph.BuildSlice(nil, corrgraph.DefaultOptions())
	require.NoError(t, err, "empty input is a valid square matrix")

	assert.Equal(t, 0, g.Order())
	assert.Equal(t, 0, g.EdgeCount())
	assert.True(t, g.Pruned())
	assert.Empty(t, g.DropList())
	assert.Empty(t, g.Retained())
}

// TestBuild_ThresholdBoundary checks the inclusive ≥ comparison: an entry
// exactly at the threshold becomes an edge, one just below does not.
func TestBuild_ThresholdBoundary(t *testing.T) {
	c := [][]float64{
		{1.00, 0.90, 0.00},
		{0.90, 1.00, 0.89},
		{0.00, 0.89, 1.00},
	}

	g, err := corrgraph.BuildSlice(c, corrgraph.Options{Threshold: 0.9})
	require.NoError(t, err)

	assert.Equal(t, 1, g.EdgeCount(), "only the exact-threshold pair qualifies")
	n0, _ := g.Node(0)
	_, adj := n0.Weight(1)
	assert.True(t, adj, "pair (0,1) at exactly 0.9 must be linked")
}
