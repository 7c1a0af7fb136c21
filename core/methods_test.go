// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
)

// Common location keys used across core tests.
const (
	KeyA = "A"
	KeyB = "B"
	KeyC = "C"
	KeyX = "X"
)

// newTriangle builds A→B(1), B→C(2), A→C(5).
func newTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, k := range []string{KeyA, KeyB, KeyC} {
		require.NoError(t, g.AddLocation(k, "City "+k, nil))
	}
	require.NoError(t, g.AddEdge(KeyA, KeyB, 1))
	require.NoError(t, g.AddEdge(KeyB, KeyC, 2))
	require.NoError(t, g.AddEdge(KeyA, KeyC, 5))

	return g
}

func TestGraph_AddLocation(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddLocation("", "nowhere", nil), core.ErrEmptyKey)

	coord := &core.Point{X: 577, Y: 1694}
	require.NoError(t, g.AddLocation("CDMX", "Ciudad de México", coord))
	assert.True(t, g.HasLocation("CDMX"))
	assert.False(t, g.HasLocation(""))
	assert.Equal(t, 1, g.LocationCount())

	// The stored coordinate is a copy.
	coord.X = 0
	loc, ok := g.Location("CDMX")
	require.True(t, ok)
	assert.Equal(t, "Ciudad de México", loc.Name)
	require.NotNil(t, loc.Coord)
	assert.Equal(t, 577.0, loc.Coord.X)

	// Duplicate registration fails and keeps the original record.
	err := g.AddLocation("CDMX", "Mexico City", nil)
	require.ErrorIs(t, err, core.ErrDuplicateLocation)
	assert.Contains(t, err.Error(), "CDMX")
	loc, _ = g.Location("CDMX")
	assert.Equal(t, "Ciudad de México", loc.Name)
	assert.Equal(t, 1, g.LocationCount())

	_, ok = g.Location("NYC")
	assert.False(t, ok)
}

func TestGraph_LocationsSorted(t *testing.T) {
	g := core.NewGraph()
	for _, k := range []string{"TYO", "CDMX", "PE", "NYC"} {
		require.NoError(t, g.AddLocation(k, k, nil))
	}
	assert.Equal(t, []string{"CDMX", "NYC", "PE", "TYO"}, g.Locations())
}

func TestGraph_AddEdge_UnknownLocation(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddLocation(KeyA, "A", nil))

	err := g.AddEdge(KeyA, KeyX, 1)
	require.ErrorIs(t, err, core.ErrUnknownLocation)
	assert.Contains(t, err.Error(), `"X"`)

	err = g.AddEdge(KeyX, KeyA, 1)
	require.ErrorIs(t, err, core.ErrUnknownLocation)

	// Nothing was auto-created.
	assert.False(t, g.HasLocation(KeyX))
	assert.Equal(t, 0, g.EdgeCount())
}

func TestGraph_AddEdge_BadWeight(t *testing.T) {
	g := newTriangle(t)
	for _, w := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		require.ErrorIs(t, g.AddEdge(KeyA, KeyB, w), core.ErrBadWeight, "weight %v", w)
	}
	assert.Equal(t, 1.0, g.EdgeWeight(KeyA, KeyB))
	assert.Equal(t, 3, g.EdgeCount())
}

func TestGraph_AddEdge_Overwrites(t *testing.T) {
	g := newTriangle(t)
	require.Equal(t, 3, g.EdgeCount())

	require.NoError(t, g.AddEdge(KeyA, KeyB, 42))
	assert.Equal(t, 42.0, g.EdgeWeight(KeyA, KeyB))
	assert.Equal(t, 3, g.EdgeCount(), "overwrite must not add a parallel edge")
}

func TestGraph_Directed(t *testing.T) {
	g := newTriangle(t)
	assert.True(t, g.HasEdge(KeyA, KeyB))
	assert.False(t, g.HasEdge(KeyB, KeyA))
}

func TestGraph_EdgeWeight_AbsentIsZero(t *testing.T) {
	g := newTriangle(t)

	assert.Equal(t, 5.0, g.EdgeWeight(KeyA, KeyC))
	assert.Equal(t, 0.0, g.EdgeWeight(KeyC, KeyA))
	assert.Equal(t, 0.0, g.EdgeWeight(KeyX, KeyA))

	w, ok := g.Weight(KeyC, KeyA)
	assert.False(t, ok)
	assert.Zero(t, w)

	w, ok = g.Weight(KeyB, KeyC)
	assert.True(t, ok)
	assert.Equal(t, 2.0, w)
}

func TestGraph_SelfLoopAndNegativeWeight(t *testing.T) {
	g := newTriangle(t)
	require.NoError(t, g.AddEdge(KeyA, KeyA, 3))
	require.NoError(t, g.AddEdge(KeyC, KeyA, -4))
	assert.True(t, g.HasEdge(KeyA, KeyA))
	assert.Equal(t, -4.0, g.EdgeWeight(KeyC, KeyA))
}

func TestGraph_EdgesAndNeighborsSorted(t *testing.T) {
	g := newTriangle(t)

	assert.Equal(t, []core.Edge{
		{From: KeyA, To: KeyB, Weight: 1},
		{From: KeyA, To: KeyC, Weight: 5},
		{From: KeyB, To: KeyC, Weight: 2},
	}, g.Edges())

	nbs, err := g.Neighbors(KeyA)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: KeyA, To: KeyB, Weight: 1},
		{From: KeyA, To: KeyC, Weight: 5},
	}, nbs)

	nbs, err = g.Neighbors(KeyC)
	require.NoError(t, err)
	assert.Empty(t, nbs)

	_, err = g.Neighbors(KeyX)
	require.ErrorIs(t, err, core.ErrUnknownLocation)
}

func TestGraph_FreezeAndClone(t *testing.T) {
	g := newTriangle(t)
	g.Freeze()
	g.Freeze()
	assert.True(t, g.Frozen())

	require.ErrorIs(t, g.AddLocation(KeyX, "X", nil), core.ErrFrozen)
	require.ErrorIs(t, g.AddEdge(KeyA, KeyB, 9), core.ErrFrozen)
	assert.Equal(t, 1.0, g.EdgeWeight(KeyA, KeyB))

	c := g.Clone()
	assert.False(t, c.Frozen())
	assert.Equal(t, g.Edges(), c.Edges())
	assert.Equal(t, g.Locations(), c.Locations())

	require.NoError(t, c.AddLocation(KeyX, "X", nil))
	require.NoError(t, c.AddEdge(KeyA, KeyB, 9))
	assert.Equal(t, 9.0, c.EdgeWeight(KeyA, KeyB))
	assert.Equal(t, 1.0, g.EdgeWeight(KeyA, KeyB))
	assert.False(t, g.HasLocation(KeyX))
}
