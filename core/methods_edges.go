// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/EdgeWeight/Weight/HasEdge/Edges/Neighbors/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To) asc.
//   - Neighbors() returns edges sorted by To asc.

package core

import (
	"fmt"
	"math"
	"sort"
)

// absentEdgeWeight is what EdgeWeight reports for a pair with no edge.
const absentEdgeWeight float64 = 0

// AddEdge sets the weight of the directed edge from→to.
//
// Steps:
//  1. Reject mutation of a frozen graph.
//  2. Reject NaN and ±Inf weights.
//  3. Require both endpoints to be registered; endpoints are never auto-created.
//  4. Store the weight, overwriting any previous edge for the same ordered pair.
//
// Self-loops are accepted. Negative weights are accepted.
//
// Errors:
//   - ErrFrozen, ErrBadWeight, ErrUnknownLocation (wrapped with the missing key).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if g.frozen {
		return ErrFrozen
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: edge %s→%s = %v", ErrBadWeight, from, to, weight)
	}
	if !g.HasLocation(from) {
		return fmt.Errorf("%w: %q (edge %s→%s)", ErrUnknownLocation, from, from, to)
	}
	if !g.HasLocation(to) {
		return fmt.Errorf("%w: %q (edge %s→%s)", ErrUnknownLocation, to, from, to)
	}

	bucket := g.adjacency[from]
	if _, exists := bucket[to]; !exists {
		g.edgeCount++
	}
	bucket[to] = weight

	return nil
}

// EdgeWeight returns the weight of edge u→v, or 0 when no such edge exists.
//
// The zero sentinel is part of the contract: callers walking a path built from
// predecessor links only ask about pairs known to be adjacent. Anything else
// should use Weight, which reports existence.
func (g *Graph) EdgeWeight(u, v string) float64 {
	if w, ok := g.adjacency[u][v]; ok {
		return w
	}

	return absentEdgeWeight
}

// Weight returns the weight of edge u→v and whether the edge exists.
func (g *Graph) Weight(u, v string) (float64, bool) {
	w, ok := g.adjacency[u][v]

	return w, ok
}

// HasEdge reports whether the directed edge u→v exists.
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.adjacency[u][v]

	return ok
}

// Edges returns every edge sorted by From, then To.
// The order is stable across calls, which keeps relaxation passes reproducible.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for from, bucket := range g.adjacency {
		for to, w := range bucket {
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// Neighbors returns the outgoing edges of key sorted by destination.
//
// Errors:
//   - ErrUnknownLocation: if key is not registered.
func (g *Graph) Neighbors(key string) ([]Edge, error) {
	bucket, ok := g.adjacency[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, key)
	}
	out := make([]Edge, 0, len(bucket))
	for to, w := range bucket {
		out = append(out, Edge{From: key, To: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }
