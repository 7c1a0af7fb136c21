// Package core provides the in-memory route network used by lvroute:
// locations (nodes) identified by short keys and directed priced edges between them.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Directed edges only; u→v says nothing about v→u.
//   - At most one edge per ordered pair; AddEdge on an existing pair overwrites the weight.
//   - Self-loops are allowed.
//   - Weights are finite float64 and may be negative; NaN and ±Inf are rejected.
//   - Edges never create locations: both endpoints must be registered first.
//   - Deterministic iteration: Locations(), Edges(), Neighbors() return sorted results.
//
// Storage is an arena keyed by location key plus adjacency buckets:
//
//	adjacency[from][to] = weight
//
// Core Methods:
//
//	// Location lifecycle
//	AddLocation(key, name string, coord *Point) error  // O(1)
//	HasLocation(key string) bool                       // O(1)
//	Location(key string) (Location, bool)              // O(1)
//	Locations() []string                               // O(V·log V)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) error     // O(1)
//	EdgeWeight(u, v string) float64                    // O(1), 0 when absent
//	Weight(u, v string) (float64, bool)                // O(1), existence-checked
//	HasEdge(u, v string) bool                          // O(1)
//	Edges() []Edge                                     // O(E·log E)
//	Neighbors(key string) ([]Edge, error)              // O(d·log d)
//
//	// Lifecycle
//	Freeze() / Frozen()                                // build-then-freeze
//	Clone() *Graph                                     // O(V+E), unfrozen deep copy
//
// Concurrency:
//
// Graph holds no locks. Build it from a single goroutine, call Freeze, and then
// share it freely between readers. Mixing mutation with concurrent reads is a caller bug.
//
// Errors:
//
//	ErrEmptyKey          – zero-length location key
//	ErrDuplicateLocation – key already registered
//	ErrUnknownLocation   – edge endpoint or query key never registered
//	ErrBadWeight         – NaN or infinite weight
//	ErrFrozen            – mutation after Freeze
package core
