// Package core defines the route network: Location, Edge and Graph,
// and the primitives for building and querying it.
//
// This file declares the data types, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyKey           - location key is the empty string.
//	ErrDuplicateLocation  - location key is already registered.
//	ErrUnknownLocation    - edge or query references an unregistered key.
//	ErrBadWeight          - edge weight is NaN or infinite.
//	ErrFrozen             - mutation attempted after Freeze.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyKey indicates that a location key is empty.
	ErrEmptyKey = errors.New("core: location key is empty")

	// ErrDuplicateLocation indicates that AddLocation was called with a key
	// that is already registered.
	ErrDuplicateLocation = errors.New("core: duplicate location")

	// ErrUnknownLocation indicates an operation referenced a key that was never registered.
	ErrUnknownLocation = errors.New("core: unknown location")

	// ErrBadWeight indicates an edge weight that is NaN or ±Inf.
	ErrBadWeight = errors.New("core: edge weight is not a finite number")

	// ErrFrozen indicates a mutation on a graph that has been frozen.
	ErrFrozen = errors.New("core: graph is frozen")
)

// Point is a 2-D display coordinate. The core never reads it;
// it is carried for presentation layers that draw the network.
type Point struct {
	X float64
	Y float64
}

// Location is a named point in the route network.
//
// Key uniquely identifies the Location within its Graph (e.g. "CDMX").
// Name is the human-readable display name. Coord is nil when no
// coordinate was supplied.
type Location struct {
	Key   string
	Name  string
	Coord *Point
}

// Edge is a directed, priced connection From→To.
// An edge u→v does not imply v→u.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Graph is the in-memory route network.
//
// Locations live in an arena keyed by Location.Key; edges are stored as
// adjacency buckets adjacency[from][to] = weight, so at most one edge exists
// per ordered pair.
//
// Graph performs no locking. Mutate it from one goroutine while building,
// then call Freeze; a frozen Graph is safe for concurrent reads.
type Graph struct {
	locations map[string]*Location
	adjacency map[string]map[string]float64
	edgeCount int
	frozen    bool
}

// NewGraph creates an empty, mutable Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		locations: make(map[string]*Location),
		adjacency: make(map[string]map[string]float64),
	}
}
