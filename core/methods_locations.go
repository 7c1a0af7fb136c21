// File: methods_locations.go
// Role: Location registration & queries.
//
// Determinism:
//   - Locations() returns keys sorted lexicographically ascending.

package core

import (
	"fmt"
	"sort"
)

// AddLocation registers a location under key.
//
// Registration is strict: a second AddLocation for the same key fails with
// ErrDuplicateLocation and leaves the original record untouched.
// The coordinate is copied, so later changes to *coord are not observed.
//
// Errors:
//   - ErrEmptyKey: if key == "".
//   - ErrDuplicateLocation: if key is already registered.
//   - ErrFrozen: if the graph has been frozen.
//
// Complexity: O(1) amortized.
func (g *Graph) AddLocation(key, name string, coord *Point) error {
	if g.frozen {
		return ErrFrozen
	}
	if key == "" {
		return ErrEmptyKey
	}
	if _, exists := g.locations[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateLocation, key)
	}

	loc := &Location{Key: key, Name: name}
	if coord != nil {
		p := *coord
		loc.Coord = &p
	}
	g.locations[key] = loc
	g.adjacency[key] = make(map[string]float64)

	return nil
}

// HasLocation reports whether key is registered (empty key ⇒ false).
func (g *Graph) HasLocation(key string) bool {
	if key == "" {
		return false
	}
	_, ok := g.locations[key]

	return ok
}

// Location returns a copy of the record registered under key.
func (g *Graph) Location(key string) (Location, bool) {
	loc, ok := g.locations[key]
	if !ok {
		return Location{}, false
	}
	out := *loc
	if loc.Coord != nil {
		p := *loc.Coord
		out.Coord = &p
	}

	return out, true
}

// Locations returns all registered keys sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Locations() []string {
	keys := make([]string, 0, len(g.locations))
	for key := range g.locations {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

// LocationCount returns the number of registered locations.
func (g *Graph) LocationCount() int { return len(g.locations) }
