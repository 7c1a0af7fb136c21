// File: methods_clone.go
// Role: Freezing and cloning graph instances.
// AI-HINT (file):
//   - Freeze() is one-way; use Clone() to get a mutable copy of a frozen graph.

package core

// Freeze marks the graph read-only. Every later AddLocation/AddEdge fails
// with ErrFrozen. Freezing twice is a no-op.
func (g *Graph) Freeze() { g.frozen = true }

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool { return g.frozen }

// Clone returns a deep, unfrozen copy of the graph: locations, coordinates and edges.
// Mutating the clone never affects g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := NewGraph()
	for key, loc := range g.locations {
		cp := &Location{Key: loc.Key, Name: loc.Name}
		if loc.Coord != nil {
			p := *loc.Coord
			cp.Coord = &p
		}
		clone.locations[key] = cp
	}
	for from, bucket := range g.adjacency {
		nb := make(map[string]float64, len(bucket))
		for to, w := range bucket {
			nb[to] = w
		}
		clone.adjacency[from] = nb
	}
	clone.edgeCount = g.edgeCount

	return clone
}
