// Package lvroute plans the cheapest itinerary between locations of a priced,
// directed route network, then credits per-city discounts.
//
// 🚀 What is lvroute?
//
//	A small, dependency-light library built from four packages:
//		• core:        locations, directed priced edges, freeze & clone
//		• bellmanford: single-source shortest paths with negative-cycle detection
//		• planner:     path reconstruction, discount pass, itineraries
//		• network:     YAML network documents (and the built-in AeroUPV network)
//
// plus logging/, a compact slog handler, and examples/aeroupv, a runnable demo.
//
// ✨ Guarantees
//
//   - Deterministic – every enumeration and relaxation runs in sorted key order
//   - Explicit failures – sentinel errors, wrapped with context, checked via errors.Is
//   - Build, then freeze – a frozen graph is safe to share between goroutines
//
// Quick example:
//
//	        300          650
//	[CDMX] ────▶ [NYC] ────▶ [PE]
//
//	n, _ := network.Default()
//	p, _ := n.NewPlanner()
//	it, _ := p.Plan("CDMX", "PE")
//	// it.Path = [CDMX NYC PE], it.BaseCost = 950, it.AdjustedCost = 795
//
//	go get github.com/katalvlaran/lvroute
package lvroute
