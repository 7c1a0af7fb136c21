// Package planner computes the cheapest itinerary between two locations of a
// core.Graph and applies per-location discounts to the resolved path.
//
// A query runs through a fixed sequence of stages:
//
//	Start → ComputingDistances → NegativeCycle       (error, terminal)
//	                           → Unreachable         (Itinerary.Reachable=false, terminal)
//	                           → ReconstructingPath → ApplyingDiscounts → Success
//
// Costs:
//
//   - BaseCost is the Bellman–Ford distance of the destination: the plain sum of
//     route prices along the path.
//   - AdjustedCost starts at BaseCost. For every location in the DiscountTable that
//     departs a leg of the path, price(leg) × rate is subtracted, using the last such
//     leg on the path. Discounts from different locations simply add up.
//   - Discount keys are processed in sorted order, so the result never depends on
//     map iteration order.
//
// Example:
//
//	p, err := planner.New(g, planner.DiscountTable{"CDMX": 0.3, "NYC": 0.1})
//	if err != nil {
//	    return err
//	}
//	it, err := p.Plan("CDMX", "PE")
//	switch {
//	case errors.Is(err, planner.ErrNegativeCycle):
//	    // malformed prices
//	case err != nil:
//	    return err
//	case !it.Reachable:
//	    // no route
//	default:
//	    fmt.Println(it.Path, it.BaseCost, it.AdjustedCost)
//	}
//
// The planner does no formatting and no user interaction. It performs no
// locking either: share one Planner between goroutines only over a frozen graph.
package planner
