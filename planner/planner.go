package planner

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/lvroute/bellmanford"
	"github.com/katalvlaran/lvroute/core"
)

// Planner answers cheapest-itinerary queries over one graph and one discount table.
//
// A Planner never mutates the graph. It keeps its own copy of the discount
// table, so the caller may reuse or change the map passed to New.
type Planner struct {
	g         *core.Graph
	discounts DiscountTable
	keys      []string // discount keys, sorted; fixes the subtraction order
	options   Options
}

// New creates a Planner over g with the given discount table (nil means no discounts).
//
// Errors:
//   - ErrNilGraph: if g is nil.
//   - ErrInvalidDiscount: if any rate is outside [0,1) or a key is empty.
func New(g *core.Graph, discounts DiscountTable, opts ...Option) (*Planner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := discounts.Validate(); err != nil {
		return nil, err
	}

	table := make(DiscountTable, len(discounts))
	maps.Copy(table, discounts)
	keys := maps.Keys(table)
	slices.Sort(keys)

	return &Planner{g: g, discounts: table, keys: keys, options: cfg}, nil
}

// Discounts returns a copy of the planner's discount table.
func (p *Planner) Discounts() DiscountTable { return maps.Clone(p.discounts) }

// Plan computes the cheapest itinerary from origin to destination and applies
// the discount table to the resolved path.
//
// Stages: validate → ComputingDistances → {negative cycle | unreachable |
// ReconstructingPath → ApplyingDiscounts → success}. Every branch is terminal.
//
// An unreachable destination is not an error: the returned Itinerary has
// Reachable == false and Status == StatusUnreachable.
//
// Errors:
//   - ErrUnknownLocation: origin or destination not registered.
//   - an error matching ErrNegativeCycle (a *bellmanford.NegativeCycleError).
//   - ErrDistanceOverflow: some tentative cost left the float64 range.
//   - ErrCorruptPredecessors: predecessor links do not lead back to origin.
//   - the context error if the planner's context is cancelled.
func (p *Planner) Plan(origin, destination string) (*Itinerary, error) {
	log := p.options.Logger.With(slog.String("origin", origin), slog.String("destination", destination))

	for _, key := range []string{origin, destination} {
		if !p.g.HasLocation(key) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, key)
		}
	}

	if origin == destination {
		log.Debug("trivial itinerary")
		return &Itinerary{
			Origin:      origin,
			Destination: destination,
			Path:        []string{origin},
			Legs:        []Leg{},
			Reachable:   true,
			Status:      StatusSuccess,
		}, nil
	}

	log.Debug("computing distances", slog.Int("locations", p.g.LocationCount()), slog.Int("edges", p.g.EdgeCount()))
	res, err := bellmanford.ShortestPaths(p.g,
		bellmanford.Source(origin),
		bellmanford.WithContext(p.options.Ctx),
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrNegativeCycle):
			log.Warn("negative cycle reachable from origin", slog.String("error", err.Error()))
		case errors.Is(err, ErrDistanceOverflow):
			log.Warn("path cost out of range", slog.String("error", err.Error()))
		}
		return nil, err
	}

	if !res.Reachable(destination) {
		log.Debug("destination unreachable")
		return &Itinerary{
			Origin:       origin,
			Destination:  destination,
			BaseCost:     math.Inf(1),
			AdjustedCost: math.Inf(1),
			Reachable:    false,
			Status:       StatusUnreachable,
		}, nil
	}

	path, err := reconstructPath(res.Prev, origin, destination, p.g.LocationCount())
	if err != nil {
		log.Error("path reconstruction failed", slog.String("error", err.Error()))
		return nil, err
	}

	base := res.Dist[destination]
	adjusted, legs := p.applyDiscounts(path, base)
	log.Debug("itinerary resolved",
		slog.Int("legs", len(legs)),
		slog.Float64("base", base),
		slog.Float64("adjusted", adjusted),
	)

	return &Itinerary{
		Origin:       origin,
		Destination:  destination,
		Path:         path,
		Legs:         legs,
		BaseCost:     base,
		AdjustedCost: adjusted,
		Reachable:    true,
		Status:       StatusSuccess,
	}, nil
}
