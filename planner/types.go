package planner

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/lvroute/bellmanford"
	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors returned by the planner.
var (
	// ErrNilGraph indicates New was given a nil graph.
	ErrNilGraph = errors.New("planner: graph is nil")

	// ErrInvalidDiscount indicates a discount rate outside [0,1) or an empty key.
	ErrInvalidDiscount = errors.New("planner: invalid discount")

	// ErrUnknownLocation indicates that the origin or destination is not registered.
	// It also matches core.ErrUnknownLocation.
	ErrUnknownLocation = fmt.Errorf("planner: %w", core.ErrUnknownLocation)

	// ErrNegativeCycle is the bellmanford sentinel, re-exported so callers of Plan
	// need not import bellmanford to branch on it.
	ErrNegativeCycle = bellmanford.ErrNegativeCycle

	// ErrDistanceOverflow is the bellmanford sentinel for path costs outside the
	// float64 range. Plan never reports such a cost as a result.
	ErrDistanceOverflow = bellmanford.ErrDistanceOverflow

	// ErrCorruptPredecessors indicates that walking predecessor links did not reach
	// the origin within |V| steps.
	ErrCorruptPredecessors = errors.New("planner: predecessor links do not lead back to origin")
)

// DiscountTable maps a location key to the fractional discount applied to
// routes departing that location, each rate in [0,1).
type DiscountTable map[string]float64

// Validate checks every entry: non-empty key, rate in [0,1).
func (d DiscountTable) Validate() error {
	for key, rate := range d {
		if key == "" {
			return fmt.Errorf("%w: empty location key", ErrInvalidDiscount)
		}
		if !(rate >= 0 && rate < 1) { // also rejects NaN
			return fmt.Errorf("%w: rate %v for %q not in [0,1)", ErrInvalidDiscount, rate, key)
		}
	}

	return nil
}

// Status is the outcome kind of a Plan call that did not fail.
type Status int

const (
	// StatusSuccess means a path was found and costed.
	StatusSuccess Status = iota

	// StatusUnreachable means no path exists from origin to destination.
	StatusUnreachable
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusUnreachable:
		return "unreachable"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Leg is one route of an itinerary with the discount credited to it.
type Leg struct {
	From     string
	To       string
	Cost     float64 // undiscounted route price
	Discount float64 // amount subtracted from the total for this leg
}

// Itinerary is the result of a planning query. It is built fresh per call.
//
// When Reachable is false, Path and Legs are nil and both costs are +Inf.
type Itinerary struct {
	Origin       string
	Destination  string
	Path         []string
	Legs         []Leg
	BaseCost     float64
	AdjustedCost float64
	Reachable    bool
	Status       Status
}

// Options configures a Planner.
//
// Logger – receives Debug lines for each planning stage and a Warn on negative cycles
//          and distance overflow.
// Ctx    – passed to bellmanford for cancellation.
type Options struct {
	Logger *slog.Logger
	Ctx    context.Context
}

// Option represents a functional option for configuring a Planner.
type Option func(*Options)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithContext sets the context used to cancel shortest-path computations.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns Options using slog.Default() and context.Background().
func DefaultOptions() Options {
	return Options{
		Logger: slog.Default(),
		Ctx:    context.Background(),
	}
}
