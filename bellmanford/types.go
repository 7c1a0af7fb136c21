package bellmanford

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors returned by ShortestPaths.
var (
	// ErrEmptySource indicates that no source location was provided.
	ErrEmptySource = errors.New("bellmanford: source location is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrLocationNotFound indicates that the source is not registered in the graph.
	ErrLocationNotFound = errors.New("bellmanford: source location not found in graph")

	// ErrNegativeCycle indicates a negative-weight cycle reachable from the source.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle detected")

	// ErrDistanceOverflow indicates that a tentative distance left the float64
	// range. Edge weights are finite, so only accumulated sums can get there.
	ErrDistanceOverflow = errors.New("bellmanford: distance overflows float64")
)

// NegativeCycleError reports a negative-weight cycle reachable from Source.
//
// Cycle lists the locations of one such cycle, rotated to start at its
// smallest key and closed by repeating that key, e.g. [A B C A].
// Cycle is nil if the cycle could not be recovered from predecessor links.
type NegativeCycleError struct {
	Source string
	Cycle  []string
}

// Error implements error.
func (e *NegativeCycleError) Error() string {
	if len(e.Cycle) == 0 {
		return fmt.Sprintf("%s: reachable from %q", ErrNegativeCycle, e.Source)
	}

	return fmt.Sprintf("%s: %s (reachable from %q)", ErrNegativeCycle, strings.Join(e.Cycle, "→"), e.Source)
}

// Is makes errors.Is(err, ErrNegativeCycle) true.
func (e *NegativeCycleError) Is(target error) bool { return target == ErrNegativeCycle }

// Result holds the outcome of a successful run.
//
// Dist maps every location to its shortest distance from Source (+Inf if unreachable).
// Prev maps each reached location (other than Source) to its predecessor on a
// shortest path. Unreached locations and Source have no entry.
type Result struct {
	Source string
	Dist   map[string]float64
	Prev   map[string]string
	Passes int // relaxation passes actually run, excluding the detection pass
}

// Reachable reports whether key has a finite distance.
func (r *Result) Reachable(key string) bool {
	d, ok := r.Dist[key]

	return ok && !math.IsInf(d, 1)
}

// Options configures a ShortestPaths run.
//
// Source    – starting location key (must be non-empty and registered).
// Ctx       – cancellation; checked before each pass. Defaults to context.Background().
// EarlyExit – stop once a pass relaxes nothing. Off by default: all |V|−1 passes run
// and Result.Passes equals |V|−1.
type Options struct {
	Source    string
	Ctx       context.Context
	EarlyExit bool
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// Source sets the starting location.
func Source(key string) Option {
	return func(o *Options) {
		o.Source = key
	}
}

// WithContext installs a context used for cancellation between passes.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEarlyExit stops relaxation after the first pass that changes no distance.
// Results are identical; only the work done differs.
func WithEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = true
	}
}

// DefaultOptions returns Options for the given source with a background context
// and early exit disabled.
func DefaultOptions(source string) Options {
	return Options{
		Source:    source,
		Ctx:       context.Background(),
		EarlyExit: false,
	}
}
