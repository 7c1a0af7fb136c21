package bellmanford

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/lvroute/core"
)

// ShortestPaths computes shortest distances and predecessor links from the
// source location (Options.Source) to every location of g.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrLocationNotFound).
//
// Failure modes after validation:
//   - *NegativeCycleError (matches ErrNegativeCycle) when the detection pass
//     still improves some edge. The caller gets no distances.
//   - ErrDistanceOverflow when a path cost leaves the float64 range, e.g. a
//     cycle of huge negative weights that saturates to -Inf before detection.
//   - the context error, wrapped, if Options.Ctx is cancelled between passes.
//
// Complexity:
//
//   - Time:  O(V·E)
//   - Space: O(V + E)
func ShortestPaths(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasLocation(cfg.Source) {
		return nil, fmt.Errorf("%w: %q", ErrLocationNotFound, cfg.Source)
	}

	// 3) Snapshot topology once; the graph is read-only during the run.
	locations := g.Locations()
	r := &runner{
		options: cfg,
		edges:   g.Edges(),
		dist:    make(map[string]float64, len(locations)),
		prev:    make(map[string]string, len(locations)),
	}
	r.init(locations)

	// 4) |V|−1 relaxation passes.
	if err := r.process(len(locations) - 1); err != nil {
		return nil, err
	}

	// 5) Detection pass.
	if err := r.detect(len(locations)); err != nil {
		return nil, err
	}

	return &Result{Source: cfg.Source, Dist: r.dist, Prev: r.prev, Passes: r.passes}, nil
}

// runner holds the mutable state for a single Bellman–Ford execution.
type runner struct {
	options Options
	edges   []core.Edge        // sorted edge snapshot
	dist    map[string]float64 // location → best known distance from Source
	prev    map[string]string  // location → predecessor on the best known path
	passes  int
}

// init sets dist[v] = +Inf for all v and dist[Source] = 0.
func (r *runner) init(locations []string) {
	inf := math.Inf(1)
	for _, v := range locations {
		r.dist[v] = inf
	}
	r.dist[r.options.Source] = 0
}

// process runs up to n full relaxation passes.
func (r *runner) process(n int) error {
	ctx := r.options.Ctx
	var changed bool
	var err error
	for i := 0; i < n; i++ {
		if err = ctx.Err(); err != nil {
			return fmt.Errorf("bellmanford: aborted after %d passes: %w", r.passes, err)
		}
		if changed, err = r.relax(); err != nil {
			return err
		}
		r.passes++
		if !changed && r.options.EarlyExit {
			break
		}
	}

	return nil
}

// relax performs one pass over all edges and reports whether any distance improved.
func (r *runner) relax() (bool, error) {
	changed := false
	for _, e := range r.edges {
		improved, err := r.improve(e)
		if err != nil {
			return false, err
		}
		changed = changed || improved
	}

	return changed, nil
}

// improve relaxes e. An unreached tail is skipped. A candidate distance that
// would become ±Inf fails with ErrDistanceOverflow; it is never stored.
func (r *runner) improve(e core.Edge) (bool, error) {
	du := r.dist[e.From]
	if math.IsInf(du, 1) {
		return false, nil // u not reached yet
	}
	nd := du + e.Weight
	dv := r.dist[e.To]
	if math.IsInf(nd, 0) {
		if nd < dv || math.IsInf(dv, 1) {
			return false, fmt.Errorf("%w: relaxing %s→%s", ErrDistanceOverflow, e.From, e.To)
		}
		return false, nil
	}
	if nd < dv {
		r.dist[e.To] = nd
		r.prev[e.To] = e.From
		return true, nil
	}

	return false, nil
}

// detect runs the extra pass. Any strict improvement means a reachable negative
// cycle; the last improved location is used to recover it.
func (r *runner) detect(n int) error {
	last := ""
	for _, e := range r.edges {
		improved, err := r.improve(e)
		if err != nil {
			return err
		}
		if improved {
			last = e.To
		}
	}
	if last == "" {
		return nil
	}

	return &NegativeCycleError{Source: r.options.Source, Cycle: r.cycleFrom(last, n)}
}

// cycleFrom walks n predecessor steps from start, which lands on a cycle of the
// predecessor graph, then collects that cycle in forward order.
func (r *runner) cycleFrom(start string, n int) []string {
	x := start
	var ok bool
	for i := 0; i < n; i++ {
		if x, ok = r.prev[x]; !ok {
			return nil
		}
	}

	// Walking prev visits the cycle backwards.
	cycle := []string{x}
	for y := r.prev[x]; y != x; y = r.prev[y] {
		if y == "" || len(cycle) > n {
			return nil
		}
		cycle = append(cycle, y)
	}
	slices.Reverse(cycle)

	return closeCycle(cycle)
}

// closeCycle rotates cycle to start at its smallest key and repeats that key at the end.
func closeCycle(cycle []string) []string {
	minKey := slices.Min(cycle)
	i := slices.Index(cycle, minKey)
	out := make([]string, 0, len(cycle)+1)
	out = append(out, cycle[i:]...)
	out = append(out, cycle[:i]...)

	return append(out, minKey)
}
