// Package bellmanford computes single-source shortest paths over a core.Graph
// with the Bellman–Ford relaxation algorithm.
//
// Overview:
//
//   - Distances start at +Inf except the source (0). Every directed edge is
//     relaxed |V|−1 times; an edge u→v with weight w improves v only when dist[u]
//     is finite and dist[u]+w < dist[v] (strict).
//   - One more full pass follows. If any edge still improves its destination,
//     a negative-weight cycle is reachable from the source and the run fails with
//     a *NegativeCycleError. No distances are returned in that case.
//   - Negative edge weights are allowed. This is why Dijkstra is not used here.
//   - Distances never saturate: a relaxation whose sum leaves the float64 range
//     aborts with ErrDistanceOverflow, so a -Inf distance cannot mask a cycle.
//   - Self-loops with non-negative weight can never improve a distance; a negative
//     self-loop on a reachable location is reported as a one-location cycle.
//
// Determinism:
//
//   - Edges are relaxed in core.Graph.Edges() order (sorted by From, To), so
//     predecessor links are reproducible between runs when several paths tie.
//
// Options:
//
//   - Source(key):     starting location (required).
//   - WithContext(ctx): checked once per pass; cancellation aborts the run.
//   - WithEarlyExit(): stop relaxing after a pass that changes nothing. Off by default.
//
// Complexity:
//
//   - Time:  O(V·E)
//   - Space: O(V + E) for distances, predecessors and the edge snapshot.
package bellmanford
