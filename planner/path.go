package planner

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// reconstructPath walks prev backwards from destination to origin and returns
// the origin→destination sequence. A simple path has at most limit (|V|)
// locations; needing more means the links are corrupt.
func reconstructPath(prev map[string]string, origin, destination string, limit int) ([]string, error) {
	path := []string{destination}
	for cur := destination; cur != origin; {
		u, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %q has no predecessor", ErrCorruptPredecessors, cur)
		}
		if len(path) >= limit {
			return nil, fmt.Errorf("%w: no origin after %d steps", ErrCorruptPredecessors, limit)
		}
		path = append(path, u)
		cur = u
	}
	slices.Reverse(path)

	return path, nil
}
