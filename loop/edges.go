package loop

import (
	"fmt"

	"github.com/katalvlaran/zenmesh/component"
	"github.com/katalvlaran/zenmesh/traverse"
)

// SelectEdgesBetweenVertices returns the edges of the shortest path through
// vertices, in path order. Each edge appears once, even when a closed path
// runs back over itself.
//
// Errors: ErrTooFewKnots, plus those of traverse.ShortestPathThrough.
func SelectEdgesBetweenVertices(p traverse.Provider, vertices []component.Component, opts ...Option) ([]component.Component, error) {
	o, err := Resolve(opts...)
	if err != nil {
		return nil, err
	}
	knots, err := o.knots(p, vertices)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodEdgesBetween, err)
	}
	path, err := traverse.ShortestPathThrough(p, o.waypoints(knots), o.Traverse...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodEdgesBetween, err)
	}
	edges, err := traverse.VerticesEdges(p, path, o.Traverse...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodEdgesBetween, err)
	}

	seen := component.NewSet()
	out := edges[:0]
	for _, e := range edges {
		if !seen.Contains(e) {
			seen.Add(e)
			out = append(out, e)
		}
	}
	tracer().Debugf("edges between %d knots: %d edges", len(knots), len(out))
	return out, nil
}
