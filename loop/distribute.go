package loop

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/zenmesh/component"
	"github.com/katalvlaran/zenmesh/traverse"
)

// Result is a computed distribution. Nothing is moved until Apply.
type Result struct {
	// Knots are the routed vertices in order; a closed result repeats the
	// first knot at the end.
	Knots []component.Component
	// Path is the shortest vertex path through Knots.
	Path []component.Component
	// Positions parametrise Path over [0, len(Knots)-1].
	Positions []component.Position
	// Targets[i] is where Path[i] goes.
	Targets []r3.Vector
}

// Closed reports whether the path returns to its first vertex.
func (r *Result) Closed() bool {
	n := len(r.Path)
	return n > 1 && r.Path[0] == r.Path[n-1]
}

// Distribute lays the edge path through vertices along the curve those
// vertices span.
//
// The knots (vertices, sorted unless WithSelectionOrder) are joined by
// traverse.ShortestPathThrough. Every path vertex gets a parameter from
// traverse.Positions with one span per knot interval, and its target is the
// point at that fraction of the knot curve's length. The knot curve is the
// circular arc through exactly three open, non-collinear knots, and the
// polyline through the knots otherwise.
//
// Errors: ErrTooFewKnots, plus those of the underlying traversals.
func Distribute(p traverse.Provider, vertices []component.Component, opts ...Option) (*Result, error) {
	o, err := Resolve(opts...)
	if err != nil {
		return nil, err
	}
	knots, err := o.knots(p, vertices)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDistribute, err)
	}
	knots = o.waypoints(knots)

	path, err := traverse.ShortestPathThrough(p, knots, o.Traverse...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDistribute, err)
	}
	spans := len(knots) - 1
	ps, err := traverse.Positions(p, path, spans, o.Mode, o.Traverse...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDistribute, err)
	}

	pts := make([]r3.Vector, len(knots))
	for i, k := range knots {
		if pts[i], err = p.Position(k); err != nil {
			return nil, fmt.Errorf("%s: %w", methodDistribute, err)
		}
	}
	curve := knotCurve(pts, o.Close)

	targets := make([]r3.Vector, len(ps))
	for i, pos := range ps {
		targets[i] = curve.At(pos.Param / float64(spans))
	}
	tracer().Debugf("distribute %s: %d knots, %d vertices, curve length %.4g",
		o.Mode, len(knots), len(path), curve.Length())
	return &Result{Knots: knots, Path: path, Positions: ps, Targets: targets}, nil
}

// Apply moves every path vertex of r to its target. The closing repeat of a
// closed result is written once.
func Apply(m Mover, r *Result) error {
	n := len(r.Path)
	if r.Closed() {
		n--
	}
	for i := 0; i < n; i++ {
		if err := m.SetPosition(r.Path[i], r.Targets[i]); err != nil {
			return fmt.Errorf("%s: %s: %w", methodApply, r.Path[i], err)
		}
	}
	return nil
}
