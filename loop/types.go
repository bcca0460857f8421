package loop

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/zenmesh/component"
	"github.com/katalvlaran/zenmesh/traverse"
)

// Method tags used as error prefixes.
const (
	methodEdgesBetween = "SelectEdgesBetweenVertices"
	methodDistribute   = "Distribute"
	methodApply        = "Apply"
)

// ErrTooFewKnots is returned when fewer than two distinct vertices are given.
var ErrTooFewKnots = errors.New("loop: at least two vertices required")

// Mover writes vertex positions back to a host. *mesh.Scene implements it.
type Mover interface {
	SetPosition(v component.Component, p r3.Vector) error
}

// Option configures a loop operation.
// Invalid options are recorded and surfaced as traverse.ErrOptionViolation
// when the operation runs.
type Option func(*Options)

// Options holds the knobs shared by SelectEdgesBetweenVertices and
// Distribute.
type Options struct {
	// UseSelectionOrder keeps the vertices in the order given. Otherwise
	// they are sorted along the path they span (traverse.OrderByEndpoint).
	UseSelectionOrder bool

	// Close continues from the last vertex back to the first.
	Close bool

	// Mode spreads distributed vertices uniformly or proportionally to
	// their current edge lengths. Distribute only.
	Mode traverse.Mode

	// Traverse is passed to every traversal the operation runs.
	Traverse []traverse.Option

	err error
}

// DefaultOptions returns sorted, open, uniform options.
func DefaultOptions() Options {
	return Options{Mode: traverse.Uniform}
}

// WithSelectionOrder keeps (on=true) or sorts (on=false) the given vertices.
func WithSelectionOrder(on bool) Option {
	return func(o *Options) { o.UseSelectionOrder = on }
}

// WithClose closes the path back to the first vertex.
func WithClose(on bool) Option {
	return func(o *Options) { o.Close = on }
}

// WithMode selects the distribution mode.
func WithMode(m traverse.Mode) Option {
	return func(o *Options) {
		if m != traverse.Uniform && m != traverse.Proportional {
			o.err = fmt.Errorf("%w: unknown mode %v", traverse.ErrOptionViolation, m)
			return
		}
		o.Mode = m
	}
}

// WithTraverseOptions forwards hooks and limits to the underlying traversals.
func WithTraverseOptions(opts ...traverse.Option) Option {
	return func(o *Options) { o.Traverse = append(o.Traverse, opts...) }
}

// Resolve applies opts over DefaultOptions and reports the first invalid
// option.
func Resolve(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// knots returns the vertices to route through, in routing order, without
// the closing repeat.
func (o Options) knots(p traverse.Provider, vertices []component.Component) ([]component.Component, error) {
	if o.UseSelectionOrder {
		out := make([]component.Component, 0, len(vertices))
		for _, v := range vertices {
			if len(out) == 0 || out[len(out)-1] != v {
				out = append(out, v)
			}
		}
		if len(out) < 2 {
			return nil, ErrTooFewKnots
		}
		return out, nil
	}
	s := component.NewSet(vertices...)
	if s.Len() < 2 {
		return nil, ErrTooFewKnots
	}
	return traverse.OrderByEndpoint(p, s, o.Traverse...)
}

// waypoints returns the knots with the first repeated at the end when closed.
func (o Options) waypoints(knots []component.Component) []component.Component {
	if !o.Close {
		return knots
	}
	return append(append([]component.Component(nil), knots...), knots[0])
}
