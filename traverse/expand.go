package traverse

import (
	"fmt"

	"github.com/katalvlaran/zenmesh/component"
)

// Method tags used as error prefixes.
const (
	methodExpand           = "Expand"
	methodBorder           = "Border"
	methodOrderByDistance  = "OrderByDistance"
	methodFindEndpoint     = "FindEndpoint"
	methodOrderChain       = "OrderChain"
	methodOrderByEndpoint  = "OrderByEndpoint"
	methodShortestPath     = "ShortestPath"
	methodShortestThrough  = "ShortestPathThrough"
	methodGroupContiguous  = "GroupContiguous"
	methodAlignChains      = "AlignChains"
	methodPositions        = "Positions"
	methodVerticesEdges    = "VerticesEdges"
	methodUVsEdges         = "UVsEdges"
	methodEdgesVertices    = "EdgesVertices"
	methodTerminalVertices = "TerminalVertices"
)

// walker encapsulates the provider and resolved options of one call.
type walker struct {
	p    Provider
	opts Options
}

func newWalker(p Provider, opts []Option) (*walker, error) {
	if p == nil {
		return nil, ErrProviderNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &walker{p: p, opts: o}, nil
}

// validate checks that s is a non-empty, homogeneous, single-shape set.
func (w *walker) validate(s *component.Set) (component.Kind, error) {
	k, err := s.Kind()
	if err != nil {
		return 0, err
	}
	if _, err = w.p.OwningShape(s); err != nil {
		return 0, err
	}
	return k, nil
}

// Expand returns s plus every component one step away: vertex and UV sets
// through shared edges, edge sets through shared vertices, face sets through
// shared edges.
//
// Errors: ErrInvalidSelection for empty or mixed sets, ErrTooManyShapes.
// Complexity: two provider conversions.
func Expand(p Provider, s *component.Set, opts ...Option) (*component.Set, error) {
	w, err := newWalker(p, opts)
	if err != nil {
		return nil, err
	}
	if _, err = w.validate(s); err != nil {
		return nil, fmt.Errorf("%s: %w", methodExpand, err)
	}
	out, err := w.expand(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodExpand, err)
	}
	return out, nil
}

// Border returns Expand(s) − s.
func Border(p Provider, s *component.Set, opts ...Option) (*component.Set, error) {
	w, err := newWalker(p, opts)
	if err != nil {
		return nil, err
	}
	if _, err = w.validate(s); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBorder, err)
	}
	out, err := w.border(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBorder, err)
	}
	return out, nil
}

// via returns the kind an expansion of k passes through.
func via(k component.Kind) component.Kind {
	if k == component.Edge {
		return component.Vertex
	}
	return component.Edge
}

// expand assumes s is validated.
func (w *walker) expand(s *component.Set) (*component.Set, error) {
	k, err := s.Kind()
	if err != nil {
		return nil, err
	}
	mid, err := w.p.Convert(s, via(k), false)
	if err != nil {
		return nil, err
	}
	if mid.Empty() {
		// isolated components
		return s.Clone(), nil
	}
	out, err := w.p.Convert(mid, k, false)
	if err != nil {
		return nil, err
	}
	out.AddSet(s)
	return out, nil
}

func (w *walker) border(s *component.Set) (*component.Set, error) {
	out, err := w.expand(s)
	if err != nil {
		return nil, err
	}
	return out.Difference(s), nil
}

// neighbours returns the components one step away from c.
func (w *walker) neighbours(c component.Component) (*component.Set, error) {
	return w.border(component.NewSet(c))
}

// frontier grows breadth-first rings around a seed set.
type frontier struct {
	w       *walker
	visited *component.Set
	last    *component.Set
	depth   int

	// step maps the newest ring to its neighbourhood; w.expand by default.
	step func(*component.Set) (*component.Set, error)
	// stop holds members that join a ring but are never expanded.
	stop *component.Set
}

func (w *walker) newFrontier(seed *component.Set) *frontier {
	return &frontier{w: w, visited: seed.Clone(), last: seed.Clone(), step: w.expand}
}

// grow adds one ring and returns it. An empty ring means the frontier has
// exhausted its connected region. Everything adjacent to older rings is
// already visited, so only the last ring needs expanding.
func (f *frontier) grow() (*component.Set, error) {
	if f.last.Empty() {
		return component.NewSet(), nil
	}
	out, err := f.step(f.last)
	if err != nil {
		return nil, err
	}
	ring := out.Difference(f.visited)
	if ring.Empty() {
		f.last = ring
		return ring, nil
	}
	if f.w.opts.MaxRings > 0 && f.depth >= f.w.opts.MaxRings {
		return nil, fmt.Errorf("ring limit %d reached: %w", f.w.opts.MaxRings, ErrNonContiguousSelection)
	}
	f.depth++
	f.visited.AddSet(ring)
	f.last = ring
	if f.stop != nil {
		f.last = ring.Difference(f.stop)
	}
	tracer().Debugf("ring %d: %d components", f.depth, ring.Len())
	f.w.opts.OnRing(f.depth, ring)
	return ring, nil
}
