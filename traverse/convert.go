package traverse

import (
	"fmt"

	"github.com/katalvlaran/zenmesh/component"
)

// VerticesEdges returns the edges joining consecutive vertices of an
// ordered vertex chain.
//
// Errors: ErrInvalidSelection (as *SelectionError) when two consecutive
// vertices share no edge.
func VerticesEdges(p Provider, vertices []component.Component, opts ...Option) ([]component.Component, error) {
	w, err := newWalker(p, opts)
	if err != nil {
		return nil, err
	}
	if err = w.validateChain(methodVerticesEdges, vertices, component.Vertex); err != nil {
		return nil, err
	}
	return w.chainEdges(methodVerticesEdges, vertices)
}

// UVsEdges returns the edges joining consecutive UVs of an ordered UV chain.
func UVsEdges(p Provider, uvs []component.Component, opts ...Option) ([]component.Component, error) {
	w, err := newWalker(p, opts)
	if err != nil {
		return nil, err
	}
	if err = w.validateChain(methodUVsEdges, uvs, component.UV); err != nil {
		return nil, err
	}
	return w.chainEdges(methodUVsEdges, uvs)
}

// EdgesVertices returns the vertices along an ordered edge chain. A closed
// chain yields its first vertex again at the end.
//
// A single edge yields its two vertices in ascending order.
func EdgesVertices(p Provider, edges []component.Component, opts ...Option) ([]component.Component, error) {
	w, err := newWalker(p, opts)
	if err != nil {
		return nil, err
	}
	if err = w.validateChain(methodEdgesVertices, edges, component.Edge); err != nil {
		return nil, err
	}
	return w.edgesVertices(edges)
}

// TerminalVertices returns the first and last vertex of an ordered open edge
// chain. For a single edge both of its vertices are returned, ascending.
func TerminalVertices(p Provider, edges []component.Component, opts ...Option) (first, last component.Component, err error) {
	w, err := newWalker(p, opts)
	if err != nil {
		return first, last, err
	}
	if err = w.validateChain(methodTerminalVertices, edges, component.Edge); err != nil {
		return first, last, err
	}
	return w.terminalVertices(edges)
}

// IsClosed reports whether an ordered edge chain forms a loop: it has more
// than two edges, its first and last edges differ, and they share a vertex.
func IsClosed(p Provider, edges []component.Component, opts ...Option) (bool, error) {
	w, err := newWalker(p, opts)
	if err != nil {
		return false, err
	}
	if err = w.validateChain(methodEdgesVertices, edges, component.Edge); err != nil {
		return false, err
	}
	return w.isClosed(edges)
}

func (w *walker) validateChain(method string, chain []component.Component, kind component.Kind) error {
	if len(chain) == 0 {
		return fmt.Errorf("%s: empty chain: %w", method, ErrInvalidSelection)
	}
	k, err := w.validate(component.NewSet(chain...))
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if k != kind {
		return fmt.Errorf("%s: %s chain, want %s: %w", method, k, kind, ErrInvalidSelection)
	}
	return nil
}

// edgeBetween returns the edge joining a and b (vertices or UVs).
func (w *walker) edgeBetween(method string, a, b component.Component) (component.Component, error) {
	es, err := w.p.Convert(component.NewSet(a, b), component.Edge, true)
	if err != nil {
		return component.Component{}, fmt.Errorf("%s: %w", method, err)
	}
	e, ok := es.First()
	if !ok {
		return component.Component{}, &SelectionError{Op: method, Components: []component.Component{a, b}, Err: ErrInvalidSelection}
	}
	return e, nil
}

func (w *walker) chainEdges(method string, chain []component.Component) ([]component.Component, error) {
	out := make([]component.Component, 0, len(chain))
	for i := 1; i < len(chain); i++ {
		e, err := w.edgeBetween(method, chain[i-1], chain[i])
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (w *walker) edgeVertices(e component.Component) (*component.Set, error) {
	return w.p.Convert(component.NewSet(e), component.Vertex, false)
}

func (w *walker) edgesVertices(edges []component.Component) ([]component.Component, error) {
	prev, err := w.edgeVertices(edges[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodEdgesVertices, err)
	}
	var out []component.Component
	for i := 1; i < len(edges); i++ {
		cur, err := w.edgeVertices(edges[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodEdgesVertices, err)
		}
		shared := prev.Intersection(cur)
		if shared.Len() != 1 {
			return nil, &SelectionError{Op: methodEdgesVertices, Components: []component.Component{edges[i-1], edges[i]}, Err: ErrNonContiguousSelection}
		}
		out = append(out, prev.Difference(cur).Values()...)
		out = append(out, shared.Values()...)
		prev = cur.Difference(prev)
	}
	return append(out, prev.Values()...), nil
}

func (w *walker) terminalVertices(edges []component.Component) (first, last component.Component, err error) {
	if len(edges) == 1 {
		vs, err := w.edgeVertices(edges[0])
		if err != nil {
			return first, last, fmt.Errorf("%s: %w", methodTerminalVertices, err)
		}
		ends := vs.Values()
		if len(ends) != 2 {
			return first, last, &SelectionError{Op: methodTerminalVertices, Components: edges, Err: ErrInvalidSelection}
		}
		return ends[0], ends[1], nil
	}
	outer := func(a, b component.Component) (component.Component, error) {
		va, err := w.edgeVertices(a)
		if err != nil {
			return component.Component{}, err
		}
		vb, err := w.edgeVertices(b)
		if err != nil {
			return component.Component{}, err
		}
		d := va.Difference(vb)
		if d.Len() != 1 {
			return component.Component{}, &SelectionError{Op: methodTerminalVertices, Components: []component.Component{a, b}, Err: ErrNonContiguousSelection}
		}
		c, _ := d.First()
		return c, nil
	}
	n := len(edges)
	if first, err = outer(edges[0], edges[1]); err != nil {
		return first, last, err
	}
	if last, err = outer(edges[n-1], edges[n-2]); err != nil {
		return first, last, err
	}
	return first, last, nil
}

func (w *walker) isClosed(edges []component.Component) (bool, error) {
	n := len(edges)
	if n <= 2 || edges[0] == edges[n-1] {
		return false, nil
	}
	shared, err := w.p.Convert(component.NewSet(edges[0], edges[n-1]), component.Vertex, true)
	if err != nil {
		return false, fmt.Errorf("%s: %w", methodEdgesVertices, err)
	}
	return !shared.Empty(), nil
}
