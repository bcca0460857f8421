package traverse

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/zenmesh/component"
)

// ShortestPath returns the vertices of a path from start to end that uses
// the fewest edges, start and end included.
//
// Rings are grown from both ends; the i-th vertex of the path lies in the
// i-th ring around start and in the mirrored ring around end. When a step
// has several such vertices, the candidates are first restricted to
// neighbours of the previously chosen vertex, and then the vertex with the
// least |start−c| + |c−end| is taken. Exact geometric ties go to the lowest
// component. Every step that needs the geometric tie-break is reported to
// the warning hook as a *PathWarning wrapping
// ErrMultipleVertexPathsPossible; the path is returned regardless.
//
// Errors:
//   - ErrInvalidSelection        start or end is not a vertex.
//   - ErrTooManyShapes           start and end lie on different shapes.
//   - ErrNonContiguousSelection  end cannot be reached from start.
//
// Complexity: O(d) provider expansions from each end for path length d.
func ShortestPath(p Provider, start, end component.Component, opts ...Option) ([]component.Component, error) {
	w, err := newWalker(p, opts)
	if err != nil {
		return nil, err
	}
	if err = w.validateVertices(methodShortestPath, start, end); err != nil {
		return nil, err
	}
	return w.shortestPath(start, end)
}

// ShortestPathThrough concatenates the shortest paths between consecutive
// waypoints. Each segment after the first drops its leading vertex, which is
// the previous segment's last.
func ShortestPathThrough(p Provider, waypoints []component.Component, opts ...Option) ([]component.Component, error) {
	w, err := newWalker(p, opts)
	if err != nil {
		return nil, err
	}
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("%s: %d waypoints (need ≥ 2): %w", methodShortestThrough, len(waypoints), ErrInvalidSelection)
	}
	if err = w.validateVertices(methodShortestThrough, waypoints...); err != nil {
		return nil, err
	}
	var out []component.Component
	for i := 1; i < len(waypoints); i++ {
		seg, err := w.shortestPath(waypoints[i-1], waypoints[i])
		if err != nil {
			return nil, err
		}
		if i > 1 {
			seg = seg[1:]
		}
		out = append(out, seg...)
	}
	return out, nil
}

func (w *walker) validateVertices(method string, vs ...component.Component) error {
	for _, v := range vs {
		if v.Kind != component.Vertex {
			return &SelectionError{Op: method, Components: []component.Component{v}, Err: ErrInvalidSelection}
		}
	}
	if _, err := w.validate(component.NewSet(vs...)); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

func (w *walker) rings(from, to component.Component) ([]*component.Set, error) {
	rings := []*component.Set{component.NewSet(from)}
	f := w.newFrontier(rings[0])
	for !f.visited.Contains(to) {
		ring, err := f.grow()
		if err != nil {
			return nil, &SelectionError{Op: methodShortestPath, Components: []component.Component{from, to}, Err: err}
		}
		if ring.Empty() {
			return nil, &SelectionError{Op: methodShortestPath, Components: []component.Component{from, to}, Err: ErrNonContiguousSelection}
		}
		rings = append(rings, ring)
	}
	return rings, nil
}

func (w *walker) shortestPath(start, end component.Component) ([]component.Component, error) {
	fromStart, err := w.rings(start, end)
	if err != nil {
		return nil, err
	}
	fromEnd, err := w.rings(end, start)
	if err != nil {
		return nil, err
	}
	n := len(fromStart)
	if len(fromEnd) != n {
		// distances are symmetric on an undirected mesh
		return nil, &SelectionError{Op: methodShortestPath, Components: []component.Component{start, end}, Err: ErrNonContiguousSelection}
	}

	var startPos, endPos r3.Vector
	var havePos bool
	path := make([]component.Component, 0, n)
	for i := 0; i < n; i++ {
		cands := fromStart[i].Intersection(fromEnd[n-1-i])
		if i > 0 && cands.Len() > 1 {
			near, err := w.neighbours(path[i-1])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodShortestPath, err)
			}
			cands = cands.Intersection(near)
		}
		switch cands.Len() {
		case 0:
			return nil, &SelectionError{Op: methodShortestPath, Components: []component.Component{start, end}, Err: ErrNonContiguousSelection}
		case 1:
			c, _ := cands.First()
			path = append(path, c)
			continue
		}

		if !havePos {
			if startPos, err = w.p.Position(start); err != nil {
				return nil, fmt.Errorf("%s: %w", methodShortestPath, err)
			}
			if endPos, err = w.p.Position(end); err != nil {
				return nil, fmt.Errorf("%s: %w", methodShortestPath, err)
			}
			havePos = true
		}
		chosen, err := w.leastDeviant(startPos, endPos, cands)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodShortestPath, err)
		}
		path = append(path, chosen)

		warn := &PathWarning{Start: start, End: end, Step: i, Candidates: cands.Values(), Chosen: chosen}
		tracer().Infof("%v", warn)
		w.opts.OnWarning(warn)
	}
	return path, nil
}

// leastDeviant returns the candidate c minimizing |a−c| + |c−b|; the lowest
// component wins exact ties.
func (w *walker) leastDeviant(a, b r3.Vector, cands *component.Set) (component.Component, error) {
	var best component.Component
	bestLen := math.Inf(1)
	for _, c := range cands.Values() {
		pos, err := w.p.Position(c)
		if err != nil {
			return component.Component{}, err
		}
		if l := a.Distance(pos) + pos.Distance(b); l < bestLen {
			best, bestLen = c, l
		}
	}
	return best, nil
}
