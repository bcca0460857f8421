package traverse

import (
	"fmt"

	"github.com/katalvlaran/zenmesh/component"
)

const methodFloodFill = "FloodFill"

// FloodFill returns every component reachable from seeds without crossing
// boundary, seeds included.
//
// seeds are vertices, faces or UVs of one shape; boundary is a (possibly
// empty) set of edges of the same shape enclosing the area to fill.
//
//   - Vertices and UVs grow ring by ring. Members on the boundary join the
//     result but are not expanded further; every boundary edge touching the
//     result adds both of its ends, so an enclosing loop comes back whole.
//   - Faces grow through shared edges that are not boundary edges.
//
// With an empty boundary the whole connected region around seeds is
// returned. WithOnRing and WithMaxRings apply as for every ring traversal.
//
// Errors:
//   - ErrInvalidSelection  empty or edge seeds, or a non-edge boundary.
//   - ErrTooManyShapes     seeds and boundary span shapes.
func FloodFill(p Provider, seeds, boundary *component.Set, opts ...Option) (*component.Set, error) {
	w, err := newWalker(p, opts)
	if err != nil {
		return nil, err
	}
	k, err := w.validate(seeds)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFloodFill, err)
	}
	if k == component.Edge {
		return nil, fmt.Errorf("%s: edge seeds: %w", methodFloodFill, ErrInvalidSelection)
	}
	if boundary == nil {
		boundary = component.NewSet()
	}
	if !boundary.Empty() {
		bk, err := boundary.Kind()
		if err != nil {
			return nil, fmt.Errorf("%s: boundary: %w", methodFloodFill, err)
		}
		if bk != component.Edge {
			return nil, fmt.Errorf("%s: %s boundary: %w", methodFloodFill, bk, ErrInvalidSelection)
		}
		if _, err = w.p.OwningShape(seeds.Union(boundary)); err != nil {
			return nil, fmt.Errorf("%s: %w", methodFloodFill, err)
		}
	}

	f := w.newFrontier(seeds)
	if k == component.Face {
		f.step = func(last *component.Set) (*component.Set, error) {
			edges, err := w.p.Convert(last, component.Edge, false)
			if err != nil {
				return nil, err
			}
			edges = edges.Difference(boundary)
			if edges.Empty() {
				return component.NewSet(), nil
			}
			return w.p.Convert(edges, component.Face, false)
		}
	} else if !boundary.Empty() {
		if f.stop, err = w.p.Convert(boundary, k, false); err != nil {
			return nil, fmt.Errorf("%s: %w", methodFloodFill, err)
		}
		f.last = f.last.Difference(f.stop)
	}

	for {
		ring, err := f.grow()
		if err != nil {
			return nil, &SelectionError{Op: methodFloodFill, Components: seeds.Values(), Err: err}
		}
		if ring.Empty() {
			break
		}
	}
	if f.stop != nil {
		// close the enclosing loop: boundary corners touch no interior member
		for grown := true; grown; {
			grown = false
			for _, e := range boundary.Values() {
				ends, err := w.p.Convert(component.NewSet(e), k, false)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", methodFloodFill, err)
				}
				if !ends.Intersection(f.visited).Empty() && !ends.Difference(f.visited).Empty() {
					f.visited.AddSet(ends)
					grown = true
				}
			}
		}
	}
	tracer().Debugf("flood: %d seeds → %d components", seeds.Len(), f.visited.Len())
	return f.visited, nil
}
