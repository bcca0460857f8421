package traverse

import (
	"fmt"

	"github.com/katalvlaran/zenmesh/component"
)

// OrderByDistance returns the members of others ordered by topological
// distance from origin. Members at the same distance appear in ascending
// component order. origin itself is never part of the result.
//
// Errors:
//   - ErrInvalidSelection        others and origin mix kinds.
//   - ErrTooManyShapes           others and origin span shapes.
//   - ErrNonContiguousSelection  a member is unreachable from origin
//     (*SelectionError listing the unreached members).
//
// Complexity: O(R) provider expansions for R rings up to the farthest member.
func OrderByDistance(p Provider, origin component.Component, others *component.Set, opts ...Option) ([]component.Component, error) {
	w, err := newWalker(p, opts)
	if err != nil {
		return nil, err
	}
	all := others.Clone()
	all.Add(origin)
	if _, err = w.validate(all); err != nil {
		return nil, fmt.Errorf("%s: %w", methodOrderByDistance, err)
	}
	return w.orderByDistance(origin, others)
}

func (w *walker) orderByDistance(origin component.Component, others *component.Set) ([]component.Component, error) {
	unsorted := others.Clone()
	unsorted.Remove(origin)
	out := make([]component.Component, 0, unsorted.Len())

	f := w.newFrontier(component.NewSet(origin))
	for !unsorted.Empty() {
		ring, err := f.grow()
		if err != nil {
			return nil, &SelectionError{Op: methodOrderByDistance, Components: unsorted.Values(), Err: err}
		}
		if ring.Empty() {
			return nil, &SelectionError{Op: methodOrderByDistance, Components: unsorted.Values(), Err: ErrNonContiguousSelection}
		}
		matched := ring.Intersection(unsorted)
		if matched.Empty() {
			continue
		}
		out = append(out, matched.Values()...)
		unsorted = unsorted.Difference(matched)
	}
	return out, nil
}
