package traverse

import (
	"fmt"

	"github.com/katalvlaran/zenmesh/component"
)

// OrderChain walks the members of s from one end to the other. s must form
// a simple path or a simple loop of adjacent components: every member has at
// most two neighbours inside s. Loops are returned without repeating the
// start; the last member is adjacent to the first.
//
// Which end starts is not specified beyond being deterministic, so use
// OrderChain where direction does not matter.
//
// Errors:
//   - ErrBranchingSelection      a member has more than two neighbours in s.
//   - ErrNonContiguousSelection  s falls apart into several pieces.
//   - ErrInvalidSelection, ErrTooManyShapes for malformed input.
//
// Complexity: O(|s|) single-component expansions plus one endpoint search.
func OrderChain(p Provider, s *component.Set, opts ...Option) ([]component.Component, error) {
	w, err := newWalker(p, opts)
	if err != nil {
		return nil, err
	}
	if _, err = w.validate(s); err != nil {
		return nil, fmt.Errorf("%s: %w", methodOrderChain, err)
	}
	if s.Len() == 1 {
		return s.Values(), nil
	}

	nbrs, err := w.inducedNeighbours(s)
	if err != nil {
		return nil, err
	}

	start, err := w.findEndpoint(s)
	if err != nil {
		return nil, err
	}
	if len(nbrs[start]) == 2 {
		// a curved open path can put the farthest member mid-path
		for _, c := range s.Values() {
			if len(nbrs[c]) == 1 {
				start = c
				break
			}
		}
	}

	out := make([]component.Component, 0, s.Len())
	seen := make(map[component.Component]bool, s.Len())
	for cur, ok := start, true; ok; {
		out = append(out, cur)
		seen[cur] = true
		ok = false
		for _, n := range nbrs[cur] {
			if !seen[n] {
				cur, ok = n, true
				break
			}
		}
	}
	if len(out) != s.Len() {
		rest := s.Clone()
		rest.Remove(out...)
		return nil, &SelectionError{Op: methodOrderChain, Components: rest.Values(), Err: ErrNonContiguousSelection}
	}
	return out, nil
}

// inducedNeighbours returns, per member, its neighbours inside s in
// ascending order, validating that no member branches.
func (w *walker) inducedNeighbours(s *component.Set) (map[component.Component][]component.Component, error) {
	out := make(map[component.Component][]component.Component, s.Len())
	for _, c := range s.Values() {
		b, err := w.neighbours(c)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodOrderChain, err)
		}
		in := b.Intersection(s).Values()
		switch {
		case len(in) > 2:
			return nil, &SelectionError{Op: methodOrderChain, Components: append([]component.Component{c}, in...), Err: ErrBranchingSelection}
		case len(in) == 0:
			return nil, &SelectionError{Op: methodOrderChain, Components: []component.Component{c}, Err: ErrNonContiguousSelection}
		}
		out[c] = in
	}
	return out, nil
}

// OrderByEndpoint returns an endpoint of s followed by the remaining members
// ordered by distance from it. Unlike OrderChain, s may be sparse: a
// handful of picked vertices along a loop are returned in loop order.
func OrderByEndpoint(p Provider, s *component.Set, opts ...Option) ([]component.Component, error) {
	w, err := newWalker(p, opts)
	if err != nil {
		return nil, err
	}
	if _, err = w.validate(s); err != nil {
		return nil, fmt.Errorf("%s: %w", methodOrderByEndpoint, err)
	}
	return w.orderByEndpoint(s)
}

func (w *walker) orderByEndpoint(s *component.Set) ([]component.Component, error) {
	end, err := w.findEndpoint(s)
	if err != nil {
		return nil, err
	}
	rest, err := w.orderByDistance(end, s)
	if err != nil {
		return nil, err
	}
	return append([]component.Component{end}, rest...), nil
}
