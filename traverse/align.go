package traverse

import (
	"fmt"

	"github.com/katalvlaran/zenmesh/component"
)

// AlignChains orders and orients parallel edge chains, as produced by
// GroupContiguous, so that they run the same way and follow each other
// across the mesh.
//
// Open chains: the first terminal vertex of chain 0 is the origin. Every
// other chain is reversed when its far terminal is nearer to the origin than
// its near terminal. Chains are then ordered by walking their start
// terminals from one end (OrderByEndpoint).
//
// Closed chains (chain 0 is a loop): a corner is found as the vertex of the
// other loops farthest from loop 0's first vertex. A frontier grown from the
// corner meets the loops one by one; each loop is rotated to start at its
// first contact vertex and queued in contact order. Finally every loop is
// reversed when its last-but-one vertex is nearer to the second vertex of the
// first queued loop than its second vertex.
//
// The input chains are not modified.
//
// Errors:
//   - ErrInvalidSelection        no chains, an empty chain, or non-edge members.
//   - ErrNonContiguousSelection  the chains cannot reach each other.
func AlignChains(p Provider, chains [][]component.Component, opts ...Option) ([][]component.Component, error) {
	w, err := newWalker(p, opts)
	if err != nil {
		return nil, err
	}
	if len(chains) == 0 {
		return nil, fmt.Errorf("%s: no chains: %w", methodAlignChains, ErrInvalidSelection)
	}
	all := component.NewSet()
	for _, c := range chains {
		if err = w.validateChain(methodAlignChains, c, component.Edge); err != nil {
			return nil, err
		}
		all.Add(c...)
	}
	if _, err = w.validate(all); err != nil {
		return nil, fmt.Errorf("%s: %w", methodAlignChains, err)
	}
	if len(chains) == 1 {
		return [][]component.Component{append([]component.Component(nil), chains[0]...)}, nil
	}

	closed, err := w.isClosed(chains[0])
	if err != nil {
		return nil, err
	}
	if closed {
		return w.alignClosed(chains)
	}
	return w.alignOpen(chains)
}

func (w *walker) alignOpen(chains [][]component.Component) ([][]component.Component, error) {
	byStart := make(map[component.Component][]component.Component, len(chains))
	starts := component.NewSet()
	var origin component.Component
	for i, chain := range chains {
		first, last, err := w.terminalVertices(chain)
		if err != nil {
			return nil, err
		}
		oriented, start := chain, first
		if i == 0 {
			origin = first
		} else {
			reverse := false
			switch origin {
			case first:
			case last:
				reverse = true
			default:
				order, err := w.orderByDistance(origin, component.NewSet(first, last))
				if err != nil {
					return nil, err
				}
				reverse = order[0] != first
			}
			if reverse {
				oriented, start = component.Reverse(chain), last
			}
		}
		if starts.Contains(start) {
			return nil, &SelectionError{Op: methodAlignChains, Components: []component.Component{start}, Err: ErrInvalidSelection}
		}
		starts.Add(start)
		byStart[start] = append([]component.Component(nil), oriented...)
	}

	order, err := w.orderByEndpoint(starts)
	if err != nil {
		return nil, err
	}
	out := make([][]component.Component, 0, len(order))
	for _, s := range order {
		out = append(out, byStart[s])
	}
	return out, nil
}

func (w *walker) alignClosed(chains [][]component.Component) ([][]component.Component, error) {
	loops := make([][]component.Component, len(chains))
	sets := make([]*component.Set, len(chains))
	others := component.NewSet()
	for i, chain := range chains {
		vs, err := w.edgesVertices(chain)
		if err != nil {
			return nil, err
		}
		loops[i] = vs
		sets[i] = component.NewSet(vs...)
		if i > 0 {
			others.AddSet(sets[i])
		}
	}

	corner, err := w.findEndpointFrom(others, loops[0][0])
	if err != nil {
		return nil, err
	}

	var sorted [][]component.Component
	unused := make([]int, len(loops))
	for i := range unused {
		unused[i] = i
	}
	f := w.newFrontier(component.NewSet(corner))
	for len(unused) > 0 {
		rest := unused[:0]
		for _, i := range unused {
			hit := f.visited.Intersection(sets[i])
			if c, ok := hit.First(); ok {
				sorted = append(sorted, rotateLoop(loops[i], c))
				continue
			}
			rest = append(rest, i)
		}
		unused = rest
		if len(unused) == 0 {
			break
		}
		ring, err := f.grow()
		if err == nil && ring.Empty() {
			err = ErrNonContiguousSelection
		}
		if err != nil {
			var missing []component.Component
			for _, i := range unused {
				missing = append(missing, chains[i]...)
			}
			return nil, &SelectionError{Op: methodAlignChains, Components: missing, Err: err}
		}
	}

	ref := sorted[0][1]
	out := make([][]component.Component, 0, len(sorted))
	for i, loop := range sorted {
		if i > 0 {
			second, penult := loop[1], loop[len(loop)-2]
			reverse := false
			switch ref {
			case second:
			case penult:
				reverse = true
			default:
				order, err := w.orderByDistance(ref, component.NewSet(second, penult))
				if err != nil {
					return nil, err
				}
				reverse = order[0] != second
			}
			if reverse {
				loop = component.Reverse(loop)
			}
		}
		edges, err := w.chainEdges(methodAlignChains, loop)
		if err != nil {
			return nil, err
		}
		out = append(out, edges)
	}
	return out, nil
}

// rotateLoop shifts a closed vertex loop (first == last) so that it starts
// and ends at v.
func rotateLoop(loop []component.Component, v component.Component) []component.Component {
	if loop[0] == v {
		return loop
	}
	idx := 0
	for i, c := range loop {
		if c == v {
			idx = i
			break
		}
	}
	out := make([]component.Component, 0, len(loop))
	out = append(out, loop[idx:len(loop)-1]...)
	return append(out, loop[:idx+1]...)
}
