package traverse

import (
	"fmt"

	"github.com/katalvlaran/zenmesh/component"
)

// GroupContiguous splits an edge selection into chains of edges that share
// vertices, each chain ordered from one end to the other.
//
// Edges are consumed in ascending order. An edge touching the head of a
// chain is prepended, one touching its tail is appended. When the same edge
// also touches a second chain, the two chains are joined through it and the
// second chain's slot is vacated. Chains are returned in slot order with
// vacated slots dropped.
//
// Closed loops come back as a single chain whose first and last edges share
// a vertex (see IsClosed).
//
// Errors: ErrInvalidSelection for empty or non-edge sets, ErrTooManyShapes.
// Complexity: O(|edges| · chains) plus one expansion per edge.
func GroupContiguous(p Provider, edges *component.Set, opts ...Option) ([][]component.Component, error) {
	w, err := newWalker(p, opts)
	if err != nil {
		return nil, err
	}
	k, err := w.validate(edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGroupContiguous, err)
	}
	if k != component.Edge {
		return nil, fmt.Errorf("%s: %s components: %w", methodGroupContiguous, k, ErrInvalidSelection)
	}
	return w.groupContiguous(edges)
}

// end identifies a chain end a new edge attaches to.
type end struct {
	slot int
	head bool
}

func (w *walker) groupContiguous(edges *component.Set) ([][]component.Component, error) {
	var slots [][]component.Component
	for _, e := range edges.Values() {
		adj, err := w.neighbours(e)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodGroupContiguous, err)
		}

		var hits []end
		for i, chain := range slots {
			if len(chain) == 0 {
				continue
			}
			switch {
			case adj.Contains(chain[0]):
				hits = append(hits, end{slot: i, head: true})
			case adj.Contains(chain[len(chain)-1]):
				hits = append(hits, end{slot: i, head: false})
			}
			if len(hits) == 2 {
				break
			}
		}

		switch len(hits) {
		case 0:
			slots = append(slots, []component.Component{e})
		case 1:
			slots[hits[0].slot] = attach(slots[hits[0].slot], e, hits[0].head)
		default:
			a, b := hits[0], hits[1]
			// orient a so it ends with e, b so it starts at the touching end
			left := attach(slots[a.slot], e, a.head)
			if a.head {
				left = component.Reverse(left)
			}
			right := slots[b.slot]
			if !b.head {
				right = component.Reverse(right)
			}
			slots[a.slot] = append(left, right...)
			slots[b.slot] = nil
			tracer().Debugf("joined chains %d and %d through %s", a.slot, b.slot, e)
		}
	}

	out := make([][]component.Component, 0, len(slots))
	for _, chain := range slots {
		if len(chain) > 0 {
			out = append(out, chain)
		}
	}
	return out, nil
}

func attach(chain []component.Component, e component.Component, head bool) []component.Component {
	if head {
		return append([]component.Component{e}, chain...)
	}
	return append(chain, e)
}
