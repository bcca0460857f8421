package traverse

import (
	"fmt"

	"github.com/katalvlaran/zenmesh/component"
)

// Positions maps an ordered chain to parameters in [0, spans].
//
// Uniform assigns i/(n−1)·spans by index. Proportional assigns
// spans·(length so far / total length), measuring the edge between each pair
// of consecutive vertices; it requires a vertex chain. A single-component
// chain maps to 0.
//
// Errors:
//   - ErrInvalidSpans       spans < 1.
//   - ErrInvalidSelection   empty chain, or (Proportional) a non-vertex chain
//     or consecutive vertices without an edge.
//   - ErrInvalidEdgeLength  (Proportional) an edge of zero length.
func Positions(p Provider, chain []component.Component, spans int, mode Mode, opts ...Option) ([]component.Position, error) {
	w, err := newWalker(p, opts)
	if err != nil {
		return nil, err
	}
	if spans < 1 {
		return nil, fmt.Errorf("%s: spans=%d: %w", methodPositions, spans, ErrInvalidSpans)
	}
	if len(chain) == 0 {
		return nil, fmt.Errorf("%s: empty chain: %w", methodPositions, ErrInvalidSelection)
	}
	switch mode {
	case Uniform:
		return uniformPositions(chain, spans), nil
	case Proportional:
		if err = w.validateChain(methodPositions, chain, component.Vertex); err != nil {
			return nil, err
		}
		return w.proportionalPositions(chain, spans)
	}
	return nil, fmt.Errorf("%s: %v: %w", methodPositions, mode, ErrOptionViolation)
}

func uniformPositions(chain []component.Component, spans int) []component.Position {
	out := make([]component.Position, len(chain))
	last := len(chain) - 1
	for i, c := range chain {
		out[i].Component = c
		if last > 0 {
			out[i].Param = float64(i) / float64(last) * float64(spans)
		}
	}
	return out
}

func (w *walker) proportionalPositions(chain []component.Component, spans int) ([]component.Position, error) {
	lengths := make([]float64, len(chain))
	total := 0.0
	for i := 1; i < len(chain); i++ {
		e, err := w.edgeBetween(methodPositions, chain[i-1], chain[i])
		if err != nil {
			return nil, err
		}
		l, err := w.p.ArcLength(e)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodPositions, err)
		}
		if l == 0 {
			return nil, &SelectionError{Op: methodPositions, Components: []component.Component{e}, Err: ErrInvalidEdgeLength}
		}
		lengths[i] = l
		total += l
	}

	out := make([]component.Position, len(chain))
	run := 0.0
	for i, c := range chain {
		run += lengths[i]
		out[i].Component = c
		if total > 0 {
			out[i].Param = float64(spans) * (run / total)
		}
	}
	return out, nil
}
