package traverse

import (
	"fmt"

	"github.com/katalvlaran/zenmesh/component"
)

// FindEndpoint returns one end of the path or loop formed by s. The lowest
// member is used as the search origin; the member farthest from it is an
// end of any open path.
//
// Sets of one or two members need no traversal: with two members the one
// that is not the origin is returned.
func FindEndpoint(p Provider, s *component.Set, opts ...Option) (component.Component, error) {
	w, err := newWalker(p, opts)
	if err != nil {
		return component.Component{}, err
	}
	if _, err = w.validate(s); err != nil {
		return component.Component{}, fmt.Errorf("%s: %w", methodFindEndpoint, err)
	}
	return w.findEndpoint(s)
}

// FindEndpointFrom is FindEndpoint with an explicit origin. origin need not
// be a member of s; it is excluded from the candidates either way.
func FindEndpointFrom(p Provider, s *component.Set, origin component.Component, opts ...Option) (component.Component, error) {
	w, err := newWalker(p, opts)
	if err != nil {
		return component.Component{}, err
	}
	all := s.Clone()
	all.Add(origin)
	if _, err = w.validate(all); err != nil {
		return component.Component{}, fmt.Errorf("%s: %w", methodFindEndpoint, err)
	}
	return w.findEndpointFrom(s, origin)
}

func (w *walker) findEndpoint(s *component.Set) (component.Component, error) {
	origin, ok := s.First()
	if !ok {
		return component.Component{}, fmt.Errorf("%s: empty selection: %w", methodFindEndpoint, ErrInvalidSelection)
	}
	return w.findEndpointFrom(s, origin)
}

func (w *walker) findEndpointFrom(s *component.Set, origin component.Component) (component.Component, error) {
	others := s.Clone()
	others.Remove(origin)
	switch others.Len() {
	case 0:
		return origin, nil
	case 1:
		c, _ := others.First()
		return c, nil
	}
	ordered, err := w.orderByDistance(origin, others)
	if err != nil {
		return component.Component{}, err
	}
	return ordered[len(ordered)-1], nil
}
