package component

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// comparator adapts Compare to the gods comparator signature. Every Set
// shares this single function value: treeset refuses set algebra between
// sets built with different comparators.
func comparator(a, b interface{}) int {
	return Compare(a.(Component), b.(Component))
}

// Set is an unordered collection of unique components. Iteration order is
// ascending by Compare, never insertion order.
//
// A Set is not safe for concurrent mutation; traversals build fresh sets per
// call and never share them.
type Set struct {
	tree *treeset.Set
}

// NewSet returns a set holding cs (duplicates collapse).
// Complexity: O(n log n).
func NewSet(cs ...Component) *Set {
	s := &Set{tree: treeset.NewWith(comparator)}
	s.Add(cs...)
	return s
}

// Add inserts components; existing members are left untouched.
func (s *Set) Add(cs ...Component) {
	for _, c := range cs {
		s.tree.Add(c)
	}
}

// AddSet inserts every member of o.
func (s *Set) AddSet(o *Set) {
	if o == nil {
		return
	}
	for it := o.tree.Iterator(); it.Next(); {
		s.tree.Add(it.Value())
	}
}

// Remove deletes components; absent members are ignored.
func (s *Set) Remove(cs ...Component) {
	for _, c := range cs {
		s.tree.Remove(c)
	}
}

// Contains reports whether c is a member.
func (s *Set) Contains(c Component) bool {
	return s.tree.Contains(c)
}

// Len returns the number of members.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.tree.Size()
}

// Empty reports whether the set has no members.
func (s *Set) Empty() bool {
	return s.Len() == 0
}

// Values returns the members in ascending order. The slice is a copy.
func (s *Set) Values() []Component {
	out := make([]Component, 0, s.Len())
	if s == nil {
		return out
	}
	for it := s.tree.Iterator(); it.Next(); {
		out = append(out, it.Value().(Component))
	}
	return out
}

// Each calls fn for every member in ascending order.
func (s *Set) Each(fn func(c Component)) {
	for it := s.tree.Iterator(); it.Next(); {
		fn(it.Value().(Component))
	}
}

// First returns the smallest member. ok is false for an empty set.
func (s *Set) First() (c Component, ok bool) {
	it := s.tree.Iterator()
	if !it.First() {
		return Component{}, false
	}
	return it.Value().(Component), true
}

// Last returns the largest member. ok is false for an empty set.
func (s *Set) Last() (c Component, ok bool) {
	it := s.tree.Iterator()
	if !it.Last() {
		return Component{}, false
	}
	return it.Value().(Component), true
}

// Clone returns an independent copy.
func (s *Set) Clone() *Set {
	out := NewSet()
	out.AddSet(s)
	return out
}

// Union returns s ∪ o as a new set.
func (s *Set) Union(o *Set) *Set {
	return &Set{tree: s.tree.Union(o.tree)}
}

// Intersection returns s ∩ o as a new set.
func (s *Set) Intersection(o *Set) *Set {
	return &Set{tree: s.tree.Intersection(o.tree)}
}

// Difference returns s − o as a new set.
func (s *Set) Difference(o *Set) *Set {
	return &Set{tree: s.tree.Difference(o.tree)}
}

// Equal reports whether s and o hold the same members.
func (s *Set) Equal(o *Set) bool {
	if s.Len() != o.Len() {
		return false
	}
	for it := s.tree.Iterator(); it.Next(); {
		if !o.tree.Contains(it.Value()) {
			return false
		}
	}
	return true
}

// Kind returns the kind shared by every member. An empty set or a set of
// mixed kinds is an ErrInvalidSelection.
func (s *Set) Kind() (Kind, error) {
	first, ok := s.First()
	if !ok {
		return 0, fmt.Errorf("%w: empty selection", ErrInvalidSelection)
	}
	mixed := s.tree.Any(func(_ int, v interface{}) bool {
		return v.(Component).Kind != first.Kind
	})
	if mixed {
		return 0, fmt.Errorf("%w: mixed component kinds in %s", ErrInvalidSelection, s)
	}
	return first.Kind, nil
}

// Shapes returns the distinct shapes referenced by the members, ascending.
func (s *Set) Shapes() []ShapeID {
	var out []ShapeID
	s.Each(func(c Component) {
		// members are sorted by shape first, so duplicates are adjacent
		if len(out) == 0 || out[len(out)-1] != c.Shape {
			out = append(out, c.Shape)
		}
	})
	return out
}

// String renders the members as host names, e.g. "{pPlane1.vtx[0] pPlane1.vtx[1]}".
func (s *Set) String() string {
	names := make([]string, 0, s.Len())
	for _, c := range s.Values() {
		names = append(names, c.String())
	}
	return "{" + strings.Join(names, " ") + "}"
}
