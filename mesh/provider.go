// SPDX-License-Identifier: MIT
// Package: zenmesh/mesh
//
// provider.go: component conversion and geometric queries on a Mesh.
// Together with OwningShape these make *Mesh a topology provider for
// package traverse.

package mesh

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/zenmesh/component"
)

// OwningShape returns the mesh name when every member of s belongs to it.
//
// Errors:
//   - component.ErrInvalidSelection  s is empty.
//   - component.ErrTooManyShapes     s spans several shapes.
//   - component.ErrUnknownComponent  s belongs to another shape.
func (m *Mesh) OwningShape(s *component.Set) (component.ShapeID, error) {
	shapes := s.Shapes()
	switch {
	case len(shapes) == 0:
		return "", fmt.Errorf("%s: empty selection: %w", methodOwning, component.ErrInvalidSelection)
	case len(shapes) > 1:
		return "", fmt.Errorf("%s: %v: %w", methodOwning, shapes, component.ErrTooManyShapes)
	case shapes[0] != m.name:
		return "", fmt.Errorf("%s: shape %q is not %q: %w", methodOwning, shapes[0], m.name, component.ErrUnknownComponent)
	}
	return m.name, nil
}

// Position returns the location of vertex v.
func (m *Mesh) Position(v component.Component) (r3.Vector, error) {
	if v.Kind != component.Vertex {
		return r3.Vector{}, fmt.Errorf("%s: %s is not a vertex: %w", methodPosition, v, component.ErrInvalidSelection)
	}
	if v.Shape != m.name {
		return r3.Vector{}, fmt.Errorf("%s: %s: %w", methodPosition, v, component.ErrUnknownComponent)
	}
	return m.Point(int(v.Index))
}

// ArcLength returns the Euclidean length of edge e.
func (m *Mesh) ArcLength(e component.Component) (float64, error) {
	if e.Kind != component.Edge {
		return 0, fmt.Errorf("%s: %s is not an edge: %w", methodArcLength, e, component.ErrInvalidSelection)
	}
	if e.Shape != m.name {
		return 0, fmt.Errorf("%s: %s: %w", methodArcLength, e, component.ErrUnknownComponent)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if int(e.Index) >= len(m.edges) {
		return 0, fmt.Errorf("%s: %s: %w", methodArcLength, e, component.ErrUnknownComponent)
	}
	k := m.edges[e.Index]
	return m.points[k.a].Distance(m.points[k.b]), nil
}

// Convert maps s to components of kind to. See the package documentation
// for the meaning of internal.
//
// Errors:
//   - component.ErrInvalidSelection  s is empty or of mixed kinds.
//   - component.ErrTooManyShapes     s spans several shapes.
//   - component.ErrUnknownComponent  a member does not exist on this mesh.
//
// Complexity: O(k·d) for k members of average incidence d.
func (m *Mesh) Convert(s *component.Set, to component.Kind, internal bool) (*component.Set, error) {
	from, err := s.Kind()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodConvert, err)
	}
	if _, err = m.OwningShape(s); err != nil {
		return nil, fmt.Errorf("%s: %w", methodConvert, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	list := make([]int, 0, s.Len())
	sel := make([]bool, m.countLocked(from))
	for _, c := range s.Values() {
		i := int(c.Index)
		if i >= len(sel) {
			return nil, fmt.Errorf("%s: %s: %w", methodConvert, c, component.ErrUnknownComponent)
		}
		sel[i] = true
		list = append(list, i)
	}
	if from == to {
		return s.Clone(), nil
	}

	out := component.NewSet()
	add := func(i int) {
		out.Add(component.Component{Shape: m.name, Kind: to, Index: uint32(i)})
	}
	switch from {
	case component.Vertex:
		m.fromVertices(list, sel, to, internal, add)
	case component.Edge:
		m.fromEdges(list, sel, to, internal, add)
	case component.Face:
		m.fromFaces(list, sel, to, internal, add)
	case component.UV:
		m.fromUVs(list, sel, to, internal, add)
	default:
		return nil, fmt.Errorf("%s: kind %s: %w", methodConvert, from, component.ErrInvalidSelection)
	}
	tracer().Debugf("convert %s→%s internal=%v: %d → %d", from, to, internal, len(list), out.Len())
	return out, nil
}

func (m *Mesh) countLocked(k component.Kind) int {
	switch k {
	case component.Vertex:
		return len(m.points)
	case component.Edge:
		return len(m.edges)
	case component.Face:
		return len(m.faces)
	case component.UV:
		return len(m.uvs)
	}
	return 0
}

// slotOf returns the corner of face f holding vertex v, or -1.
func (m *Mesh) slotOf(f, v int) int {
	for i, w := range m.faces[f] {
		if w == v {
			return i
		}
	}
	return -1
}

func (m *Mesh) allSelected(idx []int, sel []bool) bool {
	for _, i := range idx {
		if !sel[i] {
			return false
		}
	}
	return true
}

func (m *Mesh) fromVertices(list []int, sel []bool, to component.Kind, internal bool, add func(int)) {
	for _, v := range list {
		switch to {
		case component.Edge:
			for _, e := range m.vertEdges[v] {
				k := m.edges[e]
				if !internal || (sel[k.a] && sel[k.b]) {
					add(e)
				}
			}
		case component.Face:
			for _, f := range m.vertFaces[v] {
				if !internal || m.allSelected(m.faces[f], sel) {
					add(f)
				}
			}
		case component.UV:
			for _, f := range m.vertFaces[v] {
				if uvs := m.faceUVs[f]; uvs != nil {
					add(uvs[m.slotOf(f, v)])
				}
			}
		}
	}
}

func (m *Mesh) fromEdges(list []int, sel []bool, to component.Kind, internal bool, add func(int)) {
	switch to {
	case component.Vertex:
		hits := make(map[int]int, 2*len(list))
		for _, e := range list {
			hits[m.edges[e].a]++
			hits[m.edges[e].b]++
		}
		for v, n := range hits {
			if !internal || n >= 2 {
				add(v)
			}
		}
	case component.Face:
		for _, e := range list {
			for _, f := range m.edgeFaces[e] {
				if !internal || m.allSelected(m.faceEdges[f], sel) {
					add(f)
				}
			}
		}
	case component.UV:
		for _, e := range list {
			k := m.edges[e]
			for _, f := range m.edgeFaces[e] {
				uvs := m.faceUVs[f]
				if uvs == nil {
					continue
				}
				add(uvs[m.slotOf(f, k.a)])
				add(uvs[m.slotOf(f, k.b)])
			}
		}
	}
}

func (m *Mesh) fromFaces(list []int, sel []bool, to component.Kind, internal bool, add func(int)) {
	for _, f := range list {
		switch to {
		case component.Vertex:
			for _, v := range m.faces[f] {
				if !internal || m.allSelected(m.vertFaces[v], sel) {
					add(v)
				}
			}
		case component.Edge:
			for _, e := range m.faceEdges[f] {
				if !internal || m.allSelected(m.edgeFaces[e], sel) {
					add(e)
				}
			}
		case component.UV:
			for _, u := range m.faceUVs[f] {
				add(u)
			}
		}
	}
}

func (m *Mesh) fromUVs(list []int, sel []bool, to component.Kind, internal bool, add func(int)) {
	for _, u := range list {
		for _, c := range m.uvCorners[u] {
			corners := len(m.faces[c.face])
			switch to {
			case component.Vertex:
				add(m.faces[c.face][c.slot])
			case component.Edge:
				uvs := m.faceUVs[c.face]
				next := (c.slot + 1) % corners
				prev := (c.slot + corners - 1) % corners
				if !internal || sel[uvs[next]] {
					add(m.faceEdges[c.face][c.slot])
				}
				if !internal || sel[uvs[prev]] {
					add(m.faceEdges[c.face][prev])
				}
			case component.Face:
				if !internal || m.allSelected(m.faceUVs[c.face], sel) {
					add(c.face)
				}
			}
		}
	}
}
