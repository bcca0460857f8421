// SPDX-License-Identifier: MIT
// Package: zenmesh/mesh
//
// scene.go: multi-shape container. Scene is the provider hosts hand to the
// traversals when a selection may come from any shape.

package mesh

import (
	"fmt"
	"sort"
	"sync"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/zenmesh/component"
)

// Scene holds meshes keyed by shape name.
type Scene struct {
	mu     sync.RWMutex
	meshes map[component.ShapeID]*Mesh
}

// NewScene returns a scene holding meshes.
func NewScene(meshes ...*Mesh) (*Scene, error) {
	sc := &Scene{meshes: make(map[component.ShapeID]*Mesh, len(meshes))}
	for _, m := range meshes {
		if err := sc.Add(m); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

// Add registers m under its shape name.
func (sc *Scene) Add(m *Mesh) error {
	if m == nil {
		return fmt.Errorf("%s: nil mesh: %w", methodSceneAdd, ErrEmptyShapeName)
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if _, dup := sc.meshes[m.Name()]; dup {
		return fmt.Errorf("%s: %q: %w", methodSceneAdd, m.Name(), ErrDuplicateShape)
	}
	sc.meshes[m.Name()] = m
	tracer().Debugf("scene: added shape %s", m.Name())
	return nil
}

// Mesh returns the mesh named name.
func (sc *Scene) Mesh(name component.ShapeID) (*Mesh, bool) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	m, ok := sc.meshes[name]
	return m, ok
}

// Shapes returns the shape names in ascending order.
func (sc *Scene) Shapes() []component.ShapeID {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	out := make([]component.ShapeID, 0, len(sc.meshes))
	for name := range sc.meshes {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// OwningShape returns the single shape all members of s belong to.
func (sc *Scene) OwningShape(s *component.Set) (component.ShapeID, error) {
	m, err := sc.owner(s)
	if err != nil {
		return "", err
	}
	return m.Name(), nil
}

func (sc *Scene) owner(s *component.Set) (*Mesh, error) {
	shapes := s.Shapes()
	switch {
	case len(shapes) == 0:
		return nil, fmt.Errorf("%s: empty selection: %w", methodOwning, component.ErrInvalidSelection)
	case len(shapes) > 1:
		return nil, fmt.Errorf("%s: %v: %w", methodOwning, shapes, component.ErrTooManyShapes)
	}
	m, ok := sc.Mesh(shapes[0])
	if !ok {
		return nil, fmt.Errorf("%s: shape %q: %w", methodOwning, shapes[0], component.ErrUnknownComponent)
	}
	return m, nil
}

func (sc *Scene) meshOf(c component.Component) (*Mesh, error) {
	m, ok := sc.Mesh(c.Shape)
	if !ok {
		return nil, fmt.Errorf("shape %q: %w", c.Shape, component.ErrUnknownComponent)
	}
	return m, nil
}

// Convert routes to the owning mesh.
func (sc *Scene) Convert(s *component.Set, to component.Kind, internal bool) (*component.Set, error) {
	m, err := sc.owner(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodConvert, err)
	}
	return m.Convert(s, to, internal)
}

// Position routes to the owning mesh.
func (sc *Scene) Position(v component.Component) (r3.Vector, error) {
	m, err := sc.meshOf(v)
	if err != nil {
		return r3.Vector{}, fmt.Errorf("%s: %w", methodPosition, err)
	}
	return m.Position(v)
}

// ArcLength routes to the owning mesh.
func (sc *Scene) ArcLength(e component.Component) (float64, error) {
	m, err := sc.meshOf(e)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodArcLength, err)
	}
	return m.ArcLength(e)
}

// SetPosition moves vertex v of its owning mesh to p.
func (sc *Scene) SetPosition(v component.Component, p r3.Vector) error {
	if v.Kind != component.Vertex {
		return fmt.Errorf("%s: %s is not a vertex: %w", methodSetPosition, v, component.ErrInvalidSelection)
	}
	m, err := sc.meshOf(v)
	if err != nil {
		return fmt.Errorf("%s: %w", methodSetPosition, err)
	}
	return m.SetPosition(int(v.Index), p)
}
