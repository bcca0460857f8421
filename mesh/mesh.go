// SPDX-License-Identifier: MIT
// Package: zenmesh/mesh
//
// mesh.go: Mesh storage: vertices, UVs, faces, edges and incidence lists.
//
// Determinism:
//   - Edge indices are assigned in creation order: for each AddFace call,
//     corner i → corner i+1 (wrapping), skipping edges that already exist.
//   - Incidence lists are kept ascending because indices only grow.

package mesh

import (
	"fmt"
	"sync"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"

	"github.com/katalvlaran/zenmesh/component"
)

// edgeKey is an undirected vertex pair with a < b.
type edgeKey struct{ a, b int }

func keyOf(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a: a, b: b}
}

// corner locates one face corner.
type corner struct {
	face, slot int
}

// Mesh is a single polygon mesh shape.
type Mesh struct {
	mu   sync.RWMutex
	name component.ShapeID

	points []r3.Vector
	uvs    []r2.Point

	faces     [][]int // corner vertex indices
	faceUVs   [][]int // corner UV indices, nil when the face carries no UVs
	faceEdges [][]int // faceEdges[f][i] joins corner i and corner i+1

	edges     []edgeKey
	edgeIndex map[edgeKey]int

	vertEdges [][]int
	vertFaces [][]int
	edgeFaces [][]int
	uvCorners [][]corner
}

// New returns an empty mesh named name.
// Complexity: O(1).
func New(name component.ShapeID) (*Mesh, error) {
	if name == "" {
		return nil, ErrEmptyShapeName
	}
	return &Mesh{name: name, edgeIndex: make(map[edgeKey]int)}, nil
}

// Name returns the shape name.
func (m *Mesh) Name() component.ShapeID { return m.name }

// AddVertex appends a vertex at p and returns its index.
func (m *Mesh) AddVertex(p r3.Vector) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.points = append(m.points, p)
	m.vertEdges = append(m.vertEdges, nil)
	m.vertFaces = append(m.vertFaces, nil)
	return len(m.points) - 1
}

// AddUV appends a texture coordinate and returns its index.
func (m *Mesh) AddUV(p r2.Point) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.uvs = append(m.uvs, p)
	m.uvCorners = append(m.uvCorners, nil)
	return len(m.uvs) - 1
}

// AddFace appends a polygon with the given corner vertices and returns its
// index. uvs is either nil or holds one UV index per corner. Missing edges
// are created in corner order.
//
// Errors: ErrBadFace, component.ErrUnknownComponent.
// Complexity: O(len(verts)).
func (m *Mesh) AddFace(verts []int, uvs []int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(verts) < 3 {
		return 0, fmt.Errorf("%s: %d corners (need ≥ 3): %w", methodAddFace, len(verts), ErrBadFace)
	}
	if uvs != nil && len(uvs) != len(verts) {
		return 0, fmt.Errorf("%s: %d uvs for %d corners: %w", methodAddFace, len(uvs), len(verts), ErrBadFace)
	}
	seen := make(map[int]struct{}, len(verts))
	for _, v := range verts {
		if v < 0 || v >= len(m.points) {
			return 0, fmt.Errorf("%s: vertex %d: %w", methodAddFace, v, component.ErrUnknownComponent)
		}
		if _, dup := seen[v]; dup {
			return 0, fmt.Errorf("%s: repeated vertex %d: %w", methodAddFace, v, ErrBadFace)
		}
		seen[v] = struct{}{}
	}
	for _, u := range uvs {
		if u < 0 || u >= len(m.uvs) {
			return 0, fmt.Errorf("%s: uv %d: %w", methodAddFace, u, component.ErrUnknownComponent)
		}
	}

	f := len(m.faces)
	m.faces = append(m.faces, append([]int(nil), verts...))
	if uvs != nil {
		m.faceUVs = append(m.faceUVs, append([]int(nil), uvs...))
	} else {
		m.faceUVs = append(m.faceUVs, nil)
	}

	fe := make([]int, len(verts))
	for i, v := range verts {
		w := verts[(i+1)%len(verts)]
		e := m.edgeLocked(v, w)
		fe[i] = e
		m.edgeFaces[e] = append(m.edgeFaces[e], f)
		m.vertFaces[v] = append(m.vertFaces[v], f)
		if uvs != nil {
			m.uvCorners[uvs[i]] = append(m.uvCorners[uvs[i]], corner{face: f, slot: i})
		}
	}
	m.faceEdges = append(m.faceEdges, fe)
	return f, nil
}

// AddEdge adds a wire edge between vertices a and b, or returns the index of
// the existing edge.
//
// Errors: ErrBadEdge, component.ErrUnknownComponent.
func (m *Mesh) AddEdge(a, b int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if a == b {
		return 0, fmt.Errorf("%s: %d-%d: %w", methodAddEdge, a, b, ErrBadEdge)
	}
	for _, v := range []int{a, b} {
		if v < 0 || v >= len(m.points) {
			return 0, fmt.Errorf("%s: vertex %d: %w", methodAddEdge, v, component.ErrUnknownComponent)
		}
	}
	return m.edgeLocked(a, b), nil
}

// edgeLocked returns the edge between a and b, creating it if needed.
// Caller holds the write lock.
func (m *Mesh) edgeLocked(a, b int) int {
	k := keyOf(a, b)
	if e, ok := m.edgeIndex[k]; ok {
		return e
	}
	e := len(m.edges)
	m.edges = append(m.edges, k)
	m.edgeIndex[k] = e
	m.edgeFaces = append(m.edgeFaces, nil)
	m.vertEdges[k.a] = append(m.vertEdges[k.a], e)
	m.vertEdges[k.b] = append(m.vertEdges[k.b], e)
	return e
}

// SetPosition moves vertex v to p.
func (m *Mesh) SetPosition(v int, p r3.Vector) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if v < 0 || v >= len(m.points) {
		return fmt.Errorf("%s: vertex %d: %w", methodSetPosition, v, component.ErrUnknownComponent)
	}
	m.points[v] = p
	return nil
}

// NumVertices returns the vertex count.
func (m *Mesh) NumVertices() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.points)
}

// NumEdges returns the edge count.
func (m *Mesh) NumEdges() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.edges)
}

// NumFaces returns the face count.
func (m *Mesh) NumFaces() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.faces)
}

// NumUVs returns the UV count.
func (m *Mesh) NumUVs() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.uvs)
}

// Point returns the position of vertex v.
func (m *Mesh) Point(v int) (r3.Vector, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if v < 0 || v >= len(m.points) {
		return r3.Vector{}, fmt.Errorf("%s: vertex %d: %w", methodPosition, v, component.ErrUnknownComponent)
	}
	return m.points[v], nil
}

// UVPoint returns texture coordinate u.
func (m *Mesh) UVPoint(u int) (r2.Point, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if u < 0 || u >= len(m.uvs) {
		return r2.Point{}, fmt.Errorf("%s: uv %d: %w", methodPosition, u, component.ErrUnknownComponent)
	}
	return m.uvs[u], nil
}

// EdgeVertices returns the end vertices of edge e, lower index first.
func (m *Mesh) EdgeVertices(e int) (a, b int, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if e < 0 || e >= len(m.edges) {
		return 0, 0, fmt.Errorf("EdgeVertices: edge %d: %w", e, component.ErrUnknownComponent)
	}
	return m.edges[e].a, m.edges[e].b, nil
}

// EdgeBetween returns the edge joining vertices a and b. ok is false when the
// vertices are not adjacent.
func (m *Mesh) EdgeBetween(a, b int) (e int, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok = m.edgeIndex[keyOf(a, b)]
	return e, ok
}

// Face returns copies of the corner vertex and UV indices of face f. uvs is
// nil when the face carries no UVs.
func (m *Mesh) Face(f int) (verts, uvs []int, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if f < 0 || f >= len(m.faces) {
		return nil, nil, fmt.Errorf("Face: face %d: %w", f, component.ErrUnknownComponent)
	}
	verts = append([]int(nil), m.faces[f]...)
	if m.faceUVs[f] != nil {
		uvs = append([]int(nil), m.faceUVs[f]...)
	}
	return verts, uvs, nil
}

// Points returns a copy of all vertex positions.
func (m *Mesh) Points() []r3.Vector {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]r3.Vector(nil), m.points...)
}

// UVs returns a copy of all texture coordinates.
func (m *Mesh) UVs() []r2.Point {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]r2.Point(nil), m.uvs...)
}

// WireEdges returns the vertex pairs of edges that border no face, in edge
// index order.
func (m *Mesh) WireEdges() [][2]int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out [][2]int
	for e, k := range m.edges {
		if len(m.edgeFaces[e]) == 0 {
			out = append(out, [2]int{k.a, k.b})
		}
	}
	return out
}
