// SPDX-License-Identifier: MIT
// Package: zenmesh/meshio

package meshio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/zenmesh/component"
	"github.com/katalvlaran/zenmesh/mesh"
)

// ErrBadScene indicates a scene document that cannot be turned into meshes.
var ErrBadScene = errors.New("meshio: malformed scene")

// Document is the on-disk form of a scene.
type Document struct {
	Shapes []Shape `yaml:"shapes"`
}

// Shape is the on-disk form of one mesh.
//
// Faces are added before Edges, so edge indices follow face corner order
// and wire edges come last.
type Shape struct {
	Name     string       `yaml:"name"`
	Vertices [][3]float64 `yaml:"vertices,flow"`
	UVs      [][2]float64 `yaml:"uvs,omitempty,flow"`
	Faces    []Face       `yaml:"faces,omitempty"`
	Edges    [][2]int     `yaml:"edges,omitempty,flow"`
}

// Face lists corner vertices and, optionally, one UV index per corner.
type Face struct {
	Vertices []int `yaml:"vertices,flow"`
	UVs      []int `yaml:"uvs,omitempty,flow"`
}

// Decode reads a YAML scene document from r and builds its meshes.
func Decode(r io.Reader) (*mesh.Scene, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", ErrBadScene)
		}
		return nil, fmt.Errorf("decode scene: %v: %w", err, ErrBadScene)
	}
	return doc.Scene()
}

// Scene builds the meshes of doc.
func (doc *Document) Scene() (*mesh.Scene, error) {
	sc, err := mesh.NewScene()
	if err != nil {
		return nil, err
	}
	for i := range doc.Shapes {
		m, err := doc.Shapes[i].Mesh()
		if err != nil {
			return nil, err
		}
		if err = sc.Add(m); err != nil {
			return nil, fmt.Errorf("shape %q: %w", doc.Shapes[i].Name, err)
		}
	}
	tracer().Debugf("decoded %d shapes", len(doc.Shapes))
	return sc, nil
}

// Mesh builds the mesh described by s.
func (s *Shape) Mesh() (*mesh.Mesh, error) {
	m, err := mesh.New(component.ShapeID(s.Name))
	if err != nil {
		return nil, fmt.Errorf("shape %q: %w", s.Name, err)
	}
	for _, p := range s.Vertices {
		m.AddVertex(r3.Vector{X: p[0], Y: p[1], Z: p[2]})
	}
	for _, p := range s.UVs {
		m.AddUV(r2.Point{X: p[0], Y: p[1]})
	}
	for i, f := range s.Faces {
		var uvs []int
		if len(f.UVs) > 0 {
			uvs = f.UVs
		}
		if _, err = m.AddFace(f.Vertices, uvs); err != nil {
			return nil, fmt.Errorf("shape %q: face %d: %w", s.Name, i, err)
		}
	}
	for i, e := range s.Edges {
		if _, err = m.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("shape %q: edge %d: %w", s.Name, i, err)
		}
	}
	return m, nil
}

// FromScene returns the document form of sc, shapes in name order.
func FromScene(sc *mesh.Scene) (*Document, error) {
	doc := &Document{}
	for _, name := range sc.Shapes() {
		m, _ := sc.Mesh(name)
		s, err := FromMesh(m)
		if err != nil {
			return nil, err
		}
		doc.Shapes = append(doc.Shapes, *s)
	}
	return doc, nil
}

// FromMesh returns the document form of m.
func FromMesh(m *mesh.Mesh) (*Shape, error) {
	s := &Shape{Name: string(m.Name())}
	for _, p := range m.Points() {
		s.Vertices = append(s.Vertices, [3]float64{p.X, p.Y, p.Z})
	}
	for _, p := range m.UVs() {
		s.UVs = append(s.UVs, [2]float64{p.X, p.Y})
	}
	for f := 0; f < m.NumFaces(); f++ {
		verts, uvs, err := m.Face(f)
		if err != nil {
			return nil, err
		}
		s.Faces = append(s.Faces, Face{Vertices: verts, UVs: uvs})
	}
	s.Edges = m.WireEdges()
	return s, nil
}

// Encode writes sc to w as a YAML scene document.
func Encode(w io.Writer, sc *mesh.Scene) error {
	doc, err := FromScene(sc)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(doc); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return enc.Close()
}

// Load reads the scene file at path.
func Load(path string) (*mesh.Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Save writes sc to the file at path, replacing it.
func Save(path string, sc *mesh.Scene) error {
	var buf bytes.Buffer
	if err := Encode(&buf, sc); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
