package component

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors shared by topology providers and traversals.
var (
	// ErrInvalidSelection indicates an empty selection, a selection of mixed
	// component kinds, or components that cannot be resolved to a shape.
	ErrInvalidSelection = errors.New("component: invalid selection")

	// ErrTooManyShapes indicates that the components span more than one shape.
	ErrTooManyShapes = errors.New("component: components span more than one shape")

	// ErrBadComponentName indicates a host component name that Parse cannot read.
	ErrBadComponentName = errors.New("component: malformed component name")

	// ErrUnknownComponent indicates a component index absent from its shape.
	ErrUnknownComponent = errors.New("component: unknown component")
)

// ShapeID names one mesh shape in the host scene.
type ShapeID string

// Kind selects the mesh element a Component refers to.
type Kind uint8

const (
	// Vertex is a mesh point.
	Vertex Kind = iota
	// Edge connects two vertices.
	Edge
	// Face is a polygon bounded by edges.
	Face
	// UV is a texture-space point attached to face corners.
	UV
)

// kindTokens are the host tokens used between the shape name and the index.
var kindTokens = [...]string{
	Vertex: "vtx",
	Edge:   "e",
	Face:   "f",
	UV:     "map",
}

// String returns the host token of k ("vtx", "e", "f" or "map").
func (k Kind) String() string {
	if int(k) < len(kindTokens) {
		return kindTokens[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// KindFromString resolves a host token or a long name ("vertex", "edge",
// "face", "uv") to a Kind.
func KindFromString(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "vtx", "vertex":
		return Vertex, nil
	case "e", "edge":
		return Edge, nil
	case "f", "face":
		return Face, nil
	case "map", "uv":
		return UV, nil
	}
	return 0, fmt.Errorf("%w: unknown kind %q", ErrBadComponentName, s)
}

// Component identifies one element of one mesh shape. The zero value is
// vertex 0 of the unnamed shape and is not meaningful on its own.
type Component struct {
	Shape ShapeID
	Kind  Kind
	Index uint32
}

// V returns vertex i of shape.
func V(shape ShapeID, i int) Component { return Component{Shape: shape, Kind: Vertex, Index: uint32(i)} }

// E returns edge i of shape.
func E(shape ShapeID, i int) Component { return Component{Shape: shape, Kind: Edge, Index: uint32(i)} }

// F returns face i of shape.
func F(shape ShapeID, i int) Component { return Component{Shape: shape, Kind: Face, Index: uint32(i)} }

// U returns UV i of shape.
func U(shape ShapeID, i int) Component { return Component{Shape: shape, Kind: UV, Index: uint32(i)} }

// String renders the host name, e.g. "pPlane1.vtx[12]".
func (c Component) String() string {
	return fmt.Sprintf("%s.%s[%d]", c.Shape, c.Kind, c.Index)
}

// Parse reads a host component name such as "pPlane1.e[7]".
// The shape part may itself contain dots ("group1|pPlane1.vtx[0]" style
// paths are kept verbatim); only the last dot separates the component.
func Parse(name string) (Component, error) {
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 || dot == len(name)-1 {
		return Component{}, fmt.Errorf("%w: %q", ErrBadComponentName, name)
	}
	shape, rest := name[:dot], name[dot+1:]
	open := strings.IndexByte(rest, '[')
	if open <= 0 || !strings.HasSuffix(rest, "]") {
		return Component{}, fmt.Errorf("%w: %q", ErrBadComponentName, name)
	}
	kind, err := KindFromString(rest[:open])
	if err != nil {
		return Component{}, fmt.Errorf("%w: %q", ErrBadComponentName, name)
	}
	idx, err := strconv.ParseUint(rest[open+1:len(rest)-1], 10, 32)
	if err != nil {
		return Component{}, fmt.Errorf("%w: %q: %v", ErrBadComponentName, name, err)
	}
	return Component{Shape: ShapeID(shape), Kind: kind, Index: uint32(idx)}, nil
}

// MustParse is Parse for literals in tests and examples; it panics on error.
func MustParse(name string) Component {
	c, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Compare orders components by shape, then kind, then index.
// It returns -1, 0 or +1.
func Compare(a, b Component) int {
	switch {
	case a.Shape < b.Shape:
		return -1
	case a.Shape > b.Shape:
		return 1
	case a.Kind < b.Kind:
		return -1
	case a.Kind > b.Kind:
		return 1
	case a.Index < b.Index:
		return -1
	case a.Index > b.Index:
		return 1
	}
	return 0
}

// Reverse returns a reversed copy of chain.
func Reverse(chain []Component) []Component {
	out := make([]Component, len(chain))
	for i, c := range chain {
		out[len(chain)-1-i] = c
	}
	return out
}

// Position pairs a component with its parametric coordinate in [0, spans].
type Position struct {
	Component
	Param float64
}
