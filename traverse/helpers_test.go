package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zenmesh/builder"
	"github.com/katalvlaran/zenmesh/component"
	"github.com/katalvlaran/zenmesh/mesh"
)

// build returns a mesh named shape built by cons.
func build(t testing.TB, shape string, cons ...builder.Constructor) *mesh.Mesh {
	t.Helper()
	m, err := builder.Build([]builder.Option{builder.WithShapeName(shape)}, cons...)
	require.NoError(t, err)
	return m
}

// verts returns vertex components of m.
func verts(m *mesh.Mesh, idx ...int) []component.Component {
	out := make([]component.Component, len(idx))
	for i, v := range idx {
		out[i] = component.V(m.Name(), v)
	}
	return out
}

func vset(m *mesh.Mesh, idx ...int) *component.Set {
	return component.NewSet(verts(m, idx...)...)
}

func span(from, to int) []int {
	var out []int
	if from <= to {
		for i := from; i <= to; i++ {
			out = append(out, i)
		}
		return out
	}
	for i := from; i >= to; i-- {
		out = append(out, i)
	}
	return out
}

// edge returns the edge joining vertices a and b of m.
func edge(t testing.TB, m *mesh.Mesh, a, b int) component.Component {
	t.Helper()
	e, ok := m.EdgeBetween(a, b)
	require.True(t, ok, "no edge %d-%d", a, b)
	return component.E(m.Name(), e)
}

// pathEdges returns the edges along a vertex path of m.
func pathEdges(t testing.TB, m *mesh.Mesh, vs ...int) []component.Component {
	t.Helper()
	var out []component.Component
	for i := 1; i < len(vs); i++ {
		out = append(out, edge(t, m, vs[i-1], vs[i]))
	}
	return out
}

// requireAdjacentChain asserts that consecutive vertices of path share an edge.
func requireAdjacentChain(t *testing.T, m *mesh.Mesh, path []component.Component) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		_, ok := m.EdgeBetween(int(path[i-1].Index), int(path[i].Index))
		require.True(t, ok, "%s and %s are not adjacent", path[i-1], path[i])
	}
}
