package traverse_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zenmesh/builder"
	"github.com/katalvlaran/zenmesh/component"
	"github.com/katalvlaran/zenmesh/traverse"
)

// 3×3 grid of vertices:
//
//	0 1 2
//	3 4 5
//	6 7 8
func TestExpand_Kinds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	m := build(t, "pPlane1", builder.Plane(2, 2))

	got, err := traverse.Expand(m, vset(m, 4))
	require.NoError(t, err)
	require.Equal(t, verts(m, 1, 3, 4, 5, 7), got.Values())

	b, err := traverse.Border(m, vset(m, 4))
	require.NoError(t, err)
	require.Equal(t, verts(m, 1, 3, 5, 7), b.Values())

	// edges through shared vertices
	e01 := edge(t, m, 0, 1)
	got, err = traverse.Expand(m, component.NewSet(e01))
	require.NoError(t, err)
	want := component.NewSet(e01, edge(t, m, 0, 3), edge(t, m, 1, 2), edge(t, m, 1, 4))
	require.True(t, want.Equal(got), "got %s", got)

	// faces through shared edges; f3 only touches f0 at a vertex
	got, err = traverse.Expand(m, component.NewSet(component.F("pPlane1", 0)))
	require.NoError(t, err)
	require.Equal(t, []component.Component{
		component.F("pPlane1", 0), component.F("pPlane1", 1), component.F("pPlane1", 2),
	}, got.Values())

	// UVs follow the vertices on a seamless plane
	got, err = traverse.Expand(m, component.NewSet(component.U("pPlane1", 4)))
	require.NoError(t, err)
	require.Len(t, got.Values(), 5)
	require.True(t, got.Contains(component.U("pPlane1", 7)))
}

func TestExpand_Properties(t *testing.T) {
	m := build(t, "pPlane1", builder.Plane(3, 3))

	s := vset(m, 0, 5, 10)
	once, err := traverse.Expand(m, s)
	require.NoError(t, err)

	// monotone: s ⊆ Expand(s)
	require.True(t, s.Difference(once).Empty())

	// repeated expansion keeps growing outward and never loses members
	twice, err := traverse.Expand(m, once)
	require.NoError(t, err)
	require.True(t, once.Difference(twice).Empty())

	// order independent
	rev := component.NewSet(component.Reverse(s.Values())...)
	again, err := traverse.Expand(m, rev)
	require.NoError(t, err)
	require.True(t, once.Equal(again))
}

func TestExpand_IsolatedVertex(t *testing.T) {
	m := build(t, "pPlane1", builder.Plane(1, 1))
	v := m.AddVertex(m.Points()[0])
	got, err := traverse.Expand(m, vset(m, v))
	require.NoError(t, err)
	require.Equal(t, verts(m, v), got.Values())
}

func TestExpand_Errors(t *testing.T) {
	m := build(t, "pPlane1", builder.Plane(1, 1))

	_, err := traverse.Expand(nil, vset(m, 0))
	require.ErrorIs(t, err, traverse.ErrProviderNil)

	_, err = traverse.Expand(m, component.NewSet())
	require.ErrorIs(t, err, traverse.ErrInvalidSelection)

	mixed := vset(m, 0)
	mixed.Add(component.E("pPlane1", 0))
	_, err = traverse.Expand(m, mixed)
	require.ErrorIs(t, err, traverse.ErrInvalidSelection)

	_, err = traverse.Expand(m, vset(m, 0), traverse.WithMaxRings(-1))
	require.True(t, errors.Is(err, traverse.ErrOptionViolation))
}
