package loft_test

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zenmesh/builder"
	"github.com/katalvlaran/zenmesh/component"
	"github.com/katalvlaran/zenmesh/loft"
	"github.com/katalvlaran/zenmesh/loop"
	"github.com/katalvlaran/zenmesh/mesh"
	"github.com/katalvlaran/zenmesh/traverse"
)

func build(t *testing.T, shape string, cons ...builder.Constructor) *mesh.Mesh {
	t.Helper()
	m, err := builder.Build([]builder.Option{builder.WithShapeName(shape)}, cons...)
	require.NoError(t, err)
	return m
}

// edgeSet returns the edges along the vertex path vs.
func edgeSet(t *testing.T, m *mesh.Mesh, vs ...int) *component.Set {
	t.Helper()
	s := component.NewSet()
	for i := 1; i < len(vs); i++ {
		e, ok := m.EdgeBetween(vs[i-1], vs[i])
		require.True(t, ok, "no edge %d-%d", vs[i-1], vs[i])
		s.Add(component.E(m.Name(), e))
	}
	return s
}

// requireColumns checks that the rows are stacked: vertex j of every row
// lies in the same grid column (index modulo stride).
func requireColumns(t *testing.T, rows [][]component.Component, width int, stride uint32) {
	t.Helper()
	require.Len(t, rows, 2)
	for _, row := range rows {
		require.Len(t, row, width)
	}
	for j := range rows[0] {
		require.Equal(t, rows[0][j].Index%stride, rows[1][j].Index%stride, "column %d", j)
		require.NotEqual(t, rows[0][j], rows[1][j])
	}
}

func TestSections_Plane(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	m := build(t, "pPlane1", builder.Plane(2, 3))
	edges := edgeSet(t, m, 0, 1, 2, 3)
	edges.Add(edgeSet(t, m, 8, 9, 10, 11).Values()...)

	sections, err := loft.Sections(m, edges)
	require.NoError(t, err)
	require.Len(t, sections, 2)

	rows, err := loft.Lattice(m, sections)
	require.NoError(t, err)
	requireColumns(t, rows, 4, 4)
	// the rows run the same way
	require.Equal(t, rows[0][0].Index%4, rows[1][0].Index%4)
	require.Contains(t, []uint32{0, 3}, rows[0][0].Index%4)
}

func TestSections_Tube(t *testing.T) {
	m := build(t, "pCylinder1", builder.Tube(3, 4))
	edges := edgeSet(t, m, 0, 1, 2, 3, 0)
	edges.Add(edgeSet(t, m, 8, 9, 10, 11, 8).Values()...)

	sections, err := loft.Sections(m, edges)
	require.NoError(t, err)
	for _, sec := range sections {
		closed, err := traverse.IsClosed(m, sec)
		require.NoError(t, err)
		require.True(t, closed)
	}

	rows, err := loft.Lattice(m, sections)
	require.NoError(t, err)
	requireColumns(t, rows, 4, 4)
}

func TestSections_Errors(t *testing.T) {
	m := build(t, "pPlane1", builder.Plane(2, 3))

	_, err := loft.Sections(m, edgeSet(t, m, 0, 1, 2, 3))
	require.ErrorIs(t, err, loft.ErrTooFewSections)

	edges := edgeSet(t, m, 0, 1, 2, 3)
	edges.Add(edgeSet(t, m, 8, 9, 10).Values()...)
	_, err = loft.Sections(m, edges)
	require.ErrorIs(t, err, loft.ErrUnequalSections)

	_, err = loft.Sections(m, component.NewSet(component.F(m.Name(), 0)))
	require.ErrorIs(t, err, traverse.ErrInvalidSelection)

	_, err = loft.Lattice(m, nil)
	require.ErrorIs(t, err, loft.ErrTooFewSections)
}

func TestDistribute_Plane(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	m := build(t, "pPlane1", builder.Plane(2, 3))
	require.NoError(t, m.SetPosition(5, r3.Vector{X: 1, Z: 1.6}))
	require.NoError(t, m.SetPosition(6, r3.Vector{X: 2, Y: 0.5, Z: 0.3}))
	sc, err := mesh.NewScene(m)
	require.NoError(t, err)

	edges := edgeSet(t, m, 0, 1, 2, 3)
	edges.Add(edgeSet(t, m, 8, 9, 10, 11).Values()...)

	r, err := loft.Distribute(sc, edges)
	require.NoError(t, err)
	require.Len(t, r.Columns, 4)
	for _, c := range r.Columns {
		require.Len(t, c.Path, 3)
		require.Equal(t, c.Path[0].Index%4, c.Path[1].Index%4)
		require.Equal(t, c.Path[1].Index/4, uint32(1))
	}

	require.NoError(t, loft.Apply(sc, r))
	pts := m.Points()
	for c := 0; c < 4; c++ {
		require.InDelta(t, 0, pts[4+c].Distance(r3.Vector{X: float64(c), Z: 1}), 1e-9, "vertex %d", 4+c)
	}
}

func TestDistribute_Tube(t *testing.T) {
	m := build(t, "pCylinder1", builder.Tube(3, 4))
	edges := edgeSet(t, m, 0, 1, 2, 3, 0)
	edges.Add(edgeSet(t, m, 8, 9, 10, 11, 8).Values()...)

	r, err := loft.Distribute(m, edges, loop.WithMode(traverse.Proportional))
	require.NoError(t, err)
	require.Len(t, r.Columns, 4)

	// the middle ring already sits halfway, so targets match positions
	pts := m.Points()
	for _, c := range r.Columns {
		require.Len(t, c.Path, 3)
		for i, v := range c.Path {
			require.InDelta(t, 0, pts[v.Index].Distance(c.Targets[i]), 1e-9)
		}
	}
}

func TestDistribute_Errors(t *testing.T) {
	m := build(t, "pPlane1", builder.Plane(2, 3))

	_, err := loft.Distribute(m, edgeSet(t, m, 0, 1, 2, 3), loop.WithMode(traverse.Mode(5)))
	require.ErrorIs(t, err, traverse.ErrOptionViolation)

	_, err = loft.Distribute(m, edgeSet(t, m, 0, 1, 2, 3))
	require.ErrorIs(t, err, loft.ErrTooFewSections)
}
