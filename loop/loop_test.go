package loop_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zenmesh/builder"
	"github.com/katalvlaran/zenmesh/component"
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

func verts(m *mesh.Mesh, idx ...int) []component.Component {
	out := make([]component.Component, len(idx))
	for i, v := range idx {
		out[i] = component.V(m.Name(), v)
	}
	return out
}

func pathEdges(t *testing.T, m *mesh.Mesh, vs ...int) []component.Component {
	t.Helper()
	var out []component.Component
	for i := 1; i < len(vs); i++ {
		e, ok := m.EdgeBetween(vs[i-1], vs[i])
		require.True(t, ok, "no edge %d-%d", vs[i-1], vs[i])
		out = append(out, component.E(m.Name(), e))
	}
	return out
}

// targets maps each path vertex index to its target.
func targets(r *loop.Result) map[uint32]r3.Vector {
	out := make(map[uint32]r3.Vector, len(r.Path))
	for i, v := range r.Path {
		out[v.Index] = r.Targets[i]
	}
	return out
}

func requireNear(t *testing.T, want, got r3.Vector) {
	t.Helper()
	require.InDelta(t, 0, want.Distance(got), 1e-9, "want %v, got %v", want, got)
}

func TestSelectEdgesBetweenVertices(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	plane := build(t, "pPlane1", builder.Plane(2, 3))
	tube := build(t, "pCylinder1", builder.Tube(2, 6))

	cases := []struct {
		name string
		m    *mesh.Mesh
		vs   []int
		opts []loop.Option
		want []int
	}{
		{"sorted row", plane, []int{3, 0}, nil, []int{3, 2, 1, 0}},
		{"closed ring", tube, []int{2, 0, 4}, []loop.Option{loop.WithClose(true)}, []int{4, 5, 0, 1, 2, 3, 4}},
		{"selection order", tube, []int{0, 4, 2}, []loop.Option{loop.WithSelectionOrder(true), loop.WithClose(true)}, []int{0, 5, 4, 3, 2, 1, 0}},
		{"closed back over itself", plane, []int{0, 3}, []loop.Option{loop.WithClose(true)}, []int{3, 2, 1, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := loop.SelectEdgesBetweenVertices(tc.m, verts(tc.m, tc.vs...), tc.opts...)
			require.NoError(t, err)
			require.Equal(t, pathEdges(t, tc.m, tc.want...), got)
		})
	}
}

func TestSelectEdgesBetweenVertices_Errors(t *testing.T) {
	m := build(t, "pPlane1", builder.Plane(1, 1))

	_, err := loop.SelectEdgesBetweenVertices(m, verts(m, 0))
	require.ErrorIs(t, err, loop.ErrTooFewKnots)

	_, err = loop.SelectEdgesBetweenVertices(m, verts(m, 2, 2), loop.WithSelectionOrder(true))
	require.ErrorIs(t, err, loop.ErrTooFewKnots)

	_, err = loop.SelectEdgesBetweenVertices(m, verts(m, 0, 3), loop.WithMode(traverse.Mode(9)))
	require.ErrorIs(t, err, traverse.ErrOptionViolation)

	islands := build(t, "pPlane2", builder.Plane(1, 1), builder.Plane(1, 1))
	_, err = loop.SelectEdgesBetweenVertices(islands, verts(islands, 0, 5))
	require.ErrorIs(t, err, traverse.ErrNonContiguousSelection)
}

// A 1×10 strip whose vertex 10 is pulled out to x=20: the edge 9-10 is now
// 11 long and the row 20.
func stretchedRow(t *testing.T) *mesh.Mesh {
	m := build(t, "pPlane1", builder.Plane(1, 10))
	require.NoError(t, m.SetPosition(10, r3.Vector{X: 20}))
	return m
}

func TestDistribute_Uniform(t *testing.T) {
	m := stretchedRow(t)

	r, err := loop.Distribute(m, verts(m, 0, 10))
	require.NoError(t, err)
	require.Equal(t, verts(m, 10, 0), r.Knots)
	require.Len(t, r.Path, 11)
	require.False(t, r.Closed())

	got := targets(r)
	for i := 0; i <= 10; i++ {
		requireNear(t, r3.Vector{X: float64(2 * i)}, got[uint32(i)])
	}
}

func TestDistribute_Proportional(t *testing.T) {
	m := stretchedRow(t)

	r, err := loop.Distribute(m, verts(m, 0, 10), loop.WithMode(traverse.Proportional))
	require.NoError(t, err)

	// edge lengths are kept, so nothing moves
	got := targets(r)
	for i := 0; i < 10; i++ {
		requireNear(t, r3.Vector{X: float64(i)}, got[uint32(i)])
	}
	requireNear(t, r3.Vector{X: 20}, got[10])
}

func TestDistribute_Arc(t *testing.T) {
	m := build(t, "pPlane1", builder.Plane(1, 4))
	require.NoError(t, m.SetPosition(2, r3.Vector{X: 2, Z: 2}))

	r, err := loop.Distribute(m, verts(m, 0, 2, 4))
	require.NoError(t, err)
	require.Equal(t, verts(m, 4, 2, 0), r.Knots)

	// half circle of radius 2 around (2,0,0)
	s := math.Sqrt2
	got := targets(r)
	requireNear(t, r3.Vector{X: 0}, got[0])
	requireNear(t, r3.Vector{X: 2 - s, Z: s}, got[1])
	requireNear(t, r3.Vector{X: 2, Z: 2}, got[2])
	requireNear(t, r3.Vector{X: 2 + s, Z: s}, got[3])
	requireNear(t, r3.Vector{X: 4}, got[4])
}

func TestDistribute_ClosedAndApply(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	m := build(t, "pCylinder1", builder.Tube(2, 6))
	sc, err := mesh.NewScene(m)
	require.NoError(t, err)

	r, err := loop.Distribute(sc, verts(m, 0, 2, 4), loop.WithClose(true))
	require.NoError(t, err)
	require.True(t, r.Closed())
	require.Equal(t, verts(m, 4, 0, 2, 4), r.Knots)
	require.Equal(t, verts(m, 4, 5, 0, 1, 2, 3, 4), r.Path)
	require.Equal(t, 3.0, r.Positions[len(r.Positions)-1].Param)

	before := m.Points()
	got := targets(r)
	for _, k := range []uint32{0, 2, 4} {
		requireNear(t, before[k], got[k])
	}
	// the in-between vertices land on the triangle edges
	requireNear(t, before[4].Add(before[0]).Mul(0.5), got[5])
	requireNear(t, before[0].Add(before[2]).Mul(0.5), got[1])

	require.NoError(t, loop.Apply(sc, r))
	after := m.Points()
	for i := 0; i < 6; i++ {
		requireNear(t, got[uint32(i)], after[i])
	}
	// the second ring is untouched
	for i := 6; i < 12; i++ {
		require.Equal(t, before[i], after[i])
	}
}

func TestApply_UnknownVertex(t *testing.T) {
	m := build(t, "pPlane1", builder.Plane(1, 1))
	sc, err := mesh.NewScene(m)
	require.NoError(t, err)

	r := &loop.Result{
		Path:    []component.Component{component.V("pPlane1", 0), component.V("pPlane9", 0)},
		Targets: []r3.Vector{{}, {}},
	}
	require.Error(t, loop.Apply(sc, r))
}

func TestCurves(t *testing.T) {
	pl := loop.NewPolyline(r3.Vector{}, r3.Vector{X: 1}, r3.Vector{X: 1, Y: 3})
	require.Equal(t, 4.0, pl.Length())
	requireNear(t, r3.Vector{}, pl.At(-1))
	requireNear(t, r3.Vector{X: 1, Y: 3}, pl.At(2))
	requireNear(t, r3.Vector{X: 1}, pl.At(0.25))
	requireNear(t, r3.Vector{X: 1, Y: 1}, pl.At(0.5))

	still := loop.NewPolyline(r3.Vector{X: 5}, r3.Vector{X: 5})
	requireNear(t, r3.Vector{X: 5}, still.At(0.5))

	_, ok := loop.NewArc(r3.Vector{}, r3.Vector{X: 1}, r3.Vector{X: 2})
	require.False(t, ok)

	arc, ok := loop.NewArc(r3.Vector{X: 1}, r3.Vector{Y: -1}, r3.Vector{X: -1})
	require.True(t, ok)
	require.InDelta(t, math.Pi, arc.Length(), 1e-12)
	requireNear(t, r3.Vector{Y: -1}, arc.At(0.5))

	// a through b to c covers three quarters of the circle
	arc, ok = loop.NewArc(r3.Vector{X: 1}, r3.Vector{Y: -1}, r3.Vector{Y: 1})
	require.True(t, ok)
	require.InDelta(t, 1.5*math.Pi, arc.Length(), 1e-12)
	requireNear(t, r3.Vector{Y: 1}, arc.At(1))
	requireNear(t, r3.Vector{X: -1}, arc.At(2.0/3))
}
