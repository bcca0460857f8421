package traverse_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zenmesh/builder"
	"github.com/katalvlaran/zenmesh/component"
	"github.com/katalvlaran/zenmesh/mesh"
	"github.com/katalvlaran/zenmesh/traverse"
)

// 2×3 plane, vertices:
//
//	 8  9 10 11
//	 4  5  6  7
//	 0  1  2  3
func TestGroupContiguous_Rows(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	m := build(t, "pPlane1", builder.Plane(2, 3))
	bottom := pathEdges(t, m, 0, 1, 2, 3)
	top := pathEdges(t, m, 8, 9, 10, 11)
	sel := component.NewSet(bottom...)
	sel.Add(top...)

	chains, err := traverse.GroupContiguous(m, sel)
	require.NoError(t, err)
	require.Len(t, chains, 2)
	require.Equal(t, component.Reverse(bottom), chains[0])
	require.Equal(t, component.Reverse(top), chains[1])

	for _, c := range chains {
		closed, err := traverse.IsClosed(m, c)
		require.NoError(t, err)
		require.False(t, closed)
	}
}

func TestGroupContiguous_JoinsThroughBridge(t *testing.T) {
	m := build(t, "pPlane1", builder.Plane(2, 3))

	// 2-6 and 3-7 are numbered before 6-7, so they start separate chains
	// that 6-7 later joins.
	path := pathEdges(t, m, 2, 6, 7, 3)
	chains, err := traverse.GroupContiguous(m, component.NewSet(path...))
	require.NoError(t, err)
	require.Len(t, chains, 1)
	require.Equal(t, path, chains[0])

	vs, err := traverse.EdgesVertices(m, chains[0])
	require.NoError(t, err)
	require.Equal(t, verts(m, 2, 6, 7, 3), vs)
}

func TestGroupContiguous_Loop(t *testing.T) {
	m := build(t, "pCylinder1", builder.Tube(2, 4))
	ring := pathEdges(t, m, 0, 1, 2, 3, 0)

	chains, err := traverse.GroupContiguous(m, component.NewSet(ring...))
	require.NoError(t, err)
	require.Len(t, chains, 1)
	require.Len(t, chains[0], 4)

	closed, err := traverse.IsClosed(m, chains[0])
	require.NoError(t, err)
	require.True(t, closed)

	vs, err := traverse.EdgesVertices(m, chains[0])
	require.NoError(t, err)
	require.Len(t, vs, 5)
	require.Equal(t, vs[0], vs[4])
	requireAdjacentChain(t, m, vs)
}

func TestGroupContiguous_Errors(t *testing.T) {
	m := build(t, "pPlane1", builder.Plane(1, 1))
	_, err := traverse.GroupContiguous(m, vset(m, 0, 1))
	require.ErrorIs(t, err, traverse.ErrInvalidSelection)

	_, err = traverse.GroupContiguous(m, component.NewSet())
	require.ErrorIs(t, err, traverse.ErrInvalidSelection)
}

func TestChainConversions(t *testing.T) {
	m := build(t, "pPlane1", builder.Plane(2, 3))

	edges, err := traverse.VerticesEdges(m, verts(m, 0, 1, 5, 6))
	require.NoError(t, err)
	require.Equal(t, pathEdges(t, m, 0, 1, 5, 6), edges)

	vs, err := traverse.EdgesVertices(m, edges)
	require.NoError(t, err)
	require.Equal(t, verts(m, 0, 1, 5, 6), vs)

	first, last, err := traverse.TerminalVertices(m, edges)
	require.NoError(t, err)
	require.Equal(t, component.V("pPlane1", 0), first)
	require.Equal(t, component.V("pPlane1", 6), last)

	// a single edge yields its vertices ascending
	first, last, err = traverse.TerminalVertices(m, pathEdges(t, m, 5, 1))
	require.NoError(t, err)
	require.Equal(t, component.V("pPlane1", 1), first)
	require.Equal(t, component.V("pPlane1", 5), last)

	// UVs on a plane are numbered like the vertices
	uvEdges, err := traverse.UVsEdges(m, []component.Component{
		component.U("pPlane1", 8), component.U("pPlane1", 9), component.U("pPlane1", 10),
	})
	require.NoError(t, err)
	require.Equal(t, pathEdges(t, m, 8, 9, 10), uvEdges)

	_, err = traverse.VerticesEdges(m, verts(m, 0, 2))
	require.ErrorIs(t, err, traverse.ErrInvalidSelection)

	_, err = traverse.EdgesVertices(m, verts(m, 0, 1))
	require.ErrorIs(t, err, traverse.ErrInvalidSelection)

	_, err = traverse.EdgesVertices(m, pathEdges(t, m, 0, 1))
	require.NoError(t, err)

	_, err = traverse.EdgesVertices(m, append(pathEdges(t, m, 0, 1), edge(t, m, 10, 11)))
	require.ErrorIs(t, err, traverse.ErrNonContiguousSelection)
}

func TestAlignChains_Open(t *testing.T) {
	m := build(t, "pPlane1", builder.Plane(2, 3))

	chains := [][]component.Component{
		pathEdges(t, m, 0, 1, 2, 3),
		pathEdges(t, m, 11, 10, 9, 8),
		pathEdges(t, m, 7, 6, 5, 4),
	}
	got, err := traverse.AlignChains(m, chains)
	require.NoError(t, err)
	require.Equal(t, [][]component.Component{
		pathEdges(t, m, 8, 9, 10, 11),
		pathEdges(t, m, 4, 5, 6, 7),
		pathEdges(t, m, 0, 1, 2, 3),
	}, got)

	// inputs are left alone
	require.Equal(t, pathEdges(t, m, 11, 10, 9, 8), chains[1])

	single, err := traverse.AlignChains(m, chains[:1])
	require.NoError(t, err)
	require.Equal(t, chains[:1], single)
}

func TestAlignChains_Closed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	const segments = 4
	m := build(t, "pCylinder1", builder.Tube(3, segments))
	sel := component.NewSet()
	for r := 0; r < 3; r++ {
		b := r * segments
		sel.Add(pathEdges(t, m, b, b+1, b+2, b+3, b)...)
	}
	chains, err := traverse.GroupContiguous(m, sel)
	require.NoError(t, err)
	require.Len(t, chains, 3)

	got, err := traverse.AlignChains(m, chains)
	require.NoError(t, err)
	require.Len(t, got, 3)

	loops := make([][]component.Component, len(got))
	for i, c := range got {
		loops[i], err = traverse.EdgesVertices(m, c)
		require.NoError(t, err)
		require.Len(t, loops[i], segments+1)
	}
	// all loops start on the same segment and turn the same way
	seg := func(c component.Component) uint32 { return c.Index % segments }
	for _, l := range loops[1:] {
		require.Equal(t, seg(loops[0][0]), seg(l[0]))
		require.Equal(t, seg(loops[0][1]), seg(l[1]))
	}
	// and follow each other up or down the tube
	ring := func(c component.Component) uint32 { return c.Index / segments }
	require.Equal(t, []uint32{2, 1, 0}, []uint32{ring(loops[0][0]), ring(loops[1][0]), ring(loops[2][0])})
}

func TestAlignChains_Errors(t *testing.T) {
	m := build(t, "pPlane1", builder.Plane(1, 1), builder.Plane(1, 1))

	_, err := traverse.AlignChains(m, nil)
	require.ErrorIs(t, err, traverse.ErrInvalidSelection)

	_, err = traverse.AlignChains(m, [][]component.Component{verts(m, 0, 1)})
	require.ErrorIs(t, err, traverse.ErrInvalidSelection)

	// chains on separate islands
	_, err = traverse.AlignChains(m, [][]component.Component{
		pathEdges(t, m, 0, 1),
		pathEdges(t, m, 4, 5),
	})
	require.ErrorIs(t, err, traverse.ErrNonContiguousSelection)

	other := build(t, "pPlane2", builder.Plane(1, 1))
	sc, err := mesh.NewScene(m, other)
	require.NoError(t, err)
	_, err = traverse.AlignChains(sc, [][]component.Component{
		pathEdges(t, m, 0, 1),
		pathEdges(t, other, 0, 1),
	})
	require.ErrorIs(t, err, traverse.ErrTooManyShapes)
}
