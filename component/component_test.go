package component_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zenmesh/component"
)

func TestParse_RoundTrip(t *testing.T) {
	cases := []struct {
		name string
		want component.Component
	}{
		{"pPlane1.vtx[0]", component.V("pPlane1", 0)},
		{"pPlane1.e[17]", component.E("pPlane1", 17)},
		{"pCube1.f[5]", component.F("pCube1", 5)},
		{"pCube1.map[42]", component.U("pCube1", 42)},
		{"group1|pPlane1.vtx[3]", component.V("group1|pPlane1", 3)},
		{"ns:body.v2.vtx[9]", component.V("ns:body.v2", 9)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := component.Parse(tc.name)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.name, got.String())
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, name := range []string{
		"",
		"pPlane1",
		".vtx[0]",
		"pPlane1.",
		"pPlane1.vtx",
		"pPlane1.vtx[]",
		"pPlane1.vtx[-1]",
		"pPlane1.cv[3]",
		"pPlane1.vtx[3",
		"pPlane1.[3]",
	} {
		_, err := component.Parse(name)
		require.ErrorIs(t, err, component.ErrBadComponentName, "%q", name)
	}
	require.Panics(t, func() { component.MustParse("nope") })
}

func TestKindFromString(t *testing.T) {
	for tok, want := range map[string]component.Kind{
		"vtx": component.Vertex, "vertex": component.Vertex,
		"e": component.Edge, "Edge": component.Edge,
		"f": component.Face, "face": component.Face,
		"map": component.UV, "UV": component.UV,
	} {
		got, err := component.KindFromString(tok)
		require.NoError(t, err, tok)
		require.Equal(t, want, got, tok)
	}
	_, err := component.KindFromString("cv")
	require.ErrorIs(t, err, component.ErrBadComponentName)
	require.Equal(t, "kind(9)", component.Kind(9).String())
}

func TestCompare(t *testing.T) {
	a := component.V("a", 5)
	require.Equal(t, 0, component.Compare(a, a))
	// shape dominates kind, kind dominates index
	require.Equal(t, -1, component.Compare(component.F("a", 9), component.V("b", 0)))
	require.Equal(t, -1, component.Compare(component.V("a", 9), component.E("a", 0)))
	require.Equal(t, 1, component.Compare(component.V("a", 10), component.V("a", 9)))
}

func TestReverse(t *testing.T) {
	chain := []component.Component{component.V("a", 1), component.V("a", 2), component.V("a", 3)}
	got := component.Reverse(chain)
	require.Equal(t, []component.Component{component.V("a", 3), component.V("a", 2), component.V("a", 1)}, got)
	require.Equal(t, component.V("a", 1), chain[0], "input untouched")
	require.Empty(t, component.Reverse(nil))
}
