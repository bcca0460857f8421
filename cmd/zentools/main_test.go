package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zenmesh/meshio"
	"github.com/katalvlaran/zenmesh/options"
)

// run executes the root command and returns its output lines.
func run(t *testing.T, optionsPath string, args ...string) ([]string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--options", optionsPath}, args...))
	err := root.Execute()
	text := strings.TrimSpace(out.String())
	if text == "" {
		return nil, err
	}
	return strings.Split(text, "\n"), err
}

func TestPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	opts := filepath.Join(t.TempDir(), options.FileName)
	got, err := run(t, opts, "--plane", "2x3", "path", "pPlane1.vtx[0]", "pPlane1.vtx[3]")
	require.NoError(t, err)
	require.Equal(t, []string{"pPlane1.vtx[0]", "pPlane1.vtx[1]", "pPlane1.vtx[2]", "pPlane1.vtx[3]"}, got)
}

func TestOrder(t *testing.T) {
	opts := filepath.Join(t.TempDir(), options.FileName)
	got, err := run(t, opts, "--plane", "2x3", "order", "--chain", "pPlane1.vtx[2]", "pPlane1.vtx[0]", "pPlane1.vtx[1]")
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "pPlane1.vtx[1]", got[1])
}

func TestEdgesBetween_SavedOptions(t *testing.T) {
	opts := filepath.Join(t.TempDir(), options.FileName)

	got, err := run(t, opts, "--plane", "2x3", "--save-options", "edges-between", "--close",
		"pPlane1.vtx[0]", "pPlane1.vtx[3]")
	require.NoError(t, err)
	require.Len(t, got, 3)

	closed, err := options.New(opts).Bool("edges-between", "close", false)
	require.NoError(t, err)
	require.True(t, closed)

	// the stored default applies without the flag
	again, err := run(t, opts, "--plane", "2x3", "edges-between", "pPlane1.vtx[0]", "pPlane1.vtx[3]")
	require.NoError(t, err)
	require.Equal(t, got, again)
}

func TestDistribute_WritesScene(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "scene.yaml")

	got, err := run(t, filepath.Join(dir, options.FileName), "--plane", "1x4", "--out", out,
		"distribute", "--mode", "proportional", "pPlane1.vtx[0]", "pPlane1.vtx[4]")
	require.NoError(t, err)
	require.Len(t, got, 5)

	sc, err := meshio.Load(out)
	require.NoError(t, err)
	m, ok := sc.Mesh("pPlane1")
	require.True(t, ok)
	require.Equal(t, 10, m.NumVertices())
}

func TestFlood(t *testing.T) {
	opts := filepath.Join(t.TempDir(), options.FileName)
	got, err := run(t, opts, "--plane", "1x1", "flood", "pPlane1.vtx[0]")
	require.NoError(t, err)
	require.Len(t, got, 4)
}

func TestErrors(t *testing.T) {
	opts := filepath.Join(t.TempDir(), options.FileName)

	_, err := run(t, opts, "--plane", "2by3", "path", "pPlane1.vtx[0]", "pPlane1.vtx[3]")
	require.Error(t, err)

	_, err = run(t, opts, "path", "pPlane1.vtx[0]", "vtx[3]")
	require.Error(t, err)

	_, err = run(t, opts, "distribute", "--mode", "wavy", "pPlane1.vtx[0]", "pPlane1.vtx[3]")
	require.Error(t, err)

	_, err = run(t, opts, "--scene", filepath.Join(t.TempDir(), "none.yaml"), "flood", "pPlane1.vtx[0]")
	require.Error(t, err)
}
