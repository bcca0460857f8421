// Command zentools runs the mesh selection and distribution tools against a
// YAML scene file or a generated plane.
//
//	zentools --plane 4x4 path pPlane1.vtx[0] pPlane1.vtx[24]
//	zentools --scene body.yaml distribute --close body.vtx[3] body.vtx[9] body.vtx[15]
//
// Command defaults are read from the options file; --save-options writes the
// flags given on the command line back to it.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/zenmesh/builder"
	"github.com/katalvlaran/zenmesh/component"
	"github.com/katalvlaran/zenmesh/mesh"
	"github.com/katalvlaran/zenmesh/meshio"
	"github.com/katalvlaran/zenmesh/options"
	"github.com/katalvlaran/zenmesh/traverse"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env carries the global flags shared by all commands.
type env struct {
	scenePath   string
	plane       string
	optionsPath string
	out         string
	saveOptions bool
	maxRings    int

	store *options.Store
}

func newRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:           "zentools",
		Short:         "Mesh component traversal and distribution tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&e.scenePath, "scene", "", "YAML scene file")
	pf.StringVar(&e.plane, "plane", "4x4", "generate a RxC plane named pPlane1 when no --scene is given")
	pf.StringVar(&e.optionsPath, "options", "", "options file (default: user config dir)")
	pf.StringVar(&e.out, "out", "", "write the modified scene to this file")
	pf.BoolVar(&e.saveOptions, "save-options", false, "persist the given command flags as defaults")
	pf.IntVar(&e.maxRings, "max-rings", 0, "fail traversals needing more rings (0: unlimited)")

	root.AddCommand(
		newPathCmd(e),
		newOrderCmd(e),
		newEdgesBetweenCmd(e),
		newDistributeCmd(e),
		newLoftCmd(e),
		newFloodCmd(e),
	)
	return root
}

// loadScene reads --scene, or builds the --plane mesh.
func (e *env) loadScene() (*mesh.Scene, error) {
	if e.scenePath != "" {
		return meshio.Load(e.scenePath)
	}
	var rows, cols int
	if _, err := fmt.Sscanf(strings.ToLower(e.plane), "%dx%d", &rows, &cols); err != nil {
		return nil, fmt.Errorf("--plane %q: want RxC: %w", e.plane, err)
	}
	m, err := builder.Build([]builder.Option{builder.WithShapeName("pPlane1")}, builder.Plane(rows, cols))
	if err != nil {
		return nil, err
	}
	return mesh.NewScene(m)
}

// saveScene writes sc to --out when given.
func (e *env) saveScene(sc *mesh.Scene) error {
	if e.out == "" {
		return nil
	}
	return meshio.Save(e.out, sc)
}

// openStore returns the store behind --options, opened once.
func (e *env) openStore() (*options.Store, error) {
	if e.store != nil {
		return e.store, nil
	}
	path := e.optionsPath
	if path == "" {
		var err error
		if path, err = options.DefaultPath(); err != nil {
			return nil, err
		}
	}
	e.store = options.New(path)
	return e.store, nil
}

// traverseOptions returns the hooks every traversal runs with: warnings go
// to stderr.
func (e *env) traverseOptions(cmd *cobra.Command) []traverse.Option {
	return []traverse.Option{
		traverse.WithMaxRings(e.maxRings),
		traverse.WithOnWarning(func(err error) {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "warning:", err)
		}),
	}
}

func parseComponents(args []string) ([]component.Component, error) {
	out := make([]component.Component, len(args))
	for i, a := range args {
		c, err := component.Parse(a)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

func printComponents(cmd *cobra.Command, cs []component.Component) {
	for _, c := range cs {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), c)
	}
}
