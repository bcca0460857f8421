package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/zenmesh/component"
	"github.com/katalvlaran/zenmesh/loft"
	"github.com/katalvlaran/zenmesh/loop"
	"github.com/katalvlaran/zenmesh/traverse"
)

func newPathCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Print the shortest vertex path between two vertices",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := e.loadScene()
			if err != nil {
				return err
			}
			ends, err := parseComponents(args)
			if err != nil {
				return err
			}
			path, err := traverse.ShortestPath(sc, ends[0], ends[1], e.traverseOptions(cmd)...)
			if err != nil {
				return err
			}
			printComponents(cmd, path)
			return nil
		},
	}
}

func newOrderCmd(e *env) *cobra.Command {
	flags := newToolFlags("order")
	cmd := &cobra.Command{
		Use:   "order <component>...",
		Short: "Print components ordered from one end of the selection",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.resolve(cmd, e); err != nil {
				return err
			}
			sc, err := e.loadScene()
			if err != nil {
				return err
			}
			cs, err := parseComponents(args)
			if err != nil {
				return err
			}
			order := traverse.OrderByEndpoint
			if *flags.bools["chain"] {
				order = traverse.OrderChain
			}
			out, err := order(sc, component.NewSet(cs...), e.traverseOptions(cmd)...)
			if err != nil {
				return err
			}
			printComponents(cmd, out)
			return nil
		},
	}
	flags.Bool(cmd, "chain", false, "the selection is a contiguous chain or loop")
	return cmd
}

// addLoopFlags registers the flags shared by the loop tools.
func addLoopFlags(cmd *cobra.Command, flags *toolFlags) {
	flags.Bool(cmd, "close", false, "route back from the last vertex to the first")
	flags.Bool(cmd, "selection-order", false, "keep the vertices in the order given")
}

func loopOptions(cmd *cobra.Command, e *env, flags *toolFlags) []loop.Option {
	return []loop.Option{
		loop.WithClose(*flags.bools["close"]),
		loop.WithSelectionOrder(*flags.bools["selection-order"]),
		loop.WithTraverseOptions(e.traverseOptions(cmd)...),
	}
}

func newEdgesBetweenCmd(e *env) *cobra.Command {
	flags := newToolFlags("edges-between")
	cmd := &cobra.Command{
		Use:   "edges-between <vertex>...",
		Short: "Print the edges of the shortest path through the vertices",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.resolve(cmd, e); err != nil {
				return err
			}
			sc, err := e.loadScene()
			if err != nil {
				return err
			}
			vs, err := parseComponents(args)
			if err != nil {
				return err
			}
			edges, err := loop.SelectEdgesBetweenVertices(sc, vs, loopOptions(cmd, e, flags)...)
			if err != nil {
				return err
			}
			printComponents(cmd, edges)
			return nil
		},
	}
	addLoopFlags(cmd, flags)
	return cmd
}

func newDistributeCmd(e *env) *cobra.Command {
	flags := newToolFlags("distribute")
	cmd := &cobra.Command{
		Use:   "distribute <vertex>...",
		Short: "Distribute the path through the vertices along the curve they span",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.resolve(cmd, e); err != nil {
				return err
			}
			mode, err := traverse.ParseMode(*flags.strs["mode"])
			if err != nil {
				return err
			}
			sc, err := e.loadScene()
			if err != nil {
				return err
			}
			vs, err := parseComponents(args)
			if err != nil {
				return err
			}
			r, err := loop.Distribute(sc, vs, append(loopOptions(cmd, e, flags), loop.WithMode(mode))...)
			if err != nil {
				return err
			}
			printTargets(cmd, r)
			if err = loop.Apply(sc, r); err != nil {
				return err
			}
			return e.saveScene(sc)
		},
	}
	addLoopFlags(cmd, flags)
	flags.String(cmd, "mode", "uniform", "uniform or proportional")
	return cmd
}

func newLoftCmd(e *env) *cobra.Command {
	flags := newToolFlags("loft")
	cmd := &cobra.Command{
		Use:   "loft <edge>...",
		Short: "Distribute the vertices between parallel edge sections",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.resolve(cmd, e); err != nil {
				return err
			}
			mode, err := traverse.ParseMode(*flags.strs["mode"])
			if err != nil {
				return err
			}
			sc, err := e.loadScene()
			if err != nil {
				return err
			}
			es, err := parseComponents(args)
			if err != nil {
				return err
			}
			r, err := loft.Distribute(sc, component.NewSet(es...),
				loop.WithMode(mode), loop.WithTraverseOptions(e.traverseOptions(cmd)...))
			if err != nil {
				return err
			}
			for _, c := range r.Columns {
				printTargets(cmd, c)
			}
			if err = loft.Apply(sc, r); err != nil {
				return err
			}
			return e.saveScene(sc)
		},
	}
	flags.String(cmd, "mode", "uniform", "uniform or proportional")
	return cmd
}

func newFloodCmd(e *env) *cobra.Command {
	var boundary []string
	cmd := &cobra.Command{
		Use:   "flood <seed>...",
		Short: "Print the components reachable from the seeds inside an edge boundary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := e.loadScene()
			if err != nil {
				return err
			}
			seeds, err := parseComponents(args)
			if err != nil {
				return err
			}
			bs, err := parseComponents(boundary)
			if err != nil {
				return err
			}
			out, err := traverse.FloodFill(sc, component.NewSet(seeds...), component.NewSet(bs...), e.traverseOptions(cmd)...)
			if err != nil {
				return err
			}
			printComponents(cmd, out.Values())
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&boundary, "boundary", nil, "edges enclosing the area")
	return cmd
}

func printTargets(cmd *cobra.Command, r *loop.Result) {
	for i, v := range r.Path {
		p := r.Targets[i]
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %.6g %.6g %.6g\n", v, p.X, p.Y, p.Z)
	}
}
