package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkstream/existence"
	"github.com/katalvlaran/linkstream/partition"
	"github.com/katalvlaran/linkstream/reach"
	"github.com/katalvlaran/linkstream/stream"
)

func (a *app) calcCmd() *cobra.Command {
	calc := &cobra.Command{
		Use:   "calc",
		Short: "Δ-analyses of the stream on stdin",
	}
	calc.AddCommand(a.connexityCmd(), a.graphCmd(), a.compsCmd(), a.existCmd(), a.partCmd())

	return calc
}

func (a *app) connexityCmd() *cobra.Command {
	var f filterFlags
	cmd := &cobra.Command{
		Use:   "connexity [DELTA [NBNODES]]",
		Short: `Print "<time> <bool>": whether the selected nodes form a Δ-clique at each instant`,
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, size, err := a.deltaAndSize(args)
			if err != nil {
				return err
			}
			src, err := a.source(cmd)
			if err != nil {
				return err
			}
			samples, err := reach.Connectivity(src, size, delta,
				reach.WithNodeFilter(f.nodeFilter()),
				reach.WithTimeFilter(f.timeFilter(cmd, true)),
				reach.WithLogger(a.logger))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, s := range samples {
				fmt.Fprintf(out, "%d %t\n", s.Time, s.Connected)
			}
			return nil
		},
	}
	f.register(cmd)

	return cmd
}

func (a *app) graphCmd() *cobra.Command {
	var f filterFlags
	cmd := &cobra.Command{
		Use:   "graph [DELTA [NBNODES]]",
		Short: "Print the Δ-reachability graph of the selected links in Graphviz DOT",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, size, err := a.deltaAndSize(args)
			if err != nil {
				return err
			}
			src, err := a.source(cmd)
			if err != nil {
				return err
			}
			g, err := reach.Build(src, size, delta,
				reach.WithNodeFilter(f.nodeFilter()),
				reach.WithTimeFilter(f.timeFilter(cmd, false)),
				reach.WithLogger(a.logger))
			if err != nil {
				return err
			}
			b, err := g.DOT("reach")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}
	f.register(cmd)

	return cmd
}

func (a *app) compsCmd() *cobra.Command {
	var f filterFlags
	cmd := &cobra.Command{
		Use:   "comps [DELTA [NBNODES]]",
		Short: `Print "<ncomp> <max> [[..]]": the Δ-components of the selected nodes`,
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, size, err := a.deltaAndSize(args)
			if err != nil {
				return err
			}
			policy, err := a.policy(cmd)
			if err != nil {
				return err
			}
			subset := f.nodes
			if subset == nil {
				subset = allNodes(size)
			}
			src, err := a.source(cmd)
			if err != nil {
				return err
			}
			res, err := partition.Components(src, size, delta, subset, f.nodeFilter(), f.timeFilter(cmd, false), policy,
				partition.WithContext(cmd.Context()),
				partition.WithLogger(a.logger))
			if err != nil {
				return err
			}
			count, largest := res.Summary()
			fmt.Fprintf(cmd.OutOrStdout(), "%d %d %s\n", count, largest, formatGroups(res.All()))
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().Bool("up", false, "keep irreducible blocks whole (upper policy)")

	return cmd
}

func (a *app) existCmd() *cobra.Command {
	var lr, cut bool
	cmd := &cobra.Command{
		Use:   "exist [DELTA [NBNODES]]",
		Short: "Print the existence matrix, its largest box (--lr) or its intervals (--cut)",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, size, err := a.deltaAndSize(args)
			if err != nil {
				return err
			}
			src, err := a.source(cmd)
			if err != nil {
				return err
			}
			nodes := allNodes(size)
			trace, err := existence.Compute(src, nodes, delta, existence.WithLogger(a.logger))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch {
			case lr:
				box, err := existence.LargestBox(trace, nodes)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%d %d %d %d %s\n", box.Start, box.Stop, box.Area(), len(box.Nodes), formatNodes(box.Nodes))
			case cut:
				ivs, err := existence.Intervals(trace, nodes, delta)
				if err != nil {
					return err
				}
				for _, iv := range ivs {
					parts := make([]string, len(iv.Nodes))
					for i, n := range iv.Nodes {
						parts[i] = strconv.Itoa(n)
					}
					fmt.Fprintf(out, "%d %d %s\n", iv.Stop, stream.AddSat(iv.Start, stream.AddSat(delta, 1)), strings.Join(parts, " "))
				}
			default:
				// oldest instant first
				for _, row := range existence.Matrix(trace) {
					slices.Reverse(row)
					cells := make([]string, len(row))
					for i, on := range row {
						cells[i] = "0"
						if on {
							cells[i] = "1"
						}
					}
					fmt.Fprintln(out, strings.Join(cells, " "))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&lr, "lr", false, "print the largest all-active box")
	cmd.Flags().BoolVar(&cut, "cut", false, "print the existence intervals")
	cmd.MarkFlagsMutuallyExclusive("lr", "cut")

	return cmd
}

func (a *app) partCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "part [DELTA [NBNODES]]",
		Short: `Print "<stop> <start> <ncomp> <max> [[..]]" for every existence interval`,
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, size, err := a.deltaAndSize(args)
			if err != nil {
				return err
			}
			policy, err := a.policy(cmd)
			if err != nil {
				return err
			}
			links, err := a.links(cmd)
			if err != nil {
				return err
			}
			parts, err := partition.DeltaPartition(stream.Replay(links), allNodes(size), delta, policy,
				partition.WithContext(cmd.Context()),
				partition.WithLogger(a.logger))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range parts {
				count, largest := p.Summary()
				fmt.Fprintf(out, "%d %d %d %d %s\n", p.Stop, p.Start, count, largest, formatGroups(p.All()))
			}
			return nil
		},
	}
	cmd.Flags().Bool("up", false, "keep irreducible blocks whole (upper policy)")

	return cmd
}
