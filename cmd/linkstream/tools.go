package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linkstream/stream"
)

// printAll writes every link of src, one per line.
func printAll(out io.Writer, src stream.Source) error {
	return stream.ForEach(src, func(l stream.Link) error {
		_, err := fmt.Fprintln(out, l.String())
		return err
	})
}

func (a *app) renameCmd() *cobra.Command {
	var mapping string
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Renumber nodes densely from 0 in order of first appearance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := stream.NewRenamer(stream.NewReader(cmd.InOrStdin()))
			if err := printAll(cmd.OutOrStdout(), r); err != nil {
				return err
			}
			a.logger.Info("renamed", slog.Int("nodes", r.Count()))
			if mapping == "" {
				return nil
			}

			table := make(map[stream.Node]stream.Node, r.Count())
			for _, pair := range r.Mapping() {
				table[pair[0]] = pair[1]
			}
			data, err := yaml.Marshal(table)
			if err != nil {
				return err
			}
			return os.WriteFile(mapping, data, 0o644)
		},
	}
	cmd.Flags().StringVar(&mapping, "mapping", "", "write the original -> dense id table to this yaml file")

	return cmd
}

func (a *app) genCmd() *cobra.Command {
	var seed uint64
	cmd := &cobra.Command{
		Use:   "gen NBNODES STOP PROBA",
		Short: "Generate a uniform random stream, newest first; each pair appears with probability 1/PROBA per instant",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("nbNodes %q: %w", args[0], err)
			}
			stop, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("stop %q: %w", args[1], err)
			}
			proba, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("proba %q: %w", args[2], err)
			}
			g, err := stream.NewUniform(nodes, stop, proba, seed)
			if err != nil {
				return err
			}
			return printAll(cmd.OutOrStdout(), g)
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")

	return cmd
}

func (a *app) infoCmd() *cobra.Command {
	info := &cobra.Command{
		Use:   "info",
		Short: "Basic statistics of the stream on stdin",
	}

	count := &cobra.Command{
		Use:       "count (nodes|links)",
		Short:     "Print the number of distinct nodes or of links",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"nodes", "links"},
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, links, err := stream.CountNodesAndLinks(stream.NewReader(cmd.InOrStdin()))
			if err != nil {
				return err
			}
			n := links
			if args[0] == "nodes" {
				n = nodes
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}

	degrees := &cobra.Command{
		Use:   "degrees [NBNODES]",
		Short: `Print "<node>: <distinct neighbours>"`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := a.size(args)
			if err != nil {
				return err
			}
			deg, err := stream.Degrees(stream.NewReader(cmd.InOrStdin()), size)
			if err != nil {
				return err
			}
			for i, d := range deg {
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %d\n", i, d)
			}
			return nil
		},
	}

	repart := &cobra.Command{
		Use:   "repart [NBNODES]",
		Short: `Print "<node>: <first> <last>" instants in stream order`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := a.size(args)
			if err != nil {
				return err
			}
			seen, err := stream.FirstAndLast(stream.NewReader(cmd.InOrStdin()), size)
			if err != nil {
				return err
			}
			for i, ap := range seen {
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %d %d\n", i, ap.First, ap.Last)
			}
			return nil
		},
	}

	info.AddCommand(count, degrees, repart)

	return info
}

func (a *app) filterCmd() *cobra.Command {
	var f filterFlags
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Copy stdin to stdout keeping links between --nodes within [--start, --stop]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := stream.Filter(stream.NewReader(cmd.InOrStdin()), f.nodeFilter(), f.timeFilter(cmd, false))
			return printAll(cmd.OutOrStdout(), src)
		},
	}
	f.register(cmd)

	return cmd
}
