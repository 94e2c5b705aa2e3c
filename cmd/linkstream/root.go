package main

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkstream/partition"
	"github.com/katalvlaran/linkstream/stream"
)

// app carries the state shared by every command of one invocation.
type app struct {
	cfgPath   string
	verbose   bool
	ascending bool

	cfg    Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "linkstream",
		Short: "Δ-analysis of link streams",
		Long: `linkstream reads a link stream on stdin, one "node1 node2 time" record per
line, and computes Δ-connectivity, Δ-components, existence intervals and
temporal partitions.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", "linkstream.yaml", "yaml file with default delta, nodes and policy")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug records to stderr")
	flags.BoolVar(&a.ascending, "ascending", false, "input is sorted oldest first; replay it backwards")

	root.AddCommand(a.calcCmd(), a.renameCmd(), a.genCmd(), a.infoCmd(), a.filterCmd())

	return root
}

// setup loads the configuration and builds the logger. Flags explicitly set
// on the command line win over the file.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.cfgPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = a.verbose
	}
	if cmd.Flags().Changed("ascending") {
		cfg.Ascending = a.ascending
	}
	a.cfg = cfg

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.logger.Debug("configuration loaded", slog.String("path", a.cfgPath), slog.Uint64("delta", cfg.Delta), slog.Int("nodes", cfg.Nodes))

	return nil
}

// source returns the stdin stream in scan order (newest first).
func (a *app) source(cmd *cobra.Command) (stream.Source, error) {
	r := stream.NewReader(cmd.InOrStdin())
	if !a.cfg.Ascending {
		return r, nil
	}
	links, err := stream.Collect(r)
	if err != nil {
		return nil, err
	}

	return stream.Reverse(links), nil
}

// links materializes stdin in scan order for commands needing several passes.
func (a *app) links(cmd *cobra.Command) ([]stream.Link, error) {
	links, err := stream.Collect(stream.NewReader(cmd.InOrStdin()))
	if err != nil {
		return nil, err
	}
	if a.cfg.Ascending {
		slices.Reverse(links)
	}

	return links, nil
}

// deltaAndSize reads DELTA and NBNODES from args, falling back to the
// configuration for missing ones.
func (a *app) deltaAndSize(args []string) (stream.Time, int, error) {
	delta := a.cfg.Delta
	if len(args) > 0 {
		d, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("delta %q: %w", args[0], err)
		}
		delta = d
		args = args[1:]
	}
	size, err := a.size(args)
	if err != nil {
		return 0, 0, err
	}

	return delta, size, nil
}

// size reads NBNODES from args[0] or the configuration.
func (a *app) size(args []string) (int, error) {
	size := a.cfg.Nodes
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, fmt.Errorf("nbNodes %q: %w", args[0], err)
		}
		size = n
	}
	if size <= 0 {
		return 0, fmt.Errorf("the number of nodes must be positive (got %d); pass NBNODES or set nodes in %s", size, a.cfgPath)
	}

	return size, nil
}

// policy resolves --up against the configured policy.
func (a *app) policy(cmd *cobra.Command) (partition.Policy, error) {
	if up, _ := cmd.Flags().GetBool("up"); up {
		return partition.Upper, nil
	}

	return partition.ParsePolicy(a.cfg.Policy)
}

// filterFlags holds the --nodes/--start/--stop selection shared by several
// commands.
type filterFlags struct {
	nodes       []int
	start, stop uint64
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntSliceVar(&f.nodes, "nodes", nil, "keep only links between these nodes")
	cmd.Flags().Uint64Var(&f.start, "start", 0, "first instant kept")
	cmd.Flags().Uint64Var(&f.stop, "stop", stream.MaxTime, "last instant kept")
}

// nodeFilter returns nil when --nodes was not given.
func (f *filterFlags) nodeFilter() stream.NodeFilter {
	if f.nodes == nil {
		return nil
	}

	return stream.NodeSet(f.nodes...)
}

// timeFilter returns nil when neither --start nor --stop was given. With
// halfOpen the stop instant itself is excluded.
func (f *filterFlags) timeFilter(cmd *cobra.Command, halfOpen bool) stream.TimeFilter {
	if !cmd.Flags().Changed("start") && !cmd.Flags().Changed("stop") {
		return nil
	}
	if halfOpen {
		return stream.TimeRange(f.start, f.stop)
	}

	return stream.TimeWindow(f.start, f.stop)
}

// allNodes returns 0..size-1.
func allNodes(size int) []stream.Node {
	out := make([]stream.Node, size)
	for i := range out {
		out[i] = i
	}

	return out
}

// formatNodes renders nodes as "[0, 1, 2]".
func formatNodes(nodes []stream.Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = strconv.Itoa(n)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// formatGroups renders groups as "[[0, 1], [2]]".
func formatGroups(groups [][]stream.Node) string {
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = formatNodes(g)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
