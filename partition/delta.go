package partition

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/linkstream/existence"
	"github.com/katalvlaran/linkstream/reach"
	"github.com/katalvlaran/linkstream/stream"
)

// Components builds the Δ-reachability graph of src over size nodes, keeping
// only links between nodes passing nodes and at instants passing times (nil
// keeps all), and partitions subset with identity order.
func Components(src stream.Source, size int, delta stream.Time, subset []stream.Node, nodes stream.NodeFilter, times stream.TimeFilter, policy Policy, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	g, err := reach.Build(src, size, delta,
		reach.WithNodeFilter(nodes),
		reach.WithTimeFilter(times),
		reach.WithLogger(o.Logger))
	if err != nil {
		return Result{}, fmt.Errorf("Components: %w", err)
	}

	return Partition(g, nil, subset, policy, opts...)
}

// DeltaPartition computes the existence intervals of the stream over nodes
// (first pass), then partitions each interval's active nodes on a fresh pass
// restricted to the closed window between the interval's two instants and to
// links between tracked nodes. Graphs are sized to hold the largest id in
// nodes.
func DeltaPartition(open stream.Opener, nodes []stream.Node, delta stream.Time, policy Policy, opts ...Option) ([]Slice, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if policy != Lower && policy != Upper {
		return nil, fmt.Errorf("DeltaPartition: %w", ErrUnknownPolicy)
	}
	if len(nodes) == 0 {
		return nil, nil
	}
	size := 0
	for _, n := range nodes {
		if n < 0 {
			return nil, fmt.Errorf("DeltaPartition: node %d: %w", n, ErrSubsetNode)
		}
		if n+1 > size {
			size = n + 1
		}
	}

	src, err := open()
	if err != nil {
		return nil, fmt.Errorf("DeltaPartition: open: %w", err)
	}
	ivs, err := existence.ComputeIntervals(src, nodes, delta, existence.WithLogger(o.Logger))
	if err != nil {
		return nil, fmt.Errorf("DeltaPartition: %w", err)
	}

	tracked := stream.NodeSet(nodes...)
	out := make([]Slice, 0, len(ivs))
	for _, iv := range ivs {
		slice := Slice{Start: iv.Start, Stop: iv.Stop}
		if len(iv.Nodes) > 0 {
			lo, hi := iv.Start, iv.Stop
			if lo > hi {
				lo, hi = hi, lo
			}
			if src, err = open(); err != nil {
				return out, fmt.Errorf("DeltaPartition: open: %w", err)
			}
			res, err := Components(src, size, delta, iv.Nodes, tracked, stream.TimeWindow(lo, hi), policy, opts...)
			if err != nil {
				return out, fmt.Errorf("DeltaPartition [%d, %d]: %w", lo, hi, err)
			}
			slice.Result = res
		}
		count, largest := slice.Summary()
		o.Logger.Debug("partition: interval",
			slog.Uint64("start", iv.Start), slog.Uint64("stop", iv.Stop),
			slog.Int("components", count), slog.Int("largest", largest))
		out = append(out, slice)
	}
	o.Logger.Info("partition: delta partition done", slog.Int("intervals", len(out)), slog.String("policy", policy.String()))

	return out, nil
}
