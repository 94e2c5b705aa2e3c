package reach

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/linkstream/stream"
)

// generationFunc is called once per completed generation with its instant.
type generationFunc func(ref stream.Time) error

// scan feeds every kept link of src into tr and calls done each time a
// generation completes: when the instant changes and once more at the end of
// the stream (if any link was kept).
func scan(src stream.Source, tr *Tracker, o Options, done generationFunc) error {
	for {
		l, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if !stream.Keep(l, o.Nodes, o.Times) {
			continue
		}
		if tr.Started() && l.Time != tr.Time() {
			if err = done(tr.Time()); err != nil {
				return err
			}
		}
		if err = tr.Update(l); err != nil {
			return err
		}
	}
	if tr.Started() {
		return done(tr.Time())
	}

	return nil
}

// Build scans src and returns its Δ-reachability graph over size nodes.
//
// At every completed generation with instant ref, the graph is refreshed
// against the current distances, except while the scan is still within delta
// of the maximum instant seen (SubSat(maxSeen, ref) < delta): the window is
// not fully populated there and edges would expire spuriously.
func Build(src stream.Source, size int, delta stream.Time, opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	tr, err := NewTracker(size)
	if err != nil {
		return nil, err
	}
	g, err := NewGraph(size)
	if err != nil {
		return nil, err
	}

	var maxSeen stream.Time
	seen := false
	err = scan(src, tr, o, func(ref stream.Time) error {
		if !seen || ref > maxSeen {
			maxSeen, seen = ref, true
		}
		if stream.SubSat(maxSeen, ref) < delta {
			o.Logger.Debug("reach: refresh skipped", slog.Uint64("time", ref), slog.Uint64("max_seen", maxSeen))
			return nil
		}
		cleared, rerr := g.Refresh(tr.Current(), ref, delta)
		if rerr != nil {
			return rerr
		}
		o.Logger.Debug("reach: refreshed", slog.Uint64("time", ref), slog.Int("cleared", cleared))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reach.Build: %w", err)
	}
	o.Logger.Info("reach: graph built",
		slog.Int("size", size),
		slog.Int("generations", tr.Generations()),
		slog.Int("edges", g.Edges()))

	return g, nil
}

// Connectivity scans src and reports, for every completed generation, whether
// the nodes kept by the node filter formed a Δ-clique of the current distances
// at that instant.
func Connectivity(src stream.Source, size int, delta stream.Time, opts ...Option) ([]Sample, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	tr, err := NewTracker(size)
	if err != nil {
		return nil, err
	}

	var out []Sample
	err = scan(src, tr, o, func(ref stream.Time) error {
		ok := IsSubsetDeltaClique(tr.Current(), ref, delta, o.Nodes)
		out = append(out, Sample{Time: ref, Connected: ok})
		o.Logger.Debug("reach: connectivity", slog.Uint64("time", ref), slog.Bool("connected", ok))
		return nil
	})
	if err != nil {
		return out, fmt.Errorf("reach.Connectivity: %w", err)
	}

	return out, nil
}
