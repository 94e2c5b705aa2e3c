package existence

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/linkstream/stream"
)

// Compute scans src newest first and returns one Step per distinct instant.
//
// The last-seen instant of every tracked node is updated by each link
// touching it. When the scan leaves instant t (and once more at the end),
// the step for t is emitted with node n active iff n was seen and
// record[n] - t < delta. Links touching no tracked node still delimit
// instants.
func Compute(src stream.Source, nodes []stream.Node, delta stream.Time, opts ...Option) (Trace, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	pos := make(map[stream.Node]int, len(nodes))
	for i, n := range nodes {
		pos[n] = i
	}
	record := make([]stream.Time, len(nodes))
	for i := range record {
		record[i] = stream.MaxTime
	}
	existing := func(t stream.Time) BoolVec {
		v := make(BoolVec, len(record))
		for i, r := range record {
			v[i] = r != stream.MaxTime && stream.SubSat(r, t) < delta
		}
		return v
	}

	var (
		trace   Trace
		now     stream.Time
		started bool
	)
	for {
		l, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return trace, fmt.Errorf("existence.Compute: %w", err)
		}
		if started && l.Time != now {
			trace = append(trace, Step{Time: now, Active: existing(now)})
		}
		now, started = l.Time, true
		if i, ok := pos[l.Node1]; ok {
			record[i] = l.Time
		}
		if i, ok := pos[l.Node2]; ok {
			record[i] = l.Time
		}
	}
	if started {
		trace = append(trace, Step{Time: now, Active: existing(now)})
	}
	o.Logger.Info("existence: trace computed", slog.Int("nodes", len(nodes)), slog.Int("steps", len(trace)))

	return trace, nil
}

// FoldAt ORs init with every step whose instant lies in
// [SubSat(t, delta), AddSat(t, delta)].
func FoldAt(t stream.Time, trace Trace, delta stream.Time, init BoolVec) (BoolVec, error) {
	lo, hi := stream.SubSat(t, delta), stream.AddSat(t, delta)
	out := append(BoolVec(nil), init...)
	for _, s := range trace {
		if s.Time < lo || s.Time > hi {
			continue
		}
		var err error
		if out, err = out.Or(s.Active); err != nil {
			return nil, fmt.Errorf("FoldAt(%d): %w", t, err)
		}
	}

	return out, nil
}

// Intervals segments the folded trace: a new interval starts at every step
// whose folded vector differs from the open interval's. Intervals are
// contiguous, the last one stopping at the last step's instant, and Nodes maps
// the set positions back through nodes.
func Intervals(trace Trace, nodes []stream.Node, delta stream.Time) ([]Interval, error) {
	if len(trace) == 0 {
		return nil, fmt.Errorf("Intervals: %w", ErrEmptyTrace)
	}
	for k, s := range trace {
		if len(s.Active) != len(nodes) {
			return nil, fmt.Errorf("Intervals: step %d has %d entries for %d nodes: %w", k, len(s.Active), len(nodes), ErrLengthMismatch)
		}
	}

	folded, err := foldAll(trace, delta, len(nodes))
	if err != nil {
		return nil, err
	}
	toNodes := func(v BoolVec) []stream.Node {
		set := v.ToSet()
		out := make([]stream.Node, len(set))
		for i, p := range set {
			out[i] = nodes[p]
		}
		return out
	}

	var out []Interval
	start, cur := trace[0].Time, folded[0]
	for k := 1; k < len(trace); k++ {
		if !folded[k].Diff(cur) {
			continue
		}
		out = append(out, Interval{Start: start, Stop: trace[k].Time, Nodes: toNodes(cur)})
		start, cur = trace[k].Time, folded[k]
	}
	out = append(out, Interval{Start: start, Stop: trace[len(trace)-1].Time, Nodes: toNodes(cur)})

	return out, nil
}

// foldAll returns FoldAt for every step instant. On a newest-first trace the
// window slides monotonically and per-node counts replace the repeated ORs.
func foldAll(trace Trace, delta stream.Time, width int) ([]BoolVec, error) {
	out := make([]BoolVec, len(trace))
	if !newestFirst(trace) {
		zero := make(BoolVec, width)
		for k, s := range trace {
			v, err := FoldAt(s.Time, trace, delta, zero)
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	}

	counts := make([]int, width)
	add := func(s Step, d int) {
		for i, b := range s.Active {
			if b {
				counts[i] += d
			}
		}
	}
	// window is trace[a:b]: steps with lo <= Time <= hi.
	a, b := 0, 0
	for k, s := range trace {
		lo, hi := stream.SubSat(s.Time, delta), stream.AddSat(s.Time, delta)
		for ; b < len(trace) && trace[b].Time >= lo; b++ {
			add(trace[b], 1)
		}
		for ; a < b && trace[a].Time > hi; a++ {
			add(trace[a], -1)
		}
		v := make(BoolVec, width)
		for i, c := range counts {
			v[i] = c > 0
		}
		out[k] = v
	}

	return out, nil
}

// newestFirst reports whether step instants never increase.
func newestFirst(trace Trace) bool {
	for k := 1; k < len(trace); k++ {
		if trace[k].Time > trace[k-1].Time {
			return false
		}
	}

	return true
}

// ComputeIntervals runs Compute then Intervals.
func ComputeIntervals(src stream.Source, nodes []stream.Node, delta stream.Time, opts ...Option) ([]Interval, error) {
	trace, err := Compute(src, nodes, delta, opts...)
	if err != nil {
		return nil, err
	}

	return Intervals(trace, nodes, delta)
}

// Matrix returns the trace as node rows over step columns, in trace order.
func Matrix(trace Trace) [][]bool {
	if len(trace) == 0 {
		return nil
	}
	rows := make([][]bool, len(trace[0].Active))
	for i := range rows {
		rows[i] = make([]bool, len(trace))
		for k, s := range trace {
			rows[i][k] = i < len(s.Active) && s.Active[i]
		}
	}

	return rows
}
