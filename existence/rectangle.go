package existence

import (
	"fmt"

	"github.com/katalvlaran/linkstream/stream"
)

// LargestRectangle finds the all-active block of trace (steps as columns,
// tracked nodes as rows) with the largest area, the area of a block being its
// time span (distance between the instants of its first and last columns)
// times its row count.
//
// Columns are scanned left to right keeping, per row, the length of the
// active run ending at the current column. For each column as right edge and
// each top row, the block grows downward while the row is active there, its
// width bounded by the shortest run met; on a time-monotone trace the widest
// block also has the widest span. Blocks of equal area are ranked by cell
// count, and only a strictly better block replaces the best, so the first
// maximum found wins. A trace with a single active column still yields a
// block of zero span.
//
// Complexity: O(S·n²) for S steps and n nodes, O(n) extra memory.
func LargestRectangle(trace Trace) (Rectangle, error) {
	if len(trace) == 0 {
		return Rectangle{}, fmt.Errorf("LargestRectangle: %w", ErrEmptyTrace)
	}
	n := len(trace[0].Active)
	for k, s := range trace {
		if len(s.Active) != n {
			return Rectangle{}, fmt.Errorf("LargestRectangle: step %d has %d entries, want %d: %w", k, len(s.Active), n, ErrLengthMismatch)
		}
	}

	runs := make([]int, n)
	best := Rectangle{empty: true}
	for x, s := range trace {
		for y, on := range s.Active {
			if on {
				runs[y]++
			} else {
				runs[y] = 0
			}
		}
		for top := 0; top < n; top++ {
			width := 0
			for y := top; y < n && runs[y] > 0; y++ {
				if width == 0 || runs[y] < width {
					width = runs[y]
				}
				span := stream.AbsDiff(trace[x].Time, trace[x-width+1].Time)
				cand := Rectangle{
					From: Point{X: x - width + 1, Y: top},
					To:   Point{X: x, Y: y},
					Span: span,
				}
				if best.empty || better(cand, best) {
					best = cand
				}
			}
		}
	}

	return best, nil
}

// better reports whether a beats b: larger area, then more cells.
func better(a, b Rectangle) bool {
	if a.Area() != b.Area() {
		return a.Area() > b.Area()
	}

	return a.Cells() > b.Cells()
}

// LargestBox maps LargestRectangle back to instants and node ids: Start and
// Stop are the smaller and larger instants of the covered steps. An empty
// rectangle yields the zero Box.
func LargestBox(trace Trace, nodes []stream.Node) (Box, error) {
	r, err := LargestRectangle(trace)
	if err != nil {
		return Box{}, err
	}
	if len(trace[0].Active) != len(nodes) {
		return Box{}, fmt.Errorf("LargestBox: %d rows for %d nodes: %w", len(trace[0].Active), len(nodes), ErrLengthMismatch)
	}
	if r.Empty() {
		return Box{}, nil
	}

	a, b := trace[r.From.X].Time, trace[r.To.X].Time
	if a > b {
		a, b = b, a
	}

	return Box{
		Start: a,
		Stop:  b,
		Nodes: append([]stream.Node(nil), nodes[r.From.Y:r.To.Y+1]...),
	}, nil
}
