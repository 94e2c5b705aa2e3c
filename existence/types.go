package existence

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/linkstream/stream"
)

var (
	// ErrEmptyTrace is returned when an operation needs at least one step.
	ErrEmptyTrace = errors.New("existence: empty trace")

	// ErrLengthMismatch indicates vectors of different lengths.
	ErrLengthMismatch = errors.New("existence: vector length mismatch")
)

// BoolVec is an activity vector indexed by tracked-node position.
type BoolVec []bool

// And returns the element-wise conjunction of v and w.
func (v BoolVec) And(w BoolVec) (BoolVec, error) {
	if len(v) != len(w) {
		return nil, fmt.Errorf("BoolVec.And: %d vs %d: %w", len(v), len(w), ErrLengthMismatch)
	}
	out := make(BoolVec, len(v))
	for i := range v {
		out[i] = v[i] && w[i]
	}

	return out, nil
}

// Or returns the element-wise disjunction of v and w.
func (v BoolVec) Or(w BoolVec) (BoolVec, error) {
	if len(v) != len(w) {
		return nil, fmt.Errorf("BoolVec.Or: %d vs %d: %w", len(v), len(w), ErrLengthMismatch)
	}
	out := make(BoolVec, len(v))
	for i := range v {
		out[i] = v[i] || w[i]
	}

	return out, nil
}

// Diff reports whether v and w differ at any index. Vectors of different
// lengths always differ.
func (v BoolVec) Diff(w BoolVec) bool {
	if len(v) != len(w) {
		return true
	}
	for i := range v {
		if v[i] != w[i] {
			return true
		}
	}

	return false
}

// ToSet returns the indices set in v, ascending.
func (v BoolVec) ToSet() []int {
	var out []int
	for i, b := range v {
		if b {
			out = append(out, i)
		}
	}

	return out
}

// Count returns how many entries are set.
func (v BoolVec) Count() int {
	n := 0
	for _, b := range v {
		if b {
			n++
		}
	}

	return n
}

// Step is the activity vector of the tracked nodes at one instant.
type Step struct {
	Time   stream.Time
	Active BoolVec
}

// Trace is the sequence of steps in scan order (newest first).
type Trace []Step

// Interval is a maximal run of steps whose folded activity is constant.
// Start and Stop are step instants in scan order, so Start >= Stop on a
// newest-first trace.
type Interval struct {
	Start, Stop stream.Time
	Nodes       []stream.Node
}

// Point addresses one cell of a trace: X is the step index, Y the tracked
// node position.
type Point struct {
	X, Y int
}

// Rectangle is an all-active block with inclusive corners From and To.
// Span is the distance between the instants of columns From.X and To.X.
type Rectangle struct {
	From, To Point
	Span     stream.Time
	empty    bool
}

// Empty reports whether no active cell exists.
func (r Rectangle) Empty() bool { return r.empty }

// Width is the number of steps covered.
func (r Rectangle) Width() int {
	if r.empty {
		return 0
	}
	return r.To.X - r.From.X + 1
}

// Height is the number of node rows covered.
func (r Rectangle) Height() int {
	if r.empty {
		return 0
	}
	return r.To.Y - r.From.Y + 1
}

// Cells is Width × Height.
func (r Rectangle) Cells() int { return r.Width() * r.Height() }

// Area is Span × Height, saturating at stream.MaxTime.
func (r Rectangle) Area() stream.Time {
	return mulSat(r.Span, stream.Time(r.Height()))
}

// Box is a Rectangle mapped back to instants and node ids.
// Start <= Stop regardless of scan direction.
type Box struct {
	Start, Stop stream.Time
	Nodes       []stream.Node
}

// Span returns Stop - Start.
func (b Box) Span() stream.Time { return b.Stop - b.Start }

// Area is Span × len(Nodes), saturating at stream.MaxTime.
func (b Box) Area() stream.Time {
	return mulSat(b.Span(), stream.Time(len(b.Nodes)))
}

func mulSat(a, b stream.Time) stream.Time {
	if a != 0 && b > stream.MaxTime/a {
		return stream.MaxTime
	}

	return a * b
}

// Option configures optional behavior of Compute.
type Option func(*Options)

// Options holds the logger used while computing a trace.
type Options struct {
	Logger *slog.Logger
}

// DefaultOptions returns Options with a logger writing to io.Discard.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithLogger installs l. A nil l has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
