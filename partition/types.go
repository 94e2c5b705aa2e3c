package partition

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/linkstream/stream"
)

var (
	// ErrUnknownPolicy is returned for a Policy other than Lower or Upper.
	ErrUnknownPolicy = errors.New("partition: unknown policy")

	// ErrSubsetNode indicates a subset node outside the graph or listed twice.
	ErrSubsetNode = errors.New("partition: invalid subset node")
)

// Policy selects what happens to a strongly connected block that is not a
// clique.
type Policy int

const (
	// Lower splits the block by its most connected node until cliques remain.
	Lower Policy = iota
	// Upper keeps the block whole as a residue.
	Upper
)

// String returns "lower" or "upper".
func (p Policy) String() string {
	switch p {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps "lower"/"upper" (any case) to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "lower", "":
		return Lower, nil
	case "upper", "up":
		return Upper, nil
	default:
		return 0, fmt.Errorf("ParsePolicy(%q): %w", s, ErrUnknownPolicy)
	}
}

// Result is the outcome of one Partition call.
type Result struct {
	// Components are the subsets found to be cliques, each with more than one
	// node under Lower.
	Components [][]stream.Node
	// Residues are the blocks kept whole under Upper.
	Residues [][]stream.Node
	// Isolated lists the nodes left alone under Lower.
	Isolated []stream.Node
}

// All returns Components followed by Residues.
func (r Result) All() [][]stream.Node {
	out := make([][]stream.Node, 0, len(r.Components)+len(r.Residues))
	out = append(out, r.Components...)

	return append(out, r.Residues...)
}

// Summary returns the number of components and the size of the largest
// component or residue.
func (r Result) Summary() (count, largest int) {
	for _, c := range r.All() {
		if len(c) > largest {
			largest = len(c)
		}
	}

	return len(r.Components), largest
}

// Slice is the partition of one existence interval.
type Slice struct {
	Start, Stop stream.Time
	Result
}

// Option configures optional behavior of the partitioner.
type Option func(*Options)

// Options holds the context and logger of a partitioning run.
type Options struct {
	// Ctx is passed to the strongly-connected-components traversals.
	Ctx context.Context

	// Logger receives a debug record per processed subset. Default: discarded.
	Logger *slog.Logger
}

// DefaultOptions returns Options with a background context and a logger
// writing to io.Discard.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets the Context. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger installs l. A nil l has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
