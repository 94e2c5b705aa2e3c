package reach

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/linkstream/stream"
)

// Option configures optional behavior of the scan drivers.
type Option func(*Options)

// Options holds the predicates and logger applied during a scan.
type Options struct {
	// Nodes keeps links whose two endpoints pass; it also bounds the subset
	// checked by Connectivity. Default: every node.
	Nodes stream.NodeFilter

	// Times keeps links whose instant passes. Default: every instant.
	Times stream.TimeFilter

	// Logger receives debug records per generation. Default: discarded.
	Logger *slog.Logger
}

// DefaultOptions returns Options with:
//   - every node and every instant kept
//   - a logger writing to io.Discard
func DefaultOptions() Options {
	return Options{
		Nodes:  stream.AllNodes(),
		Times:  stream.AllTimes(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithNodeFilter returns an Option restricting links to nodes kept by f.
// A nil f has no effect.
func WithNodeFilter(f stream.NodeFilter) Option {
	return func(o *Options) {
		if f != nil {
			o.Nodes = f
		}
	}
}

// WithTimeFilter returns an Option restricting links to instants kept by f.
// A nil f has no effect.
func WithTimeFilter(f stream.TimeFilter) Option {
	return func(o *Options) {
		if f != nil {
			o.Times = f
		}
	}
}

// WithLogger returns an Option installing l. A nil l has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Sample is one point of a Δ-connectivity report: whether the kept node set
// formed a Δ-clique at Time.
type Sample struct {
	Time      stream.Time
	Connected bool
}
