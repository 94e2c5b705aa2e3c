package dfs

import (
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a vertex.
type VertexState uint8

const (
	White VertexState = iota // White: the vertex has not been visited yet.
	Gray                     // Gray: the vertex is on the traversal stack.
	Black                    // Black: the vertex and all its descendants are finished.
)

var (
	// ErrGraphNil is returned when a nil Adjacency is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrOrderNotPermutation indicates that the iteration order does not list
	// every node 0..Size()-1 exactly once.
	ErrOrderNotPermutation = errors.New("dfs: order is not a permutation of the nodes")

	// ErrMaskSize indicates that the node mask length differs from Size().
	ErrMaskSize = errors.New("dfs: node mask size mismatch")
)

// Adjacency is a directed relation over nodes 0..Size()-1.
// HasEdge must be safe to call with any pair of in-range ids.
type Adjacency interface {
	Size() int
	HasEdge(from, to int) bool
}

// Option configures optional behavior of a traversal.
type Option func(*Options)

// Options holds configurable parameters for a traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	// It is checked once per visited node.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the Context for the traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
