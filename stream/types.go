package stream

import (
	"errors"
	"fmt"
	"math"
)

// Node identifies a vertex of the stream. Ids are dense in [0, size).
type Node = int

// Time is an instant of the stream.
type Time = uint64

// MaxTime is the sentinel meaning "never", "unknown" or "infinite distance".
// It is compared and min-ed directly; it is never produced by a real link.
const MaxTime Time = math.MaxUint64

var (
	// ErrMalformedLine indicates an input line that is not "n1 n2 t".
	ErrMalformedLine = errors.New("stream: malformed link line")

	// ErrNegativeSize indicates a negative node count.
	ErrNegativeSize = errors.New("stream: size must be >= 0")

	// ErrNodeOutOfRange indicates a link endpoint outside [0, size).
	ErrNodeOutOfRange = errors.New("stream: node out of range")
)

// Link is an undirected interaction between Node1 and Node2 at Time.
// Equality is structural, so links compare with ==.
type Link struct {
	Node1 Node
	Node2 Node
	Time  Time
}

// String renders the link as "node1 node2 time", the line format read by Reader.
func (l Link) String() string {
	return fmt.Sprintf("%d %d %d", l.Node1, l.Node2, l.Time)
}

// SubSat returns a-b, or 0 when b > a.
func SubSat(a, b Time) Time {
	if a < b {
		return 0
	}

	return a - b
}

// AddSat returns a+b, or MaxTime on overflow.
func AddSat(a, b Time) Time {
	if a > MaxTime-b {
		return MaxTime
	}

	return a + b
}

// AbsDiff returns |a-b|.
func AbsDiff(a, b Time) Time {
	if a < b {
		return b - a
	}

	return a - b
}

// CheckNode returns ErrNodeOutOfRange (wrapped with the offending link) when
// either endpoint of l is outside [0, size).
func CheckNode(l Link, size int) error {
	if l.Node1 < 0 || l.Node1 >= size || l.Node2 < 0 || l.Node2 >= size {
		return fmt.Errorf("link %q with size %d: %w", l.String(), size, ErrNodeOutOfRange)
	}

	return nil
}
