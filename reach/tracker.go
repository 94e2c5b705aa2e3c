package reach

import (
	"fmt"

	"github.com/katalvlaran/linkstream/matrix"
	"github.com/katalvlaran/linkstream/stream"
)

// Tracker maintains the "last relevant time" matrices of a link stream.
//
// Lifecycle: construct with NewTracker(size), feed every kept link through
// Update in stream order, read Current (and Previous) at will. All links with
// the same instant form one relaxation generation.
//
// Invariant: Previous is the copy of Current taken at the moment Time last
// changed (all MaxTime before the second generation starts).
type Tracker struct {
	size        int
	current     *matrix.Square[stream.Time]
	previous    *matrix.Square[stream.Time]
	now         stream.Time
	started     bool
	generations int
}

// NewTracker allocates both snapshots filled with MaxTime.
func NewTracker(size int) (*Tracker, error) {
	cur, err := matrix.NewSquare(size, stream.MaxTime)
	if err != nil {
		return nil, fmt.Errorf("NewTracker(%d): %w", size, err)
	}

	return &Tracker{
		size:     size,
		current:  cur,
		previous: cur.Clone(),
	}, nil
}

// Update folds one link into the tracker.
//
// Steps, for link (u, v, t):
//  1. On the very first link, track t and set the diagonal of current to t.
//  2. When t differs from the tracked instant, snapshot current into previous,
//     reset the diagonal of current to t and track t.
//  3. For every node i: direct contact sets current[v][u] and current[u][v] to
//     t; any other i relaxes current[v][i] with previous[u][i] (and
//     current[u][i] with previous[v][i]) when that previous value is later
//     than t.
//
// Returns stream.ErrNodeOutOfRange (wrapped) when u or v is outside [0, size);
// the tracker is left untouched in that case.
func (tr *Tracker) Update(l stream.Link) error {
	if err := stream.CheckNode(l, tr.size); err != nil {
		return fmt.Errorf("Tracker.Update: %w", err)
	}
	u, v, t := l.Node1, l.Node2, l.Time

	if !tr.started {
		tr.started = true
		tr.now = t
		tr.current.SetDiag(t)
		tr.generations = 1
	}
	if t != tr.now {
		// sizes are equal by construction
		_ = tr.previous.CopyFrom(tr.current)
		tr.current.SetDiag(t)
		tr.now = t
		tr.generations++
	}

	curU, curV := tr.current.Row(u), tr.current.Row(v)
	prevU, prevV := tr.previous.Row(u), tr.previous.Row(v)
	var p stream.Time
	for i := 0; i < tr.size; i++ {
		switch i {
		case u:
			curV[i] = t
		case v:
			curU[i] = t
		default:
			// MaxTime is "later" than any t but never smaller than a cell, so
			// it cannot win the min below.
			if p = prevU[i]; p > t && p < curV[i] {
				curV[i] = p
			}
			if p = prevV[i]; p > t && p < curU[i] {
				curU[i] = p
			}
		}
	}

	return nil
}

// Size returns the number of tracked nodes.
func (tr *Tracker) Size() int { return tr.size }

// Time returns the tracked instant. Meaningless until Started.
func (tr *Tracker) Time() stream.Time { return tr.now }

// Started reports whether at least one link was processed.
func (tr *Tracker) Started() bool { return tr.started }

// Generations returns how many distinct instants were processed.
func (tr *Tracker) Generations() int { return tr.generations }

// Current returns the live current snapshot. Callers must not mutate it.
func (tr *Tracker) Current() *matrix.Square[stream.Time] { return tr.current }

// Previous returns the live previous snapshot. Callers must not mutate it.
func (tr *Tracker) Previous() *matrix.Square[stream.Time] { return tr.previous }
