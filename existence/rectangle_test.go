package existence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkstream/existence"
	"github.com/katalvlaran/linkstream/stream"
)

// columns builds a trace from per-step vectors with the given instants.
func columns(times []stream.Time, cols ...existence.BoolVec) existence.Trace {
	trace := make(existence.Trace, len(cols))
	for k, c := range cols {
		trace[k] = existence.Step{Time: times[k], Active: c}
	}

	return trace
}

// row 0: 1 1 1 0
// row 1: 0 1 1 1
// row 2: 1 1 0 0
var staircase = columns([]stream.Time{9, 7, 4, 2},
	existence.BoolVec{T, F, T},
	existence.BoolVec{T, T, T},
	existence.BoolVec{T, T, F},
	existence.BoolVec{F, T, F},
)

func TestLargestRectangle(t *testing.T) {
	r, err := existence.LargestRectangle(staircase)
	require.NoError(t, err)
	assert.False(t, r.Empty())
	assert.Equal(t, existence.Point{X: 1, Y: 0}, r.From)
	assert.Equal(t, existence.Point{X: 2, Y: 1}, r.To)
	assert.Equal(t, stream.Time(3), r.Span)
	assert.Equal(t, stream.Time(6), r.Area())
	assert.Equal(t, 4, r.Cells())
}

func TestLargestRectangle_WeighsTimeSpan(t *testing.T) {
	// row 0 is active at every instant, row 1 only at the two close ones:
	// one row over [1, 100] beats two rows over [1, 2].
	trace := columns([]stream.Time{100, 2, 1},
		existence.BoolVec{T, F},
		existence.BoolVec{T, T},
		existence.BoolVec{T, T},
	)
	r, err := existence.LargestRectangle(trace)
	require.NoError(t, err)
	assert.Equal(t, existence.Point{X: 0, Y: 0}, r.From)
	assert.Equal(t, existence.Point{X: 2, Y: 0}, r.To)
	assert.Equal(t, stream.Time(99), r.Area())

	box, err := existence.LargestBox(trace, []stream.Node{0, 1})
	require.NoError(t, err)
	assert.Equal(t, existence.Box{Start: 1, Stop: 100, Nodes: []stream.Node{0}}, box)
	assert.Equal(t, stream.Time(99), box.Area())

	// Same instants read oldest first.
	r, err = existence.LargestRectangle(columns([]stream.Time{1, 2, 100},
		existence.BoolVec{T, T},
		existence.BoolVec{T, T},
		existence.BoolVec{T, F},
	))
	require.NoError(t, err)
	assert.Equal(t, stream.Time(99), r.Area())
	assert.Equal(t, 1, r.Height())
}

func TestLargestRectangle_ZeroSpanRanksByCells(t *testing.T) {
	r, err := existence.LargestRectangle(columns([]stream.Time{4},
		existence.BoolVec{F, T, T},
	))
	require.NoError(t, err)
	assert.False(t, r.Empty())
	assert.Zero(t, r.Area())
	assert.Equal(t, existence.Point{X: 0, Y: 1}, r.From)
	assert.Equal(t, existence.Point{X: 0, Y: 2}, r.To)
}

func TestLargestRectangle_FirstMaximumWins(t *testing.T) {
	r, err := existence.LargestRectangle(columns([]stream.Time{3, 2, 1},
		existence.BoolVec{T, T},
		existence.BoolVec{F, F},
		existence.BoolVec{T, T},
	))
	require.NoError(t, err)
	assert.Equal(t, existence.Point{X: 0, Y: 0}, r.From)
	assert.Equal(t, existence.Point{X: 0, Y: 1}, r.To)
}

func TestLargestRectangle_FullAndEmpty(t *testing.T) {
	r, err := existence.LargestRectangle(columns([]stream.Time{2, 1},
		existence.BoolVec{T, T, T},
		existence.BoolVec{T, T, T},
	))
	require.NoError(t, err)
	assert.Equal(t, 2, r.Width())
	assert.Equal(t, 3, r.Height())

	r, err = existence.LargestRectangle(columns([]stream.Time{2, 1},
		existence.BoolVec{F, F},
		existence.BoolVec{F, F},
	))
	require.NoError(t, err)
	assert.True(t, r.Empty())
	assert.Zero(t, r.Area())
}

func TestLargestRectangle_Errors(t *testing.T) {
	_, err := existence.LargestRectangle(nil)
	assert.ErrorIs(t, err, existence.ErrEmptyTrace)

	_, err = existence.LargestRectangle(columns([]stream.Time{2, 1},
		existence.BoolVec{T},
		existence.BoolVec{T, T},
	))
	assert.ErrorIs(t, err, existence.ErrLengthMismatch)
}

func TestLargestBox(t *testing.T) {
	box, err := existence.LargestBox(staircase, []stream.Node{5, 6, 7})
	require.NoError(t, err)
	assert.Equal(t, existence.Box{Start: 4, Stop: 7, Nodes: []stream.Node{5, 6}}, box)
	assert.Equal(t, stream.Time(3), box.Span())
	assert.Equal(t, stream.Time(6), box.Area())

	_, err = existence.LargestBox(staircase, []stream.Node{5})
	assert.ErrorIs(t, err, existence.ErrLengthMismatch)

	box, err = existence.LargestBox(columns([]stream.Time{1}, existence.BoolVec{F}), []stream.Node{0})
	require.NoError(t, err)
	assert.Equal(t, existence.Box{}, box)
}
