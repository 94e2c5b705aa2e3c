package reach_test

import (
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkstream/matrix"
	"github.com/katalvlaran/linkstream/reach"
	"github.com/katalvlaran/linkstream/stream"
)

const inf = stream.MaxTime

// timeRows builds a distance matrix literal for comparisons.
func timeRows(t *testing.T, rows [][]stream.Time) *matrix.Square[stream.Time] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

func TestNewTracker_InvalidSize(t *testing.T) {
	_, err := reach.NewTracker(0)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestTracker_FirstLinkInitializesDiagonal(t *testing.T) {
	tr, err := reach.NewTracker(3)
	require.NoError(t, err)
	assert.False(t, tr.Started())

	require.NoError(t, tr.Update(stream.Link{Node1: 0, Node2: 1, Time: 10}))
	assert.True(t, tr.Started())
	assert.Equal(t, stream.Time(10), tr.Time())
	assert.Equal(t, 1, tr.Generations())

	want := timeRows(t, [][]stream.Time{
		{10, 10, inf},
		{10, 10, inf},
		{inf, inf, 10},
	})
	assert.True(t, matrix.Equal(want, tr.Current()), tr.Current().String())
	// no generation change yet: previous is still the initial all-MaxTime table
	prev, _ := matrix.NewSquare(3, inf)
	assert.True(t, matrix.Equal(prev, tr.Previous()))
}

// Stream replayed newest first: 0-1 at 10, then 1-2 at 5.
// From 2 at instant 5 the path 2-1 (5) then 1-0 (10) reaches 0 at 10;
// from 0 nothing reaches 2 since 0-1 happens after 1-2.
func TestTracker_RelaxesThroughPreviousGeneration(t *testing.T) {
	tr, _ := reach.NewTracker(3)
	require.NoError(t, tr.Update(stream.Link{Node1: 0, Node2: 1, Time: 10}))
	gen10 := tr.Current().Clone()

	require.NoError(t, tr.Update(stream.Link{Node1: 1, Node2: 2, Time: 5}))
	assert.Equal(t, 2, tr.Generations())
	assert.True(t, matrix.Equal(gen10, tr.Previous()), "previous is the snapshot taken at the instant change")

	want := timeRows(t, [][]stream.Time{
		{5, 10, inf},
		{10, 5, 5},
		{10, 5, 5},
	})
	assert.True(t, matrix.Equal(want, tr.Current()), tr.Current().String())
}

func TestTracker_SameInstantIsOneGeneration(t *testing.T) {
	tr, _ := reach.NewTracker(3)
	require.NoError(t, tr.Update(stream.Link{Node1: 0, Node2: 1, Time: 7}))
	require.NoError(t, tr.Update(stream.Link{Node1: 1, Node2: 2, Time: 7}))
	assert.Equal(t, 1, tr.Generations())

	// Relaxation only reads the previous generation, so 0 and 2 stay apart.
	v, _ := tr.Current().At(0, 2)
	assert.Equal(t, inf, v)
	v, _ = tr.Current().At(2, 1)
	assert.Equal(t, stream.Time(7), v)
}

func TestTracker_NodeOutOfRange(t *testing.T) {
	tr, _ := reach.NewTracker(2)
	err := tr.Update(stream.Link{Node1: 0, Node2: 2, Time: 1})
	assert.ErrorIs(t, err, stream.ErrNodeOutOfRange)
	assert.False(t, tr.Started(), "rejected link leaves the tracker untouched")
}

// decodeLinks turns generated integers into a newest-first stream over 5 nodes.
func decodeLinks(xs []int) []stream.Link {
	links := make([]stream.Link, len(xs))
	for i, x := range xs {
		links[i] = stream.Link{Node1: x % 5, Node2: (x / 5) % 5, Time: stream.Time(x / 25)}
	}
	sort.SliceStable(links, func(i, j int) bool { return links[i].Time > links[j].Time })

	return links
}

func TestTracker_DirectContactBound(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("dist[x][y] <= t for every processed link (x, y, t)", prop.ForAll(
		func(xs []int) bool {
			links := decodeLinks(xs)
			tr, _ := reach.NewTracker(5)
			for k, l := range links {
				if tr.Update(l) != nil {
					return false
				}
				for _, seen := range links[:k+1] {
					a, _ := tr.Current().At(seen.Node1, seen.Node2)
					b, _ := tr.Current().At(seen.Node2, seen.Node1)
					if a > seen.Time || b > seen.Time {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 5*5*40-1)),
	))

	properties.TestingRun(t)
}
