package reach

import (
	"github.com/katalvlaran/linkstream/matrix"
	"github.com/katalvlaran/linkstream/stream"
)

// IsSubsetClique reports whether every ordered pair (x, y) of nodes kept by
// keep, x == y included, is an edge of g. A nil keep means every node.
// The empty subset is a clique.
func IsSubsetClique(g *Graph, keep stream.NodeFilter) bool {
	n := g.Size()
	for x := 0; x < n; x++ {
		if keep != nil && !keep(x) {
			continue
		}
		row := g.m.Row(x)
		for y := 0; y < n; y++ {
			if (keep == nil || keep(y)) && !row[y] {
				return false
			}
		}
	}

	return true
}

// IsClique reports whether g is complete, self-loops included.
func IsClique(g *Graph) bool {
	return IsSubsetClique(g, nil)
}

// IsSubsetDeltaClique reports whether dist[x][y] - ref <= delta for every
// ordered pair of kept nodes. The subtraction saturates, so entries earlier
// than ref count as 0 and MaxTime entries fail unless delta is huge.
func IsSubsetDeltaClique(dist *matrix.Square[stream.Time], ref, delta stream.Time, keep stream.NodeFilter) bool {
	n := dist.Size()
	for x := 0; x < n; x++ {
		if keep != nil && !keep(x) {
			continue
		}
		row := dist.Row(x)
		for y := 0; y < n; y++ {
			if (keep == nil || keep(y)) && stream.SubSat(row[y], ref) > delta {
				return false
			}
		}
	}

	return true
}
