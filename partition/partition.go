package partition

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/katalvlaran/linkstream/dfs"
	"github.com/katalvlaran/linkstream/stream"
)

// Partition splits subset over g. order drives the traversals of the
// strongly-connected-components step; nil means identity.
//
// Subsets are processed from an explicit stack, so the output order follows
// the stack discipline and should be compared as a set of sets.
func Partition(g dfs.Adjacency, order []int, subset []stream.Node, policy Policy, opts ...Option) (Result, error) {
	if policy != Lower && policy != Upper {
		return Result{}, fmt.Errorf("Partition: %w", ErrUnknownPolicy)
	}
	if g == nil {
		return Result{}, fmt.Errorf("Partition: %w", dfs.ErrGraphNil)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := g.Size()
	seen := make([]bool, n)
	for _, v := range subset {
		if v < 0 || v >= n || seen[v] {
			return Result{}, fmt.Errorf("Partition: node %d: %w", v, ErrSubsetNode)
		}
		seen[v] = true
	}

	var res Result
	stack := [][]stream.Node{append([]stream.Node(nil), subset...)}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(s) == 0 {
			continue
		}

		if isClique(g, s) {
			o.Logger.Debug("partition: clique", slog.Int("size", len(s)))
			if policy == Lower && len(s) <= 1 {
				res.Isolated = append(res.Isolated, s...)
			} else {
				res.Components = append(res.Components, s)
			}
			continue
		}

		comps, err := dfs.StronglyConnected(g, order, mask(s, n), dfs.WithContext(o.Ctx))
		if err != nil {
			return res, fmt.Errorf("Partition: %w", err)
		}
		o.Logger.Debug("partition: split", slog.Int("size", len(s)), slog.Int("blocks", len(comps)))
		for _, c := range comps {
			switch {
			case len(c) < len(s):
				stack = append(stack, c)
			case len(c) == 1:
				// a lone node without a self-loop
				if policy == Lower {
					res.Isolated = append(res.Isolated, c...)
				} else {
					res.Residues = append(res.Residues, c)
				}
			case policy == Upper:
				res.Residues = append(res.Residues, c)
			default:
				p := pivot(g, c)
				rest := make([]stream.Node, 0, len(c)-1)
				for _, v := range c {
					if v != p {
						rest = append(rest, v)
					}
				}
				o.Logger.Debug("partition: peel", slog.Int("pivot", p), slog.Int("rest", len(rest)))
				stack = append(stack, []stream.Node{p}, rest)
			}
		}
	}

	return res, nil
}

// isClique reports whether every ordered pair of s, self-pairs included, is
// an edge of g.
func isClique(g dfs.Adjacency, s []stream.Node) bool {
	for _, x := range s {
		for _, y := range s {
			if !g.HasEdge(x, y) {
				return false
			}
		}
	}

	return true
}

// mask marks the nodes of s among n.
func mask(s []stream.Node, n int) []bool {
	m := make([]bool, n)
	for _, v := range s {
		m[v] = true
	}

	return m
}

// pivot returns the node of c with the most out-edges towards other nodes of
// c. Nodes are scanned by increasing id and only a strictly greater degree
// replaces the incumbent, so ties go to the smallest id.
func pivot(g dfs.Adjacency, c []stream.Node) stream.Node {
	ids := append([]stream.Node(nil), c...)
	sort.Ints(ids)

	best, bestDeg := ids[0], -1
	for _, i := range ids {
		deg := 0
		for _, j := range ids {
			if j != i && g.HasEdge(i, j) {
				deg++
			}
		}
		if deg > bestDeg {
			best, bestDeg = i, deg
		}
	}

	return best
}
