package reach

import (
	"fmt"

	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/linkstream/matrix"
	"github.com/katalvlaran/linkstream/stream"
)

// Graph is the Δ-reachability relation: HasEdge(i, j) means i could reach j
// within Δ at every refreshed instant so far. It starts all-true and entries
// are only ever cleared, never set back.
type Graph struct {
	m *matrix.Square[bool]
}

// NewGraph returns a size×size all-true relation.
func NewGraph(size int) (*Graph, error) {
	m, err := matrix.NewSquare(size, true)
	if err != nil {
		return nil, fmt.Errorf("NewGraph(%d): %w", size, err)
	}

	return &Graph{m: m}, nil
}

// FromRows builds a Graph from a 0/1 literal; any non-zero cell is an edge.
func FromRows(rows [][]int) (*Graph, error) {
	bools := make([][]bool, len(rows))
	for i, row := range rows {
		bools[i] = make([]bool, len(row))
		for j, v := range row {
			bools[i][j] = v != 0
		}
	}
	m, err := matrix.FromRows(bools)
	if err != nil {
		return nil, err
	}

	return &Graph{m: m}, nil
}

// Size returns the number of nodes.
func (g *Graph) Size() int { return g.m.Size() }

// HasEdge reports whether from reaches to. Out-of-range nodes have no edges.
func (g *Graph) HasEdge(from, to int) bool {
	ok, err := g.m.At(from, to)
	return err == nil && ok
}

// Clear removes the edge (from, to). It is the only mutation a Graph accepts.
func (g *Graph) Clear(from, to int) error {
	return g.m.Set(from, to, false)
}

// Refresh clears every edge (i, j) with dist[i][j] - ref > delta, the
// subtraction saturating at 0. Entries already cleared stay cleared.
// It returns how many edges were cleared by this call.
//
// Errors:
//   - matrix.ErrNilMatrix when dist is nil.
//   - matrix.ErrDimensionMismatch when dist is not Size()×Size().
func (g *Graph) Refresh(dist *matrix.Square[stream.Time], ref, delta stream.Time) (int, error) {
	if dist == nil {
		return 0, fmt.Errorf("Graph.Refresh: %w", matrix.ErrNilMatrix)
	}
	if dist.Size() != g.Size() {
		return 0, fmt.Errorf("Graph.Refresh: graph %d, distances %d: %w", g.Size(), dist.Size(), matrix.ErrDimensionMismatch)
	}
	cleared := 0
	for i := 0; i < g.Size(); i++ {
		reach, d := g.m.Row(i), dist.Row(i)
		for j := range reach {
			if reach[j] && stream.SubSat(d[j], ref) > delta {
				reach[j] = false
				cleared++
			}
		}
	}

	return cleared, nil
}

// Successors returns the nodes j with an edge from i, ascending.
func (g *Graph) Successors(i int) []int {
	if i < 0 || i >= g.Size() {
		return nil
	}
	var out []int
	for j, ok := range g.m.Row(i) {
		if ok {
			out = append(out, j)
		}
	}

	return out
}

// Predecessors returns the nodes i with an edge to j, ascending.
func (g *Graph) Predecessors(j int) []int {
	if j < 0 || j >= g.Size() {
		return nil
	}
	var out []int
	for i := 0; i < g.Size(); i++ {
		if g.m.Row(i)[j] {
			out = append(out, i)
		}
	}

	return out
}

// Edges counts the edges, self-loops included.
func (g *Graph) Edges() int {
	n := 0
	for i := 0; i < g.Size(); i++ {
		for _, ok := range g.m.Row(i) {
			if ok {
				n++
			}
		}
	}

	return n
}

// Matrix returns a copy of the relation.
func (g *Graph) Matrix() *matrix.Square[bool] { return g.m.Clone() }

// Directed exports the relation as a gonum directed graph with node ids
// 0..Size()-1, so that gonum's graph algorithms can run on it. Self-loops are
// dropped since simple.DirectedGraph does not hold them.
func (g *Graph) Directed() *simple.DirectedGraph {
	dg := simple.NewDirectedGraph()
	for i := 0; i < g.Size(); i++ {
		dg.AddNode(simple.Node(i))
	}
	for i := 0; i < g.Size(); i++ {
		for j, ok := range g.m.Row(i) {
			if ok && i != j {
				dg.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
			}
		}
	}

	return dg
}

// DOT renders the relation in Graphviz format under the graph id name, one
// statement per node and per edge, self-loops omitted.
func (g *Graph) DOT(name string) ([]byte, error) {
	b, err := dot.Marshal(g.Directed(), name, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("Graph.DOT: %w", err)
	}

	return b, nil
}
