package dfs

import (
	"fmt"
)

// walker holds the validated inputs shared by every traversal.
type walker struct {
	g     Adjacency
	order []int
	keep  []bool
	opts  Options
}

// newWalker validates g, order and keep. A nil order means identity, a nil
// keep means every node.
func newWalker(method string, g Adjacency, order []int, keep []bool, opts []Option) (*walker, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrGraphNil)
	}
	n := g.Size()

	if order == nil {
		order = make([]int, n)
		for i := range order {
			order[i] = i
		}
	}
	if len(order) != n {
		return nil, fmt.Errorf("%s: order has %d entries for %d nodes: %w", method, len(order), n, ErrOrderNotPermutation)
	}
	seen := make([]bool, n)
	for _, v := range order {
		if v < 0 || v >= n || seen[v] {
			return nil, fmt.Errorf("%s: bad entry %d: %w", method, v, ErrOrderNotPermutation)
		}
		seen[v] = true
	}

	if keep == nil {
		keep = make([]bool, n)
		for i := range keep {
			keep[i] = true
		}
	}
	if len(keep) != n {
		return nil, fmt.Errorf("%s: mask has %d entries for %d nodes: %w", method, len(keep), n, ErrMaskSize)
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &walker{g: g, order: order, keep: keep, opts: o}, nil
}

// canceled reports the context error, if any.
func (w *walker) canceled() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
		return nil
	}
}

// Preorder returns the nodes in the order they are first visited.
//
// Roots are taken from order; from each unvisited kept root a stack is seeded,
// then every popped unvisited node is emitted and all its unvisited kept
// successors are pushed in ascending id order. The stack is popped LIFO.
//
// Complexity: O(V²) time, O(V²) worst-case stack, O(V) extra state.
func Preorder(g Adjacency, order []int, keep []bool, opts ...Option) ([]int, error) {
	w, err := newWalker("Preorder", g, order, keep, opts)
	if err != nil {
		return nil, err
	}
	n := g.Size()
	state := make([]VertexState, n)
	out := make([]int, 0, n)
	stack := make([]int, 0, n)

	for _, root := range w.order {
		if !w.keep[root] || state[root] != White {
			continue
		}
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if state[v] != White {
				continue
			}
			if err = w.canceled(); err != nil {
				return out, err
			}
			state[v] = Black
			out = append(out, v)
			for u := 0; u < n; u++ {
				if w.keep[u] && state[u] == White && g.HasEdge(v, u) {
					stack = append(stack, u)
				}
			}
		}
	}

	return out, nil
}

// frame is one pending node of the iterative post-order: next is the
// successor index to try after the ones already scanned.
type frame struct {
	v, next int
}

// FinishOrder returns the kept nodes in the order their exploration finishes.
// Successors are entered in descending id order, which is the order Preorder's
// LIFO stack explores them.
func FinishOrder(g Adjacency, order []int, keep []bool, opts ...Option) ([]int, error) {
	w, err := newWalker("FinishOrder", g, order, keep, opts)
	if err != nil {
		return nil, err
	}

	return w.finishOrder()
}

func (w *walker) finishOrder() ([]int, error) {
	n := w.g.Size()
	state := make([]VertexState, n)
	out := make([]int, 0, n)
	frames := make([]frame, 0, n)

	for _, root := range w.order {
		if !w.keep[root] || state[root] != White {
			continue
		}
		state[root] = Gray
		frames = append(frames, frame{v: root, next: n - 1})
		for len(frames) > 0 {
			top := &frames[len(frames)-1]
			entered := false
			for ; top.next >= 0; top.next-- {
				u := top.next
				if w.keep[u] && state[u] == White && w.g.HasEdge(top.v, u) {
					top.next--
					if err := w.canceled(); err != nil {
						return out, err
					}
					state[u] = Gray
					frames = append(frames, frame{v: u, next: n - 1})
					entered = true
					break
				}
			}
			if entered {
				continue
			}
			state[top.v] = Black
			out = append(out, top.v)
			frames = frames[:len(frames)-1]
		}
	}

	return out, nil
}

// StronglyConnected returns the strongly connected components of the
// subgraph induced by keep, using Kosaraju's algorithm.
//
// The second pass takes roots from the reversed finishing order and collects
// unassigned kept predecessors with an ascending-push LIFO stack; each
// component lists its nodes in discovery order. Components appear in the
// order their roots are taken.
func StronglyConnected(g Adjacency, order []int, keep []bool, opts ...Option) ([][]int, error) {
	w, err := newWalker("StronglyConnected", g, order, keep, opts)
	if err != nil {
		return nil, err
	}
	finish, err := w.finishOrder()
	if err != nil {
		return nil, fmt.Errorf("StronglyConnected: %w", err)
	}

	n := g.Size()
	assigned := make([]bool, n)
	var comps [][]int
	stack := make([]int, 0, n)
	for i := len(finish) - 1; i >= 0; i-- {
		root := finish[i]
		if assigned[root] {
			continue
		}
		assigned[root] = true
		stack = append(stack[:0], root)
		var comp []int
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, v)
			for u := 0; u < n; u++ {
				if w.keep[u] && !assigned[u] && g.HasEdge(u, v) {
					assigned[u] = true
					stack = append(stack, u)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps, nil
}
