package stream

// CountNodesAndLinks returns the number of distinct nodes and the number of
// links in src.
func CountNodesAndLinks(src Source) (nodes, links int, err error) {
	seen := make(map[Node]struct{})
	err = ForEach(src, func(l Link) error {
		links++
		seen[l.Node1] = struct{}{}
		seen[l.Node2] = struct{}{}
		return nil
	})

	return len(seen), links, err
}

// Degrees returns, for each node of [0, size), the number of distinct
// neighbours it interacts with in src.
func Degrees(src Source, size int) ([]int, error) {
	if size < 0 {
		return nil, ErrNegativeSize
	}
	deg := make([]int, size)
	pairs := make(map[[2]Node]struct{})
	err := ForEach(src, func(l Link) error {
		if err := CheckNode(l, size); err != nil {
			return err
		}
		a, b := l.Node1, l.Node2
		if a > b {
			a, b = b, a
		}
		if _, dup := pairs[[2]Node{a, b}]; dup {
			return nil
		}
		pairs[[2]Node{a, b}] = struct{}{}
		deg[a]++
		if a != b {
			deg[b]++
		}
		return nil
	})

	return deg, err
}

// Appearance holds the first and last instants at which a node was seen, in
// stream order. Seen is false for nodes that never appear.
type Appearance struct {
	First Time
	Last  Time
	Seen  bool
}

// FirstAndLast returns the first and last appearance of each node of [0, size).
func FirstAndLast(src Source, size int) ([]Appearance, error) {
	if size < 0 {
		return nil, ErrNegativeSize
	}
	out := make([]Appearance, size)
	touch := func(n Node, t Time) {
		if !out[n].Seen {
			out[n] = Appearance{First: t, Last: t, Seen: true}
			return
		}
		out[n].Last = t
	}
	err := ForEach(src, func(l Link) error {
		if err := CheckNode(l, size); err != nil {
			return err
		}
		touch(l.Node1, l.Time)
		touch(l.Node2, l.Time)
		return nil
	})

	return out, err
}
