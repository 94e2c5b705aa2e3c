package stream

import "github.com/tidwall/btree"

// Renamer decorates a Source so that nodes are renumbered densely, in order of
// first appearance, starting at 0. The original -> dense table is kept ordered
// by original id.
type Renamer struct {
	src   Source
	table btree.Map[Node, Node]
}

// NewRenamer wraps src.
func NewRenamer(src Source) *Renamer {
	return &Renamer{src: src}
}

// Next returns the next link with both endpoints renamed.
func (r *Renamer) Next() (Link, error) {
	l, err := r.src.Next()
	if err != nil {
		return Link{}, err
	}
	l.Node1 = r.rename(l.Node1)
	l.Node2 = r.rename(l.Node2)

	return l, nil
}

func (r *Renamer) rename(n Node) Node {
	if id, ok := r.table.Get(n); ok {
		return id
	}
	id := r.table.Len()
	r.table.Set(n, id)

	return id
}

// Count returns the number of distinct nodes seen so far, which is also the
// size to use for the renamed stream.
func (r *Renamer) Count() int {
	return r.table.Len()
}

// Mapping returns the (original, dense) pairs seen so far, sorted by original id.
func (r *Renamer) Mapping() [][2]Node {
	out := make([][2]Node, 0, r.table.Len())
	r.table.Scan(func(orig, dense Node) bool {
		out = append(out, [2]Node{orig, dense})
		return true
	})

	return out
}
