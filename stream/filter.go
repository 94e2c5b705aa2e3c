package stream

// NodeFilter reports whether a node takes part in an analysis.
type NodeFilter func(Node) bool

// TimeFilter reports whether an instant takes part in an analysis.
type TimeFilter func(Time) bool

// AllNodes keeps every node.
func AllNodes() NodeFilter { return func(Node) bool { return true } }

// AllTimes keeps every instant.
func AllTimes() TimeFilter { return func(Time) bool { return true } }

// NodeSet keeps exactly the listed nodes.
func NodeSet(nodes ...Node) NodeFilter {
	set := make(map[Node]struct{}, len(nodes))
	for _, n := range nodes {
		set[n] = struct{}{}
	}

	return func(n Node) bool {
		_, ok := set[n]
		return ok
	}
}

// NodeMask keeps node n when mask[n] is true. Nodes outside the mask are dropped.
func NodeMask(mask []bool) NodeFilter {
	return func(n Node) bool {
		return n >= 0 && n < len(mask) && mask[n]
	}
}

// TimeRange keeps instants in the half-open range [start, stop).
func TimeRange(start, stop Time) TimeFilter {
	return func(t Time) bool { return t >= start && t < stop }
}

// TimeWindow keeps instants in the closed range [start, stop].
func TimeWindow(start, stop Time) TimeFilter {
	return func(t Time) bool { return t >= start && t <= stop }
}

// AndNodes keeps a node only when every filter keeps it.
func AndNodes(filters ...NodeFilter) NodeFilter {
	return func(n Node) bool {
		for _, f := range filters {
			if !f(n) {
				return false
			}
		}
		return true
	}
}

// AndTimes keeps an instant only when every filter keeps it.
func AndTimes(filters ...TimeFilter) TimeFilter {
	return func(t Time) bool {
		for _, f := range filters {
			if !f(t) {
				return false
			}
		}
		return true
	}
}

// Keep reports whether l survives nf and tf: both endpoints must pass the node
// filter and the instant must pass the time filter. Nil filters keep everything.
func Keep(l Link, nf NodeFilter, tf TimeFilter) bool {
	if nf != nil && (!nf(l.Node1) || !nf(l.Node2)) {
		return false
	}

	return tf == nil || tf(l.Time)
}

// Mask expands a node list into a membership vector of length size.
// Nodes outside [0, size) are ignored.
func Mask(nodes []Node, size int) []bool {
	mask := make([]bool, size)
	for _, n := range nodes {
		if n >= 0 && n < size {
			mask[n] = true
		}
	}

	return mask
}

// filtered drops links rejected by its filters.
type filtered struct {
	src Source
	nf  NodeFilter
	tf  TimeFilter
}

// Filter decorates src so that only links passing Keep(l, nf, tf) are produced.
func Filter(src Source, nf NodeFilter, tf TimeFilter) Source {
	return &filtered{src: src, nf: nf, tf: tf}
}

func (f *filtered) Next() (Link, error) {
	for {
		l, err := f.src.Next()
		if err != nil {
			return Link{}, err
		}
		if Keep(l, f.nf, f.tf) {
			return l, nil
		}
	}
}
