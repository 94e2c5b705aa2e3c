package stream

import "io"

// Source produces links one at a time. Next returns io.EOF once the stream
// is exhausted; any other error aborts the pass. A Source is consumed exactly
// once.
type Source interface {
	Next() (Link, error)
}

// Opener returns a fresh, independent pass over the same records. Algorithms
// that need more than one full pass take an Opener instead of a Source.
type Opener func() (Source, error)

// SourceFunc adapts a plain function to Source.
type SourceFunc func() (Link, error)

// Next calls f.
func (f SourceFunc) Next() (Link, error) { return f() }

// sliceSource walks a materialized slice forward or backward.
type sliceSource struct {
	links []Link
	pos   int
	step  int
}

// FromSlice returns a Source yielding links in slice order.
// The slice is not copied; do not mutate it while the source is in use.
func FromSlice(links []Link) Source {
	return &sliceSource{links: links, pos: 0, step: 1}
}

// Reverse returns a Source yielding links from the last element to the first.
// Use it to replay a chronologically sorted slice newest first.
func Reverse(links []Link) Source {
	return &sliceSource{links: links, pos: len(links) - 1, step: -1}
}

func (s *sliceSource) Next() (Link, error) {
	if s.pos < 0 || s.pos >= len(s.links) {
		return Link{}, io.EOF
	}
	l := s.links[s.pos]
	s.pos += s.step

	return l, nil
}

// Replay returns an Opener handing out independent forward passes over links.
func Replay(links []Link) Opener {
	return func() (Source, error) {
		return FromSlice(links), nil
	}
}

// Collect drains src into a slice. It is the way to materialize a stream once
// when more than one pass is required.
func Collect(src Source) ([]Link, error) {
	var out []Link
	for {
		l, err := src.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, l)
	}
}

// ForEach calls fn for every link of src until io.EOF, the first source error,
// or the first error returned by fn.
func ForEach(src Source, fn func(Link) error) error {
	for {
		l, err := src.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err = fn(l); err != nil {
			return err
		}
	}
}
