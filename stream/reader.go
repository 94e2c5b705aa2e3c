package stream

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Reader parses one link per line from an io.Reader.
// A line holds at least three whitespace-separated unsigned integers
// "node1 node2 time"; extra fields are ignored and blank lines are skipped.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

// NewReader returns a Source reading "n1 n2 t" lines from r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return &Reader{sc: sc}
}

// Next returns the next parsed link, io.EOF at the end of input, or an error
// wrapping ErrMalformedLine with the 1-based line number.
func (r *Reader) Next() (Link, error) {
	for r.sc.Scan() {
		r.line++
		text := strings.TrimSpace(r.sc.Text())
		if text == "" {
			continue
		}
		l, err := ParseLine(text)
		if err != nil {
			return Link{}, fmt.Errorf("line %d: %w", r.line, err)
		}

		return l, nil
	}
	if err := r.sc.Err(); err != nil {
		return Link{}, err
	}

	return Link{}, io.EOF
}

// ParseLine converts "node1 node2 time" into a Link.
func ParseLine(line string) (Link, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Link{}, fmt.Errorf("%q has %d fields: %w", line, len(fields), ErrMalformedLine)
	}
	n1, err := strconv.ParseUint(fields[0], 10, 31)
	if err != nil {
		return Link{}, fmt.Errorf("node1 %q: %w", fields[0], ErrMalformedLine)
	}
	n2, err := strconv.ParseUint(fields[1], 10, 31)
	if err != nil {
		return Link{}, fmt.Errorf("node2 %q: %w", fields[1], ErrMalformedLine)
	}
	t, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return Link{}, fmt.Errorf("time %q: %w", fields[2], ErrMalformedLine)
	}

	return Link{Node1: Node(n1), Node2: Node(n2), Time: t}, nil
}
