// SPDX-License-Identifier: MIT

// Package matrix - Square storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//   - Offer a no-copy row view (Row) for hot loops that already validated indices.
//
// Complexity quicksheet:
//   - NewSquare: O(n²) fill; At/Set: O(1); Row: O(1); SetDiag: O(n); CopyFrom/Clone: O(n²).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxCopy = "CopyFrom"
)

// squareErrorf wraps a sentinel with the method tag and coordinates.
func squareErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Square.%s(%d,%d): %w", method, row, col, err)
}

// Square is an n×n row-major matrix of T.
//   - n is the dimension (rows == cols == n).
//   - data is a flat buffer of length n*n (offset = i*n + j).
type Square[T any] struct {
	n    int
	data []T
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Square[int])(nil)

// NewSquare creates an n×n matrix with every cell set to fill.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate n > 0; else ErrInvalidDimensions.
//   - Stage 2: allocate the flat buffer and fill it row by row.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewSquare[T any](n int, fill T) (*Square[T], error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	m := &Square[T]{n: n, data: make([]T, n*n)}
	m.Fill(fill)

	return m, nil
}

// FromRows builds a Square from a literal. Every row must have len(rows) cells.
// The input is copied.
//
// Errors:
//   - ErrInvalidDimensions for an empty literal.
//   - ErrNonSquare when any row has the wrong length.
func FromRows[T any](rows [][]T) (*Square[T], error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}
	m := &Square[T]{n: n, data: make([]T, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d cells, want %d: %w", i, len(row), n, ErrNonSquare)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// Size returns n. Complexity: O(1).
func (m *Square[T]) Size() int { return m.n }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Square[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	return row*m.n + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Square[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, squareErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Square[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return squareErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns the live slice backing row i; writes through it mutate m.
// MAIN DESCRIPTION:
//   - Unchecked hot-path accessor for scans that validated i beforehand.
//
// Behavior highlights:
//   - i must be in [0, n); an invalid i panics like any slice index.
//   - The slice has length and capacity n, so appends cannot spill into row i+1.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Square[T]) Row(i int) []T {
	return m.data[i*m.n : (i+1)*m.n : (i+1)*m.n]
}

// Fill sets every cell to v. Complexity: O(n²).
func (m *Square[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// SetDiag sets every diagonal cell (i, i) to v. Complexity: O(n).
func (m *Square[T]) SetDiag(v T) {
	for i := 0; i < m.n; i++ {
		m.data[i*m.n+i] = v
	}
}

// CopyFrom overwrites m with the content of src.
// MAIN DESCRIPTION:
//   - Snapshot copy between two matrices of the same size; no reallocation.
//
// Errors:
//   - ErrNilMatrix when src is nil.
//   - ErrDimensionMismatch when sizes differ.
//
// Complexity:
//   - Time O(n²), Space O(1).
func (m *Square[T]) CopyFrom(src *Square[T]) error {
	if src == nil {
		return fmt.Errorf("Square.%s: %w", ctxCopy, ErrNilMatrix)
	}
	if src.n != m.n {
		return fmt.Errorf("Square.%s: %dx%d <- %dx%d: %w", ctxCopy, m.n, m.n, src.n, src.n, ErrDimensionMismatch)
	}
	copy(m.data, src.data)

	return nil
}

// Clone returns a deep copy of m.
func (m *Square[T]) Clone() *Square[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Square[T]{n: m.n, data: cp}
}

// Equal reports whether a and b have the same size and cells.
func Equal[T comparable](a, b *Square[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.n != b.n {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line, for diagnostics only.
func (m *Square[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteString("[")
		for j, v := range m.Row(i) {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprint(&sb, v)
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
