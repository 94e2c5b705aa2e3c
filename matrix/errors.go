// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Methods return these sentinels (wrapped with call-site context) and
// tests check them via errors.Is. No public method panics on user input;
// Row is the single unchecked accessor and documents its precondition.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for grep-ability. Wrap with
// fmt.Errorf("ctx: %w", ErrX) when context is essential; callers still match
// with errors.Is.

var (
	// ErrInvalidDimensions indicates that a requested dimension is not > 0.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands of different sizes, e.g. a
	// snapshot copy between an n×n and an m×m matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that rows of a literal do not form a square.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
