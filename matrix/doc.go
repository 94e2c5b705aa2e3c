// Package matrix provides the dense square storage used by the link-stream
// analyses.
//
// The matrix package provides:
//
//   - Square[T], an n×n row-major table with O(1) element access, O(n) row
//     views and O(n²) snapshot copies, generic over the cell type so that the
//     same code stores "last relevant time" tables (uint64) and reachability
//     relations (bool).
//   - Diagonal reset, bulk fill, deep copies and structural equality.
//
// Matrices are created once per analysis call, mutated only by the scan that
// owns them and discarded afterwards. They are not safe for concurrent use.
//
// Memory is O(n²); the scans built on top keep at most three of them alive.
package matrix
