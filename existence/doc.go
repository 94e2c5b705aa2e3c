// Package existence computes, for a link stream scanned newest first, which
// nodes are "existing" (touched within Δ) at every instant, and derives
// maximal constant-activity intervals and the largest all-active block from
// that trace.
//
// What:
//
//   - Compute: one Step per distinct instant, node n active iff it was last
//     touched less than Δ after that instant.
//   - FoldAt: OR of every step whose instant lies in [t-Δ, t+Δ], both bounds
//     saturating.
//   - Intervals: segmentation of the folded trace into contiguous intervals
//     with a constant active-node set.
//   - LargestRectangle / LargestBox: the largest all-true block of the raw
//     trace, columns being steps and rows being tracked nodes.
//
// Errors:
//
//   - ErrEmptyTrace       a segmentation or rectangle was asked of no steps.
//   - ErrLengthMismatch   two vectors (or a vector and the tracked set) differ in length.
package existence
