// Package reach implements the incremental Δ-reachability engine of a link
// stream: the distance-matrix tracker, the monotone reachability graph built
// from it, and the Δ-clique predicates queried while scanning.
//
// What:
//
//   - Tracker keeps two n×n "last relevant time" snapshots (current and the
//     copy taken when the tracked timestamp last changed) and relaxes them in
//     O(n) per link, one generation per distinct timestamp.
//   - Graph is a boolean relation that starts all-true and is only ever
//     cleared: Refresh drops (i, j) once i cannot reach j within Δ.
//   - IsSubsetClique / IsSubsetDeltaClique answer "is this subset fully and
//     currently connected?" on a graph or on a distance snapshot.
//   - Build and Connectivity drive a whole scan over a stream.Source.
//
// Scan convention:
//
//	Links must arrive time-monotone and newest first (non-increasing time).
//	A distance entry then reads as the earliest instant at which a temporal
//	path leaving the row node at the tracked time reaches the column node.
//	MaxTime means "not reachable (yet)" and never wins a min.
//
// Complexity:
//
//   - Tracker.Update: O(n) time; memory O(n²) for the two snapshots.
//   - Graph.Refresh:  O(n²) per generation.
//   - Build / Connectivity: O(L·n + G·n²) for L links and G generations.
//
// Options:
//
//   - WithNodeFilter(f)  restricts links (both endpoints) and the clique subset.
//   - WithTimeFilter(f)  restricts links by instant.
//   - WithLogger(l)      debug logging per generation; discarded by default.
//
// Errors:
//
//   - stream.ErrNodeOutOfRange        a link endpoint is outside [0, size).
//   - matrix.ErrInvalidDimensions     size <= 0.
//   - matrix.ErrDimensionMismatch     Refresh got a matrix of another size.
//   - any error returned by the Source.
package reach
