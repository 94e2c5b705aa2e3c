// Package stream defines the link-stream vocabulary shared by every analysis
// package: nodes, times, links, record producers and the predicates that
// restrict them.
//
// What:
//
//   - Link is an undirected interaction (Node1, Node2) at an instant Time.
//   - Source is a single-pass producer of links; Next returns io.EOF at the end.
//   - NodeFilter and TimeFilter are plain predicates combined by Keep / Filter.
//   - Reader parses "n1 n2 t" lines, Renamer assigns dense ids, Uniform
//     generates synthetic streams, and the counters answer simple questions
//     (node/link totals, degrees, first/last appearance) in one pass.
//
// Time arithmetic:
//
//   - MaxTime is the sentinel for "never / unknown / infinite distance".
//   - SubSat and AddSat saturate instead of wrapping; every time difference in
//     the analysis packages goes through them.
//
// Scan convention:
//
//	The analysis packages expect a time-monotone stream replayed from the newest
//	record to the oldest one. Uniform emits links in that order, and Reverse
//	replays a materialized, chronologically sorted slice backwards.
//
// Errors:
//
//   - ErrMalformedLine: a line does not hold three unsigned integers.
//   - ErrNegativeSize:  a counter or generator was given a negative size.
//   - ErrNodeOutOfRange: a link references a node outside [0, size).
package stream
