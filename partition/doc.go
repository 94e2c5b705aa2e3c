// Package partition splits a node subset of a Δ-reachability graph into
// Δ-components (sub-cliques) and residues (strongly connected blocks that are
// not cliques), and chains that split over the existence intervals of a
// stream.
//
// What:
//
//   - Partition works off an explicit stack of pending subsets. A subset that
//     is a clique of the graph becomes a component; otherwise its strongly
//     connected components are pushed back. A block that does not decompose is
//     kept as a residue under Upper, or split by peeling off its node of
//     highest induced out-degree under Lower.
//   - Components builds the graph from a stream restricted by a time
//     predicate, then partitions a subset with identity order.
//   - DeltaPartition runs Components once per existence interval, each on a
//     fresh pass of the stream.
//
// Every node of the subset ends in exactly one of Result.Components,
// Result.Residues or Result.Isolated.
//
// Errors:
//
//   - ErrUnknownPolicy    policy is neither Lower nor Upper.
//   - ErrSubsetNode       a subset node is out of range or repeated.
//   - dfs / reach / existence errors are wrapped and passed through.
package partition
