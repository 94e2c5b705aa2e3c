// Package dfs implements depth-first traversals and strongly connected
// components over a dense, index-addressed directed graph.
//
// What:
//
//   - Preorder: stack-based traversal that pushes every successor of a node in
//     ascending id order and pops LIFO, so the largest successor is explored
//     first. Roots are taken from a caller-supplied permutation.
//   - FinishOrder: post-order (finishing) sequence of the same traversal,
//     computed with explicit frames instead of recursion.
//   - StronglyConnected: Kosaraju's two-pass algorithm. The first pass yields
//     the finishing order, the second walks predecessor edges from the latest
//     finished node, each root producing one component.
//
// Every function takes an optional node mask: nodes with keep[i] == false are
// neither used as roots nor entered, which restricts the traversal to the
// subgraph induced by the kept nodes.
//
// Key Types & Constants:
//
//   - Adjacency: Size() and HasEdge(from, to), satisfied by reach.Graph.
//   - VertexState: White, Gray, Black (visitation markers).
//   - Option / Options: context for cancellation.
//
// Complexity:
//
//   - Preorder, FinishOrder: Time O(V²) on a dense relation, Memory O(V).
//   - StronglyConnected:     Time O(V²), Memory O(V).
//
// Errors:
//
//   - ErrGraphNil             graph is nil
//   - ErrOrderNotPermutation  order is not a permutation of 0..Size()-1
//   - ErrMaskSize             keep has a length other than Size()
//   - context.Canceled        traversal canceled via context
package dfs
