// Package linkstream analyses link streams: sequences of timestamped
// interactions (u, v, t) between nodes, read newest first.
//
// Given a window Δ, node u Δ-reaches node v at instant t when a time-respecting
// path of links leaves u no earlier than t and reaches v within Δ of t. The
// subpackages build on that relation:
//
//	stream/     link records, the text reader, filters, renaming, generators and stream statistics
//	matrix/     dense square storage shared by the trackers
//	reach/      the Δ-distance tracker, the Δ-reachability graph and Δ-clique checks
//	dfs/        depth-first orders and Kosaraju strongly connected components over an adjacency
//	partition/  lower and upper Δ-component partitions, per subset or per existence interval
//	existence/  per-node existence traces, existence intervals and largest all-active rectangles
//
// The linkstream command (cmd/linkstream) exposes every analysis on stdin.
//
// Quick start:
//
//	src := stream.NewReader(os.Stdin)
//	samples, err := reach.Connectivity(src, nodes, delta)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, s := range samples {
//		fmt.Println(s.Time, s.Connected)
//	}
package linkstream
