package dfs_test

import (
	"testing"

	"github.com/katalvlaran/linkstream/dfs"
)

// ring is an n-node cycle 0→1→…→n-1→0 without materialized storage.
type ring int

func (r ring) Size() int                 { return int(r) }
func (r ring) HasEdge(from, to int) bool { return (from+1)%int(r) == to }

// BenchmarkStronglyConnected_Ring1000 measures both Kosaraju passes on a
// single 1000-node cycle, where every scan is a full row.
func BenchmarkStronglyConnected_Ring1000(b *testing.B) {
	g := ring(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.StronglyConnected(g, nil, nil)
	}
}

func BenchmarkPreorder_Ring1000(b *testing.B) {
	g := ring(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Preorder(g, nil, nil)
	}
}
