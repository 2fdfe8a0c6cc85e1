// Package atomlist_test provides benchmarks for List operations. The
// copy-on-write design makes writes O(n), so sizes are fixed where the
// per-operation cost depends on the current length.
package atomlist_test

import (
	"testing"

	"github.com/katalvlaran/atomlist"
)

// BenchmarkList_Append measures uncontended append cost (full copy per
// commit, so cost grows with list length).
func BenchmarkList_Append(b *testing.B) {
	l, _ := atomlist.New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Append(i)
	}
}

// BenchmarkList_Get measures snapshot-pinned positional reads.
func BenchmarkList_Get(b *testing.B) {
	elems := make([]int, 1024)
	for i := range elems {
		elems[i] = i
	}
	l, _ := atomlist.New(atomlist.WithInitial(elems))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = l.Get(i % 1024)
	}
}

// BenchmarkList_Contains measures a linear membership scan over a
// fixed-size snapshot.
func BenchmarkList_Contains(b *testing.B) {
	elems := make([]int, 1024)
	for i := range elems {
		elems[i] = i
	}
	l, _ := atomlist.New(atomlist.WithInitial(elems))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Contains(i % 2048) // half hits, half misses
	}
}

// BenchmarkList_AppendParallel measures the retry loop under write
// contention from all available procs.
func BenchmarkList_AppendParallel(b *testing.B) {
	l, _ := atomlist.New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Append(1)
		}
	})
}

// BenchmarkList_SpareDraftAppend compares the spare-capacity draft
// strategy against the default exact-copy strategy (see
// BenchmarkList_Append).
func BenchmarkList_SpareDraftAppend(b *testing.B) {
	l, _ := atomlist.New(atomlist.WithDraftFunc(atomlist.SpareDraft[int](8)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Append(i)
	}
}
