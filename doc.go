// Package atomlist is a thread-safe, mutable, ordered sequence built on
// a single atomically-swapped immutable snapshot — a lock-free
// copy-on-write list.
//
// 🚀 What is atomlist?
//
//	A generic, zero-lock container that brings together:
//		• One immutable snapshot behind an atomic pointer (cell.Cell)
//		• Non-blocking reads: every query binds to exactly one snapshot
//		• Optimistic writes: draft → mutate → commit → compare-and-swap,
//		  retried against the newest snapshot when a concurrent writer wins
//		• A full sequence contract: positional access, membership,
//		  insertion, deletion, conditional removal, stable sort,
//		  element-wise transform, iteration and bounded-parallel traversal
//		• Read-only projections: sub-range views and bidirectional cursors
//		  pinned to a point-in-time snapshot
//
// ✨ Why choose atomlist?
//
//   - No locks, no blocking — readers never wait on writers, writers never
//     wait on readers; contention costs retries, not suspension
//   - Linearizable mutations — every successful write is a single point in
//     the total order of published snapshots
//   - No torn reads — everything reachable from a snapshot is immutable,
//     so a reader can never observe a half-applied mutation
//   - Pluggable copy policy — the draft-generation strategy is injected at
//     construction (full copy by default, spare-capacity variant included)
//   - Pure Go — no cgo, the only concurrency primitive is sync/atomic
//
// Under the hood, two small parts collaborate:
//
//	cell/ — generic snapshot cell: Load plus CAS-retry Update
//	.     — the List facade routing every mutation through cell.Update
//
// Quick example:
//
//	l, _ := atomlist.New(atomlist.WithInitial([]int{3, 1, 2}))
//	l.Append(4)                                     // [3 1 2 4]
//	_ = l.Sort(func(a, b int) int { return a - b }) // [1 2 3 4]
//	prev, _ := l.Set(0, 9)                          // prev == 1
//
// Consistency note: a read observes the single snapshot current at its
// call; two consecutive reads may straddle a concurrent commit. Views and
// cursors stay pinned to the snapshot they were created from and reject
// structural modification with ErrReadOnlyView — the facade's top-level
// operations are the only mutation path.
package atomlist
