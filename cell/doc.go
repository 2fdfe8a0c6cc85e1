// Package cell provides a generic, lock-free snapshot cell: a single
// atomically-swapped reference to an immutable value of type S.
//
// A Cell holds exactly one published snapshot at a time. Readers call
// Load and get whatever snapshot is currently visible; writers call
// Update with a pure function S → S that derives the next snapshot from
// the current one. Update runs an optimistic compare-and-swap retry
// loop: if a concurrent writer swapped a newer snapshot in first, the
// function is re-applied to the fresh value and the swap is retried.
//
// Guarantees:
//
//   - The cell never holds a nil or partially-built snapshot; every
//     value ever returned by Load is a complete snapshot that some
//     writer fully constructed before publication.
//   - The sequence of published snapshots forms a total order; each
//     successful Update is linearized at the instant its swap succeeds.
//   - No operation blocks and no lock is ever taken. Under sustained
//     contention Update may retry indefinitely (livelock is possible,
//     starvation of any single writer is not bounded).
//   - If the update function returns an error, nothing is published:
//     the cell keeps the value it held before the attempt and the
//     error surfaces to the caller unchanged.
//
// The cell knows nothing about the shape of S. Immutability of
// published snapshots is the caller's contract: once a value is handed
// to New or returned from an update function it must never be mutated.
package cell
