// Package cell: the atomic snapshot cell.
//
// This file declares Cell, its constructor, and the Load/Update pair
// that every higher-level structure builds on. Concurrency model and
// guarantees are documented in doc.go.

package cell

import "sync/atomic"

// Cell holds a single published snapshot of type S behind an atomic
// pointer. The zero value is not usable; construct with New so the
// never-nil invariant holds from the first Load onward.
type Cell[S any] struct {
	ref atomic.Pointer[S] // current snapshot; never nil after New
}

// New creates a Cell publishing initial as its first snapshot.
// The caller must not mutate initial after handing it over.
// Complexity: O(1).
func New[S any](initial S) *Cell[S] {
	c := &Cell[S]{}
	c.ref.Store(&initial)

	return c
}

// Load returns the currently published snapshot without blocking.
// Two consecutive Loads may observe different snapshots if a writer
// commits in between; each individual result is internally consistent.
// Complexity: O(1).
func (c *Cell[S]) Load() S {
	return *c.ref.Load()
}

// Update atomically replaces the held snapshot with f(current) and
// returns the snapshot that was actually committed.
//
// f must be side-effect-free with respect to its input: it derives a
// fresh snapshot and must not mutate the one it was given. Because a
// concurrent writer may win the swap, f can be invoked more than once,
// each time against the newest published snapshot; only the invocation
// whose result wins the swap becomes visible.
//
// If f returns an error the attempt is abandoned: the cell keeps its
// previous value, no retry happens for that error, and the error is
// returned with the zero S.
// Complexity: O(1) per attempt plus the cost of f; unbounded attempts
// under contention.
func (c *Cell[S]) Update(f func(current S) (S, error)) (S, error) {
	for {
		// Capture the current pointer; this is the CAS witness.
		cur := c.ref.Load()

		// Derive the candidate snapshot from the observed value.
		next, err := f(*cur)
		if err != nil {
			// Failed attempt: publish nothing, propagate as-is.
			var zero S
			return zero, err
		}

		// Publish only if no writer committed since our Load.
		if c.ref.CompareAndSwap(cur, &next) {
			return next, nil
		}
		// Lost the race: loop and re-derive from the newest snapshot.
	}
}
