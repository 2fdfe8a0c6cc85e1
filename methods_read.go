// Package atomlist: read-path operations.
//
// Every query here performs exactly one snapshot load and derives its
// whole answer from that single snapshot. Two consecutive calls may
// observe different snapshots if a writer commits in between; no call
// ever observes a partially-applied mutation.

package atomlist

import (
	"iter"
	"slices"
)

// Len returns the number of elements. Complexity: O(1).
func (l *List[E]) Len() int {
	return len(l.snapshot())
}

// IsEmpty reports whether the list holds no elements. Complexity: O(1).
func (l *List[E]) IsEmpty() bool {
	return len(l.snapshot()) == 0
}

// Contains reports whether v is present. Complexity: O(n).
func (l *List[E]) Contains(v E) bool {
	return slices.Contains(l.snapshot(), v)
}

// ContainsAll reports whether every value in vs is present. All
// membership checks run against the same snapshot. Complexity: O(n*m).
func (l *List[E]) ContainsAll(vs ...E) bool {
	snapshot := l.snapshot() // one load for the whole batch
	for _, v := range vs {
		if !slices.Contains(snapshot, v) {
			return false
		}
	}

	return true
}

// Get returns the element at index i, or ErrIndexOutOfRange.
// Complexity: O(1).
func (l *List[E]) Get(i int) (E, error) {
	snapshot := l.snapshot()
	if i < 0 || i >= len(snapshot) {
		var zero E
		return zero, ErrIndexOutOfRange
	}

	return snapshot[i], nil
}

// IndexOf returns the lowest index holding v, or -1 if v is absent.
// Complexity: O(n).
func (l *List[E]) IndexOf(v E) int {
	return slices.Index(l.snapshot(), v)
}

// LastIndexOf returns the highest index holding v, or -1 if v is
// absent. Complexity: O(n).
func (l *List[E]) LastIndexOf(v E) int {
	snapshot := l.snapshot()
	// Scan from the tail so the first hit is the last occurrence.
	for i := len(snapshot) - 1; i >= 0; i-- {
		if snapshot[i] == v {
			return i
		}
	}

	return -1
}

// ToSlice returns a fresh copy of the current contents; mutating the
// result cannot affect the list. Complexity: O(n).
func (l *List[E]) ToSlice() []E {
	snapshot := l.snapshot()
	out := make([]E, len(snapshot))
	copy(out, snapshot)

	return out
}

// All returns an index/element iterator bound to the snapshot current
// at the call. Mutations committed while ranging are not reflected.
func (l *List[E]) All() iter.Seq2[int, E] {
	snapshot := l.snapshot() // pin the snapshot at call time, not at range time

	return func(yield func(int, E) bool) {
		for i, v := range snapshot {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an element iterator bound to the snapshot current at
// the call.
func (l *List[E]) Values() iter.Seq[E] {
	snapshot := l.snapshot()

	return func(yield func(E) bool) {
		for _, v := range snapshot {
			if !yield(v) {
				return
			}
		}
	}
}
