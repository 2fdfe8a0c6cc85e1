// Package atomlist: snapshot-bound sub-range views.
//
// A View is a read-only projection of a point-in-time snapshot: it is
// pinned at creation and never tracks later commits to the parent list.
// Structural modification through a view is rejected with
// ErrReadOnlyView; the sanctioned mutation path is the List itself.

package atomlist

import (
	"iter"
	"slices"
)

// View is a read-only window [from, to) over one published snapshot.
// It satisfies Projection and aliases the snapshot it was created from,
// which is safe because published snapshots are never mutated.
type View[E comparable] struct {
	elems []E // window into the pinned snapshot
}

// Slice returns a view of the half-open range [from, to) of the
// snapshot current at the call. Endpoints outside [0, Len()] or
// from > to yield ErrInvalidRange. Complexity: O(1).
func (l *List[E]) Slice(from, to int) (*View[E], error) {
	snapshot := l.snapshot()
	if from < 0 || to > len(snapshot) || from > to {
		return nil, ErrInvalidRange
	}

	return &View[E]{elems: snapshot[from:to]}, nil
}

// Len returns the number of elements in the view. Complexity: O(1).
func (v *View[E]) Len() int { return len(v.elems) }

// IsEmpty reports whether the view holds no elements. Complexity: O(1).
func (v *View[E]) IsEmpty() bool { return len(v.elems) == 0 }

// Get returns the element at view-relative index i, or
// ErrIndexOutOfRange. Complexity: O(1).
func (v *View[E]) Get(i int) (E, error) {
	if i < 0 || i >= len(v.elems) {
		var zero E
		return zero, ErrIndexOutOfRange
	}

	return v.elems[i], nil
}

// Contains reports whether val is present in the view. Complexity: O(n).
func (v *View[E]) Contains(val E) bool {
	return slices.Contains(v.elems, val)
}

// ContainsAll reports whether every value in vs is present in the view.
// Complexity: O(n*m).
func (v *View[E]) ContainsAll(vs ...E) bool {
	for _, val := range vs {
		if !slices.Contains(v.elems, val) {
			return false
		}
	}

	return true
}

// IndexOf returns the lowest view-relative index holding val, or -1.
// Complexity: O(n).
func (v *View[E]) IndexOf(val E) int {
	return slices.Index(v.elems, val)
}

// LastIndexOf returns the highest view-relative index holding val, or -1.
// Complexity: O(n).
func (v *View[E]) LastIndexOf(val E) int {
	for i := len(v.elems) - 1; i >= 0; i-- {
		if v.elems[i] == val {
			return i
		}
	}

	return -1
}

// ToSlice returns a fresh copy of the view's contents. Complexity: O(n).
func (v *View[E]) ToSlice() []E {
	out := make([]E, len(v.elems))
	copy(out, v.elems)

	return out
}

// All returns an index/element iterator over the pinned window.
func (v *View[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, e := range v.elems {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Values returns an element iterator over the pinned window.
func (v *View[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range v.elems {
			if !yield(e) {
				return
			}
		}
	}
}

// Insert rejects structural modification through the view with
// ErrReadOnlyView; the underlying list is never touched.
func (v *View[E]) Insert(int, E) error {
	return ErrReadOnlyView
}

// RemoveAt rejects structural modification through the view with
// ErrReadOnlyView; the underlying list is never touched.
func (v *View[E]) RemoveAt(int) (E, error) {
	var zero E
	return zero, ErrReadOnlyView
}

// Set rejects in-place replacement through the view with
// ErrReadOnlyView; the underlying list is never touched.
func (v *View[E]) Set(int, E) (E, error) {
	var zero E
	return zero, ErrReadOnlyView
}
