// Package atomlist: write-path operations.
//
// Every mutation below follows the single shape enforced by
// List.mutate: derive a draft from the attempt's snapshot, apply the
// change, capture any result for this attempt, commit. Because an
// attempt can be preempted and re-run, captured results are plain
// overwrites: the values returned to the caller are always the ones
// computed by the attempt that won the swap.
//
// Index validation happens inside the attempt, against that attempt's
// snapshot. A retry may therefore fail with ErrIndexOutOfRange even if
// the index was valid when the caller first loaded the list; the
// guarantee is linearizability against published snapshots, not
// stability of the caller's original view.

package atomlist

import "slices"

// Append adds v at the end of the list. It reports whether the list
// changed, which for an append is always true. Complexity: O(n) copy
// per attempt.
func (l *List[E]) Append(v E) bool {
	changed := false
	_ = l.mutate(func(draft []E) ([]E, error) {
		draft = append(draft, v)
		changed = true

		return draft, nil
	})

	return changed
}

// AppendAll adds every value in vs at the end, in order, as one atomic
// step. It reports whether the list changed (false only for empty vs).
// Complexity: O(n+m) per attempt.
func (l *List[E]) AppendAll(vs ...E) bool {
	changed := false
	_ = l.mutate(func(draft []E) ([]E, error) {
		draft = append(draft, vs...)
		changed = len(vs) > 0

		return draft, nil
	})

	return changed
}

// Insert places v at index i, shifting later elements right. Valid
// indices are 0..Len() inclusive; others yield ErrIndexOutOfRange and
// leave the list untouched. Complexity: O(n) per attempt.
func (l *List[E]) Insert(i int, v E) error {
	return l.mutate(func(draft []E) ([]E, error) {
		if i < 0 || i > len(draft) {
			return nil, ErrIndexOutOfRange
		}

		return slices.Insert(draft, i, v), nil
	})
}

// InsertAll places vs starting at index i as one atomic step. Valid
// indices are 0..Len() inclusive. Complexity: O(n+m) per attempt.
func (l *List[E]) InsertAll(i int, vs ...E) error {
	return l.mutate(func(draft []E) ([]E, error) {
		if i < 0 || i > len(draft) {
			return nil, ErrIndexOutOfRange
		}

		return slices.Insert(draft, i, vs...), nil
	})
}

// Set replaces the element at index i with v and returns the value it
// replaced. The previous value is re-read on every attempt, so it
// belongs to the snapshot that was actually superseded.
// Complexity: O(n) per attempt.
func (l *List[E]) Set(i int, v E) (E, error) {
	var prev E
	err := l.mutate(func(draft []E) ([]E, error) {
		if i < 0 || i >= len(draft) {
			return nil, ErrIndexOutOfRange
		}
		prev = draft[i]
		draft[i] = v

		return draft, nil
	})
	if err != nil {
		var zero E
		return zero, err
	}

	return prev, nil
}

// Remove deletes the first occurrence of v and reports whether one was
// found. A miss still commits (publishing an equal snapshot), keeping
// the uniform write shape. Complexity: O(n) per attempt.
func (l *List[E]) Remove(v E) bool {
	removed := false
	_ = l.mutate(func(draft []E) ([]E, error) {
		idx := slices.Index(draft, v)
		removed = idx >= 0
		if removed {
			draft = slices.Delete(draft, idx, idx+1)
		}

		return draft, nil
	})

	return removed
}

// RemoveAt deletes the element at index i and returns it.
// Complexity: O(n) per attempt.
func (l *List[E]) RemoveAt(i int) (E, error) {
	var removed E
	err := l.mutate(func(draft []E) ([]E, error) {
		if i < 0 || i >= len(draft) {
			return nil, ErrIndexOutOfRange
		}
		removed = draft[i]

		return slices.Delete(draft, i, i+1), nil
	})
	if err != nil {
		var zero E
		return zero, err
	}

	return removed, nil
}

// RemoveAll deletes every occurrence of every value in vs as one atomic
// step and reports whether anything was deleted.
// Complexity: O(n+m) per attempt.
func (l *List[E]) RemoveAll(vs ...E) bool {
	// Membership set is attempt-invariant; build it once.
	drop := make(map[E]struct{}, len(vs))
	for _, v := range vs {
		drop[v] = struct{}{}
	}

	changed := false
	_ = l.mutate(func(draft []E) ([]E, error) {
		before := len(draft)
		draft = slices.DeleteFunc(draft, func(e E) bool {
			_, hit := drop[e]
			return hit
		})
		changed = len(draft) != before

		return draft, nil
	})

	return changed
}

// RetainAll deletes every element NOT present in vs as one atomic step
// and reports whether anything was deleted.
// Complexity: O(n+m) per attempt.
func (l *List[E]) RetainAll(vs ...E) bool {
	keep := make(map[E]struct{}, len(vs))
	for _, v := range vs {
		keep[v] = struct{}{}
	}

	changed := false
	_ = l.mutate(func(draft []E) ([]E, error) {
		before := len(draft)
		draft = slices.DeleteFunc(draft, func(e E) bool {
			_, hit := keep[e]
			return !hit
		})
		changed = len(draft) != before

		return draft, nil
	})

	return changed
}

// RemoveIf deletes every element matching pred as one atomic step and
// reports whether anything was deleted. A nil pred is rejected with
// ErrNilPredicate before any attempt runs. pred may be re-invoked on a
// retry and must therefore be side-effect free.
// Complexity: O(n) per attempt.
func (l *List[E]) RemoveIf(pred func(v E) bool) (bool, error) {
	if pred == nil {
		return false, ErrNilPredicate
	}

	changed := false
	err := l.mutate(func(draft []E) ([]E, error) {
		before := len(draft)
		draft = slices.DeleteFunc(draft, pred)
		changed = len(draft) != before

		return draft, nil
	})

	return changed, err
}

// Clear removes all elements. Complexity: O(n) per attempt (draft copy).
func (l *List[E]) Clear() {
	_ = l.mutate(func(draft []E) ([]E, error) {
		return draft[:0], nil
	})
}

// Sort stably orders the elements according to cmp (negative when a
// sorts before b, zero when equal, positive otherwise), preserving the
// multiset of elements. A nil cmp is rejected with ErrNilComparator.
// cmp may be re-invoked on a retry and must be side-effect free.
// Complexity: O(n log n) per attempt.
func (l *List[E]) Sort(cmp func(a, b E) int) error {
	if cmp == nil {
		return ErrNilComparator
	}

	return l.mutate(func(draft []E) ([]E, error) {
		slices.SortStableFunc(draft, cmp)

		return draft, nil
	})
}

// Transform replaces every element with op(element) as one atomic step;
// subsequent reads observe the transformed values. A nil op is rejected
// with ErrNilOperator. op may be re-invoked on a retry and must be
// side-effect free. Complexity: O(n) per attempt.
func (l *List[E]) Transform(op func(v E) E) error {
	if op == nil {
		return ErrNilOperator
	}

	return l.mutate(func(draft []E) ([]E, error) {
		for i := range draft {
			draft[i] = op(draft[i])
		}
		// Commit the mutated draft, not the snapshot it came from.
		return draft, nil
	})
}
