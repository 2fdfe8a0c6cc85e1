// Package atomlist: capability interfaces and the draft strategy type.
//
// The sequence contract is split into small capability groups so that
// read-only projections (View) can satisfy exactly the subset they
// support instead of stubbing a monolithic interface. List implements
// Sequence (all groups); View implements Projection (the read groups).

package atomlist

import "iter"

// Sized reports how many elements a sequence currently holds.
type Sized interface {
	// Len returns the number of elements.
	Len() int

	// IsEmpty reports whether the sequence holds no elements.
	IsEmpty() bool
}

// Indexable provides positional and membership queries.
type Indexable[E comparable] interface {
	// Get returns the element at index i, or ErrIndexOutOfRange.
	Get(i int) (E, error)

	// IndexOf returns the lowest index holding v, or -1 if absent.
	IndexOf(v E) int

	// LastIndexOf returns the highest index holding v, or -1 if absent.
	LastIndexOf(v E) int

	// Contains reports whether v is present.
	Contains(v E) bool

	// ContainsAll reports whether every value in vs is present.
	ContainsAll(vs ...E) bool
}

// Iterable exposes the sequence's contents for traversal and export.
type Iterable[E comparable] interface {
	// All returns an index/element iterator over one snapshot.
	All() iter.Seq2[int, E]

	// Values returns an element iterator over one snapshot.
	Values() iter.Seq[E]

	// ToSlice returns a fresh copy of the current contents.
	ToSlice() []E
}

// Sortable reorders the sequence by a caller-supplied comparison.
type Sortable[E comparable] interface {
	// Sort stably orders the elements per cmp (negative: a before b).
	Sort(cmp func(a, b E) int) error
}

// Traversable applies a visitor to every element of one snapshot.
type Traversable[E comparable] interface {
	// ForEach visits elements sequentially in index order.
	ForEach(fn func(v E))

	// ForEachParallel visits elements with at most parallelism workers.
	ForEachParallel(parallelism int, fn func(v E) error) error
}

// Mutable groups every operation that replaces the published snapshot.
type Mutable[E comparable] interface {
	// Append adds v at the end; reports whether the sequence changed.
	Append(v E) bool

	// AppendAll adds all vs at the end; reports whether anything changed.
	AppendAll(vs ...E) bool

	// Insert places v at index i, shifting later elements right.
	Insert(i int, v E) error

	// InsertAll places vs starting at index i.
	InsertAll(i int, vs ...E) error

	// Set replaces the element at index i and returns the previous value.
	Set(i int, v E) (E, error)

	// Remove deletes the first occurrence of v; reports whether it was found.
	Remove(v E) bool

	// RemoveAt deletes and returns the element at index i.
	RemoveAt(i int) (E, error)

	// RemoveAll deletes every occurrence of every value in vs.
	RemoveAll(vs ...E) bool

	// RetainAll deletes every element not present in vs.
	RetainAll(vs ...E) bool

	// RemoveIf deletes every element matching pred.
	RemoveIf(pred func(v E) bool) (bool, error)

	// Transform replaces every element with op(element).
	Transform(op func(v E) E) error

	// Clear removes all elements.
	Clear()
}

// Sequence is the full mutable-sequence contract; List is its sole
// implementer.
type Sequence[E comparable] interface {
	Sized
	Indexable[E]
	Iterable[E]
	Sortable[E]
	Traversable[E]
	Mutable[E]
}

// Projection is the read-only contract satisfied by snapshot-bound
// views: sized, indexable, iterable, and nothing that mutates.
type Projection[E comparable] interface {
	Sized
	Indexable[E]
	Iterable[E]
}

// DraftFunc produces a mutable working copy (a draft) from a published
// snapshot for a single update attempt. The returned slice is mutated
// freely by the attempt and discarded if the commit loses the swap; it
// must therefore never alias the snapshot's backing array. This is a
// hard precondition, not a guarded one: the commit step re-copies the
// draft before publication, which keeps published snapshots independent
// of the draft, but it cannot undo in-place writes that an aliasing
// draft already leaked into the snapshot it was derived from.
type DraftFunc[E comparable] func(snapshot []E) []E

// CopyDraft is the default draft strategy: an exact-size element-wise
// copy of the snapshot. Complexity: O(n).
func CopyDraft[E comparable](snapshot []E) []E {
	draft := make([]E, len(snapshot))
	copy(draft, snapshot)

	return draft
}

// SpareDraft returns a draft strategy that copies the snapshot with
// `spare` extra slots of capacity, trading memory for cheaper appends
// inside a single attempt. Negative spare is treated as zero.
// Complexity of the returned func: O(n).
func SpareDraft[E comparable](spare int) DraftFunc[E] {
	if spare < 0 {
		spare = 0
	}

	return func(snapshot []E) []E {
		draft := make([]E, len(snapshot), len(snapshot)+spare)
		copy(draft, snapshot)

		return draft
	}
}

// Compile-time contract anchors: List carries the full sequence
// capability set; View carries exactly the read-only projection.
var (
	_ Sequence[int]   = (*List[int])(nil)
	_ Projection[int] = (*View[int])(nil)
)
