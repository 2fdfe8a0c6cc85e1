// Package atomlist: the List type, its constructor, and the internal
// draft/commit plumbing shared by every mutating operation.
//
// Write protocol (identical for all mutations):
//
//	load snapshot → draft := draftFunc(snapshot) → apply change to draft,
//	capturing any result value → commit draft into a fresh immutable
//	snapshot → compare-and-swap it into the cell; on a lost swap, retry
//	from the newest snapshot.
//
// Captured results are recomputed on every attempt, so the values a
// caller receives always belong to the attempt that actually committed.

package atomlist

import "github.com/katalvlaran/atomlist/cell"

// List is a mutable, ordered, thread-safe sequence of E backed by one
// immutable snapshot in an atomic cell. The zero value is not usable;
// construct with New.
type List[E comparable] struct {
	draft DraftFunc[E]    // Snapshot → Draft strategy, fixed at construction
	cell  *cell.Cell[[]E] // current published snapshot, never nil
}

// New creates a List. By default the list starts empty and drafts are
// exact-size full copies (CopyDraft); both knobs are adjustable via
// WithInitial and WithDraftFunc. Option validation errors (nil strategy,
// nil initial slice) are returned before anything is published.
// Complexity: O(len(initial)).
func New[E comparable](opts ...Option[E]) (*List[E], error) {
	cfg := config[E]{
		draft:   CopyDraft[E],
		initial: []E{},
	}
	// Apply options; the first invalid one aborts construction.
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	// Defensive copy: the published snapshot never aliases caller memory.
	return &List[E]{
		draft: cfg.draft,
		cell:  cell.New(commitDraft(cfg.initial)),
	}, nil
}

// commitDraft seals a draft into a fresh immutable snapshot. The copy is
// unconditional: even a well-behaved draft strategy is not trusted with
// the published backing array.
func commitDraft[E comparable](draft []E) []E {
	snapshot := make([]E, len(draft))
	copy(snapshot, draft)

	return snapshot
}

// snapshot returns the currently published contents. Callers must treat
// the result as immutable.
func (l *List[E]) snapshot() []E {
	return l.cell.Load()
}

// mutate runs one retry-loop update. apply receives a fresh draft of the
// attempt's snapshot and returns the draft to commit; if it errors, the
// attempt aborts, nothing is published, and the error propagates to the
// caller. apply may run more than once under contention, so any result
// capture inside it must overwrite, never accumulate.
func (l *List[E]) mutate(apply func(draft []E) ([]E, error)) error {
	_, err := l.cell.Update(func(snapshot []E) ([]E, error) {
		draft, err := apply(l.draft(snapshot))
		if err != nil {
			return nil, err
		}

		return commitDraft(draft), nil
	})

	return err
}
