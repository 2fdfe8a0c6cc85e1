// Package atomlist: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// package. All operations return these sentinels and tests check them
// via errors.Is. No operation panics on user-triggered error conditions.

package atomlist

import "errors"

// Sentinel errors for atomlist operations. Every message is prefixed
// with "atomlist: ..." for consistency and easy grepping across logs.
var (
	// ErrNilInitial indicates a nil slice was passed to WithInitial.
	// Pass an empty slice (or omit the option) for an empty list.
	ErrNilInitial = errors.New("atomlist: initial elements slice is nil")

	// ErrNilDraftFunc indicates a nil strategy was passed to WithDraftFunc.
	ErrNilDraftFunc = errors.New("atomlist: draft function is nil")

	// ErrIndexOutOfRange indicates a positional operation referenced an
	// index outside the bounds of the snapshot it ran against. Public
	// indexers return this, they never panic.
	ErrIndexOutOfRange = errors.New("atomlist: index out of range")

	// ErrInvalidRange indicates Slice was called with from > to or with
	// endpoints outside [0, Len()].
	ErrInvalidRange = errors.New("atomlist: invalid range")

	// ErrReadOnlyView indicates a structural modification was attempted
	// through a View or Cursor. Views project a point-in-time snapshot;
	// the only mutation path is the List's own operations.
	ErrReadOnlyView = errors.New("atomlist: view is read-only")

	// ErrNilComparator indicates Sort was called with a nil compare function.
	ErrNilComparator = errors.New("atomlist: comparator is nil")

	// ErrNilPredicate indicates RemoveIf was called with a nil predicate.
	ErrNilPredicate = errors.New("atomlist: predicate is nil")

	// ErrNilOperator indicates Transform was called with a nil operator.
	ErrNilOperator = errors.New("atomlist: operator is nil")

	// ErrNilVisitor indicates ForEachParallel was called with a nil visitor.
	ErrNilVisitor = errors.New("atomlist: visitor is nil")

	// ErrBadParallelism indicates ForEachParallel was called with a
	// parallelism bound below one.
	ErrBadParallelism = errors.New("atomlist: parallelism must be >= 1")
)
