// Package atomlist: whole-sequence traversal helpers.
//
// Both traversals bind to exactly one snapshot: elements committed by
// concurrent writers after the call starts are not visited, removed
// elements still are. The parallel variant bounds its worker fan-out
// with errgroup's limit so callers control goroutine pressure.

package atomlist

import "golang.org/x/sync/errgroup"

// ForEach visits every element of the current snapshot sequentially in
// index order. fn must not mutate the list through captured references;
// it may call the list's own operations freely (they act on later
// snapshots). A nil fn is a no-op. Complexity: O(n).
func (l *List[E]) ForEach(fn func(v E)) {
	if fn == nil {
		return
	}
	for _, v := range l.snapshot() {
		fn(v)
	}
}

// ForEachParallel visits every element of the current snapshot with at
// most parallelism concurrent workers. Visit order is unspecified.
// Every element is visited even if an earlier visit failed; the first
// error returned by fn is the one reported, after all workers finish.
// parallelism below one yields ErrBadParallelism, a nil fn
// ErrNilVisitor. Complexity: O(n) work split across workers.
func (l *List[E]) ForEachParallel(parallelism int, fn func(v E) error) error {
	if parallelism < 1 {
		return ErrBadParallelism
	}
	if fn == nil {
		return ErrNilVisitor
	}

	snapshot := l.snapshot() // one snapshot for the whole traversal

	var g errgroup.Group
	g.SetLimit(parallelism)
	for _, v := range snapshot {
		g.Go(func() error {
			return fn(v)
		})
	}

	return g.Wait()
}
