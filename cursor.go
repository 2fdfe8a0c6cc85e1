// Package atomlist: snapshot-bound bidirectional cursors.
//
// A Cursor walks one published snapshot in both directions, mirroring a
// classic list iterator. Like View, it is pinned at creation: commits
// to the parent list after the cursor exists are invisible to it, and
// every mutating method is rejected with ErrReadOnlyView.

package atomlist

// Cursor is a bidirectional iterator over one published snapshot. The
// cursor position sits between elements: NextIndex names the element a
// Next call would return, PrevIndex the element a Prev call would
// return.
type Cursor[E comparable] struct {
	elems []E // pinned snapshot
	next  int // index of the element Next would return
}

// Cursor returns a cursor positioned before the first element of the
// snapshot current at the call. Complexity: O(1).
func (l *List[E]) Cursor() *Cursor[E] {
	return &Cursor[E]{elems: l.snapshot()}
}

// CursorAt returns a cursor positioned so that the first Next call
// returns the element at index i. Valid positions are 0..Len()
// inclusive (Len() yields a cursor at the end); others yield
// ErrIndexOutOfRange. Complexity: O(1).
func (l *List[E]) CursorAt(i int) (*Cursor[E], error) {
	snapshot := l.snapshot()
	if i < 0 || i > len(snapshot) {
		return nil, ErrIndexOutOfRange
	}

	return &Cursor[E]{elems: snapshot, next: i}, nil
}

// HasNext reports whether a forward step is possible. Complexity: O(1).
func (c *Cursor[E]) HasNext() bool {
	return c.next < len(c.elems)
}

// Next returns the next element and advances the cursor. The second
// result is false when the cursor is already at the end.
// Complexity: O(1).
func (c *Cursor[E]) Next() (E, bool) {
	if c.next >= len(c.elems) {
		var zero E
		return zero, false
	}
	v := c.elems[c.next]
	c.next++

	return v, true
}

// HasPrev reports whether a backward step is possible. Complexity: O(1).
func (c *Cursor[E]) HasPrev() bool {
	return c.next > 0
}

// Prev steps the cursor back and returns the element it stepped over.
// The second result is false when the cursor is already at the start.
// Complexity: O(1).
func (c *Cursor[E]) Prev() (E, bool) {
	if c.next <= 0 {
		var zero E
		return zero, false
	}
	c.next--

	return c.elems[c.next], true
}

// NextIndex returns the index of the element a Next call would return;
// equal to Len() when the cursor is at the end. Complexity: O(1).
func (c *Cursor[E]) NextIndex() int {
	return c.next
}

// PrevIndex returns the index of the element a Prev call would return;
// -1 when the cursor is at the start. Complexity: O(1).
func (c *Cursor[E]) PrevIndex() int {
	return c.next - 1
}

// Insert rejects structural modification through the cursor with
// ErrReadOnlyView; the underlying list is never touched.
func (c *Cursor[E]) Insert(E) error {
	return ErrReadOnlyView
}

// Remove rejects structural modification through the cursor with
// ErrReadOnlyView; the underlying list is never touched.
func (c *Cursor[E]) Remove() error {
	return ErrReadOnlyView
}

// Set rejects in-place replacement through the cursor with
// ErrReadOnlyView; the underlying list is never touched.
func (c *Cursor[E]) Set(E) error {
	return ErrReadOnlyView
}
