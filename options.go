// Package atomlist: construction-time options.
//
// Options follow the functional-option pattern; each one records its
// setting on the builder and is validated inside New so that a bad
// option surfaces as a sentinel error rather than a latent nil call.

package atomlist

// Option configures a List before creation.
type Option[E comparable] func(*config[E]) error

// config collects construction settings before the first snapshot is
// published. It never escapes New.
type config[E comparable] struct {
	draft   DraftFunc[E]
	initial []E
}

// WithDraftFunc installs an alternative draft-generation strategy.
// Passing nil is rejected with ErrNilDraftFunc at construction.
func WithDraftFunc[E comparable](f DraftFunc[E]) Option[E] {
	return func(c *config[E]) error {
		if f == nil {
			return ErrNilDraftFunc
		}
		c.draft = f

		return nil
	}
}

// WithInitial seeds the list with the given elements. The slice is
// defensively copied before the first snapshot is published, so later
// mutation of elems by the caller cannot leak into the list. A nil
// slice is rejected with ErrNilInitial; use an empty slice (or omit
// the option) for an empty list.
func WithInitial[E comparable](elems []E) Option[E] {
	return func(c *config[E]) error {
		if elems == nil {
			return ErrNilInitial
		}
		c.initial = elems

		return nil
	}
}
