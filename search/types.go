// Package search defines the Sequence contract, tunable options, and
// sentinel errors shared by every searching algorithm.
package search

import (
	"errors"
	"fmt"
)

// Sentinel errors for search execution.
var (
	// ErrNilSequence is returned when a nil Sequence is supplied.
	ErrNilSequence = errors.New("search: sequence is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Sequence is the read contract every algorithm operates against: a length
// and an O(1) positional read. Get reports false outside [0, Len()), exactly
// like the arrkit containers it abstracts.
type Sequence[T any] interface {
	Len() int
	Get(i int) (T, bool)
}

// Slice adapts a plain Go slice to the Sequence contract.
type Slice[T any] []T

// Len satisfies the Sequence interface.
func (s Slice[T]) Len() int { return len(s) }

// Get satisfies the Sequence interface.
func (s Slice[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(s) {
		var zero T

		return zero, false
	}

	return s[i], true
}

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. non-positive jump size), it is recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize search execution.
type Options struct {
	// OnProbe is called with every index the algorithm reads — the
	// teaching hook for counting and tracing probes.
	OnProbe func(index int)

	// JumpSize, if > 0, overrides the ⌈√n⌉ default stride of the jump
	// family. 0 selects the default. Ignored by the other algorithms.
	JumpSize int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no-op OnProbe hook
//   - automatic ⌈√n⌉ jump size
func DefaultOptions() Options {
	return Options{
		OnProbe:  func(int) {},
		JumpSize: 0,
		err:      nil,
	}
}

// WithOnProbe registers a callback invoked with each probed index.
func WithOnProbe(fn func(index int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProbe = fn
		}
	}
}

// WithJumpSize sets a manual stride for the jump family.
//
//	k > 0:  use stride k
//	k == 0: explicit default (⌈√n⌉)
//	k < 0:  invalid option → ErrOptionViolation
func WithJumpSize(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: JumpSize cannot be negative (%d)", ErrOptionViolation, k)

			return
		}
		o.JumpSize = k
	}
}

// buildOptions resolves opts over the defaults, validating the sequence and
// surfacing any recorded option violation.
func buildOptions[T any](s Sequence[T], opts []Option) (Options, error) {
	if s == nil {
		return Options{}, ErrNilSequence
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// at reads index i, which callers guarantee to be in bounds, reporting the
// probe to the hook first.
func at[T any](s Sequence[T], i int, o *Options) T {
	o.OnProbe(i)
	v, _ := s.Get(i)

	return v
}
