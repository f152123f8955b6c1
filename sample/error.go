// Package sample draws paths from a weighted acceptor in proportion to
// their path weight, given a precomputed totals (shortest-distance to
// final) vector.
package sample

import "fmt"

// PreconditionError reports a violated sampling precondition: a totals
// vector of the wrong length, or a dead-end state with no outgoing arcs
// that also isn't final (an inconsistent totals vector).
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("sample: precondition: %s", e.Message)
}

func (e *PreconditionError) Unwrap() error { return ErrSamplerPrecondition }

// ErrSamplerPrecondition is the sentinel PreconditionError wraps, for
// errors.Is checks that don't care about the message.
var ErrSamplerPrecondition = preconditionSentinel{}

type preconditionSentinel struct{}

func (preconditionSentinel) Error() string { return "sample: precondition violated" }
