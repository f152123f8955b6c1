// Package pattern builds two weighted-acceptor constructions: a
// single-pattern substring reweighter (Aho-Corasick-style failure DFA)
// and a multi-pattern trie reweighter with percolated weights.
package pattern

import "fmt"

// ErrorKind classifies pattern construction errors, as a small enum
// plus a kind-comparing Is method rather than distinct sentinel values.
type ErrorKind uint8

const (
	// InvalidPattern: substring pattern shorter than 2, or an empty
	// pattern inside a trie pattern set.
	InvalidPattern ErrorKind = iota
	// EmptyVocabulary: the vocabulary has no symbols.
	EmptyVocabulary
	// InconsistentMask: a masked-mode symbol has no labels, or two
	// symbols share a label.
	InconsistentMask
	// DuplicatePattern: a trie pattern set has two entries with the
	// same key.
	DuplicatePattern
	// BackendFailure: the underlying fst.Builder rejected an operation.
	BackendFailure
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidPattern:
		return "InvalidPattern"
	case EmptyVocabulary:
		return "EmptyVocabulary"
	case InconsistentMask:
		return "InconsistentMask"
	case DuplicatePattern:
		return "DuplicatePattern"
	case BackendFailure:
		return "BackendFailure"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", uint8(k))
	}
}

// BuildError reports a failed substring/trie construction.
type BuildError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *BuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pattern: %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("pattern: %s: %s", e.Kind, e.Message)
}

func (e *BuildError) Unwrap() error { return e.Cause }

// Is implements error-kind comparison for errors.Is(err, &BuildError{Kind: ...}).
func (e *BuildError) Is(target error) bool {
	t, ok := target.(*BuildError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
