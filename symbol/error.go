package symbol

import (
	"errors"
	"fmt"
)

// ErrEmptyVocabulary indicates a vocabulary was constructed with no
// symbols.
var ErrEmptyVocabulary = errors.New("symbol: vocabulary has no symbols")

// ErrInconsistentMask is the sentinel wrapped by InconsistentMaskError,
// for errors.Is matching without inspecting the offending symbol.
var ErrInconsistentMask = errors.New("symbol: inconsistent masked vocabulary")

// InconsistentMaskError reports a masked-mode vocabulary violation: a
// symbol with an empty label list, or two symbols sharing a label.
type InconsistentMaskError struct {
	Symbol      Symbol
	Label       Label
	OtherSymbol Symbol
}

func (e *InconsistentMaskError) Error() string {
	if e.OtherSymbol != nil {
		return fmt.Sprintf("symbol: label %d shared by symbols %v and %v", e.Label, e.OtherSymbol, e.Symbol)
	}
	return fmt.Sprintf("symbol: symbol %v has no labels", e.Symbol)
}

func (e *InconsistentMaskError) Unwrap() error {
	return ErrInconsistentMask
}
