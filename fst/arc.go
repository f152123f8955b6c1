package fst

import (
	"github.com/wilkeraziz/pyfst/semiring"
	"github.com/wilkeraziz/pyfst/symbol"
)

// StateID identifies a state within an Acceptor. State ids are dense,
// assigned 0..n-1 in the order Builder.AddState was called.
type StateID uint32

// InvalidState is returned by lookups that found nothing.
const InvalidState StateID = ^StateID(0)

// Arc is a labelled, weighted transition. Input label equals output
// label on every arc, since an Acceptor's input and output alphabets
// coincide.
type Arc struct {
	To     StateID
	ILabel symbol.Label
	OLabel symbol.Label
	Weight semiring.Weight
}
