package fst

import (
	"sort"

	"github.com/wilkeraziz/pyfst/internal/intconv"
	"github.com/wilkeraziz/pyfst/semiring"
	"github.com/wilkeraziz/pyfst/symbol"
)

type state struct {
	arcs        []Arc
	final       bool
	finalWeight semiring.Weight
}

// Builder constructs an Acceptor incrementally: add states, mark the
// initial state and final states, add arcs, and finally Build — a
// mutable factory that produces an immutable value once construction
// completes.
type Builder struct {
	states  []state
	initial StateID
	hasInit bool
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16)
}

// NewBuilderWithCapacity creates an empty builder pre-sized for the
// expected number of states.
func NewBuilderWithCapacity(capacity int) *Builder {
	return &Builder{
		states:  make([]state, 0, capacity),
		initial: InvalidState,
	}
}

// AddState allocates a new state and returns its id.
func (b *Builder) AddState() StateID {
	id := StateID(intconv.IntToUint32(len(b.states)))
	b.states = append(b.states, state{})
	return id
}

// SetInitial marks id as the acceptor's (sole) initial state.
func (b *Builder) SetInitial(id StateID) error {
	if int(id) >= len(b.states) {
		return &BuildError{Message: "SetInitial: state out of range", State: id}
	}
	b.initial = id
	b.hasInit = true
	return nil
}

// SetFinal marks id as final, carrying the given weight. Every final
// state carries 1̄ in the matcher constructions this backend serves, but
// the backend itself is agnostic to that choice.
func (b *Builder) SetFinal(id StateID, weight semiring.Weight) error {
	if int(id) >= len(b.states) {
		return &BuildError{Message: "SetFinal: state out of range", State: id}
	}
	b.states[id].final = true
	b.states[id].finalWeight = weight
	return nil
}

// AddArc adds a transition from -> to on the given input/output label
// pair and weight. Input label equals output label in every construction
// this module performs, but the backend does not enforce that itself.
func (b *Builder) AddArc(from, to StateID, ilabel, olabel symbol.Label, weight semiring.Weight) error {
	if int(from) >= len(b.states) {
		return &BuildError{Message: "AddArc: from state out of range", State: from}
	}
	if int(to) >= len(b.states) {
		return &BuildError{Message: "AddArc: to state out of range", State: to}
	}
	b.states[from].arcs = append(b.states[from].arcs, Arc{
		To:     to,
		ILabel: ilabel,
		OLabel: olabel,
		Weight: weight,
	})
	return nil
}

// Build finalises construction into a read-only Acceptor. If sortArcs is
// true, each state's outgoing arcs are ordered by input label.
func (b *Builder) Build(sortArcs bool) (*Acceptor, error) {
	if !b.hasInit {
		return nil, &BuildError{Message: "Build: no initial state set", State: InvalidState}
	}
	states := make([]state, len(b.states))
	copy(states, b.states)
	if sortArcs {
		for i := range states {
			arcs := append([]Arc(nil), states[i].arcs...)
			sort.Slice(arcs, func(x, y int) bool { return arcs[x].ILabel < arcs[y].ILabel })
			states[i].arcs = arcs
		}
	}
	return &Acceptor{states: states, initial: b.initial}, nil
}
