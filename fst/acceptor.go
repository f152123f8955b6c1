package fst

import (
	"github.com/wilkeraziz/pyfst/semiring"
	"github.com/wilkeraziz/pyfst/symbol"
)

// Acceptor is a read-only, deterministic (by construction contract)
// weighted finite-state acceptor: a state set, one initial state, a set
// of final states each carrying a weight, and labelled weighted arcs.
// Once returned by Builder.Build it is never mutated: construction and
// reading are strictly separate phases.
type Acceptor struct {
	states  []state
	initial StateID
}

// States returns the number of states.
func (a *Acceptor) States() int { return len(a.states) }

// Start returns the initial state.
func (a *Acceptor) Start() StateID { return a.initial }

// IsFinal reports whether id is a final state and, if so, its weight.
func (a *Acceptor) IsFinal(id StateID) (bool, semiring.Weight) {
	s := a.states[id]
	return s.final, s.finalWeight
}

// Arcs returns a defensive copy of id's outgoing arcs, in the order
// Builder.AddArc installed them (or sorted by input label, if the
// acceptor was built with sortArcs).
func (a *Acceptor) Arcs(id StateID) []Arc {
	arcs := a.states[id].arcs
	cp := make([]Arc, len(arcs))
	copy(cp, arcs)
	return cp
}

// Validate checks determinism and totality over the given alphabet: for
// each state, no two arcs share an input label (determinism), and
// exactly one arc exists per label in the alphabet (totality). It is a
// debugging aid exercised by this module's own construction tests, not
// something callers of pattern.BuildSubstring/BuildTrie need to invoke
// themselves since those constructors only ever emit acceptors
// satisfying it.
func (a *Acceptor) Validate(alphabet []symbol.Label) error {
	want := make(map[symbol.Label]bool, len(alphabet))
	for _, l := range alphabet {
		want[l] = true
	}
	for id := range a.states {
		seen := make(map[symbol.Label]bool, len(want))
		for _, arc := range a.states[id].arcs {
			if !want[arc.ILabel] {
				continue
			}
			if seen[arc.ILabel] {
				return &BuildError{Message: "Validate: duplicate input label (non-deterministic)", State: StateID(id)}
			}
			seen[arc.ILabel] = true
		}
		if len(seen) != len(want) {
			return &BuildError{Message: "Validate: state is not total over the vocabulary", State: StateID(id)}
		}
	}
	return nil
}
