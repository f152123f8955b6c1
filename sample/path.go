package sample

import (
	"github.com/wilkeraziz/pyfst/semiring"
	"github.com/wilkeraziz/pyfst/symbol"
)

// Step is one transition of a sampled path: the label consumed and the
// weight of the arc that carried it.
type Step struct {
	Label  symbol.Label
	Weight semiring.Weight
}

// Path is a complete run from the initial state to a final one, in the
// order the labels were consumed.
type Path []Step

// WeightedPath pairs a path produced by DequeSample with the number of
// the batch's draws that landed on it. Multiplicity sums to n across the
// slice DequeSample returns.
type WeightedPath struct {
	Path         Path
	Multiplicity int
}
