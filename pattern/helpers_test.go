package pattern

import (
	"fmt"

	"github.com/wilkeraziz/pyfst/fst"
	"github.com/wilkeraziz/pyfst/semiring"
	"github.com/wilkeraziz/pyfst/symbol"
)

// pathWeight replays input through a, taking the unique deterministic
// arc for each symbol, and returns the semiring product of arc weights
// times the final state's weight (always 1̄ for the acceptors this
// package builds).
func pathWeight(a *fst.Acceptor, vocab *symbol.Vocabulary, sr semiring.Semiring, input []symbol.Symbol) (semiring.Weight, error) {
	state := a.Start()
	acc := sr.One()
	for _, s := range input {
		labels, ok := vocab.LabelsOf(s)
		if !ok || len(labels) == 0 {
			return 0, fmt.Errorf("symbol %v not in vocabulary", s)
		}
		arcs := a.Arcs(state)
		found := false
		for _, arc := range arcs {
			for _, l := range labels {
				if arc.ILabel == l {
					acc = sr.Mul(acc, arc.Weight)
					state = arc.To
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("no outgoing arc for symbol %v at state %d", s, state)
		}
	}
	final, w := a.IsFinal(state)
	if !final {
		return 0, fmt.Errorf("state %d is not final", state)
	}
	return sr.Mul(acc, w), nil
}

// pathWeightByLabels replays a raw label sequence through a, ignoring
// the vocabulary (useful in masked mode, where a test wants to drive a
// specific label out of a symbol's several).
func pathWeightByLabels(a *fst.Acceptor, sr semiring.Semiring, labels []symbol.Label) (semiring.Weight, error) {
	state := a.Start()
	acc := sr.One()
	for _, l := range labels {
		found := false
		for _, arc := range a.Arcs(state) {
			if arc.ILabel == l {
				acc = sr.Mul(acc, arc.Weight)
				state = arc.To
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("no outgoing arc for label %v at state %d", l, state)
		}
	}
	final, w := a.IsFinal(state)
	if !final {
		return 0, fmt.Errorf("state %d is not final", state)
	}
	return sr.Mul(acc, w), nil
}

// stepTrace returns, for each symbol of input in turn, the weight of
// the single arc taken at that step (not the cumulative path product) —
// the per-step state weight a trie reweighter's construction table
// assigns at each prefix position.
func stepTrace(a *fst.Acceptor, vocab *symbol.Vocabulary, sr semiring.Semiring, input []symbol.Symbol) ([]semiring.Weight, error) {
	state := a.Start()
	out := make([]semiring.Weight, len(input))
	for i, s := range input {
		labels, ok := vocab.LabelsOf(s)
		if !ok || len(labels) == 0 {
			return nil, fmt.Errorf("symbol %v not in vocabulary", s)
		}
		found := false
		for _, arc := range a.Arcs(state) {
			for _, l := range labels {
				if arc.ILabel == l {
					out[i] = arc.Weight
					state = arc.To
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("no outgoing arc for symbol %v at state %d", s, state)
		}
	}
	return out, nil
}
