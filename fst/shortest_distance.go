package fst

import (
	"errors"

	"github.com/wilkeraziz/pyfst/semiring"
)

// ErrNotAcyclic is returned by ShortestDistance when the acceptor
// contains a cycle. The sampler's acceptors are always finite, acyclic
// realisations, so a cycle here means the acceptor passed in wasn't one
// of those — it's a caller precondition violation, not a
// general-purpose shortest-distance failure.
var ErrNotAcyclic = errors.New("fst: acceptor is not acyclic")

type visitState uint8

const (
	unvisited visitState = iota
	visiting
	done
)

// ShortestDistance computes, for every state q, the semiring sum over
// all paths from q to a final state of the product of arc weights along
// that path — the sampler's "totals" vector, and the only direction
// (reverse, toward final states) the sampler needs. The acceptor must
// be acyclic, which this implementation verifies while computing a
// postorder.
func ShortestDistance(a *Acceptor, sr semiring.Semiring) ([]semiring.Weight, error) {
	n := a.States()
	mark := make([]visitState, n)
	order := make([]StateID, 0, n)

	var visit func(StateID) error
	visit = func(s StateID) error {
		switch mark[s] {
		case done:
			return nil
		case visiting:
			return ErrNotAcyclic
		}
		mark[s] = visiting
		for _, arc := range a.states[s].arcs {
			if err := visit(arc.To); err != nil {
				return err
			}
		}
		mark[s] = done
		order = append(order, s)
		return nil
	}

	for s := 0; s < n; s++ {
		if err := visit(StateID(s)); err != nil {
			return nil, err
		}
	}

	totals := make([]semiring.Weight, n)
	for i := range totals {
		totals[i] = sr.Zero()
	}
	// order is a postorder of the forward graph: a state appears after
	// every state reachable from it, so by the time we process q every
	// arc.To it can reach already has its final total computed.
	for _, s := range order {
		acc := sr.Zero()
		if final, w := a.IsFinal(s); final {
			acc = w
		}
		for _, arc := range a.states[s].arcs {
			acc = sr.Add(acc, sr.Mul(arc.Weight, totals[arc.To]))
		}
		totals[s] = acc
	}
	return totals, nil
}
