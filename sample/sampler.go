package sample

import (
	"math/rand"

	"github.com/wilkeraziz/pyfst/fst"
	"github.com/wilkeraziz/pyfst/semiring"
)

// minUniform floors rand.Float64's draw away from exactly 0: FromReal(0)
// is +Inf under Tropical/Log (the cost of an impossible event), which
// would make every arc's accumulated threshold unreachable.
const minUniform = 1e-300

func drawUniform(rng *rand.Rand) float64 {
	u := rng.Float64()
	if u <= 0 {
		return minUniform
	}
	return u
}

// lessMass reports whether a carries strictly less probability mass than
// b. Tropical and Log hold costs (Zero, +inf, sorts above One), so a
// larger underlying real means less mass; Real holds the mass itself.
func lessMass(sr semiring.Semiring, a, b semiring.Weight) bool {
	if sr.Less(sr.One(), sr.Zero()) {
		return sr.Less(b, a)
	}
	return sr.Less(a, b)
}

func validateTotals(a *fst.Acceptor, totals []semiring.Weight) error {
	if len(totals) != a.States() {
		return &PreconditionError{Message: "totals length does not match the acceptor's state count"}
	}
	return nil
}

// Sample draws one path from a's start state to a final state, choosing
// at each state among its outgoing arcs with probability proportional to
// arc.Weight (x) totals[arc.To] — the weight of everything that follows
// that arc. totals must be a's reverse shortest-distance vector (the sum,
// over every state, of all paths from that state to a final state);
// callers compute it once with fst.ShortestDistance and reuse it across
// many calls to Sample.
func Sample(a *fst.Acceptor, totals []semiring.Weight, sr semiring.Semiring, rng *rand.Rand) (Path, error) {
	if err := validateTotals(a, totals); err != nil {
		return nil, err
	}

	state := a.Start()
	var path Path
	for {
		if final, _ := a.IsFinal(state); final {
			return path, nil
		}
		arcs := a.Arcs(state)
		if len(arcs) == 0 {
			return nil, &PreconditionError{Message: "state has no outgoing arcs and is not final"}
		}

		theta := sr.Mul(sr.FromReal(drawUniform(rng)), totals[state])
		acc := sr.Zero()
		chosen := len(arcs) - 1
		for i, arc := range arcs {
			acc = sr.Add(acc, sr.Mul(arc.Weight, totals[arc.To]))
			if lessMass(sr, theta, acc) {
				chosen = i
				break
			}
		}

		arc := arcs[chosen]
		path = append(path, Step{Label: arc.ILabel, Weight: arc.Weight})
		state = arc.To
	}
}
