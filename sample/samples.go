package sample

import (
	"math/rand"

	"github.com/wilkeraziz/pyfst/fst"
	"github.com/wilkeraziz/pyfst/semiring"
)

// Samples draws n independent paths by calling Sample n times and
// folding identical paths into one WeightedPath each — the naive
// repeated-draw loop DequeSample's batched queue is an optimization
// over. The two must agree in distribution; this is the reference
// DequeSample is checked against.
func Samples(a *fst.Acceptor, totals []semiring.Weight, sr semiring.Semiring, n int, rng *rand.Rand) ([]WeightedPath, error) {
	if n <= 0 {
		return nil, &PreconditionError{Message: "n must be positive"}
	}

	counts := make(map[string]*WeightedPath)
	var order []string
	for i := 0; i < n; i++ {
		path, err := Sample(a, totals, sr, rng)
		if err != nil {
			return nil, err
		}
		key := pathKey(path)
		if wp, ok := counts[key]; ok {
			wp.Multiplicity++
		} else {
			wp := &WeightedPath{Path: path, Multiplicity: 1}
			counts[key] = wp
			order = append(order, key)
		}
	}

	out := make([]WeightedPath, len(order))
	for i, k := range order {
		out[i] = *counts[k]
	}
	return out, nil
}
