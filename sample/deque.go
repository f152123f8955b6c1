package sample

import (
	"math/rand"
	"sort"

	"github.com/wilkeraziz/pyfst/fst"
	"github.com/wilkeraziz/pyfst/semiring"
)

// frontierItem is one pending batch of draws sharing a state and the
// path prefix that reached it.
type frontierItem struct {
	state  fst.StateID
	n      int
	prefix Path
}

// DequeSample draws n paths in one pass, pushing a queue of (state,
// count) batches forward instead of replaying Sample n independent
// times: at each state it draws and sorts the whole batch's thresholds
// once, then splits the sorted batch across outgoing arcs in a single
// scan. Paths with the same label sequence collapse into one
// WeightedPath whose Multiplicity is how many of the n draws landed on it.
func DequeSample(a *fst.Acceptor, totals []semiring.Weight, sr semiring.Semiring, n int, rng *rand.Rand, opts Options) ([]WeightedPath, error) {
	if err := validateTotals(a, totals); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, &PreconditionError{Message: "n must be positive"}
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	queue := []frontierItem{{state: a.Start(), n: n}}
	if opts.Deque && opts.BatchSize > 0 {
		queue = splitBatches(a.Start(), n, opts.BatchSize)
	}

	merged := make(map[string]*WeightedPath)
	var order []string
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if final, _ := a.IsFinal(item.state); final {
			key := pathKey(item.prefix)
			if wp, ok := merged[key]; ok {
				wp.Multiplicity += item.n
			} else {
				wp := &WeightedPath{Path: item.prefix, Multiplicity: item.n}
				merged[key] = wp
				order = append(order, key)
			}
			continue
		}

		arcs := a.Arcs(item.state)
		if len(arcs) == 0 {
			return nil, &PreconditionError{Message: "state has no outgoing arcs and is not final"}
		}

		thresholds := make([]semiring.Weight, item.n)
		for i := range thresholds {
			thresholds[i] = sr.Mul(sr.FromReal(drawUniform(rng)), totals[item.state])
		}
		sort.Slice(thresholds, func(i, j int) bool { return lessMass(sr, thresholds[i], thresholds[j]) })

		acc := sr.Zero()
		claimed := 0
		for ai, arc := range arcs {
			acc = sr.Add(acc, sr.Mul(arc.Weight, totals[arc.To]))
			last := ai == len(arcs)-1
			var boundary int
			if last {
				boundary = len(thresholds)
			} else {
				boundary = claimed + sort.Search(len(thresholds)-claimed, func(k int) bool {
					return !lessMass(sr, thresholds[claimed+k], acc)
				})
			}
			count := boundary - claimed
			claimed = boundary
			if count == 0 {
				continue
			}
			child := make(Path, len(item.prefix)+1)
			copy(child, item.prefix)
			child[len(item.prefix)] = Step{Label: arc.ILabel, Weight: arc.Weight}
			queue = append(queue, frontierItem{state: arc.To, n: count, prefix: child})
		}
	}

	out := make([]WeightedPath, len(order))
	for i, k := range order {
		out[i] = *merged[k]
	}
	return out, nil
}

func splitBatches(start fst.StateID, n, batchSize int) []frontierItem {
	var queue []frontierItem
	remaining := n
	for remaining > 0 {
		batch := batchSize
		if batch > remaining {
			batch = remaining
		}
		queue = append(queue, frontierItem{state: start, n: batch})
		remaining -= batch
	}
	return queue
}

func pathKey(p Path) string {
	b := make([]byte, 0, len(p)*5)
	for _, step := range p {
		b = append(b, byte(step.Label), byte(step.Label>>8), byte(step.Label>>16), byte(step.Label>>24), ',')
	}
	return string(b)
}
