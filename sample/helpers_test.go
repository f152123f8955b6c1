package sample

import (
	"math"
	"testing"

	"github.com/wilkeraziz/pyfst/fst"
	"github.com/wilkeraziz/pyfst/semiring"
	"github.com/wilkeraziz/pyfst/symbol"
)

// twoBranchAcceptor builds a single-layer acceptor with exactly two
// accepting runs: start -A-> mid -> final (weight wA), and
// start -B-> final directly (weight wB). Arc labels 0 and 1 identify
// which run a path took. Used by the precondition/shape tests below
// that don't need a richer network.
func twoBranchAcceptor(t *testing.T, sr semiring.Semiring, wA, wB semiring.Weight) (*fst.Acceptor, []semiring.Weight) {
	t.Helper()
	b := fst.NewBuilder()
	start := b.AddState()
	mid := b.AddState()
	final := b.AddState()
	if err := b.SetInitial(start); err != nil {
		t.Fatalf("SetInitial: %v", err)
	}
	if err := b.SetFinal(final, sr.One()); err != nil {
		t.Fatalf("SetFinal: %v", err)
	}
	if err := b.AddArc(start, mid, 0, 0, wA); err != nil {
		t.Fatalf("AddArc A: %v", err)
	}
	if err := b.AddArc(mid, final, 0, 0, sr.One()); err != nil {
		t.Fatalf("AddArc A-final: %v", err)
	}
	if err := b.AddArc(start, final, 1, 1, wB); err != nil {
		t.Fatalf("AddArc B: %v", err)
	}
	a, err := b.Build(false)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	totals, err := fst.ShortestDistance(a, sr)
	if err != nil {
		t.Fatalf("ShortestDistance: %v", err)
	}
	return a, totals
}

// layeredNetwork builds a 2-layer, 2-wide acceptor: start (0) connects
// to both layer-1 states (1, 2), each layer-1 state connects to both
// layer-2 states (3, 4), and both converge on final (5). Arc costs are
// the fixed table used throughout a small worked network (each edge
// labelled sfrom->sto carrying a (label, cost) pair), reused here as a
// reproducible four-path fixture for the sampler's distributional
// tests. Costs are read under the Log semiring, so a path's probability
// is proportional to exp(-sum of its arc costs).
func layeredNetwork(t *testing.T) (*fst.Acceptor, []semiring.Weight) {
	t.Helper()
	sr := semiring.Log{}
	b := fst.NewBuilder()
	for i := 0; i < 6; i++ {
		b.AddState()
	}
	const (
		start   fst.StateID = 0
		l1a     fst.StateID = 1
		l1b     fst.StateID = 2
		l2a     fst.StateID = 3
		l2b     fst.StateID = 4
		final   fst.StateID = 5
	)
	if err := b.SetInitial(start); err != nil {
		t.Fatalf("SetInitial: %v", err)
	}
	if err := b.SetFinal(final, sr.One()); err != nil {
		t.Fatalf("SetFinal: %v", err)
	}
	type edge struct {
		from, to     fst.StateID
		label        symbol.Label
		cost         semiring.Weight
	}
	for _, e := range []edge{
		{start, l1a, 1, 2},
		{start, l1b, 2, 1},
		{l1a, l2a, 3, 2},
		{l1a, l2b, 4, 4},
		{l1b, l2a, 5, 6},
		{l1b, l2b, 6, 2},
		{l2a, final, 7, 1},
		{l2b, final, 8, 2},
	} {
		if err := b.AddArc(e.from, e.to, e.label, e.label, e.cost); err != nil {
			t.Fatalf("AddArc %d->%d: %v", e.from, e.to, err)
		}
	}
	a, err := b.Build(false)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	totals, err := fst.ShortestDistance(a, sr)
	if err != nil {
		t.Fatalf("ShortestDistance: %v", err)
	}
	return a, totals
}

// networkCategory classifies a path through layeredNetwork into one of
// its four accepting runs, identified by the labels of its first two
// arcs (the third arc, into final, is redundant with the second).
func networkCategory(t *testing.T, p Path) int {
	t.Helper()
	if len(p) < 2 {
		t.Fatalf("path too short to classify: %v", p)
	}
	switch [2]symbol.Label{p[0].Label, p[1].Label} {
	case [2]symbol.Label{1, 3}:
		return 0
	case [2]symbol.Label{1, 4}:
		return 1
	case [2]symbol.Label{2, 5}:
		return 2
	case [2]symbol.Label{2, 6}:
		return 3
	default:
		t.Fatalf("unrecognised path: %v", p)
		return -1
	}
}

// networkExpectedProb returns layeredNetwork's four path probabilities,
// computed directly from the same arc costs (exp(-cost) normalised),
// independent of the sampler under test.
func networkExpectedProb() [4]float64 {
	costs := [4]float64{
		2 + 2 + 1, // start-l1a-l2a-final
		2 + 4 + 2, // start-l1a-l2b-final
		1 + 6 + 1, // start-l1b-l2a-final
		1 + 2 + 2, // start-l1b-l2b-final
	}
	var unnorm [4]float64
	var z float64
	for i, c := range costs {
		unnorm[i] = math.Exp(-c)
		z += unnorm[i]
	}
	var prob [4]float64
	for i := range unnorm {
		prob[i] = unnorm[i] / z
	}
	return prob
}

// chiSquareGOF computes the Pearson chi-squared goodness-of-fit
// statistic of observed counts against expected probabilities scaled
// by n trials.
func chiSquareGOF(observed []int, expectedProb [4]float64, n int) float64 {
	stat := 0.0
	for i, p := range expectedProb {
		e := p * float64(n)
		d := float64(observed[i]) - e
		stat += d * d / e
	}
	return stat
}

// chiSquareHomogeneity computes the Pearson chi-squared statistic for
// the 2xk contingency table formed by two independent samples' category
// counts, testing whether they were drawn from the same distribution.
func chiSquareHomogeneity(obsA, obsB [4]int) float64 {
	var nA, nB int
	for i := range obsA {
		nA += obsA[i]
		nB += obsB[i]
	}
	total := nA + nB
	stat := 0.0
	for i := range obsA {
		colTotal := obsA[i] + obsB[i]
		eA := float64(nA) * float64(colTotal) / float64(total)
		eB := float64(nB) * float64(colTotal) / float64(total)
		da := float64(obsA[i]) - eA
		db := float64(obsB[i]) - eB
		stat += da*da/eA + db*db/eB
	}
	return stat
}

// chiSquareCritical001Df3 is the chi-squared critical value at the
// alpha=0.01 significance level with 3 degrees of freedom (4 categories
// minus 1). A statistic below this means the observed counts are not
// significantly different from expected at the 1% level, i.e. p > 0.01.
const chiSquareCritical001Df3 = 11.345
