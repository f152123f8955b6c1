package pattern

import (
	"github.com/wilkeraziz/pyfst/fst"
	"github.com/wilkeraziz/pyfst/internal/sparseset"
	"github.com/wilkeraziz/pyfst/semiring"
	"github.com/wilkeraziz/pyfst/symbol"
	"github.com/wilkeraziz/pyfst/trie"
)

// BuildSubstring constructs the failure-DFA that rewards every occurrence
// of pattern in the scanned string by alpha: a chain of k+1 states (k =
// len(pattern)), one per matched prefix length, with the classic
// Aho-Corasick failure transitions computed via a helper trie of
// pattern's reversed prefixes. Every state is final with weight 1̄ — the
// machine is total over vocab, not a language acceptor.
func BuildSubstring(vocab *symbol.Vocabulary, pattern []symbol.Symbol, alpha semiring.Weight, sr semiring.Semiring, opts BuildOptions) (*fst.Acceptor, error) {
	if vocab == nil || vocab.Len() == 0 {
		return nil, &BuildError{Kind: EmptyVocabulary, Message: "vocabulary has no symbols"}
	}
	if len(pattern) < 2 {
		return nil, &BuildError{Kind: InvalidPattern, Message: "substring pattern must have length >= 2"}
	}
	patternLabels, err := canonicalLabels(vocab, pattern)
	if err != nil {
		return nil, err
	}
	k := len(patternLabels)

	// P: helper trie over reversed non-empty prefixes of pattern,
	// mapping reverse(pattern[0:i]) -> i.
	p := trie.New[int]()
	for i := 1; i <= k; i++ {
		p.Insert(reverseLabels(patternLabels[:i]), i)
	}

	b := fst.NewBuilderWithCapacity(k + 1)
	states := make([]fst.StateID, k+1)
	for i := 0; i <= k; i++ {
		states[i] = b.AddState()
	}
	if err := b.SetInitial(states[0]); err != nil {
		return nil, &BuildError{Kind: BackendFailure, Message: "SetInitial", Cause: err}
	}
	for i := 0; i <= k; i++ {
		if err := b.SetFinal(states[i], sr.One()); err != nil {
			return nil, &BuildError{Kind: BackendFailure, Message: "SetFinal", Cause: err}
		}
	}

	seen := sparseset.New(uint32(vocab.Len()))
	defaultMiss := trie.Entry[int]{Value: 0}

	for i := 0; i < k; i++ {
		ni := patternLabels[i]
		for _, s := range vocab.Symbols() {
			sIdx, _ := vocab.Index(s)
			sLabel, _ := vocab.CanonicalLabel(s)

			var to fst.StateID
			var w semiring.Weight
			switch {
			case sLabel == ni:
				to = states[i+1]
				if i+1 == k {
					w = alpha
				} else {
					w = sr.One()
				}
			case seen.Contains(sIdx):
				q := reverseLabels(append(append([]symbol.Label(nil), patternLabels[:i]...), sLabel))
				j := p.LongestPrefixItem(q, defaultMiss).Value
				to = states[j]
				if j == k {
					w = alpha
				} else {
					w = sr.One()
				}
			default:
				to = states[0]
				w = sr.One()
			}
			if err := addArcsForSymbol(b, vocab, states[i], to, s, w); err != nil {
				return nil, err
			}
		}
		idx, _ := vocab.Index(pattern[i])
		seen.Insert(idx)
	}

	// Terminal state k: every symbol either extends some shorter
	// occurrence (failure lookup) or restarts at state 0.
	for _, s := range vocab.Symbols() {
		sIdx, _ := vocab.Index(s)
		sLabel, _ := vocab.CanonicalLabel(s)

		var to fst.StateID
		var w semiring.Weight
		if seen.Contains(sIdx) {
			q := reverseLabels(append(append([]symbol.Label(nil), patternLabels...), sLabel))
			j := p.LongestPrefixItem(q, defaultMiss).Value
			to = states[j]
			if j == k {
				w = alpha
			} else {
				w = sr.One()
			}
		} else {
			to = states[0]
			w = sr.One()
		}
		if err := addArcsForSymbol(b, vocab, states[k], to, s, w); err != nil {
			return nil, err
		}
	}

	a, err := b.Build(opts.Sort)
	if err != nil {
		return nil, &BuildError{Kind: BackendFailure, Message: "Build", Cause: err}
	}
	return a, nil
}

// addArcsForSymbol installs one arc per label s expands to: a masked
// symbol fires one arc per member of its label set, all sharing the
// same destination and weight.
func addArcsForSymbol(b *fst.Builder, vocab *symbol.Vocabulary, from, to fst.StateID, s symbol.Symbol, w semiring.Weight) error {
	labels, ok := vocab.LabelsOf(s)
	if !ok {
		return &BuildError{Kind: InvalidPattern, Message: "symbol not in vocabulary"}
	}
	for _, l := range labels {
		if err := b.AddArc(from, to, l, l, w); err != nil {
			return &BuildError{Kind: BackendFailure, Message: "AddArc", Cause: err}
		}
	}
	return nil
}
