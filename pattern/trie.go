package pattern

import (
	"github.com/wilkeraziz/pyfst/fst"
	"github.com/wilkeraziz/pyfst/semiring"
	"github.com/wilkeraziz/pyfst/symbol"
	"github.com/wilkeraziz/pyfst/trie"
)

// PatternWeight is one entry of a trie pattern set: a symbol sequence
// (length >= 1) and the weight it contributes whenever it occurs as a
// suffix of the scanned string.
type PatternWeight struct {
	Pattern []symbol.Symbol
	Weight  semiring.Weight
}

// PatternSet is the input to BuildTrie: a collection of (pattern, weight)
// pairs with no duplicate pattern keys.
type PatternSet []PatternWeight

// BuildTrie constructs the multi-pattern reweighter: one state per
// reversed prefix of any pattern in patterns, plus the empty-prefix root.
// Each state's weight is the semiring sum of every pattern that is a
// suffix of the string leading there, computed by percolating raw
// pattern weights down the reverse-prefix trie in ascending lexicographic
// key order (every prefix of a key sorts before it, so a state's
// failure-link ancestor is always already resolved). Every state is final with weight 1̄; the machine is
// total over vocab.
func BuildTrie(vocab *symbol.Vocabulary, patterns PatternSet, sr semiring.Semiring, opts BuildOptions) (*fst.Acceptor, error) {
	if vocab == nil || vocab.Len() == 0 {
		return nil, &BuildError{Kind: EmptyVocabulary, Message: "vocabulary has no symbols"}
	}

	canon := make([][]symbol.Label, len(patterns))
	seenKeys := make(map[string]bool, len(patterns))
	for i, pw := range patterns {
		if len(pw.Pattern) == 0 {
			return nil, &BuildError{Kind: InvalidPattern, Message: "trie pattern must have length >= 1"}
		}
		ls, err := canonicalLabels(vocab, pw.Pattern)
		if err != nil {
			return nil, err
		}
		key := labelKey(ls)
		if seenKeys[key] {
			return nil, &BuildError{Kind: DuplicatePattern, Message: "duplicate pattern in set"}
		}
		seenKeys[key] = true
		canon[i] = ls
	}

	revTrie := trie.New[fst.StateID]()
	own := make(map[fst.StateID]semiring.Weight)

	b := fst.NewBuilder()
	root := b.AddState()
	if err := b.SetInitial(root); err != nil {
		return nil, &BuildError{Kind: BackendFailure, Message: "SetInitial", Cause: err}
	}
	if err := b.SetFinal(root, sr.One()); err != nil {
		return nil, &BuildError{Kind: BackendFailure, Message: "SetFinal", Cause: err}
	}
	revTrie.Insert(nil, root)
	own[root] = sr.Zero()

	// Allocate one state per distinct reversed prefix, reusing shared
	// prefixes across patterns (find the longest proper prefix already
	// present is implicit: Get short-circuits on any prefix length
	// already inserted by an earlier pattern).
	for _, ls := range canon {
		for i := 1; i <= len(ls); i++ {
			revKey := reverseLabels(ls[:i])
			if _, ok := revTrie.Get(revKey); ok {
				continue
			}
			id := b.AddState()
			if err := b.SetFinal(id, sr.One()); err != nil {
				return nil, &BuildError{Kind: BackendFailure, Message: "SetFinal", Cause: err}
			}
			revTrie.Insert(revKey, id)
			own[id] = sr.Zero()
		}
	}
	// A pattern's own terminal node may have been allocated above as a
	// scaffold prefix of a longer pattern (or vice versa); either way its
	// raw contribution is the pattern's own weight.
	for i, ls := range canon {
		id, _ := revTrie.Get(reverseLabels(ls))
		own[id] = patterns[i].Weight
	}

	// Percolate: visit every non-root entry in ascending key order
	// (prefixes before their extensions) and fold in the failure-link
	// ancestor's already resolved weight.
	weights := make(map[fst.StateID]semiring.Weight, len(own))
	for id, w := range own {
		weights[id] = w
	}
	var entries []trie.Entry[fst.StateID]
	revTrie.Iter(func(e trie.Entry[fst.StateID]) bool {
		entries = append(entries, e)
		return true
	})
	rootDefault := trie.Entry[fst.StateID]{Value: root}
	for _, e := range entries {
		if len(e.Key) == 0 {
			continue
		}
		parent := revTrie.LongestPrefixItem(e.Key[:len(e.Key)-1], rootDefault)
		weights[e.Value] = sr.Add(weights[e.Value], weights[parent.Value])
	}

	seenSymbol := make(map[symbol.Label]bool)
	for _, ls := range canon {
		for _, l := range ls {
			seenSymbol[l] = true
		}
	}

	for _, e := range entries {
		for _, s := range vocab.Symbols() {
			sLabel, _ := vocab.CanonicalLabel(s)

			to := root
			if seenSymbol[sLabel] {
				q := make([]symbol.Label, 0, len(e.Key)+1)
				q = append(q, sLabel)
				q = append(q, e.Key...)
				to = revTrie.LongestPrefixItem(q, rootDefault).Value
			}
			// A destination with no contributing pattern aggregates to
			// 0̄; as an arc weight that must read as "nothing happened"
			// under the semiring's product, i.e. 1̄ (mirrors the
			// substring matcher's literal 1̄ on every non-matching arc).
			w := weights[to]
			if w == sr.Zero() {
				w = sr.One()
			}
			if err := addArcsForSymbol(b, vocab, e.Value, to, s, w); err != nil {
				return nil, err
			}
		}
	}

	a, err := b.Build(opts.Sort)
	if err != nil {
		return nil, &BuildError{Kind: BackendFailure, Message: "Build", Cause: err}
	}
	return a, nil
}
