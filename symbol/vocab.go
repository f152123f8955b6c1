// Package symbol models the input alphabet that automaton constructors
// build over: a finite, fixed vocabulary of opaque symbols, each mapping
// to one or more output labels.
package symbol

// Label is an arc's input/output label. Small integers suffice; labels
// are ordered so a trie keyed by label sequences can iterate in a
// well-defined lexicographic order.
type Label int32

// Symbol is an opaque, equatable, hashable token from the vocabulary.
// Any comparable Go value works (small ints, strings, structs of
// comparable fields).
type Symbol = any

// Vocabulary is a finite, fixed alphabet. In direct mode a symbol's sole
// label is a synthetic one assigned by position at construction; in masked mode a symbol
// expands to a caller-supplied, non-empty, ordered sequence of labels.
//
// Iteration (Symbols) always proceeds in insertion order, so acceptors
// built without BuildOptions.Sort still produce deterministic arc lists
// from one construction to the next.
type Vocabulary struct {
	order  []Symbol
	labels map[Symbol][]Label
	index  map[Symbol]uint32
}

// NewDirectVocabulary builds a vocabulary where every symbol's label set
// is the singleton of a synthetic label assigned by position. Duplicate
// symbols are ignored after the first occurrence.
func NewDirectVocabulary(symbols ...Symbol) (*Vocabulary, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyVocabulary
	}
	v := &Vocabulary{labels: make(map[Symbol][]Label, len(symbols)), index: make(map[Symbol]uint32, len(symbols))}
	var next Label
	for _, s := range symbols {
		if _, ok := v.labels[s]; ok {
			continue
		}
		v.index[s] = uint32(len(v.order))
		v.order = append(v.order, s)
		v.labels[s] = []Label{next}
		next++
	}
	return v, nil
}

// NewMaskedVocabulary builds a vocabulary from an explicit symbol->labels
// mapping, preserving the given iteration order. Every symbol must map to
// a non-empty label slice, and no label may be shared by two symbols,
// since shared labels would make two distinct symbols indistinguishable
// on the wire; violating either is ErrInconsistentMask.
func NewMaskedVocabulary(order []Symbol, labels map[Symbol][]Label) (*Vocabulary, error) {
	if len(order) == 0 {
		return nil, ErrEmptyVocabulary
	}
	seenLabels := make(map[Label]Symbol, len(order))
	v := &Vocabulary{
		order:  append([]Symbol(nil), order...),
		labels: make(map[Symbol][]Label, len(order)),
		index:  make(map[Symbol]uint32, len(order)),
	}
	for i, s := range order {
		ls, ok := labels[s]
		if !ok || len(ls) == 0 {
			return nil, &InconsistentMaskError{Symbol: s}
		}
		cp := append([]Label(nil), ls...)
		v.labels[s] = cp
		v.index[s] = uint32(i)
		for _, l := range cp {
			if owner, dup := seenLabels[l]; dup {
				return nil, &InconsistentMaskError{Symbol: s, Label: l, OtherSymbol: owner}
			}
			seenLabels[l] = s
		}
	}
	return v, nil
}

// Symbols returns the vocabulary's symbols in insertion order.
func (v *Vocabulary) Symbols() []Symbol {
	return v.order
}

// Len returns the number of distinct symbols in the vocabulary.
func (v *Vocabulary) Len() int {
	return len(v.order)
}

// LabelsOf returns the ordered labels a symbol expands to. Returns nil,
// false if the symbol is not in the vocabulary.
func (v *Vocabulary) LabelsOf(s Symbol) ([]Label, bool) {
	ls, ok := v.labels[s]
	return ls, ok
}

// Index returns s's position in insertion order, a dense 0..Len()-1
// index suitable for sizing a bounded set keyed by symbol identity.
func (v *Vocabulary) Index(s Symbol) (uint32, bool) {
	i, ok := v.index[s]
	return i, ok
}

// CanonicalLabel returns a single label that identifies s uniquely among
// the vocabulary's symbols: the first label in LabelsOf(s). Masked-mode
// construction already rejects labels shared across symbols, so this is
// a bijection between symbols and their canonical labels, safe to use as
// a key wherever only symbol identity (not the full masked label set)
// matters.
func (v *Vocabulary) CanonicalLabel(s Symbol) (Label, bool) {
	ls, ok := v.labels[s]
	if !ok || len(ls) == 0 {
		return 0, false
	}
	return ls[0], true
}
