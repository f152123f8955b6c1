package pattern

import (
	"strconv"
	"strings"

	"github.com/wilkeraziz/pyfst/symbol"
)

// canonicalLabels maps a pattern's symbol sequence to the sequence of its
// canonical labels, failing if any symbol is outside the vocabulary.
func canonicalLabels(vocab *symbol.Vocabulary, pattern []symbol.Symbol) ([]symbol.Label, error) {
	out := make([]symbol.Label, len(pattern))
	for i, s := range pattern {
		l, ok := vocab.CanonicalLabel(s)
		if !ok {
			return nil, &BuildError{Kind: InvalidPattern, Message: "pattern symbol is not in the vocabulary"}
		}
		out[i] = l
	}
	return out, nil
}

// reverseLabels returns a freshly allocated reversal of ls.
func reverseLabels(ls []symbol.Label) []symbol.Label {
	out := make([]symbol.Label, len(ls))
	for i, l := range ls {
		out[len(ls)-1-i] = l
	}
	return out
}

// labelKey renders a label sequence as a map key, for pattern-set dedup.
func labelKey(ls []symbol.Label) string {
	var b strings.Builder
	for _, l := range ls {
		b.WriteString(strconv.FormatInt(int64(l), 10))
		b.WriteByte(',')
	}
	return b.String()
}
