// Package textproc strips digits and stopwords from free text before it
// is scored.
package textproc

import (
	"strings"
	"unicode"
)

// Normalizer removes digits and stopwords. It is immutable after
// construction and safe for concurrent use.
type Normalizer struct {
	stopwords map[string]struct{}
}

// NewNormalizer builds a Normalizer from the given stopword list.
// Matching is exact and case-sensitive.
func NewNormalizer(words []string) *Normalizer {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return &Normalizer{stopwords: set}
}

// Default returns a Normalizer using the English stopword list.
func Default() *Normalizer {
	return NewNormalizer(EnglishStopwords)
}

// IsStopword reports whether word is in the stopword set.
func (n *Normalizer) IsStopword(word string) bool {
	_, ok := n.stopwords[word]
	return ok
}

// Normalize drops every decimal digit, splits the rest on whitespace,
// removes stopword tokens and rejoins the survivors with single spaces.
// Input made only of digits, stopwords and whitespace yields "".
//
// "I" survives because the list is lowercase and no case folding is done.
func (n *Normalizer) Normalize(text string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1
		}
		return r
	}, text)

	tokens := strings.Fields(stripped)
	kept := tokens[:0]
	for _, tok := range tokens {
		if n.IsStopword(tok) {
			continue
		}
		kept = append(kept, tok)
	}

	return strings.Join(kept, " ")
}
