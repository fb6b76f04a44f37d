// Package textnorm turns free text into the lowercase bag-of-words form the genre model was trained on.
package textnorm

import (
	"strings"

	"github.com/samber/lo"
)

// Normalizer applies Clean and stopword removal with a fixed stopword set.
type Normalizer struct {
	stopwords StopwordSet
}

func NewNormalizer(stopwords StopwordSet) Normalizer {
	return Normalizer{stopwords: stopwords}
}

func (n Normalizer) Stopwords() StopwordSet {
	return n.stopwords
}

func (n Normalizer) Clean(text string) string {
	return Clean(text)
}

func (n Normalizer) RemoveStopwords(text string) string {
	return RemoveStopwords(text, n.stopwords)
}

func (n Normalizer) FullClean(text string) string {
	return FullClean(text, n.stopwords)
}

// Clean deletes apostrophes without leaving a gap, turns every other non ASCII letter
// into a space, collapses whitespace and lowercases.
// "Don't stop" becomes "dont stop", "Movie2 Night!!" becomes "movie night".
func Clean(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' && i+1 < len(runes) && isApostrophe(runes[i+1]) {
			i++
			continue
		}
		switch {
		case isApostrophe(r):
		case r >= 'a' && r <= 'z':
			sb.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(r + ('a' - 'A'))
		default:
			sb.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// RemoveStopwords drops every whitespace separated token found in stopwords.
// Surviving tokens keep their order.
func RemoveStopwords(text string, stopwords StopwordSet) string {
	kept := lo.Filter(strings.Fields(text), func(token string, _ int) bool {
		return !stopwords.Contains(token)
	})
	return strings.Join(kept, " ")
}

// FullClean is Clean followed by RemoveStopwords.
func FullClean(text string, stopwords StopwordSet) string {
	return RemoveStopwords(Clean(text), stopwords)
}

// isApostrophe matches the ASCII apostrophe and the typographic single quotes.
func isApostrophe(r rune) bool {
	return r == '\'' || r == '’' || r == '‘'
}
