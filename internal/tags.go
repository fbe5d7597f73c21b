package internal

import (
	"regexp"
	"strings"
)

// punctRuns matches maximal runs of ASCII punctuation, which are deleted
// outright before tokenizing ("well-known" becomes "wellknown").
var punctRuns = regexp.MustCompile(`[[:punct:]]+`)

// StopWords is the set of common English words excluded from tags.
type StopWords map[string]struct{}

// LoadStopWords builds the stop-word set from the embedded word list.
func LoadStopWords() StopWords {
	set := make(StopWords)
	for _, w := range strings.Fields(stopWordsText) {
		set[w] = struct{}{}
	}
	return set
}

func (s StopWords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// ExtractTags turns a free-text alt description into ordered tags: ASCII
// lowercase fold, punctuation runs removed, whitespace split, stop words
// dropped. Duplicates are kept.
func ExtractTags(text string, stop StopWords) []string {
	lowered := asciiLower(text)
	stripped := punctRuns.ReplaceAllString(lowered, "")

	tags := []string{}
	for _, tok := range strings.Fields(stripped) {
		if stop.Contains(tok) {
			continue
		}
		tags = append(tags, tok)
	}
	return tags
}

// asciiLower folds A-Z only, leaving other bytes untouched.
func asciiLower(s string) string {
	b := []byte(s)
	for i := 0; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
