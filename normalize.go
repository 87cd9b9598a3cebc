package cdpchat

import (
	"regexp"
	"strings"
)

// tokenPattern matches alphabetic terms, keeping internal apostrophes
// ("what's" tokenizes as a single term). Punctuation and standalone
// numbers are dropped.
var tokenPattern = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)

// Normalizer turns raw question or chunk text into normalized terms:
// lowercased, punctuation stripped, stop-words removed. The zero value is
// not usable; construct with NewNormalizer so the stop-word set is fixed.
type Normalizer struct {
	stopWords map[string]struct{}
}

// NewNormalizer creates a Normalizer with the given stop-word set.
func NewNormalizer(stopWords []string) *Normalizer {
	m := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		m[strings.ToLower(w)] = struct{}{}
	}
	return &Normalizer{stopWords: m}
}

// Normalize tokenizes text into lowercase terms with stop-words removed.
// Returns nil if no terms survive.
func (n *Normalizer) Normalize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	if len(raw) == 0 {
		return nil
	}

	terms := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.Trim(t, "'’")
		if t == "" {
			continue
		}
		if _, isStop := n.stopWords[t]; isStop {
			continue
		}
		terms = append(terms, t)
	}
	if len(terms) == 0 {
		return nil
	}
	return terms
}

// DefaultStopWords returns the default English stop-word set.
func DefaultStopWords() []string {
	return []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else",
		"for", "to", "of", "in", "on", "at", "by", "with", "as",
		"is", "are", "was", "were", "be", "been", "being", "am",
		"it", "its", "this", "that", "these", "those", "from",
		"up", "down", "over", "under", "again", "further",
		"than", "so", "such", "into", "about", "between", "through",
		"during", "before", "after", "above", "below", "out", "off",
		"own", "same", "too", "very", "can", "will", "just", "should",
		"now", "do", "does", "did", "doing", "i", "you", "we", "they",
		"he", "she", "my", "your", "our", "their", "what", "which",
		"who", "whom", "how", "when", "where", "why", "me", "us",
	}
}
