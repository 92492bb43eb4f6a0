// Package textmatch implements the keyword-overlap scoring shared by the
// question selector and the coverage fallback scorer.
package textmatch

import "strings"

// Tokenize lowercases a free-text response and splits it into words.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// MatchesKeyword reports whether any response word matches the keyword.
// A word matches when it is longer than 2 characters AND is a substring of
// the keyword or the keyword is a substring of the word. The two-directional
// test tolerates stemming and pluralization without a real stemmer.
func MatchesKeyword(words []string, keyword string) bool {
	keyword = strings.ToLower(keyword)
	for _, word := range words {
		if len(word) <= 2 {
			continue
		}
		if strings.Contains(keyword, word) || strings.Contains(word, keyword) {
			return true
		}
	}
	return false
}

// KeywordScore counts how many of the keywords are matched by the words.
func KeywordScore(words []string, keywords []string) int {
	score := 0
	for _, kw := range keywords {
		if MatchesKeyword(words, kw) {
			score++
		}
	}
	return score
}
