// Package wordlist provides word list filtering helpers.
package wordlist

import (
	"strings"
	"unicode/utf8"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForLang returns a language-specific filter for word lists.
func FilterForLang(lang string) FilterFunc {
	switch strings.ToLower(lang) {
	case "en":
		return filterEnglishASCII
	default:
		return func(string) bool { return true }
	}
}

func filterEnglishASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}

// FilterForLength keeps words of exactly n characters.
func FilterForLength(n int) FilterFunc {
	return func(word string) bool {
		return utf8.RuneCountInString(word) == n
	}
}

// Apply keeps the words accepted by every filter, preserving order.
func Apply(words []string, filters ...FilterFunc) []string {
	out := make([]string, 0, len(words))
next:
	for _, word := range words {
		for _, keep := range filters {
			if !keep(word) {
				continue next
			}
		}
		out = append(out, word)
	}
	return out
}

// Dedupe drops repeated words, keeping the first occurrence.
func Dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, word := range words {
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}
	return out
}
