// Package stringsutil holds small string helpers shared by the renderers.
package stringsutil

import "unicode/utf8"

const ellipsis = "..."

// ShortHash truncates a hex hash to n characters. Returns fallback if hash is empty.
func ShortHash(hash string, n int, fallback string) string {
	if hash == "" {
		return fallback
	}
	if len(hash) > n {
		return hash[:n]
	}
	return hash
}

// Truncate shortens s to at most n runes, ending in "..." when cut.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	if n <= len(ellipsis) {
		return string([]rune(s)[:n])
	}
	return string([]rune(s)[:n-len(ellipsis)]) + ellipsis
}

// UniqueStrings returns a new slice with duplicates removed, preserving first-seen order.
func UniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	unique := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		unique = append(unique, value)
	}
	return unique
}
