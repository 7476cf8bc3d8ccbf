// Package lexical classifies single words as likely gibberish using
// independent statistical heuristics over English text.
package lexical

import (
	"strings"
	"unicode"
)

// Punctuation is the ASCII punctuation set stripped from both ends of a word.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

const (
	minVowelRatio      = 0.2
	maxConsonantRun    = 4
	minFrequencyLength = 4
	maxAvgDeviation    = 0.5
	maxInvalidPairs    = 1
	failThreshold      = 2
)

// letterFrequency is the relative frequency of each letter in English text,
// in percent.
var letterFrequency = map[rune]float64{
	'e': 12.7, 't': 9.1, 'a': 8.2, 'o': 7.5, 'i': 7.0,
	'n': 6.7, 's': 6.3, 'h': 6.1, 'r': 6.0, 'd': 4.3,
	'l': 4.0, 'c': 2.8, 'u': 2.8, 'm': 2.4, 'w': 2.4,
	'f': 2.2, 'g': 2.0, 'y': 2.0, 'p': 1.9, 'b': 1.5,
	'v': 0.98, 'k': 0.77, 'j': 0.15, 'x': 0.15,
	'q': 0.095, 'z': 0.074,
}

// validPairs are consonant clusters that occur naturally in English.
var validPairs = map[string]struct{}{
	"bl": {}, "br": {}, "ch": {}, "cl": {}, "cr": {}, "dr": {}, "fl": {}, "fr": {}, "gl": {}, "gr": {},
	"ph": {}, "pl": {}, "pr": {}, "sc": {}, "sh": {}, "sk": {}, "sl": {}, "sm": {}, "sn": {}, "sp": {},
	"st": {}, "sw": {}, "th": {}, "tr": {}, "tw": {}, "wh": {}, "wr": {},
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// Clean strips surrounding ASCII punctuation and lowercases the word.
func Clean(word string) string {
	return strings.ToLower(strings.Trim(word, Punctuation))
}

// Checks records which heuristics a word failed.
type Checks struct {
	LowVowelRatio      bool
	LongConsonantRun   bool
	FrequencyDeviation bool
	InvalidPairs       bool
}

// Failed returns how many heuristics failed.
func (c Checks) Failed() int {
	n := 0
	for _, failed := range []bool{c.LowVowelRatio, c.LongConsonantRun, c.FrequencyDeviation, c.InvalidPairs} {
		if failed {
			n++
		}
	}
	return n
}

// Gibberish reports whether enough heuristics failed.
func (c Checks) Gibberish() bool {
	return c.Failed() >= failThreshold
}

// Evaluate runs every heuristic against the cleaned form of word. The second
// result is false when the word is skipped: empty, shorter than two letters,
// or containing anything other than letters.
func Evaluate(word string) (Checks, bool) {
	runes := []rune(Clean(word))
	if len(runes) < 2 {
		return Checks{}, false
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return Checks{}, false
		}
	}

	return Checks{
		LowVowelRatio:      lowVowelRatio(runes),
		LongConsonantRun:   longConsonantRun(runes),
		FrequencyDeviation: len(runes) >= minFrequencyLength && frequencyDeviation(runes),
		InvalidPairs:       invalidPairs(runes),
	}, true
}

// IsGibberish reports whether word fails at least two of the four checks.
func IsGibberish(word string) bool {
	checks, ok := Evaluate(word)
	return ok && checks.Gibberish()
}

func lowVowelRatio(runes []rune) bool {
	vowels := 0
	for _, r := range runes {
		if isVowel(r) {
			vowels++
		}
	}
	return float64(vowels)/float64(len(runes)) < minVowelRatio
}

func longConsonantRun(runes []rune) bool {
	run := 0
	for _, r := range runes {
		if isVowel(r) {
			run = 0
			continue
		}
		run++
		if run > maxConsonantRun {
			return true
		}
	}
	return false
}

// frequencyDeviation compares observed letter frequencies with English
// norms. Letters missing from the table add nothing to the sum but still
// count as distinct letters.
func frequencyDeviation(runes []rune) bool {
	counts := make(map[rune]int)
	for _, r := range runes {
		counts[r]++
	}

	deviation := 0.0
	total := float64(len(runes))
	for r, count := range counts {
		expected, ok := letterFrequency[r]
		if !ok {
			continue
		}
		diff := expected/100 - float64(count)/total
		if diff < 0 {
			diff = -diff
		}
		deviation += diff
	}
	return deviation/float64(len(counts)) > maxAvgDeviation
}

func invalidPairs(runes []rune) bool {
	invalid := 0
	for i := 0; i+1 < len(runes); i++ {
		a, b := runes[i], runes[i+1]
		if isVowel(a) || isVowel(b) {
			continue
		}
		if _, ok := validPairs[string([]rune{a, b})]; ok {
			continue
		}
		invalid++
		if invalid > maxInvalidPairs {
			return true
		}
	}
	return false
}
