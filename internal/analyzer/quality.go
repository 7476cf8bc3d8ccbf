package analyzer

import (
	"strings"

	"github.com/samzong/gmq/internal/lexical"
	"github.com/samzong/gmq/internal/stringsutil"
)

// QualityValidator flags words that look like keyboard mashing.
type QualityValidator struct {
	message string
}

// NewQualityValidator prepares the checks for one message.
func NewQualityValidator(message string) *QualityValidator {
	return &QualityValidator{message: message}
}

// GibberishWords returns the cleaned form of every flagged word, once each,
// in the order they first appear.
func (v *QualityValidator) GibberishWords() []string {
	var flagged []string
	for _, word := range strings.Fields(v.message) {
		if lexical.IsGibberish(word) {
			flagged = append(flagged, lexical.Clean(word))
		}
	}
	return stringsutil.UniqueStrings(flagged)
}

// CheckAll returns at most one issue listing the flagged words.
func (v *QualityValidator) CheckAll() []Issue {
	words := v.GibberishWords()
	if len(words) == 0 {
		return nil
	}
	return []Issue{{
		Severity:   SeverityHigh,
		Message:    "Potential gibberish words detected in commit message",
		Suggestion: "Review and correct the following words: " + strings.Join(words, ", "),
	}}
}
