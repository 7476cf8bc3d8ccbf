package analyzer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samzong/gmq/internal/classifier"
	"github.com/samzong/gmq/internal/dictionary"
	"github.com/samzong/gmq/internal/lexical"
)

const (
	maxSubjectLength  = 50
	maxBodyLineLength = 72
)

// FormatValidator checks a message against the conventional commit layout.
// It reads its dictionaries but never modifies them.
type FormatValidator struct {
	msg        CommitMessage
	types      *dictionary.TypeDictionary
	examples   *dictionary.ExampleDictionary
	classifier *classifier.Classifier
}

// NewFormatValidator prepares the checks for one message.
func NewFormatValidator(message string, types *dictionary.TypeDictionary, examples *dictionary.ExampleDictionary, c *classifier.Classifier) *FormatValidator {
	return &FormatValidator{
		msg:        ParseMessage(message),
		types:      types,
		examples:   examples,
		classifier: c,
	}
}

// CheckAll runs subject, body and type checks in that order and returns
// every issue found. The error is reserved for configuration problems.
func (v *FormatValidator) CheckAll() ([]Issue, error) {
	var issues []Issue
	issues = append(issues, v.checkSubject()...)
	issues = append(issues, v.checkBody()...)
	typeIssues, err := v.checkType()
	if err != nil {
		return nil, err
	}
	return append(issues, typeIssues...), nil
}

func (v *FormatValidator) checkSubject() []Issue {
	var issues []Issue
	subject := v.msg.Subject

	if desc, ok := v.msg.Description(); ok && desc != "" {
		r, _ := utf8.DecodeRuneInString(desc)
		if unicode.ToLower(r) != r {
			issues = append(issues, Issue{
				Severity:   SeverityHigh,
				Message:    "Subject not in lowercase",
				Suggestion: "Subject must start with a lowercase letter, unless it's a proper noun or acronym.",
			})
		}
	}

	if subject != "" {
		r, _ := utf8.DecodeLastRuneInString(subject)
		if r < utf8.RuneSelf && strings.ContainsRune(lexical.Punctuation, r) {
			issues = append(issues, Issue{
				Severity:   SeverityHigh,
				Message:    "Subject ends with a punctuation",
				Suggestion: "Remove the punctuation at the end of the subject line.",
			})
		}
	}

	if utf8.RuneCountInString(subject) > maxSubjectLength {
		issues = append(issues, Issue{
			Severity:   SeverityHigh,
			Message:    "Subject exceeds 50 characters",
			Suggestion: "Subject too long, keep it under 50 characters.",
		})
	}
	return issues
}

func (v *FormatValidator) checkBody() []Issue {
	if !v.msg.HasBody() {
		return []Issue{{
			Severity:   SeverityLow,
			Message:    "Commit message may be missing detailed context",
			Suggestion: "Consider splitting your commit message into a concise subject and a detailed body.",
		}}
	}

	var issues []Issue
	if !v.msg.HasBlankLine() {
		issues = append(issues, Issue{
			Severity:   SeverityMedium,
			Message:    "Body missing a blank line after subject",
			Suggestion: "Add a blank line between the subject and body.",
		})
	}

	for _, line := range strings.Split(v.msg.Body, "\n") {
		if utf8.RuneCountInString(line) > maxBodyLineLength {
			issues = append(issues, Issue{
				Severity:   SeverityHigh,
				Message:    "Body lines exceed 72 characters",
				Suggestion: "Body lines too long, wrap text at 72 characters per line.",
			})
			break
		}
	}
	return issues
}

func (v *FormatValidator) checkType() ([]Issue, error) {
	token := v.msg.TypeToken
	if token == "" {
		return []Issue{{
			Severity:   SeverityHigh,
			Message:    "Commit message type unidentifiable",
			Suggestion: "Seperate the commit type from the rest of the subject using ':'.",
		}}, nil
	}

	var issues []Issue
	lowered := strings.ToLower(token)
	if token != lowered {
		issues = append(issues, Issue{
			Severity:   SeverityHigh,
			Message:    "Invalid commit type case",
			Suggestion: "Commit type must be lowercase (e.g., fix, feat, docs).",
		})
	}

	if !v.types.Has(lowered) {
		label := v.classifier.Classify(v.msg.Raw)
		example, ok := v.examples.Example(label)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingExample, label)
		}
		issues = append(issues, Issue{
			Severity:   SeverityHigh,
			Message:    "Invalid commit type",
			Suggestion: fmt.Sprintf("Use '%s' for this kind of change\n└─ Example:\n• ```%s```", label, example),
		})
	}
	return issues, nil
}
