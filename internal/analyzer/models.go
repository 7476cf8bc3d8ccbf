package analyzer

import "errors"

// Severity ranks how serious an issue is.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Rank orders severities for rendering, lowest first. Unknown severities
// sort last.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	}
	return 3
}

// Valid reports whether s is one of the three known levels.
func (s Severity) Valid() bool {
	return s.Rank() < 3
}

// Icon is the marker shown next to an issue in a report.
func (s Severity) Icon() string {
	switch s {
	case SeverityHigh:
		return "🔴"
	case SeverityMedium:
		return "🟡"
	case SeverityLow:
		return "🔵"
	}
	return "⚪"
}

// Issue is a single problem found in a commit message.
type Issue struct {
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion"`
}

// IsZero reports whether the issue carries no content.
func (i Issue) IsZero() bool {
	return i == Issue{}
}

// Author identifies who wrote a commit.
type Author struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// CommitMetadata is the commit record a report is rendered for.
type CommitMetadata struct {
	ID        string `json:"id"`
	Author    Author `json:"author"`
	Message   string `json:"message"`
	URL       string `json:"url"`
	Timestamp string `json:"timestamp"`
}

var (
	// ErrMissingExample means the classifier chose a type that has no
	// example commit configured.
	ErrMissingExample = errors.New("no example commit for type")
	// ErrInvalidTimestamp is returned by Format for unparseable timestamps.
	ErrInvalidTimestamp = errors.New("invalid commit timestamp")
)
