package analyzer

import "strings"

// CommitMessage is a raw message split into its parts.
type CommitMessage struct {
	Raw     string
	Subject string
	// Body is empty when the message has no body.
	Body string
	// TypeToken is the text before the first "(" or ":" of the subject,
	// empty when the subject has neither.
	TypeToken string
}

// ParseMessage splits raw into subject and body. A blank line separates
// them when present, otherwise the first newline does.
func ParseMessage(raw string) CommitMessage {
	m := CommitMessage{Raw: raw}
	sep := "\n"
	if strings.Contains(raw, "\n\n") {
		sep = "\n\n"
	}
	m.Subject, m.Body, _ = strings.Cut(raw, sep)

	if i := strings.Index(m.Subject, "("); i >= 0 {
		m.TypeToken = m.Subject[:i]
	} else if i := strings.Index(m.Subject, ":"); i >= 0 {
		m.TypeToken = m.Subject[:i]
	}
	return m
}

// HasBody reports whether anything follows the subject.
func (m CommitMessage) HasBody() bool {
	return m.Body != ""
}

// HasBlankLine reports whether the subject is followed by a blank line.
func (m CommitMessage) HasBlankLine() bool {
	return strings.Contains(m.Raw, "\n\n")
}

// Description is the subject text after the first ":", trimmed.
func (m CommitMessage) Description() (string, bool) {
	_, after, ok := strings.Cut(m.Subject, ":")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(after), true
}
