package analyzer

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samzong/gmq/internal/stringsutil"
)

const reportTimeLayout = "3:04PM. Monday, January 2, 2006."

// timestampLayouts are tried in order when parsing commit timestamps.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

const resourcesSection = "\n💡 Resources\n" +
	"└─ Conventional Commits: <https://www.conventionalcommits.org|Conventional Commits>\n" +
	"└─ Commit Best Practices: <https://dev.to/sheraz4194/good-commit-vs-bad-commit-best-practices-for-git-1plc|Best Practices>\n" +
	"└─ Git Best Practices: <https://git-scm.com/book/en/v2/Distributed-Git-Contributing-to-a-Project|Git Contributing>"

// ParseTimestamp reads an ISO-8601 timestamp. Timestamps without an offset
// are taken as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}

// SortIssues orders issues by severity. Issues of equal severity keep their
// detection order.
func SortIssues(issues []Issue) []Issue {
	sorted := make([]Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity.Rank() < sorted[j].Severity.Rank()
	})
	return sorted
}

// Format renders a report for commit. The analysis section is omitted when
// there are no issues.
func Format(commit CommitMetadata, issues []Issue) (string, error) {
	ts, err := ParseTimestamp(commit.Timestamp)
	if err != nil {
		return "", err
	}

	author := commit.Author.Name
	if commit.Author.Email != "" {
		author = fmt.Sprintf("%s (%s)", commit.Author.Name, commit.Author.Email)
	}

	var b strings.Builder
	b.WriteString("📝 *Commit Details*\n")
	fmt.Fprintf(&b, "└─ Hash: `%s`\n", stringsutil.ShortHash(commit.ID, 8, ""))
	fmt.Fprintf(&b, "└─ Author: %s\n", author)
	fmt.Fprintf(&b, "└─ URL: <%s|commit url>\n", commit.URL)
	fmt.Fprintf(&b, "└─ Time: %s\n", ts.Format(reportTimeLayout))
	b.WriteString("└─ Message:\n")
	fmt.Fprintf(&b, "• ```%s```\n", commit.Message)

	if len(issues) > 0 {
		entries := make([]string, 0, len(issues))
		for _, issue := range SortIssues(issues) {
			suggestion := strings.ReplaceAll(issue.Suggestion, "\n", "\n     ")
			entries = append(entries, fmt.Sprintf("%s %s\n   └─ %s", issue.Severity.Icon(), issue.Message, suggestion))
		}
		b.WriteString("\n🔍 *Analysis Results*\n")
		b.WriteString(strings.Join(entries, "\n"))
		b.WriteString("\n")
	}

	b.WriteString(resourcesSection)
	return b.String(), nil
}

// Format renders a report for commit.
func (a *Analyzer) Format(commit CommitMetadata, issues []Issue) (string, error) {
	return Format(commit, issues)
}
