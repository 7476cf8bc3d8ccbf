package analyzer

import (
	"strings"

	"github.com/samzong/gmq/internal/classifier"
)

const maxTopIssues = 3

// CommitReport is the analysis of one commit.
type CommitReport struct {
	Commit CommitMetadata `json:"commit"`
	// Type is the declared type when it is a known one, otherwise the
	// inferred one.
	Type   string           `json:"type"`
	Stage  classifier.Stage `json:"stage,omitempty"`
	Issues []Issue          `json:"issues"`
}

// Review analyzes commit and determines its type.
func (a *Analyzer) Review(commit CommitMetadata) (CommitReport, error) {
	issues, err := a.Analyze(commit.Message)
	if err != nil {
		return CommitReport{}, err
	}
	report := CommitReport{Commit: commit, Issues: issues}

	token := strings.ToLower(ParseMessage(commit.Message).TypeToken)
	if token != "" && a.set.Types.Has(token) {
		report.Type = token
	} else {
		r := a.classifier.Explain(commit.Message)
		report.Type, report.Stage = r.Label, r.Stage
	}
	return report, nil
}

// AuthorStats aggregates reports by author.
type AuthorStats struct {
	Name         string   `json:"name"`
	CommitCount  int      `json:"commit_count"`
	CleanCommits int      `json:"clean_commits"`
	TopIssues    []string `json:"top_issues"`
}

// Summary aggregates a batch of commit reports.
type Summary struct {
	TotalCommits     int                    `json:"total_commits"`
	CleanCommits     int                    `json:"clean_commits"`
	TypeDistribution map[string]int         `json:"type_distribution"`
	SeverityCounts   map[Severity]int       `json:"severity_counts"`
	IssueCounts      map[string]int         `json:"issue_counts"`
	Authors          map[string]AuthorStats `json:"authors"`
}

// CleanRatio is the share of commits without issues, between 0 and 1.
func (s Summary) CleanRatio() float64 {
	if s.TotalCommits == 0 {
		return 0
	}
	return float64(s.CleanCommits) / float64(s.TotalCommits)
}

// Summarize aggregates reports.
func Summarize(reports []CommitReport) Summary {
	s := Summary{
		TotalCommits:     len(reports),
		TypeDistribution: make(map[string]int),
		SeverityCounts:   make(map[Severity]int),
		IssueCounts:      make(map[string]int),
		Authors:          make(map[string]AuthorStats),
	}
	authorIssues := make(map[string][]string)

	for _, r := range reports {
		if r.Type != "" {
			s.TypeDistribution[r.Type]++
		}
		name := r.Commit.Author.Name
		stats := s.Authors[name]
		stats.Name = name
		stats.CommitCount++
		if len(r.Issues) == 0 {
			s.CleanCommits++
			stats.CleanCommits++
		}
		for _, issue := range r.Issues {
			s.SeverityCounts[issue.Severity]++
			s.IssueCounts[issue.Message]++
			authorIssues[name] = append(authorIssues[name], issue.Message)
		}
		s.Authors[name] = stats
	}

	for name, issues := range authorIssues {
		stats := s.Authors[name]
		stats.TopIssues = topByFrequency(issues, maxTopIssues)
		s.Authors[name] = stats
	}
	return s
}

// topByFrequency returns the n most frequent values. Ties keep first-seen
// order.
func topByFrequency(values []string, n int) []string {
	counts := make(map[string]int)
	var order []string
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	ranked := rankCounts(order, counts)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.key
	}
	return out
}
