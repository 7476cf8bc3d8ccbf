package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/samzong/gmq/internal/analyzer"
	"github.com/samzong/gmq/internal/ui"
)

// reviewAll reviews commits in order, showing progress on stderr.
func reviewAll(ctx context.Context, a *analyzer.Analyzer, commits []analyzer.CommitMetadata) ([]analyzer.CommitReport, error) {
	sp := ui.NewSpinner(errWriter(), "Analyzing commits...")
	sp.Start()
	defer sp.Stop()

	reports := make([]analyzer.CommitReport, 0, len(commits))
	for i, commit := range commits {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sp.Progress("Analyzing commits...", i+1, len(commits))
		report, err := a.Review(commit)
		if err != nil {
			return nil, fmt.Errorf("failed to analyze commit %s: %w", commit.ID, err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// printReports writes one formatted report per commit, separated by a
// blank line.
func printReports(w io.Writer, a *analyzer.Analyzer, reports []analyzer.CommitReport) error {
	for i, report := range reports {
		text, err := a.Format(report.Commit, report.Issues)
		if err != nil {
			return fmt.Errorf("failed to format commit %s: %w", report.Commit.ID, err)
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, text)
	}
	return nil
}

// blockingIssues counts the high-severity issues --strict fails on.
func blockingIssues(issues []analyzer.Issue) int {
	n := 0
	for _, issue := range issues {
		if issue.Severity == analyzer.SeverityHigh {
			n++
		}
	}
	return n
}
