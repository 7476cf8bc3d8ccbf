package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samzong/gmq/internal/analyzer"
	"github.com/samzong/gmq/internal/git"
)

const defaultHistoryLimit = 20

var (
	historyLimit   int
	historyDetails bool
	historyJSON    bool
	historyCmd     = &cobra.Command{
		Use:   "history",
		Short: "Summarize the message quality of recent commits",
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "number", "n", defaultHistoryLimit, "Number of commits to analyze, 0 for all")
	historyCmd.Flags().BoolVar(&historyDetails, "details", false, "Print a report for every commit before the summary")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Print the summary and reports as JSON")

	rootCmd.AddCommand(historyCmd)
}

type historyOutput struct {
	Summary analyzer.Summary        `json:"summary"`
	Reports []analyzer.CommitReport `json:"reports"`
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyLimit < 0 {
		return errors.New("--number must not be negative")
	}
	_, a, err := loadAnalyzer()
	if err != nil {
		return err
	}

	commits, err := git.NewClient(git.Options{Logger: logger}).CommitHistory(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	w := outWriter()
	if len(commits) == 0 {
		fmt.Fprintln(w, "No commits found")
		return nil
	}

	reports, err := reviewAll(cmd.Context(), a, commits)
	if err != nil {
		return err
	}
	summary := analyzer.Summarize(reports)

	if historyJSON {
		return writeJSON(w, historyOutput{Summary: summary, Reports: reports})
	}
	if historyDetails {
		if err := printReports(w, a, reports); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	fmt.Fprint(w, analyzer.RenderSummary(summary))
	return nil
}
