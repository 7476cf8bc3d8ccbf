package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samzong/gmq/internal/analyzer"
	"github.com/samzong/gmq/internal/github"
)

var (
	pushSummary bool
	pushStrict  bool
	pushJSON    bool
	pushCmd     = &cobra.Command{
		Use:   "push [payload.json]",
		Short: "Analyze the commits of a GitHub push webhook payload",
		Long: `Analyze every commit of a GitHub push event payload and print one report
per commit. The payload is read from the given file, or from stdin when no
file or "-" is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPush,
	}
)

func init() {
	pushCmd.Flags().BoolVar(&pushSummary, "summary", false, "Print a summary after the reports")
	pushCmd.Flags().BoolVar(&pushStrict, "strict", false, "Exit with a non-zero status on high severity issues")
	pushCmd.Flags().BoolVar(&pushJSON, "json", false, "Print the reports as JSON")

	rootCmd.AddCommand(pushCmd)
}

func runPush(cmd *cobra.Command, args []string) error {
	_, a, err := loadAnalyzer()
	if err != nil {
		return err
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	in, err := openInput(path)
	if err != nil {
		return err
	}
	defer in.Close()

	push, err := github.ParsePush(in)
	if err != nil {
		return err
	}
	logger.Debug("parsed push payload", "repo", push.Repo, "ref", push.Ref, "commits", len(push.Commits))

	reports, err := reviewAll(cmd.Context(), a, push.Commits)
	if err != nil {
		return err
	}

	w := outWriter()
	if pushJSON {
		if err := writeJSON(w, reports); err != nil {
			return err
		}
	} else {
		if len(reports) == 0 {
			fmt.Fprintln(w, "No commits in push payload")
		}
		if err := printReports(w, a, reports); err != nil {
			return err
		}
		if pushSummary && len(reports) > 0 {
			fmt.Fprintln(w)
			fmt.Fprint(w, analyzer.RenderSummary(analyzer.Summarize(reports)))
		}
	}

	if pushStrict {
		n := 0
		for _, r := range reports {
			n += blockingIssues(r.Issues)
		}
		if n > 0 {
			return fmt.Errorf("%w: %d high severity issue(s)", ErrQualityGate, n)
		}
	}
	return nil
}
