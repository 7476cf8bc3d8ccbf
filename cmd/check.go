package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samzong/gmq/internal/analyzer"
	"github.com/samzong/gmq/internal/git"
)

// ErrQualityGate is returned by --strict runs that found high severity
// issues.
var ErrQualityGate = errors.New("commit message quality check failed")

var (
	checkFile   string
	checkRev    string
	checkStrict bool
	checkJSON   bool
	checkCmd    = &cobra.Command{
		Use:   "check [message]",
		Short: "Check a single commit message",
		Long: `Check a commit message for format and quality issues.

The message is read from the arguments, from --file, or from stdin when it is
piped. With --rev the message and metadata of an existing commit are used.

To use gmq as a commit-msg hook:

  echo 'exec gmq check --strict --file "$1"' > .git/hooks/commit-msg
  chmod +x .git/hooks/commit-msg`,
		RunE: runCheck,
	}
)

func init() {
	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Read the message from a file, such as .git/COMMIT_EDITMSG")
	checkCmd.Flags().StringVar(&checkRev, "rev", "", "Check an existing commit, such as HEAD")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Exit with a non-zero status on high severity issues")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print the result as JSON")
	checkCmd.MarkFlagsMutuallyExclusive("file", "rev")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	_, a, err := loadAnalyzer()
	if err != nil {
		return err
	}

	var commit analyzer.CommitMetadata
	if checkRev != "" {
		if len(args) > 0 {
			return errors.New("--rev cannot be combined with a message argument")
		}
		commit, err = git.NewClient(git.Options{Logger: logger}).Commit(cmd.Context(), checkRev)
		if err != nil {
			return err
		}
	} else {
		msg, err := readMessage(args, checkFile)
		if err != nil {
			return err
		}
		commit = analyzer.CommitMetadata{Message: msg}
	}

	report, err := a.Review(commit)
	if err != nil {
		return err
	}

	w := outWriter()
	switch {
	case checkJSON:
		if err := writeJSON(w, report); err != nil {
			return err
		}
	case checkRev != "":
		text, err := a.Format(report.Commit, report.Issues)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, text)
	default:
		printIssues(w, report)
	}

	if n := blockingIssues(report.Issues); checkStrict && n > 0 {
		return fmt.Errorf("%w: %d high severity issue(s)", ErrQualityGate, n)
	}
	return nil
}
