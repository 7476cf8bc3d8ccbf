package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/samzong/gmq/internal/analyzer"
	"github.com/samzong/gmq/internal/emoji"
)

var (
	outWriterFunc = func() io.Writer { return os.Stdout }
	errWriterFunc = func() io.Writer { return os.Stderr }
	inReaderFunc  = func() io.Reader { return os.Stdin }
)

func init() {
	outWriterFunc = func() io.Writer { return rootCmd.OutOrStdout() }
	errWriterFunc = func() io.Writer { return rootCmd.ErrOrStderr() }
	inReaderFunc = func() io.Reader { return rootCmd.InOrStdin() }
}

func outWriter() io.Writer {
	return outWriterFunc()
}

func errWriter() io.Writer {
	return errWriterFunc()
}

func inReader() io.Reader {
	return inReaderFunc()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printIssues writes an issue list without commit metadata.
func printIssues(w io.Writer, report analyzer.CommitReport) {
	source := string(report.Stage)
	if source == "" {
		source = "declared"
	}
	fmt.Fprintf(w, "Type: %s (%s)\n", emoji.Decorate(report.Type), source)
	if len(report.Issues) == 0 {
		fmt.Fprintln(w, "✅ Commit message looks good")
		return
	}
	for _, issue := range analyzer.SortIssues(report.Issues) {
		fmt.Fprintf(w, "%s %s\n   %s\n", issue.Severity.Icon(), issue.Message, issue.Suggestion)
	}
}
