package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samzong/gmq/internal/analyzer"
	"github.com/samzong/gmq/internal/config"
	"github.com/samzong/gmq/internal/llm"
	"github.com/samzong/gmq/internal/ui"
)

type rewriter interface {
	Rewrite(ctx context.Context, message, detectedType string, issues []analyzer.Issue) (string, error)
}

var newRewriter = func(cfg *config.Config) (rewriter, error) {
	client, err := llm.NewClient(llm.Options{
		APIKey:  cfg.APIKey,
		APIBase: cfg.APIBase,
		Model:   cfg.Model,
		Timeout: cfg.Timeout(),
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

var (
	rewriteFile  string
	rewriteModel string
	rewriteForce bool
	rewriteCmd   = &cobra.Command{
		Use:   "rewrite [message]",
		Short: "Suggest a rewritten commit message using an LLM",
		Long: `Analyze a commit message and ask an OpenAI-compatible model for a version
that fixes the issues found. The message is read like in "gmq check".`,
		RunE: runRewrite,
	}
)

func init() {
	rewriteCmd.Flags().StringVarP(&rewriteFile, "file", "f", "", "Read the message from a file")
	rewriteCmd.Flags().StringVarP(&rewriteModel, "model", "m", "", "Model to use instead of the configured one")
	rewriteCmd.Flags().BoolVar(&rewriteForce, "force", false, "Rewrite even when no issues are found")
	_ = rewriteCmd.RegisterFlagCompletionFunc("model", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return config.GetSuggestedModels(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(rewriteCmd)
}

func runRewrite(cmd *cobra.Command, args []string) error {
	cfg, a, err := loadAnalyzer()
	if err != nil {
		return err
	}
	msg, err := readMessage(args, rewriteFile)
	if err != nil {
		return err
	}

	report, err := a.Review(analyzer.CommitMetadata{Message: msg})
	if err != nil {
		return err
	}
	w := outWriter()
	if len(report.Issues) == 0 && !rewriteForce {
		fmt.Fprintln(w, "✅ Commit message looks good, nothing to rewrite")
		return nil
	}

	if rewriteModel != "" {
		cfg.Model = rewriteModel
	}
	client, err := newRewriter(cfg)
	if err != nil {
		return err
	}

	sp := ui.NewSpinner(errWriter(), "Rewriting commit message...")
	sp.Start()
	rewritten, err := client.Rewrite(cmd.Context(), msg, report.Type, report.Issues)
	sp.Stop()
	if err != nil {
		return fmt.Errorf("failed to rewrite commit message: %w", err)
	}

	fmt.Fprintln(w, rewritten)

	remaining, err := a.Analyze(rewritten)
	if err != nil {
		return err
	}
	if len(remaining) > 0 {
		fmt.Fprintf(errWriter(), "⚠️  The rewritten message still has %d issue(s)\n", len(remaining))
	}
	return nil
}
