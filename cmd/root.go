package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/samzong/gmq/internal/analyzer"
	"github.com/samzong/gmq/internal/classifier"
	"github.com/samzong/gmq/internal/config"
)

var (
	cfgFile   string
	verbose   bool
	configErr error
	rootCtx   = context.Background()
	logger    = slog.New(slog.NewTextHandler(io.Discard, nil))
	rootCmd   = &cobra.Command{
		Use:   "gmq",
		Short: "gmq - Git Message Quality",
		Long: `gmq checks commit messages against the conventional commit format, ` +
			`infers their type and flags gibberish words.`,
		Version: fmt.Sprintf("%s (built at %s)", Version, BuildTime),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(errWriter(), verbose)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
)

// SetContext sets the context commands run with.
func SetContext(ctx context.Context) {
	rootCtx = ctx
}

func Execute() error {
	return rootCmd.ExecuteContext(rootCtx)
}

// RootCmd returns the root command for documentation generators.
func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Configuration file path (default is $XDG_CONFIG_HOME/gmq/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Show debug logs on stderr")
}

func initConfig() {
	configErr = config.InitConfig(cfgFile)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func loadConfig() (*config.Config, error) {
	if configErr != nil {
		return nil, fmt.Errorf("configuration error: %w", configErr)
	}
	return config.GetConfig()
}

// newAnalyzer builds an analyzer from the configured settings.
func newAnalyzer(cfg *config.Config) (*analyzer.Analyzer, error) {
	cache, err := classifier.NewModelCache(cfg.ModelCacheSize)
	if err != nil {
		return nil, err
	}
	return analyzer.New(cfg.Settings,
		analyzer.WithModelCache(cache),
		analyzer.WithLogger(logger),
	)
}

func loadAnalyzer() (*config.Config, *analyzer.Analyzer, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	a, err := newAnalyzer(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, a, nil
}
