package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samzong/gmq/internal/config"
	"github.com/samzong/gmq/internal/dictionary"
	"github.com/samzong/gmq/internal/overrides"
)

var (
	configDefaultsOnly bool
	configCmd          = &cobra.Command{
		Use:   "config",
		Short: "Manage gmq configuration",
		Long:  `Manage gmq configuration, including the LLM settings and dictionary overrides.`,
	}

	configSetCmd = &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: "Set a configuration value. Supported keys: " + strings.Join(config.SettableKeys(), ", ") + ".\n\n" +
			"Dictionary overrides are edited in the settings list of the configuration file.",
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			switch len(args) {
			case 0:
				return config.SettableKeys(), cobra.ShellCompDirectiveNoFileComp
			case 1:
				if args[0] == "model" {
					return config.GetSuggestedModels(), cobra.ShellCompDirectiveNoFileComp
				}
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: runConfigSet,
	}

	configGetCmd = &cobra.Command{
		Use:   "get",
		Short: "Show the current configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfigGet,
	}

	configDictionariesCmd = &cobra.Command{
		Use:   "dictionaries",
		Short: "Print the dictionaries in effect",
		Long: `Print the commit types, example commits and training data in effect after
the configured settings are merged over the built-in ones. The output can be
copied into a setting default.`,
		Args: cobra.NoArgs,
		RunE: runConfigDictionaries,
	}
)

func init() {
	configDictionariesCmd.Flags().BoolVar(&configDefaultsOnly, "defaults", false, "Print the built-in dictionaries only")

	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configDictionariesCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigSet(_ *cobra.Command, args []string) error {
	if configErr != nil {
		return fmt.Errorf("configuration error: %w", configErr)
	}
	key, raw := args[0], args[1]
	if !config.IsSettableKey(key) {
		return fmt.Errorf("unknown configuration key %q, supported keys: %s", key, strings.Join(config.SettableKeys(), ", "))
	}

	var value any = raw
	switch key {
	case "timeout_seconds", "model_cache_size":
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %q", key, raw)
		}
		value = n
	}

	config.SetConfigValue(key, value)
	if err := config.SaveConfig(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	w := outWriter()
	if key == "api_key" {
		fmt.Fprintln(w, "API key has been set")
		return nil
	}
	fmt.Fprintf(w, "%s has been set to: %s\n", key, raw)
	if key == "model" {
		fmt.Fprintln(w, "Tip: any model name works, suggested models are:")
		for _, m := range config.GetSuggestedModels() {
			fmt.Fprintf(w, "- %s\n", m)
		}
	}
	return nil
}

func runConfigGet(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	w := outWriter()
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintf(w, "Model: %s\n", cfg.Model)
	if cfg.APIKey != "" {
		fmt.Fprintln(w, "API Key: ********")
	} else {
		fmt.Fprintln(w, "API Key: <not set>")
	}
	if cfg.APIBase != "" {
		fmt.Fprintf(w, "API Base: %s\n", cfg.APIBase)
	} else {
		fmt.Fprintln(w, "API Base: <not set>")
	}
	fmt.Fprintf(w, "Timeout: %ds\n", cfg.TimeoutSeconds)
	fmt.Fprintf(w, "Model cache size: %d\n", cfg.ModelCacheSize)
	fmt.Fprintf(w, "Settings: %d\n", len(cfg.Settings))
	for _, s := range cfg.Settings {
		state := "set"
		if strings.TrimSpace(s.Default) == "" {
			state = "empty"
		}
		fmt.Fprintf(w, "- %s (%s)\n", overrides.NormalizeLabel(s.Label), state)
	}
	return nil
}

func runConfigDictionaries(_ *cobra.Command, _ []string) error {
	set := dictionary.Defaults()
	if !configDefaultsOnly {
		_, a, err := loadAnalyzer()
		if err != nil {
			return err
		}
		set = a.Dictionaries()
	}

	out, err := overrides.Render(set)
	if err != nil {
		return err
	}
	_, err = outWriter().Write(out)
	return err
}
