// Package config loads the gmq application configuration with viper.
//
// Values come from, in increasing priority: built-in defaults, the YAML
// config file, a .env file in the working directory and GMQ_ environment
// variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/samzong/gmq/internal/overrides"
)

// Config is the application configuration.
type Config struct {
	Settings       []overrides.Setting `mapstructure:"settings"`
	ModelCacheSize int                 `mapstructure:"model_cache_size"`
	Model          string              `mapstructure:"model"`
	APIKey         string              `mapstructure:"api_key"`
	APIBase        string              `mapstructure:"api_base"`
	TimeoutSeconds int                 `mapstructure:"timeout_seconds"`
}

const (
	DefaultModel          = "gpt-4o-mini"
	DefaultModelCacheSize = 32
	DefaultTimeoutSeconds = 30
	DefaultConfigName     = "config"
	DefaultConfigDir      = "gmq"
	EnvPrefix             = "GMQ"
	// ConfigPathEnv overrides the config file location.
	ConfigPathEnv = "GMQ_CONFIG"
	DotEnvFile    = ".env"
)

var suggestedModels = []string{
	"gpt-4o-mini",
	"gpt-4o",
	"gpt-4.1-mini",
	"gpt-4.1",
}

// settableKeys are the scalar keys `gmq config set` accepts.
var settableKeys = map[string]struct{}{
	"model":            {},
	"api_key":          {},
	"api_base":         {},
	"timeout_seconds":  {},
	"model_cache_size": {},
}

// SettableKeys lists the keys that can be changed from the command line.
func SettableKeys() []string {
	keys := make([]string, 0, len(settableKeys))
	for k := range settableKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsSettableKey reports whether key can be changed from the command line.
func IsSettableKey(key string) bool {
	_, ok := settableKeys[key]
	return ok
}

// GetSuggestedModels returns the models offered in shell completion.
func GetSuggestedModels() []string {
	return suggestedModels
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/gmq/config.yaml, falling back
// to ~/.config/gmq/config.yaml.
func DefaultConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, DefaultConfigDir, DefaultConfigName+".yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(home, ".config", DefaultConfigDir, DefaultConfigName+".yaml"), nil
}

func resolvePath(cfgFile string) (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return p, nil
	}
	return DefaultConfigPath()
}

func setDefaults() {
	viper.SetDefault("model", DefaultModel)
	viper.SetDefault("model_cache_size", DefaultModelCacheSize)
	viper.SetDefault("timeout_seconds", DefaultTimeoutSeconds)
	viper.SetDefault("api_key", "")
	viper.SetDefault("api_base", "")
}

// LoadDotEnv loads path into the process environment. A missing file is
// not an error. Variables already set are kept.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// InitConfig reads the config file, creating it with owner-only permissions
// when it does not exist yet.
func InitConfig(cfgFile string) error {
	if err := LoadDotEnv(DotEnvFile); err != nil {
		return err
	}

	path, err := resolvePath(cfgFile)
	if err != nil {
		return err
	}
	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")
	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to read configuration file: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create configuration directory: %w", err)
		}
		if err := viper.WriteConfigAs(path); err != nil {
			return fmt.Errorf("failed to write configuration file: %w", err)
		}
	}
	return ensurePermissions(path)
}

func ensurePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat configuration file: %w", err)
	}
	if info.Mode().Perm() == 0o600 {
		return nil
	}
	if err := os.Chmod(path, 0o600); err != nil {
		return fmt.Errorf("failed to set configuration file permissions: %w", err)
	}
	return nil
}

// GetConfig decodes the current configuration.
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.ModelCacheSize <= 0 {
		cfg.ModelCacheSize = DefaultModelCacheSize
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = DefaultTimeoutSeconds
	}
	return cfg, nil
}

// MustGetConfig is GetConfig for callers that cannot handle an error. It
// falls back to defaults.
func MustGetConfig() *Config {
	cfg, err := GetConfig()
	if err != nil {
		return &Config{
			Model:          DefaultModel,
			ModelCacheSize: DefaultModelCacheSize,
			TimeoutSeconds: DefaultTimeoutSeconds,
		}
	}
	return cfg
}

// Timeout is the LLM request timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SetConfigValue sets a value for the running process. SaveConfig persists
// it.
func SetConfigValue(key string, value any) {
	viper.Set(key, value)
}

// SaveConfig writes the current configuration back to the file it was read
// from.
func SaveConfig() error {
	path := viper.ConfigFileUsed()
	if path == "" {
		return errors.New("no configuration file in use")
	}
	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	return ensurePermissions(path)
}
