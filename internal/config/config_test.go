package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate resets viper and points every lookup at a temp directory.
func isolate(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv(ConfigPathEnv, "")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, "gpt-4o-mini", DefaultModel)
	assert.Equal(t, 32, DefaultModelCacheSize)
	assert.Equal(t, 30, DefaultTimeoutSeconds)
	assert.Equal(t, "config", DefaultConfigName)
	assert.Equal(t, "gmq", DefaultConfigDir)
	assert.Equal(t, "GMQ", EnvPrefix)
}

func TestSettableKeys(t *testing.T) {
	assert.Equal(t, []string{"api_base", "api_key", "model", "model_cache_size", "timeout_seconds"}, SettableKeys())
	assert.True(t, IsSettableKey("model"))
	assert.False(t, IsSettableKey("settings"))
	assert.Contains(t, GetSuggestedModels(), DefaultModel)
}

func TestSetConfigValue(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetConfigValue("test_key", "test_value")
	assert.Equal(t, "test_value", viper.GetString("test_key"))

	SetConfigValue("test_int", 42)
	assert.Equal(t, 42, viper.GetInt("test_int"))
}

func TestInitConfig_CreateNewConfigFile(t *testing.T) {
	dir := isolate(t)
	configFile := filepath.Join(dir, "nested", "fresh_config.yaml")

	require.NoError(t, InitConfig(configFile))

	info, err := os.Stat(configFile)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
	assert.Equal(t, DefaultModel, viper.GetString("model"))
}

func TestInitConfig_ExistingConfigFile(t *testing.T) {
	dir := isolate(t)
	configFile := filepath.Join(dir, "existing_config.yaml")

	existing := `model: "gpt-4o"
api_key: "existing-key"
api_base: "https://api.custom.com/v1"
timeout_seconds: 5
settings:
  - label: Commit Types
    type: text
    default: "{'hack': ['kludge']}"
  - label: slack_url
    default: https://hooks.slack.com/services/T/B/X
`
	require.NoError(t, os.WriteFile(configFile, []byte(existing), 0o644))

	require.NoError(t, InitConfig(configFile))

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, "existing-key", cfg.APIKey)
	assert.Equal(t, "https://api.custom.com/v1", cfg.APIBase)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.Equal(t, DefaultModelCacheSize, cfg.ModelCacheSize)

	require.Len(t, cfg.Settings, 2)
	assert.Equal(t, "Commit Types", cfg.Settings[0].Label)
	assert.Equal(t, "text", cfg.Settings[0].Type)
	assert.Equal(t, "{'hack': ['kludge']}", cfg.Settings[0].Default)
	assert.Equal(t, "slack_url", cfg.Settings[1].Label)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(configFile)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}

func TestInitConfig_DefaultPath(t *testing.T) {
	dir := isolate(t)

	require.NoError(t, InitConfig(""))
	assert.FileExists(t, filepath.Join(dir, ".config", "gmq", "config.yaml"))
}

func TestInitConfig_XDGPath(t *testing.T) {
	dir := isolate(t)
	xdg := filepath.Join(dir, "xdg")
	t.Setenv("XDG_CONFIG_HOME", xdg)

	require.NoError(t, InitConfig(""))
	assert.FileExists(t, filepath.Join(xdg, "gmq", "config.yaml"))
}

func TestInitConfig_PathFromEnv(t *testing.T) {
	dir := isolate(t)
	configFile := filepath.Join(dir, "from_env.yaml")
	t.Setenv(ConfigPathEnv, configFile)

	require.NoError(t, InitConfig(""))
	assert.FileExists(t, configFile)
}

func TestInitConfig_InvalidConfigFile(t *testing.T) {
	dir := isolate(t)
	configFile := filepath.Join(dir, "invalid_config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("model: [invalid yaml structure"), 0o644))

	err := InitConfig(configFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read configuration file")
}

func TestInitConfig_EnvironmentVariables(t *testing.T) {
	dir := isolate(t)
	configFile := filepath.Join(dir, "env_test.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("model: config-model\n"), 0o644))

	t.Setenv("GMQ_MODEL", "env-model")
	t.Setenv("GMQ_TIMEOUT_SECONDS", "12")

	require.NoError(t, InitConfig(configFile))

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "env-model", cfg.Model)
	assert.Equal(t, 12, cfg.TimeoutSeconds)
}

func TestInitConfig_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DotEnvFile), []byte("GMQ_API_KEY=from-dotenv\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("GMQ_API_KEY") })

	require.NoError(t, InitConfig(filepath.Join(dir, "config.yaml")))
	assert.Equal(t, "from-dotenv", MustGetConfig().APIKey)
}

func TestLoadDotEnv_Missing(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestGetConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultModelCacheSize, cfg.ModelCacheSize)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.TimeoutSeconds)
	assert.Empty(t, cfg.Settings)
}

func TestSaveConfig(t *testing.T) {
	dir := isolate(t)
	configFile := filepath.Join(dir, "save_test.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("model: original-model\n"), 0o644))

	require.NoError(t, InitConfig(configFile))
	SetConfigValue("model", "modified-model")
	require.NoError(t, SaveConfig())

	content, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "modified-model")
}

func TestSaveConfig_NoFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	assert.Error(t, SaveConfig())
}
