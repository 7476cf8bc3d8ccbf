package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samzong/gmq/internal/analyzer"
	"github.com/samzong/gmq/internal/config"
	"github.com/samzong/gmq/internal/overrides"
)

const cleanMessage = "feat(auth): add login\n\nAdds a login form."

// isolate points the configuration at a temp directory and resets viper and
// every flag between runs.
func isolate(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(config.ConfigPathEnv, "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })
	return dir
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "gmq", rootCmd.Use)
	assert.Equal(t, "gmq - Git Message Quality", rootCmd.Short)
	assert.True(t, rootCmd.SilenceErrors)
	assert.True(t, rootCmd.SilenceUsage)

	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"check", "push", "history", "rewrite", "config", "version", "completion"} {
		assert.Contains(t, names, want)
	}
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "gmq version dev (built at unknown)\n", out)
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		args     []string
		contains []string
		wantErr  error
	}{
		{
			name:     "clean argument",
			args:     []string{"check", cleanMessage},
			contains: []string{"Type: ✨ feat (declared)", "✅ Commit message looks good"},
		},
		{
			name:     "piped stdin",
			stdin:    "fix: Handle empty input.\n",
			args:     []string{"check"},
			contains: []string{"🔴 Subject not in lowercase", "🔴 Subject ends with a punctuation", "🔵 Commit message may be missing detailed context"},
		},
		{
			name:     "dash reads stdin",
			stdin:    cleanMessage,
			args:     []string{"check", "-"},
			contains: []string{"✅ Commit message looks good"},
		},
		{
			name:     "unknown type is classified",
			args:     []string{"check", "update the readme docs"},
			contains: []string{"Type: 📝 docs (keyword)", "Commit message type unidentifiable"},
		},
		{
			name:     "strict fails on issues",
			args:     []string{"check", "--strict", "wip"},
			contains: []string{"Commit message type unidentifiable"},
			wantErr:  ErrQualityGate,
		},
		{
			name:     "strict ignores low severity",
			args:     []string{"check", "--strict", "feat: add x"},
			contains: []string{"🔵 Commit message may be missing detailed context"},
		},
		{
			name:     "strict passes clean message",
			args:     []string{"check", "--strict", cleanMessage},
			contains: []string{"✅"},
		},
		{
			name:    "no message",
			args:    []string{"check"},
			wantErr: errNoMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			out, _, err := execute(t, tt.stdin, tt.args...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestCheck_File(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "COMMIT_EDITMSG")
	content := cleanMessage + "\n# Please enter the commit message for your changes.\n" +
		scissorsLine + "\ndiff --git a/x b/x\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, _, err := execute(t, "", "check", "--strict", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "✅ Commit message looks good")
}

func TestCheck_JSON(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "", "check", "--json", "feat: add x")
	require.NoError(t, err)

	var report analyzer.CommitReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "feat", report.Type)
	assert.Equal(t, "feat: add x", report.Commit.Message)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, analyzer.SeverityLow, report.Issues[0].Severity)
}

func TestCheck_SettingsFromConfig(t *testing.T) {
	dir := isolate(t)
	cfgPath := filepath.Join(dir, "gmq", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(cfgPath), 0o755))
	cfg := `settings:
  - label: commit_types
    type: text
    default: '{"hotfix": ["urgent"]}'
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	out, _, err := execute(t, "", "check", "hotfix: patch urgent crash\n\nPatches it.")
	require.NoError(t, err)
	assert.Contains(t, out, "Type: hotfix (declared)")
	assert.NotContains(t, out, "Invalid commit type")
}

func TestCheck_MalformedSetting(t *testing.T) {
	dir := isolate(t)
	cfgPath := filepath.Join(dir, "gmq", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(cfgPath), 0o755))
	cfg := `settings:
  - label: commit_types
    default: '["not", "a", "mapping"]'
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	_, _, err := execute(t, "", "check", cleanMessage)
	var cfgErr *overrides.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, overrides.LabelCommitTypes, cfgErr.Label)
	assert.ErrorIs(t, err, overrides.ErrInvalidPayload)
}

const pushPayload = `{
  "ref": "refs/heads/main",
  "repository": {"full_name": "octo/repo"},
  "commits": [
    {
      "id": "0d1a26e67d8f5eaf1f6ba5c57fc3c7d91ac0fd1c",
      "message": "Update README.md",
      "timestamp": "2015-05-05T19:40:15-04:00",
      "url": "https://github.com/octo/repo/commit/0d1a26e6",
      "author": {"name": "octo", "email": "octo@example.com"}
    },
    {
      "id": "a4c0e1f7bb5b2a1b8d6c3e9f0a1b2c3d4e5f6a7b",
      "message": "feat(auth): add login\n\nAdds a login form.",
      "timestamp": "2015-05-05T20:00:00Z",
      "url": "https://github.com/octo/repo/commit/a4c0e1f7",
      "author": {"name": "octo", "email": "octo@example.com"}
    }
  ]
}`

func TestPush(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "push.json")
	require.NoError(t, os.WriteFile(path, []byte(pushPayload), 0o644))

	out, _, err := execute(t, "", "push", "--summary", path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "📝 *Commit Details*"))
	assert.Contains(t, out, "└─ Hash: `0d1a26e6`")
	assert.Contains(t, out, "└─ Author: octo (octo@example.com)")
	assert.Contains(t, out, "└─ Time: 7:40PM. Tuesday, May 5, 2015.")
	assert.Contains(t, out, "Commit message type unidentifiable")
	assert.Contains(t, out, "Clean Commits: 1/2")
}

func TestPush_StdinJSONStrict(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, pushPayload, "push", "--json", "--strict")
	assert.ErrorIs(t, err, ErrQualityGate)

	var reports []analyzer.CommitReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)
	assert.NotEmpty(t, reports[0].Issues)
	assert.Empty(t, reports[1].Issues)
	assert.Equal(t, "feat", reports[1].Type)
}

func TestPush_InvalidPayload(t *testing.T) {
	isolate(t)
	_, _, err := execute(t, "not json", "push")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse push payload")
}

func TestHistory_NegativeNumber(t *testing.T) {
	isolate(t)
	_, _, err := execute(t, "", "history", "-n", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--number")
}

type fakeRewriter struct {
	message string
	issues  []analyzer.Issue
}

func (f *fakeRewriter) Rewrite(_ context.Context, message, _ string, issues []analyzer.Issue) (string, error) {
	f.message = message
	f.issues = issues
	return cleanMessage, nil
}

func TestRewrite(t *testing.T) {
	isolate(t)
	fake := &fakeRewriter{}
	orig := newRewriter
	newRewriter = func(*config.Config) (rewriter, error) { return fake, nil }
	t.Cleanup(func() { newRewriter = orig })

	out, errOut, err := execute(t, "", "rewrite", "feat: Add Login.")
	require.NoError(t, err)
	assert.Equal(t, cleanMessage+"\n", out)
	assert.Empty(t, errOut)
	assert.Equal(t, "feat: Add Login.", fake.message)
	assert.NotEmpty(t, fake.issues)
}

func TestRewrite_NothingToDo(t *testing.T) {
	isolate(t)
	orig := newRewriter
	newRewriter = func(*config.Config) (rewriter, error) {
		t.Fatal("rewriter must not be created for a clean message")
		return nil, nil
	}
	t.Cleanup(func() { newRewriter = orig })

	out, _, err := execute(t, "", "rewrite", cleanMessage)
	require.NoError(t, err)
	assert.Contains(t, out, "nothing to rewrite")
}

func TestRewrite_MissingAPIKey(t *testing.T) {
	isolate(t)
	t.Setenv("GMQ_API_KEY", "")
	_, _, err := execute(t, "", "rewrite", "wip")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not set")
}

func TestConfigSetAndGet(t *testing.T) {
	dir := isolate(t)

	out, _, err := execute(t, "", "config", "set", "model", "gpt-4.1")
	require.NoError(t, err)
	assert.Contains(t, out, "model has been set to: gpt-4.1")
	assert.FileExists(t, filepath.Join(dir, "gmq", "config.yaml"))

	viper.Reset()
	out, _, err = execute(t, "", "config", "get")
	require.NoError(t, err)
	assert.Contains(t, out, "Model: gpt-4.1")
	assert.Contains(t, out, "API Key: <not set>")
}

func TestConfigSet_Invalid(t *testing.T) {
	isolate(t)
	_, _, err := execute(t, "", "config", "set", "role", "admin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown configuration key")

	_, _, err = execute(t, "", "config", "set", "timeout_seconds", "soon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive integer")
}

func TestConfigDictionaries(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "", "config", "dictionaries", "--defaults")
	require.NoError(t, err)
	assert.Contains(t, out, "commit_types:")
	assert.Contains(t, out, "example_commits:")
	assert.Contains(t, out, "training_data:")
}

func TestCompletion(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "gmq")

	_, _, err = execute(t, "", "completion", "tcsh")
	assert.Error(t, err)
}

func TestStripComments(t *testing.T) {
	input := "fix: x\n# comment\n\nbody\n" + scissorsLine + "\n# below\ndiff"
	assert.Equal(t, "fix: x\n\nbody", stripComments(input))
}
