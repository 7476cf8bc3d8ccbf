package overrides

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samzong/gmq/internal/dictionary"
)

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"commit_types", "commit_types"},
		{"Commit Types", "commit_types"},
		{"  Example-Commits ", "example_commits"},
		{"TRAINING DATA", "training_data"},
		{"slack_url", "slack_url"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeLabel(tt.input))
		})
	}
}

func TestApply_MergesInOrder(t *testing.T) {
	base := dictionary.Defaults()
	settings := []Setting{
		{Label: "commit_types", Default: "{'feat': ['ship'], 'hack': ['kludge']}"},
		{Label: "Example Commits", Default: "{'hack': 'hack: kludge it\\n\\nTemporary workaround.'}"},
		{Label: "training_data", Default: "{'hack': ['hack: kludge the parser']}"},
		{Label: "commit_types", Default: "{'hack': ['kludge', 'bodge']}"},
		{Label: "slack_url", Default: " https://hooks.slack.com/services/x "},
	}

	res, err := Apply(base, settings, nil)
	require.NoError(t, err)

	keys := res.Set.Types.Keys()
	assert.Equal(t, "feat", keys[0], "existing key keeps its position")
	assert.Equal(t, "hack", keys[len(keys)-1], "new key is appended")
	assert.Equal(t, []string{"ship"}, res.Set.Types.Keywords("feat"))
	assert.Equal(t, []string{"kludge", "bodge"}, res.Set.Types.Keywords("hack"))

	ex, ok := res.Set.Examples.Example("hack")
	require.True(t, ok)
	assert.Equal(t, "hack: kludge it\n\nTemporary workaround.", ex)

	assert.Equal(t, []string{"hack: kludge the parser"}, res.Set.Corpus.Messages("hack"))
	assert.Equal(t, "https://hooks.slack.com/services/x", res.SlackURL)

	// The base set is untouched.
	assert.False(t, base.Types.Has("hack"))
	assert.Equal(t, dictionary.DefaultTypeDictionary().Keywords("feat"), base.Types.Keywords("feat"))
}

func TestApply_SkipsEmptyAndUnknown(t *testing.T) {
	base := dictionary.Defaults()
	res, err := Apply(base, []Setting{
		{Label: "commit_types", Default: ""},
		{Label: "commit_types", Default: "   "},
		{Label: "channel", Default: "{'x': 'y'}"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, base.Types.Keys(), res.Set.Types.Keys())
	assert.Empty(t, res.SlackURL)
}

func TestApply_MalformedFailsWhole(t *testing.T) {
	settings := []Setting{
		{Label: "commit_types", Default: "{'hack': ['kludge']}"},
		{Label: "Training Data", Default: "{'feat': 'not a list'}"},
	}

	res, err := Apply(dictionary.Defaults(), settings, nil)
	require.Error(t, err)
	assert.Equal(t, Result{}, res)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, LabelTrainingData, cfgErr.Label)
	assert.ErrorIs(t, err, ErrInvalidPayload)
	assert.Contains(t, err.Error(), "invalid training_data setting")
}

func TestApply_NilTables(t *testing.T) {
	res, err := Apply(dictionary.Set{}, []Setting{
		{Label: "commit_types", Default: "{'feat': ['add']}"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"feat"}, res.Set.Types.Keys())
	assert.NotNil(t, res.Set.Examples)
	assert.NotNil(t, res.Set.Corpus)
	assert.NotNil(t, res.Set.Patterns)
}
