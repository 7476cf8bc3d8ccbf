package github

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samzong/gmq/internal/analyzer"
)

func TestParsePush(t *testing.T) {
	f, err := os.Open("testdata/push.json")
	require.NoError(t, err)
	defer f.Close()

	push, err := ParsePush(f)
	require.NoError(t, err)
	assert.Equal(t, "refs/heads/main", push.Ref)
	assert.Equal(t, "baxterthehacker/public-repo", push.Repo)
	require.Len(t, push.Commits, 2)

	assert.Equal(t, analyzer.CommitMetadata{
		ID:        "0d1a26e67d8f5eaf1f6ba5c57fc3c7d91ac0fd1c",
		Author:    analyzer.Author{Name: "baxterthehacker", Email: "baxterthehacker@users.noreply.github.com"},
		Message:   "Update README.md",
		URL:       "https://github.com/baxterthehacker/public-repo/commit/0d1a26e67d8f5eaf1f6ba5c57fc3c7d91ac0fd1c",
		Timestamp: "2015-05-05T19:40:15-04:00",
	}, push.Commits[0])

	second := push.Commits[1]
	assert.Equal(t, "feat(auth): add token refresh\n\nRefresh tokens before they expire.", second.Message)
	assert.Equal(t, analyzer.Author{Name: "Octo Cat"}, second.Author)
	assert.Equal(t, "2015-05-06T08:00:00Z", second.Timestamp)
}

func TestParsePushPayload_RendersReport(t *testing.T) {
	f, err := os.Open("testdata/push.json")
	require.NoError(t, err)
	defer f.Close()

	commits, err := ParsePushPayload(f)
	require.NoError(t, err)
	require.NotEmpty(t, commits)

	report, err := analyzer.Format(commits[0], nil)
	require.NoError(t, err)
	assert.Contains(t, report, "└─ Hash: `0d1a26e6`\n")
	assert.Contains(t, report, "└─ Time: 7:40PM. Tuesday, May 5, 2015.\n")
}

func TestParsePushPayload_NoCommits(t *testing.T) {
	commits, err := ParsePushPayload(strings.NewReader(`{"ref": "refs/heads/main", "commits": []}`))
	require.NoError(t, err)
	assert.Empty(t, commits)
}

func TestParsePushPayload_MissingTimestamp(t *testing.T) {
	commits, err := ParsePushPayload(strings.NewReader(`{"commits": [{"id": "abc", "message": "fix: x"}]}`))
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Empty(t, commits[0].Timestamp)

	_, err = analyzer.Format(commits[0], nil)
	assert.ErrorIs(t, err, analyzer.ErrInvalidTimestamp)
}

func TestParsePushPayload_Invalid(t *testing.T) {
	_, err := ParsePushPayload(strings.NewReader(`{"commits": "nope"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse push payload")
}
