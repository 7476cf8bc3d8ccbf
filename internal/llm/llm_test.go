package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samzong/gmq/internal/analyzer"
)

// MockOpenAIClient is a fake ChatCompleter.
type MockOpenAIClient struct {
	createChatCompletionFunc func(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	requests                 []openai.ChatCompletionRequest
}

func (m *MockOpenAIClient) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	m.requests = append(m.requests, request)
	if m.createChatCompletionFunc != nil {
		return m.createChatCompletionFunc(ctx, request)
	}
	return reply("feat: add login page\n\nAdds the login form and session handling."), nil
}

func reply(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestNewClient_MissingAPIKey(t *testing.T) {
	for _, key := range []string{"", "   "} {
		_, err := NewClient(Options{APIKey: key})
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	}

	client, err := NewClient(Options{APIKey: "sk-test", APIBase: "http://localhost:8080/v1", Model: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", client.model)
}

func TestRewrite_Success(t *testing.T) {
	mock := &MockOpenAIClient{}
	client := NewClientWith(mock, Options{Model: "gpt-4o-mini"})

	issues := []analyzer.Issue{
		{Severity: analyzer.SeverityLow, Message: "Missing body", Suggestion: "Add a body."},
		{Severity: analyzer.SeverityHigh, Message: "Subject not in lowercase", Suggestion: "Lowercase it."},
	}
	got, err := client.Rewrite(context.Background(), "feat: Add Login", "feat", issues)
	require.NoError(t, err)
	assert.Equal(t, "feat: add login page\n\nAdds the login form and session handling.", got)

	require.Len(t, mock.requests, 1)
	req := mock.requests[0]
	assert.Equal(t, "gpt-4o-mini", req.Model)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
	assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[1].Role)
	assert.Contains(t, req.Messages[1].Content, "feat: Add Login")
}

func TestRewrite_Errors(t *testing.T) {
	tests := []struct {
		name     string
		response openai.ChatCompletionResponse
		err      error
		expected error
	}{
		{name: "api error", err: errors.New("rate limited")},
		{name: "no choices", response: openai.ChatCompletionResponse{}, expected: ErrEmptyResponse},
		{name: "blank content", response: reply("  \n "), expected: ErrEmptyResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockOpenAIClient{
				createChatCompletionFunc: func(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
					return tt.response, tt.err
				},
			}
			_, err := NewClientWith(mock, Options{}).Rewrite(context.Background(), "wip", "", nil)
			require.Error(t, err)
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
			} else {
				assert.Contains(t, err.Error(), "failed to call LLM")
				assert.Contains(t, err.Error(), "rate limited")
			}
		})
	}
}

func TestRewrite_Timeout(t *testing.T) {
	mock := &MockOpenAIClient{
		createChatCompletionFunc: func(ctx context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
			return reply("fix: handle timeout"), nil
		},
	}
	got, err := NewClientWith(mock, Options{Timeout: time.Minute}).Rewrite(context.Background(), "fix timeout", "fix", nil)
	require.NoError(t, err)
	assert.Equal(t, "fix: handle timeout", got)
}

func TestBuildPrompt(t *testing.T) {
	issues := []analyzer.Issue{
		{Severity: analyzer.SeverityLow, Message: "Missing body", Suggestion: "Add a body."},
		{Severity: analyzer.SeverityHigh, Message: "Subject not in lowercase", Suggestion: "Lowercase it."},
	}
	prompt := BuildPrompt("  feat: Add Login\n", "feat", issues)

	assert.Contains(t, prompt, "Original message:\nfeat: Add Login\n")
	assert.Contains(t, prompt, `most likely has type "feat"`)
	high := "- [high] Subject not in lowercase: Lowercase it."
	low := "- [low] Missing body: Add a body."
	assert.Contains(t, prompt, high)
	assert.Contains(t, prompt, low)
	assert.Less(t, strings.Index(prompt, high), strings.Index(prompt, low))

	clean := BuildPrompt("docs: update readme", "", nil)
	assert.NotContains(t, clean, "most likely has type")
	assert.Contains(t, clean, "No problems were detected")
}

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"feat: add x", "feat: add x"},
		{"\n  fix: y  \n", "fix: y"},
		{"```\nfix: y\n\nbody\n```", "fix: y\n\nbody"},
		{"```text\nchore: z\n```\n", "chore: z"},
		{"```\nunterminated", "unterminated"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanResponse(tt.input))
		})
	}
}
