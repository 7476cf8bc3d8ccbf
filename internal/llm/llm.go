// Package llm asks an OpenAI-compatible chat model to rewrite a commit
// message so that it resolves the issues the analyzer found.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/samzong/gmq/internal/analyzer"
)

const systemPrompt = "You are a professional Git commit message editor. " +
	"Rewrite commit messages so they follow the Conventional Commits specification. " +
	"Reply with the rewritten commit message only, without explanations or code fences."

var (
	ErrMissingAPIKey = errors.New("API key not set, please set it first: gmq config set api_key YOUR_API_KEY")
	ErrEmptyResponse = errors.New("LLM returned empty response")
)

// ChatCompleter is the subset of the OpenAI client used here.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Options configures a Client.
type Options struct {
	APIKey  string
	APIBase string
	Model   string
	Timeout time.Duration
}

// Client rewrites commit messages.
type Client struct {
	api     ChatCompleter
	model   string
	timeout time.Duration
}

// NewClient builds a client backed by the OpenAI API.
func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	clientConfig := openai.DefaultConfig(opts.APIKey)
	if opts.APIBase != "" {
		clientConfig.BaseURL = opts.APIBase
	}
	return NewClientWith(openai.NewClientWithConfig(clientConfig), opts), nil
}

// NewClientWith builds a client over an existing completer.
func NewClientWith(api ChatCompleter, opts Options) *Client {
	return &Client{api: api, model: opts.Model, timeout: opts.Timeout}
}

// Rewrite returns an improved version of message addressing issues.
// detectedType is the classifier's guess and may be empty.
func (c *Client) Rewrite(ctx context.Context, message, detectedType string, issues []analyzer.Issue) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(message, detectedType, issues)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call LLM: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	rewritten := cleanResponse(resp.Choices[0].Message.Content)
	if rewritten == "" {
		return "", ErrEmptyResponse
	}
	return rewritten, nil
}

// BuildPrompt renders the user prompt for a rewrite request.
func BuildPrompt(message, detectedType string, issues []analyzer.Issue) string {
	var b strings.Builder
	b.WriteString("Rewrite the following commit message.\n\n")
	b.WriteString("Original message:\n")
	b.WriteString(strings.TrimSpace(message))
	b.WriteString("\n")

	if detectedType != "" {
		fmt.Fprintf(&b, "\nThe change most likely has type %q.\n", detectedType)
	}

	if len(issues) > 0 {
		b.WriteString("\nProblems to fix:\n")
		for _, issue := range analyzer.SortIssues(issues) {
			fmt.Fprintf(&b, "- [%s] %s: %s\n", issue.Severity, issue.Message, issue.Suggestion)
		}
	} else {
		b.WriteString("\nNo problems were detected; keep the meaning and only polish the wording.\n")
	}

	b.WriteString("\nKeep the subject within 50 characters and in the imperative mood. Start the description in lowercase, wrap body lines at 72 characters and separate the body from the subject with a blank line.")
	return b.String()
}

// cleanResponse strips a surrounding markdown code fence if the model added
// one anyway.
func cleanResponse(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	lines := strings.Split(content, "\n")
	lines = lines[1:]
	if n := len(lines); n > 0 && strings.TrimSpace(lines[n-1]) == "```" {
		lines = lines[:n-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
