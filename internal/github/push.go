// Package github adapts GitHub webhook payloads to commit records the
// analyzer understands.
package github

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/go-github/v56/github"

	"github.com/samzong/gmq/internal/analyzer"
)

// PushEventType is the X-GitHub-Event value of push deliveries.
const PushEventType = "push"

// ErrNotPushEvent is returned when a payload decodes to another event.
var ErrNotPushEvent = errors.New("payload is not a push event")

// Push is the part of a push delivery the analyzer needs.
type Push struct {
	Ref     string
	Repo    string
	Commits []analyzer.CommitMetadata
}

// ParsePush decodes a push webhook payload.
func ParsePush(r io.Reader) (*Push, error) {
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read push payload: %w", err)
	}
	event, err := github.ParseWebHook(PushEventType, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to parse push payload: %w", err)
	}
	push, ok := event.(*github.PushEvent)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotPushEvent, event)
	}

	out := &Push{
		Ref:     push.GetRef(),
		Repo:    push.GetRepo().GetFullName(),
		Commits: make([]analyzer.CommitMetadata, 0, len(push.Commits)),
	}
	for _, c := range push.Commits {
		if c == nil {
			continue
		}
		out.Commits = append(out.Commits, commitMetadata(c))
	}
	return out, nil
}

// ParsePushPayload returns the commits of a push webhook payload in push
// order.
func ParsePushPayload(r io.Reader) ([]analyzer.CommitMetadata, error) {
	push, err := ParsePush(r)
	if err != nil {
		return nil, err
	}
	return push.Commits, nil
}

func commitMetadata(c *github.HeadCommit) analyzer.CommitMetadata {
	author := c.GetAuthor()
	meta := analyzer.CommitMetadata{
		ID:      c.GetID(),
		Author:  analyzer.Author{Name: author.GetName(), Email: author.GetEmail()},
		Message: c.GetMessage(),
		URL:     c.GetURL(),
	}
	if meta.ID == "" {
		meta.ID = c.GetSHA()
	}
	if ts := c.GetTimestamp(); !ts.IsZero() {
		meta.Timestamp = ts.Format(time.RFC3339)
	}
	return meta
}
