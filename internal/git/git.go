// Package git reads commit history from a local repository.
package git

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/samzong/gmq/internal/analyzer"
	"github.com/samzong/gmq/internal/gitcmd"
)

const (
	fieldSep  = "\x1f"
	recordSep = "\x1e"
	// logFormat prints hash, author name, author email, strict ISO author
	// date and the raw message of each commit.
	logFormat = "--format=%H%x1f%an%x1f%ae%x1f%aI%x1f%B%x1e"
)

// ErrNotRepository is returned when the working directory is not inside a
// git work tree.
var ErrNotRepository = errors.New("not a git repository")

// ErrInvalidRevision is returned for revisions git would read as options.
var ErrInvalidRevision = errors.New("invalid revision")

// Options configures a Client.
type Options struct {
	Dir    string
	Logger *slog.Logger
}

// Client runs read-only git queries.
type Client struct {
	runner gitcmd.Runner
}

func NewClient(opts Options) *Client {
	return &Client{runner: gitcmd.Runner{Dir: opts.Dir, Logger: opts.Logger}}
}

// IsGitRepository reports whether the client's directory is in a work tree.
func (c *Client) IsGitRepository(ctx context.Context) bool {
	res, err := c.runner.Run(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil && res.StdoutString(true) == "true"
}

// CommitHistory returns up to limit commits reachable from HEAD, newest
// first. A non-positive limit returns the whole history.
func (c *Client) CommitHistory(ctx context.Context, limit int) ([]analyzer.CommitMetadata, error) {
	return c.log(ctx, limit, "HEAD")
}

// Commit returns a single commit.
func (c *Client) Commit(ctx context.Context, rev string) (analyzer.CommitMetadata, error) {
	if err := validateRevision(rev); err != nil {
		return analyzer.CommitMetadata{}, err
	}
	commits, err := c.log(ctx, 1, rev)
	if err != nil {
		return analyzer.CommitMetadata{}, err
	}
	if len(commits) == 0 {
		return analyzer.CommitMetadata{}, fmt.Errorf("no commit found for %q", rev)
	}
	return commits[0], nil
}

func (c *Client) log(ctx context.Context, limit int, rev string) ([]analyzer.CommitMetadata, error) {
	if !c.IsGitRepository(ctx) {
		return nil, ErrNotRepository
	}
	args := []string{"log", logFormat}
	if limit > 0 {
		args = append(args, "-n", strconv.Itoa(limit))
	}
	args = append(args, rev, "--")

	res, err := c.runner.Run(ctx, args...)
	if err != nil {
		return nil, gitcmd.WrapError("failed to read commit history", res, err)
	}
	commits := parseCommitOutput(res.StdoutString(false))

	if base := c.webURL(ctx); base != "" {
		for i := range commits {
			commits[i].URL = base + "/commit/" + commits[i].ID
		}
	}
	return commits, nil
}

func validateRevision(rev string) error {
	if strings.TrimSpace(rev) == "" || strings.HasPrefix(rev, "-") {
		return fmt.Errorf("%w: %q", ErrInvalidRevision, rev)
	}
	return nil
}

// parseCommitOutput parses log output in logFormat. Malformed records are
// skipped.
func parseCommitOutput(output string) []analyzer.CommitMetadata {
	var commits []analyzer.CommitMetadata
	for _, record := range strings.Split(output, recordSep) {
		record = strings.TrimLeft(record, "\n")
		if record == "" {
			continue
		}
		fields := strings.SplitN(record, fieldSep, 5)
		if len(fields) != 5 || fields[0] == "" {
			continue
		}
		commits = append(commits, analyzer.CommitMetadata{
			ID:        fields[0],
			Author:    analyzer.Author{Name: fields[1], Email: fields[2]},
			Timestamp: fields[3],
			Message:   strings.TrimRight(fields[4], "\n"),
		})
	}
	return commits
}

func (c *Client) webURL(ctx context.Context) string {
	res, err := c.runner.Run(ctx, "config", "--get", "remote.origin.url")
	if err != nil {
		return ""
	}
	return WebURL(res.StdoutString(true))
}

// WebURL converts a remote URL such as git@github.com:owner/repo.git into
// the repository's https address. Unrecognised remotes yield "".
func WebURL(remote string) string {
	remote = strings.TrimSuffix(strings.TrimSpace(remote), "/")
	remote = strings.TrimSuffix(remote, ".git")
	if remote == "" {
		return ""
	}

	if strings.Contains(remote, "://") {
		u, err := url.Parse(remote)
		if err != nil || u.Hostname() == "" {
			return ""
		}
		switch u.Scheme {
		case "http", "https", "ssh", "git":
		default:
			return ""
		}
		path := strings.Trim(u.Path, "/")
		if path == "" {
			return ""
		}
		return "https://" + u.Hostname() + "/" + path
	}

	// scp-like syntax: [user@]host:path
	at := strings.Index(remote, "@")
	host, path, ok := strings.Cut(remote[at+1:], ":")
	if !ok || host == "" || path == "" {
		return ""
	}
	return "https://" + host + "/" + strings.Trim(path, "/")
}
