// Package analyzer inspects commit messages for format and quality problems
// and renders the findings as a chat-ready report.
package analyzer

import (
	"log/slog"

	"github.com/samzong/gmq/internal/classifier"
	"github.com/samzong/gmq/internal/dictionary"
	"github.com/samzong/gmq/internal/overrides"
)

// Analyzer checks commit messages against its own copy of the dictionaries.
// It is safe for concurrent use once constructed.
type Analyzer struct {
	set        dictionary.Set
	classifier *classifier.Classifier
	slackURL   string
	logger     *slog.Logger
	cache      *classifier.ModelCache
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithModelCache sets the cache fitted similarity models are kept in.
func WithModelCache(cache *classifier.ModelCache) Option {
	return func(a *Analyzer) {
		a.cache = cache
	}
}

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithBase replaces the built-in dictionaries settings are merged over.
func WithBase(set dictionary.Set) Option {
	return func(a *Analyzer) {
		a.set = set
	}
}

// New builds an analyzer from the built-in dictionaries with settings merged
// over them. A malformed setting fails construction with a
// *overrides.ConfigError and nothing is applied.
func New(settings []overrides.Setting, opts ...Option) (*Analyzer, error) {
	a := &Analyzer{logger: slog.Default()}
	for _, opt := range opts {
		opt(a)
	}
	if a.set == (dictionary.Set{}) {
		a.set = dictionary.Defaults()
	}

	res, err := overrides.Apply(a.set, settings, a.logger)
	if err != nil {
		return nil, err
	}
	a.set = res.Set
	a.slackURL = res.SlackURL
	a.classifier = classifier.New(a.set.Types, a.set.Corpus, a.set.Patterns,
		classifier.WithCache(a.cache),
		classifier.WithLogger(a.logger),
	)
	return a, nil
}

// Analyze returns format issues followed by quality issues, in detection
// order. The error reports a configuration inconsistency, never a problem
// with the message itself.
func (a *Analyzer) Analyze(message string) ([]Issue, error) {
	formatIssues, err := NewFormatValidator(message, a.set.Types, a.set.Examples, a.classifier).CheckAll()
	if err != nil {
		return nil, err
	}
	qualityIssues := NewQualityValidator(message).CheckAll()

	issues := make([]Issue, 0, len(formatIssues)+len(qualityIssues))
	for _, issue := range append(formatIssues, qualityIssues...) {
		if issue.IsZero() {
			continue
		}
		issues = append(issues, issue)
	}
	a.logger.Debug("analyzed commit message", "issues", len(issues))
	return issues, nil
}

// Classify returns the inferred commit type for message.
func (a *Analyzer) Classify(message string) classifier.Result {
	return a.classifier.Explain(message)
}

// SlackURL is the slack_url setting, empty when none was given.
func (a *Analyzer) SlackURL() string {
	return a.slackURL
}

// Dictionaries returns a copy of the merged dictionaries.
func (a *Analyzer) Dictionaries() dictionary.Set {
	return a.set.Clone()
}
