// Package classifier infers the most likely conventional-commit type for a
// message. Classification runs three ordered stages, each consulted only
// when the previous one produced no signal: keyword lookup, TF-IDF
// similarity against a training corpus, and semantic word patterns.
package classifier

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/samzong/gmq/internal/dictionary"
)

// SimilarityThreshold is the cosine similarity a corpus match must exceed.
const SimilarityThreshold = 0.3

// Stage names the pipeline step that produced a label.
type Stage string

const (
	StageKeyword    Stage = "keyword"
	StageSimilarity Stage = "similarity"
	StageSemantic   Stage = "semantic"
	StageFallback   Stage = "fallback"
)

// Result explains a classification.
type Result struct {
	Label string
	Stage Stage
	// Score is the keyword or pattern count for the counting stages and the
	// cosine similarity for the similarity stage.
	Score float64
}

// Classifier holds the tables a classification reads. It never mutates them,
// and they must not change after New.
type Classifier struct {
	types       *dictionary.TypeDictionary
	corpus      *dictionary.TrainingCorpus
	patterns    *dictionary.SemanticPatternTable
	fingerprint string // model cache key of corpus
	cache       *ModelCache
	logger      *slog.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithCache sets the model cache. SharedCache is used otherwise.
func WithCache(cache *ModelCache) Option {
	return func(c *Classifier) {
		if cache != nil {
			c.cache = cache
		}
	}
}

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New returns a classifier over the given tables. Nil tables are treated as
// empty.
func New(types *dictionary.TypeDictionary, corpus *dictionary.TrainingCorpus, patterns *dictionary.SemanticPatternTable, opts ...Option) *Classifier {
	c := &Classifier{
		types:    types,
		corpus:   corpus,
		patterns: patterns,
		logger:   slog.Default(),
	}
	if c.types == nil {
		c.types = dictionary.NewTypeDictionary()
	}
	if c.corpus == nil {
		c.corpus = dictionary.NewTrainingCorpus()
	}
	if c.patterns == nil {
		c.patterns = dictionary.NewSemanticPatternTable()
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache == nil {
		c.cache = SharedCache()
	}
	c.fingerprint = c.corpus.Fingerprint()
	return c
}

// Classify returns the most likely commit type for message.
func (c *Classifier) Classify(message string) string {
	return c.Explain(message).Label
}

// Explain classifies message and reports which stage decided.
func (c *Classifier) Explain(message string) Result {
	lowered := strings.ToLower(message)

	if label, score := c.keywordStage(lowered); score > 0 {
		return c.decided(Result{Label: label, Stage: StageKeyword, Score: float64(score)})
	}

	if label, sim, ok := c.similarityStage(lowered); ok {
		return c.decided(Result{Label: label, Stage: StageSimilarity, Score: sim})
	}

	if label, score := c.semanticStage(lowered); score > 0 {
		return c.decided(Result{Label: label, Stage: StageSemantic, Score: float64(score)})
	}

	return c.decided(Result{Label: dictionary.FallbackType, Stage: StageFallback})
}

func (c *Classifier) decided(r Result) Result {
	c.logger.Debug("classified commit type", "label", r.Label, "stage", string(r.Stage), "score", r.Score)
	return r
}

// keywordStage counts keywords occurring in the message for every type.
// The first-declared type wins ties.
func (c *Classifier) keywordStage(lowered string) (string, int) {
	bestLabel, bestScore := "", 0
	for _, label := range c.types.Keys() {
		score := 0
		for _, kw := range c.types.Keywords(label) {
			if strings.Contains(lowered, kw) {
				score++
			}
		}
		if score > bestScore {
			bestLabel, bestScore = label, score
		}
	}
	return bestLabel, bestScore
}

func (c *Classifier) similarityStage(lowered string) (string, float64, bool) {
	model, err := c.cache.model(c.fingerprint, c.corpus, c.logger)
	if err != nil {
		if errors.Is(err, ErrEmptyCorpus) {
			c.logger.Debug("skipping similarity stage", "reason", err.Error())
		}
		return "", 0, false
	}
	label, sim := model.Best(lowered)
	if sim > SimilarityThreshold {
		return label, sim, true
	}
	return "", sim, false
}

// semanticStage counts matching word patterns for every type. The
// first-declared type wins ties.
func (c *Classifier) semanticStage(lowered string) (string, int) {
	bestLabel, bestScore := "", 0
	for _, label := range c.patterns.Keys() {
		score := 0
		for _, p := range c.patterns.Patterns(label) {
			if p.Matches(lowered) {
				score++
			}
		}
		if score > bestScore {
			bestLabel, bestScore = label, score
		}
	}
	return bestLabel, bestScore
}
