package classifier

import (
	"log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/samzong/gmq/internal/dictionary"
)

// DefaultCacheSize is the number of fitted models kept by SharedCache.
const DefaultCacheSize = 32

// ModelCache keeps fitted models keyed by the fingerprint of the corpus they
// were fit on. Cached models are never mutated, so callers share them
// read-only. A corpus that changes gets a new fingerprint; stale entries age
// out of the LRU.
type ModelCache struct {
	models *lru.Cache[string, *Model]
	// empty remembers fingerprints of corpora that produced no vocabulary.
	empty *lru.Cache[string, struct{}]
}

// NewModelCache returns a cache holding at most size models.
func NewModelCache(size int) (*ModelCache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	models, err := lru.New[string, *Model](size)
	if err != nil {
		return nil, err
	}
	empty, err := lru.New[string, struct{}](size)
	if err != nil {
		return nil, err
	}
	return &ModelCache{models: models, empty: empty}, nil
}

var (
	sharedOnce  sync.Once
	sharedCache *ModelCache
)

// SharedCache returns the process-wide model cache.
func SharedCache() *ModelCache {
	sharedOnce.Do(func() {
		c, err := NewModelCache(DefaultCacheSize)
		if err != nil {
			// Only reachable with a non-positive size.
			panic(err)
		}
		sharedCache = c
	})
	return sharedCache
}

// Model returns the fitted model for corpus, fitting and caching it on a
// miss. Concurrent misses for the same corpus may fit twice; both results
// are equivalent.
func (c *ModelCache) Model(corpus *dictionary.TrainingCorpus, logger *slog.Logger) (*Model, error) {
	if corpus == nil {
		return nil, ErrEmptyCorpus
	}
	return c.model(corpus.Fingerprint(), corpus, logger)
}

// model is Model with the corpus fingerprint already known.
func (c *ModelCache) model(key string, corpus *dictionary.TrainingCorpus, logger *slog.Logger) (*Model, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if corpus == nil {
		return nil, ErrEmptyCorpus
	}
	if m, ok := c.models.Get(key); ok {
		logger.Debug("classifier model cache hit", "fingerprint", key[:12])
		return m, nil
	}
	if _, ok := c.empty.Get(key); ok {
		return nil, ErrEmptyCorpus
	}

	logger.Debug("fitting classifier model", "fingerprint", key[:12], "examples", corpus.Size())
	m, err := Fit(corpus)
	if err != nil {
		c.empty.Add(key, struct{}{})
		return nil, err
	}
	c.models.Add(key, m)
	return m, nil
}

// Len returns the number of cached models.
func (c *ModelCache) Len() int {
	return c.models.Len()
}

// Purge drops every cached model.
func (c *ModelCache) Purge() {
	c.models.Purge()
	c.empty.Purge()
}
