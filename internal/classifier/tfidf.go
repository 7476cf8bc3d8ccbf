package classifier

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/samzong/gmq/internal/dictionary"
)

// ErrEmptyCorpus is returned by Fit when the corpus yields no vocabulary.
var ErrEmptyCorpus = errors.New("training corpus is empty")

// vector is a sparse, L2-normalised term vector. idx is strictly
// ascending and val is aligned with it, so every sum over a vector runs in
// the same order and gives bit-identical results for identical inputs.
type vector struct {
	idx []int
	val []float64
}

func (v vector) dot(o vector) float64 {
	sum := 0.0
	i, j := 0, 0
	for i < len(v.idx) && j < len(o.idx) {
		switch {
		case v.idx[i] < o.idx[j]:
			i++
		case v.idx[i] > o.idx[j]:
			j++
		default:
			sum += v.val[i] * o.val[j]
			i++
			j++
		}
	}
	return sum
}

// Model is a TF-IDF representation of a training corpus. A fitted model is
// immutable and safe to share between goroutines.
type Model struct {
	vocabulary map[string]int
	idf        []float64
	docs       []vector
	labels     []string
}

// tokenize lowercases text and splits it into runs of letters, digits and
// underscores that are at least two runes long.
func tokenize(text string) []string {
	var tokens []string
	var b strings.Builder
	n := 0
	flush := func() {
		if n >= 2 {
			tokens = append(tokens, b.String())
		}
		b.Reset()
		n = 0
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
			n++
			continue
		}
		flush()
	}
	flush()
	return tokens
}

// Fit builds a model over every example of corpus, in declaration order.
func Fit(corpus *dictionary.TrainingCorpus) (*Model, error) {
	if corpus == nil {
		return nil, ErrEmptyCorpus
	}
	docs, labels := corpus.Flatten()

	tokenized := make([][]string, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tokens := tokenize(doc)
		tokenized[i] = tokens
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	if len(df) == 0 {
		return nil, ErrEmptyCorpus
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	m := &Model{
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
		docs:       make([]vector, len(docs)),
		labels:     labels,
	}
	n := float64(len(docs))
	for i, term := range terms {
		m.vocabulary[term] = i
		// Smoothed idf: ln((1+n)/(1+df)) + 1.
		m.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	for i, tokens := range tokenized {
		m.docs[i] = m.vectorize(tokens)
	}
	return m, nil
}

func (m *Model) vectorize(tokens []string) vector {
	tf := make(map[int]float64)
	for _, tok := range tokens {
		if idx, ok := m.vocabulary[tok]; ok {
			tf[idx]++
		}
	}
	v := vector{idx: make([]int, 0, len(tf)), val: make([]float64, 0, len(tf))}
	for idx := range tf {
		v.idx = append(v.idx, idx)
	}
	sort.Ints(v.idx)

	norm := 0.0
	for _, idx := range v.idx {
		w := tf[idx] * m.idf[idx]
		v.val = append(v.val, w)
		norm += w * w
	}
	if norm == 0 {
		return v
	}
	norm = math.Sqrt(norm)
	for i := range v.val {
		v.val[i] /= norm
	}
	return v
}

// Similarities returns the cosine similarity of text against every corpus
// example, aligned with Labels.
func (m *Model) Similarities(text string) []float64 {
	q := m.vectorize(tokenize(text))
	out := make([]float64, len(m.docs))
	if len(q.idx) == 0 {
		return out
	}
	for i, d := range m.docs {
		out[i] = q.dot(d)
	}
	return out
}

// Best returns the label and similarity of the closest example. On exact
// ties the earliest example wins.
func (m *Model) Best(text string) (string, float64) {
	sims := m.Similarities(text)
	best := -1
	for i, s := range sims {
		if best < 0 || s > sims[best] {
			best = i
		}
	}
	if best < 0 {
		return "", 0
	}
	return m.labels[best], sims[best]
}

// Labels returns the label of each corpus example in fit order.
func (m *Model) Labels() []string {
	out := make([]string, len(m.labels))
	copy(out, m.labels)
	return out
}

// VocabularySize is the number of distinct terms in the model.
func (m *Model) VocabularySize() int {
	return len(m.vocabulary)
}
