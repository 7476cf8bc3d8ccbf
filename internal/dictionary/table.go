// Package dictionary holds the ordered lookup tables the commit analyzer is
// driven by: commit types and their keywords, canonical example commits,
// the similarity training corpus and the semantic pattern table.
//
// Declaration order is part of a table's contract. Classifier ties are
// resolved in favour of the first-declared label, so every table keeps its
// keys in insertion order and merges preserve the position of existing keys.
package dictionary

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"strings"
)

// table is an insertion-ordered string-keyed map.
type table[V any] struct {
	keys   []string
	values map[string]V
}

func newTable[V any]() table[V] {
	return table[V]{values: make(map[string]V)}
}

// Keys returns the labels in declaration order.
func (t *table[V]) Keys() []string {
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// Len returns the number of labels.
func (t *table[V]) Len() int {
	return len(t.keys)
}

// Has reports whether label is present.
func (t *table[V]) Has(label string) bool {
	_, ok := t.values[label]
	return ok
}

func (t *table[V]) set(label string, value V) {
	if t.values == nil {
		t.values = make(map[string]V)
	}
	if _, ok := t.values[label]; !ok {
		t.keys = append(t.keys, label)
	}
	t.values[label] = value
}

func (t *table[V]) get(label string) (V, bool) {
	v, ok := t.values[label]
	return v, ok
}

func (t *table[V]) clone(copyValue func(V) V) table[V] {
	out := table[V]{
		keys:   make([]string, len(t.keys)),
		values: make(map[string]V, len(t.values)),
	}
	copy(out.keys, t.keys)
	for k, v := range t.values {
		out.values[k] = copyValue(v)
	}
	return out
}

// merge overwrites values key by key. Existing keys keep their position,
// new keys are appended in other's order.
func (t *table[V]) merge(other *table[V], copyValue func(V) V) {
	if other == nil {
		return
	}
	for _, k := range other.keys {
		t.set(k, copyValue(other.values[k]))
	}
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func identity[V any](v V) V { return v }

// TypeDictionary maps a commit type label to the keywords that indicate it.
type TypeDictionary struct {
	table[[]string]
}

// NewTypeDictionary returns an empty dictionary.
func NewTypeDictionary() *TypeDictionary {
	return &TypeDictionary{table: newTable[[]string]()}
}

// Set stores keywords for label, replacing any previous list.
func (d *TypeDictionary) Set(label string, keywords []string) {
	d.set(label, copyStrings(keywords))
}

// Keywords returns the keyword list for label.
func (d *TypeDictionary) Keywords(label string) []string {
	v, _ := d.get(label)
	return copyStrings(v)
}

// Clone returns a deep copy.
func (d *TypeDictionary) Clone() *TypeDictionary {
	return &TypeDictionary{table: d.clone(copyStrings)}
}

// Merge overwrites d's entries with other's.
func (d *TypeDictionary) Merge(other *TypeDictionary) {
	if other == nil {
		return
	}
	d.merge(&other.table, copyStrings)
}

// ExampleDictionary maps a commit type label to one canonical example
// message (subject, blank line, body).
type ExampleDictionary struct {
	table[string]
}

// NewExampleDictionary returns an empty dictionary.
func NewExampleDictionary() *ExampleDictionary {
	return &ExampleDictionary{table: newTable[string]()}
}

func (d *ExampleDictionary) Set(label, example string) {
	d.set(label, example)
}

// Example returns the example for label and whether one exists.
func (d *ExampleDictionary) Example(label string) (string, bool) {
	return d.get(label)
}

func (d *ExampleDictionary) Clone() *ExampleDictionary {
	return &ExampleDictionary{table: d.clone(identity[string])}
}

func (d *ExampleDictionary) Merge(other *ExampleDictionary) {
	if other == nil {
		return
	}
	d.merge(&other.table, identity[string])
}

// TrainingCorpus maps a commit type label to example messages used to fit
// the similarity model.
type TrainingCorpus struct {
	table[[]string]
}

// NewTrainingCorpus returns an empty corpus.
func NewTrainingCorpus() *TrainingCorpus {
	return &TrainingCorpus{table: newTable[[]string]()}
}

func (c *TrainingCorpus) Set(label string, messages []string) {
	c.set(label, copyStrings(messages))
}

// Messages returns the examples registered for label.
func (c *TrainingCorpus) Messages(label string) []string {
	v, _ := c.get(label)
	return copyStrings(v)
}

func (c *TrainingCorpus) Clone() *TrainingCorpus {
	return &TrainingCorpus{table: c.clone(copyStrings)}
}

func (c *TrainingCorpus) Merge(other *TrainingCorpus) {
	if other == nil {
		return
	}
	c.merge(&other.table, copyStrings)
}

// Flatten returns every example in declaration order together with a
// parallel slice of labels.
func (c *TrainingCorpus) Flatten() (docs []string, labels []string) {
	for _, k := range c.keys {
		for _, msg := range c.values[k] {
			docs = append(docs, msg)
			labels = append(labels, k)
		}
	}
	return docs, labels
}

// Size is the total number of examples.
func (c *TrainingCorpus) Size() int {
	n := 0
	for _, msgs := range c.values {
		n += len(msgs)
	}
	return n
}

// Fingerprint is a deterministic digest of the corpus contents and order.
// Two corpora with the same fingerprint produce the same fitted model.
func (c *TrainingCorpus) Fingerprint() string {
	h := sha256.New()
	var lenBuf [8]byte
	write := func(s string) {
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(s)))
		h.Write(lenBuf[:])
		h.Write([]byte(s))
	}
	for _, k := range c.keys {
		write(k)
		msgs := c.values[k]
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(msgs)))
		h.Write(lenBuf[:])
		for _, msg := range msgs {
			write(msg)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Pattern is a pair of words; it matches when either word occurs in a
// message.
type Pattern [2]string

// Matches reports whether either word of the pattern is a substring of the
// already lowercased message.
func (p Pattern) Matches(lowered string) bool {
	return strings.Contains(lowered, p[0]) || strings.Contains(lowered, p[1])
}

// SemanticPatternTable maps a commit type label to its word patterns.
type SemanticPatternTable struct {
	table[[]Pattern]
}

func NewSemanticPatternTable() *SemanticPatternTable {
	return &SemanticPatternTable{table: newTable[[]Pattern]()}
}

func copyPatterns(in []Pattern) []Pattern {
	if in == nil {
		return nil
	}
	out := make([]Pattern, len(in))
	copy(out, in)
	return out
}

func (t *SemanticPatternTable) Set(label string, patterns []Pattern) {
	t.set(label, copyPatterns(patterns))
}

func (t *SemanticPatternTable) Patterns(label string) []Pattern {
	v, _ := t.get(label)
	return copyPatterns(v)
}

func (t *SemanticPatternTable) Clone() *SemanticPatternTable {
	return &SemanticPatternTable{table: t.clone(copyPatterns)}
}

// Set bundles the four tables an analyzer works from.
type Set struct {
	Types    *TypeDictionary
	Examples *ExampleDictionary
	Corpus   *TrainingCorpus
	Patterns *SemanticPatternTable
}

// Clone deep-copies every table.
func (s Set) Clone() Set {
	out := Set{}
	if s.Types != nil {
		out.Types = s.Types.Clone()
	}
	if s.Examples != nil {
		out.Examples = s.Examples.Clone()
	}
	if s.Corpus != nil {
		out.Corpus = s.Corpus.Clone()
	}
	if s.Patterns != nil {
		out.Patterns = s.Patterns.Clone()
	}
	return out
}
