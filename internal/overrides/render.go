package overrides

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/samzong/gmq/internal/dictionary"
)

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func listNode(items []string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, item := range items {
		n.Content = append(n.Content, strNode(item))
	}
	return n
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func addPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, strNode(key), value)
}

// TypeDictionaryNode renders d in the shape ParseTypeDictionary accepts.
func TypeDictionaryNode(d *dictionary.TypeDictionary) *yaml.Node {
	m := mappingNode()
	for _, label := range d.Keys() {
		addPair(m, label, listNode(d.Keywords(label)))
	}
	return m
}

// ExampleDictionaryNode renders d in the shape ParseExampleDictionary
// accepts.
func ExampleDictionaryNode(d *dictionary.ExampleDictionary) *yaml.Node {
	m := mappingNode()
	for _, label := range d.Keys() {
		example, _ := d.Example(label)
		addPair(m, label, strNode(example))
	}
	return m
}

// TrainingCorpusNode renders c in the shape ParseTrainingCorpus accepts.
func TrainingCorpusNode(c *dictionary.TrainingCorpus) *yaml.Node {
	m := mappingNode()
	for _, label := range c.Keys() {
		addPair(m, label, listNode(c.Messages(label)))
	}
	return m
}

// Render writes the overridable tables of set as one YAML document keyed by
// setting label. Each section can be passed back as a setting payload.
func Render(set dictionary.Set) ([]byte, error) {
	doc := mappingNode()
	if set.Types != nil {
		addPair(doc, LabelCommitTypes, TypeDictionaryNode(set.Types))
	}
	if set.Examples != nil {
		addPair(doc, LabelExampleCommits, ExampleDictionaryNode(set.Examples))
	}
	if set.Corpus != nil {
		addPair(doc, LabelTrainingData, TrainingCorpusNode(set.Corpus))
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderNode encodes a single table node as a payload string.
func RenderNode(n *yaml.Node) (string, error) {
	out, err := yaml.Marshal(n)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
