package overrides

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samzong/gmq/internal/dictionary"
)

// ParseTypeDictionary parses a mapping of commit type to keyword list, for
// example {'feat': ['add', 'implement']}.
func ParseTypeDictionary(payload string) (*dictionary.TypeDictionary, error) {
	d := dictionary.NewTypeDictionary()
	err := walkMapping(payload, func(key string, value *yaml.Node) error {
		list, err := stringList(value)
		if err != nil {
			return err
		}
		d.Set(key, list)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ParseExampleDictionary parses a mapping of commit type to one example
// message.
func ParseExampleDictionary(payload string) (*dictionary.ExampleDictionary, error) {
	d := dictionary.NewExampleDictionary()
	err := walkMapping(payload, func(key string, value *yaml.Node) error {
		s, err := stringScalar(value)
		if err != nil {
			return err
		}
		d.Set(key, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ParseTrainingCorpus parses a mapping of commit type to example messages.
func ParseTrainingCorpus(payload string) (*dictionary.TrainingCorpus, error) {
	c := dictionary.NewTrainingCorpus()
	err := walkMapping(payload, func(key string, value *yaml.Node) error {
		list, err := stringList(value)
		if err != nil {
			return err
		}
		c.Set(key, list)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func invalid(n *yaml.Node, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if n != nil && n.Line > 0 {
		return fmt.Errorf("%w: line %d column %d: %s", ErrInvalidPayload, n.Line, n.Column, msg)
	}
	return fmt.Errorf("%w: %s", ErrInvalidPayload, msg)
}

// walkMapping decodes payload and calls fn for every key of its top-level
// mapping, in document order.
func walkMapping(payload string, fn func(key string, value *yaml.Node) error) error {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(escapeQuotedNewlines(payload)), &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return invalid(nil, "empty payload")
	}
	root := doc.Content[0]
	if err := checkNode(root, yaml.MappingNode, "!!map"); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, value := root.Content[i], root.Content[i+1]
		key, err := stringScalar(keyNode)
		if err != nil {
			return err
		}
		if strings.TrimSpace(key) == "" {
			return invalid(keyNode, "empty key")
		}
		if _, dup := seen[key]; dup {
			return invalid(keyNode, "duplicate key %q", key)
		}
		seen[key] = struct{}{}
		if err := fn(key, value); err != nil {
			return err
		}
	}
	return nil
}

func checkNode(n *yaml.Node, kind yaml.Kind, tag string) error {
	if n.Kind == yaml.AliasNode {
		return invalid(n, "aliases are not allowed")
	}
	if n.Anchor != "" {
		return invalid(n, "anchors are not allowed")
	}
	if n.Kind != kind {
		return invalid(n, "expected %s, got %s", kindName(kind), kindName(n.Kind))
	}
	if n.Tag != tag {
		return invalid(n, "expected %s, got %s", tag, n.Tag)
	}
	return nil
}

func stringScalar(n *yaml.Node) (string, error) {
	if err := checkNode(n, yaml.ScalarNode, "!!str"); err != nil {
		return "", err
	}
	switch n.Style {
	case yaml.SingleQuotedStyle, 0:
		return unescape(n.Value), nil
	}
	return n.Value, nil
}

func stringList(n *yaml.Node) ([]string, error) {
	if err := checkNode(n, yaml.SequenceNode, "!!seq"); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(n.Content))
	for _, item := range n.Content {
		s, err := stringScalar(item)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "nothing"
}

// escapeQuotedNewlines rewrites line breaks inside quoted strings as \n
// escapes so multi-line values survive YAML line folding. Breaks outside
// quotes are left alone. A quote only opens a string where a flow or block
// value can start, so apostrophes inside plain words are not mistaken for
// one.
func escapeQuotedNewlines(payload string) string {
	if !strings.Contains(payload, "\n") {
		return payload
	}
	var b strings.Builder
	b.Grow(len(payload))
	var quote byte
	prev := byte('\n')
	for i := 0; i < len(payload); i++ {
		c := payload[i]
		switch {
		case quote == 0:
			if (c == '\'' || c == '"') && strings.IndexByte("\n{[,:-?", prev) >= 0 {
				quote = c
			}
			if c != ' ' && c != '\t' {
				prev = c
			}
		case c == '\n':
			b.WriteString(`\n`)
			continue
		case c == '\r' && i+1 < len(payload) && payload[i+1] == '\n':
			continue
		case quote == '"' && c == '\\' && i+1 < len(payload):
			b.WriteByte(c)
			i++
			c = payload[i]
			if c == '\n' {
				b.WriteString("n")
				continue
			}
		case c == quote:
			if quote == '\'' && i+1 < len(payload) && payload[i+1] == '\'' {
				b.WriteString("''")
				i++
				continue
			}
			quote = 0
			prev = c
		}
		b.WriteByte(c)
	}
	return b.String()
}

// unescape expands backslash escapes in scalars YAML leaves verbatim.
// Unknown escapes are kept as written.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\', '\'', '"':
			b.WriteByte(s[i])
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
