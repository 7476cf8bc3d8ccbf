package overrides

import (
	"log/slog"
	"strings"

	"github.com/samzong/gmq/internal/dictionary"
)

// Result is the outcome of applying overrides to a dictionary set.
type Result struct {
	Set      dictionary.Set
	SlackURL string
}

type parsed struct {
	types    []*dictionary.TypeDictionary
	examples []*dictionary.ExampleDictionary
	corpora  []*dictionary.TrainingCorpus
	slackURL string
}

// Apply merges settings over a deep copy of base. Every payload is parsed
// before anything is merged, so a malformed record leaves no partial
// result. Records with an empty payload or an unknown label are skipped.
// Records are applied in order and a later record overwrites earlier keys.
func Apply(base dictionary.Set, settings []Setting, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var p parsed
	for _, s := range settings {
		label := NormalizeLabel(s.Label)
		if strings.TrimSpace(s.Default) == "" {
			logger.Debug("skipping empty setting", "label", label)
			continue
		}
		switch label {
		case LabelCommitTypes:
			d, err := ParseTypeDictionary(s.Default)
			if err != nil {
				return Result{}, &ConfigError{Label: label, Err: err}
			}
			p.types = append(p.types, d)
		case LabelExampleCommits:
			d, err := ParseExampleDictionary(s.Default)
			if err != nil {
				return Result{}, &ConfigError{Label: label, Err: err}
			}
			p.examples = append(p.examples, d)
		case LabelTrainingData:
			c, err := ParseTrainingCorpus(s.Default)
			if err != nil {
				return Result{}, &ConfigError{Label: label, Err: err}
			}
			p.corpora = append(p.corpora, c)
		case LabelSlackURL:
			p.slackURL = strings.TrimSpace(s.Default)
		default:
			logger.Debug("ignoring unknown setting", "label", s.Label)
		}
	}

	set := base.Clone()
	if set.Types == nil {
		set.Types = dictionary.NewTypeDictionary()
	}
	if set.Examples == nil {
		set.Examples = dictionary.NewExampleDictionary()
	}
	if set.Corpus == nil {
		set.Corpus = dictionary.NewTrainingCorpus()
	}
	if set.Patterns == nil {
		set.Patterns = dictionary.NewSemanticPatternTable()
	}
	for _, d := range p.types {
		set.Types.Merge(d)
	}
	for _, d := range p.examples {
		set.Examples.Merge(d)
	}
	for _, c := range p.corpora {
		set.Corpus.Merge(c)
	}
	if len(p.types)+len(p.examples)+len(p.corpora) > 0 {
		logger.Debug("applied setting overrides",
			"commit_types", len(p.types),
			"example_commits", len(p.examples),
			"training_data", len(p.corpora),
		)
	}
	return Result{Set: set, SlackURL: p.slackURL}, nil
}
