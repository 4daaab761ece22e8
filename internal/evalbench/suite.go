package evalbench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	texteval "github.com/jamesainslie/go-texteval"
)

// Suite describes one evaluation run: where the data lives and how BLEU is
// configured.
type Suite struct {
	Name       string     `yaml:"name"`
	CorpusDir  string     `yaml:"corpus_dir"`
	ScoresPath string     `yaml:"scores_path"`
	BLEU       BLEUConfig `yaml:"bleu"`
}

// BLEUConfig holds BLEU scoring parameters.
type BLEUConfig struct {
	MaxOrder  int    `yaml:"max_order"`
	Smoothing string `yaml:"smoothing"` // none or epsilon
}

// LoadSuite reads and validates a YAML suite file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}

	suite := &Suite{
		BLEU: BLEUConfig{MaxOrder: 4, Smoothing: "none"},
	}
	if err := yaml.Unmarshal(data, suite); err != nil {
		return nil, fmt.Errorf("parse suite file: %w", err)
	}

	if err := suite.validate(); err != nil {
		return nil, err
	}
	return suite, nil
}

func (s *Suite) validate() error {
	if s.CorpusDir == "" && s.ScoresPath == "" {
		return fmt.Errorf("suite needs corpus_dir or scores_path")
	}
	if s.BLEU.MaxOrder < 1 {
		return fmt.Errorf("bleu max_order must be >= 1, got %d", s.BLEU.MaxOrder)
	}
	switch s.BLEU.Smoothing {
	case "none", "epsilon":
	default:
		return fmt.Errorf("bleu smoothing must be none or epsilon, got %q", s.BLEU.Smoothing)
	}
	return nil
}

// scorerOptions translates the config into BLEU scorer options.
func (c BLEUConfig) scorerOptions() []texteval.BLEUOption {
	opts := []texteval.BLEUOption{texteval.WithMaxOrder(c.MaxOrder)}
	if c.Smoothing == "epsilon" {
		opts = append(opts, texteval.WithSmoothing(texteval.SmoothingEpsilon))
	}
	return opts
}
