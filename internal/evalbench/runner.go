package evalbench

import (
	"fmt"
	"log/slog"

	texteval "github.com/jamesainslie/go-texteval"
)

// Report holds the aggregate results of one suite run.
type Report struct {
	Suite string

	// Sequence metrics, present when the suite has a corpus.
	HasCorpus  bool
	Examples   int
	CorpusWER  float64
	CorpusBLEU float64

	// Ranking metrics, present when the suite has a scores file.
	HasRanking       bool
	ScoredPairs      int
	ROCAUC           float64
	AveragePrecision float64
}

// Runner executes evaluation suites.
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a Runner. A nil logger falls back to slog.Default().
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger}
}

// Run loads the suite's data and computes every metric the suite enables.
func (r *Runner) Run(suite *Suite) (*Report, error) {
	report := &Report{Suite: suite.Name}

	if suite.CorpusDir != "" {
		examples, err := LoadCorpus(suite.CorpusDir)
		if err != nil {
			return nil, fmt.Errorf("loading corpus: %w", err)
		}
		r.logger.Info("loaded corpus", "suite", suite.Name, "examples", len(examples))

		truths := make([][]string, len(examples))
		hyps := make([][]string, len(examples))
		pairs := make([]texteval.Pair, len(examples))
		for i, ex := range examples {
			truths[i] = ex.Reference
			hyps[i] = ex.Hypothesis
			pairs[i] = texteval.Pair{
				Candidate:  ex.Hypothesis,
				References: [][]string{ex.Reference},
			}
		}

		wer, err := texteval.CorpusWER(truths, hyps)
		if err != nil {
			return nil, fmt.Errorf("corpus WER: %w", err)
		}

		scorer := texteval.NewBLEUScorer(suite.BLEU.scorerOptions()...)
		bleu, err := scorer.Corpus(pairs)
		if err != nil {
			return nil, fmt.Errorf("corpus BLEU: %w", err)
		}

		report.HasCorpus = true
		report.Examples = len(examples)
		report.CorpusWER = wer
		report.CorpusBLEU = bleu
	}

	if suite.ScoresPath != "" {
		scores, labels, err := LoadScores(suite.ScoresPath)
		if err != nil {
			return nil, fmt.Errorf("loading scores: %w", err)
		}
		r.logger.Info("loaded scores", "suite", suite.Name, "pairs", len(scores))

		auc, err := texteval.ROCAUC(scores, labels)
		if err != nil {
			return nil, fmt.Errorf("ROC AUC: %w", err)
		}
		ap, err := texteval.AveragePrecision(scores, labels)
		if err != nil {
			return nil, fmt.Errorf("average precision: %w", err)
		}

		report.HasRanking = true
		report.ScoredPairs = len(scores)
		report.ROCAUC = auc
		report.AveragePrecision = ap
	}

	return report, nil
}
