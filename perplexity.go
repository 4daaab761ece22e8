package texteval

import (
	"fmt"
	"math"
)

// ProbabilityFunc assigns a probability in (0, 1] to the token at the given
// position of the sequence being scored. It is a caller-supplied capability;
// the language model behind it is opaque to this package.
type ProbabilityFunc func(pos int, token string) float64

// SequencePerplexity returns the geometric mean of inverse token
// probabilities over one sequence, computed in log space as
// exp(mean(-log p)). A probability outside (0, 1] is reported as
// ErrInvalidProbability rather than clamped.
func SequencePerplexity(fn ProbabilityFunc, seq []string) (float64, error) {
	if len(seq) == 0 {
		return 0, fmt.Errorf("%w: empty sequence", ErrInvalidInput)
	}

	var negLogSum float64
	for i, token := range seq {
		p := fn(i, token)
		if p <= 0 || p > 1 {
			return 0, fmt.Errorf("%w: got %v for token %d", ErrInvalidProbability, p, i)
		}
		negLogSum -= math.Log(p)
	}

	return math.Exp(negLogSum / float64(len(seq))), nil
}

// CorpusPerplexity returns the geometric mean of per-sequence perplexities
// across a corpus.
func CorpusPerplexity(fn ProbabilityFunc, seqs [][]string) (float64, error) {
	if len(seqs) == 0 {
		return 0, fmt.Errorf("%w: empty corpus", ErrInvalidInput)
	}

	var logSum float64
	for i, seq := range seqs {
		pp, err := SequencePerplexity(fn, seq)
		if err != nil {
			return 0, fmt.Errorf("sequence %d: %w", i, err)
		}
		logSum += math.Log(pp)
	}

	return math.Exp(logSum / float64(len(seqs))), nil
}
