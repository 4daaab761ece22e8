package texteval

import (
	"fmt"
	"math"
)

// Pair is one corpus example: a candidate sequence and the reference
// sequences considered equally valid outputs for it.
type Pair struct {
	Candidate  []string
	References [][]string
}

// BLEUScorer computes corpus-level BLEU: the geometric mean of modified
// n-gram precisions across orders 1..maxOrder, multiplied by a brevity
// penalty.
type BLEUScorer struct {
	cfg bleuConfig
}

// NewBLEUScorer creates a scorer with the given options.
func NewBLEUScorer(opts ...BLEUOption) *BLEUScorer {
	cfg := defaultBLEUConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &BLEUScorer{cfg: cfg}
}

// Corpus scores a dataset of candidate-reference pairs. Clipped match counts
// and candidate n-gram totals are summed across the corpus before dividing,
// so the per-order precisions are aggregate ratios, not averages of
// per-sentence precisions.
//
// By convention the score is 0 when the total candidate length is zero
// (brevity penalty 0) and, under SmoothingNone, when any order has zero
// aggregate precision.
func (s *BLEUScorer) Corpus(pairs []Pair) (float64, error) {
	if len(pairs) == 0 {
		return 0, fmt.Errorf("%w: no candidate-reference pairs", ErrInvalidInput)
	}

	weights := s.cfg.weights
	if weights == nil {
		weights = make([]float64, s.cfg.maxOrder)
		for i := range weights {
			weights[i] = 1 / float64(s.cfg.maxOrder)
		}
	}
	if len(weights) != s.cfg.maxOrder {
		return 0, fmt.Errorf("%w: %d weights for max order %d", ErrInvalidInput, len(weights), s.cfg.maxOrder)
	}

	matches := make([]int, s.cfg.maxOrder)
	totals := make([]int, s.cfg.maxOrder)
	var candLen, refLen int

	for i, pair := range pairs {
		if len(pair.References) == 0 {
			return 0, fmt.Errorf("%w: pair %d has no references", ErrInvalidInput, i)
		}

		candLen += len(pair.Candidate)
		refLen += closestRefLen(len(pair.Candidate), pair.References)

		for n := 1; n <= s.cfg.maxOrder; n++ {
			if total := len(pair.Candidate) - n + 1; total > 0 {
				matches[n-1] += ClippedMatchCount(pair.Candidate, pair.References, n)
				totals[n-1] += total
			}
		}
	}

	if candLen == 0 {
		return 0, nil
	}

	var logSum float64
	for n := range matches {
		var precision float64
		if totals[n] > 0 {
			precision = float64(matches[n]) / float64(totals[n])
		}
		if precision == 0 {
			if s.cfg.smoothing == SmoothingNone {
				return 0, nil
			}
			precision = precisionEpsilon
		}
		logSum += weights[n] * math.Log(precision)
	}

	bp := 1.0
	if candLen <= refLen {
		bp = math.Exp(1 - float64(refLen)/float64(candLen))
	}

	return bp * math.Exp(logSum), nil
}

// Sentence scores a single candidate against its references.
func (s *BLEUScorer) Sentence(candidate []string, references [][]string) (float64, error) {
	return s.Corpus([]Pair{{Candidate: candidate, References: references}})
}

// closestRefLen returns the reference length closest in absolute difference
// to the candidate length, preferring the shorter reference on ties.
func closestRefLen(candLen int, references [][]string) int {
	best := len(references[0])
	for _, ref := range references[1:] {
		diff := abs(len(ref) - candLen)
		bestDiff := abs(best - candLen)
		if diff < bestDiff || (diff == bestDiff && len(ref) < best) {
			best = len(ref)
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
