package texteval

import "fmt"

// WER returns the word error rate of a hypothesis against a reference:
// the edit distance between the two divided by the reference length.
func WER(truth, hyp []string) (float64, error) {
	if len(truth) == 0 {
		return 0, fmt.Errorf("%w: empty reference sequence", ErrInvalidInput)
	}
	return float64(EditDistance(truth, hyp)) / float64(len(truth)), nil
}

// CorpusWER returns the corpus-level word error rate across paired examples:
// the sum of per-example edit distances divided by the sum of reference
// lengths. This is not the mean of per-example WER values; with unequal
// reference lengths the two differ, and the aggregate ratio is the standard
// definition.
func CorpusWER(truths, hyps [][]string) (float64, error) {
	if len(truths) != len(hyps) {
		return 0, fmt.Errorf("%w: %d references vs %d hypotheses", ErrInvalidInput, len(truths), len(hyps))
	}

	var totalDist, totalLen int
	for i := range truths {
		totalDist += EditDistance(truths[i], hyps[i])
		totalLen += len(truths[i])
	}

	if totalLen == 0 {
		return 0, fmt.Errorf("%w: total reference length is zero", ErrInvalidInput)
	}
	return float64(totalDist) / float64(totalLen), nil
}
