package texteval

import "strings"

// ngramSep joins tokens into map keys. The unit separator cannot collide with
// whitespace-tokenized input.
const ngramSep = "\x1f"

// NGrams returns the multiset of contiguous length-n windows in seq, keyed by
// the joined window tokens with occurrence counts. The result is empty when
// len(seq) < n or n < 1.
func NGrams(seq []string, n int) map[string]int {
	counts := make(map[string]int)
	if n < 1 || len(seq) < n {
		return counts
	}
	for i := 0; i+n <= len(seq); i++ {
		counts[strings.Join(seq[i:i+n], ngramSep)]++
	}
	return counts
}

// ClippedMatchCount returns the modified-precision numerator at order n: for
// each distinct n-gram in the candidate, the candidate count clipped to the
// maximum count of that n-gram in any single reference. Clipping prevents a
// candidate from inflating precision by repeating one matching n-gram.
func ClippedMatchCount(candidate []string, references [][]string, n int) int {
	candCounts := NGrams(candidate, n)
	if len(candCounts) == 0 {
		return 0
	}

	maxRef := make(map[string]int, len(candCounts))
	for _, ref := range references {
		for gram, count := range NGrams(ref, n) {
			if count > maxRef[gram] {
				maxRef[gram] = count
			}
		}
	}

	matches := 0
	for gram, count := range candCounts {
		matches += min(count, maxRef[gram])
	}
	return matches
}

// ModifiedPrecision returns the clipped match count at order n divided by the
// total number of candidate n-grams at that order. It is 0, not an error,
// when the candidate has no n-grams of the requested order.
func ModifiedPrecision(candidate []string, references [][]string, n int) float64 {
	total := len(candidate) - n + 1
	if n < 1 || total <= 0 {
		return 0
	}
	return float64(ClippedMatchCount(candidate, references, n)) / float64(total)
}
