package texteval

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestBLEUScorer_PerfectMatch(t *testing.T) {
	seq := strings.Fields("the quick brown fox jumps over the lazy dog")

	scorer := NewBLEUScorer()
	got, err := scorer.Sentence(seq, [][]string{seq})
	if err != nil {
		t.Fatalf("Sentence() error = %v", err)
	}
	if got != 1.0 {
		t.Errorf("Sentence() = %v, want 1.0 for identical candidate and reference", got)
	}
}

func TestBLEUScorer_KnownValue(t *testing.T) {
	candidate := strings.Fields("the cat sat on the mat")
	reference := strings.Fields("the cat sat on a mat")

	// p1 = 5/6, p2 = 3/5, BP = 1; score = sqrt(p1*p2).
	scorer := NewBLEUScorer(WithMaxOrder(2))
	got, err := scorer.Sentence(candidate, [][]string{reference})
	if err != nil {
		t.Fatalf("Sentence() error = %v", err)
	}
	want := math.Sqrt(5.0 / 6.0 * 3.0 / 5.0)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Sentence() = %v, want %v", got, want)
	}
}

func TestBLEUScorer_ZeroPrecisionClampsToZero(t *testing.T) {
	// No bigram overlap, so order-2 precision is 0.
	candidate := strings.Fields("a x b y")
	reference := strings.Fields("a b c d")

	scorer := NewBLEUScorer(WithMaxOrder(2))
	got, err := scorer.Sentence(candidate, [][]string{reference})
	if err != nil {
		t.Fatalf("Sentence() error = %v", err)
	}
	if got != 0 {
		t.Errorf("Sentence() = %v, want 0 under SmoothingNone", got)
	}
}

func TestBLEUScorer_EpsilonSmoothing(t *testing.T) {
	candidate := strings.Fields("a x b y")
	reference := strings.Fields("a b c d")

	scorer := NewBLEUScorer(WithMaxOrder(2), WithSmoothing(SmoothingEpsilon))
	got, err := scorer.Sentence(candidate, [][]string{reference})
	if err != nil {
		t.Fatalf("Sentence() error = %v", err)
	}
	if got <= 0 {
		t.Errorf("Sentence() = %v, want > 0 under SmoothingEpsilon", got)
	}
	if got >= 1 {
		t.Errorf("Sentence() = %v, want < 1", got)
	}
}

func TestBLEUScorer_BrevityPenalty(t *testing.T) {
	// Candidate matches a prefix of the reference exactly; only the brevity
	// penalty keeps the score below 1.
	candidate := strings.Fields("the cat sat on")
	reference := strings.Fields("the cat sat on the mat today")

	scorer := NewBLEUScorer(WithMaxOrder(2))
	got, err := scorer.Sentence(candidate, [][]string{reference})
	if err != nil {
		t.Fatalf("Sentence() error = %v", err)
	}
	want := math.Exp(1 - 7.0/4.0)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Sentence() = %v, want brevity penalty %v", got, want)
	}
}

func TestBLEUScorer_CorpusAggregates(t *testing.T) {
	// The second pair alone has zero bigram precision, but the corpus-level
	// aggregate combines counts before dividing, so the score stays nonzero.
	pairs := []Pair{
		{
			Candidate:  strings.Fields("a b c d"),
			References: [][]string{strings.Fields("a b c d")},
		},
		{
			Candidate:  strings.Fields("x q y r"),
			References: [][]string{strings.Fields("x y z w")},
		},
	}

	scorer := NewBLEUScorer(WithMaxOrder(2))
	got, err := scorer.Corpus(pairs)
	if err != nil {
		t.Fatalf("Corpus() error = %v", err)
	}
	if got <= 0 || got >= 1 {
		t.Errorf("Corpus() = %v, want in (0, 1)", got)
	}
}

func TestBLEUScorer_EmptyCandidate(t *testing.T) {
	scorer := NewBLEUScorer()
	got, err := scorer.Sentence(nil, [][]string{{"a", "b"}})
	if err != nil {
		t.Fatalf("Sentence() error = %v", err)
	}
	if got != 0 {
		t.Errorf("Sentence() = %v, want 0 for empty candidate", got)
	}
}

func TestBLEUScorer_Errors(t *testing.T) {
	tests := []struct {
		name   string
		scorer *BLEUScorer
		pairs  []Pair
	}{
		{
			name:   "no pairs",
			scorer: NewBLEUScorer(),
			pairs:  nil,
		},
		{
			name:   "pair without references",
			scorer: NewBLEUScorer(),
			pairs:  []Pair{{Candidate: []string{"a"}}},
		},
		{
			name:   "weight count mismatch",
			scorer: NewBLEUScorer(WithMaxOrder(4), WithWeights([]float64{0.5, 0.5})),
			pairs:  []Pair{{Candidate: []string{"a"}, References: [][]string{{"a"}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.scorer.Corpus(tt.pairs)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got: %v", err)
			}
		})
	}
}

func TestBLEUScorer_ClosestReferenceLength(t *testing.T) {
	// Candidate length 4: the length-4 reference is chosen for the brevity
	// penalty even though a longer reference also matches the content.
	candidate := strings.Fields("a b c d")
	references := [][]string{
		strings.Fields("a b c d"),
		strings.Fields("a b c d e f"),
	}

	scorer := NewBLEUScorer(WithMaxOrder(2))
	got, err := scorer.Sentence(candidate, references)
	if err != nil {
		t.Fatalf("Sentence() error = %v", err)
	}
	if got != 1.0 {
		t.Errorf("Sentence() = %v, want 1.0 (BP from closest reference)", got)
	}
}
