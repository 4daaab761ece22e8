package evalbench

import (
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunner_Run(t *testing.T) {
	corpusDir := t.TempDir()
	writeFile(t, corpusDir, "a.ref", "the cat sat\n")
	writeFile(t, corpusDir, "a.hyp", "the cat sat\n")
	writeFile(t, corpusDir, "b.ref", "hello world\n")
	writeFile(t, corpusDir, "b.hyp", "hello there\n")

	scoresPath := writeFile(t, t.TempDir(), "scores.txt", "0.9 1\n0.8 1\n0.2 0\n0.1 0\n")

	suite := &Suite{
		Name:       "smoke",
		CorpusDir:  corpusDir,
		ScoresPath: scoresPath,
		BLEU:       BLEUConfig{MaxOrder: 1, Smoothing: "none"},
	}

	report, err := NewRunner(discardLogger()).Run(suite)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !report.HasCorpus || !report.HasRanking {
		t.Fatalf("report = %+v, want both metric families present", report)
	}
	if report.Examples != 2 {
		t.Errorf("Examples = %d, want 2", report.Examples)
	}
	// 1 error over 5 reference tokens.
	if want := 0.2; math.Abs(report.CorpusWER-want) > 1e-12 {
		t.Errorf("CorpusWER = %v, want %v", report.CorpusWER, want)
	}
	// Unigram precision 4/5 with no brevity penalty.
	if want := 0.8; math.Abs(report.CorpusBLEU-want) > 1e-12 {
		t.Errorf("CorpusBLEU = %v, want %v", report.CorpusBLEU, want)
	}
	// Scores rank every positive above every negative.
	if report.ROCAUC != 1.0 {
		t.Errorf("ROCAUC = %v, want 1.0", report.ROCAUC)
	}
	if report.AveragePrecision != 1.0 {
		t.Errorf("AveragePrecision = %v, want 1.0", report.AveragePrecision)
	}
}

func TestRunner_Run_RankingOnly(t *testing.T) {
	scoresPath := writeFile(t, t.TempDir(), "scores.txt", "0.7 1\n0.3 0\n")

	suite := &Suite{
		Name:       "ranking",
		ScoresPath: scoresPath,
		BLEU:       BLEUConfig{MaxOrder: 4, Smoothing: "none"},
	}

	report, err := NewRunner(discardLogger()).Run(suite)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.HasCorpus {
		t.Error("expected no corpus metrics")
	}
	if !report.HasRanking || report.ScoredPairs != 2 {
		t.Errorf("report = %+v, want ranking metrics over 2 pairs", report)
	}
}

func TestLoadSuite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "suite.yaml", `name: dev
corpus_dir: testdata/corpus
bleu:
  max_order: 2
  smoothing: epsilon
`)

	suite, err := LoadSuite(path)
	if err != nil {
		t.Fatalf("LoadSuite() error = %v", err)
	}
	if suite.Name != "dev" {
		t.Errorf("Name = %q, want dev", suite.Name)
	}
	if suite.BLEU.MaxOrder != 2 || suite.BLEU.Smoothing != "epsilon" {
		t.Errorf("BLEU config = %+v", suite.BLEU)
	}
}

func TestLoadSuite_Defaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "suite.yaml", "corpus_dir: data\n")

	suite, err := LoadSuite(path)
	if err != nil {
		t.Fatalf("LoadSuite() error = %v", err)
	}
	if suite.BLEU.MaxOrder != 4 {
		t.Errorf("MaxOrder = %d, want default 4", suite.BLEU.MaxOrder)
	}
	if suite.BLEU.Smoothing != "none" {
		t.Errorf("Smoothing = %q, want default none", suite.BLEU.Smoothing)
	}
}

func TestLoadSuite_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "no data sources", content: "name: empty\n"},
		{name: "bad smoothing", content: "corpus_dir: d\nbleu:\n  max_order: 4\n  smoothing: laplace\n"},
		{name: "bad max order", content: "corpus_dir: d\nbleu:\n  max_order: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "suite.yaml", tt.content)
			if _, err := LoadSuite(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadSuite_MissingFile(t *testing.T) {
	if _, err := LoadSuite(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
