package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/jamesainslie/go-texteval/internal/evalbench"
	"github.com/jamesainslie/go-texteval/langmodel"
)

func main() {
	var (
		suitePath  = flag.String("suite", "", "Path to YAML suite file")
		corpusDir  = flag.String("corpus", "", "Directory of .ref/.hyp pairs (alternative to -suite)")
		scoresPath = flag.String("scores", "", "Score-label file (alternative to -suite)")
		maxOrder   = flag.Int("max-order", 4, "BLEU maximum n-gram order")
		smoothing  = flag.String("smoothing", "none", "BLEU smoothing: none or epsilon")
		lmPath     = flag.String("lm", "", "ONNX causal LM for perplexity mode")
		idsPath    = flag.String("ids", "", "Token ID file for perplexity mode (one sequence of space-separated IDs per line)")
		verbose    = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *lmPath != "" {
		runPerplexity(logger, *lmPath, *idsPath)
		return
	}

	suite, err := resolveSuite(*suitePath, *corpusDir, *scoresPath, *maxOrder, *smoothing)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	report, err := evalbench.NewRunner(logger).Run(suite)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error running suite: %v\n", err)
		os.Exit(1)
	}

	printReport(report)
}

func resolveSuite(suitePath, corpusDir, scoresPath string, maxOrder int, smoothing string) (*evalbench.Suite, error) {
	if suitePath != "" {
		return evalbench.LoadSuite(suitePath)
	}
	if corpusDir == "" && scoresPath == "" {
		return nil, fmt.Errorf("-suite, -corpus or -scores required")
	}
	switch smoothing {
	case "none", "epsilon":
	default:
		return nil, fmt.Errorf("smoothing must be none or epsilon, got %q", smoothing)
	}
	return &evalbench.Suite{
		Name:       "ad-hoc",
		CorpusDir:  corpusDir,
		ScoresPath: scoresPath,
		BLEU: evalbench.BLEUConfig{
			MaxOrder:  maxOrder,
			Smoothing: smoothing,
		},
	}, nil
}

func printReport(report *evalbench.Report) {
	fmt.Printf("Suite: %s\n", report.Suite)
	fmt.Println(strings.Repeat("-", 40))

	if report.HasCorpus {
		fmt.Printf("Examples:    %d\n", report.Examples)
		fmt.Printf("Corpus WER:  %.4f\n", report.CorpusWER)
		fmt.Printf("Corpus BLEU: %.4f\n", report.CorpusBLEU)
	}
	if report.HasRanking {
		fmt.Printf("Score-label pairs: %d\n", report.ScoredPairs)
		fmt.Printf("ROC AUC:           %.4f\n", report.ROCAUC)
		fmt.Printf("Average precision: %.4f\n", report.AveragePrecision)
	}
}

func runPerplexity(logger *slog.Logger, lmPath, idsPath string) {
	if idsPath == "" {
		fmt.Fprintln(os.Stderr, "error: -ids required with -lm")
		os.Exit(1)
	}

	seqs, err := loadIDSequences(idsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading token IDs: %v\n", err)
		os.Exit(1)
	}

	model, err := langmodel.New(lmPath, langmodel.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading model: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = model.Close() }()

	ctx := context.Background()
	for i, ids := range seqs {
		pp, err := model.Perplexity(ctx, ids)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error scoring sequence %d: %v\n", i+1, err)
			os.Exit(1)
		}
		fmt.Printf("sequence %d (%d tokens): perplexity %.4f\n", i+1, len(ids), pp)
	}
}

func loadIDSequences(path string) ([][]int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var seqs [][]int64
	for lineNo, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		ids := make([]int64, len(fields))
		for i, f := range fields {
			id, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: parsing token ID: %w", lineNo+1, err)
			}
			ids[i] = id
		}
		seqs = append(seqs, ids)
	}

	if len(seqs) == 0 {
		return nil, fmt.Errorf("no token ID sequences in %s", path)
	}
	return seqs, nil
}
