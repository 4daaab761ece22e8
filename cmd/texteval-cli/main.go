package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	texteval "github.com/jamesainslie/go-texteval"
)

func main() {
	ref := flag.String("ref", "", "Reference text (whitespace-tokenized)")
	hyp := flag.String("hyp", "", "Hypothesis text (whitespace-tokenized)")
	mode := flag.String("mode", "wer", "Metric: wer or bleu")
	maxOrder := flag.Int("max-order", 4, "BLEU maximum n-gram order")
	smoothing := flag.String("smoothing", "none", "BLEU smoothing: none or epsilon")

	flag.Parse()

	if *ref == "" || *hyp == "" {
		fmt.Fprintln(os.Stderr, "Usage: texteval-cli -ref TEXT -hyp TEXT [-mode wer|bleu]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	refTokens := strings.Fields(*ref)
	hypTokens := strings.Fields(*hyp)

	switch *mode {
	case "wer":
		wer, err := texteval.WER(refTokens, hypTokens)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Reference:  %q\n", *ref)
		fmt.Printf("Hypothesis: %q\n", *hyp)
		fmt.Printf("Edit distance: %d\n", texteval.EditDistance(refTokens, hypTokens))
		fmt.Printf("WER: %.4f\n", wer)

	case "bleu":
		opts := []texteval.BLEUOption{texteval.WithMaxOrder(*maxOrder)}
		switch *smoothing {
		case "none":
		case "epsilon":
			opts = append(opts, texteval.WithSmoothing(texteval.SmoothingEpsilon))
		default:
			fmt.Fprintf(os.Stderr, "Unknown smoothing: %s\n", *smoothing)
			os.Exit(1)
		}

		scorer := texteval.NewBLEUScorer(opts...)
		bleu, err := scorer.Sentence(hypTokens, [][]string{refTokens})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Reference:  %q\n", *ref)
		fmt.Printf("Candidate:  %q\n", *hyp)
		fmt.Printf("BLEU-%d: %.4f\n", *maxOrder, bleu)

	default:
		fmt.Fprintf(os.Stderr, "Unknown mode: %s\n", *mode)
		os.Exit(1)
	}
}
