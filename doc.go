// Package texteval provides evaluation metrics for sequence generation and
// ranking: word error rate, BLEU, perplexity, and ROC / precision-recall
// curves.
//
// # Quick Start
//
//	truth := strings.Fields("the cat sat on the mat")
//	hyp := strings.Fields("the cat sat on a mat")
//
//	wer, err := texteval.WER(truth, hyp)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("WER: %.3f\n", wer)
//
//	scorer := texteval.NewBLEUScorer(texteval.WithMaxOrder(4))
//	bleu, err := scorer.Sentence(hyp, [][]string{truth})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("BLEU: %.3f\n", bleu)
//
// # Inputs
//
// All functions operate on caller-supplied in-memory data: token sequences
// ([]string), parallel score/label arrays, or a ProbabilityFunc capability.
// Tokenization, file parsing and plotting are out of scope; see
// cmd/texteval-bench for a corpus evaluation driver.
//
// # Thread Safety
//
// Every function is pure and reads no shared state, so independent calls are
// safe to run concurrently. Batching across examples, if wanted, belongs to
// the caller.
package texteval
