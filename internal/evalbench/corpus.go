// Package evalbench loads evaluation corpora and computes aggregate scores
// with the metrics in the root package. It is the input-provider layer: it
// owns file parsing so the metrics never have to.
package evalbench

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Example is one corpus entry: a reference token sequence and the hypothesis
// produced for it, paired by file stem.
type Example struct {
	ID         string
	Reference  []string
	Hypothesis []string
}

// LoadCorpus loads all <id>.ref / <id>.hyp file pairs from a directory.
// Each file holds one whitespace-tokenized sequence.
func LoadCorpus(dir string) ([]Example, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var examples []Example
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".ref" {
			continue
		}

		id := strings.TrimSuffix(entry.Name(), ".ref")
		ref, err := readTokens(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		hyp, err := readTokens(filepath.Join(dir, id+".hyp"))
		if err != nil {
			return nil, fmt.Errorf("loading hypothesis for %s: %w", id, err)
		}

		examples = append(examples, Example{
			ID:         id,
			Reference:  ref,
			Hypothesis: hyp,
		})
	}

	if len(examples) == 0 {
		return nil, fmt.Errorf("no .ref/.hyp pairs in %s", dir)
	}
	return examples, nil
}

// LoadScores reads score-label pairs from a text file: one "score label"
// pair per line, label 0 or 1. Blank lines and lines starting with # are
// skipped.
func LoadScores(path string) ([]float64, []bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open scores file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var (
		scores []float64
		labels []bool
		lineNo int
	)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("line %d: expected \"score label\", got %q", lineNo, line)
		}

		score, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: parsing score: %w", lineNo, err)
		}

		var label bool
		switch fields[1] {
		case "0":
			label = false
		case "1":
			label = true
		default:
			return nil, nil, fmt.Errorf("line %d: label must be 0 or 1, got %q", lineNo, fields[1])
		}

		scores = append(scores, score)
		labels = append(labels, label)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("scan scores file: %w", err)
	}

	return scores, labels, nil
}

// readTokens reads a whitespace-tokenized sequence from a file.
func readTokens(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return strings.Fields(string(data)), nil
}
