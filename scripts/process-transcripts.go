//go:build ignore

// Process a tab-separated transcript file into the .ref/.hyp corpus layout
// consumed by texteval-bench. Each input line is "reference<TAB>hypothesis".
// Usage: go run ./scripts/process-transcripts.go -in pairs.tsv -out testdata/corpus
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	inPath := flag.String("in", "", "Tab-separated reference/hypothesis file")
	outDir := flag.String("out", "testdata/corpus", "Output corpus directory")
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: go run ./scripts/process-transcripts.go -in pairs.tsv [-out DIR]")
		os.Exit(1)
	}

	f, err := os.Open(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening input: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output dir: %v\n", err)
		os.Exit(1)
	}

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		ref, hyp, ok := strings.Cut(line, "\t")
		if !ok {
			fmt.Fprintf(os.Stderr, "Skipping line without tab: %q\n", line)
			continue
		}

		count++
		id := fmt.Sprintf("%04d", count)
		if err := writeLine(filepath.Join(*outDir, id+".ref"), ref); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s.ref: %v\n", id, err)
			os.Exit(1)
		}
		if err := writeLine(filepath.Join(*outDir, id+".hyp"), hyp); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s.hyp: %v\n", id, err)
			os.Exit(1)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d example pairs to %s\n", count, *outDir)
}

func writeLine(path, text string) error {
	return os.WriteFile(path, []byte(strings.TrimSpace(text)+"\n"), 0o644)
}
