package main

// One-shot pipeline run against a local file:
//   go run ./cmd/parsedemo -file testdata/resume.txt

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"hireflow-backend/internal/entities"
	"hireflow-backend/internal/extract"
	"hireflow-backend/internal/scoring"
)

func main() {
	filePath := flag.String("file", "", "path to a resume file (.pdf, .doc, .docx, .txt)")
	rulesetPath := flag.String("ruleset", "", "optional JSON ruleset override")
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "usage: parsedemo -file <path> [-ruleset <path>]")
		os.Exit(2)
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read file: %v\n", err)
		os.Exit(1)
	}

	fileName := filepath.Base(*filePath)
	mediaType := extract.MediaTypeForFilename(fileName)

	text, err := extract.Extract(data, mediaType, fileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "extract: %v\n", err)
		os.Exit(1)
	}

	extractor, err := buildExtractor(*rulesetPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ruleset: %v\n", err)
		os.Exit(1)
	}

	resume := extractor.Extract(text.Content)
	scorer := scoring.NewScorer(scoring.DefaultPolicy())
	conf := scorer.Score(resume)

	out := map[string]any{
		"parsedData":        resume,
		"confidence":        conf,
		"needsManualReview": scorer.NeedsReview(conf),
		"qualityReport":     scorer.Report(resume, conf),
		"pageCount":         text.PageCount,
		"characters":        len(text.Content),
	}

	payload, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(payload))
}

func buildExtractor(rulesetPath string) (*entities.Extractor, error) {
	if rulesetPath == "" {
		return entities.NewExtractor(nil), nil
	}
	cfg, err := entities.LoadConfig(rulesetPath)
	if err != nil {
		return nil, err
	}
	rules, err := entities.NewRuleset(cfg)
	if err != nil {
		return nil, err
	}
	return entities.NewExtractor(rules), nil
}
