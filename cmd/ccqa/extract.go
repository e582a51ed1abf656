package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/ccqa"
	"github.com/fwojciec/ccqa/html"
	"github.com/fwojciec/ccqa/jsonl"
	"github.com/fwojciec/ccqa/pipeline"
	ccqaslog "github.com/fwojciec/ccqa/slog"
	"github.com/fwojciec/ccqa/whatlanggo"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	inputs, err := batchFiles(c.Input)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return ccqa.Errorf(ccqa.ENOTFOUND, "no input batches found at %q", c.Input)
	}

	if err := os.MkdirAll(c.Output, 0755); err != nil {
		return err
	}

	var assembler ccqa.Assembler = &pipeline.Assembler{
		Extractor:  html.NewExtractor(),
		Classifier: whatlanggo.NewClassifier(),
	}
	if c.Verbose {
		logger := slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		assembler = ccqaslog.NewLoggingAssembler(assembler, logger)
	}

	for _, input := range inputs {
		if err := c.extractBatch(deps, assembler, input); err != nil {
			return fmt.Errorf("batch %s: %w", input, err)
		}
	}
	return nil
}

func (c *ExtractCmd) extractBatch(deps *Dependencies, assembler ccqa.Assembler, input string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	var pages []*ccqa.Page
	if err := json.Unmarshal(data, &pages); err != nil {
		return ccqa.Errorf(ccqa.EINVALID, "malformed page batch: %v", err)
	}

	archiveID := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	for _, page := range pages {
		page.ArchiveID = archiveID
	}

	outPath := filepath.Join(c.Output, "ccqa_"+archiveID+".jsonl")
	out, err := os.OpenFile(outPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer out.Close()

	runner := &pipeline.Runner{
		Assembler:   assembler,
		Writer:      jsonl.NewWriter(out),
		Concurrency: c.Concurrency,
	}
	res, err := runner.Run(deps.Ctx, pages)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s: %d pages, %d records, %d without questions\n",
		filepath.Base(input), res.Pages, res.Records, res.Skipped)
	return nil
}

// batchFiles resolves the input argument to a list of batch files:
// the file itself, or every .json file in a directory.
func batchFiles(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{input}, nil
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(input, e.Name()))
	}
	return files, nil
}
