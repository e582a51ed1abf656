package main

import (
	"context"
	"io"

	"github.com/fwojciec/ccqa"
	"github.com/fwojciec/ccqa/goquery"
	"github.com/fwojciec/ccqa/htmltomarkdown"
)

// Dependencies holds shared configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract    ExtractCmd    `cmd:"" help:"Extract structured records from archived Q&A page batches"`
	Dedup      DedupCmd      `cmd:"" help:"Merge records crawled from the same URI"`
	Closedbook ClosedbookCmd `cmd:"" help:"Generate question/answer pairs for closed-book training"`
	Passages   PassagesCmd   `cmd:"" help:"Generate positive/hard-negative passage sets for retrieval training"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Input       string `arg:"" help:"Input page batch file, or a directory of .json batches"`
	Output      string `arg:"" help:"Output directory for record files"`
	Concurrency int    `short:"c" default:"1" help:"Concurrent page limit"`
	Verbose     bool   `short:"v" help:"Log per-page extraction progress"`
}

// DedupCmd is the "dedup" subcommand.
type DedupCmd struct {
	Input  string `arg:"" help:"Record file (line-delimited JSON)"`
	Output string `arg:"" help:"Merged output file"`
}

// ClosedbookCmd is the "closedbook" subcommand.
type ClosedbookCmd struct {
	Input       string `arg:"" help:"Record file (line-delimited JSON)"`
	Output      string `arg:"" help:"Output path prefix (writes <prefix>.source and <prefix>.target)"`
	OnlyEnglish bool   `help:"Only keep records predicted to be English"`
	KeepMarkup  bool   `help:"Keep the HTML markup in output text"`
	Markdown    bool   `help:"Render markup as Markdown instead of plain text"`
}

// PassagesCmd is the "passages" subcommand.
type PassagesCmd struct {
	Input       string `arg:"" help:"Record file (line-delimited JSON)"`
	Output      string `arg:"" help:"Output path prefix (writes <prefix>.jsonl)"`
	OnlyEnglish bool   `help:"Only keep records predicted to be English"`
	KeepMarkup  bool   `help:"Keep the HTML markup in passage text"`
	Markdown    bool   `help:"Render markup as Markdown instead of plain text"`
}

// textExtractor picks the markup-to-text strategy shared by the
// formatting commands.
func textExtractor(keepMarkup, markdown bool) ccqa.TextExtractor {
	switch {
	case markdown:
		return htmltomarkdown.NewTextExtractor()
	case keepMarkup:
		return ccqa.RawText{}
	default:
		return goquery.NewTextExtractor()
	}
}
