package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/ccqa"
)

// Runner processes a batch of pages into records. Pages are independent
// and share no state, so the page is the unit of parallelism; output
// appends are serialized by writing from a single goroutine after all
// workers finish, preserving input order.
type Runner struct {
	Assembler ccqa.Assembler
	Writer    ccqa.RecordWriter

	// Concurrency limits parallel page assembly. Zero or negative
	// means sequential processing.
	Concurrency int
}

// Result holds the outcome of a batch run.
type Result struct {
	Pages   int // pages processed
	Records int // records written
	Skipped int // pages that contributed no questions
}

// Run assembles every page and appends the resulting records in page
// order. The first assembly or write error aborts the batch.
func (r *Runner) Run(ctx context.Context, pages []*ccqa.Page) (*Result, error) {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	records := make([]*ccqa.Record, len(pages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, page := range pages {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, err := r.Assembler.Assemble(page)
			if err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Pages: len(pages)}
	for _, rec := range records {
		if rec == nil {
			res.Skipped++
			continue
		}
		if err := r.Writer.WriteRecord(rec); err != nil {
			return nil, err
		}
		res.Records++
	}
	return res, nil
}
