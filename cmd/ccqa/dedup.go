package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/ccqa"
	"github.com/fwojciec/ccqa/bloom"
	"github.com/fwojciec/ccqa/goquery"
	"github.com/fwojciec/ccqa/jsonl"
)

// Run executes the dedup command.
func (c *DedupCmd) Run(deps *Dependencies) error {
	records, err := readRecords(c.Input)
	if err != nil {
		return err
	}

	d := &ccqa.Deduplicator{
		Texts: goquery.NewTextExtractor(),
		Seen:  bloom.NewFilter(uint(len(records))+1, 0.001),
	}
	merged, err := d.Merge(records)
	if err != nil {
		return err
	}

	out, err := os.Create(c.Output)
	if err != nil {
		return err
	}
	defer out.Close()

	w := jsonl.NewWriter(out)
	for _, rec := range merged {
		if err := w.WriteRecord(rec); err != nil {
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "%d records merged into %d\n", len(records), len(merged))
	return nil
}

func readRecords(path string) ([]*ccqa.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return jsonl.NewReader(f).ReadAll()
}
