package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/ccqa"
	"github.com/fwojciec/ccqa/jsonl"
)

// Run executes the passages command.
func (c *PassagesCmd) Run(deps *Dependencies) error {
	records, err := readRecords(c.Input)
	if err != nil {
		return err
	}

	f := &ccqa.PassageFormatter{
		Texts:       textExtractor(c.KeepMarkup, c.Markdown),
		OnlyEnglish: c.OnlyEnglish,
	}
	examples, err := f.Format(records)
	if err != nil {
		return err
	}

	out, err := os.Create(c.Output + ".jsonl")
	if err != nil {
		return err
	}
	defer out.Close()

	w := jsonl.NewWriter(out)
	for _, ex := range examples {
		if err := w.Encode(ex); err != nil {
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "%d retrieval examples written\n", len(examples))
	return nil
}
