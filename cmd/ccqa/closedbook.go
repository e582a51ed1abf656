package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fwojciec/ccqa"
)

// Run executes the closedbook command.
func (c *ClosedbookCmd) Run(deps *Dependencies) error {
	records, err := readRecords(c.Input)
	if err != nil {
		return err
	}

	f := &ccqa.ClosedBookFormatter{
		Texts:       textExtractor(c.KeepMarkup, c.Markdown),
		OnlyEnglish: c.OnlyEnglish,
	}
	pairs, err := f.Format(records)
	if err != nil {
		return err
	}

	if err := writeLines(c.Output+".source", pairs, func(p ccqa.Pair) string { return p.Source }); err != nil {
		return err
	}
	if err := writeLines(c.Output+".target", pairs, func(p ccqa.Pair) string { return p.Target }); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "%d question/answer pairs written\n", len(pairs))
	return nil
}

func writeLines(path string, pairs []ccqa.Pair, field func(ccqa.Pair) string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, p := range pairs {
		if _, err := w.WriteString(field(p) + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
