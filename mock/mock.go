// Package mock provides hand-written mocks for domain interfaces.
package mock

import "github.com/fwojciec/ccqa"

var _ ccqa.QuestionExtractor = (*QuestionExtractor)(nil)

// QuestionExtractor is a mock implementation of ccqa.QuestionExtractor.
type QuestionExtractor struct {
	ExtractFn func(html string) ([]*ccqa.Question, error)
}

func (e *QuestionExtractor) Extract(html string) ([]*ccqa.Question, error) {
	return e.ExtractFn(html)
}

var _ ccqa.LanguageClassifier = (*LanguageClassifier)(nil)

// LanguageClassifier is a mock implementation of ccqa.LanguageClassifier.
type LanguageClassifier struct {
	ClassifyFn func(text string) (string, error)
}

func (c *LanguageClassifier) Classify(text string) (string, error) {
	return c.ClassifyFn(text)
}

var _ ccqa.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of ccqa.TextExtractor.
type TextExtractor struct {
	TextFn func(markup string) (string, error)
}

func (e *TextExtractor) Text(markup string) (string, error) {
	return e.TextFn(markup)
}

var _ ccqa.Assembler = (*Assembler)(nil)

// Assembler is a mock implementation of ccqa.Assembler.
type Assembler struct {
	AssembleFn func(page *ccqa.Page) (*ccqa.Record, error)
}

func (a *Assembler) Assemble(page *ccqa.Page) (*ccqa.Record, error) {
	return a.AssembleFn(page)
}

var _ ccqa.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of ccqa.RecordWriter.
type RecordWriter struct {
	WriteRecordFn func(rec *ccqa.Record) error
}

func (w *RecordWriter) WriteRecord(rec *ccqa.Record) error {
	return w.WriteRecordFn(rec)
}
