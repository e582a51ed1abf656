// Package pipeline orchestrates page extraction into records: per-page
// assembly (extract, filter, language vote, identify) and concurrent
// batch processing with serialized output appends.
package pipeline

import (
	"github.com/google/uuid"

	"github.com/fwojciec/ccqa"
)

// Ensure Assembler implements ccqa.Assembler at compile time.
var _ ccqa.Assembler = (*Assembler)(nil)

// Assembler builds one record per page from its extracted questions.
type Assembler struct {
	Extractor  ccqa.QuestionExtractor
	Classifier ccqa.LanguageClassifier
}

// Assemble extracts the page's questions, votes the page language and
// returns a record with a fresh UUID. Pages with no retained questions
// return (nil, nil): they contribute nothing, silently. A classifier
// error is returned as-is; no language means no usable record, so
// callers treat it as fatal for the whole run.
func (a *Assembler) Assemble(page *ccqa.Page) (*ccqa.Record, error) {
	questions, err := a.Extractor.Extract(page.HTML)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, nil
	}

	labels := make([]string, 0, len(questions))
	for _, q := range questions {
		text, ok := ccqa.VoteText(q)
		if !ok {
			// No voteable text; excluded from the page-level vote.
			continue
		}
		label, err := a.Classifier.Classify(text)
		if err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}

	return &ccqa.Record{
		Language:          page.Language,
		PredictedLanguage: ccqa.MajorityLanguage(labels),
		URI:               page.URI,
		UUID:              uuid.New().String(),
		ArchiveID:         page.ArchiveID,
		Questions:         questions,
	}, nil
}
