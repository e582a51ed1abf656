// Package slog provides logging decorators for domain interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/ccqa"
)

// Ensure LoggingAssembler implements ccqa.Assembler.
var _ ccqa.Assembler = (*LoggingAssembler)(nil)

// LoggingAssembler wraps an Assembler with debug logging.
type LoggingAssembler struct {
	next   ccqa.Assembler
	logger *slog.Logger
}

// NewLoggingAssembler creates a new LoggingAssembler.
func NewLoggingAssembler(next ccqa.Assembler, logger *slog.Logger) *LoggingAssembler {
	return &LoggingAssembler{next: next, logger: logger}
}

// Assemble delegates to the wrapped assembler and logs the outcome.
func (a *LoggingAssembler) Assemble(page *ccqa.Page) (rec *ccqa.Record, err error) {
	defer func(begin time.Time) {
		questions, language := 0, ""
		if rec != nil {
			questions = len(rec.Questions)
			language = rec.PredictedLanguage
		}
		a.logger.Debug("page assembled",
			"uri", page.URI,
			"questions", questions,
			"language", language,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Assemble(page)
}
