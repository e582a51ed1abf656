package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/ccqa"
	"github.com/fwojciec/ccqa/mock"
	ccqaslog "github.com/fwojciec/ccqa/slog"
)

func TestLoggingAssembler_Assemble(t *testing.T) {
	t.Parallel()

	want := &ccqa.Record{
		PredictedLanguage: "en",
		URI:               "https://example.com/q/1",
		UUID:              "uuid-1",
		Questions:         []*ccqa.Question{{NameMarkup: "<p>Q?</p>", Answers: []*ccqa.Answer{}}},
	}
	next := &mock.Assembler{
		AssembleFn: func(page *ccqa.Page) (*ccqa.Record, error) {
			return want, nil
		},
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	a := ccqaslog.NewLoggingAssembler(next, logger)
	got, err := a.Assemble(&ccqa.Page{URI: "https://example.com/q/1"})
	require.NoError(t, err)
	assert.Same(t, want, got)

	out := buf.String()
	assert.Contains(t, out, "page assembled")
	assert.Contains(t, out, "uri=https://example.com/q/1")
	assert.Contains(t, out, "questions=1")
	assert.Contains(t, out, "language=en")
}

func TestLoggingAssembler_LogsSkippedPages(t *testing.T) {
	t.Parallel()

	next := &mock.Assembler{
		AssembleFn: func(page *ccqa.Page) (*ccqa.Record, error) {
			return nil, nil
		},
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	a := ccqaslog.NewLoggingAssembler(next, logger)
	got, err := a.Assemble(&ccqa.Page{URI: "https://example.com/empty"})
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Contains(t, buf.String(), "questions=0")
}
