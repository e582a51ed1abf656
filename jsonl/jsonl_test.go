package jsonl_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/ccqa"
	"github.com/fwojciec/ccqa/jsonl"
)

func TestWriterReader_RoundTrip(t *testing.T) {
	t.Parallel()

	records := []*ccqa.Record{
		{
			Language:          "en",
			PredictedLanguage: "en",
			URI:               "https://example.com/q/1",
			UUID:              "uuid-1",
			ArchiveID:         "batch-1",
			Questions: []*ccqa.Question{{
				NameMarkup: "<p>What is Go?</p>",
				Answers: []*ccqa.Answer{
					{Status: "acceptedAnswer", TextMarkup: "<p>A language.</p>", UpvoteCount: "5", Author: "Alice"},
				},
			}},
		},
		{
			URI:       "https://example.com/q/2",
			UUID:      "uuid-2",
			Questions: []*ccqa.Question{{TextMarkup: "<p>Second.</p>", Answers: []*ccqa.Answer{}}},
		},
	}

	var buf bytes.Buffer
	w := jsonl.NewWriter(&buf)
	for _, rec := range records {
		require.NoError(t, w.WriteRecord(rec))
	}

	// One line per record, markup unescaped.
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "<p>What is Go?</p>")

	got, err := jsonl.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, records[0], got[0])
	assert.Equal(t, records[1], got[1])
}

func TestWriter_WriteRecord_Invalid(t *testing.T) {
	t.Parallel()

	w := jsonl.NewWriter(&bytes.Buffer{})
	err := w.WriteRecord(&ccqa.Record{URI: "https://example.com"})
	require.Error(t, err)
	assert.Equal(t, ccqa.EINVALID, ccqa.ErrorCode(err))
}

func TestWriter_Encode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := jsonl.NewWriter(&buf)
	require.NoError(t, w.Encode(map[string]string{"question": "Why?"}))
	assert.Equal(t, `{"question":"Why?"}`+"\n", buf.String())
}

func TestReader_Read(t *testing.T) {
	t.Parallel()

	t.Run("eof at end", func(t *testing.T) {
		t.Parallel()
		r := jsonl.NewReader(strings.NewReader(`{"URI":"u","UUID":"id","Questions":null}` + "\n"))
		rec, err := r.Read()
		require.NoError(t, err)
		assert.Equal(t, "u", rec.URI)

		_, err = r.Read()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("malformed line", func(t *testing.T) {
		t.Parallel()
		r := jsonl.NewReader(strings.NewReader("not json\n"))
		_, err := r.Read()
		require.Error(t, err)
		assert.Equal(t, ccqa.EINVALID, ccqa.ErrorCode(err))
	})
}
