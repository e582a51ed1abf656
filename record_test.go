package ccqa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/ccqa"
)

func TestQuestion_HasContent(t *testing.T) {
	t.Parallel()

	t.Run("name markup counts", func(t *testing.T) {
		t.Parallel()
		q := &ccqa.Question{NameMarkup: "How?"}
		assert.True(t, q.HasContent())
	})

	t.Run("text markup counts", func(t *testing.T) {
		t.Parallel()
		q := &ccqa.Question{TextMarkup: "<p>How?</p>"}
		assert.True(t, q.HasContent())
	})

	t.Run("answer text counts", func(t *testing.T) {
		t.Parallel()
		q := &ccqa.Question{Answers: []*ccqa.Answer{
			{Status: "suggestedAnswer"},
			{Status: "acceptedAnswer", TextMarkup: "<p>Like this.</p>"},
		}}
		assert.True(t, q.HasContent())
	})

	t.Run("metadata alone does not count", func(t *testing.T) {
		t.Parallel()
		q := &ccqa.Question{
			UpvoteCount: "12",
			DateCreated: "2020-01-01T00:00:00",
			Answers:     []*ccqa.Answer{{Status: "suggestedAnswer", UpvoteCount: "3"}},
		}
		assert.False(t, q.HasContent())
	})
}

func TestRecord_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		rec := &ccqa.Record{URI: "https://example.com/q/1", UUID: "id"}
		assert.NoError(t, rec.Validate())
	})

	t.Run("missing URI", func(t *testing.T) {
		t.Parallel()
		rec := &ccqa.Record{UUID: "id"}
		assert.Equal(t, ccqa.EINVALID, ccqa.ErrorCode(rec.Validate()))
	})

	t.Run("missing UUID", func(t *testing.T) {
		t.Parallel()
		rec := &ccqa.Record{URI: "https://example.com/q/1"}
		assert.Equal(t, ccqa.EINVALID, ccqa.ErrorCode(rec.Validate()))
	})
}
