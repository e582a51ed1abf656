package ccqa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/ccqa"
	"github.com/fwojciec/ccqa/bloom"
	"github.com/fwojciec/ccqa/goquery"
)

func TestDeduplicator_Merge(t *testing.T) {
	t.Parallel()

	first := &ccqa.Record{
		Language:          "en",
		PredictedLanguage: "en",
		URI:               "https://example.com/q/1",
		UUID:              "uuid-1",
		ArchiveID:         "batch-1",
		Questions: []*ccqa.Question{{
			NameMarkup: "<p>What is Go?</p>",
			Answers: []*ccqa.Answer{
				{Status: "acceptedAnswer", TextMarkup: "<p>A programming language.</p>"},
			},
		}},
	}
	recrawl := &ccqa.Record{
		Language:          "en",
		PredictedLanguage: "en",
		URI:               "https://example.com/q/1",
		UUID:              "uuid-2",
		ArchiveID:         "batch-2",
		Questions: []*ccqa.Question{
			{
				// Same question text, different markup details.
				NameMarkup: "<p>What is <b>Go</b>?</p>",
				Answers: []*ccqa.Answer{
					{Status: "acceptedAnswer", TextMarkup: "<p>A programming language.</p>"},
					{Status: "suggestedAnswer", TextMarkup: "<p>A board game.</p>"},
				},
			},
			{
				NameMarkup: "<p>Why is Go fast?</p>",
				Answers:    []*ccqa.Answer{{Status: "suggestedAnswer", TextMarkup: "<p>Compilation.</p>"}},
			},
		},
	}
	other := &ccqa.Record{
		URI:       "https://example.com/q/2",
		UUID:      "uuid-3",
		Questions: []*ccqa.Question{{NameMarkup: "<p>Unrelated?</p>", Answers: []*ccqa.Answer{}}},
	}

	run := func(t *testing.T, d *ccqa.Deduplicator) {
		t.Helper()

		merged, err := d.Merge([]*ccqa.Record{first, recrawl, other})
		require.NoError(t, err)
		require.Len(t, merged, 2)

		// First-seen record supplies the header.
		rec := merged[0]
		assert.Equal(t, "https://example.com/q/1", rec.URI)
		assert.Equal(t, "uuid-1", rec.UUID)
		assert.Equal(t, "batch-1", rec.ArchiveID)

		// Duplicate question merged; only the unseen answer added.
		require.Len(t, rec.Questions, 2)
		q := rec.Questions[0]
		assert.Equal(t, "<p>What is Go?</p>", q.NameMarkup)
		require.Len(t, q.Answers, 2)
		assert.Equal(t, "<p>A programming language.</p>", q.Answers[0].TextMarkup)
		assert.Equal(t, "<p>A board game.</p>", q.Answers[1].TextMarkup)

		// Unseen question from the re-crawl appended.
		assert.Equal(t, "<p>Why is Go fast?</p>", rec.Questions[1].NameMarkup)

		assert.Equal(t, "https://example.com/q/2", merged[1].URI)
	}

	t.Run("map only", func(t *testing.T) {
		t.Parallel()
		run(t, &ccqa.Deduplicator{Texts: goquery.NewTextExtractor()})
	})

	t.Run("with bloom fast path", func(t *testing.T) {
		t.Parallel()
		run(t, &ccqa.Deduplicator{
			Texts: goquery.NewTextExtractor(),
			Seen:  bloom.NewFilter(100, 0.001),
		})
	})
}

func TestDeduplicator_Merge_DistinctURIsUntouched(t *testing.T) {
	t.Parallel()

	records := []*ccqa.Record{
		{URI: "https://example.com/a", UUID: "a", Questions: []*ccqa.Question{{NameMarkup: "<p>A?</p>", Answers: []*ccqa.Answer{}}}},
		{URI: "https://example.com/b", UUID: "b", Questions: []*ccqa.Question{{NameMarkup: "<p>B?</p>", Answers: []*ccqa.Answer{}}}},
	}

	d := &ccqa.Deduplicator{Texts: goquery.NewTextExtractor()}
	merged, err := d.Merge(records)
	require.NoError(t, err)
	require.Len(t, merged, 2)
	assert.Equal(t, "https://example.com/a", merged[0].URI)
	assert.Equal(t, "https://example.com/b", merged[1].URI)
}
