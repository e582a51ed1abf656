package html_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ccqahtml "github.com/fwojciec/ccqa/html"
)

func TestWalker_BuildsNestedEntities(t *testing.T) {
	t.Parallel()

	root := parse(t, `<html><body>`+
		`<div itemscope itemtype="https://schema.org/Question">`+
		`<h1 itemprop="name">How do I X?</h1>`+
		`<div itemprop="text"><p>Body of question</p></div>`+
		`<meta itemprop="answerCount" content="2"/>`+
		`<div itemprop="acceptedAnswer" itemscope itemtype="https://schema.org/Answer">`+
		`<div itemprop="text"><p>Yes.</p></div>`+
		`<meta itemprop="upvoteCount" content="5"/>`+
		`<div itemscope itemtype="https://schema.org/Person"><span itemprop="name">Alice</span></div>`+
		`</div>`+
		`<div itemprop="suggestedAnswer" itemscope itemtype="https://schema.org/Answer">`+
		`<div itemprop="text"><p>Hi</p></div>`+
		`</div>`+
		`</div>`+
		`</body></html>`)

	w := ccqahtml.NewWalker()
	roots := w.Discover(root)
	require.Len(t, roots, 1)

	q := w.Build(roots[0])
	assert.Equal(t, "How do I X?", q.NameMarkup)
	assert.Equal(t, "<p>Body of question</p>", q.TextMarkup)
	assert.Equal(t, "2", q.AnswerCount)
	// The answers' vote counts must not bleed into the question.
	assert.Empty(t, q.UpvoteCount)

	require.Len(t, q.Answers, 2)
	accepted := q.Answers[0]
	assert.Equal(t, "acceptedAnswer", accepted.Status)
	assert.Equal(t, "<p>Yes.</p>", accepted.TextMarkup)
	assert.Equal(t, "5", accepted.UpvoteCount)
	assert.Equal(t, "Alice", accepted.Author)

	suggested := q.Answers[1]
	assert.Equal(t, "suggestedAnswer", suggested.Status)
	assert.Equal(t, "<p>Hi</p>", suggested.TextMarkup)
	assert.Empty(t, suggested.Author)

	// Everything under the root is consumed: nothing left to discover.
	assert.Empty(t, w.Discover(root))
}

func TestWalker_PersonBeforeQuestionName(t *testing.T) {
	t.Parallel()

	// The Person's name precedes the question's in document order. It is
	// consumed with the Person entity, so the question name search must
	// not pick it up.
	root := parse(t, `<div itemscope itemtype="https://schema.org/Question">`+
		`<div itemscope itemtype="https://schema.org/Person"><span itemprop="name">Carol</span></div>`+
		`<h1 itemprop="name">Q?</h1>`+
		`</div>`)

	w := ccqahtml.NewWalker()
	roots := w.Discover(root)
	require.Len(t, roots, 1)

	q := w.Build(roots[0])
	assert.Equal(t, "Q?", q.NameMarkup)
	assert.Equal(t, "Carol", q.Author)
}

func TestWalker_StackedAnswerPruned(t *testing.T) {
	t.Parallel()

	root := parse(t, `<div itemscope itemtype="https://schema.org/Question">`+
		`<h1 itemprop="name">Q?</h1>`+
		`<div itemprop="acceptedAnswer" itemscope itemtype="https://schema.org/Answer">`+
		`<div itemprop="text"><p>Outer.</p>`+
		`<div itemprop="suggestedAnswer" itemscope itemtype="https://schema.org/Answer"><div itemprop="text"><p>Inner.</p></div></div>`+
		`</div>`+
		`</div>`+
		`</div>`)

	w := ccqahtml.NewWalker()
	roots := w.Discover(root)
	require.Len(t, roots, 1)

	q := w.Build(roots[0])
	require.Len(t, q.Answers, 1)
	assert.Equal(t, "acceptedAnswer", q.Answers[0].Status)
	// The stacked inner answer is pruned from both the record and the
	// outer answer's markup.
	assert.Equal(t, "<p>Outer.</p>", q.Answers[0].TextMarkup)
	assert.Empty(t, w.Discover(root))
}

func TestWalker_StackedQuestionPruned(t *testing.T) {
	t.Parallel()

	root := parse(t, `<div itemscope itemtype="https://schema.org/Question">`+
		`<h1 itemprop="name">Q?</h1>`+
		`<div itemprop="acceptedAnswer" itemscope itemtype="https://schema.org/Answer">`+
		`<div itemprop="text"><p>Outer.</p>`+
		`<div itemscope itemtype="https://schema.org/Question"><h2 itemprop="name">Nested?</h2></div>`+
		`</div>`+
		`</div>`+
		`</div>`)

	w := ccqahtml.NewWalker()
	roots := w.Discover(root)
	require.Len(t, roots, 1)

	q := w.Build(roots[0])
	assert.Equal(t, "Q?", q.NameMarkup)
	require.Len(t, q.Answers, 1)
	assert.Equal(t, "<p>Outer.</p>", q.Answers[0].TextMarkup)

	// The question stacked inside the answer never surfaces.
	assert.Empty(t, w.Discover(root))
}

func TestWalker_NestedQuestionMergesIntoRoot(t *testing.T) {
	t.Parallel()

	root := parse(t, `<div itemscope itemtype="https://schema.org/Question">`+
		`<h1 itemprop="name">Outer?</h1>`+
		`<div itemscope itemtype="https://schema.org/Question"><meta itemprop="upvoteCount" content="9"/></div>`+
		`</div>`)

	w := ccqahtml.NewWalker()
	roots := w.Discover(root)
	require.Len(t, roots, 1)

	q := w.Build(roots[0])
	assert.Equal(t, "Outer?", q.NameMarkup)
	assert.Equal(t, "9", q.UpvoteCount)
	assert.Empty(t, w.Discover(root))
}
