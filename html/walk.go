package html

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/fwojciec/ccqa"
)

// schema.org type references matched inside itemtype attributes. The
// scheme is left off so both http and https annotations match.
const (
	questionType = "//schema.org/Question"
	answerType   = "//schema.org/Answer"
	personType   = "//schema.org/Person"
)

// entityKind tags a node with the microdata entity it declares, resolved
// once per node instead of re-checking itemtype substrings at every
// decision point.
type entityKind int

const (
	kindNone entityKind = iota
	kindQuestion
	kindAnswer
	kindPerson
)

func kindOf(n *html.Node) entityKind {
	v, ok := attrVal(n, "itemtype")
	if !ok {
		return kindNone
	}
	switch {
	case strings.Contains(v, questionType):
		return kindQuestion
	case strings.Contains(v, answerType):
		return kindAnswer
	case strings.Contains(v, personType):
		return kindPerson
	}
	return kindNone
}

// Walker reconstructs Question entities from a page tree in two phases:
// Discover collects Question roots, Build runs a bounded recursive
// descent per root that attaches nested Answer and Person entities to
// the correct enclosing record.
//
// Consumed nodes are marked in a visited set rather than detached, so
// the parsed tree survives for inspection, but the processing semantics
// are those of destructive consumption: a marked subtree is invisible
// to every later search, render, discovery, or descent. This is what
// guarantees each entity is processed exactly once and that orphaned or
// stacked markup is pruned instead of double-counted.
//
// A Walker is bound to one page tree and is not safe for concurrent use.
type Walker struct {
	consumed map[*html.Node]bool
}

// NewWalker returns a Walker with an empty consumed set.
func NewWalker() *Walker {
	return &Walker{consumed: make(map[*html.Node]bool)}
}

// Discover returns the unconsumed Question roots under n in document
// order. It does not descend into a matched Question: nested Questions
// are handled by Build's descent, not treated as independent roots.
func (w *Walker) Discover(n *html.Node) []*html.Node {
	var roots []*html.Node
	w.discover(n, &roots)
	return roots
}

func (w *Walker) discover(n *html.Node, roots *[]*html.Node) {
	if w.consumed[n] {
		return
	}
	if kindOf(n) == kindQuestion {
		*roots = append(*roots, n)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.discover(c, roots)
	}
}

// context is the mutable target a descent writes into: the root
// Question, or the Answer currently being filled. Only the Question
// context has an Answers slot; encountering an Answer node while no
// slot is in scope is the stacked-markup signal.
type context struct {
	question *ccqa.Question
	answer   *ccqa.Answer
}

func (c *context) setAuthor(author string) {
	if c.answer != nil {
		c.answer.Author = author
		return
	}
	c.question.Author = author
}

// Build fills a Question record from the subtree rooted at root, which
// must be a node returned by Discover. The root and every entity node
// under it are marked consumed.
func (w *Walker) Build(root *html.Node) *ccqa.Question {
	q := &ccqa.Question{Answers: []*ccqa.Answer{}}
	w.search(root, &context{question: q})
	return q
}

func (w *Walker) search(n *html.Node, ctx *context) {
	if w.consumed[n] {
		return
	}

	kind := kindOf(n)
	if kind == kindAnswer {
		if ctx.question == nil {
			// Stacked markup: an Answer nested where only answer
			// content is expected cannot be attributed to any
			// Question. Prune the whole subtree.
			w.consumed[n] = true
			return
		}
		a := &ccqa.Answer{}
		ctx.question.Answers = append(ctx.question.Answers, a)
		ctx = &context{answer: a}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.search(c, ctx)
	}

	switch kind {
	case kindQuestion:
		if ctx.question == nil {
			// Stacked Question inside an Answer context: prune.
			w.consumed[n] = true
			return
		}
		mergeQuestion(ctx.question, collectQuestion(n, w.consumed))
		w.consumed[n] = true
	case kindAnswer:
		// ctx is the Answer context pushed on the way down.
		mergeAnswer(ctx.answer, collectAnswer(n, w.consumed))
		w.consumed[n] = true
	case kindPerson:
		if author, ok := collectPerson(n, w.consumed); ok {
			ctx.setAuthor(author)
		}
		w.consumed[n] = true
	}
}

// mergeQuestion copies src's present fields into dst, leaving absent
// fields untouched. Answers are managed by the walker, not merged.
func mergeQuestion(dst, src *ccqa.Question) {
	if src.NameMarkup != "" {
		dst.NameMarkup = src.NameMarkup
	}
	if src.TextMarkup != "" {
		dst.TextMarkup = src.TextMarkup
	}
	if src.DateCreated != "" {
		dst.DateCreated = src.DateCreated
	}
	if src.DateModified != "" {
		dst.DateModified = src.DateModified
	}
	if src.DatePublished != "" {
		dst.DatePublished = src.DatePublished
	}
	if src.UpvoteCount != "" {
		dst.UpvoteCount = src.UpvoteCount
	}
	if src.DownvoteCount != "" {
		dst.DownvoteCount = src.DownvoteCount
	}
	if src.CommentCount != "" {
		dst.CommentCount = src.CommentCount
	}
	if src.AnswerCount != "" {
		dst.AnswerCount = src.AnswerCount
	}
}

// mergeAnswer copies src's present fields into dst. Status is copied
// unconditionally: it is always the itemprop value the answer was found
// under, even when that value is empty.
func mergeAnswer(dst, src *ccqa.Answer) {
	if src.TextMarkup != "" {
		dst.TextMarkup = src.TextMarkup
	}
	dst.Status = src.Status
	if src.DateCreated != "" {
		dst.DateCreated = src.DateCreated
	}
	if src.DateModified != "" {
		dst.DateModified = src.DateModified
	}
	if src.DatePublished != "" {
		dst.DatePublished = src.DatePublished
	}
	if src.UpvoteCount != "" {
		dst.UpvoteCount = src.UpvoteCount
	}
	if src.DownvoteCount != "" {
		dst.DownvoteCount = src.DownvoteCount
	}
	if src.CommentCount != "" {
		dst.CommentCount = src.CommentCount
	}
}
