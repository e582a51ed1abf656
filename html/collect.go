package html

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/fwojciec/ccqa"
)

// CollectQuestion extracts a Question's fields from the subtree rooted
// at n. Text-bearing fields are sanitized and serialized as inner HTML;
// metadata fields pass through uncoerced. Answers are not collected
// here; the tree walker attaches them.
func CollectQuestion(n *html.Node) *ccqa.Question {
	return collectQuestion(n, nil)
}

func collectQuestion(n *html.Node, consumed map[*html.Node]bool) *ccqa.Question {
	q := &ccqa.Question{}
	if m := findItemprop(n, "name", consumed); m != nil {
		sanitize(m, consumed)
		q.NameMarkup = innerHTML(m, consumed)
	}
	if m := findItemprop(n, "text", consumed); m != nil {
		sanitize(m, consumed)
		q.TextMarkup = innerHTML(m, consumed)
	}
	q.DateCreated = dateValue(findItemprop(n, "dateCreated", consumed))
	q.DateModified = dateValue(findItemprop(n, "dateModified", consumed))
	q.DatePublished = dateValue(findItemprop(n, "datePublished", consumed))
	q.UpvoteCount = metaValue(findItemprop(n, "upvoteCount", consumed))
	q.DownvoteCount = metaValue(findItemprop(n, "downvoteCount", consumed))
	q.CommentCount = metaValue(findItemprop(n, "commentCount", consumed))
	q.AnswerCount = metaValue(findItemprop(n, "answerCount", consumed))
	return q
}

// CollectAnswer extracts an Answer's fields from the subtree rooted at
// n. The status is n's own itemprop value: the Answer root node is the
// one carrying the accepted/suggested marker, so it is read directly
// rather than searched for.
func CollectAnswer(n *html.Node) *ccqa.Answer {
	return collectAnswer(n, nil)
}

func collectAnswer(n *html.Node, consumed map[*html.Node]bool) *ccqa.Answer {
	a := &ccqa.Answer{}
	if m := findItemprop(n, "text", consumed); m != nil {
		sanitize(m, consumed)
		a.TextMarkup = innerHTML(m, consumed)
	}
	a.Status, _ = attrVal(n, "itemprop")
	a.DateCreated = dateValue(findItemprop(n, "dateCreated", consumed))
	a.DateModified = dateValue(findItemprop(n, "dateModified", consumed))
	a.DatePublished = dateValue(findItemprop(n, "datePublished", consumed))
	a.UpvoteCount = metaValue(findItemprop(n, "upvoteCount", consumed))
	a.DownvoteCount = metaValue(findItemprop(n, "downvoteCount", consumed))
	a.CommentCount = metaValue(findItemprop(n, "commentCount", consumed))
	return a
}

// CollectPerson extracts the author name from a Person subtree. The
// name is searched under itemprop "name" first, then "author" — some
// sites use the latter for the same role. ok is false when neither is
// present, in which case no Person attaches to the enclosing context.
func CollectPerson(n *html.Node) (author string, ok bool) {
	return collectPerson(n, nil)
}

func collectPerson(n *html.Node, consumed map[*html.Node]bool) (string, bool) {
	m := findItemprop(n, "name", consumed)
	if m == nil {
		m = findItemprop(n, "author", consumed)
	}
	if m == nil {
		return "", false
	}
	if v := metaValue(m); v != "" {
		return v, true
	}
	return "", false
}

// dateValue reads a timestamp from a located node: the datetime
// attribute when present (how <time> and timestamp <meta> markup carry
// ISO strings), else the general metadata rule.
func dateValue(n *html.Node) string {
	if n == nil {
		return ""
	}
	if v, ok := attrVal(n, "datetime"); ok {
		return v
	}
	return metaValue(n)
}

// metaValue reads a metadata value from a located node: the content
// attribute on <meta> elements, else the node's direct text.
func metaValue(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.ElementNode && n.Data == "meta" {
		if v, ok := attrVal(n, "content"); ok {
			return v
		}
	}
	return directText(n)
}

// directText concatenates n's immediate text children.
func directText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(b.String())
}

// voidTags never carry children and render without a closing tag.
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// innerHTML serializes n's children as an HTML fragment, stripping n's
// own enclosing tag: the caller already knows the semantic role of the
// node, only the inner markup matters. Consumed subtrees are omitted,
// matching what serialization would produce had they been detached.
func innerHTML(n *html.Node, consumed map[*html.Node]bool) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderNode(&b, c, consumed)
	}
	return b.String()
}

func renderNode(b *strings.Builder, n *html.Node, consumed map[*html.Node]bool) {
	if consumed[n] {
		return
	}
	switch n.Type {
	case html.TextNode:
		b.WriteString(html.EscapeString(n.Data))
	case html.ElementNode:
		b.WriteByte('<')
		b.WriteString(n.Data)
		for _, a := range n.Attr {
			b.WriteByte(' ')
			b.WriteString(a.Key)
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(a.Val))
			b.WriteByte('"')
		}
		if voidTags[n.Data] {
			b.WriteString("/>")
			return
		}
		b.WriteByte('>')
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			renderNode(b, c, consumed)
		}
		b.WriteString("</")
		b.WriteString(n.Data)
		b.WriteByte('>')
	}
}
