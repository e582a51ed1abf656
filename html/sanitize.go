// Package html implements microdata extraction over parsed HTML trees.
// It walks a page's DOM, reconstructs the nesting of schema.org Question,
// Answer and Person entities even through malformed or stacked markup,
// sanitizes free-text content to a tag whitelist, and produces the
// domain's Question records.
package html

import (
	"golang.org/x/net/html"
)

// textTags is the whitelist of text-bearing block and inline elements
// (per the MDN text content and inline text semantics lists) that survive
// sanitization. Anything else is unwrapped, not deleted: its children are
// spliced into its place so the text survives.
var textTags = map[string]bool{
	"blockquote": true, "dd": true, "div": true, "dl": true, "dt": true,
	"figcaption": true, "hr": true, "li": true, "ol": true, "p": true,
	"pre": true, "ul": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"a": true, "abbr": true, "b": true, "bdi": true, "bdo": true,
	"br": true, "cite": true, "code": true, "data": true, "dfn": true,
	"em": true, "i": true, "kbd": true, "mark": true, "q": true,
	"rb": true, "rp": true, "rt": true, "rtc": true, "ruby": true,
	"s": true, "samp": true, "small": true, "span": true, "strong": true,
	"sub": true, "sup": true, "time": true, "u": true, "var": true,
	"wbr": true,
	"caption": true, "col": true, "colgroup": true, "table": true,
	"tbody": true, "td": true, "tfoot": true, "th": true, "thead": true,
	"tr": true,
}

// Sanitize reduces the subtree rooted at n to the text tag whitelist,
// mutating it in place and returning n. Elements outside the whitelist
// that carry no itemprop attribute are unwrapped bottom-up: their
// children take their place as siblings and the element is detached.
// Text nodes always survive; comments and doctypes are dropped. The
// traversal root has no parent and is never detached, so Sanitize is
// idempotent and safe to call on any node.
func Sanitize(n *html.Node) *html.Node {
	sanitize(n, nil)
	return n
}

// sanitize is the recursive pass behind Sanitize. Subtrees rooted at a
// consumed node are left untouched: they are invisible to serialization
// and unwrapping one would splice its children back into view.
func sanitize(n *html.Node, consumed map[*html.Node]bool) {
	if consumed[n] {
		return
	}
	// Bottom-up: children first, so splicing a child's children in does
	// not interfere with subtrees already processed. Spliced-in nodes
	// are already sanitized and are skipped by the saved next pointer.
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		sanitize(c, consumed)
		c = next
	}

	switch n.Type {
	case html.CommentNode, html.DoctypeNode:
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	case html.ElementNode:
		if textTags[n.Data] {
			return
		}
		if _, ok := attrVal(n, "itemprop"); ok {
			return
		}
		unwrap(n)
	}
}

// unwrap splices n out of the tree: each child is inserted in order
// where n stood, then n is detached. A node without a parent cannot be
// spliced and is left in place.
func unwrap(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	ref := n.NextSibling
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
		parent.InsertBefore(c, ref)
	}
	parent.RemoveChild(n)
}

// attrVal returns the value of the named attribute on an element node.
func attrVal(n *html.Node, key string) (string, bool) {
	if n.Type != html.ElementNode {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
