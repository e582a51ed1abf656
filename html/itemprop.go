package html

import (
	"strings"

	"golang.org/x/net/html"
)

// FindItemprop returns the first node in document order (pre-order,
// n included) whose itemprop attribute contains prop, or nil.
//
// Matching is substring containment, not token equality: "Answer"
// matches a node marked "acceptedAnswer". Real-world markup is matched
// this way historically and token matching would change results on
// malformed input, so the looser rule is kept deliberately.
func FindItemprop(n *html.Node, prop string) *html.Node {
	return findItemprop(n, prop, nil)
}

// findItemprop is FindItemprop with a consumed set: subtrees rooted at
// a consumed node are invisible to the search.
func findItemprop(n *html.Node, prop string, consumed map[*html.Node]bool) *html.Node {
	if consumed[n] {
		return nil
	}
	if v, ok := attrVal(n, "itemprop"); ok && strings.Contains(v, prop) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if m := findItemprop(c, prop, consumed); m != nil {
			return m
		}
	}
	return nil
}
