// Package goquery provides markup-to-text conversion for downstream
// dataset formats.
package goquery

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/ccqa"
)

// Ensure TextExtractor implements ccqa.TextExtractor at compile time.
var _ ccqa.TextExtractor = (*TextExtractor)(nil)

// TextExtractor strips markup from an HTML fragment and returns its
// plain text with whitespace collapsed and entities unescaped.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Text implements ccqa.TextExtractor. Fragments that yield no parse
// tree return an empty string, not an error.
func (e *TextExtractor) Text(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", nil
	}
	text := strings.Join(strings.Fields(doc.Text()), " ")
	return html.UnescapeString(text), nil
}
