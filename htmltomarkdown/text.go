// Package htmltomarkdown converts record markup fragments to Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"github.com/fwojciec/ccqa"
)

// Ensure TextExtractor implements ccqa.TextExtractor at compile time.
var _ ccqa.TextExtractor = (*TextExtractor)(nil)

// TextExtractor renders HTML fragments as Markdown, a richer training
// text representation than plain text that still drops the tag noise.
type TextExtractor struct {
	conv *converter.Converter
}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &TextExtractor{conv: conv}
}

// Text implements ccqa.TextExtractor.
func (e *TextExtractor) Text(markup string) (string, error) {
	if strings.TrimSpace(markup) == "" {
		return "", nil
	}
	result, err := e.conv.ConvertString(markup)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}
