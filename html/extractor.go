package html

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/fwojciec/ccqa"
)

// Ensure Extractor implements ccqa.QuestionExtractor at compile time.
var _ ccqa.QuestionExtractor = (*Extractor)(nil)

// Extractor extracts Question entities from raw page markup.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses src and returns every Question on the page that
// carries content, in document order. Markup that yields no parse tree
// contributes nothing; it is never an error for the page.
func (e *Extractor) Extract(src string) ([]*ccqa.Question, error) {
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		// x/net/html accepts arbitrary input; a failure means the page
		// has no tree to walk and contributes no questions.
		return nil, nil
	}

	w := NewWalker()
	var questions []*ccqa.Question
	for _, qnode := range w.Discover(root) {
		q := w.Build(qnode)
		if q.HasContent() {
			questions = append(questions, q)
		}
	}
	return questions, nil
}
