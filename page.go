package ccqa

import (
	"html"
	"strings"
)

// Page is one archived web page awaiting extraction. The JSON field names
// match the intermediate format produced by the archive minifier, where
// page markup arrives under the "mhtml" key.
type Page struct {
	HTML     string `json:"mhtml"`
	Language string `json:"language"`
	URI      string `json:"uri"`

	// ArchiveID names the archive batch the page belongs to. It is not
	// part of the intermediate format; callers set it from the input
	// file name before assembly.
	ArchiveID string `json:"-"`
}

// QuestionExtractor extracts all schema.org Question entities from raw
// page markup. Pages that fail to parse contribute no questions rather
// than an error; extraction is never fatal for a page.
type QuestionExtractor interface {
	Extract(html string) ([]*Question, error)
}

// LanguageClassifier predicts the language of a text as a short language
// code (e.g. "en"). The classifier is treated as a black box; a failure
// is fatal for the whole run since records cannot be language-tagged
// without it.
type LanguageClassifier interface {
	Classify(text string) (string, error)
}

// TextExtractor converts an HTML fragment into text for downstream
// training formats. Implementations decide the target representation
// (plain text, markdown, raw markup). Unparseable fragments yield an
// empty string, not an error.
type TextExtractor interface {
	Text(markup string) (string, error)
}

// Assembler builds one Record from one Page. A (nil, nil) return means
// the page contributed no questions and produces no record.
type Assembler interface {
	Assemble(page *Page) (*Record, error)
}

// RecordWriter appends records to an output stream.
type RecordWriter interface {
	WriteRecord(rec *Record) error
}

// SeenFilter is a probabilistic membership filter over keys. Test may
// return false positives but never false negatives.
type SeenFilter interface {
	Add(key string)
	Test(key string) bool
}

// Ensure RawText implements TextExtractor at compile time.
var _ TextExtractor = (*RawText)(nil)

// RawText is a TextExtractor that keeps the markup intact, only
// unescaping HTML entities and stripping line breaks.
type RawText struct{}

var newlineReplacer = strings.NewReplacer("\n", "", "\r", "")

// Text implements TextExtractor.
func (RawText) Text(markup string) (string, error) {
	return html.UnescapeString(newlineReplacer.Replace(markup)), nil
}
