// Package whatlanggo provides trigram-based language identification.
package whatlanggo

import (
	"strings"

	"github.com/RadhiFadlillah/whatlanggo"

	"github.com/fwojciec/ccqa"
)

// Ensure Classifier implements ccqa.LanguageClassifier at compile time.
var _ ccqa.LanguageClassifier = (*Classifier)(nil)

// Classifier predicts a text's language as an ISO 639-1 code, the same
// label space the dataset's records have always carried.
type Classifier struct{}

// NewClassifier creates a new Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify implements ccqa.LanguageClassifier.
func (c *Classifier) Classify(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ccqa.Errorf(ccqa.EINVALID, "cannot classify empty text")
	}
	info := whatlanggo.Detect(text)
	code := whatlanggo.LangToStringShort(info.Lang)
	if code == "" {
		return "", ccqa.Errorf(ccqa.EINTERNAL, "language detection failed")
	}
	return code, nil
}
