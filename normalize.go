package ccqa

import (
	"regexp"
	"strings"
)

// asciiPunct matches Python's string.punctuation, which the original
// dataset normalization used; keeping the same set keeps identity keys
// stable across re-processing.
const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var articleRE = regexp.MustCompile(`\b(a|an|the)\b`)

// NormalizeText reduces text to the canonical form used as an identity
// key when merging duplicate questions and answers: lowercased, ASCII
// punctuation removed, English articles dropped, whitespace collapsed,
// line breaks and tildes stripped.
func NormalizeText(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 128 && strings.ContainsRune(asciiPunct, r) {
			continue
		}
		b.WriteRune(r)
	}

	s = articleRE.ReplaceAllString(b.String(), " ")
	s = strings.Join(strings.Fields(s), " ")
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ReplaceAll(s, "~", "")
	return strings.TrimSpace(s)
}
