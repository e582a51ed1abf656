package ccqa

import "html"

// VoteText picks the text used to classify a question's language:
// the question text markup, else the name markup, else the first answer
// with text markup. HTML entities are unescaped before classification.
// The second return is false when the question has no voteable text,
// in which case the question is excluded from the page-level vote.
func VoteText(q *Question) (string, bool) {
	if q.TextMarkup != "" {
		return html.UnescapeString(q.TextMarkup), true
	}
	if q.NameMarkup != "" {
		return html.UnescapeString(q.NameMarkup), true
	}
	for _, a := range q.Answers {
		if a.TextMarkup != "" {
			return html.UnescapeString(a.TextMarkup), true
		}
	}
	return "", false
}

// MajorityLanguage returns the most frequent label. Ties resolve to the
// label that was observed first. An empty label list yields "-".
func MajorityLanguage(labels []string) string {
	freq := make(map[string]int, len(labels))
	order := make([]string, 0, len(labels))
	for _, label := range labels {
		if _, ok := freq[label]; !ok {
			order = append(order, label)
		}
		freq[label]++
	}

	best, count := "-", 0
	for _, label := range order {
		if freq[label] > count {
			best, count = label, freq[label]
		}
	}
	return best
}
