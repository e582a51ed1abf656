package ccqa

import "strings"

// Pair is one aligned question/answer example for closed-book
// sequence-to-sequence training.
type Pair struct {
	Source string // question text
	Target string // answer text
}

// ClosedBookFormatter flattens records into question/answer pairs.
// Each answer with extractable text yields one pair against its
// question's full text; questions without text are skipped.
type ClosedBookFormatter struct {
	// Texts converts markup fragments into the output representation.
	Texts TextExtractor

	// OnlyEnglish drops records whose predicted language is not "en".
	OnlyEnglish bool
}

// Format returns one Pair per (question, answer-with-text) combination.
// Output text is single-line: embedded line breaks are removed.
func (f *ClosedBookFormatter) Format(records []*Record) ([]Pair, error) {
	var pairs []Pair
	for _, rec := range records {
		if f.OnlyEnglish && rec.PredictedLanguage != "en" {
			continue
		}
		for _, q := range rec.Questions {
			question, err := f.questionText(q)
			if err != nil {
				return nil, err
			}
			if question == "" {
				continue
			}
			for _, a := range q.Answers {
				if a.TextMarkup == "" {
					continue
				}
				answer, err := f.Texts.Text(a.TextMarkup)
				if err != nil {
					return nil, err
				}
				answer = singleLine(answer)
				if answer == "" {
					continue
				}
				pairs = append(pairs, Pair{
					Source: singleLine(question),
					Target: answer,
				})
			}
		}
	}
	return pairs, nil
}

func (f *ClosedBookFormatter) questionText(q *Question) (string, error) {
	var text string
	if q.NameMarkup != "" {
		name, err := f.Texts.Text(q.NameMarkup)
		if err != nil {
			return "", err
		}
		if name != "" {
			text += name + " "
		}
	}
	if q.TextMarkup != "" {
		body, err := f.Texts.Text(q.TextMarkup)
		if err != nil {
			return "", err
		}
		text += body
	}
	return text, nil
}

func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", "")
	return strings.ReplaceAll(s, "\r", "")
}
