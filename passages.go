package ccqa

import (
	"math/rand"
	"strconv"
	"strings"
)

// Passage is one retrieval context.
type Passage struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// PassageExample is one DPR-style retrieval training example: a question
// with positive contexts (good answers) and hard negative contexts
// (plausible but lower-quality answers from the same question).
type PassageExample struct {
	Question         string    `json:"question"`
	Answers          []string  `json:"answers"`
	PositiveCtxs     []Passage `json:"positive_ctxs"`
	HardNegativeCtxs []Passage `json:"hard_negative_ctxs"`
}

// noInfoSeed makes the fallback answer selection deterministic across
// runs so regenerated datasets stay comparable.
const noInfoSeed = 13

// PassageFormatter flattens records into passage retrieval examples.
// The positive/negative split strategy depends on which signals the
// question's answers carry: acceptance status, suggestion status, and
// upvote counts, in that order of preference.
type PassageFormatter struct {
	Texts       TextExtractor
	OnlyEnglish bool
}

// Format returns one example per question that yields at least one
// non-empty positive context.
func (f *PassageFormatter) Format(records []*Record) ([]*PassageExample, error) {
	var examples []*PassageExample
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

			var ex *PassageExample
			accepted, suggested, voted := markupOptions(q.Answers)
			switch {
			case accepted && suggested && voted:
				ex, err = f.fullInfo(q.Answers, question)
			case accepted && suggested:
				ex, err = f.acceptedSuggested(q.Answers, question)
			case voted:
				ex, err = f.voteInfo(q.Answers, question)
			default:
				ex, err = f.noInfo(q.Answers, question)
			}
			if err != nil {
				return nil, err
			}
			if ex != nil {
				examples = append(examples, ex)
			}
		}
	}
	return examples, nil
}

// markupOptions reports which split signals are usable: only answers
// that also carry text markup count.
func markupOptions(answers []*Answer) (accepted, suggested, voted bool) {
	for _, a := range answers {
		if a.TextMarkup == "" {
			continue
		}
		if a.Status == StatusAccepted {
			accepted = true
		}
		if a.Status == StatusSuggested {
			suggested = true
		}
		if a.UpvoteCount != "" {
			voted = true
		}
	}
	return accepted, suggested, voted
}

// fullInfo splits on acceptance first, then promotes suggested answers
// with at least two upvotes to positives.
func (f *PassageFormatter) fullInfo(answers []*Answer, question string) (*PassageExample, error) {
	var positives, negatives []string
	for _, a := range answers {
		if a.TextMarkup == "" {
			continue
		}
		text, err := f.Texts.Text(a.TextMarkup)
		if err != nil {
			return nil, err
		}
		switch {
		case a.Status == StatusAccepted:
			positives = append(positives, text)
		case a.Status == StatusSuggested && a.UpvoteCount != "":
			if CleanVotes(a.UpvoteCount) >= 2 {
				positives = append(positives, text)
			} else {
				negatives = append(negatives, text)
			}
		}
	}
	return buildExample(question, positives, negatives), nil
}

// acceptedSuggested splits purely on answer status.
func (f *PassageFormatter) acceptedSuggested(answers []*Answer, question string) (*PassageExample, error) {
	var positives, negatives []string
	for _, a := range answers {
		if a.TextMarkup == "" {
			continue
		}
		text, err := f.Texts.Text(a.TextMarkup)
		if err != nil {
			return nil, err
		}
		switch a.Status {
		case StatusAccepted:
			positives = append(positives, text)
		case StatusSuggested:
			negatives = append(negatives, text)
		}
	}
	return buildExample(question, positives, negatives), nil
}

// voteInfo takes the top-voted answer as positive, then splits the rest
// at more than one upvote.
func (f *PassageFormatter) voteInfo(answers []*Answer, question string) (*PassageExample, error) {
	bestVotes, bestIdx := -999, -1
	var top string
	for i, a := range answers {
		if a.UpvoteCount == "" || a.TextMarkup == "" {
			continue
		}
		if votes := CleanVotes(a.UpvoteCount); votes > bestVotes {
			text, err := f.Texts.Text(a.TextMarkup)
			if err != nil {
				return nil, err
			}
			top, bestVotes, bestIdx = text, votes, i
		}
	}
	if bestIdx < 0 {
		for i, a := range answers {
			if a.TextMarkup == "" {
				continue
			}
			text, err := f.Texts.Text(a.TextMarkup)
			if err != nil {
				return nil, err
			}
			top, bestIdx = text, i
			break
		}
	}
	if bestIdx < 0 {
		return nil, nil
	}

	positives, negatives := []string{top}, []string(nil)
	for i, a := range answers {
		if i == bestIdx || a.UpvoteCount == "" || a.TextMarkup == "" {
			continue
		}
		text, err := f.Texts.Text(a.TextMarkup)
		if err != nil {
			return nil, err
		}
		if CleanVotes(a.UpvoteCount) > 1 {
			positives = append(positives, text)
		} else {
			negatives = append(negatives, text)
		}
	}
	return buildExample(question, positives, negatives), nil
}

// noInfo picks a single pseudo-random answer as the only positive.
func (f *PassageFormatter) noInfo(answers []*Answer, question string) (*PassageExample, error) {
	shuffled := make([]*Answer, len(answers))
	copy(shuffled, answers)
	rand.New(rand.NewSource(noInfoSeed)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	for _, a := range shuffled {
		if a.TextMarkup == "" {
			continue
		}
		text, err := f.Texts.Text(a.TextMarkup)
		if err != nil {
			return nil, err
		}
		if text == "" {
			continue
		}
		return &PassageExample{
			Question:         question,
			Answers:          []string{},
			PositiveCtxs:     []Passage{{Text: text}},
			HardNegativeCtxs: []Passage{},
		}, nil
	}
	return nil, nil
}

// buildExample drops empty contexts and requires at least one positive.
func buildExample(question string, positives, negatives []string) *PassageExample {
	ex := &PassageExample{
		Question:         question,
		Answers:          []string{},
		PositiveCtxs:     []Passage{},
		HardNegativeCtxs: []Passage{},
	}
	for _, p := range positives {
		if p != "" {
			ex.PositiveCtxs = append(ex.PositiveCtxs, Passage{Text: p})
		}
	}
	for _, n := range negatives {
		if n != "" {
			ex.HardNegativeCtxs = append(ex.HardNegativeCtxs, Passage{Text: n})
		}
	}
	if len(ex.PositiveCtxs) == 0 {
		return nil
	}
	return ex
}

func (f *PassageFormatter) questionText(q *Question) (string, error) {
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

// CleanVotes coerces a raw vote string to an int, tolerating embedded
// whitespace, tildes, and stray non-digit characters. Unsalvageable
// values count as zero.
func CleanVotes(vote string) int {
	if n, err := strconv.Atoi(vote); err == nil {
		return n
	}
	cleaned := strings.ReplaceAll(strings.ReplaceAll(vote, " ", ""), "~", "")
	if n, err := strconv.Atoi(cleaned); err == nil {
		return n
	}
	var digits strings.Builder
	for i, r := range cleaned {
		if r >= '0' && r <= '9' || (r == '-' && i == 0) {
			digits.WriteRune(r)
		}
	}
	if n, err := strconv.Atoi(digits.String()); err == nil {
		return n
	}
	return 0
}
