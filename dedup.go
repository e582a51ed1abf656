package ccqa

import (
	"github.com/cespare/xxhash/v2"
)

// Deduplicator merges records that were crawled from the same URI.
// Questions are identified by their normalized full text (name plus body,
// markup stripped), answers by their normalized text. The first-seen
// version of a question or answer wins; later crawls only contribute
// entries not seen before. Page-level metadata comes from the first
// record for each URI, and output preserves first-seen order throughout.
type Deduplicator struct {
	// Texts strips markup from question and answer fragments to build
	// identity keys.
	Texts TextExtractor

	// Seen, if set, short-circuits the merge lookup for URIs that have
	// definitely not been seen before. A false positive only costs a
	// map probe, so a Bloom filter is a valid implementation.
	Seen SeenFilter
}

type mergedQuestion struct {
	question *Question
	order    []uint64
	answers  map[uint64]*Answer
}

type mergedRecord struct {
	record    *Record
	order     []uint64
	questions map[uint64]*mergedQuestion
}

// Merge collapses duplicate URIs across records and returns one record
// per URI in first-seen order.
func (d *Deduplicator) Merge(records []*Record) ([]*Record, error) {
	byURI := make(map[string]*mergedRecord)
	var uris []string

	for _, rec := range records {
		fresh := false
		if d.Seen != nil && !d.Seen.Test(rec.URI) {
			d.Seen.Add(rec.URI)
			fresh = true
		}

		var m *mergedRecord
		if !fresh {
			m = byURI[rec.URI]
		}
		if m == nil {
			header := *rec
			header.Questions = nil
			m = &mergedRecord{
				record:    &header,
				questions: make(map[uint64]*mergedQuestion),
			}
			byURI[rec.URI] = m
			uris = append(uris, rec.URI)
		}

		for _, q := range rec.Questions {
			if err := d.mergeQuestion(m, q); err != nil {
				return nil, err
			}
		}
	}

	out := make([]*Record, 0, len(uris))
	for _, uri := range uris {
		m := byURI[uri]
		rec := m.record
		rec.Questions = make([]*Question, 0, len(m.order))
		for _, qkey := range m.order {
			mq := m.questions[qkey]
			q := mq.question
			q.Answers = make([]*Answer, 0, len(mq.order))
			for _, akey := range mq.order {
				q.Answers = append(q.Answers, mq.answers[akey])
			}
			rec.Questions = append(rec.Questions, q)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (d *Deduplicator) mergeQuestion(m *mergedRecord, q *Question) error {
	text, err := d.fullQuestionText(q)
	if err != nil {
		return err
	}
	key := identityKey(text)

	mq, ok := m.questions[key]
	if !ok {
		condensed := *q
		condensed.Answers = nil
		mq = &mergedQuestion{
			question: &condensed,
			answers:  make(map[uint64]*Answer),
		}
		m.questions[key] = mq
		m.order = append(m.order, key)
	}

	for _, a := range q.Answers {
		text, err := d.Texts.Text(a.TextMarkup)
		if err != nil {
			return err
		}
		if ok && text == "" {
			// An answer with no extractable text cannot be identified
			// against an existing question's answer set.
			continue
		}
		akey := identityKey(text)
		if _, dup := mq.answers[akey]; dup {
			continue
		}
		mq.answers[akey] = a
		mq.order = append(mq.order, akey)
	}
	return nil
}

// fullQuestionText joins the extracted name and body text the same way
// the identity key has always been built: name, a space, then body.
func (d *Deduplicator) fullQuestionText(q *Question) (string, error) {
	var text string
	if q.NameMarkup != "" {
		name, err := d.Texts.Text(q.NameMarkup)
		if err != nil {
			return "", err
		}
		text += name + " "
	}
	if q.TextMarkup != "" {
		body, err := d.Texts.Text(q.TextMarkup)
		if err != nil {
			return "", err
		}
		text += body
	}
	return text, nil
}

func identityKey(text string) uint64 {
	return xxhash.Sum64String(NormalizeText(text))
}
