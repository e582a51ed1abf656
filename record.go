package ccqa

// Record is one extracted page: every Question found on a single archived
// page, plus page-level metadata. Records are created once per page and
// never mutated after serialization. Field names follow the dataset's
// established JSON schema, so the Go names map to snake/mixed-case keys.
type Record struct {
	// Language is the language code declared by the source archive.
	Language string `json:"Language"`

	// PredictedLanguage is the majority-vote language across the page's
	// questions, as predicted by the configured classifier.
	PredictedLanguage string `json:"Fasttext_language"`

	// URI is the address the page was archived from.
	URI string `json:"URI"`

	// UUID uniquely identifies this record. Assigned at assembly time.
	UUID string `json:"UUID"`

	// ArchiveID names the source archive the page came from.
	ArchiveID string `json:"WARC_ID"`

	Questions []*Question `json:"Questions"`
}

// Validate returns an error if the record is missing required fields.
func (r *Record) Validate() error {
	if r.URI == "" {
		return Errorf(EINVALID, "record URI required")
	}
	if r.UUID == "" {
		return Errorf(EINVALID, "record UUID required")
	}
	return nil
}

// Question is a single schema.org Question entity with its nested Answers.
// All fields except Answers are sparse: an absent field is omitted from the
// serialized form, never emitted as null or empty.
type Question struct {
	NameMarkup    string `json:"name_markup,omitempty"`
	TextMarkup    string `json:"text_markup,omitempty"`
	DateCreated   string `json:"date_created,omitempty"`
	DateModified  string `json:"date_modified,omitempty"`
	DatePublished string `json:"date_published,omitempty"`

	// Vote and comment counts are raw strings exactly as found in the
	// markup. Coercion to numbers is the consumer's concern.
	UpvoteCount   string `json:"upvote_count,omitempty"`
	DownvoteCount string `json:"downvote_count,omitempty"`
	CommentCount  string `json:"comment_count,omitempty"`
	AnswerCount   string `json:"answer_count,omitempty"`

	// Author is the name of the Person entity enclosed by this question's
	// markup, when one was found.
	Author string `json:"author,omitempty"`

	Answers []*Answer `json:"Answers"`
}

// HasContent reports whether the question carries any usable content:
// name markup, text markup, or at least one answer with text markup.
// Questions without content are discarded during extraction.
func (q *Question) HasContent() bool {
	if q.NameMarkup != "" || q.TextMarkup != "" {
		return true
	}
	for _, a := range q.Answers {
		if a.TextMarkup != "" {
			return true
		}
	}
	return false
}

// Answer is a single schema.org Answer entity.
type Answer struct {
	TextMarkup string `json:"text_markup,omitempty"`

	// Status is the raw itemprop value the answer was found under,
	// typically "acceptedAnswer" or "suggestedAnswer". Unknown values
	// pass through unvalidated.
	Status string `json:"status"`

	DateCreated   string `json:"date_created,omitempty"`
	DateModified  string `json:"date_modified,omitempty"`
	DatePublished string `json:"date_published,omitempty"`

	UpvoteCount   string `json:"upvote_count,omitempty"`
	DownvoteCount string `json:"downvote_count,omitempty"`
	CommentCount  string `json:"comment_count,omitempty"`

	Author string `json:"author,omitempty"`
}

// AnswerStatus values with downstream significance.
const (
	StatusAccepted  = "acceptedAnswer"
	StatusSuggested = "suggestedAnswer"
)
