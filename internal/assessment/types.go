package assessment

// QuestionType discriminates fixed-choice from free-response questions.
// Values follow the upstream generation schema.
type QuestionType string

const (
	// TypeMultipleChoice is a fixed-choice question with lettered options.
	TypeMultipleChoice QuestionType = "pilihan_ganda"

	// TypeEssay is a free-response question with no enumerated options.
	TypeEssay QuestionType = "esai"
)

// Question is a single exam question.
type Question struct {
	// Number is the question's position label, unique within the assessment.
	Number int `json:"number"`

	// Text is the question prompt.
	Text string `json:"text"`

	// Type is pilihan_ganda or esai.
	Type QuestionType `json:"type"`

	// Options holds the option texts for pilihan_ganda questions, in
	// presentation order. Option texts carry no letter prefix; the letter
	// is derived from position (see OptionLetter). Empty for esai.
	Options []string `json:"options,omitempty"`
}

// AnswerKey holds the recorded answer and explanation for one question.
// Answer is free-form: for fixed-choice questions it is conventionally a
// single letter, but may be option text, differently cased, or padded with
// whitespace. Resolution against the options is the resolver's job.
type AnswerKey struct {
	QuestionNumber int    `json:"questionNumber"`
	Answer         string `json:"answer"`
	Explanation    string `json:"explanation"`
}

// GridItem is one row of the curriculum-mapping grid (kisi-kisi).
// CognitiveLevel and QuestionForm are free-text labels, not closed sets —
// upstream is free to emit arbitrary values.
type GridItem struct {
	QuestionNumber  int    `json:"questionNumber"`
	BasicCompetency string `json:"basicCompetency"`
	Material        string `json:"material"`
	Indicator       string `json:"indicator"`
	CognitiveLevel  string `json:"cognitiveLevel"`
	QuestionForm    string `json:"questionForm"`
}

// RubricLevel maps one score value to its qualitative description.
type RubricLevel struct {
	Score       int    `json:"score"`
	Description string `json:"description"`
}

// RubricItem is a scoring rubric for one question, or for the whole
// assessment when QuestionNumber is 0. Levels keep the order they were
// produced in; renderers must not re-sort them.
type RubricItem struct {
	QuestionNumber int           `json:"questionNumber"`
	Criteria       string        `json:"criteria"`
	MaxScore       int           `json:"maxScore"`
	Levels         []RubricLevel `json:"levels"`
}

// Assessment is the root value produced by the generation step. It is
// immutable once built: every renderer treats it as read-only input and
// produces a fresh artifact.
type Assessment struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`

	// Questions in presentation order.
	Questions []Question `json:"questions"`

	// AnswerKeys are matched to questions by QuestionNumber, not by
	// position. Use KeyFor for lookup.
	AnswerKeys []AnswerKey `json:"answerKeys"`

	Grid   []GridItem   `json:"grid"`
	Rubric []RubricItem `json:"rubric"`
}

// KeyFor returns the answer key for the given question number, or nil if
// none exists. Dangling references are tolerated: a missing key means the
// question simply has no recorded answer.
func (a *Assessment) KeyFor(number int) *AnswerKey {
	for i := range a.AnswerKeys {
		if a.AnswerKeys[i].QuestionNumber == number {
			return &a.AnswerKeys[i]
		}
	}
	return nil
}
