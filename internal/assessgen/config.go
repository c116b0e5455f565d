package assessgen

import "fmt"

// GradeLevel is the Indonesian school stage the assessment targets.
type GradeLevel string

const (
	GradeSD     GradeLevel = "SD"
	GradeSMP    GradeLevel = "SMP"
	GradeSMA    GradeLevel = "SMA"
	GradeKuliah GradeLevel = "Kuliah"
)

// QuestionMix selects the shape of the generated question set.
type QuestionMix string

const (
	MixMultipleChoice QuestionMix = "pilihan_ganda"
	MixEssay          QuestionMix = "esai"
	MixBlended        QuestionMix = "campuran"
)

// Difficulty selects the cognitive-level distribution (taksonomi Bloom,
// C1-C6) the questions must follow.
type Difficulty string

const (
	DifficultyEasy    Difficulty = "mudah"
	DifficultyMedium  Difficulty = "sedang"
	DifficultyHard    Difficulty = "sulit"
	DifficultyHOTS    Difficulty = "HOTS"
	DifficultyMixC1C3 Difficulty = "campuran_c1_c3"
	DifficultyMixC3C6 Difficulty = "campuran_c3_c6"
	DifficultyMixC1C6 Difficulty = "campuran_c1_c6"
)

// Config controls assessment generation.
type Config struct {
	// GradeLevel is the school stage: SD, SMP, SMA, or Kuliah.
	// It also decides the option count for multiple choice questions.
	GradeLevel GradeLevel

	// Subject is the mata pelajaran, e.g. "Biologi".
	Subject string

	// Topic narrows the subject to the material being tested.
	Topic string

	// QuestionCount is the total number of questions to generate.
	QuestionCount int

	// QuestionType selects multiple choice, essay, or a blend.
	QuestionType QuestionMix

	// Difficulty selects the cognitive-level distribution.
	Difficulty Difficulty

	// MaxTokens is the token budget for the LLM response. Assessments
	// are large structured documents, so the default is generous.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		GradeLevel:    GradeSMA,
		QuestionCount: 10,
		QuestionType:  MixMultipleChoice,
		Difficulty:    DifficultyMedium,
		MaxTokens:     8192,
		Temperature:   0.4,
	}
}

// OptionCount returns how many choices each multiple choice question must
// carry: 4 (A-D) for SD and SMP, 5 (A-E) for SMA and Kuliah.
func (c Config) OptionCount() int {
	if c.GradeLevel == GradeSD || c.GradeLevel == GradeSMP {
		return 4
	}
	return 5
}

// Validate checks the configuration for values the generator cannot work with.
func (c Config) Validate() error {
	switch c.GradeLevel {
	case GradeSD, GradeSMP, GradeSMA, GradeKuliah:
	default:
		return fmt.Errorf("unknown grade level: %q", c.GradeLevel)
	}

	switch c.QuestionType {
	case MixMultipleChoice, MixEssay, MixBlended:
	default:
		return fmt.Errorf("unknown question type: %q", c.QuestionType)
	}

	switch c.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyHOTS,
		DifficultyMixC1C3, DifficultyMixC3C6, DifficultyMixC1C6:
	default:
		return fmt.Errorf("unknown difficulty: %q", c.Difficulty)
	}

	if c.Subject == "" {
		return fmt.Errorf("subject is required")
	}
	if c.Topic == "" {
		return fmt.Errorf("topic is required")
	}
	if c.QuestionCount < 1 {
		return fmt.Errorf("question count must be at least 1, got %d", c.QuestionCount)
	}

	return nil
}
