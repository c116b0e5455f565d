package assessment

import (
	"encoding/json"
	"fmt"
)

// Decode parses and validates an Assessment from raw JSON. This is the
// boundary through which every externally supplied payload (LLM reply or
// file on disk) enters the core; past this point the renderers treat the
// value as structurally sound.
func Decode(raw []byte) (*Assessment, error) {
	var a Assessment
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("parse assessment: %w", err)
	}
	if err := Validate(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Validate checks the structural invariants the renderers rely on.
//
// It enforces only what would make rendering meaningless: a title, at least
// one question, positive unique question numbers, and non-empty options on
// every fixed-choice question. Dangling questionNumber references in answer
// keys, grid rows, or rubric items are tolerated — the resolver reports
// NoMatch for those instead of faulting.
func Validate(a *Assessment) error {
	if a.Title == "" {
		return fmt.Errorf("assessment has no title")
	}
	if len(a.Questions) == 0 {
		return fmt.Errorf("assessment has no questions")
	}

	seen := make(map[int]bool, len(a.Questions))
	for i, q := range a.Questions {
		if q.Number <= 0 {
			return fmt.Errorf("question %d: number must be positive, got %d", i+1, q.Number)
		}
		if seen[q.Number] {
			return fmt.Errorf("duplicate question number %d", q.Number)
		}
		seen[q.Number] = true

		if q.Text == "" {
			return fmt.Errorf("question %d: empty text", q.Number)
		}

		switch q.Type {
		case TypeMultipleChoice:
			if len(q.Options) == 0 {
				return fmt.Errorf("question %d: pilihan_ganda without options", q.Number)
			}
		case TypeEssay:
			// Options on an essay question are ignored, not an error.
		default:
			return fmt.Errorf("question %d: unknown type %q", q.Number, q.Type)
		}
	}

	for _, r := range a.Rubric {
		if r.MaxScore < 0 {
			return fmt.Errorf("rubric for question %d: negative max score %d", r.QuestionNumber, r.MaxScore)
		}
	}

	return nil
}
