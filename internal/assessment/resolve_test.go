package assessment

import "testing"

func mcQuestion(options ...string) Question {
	return Question{
		Number:  1,
		Text:    "Apa hasil 2+2?",
		Type:    TypeMultipleChoice,
		Options: options,
	}
}

func TestResolveAnswer_Letter(t *testing.T) {
	q := mcQuestion("3", "4", "5", "6")

	tests := []struct {
		answer string
		want   int
	}{
		{"A", 0},
		{"B", 1},
		{"d", 3},
		{" C ", 2},
		{"b", 1},
	}

	for _, tc := range tests {
		got := ResolveAnswer(q, tc.answer)
		if got != tc.want {
			t.Errorf("ResolveAnswer(%q) = %d, want %d", tc.answer, got, tc.want)
		}
	}
}

func TestResolveAnswer_LetterOutOfRange(t *testing.T) {
	// "E" is a valid letter shape but the question only has two options,
	// so it is not positional; it falls through to substring matching.
	q := mcQuestion("satu", "dua")
	if got := ResolveAnswer(q, "E"); got != NoMatch {
		t.Errorf("ResolveAnswer(E) = %d, want NoMatch", got)
	}

	// After the fall-through it behaves like any other text answer, so an
	// option containing the letter still matches.
	q = mcQuestion("benar", "salah")
	if got := ResolveAnswer(q, "E"); got != 0 {
		t.Errorf("ResolveAnswer(E) = %d, want 0 via substring", got)
	}
}

func TestResolveAnswer_LetterBeatsSubstring(t *testing.T) {
	// Option 0 contains a literal "B", but a bare letter answer is
	// positional and must win.
	q := mcQuestion("Vitamin B", "Vitamin C", "Vitamin D")

	if got := ResolveAnswer(q, "B"); got != 1 {
		t.Errorf("ResolveAnswer(B) = %d, want 1", got)
	}
}

func TestResolveAnswer_SubstringFallback(t *testing.T) {
	q := mcQuestion("Fotosintesis", "Respirasi sel", "Transpirasi")

	tests := []struct {
		answer string
		want   int
	}{
		{"respirasi sel", 1},
		{"RESPIRASI SEL", 1},
		{"  Fotosintesis  ", 0},
		{"spirasi", 1}, // partial text: first containing option wins
		{"osmosis", NoMatch},
	}

	for _, tc := range tests {
		got := ResolveAnswer(q, tc.answer)
		if got != tc.want {
			t.Errorf("ResolveAnswer(%q) = %d, want %d", tc.answer, got, tc.want)
		}
	}
}

func TestResolveAnswer_NoMatchCases(t *testing.T) {
	essay := Question{Number: 2, Text: "Jelaskan!", Type: TypeEssay}
	if got := ResolveAnswer(essay, "A"); got != NoMatch {
		t.Errorf("essay question resolved to %d, want NoMatch", got)
	}

	noOptions := Question{Number: 3, Text: "?", Type: TypeMultipleChoice}
	if got := ResolveAnswer(noOptions, "A"); got != NoMatch {
		t.Errorf("optionless question resolved to %d, want NoMatch", got)
	}

	q := mcQuestion("a", "b")
	if got := ResolveAnswer(q, ""); got != NoMatch {
		t.Errorf("empty answer resolved to %d, want NoMatch", got)
	}
	if got := ResolveAnswer(q, "   "); got != NoMatch {
		t.Errorf("blank answer resolved to %d, want NoMatch", got)
	}
}

func TestOptionLetter(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "A"},
		{1, "B"},
		{4, "E"},
		{25, "Z"},
		{26, "?"},
		{-1, "?"},
	}

	for _, tc := range tests {
		if got := OptionLetter(tc.index); got != tc.want {
			t.Errorf("OptionLetter(%d) = %q, want %q", tc.index, got, tc.want)
		}
	}
}
