package assessment

import "strings"

// NoMatch is returned by ResolveAnswer when no option could be identified.
const NoMatch = -1

// ResolveAnswer maps a recorded answer string onto the index of the correct
// option for a fixed-choice question. Returns NoMatch for esai questions,
// questions without options, and answers that match nothing.
//
// Resolution order, first match wins:
//  1. A bare letter within the valid range (case-insensitive, trimmed) maps
//     positionally: "A" → 0, "b" → 1. This is authoritative even when an
//     option's text happens to contain that letter.
//  2. Otherwise the first option whose text contains the trimmed answer as
//     a case-insensitive substring wins.
//
// Upstream is instructed to return a letter but not guaranteed to; the
// substring fallback tolerates answers written out as option text. There is
// deliberately no fuzzy matching — ambiguity resolves by iteration order.
func ResolveAnswer(q Question, answer string) int {
	if q.Type != TypeMultipleChoice || len(q.Options) == 0 {
		return NoMatch
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return NoMatch
	}

	if idx, ok := letterIndex(answer, len(q.Options)); ok {
		return idx
	}

	needle := strings.ToLower(answer)
	for i, opt := range q.Options {
		if strings.Contains(strings.ToLower(opt), needle) {
			return i
		}
	}

	return NoMatch
}

// letterIndex interprets s as a single option letter. The valid range is
// bounded by the actual option count, so "E" does not resolve on a
// four-option question.
func letterIndex(s string, optionCount int) (int, bool) {
	if len(s) != 1 {
		return 0, false
	}
	c := s[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'Z' {
		return 0, false
	}
	idx := int(c - 'A')
	if idx >= optionCount {
		return 0, false
	}
	return idx, true
}
