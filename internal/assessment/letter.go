package assessment

// OptionLetter returns the display letter for a zero-based option index:
// 0 → "A", 1 → "B", and so on. Every output surface (document, script,
// terminal view) derives letters through this one function so they cannot
// drift apart.
func OptionLetter(index int) string {
	if index < 0 || index >= 26 {
		return "?"
	}
	return string(rune('A' + index))
}
