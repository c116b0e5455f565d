package formscript

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestToLiteral_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"plain", "Apa hasil 2+2?"},
		{"double quotes", `dia berkata "benar"`},
		{"single quotes", "it's fine"},
		{"backslash", `path\to\file`},
		{"newlines", "baris satu\nbaris dua\r\n"},
		{"tab and control", "a\tb\x00c"},
		{"line separator", "sebelum\u2028sesudah"},
		{"paragraph separator", "sebelum\u2029sesudah"},
		{"mixed", "\"q\"\\\n  akhir"},
		{"unicode text", "soal ujian — déjà vu ☃"},
		{"empty", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lit := ToLiteral(tc.in)

			// The literal must be valid under the host's string syntax,
			// which accepts JSON escapes. Decoding it must restore the
			// original text exactly.
			var back string
			if err := json.Unmarshal([]byte(lit), &back); err != nil {
				t.Fatalf("literal %s does not parse: %v", lit, err)
			}
			if back != tc.in {
				t.Fatalf("round trip mismatch: got %q, want %q", back, tc.in)
			}
		})
	}
}

func TestToLiteral_NoRawLineTerminators(t *testing.T) {
	lit := ToLiteral("a\u2028b\u2029c\nd")

	for _, bad := range []string{"\u2028", "\u2029", "\n"} {
		if strings.Contains(lit, bad) {
			t.Errorf("literal contains raw %U", []rune(bad)[0])
		}
	}
	if !strings.Contains(lit, `\u2028`) || !strings.Contains(lit, `\u2029`) {
		t.Errorf("separators not escaped: %s", lit)
	}
}
