package docrender

import (
	"regexp"
	"strings"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]`)

// Filename derives the document file name from the assessment title:
// lowercased, every character outside [a-z0-9] replaced with "_", suffixed
// "_soal.docx". "Ulangan Harian: Fotosintesis!" becomes
// "ulangan_harian__fotosintesis__soal.docx".
func Filename(title string) string {
	slug := nonSlug.ReplaceAllString(strings.ToLower(title), "_")
	return slug + "_soal.docx"
}
