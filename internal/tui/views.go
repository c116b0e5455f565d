package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/FHQ-Lab/Buatsoalujian-ai/internal/assessment"
)

// wrap re-flows text to the given width, preserving paragraph breaks.
func wrap(s string, width int) string {
	if width < 10 {
		width = 10
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

// viewQuestions builds the Soal tab content.
func viewQuestions(a *assessment.Assessment, width int) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Ringkasan Materi"))
	b.WriteString("\n")
	b.WriteString(wrap(bodyStyle.Render(a.Summary), width))
	b.WriteString("\n\n")

	for _, q := range a.Questions {
		b.WriteString(wrap(headingStyle.Render(fmt.Sprintf("%d. ", q.Number))+bodyStyle.Render(q.Text), width))
		b.WriteString("\n")

		if q.Type == assessment.TypeMultipleChoice {
			for i, opt := range q.Options {
				line := fmt.Sprintf("   %s. %s", assessment.OptionLetter(i), opt)
				b.WriteString(wrap(bodyStyle.Render(line), width))
				b.WriteString("\n")
			}
		} else {
			b.WriteString(dimStyle.Render("   (esai)"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// viewAnswerKeys builds the Kunci Jawaban tab content.
func viewAnswerKeys(a *assessment.Assessment, width int) string {
	if len(a.AnswerKeys) == 0 {
		return dimStyle.Render("Tidak ada kunci jawaban.")
	}

	var b strings.Builder
	for _, k := range a.AnswerKeys {
		b.WriteString(headingStyle.Render(fmt.Sprintf("No. %d: ", k.QuestionNumber)))
		b.WriteString(answerStyle.Render(k.Answer))
		b.WriteString("\n")
		if k.Explanation != "" {
			b.WriteString(wrap(dimStyle.Render("Pembahasan: ")+bodyStyle.Render(k.Explanation), width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// viewGrid builds the Kisi-Kisi tab content.
func viewGrid(a *assessment.Assessment, width int) string {
	if len(a.Grid) == 0 {
		return dimStyle.Render("Tidak ada kisi-kisi.")
	}

	var b strings.Builder
	for _, g := range a.Grid {
		b.WriteString(headingStyle.Render(fmt.Sprintf("No. %d", g.QuestionNumber)))
		b.WriteString(dimStyle.Render(fmt.Sprintf("  [%s / %s]", g.CognitiveLevel, g.QuestionForm)))
		b.WriteString("\n")
		b.WriteString(wrap(dimStyle.Render("Kompetensi Dasar: ")+bodyStyle.Render(g.BasicCompetency), width))
		b.WriteString("\n")
		b.WriteString(wrap(dimStyle.Render("Materi: ")+bodyStyle.Render(g.Material), width))
		b.WriteString("\n")
		b.WriteString(wrap(dimStyle.Render("Indikator: ")+bodyStyle.Render(g.Indicator), width))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// viewRubric builds the Rubrik tab content.
func viewRubric(a *assessment.Assessment, width int) string {
	if len(a.Rubric) == 0 {
		return dimStyle.Render("Tidak ada rubrik penilaian.")
	}

	var b strings.Builder
	for _, r := range a.Rubric {
		label := "Rubrik Umum"
		if r.QuestionNumber != 0 {
			label = fmt.Sprintf("Soal No. %d", r.QuestionNumber)
		}
		b.WriteString(headingStyle.Render(label))
		b.WriteString(dimStyle.Render(fmt.Sprintf(" (Max Skor: %d)", r.MaxScore)))
		b.WriteString("\n")
		if r.Criteria != "" {
			b.WriteString(wrap(bodyStyle.Italic(true).Render(r.Criteria), width))
			b.WriteString("\n")
		}
		for _, lv := range r.Levels {
			b.WriteString(wrap(answerStyle.Render(fmt.Sprintf("  %d", lv.Score))+bodyStyle.Render(": "+lv.Description), width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
