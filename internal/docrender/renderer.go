package docrender

import (
	"bytes"
	"context"
	"fmt"

	docx "github.com/fumiama/go-docx"

	"github.com/FHQ-Lab/Buatsoalujian-ai/internal/assessment"
)

// Text sizes in half-points.
const (
	sizeTitle   = "40"
	sizeHeading = "28"
)

const (
	colorAnswer = "1D4ED8"
	colorDim    = "64748B"
)

const tableWidth = 8120

// Render converts an assessment into DOCX bytes: title and summary, the
// question sheet, the answer key, the kisi-kisi table, and the rubric, each
// section on its own page. The assessment is read-only input; every call
// produces a fresh, independent artifact with identical logical content.
// Rendering fails as a unit — on error no partial document is returned.
func Render(ctx context.Context, a *assessment.Assessment) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("generate document: %w", err)
	}

	w := docx.New().WithDefaultTheme().WithA4Page()

	writeHeader(w, a)
	writeQuestions(w, a)
	writeAnswerKeys(w, a)
	writeGrid(w, a)
	writeRubric(w, a)

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("generate document: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeader(w *docx.Docx, a *assessment.Assessment) {
	title := w.AddParagraph()
	title.Justification("center")
	title.AddText(a.Title).Size(sizeTitle).Bold()

	w.AddParagraph().AddText("Ringkasan Materi:").Bold()
	w.AddParagraph().AddText(a.Summary)
	w.AddParagraph()

	heading(w, "SOAL UJIAN")
}

func writeQuestions(w *docx.Docx, a *assessment.Assessment) {
	for _, q := range a.Questions {
		p := w.AddParagraph()
		p.AddText(fmt.Sprintf("%d. ", q.Number)).Bold()
		p.AddText(q.Text)

		if q.Type == assessment.TypeMultipleChoice && len(q.Options) > 0 {
			for i, opt := range q.Options {
				o := w.AddParagraph()
				o.AddText(fmt.Sprintf("    %s. %s", assessment.OptionLetter(i), opt))
			}
			w.AddParagraph()
		} else {
			// Fixed blank allowance for a written answer, independent of
			// the expected answer length.
			for range 4 {
				w.AddParagraph()
			}
		}
	}
}

func writeAnswerKeys(w *docx.Docx, a *assessment.Assessment) {
	pageBreak(w)
	heading(w, "KUNCI JAWABAN & PEMBAHASAN")

	for _, k := range a.AnswerKeys {
		p := w.AddParagraph()
		p.AddText(fmt.Sprintf("No. %d: ", k.QuestionNumber)).Bold()
		p.AddText(k.Answer).Bold().Color(colorAnswer)

		e := w.AddParagraph()
		e.AddText("Pembahasan: ").Italic()
		e.AddText(k.Explanation)
		w.AddParagraph()
	}
}

func writeGrid(w *docx.Docx, a *assessment.Assessment) {
	pageBreak(w)
	heading(w, "KISI-KISI SOAL")

	headers := []string{"No", "Kompetensi Dasar", "Materi", "Indikator Soal", "Level", "Bentuk"}

	tbl := w.AddTable(len(a.Grid)+1, len(headers), tableWidth, nil)
	for i, h := range headers {
		tbl.TableRows[0].TableCells[i].AddParagraph().AddText(h).Bold()
	}

	// Grid rows render verbatim, in given order; no renumbering.
	for i, item := range a.Grid {
		cells := tbl.TableRows[i+1].TableCells
		cells[0].AddParagraph().AddText(fmt.Sprintf("%d", item.QuestionNumber))
		cells[1].AddParagraph().AddText(item.BasicCompetency)
		cells[2].AddParagraph().AddText(item.Material)
		cells[3].AddParagraph().AddText(item.Indicator)
		cells[4].AddParagraph().AddText(item.CognitiveLevel)
		cells[5].AddParagraph().AddText(item.QuestionForm)
	}
}

func writeRubric(w *docx.Docx, a *assessment.Assessment) {
	pageBreak(w)
	heading(w, "RUBRIK PENILAIAN")

	for _, item := range a.Rubric {
		label := "Rubrik Umum"
		if item.QuestionNumber != 0 {
			label = fmt.Sprintf("Soal No. %d", item.QuestionNumber)
		}

		p := w.AddParagraph()
		p.AddText(label).Bold()
		p.AddText(fmt.Sprintf(" (Max Skor: %d)", item.MaxScore)).Color(colorDim)

		w.AddParagraph().AddText(item.Criteria).Italic()

		tbl := w.AddTable(len(item.Levels)+1, 2, tableWidth, nil)
		tbl.TableRows[0].TableCells[0].AddParagraph().AddText("Skor").Bold()
		tbl.TableRows[0].TableCells[1].AddParagraph().AddText("Deskripsi").Bold()

		// Levels keep their given order; they are not re-sorted by score.
		for i, level := range item.Levels {
			cells := tbl.TableRows[i+1].TableCells
			cells[0].AddParagraph().AddText(fmt.Sprintf("%d", level.Score))
			cells[1].AddParagraph().AddText(level.Description)
		}
		w.AddParagraph()
	}
}

func heading(w *docx.Docx, text string) {
	h := w.AddParagraph()
	h.Justification("center")
	h.AddText(text).Size(sizeHeading).Bold()
	w.AddParagraph()
}

func pageBreak(w *docx.Docx) {
	w.AddParagraph().AddPageBreaks()
}
