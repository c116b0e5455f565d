package formscript

import (
	"fmt"
	"strings"

	"github.com/FHQ-Lab/Buatsoalujian-ai/internal/assessment"
)

// Filename is the fixed name for the emitted script artifact. The file is
// plain text; it only becomes meaningful when pasted into the Apps Script
// editor attached to a Google Form.
const Filename = "google_forms_script.txt"

// pointsPerQuestion is the fixed point value attached to every
// auto-gradable item.
const pointsPerQuestion = 10

const scriptHeader = `/**
 * @OnlyCurrentDoc
 *
 * SCRIPT GENERATOR SOAL GOOGLE FORM (Buat Soal Ujian AI)
 *
 * INSTRUKSI PENGGUNAAN:
 * 1. Buka Google Form baru (https://form.new)
 * 2. Klik titik tiga (More) di pojok kanan atas -> Script Editor (Editor Skrip).
 * 3. Hapus semua kode yang ada (misal: function myFunction() {...}).
 * 4. Copy & Paste seluruh kode ini ke dalam editor.
 * 5. Simpan proyek (File -> Save) dengan nama "Generator Soal".
 * 6. Pilih fungsi 'createBuatSoalQuiz' di dropdown toolbar atas.
 * 7. Klik tombol 'Run' (Jalankan).
 * 8. Berikan izin akses (Review Permissions -> Allow) jika diminta.
 * 9. Cek Google Form Anda, soal akan muncul otomatis.
 */

function createBuatSoalQuiz() {
  try {
    var form = FormApp.getActiveForm();

    // --- 1. KONFIGURASI FORM ---
`

const scriptFooter = `
    Logger.log('Proses selesai. Cek Google Form Anda.');
  } catch (e) {
    Logger.log('Terjadi Error: ' + e.toString());
    FormApp.getUi().alert('Error: ' + e.toString());
  }
}
`

// Generate emits the Apps Script source that provisions the assessment as
// a Google Form quiz: one item per question in presentation order, choices
// with correctness flags for fixed-choice questions, feedback text where an
// answer key exists. Pure and deterministic — the same assessment always
// yields byte-identical output. Executing the script is append-only on the
// form side; generating it has no side effects here.
func Generate(a *assessment.Assessment) string {
	var b strings.Builder

	b.WriteString(scriptHeader)
	fmt.Fprintf(&b, "    form.setTitle(%s);\n", ToLiteral(a.Title))
	fmt.Fprintf(&b, "    form.setDescription(%s);\n", ToLiteral(a.Summary))
	b.WriteString("    form.setIsQuiz(true);\n")
	b.WriteString("\n    // --- 2. INPUT SOAL ---\n")

	for _, q := range a.Questions {
		answer, explanation := "", ""
		if key := a.KeyFor(q.Number); key != nil {
			answer = strings.TrimSpace(key.Answer)
			explanation = key.Explanation
		}

		fmt.Fprintf(&b, "\n    // --- Soal No. %d ---\n", q.Number)
		if q.Type == assessment.TypeMultipleChoice && len(q.Options) > 0 {
			writeChoiceItem(&b, q, answer, explanation)
		} else {
			writeParagraphItem(&b, q, answer, explanation)
		}
	}

	b.WriteString(scriptFooter)
	return b.String()
}

// writeChoiceItem emits a multiple-choice item. Exactly one choice carries
// the correct flag when the answer resolves; an unresolvable answer flags
// nothing rather than guessing.
func writeChoiceItem(b *strings.Builder, q assessment.Question, answer, explanation string) {
	itemVar := fmt.Sprintf("item_%d", q.Number)
	title := fmt.Sprintf("%d. %s", q.Number, q.Text)

	fmt.Fprintf(b, "    var %s = form.addMultipleChoiceItem();\n", itemVar)
	fmt.Fprintf(b, "    %s.setTitle(%s);\n", itemVar, ToLiteral(title))
	fmt.Fprintf(b, "    %s.setPoints(%d);\n", itemVar, pointsPerQuestion)

	correct := assessment.ResolveAnswer(q, answer)

	fmt.Fprintf(b, "    %s.setChoices([\n", itemVar)
	for i, opt := range q.Options {
		fmt.Fprintf(b, "      %s.createChoice(%s, %t),\n", itemVar, ToLiteral(opt), i == correct)
	}
	b.WriteString("    ]);\n")

	if explanation != "" {
		// The source data has one explanation per question, so the same
		// text serves both the correct and incorrect branches.
		fmt.Fprintf(b, "    var feedback_%d = FormApp.createFeedback()\n", q.Number)
		fmt.Fprintf(b, "        .setText(%s)\n", ToLiteral(explanation))
		b.WriteString("        .build();\n")
		fmt.Fprintf(b, "    %s.setFeedbackForCorrect(feedback_%d);\n", itemVar, q.Number)
		fmt.Fprintf(b, "    %s.setFeedbackForIncorrect(feedback_%d);\n", itemVar, q.Number)
	}
}

// writeParagraphItem emits a long-answer item. Free-response questions
// cannot be auto-graded, so answer and explanation are combined into one
// general feedback text shown unconditionally.
func writeParagraphItem(b *strings.Builder, q assessment.Question, answer, explanation string) {
	itemVar := fmt.Sprintf("item_%d", q.Number)
	title := fmt.Sprintf("%d. %s", q.Number, q.Text)

	fmt.Fprintf(b, "    var %s = form.addParagraphTextItem();\n", itemVar)
	fmt.Fprintf(b, "    %s.setTitle(%s);\n", itemVar, ToLiteral(title))

	if answer == "" && explanation == "" {
		return
	}

	combined := "Kunci Jawaban: " + answer + "\n\nPembahasan: " + explanation
	fmt.Fprintf(b, "    var feedback_%d = FormApp.createFeedback()\n", q.Number)
	fmt.Fprintf(b, "        .setText(%s)\n", ToLiteral(combined))
	b.WriteString("        .build();\n")
	fmt.Fprintf(b, "    %s.setGeneralFeedback(feedback_%d);\n", itemVar, q.Number)
}
