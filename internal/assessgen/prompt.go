package assessgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `Bertindaklah sebagai Ahli Kurikulum dan Pembuat Soal Pendidikan Indonesia Profesional.
Tugas: Buatlah perangkat asesmen lengkap berdasarkan materi yang diberikan.

Instruksi Detail Output:
1. **Ringkasan Materi**: Buat ringkasan padat dari konten (maks 2 paragraf).
2. **Soal Ujian**:
   - Bahasa Indonesia baku.
   - PASTIKAN DISTRIBUSI LEVEL KOGNITIF (C1-C6) SESUAI INSTRUKSI.
   - Untuk Pilihan Ganda: HANYA tulis teks opsinya di dalam array JSON (contoh: ["Jawaban 1", "Jawaban 2"]). JANGAN tulis prefix "A.", "B." secara manual di dalam teks.
3. **Kunci Jawaban**: Sertakan jawaban yang benar (Huruf untuk PG, Inti jawaban untuk Esai) dan pembahasan detail.
4. **Kisi-Kisi**: Format standar (KD, Materi, Indikator, Level Kognitif). Pastikan kolom "cognitiveLevel" sesuai dengan soal yang dibuat (misal C1, C4, C6).
5. **Rubrik**: Pedoman penskoran yang jelas.

Pastikan output adalah JSON valid sesuai skema yang diberikan.`

// difficultyInstruction maps a Difficulty to its cognitive-level directive.
func difficultyInstruction(d Difficulty) string {
	switch d {
	case DifficultyEasy:
		return "Semua soal harus Level C1 (Mengingat) atau C2 (Memahami)."
	case DifficultyMedium:
		return "Semua soal harus Level C3 (Menerapkan/Aplikasi)."
	case DifficultyHard:
		return "Semua soal harus Level C4 (Menganalisis) atau C5 (Mengevaluasi)."
	case DifficultyHOTS:
		return "Semua soal harus Level C4, C5, atau C6 (Analisis/Evaluasi/Kreasi)."
	case DifficultyMixC1C3:
		return "Komposisi Soal: 40% C1, 30% C2, 30% C3."
	case DifficultyMixC3C6:
		return "Komposisi Soal: 30% C3, 30% C4, 20% C5, 20% C6."
	case DifficultyMixC1C6:
		return "Komposisi Soal: Distribusi merata (seimbang) untuk setiap level dari C1 sampai C6."
	default:
		return "Level C3 (Sedang)."
	}
}

// structureInstruction builds the question-shape directive for the prompt.
func structureInstruction(cfg Config) string {
	optionFormat := "5 opsi (A-E)"
	if cfg.OptionCount() == 4 {
		optionFormat = "4 opsi (A-D)"
	}

	var b strings.Builder
	switch cfg.QuestionType {
	case MixMultipleChoice:
		fmt.Fprintf(&b, "- Buat total %d soal berbentuk PILIHAN GANDA.\n", cfg.QuestionCount)
		fmt.Fprintf(&b, "- OPSI JAWABAN: Wajib menggunakan %s (%d pilihan) secara KONSISTEN untuk setiap soal.\n", optionFormat, cfg.OptionCount())
		b.WriteString("- DILARANG mencampur jumlah opsi (misal sebagian A-D, sebagian A-E). Semua harus sama.")
	case MixEssay:
		fmt.Fprintf(&b, "- Buat total %d soal berbentuk ESAI/URAIAN.\n", cfg.QuestionCount)
		b.WriteString("- Soal harus menilai kemampuan analisis, evaluasi, dan penalaran (HOTS).\n")
		b.WriteString("- JANGAN buat soal hafalan sederhana.")
	case MixBlended:
		fmt.Fprintf(&b, "- Buat total %d soal.\n", cfg.QuestionCount)
		b.WriteString("- KOMPOSISI:\n")
		b.WriteString("  1. Wajib ada minimal 3 soal ESAI (untuk menguji analisis/penalaran), kecuali jika total soal < 3.\n")
		b.WriteString("  2. Sisanya adalah soal PILIHAN GANDA.\n")
		fmt.Fprintf(&b, "- Untuk soal Pilihan Ganda, wajib gunakan format %s secara KONSISTEN.", optionFormat)
	}
	return b.String()
}

// buildUserMessage constructs the user message from the config and source.
func buildUserMessage(cfg Config, src Source) string {
	var b strings.Builder

	if src.PDF != nil {
		b.WriteString("Buatlah perangkat asesmen berdasarkan dokumen PDF yang dilampirkan.\n\n")
	} else {
		b.WriteString("Buatlah perangkat asesmen berdasarkan teks berikut.\n\n")
	}

	b.WriteString("Konteks Pengguna:\n")
	fmt.Fprintf(&b, "- Jenjang: %s\n", cfg.GradeLevel)
	fmt.Fprintf(&b, "- Mata Pelajaran: %s\n", cfg.Subject)
	fmt.Fprintf(&b, "- Topik: %s\n", cfg.Topic)
	fmt.Fprintf(&b, "- Tingkat Kesulitan & Distribusi Kognitif: %s\n", difficultyInstruction(cfg.Difficulty))

	b.WriteString("\nInstruksi Pembuatan Soal:\n")
	b.WriteString(structureInstruction(cfg))
	b.WriteString("\n")

	if src.PDF == nil && src.Text != "" {
		b.WriteString("\nKONTEN MATERI:\n")
		b.WriteString(src.Text)
	}

	return b.String()
}
