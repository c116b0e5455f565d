package assessgen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/FHQ-Lab/Buatsoalujian-ai/internal/llm"
)

const validAssessmentJSON = `{
	"title": "Ulangan Harian Fotosintesis",
	"summary": "Fotosintesis adalah proses pembentukan glukosa pada tumbuhan hijau.",
	"questions": [
		{"number": 1, "text": "Di organel manakah fotosintesis berlangsung?", "type": "pilihan_ganda",
		 "options": ["Mitokondria", "Kloroplas", "Ribosom", "Nukleus"]},
		{"number": 2, "text": "Jelaskan peran cahaya matahari dalam fotosintesis.", "type": "esai"}
	],
	"answerKeys": [
		{"questionNumber": 1, "answer": "B", "explanation": "Kloroplas mengandung klorofil."},
		{"questionNumber": 2, "answer": "Sumber energi reaksi terang", "explanation": "Cahaya memecah air."}
	],
	"grid": [
		{"questionNumber": 1, "basicCompetency": "3.5", "material": "Fotosintesis",
		 "indicator": "Menyebutkan organel", "cognitiveLevel": "C1", "questionForm": "PG"}
	],
	"rubric": [
		{"questionNumber": 2, "criteria": "Kelengkapan jawaban", "maxScore": 10,
		 "levels": [{"score": 10, "description": "Lengkap"}, {"score": 5, "description": "Sebagian"}]}
	]
}`

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Subject = "Biologi"
	cfg.Topic = "Fotosintesis"
	cfg.QuestionCount = 2
	cfg.QuestionType = MixBlended
	return cfg
}

func TestGenerate_ValidResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(validAssessmentJSON))
	g := New(mock, testConfig())

	a, err := g.Generate(context.Background(), Source{Text: "Materi fotosintesis..."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.Title != "Ulangan Harian Fotosintesis" {
		t.Errorf("unexpected title: %q", a.Title)
	}
	if len(a.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(a.Questions))
	}
	if key := a.KeyFor(1); key == nil || key.Answer != "B" {
		t.Errorf("unexpected key for question 1: %+v", key)
	}
}

func TestGenerate_SendsSchemaAndPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(validAssessmentJSON))
	g := New(mock, testConfig())

	_, err := g.Generate(context.Background(), Source{Text: "Materi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "assessment" {
		t.Fatalf("expected assessment schema, got %+v", req.Schema)
	}
	if !strings.Contains(req.System, "Ahli Kurikulum") {
		t.Errorf("unexpected system prompt: %q", req.System)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Fatalf("expected single user message, got %+v", req.Messages)
	}
	if !strings.Contains(req.Messages[0].Content, "Topik: Fotosintesis") {
		t.Errorf("user message missing topic: %q", req.Messages[0].Content)
	}
}

func TestGenerate_PDFAttachedAsFile(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(validAssessmentJSON))
	g := New(mock, testConfig())

	pdf := []byte("%PDF-1.4 dummy")
	_, err := g.Generate(context.Background(), Source{PDF: pdf, PDFName: "bab-2.pdf"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if len(req.Files) != 1 {
		t.Fatalf("expected 1 file attachment, got %d", len(req.Files))
	}
	f := req.Files[0]
	if f.Name != "bab-2.pdf" || f.MIMEType != "application/pdf" {
		t.Errorf("unexpected file attachment: %+v", f)
	}
	if string(f.Data) != string(pdf) {
		t.Error("PDF bytes not passed through")
	}
}

func TestGenerate_DefaultPDFName(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(validAssessmentJSON))
	g := New(mock, testConfig())

	_, err := g.Generate(context.Background(), Source{PDF: []byte("%PDF")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.Calls[0].Files[0].Name != "materi.pdf" {
		t.Errorf("expected default name materi.pdf, got %q", mock.Calls[0].Files[0].Name)
	}
}

func TestGenerate_NoSource(t *testing.T) {
	mock := llm.NewMockProvider()
	g := New(mock, testConfig())

	_, err := g.Generate(context.Background(), Source{})
	if err == nil {
		t.Fatal("expected error for empty source")
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no LLM call, got %d", mock.CallCount())
	}
}

func TestGenerate_InvalidConfig(t *testing.T) {
	mock := llm.NewMockProvider()
	cfg := testConfig()
	cfg.QuestionCount = 0
	g := New(mock, cfg)

	_, err := g.Generate(context.Background(), Source{Text: "Materi"})
	if err == nil {
		t.Fatal("expected error for invalid config")
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	g := New(mock, testConfig())

	_, err := g.Generate(context.Background(), Source{Text: "Materi"})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected wrapped ErrProviderUnavailable, got: %v", err)
	}
}

func TestGenerate_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(`{not json}`))
	g := New(mock, testConfig())

	_, err := g.Generate(context.Background(), Source{Text: "Materi"})
	if err == nil {
		t.Fatal("expected error for malformed response")
	}
}

func TestGenerate_SemanticallyInvalidResponse(t *testing.T) {
	// Multiple choice question with no options.
	bad := `{
		"title": "Ujian",
		"summary": "Ringkasan",
		"questions": [{"number": 1, "text": "Soal?", "type": "pilihan_ganda"}],
		"answerKeys": [], "grid": [], "rubric": []
	}`
	mock := llm.NewMockProvider(llm.MockJSON(bad))
	g := New(mock, testConfig())

	_, err := g.Generate(context.Background(), Source{Text: "Materi"})
	if err == nil {
		t.Fatal("expected validation error")
	}
}
