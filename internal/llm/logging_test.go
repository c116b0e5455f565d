package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/FHQ-Lab/Buatsoalujian-ai/internal/store"
)

// captureRepo records appended events for assertions.
type captureRepo struct {
	events []store.LLMRequestEventData
}

func (c *captureRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	c.events = append(c.events, data)
	return nil
}

func (c *captureRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (c *captureRepo) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) {
	return nil, nil
}

func (c *captureRepo) LLMUsageByPurpose(context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}

func (c *captureRepo) LLMUsageByModel(context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

func TestLogging_RecordsSuccessfulRequest(t *testing.T) {
	repo := &captureRepo{}
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"title":"Ulangan"}`), Usage: Usage{InputTokens: 100, OutputTokens: 50}},
	)
	p := WithLogging(mock, "mock", repo)

	ctx := WithPurpose(context.Background(), "assessment-gen")
	_, err := p.Generate(ctx, Request{
		System:   "Kamu adalah pembuat soal.",
		Messages: []Message{{Role: RoleUser, Content: "Buat 5 soal"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if !ev.Success {
		t.Error("expected success=true")
	}
	if ev.Purpose != "assessment-gen" {
		t.Errorf("expected purpose assessment-gen, got %q", ev.Purpose)
	}
	if ev.Provider != "mock" {
		t.Errorf("expected provider mock, got %q", ev.Provider)
	}
	if ev.RunID == "" {
		t.Error("expected non-empty run ID")
	}
	if ev.InputTokens != 100 || ev.OutputTokens != 50 {
		t.Errorf("unexpected token counts: %+v", ev)
	}
	if !strings.Contains(ev.RequestBody, "Buat 5 soal") {
		t.Errorf("request body missing user message: %q", ev.RequestBody)
	}
	if ev.ResponseBody != `{"title":"Ulangan"}` {
		t.Errorf("unexpected response body: %q", ev.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &captureRepo{}
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithLogging(mock, "mock", repo)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("expected success=false")
	}
	if ev.ErrorMessage == "" {
		t.Error("expected non-empty error message")
	}
	if ev.Purpose != "unknown" {
		t.Errorf("expected purpose unknown, got %q", ev.Purpose)
	}
}

func TestSerializeRequest_FileStub(t *testing.T) {
	req := Request{
		Messages: []Message{{Role: RoleUser, Content: "Buat soal dari PDF."}},
		Files:    []File{{Name: "materi.pdf", MIMEType: "application/pdf", Data: make([]byte, 1024)}},
	}

	body := serializeRequest(req)

	if !strings.Contains(body, "[file: materi.pdf (application/pdf, 1024 bytes)]") {
		t.Errorf("expected file stub in request body, got: %q", body)
	}
	if strings.Contains(body, "\x00") {
		t.Error("file bytes leaked into the serialized request")
	}
}
