package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndQueryEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			RunID:        "run-1",
			Provider:     "gemini",
			Model:        "gemini-2.5-flash",
			Purpose:      "assessment-gen",
			InputTokens:  100 + i,
			OutputTokens: 200 + i,
			LatencyMs:    1500,
			Success:      true,
			RequestBody:  "{}",
			ResponseBody: "{}",
		})
		if err != nil {
			t.Fatalf("AppendLLMRequest: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	// Newest first.
	if events[0].InputTokens != 102 {
		t.Errorf("expected newest event first (input_tokens 102), got %d", events[0].InputTokens)
	}
	if events[0].Provider != "gemini" || events[0].Purpose != "assessment-gen" {
		t.Errorf("unexpected event fields: %+v", events[0])
	}
	if !events[0].Success {
		t.Error("expected success=true")
	}
	if events[0].RunID != "run-1" {
		t.Errorf("expected run_id run-1, got %q", events[0].RunID)
	}
}

func TestQueryEventsLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			RunID: "run-1", Provider: "mock", Model: "mock", Purpose: "test", Success: true,
		}); err != nil {
			t.Fatalf("AppendLLMRequest: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("expected 2 events, got %d", len(events))
	}
}

func TestQueryEventsPurposeFilter(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	purposes := []string{"assessment-gen", "assessment-gen", "other"}
	for _, p := range purposes {
		if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			RunID: "run-1", Provider: "mock", Model: "mock", Purpose: p, Success: true,
		}); err != nil {
			t.Fatalf("AppendLLMRequest: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "assessment-gen"})
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 filtered events, got %d", len(events))
	}
	for _, ev := range events {
		if ev.Purpose != "assessment-gen" {
			t.Errorf("unexpected purpose %q", ev.Purpose)
		}
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		RunID:        "run-9",
		Provider:     "anthropic",
		Model:        "claude-haiku-4-5-20251001",
		Purpose:      "assessment-gen",
		Success:      false,
		ErrorMessage: "rate limited",
	}); err != nil {
		t.Fatalf("AppendLLMRequest: %v", err)
	}

	ev, err := repo.GetLLMEvent(ctx, 1)
	if err != nil {
		t.Fatalf("GetLLMEvent: %v", err)
	}
	if ev == nil {
		t.Fatal("expected event, got nil")
	}
	if ev.Success {
		t.Error("expected success=false")
	}
	if ev.ErrorMessage != "rate limited" {
		t.Errorf("unexpected error message %q", ev.ErrorMessage)
	}

	missing, err := repo.GetLLMEvent(ctx, 999)
	if err != nil {
		t.Fatalf("GetLLMEvent(999): %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}
}

func TestUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{RunID: "r", Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "assessment-gen",
			InputTokens: 1000, OutputTokens: 2000, LatencyMs: 1000, Success: true},
		{RunID: "r", Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "assessment-gen",
			InputTokens: 3000, OutputTokens: 4000, LatencyMs: 3000, Success: true},
		{RunID: "r", Provider: "openai", Model: "gpt-4o-mini", Purpose: "other",
			InputTokens: 10, OutputTokens: 20, LatencyMs: 500, Success: true},
	}
	for _, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("AppendLLMRequest: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("LLMUsageByPurpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	gen := byPurpose[0] // ordered by purpose, "assessment-gen" < "other"
	if gen.Purpose != "assessment-gen" || gen.Calls != 2 {
		t.Errorf("unexpected purpose row: %+v", gen)
	}
	if gen.InputTokens != 4000 || gen.OutputTokens != 6000 {
		t.Errorf("unexpected token sums: %+v", gen)
	}
	if gen.AvgLatencyMs != 2000 {
		t.Errorf("expected avg latency 2000, got %d", gen.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("LLMUsageByModel: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 models, got %d", len(byModel))
	}
	flash := byModel[0] // "gemini-2.5-flash" < "gpt-4o-mini"
	if flash.Model != "gemini-2.5-flash" || flash.Calls != 2 {
		t.Errorf("unexpected model row: %+v", flash)
	}
}
