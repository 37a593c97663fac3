package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := SessionData{
		SessionID:        "11111111-2222-3333-4444-555555555555",
		Source:           "resume",
		ExtractionMethod: "llm",
		ResumeText:       "Python engineer",
		Skills:           []string{"python", "sql"},
	}
	if err := repo.AppendSession(ctx, data); err != nil {
		t.Fatalf("append session: %v", err)
	}

	got, err := repo.GetSession(ctx, data.SessionID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got == nil {
		t.Fatal("session not found")
	}
	if got.Source != "resume" || got.ExtractionMethod != "llm" {
		t.Errorf("session = %+v", got.SessionData)
	}
	if len(got.Skills) != 2 || got.Skills[0] != "python" {
		t.Errorf("skills = %v", got.Skills)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	s := openTestStore(t)
	got, err := s.EventRepo().GetSession(context.Background(), "missing")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil", got)
	}
}

func TestLatestSessionOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, id := range []string{"first", "second", "third"} {
		err := repo.AppendSession(ctx, SessionData{
			SessionID: id,
			Source:    "manual",
			Skills:    []string{"python"},
		})
		if err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	got, err := repo.LatestSession(ctx)
	if err != nil {
		t.Fatalf("latest session: %v", err)
	}
	if got == nil || got.SessionID != "third" {
		t.Errorf("latest = %+v, want third", got)
	}

	sessions, err := repo.QuerySessions(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query sessions: %v", err)
	}
	if len(sessions) != 2 || sessions[0].SessionID != "third" {
		t.Errorf("sessions = %+v", sessions)
	}
}

func TestLLMEventRoundTripAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m1", Purpose: "skill-extract", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true, RequestBody: "req", ResponseBody: "resp"},
		{Provider: "anthropic", Model: "m1", Purpose: "skill-extract", InputTokens: 80, OutputTokens: 40, LatencyMs: 100, Success: true},
		{Provider: "anthropic", Model: "m2", Purpose: "roadmap", InputTokens: 300, OutputTokens: 200, LatencyMs: 900, Success: false, ErrorMessage: "boom"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	listed, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("got %d events", len(listed))
	}
	// Newest first.
	if listed[0].Purpose != "roadmap" {
		t.Errorf("first listed = %+v", listed[0])
	}

	got, err := repo.GetLLMEvent(ctx, listed[2].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.RequestBody != "req" || got.ResponseBody != "resp" {
		t.Errorf("event = %+v", got)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %+v", byPurpose)
	}
	for _, u := range byPurpose {
		if u.Purpose == "skill-extract" {
			if u.Calls != 2 || u.InputTokens != 180 || u.OutputTokens != 90 || u.AvgLatencyMs != 150 {
				t.Errorf("skill-extract usage = %+v", u)
			}
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Errorf("models = %+v", byModel)
	}
}

func TestAssessmentRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := AssessmentData{
		SessionID:       "sess-1",
		TargetRole:      "devops-engineer",
		OverallScore:    0.73,
		ReadinessLevel:  "Workable with targeted upskilling",
		MissingCount:    4,
		NiceToHaveCount: 2,
		RoadmapHours:    62,
		RoadmapSource:   "llm",
		DurationMs:      1234,
	}
	if err := repo.AppendAssessment(ctx, data); err != nil {
		t.Fatalf("append assessment: %v", err)
	}
	if err := repo.AppendAssessment(ctx, AssessmentData{SessionID: "sess-2", TargetRole: "ml-engineer"}); err != nil {
		t.Fatalf("append assessment: %v", err)
	}

	got, err := repo.QueryAssessments(ctx, "sess-1", QueryOpts{})
	if err != nil {
		t.Fatalf("query assessments: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d assessments", len(got))
	}
	if got[0].OverallScore != 0.73 || got[0].RoadmapHours != 62 {
		t.Errorf("assessment = %+v", got[0])
	}

	all, err := repo.QueryAssessments(ctx, "", QueryOpts{})
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("all assessments = %d", len(all))
	}
}
