package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/pathfinder/internal/llm"
)

const sampleResume = `DevOps-adjacent sysadmin. Daily Linux and Bash,
Docker for packaging, Git for everything. Some Python scripting.`

func TestRunManualSkillsCuratedRole(t *testing.T) {
	// One call for nice-to-have, one for the roadmap.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"nice_to_have":["helm"]}`)},
		llm.MockResponse{Content: json.RawMessage(`{"roadmap":[{"phase":"Phase 1: Foundation","skills":[{"skill":"kubernetes","course":"Learn Kubernetes - Udemy","reason":"Core gap","est_hours":12}]}]}`)},
	)
	r := NewRunner(mock, nil)

	res := r.Run(context.Background(), Input{
		SessionID:  "s-1",
		TargetRole: "devops-engineer",
		Skills:     []string{"Linux", "Docker", "Git", "Bash", "Python"},
	})

	if res.SkillSource != "manual" {
		t.Errorf("SkillSource = %q", res.SkillSource)
	}
	if res.Skills[0] != "linux" {
		t.Errorf("skills not normalized: %v", res.Skills)
	}
	if !res.Gap.Curated || len(res.Gap.Missing) == 0 {
		t.Errorf("Gap = %+v", res.Gap)
	}
	if res.Readiness == nil {
		t.Fatal("Readiness nil for curated role")
	}
	if res.Roadmap.Source != "llm" || res.Roadmap.TotalHours != 12 {
		t.Errorf("Roadmap = %+v", res.Roadmap)
	}
}

func TestRunResumeExtractionFallsBackToPatterns(t *testing.T) {
	// All three LLM calls fail; the pipeline still produces a result.
	fail := llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}}
	mock := llm.NewMockProvider(fail, fail, fail)
	r := NewRunner(mock, nil)

	res := r.Run(context.Background(), Input{
		SessionID:  "s-2",
		TargetRole: "devops-engineer",
		ResumeText: sampleResume,
	})

	if res.SkillSource != "pattern" {
		t.Errorf("SkillSource = %q", res.SkillSource)
	}
	found := map[string]bool{}
	for _, s := range res.Skills {
		found[s] = true
	}
	if !found["linux"] || !found["docker"] {
		t.Errorf("pattern extraction missed basics: %v", res.Skills)
	}
	if res.Roadmap.Source != "fallback" || len(res.Roadmap.Phases) == 0 {
		t.Errorf("Roadmap = %+v", res.Roadmap)
	}
}

func TestRunUnknownRoleWithoutProvider(t *testing.T) {
	r := NewRunner(nil, nil)
	res := r.Run(context.Background(), Input{
		SessionID:  "s-3",
		TargetRole: "quantum-wrangler",
		Skills:     []string{"python"},
	})

	if res.Readiness != nil {
		t.Error("Readiness should be nil for an unknown role")
	}
	if len(res.Gap.Missing) != 0 {
		t.Errorf("Gap = %+v, want empty without provider", res.Gap)
	}
	if len(res.Roadmap.Phases) != 0 {
		t.Errorf("Roadmap = %+v, want empty", res.Roadmap)
	}
}

func TestMetricsRecordStages(t *testing.T) {
	r := NewRunner(nil, nil)
	res := r.Run(context.Background(), Input{
		SessionID:  "s-4",
		TargetRole: "data-scientist",
		Skills:     []string{"python", "sql"},
	})

	stages := res.Metrics.Stages()
	names := map[string]bool{}
	for _, s := range stages {
		names[s.Stage] = true
		if s.Duration < 0 {
			t.Errorf("negative duration for %s", s.Stage)
		}
	}
	for _, want := range []string{"gap-analysis", "readiness", "roadmap"} {
		if !names[want] {
			t.Errorf("missing stage %q in %v", want, stages)
		}
	}
	// Manual skills skip extraction.
	if names["skill-extract"] {
		t.Error("skill-extract recorded for manual input")
	}
	if res.Metrics.Total() <= 0 {
		t.Error("Total() not positive")
	}
}

func TestMetricsTrackConcurrency(t *testing.T) {
	m := NewMetrics()
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			stop := m.Track("stage")
			time.Sleep(time.Millisecond)
			stop()
			done <- struct{}{}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	if got := len(m.Stages()); got != 8 {
		t.Errorf("recorded %d stages, want 8", got)
	}
}
