package roadmap

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/pathfinder/internal/llm"
)

func TestPrioritySkillsNoTrimUnderBudget(t *testing.T) {
	missing := []string{"a", "b", "c"}
	nice := []string{"d", "e"}
	gotMissing, gotNice := prioritySkills(missing, nice, MaxGapsToProcess)
	if len(gotMissing) != 3 || len(gotNice) != 2 {
		t.Errorf("got %v / %v, want untouched lists", gotMissing, gotNice)
	}
}

func TestPrioritySkillsQuota(t *testing.T) {
	tests := []struct {
		name        string
		missing     int
		nice        int
		wantMissing int
		wantNice    int
	}{
		// 60% floor: int(8*0.6)=4, max-nice=8-6=2 → quota 4.
		{"floor wins", 4, 6, 4, 4},
		// max-nice dominates: 8-2=6 > 4 → quota min(7,6)=6.
		{"nice short", 7, 2, 6, 2},
		// missing shorter than quota: min(3, max(4,6))=3 → nice gets 5.
		{"missing short", 3, 7, 3, 5},
		// plenty of both: quota max(4, 8-8<4)=4.
		{"both long", 8, 8, 4, 4},
		// quota formula: min(10, max(4, 8-1=7)) = 7, nice keeps its 1.
		{"single nice", 10, 1, 7, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			missing := make([]string, tt.missing)
			nice := make([]string, tt.nice)
			for i := range missing {
				missing[i] = "m"
			}
			for i := range nice {
				nice[i] = "n"
			}
			gotMissing, gotNice := prioritySkills(missing, nice, MaxGapsToProcess)
			if len(gotMissing) != tt.wantMissing || len(gotNice) != tt.wantNice {
				t.Errorf("got %d/%d, want %d/%d",
					len(gotMissing), len(gotNice), tt.wantMissing, tt.wantNice)
			}
		})
	}
}

func TestEstimateSkillHours(t *testing.T) {
	tests := []struct {
		skill string
		want  int
	}{
		{"python", 15},
		{"react", 15},
		{"docker", 12},
		{"kubernetes", 12},
		{"aws", 10},
		{"machine-learning", 18},
		{"git", 6},
		{"css", 8},
		{"underwater-basket-weaving", 10},
	}
	for _, tt := range tests {
		if got := EstimateSkillHours(tt.skill); got != tt.want {
			t.Errorf("EstimateSkillHours(%q) = %d, want %d", tt.skill, got, tt.want)
		}
	}
}

func TestApplyTimeEstimates(t *testing.T) {
	phases := []Phase{
		{Name: "Phase 1", Steps: []Step{
			{SkillID: "git", EstHours: 6},
			{SkillID: "docker", EstHours: 12},
			{SkillID: "python", EstHours: 15},
		}},
		{Name: "Phase 2", Steps: []Step{
			{SkillID: "kubernetes"},
		}},
	}

	r := applyTimeEstimates(phases, 8, "llm")

	if r.Phases[0].TotalHours != 33 {
		t.Errorf("phase 1 hours = %d, want 33", r.Phases[0].TotalHours)
	}
	// Missing est_hours gets the complexity default (kubernetes → 12).
	if r.Phases[1].Steps[0].EstHours != 12 || r.Phases[1].TotalHours != 12 {
		t.Errorf("phase 2 = %+v", r.Phases[1])
	}
	if r.TotalHours != 45 {
		t.Errorf("TotalHours = %d, want 45", r.TotalHours)
	}
	// floor(45 * 1.10) = 49.
	if r.BufferedHours != 49 {
		t.Errorf("BufferedHours = %d, want 49", r.BufferedHours)
	}
	// Three steps in phase 1 → overlap note with int(33*0.85)=28h.
	if !strings.Contains(r.Phases[0].TimeFrame, "28h") {
		t.Errorf("phase 1 time frame = %q", r.Phases[0].TimeFrame)
	}
	// One step in phase 2 → no overlap note.
	if strings.Contains(r.Phases[1].TimeFrame, "overlap") {
		t.Errorf("phase 2 time frame = %q", r.Phases[1].TimeFrame)
	}
	// ceil(12/8) = 2 weeks.
	if !strings.Contains(r.Phases[1].TimeFrame, "~2 weeks") {
		t.Errorf("phase 2 time frame = %q", r.Phases[1].TimeFrame)
	}
}

func TestBufferedHoursFloor(t *testing.T) {
	tests := []struct{ total, want int }{
		{10, 11},
		{37, 40},
		{100, 110},
	}
	for _, tt := range tests {
		phases := []Phase{{Name: "Phase 1", Steps: []Step{
			{SkillID: "solo", EstHours: tt.total},
		}}}
		r := applyTimeEstimates(phases, 8, "fallback")
		if r.TotalHours != tt.total {
			t.Fatalf("TotalHours = %d, want %d", r.TotalHours, tt.total)
		}
		if r.BufferedHours != tt.want {
			t.Errorf("total %d: BufferedHours = %d, want %d", tt.total, r.BufferedHours, tt.want)
		}
	}
}

func TestApplyTimeEstimatesZeroAndClampedWeekly(t *testing.T) {
	r := applyTimeEstimates(nil, 0, "fallback")
	if r.WeeklyHours != DefaultWeeklyHours {
		t.Errorf("WeeklyHours = %d, want default", r.WeeklyHours)
	}
	if r.TotalHours != 0 || r.BufferedHours != 0 {
		t.Errorf("empty roadmap totals = %d/%d", r.TotalHours, r.BufferedHours)
	}
}

func TestBuildFromLLM(t *testing.T) {
	payload := `{"roadmap":[{"phase":"Phase 1: Foundation","skills":[
		{"skill":"docker","course":"Docker Mastery - Udemy","reason":"Core tooling","est_hours":12},
		{"skill":"linux","course":"Linux Journey - Tutorial","reason":"Foundation","est_hours":10}
	]}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(payload)})
	b := New(mock, DefaultConfig())

	r := b.Build(context.Background(), []string{"docker", "linux"}, nil)
	if r.Source != "llm" {
		t.Fatalf("Source = %q", r.Source)
	}
	if len(r.Phases) != 1 || len(r.Phases[0].Steps) != 2 {
		t.Fatalf("Phases = %+v", r.Phases)
	}
	if r.TotalHours != 22 {
		t.Errorf("TotalHours = %d, want 22", r.TotalHours)
	}
}

func TestBuildToleratesLooseStepShapes(t *testing.T) {
	payload := `{"roadmap":[{"phase":"Phase 1","skills":[
		"git",
		{"skill":"python","course":{"title":"Python for Everybody","platform":"Coursera"},"reason":"Core","est_hours":15}
	]}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(payload)})
	b := New(mock, DefaultConfig())

	r := b.Build(context.Background(), []string{"git", "python"}, nil)
	steps := r.Phases[0].Steps
	if len(steps) != 2 {
		t.Fatalf("steps = %+v", steps)
	}
	if steps[0].SkillID != "git" || steps[0].EstHours != 6 {
		t.Errorf("bare-string step = %+v", steps[0])
	}
	if steps[1].Course != "Python for Everybody - Coursera" {
		t.Errorf("object course flattened to %q", steps[1].Course)
	}
}

func TestBuildFallsBackOnLLMFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	b := New(mock, DefaultConfig())

	r := b.Build(context.Background(), []string{"docker", "python", "sql", "git"}, []string{"terraform"})
	if r.Source != "fallback" {
		t.Fatalf("Source = %q", r.Source)
	}
	if len(r.Phases) != 3 {
		t.Fatalf("fallback phases = %d, want 3", len(r.Phases))
	}
	total := 0
	for _, p := range r.Phases {
		total += len(p.Steps)
	}
	if total != 5 {
		t.Errorf("fallback steps = %d, want 5", total)
	}
	// Curated skill picks its first catalog course.
	if !strings.Contains(r.Phases[0].Steps[0].Course, " - ") {
		t.Errorf("fallback course = %q", r.Phases[0].Steps[0].Course)
	}
}

func TestBuildEmptyGapYieldsEmptyRoadmap(t *testing.T) {
	b := New(nil, DefaultConfig())
	r := b.Build(context.Background(), nil, nil)
	if len(r.Phases) != 0 {
		t.Errorf("Phases = %+v, want none", r.Phases)
	}
	if r.Source != "fallback" {
		t.Errorf("Source = %q", r.Source)
	}
}

func TestFallbackCourseStripsParenthetical(t *testing.T) {
	b := New(nil, DefaultConfig())
	r := b.Build(context.Background(), []string{"python"}, nil)
	if len(r.Phases) == 0 || len(r.Phases[0].Steps) == 0 {
		t.Fatalf("Phases = %+v", r.Phases)
	}
	course := r.Phases[0].Steps[0].Course
	if course != "Python for Everybody - Coursera" {
		t.Errorf("Course = %q, want the compacted catalog entry", course)
	}
	if strings.Contains(course, "(") {
		t.Errorf("Course %q carries a parenthetical suffix", course)
	}
}

func TestFallbackUnknownSkillCoursePlaceholder(t *testing.T) {
	phases := fallbackPhases([]string{"underwater-basket-weaving"}, nil, map[string][]string{})
	if len(phases) != 1 {
		t.Fatalf("phases = %+v", phases)
	}
	want := "Learn underwater-basket-weaving - Online Course"
	if phases[0].Steps[0].Course != want {
		t.Errorf("Course = %q, want %q", phases[0].Steps[0].Course, want)
	}
}
