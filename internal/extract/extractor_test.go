package extract

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/pathfinder/internal/llm"
)

const sampleResume = `Senior software engineer with 6 years of Python and SQL
experience. Built CI/CD pipelines with Docker and Jenkins on AWS.`

func TestExtractFromLLM(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"skills":["Python","SQL","Machine Learning"]}`),
	})
	e := New(mock, DefaultConfig())

	got := e.Extract(context.Background(), sampleResume)
	if got.Source != "llm" {
		t.Fatalf("Source = %q, want llm", got.Source)
	}
	want := []string{"python", "sql", "machine-learning"}
	if len(got.Skills) != len(want) {
		t.Fatalf("Skills = %v, want %v", got.Skills, want)
	}
	for i := range want {
		if got.Skills[i] != want[i] {
			t.Errorf("Skills[%d] = %q, want %q", i, got.Skills[i], want[i])
		}
	}
}

func TestExtractStripsCodeFence(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("```json\n{\"skills\":[\"docker\"]}\n```"),
	})
	e := New(mock, DefaultConfig())

	got := e.Extract(context.Background(), sampleResume)
	if got.Source != "llm" || len(got.Skills) != 1 || got.Skills[0] != "docker" {
		t.Errorf("got %+v", got)
	}
}

func TestExtractFallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	e := New(mock, DefaultConfig())

	got := e.Extract(context.Background(), sampleResume)
	if got.Source != "pattern" {
		t.Fatalf("Source = %q, want pattern", got.Source)
	}
	if len(got.Skills) == 0 {
		t.Fatal("pattern fallback found no skills in sample resume")
	}
}

func TestExtractFallsBackOnMalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json at all`),
	})
	e := New(mock, DefaultConfig())

	got := e.Extract(context.Background(), sampleResume)
	if got.Source != "pattern" {
		t.Errorf("Source = %q, want pattern", got.Source)
	}
}

func TestExtractFallsBackOnEmptySkillList(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"skills":[]}`),
	})
	e := New(mock, DefaultConfig())

	got := e.Extract(context.Background(), sampleResume)
	if got.Source != "pattern" {
		t.Errorf("Source = %q, want pattern", got.Source)
	}
}

func TestExtractNilProviderUsesPatterns(t *testing.T) {
	e := New(nil, DefaultConfig())
	got := e.Extract(context.Background(), sampleResume)
	if got.Source != "pattern" {
		t.Fatalf("Source = %q, want pattern", got.Source)
	}
	found := map[string]bool{}
	for _, s := range got.Skills {
		found[s] = true
	}
	for _, want := range []string{"python", "sql", "docker", "aws"} {
		if !found[want] {
			t.Errorf("pattern extraction missing %q, got %v", want, got.Skills)
		}
	}
}

func TestExtractCapsAtThirtySkills(t *testing.T) {
	many := make([]string, 40)
	for i := range many {
		many[i] = string(rune('a'+i%26)) + "-skill-" + string(rune('a'+i/26))
	}
	payload, _ := json.Marshal(map[string][]string{"skills": many})
	mock := llm.NewMockProvider(llm.MockResponse{Content: payload})
	e := New(mock, DefaultConfig())

	got := e.Extract(context.Background(), sampleResume)
	if len(got.Skills) > 30 {
		t.Errorf("got %d skills, want at most 30", len(got.Skills))
	}
}
