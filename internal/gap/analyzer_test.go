package gap

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"testing"

	"github.com/abhisek/pathfinder/internal/llm"
)

func TestCuratedRoleDiffIsLocal(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"nice_to_have":["helm","prometheus"]}`),
	})
	a := New(mock, DefaultConfig())

	got := a.Analyze(context.Background(), "devops-engineer", []string{"linux", "docker", "git", "python"})

	if !got.Curated {
		t.Fatal("Curated = false for a catalog role")
	}
	for _, m := range got.Missing {
		switch m {
		case "linux", "docker", "git", "python":
			t.Errorf("Missing contains a skill the user has: %q", m)
		}
	}
	if !sort.StringsAreSorted(got.Missing) {
		t.Errorf("Missing not sorted: %v", got.Missing)
	}
	found := false
	for _, m := range got.Missing {
		if m == "kubernetes" {
			found = true
		}
	}
	if !found {
		t.Errorf("Missing should include kubernetes, got %v", got.Missing)
	}
	if len(got.NiceToHave) != 2 {
		t.Errorf("NiceToHave = %v", got.NiceToHave)
	}
}

func TestCuratedDiffToleratesSkillVariants(t *testing.T) {
	a := New(nil, DefaultConfig())
	got := a.Analyze(context.Background(), "devops-engineer", []string{"CI_CD", "cicd"})
	for _, m := range got.Missing {
		if m == "ci-cd" {
			t.Errorf("ci-cd reported missing despite variant match: %v", got.Missing)
		}
	}
}

func TestCuratedRoleSurvivesLLMFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	a := New(mock, DefaultConfig())

	got := a.Analyze(context.Background(), "data-scientist", []string{"python"})
	if !got.Curated || len(got.Missing) == 0 {
		t.Fatalf("curated diff lost on LLM failure: %+v", got)
	}
	if got.NiceToHave != nil {
		t.Errorf("NiceToHave = %v, want nil", got.NiceToHave)
	}
}

func TestOpenRoleUsesLLMForBothLists(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"missing_skills":["solidity","web3"],"nice_to_have":["rust"]}`),
	})
	a := New(mock, DefaultConfig())

	got := a.Analyze(context.Background(), "blockchain-developer", []string{"javascript"})
	if got.Curated {
		t.Fatal("Curated = true for an unknown role")
	}
	if len(got.Missing) != 2 || got.Missing[0] != "solidity" {
		t.Errorf("Missing = %v", got.Missing)
	}
	if len(got.NiceToHave) != 1 || got.NiceToHave[0] != "rust" {
		t.Errorf("NiceToHave = %v", got.NiceToHave)
	}
}

func TestOpenRoleFailsEmpty(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`no json here`),
	})
	a := New(mock, DefaultConfig())

	got := a.Analyze(context.Background(), "blockchain-developer", []string{"javascript"})
	if len(got.Missing) != 0 || len(got.NiceToHave) != 0 {
		t.Errorf("got %+v, want empty analysis", got)
	}
}

func TestNiceToHaveCapAndExclusions(t *testing.T) {
	many := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "python"}
	payload, _ := json.Marshal(map[string][]string{"nice_to_have": many})
	mock := llm.NewMockProvider(llm.MockResponse{Content: payload})
	a := New(mock, DefaultConfig())

	got := a.Analyze(context.Background(), "data-scientist", []string{"python"})
	if len(got.NiceToHave) > MaxNiceToHave {
		t.Errorf("NiceToHave has %d items, cap is %d", len(got.NiceToHave), MaxNiceToHave)
	}
	for _, s := range got.NiceToHave {
		if s == "python" {
			t.Error("NiceToHave repeats a skill the user already has")
		}
	}
}

func TestAnalyzeSetsGapPurpose(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"nice_to_have":[]}`),
	})
	a := New(mock, DefaultConfig())
	a.Analyze(context.Background(), "data-scientist", []string{"python"})

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d", mock.CallCount())
	}
	if mock.Calls[0].Schema != NiceToHaveSchema {
		t.Error("curated path did not use the nice-to-have schema")
	}
}
