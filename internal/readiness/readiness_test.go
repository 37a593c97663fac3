package readiness

import (
	"math"
	"strings"
	"testing"

	"github.com/abhisek/pathfinder/internal/roles"
)

// testProfile builds a small profile where score arithmetic is easy to
// verify by hand: 5 core, 2 other, 1 soft requirement.
func testProfile() roles.Profile {
	return roles.Profile{
		Key:  "test-role",
		Name: "Test Role",
		Core: []roles.Requirement{
			{SkillID: "alpha", RequiredLevel: 3, Weight: roles.WeightCore},
			{SkillID: "beta", RequiredLevel: 3, Weight: roles.WeightCore},
			{SkillID: "gamma", RequiredLevel: 2, Weight: roles.WeightCore},
			{SkillID: "delta", RequiredLevel: 2, Weight: roles.WeightCore},
			{SkillID: "epsilon", RequiredLevel: 2, Weight: roles.WeightCore},
		},
		Other: []roles.Requirement{
			{SkillID: "zeta", RequiredLevel: 2, Weight: roles.WeightOther},
			{SkillID: "eta", RequiredLevel: 2, Weight: roles.WeightOther},
		},
		Soft: []roles.Requirement{
			{SkillID: "theta", RequiredLevel: 2, Weight: roles.WeightSoft},
		},
	}
}

func TestWeightedOverallScore(t *testing.T) {
	// 4/5 core, 1/2 other, 1/1 soft: 0.8*0.6 + 0.5*0.3 + 1.0*0.1 = 0.73
	r := Assess(testProfile(), []string{"alpha", "beta", "gamma", "delta", "zeta", "theta"})
	if math.Abs(r.OverallScore-0.73) > 1e-9 {
		t.Errorf("OverallScore = %v, want 0.73", r.OverallScore)
	}
	if r.Level != LevelWorkable {
		t.Errorf("Level = %q, want workable", r.Level)
	}
}

func TestLevelBoundaries(t *testing.T) {
	// All skills present: overall = 1.0.
	full := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta"}
	if r := Assess(testProfile(), full); r.Level != LevelReady {
		t.Errorf("full skill set: Level = %q", r.Level)
	}

	// 5/5 core, 0/2 other, 0/1 soft: 0.6 exactly → workable.
	core := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	r := Assess(testProfile(), core)
	if math.Abs(r.OverallScore-0.6) > 1e-9 {
		t.Fatalf("OverallScore = %v, want 0.60", r.OverallScore)
	}
	if r.Level != LevelWorkable {
		t.Errorf("score 0.6: Level = %q, want workable (boundary is inclusive)", r.Level)
	}

	// Nothing present.
	if r := Assess(testProfile(), nil); r.Level != LevelFoundation {
		t.Errorf("empty skill set: Level = %q", r.Level)
	}
}

func TestReadyBoundaryInclusive(t *testing.T) {
	// 5/5 core, 2/2 other, 0/1 soft: 0.6 + 0.3 + 0 = 0.9 ready.
	// 4/5 core, 2/2 other, 1/1 soft: 0.48+0.3+0.1 = 0.88 ready.
	// Construct exactly 0.8: 5/5 core, 0/2 other, 2/2... use a profile
	// with one soft skill: 5/5 core + 1/1 soft + 0/2 other = 0.7. Use
	// 5/5 core, 1/2 other, 1/2... simpler: 0.6 + 0.15 + 0.05.
	p := testProfile()
	p.Soft = append(p.Soft, roles.Requirement{SkillID: "iota", RequiredLevel: 2, Weight: roles.WeightSoft})
	// 5/5 core = 0.6, 1/2 other = 0.15, 1/2 soft = 0.05 → 0.8 exactly.
	r := Assess(p, []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "theta"})
	if math.Abs(r.OverallScore-0.8) > 1e-9 {
		t.Fatalf("OverallScore = %v, want 0.80", r.OverallScore)
	}
	if r.Level != LevelReady {
		t.Errorf("score 0.8: Level = %q, want ready (boundary is inclusive)", r.Level)
	}
}

func TestSkillMatchingIgnoresSeparators(t *testing.T) {
	p := roles.Profile{
		Name: "Sep Role",
		Core: []roles.Requirement{
			{SkillID: "ci-cd", RequiredLevel: 3, Weight: roles.WeightCore},
		},
	}
	r := Assess(p, []string{"CI_CD"})
	if r.Breakdown[0].Score != 1.0 {
		t.Errorf("core score = %v, want 1.0 with separator-insensitive match", r.Breakdown[0].Score)
	}
}

func TestMissingCriticalSeverityAndCap(t *testing.T) {
	r := Assess(testProfile(), nil)
	if len(r.MissingCritical) != MaxMissingCritical {
		t.Fatalf("MissingCritical has %d entries, want %d", len(r.MissingCritical), MaxMissingCritical)
	}
	first := r.MissingCritical[0]
	if first.SkillID != "alpha" || first.Severity != SeverityHigh || first.Priority != 1 {
		t.Errorf("first missing = %+v", first)
	}
	// gamma requires level 2 → medium severity.
	third := r.MissingCritical[2]
	if third.SkillID != "gamma" || third.Severity != SeverityMedium {
		t.Errorf("third missing = %+v", third)
	}
}

func TestRecommendationsTopThree(t *testing.T) {
	r := Assess(testProfile(), nil)
	if len(r.Recommendations) != MaxRecommendations {
		t.Fatalf("got %d recommendations", len(r.Recommendations))
	}
	high := r.Recommendations[0]
	if high.Timeline != "2-4 weeks" || !strings.Contains(high.Action, "15-25 hours") {
		t.Errorf("level-3 recommendation = %+v", high)
	}
	medium := r.Recommendations[2]
	if medium.Timeline != "1-2 weeks" || !strings.Contains(medium.Action, "8-15 hours") {
		t.Errorf("level-2 recommendation = %+v", medium)
	}
}

func TestStrengthsUseCuratedDescriptions(t *testing.T) {
	p := roles.Profile{
		Name: "Infra Role",
		Core: []roles.Requirement{
			{SkillID: "docker", RequiredLevel: 3, Weight: roles.WeightCore},
			{SkillID: "obscure-tool", RequiredLevel: 2, Weight: roles.WeightCore},
		},
	}
	r := Assess(p, []string{"docker", "obscure-tool"})
	if len(r.Strengths) != 2 {
		t.Fatalf("Strengths = %v", r.Strengths)
	}
	if r.Strengths[0] != "Strong containerization experience" {
		t.Errorf("Strengths[0] = %q", r.Strengths[0])
	}
	if r.Strengths[1] != "Experience with obscure-tool" {
		t.Errorf("Strengths[1] = %q", r.Strengths[1])
	}
}

func TestCategoryNotesBands(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.9, "Excellent"},
		{0.8, "Excellent"},
		{0.6, "Good"},
		{0.4, "Moderate"},
		{0.1, "Limited"},
	}
	for _, tt := range tests {
		got := categoryNotes(tt.score, "core technical skills")
		if !strings.HasPrefix(got, tt.want) {
			t.Errorf("categoryNotes(%v) = %q, want prefix %q", tt.score, got, tt.want)
		}
	}
}

func TestNextStepsMonthArithmetic(t *testing.T) {
	got := nextSteps(0.65, "Test Role", 5)
	if !strings.Contains(got, "2-3 months") {
		t.Errorf("workable next steps = %q", got)
	}
	got = nextSteps(0.3, "Test Role", 2)
	if !strings.Contains(got, "2-4 months") {
		t.Errorf("foundation next steps = %q", got)
	}
	got = nextSteps(0.9, "Test Role", 0)
	if !strings.Contains(got, "Strong candidate") {
		t.Errorf("ready next steps = %q", got)
	}
}

func TestOverallScoreCoreOnlyProfile(t *testing.T) {
	// 2/3 core, no other or soft requirements: 0.6 * 2/3 = 0.4 exactly.
	p := roles.Profile{
		Name: "Analyst",
		Core: []roles.Requirement{
			{SkillID: "python", RequiredLevel: 3, Weight: roles.WeightCore},
			{SkillID: "sql", RequiredLevel: 3, Weight: roles.WeightCore},
			{SkillID: "statistics", RequiredLevel: 3, Weight: roles.WeightCore},
		},
	}
	r := Assess(p, []string{"python", "sql"})
	if math.Abs(r.OverallScore-0.4) > 1e-9 {
		t.Errorf("OverallScore = %v, want 0.40", r.OverallScore)
	}
	if r.Level != LevelFoundation {
		t.Errorf("Level = %q, want needs-foundation", r.Level)
	}
	if len(r.MissingCritical) != 1 || r.MissingCritical[0].SkillID != "statistics" {
		t.Errorf("MissingCritical = %+v", r.MissingCritical)
	}
}

func TestAssessAgainstCatalogRole(t *testing.T) {
	p, ok := roles.Find("data-scientist")
	if !ok {
		t.Fatal("data-scientist missing from catalog")
	}
	r := Assess(p, []string{"python", "sql"})
	if r.Level != LevelFoundation {
		t.Errorf("Level = %q, want needs-foundation for a two-skill candidate", r.Level)
	}
	if len(r.Strengths) != 2 {
		t.Errorf("Strengths = %v", r.Strengths)
	}
}
