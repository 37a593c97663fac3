// Package gap computes which skills a candidate is missing for a
// target role. Roles with a curated profile get a deterministic local
// diff; the LLM only suggests complementary skills. Unknown roles fall
// back to a fully model-driven analysis.
package gap

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/abhisek/pathfinder/internal/llm"
	"github.com/abhisek/pathfinder/internal/roles"
	"github.com/abhisek/pathfinder/internal/skills"
)

// MaxNiceToHave caps the complementary skill list.
const MaxNiceToHave = 10

// Config tunes the LLM calls made during analysis.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the analysis defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.0,
	}
}

// Analysis is the outcome of a gap analysis.
type Analysis struct {
	// Missing lists required skills the candidate lacks, alphabetical.
	Missing []string
	// NiceToHave lists complementary skills, alphabetical, capped.
	NiceToHave []string
	// Curated reports whether a curated role profile drove the diff.
	Curated bool
}

// Analyzer performs gap analysis against role requirements.
type Analyzer struct {
	provider llm.Provider
	config   Config
}

// New creates an Analyzer. A nil provider disables the model calls:
// curated roles still get their deterministic diff, unknown roles get
// empty results.
func New(provider llm.Provider, cfg Config) *Analyzer {
	return &Analyzer{provider: provider, config: cfg}
}

type gapOutput struct {
	MissingSkills []string `json:"missing_skills"`
	NiceToHave    []string `json:"nice_to_have"`
}

// Analyze compares userSkills against the target role. It never
// returns an error: model failures degrade to whatever can be computed
// locally.
func (a *Analyzer) Analyze(ctx context.Context, targetRole string, userSkills []string) Analysis {
	ctx = llm.WithPurpose(ctx, llm.PurposeGapAnalysis)

	if profile, ok := roles.Find(targetRole); ok {
		return a.analyzeCurated(ctx, profile, userSkills)
	}
	return a.analyzeOpenRole(ctx, targetRole, userSkills)
}

// analyzeCurated diffs the curated requirements against the user's
// skills locally. Matching tolerates formatting variants (ci-cd vs
// ci_cd vs cicd).
func (a *Analyzer) analyzeCurated(ctx context.Context, profile roles.Profile, userSkills []string) Analysis {
	have := skills.FoldSet(userSkills)

	var missing []string
	for _, id := range profile.RequiredSkillIDs() {
		if !have[skills.Fold(id)] {
			missing = append(missing, id)
		}
	}
	sort.Strings(missing)

	out := Analysis{Missing: missing, Curated: true}
	if a.provider == nil {
		return out
	}

	req := llm.Request{
		System: analystSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildNiceToHavePrompt(
				profile.Name, profile.RequiredSkillIDs(), userSkills, missing)},
		},
		Schema:      NiceToHaveSchema,
		MaxTokens:   a.config.MaxTokens,
		Temperature: a.config.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return out
	}

	var raw gapOutput
	cleaned := llm.StripCodeFence(string(resp.Content))
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return out
	}

	out.NiceToHave = cleanList(raw.NiceToHave, append(missing, userSkills...), MaxNiceToHave)
	return out
}

// analyzeOpenRole asks the model for both lists. Without a provider or
// on any failure, the result is empty: there is no local source of
// requirements for an uncurated role.
func (a *Analyzer) analyzeOpenRole(ctx context.Context, targetRole string, userSkills []string) Analysis {
	if a.provider == nil {
		return Analysis{}
	}

	req := llm.Request{
		System: analystSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildOpenRolePrompt(targetRole, userSkills)},
		},
		Schema:      GapSchema,
		MaxTokens:   a.config.MaxTokens,
		Temperature: a.config.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return Analysis{}
	}

	var raw gapOutput
	cleaned := llm.StripCodeFence(string(resp.Content))
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return Analysis{}
	}

	missing := cleanList(raw.MissingSkills, userSkills, 0)
	return Analysis{
		Missing:    missing,
		NiceToHave: cleanList(raw.NiceToHave, append(missing, userSkills...), MaxNiceToHave),
	}
}

// cleanList normalizes, dedupes, and sorts a model-produced skill
// list, dropping anything already present in exclude. A positive max
// caps the result.
func cleanList(list, exclude []string, max int) []string {
	skip := skills.FoldSet(exclude)

	var out []string
	seen := map[string]bool{}
	for _, s := range list {
		id := skills.Normalize(s)
		if id == "" {
			continue
		}
		key := skills.Fold(id)
		if seen[key] || skip[key] {
			continue
		}
		seen[key] = true
		out = append(out, id)
	}
	sort.Strings(out)
	if max > 0 && len(out) > max {
		out = out[:max]
	}
	return out
}
