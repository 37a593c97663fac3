// Package roadmap builds a phased learning plan from a skill gap.
// The model proposes the plan; a deterministic fallback covers every
// failure mode, so building never errors.
package roadmap

import (
	"context"
	"fmt"

	"github.com/abhisek/pathfinder/internal/courses"
	"github.com/abhisek/pathfinder/internal/llm"
)

// Config tunes plan generation.
type Config struct {
	MaxTokens   int
	Temperature float64
	WeeklyHours int
	Workers     int
}

// DefaultConfig returns the builder defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.0,
		WeeklyHours: DefaultWeeklyHours,
		Workers:     courses.DefaultWorkers,
	}
}

// Builder generates learning roadmaps.
type Builder struct {
	provider llm.Provider
	config   Config
}

// New creates a Builder. A nil provider always uses the deterministic
// fallback plan.
func New(provider llm.Provider, cfg Config) *Builder {
	return &Builder{provider: provider, config: cfg}
}

// Build produces a roadmap for the gap lists. It trims input to the
// priority budget, retrieves curated courses concurrently, asks the
// model for a plan, and falls back to a deterministic 3-phase plan on
// any failure. Time estimates are always applied.
func (b *Builder) Build(ctx context.Context, missing, nice []string) Roadmap {
	priorityMissing, priorityNice := prioritySkills(missing, nice, MaxGapsToProcess)

	all := append(append([]string{}, priorityMissing...), priorityNice...)
	candidates := compactAll(courses.Lookup(ctx, all, b.config.Workers))

	phases, source := b.generate(ctx, priorityMissing, priorityNice, candidates)
	if len(phases) == 0 {
		phases = fallbackPhases(priorityMissing, priorityNice, candidates)
		source = "fallback"
	}

	return applyTimeEstimates(phases, b.config.WeeklyHours, source)
}

func (b *Builder) generate(ctx context.Context, missing, nice []string, candidates map[string][]string) ([]Phase, string) {
	if b.provider == nil {
		return nil, ""
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeRoadmap)

	req := llm.Request{
		System: mentorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildRoadmapPrompt(missing, nice, candidates)},
		},
		Schema:      RoadmapSchema,
		MaxTokens:   b.config.MaxTokens,
		Temperature: b.config.Temperature,
	}

	resp, err := b.provider.Generate(ctx, req)
	if err != nil {
		return nil, ""
	}

	phases := parseRoadmapJSON(llm.StripCodeFence(string(resp.Content)))
	return phases, "llm"
}

// compactAll strips parenthetical suffixes from every candidate.
// Courses attach to roadmap steps in their "Title - Platform" form,
// whether through the prompt or the fallback plan.
func compactAll(candidates map[string][]string) map[string][]string {
	for _, list := range candidates {
		for i, c := range list {
			list[i] = courses.Compact(c)
		}
	}
	return candidates
}

// fallbackPhases distributes the gap skills over three fixed phases,
// picking the first curated course for each skill.
func fallbackPhases(missing, nice []string, candidates map[string][]string) []Phase {
	all := append(append([]string{}, missing...), nice...)
	if len(all) == 0 {
		return nil
	}

	perPhase := len(all) / 3
	if perPhase < 1 {
		perPhase = 1
	}

	names := []string{"Phase 1: Foundation", "Phase 2: Intermediate", "Phase 3: Advanced"}

	var phases []Phase
	for i, name := range names {
		start := i * perPhase
		if start >= len(all) {
			break
		}
		end := start + perPhase
		if i == len(names)-1 || end > len(all) {
			end = len(all)
		}

		var steps []Step
		for _, skill := range all[start:end] {
			course := fmt.Sprintf("Learn %s - Online Course", skill)
			if list := candidates[skill]; len(list) > 0 {
				course = list[0]
			}
			steps = append(steps, Step{
				SkillID:  skill,
				Course:   course,
				Reason:   fmt.Sprintf("Essential %s skills", skill),
				EstHours: EstimateSkillHours(skill),
			})
		}
		if len(steps) > 0 {
			phases = append(phases, Phase{Name: name, Steps: steps})
		}
	}
	return phases
}
