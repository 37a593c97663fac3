// Package pipeline orchestrates the full planning flow: skill
// extraction, gap analysis, readiness scoring, and roadmap building.
package pipeline

import (
	"context"

	"github.com/abhisek/pathfinder/internal/extract"
	"github.com/abhisek/pathfinder/internal/gap"
	"github.com/abhisek/pathfinder/internal/llm"
	"github.com/abhisek/pathfinder/internal/readiness"
	"github.com/abhisek/pathfinder/internal/roadmap"
	"github.com/abhisek/pathfinder/internal/roles"
	"github.com/abhisek/pathfinder/internal/skills"
	"github.com/abhisek/pathfinder/internal/store"
)

// Input describes one pipeline run. Either Skills (manual entry) or
// ResumeText must be set; Skills wins when both are present.
type Input struct {
	SessionID  string
	TargetRole string
	ResumeText string
	Skills     []string
}

// Result is the complete outcome of a run.
type Result struct {
	SessionID string
	Role      string
	Skills    []string
	// SkillSource is "manual", "llm", or "pattern".
	SkillSource string
	Gap         gap.Analysis
	// Readiness is nil for roles without a curated profile.
	Readiness *readiness.Report
	Roadmap   roadmap.Roadmap
	Metrics   *Metrics
}

// Runner wires the pipeline stages together.
type Runner struct {
	extractor *extract.Extractor
	analyzer  *gap.Analyzer
	builder   *roadmap.Builder
	events    store.EventRepo
}

// Option adjusts Runner construction.
type Option func(*roadmap.Config)

// WithWeeklyHours overrides the weekly study capacity used for
// roadmap time estimates. Non-positive values keep the default.
func WithWeeklyHours(hours int) Option {
	return func(cfg *roadmap.Config) {
		if hours > 0 {
			cfg.WeeklyHours = hours
		}
	}
}

// NewRunner builds a Runner with default stage configs. The provider
// may be nil, in which case every stage uses its deterministic path.
// events may be nil to skip assessment logging.
func NewRunner(provider llm.Provider, events store.EventRepo, opts ...Option) *Runner {
	roadmapCfg := roadmap.DefaultConfig()
	for _, opt := range opts {
		opt(&roadmapCfg)
	}
	return &Runner{
		extractor: extract.New(provider, extract.DefaultConfig()),
		analyzer:  gap.New(provider, gap.DefaultConfig()),
		builder:   roadmap.New(provider, roadmapCfg),
		events:    events,
	}
}

// Run executes the pipeline. It never fails outright: every stage has
// a deterministic fallback, so the worst case is an empty gap and an
// empty roadmap.
func (r *Runner) Run(ctx context.Context, in Input) *Result {
	m := NewMetrics()
	out := &Result{
		SessionID: in.SessionID,
		Role:      in.TargetRole,
		Metrics:   m,
	}

	if len(in.Skills) > 0 {
		out.Skills = skills.NormalizeAll(in.Skills)
		out.SkillSource = "manual"
	} else {
		stop := m.Track("skill-extract")
		res := r.extractor.Extract(ctx, in.ResumeText)
		stop()
		out.Skills = res.Skills
		out.SkillSource = res.Source
	}

	stop := m.Track("gap-analysis")
	out.Gap = r.analyzer.Analyze(ctx, in.TargetRole, out.Skills)
	stop()

	if profile, ok := roles.Find(in.TargetRole); ok {
		stop = m.Track("readiness")
		report := readiness.Assess(profile, out.Skills)
		stop()
		out.Readiness = &report
	}

	stop = m.Track("roadmap")
	out.Roadmap = r.builder.Build(ctx, out.Gap.Missing, out.Gap.NiceToHave)
	stop()

	r.logAssessment(ctx, out)
	return out
}

// logAssessment records the run in the event log. Logging failures
// never fail the run.
func (r *Runner) logAssessment(ctx context.Context, res *Result) {
	if r.events == nil {
		return
	}

	data := store.AssessmentData{
		SessionID:       res.SessionID,
		TargetRole:      res.Role,
		MissingCount:    len(res.Gap.Missing),
		NiceToHaveCount: len(res.Gap.NiceToHave),
		RoadmapHours:    res.Roadmap.TotalHours,
		RoadmapSource:   res.Roadmap.Source,
		DurationMs:      res.Metrics.Total().Milliseconds(),
	}
	if res.Readiness != nil {
		data.OverallScore = res.Readiness.OverallScore
		data.ReadinessLevel = string(res.Readiness.Level)
	}

	_ = r.events.AppendAssessment(ctx, data)
}
