// Package readiness scores a candidate's skills against a curated
// role profile. Scoring is fully deterministic: no model calls, same
// input always yields the same report.
package readiness

import (
	"fmt"
	"math"

	"github.com/abhisek/pathfinder/internal/roles"
	"github.com/abhisek/pathfinder/internal/skills"
)

// Level buckets the weighted overall score.
type Level string

const (
	LevelReady      Level = "Ready / Strong fit"
	LevelWorkable   Level = "Workable with targeted upskilling"
	LevelFoundation Level = "Needs foundation"
)

// Score thresholds for the readiness levels.
const (
	ReadyThreshold    = 0.8
	WorkableThreshold = 0.6
)

// Severity grades how badly a missing skill hurts.
type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
)

// MissingSkill is a required skill the candidate lacks.
type MissingSkill struct {
	SkillID       string
	RequiredLevel int
	CurrentLevel  int
	Severity      Severity
	// Priority is the 1-based position in the role's requirement
	// ordering, which doubles as learning priority.
	Priority int
}

// Recommendation is an actionable step for a missing skill.
type Recommendation struct {
	Priority int
	SkillID  string
	Action   string
	Timeline string
	Impact   string
}

// CategoryBreakdown reports one scored requirement category.
type CategoryBreakdown struct {
	Category string
	Score    float64
	Present  []string
	Missing  []string
	Notes    string
}

// Report is the full readiness assessment for one role.
type Report struct {
	Role            string
	OverallScore    float64
	Level           Level
	Breakdown       []CategoryBreakdown
	MissingCritical []MissingSkill
	Recommendations []Recommendation
	Strengths       []string
	NextSteps       string
}

// MaxMissingCritical caps the missing-critical list.
const MaxMissingCritical = 5

// MaxRecommendations caps the recommendation list.
const MaxRecommendations = 3

// Assess scores userSkills against the role profile.
func Assess(profile roles.Profile, userSkills []string) Report {
	have := skills.FoldSet(userSkills)

	coreScore := categoryScore(have, profile.Core)
	otherScore := categoryScore(have, profile.Other)
	softScore := categoryScore(have, profile.Soft)

	overall := coreScore*roles.WeightCore + otherScore*roles.WeightOther + softScore*roles.WeightSoft

	missing := missingCritical(have, profile.TechnicalRequirements())

	return Report{
		Role:         profile.Name,
		OverallScore: round2(overall),
		Level:        levelFor(overall),
		Breakdown: []CategoryBreakdown{
			{
				Category: fmt.Sprintf("Core Technical Skills (%.0f%%)", roles.WeightCore*100),
				Score:    round2(coreScore),
				Present:  presentSkills(have, profile.Core),
				Missing:  missingSkills(have, profile.Core),
				Notes:    categoryNotes(coreScore, "core technical skills"),
			},
			{
				Category: fmt.Sprintf("Other Technical Skills (%.0f%%)", roles.WeightOther*100),
				Score:    round2(otherScore),
				Present:  presentSkills(have, profile.Other),
				Missing:  missingSkills(have, profile.Other),
				Notes:    categoryNotes(otherScore, "other technical skills"),
			},
			{
				Category: fmt.Sprintf("Soft Skills (%.0f%%)", roles.WeightSoft*100),
				Score:    round2(softScore),
				Notes:    "Assessment based on inferred capabilities from experience and projects",
			},
		},
		MissingCritical: missing,
		Recommendations: recommendations(missing),
		Strengths:       strengths(have, profile.TechnicalRequirements()),
		NextSteps:       nextSteps(overall, profile.Name, len(missing)),
	}
}

// categoryScore is the fraction of required skills present. Empty
// categories score zero rather than dividing by zero.
func categoryScore(have map[string]bool, reqs []roles.Requirement) float64 {
	if len(reqs) == 0 {
		return 0.0
	}
	present := 0
	for _, r := range reqs {
		if have[skills.Fold(r.SkillID)] {
			present++
		}
	}
	return float64(present) / float64(len(reqs))
}

func levelFor(overall float64) Level {
	switch {
	case overall >= ReadyThreshold:
		return LevelReady
	case overall >= WorkableThreshold:
		return LevelWorkable
	default:
		return LevelFoundation
	}
}

func presentSkills(have map[string]bool, reqs []roles.Requirement) []string {
	var out []string
	for _, r := range reqs {
		if have[skills.Fold(r.SkillID)] {
			out = append(out, r.SkillID)
		}
	}
	return out
}

func missingSkills(have map[string]bool, reqs []roles.Requirement) []string {
	var out []string
	for _, r := range reqs {
		if !have[skills.Fold(r.SkillID)] {
			out = append(out, r.SkillID)
		}
	}
	return out
}

// missingCritical walks technical requirements in priority order and
// grades each gap, keeping the top entries.
func missingCritical(have map[string]bool, reqs []roles.Requirement) []MissingSkill {
	var out []MissingSkill
	for i, r := range reqs {
		if have[skills.Fold(r.SkillID)] {
			continue
		}
		severity := SeverityMedium
		if r.RequiredLevel >= 3 {
			severity = SeverityHigh
		}
		out = append(out, MissingSkill{
			SkillID:       r.SkillID,
			RequiredLevel: r.RequiredLevel,
			CurrentLevel:  0,
			Severity:      severity,
			Priority:      i + 1,
		})
	}
	if len(out) > MaxMissingCritical {
		out = out[:MaxMissingCritical]
	}
	return out
}

func recommendations(missing []MissingSkill) []Recommendation {
	n := len(missing)
	if n > MaxRecommendations {
		n = MaxRecommendations
	}
	out := make([]Recommendation, 0, n)
	for i, m := range missing[:n] {
		timeline, hours := "1-2 weeks", "8-15 hours"
		if m.RequiredLevel >= 3 {
			timeline, hours = "2-4 weeks", "15-25 hours"
		}
		out = append(out, Recommendation{
			Priority: i + 1,
			SkillID:  m.SkillID,
			Action:   fmt.Sprintf("Complete foundational %s training (%s)", m.SkillID, hours),
			Timeline: timeline,
			Impact:   impactFor(m.SkillID),
		})
	}
	return out
}

func categoryNotes(score float64, category string) string {
	switch {
	case score >= 0.8:
		return fmt.Sprintf("Excellent %s foundation with most required skills present", category)
	case score >= 0.6:
		return fmt.Sprintf("Good %s base with some gaps to address", category)
	case score >= 0.4:
		return fmt.Sprintf("Moderate %s foundation but significant gaps exist", category)
	default:
		return fmt.Sprintf("Limited %s experience, foundational learning needed", category)
	}
}

func nextSteps(overall float64, role string, missingCount int) string {
	switch {
	case overall >= ReadyThreshold:
		return fmt.Sprintf("Strong candidate for %s. Focus on advanced skills and specialization.", role)
	case overall >= WorkableThreshold:
		months := missingCount / 2
		if months < 1 {
			months = 1
		}
		return fmt.Sprintf("Solid foundation for %s. Address key skill gaps with %d-%d months of targeted learning.", role, months, months+1)
	default:
		months := missingCount / 2
		if months < 2 {
			months = 2
		}
		return fmt.Sprintf("Foundational skills needed for %s. Plan %d-%d months of comprehensive skill development.", role, months, months+2)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
