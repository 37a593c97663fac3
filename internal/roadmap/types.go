package roadmap

import (
	"encoding/json"
	"strings"
)

// Step is one learning step inside a phase.
type Step struct {
	SkillID  string `json:"skill"`
	Course   string `json:"course"`
	Reason   string `json:"reason"`
	EstHours int    `json:"est_hours"`
}

// Phase groups steps under a named stage of the plan.
type Phase struct {
	Name       string `json:"phase"`
	Steps      []Step `json:"skills"`
	TotalHours int    `json:"phase_total_hours"`
	TimeFrame  string `json:"phase_time_frame"`
}

// Roadmap is the complete phased plan with time estimates applied.
type Roadmap struct {
	Phases        []Phase
	TotalHours    int
	BufferedHours int
	TimeFrame     string
	WeeklyHours   int
	// Source is "llm" or "fallback".
	Source string
}

// rawRoadmap mirrors the model's output envelope.
type rawRoadmap struct {
	Roadmap []rawPhase `json:"roadmap"`
}

type rawPhase struct {
	Phase  string    `json:"phase"`
	Skills []rawStep `json:"skills"`
}

// rawStep tolerates the shapes models actually produce: a step object,
// a bare skill string, and course given as either a string or an
// object with title/platform fields.
type rawStep struct {
	Skill    string
	Course   string
	Reason   string
	EstHours int
}

func (s *rawStep) UnmarshalJSON(data []byte) error {
	var bare string
	if err := json.Unmarshal(data, &bare); err == nil {
		s.Skill = bare
		return nil
	}

	var obj struct {
		Skill    string          `json:"skill"`
		Course   json.RawMessage `json:"course"`
		Reason   string          `json:"reason"`
		EstHours int             `json:"est_hours"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	s.Skill = obj.Skill
	s.Reason = obj.Reason
	s.EstHours = obj.EstHours
	s.Course = flattenCourse(obj.Course)
	return nil
}

func flattenCourse(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}

	var obj struct {
		Title    string `json:"title"`
		Name     string `json:"name"`
		Platform string `json:"platform"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return ""
	}

	title := obj.Title
	if title == "" {
		title = obj.Name
	}
	if title == "" {
		return ""
	}
	if obj.Platform != "" {
		return title + " - " + obj.Platform
	}
	return title
}

// parseRoadmapJSON decodes model output into phases, dropping entries
// without a skill name.
func parseRoadmapJSON(content string) []Phase {
	var raw rawRoadmap
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil
	}

	var phases []Phase
	for _, rp := range raw.Roadmap {
		var steps []Step
		for _, rs := range rp.Skills {
			skill := strings.TrimSpace(rs.Skill)
			if skill == "" {
				continue
			}
			steps = append(steps, Step{
				SkillID:  skill,
				Course:   rs.Course,
				Reason:   rs.Reason,
				EstHours: rs.EstHours,
			})
		}
		if len(steps) == 0 {
			continue
		}
		phases = append(phases, Phase{Name: rp.Phase, Steps: steps})
	}
	return phases
}
