package plan

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathfinder/internal/ui/components"
	"github.com/abhisek/pathfinder/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (p *PlanScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch p.step {
	case stepRole:
		body = p.viewRole(cw)
	case stepRoleInput:
		body = p.viewRoleInput(cw)
	case stepSkills:
		body = p.viewSkills(cw)
	case stepRunning:
		body = p.viewRunning(cw)
	case stepResults:
		return p.viewResults(width, height)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (p *PlanScreen) viewRole(cw int) string {
	title := theme.Title.Render("Where do you want to go?")
	hint := theme.Hint.Render("Pick a target role")
	return components.Card(title+"\n"+hint+"\n\n"+p.roleMenu.View(), cw)
}

func (p *PlanScreen) viewRoleInput(cw int) string {
	title := theme.Title.Render("Name your target role")
	hint := theme.Hint.Render("No curated profile: the analysis will be AI-only")
	return components.Card(title+"\n"+hint+"\n\n"+p.roleInput.View(), cw)
}

func (p *PlanScreen) viewSkills(cw int) string {
	title := theme.Title.Render("What can you already do?")
	hint := theme.Hint.Render("Comma-separated skills")
	role := theme.Body.Render("Target: ") + theme.Selected.Render(p.role)
	return components.Card(title+"\n"+hint+"\n\n"+role+"\n\n"+p.skillsInput.View(), cw)
}

func (p *PlanScreen) viewRunning(cw int) string {
	frame := spinnerFrames[p.spinner%len(spinnerFrames)]
	msg := fmt.Sprintf("%s Analyzing your path to %s...", frame, p.role)
	return components.Card(
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(msg), cw)
}

func (p *PlanScreen) viewResults(width, height int) string {
	if len(p.lines) == 0 {
		return theme.Hint.Render("\n\n  Nothing to show.")
	}

	end := p.scroll + height
	if end > len(p.lines) {
		end = len(p.lines)
	}
	start := p.scroll
	if start > end {
		start = end
	}

	var b strings.Builder
	for _, line := range p.lines[start:end] {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}

// buildResultLines flattens the pipeline result into scrollable lines.
func (p *PlanScreen) buildResultLines() []string {
	res := p.res
	var lines []string

	add := func(s string) { lines = append(lines, s) }

	add("")
	add(theme.Title.Render("Assessment: " + p.role))
	add("")
	add(theme.Body.Render("Skills: ") + strings.Join(res.Skills, ", ") +
		theme.Hint.Render("  ("+res.SkillSource+")"))

	if res.Readiness != nil {
		r := res.Readiness
		add("")
		bar := components.NewProgressBar("Readiness", r.OverallScore, true, 48)
		add(bar.View())
		add(levelStyle(r.OverallScore).Render(string(r.Level)))

		for _, cb := range r.Breakdown {
			add("")
			add(theme.Selected.Render(cb.Category) + fmt.Sprintf("  %.2f", cb.Score))
			if len(cb.Present) > 0 {
				add(theme.Good.Render("  have    ") + strings.Join(cb.Present, ", "))
			}
			if len(cb.Missing) > 0 {
				add(theme.Bad.Render("  missing ") + strings.Join(cb.Missing, ", "))
			}
		}

		if len(r.Recommendations) > 0 {
			add("")
			add(theme.Title.Render("Recommendations"))
			for _, rec := range r.Recommendations {
				add(fmt.Sprintf("%d. %s  %s", rec.Priority, rec.Action,
					theme.Hint.Render("("+rec.Timeline+")")))
			}
		}

		if r.NextSteps != "" {
			add("")
			add(theme.Body.Render(r.NextSteps))
		}
	}

	add("")
	add(theme.Title.Render("Skill Gap"))
	if len(res.Gap.Missing) == 0 && len(res.Gap.NiceToHave) == 0 {
		add(theme.Good.Render("No gaps identified."))
	} else {
		if len(res.Gap.Missing) > 0 {
			add(theme.Bad.Render("missing       ") + strings.Join(res.Gap.Missing, ", "))
		}
		if len(res.Gap.NiceToHave) > 0 {
			add(theme.Hint.Render("nice to have  ") + strings.Join(res.Gap.NiceToHave, ", "))
		}
	}

	add("")
	add(theme.Title.Render("Learning Roadmap"))
	if len(res.Roadmap.Phases) == 0 {
		add(theme.Hint.Render("No roadmap: no skill gaps to plan for."))
	} else {
		for _, phase := range res.Roadmap.Phases {
			add("")
			add(theme.Selected.Render(phase.Name))
			for _, step := range phase.Steps {
				add(fmt.Sprintf("  %-20s  %3dh  %s", step.SkillID, step.EstHours, step.Course))
			}
			if phase.TimeFrame != "" {
				add(theme.Hint.Render("  " + phase.TimeFrame))
			}
		}
		add("")
		add(theme.Body.Render(res.Roadmap.TimeFrame))
	}

	add("")
	return lines
}

func levelStyle(score float64) lipgloss.Style {
	switch {
	case score >= 0.8:
		return theme.Good
	case score >= 0.6:
		return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	default:
		return theme.Bad
	}
}
