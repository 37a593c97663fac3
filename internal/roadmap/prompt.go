package roadmap

import (
	"fmt"
	"strings"
)

const mentorSystemPrompt = `You are a learning-roadmap mentor. You turn a skill gap into a practical, phased study plan as JSON.

Guidelines for est_hours:
- Basic tools (Git, Excel): 6-8 hours
- Web technologies (HTML, CSS): 8-10 hours
- Cloud platforms: 10-12 hours
- Databases: 12-15 hours
- Programming languages/frameworks: 15-20 hours
- Data science/ML: 18-25 hours

Return only valid JSON, max 10 words per reason.`

// maxCoursesInPrompt bounds curated courses listed per skill.
const maxCoursesInPrompt = 3

func buildRoadmapPrompt(missing, nice []string, candidates map[string][]string) string {
	var b strings.Builder

	curated := formatCuratedCourses(append(append([]string{}, missing...), nice...), candidates)
	if curated != "" {
		b.WriteString("Create a JSON roadmap using these curated courses:\n")
		b.WriteString(curated)
		b.WriteString("\n")
	} else {
		b.WriteString("Create a JSON roadmap for a skills transition.\n\n")
	}

	b.WriteString("Build a 3-phase plan (Foundation, Applied, Capstone) with 9-12 steps total. ")
	b.WriteString("Each step includes skill, course, reason, and est_hours.\n\n")
	fmt.Fprintf(&b, "MISSING: %s\n", strings.Join(missing, ", "))
	fmt.Fprintf(&b, "NICE TO HAVE: %s\n", strings.Join(nice, ", "))

	return b.String()
}

// formatCuratedCourses renders "skill: course, course" lines for the
// skills that have curated entries. Candidates arrive already
// compacted to their "Title - Platform" form.
func formatCuratedCourses(skillIDs []string, candidates map[string][]string) string {
	var b strings.Builder
	for _, id := range skillIDs {
		list := candidates[id]
		if len(list) == 0 {
			continue
		}
		if len(list) > maxCoursesInPrompt {
			list = list[:maxCoursesInPrompt]
		}
		fmt.Fprintf(&b, "%s: %s\n", id, strings.Join(list, ", "))
	}
	return b.String()
}
