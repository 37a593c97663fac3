package roadmap

import "strings"

// hourBands group skills by learning complexity. Bands are checked in
// order; the first whose keyword appears in the skill name wins.
var hourBands = []struct {
	keywords []string
	hours    int
}{
	{[]string{"python", "javascript", "java", "react", "angular", "vue", "django", "flask", "nodejs"}, 15},
	{[]string{"sql", "mongodb", "postgresql", "mysql", "redis", "docker", "kubernetes"}, 12},
	{[]string{"aws", "azure", "gcp", "cloud"}, 10},
	{[]string{"machine-learning", "data-science", "tensorflow", "pytorch", "pandas", "numpy"}, 18},
	{[]string{"git", "jira", "figma", "excel", "tableau"}, 6},
	{[]string{"html", "css", "bootstrap", "sass", "tailwind"}, 8},
}

// defaultSkillHours applies to skills outside every band.
const defaultSkillHours = 10

// EstimateSkillHours estimates learning hours for a skill by
// complexity band.
func EstimateSkillHours(skill string) int {
	lower := strings.ToLower(skill)
	for _, band := range hourBands {
		for _, kw := range band.keywords {
			if strings.Contains(lower, kw) {
				return band.hours
			}
		}
	}
	return defaultSkillHours
}
