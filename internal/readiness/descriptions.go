package readiness

import (
	"fmt"

	"github.com/abhisek/pathfinder/internal/roles"
	"github.com/abhisek/pathfinder/internal/skills"
)

// impactDescriptions explain why a missing skill matters. Curated for
// the skills that appear across the role catalog.
var impactDescriptions = map[string]string{
	"git":        "Essential for version control and collaboration",
	"jenkins":    "Critical for DevOps automation workflows",
	"docker":     "Essential for containerization and deployment",
	"kubernetes": "Critical for container orchestration",
	"linux":      "Fundamental for system administration",
	"bash":       "Essential for system administration and automation",
	"python":     "Versatile programming for automation and development",
	"ci-cd":      "Critical for automated deployment pipelines",
	"terraform":  "Essential for infrastructure as code",
	"aws":        "Important for cloud infrastructure management",
	"monitoring": "Critical for system observability and reliability",
}

func impactFor(skillID string) string {
	if desc, ok := impactDescriptions[skillID]; ok {
		return desc
	}
	return fmt.Sprintf("Important skill for %s proficiency", skillID)
}

// strengthDescriptions phrase a present skill as a strength.
var strengthDescriptions = map[string]string{
	"docker":     "Strong containerization experience",
	"kubernetes": "Container orchestration proficiency",
	"aws":        "Cloud platform experience",
	"terraform":  "Infrastructure as Code proficiency",
	"ci-cd":      "Continuous integration/deployment knowledge",
	"python":     "Programming and automation capabilities",
	"linux":      "System administration foundation",
	"monitoring": "System observability skills",
	"prometheus": "Advanced monitoring and observability",
	"grafana":    "Data visualization and monitoring",
	"ansible":    "Configuration management expertise",
}

// strengths lists descriptions for each required skill the candidate
// already has, in requirement order.
func strengths(have map[string]bool, reqs []roles.Requirement) []string {
	var out []string
	for _, r := range reqs {
		if !have[skills.Fold(r.SkillID)] {
			continue
		}
		if desc, ok := strengthDescriptions[r.SkillID]; ok {
			out = append(out, desc)
		} else {
			out = append(out, fmt.Sprintf("Experience with %s", r.SkillID))
		}
	}
	return out
}
