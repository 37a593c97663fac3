package gap

import (
	"fmt"
	"strings"
)

const analystSystemPrompt = `You are a career-gap analyst. You compare a candidate's skills against a target role and report skill gaps as JSON.

Rules:
- Use short lowercase identifiers with hyphens instead of spaces.
- Return alphabetically sorted lists.
- nice_to_have holds complementary skills beyond the required set, at most 10 items.
- Respond only with valid JSON.`

func buildNiceToHavePrompt(role string, required, userSkills, missing []string) string {
	return fmt.Sprintf(`The candidate targets the role %q.

Required skills for the role: %s
Candidate skills: %s
Skills already identified as missing: %s

Suggest complementary skills the candidate should also consider, beyond the required set. Do not repeat required or missing skills.`,
		role,
		strings.Join(required, ", "),
		strings.Join(userSkills, ", "),
		strings.Join(missing, ", "))
}

func buildOpenRolePrompt(role string, userSkills []string) string {
	return fmt.Sprintf(`The candidate targets the role %q, which has no curated requirement profile.

Candidate skills: %s

Produce missing_skills (required skills the candidate lacks for this role) and nice_to_have (complementary skills, at most 10).`,
		role,
		strings.Join(userSkills, ", "))
}
