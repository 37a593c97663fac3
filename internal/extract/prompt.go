package extract

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a resume analyst. You extract concrete technical and professional skills from resume text.

Rules:
- Return only skills actually evidenced in the text. Do not infer skills that are merely implied.
- Use short lowercase identifiers with hyphens instead of spaces, e.g. "machine-learning", "ci-cd".
- Include programming languages, frameworks, tools, platforms, and well-defined professional practices.
- Exclude job titles, company names, and personality traits.
- Return at most 30 skills, most significant first.`

// resumeCharLimit bounds how much resume text goes into the prompt.
// Long resumes carry their skill signal in the first few pages.
const resumeCharLimit = 8000

func buildUserMessage(resumeText string) string {
	text := strings.TrimSpace(resumeText)
	if len(text) > resumeCharLimit {
		text = text[:resumeCharLimit]
	}
	return fmt.Sprintf("Extract the skills from this resume:\n\n%s", text)
}
