package skills

import (
	"regexp"
	"strings"
)

// pattern pairs a canonical skill id with the regex that detects it in
// free text. Order matters: FallbackExtract emits skills in table
// order, and "java" must not swallow "javascript".
type pattern struct {
	ID string
	Re *regexp.Regexp
}

var skillPatterns = []pattern{
	{"python", regexp.MustCompile(`\b(python|py)\b`)},
	{"javascript", regexp.MustCompile(`\b(javascript|js|java-script)\b`)},
	{"java", regexp.MustCompile(`\bjava\b([^s]|$)`)},
	{"csharp", regexp.MustCompile(`(c#|\bcsharp\b|\bc-sharp\b)`)},
	{"cpp", regexp.MustCompile(`(c\+\+|\bcpp\b|\bc plus plus\b)`)},
	{"typescript", regexp.MustCompile(`\b(typescript|ts)\b`)},
	{"react", regexp.MustCompile(`\b(react|react\.js|reactjs)\b`)},
	{"nodejs", regexp.MustCompile(`\b(node\.js|nodejs|node js)\b`)},
	{"vuejs", regexp.MustCompile(`\b(vue\.js|vue|vuejs)\b`)},
	{"angular", regexp.MustCompile(`\b(angular|angularjs)\b`)},
	{"django", regexp.MustCompile(`\bdjango\b`)},
	{"flask", regexp.MustCompile(`\bflask\b`)},
	{"express", regexp.MustCompile(`\b(express|express\.js|expressjs)\b`)},
	{"mongodb", regexp.MustCompile(`\b(mongodb|mongo)\b`)},
	{"postgresql", regexp.MustCompile(`\b(postgresql|postgres)\b`)},
	{"mysql", regexp.MustCompile(`\bmysql\b`)},
	{"sqlite", regexp.MustCompile(`\bsqlite\b`)},
	{"redis", regexp.MustCompile(`\bredis\b`)},
	{"git", regexp.MustCompile(`\bgit\b`)},
	{"docker", regexp.MustCompile(`\bdocker\b`)},
	{"kubernetes", regexp.MustCompile(`\b(kubernetes|k8s)\b`)},
	{"aws", regexp.MustCompile(`\b(aws|amazon web services)\b`)},
	{"azure", regexp.MustCompile(`\b(azure|microsoft azure)\b`)},
	{"gcp", regexp.MustCompile(`\b(gcp|google cloud|google cloud platform)\b`)},
	{"html", regexp.MustCompile(`\b(html|html5)\b`)},
	{"css", regexp.MustCompile(`\b(css|css3)\b`)},
	{"bootstrap", regexp.MustCompile(`\bbootstrap\b`)},
	{"tailwind", regexp.MustCompile(`\b(tailwind|tailwindcss)\b`)},
	{"sass", regexp.MustCompile(`\b(sass|scss)\b`)},
	{"sql", regexp.MustCompile(`\bsql\b`)},
	{"nosql", regexp.MustCompile(`\bnosql\b`)},
	{"rest-api", regexp.MustCompile(`\b(rest|rest api|rest apis|restful)\b`)},
	{"graphql", regexp.MustCompile(`\bgraphql\b`)},
	{"json", regexp.MustCompile(`\bjson\b`)},
	{"xml", regexp.MustCompile(`\bxml\b`)},
	{"pandas", regexp.MustCompile(`\bpandas\b`)},
	{"numpy", regexp.MustCompile(`\bnumpy\b`)},
	{"scikit-learn", regexp.MustCompile(`\b(scikit-learn|sklearn)\b`)},
	{"tensorflow", regexp.MustCompile(`\btensorflow\b`)},
	{"pytorch", regexp.MustCompile(`\bpytorch\b`)},
	{"machine-learning", regexp.MustCompile(`\b(machine learning|ml|machine-learning)\b`)},
	{"data-science", regexp.MustCompile(`\b(data science|data-science)\b`)},
	{"deep-learning", regexp.MustCompile(`\b(deep learning|deep-learning)\b`)},
	{"tableau", regexp.MustCompile(`\btableau\b`)},
	{"powerbi", regexp.MustCompile(`\b(power bi|powerbi|power-bi)\b`)},
	{"excel", regexp.MustCompile(`\b(excel|microsoft excel)\b`)},
	{"jupyter", regexp.MustCompile(`\b(jupyter|jupyter notebook|jupyter notebooks)\b`)},
	{"linux", regexp.MustCompile(`\b(linux|ubuntu|centos)\b`)},
	{"windows", regexp.MustCompile(`\bwindows\b`)},
	{"macos", regexp.MustCompile(`\b(macos|mac os)\b`)},
	{"bash", regexp.MustCompile(`\b(bash|shell scripting)\b`)},
	{"powershell", regexp.MustCompile(`\bpowershell\b`)},
	{"jira", regexp.MustCompile(`\bjira\b`)},
	{"confluence", regexp.MustCompile(`\bconfluence\b`)},
	{"slack", regexp.MustCompile(`\bslack\b`)},
	{"figma", regexp.MustCompile(`\bfigma\b`)},
	{"photoshop", regexp.MustCompile(`\b(photoshop|adobe photoshop)\b`)},
}

// listContextRe catches enumerations like "coded in: Python, Go" whose
// items the word-boundary patterns alone may miss in dense lists.
var listContextRe = regexp.MustCompile(
	`\b(programming languages?|languages?|coded?\s+in|built\s+with|using|experience\s+with)\s*:?\s*([a-zA-Z+#.,\s]+)`)

// FallbackExtract scans free text for known skills using the pattern
// table. It is deterministic, never fails, and caps the result at
// MaxSkills. Output order follows the pattern table.
func FallbackExtract(text string) []string {
	lower := strings.ToLower(text)

	var found []string
	seen := make(map[string]bool)

	add := func(id string) {
		if !seen[id] && len(found) < MaxSkills {
			seen[id] = true
			found = append(found, id)
		}
	}

	for _, p := range skillPatterns {
		if p.Re.MatchString(lower) {
			add(p.ID)
		}
	}

	// Second pass over list-like contexts.
	for _, m := range listContextRe.FindAllStringSubmatch(lower, -1) {
		segment := m[2]
		for _, p := range skillPatterns {
			if p.Re.MatchString(segment) {
				add(p.ID)
			}
		}
	}

	return found
}

// KnownSkills returns every canonical id in the pattern table.
func KnownSkills() []string {
	ids := make([]string, len(skillPatterns))
	for i, p := range skillPatterns {
		ids[i] = p.ID
	}
	return ids
}
