package roles

// catalog is the hand-curated role profile data. Requirement order
// within each category doubles as the learning-priority ranking used
// by the readiness report.
var catalog = []Profile{
	{
		Key:  "devops-engineer",
		Name: "DevOps Engineer",
		Core: []Requirement{
			req("linux", 3, WeightCore),
			req("docker", 3, WeightCore),
			req("kubernetes", 2, WeightCore),
			req("git", 3, WeightCore),
			req("ci-cd", 3, WeightCore),
			req("jenkins", 2, WeightCore),
			req("terraform", 2, WeightCore),
			req("aws", 2, WeightCore),
			req("bash", 2, WeightCore),
			req("monitoring", 2, WeightCore),
		},
		Other: []Requirement{
			req("ansible", 2, WeightOther),
			req("python", 2, WeightOther),
			req("azure", 2, WeightOther),
		},
		Soft: []Requirement{
			req("collaboration", 2, WeightSoft),
			req("problem-solving", 2, WeightSoft),
		},
	},
	{
		Key:  "data-scientist",
		Name: "Data Scientist",
		Core: []Requirement{
			req("python", 3, WeightCore),
			req("sql", 3, WeightCore),
			req("statistics", 3, WeightCore),
			req("machine-learning", 3, WeightCore),
			req("pandas", 3, WeightCore),
			req("numpy", 2, WeightCore),
			req("scikit-learn", 2, WeightCore),
			req("data-visualization", 2, WeightCore),
		},
		Other: []Requirement{
			req("jupyter", 2, WeightOther),
			req("tensorflow", 2, WeightOther),
			req("pytorch", 2, WeightOther),
			req("deep-learning", 2, WeightOther),
			req("r", 2, WeightOther),
		},
		Soft: []Requirement{
			req("analytical-thinking", 3, WeightSoft),
			req("communication", 2, WeightSoft),
		},
	},
	{
		Key:  "full-stack-developer",
		Name: "Full Stack Developer",
		Core: []Requirement{
			req("javascript", 3, WeightCore),
			req("html", 3, WeightCore),
			req("css", 3, WeightCore),
			req("react", 3, WeightCore),
			req("nodejs", 3, WeightCore),
			req("sql", 2, WeightCore),
			req("git", 2, WeightCore),
			req("rest-api", 2, WeightCore),
		},
		Other: []Requirement{
			req("express", 2, WeightOther),
			req("mongodb", 2, WeightOther),
			req("docker", 2, WeightOther),
			req("aws", 2, WeightOther),
		},
		Soft: []Requirement{
			req("problem-solving", 3, WeightSoft),
			req("creativity", 2, WeightSoft),
		},
	},
	{
		Key:  "ml-engineer",
		Name: "ML Engineer",
		Core: []Requirement{
			req("python", 3, WeightCore),
			req("machine-learning", 3, WeightCore),
			req("tensorflow", 3, WeightCore),
			req("pytorch", 2, WeightCore),
			req("deep-learning", 3, WeightCore),
			req("docker", 2, WeightCore),
			req("sql", 2, WeightCore),
			req("git", 2, WeightCore),
		},
		Other: []Requirement{
			req("kubernetes", 2, WeightOther),
			req("linux", 2, WeightOther),
			req("aws", 2, WeightOther),
			req("mlops", 2, WeightOther),
		},
		Soft: []Requirement{
			req("analytical-thinking", 3, WeightSoft),
			req("collaboration", 2, WeightSoft),
		},
	},
	{
		Key:  "ai-engineer",
		Name: "AI Engineer",
		Core: []Requirement{
			req("python", 3, WeightCore),
			req("deep-learning", 3, WeightCore),
			req("tensorflow", 3, WeightCore),
			req("pytorch", 2, WeightCore),
			req("machine-learning", 3, WeightCore),
			req("neural-networks", 3, WeightCore),
			req("computer-vision", 2, WeightCore),
			req("nlp", 2, WeightCore),
		},
		Other: []Requirement{
			req("transformers", 2, WeightOther),
			req("llm", 2, WeightOther),
			req("hugging-face", 2, WeightOther),
			req("gpu-computing", 2, WeightOther),
		},
		Soft: []Requirement{
			req("research-skills", 3, WeightSoft),
			req("innovation", 2, WeightSoft),
		},
	},
	{
		Key:  "cloud-architect",
		Name: "Cloud Architect",
		Core: []Requirement{
			req("aws", 3, WeightCore),
			req("azure", 2, WeightCore),
			req("docker", 3, WeightCore),
			req("kubernetes", 3, WeightCore),
			req("terraform", 2, WeightCore),
			req("linux", 3, WeightCore),
			req("networking", 2, WeightCore),
			req("security", 2, WeightCore),
			req("monitoring", 2, WeightCore),
		},
		Other: []Requirement{
			req("gcp", 2, WeightOther),
			req("ansible", 2, WeightOther),
			req("jenkins", 2, WeightOther),
			req("python", 2, WeightOther),
		},
		Soft: []Requirement{
			req("system-design", 3, WeightSoft),
			req("leadership", 2, WeightSoft),
		},
	},
	{
		Key:  "cybersecurity-analyst",
		Name: "Cybersecurity Analyst",
		Core: []Requirement{
			req("security", 3, WeightCore),
			req("networking", 3, WeightCore),
			req("linux", 2, WeightCore),
			req("windows", 2, WeightCore),
			req("incident-response", 2, WeightCore),
			req("vulnerability-assessment", 2, WeightCore),
			req("penetration-testing", 2, WeightCore),
			req("siem", 2, WeightCore),
		},
		Other: []Requirement{
			req("python", 2, WeightOther),
			req("powershell", 2, WeightOther),
			req("forensics", 2, WeightOther),
			req("compliance", 2, WeightOther),
		},
		Soft: []Requirement{
			req("attention-to-detail", 3, WeightSoft),
			req("critical-thinking", 3, WeightSoft),
		},
	},
	{
		Key:  "product-manager",
		Name: "Product Manager",
		Core: []Requirement{
			req("product-strategy", 3, WeightCore),
			req("user-research", 3, WeightCore),
			req("data-analysis", 2, WeightCore),
			req("agile", 3, WeightCore),
			req("roadmapping", 3, WeightCore),
			req("market-research", 2, WeightCore),
			req("stakeholder-management", 3, WeightCore),
		},
		Other: []Requirement{
			req("sql", 2, WeightOther),
			req("analytics-tools", 2, WeightOther),
			req("wireframing", 2, WeightOther),
			req("a-b-testing", 2, WeightOther),
		},
		Soft: []Requirement{
			req("communication", 3, WeightSoft),
			req("leadership", 3, WeightSoft),
			req("empathy", 2, WeightSoft),
		},
	},
}
