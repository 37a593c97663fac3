package courses

import (
	"net/url"
	"strings"
)

// urlRule maps a title substring to a known course URL. Rules are
// configuration data: checked in order, first match wins.
type urlRule struct {
	pattern string
	url     string
}

// platformRules holds per-platform rule lists plus a search-URL
// template used when no rule matches. %s receives the escaped title.
type platformRules struct {
	keyword   string
	rules     []urlRule
	searchURL string
}

var platforms = []platformRules{
	{
		keyword: "coursera",
		rules: []urlRule{
			{"python", "https://www.coursera.org/learn/python-crash-course"},
			{"machine learning", "https://www.coursera.org/specializations/machine-learning-introduction"},
			{"data science", "https://www.coursera.org/specializations/data-science-python"},
			{"statistics", "https://www.coursera.org/learn/inferential-statistics-intro"},
			{"sql", "https://www.coursera.org/learn/intro-sql"},
			{"deep learning", "https://www.coursera.org/specializations/deep-learning"},
			{"tensorflow", "https://www.coursera.org/professional-certificates/tensorflow-in-practice"},
			{"docker", "https://www.coursera.org/projects/docker-container-basics"},
			{"kubernetes", "https://www.coursera.org/learn/google-kubernetes-engine"},
			{"aws", "https://www.coursera.org/learn/aws-cloud-technical-essentials"},
			{"azure", "https://www.coursera.org/learn/microsoft-azure-fundamentals-az-900"},
			{"cybersecurity", "https://www.coursera.org/professional-certificates/google-cybersecurity"},
			{"networking", "https://www.coursera.org/learn/computer-networking"},
			{"product", "https://www.coursera.org/specializations/real-world-product-management"},
			{"agile", "https://www.coursera.org/learn/agile-development-scrum"},
		},
		searchURL: "https://www.coursera.org/search?query=%s",
	},
	{
		keyword: "udemy",
		rules: []urlRule{
			{"python", "https://www.udemy.com/course/complete-python-bootcamp/"},
			{"machine learning", "https://www.udemy.com/course/machinelearning/"},
			{"data science", "https://www.udemy.com/course/the-data-science-course-complete-data-science-bootcamp/"},
			{"sql", "https://www.udemy.com/course/the-complete-sql-bootcamp/"},
			{"docker", "https://www.udemy.com/course/docker-mastery/"},
			{"kubernetes", "https://www.udemy.com/course/learn-kubernetes/"},
			{"aws", "https://www.udemy.com/course/aws-certified-solutions-architect-associate/"},
			{"azure", "https://www.udemy.com/course/microsoft-azure-administrator-az-104/"},
			{"javascript", "https://www.udemy.com/course/the-complete-javascript-course/"},
			{"react", "https://www.udemy.com/course/react-the-complete-guide-incl-redux/"},
			{"node", "https://www.udemy.com/course/the-complete-nodejs-developer-course-2/"},
			{"tensorflow", "https://www.udemy.com/course/complete-tensorflow-2-and-keras-deep-learning-bootcamp/"},
			{"pytorch", "https://www.udemy.com/course/pytorch-for-deep-learning-with-python-bootcamp/"},
			{"cyber", "https://www.udemy.com/course/the-complete-cyber-security-course-hackers-exposed/"},
			{"networking", "https://www.udemy.com/course/complete-networking-fundamentals-course-ccna-start/"},
			{"linux", "https://www.udemy.com/course/linux-mastery/"},
			{"git", "https://www.udemy.com/course/git-complete/"},
			{"terraform", "https://www.udemy.com/course/terraform-beginner-to-advanced/"},
		},
		searchURL: "https://www.udemy.com/courses/search/?q=%s",
	},
	{
		keyword: "khan academy",
		rules: []urlRule{
			{"statistics", "https://www.khanacademy.org/math/ap-statistics"},
			{"calculus", "https://www.khanacademy.org/math/calculus-1"},
			{"algebra", "https://www.khanacademy.org/math/algebra"},
			{"probability", "https://www.khanacademy.org/math/statistics-probability"},
		},
		searchURL: "https://www.khanacademy.org/search?page_search_query=%s",
	},
	{
		keyword: "edx",
		rules: []urlRule{
			{"python", "https://www.edx.org/course/introduction-to-python-programming"},
			{"data science", "https://www.edx.org/micromasters/mitx-statistics-and-data-science"},
			{"machine learning", "https://www.edx.org/course/machine-learning"},
			{"aws", "https://www.edx.org/course/introduction-to-cloud-infrastructure-technologies"},
			{"cybersecurity", "https://www.edx.org/course/cybersecurity-fundamentals"},
		},
		searchURL: "https://www.edx.org/search?q=%s",
	},
	{
		keyword: "youtube",
		rules: []urlRule{
			{"python", "https://www.youtube.com/watch?v=_uQrJ0TkZlc"},
			{"machine learning", "https://www.youtube.com/watch?v=Gv9_4yMHFhI"},
			{"sql", "https://www.youtube.com/watch?v=HXV3zeQKqGY"},
			{"docker", "https://www.youtube.com/watch?v=fqMOX6JJhGo"},
			{"kubernetes", "https://www.youtube.com/watch?v=X48VuDVv0do"},
			{"javascript", "https://www.youtube.com/watch?v=PkZNo7MFNFg"},
			{"react", "https://www.youtube.com/watch?v=bMknfKXIFA8"},
			{"aws", "https://www.youtube.com/watch?v=3hLmDS179YE"},
			{"linux", "https://www.youtube.com/watch?v=sWbUDq4S6Y8"},
		},
		searchURL: "https://www.youtube.com/results?search_query=%s",
	},
	{
		keyword: "freecodecamp",
		rules: []urlRule{
			{"python", "https://www.freecodecamp.org/learn/scientific-computing-with-python/"},
			{"javascript", "https://www.freecodecamp.org/learn/javascript-algorithms-and-data-structures/"},
			{"data", "https://www.freecodecamp.org/learn/data-analysis-with-python/"},
			{"machine learning", "https://www.freecodecamp.org/learn/machine-learning-with-python/"},
			{"responsive web", "https://www.freecodecamp.org/learn/responsive-web-design/"},
			{"apis", "https://www.freecodecamp.org/learn/back-end-development-and-apis/"},
		},
		searchURL: "https://www.freecodecamp.org/news/search/?query=%s",
	},
	{
		keyword: "datacamp",
		rules: []urlRule{
			{"python", "https://www.datacamp.com/courses/intro-to-python-for-data-science"},
			{"sql", "https://www.datacamp.com/courses/introduction-to-sql"},
			{"machine learning", "https://www.datacamp.com/courses/supervised-learning-with-scikit-learn"},
			{"pandas", "https://www.datacamp.com/courses/data-manipulation-with-pandas"},
			{"numpy", "https://www.datacamp.com/courses/introduction-to-numpy"},
			{"statistics", "https://www.datacamp.com/courses/statistical-thinking-in-python-part-1"},
		},
		searchURL: "https://www.datacamp.com/search?q=%s",
	},
	{
		keyword: "w3schools",
		rules: []urlRule{
			{"python", "https://www.w3schools.com/python/default.asp"},
			{"javascript", "https://www.w3schools.com/js/default.asp"},
			{"html", "https://www.w3schools.com/html/default.asp"},
			{"css", "https://www.w3schools.com/css/default.asp"},
			{"sql", "https://www.w3schools.com/sql/default.asp"},
			{"react", "https://www.w3schools.com/react/default.asp"},
			{"node", "https://www.w3schools.com/nodejs/default.asp"},
		},
		searchURL: "https://www.w3schools.com/search/search.asp?q=%s",
	},
	{
		keyword: "microsoft learn",
		rules: []urlRule{
			{"azure", "https://docs.microsoft.com/en-us/learn/paths/azure-fundamentals/"},
			{"python", "https://docs.microsoft.com/en-us/learn/paths/beginner-python/"},
		},
		searchURL: "https://docs.microsoft.com/en-us/learn/search/?terms=%s",
	},
	{
		keyword: "google",
		rules: []urlRule{
			{"machine learning", "https://developers.google.com/machine-learning/crash-course"},
			{"tensorflow", "https://www.tensorflow.org/learn"},
			{"cloud", "https://cloud.google.com/training/courses"},
		},
		searchURL: "https://developers.google.com/search/results?q=%s",
	},
	{
		keyword: "linkedin learning",
		rules: []urlRule{
			{"python", "https://www.linkedin.com/learning/python-essential-training-2"},
			{"data science", "https://www.linkedin.com/learning/data-science-foundations-fundamentals-5"},
		},
		searchURL: "https://www.linkedin.com/learning/search?keywords=%s",
	},
}

// genericRules apply when no platform matched: well-known free
// starting points keyed by skill words in the title.
var genericRules = []urlRule{
	{"python", "https://www.python.org/about/gettingstarted/"},
	{"machine learning", "https://www.coursera.org/specializations/machine-learning-introduction"},
	{"data science", "https://www.kaggle.com/learn/intro-to-machine-learning"},
	{"sql", "https://sqlbolt.com/"},
	{"docker", "https://docs.docker.com/get-started/"},
	{"kubernetes", "https://kubernetes.io/docs/tutorials/kubernetes-basics/"},
	{"git", "https://learngitbranching.js.org/"},
	{"linux", "https://linuxjourney.com/"},
	{"javascript", "https://javascript.info/"},
	{"react", "https://react.dev/learn"},
	{"node", "https://nodejs.org/en/learn/getting-started/introduction-to-nodejs"},
	{"aws", "https://aws.amazon.com/getting-started/"},
	{"azure", "https://docs.microsoft.com/en-us/learn/azure/"},
	{"tensorflow", "https://www.tensorflow.org/tutorials"},
	{"pytorch", "https://pytorch.org/tutorials/beginner/basics/intro.html"},
	{"security", "https://www.cybrary.it/course/comptia-security-plus"},
	{"networking", "https://www.cisco.com/c/en/us/training-events/training-certifications/certifications/associate/ccna.html"},
	{"agile", "https://www.scrum.org/learning-series/what-is-scrum"},
	{"product", "https://www.productschool.com/product-management-101/"},
}

// URLFor resolves a course URL from the platform rule tables. Falls
// back to generic skill rules, then to a web search for the title.
func URLFor(title, platform string) string {
	titleLower := strings.ToLower(title)
	platformLower := strings.ToLower(platform)

	for _, p := range platforms {
		if !strings.Contains(platformLower, p.keyword) {
			continue
		}
		for _, r := range p.rules {
			if strings.Contains(titleLower, r.pattern) {
				return r.url
			}
		}
		return strings.Replace(p.searchURL, "%s", url.QueryEscape(title), 1)
	}

	for _, r := range genericRules {
		if strings.Contains(titleLower, r.pattern) {
			return r.url
		}
	}

	return "https://www.google.com/search?q=" + url.QueryEscape(`"`+title+`" "online course"`)
}
