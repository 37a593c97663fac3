// Package courses holds the curated skill→course lookup data and the
// string heuristics that turn a raw course entry into display fields.
package courses

import "strings"

// Course strings follow the convention "Title - Platform (extra info)".
var catalog = map[string][]string{
	"python": {
		"Python for Everybody - Coursera (University of Michigan)",
		"Complete Python Bootcamp - Udemy",
		"Scientific Computing with Python - freeCodeCamp",
		"Python Essential Training - LinkedIn Learning",
		"Intro to Python for Data Science - DataCamp",
		"Python Tutorial for Beginners - YouTube (full course)",
	},
	"sql": {
		"Introduction to SQL - Coursera",
		"The Complete SQL Bootcamp - Udemy",
		"Introduction to SQL - DataCamp",
		"SQL Tutorial - W3Schools",
		"SQL Full Database Course - YouTube",
	},
	"statistics": {
		"Inferential Statistics Intro - Coursera",
		"AP Statistics - Khan Academy",
		"Statistical Thinking in Python - DataCamp",
	},
	"machine-learning": {
		"Machine Learning Specialization - Coursera (Andrew Ng)",
		"Machine Learning A-Z - Udemy",
		"Machine Learning Crash Course - Google",
		"Machine Learning with Python - freeCodeCamp",
	},
	"pandas": {
		"Data Manipulation with pandas - DataCamp",
		"Data Analysis with Python - freeCodeCamp",
	},
	"numpy": {
		"Introduction to NumPy - DataCamp",
	},
	"scikit-learn": {
		"Supervised Learning with scikit-learn - DataCamp",
	},
	"data-visualization": {
		"Data Visualization with Matplotlib - DataCamp",
		"Data Visualization - Tableau (free training)",
	},
	"data-science": {
		"Data Science Specialization - Coursera (Johns Hopkins)",
		"The Data Science Course - Udemy (complete bootcamp)",
		"MITx Statistics and Data Science - edX",
	},
	"deep-learning": {
		"Deep Learning Specialization - Coursera",
		"Practical Deep Learning - fast.ai",
	},
	"tensorflow": {
		"TensorFlow in Practice - Coursera (professional certificate)",
		"Complete TensorFlow 2 and Keras - Udemy",
	},
	"pytorch": {
		"PyTorch for Deep Learning - Udemy",
		"PyTorch Basics - Official Documentation",
	},
	"javascript": {
		"The Complete JavaScript Course - Udemy",
		"JavaScript Algorithms and Data Structures - freeCodeCamp",
		"JavaScript Tutorial - W3Schools",
	},
	"typescript": {
		"Understanding TypeScript - Udemy",
		"TypeScript Handbook - Official Documentation",
	},
	"react": {
		"React The Complete Guide - Udemy (incl. Redux)",
		"React Tutorial - W3Schools",
		"React Course - YouTube (beginner's tutorial)",
	},
	"nodejs": {
		"The Complete Node.js Developer Course - Udemy",
		"Node.js Tutorial - W3Schools",
		"Back End Development and APIs - freeCodeCamp",
	},
	"html": {
		"Responsive Web Design - freeCodeCamp",
		"HTML Tutorial - W3Schools",
	},
	"css": {
		"CSS Tutorial - W3Schools",
		"Responsive Web Design - freeCodeCamp",
	},
	"git": {
		"Git Complete - Udemy",
		"Learn Git Branching - Tutorial (interactive)",
	},
	"docker": {
		"Docker Mastery - Udemy",
		"Docker Container Basics - Coursera (guided project)",
		"Docker Tutorial for Beginners - YouTube",
	},
	"kubernetes": {
		"Learn Kubernetes - Udemy",
		"Google Kubernetes Engine - Coursera",
		"Kubernetes Basics - Official Documentation",
	},
	"aws": {
		"AWS Cloud Technical Essentials - Coursera",
		"AWS Certified Solutions Architect Associate - Udemy",
		"AWS Tutorial for Beginners - YouTube",
	},
	"azure": {
		"Microsoft Azure Fundamentals AZ-900 - Coursera",
		"Azure Fundamentals - Microsoft Learn",
	},
	"gcp": {
		"Google Cloud Fundamentals - Coursera",
		"Cloud Training - Google",
	},
	"linux": {
		"Linux Mastery - Udemy",
		"Linux Journey - Tutorial",
		"Linux Tutorial for Beginners - YouTube",
	},
	"bash": {
		"Bash Scripting and Shell Programming - Udemy",
	},
	"terraform": {
		"Terraform Beginner to Advanced - Udemy",
	},
	"jenkins": {
		"Jenkins From Zero to Hero - Udemy",
	},
	"ci-cd": {
		"CI/CD with Jenkins and Docker - Udemy",
		"DevOps Culture and Mindset - Coursera",
	},
	"ansible": {
		"Ansible for the Absolute Beginner - Udemy",
	},
	"monitoring": {
		"Monitoring and Observability - Coursera",
	},
	"networking": {
		"Computer Networking - Coursera",
		"Complete Networking Fundamentals CCNA - Udemy",
	},
	"security": {
		"Google Cybersecurity - Coursera (professional certificate)",
		"The Complete Cyber Security Course - Udemy",
		"Cybersecurity Fundamentals - edX",
	},
	"mongodb": {
		"MongoDB University - Official (free courses)",
	},
	"agile": {
		"Agile Development and Scrum - Coursera",
	},
	"product-strategy": {
		"Real-World Product Management - Coursera",
		"Product Management 101 - Product School",
	},
	"excel": {
		"Excel Skills for Business - Coursera",
	},
	"tableau": {
		"Data Visualization with Tableau - Coursera",
	},
}

// Candidates returns the curated course strings for a skill, matched
// case-insensitively and capped at max. Returns nil when the skill has
// no curated entry.
func Candidates(skill string, max int) []string {
	lower := strings.ToLower(skill)
	for key, list := range catalog {
		if strings.ToLower(key) == lower {
			if max > 0 && len(list) > max {
				list = list[:max]
			}
			out := make([]string, len(list))
			copy(out, list)
			return out
		}
	}
	return nil
}

// Skills returns all skill ids with curated course entries.
func Skills() []string {
	out := make([]string, 0, len(catalog))
	for k := range catalog {
		out = append(out, k)
	}
	return out
}
