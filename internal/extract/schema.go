package extract

import "github.com/abhisek/pathfinder/internal/llm"

// SkillListSchema defines the JSON schema for skill extraction responses.
var SkillListSchema = &llm.Schema{
	Name:        "skill-list",
	Description: "Technical and professional skills found in a resume",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"skills": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Skill identifiers, lowercase, hyphenated, e.g. \"machine-learning\"",
			},
		},
		"required":             []any{"skills"},
		"additionalProperties": false,
	},
}
