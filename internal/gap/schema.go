package gap

import "github.com/abhisek/pathfinder/internal/llm"

// GapSchema defines the JSON schema for gap analysis responses where
// the model produces both lists (roles without a curated profile).
var GapSchema = &llm.Schema{
	Name:        "skill-gap",
	Description: "Missing and complementary skills for a target role",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"missing_skills": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Required skills the candidate does not have, alphabetical",
			},
			"nice_to_have": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Complementary skills worth learning, alphabetical, at most 10",
			},
		},
		"required":             []any{"missing_skills", "nice_to_have"},
		"additionalProperties": false,
	},
}

// NiceToHaveSchema covers the curated path, where missing skills are
// computed locally and only the complementary list comes from the model.
var NiceToHaveSchema = &llm.Schema{
	Name:        "nice-to-have",
	Description: "Complementary skills beyond the role's required set",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"nice_to_have": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Complementary skills worth learning, alphabetical, at most 10",
			},
		},
		"required":             []any{"nice_to_have"},
		"additionalProperties": false,
	},
}
