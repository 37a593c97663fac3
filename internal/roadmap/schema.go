package roadmap

import "github.com/abhisek/pathfinder/internal/llm"

// RoadmapSchema defines the JSON schema for roadmap generation
// responses.
var RoadmapSchema = &llm.Schema{
	Name:        "learning-roadmap",
	Description: "A phased learning plan with per-step course picks and hour estimates",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"roadmap": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"phase": map[string]any{
							"type":        "string",
							"description": "Phase label, e.g. \"Phase 1: Foundation\"",
						},
						"skills": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"skill": map[string]any{
										"type": "string",
									},
									"course": map[string]any{
										"type":        "string",
										"description": "Course pick as \"Title - Platform\"",
									},
									"reason": map[string]any{
										"type":        "string",
										"description": "Why this step, at most 10 words",
									},
									"est_hours": map[string]any{
										"type":        "integer",
										"description": "Estimated learning hours",
									},
								},
								"required": []any{"skill", "course", "reason", "est_hours"},
							},
						},
					},
					"required": []any{"phase", "skills"},
				},
			},
		},
		"required":             []any{"roadmap"},
		"additionalProperties": false,
	},
}
