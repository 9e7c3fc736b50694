package pipeline

import "github.com/ritam/preptrail/internal/llm"

// RoadmapSchema defines the JSON schema for LLM roadmap generation responses.
var RoadmapSchema = &llm.Schema{
	Name:        "roadmap-plan",
	Description: "A week-by-week internship preparation plan",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"personalization_factors": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Short phrases describing how this plan was tailored to the student (e.g. 'beginner-friendly pacing', 'focus on backend roles')",
			},
			"weeks": map[string]any{
				"type":        "array",
				"description": "The ordered weekly plan, week_number ascending starting at 1",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"week_number": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"description": "1-based position of this week in the plan",
						},
						"theme": map[string]any{
							"type":        "string",
							"description": "Short title for the week (e.g. 'Data Structures Foundations')",
						},
						"focus_area": map[string]any{
							"type":        "string",
							"description": "The skill area this week concentrates on",
						},
						"tasks": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Concrete, checkable tasks for the week. 4 to 6 items.",
						},
						"estimated_hours": map[string]any{
							"type":        "number",
							"minimum":     1,
							"description": "Total effort estimate for the week in hours",
						},
						"deliverables": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Tangible outputs the student should have by the end of the week",
						},
						"resources": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Named learning resources (courses, books, sites). Plain names, no URLs required.",
						},
					},
					"required":             []any{"week_number", "theme", "focus_area", "tasks", "estimated_hours", "deliverables", "resources"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"personalization_factors", "weeks"},
		"additionalProperties": false,
	},
}
