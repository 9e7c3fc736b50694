package topics

import "github.com/ritam/preptrail/internal/llm"

// TopicSchema defines the JSON schema for LLM topic explanation responses.
var TopicSchema = &llm.Schema{
	Name:        "topic-detail",
	Description: "An explanation of a single preparation topic with follow-up material",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type":        "string",
				"description": "A clear explanation of the topic in 4-8 sentences, pitched at the student's level",
			},
			"resources": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "2-4 named learning resources for going deeper. Plain names, no URLs required.",
			},
			"subtasks": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "2-5 small concrete exercises to practice the topic",
			},
		},
		"required":             []any{"explanation", "resources", "subtasks"},
		"additionalProperties": false,
	},
}
