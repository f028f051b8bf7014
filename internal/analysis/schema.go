package analysis

import "github.com/abhisek/intervu/internal/llm"

// AnalysisSchema defines the JSON schema for answer classification responses.
var AnalysisSchema = &llm.Schema{
	Name:        "answer-analysis",
	Description: "Classification of a candidate answer into the next interviewer action",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"action": map[string]any{
				"type":        "string",
				"enum":        []any{"FOLLOW_UP", "HINT", "CONCLUDE"},
				"description": "What the interviewer should do next: probe deeper, offer a hint, or close the topic",
			},
			"completion_score": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     5,
				"description": "How complete the answer was (1 = no real answer, 5 = thorough)",
			},
			"next_response": map[string]any{
				"type":        "string",
				"description": "The interviewer's next utterance, phrased naturally",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One short sentence of feedback on this specific answer",
			},
		},
		"required":             []any{"action", "completion_score", "next_response", "feedback"},
		"additionalProperties": false,
	},
}
