package interviewer

import (
	"bytes"
	"context"
	"encoding/json"
	"text/template"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/llm"
)

// FeedbackSchema defines the JSON schema for per-topic feedback responses.
var FeedbackSchema = &llm.Schema{
	Name:        "topic-feedback",
	Description: "Structured feedback on a candidate's performance on one interview topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"understanding": map[string]any{
				"type":        "string",
				"description": "Assessment of overall conceptual understanding and practical grasp",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"description": "2-3 concrete strengths with examples from the answers",
			},
			"improvements": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"description": "2-3 concrete gaps with examples from the answers",
			},
			"suggestions": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"description": "Specific study directions to close the gaps",
			},
		},
		"required":             []any{"understanding", "strengths", "improvements", "suggestions"},
		"additionalProperties": false,
	},
}

const feedbackSystemPrompt = `You are a technical interviewer for a junior developer position. Write detailed feedback on the candidate's performance for the topic you just covered.

Keep the tone positive and constructive:
1. For weak spots, focus on how to improve rather than what went wrong.
2. Keep study suggestions realistic for the candidate's current level.
3. Avoid harsh or dismissive judgments.`

var feedbackUserTemplate = template.Must(template.New("feedback").Parse(
	`Position: {{.Position}}
Topic: {{.Topic}}

Conversation:
{{.History}}`))

type feedbackOutput struct {
	Understanding string   `json:"understanding"`
	Strengths     []string `json:"strengths"`
	Improvements  []string `json:"improvements"`
	Suggestions   []string `json:"suggestions"`
}

// topicFeedback generates the structured feedback attached to a topic's
// concluding turn. Total: any failure degrades to a generic positive
// default rather than blocking the topic transition.
func (iv *Interviewer) topicFeedback(ctx context.Context, sess *interview.Session) *interview.Feedback {
	ctx = llm.WithPurpose(ctx, "topic-feedback")

	var buf bytes.Buffer
	err := feedbackUserTemplate.Execute(&buf, map[string]string{
		"Position": string(sess.Position),
		"Topic":    sess.CurrentTopic,
		"History":  interview.FormatHistory(sess.CurrentConversation()),
	})
	if err != nil {
		return fallbackFeedback()
	}

	resp, err := iv.provider.Generate(ctx, llm.Request{
		System: feedbackSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buf.String()},
		},
		Schema:      FeedbackSchema,
		MaxTokens:   iv.cfg.MaxTokens,
		Temperature: iv.cfg.Temperature,
	})
	if err != nil {
		return fallbackFeedback()
	}

	var out feedbackOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return fallbackFeedback()
	}
	if out.Understanding == "" || len(out.Strengths) == 0 ||
		len(out.Improvements) == 0 || len(out.Suggestions) == 0 {
		return fallbackFeedback()
	}

	return &interview.Feedback{
		Understanding: out.Understanding,
		Strengths:     out.Strengths,
		Improvements:  out.Improvements,
		Suggestions:   out.Suggestions,
	}
}

func fallbackFeedback() *interview.Feedback {
	return &interview.Feedback{
		Understanding: "You demonstrated a basic level of understanding.",
		Strengths:     []string{"You approached the questions with a sincere attitude."},
		Improvements:  []string{"More concrete examples would strengthen your answers."},
		Suggestions:   []string{"We recommend building hands-on experience in this area."},
	}
}
