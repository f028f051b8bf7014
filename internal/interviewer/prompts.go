package interviewer

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/llm"
	"github.com/abhisek/intervu/internal/report"
)

const insufficientDataMessage = `The interview didn't get going, or no answers were recorded.

To get useful feedback:
1. Answer the interviewer's questions.
2. Include concrete examples or experience in your answers.
3. Work through several topics.

Would you like to try the interview again?`

const evaluationFallback = "We could not generate the evaluation. Please try again later."

const openingSystemPrompt = `You are a technical interviewer for a junior developer position. Open a new interview topic with a single question.

The question must:
1. Suit a junior developer's level.
2. Check fundamentals while leaving room to surface hands-on experience.
3. Be open-ended so it can develop into follow-ups.
4. Sound like something an interviewer would naturally say.`

var openingUserTemplate = template.Must(template.New("opening").Parse(
	`Position: {{.Position}}
Topic: {{.Topic}}

Ask your opening question for this topic.`))

// openingQuestion generates the first question for a topic, degrading to
// a generic prompt when the model is unavailable.
func (iv *Interviewer) openingQuestion(ctx context.Context, position interview.Position, topic string) string {
	ctx = llm.WithPurpose(ctx, "topic-start")

	text, err := iv.generateText(ctx, openingSystemPrompt, openingUserTemplate, map[string]string{
		"Position": string(position),
		"Topic":    topic,
	})
	if err != nil || text == "" {
		return fmt.Sprintf("Could you explain %s?", topic)
	}
	return text
}

const refreshSystemPrompt = `You are a technical interviewer for a junior developer position. The candidate asked for a different question on the same topic.

Ask exactly one new question that:
1. Suits a junior developer's level.
2. Takes a fresh angle, not overlapping the earlier questions.
3. Can surface hands-on experience.
4. Sounds natural and conversational.`

var refreshUserTemplate = template.Must(template.New("refresh").Parse(
	`Position: {{.Position}}
Topic: {{.Topic}}

Earlier questions on this topic:
{{.History}}

Ask one different question.`))

// refreshQuestion generates a replacement question that avoids the
// discarded conversation's ground.
func (iv *Interviewer) refreshQuestion(ctx context.Context, position interview.Position, topic string, history []interview.Turn) string {
	ctx = llm.WithPurpose(ctx, "topic-start")

	text, err := iv.generateText(ctx, refreshSystemPrompt, refreshUserTemplate, map[string]string{
		"Position": string(position),
		"Topic":    topic,
		"History":  interview.FormatHistory(history),
	})
	if err != nil || text == "" {
		return fmt.Sprintf("Shall we look at %s from a different angle?", topic)
	}
	return text
}

const finalEvaluationSystemPrompt = `You are a technical interviewer for a junior developer position. Write an objective final evaluation of the candidate, grounded strictly in the conversation you are given.

Rules:
1. Evaluate only what actually came up in the conversation.
2. Point out clearly where answers fell short.
3. Name the strengths the candidate demonstrated, with specifics.
4. Suggest improvements based on the actual answers.
5. Neither inflate nor undersell the performance.`

const celebratoryGuidance = `The candidate handled most topics well. Lead with what they did right and frame the evaluation around building on those strengths.`

var finalEvaluationUserTemplate = template.Must(template.New("final").Parse(
	`Position: {{.Position}}
Topics covered: {{.Topics}}
{{if .Guidance}}
{{.Guidance}}
{{end}}
Conversation:
{{.History}}`))

// finalEvaluationText asks for the holistic evaluation, adjusting the
// framing to the chosen strategy. Total: failures return a fixed message.
func (iv *Interviewer) finalEvaluationText(ctx context.Context, sess *interview.Session, strategy report.Strategy) string {
	ctx = llm.WithPurpose(ctx, "final-evaluation")

	guidance := ""
	if strategy == report.StrategyCelebratory {
		guidance = celebratoryGuidance
	}

	text, err := iv.generateText(ctx, finalEvaluationSystemPrompt, finalEvaluationUserTemplate, map[string]string{
		"Position": string(sess.Position),
		"Topics":   joinTopics(sess.CompletedTopics),
		"Guidance": guidance,
		"History":  interview.FormatHistory(sess.AllConversations()),
	})
	if err != nil || text == "" {
		return evaluationFallback
	}
	return text
}

func joinTopics(topics []string) string {
	if len(topics) == 0 {
		return "none"
	}
	out := topics[0]
	for _, t := range topics[1:] {
		out += ", " + t
	}
	return out
}

// generateText runs a schemaless free-text generation.
func (iv *Interviewer) generateText(ctx context.Context, system string, tmpl *template.Template, data map[string]string) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	resp, err := iv.provider.Generate(ctx, llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buf.String()},
		},
		MaxTokens:   iv.cfg.MaxTokens,
		Temperature: iv.cfg.Temperature,
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
