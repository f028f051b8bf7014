package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/llm"
)

// Action is the classifier's decision for what the interviewer does next.
type Action string

const (
	ActionFollowUp Action = "FOLLOW_UP"
	ActionHint     Action = "HINT"
	ActionConclude Action = "CONCLUDE"
)

// Analysis is the classification of a single candidate answer. It is
// ephemeral: the dialogue controller consumes it immediately and only its
// consequences (new turns, feedback) persist.
type Analysis struct {
	Action       Action
	Score        int // completion score, 1-5
	NextResponse string
	Feedback     string
}

// AnalyzerConfig holds configuration for the answer analyzer.
type AnalyzerConfig struct {
	MaxTokens   int
	Temperature float64
	// MaxDepth bounds follow-up questioning on a single topic. Once the
	// interviewer has asked this many questions, the next answer always
	// concludes the topic.
	MaxDepth int
	// WeakScore is the completion score at or below which probing stops
	// after the opening question.
	WeakScore int
}

// DefaultAnalyzerConfig returns sensible defaults.
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		MaxTokens:   512,
		Temperature: 0.7,
		MaxDepth:    3,
		WeakScore:   2,
	}
}

// Analyzer classifies candidate answers via the LLM. Analyze is a total
// function: any oracle or parse failure degrades to a deterministic
// conclude decision, never an error.
type Analyzer struct {
	provider llm.Provider
	cfg      AnalyzerConfig
}

// NewAnalyzer creates an answer analyzer.
func NewAnalyzer(provider llm.Provider, cfg AnalyzerConfig) *Analyzer {
	return &Analyzer{provider: provider, cfg: cfg}
}

// AnalysisRequest is the context for classifying one answer.
type AnalysisRequest struct {
	Position string
	Topic    string
	History  []interview.Turn
	Answer   string
}

// analysisOutput is the raw LLM response.
type analysisOutput struct {
	Action          string `json:"action"`
	CompletionScore int    `json:"completion_score"`
	NextResponse    string `json:"next_response"`
	Feedback        string `json:"feedback"`
}

// Depth counts the interviewer turns already issued in history, i.e. how
// many questions have been asked on this topic before the current answer.
func Depth(history []interview.Turn) int {
	n := 0
	for _, t := range history {
		if t.Role == interview.RoleInterviewer {
			n++
		}
	}
	return n
}

// Analyze classifies an answer and decides the interviewer's next action.
func (a *Analyzer) Analyze(ctx context.Context, req AnalysisRequest) Analysis {
	ctx = llm.WithPurpose(ctx, "answer-analysis")
	depth := Depth(req.History)

	result := a.classify(ctx, req)

	// Depth and weak-answer overrides keep any single topic bounded:
	// after MaxDepth questions, or a weak answer past the opener, the
	// topic closes with the feedback-bearing transition regardless of
	// what the model suggested.
	if depth >= a.cfg.MaxDepth || (result.Score <= a.cfg.WeakScore && depth >= 1) {
		result.Action = ActionConclude
		result.NextResponse = transitionResponse(result.Feedback)
	}
	return result
}

func (a *Analyzer) classify(ctx context.Context, req AnalysisRequest) Analysis {
	userMsg, err := buildAnalysisMessage(req)
	if err != nil {
		return fallbackAnalysis()
	}

	llmReq := llm.Request{
		System: analysisSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      AnalysisSchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	}

	resp, err := a.provider.Generate(ctx, llmReq)
	if err != nil {
		return fallbackAnalysis()
	}

	var raw analysisOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return fallbackAnalysis()
	}

	action := Action(raw.Action)
	switch action {
	case ActionFollowUp, ActionHint, ActionConclude:
	default:
		return fallbackAnalysis()
	}
	if raw.CompletionScore < 1 || raw.CompletionScore > 5 {
		return fallbackAnalysis()
	}
	if raw.NextResponse == "" {
		return fallbackAnalysis()
	}

	return Analysis{
		Action:       action,
		Score:        raw.CompletionScore,
		NextResponse: raw.NextResponse,
		Feedback:     raw.Feedback,
	}
}

const (
	fallbackClosing  = "Understood, thank you. Let's move on to the next topic."
	fallbackFeedback = "You engaged with the question sincerely."
)

// fallbackAnalysis is the deterministic default when the oracle fails or
// returns something unusable: close the topic politely with a neutral score.
func fallbackAnalysis() Analysis {
	return Analysis{
		Action:       ActionConclude,
		Score:        3,
		NextResponse: fallbackClosing,
		Feedback:     fallbackFeedback,
	}
}

// transitionResponse rewrites the interviewer's utterance when an override
// forces a topic to close, carrying the per-answer feedback along.
func transitionResponse(feedback string) string {
	if feedback == "" {
		return fallbackClosing
	}
	return fmt.Sprintf("Thank you for your answer. %s Let's move on to the next topic.", feedback)
}

const analysisSystemPrompt = `You are a technical interviewer for a junior developer position. Analyze the candidate's latest answer and decide your next action.

Guidelines:
- If the answer is clear and solid: ask a deeper follow-up, or ask for a concrete example or hands-on experience (action FOLLOW_UP).
- If the answer is vague or incomplete: offer a hint or gentle guidance once to give them a chance (action HINT).
- If the answer shows they don't know, or the thread is exhausted: wrap up gracefully with positive framing and move on (action CONCLUDE).
- Score completeness 1-5 where 1 means no real answer and 5 means thorough with examples.
- next_response is what you would actually say next, in a natural conversational tone.
- feedback is one short sentence about this specific answer.`

var analysisUserTemplate = template.Must(template.New("analysis").Parse(`Position: {{.Position}}
Topic: {{.Topic}}

Conversation so far:
{{.History}}

Candidate's answer: {{.Answer}}`))

func buildAnalysisMessage(req AnalysisRequest) (string, error) {
	data := struct {
		Position string
		Topic    string
		History  string
		Answer   string
	}{
		Position: req.Position,
		Topic:    req.Topic,
		History:  interview.FormatHistory(req.History),
		Answer:   req.Answer,
	}
	var buf bytes.Buffer
	if err := analysisUserTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
