// Package interviewer drives a full interview over a session: topic
// sequencing, per-answer turn handling, and finalization. The Interviewer
// itself is stateless; all interview state lives on the Session it is
// handed.
package interviewer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/intervu/internal/analysis"
	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/limits"
	"github.com/abhisek/intervu/internal/llm"
	"github.com/abhisek/intervu/internal/report"
	"github.com/abhisek/intervu/internal/store"
)

// ErrNotComplete is returned when finalization is requested before the
// interview reached its terminal state.
var ErrNotComplete = errors.New("interview not complete")

// Config holds the interviewer's tunables.
type Config struct {
	MaxTokens   int
	Temperature float64
	// ValidateEnd gates ending the interview early: when set, at least
	// one topic must be completed and every completed topic must carry
	// a non-empty candidate answer.
	ValidateEnd bool

	Limits   limits.Limits
	Analyzer analysis.AnalyzerConfig
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
		ValidateEnd: true,
		Limits:      limits.Default(),
		Analyzer:    analysis.DefaultAnalyzerConfig(),
	}
}

// Interviewer orchestrates the session state machine and the answer
// analyzer. Events may be nil; persistence is then skipped.
type Interviewer struct {
	provider llm.Provider
	analyzer *analysis.Analyzer
	events   store.EventRepo
	cfg      Config
}

// New creates an interviewer on top of an LLM provider.
func New(provider llm.Provider, events store.EventRepo, cfg Config) *Interviewer {
	return &Interviewer{
		provider: provider,
		analyzer: analysis.NewAnalyzer(provider, cfg.Analyzer),
		events:   events,
		cfg:      cfg,
	}
}

// StartInterview creates a fresh session for the position and records
// the start event.
func (iv *Interviewer) StartInterview(ctx context.Context, position interview.Position) (*interview.Session, error) {
	if !position.Valid() {
		return nil, fmt.Errorf("unknown position %q", position)
	}
	sess := interview.NewSession(position)
	iv.appendInterviewEvent(ctx, sess, store.ActionStart)
	return sess, nil
}

// TopicStart is the outcome of advancing to the next topic.
type TopicStart struct {
	Topic    string
	Question string
	// Done is set when no topics remain and the interview completed
	// instead of starting a topic.
	Done bool
}

// StartNextTopic claims the next unclaimed catalog topic, generates its
// opening question and records it as the first interviewer turn. With no
// topics left the interview transitions to complete.
func (iv *Interviewer) StartNextTopic(ctx context.Context, sess *interview.Session) (*TopicStart, error) {
	if sess.Complete {
		return &TopicStart{Done: true}, nil
	}
	if sess.CurrentTopic != "" {
		return nil, interview.ErrTopicActive
	}

	remaining := sess.RemainingTopics()
	if len(remaining) == 0 {
		sess.MarkComplete()
		iv.appendInterviewEvent(ctx, sess, store.ActionComplete)
		return &TopicStart{Done: true}, nil
	}

	topic := remaining[0]
	question := iv.openingQuestion(ctx, sess.Position, topic)

	if err := sess.BeginTopic(topic); err != nil {
		return nil, err
	}
	if err := sess.AddTurn(interview.RoleInterviewer, question, nil); err != nil {
		return nil, err
	}
	return &TopicStart{Topic: topic, Question: question}, nil
}

// ReplyType classifies what happened to a submitted answer.
type ReplyType string

const (
	ReplyRejected ReplyType = "rejected"
	ReplyFollowUp ReplyType = "follow_up"
	ReplyHint     ReplyType = "hint"
	ReplyConclude ReplyType = "conclude"
)

// Reply is the interviewer's reaction to one submitted answer.
type Reply struct {
	Type     ReplyType
	Response string
	// Feedback is set on conclude replies.
	Feedback *interview.Feedback
	// ConcludedTopic names the topic that just closed, on conclude.
	ConcludedTopic string
	// Warning carries a non-rejecting usage notice.
	Warning string
}

// SubmitAnswer admits, classifies and records one candidate answer.
// Rejections (empty answer, usage limits) come back as a rejected Reply
// with no state change; an error indicates a session contract violation.
func (iv *Interviewer) SubmitAnswer(ctx context.Context, sess *interview.Session, answer string) (*Reply, error) {
	if sess.CurrentTopic == "" {
		return nil, interview.ErrNoActiveTopic
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return &Reply{Type: ReplyRejected, Response: "Please write an answer before submitting."}, nil
	}

	check := iv.cfg.Limits.Check(sess, answer)
	if !check.Allowed {
		return &Reply{Type: ReplyRejected, Response: check.Message}, nil
	}

	// Classify against the history as it stood before this answer;
	// the depth override counts questions already asked.
	history := sess.CurrentConversation()
	result := iv.analyzer.Analyze(ctx, analysis.AnalysisRequest{
		Position: string(sess.Position),
		Topic:    sess.CurrentTopic,
		History:  history,
		Answer:   answer,
	})

	if err := sess.AddTurn(interview.RoleCandidate, answer, nil); err != nil {
		return nil, err
	}
	sess.RecordScore(result.Score)
	iv.appendAnswerEvent(ctx, sess, result, answer)

	switch result.Action {
	case analysis.ActionFollowUp, analysis.ActionHint:
		if err := sess.AddTurn(interview.RoleInterviewer, result.NextResponse, nil); err != nil {
			return nil, err
		}
		replyType := ReplyFollowUp
		if result.Action == analysis.ActionHint {
			replyType = ReplyHint
		}
		return &Reply{Type: replyType, Response: result.NextResponse, Warning: check.Warning}, nil

	default: // conclude
		feedback := iv.topicFeedback(ctx, sess)
		if err := sess.AddTurn(interview.RoleInterviewer, result.NextResponse, feedback); err != nil {
			return nil, err
		}
		topic := sess.ConcludeTopic()
		return &Reply{
			Type:           ReplyConclude,
			Response:       result.NextResponse,
			Feedback:       feedback,
			ConcludedTopic: topic,
			Warning:        check.Warning,
		}, nil
	}
}

// Refresh discards the active topic's conversation and asks a fresh
// question on the same topic.
func (iv *Interviewer) Refresh(ctx context.Context, sess *interview.Session) (string, error) {
	if sess.CurrentTopic == "" {
		return "", interview.ErrNoActiveTopic
	}

	question := iv.refreshQuestion(ctx, sess.Position, sess.CurrentTopic, sess.CurrentConversation())

	if err := sess.ResetCurrentConversation(); err != nil {
		return "", err
	}
	if err := sess.AddTurn(interview.RoleInterviewer, question, nil); err != nil {
		return "", err
	}
	return question, nil
}

// Skip closes the active topic with whatever partial conversation exists.
func (iv *Interviewer) Skip(sess *interview.Session) (string, error) {
	if sess.CurrentTopic == "" {
		return "", interview.ErrNoActiveTopic
	}
	return sess.ConcludeTopic(), nil
}

// End attempts to finish the interview early. When rejected, the message
// explains why and the session is untouched. On success any active topic
// is folded into the completed set and the session turns complete.
func (iv *Interviewer) End(ctx context.Context, sess *interview.Session) (bool, string) {
	if sess.Complete {
		return true, ""
	}

	if iv.cfg.ValidateEnd {
		if ok, msg := validateEnd(sess); !ok {
			return false, msg
		}
	}

	sess.ConcludeTopic()
	sess.MarkComplete()
	iv.appendInterviewEvent(ctx, sess, store.ActionComplete)
	return true, ""
}

// validateEnd checks that the interview produced something worth
// evaluating: at least one completed topic, each with a real answer.
func validateEnd(sess *interview.Session) (bool, string) {
	if len(sess.CompletedTopics) == 0 {
		return false, "Complete at least one topic before ending the interview."
	}
	for _, topic := range sess.CompletedTopics {
		if !hasCandidateAnswer(sess.Conversations[topic]) {
			return false, fmt.Sprintf("The topic %q has no recorded answer. Answer or skip it before ending.", topic)
		}
	}
	return true, ""
}

func hasCandidateAnswer(turns []interview.Turn) bool {
	for _, t := range turns {
		if t.Role == interview.RoleCandidate && strings.TrimSpace(t.Content) != "" {
			return true
		}
	}
	return false
}

// FinalEvaluation produces the holistic evaluation for a completed
// interview. It runs at most once per session; subsequent calls return
// the stored text.
func (iv *Interviewer) FinalEvaluation(ctx context.Context, sess *interview.Session) (string, error) {
	if sess.FinalFeedback != "" {
		return sess.FinalFeedback, nil
	}
	if !sess.Complete {
		return "", ErrNotComplete
	}

	if !hasCandidateAnswer(sess.AllConversations()) {
		sess.FinalFeedback = insufficientDataMessage
		return sess.FinalFeedback, nil
	}

	strategy := report.ChooseStrategy(report.Signals(sess))
	text := iv.finalEvaluationText(ctx, sess, strategy)
	sess.FinalFeedback = text
	return text, nil
}

func (iv *Interviewer) appendInterviewEvent(ctx context.Context, sess *interview.Session, action string) {
	if iv.events == nil {
		return
	}
	success := action == store.ActionComplete &&
		len(sess.Scores) > 0 && sess.MeanScore() >= 4.0
	err := iv.events.AppendInterview(ctx, store.InterviewEventData{
		SessionID:       sess.ID,
		Action:          action,
		Position:        string(sess.Position),
		TopicsCompleted: len(sess.CompletedTopics),
		MeanScore:       sess.MeanScore(),
		Success:         success,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: record interview event: %v\n", err)
	}
}

func (iv *Interviewer) appendAnswerEvent(ctx context.Context, sess *interview.Session, result analysis.Analysis, answer string) {
	if iv.events == nil {
		return
	}
	err := iv.events.AppendAnswer(ctx, store.AnswerEventData{
		SessionID:   sess.ID,
		Position:    string(sess.Position),
		Topic:       sess.CurrentTopic,
		Action:      string(result.Action),
		Score:       result.Score,
		Depth:       sess.InterviewerTurnCount(),
		AnswerChars: utf8.RuneCountInString(answer),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: record answer event: %v\n", err)
	}
}
