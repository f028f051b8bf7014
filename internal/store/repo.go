package store

import (
	"context"
	"time"

	"github.com/abhisek/intervu/ent"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	From   time.Time // timestamp >= From
	To     time.Time // timestamp < To
}

// InterviewEventData captures an interview lifecycle event.
// Action is "start" or "complete"; the summary fields are meaningful
// on "complete" only.
type InterviewEventData struct {
	SessionID       string
	Action          string
	Position        string
	TopicsCompleted int
	MeanScore       float64
	Success         bool
}

// AnswerEventData captures one classified candidate answer.
type AnswerEventData struct {
	SessionID   string
	Position    string
	Topic       string
	Action      string
	Score       int
	Depth       int
	AnswerChars int
}

// LLMRequestEventData captures a single oracle API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// DailyStats summarizes one calendar day of interview activity.
type DailyStats struct {
	Day                  time.Time
	TotalInterviews      int
	CompletedInterviews  int
	SuccessCount         int
	PositionDistribution map[string]int
}

// CompletionRate returns completed/total as a percentage.
func (d DailyStats) CompletionRate() float64 {
	if d.TotalInterviews == 0 {
		return 0
	}
	return float64(d.CompletedInterviews) / float64(d.TotalInterviews) * 100
}

// SuccessRate returns successes/completed as a percentage.
func (d DailyStats) SuccessRate() float64 {
	if d.CompletedInterviews == 0 {
		return 0
	}
	return float64(d.SuccessCount) / float64(d.CompletedInterviews) * 100
}

// LLMUsage aggregates oracle usage per purpose label.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendInterview records an interview start or completion.
	AppendInterview(ctx context.Context, data InterviewEventData) error

	// AppendAnswer records a classified answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendLLMRequest records an oracle API call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// StatsForDay computes the statistics for the day containing t
	// (local time).
	StatsForDay(ctx context.Context, t time.Time) (DailyStats, error)

	// QueryLLMEvents returns recent LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*ent.LLMRequestEvent, error)

	// GetLLMEvent returns one LLM request event by ID, or nil.
	GetLLMEvent(ctx context.Context, id int) (*ent.LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
}

// eventRepo implements EventRepo backed by ent and the sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}
