package interview

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Session state errors. These indicate caller bugs, not user mistakes.
var (
	ErrNoActiveTopic     = errors.New("no active topic")
	ErrTopicActive       = errors.New("a topic is already active")
	ErrInterviewComplete = errors.New("interview already complete")
)

// Session is the aggregate root for one interview. It owns every Turn
// appended to it. A Session is not safe for concurrent use; each user
// gets their own instance and all mutation is serialized by the caller.
type Session struct {
	// ID groups persisted events belonging to this interview.
	ID string

	// Position is fixed when the session is created and never changes
	// for the lifetime of the interview.
	Position Position

	// CurrentTopic is the topic currently under discussion. Empty means
	// the session is between topics.
	CurrentTopic string

	// Conversations maps topic name to its chronological turn sequence.
	// A topic gains a key only when its first turn is appended.
	Conversations map[string][]Turn

	// CompletedTopics lists concluded topics in completion order.
	// Append-only, no duplicates; never contains CurrentTopic.
	CompletedTopics []string

	// Complete flips false→true once and never back.
	Complete bool

	// FinalFeedback is set at most once, only after Complete is true.
	FinalFeedback string

	// Scores collects the completion score of every classified answer,
	// in submission order. Used for the success statistic.
	Scores []int

	StartedAt time.Time
}

// NewSession creates an empty session for the given position.
func NewSession(position Position) *Session {
	return &Session{
		ID:            uuid.NewString(),
		Position:      position,
		Conversations: make(map[string][]Turn),
		StartedAt:     time.Now(),
	}
}

// BeginTopic makes topic the active one. The caller is responsible for
// picking an unclaimed catalog topic; BeginTopic only enforces the
// session invariants.
func (s *Session) BeginTopic(topic string) error {
	if s.Complete {
		return ErrInterviewComplete
	}
	if s.CurrentTopic != "" {
		return ErrTopicActive
	}
	s.CurrentTopic = topic
	return nil
}

// AddTurn appends a turn to the active topic's conversation. Calling it
// with no active topic is a contract violation and fails instead of
// misfiling the turn under an empty key.
func (s *Session) AddTurn(role Role, content string, feedback *Feedback) error {
	if s.Complete {
		return ErrInterviewComplete
	}
	if s.CurrentTopic == "" {
		return ErrNoActiveTopic
	}
	s.Conversations[s.CurrentTopic] = append(s.Conversations[s.CurrentTopic], Turn{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
		Feedback:  feedback,
	})
	return nil
}

// CurrentConversation returns the turn sequence for the active topic,
// or an empty slice when no topic is active or nothing was said yet.
func (s *Session) CurrentConversation() []Turn {
	if s.CurrentTopic == "" {
		return nil
	}
	return s.Conversations[s.CurrentTopic]
}

// ResetCurrentConversation discards every turn recorded for the active
// topic. Used when the user asks for a different question on the same
// topic.
func (s *Session) ResetCurrentConversation() error {
	if s.CurrentTopic == "" {
		return ErrNoActiveTopic
	}
	s.Conversations[s.CurrentTopic] = nil
	return nil
}

// ConcludeTopic moves the active topic into CompletedTopics and leaves
// the session between topics. It is the sole transition from active to
// completed. Returns the concluded topic, or "" when no topic was active.
func (s *Session) ConcludeTopic() string {
	topic := s.CurrentTopic
	if topic != "" {
		s.CompletedTopics = append(s.CompletedTopics, topic)
	}
	s.CurrentTopic = ""
	return topic
}

// AllConversations concatenates the turns of every completed topic in
// completion order. In-progress conversation is excluded; conclude or
// skip the active topic first.
func (s *Session) AllConversations() []Turn {
	var all []Turn
	for _, topic := range s.CompletedTopics {
		all = append(all, s.Conversations[topic]...)
	}
	return all
}

// RemainingTopics returns the catalog topics not yet completed,
// preserving catalog order. The active topic counts as remaining.
func (s *Session) RemainingTopics() []string {
	done := make(map[string]bool, len(s.CompletedTopics))
	for _, t := range s.CompletedTopics {
		done[t] = true
	}
	var remaining []string
	for _, t := range TopicsFor(s.Position) {
		if !done[t] {
			remaining = append(remaining, t)
		}
	}
	return remaining
}

// CandidateTurnCount returns how many candidate turns the active topic
// has accumulated. Zero when no topic is active.
func (s *Session) CandidateTurnCount() int {
	n := 0
	for _, t := range s.CurrentConversation() {
		if t.Role == RoleCandidate {
			n++
		}
	}
	return n
}

// InterviewerTurnCount returns how many questions have been asked on
// the active topic so far. This is the dialogue depth the classifier
// bounds against.
func (s *Session) InterviewerTurnCount() int {
	n := 0
	for _, t := range s.CurrentConversation() {
		if t.Role == RoleInterviewer {
			n++
		}
	}
	return n
}

// MarkComplete sets the terminal flag. Idempotent.
func (s *Session) MarkComplete() {
	s.Complete = true
}

// RecordScore appends a classified answer's completion score.
func (s *Session) RecordScore(score int) {
	s.Scores = append(s.Scores, score)
}

// MeanScore returns the average of recorded scores, or 0 when none exist.
func (s *Session) MeanScore() float64 {
	if len(s.Scores) == 0 {
		return 0
	}
	sum := 0
	for _, v := range s.Scores {
		sum += v
	}
	return float64(sum) / float64(len(s.Scores))
}

// Reset clears the session back to its initial empty state, keeping the
// position so the same process can run a fresh interview. A new ID is
// issued so persisted events never mix interviews.
func (s *Session) Reset() {
	s.ID = uuid.NewString()
	s.CurrentTopic = ""
	s.Conversations = make(map[string][]Turn)
	s.CompletedTopics = nil
	s.Complete = false
	s.FinalFeedback = ""
	s.Scores = nil
	s.StartedAt = time.Now()
}
