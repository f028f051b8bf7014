package report

import (
	"strings"
	"testing"
	"time"

	"github.com/abhisek/intervu/internal/interview"
)

func goodFeedback() *interview.Feedback {
	return &interview.Feedback{
		Understanding: "Strong grasp of the fundamentals with practical examples.",
		Strengths:     []string{"clear structure", "real-world examples", "tradeoff awareness"},
		Improvements:  []string{"could mention monitoring"},
		Suggestions:   []string{"read up on distributed tracing"},
	}
}

func weakFeedback() *interview.Feedback {
	return &interview.Feedback{
		Understanding: "Showed uncertainty about the core concepts.",
		Strengths:     []string{"honest about gaps"},
		Improvements:  []string{"review the basics", "practice explaining out loud"},
		Suggestions:   []string{"build a small project"},
	}
}

func sessionWithTopics(t *testing.T, topics []struct {
	name    string
	answers int
	fb      *interview.Feedback
}) *interview.Session {
	t.Helper()
	sess := interview.NewSession(interview.PositionBackend)
	for _, topic := range topics {
		if err := sess.BeginTopic(topic.name); err != nil {
			t.Fatalf("begin %q: %v", topic.name, err)
		}
		if err := sess.AddTurn(interview.RoleInterviewer, "Opening question?", nil); err != nil {
			t.Fatalf("add question: %v", err)
		}
		for i := 0; i < topic.answers; i++ {
			if err := sess.AddTurn(interview.RoleCandidate, "An answer.", nil); err != nil {
				t.Fatalf("add answer: %v", err)
			}
		}
		if err := sess.AddTurn(interview.RoleInterviewer, "Thanks, moving on.", topic.fb); err != nil {
			t.Fatalf("add conclusion: %v", err)
		}
		sess.ConcludeTopic()
	}
	return sess
}

func TestSignals(t *testing.T) {
	sess := sessionWithTopics(t, []struct {
		name    string
		answers int
		fb      *interview.Feedback
	}{
		{"Primary programming language", 3, goodFeedback()},
		{"Server architecture design", 1, weakFeedback()},
	})

	signals := Signals(sess)
	if len(signals) != 2 {
		t.Fatalf("got %d signals, want 2", len(signals))
	}
	if signals[0].Topic != "Primary programming language" {
		t.Errorf("signal order should follow completion order, got %q first", signals[0].Topic)
	}
	if signals[0].AnswerCount != 3 {
		t.Errorf("answer count = %d, want 3", signals[0].AnswerCount)
	}
	if signals[0].Feedback == nil || signals[0].Feedback.Understanding != goodFeedback().Understanding {
		t.Error("feedback not extracted from concluding turn")
	}
}

func TestChooseStrategy(t *testing.T) {
	strongSig := TopicSignal{AnswerCount: 3, Feedback: goodFeedback()}
	weakSig := TopicSignal{AnswerCount: 1, Feedback: weakFeedback()}

	tests := []struct {
		name    string
		signals []TopicSignal
		want    Strategy
	}{
		{"no topics", nil, StrategyBalanced},
		{"all strong", []TopicSignal{strongSig, strongSig}, StrategyCelebratory},
		{"all weak", []TopicSignal{weakSig, weakSig}, StrategyBalanced},
		{"3 of 5 strong", []TopicSignal{strongSig, strongSig, strongSig, weakSig, weakSig}, StrategyCelebratory},
		{"2 of 5 strong", []TopicSignal{strongSig, strongSig, weakSig, weakSig, weakSig}, StrategyBalanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChooseStrategy(tt.signals); got != tt.want {
				t.Errorf("strategy = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStrongNeedsFeedbackOrEngagement(t *testing.T) {
	// Plenty of answers but no feedback at all is not enough.
	if strong(TopicSignal{AnswerCount: 10}) {
		t.Error("topic with no recorded feedback marked strong")
	}
	// Strong understanding plus engagement qualifies.
	if !strong(TopicSignal{AnswerCount: 2, Feedback: goodFeedback()}) {
		t.Error("engaged topic with strong feedback not marked strong")
	}
}

func TestExportTranscript(t *testing.T) {
	sess := sessionWithTopics(t, []struct {
		name    string
		answers int
		fb      *interview.Feedback
	}{
		{"Primary programming language", 1, goodFeedback()},
	})
	sess.MarkComplete()
	sess.FinalFeedback = "Overall a solid performance."

	now := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)
	out := ExportTranscript(sess, now)

	for _, want := range []string{
		"Interview Record",
		"Position: Backend Developer",
		"Date: March 14, 2026 15:09",
		"Topics covered: Primary programming language",
		"[Topic] Primary programming language",
		"* Understanding:",
		"* Strengths:",
		"  - clear structure",
		"* Areas to improve:",
		"* Suggested learning:",
		"Final Evaluation",
		"Overall a solid performance.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("transcript missing %q", want)
		}
	}

	// Field order: understanding before strengths before improvements
	// before suggestions.
	iu := strings.Index(out, "* Understanding:")
	is := strings.Index(out, "* Strengths:")
	ii := strings.Index(out, "* Areas to improve:")
	ig := strings.Index(out, "* Suggested learning:")
	if !(iu < is && is < ii && ii < ig) {
		t.Errorf("feedback sections out of order: %d %d %d %d", iu, is, ii, ig)
	}
}

func TestExportTranscriptNoFinalFeedback(t *testing.T) {
	sess := sessionWithTopics(t, []struct {
		name    string
		answers int
		fb      *interview.Feedback
	}{
		{"Primary programming language", 1, nil},
	})

	out := ExportTranscript(sess, time.Now())
	if strings.Contains(out, "Final Evaluation") {
		t.Error("transcript should omit the final evaluation section when unset")
	}
}
