package limits

import (
	"strings"
	"testing"

	"github.com/abhisek/intervu/internal/interview"
)

func activeSession(t *testing.T) *interview.Session {
	t.Helper()
	sess := interview.NewSession(interview.PositionBackend)
	if err := sess.BeginTopic("Primary programming language"); err != nil {
		t.Fatalf("begin topic: %v", err)
	}
	if err := sess.AddTurn(interview.RoleInterviewer, "Tell me about your main language.", nil); err != nil {
		t.Fatalf("add turn: %v", err)
	}
	return sess
}

func TestAnswerLengthBoundary(t *testing.T) {
	l := Default()
	sess := activeSession(t)

	atLimit := strings.Repeat("a", l.MaxAnswerLength)
	if res := l.Check(sess, atLimit); !res.Allowed {
		t.Errorf("answer of exactly %d chars rejected: %q", l.MaxAnswerLength, res.Message)
	}

	overLimit := strings.Repeat("a", l.MaxAnswerLength+1)
	res := l.Check(sess, overLimit)
	if res.Allowed {
		t.Errorf("answer of %d chars was accepted", l.MaxAnswerLength+1)
	}
	if !strings.Contains(res.Message, "3001") || !strings.Contains(res.Message, "3000") {
		t.Errorf("rejection should state actual and limit lengths, got %q", res.Message)
	}
}

func TestAnswerLengthCountsRunes(t *testing.T) {
	l := Limits{MaxAnswerLength: 4, MaxResponsesPerTopic: 10, MaxTopicsPerSession: 5}
	sess := activeSession(t)

	// 5 runes, 15 bytes.
	if res := l.Check(sess, "카페인중독"); res.Allowed {
		t.Error("5-rune answer accepted with 4-rune limit")
	}
	if res := l.Check(sess, "카페인중"); !res.Allowed {
		t.Errorf("4-rune answer rejected: %q", res.Message)
	}
}

func TestLengthWarning(t *testing.T) {
	l := Default()
	sess := activeSession(t)

	res := l.Check(sess, strings.Repeat("a", 2500))
	if !res.Allowed {
		t.Fatalf("answer below the limit rejected: %q", res.Message)
	}
	if res.Warning == "" {
		t.Error("expected length warning above 80% of limit")
	}

	res = l.Check(sess, strings.Repeat("a", 2000))
	if res.Warning != "" {
		t.Errorf("unexpected warning at 2000 chars: %q", res.Warning)
	}
}

func TestPerTopicResponseCap(t *testing.T) {
	l := Limits{MaxAnswerLength: 3000, MaxResponsesPerTopic: 5, MaxTopicsPerSession: 5}
	sess := activeSession(t)

	for i := 0; i < 4; i++ {
		if err := sess.AddTurn(interview.RoleCandidate, "an answer", nil); err != nil {
			t.Fatalf("add turn %d: %v", i, err)
		}
	}

	// 4 answers recorded: the 5th submission is still allowed.
	if res := l.Check(sess, "fifth answer"); !res.Allowed {
		t.Errorf("5th answer rejected: %q", res.Message)
	}

	if err := sess.AddTurn(interview.RoleCandidate, "fifth answer", nil); err != nil {
		t.Fatalf("add 5th turn: %v", err)
	}

	// Cap reached: the 6th submission is rejected.
	if res := l.Check(sess, "sixth answer"); res.Allowed {
		t.Error("6th answer accepted over a cap of 5")
	}
}

func TestSessionTopicCap(t *testing.T) {
	l := Limits{MaxAnswerLength: 3000, MaxResponsesPerTopic: 10, MaxTopicsPerSession: 2}
	sess := interview.NewSession(interview.PositionBackend)

	completeTopic := func(topic string) {
		t.Helper()
		if err := sess.BeginTopic(topic); err != nil {
			t.Fatalf("begin %q: %v", topic, err)
		}
		if err := sess.AddTurn(interview.RoleInterviewer, "question", nil); err != nil {
			t.Fatalf("add turn: %v", err)
		}
		sess.ConcludeTopic()
	}

	topics := interview.TopicsFor(interview.PositionBackend)
	completeTopic(topics[0])
	completeTopic(topics[1])

	// Cap reached with 4 topics still unclaimed: reject.
	if err := sess.BeginTopic(topics[2]); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := sess.AddTurn(interview.RoleInterviewer, "question", nil); err != nil {
		t.Fatalf("add turn: %v", err)
	}
	if res := l.Check(sess, "answer"); res.Allowed {
		t.Error("answer accepted over the session topic cap")
	}
	sess.ConcludeTopic()

	// Burn down to exactly one remaining topic: the exemption applies.
	completeTopic(topics[3])
	completeTopic(topics[4])
	if err := sess.BeginTopic(topics[5]); err != nil {
		t.Fatalf("begin last topic: %v", err)
	}
	if err := sess.AddTurn(interview.RoleInterviewer, "question", nil); err != nil {
		t.Fatalf("add turn: %v", err)
	}
	if res := l.Check(sess, "answer"); !res.Allowed {
		t.Errorf("last remaining topic rejected over cap: %q", res.Message)
	}
}

func TestCheckOrderLengthFirst(t *testing.T) {
	// An over-length answer on an over-cap topic reports the length
	// message, not the cap message.
	l := Limits{MaxAnswerLength: 10, MaxResponsesPerTopic: 1, MaxTopicsPerSession: 5}
	sess := activeSession(t)
	if err := sess.AddTurn(interview.RoleCandidate, "answer", nil); err != nil {
		t.Fatalf("add turn: %v", err)
	}

	res := l.Check(sess, strings.Repeat("a", 11))
	if res.Allowed {
		t.Fatal("expected rejection")
	}
	if !strings.Contains(res.Message, "too long") {
		t.Errorf("expected length rejection first, got %q", res.Message)
	}
}
