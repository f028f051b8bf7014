package interview

import (
	"errors"
	"testing"
)

func TestAddTurn_AppendOrder(t *testing.T) {
	s := NewSession(PositionBackend)
	if err := s.BeginTopic("Server architecture design"); err != nil {
		t.Fatalf("BeginTopic: %v", err)
	}

	contents := []string{"q1", "a1", "q2", "a2"}
	roles := []Role{RoleInterviewer, RoleCandidate, RoleInterviewer, RoleCandidate}
	for i := range contents {
		if err := s.AddTurn(roles[i], contents[i], nil); err != nil {
			t.Fatalf("AddTurn(%q): %v", contents[i], err)
		}
	}

	conv := s.CurrentConversation()
	if len(conv) != 4 {
		t.Fatalf("got %d turns, want 4", len(conv))
	}
	for i, turn := range conv {
		if turn.Content != contents[i] {
			t.Errorf("turn %d content = %q, want %q", i, turn.Content, contents[i])
		}
		if turn.Role != roles[i] {
			t.Errorf("turn %d role = %q, want %q", i, turn.Role, roles[i])
		}
	}
}

func TestAddTurn_NoActiveTopic(t *testing.T) {
	s := NewSession(PositionBackend)

	err := s.AddTurn(RoleCandidate, "hello", nil)
	if !errors.Is(err, ErrNoActiveTopic) {
		t.Errorf("got %v, want ErrNoActiveTopic", err)
	}
	if len(s.Conversations) != 0 {
		t.Errorf("conversation map gained %d keys, want 0", len(s.Conversations))
	}
}

func TestAddTurn_AfterComplete(t *testing.T) {
	s := NewSession(PositionFrontend)
	if err := s.BeginTopic("HTML/CSS and web standards"); err != nil {
		t.Fatal(err)
	}
	s.MarkComplete()

	if err := s.AddTurn(RoleCandidate, "late", nil); !errors.Is(err, ErrInterviewComplete) {
		t.Errorf("got %v, want ErrInterviewComplete", err)
	}
}

func TestConcludeTopic(t *testing.T) {
	s := NewSession(PositionBackend)
	topic := "API design and security"
	if err := s.BeginTopic(topic); err != nil {
		t.Fatal(err)
	}
	if err := s.AddTurn(RoleInterviewer, "q", nil); err != nil {
		t.Fatal(err)
	}

	got := s.ConcludeTopic()
	if got != topic {
		t.Errorf("ConcludeTopic = %q, want %q", got, topic)
	}
	if s.CurrentTopic != "" {
		t.Errorf("CurrentTopic = %q, want empty", s.CurrentTopic)
	}

	count := 0
	for _, c := range s.CompletedTopics {
		if c == topic {
			count++
		}
	}
	if count != 1 {
		t.Errorf("topic appears %d times in CompletedTopics, want 1", count)
	}

	// Concluding between topics is a no-op.
	if got := s.ConcludeTopic(); got != "" {
		t.Errorf("second ConcludeTopic = %q, want empty", got)
	}
	if len(s.CompletedTopics) != 1 {
		t.Errorf("CompletedTopics grew to %d, want 1", len(s.CompletedTopics))
	}
}

func TestBeginTopic_WhileActive(t *testing.T) {
	s := NewSession(PositionFullstack)
	if err := s.BeginTopic("System design"); err != nil {
		t.Fatal(err)
	}
	if err := s.BeginTopic("Backend architecture"); !errors.Is(err, ErrTopicActive) {
		t.Errorf("got %v, want ErrTopicActive", err)
	}
}

func TestAllConversations_CompletionOrder(t *testing.T) {
	s := NewSession(PositionFullstack)

	for _, topic := range []string{"Backend architecture", "Frontend frameworks"} {
		if err := s.BeginTopic(topic); err != nil {
			t.Fatal(err)
		}
		if err := s.AddTurn(RoleInterviewer, "q "+topic, nil); err != nil {
			t.Fatal(err)
		}
		if err := s.AddTurn(RoleCandidate, "a "+topic, nil); err != nil {
			t.Fatal(err)
		}
		s.ConcludeTopic()
	}

	all := s.AllConversations()
	if len(all) != 4 {
		t.Fatalf("got %d turns, want 4", len(all))
	}
	want := []string{
		"q Backend architecture", "a Backend architecture",
		"q Frontend frameworks", "a Frontend frameworks",
	}
	for i, turn := range all {
		if turn.Content != want[i] {
			t.Errorf("turn %d = %q, want %q", i, turn.Content, want[i])
		}
	}
}

func TestRemainingTopics(t *testing.T) {
	s := NewSession(PositionBackend)
	catalog := TopicsFor(PositionBackend)

	if got := s.RemainingTopics(); len(got) != len(catalog) {
		t.Fatalf("fresh session: %d remaining, want %d", len(got), len(catalog))
	}

	if err := s.BeginTopic(catalog[0]); err != nil {
		t.Fatal(err)
	}
	s.ConcludeTopic()

	remaining := s.RemainingTopics()
	if len(remaining) != len(catalog)-1 {
		t.Fatalf("%d remaining, want %d", len(remaining), len(catalog)-1)
	}
	if remaining[0] != catalog[1] {
		t.Errorf("first remaining = %q, want %q (catalog order preserved)", remaining[0], catalog[1])
	}
}

func TestResetCurrentConversation(t *testing.T) {
	s := NewSession(PositionFrontend)
	if err := s.BeginTopic("Web security and authentication"); err != nil {
		t.Fatal(err)
	}
	for _, c := range []string{"q1", "a1", "q2"} {
		if err := s.AddTurn(RoleCandidate, c, nil); err != nil {
			t.Fatal(err)
		}
	}

	if err := s.ResetCurrentConversation(); err != nil {
		t.Fatal(err)
	}
	if got := len(s.CurrentConversation()); got != 0 {
		t.Errorf("got %d turns after reset, want 0", got)
	}
}

func TestTurnCounts(t *testing.T) {
	s := NewSession(PositionBackend)
	if err := s.BeginTopic("Caching and performance"); err != nil {
		t.Fatal(err)
	}
	_ = s.AddTurn(RoleInterviewer, "q1", nil)
	_ = s.AddTurn(RoleCandidate, "a1", nil)
	_ = s.AddTurn(RoleInterviewer, "q2", nil)

	if got := s.InterviewerTurnCount(); got != 2 {
		t.Errorf("InterviewerTurnCount = %d, want 2", got)
	}
	if got := s.CandidateTurnCount(); got != 1 {
		t.Errorf("CandidateTurnCount = %d, want 1", got)
	}
}

func TestMeanScore(t *testing.T) {
	s := NewSession(PositionBackend)
	if got := s.MeanScore(); got != 0 {
		t.Errorf("empty MeanScore = %v, want 0", got)
	}
	s.RecordScore(3)
	s.RecordScore(5)
	if got := s.MeanScore(); got != 4.0 {
		t.Errorf("MeanScore = %v, want 4.0", got)
	}
}

func TestReset(t *testing.T) {
	s := NewSession(PositionBackend)
	oldID := s.ID
	if err := s.BeginTopic("Microservice architecture"); err != nil {
		t.Fatal(err)
	}
	_ = s.AddTurn(RoleInterviewer, "q", nil)
	s.ConcludeTopic()
	s.RecordScore(4)
	s.MarkComplete()
	s.FinalFeedback = "done"

	s.Reset()

	if s.ID == oldID {
		t.Error("Reset kept the old session ID")
	}
	if s.Position != PositionBackend {
		t.Errorf("Reset cleared position, got %q", s.Position)
	}
	if s.CurrentTopic != "" || len(s.Conversations) != 0 || len(s.CompletedTopics) != 0 ||
		s.Complete || s.FinalFeedback != "" || len(s.Scores) != 0 {
		t.Errorf("Reset left residual state: %+v", s)
	}
}
