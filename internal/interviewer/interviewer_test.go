package interviewer

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/llm"
	"github.com/abhisek/intervu/internal/store"
)

// fakeEvents records appended events. Query methods are inherited from
// the embedded nil interface and must not be called.
type fakeEvents struct {
	store.EventRepo
	interviews []store.InterviewEventData
	answers    []store.AnswerEventData
}

func (f *fakeEvents) AppendInterview(_ context.Context, data store.InterviewEventData) error {
	f.interviews = append(f.interviews, data)
	return nil
}

func (f *fakeEvents) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	f.answers = append(f.answers, data)
	return nil
}

func analysisResponse(t *testing.T, action string, score int, next, feedback string) llm.MockResponse {
	t.Helper()
	content, err := json.Marshal(map[string]any{
		"action":           action,
		"completion_score": score,
		"next_response":    next,
		"feedback":         feedback,
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return llm.MockResponse{Content: content}
}

func feedbackResponse(t *testing.T, understanding string) llm.MockResponse {
	t.Helper()
	content, err := json.Marshal(map[string]any{
		"understanding": understanding,
		"strengths":     []string{"clear structure"},
		"improvements":  []string{"more examples"},
		"suggestions":   []string{"build a side project"},
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return llm.MockResponse{Content: content}
}

func newTestInterviewer(mock *llm.MockProvider) (*Interviewer, *fakeEvents) {
	events := &fakeEvents{}
	return New(mock, events, DefaultConfig()), events
}

func startedSession(t *testing.T, iv *Interviewer) *interview.Session {
	t.Helper()
	sess, err := iv.StartInterview(context.Background(), interview.PositionBackend)
	if err != nil {
		t.Fatalf("start interview: %v", err)
	}
	return sess
}

func TestStartInterviewRecordsEvent(t *testing.T) {
	iv, events := newTestInterviewer(llm.NewMockProvider())
	sess := startedSession(t, iv)

	if len(events.interviews) != 1 {
		t.Fatalf("got %d interview events, want 1", len(events.interviews))
	}
	e := events.interviews[0]
	if e.Action != store.ActionStart {
		t.Errorf("action = %q, want start", e.Action)
	}
	if e.SessionID != sess.ID {
		t.Errorf("session ID mismatch: %q vs %q", e.SessionID, sess.ID)
	}
	if e.Position != "backend" {
		t.Errorf("position = %q, want backend", e.Position)
	}
}

func TestStartInterviewUnknownPosition(t *testing.T) {
	iv, _ := newTestInterviewer(llm.NewMockProvider())
	if _, err := iv.StartInterview(context.Background(), "astronaut"); err == nil {
		t.Fatal("expected error for unknown position")
	}
}

func TestStartNextTopic(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse("Which language do you reach for first, and why?"))
	iv, _ := newTestInterviewer(mock)
	sess := startedSession(t, iv)

	start, err := iv.StartNextTopic(context.Background(), sess)
	if err != nil {
		t.Fatalf("start next topic: %v", err)
	}
	if start.Done {
		t.Fatal("unexpected Done with a full catalog remaining")
	}
	if start.Topic != "Primary programming language" {
		t.Errorf("topic = %q, want first catalog entry", start.Topic)
	}
	if sess.CurrentTopic != start.Topic {
		t.Errorf("session topic = %q, want %q", sess.CurrentTopic, start.Topic)
	}

	turns := sess.CurrentConversation()
	if len(turns) != 1 {
		t.Fatalf("got %d turns, want 1", len(turns))
	}
	if turns[0].Role != interview.RoleInterviewer || turns[0].Content != start.Question {
		t.Errorf("opening turn not recorded: %+v", turns[0])
	}
}

func TestStartNextTopicFallbackQuestion(t *testing.T) {
	// Empty mock queue: every generate call fails.
	iv, _ := newTestInterviewer(llm.NewMockProvider())
	sess := startedSession(t, iv)

	start, err := iv.StartNextTopic(context.Background(), sess)
	if err != nil {
		t.Fatalf("start next topic: %v", err)
	}
	want := "Could you explain Primary programming language?"
	if start.Question != want {
		t.Errorf("question = %q, want fallback %q", start.Question, want)
	}
}

func TestStartNextTopicWhileActive(t *testing.T) {
	iv, _ := newTestInterviewer(llm.NewMockProvider())
	sess := startedSession(t, iv)
	if _, err := iv.StartNextTopic(context.Background(), sess); err != nil {
		t.Fatalf("first start: %v", err)
	}
	if _, err := iv.StartNextTopic(context.Background(), sess); err != interview.ErrTopicActive {
		t.Errorf("err = %v, want ErrTopicActive", err)
	}
}

func TestStartNextTopicExhaustedCompletes(t *testing.T) {
	iv, events := newTestInterviewer(llm.NewMockProvider())
	sess := startedSession(t, iv)

	for _, topic := range interview.TopicsFor(interview.PositionBackend) {
		if err := sess.BeginTopic(topic); err != nil {
			t.Fatalf("begin %q: %v", topic, err)
		}
		sess.ConcludeTopic()
	}

	start, err := iv.StartNextTopic(context.Background(), sess)
	if err != nil {
		t.Fatalf("start next topic: %v", err)
	}
	if !start.Done {
		t.Fatal("expected Done with no topics remaining")
	}
	if !sess.Complete {
		t.Error("session should be complete")
	}

	var completes int
	for _, e := range events.interviews {
		if e.Action == store.ActionComplete {
			completes++
		}
	}
	if completes != 1 {
		t.Errorf("got %d complete events, want 1", completes)
	}
}

func TestSubmitAnswerFollowUp(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.TextResponse("Opening question?"),
		analysisResponse(t, "FOLLOW_UP", 4, "Interesting. How does that behave under load?", "Good."),
	)
	iv, events := newTestInterviewer(mock)
	sess := startedSession(t, iv)
	if _, err := iv.StartNextTopic(context.Background(), sess); err != nil {
		t.Fatalf("start topic: %v", err)
	}

	reply, err := iv.SubmitAnswer(context.Background(), sess, "We use Go with a worker pool.")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if reply.Type != ReplyFollowUp {
		t.Fatalf("type = %s, want follow_up", reply.Type)
	}

	turns := sess.CurrentConversation()
	if len(turns) != 3 {
		t.Fatalf("got %d turns, want question+answer+follow-up", len(turns))
	}
	if turns[1].Role != interview.RoleCandidate {
		t.Errorf("turn 1 role = %s, want candidate", turns[1].Role)
	}
	if turns[2].Content != reply.Response {
		t.Errorf("follow-up not recorded: %q", turns[2].Content)
	}

	if len(events.answers) != 1 {
		t.Fatalf("got %d answer events, want 1", len(events.answers))
	}
	if events.answers[0].Score != 4 || events.answers[0].Action != "FOLLOW_UP" {
		t.Errorf("answer event = %+v", events.answers[0])
	}
	if got := sess.Scores; len(got) != 1 || got[0] != 4 {
		t.Errorf("scores = %v, want [4]", got)
	}
}

func TestSubmitAnswerConclude(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.TextResponse("Opening question?"),
		analysisResponse(t, "CONCLUDE", 5, "Great, that covers it.", "Excellent."),
		feedbackResponse(t, "Excellent grasp of the topic."),
	)
	iv, _ := newTestInterviewer(mock)
	sess := startedSession(t, iv)
	if _, err := iv.StartNextTopic(context.Background(), sess); err != nil {
		t.Fatalf("start topic: %v", err)
	}

	reply, err := iv.SubmitAnswer(context.Background(), sess, "Detailed answer with examples.")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if reply.Type != ReplyConclude {
		t.Fatalf("type = %s, want conclude", reply.Type)
	}
	if reply.Feedback == nil || reply.Feedback.Understanding != "Excellent grasp of the topic." {
		t.Errorf("feedback = %+v", reply.Feedback)
	}
	if reply.ConcludedTopic != "Primary programming language" {
		t.Errorf("concluded topic = %q", reply.ConcludedTopic)
	}

	if sess.CurrentTopic != "" {
		t.Error("session should be between topics after conclude")
	}
	if len(sess.CompletedTopics) != 1 {
		t.Fatalf("completed topics = %v", sess.CompletedTopics)
	}

	// The concluding interviewer turn carries the feedback.
	turns := sess.Conversations[reply.ConcludedTopic]
	last := turns[len(turns)-1]
	if last.Role != interview.RoleInterviewer || last.Feedback == nil {
		t.Errorf("concluding turn missing feedback: %+v", last)
	}
}

func TestSubmitAnswerWeakAnswerShortCircuits(t *testing.T) {
	// The classifier suggests FOLLOW_UP for a score-1 answer at depth 1;
	// the override closes the topic instead, with generated feedback.
	mock := llm.NewMockProvider(
		llm.TextResponse("Opening question?"),
		analysisResponse(t, "FOLLOW_UP", 1, "Let me dig into that.", "No substance."),
		feedbackResponse(t, "Showed uncertainty on this topic."),
	)
	iv, _ := newTestInterviewer(mock)
	sess := startedSession(t, iv)
	start, err := iv.StartNextTopic(context.Background(), sess)
	if err != nil {
		t.Fatalf("start topic: %v", err)
	}

	reply, err := iv.SubmitAnswer(context.Background(), sess, "I don't know.")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if reply.Type != ReplyConclude {
		t.Fatalf("type = %s, want conclude via override", reply.Type)
	}
	if sess.CurrentTopic != "" {
		t.Error("current topic should be cleared")
	}
	if len(sess.CompletedTopics) != 1 || sess.CompletedTopics[0] != start.Topic {
		t.Errorf("completed topics = %v, want [%s]", sess.CompletedTopics, start.Topic)
	}
}

func TestSubmitAnswerRejections(t *testing.T) {
	iv, events := newTestInterviewer(llm.NewMockProvider())
	sess := startedSession(t, iv)
	if _, err := iv.StartNextTopic(context.Background(), sess); err != nil {
		t.Fatalf("start topic: %v", err)
	}
	turnsBefore := len(sess.CurrentConversation())

	for _, answer := range []string{"", "   \n\t ", strings.Repeat("a", 3001)} {
		reply, err := iv.SubmitAnswer(context.Background(), sess, answer)
		if err != nil {
			t.Fatalf("submit %q: %v", answer[:min(10, len(answer))], err)
		}
		if reply.Type != ReplyRejected {
			t.Errorf("type = %s, want rejected", reply.Type)
		}
	}

	if got := len(sess.CurrentConversation()); got != turnsBefore {
		t.Errorf("rejections must not mutate the session: %d turns, had %d", got, turnsBefore)
	}
	if len(events.answers) != 0 {
		t.Errorf("rejections must not persist answer events, got %d", len(events.answers))
	}
}

func TestSubmitAnswerNoActiveTopic(t *testing.T) {
	iv, _ := newTestInterviewer(llm.NewMockProvider())
	sess := startedSession(t, iv)

	if _, err := iv.SubmitAnswer(context.Background(), sess, "hello"); err != interview.ErrNoActiveTopic {
		t.Errorf("err = %v, want ErrNoActiveTopic", err)
	}
}

func TestSubmitAnswerConcludeWithFeedbackFallback(t *testing.T) {
	// Feedback generation fails; the topic still concludes with the
	// generic positive default.
	mock := llm.NewMockProvider(
		llm.TextResponse("Opening question?"),
		analysisResponse(t, "CONCLUDE", 3, "Let's move on.", "Fine."),
	)
	iv, _ := newTestInterviewer(mock)
	sess := startedSession(t, iv)
	if _, err := iv.StartNextTopic(context.Background(), sess); err != nil {
		t.Fatalf("start topic: %v", err)
	}

	reply, err := iv.SubmitAnswer(context.Background(), sess, "An answer.")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if reply.Feedback == nil {
		t.Fatal("expected fallback feedback")
	}
	if reply.Feedback.Understanding != fallbackFeedback().Understanding {
		t.Errorf("feedback = %+v, want fallback", reply.Feedback)
	}
}

func TestRefreshResetsConversation(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.TextResponse("Opening question?"),
		analysisResponse(t, "FOLLOW_UP", 4, "And then?", "Good."),
		llm.TextResponse("From another angle: how would you test it?"),
	)
	iv, _ := newTestInterviewer(mock)
	sess := startedSession(t, iv)
	if _, err := iv.StartNextTopic(context.Background(), sess); err != nil {
		t.Fatalf("start topic: %v", err)
	}
	if _, err := iv.SubmitAnswer(context.Background(), sess, "An answer."); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got := len(sess.CurrentConversation()); got != 3 {
		t.Fatalf("got %d turns before refresh, want 3", got)
	}

	question, err := iv.Refresh(context.Background(), sess)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	turns := sess.CurrentConversation()
	if len(turns) != 1 {
		t.Fatalf("got %d turns after refresh, want 1", len(turns))
	}
	if turns[0].Content != question {
		t.Errorf("refresh question not recorded: %q", turns[0].Content)
	}
}

func TestSkip(t *testing.T) {
	iv, _ := newTestInterviewer(llm.NewMockProvider())
	sess := startedSession(t, iv)

	if _, err := iv.Skip(sess); err != interview.ErrNoActiveTopic {
		t.Errorf("skip between topics: err = %v, want ErrNoActiveTopic", err)
	}

	if _, err := iv.StartNextTopic(context.Background(), sess); err != nil {
		t.Fatalf("start topic: %v", err)
	}
	topic, err := iv.Skip(sess)
	if err != nil {
		t.Fatalf("skip: %v", err)
	}
	if topic != "Primary programming language" {
		t.Errorf("skipped topic = %q", topic)
	}
	if sess.CurrentTopic != "" {
		t.Error("current topic should be cleared")
	}
}

func TestEndValidation(t *testing.T) {
	iv, _ := newTestInterviewer(llm.NewMockProvider())
	sess := startedSession(t, iv)

	// Nothing completed yet.
	if ok, msg := iv.End(context.Background(), sess); ok {
		t.Error("end allowed with no completed topics")
	} else if msg == "" {
		t.Error("rejection needs a message")
	}
	if sess.Complete {
		t.Fatal("rejected end must not mutate the session")
	}

	// A completed topic with no candidate answer still fails.
	if err := sess.BeginTopic("Primary programming language"); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := sess.AddTurn(interview.RoleInterviewer, "Question?", nil); err != nil {
		t.Fatalf("add turn: %v", err)
	}
	sess.ConcludeTopic()
	if ok, _ := iv.End(context.Background(), sess); ok {
		t.Error("end allowed with an answerless completed topic")
	}
}

func TestEndSuccess(t *testing.T) {
	iv, events := newTestInterviewer(llm.NewMockProvider())
	sess := startedSession(t, iv)

	if err := sess.BeginTopic("Primary programming language"); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := sess.AddTurn(interview.RoleInterviewer, "Question?", nil); err != nil {
		t.Fatalf("add turn: %v", err)
	}
	if err := sess.AddTurn(interview.RoleCandidate, "A real answer.", nil); err != nil {
		t.Fatalf("add turn: %v", err)
	}
	sess.ConcludeTopic()
	sess.RecordScore(5)
	sess.RecordScore(4)

	ok, msg := iv.End(context.Background(), sess)
	if !ok {
		t.Fatalf("end rejected: %q", msg)
	}
	if !sess.Complete {
		t.Error("session should be complete")
	}

	var complete *store.InterviewEventData
	for i := range events.interviews {
		if events.interviews[i].Action == store.ActionComplete {
			complete = &events.interviews[i]
		}
	}
	if complete == nil {
		t.Fatal("no complete event recorded")
	}
	if !complete.Success {
		t.Errorf("mean score 4.5 should count as success: %+v", complete)
	}
	if complete.TopicsCompleted != 1 {
		t.Errorf("topics completed = %d, want 1", complete.TopicsCompleted)
	}
}

func TestEndWithoutValidationPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ValidateEnd = false
	iv := New(llm.NewMockProvider(), nil, cfg)
	sess, err := iv.StartInterview(context.Background(), interview.PositionBackend)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if ok, _ := iv.End(context.Background(), sess); !ok {
		t.Error("end should be allowed when validation is disabled")
	}
}

func TestFinalEvaluationInsufficientData(t *testing.T) {
	mock := llm.NewMockProvider()
	cfg := DefaultConfig()
	cfg.ValidateEnd = false
	iv := New(mock, nil, cfg)
	sess, err := iv.StartInterview(context.Background(), interview.PositionBackend)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	iv.End(context.Background(), sess)

	text, err := iv.FinalEvaluation(context.Background(), sess)
	if err != nil {
		t.Fatalf("final evaluation: %v", err)
	}
	if text != insufficientDataMessage {
		t.Errorf("got %q, want the insufficient-data message", text)
	}
	if mock.CallCount() != 0 {
		t.Errorf("oracle called %d times, want 0", mock.CallCount())
	}
}

func TestFinalEvaluationAtMostOnce(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.TextResponse("Opening question?"),
		analysisResponse(t, "CONCLUDE", 5, "Thanks.", "Great."),
		feedbackResponse(t, "Strong grasp."),
		llm.TextResponse("Overall, a strong performance."),
	)
	iv, _ := newTestInterviewer(mock)
	sess := startedSession(t, iv)
	if _, err := iv.StartNextTopic(context.Background(), sess); err != nil {
		t.Fatalf("start topic: %v", err)
	}
	if _, err := iv.SubmitAnswer(context.Background(), sess, "Thorough answer."); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if ok, msg := iv.End(context.Background(), sess); !ok {
		t.Fatalf("end rejected: %q", msg)
	}

	calls := mock.CallCount()
	text, err := iv.FinalEvaluation(context.Background(), sess)
	if err != nil {
		t.Fatalf("final evaluation: %v", err)
	}
	if text != "Overall, a strong performance." {
		t.Errorf("evaluation = %q", text)
	}
	if mock.CallCount() != calls+1 {
		t.Errorf("expected exactly one oracle call, got %d", mock.CallCount()-calls)
	}

	// Second call returns the stored text without another oracle call.
	again, err := iv.FinalEvaluation(context.Background(), sess)
	if err != nil {
		t.Fatalf("second final evaluation: %v", err)
	}
	if again != text {
		t.Errorf("stored evaluation changed: %q", again)
	}
	if mock.CallCount() != calls+1 {
		t.Error("second call must not hit the oracle")
	}
}

func TestFinalEvaluationFallbackLiteral(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.TextResponse("Opening question?"),
		analysisResponse(t, "CONCLUDE", 3, "Thanks.", "Fine."),
		feedbackResponse(t, "Basic understanding."),
		// Queue exhausted: the evaluation call fails.
	)
	iv, _ := newTestInterviewer(mock)
	sess := startedSession(t, iv)
	if _, err := iv.StartNextTopic(context.Background(), sess); err != nil {
		t.Fatalf("start topic: %v", err)
	}
	if _, err := iv.SubmitAnswer(context.Background(), sess, "An answer."); err != nil {
		t.Fatalf("submit: %v", err)
	}
	iv.End(context.Background(), sess)

	text, err := iv.FinalEvaluation(context.Background(), sess)
	if err != nil {
		t.Fatalf("final evaluation: %v", err)
	}
	if text != evaluationFallback {
		t.Errorf("got %q, want the fallback literal", text)
	}
}

func TestFinalEvaluationBeforeComplete(t *testing.T) {
	iv, _ := newTestInterviewer(llm.NewMockProvider())
	sess := startedSession(t, iv)

	if _, err := iv.FinalEvaluation(context.Background(), sess); err != ErrNotComplete {
		t.Errorf("err = %v, want ErrNotComplete", err)
	}
}
