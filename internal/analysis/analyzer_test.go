package analysis

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/llm"
)

func analysisJSON(t *testing.T, action string, score int, next, feedback string) llm.MockResponse {
	t.Helper()
	content, err := json.Marshal(map[string]any{
		"action":           action,
		"completion_score": score,
		"next_response":    next,
		"feedback":         feedback,
	})
	if err != nil {
		t.Fatalf("marshal analysis: %v", err)
	}
	return llm.MockResponse{Content: content}
}

func historyWithDepth(depth int) []interview.Turn {
	var turns []interview.Turn
	for i := 0; i < depth; i++ {
		turns = append(turns,
			interview.Turn{Role: interview.RoleInterviewer, Content: "question"},
			interview.Turn{Role: interview.RoleCandidate, Content: "answer"},
		)
	}
	return turns
}

func TestDepthCountsInterviewerTurns(t *testing.T) {
	turns := []interview.Turn{
		{Role: interview.RoleInterviewer, Content: "q1"},
		{Role: interview.RoleCandidate, Content: "a1"},
		{Role: interview.RoleInterviewer, Content: "q2"},
	}
	if got := Depth(turns); got != 2 {
		t.Errorf("depth = %d, want 2", got)
	}
	if got := Depth(nil); got != 0 {
		t.Errorf("depth of empty history = %d, want 0", got)
	}
}

func TestAnalyzePassesThroughGoodAnswer(t *testing.T) {
	mock := llm.NewMockProvider(
		analysisJSON(t, "FOLLOW_UP", 5, "Can you walk me through a concrete example?", "Solid explanation."),
	)
	a := NewAnalyzer(mock, DefaultAnalyzerConfig())

	got := a.Analyze(context.Background(), AnalysisRequest{
		Position: "backend",
		Topic:    "Caching and performance",
		History:  historyWithDepth(1),
		Answer:   "A cache stores hot data closer to the consumer...",
	})

	if got.Action != ActionFollowUp {
		t.Errorf("action = %s, want FOLLOW_UP", got.Action)
	}
	if got.Score != 5 {
		t.Errorf("score = %d, want 5", got.Score)
	}
	if got.NextResponse != "Can you walk me through a concrete example?" {
		t.Errorf("unexpected next response %q", got.NextResponse)
	}
}

func TestAnalyzeDepthOverride(t *testing.T) {
	// Depth 3 forces CONCLUDE no matter what the model answers.
	mock := llm.NewMockProvider(
		analysisJSON(t, "FOLLOW_UP", 5, "One more question...", "Great depth."),
	)
	a := NewAnalyzer(mock, DefaultAnalyzerConfig())

	got := a.Analyze(context.Background(), AnalysisRequest{
		Position: "backend",
		Topic:    "Server architecture design",
		History:  historyWithDepth(3),
		Answer:   "We split by bounded context...",
	})

	if got.Action != ActionConclude {
		t.Errorf("action = %s, want CONCLUDE at depth 3", got.Action)
	}
	if !strings.Contains(got.NextResponse, "Great depth.") {
		t.Errorf("transition should carry feedback, got %q", got.NextResponse)
	}
	if got.Score != 5 {
		t.Errorf("override must preserve score, got %d", got.Score)
	}
}

func TestAnalyzeWeakAnswerOverride(t *testing.T) {
	// Score 2 past the opening question short-circuits to CONCLUDE.
	mock := llm.NewMockProvider(
		analysisJSON(t, "FOLLOW_UP", 2, "Let me probe further...", "Struggled here."),
	)
	a := NewAnalyzer(mock, DefaultAnalyzerConfig())

	got := a.Analyze(context.Background(), AnalysisRequest{
		Position: "frontend",
		Topic:    "State management",
		History:  historyWithDepth(1),
		Answer:   "I'm not sure.",
	})

	if got.Action != ActionConclude {
		t.Errorf("action = %s, want CONCLUDE for weak answer at depth 1", got.Action)
	}
}

func TestAnalyzeNoOverrideOnFirstAnswer(t *testing.T) {
	// A weak score on the very first exchange (depth 0: the opening
	// question is asked by the controller, not counted yet here) does
	// not force a close.
	mock := llm.NewMockProvider(
		analysisJSON(t, "HINT", 2, "Here's a hint: think about indexes.", "Vague."),
	)
	a := NewAnalyzer(mock, DefaultAnalyzerConfig())

	got := a.Analyze(context.Background(), AnalysisRequest{
		Position: "backend",
		Topic:    "Database design and optimization",
		History:  nil,
		Answer:   "Something about tables?",
	})

	if got.Action != ActionHint {
		t.Errorf("action = %s, want HINT at depth 0", got.Action)
	}
}

func TestAnalyzeOverrideRewritesModelConclude(t *testing.T) {
	// When an override condition holds, the transition line replaces the
	// model's utterance even if the model already chose CONCLUDE.
	mock := llm.NewMockProvider(
		analysisJSON(t, "CONCLUDE", 4, "Great, that covers it. Let's move on.", "Well rounded."),
	)
	a := NewAnalyzer(mock, DefaultAnalyzerConfig())

	got := a.Analyze(context.Background(), AnalysisRequest{
		Position: "backend",
		Topic:    "API design and security",
		History:  historyWithDepth(3),
		Answer:   "And that's why we version our APIs.",
	})

	if got.Action != ActionConclude {
		t.Errorf("action = %s, want CONCLUDE", got.Action)
	}
	if want := transitionResponse("Well rounded."); got.NextResponse != want {
		t.Errorf("next response = %q, want transition %q", got.NextResponse, want)
	}
}

func TestAnalyzeModelConcludeBelowDepthKept(t *testing.T) {
	// With no override condition, the model's own concluding line stands.
	mock := llm.NewMockProvider(
		analysisJSON(t, "CONCLUDE", 4, "Great, that covers it. Let's move on.", "Well rounded."),
	)
	a := NewAnalyzer(mock, DefaultAnalyzerConfig())

	got := a.Analyze(context.Background(), AnalysisRequest{
		Position: "backend",
		Topic:    "API design and security",
		History:  historyWithDepth(1),
		Answer:   "And that's why we version our APIs.",
	})

	if got.Action != ActionConclude {
		t.Errorf("action = %s, want CONCLUDE", got.Action)
	}
	if got.NextResponse != "Great, that covers it. Let's move on." {
		t.Errorf("model's concluding line was rewritten: %q", got.NextResponse)
	}
}

func TestAnalyzeFallbacks(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"provider error", llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}},
		{"not json", llm.MockResponse{Content: json.RawMessage(`action: CONCLUDE`)}},
		{"unknown action", analysisJSONRaw(`{"action":"ESCALATE","completion_score":3,"next_response":"x","feedback":"y"}`)},
		{"score out of range", analysisJSONRaw(`{"action":"HINT","completion_score":9,"next_response":"x","feedback":"y"}`)},
		{"empty next response", analysisJSONRaw(`{"action":"HINT","completion_score":3,"next_response":"","feedback":"y"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(tt.resp)
			a := NewAnalyzer(mock, DefaultAnalyzerConfig())

			got := a.Analyze(context.Background(), AnalysisRequest{
				Position: "backend",
				Topic:    "Primary programming language",
				Answer:   "Go, mostly.",
			})

			want := fallbackAnalysis()
			if got != want {
				t.Errorf("got %+v, want fallback %+v", got, want)
			}
		})
	}
}

func analysisJSONRaw(s string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(s)}
}
