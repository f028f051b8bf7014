package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestStatsForDay(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	starts := []string{"backend", "backend", "frontend"}
	for i, pos := range starts {
		err := repo.AppendInterview(ctx, InterviewEventData{
			SessionID: "s" + string(rune('1'+i)),
			Action:    ActionStart,
			Position:  pos,
		})
		if err != nil {
			t.Fatalf("append start %d: %v", i, err)
		}
	}

	completes := []struct {
		score   float64
		success bool
	}{
		{4.5, true},
		{3.0, false},
	}
	for i, c := range completes {
		err := repo.AppendInterview(ctx, InterviewEventData{
			SessionID:       "s" + string(rune('1'+i)),
			Action:          ActionComplete,
			Position:        "backend",
			TopicsCompleted: 5,
			MeanScore:       c.score,
			Success:         c.success,
		})
		if err != nil {
			t.Fatalf("append complete %d: %v", i, err)
		}
	}

	stats, err := repo.StatsForDay(ctx, time.Now())
	if err != nil {
		t.Fatalf("stats for day: %v", err)
	}
	if stats.TotalInterviews != 3 {
		t.Errorf("total = %d, want 3", stats.TotalInterviews)
	}
	if stats.CompletedInterviews != 2 {
		t.Errorf("completed = %d, want 2", stats.CompletedInterviews)
	}
	if stats.SuccessCount != 1 {
		t.Errorf("successes = %d, want 1", stats.SuccessCount)
	}
	if got := stats.PositionDistribution["backend"]; got != 2 {
		t.Errorf("backend starts = %d, want 2", got)
	}
	if got := stats.PositionDistribution["frontend"]; got != 1 {
		t.Errorf("frontend starts = %d, want 1", got)
	}
}

func TestStatsForDayEmpty(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()

	stats, err := repo.StatsForDay(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("stats for day: %v", err)
	}
	if stats.TotalInterviews != 0 || stats.CompletedInterviews != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
	if stats.CompletionRate() != 0 || stats.SuccessRate() != 0 {
		t.Error("rates on empty stats should be 0")
	}
}

func TestDailyStatsRates(t *testing.T) {
	d := DailyStats{TotalInterviews: 4, CompletedInterviews: 2, SuccessCount: 1}
	if got := d.CompletionRate(); got != 50 {
		t.Errorf("completion rate = %v, want 50", got)
	}
	if got := d.SuccessRate(); got != 50 {
		t.Errorf("success rate = %v, want 50", got)
	}
}

func TestAppendAnswer(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAnswer(ctx, AnswerEventData{
		SessionID:   "s1",
		Position:    "backend",
		Topic:       "Database design and optimization",
		Action:      "FOLLOW_UP",
		Score:       4,
		Depth:       1,
		AnswerChars: 230,
	})
	if err != nil {
		t.Fatalf("append answer: %v", err)
	}

	count, err := s.Client().AnswerEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("answer events = %d, want 1", count)
	}
}

func TestLLMEventsQueryAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock-model",
			Purpose:      "answer-analysis",
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    int64(10 * (i + 1)),
			Success:      true,
			RequestBody:  "request",
			ResponseBody: "response",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Newest first.
	if events[0].Sequence < events[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d",
			events[0].Sequence, events[1].Sequence)
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event, got nil")
	}
	if e.RequestBody != "request" {
		t.Errorf("request body = %q, want %q", e.RequestBody, "request")
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown event ID")
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []struct {
		purpose string
		in, out int
		latency int64
	}{
		{"answer-analysis", 100, 40, 20},
		{"answer-analysis", 200, 60, 40},
		{"final-evaluation", 500, 200, 100},
	}
	for i, a := range appends {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock-model",
			Purpose:      a.purpose,
			InputTokens:  a.in,
			OutputTokens: a.out,
			LatencyMs:    a.latency,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	byPurpose := make(map[string]LLMUsage)
	for _, u := range usage {
		byPurpose[u.Purpose] = u
	}

	analysis := byPurpose["answer-analysis"]
	if analysis.Calls != 2 {
		t.Errorf("analysis calls = %d, want 2", analysis.Calls)
	}
	if analysis.InputTokens != 300 {
		t.Errorf("analysis input tokens = %d, want 300", analysis.InputTokens)
	}
	if analysis.AvgLatencyMs != 30 {
		t.Errorf("analysis avg latency = %d, want 30", analysis.AvgLatencyMs)
	}

	eval := byPurpose["final-evaluation"]
	if eval.Calls != 1 {
		t.Errorf("evaluation calls = %d, want 1", eval.Calls)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"interview_events", "answer_events", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
			continue
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
