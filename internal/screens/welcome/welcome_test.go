package welcome

import (
	"strings"
	"testing"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/interviewer"
	"github.com/abhisek/intervu/internal/llm"
	"github.com/abhisek/intervu/internal/screen"
)

func newTestWelcome() *WelcomeScreen {
	iv := interviewer.New(llm.NewMockProvider(), nil, interviewer.DefaultConfig())
	return New(iv)
}

func TestViewListsAllPositions(t *testing.T) {
	w := newTestWelcome()
	view := w.View(100, 40)

	for _, pos := range interview.Positions() {
		if !strings.Contains(view, pos.DisplayName()) {
			t.Errorf("view missing position %q", pos.DisplayName())
		}
	}
}

func TestSessionStartedSwitchesScreen(t *testing.T) {
	w := newTestWelcome()

	sess := interview.NewSession(interview.PositionBackend)
	_, cmd := w.Update(sessionStartedMsg{sess: sess})
	if cmd == nil {
		t.Fatal("expected a switch command")
	}
	msg := cmd()
	if _, ok := msg.(screen.SwitchMsg); !ok {
		t.Fatalf("expected SwitchMsg, got %T", msg)
	}
}

func TestSessionStartErrorShownInView(t *testing.T) {
	w := newTestWelcome()

	_, cmd := w.Update(sessionStartedMsg{err: interview.ErrTopicActive})
	if cmd != nil {
		t.Fatal("error should not produce a command")
	}
	if !strings.Contains(w.View(100, 40), interview.ErrTopicActive.Error()) {
		t.Error("error message not rendered")
	}
}

func TestTopicPreviewTruncates(t *testing.T) {
	got := topicPreview(interview.PositionBackend)
	if !strings.HasSuffix(got, ", ...") {
		t.Errorf("expected truncated preview, got %q", got)
	}
	topics := interview.TopicsFor(interview.PositionBackend)
	if !strings.Contains(got, topics[0]) {
		t.Errorf("preview %q missing first topic", got)
	}
}
