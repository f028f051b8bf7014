package welcome

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/interviewer"
	"github.com/abhisek/intervu/internal/screen"
	interviewscreen "github.com/abhisek/intervu/internal/screens/interview"
	"github.com/abhisek/intervu/internal/ui/components"
	"github.com/abhisek/intervu/internal/ui/layout"
	"github.com/abhisek/intervu/internal/ui/theme"
)

// WelcomeScreen lets the candidate pick the position to practice for.
type WelcomeScreen struct {
	iv     *interviewer.Interviewer
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

type sessionStartedMsg struct {
	sess *interview.Session
	err  error
}

// New creates the position-selection screen.
func New(iv *interviewer.Interviewer) *WelcomeScreen {
	w := &WelcomeScreen{iv: iv}

	items := make([]components.MenuItem, 0, len(interview.Positions()))
	for _, pos := range interview.Positions() {
		position := pos
		items = append(items, components.MenuItem{
			Label:  position.DisplayName(),
			Detail: topicPreview(position),
			Action: func() tea.Cmd { return w.startInterview(position) },
		})
	}
	w.menu = components.NewMenu(items)
	return w
}

func topicPreview(p interview.Position) string {
	topics := interview.TopicsFor(p)
	if len(topics) > 2 {
		return strings.Join(topics[:2], ", ") + ", ..."
	}
	return strings.Join(topics, ", ")
}

func (w *WelcomeScreen) Title() string {
	return "Choose a position"
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start interview"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		if msg.err != nil {
			w.errMsg = msg.err.Error()
			return w, nil
		}
		return w, screen.Switch(interviewscreen.New(w.iv, msg.sess))

	case tea.KeyMsg:
		var cmd tea.Cmd
		w.menu, cmd = w.menu.Update(msg)
		return w, cmd
	}
	return w, nil
}

func (w *WelcomeScreen) startInterview(position interview.Position) tea.Cmd {
	return func() tea.Msg {
		sess, err := w.iv.StartInterview(context.Background(), position)
		return sessionStartedMsg{sess: sess, err: err}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	title := theme.Title.Render("Mock Technical Interview")
	subtitle := theme.Subtitle.Render("Practice a junior developer interview, one topic at a time.")

	sections := []string{title, "", subtitle, "", w.menu.View()}
	if w.errMsg != "" {
		sections = append(sections, "", theme.Rejection.Render(w.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
