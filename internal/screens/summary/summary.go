package summary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	iview "github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/interviewer"
	"github.com/abhisek/intervu/internal/report"
	"github.com/abhisek/intervu/internal/screen"
	"github.com/abhisek/intervu/internal/ui/components"
	"github.com/abhisek/intervu/internal/ui/layout"
	"github.com/abhisek/intervu/internal/ui/theme"
)

const spinnerInterval = 120 * time.Millisecond

// SummaryScreen shows the final evaluation and offers a transcript
// export once the interview is complete.
type SummaryScreen struct {
	iv   *interviewer.Interviewer
	sess *iview.Session

	spinner    components.Spinner
	loading    bool
	evaluation string
	errMsg     string
	exportPath string
	scroll     int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

type evaluationReadyMsg struct {
	text string
	err  error
}

type spinnerTickMsg time.Time

// New creates the summary screen for a completed session.
func New(iv *interviewer.Interviewer, sess *iview.Session) *SummaryScreen {
	return &SummaryScreen{iv: iv, sess: sess, loading: true}
}

func (s *SummaryScreen) Title() string {
	return "Interview Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	if s.loading {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "E", Description: "Export transcript"},
		{Key: "N", Description: "New interview"},
		{Key: "Q", Description: "Quit"},
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			text, err := s.iv.FinalEvaluation(context.Background(), s.sess)
			return evaluationReadyMsg{text: text, err: err}
		},
		spinnerTick(),
	)
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if !s.loading {
			return s, nil
		}
		s.spinner.Advance()
		return s, spinnerTick()

	case evaluationReadyMsg:
		s.loading = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.evaluation = msg.text
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SummaryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		s.scroll++
	case "e", "E":
		if !s.loading {
			s.export()
		}
	case "n", "N":
		if !s.loading {
			return s, func() tea.Msg { return screen.RestartMsg{} }
		}
	case "q", "Q":
		return s, tea.Quit
	}
	return s, nil
}

func (s *SummaryScreen) export() {
	path := filepath.Join(".", fmt.Sprintf("interview-%s.txt", time.Now().Format("20060102-150405")))
	transcript := report.ExportTranscript(s.sess, time.Now())
	if err := os.WriteFile(path, []byte(transcript), 0o644); err != nil {
		s.errMsg = "export failed: " + err.Error()
		return
	}
	s.exportPath = path
}

func (s *SummaryScreen) View(width, height int) string {
	if s.loading {
		content := s.spinner.View("Writing your evaluation...")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	var sections []string
	sections = append(sections, theme.Title.Render("Interview Complete"))
	sections = append(sections, "")
	sections = append(sections, theme.Subtitle.Render(fmt.Sprintf(
		"%s · %d topics · mean score %.1f",
		s.sess.Position.DisplayName(), len(s.sess.CompletedTopics), s.sess.MeanScore())))
	sections = append(sections, "")

	if s.errMsg != "" {
		sections = append(sections, theme.Rejection.Render(s.errMsg))
	} else {
		wrap := lipgloss.NewStyle().Width(min(width-6, 100))
		sections = append(sections, wrap.Render(s.evaluation))
	}

	if s.exportPath != "" {
		sections = append(sections, "", theme.Hint.Render("Transcript saved to "+s.exportPath))
	}

	content := strings.Join(sections, "\n")
	lines := strings.Split(content, "\n")
	if s.scroll >= len(lines) {
		s.scroll = len(lines) - 1
	}
	visible := lines[s.scroll:]
	if len(visible) > height {
		visible = visible[:height]
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(visible, "\n"))
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
