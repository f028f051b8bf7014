package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/intervu/internal/interviewer"
	"github.com/abhisek/intervu/internal/screen"
	"github.com/abhisek/intervu/internal/screens/welcome"
	"github.com/abhisek/intervu/internal/ui/layout"
)

// AppModel is the root Bubble Tea model. It owns the active screen;
// the interview flow is linear, so screens replace each other rather
// than stacking.
type AppModel struct {
	iv     *interviewer.Interviewer
	active screen.Screen
	width  int
	height int
}

func newAppModel(iv *interviewer.Interviewer) AppModel {
	return AppModel{
		iv:     iv,
		active: welcome.New(iv),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.SwitchMsg:
		m.active = msg.Screen
		return m, m.active.Init()

	case screen.RestartMsg:
		m.active = welcome.New(m.iv)
		return m, m.active.Init()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.active, cmd = m.active.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	title := m.active.Title()
	progress := ""
	if p, ok := m.active.(screen.ProgressProvider); ok {
		progress = p.Progress()
	}
	header := layout.RenderHeader(title, progress, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := m.active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.active.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(iv *interviewer.Interviewer) error {
	p := tea.NewProgram(newAppModel(iv))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
