package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/intervu/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// ProgressProvider is an optional interface for screens that show
// interview progress in the header.
type ProgressProvider interface {
	Progress() string
}

// SwitchMsg replaces the active screen. The interview flow is linear
// (welcome, interview, summary), so a screen stack is unnecessary.
type SwitchMsg struct {
	Screen Screen
}

// Switch returns a command that switches to next.
func Switch(next Screen) tea.Cmd {
	return func() tea.Msg {
		return SwitchMsg{Screen: next}
	}
}

// RestartMsg asks the application to start over from the position
// selection screen. Screens cannot construct it themselves without an
// import cycle, so the root model handles it.
type RestartMsg struct{}

