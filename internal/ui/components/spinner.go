package components

import "github.com/abhisek/intervu/internal/ui/theme"

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner is a frame-based activity indicator. The owning screen drives
// it with its own tick messages.
type Spinner struct {
	frame int
}

// Advance moves to the next frame.
func (s *Spinner) Advance() {
	s.frame = (s.frame + 1) % len(spinnerFrames)
}

// View renders the current frame with a label.
func (s Spinner) View(label string) string {
	return theme.Hint.Render(spinnerFrames[s.frame] + " " + label)
}
