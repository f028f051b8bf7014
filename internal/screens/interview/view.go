package interview

import (
	"strings"

	"charm.land/lipgloss/v2"

	iview "github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/ui/theme"
)

type entryKind int

const (
	entryBanner entryKind = iota
	entryInterviewer
	entryCandidate
	entryFeedback
)

type logEntry struct {
	kind entryKind
	text string
}

type noticeLevel int

const (
	noticeNone noticeLevel = iota
	noticeWarning
	noticeError
)

type notice struct {
	level noticeLevel
	text  string
}

func warningNotice(text string) notice {
	return notice{level: noticeWarning, text: text}
}

func errorNotice(text string) notice {
	return notice{level: noticeError, text: text}
}

func (s *InterviewScreen) appendBanner(text string) {
	s.log = append(s.log, logEntry{kind: entryBanner, text: text})
}

func (s *InterviewScreen) appendInterviewer(text string) {
	s.log = append(s.log, logEntry{kind: entryInterviewer, text: text})
}

func (s *InterviewScreen) appendCandidate(text string) {
	s.log = append(s.log, logEntry{kind: entryCandidate, text: text})
}

func (s *InterviewScreen) appendFeedback(fb *iview.Feedback) {
	if fb == nil {
		return
	}
	var b strings.Builder
	b.WriteString("Understanding\n  " + fb.Understanding + "\n")
	b.WriteString("Strengths\n")
	for _, v := range fb.Strengths {
		b.WriteString("  - " + v + "\n")
	}
	b.WriteString("Areas to improve\n")
	for _, v := range fb.Improvements {
		b.WriteString("  - " + v + "\n")
	}
	b.WriteString("Suggested learning\n")
	for _, v := range fb.Suggestions {
		b.WriteString("  - " + v)
	}
	s.log = append(s.log, logEntry{kind: entryFeedback, text: b.String()})
}

func (s *InterviewScreen) View(width, height int) string {
	transcriptHeight := height - 4 // notice + input + spacing
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}

	transcript := s.renderTranscript(width, transcriptHeight)

	var bottom []string
	switch s.notice.level {
	case noticeWarning:
		bottom = append(bottom, theme.Warning.Render(s.notice.text))
	case noticeError:
		bottom = append(bottom, theme.Rejection.Render(s.notice.text))
	default:
		bottom = append(bottom, "")
	}

	if s.busy != "" {
		bottom = append(bottom, s.spinner.View(s.busy))
	} else {
		bottom = append(bottom, "> "+s.input.View())
	}

	body := transcript + "\n\n" + strings.Join(bottom, "\n")
	return lipgloss.NewStyle().Width(width).Padding(0, 1).Render(body)
}

// renderTranscript renders the conversation log, showing the tail that
// fits and honoring the page scroll offset.
func (s *InterviewScreen) renderTranscript(width, height int) string {
	innerWidth := width - 4
	if innerWidth < 10 {
		innerWidth = 10
	}
	wrap := lipgloss.NewStyle().Width(innerWidth)

	var lines []string
	for _, e := range s.log {
		var block string
		switch e.kind {
		case entryBanner:
			block = theme.Subtitle.Render("── " + e.text + " ──")
		case entryInterviewer:
			block = theme.InterviewerLabel.Render("Interviewer: ") + e.text
		case entryCandidate:
			block = theme.CandidateLabel.Render("You: ") + e.text
		case entryFeedback:
			block = theme.FeedbackHeading.Render("Feedback") + "\n" + e.text
		}
		lines = append(lines, strings.Split(wrap.Render(block), "\n")...)
		lines = append(lines, "")
	}

	end := len(lines) - s.scroll*height
	if end > len(lines) {
		end = len(lines)
	}
	if end < 0 {
		end = 0
	}
	start := end - height
	if start < 0 {
		start = 0
	}

	return strings.Join(lines[start:end], "\n")
}
