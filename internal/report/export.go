package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/intervu/internal/interview"
)

const exportRule = "=================================================="

// ExportTranscript renders the session as a plain-text interview record:
// a header, every completed topic's conversation with timestamps and
// expanded feedback, and the final evaluation if one was generated.
func ExportTranscript(sess *interview.Session, now time.Time) string {
	var b strings.Builder

	b.WriteString(exportRule + "\n")
	b.WriteString("Interview Record\n")
	b.WriteString(exportRule + "\n")
	fmt.Fprintf(&b, "Position: %s\n", sess.Position.DisplayName())
	fmt.Fprintf(&b, "Date: %s\n", now.Format("January 2, 2006 15:04"))
	fmt.Fprintf(&b, "Topics covered: %s\n", strings.Join(sess.CompletedTopics, ", "))
	b.WriteString("\n" + exportRule + "\n\n")

	for _, topic := range sess.CompletedTopics {
		writeTopicSection(&b, topic, sess.Conversations[topic])
	}

	if sess.FinalFeedback != "" {
		b.WriteString("Final Evaluation\n")
		b.WriteString(exportRule + "\n")
		b.WriteString(sess.FinalFeedback + "\n")
		b.WriteString(exportRule + "\n")
	}

	return b.String()
}

func writeTopicSection(b *strings.Builder, topic string, turns []interview.Turn) {
	fmt.Fprintf(b, "[Topic] %s\n", topic)
	b.WriteString(strings.Repeat("-", 50) + "\n\n")

	for _, turn := range turns {
		speaker := "Interviewer"
		if turn.Role == interview.RoleCandidate {
			speaker = "Candidate"
		}
		fmt.Fprintf(b, "[%s] %s:\n%s\n\n", turn.Timestamp.Format("15:04:05"), speaker, turn.Content)

		if turn.Feedback != nil {
			writeFeedback(b, turn.Feedback)
		}
	}

	b.WriteString(exportRule + "\n\n")
}

func writeFeedback(b *strings.Builder, fb *interview.Feedback) {
	b.WriteString("Feedback:\n")
	b.WriteString("* Understanding:\n")
	fmt.Fprintf(b, "  %s\n\n", fb.Understanding)

	b.WriteString("* Strengths:\n")
	for _, s := range fb.Strengths {
		fmt.Fprintf(b, "  - %s\n", s)
	}
	b.WriteString("\n")

	b.WriteString("* Areas to improve:\n")
	for _, s := range fb.Improvements {
		fmt.Fprintf(b, "  - %s\n", s)
	}
	b.WriteString("\n")

	b.WriteString("* Suggested learning:\n")
	for _, s := range fb.Suggestions {
		fmt.Fprintf(b, "  - %s\n", s)
	}
	b.WriteString("\n")
}
