package interview

import (
	"strings"
	"time"
)

// Role identifies which side of the table a turn belongs to.
type Role string

const (
	RoleInterviewer Role = "interviewer"
	RoleCandidate   Role = "candidate"
)

// Turn is a single utterance in a topic's conversation. Turns are immutable
// once appended to a session.
type Turn struct {
	Role      Role
	Content   string
	Timestamp time.Time

	// Feedback is attached only to the interviewer turn that concludes
	// a topic. Nil everywhere else.
	Feedback *Feedback
}

// Feedback is the structured evaluation produced when a topic concludes.
type Feedback struct {
	Understanding string
	Strengths     []string
	Improvements  []string
	Suggestions   []string
}

// FormatHistory renders turns as a speaker-labeled transcript for
// prompt embedding.
func FormatHistory(turns []Turn) string {
	var b strings.Builder
	for i, t := range turns {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch t.Role {
		case RoleInterviewer:
			b.WriteString("Interviewer: ")
		case RoleCandidate:
			b.WriteString("Candidate: ")
		}
		b.WriteString(t.Content)
	}
	return b.String()
}
