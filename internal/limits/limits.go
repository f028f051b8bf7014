// Package limits enforces per-answer, per-topic and per-session usage caps.
// The checks are pure predicates over a session; nothing here mutates state.
package limits

import (
	"fmt"
	"unicode/utf8"

	"github.com/abhisek/intervu/internal/interview"
)

// Limits holds the usage caps applied before an answer is admitted.
type Limits struct {
	// MaxAnswerLength is the maximum answer length in characters.
	MaxAnswerLength int
	// MaxResponsesPerTopic caps candidate answers on a single topic.
	MaxResponsesPerTopic int
	// MaxTopicsPerSession caps completed topics in one interview. The
	// last remaining topic may still be completed over the cap.
	MaxTopicsPerSession int
}

// Default returns the standard caps.
func Default() Limits {
	return Limits{
		MaxAnswerLength:      3000,
		MaxResponsesPerTopic: 10,
		MaxTopicsPerSession:  5,
	}
}

// Result is the outcome of an admission check.
type Result struct {
	Allowed bool
	// Message explains a rejection to the user. Empty when allowed.
	Message string
	// Warning is a non-rejecting notice, set when the answer is allowed
	// but approaching a cap.
	Warning string
}

func allowed() Result {
	return Result{Allowed: true}
}

func rejected(msg string) Result {
	return Result{Message: msg}
}

// Check runs the admission checks in order: answer length, per-topic
// response count, session topic count. The first failing check rejects
// with its message and no further checks run.
func (l Limits) Check(sess *interview.Session, answer string) Result {
	length := utf8.RuneCountInString(answer)
	if length > l.MaxAnswerLength {
		return rejected(fmt.Sprintf(
			"Your answer is too long. Please keep it under %d characters.\n\nCurrent length: %d characters\nLimit: %d characters\n\nTip: if an answer runs long, structuring it around the key points works best.",
			l.MaxAnswerLength, length, l.MaxAnswerLength))
	}

	res := allowed()
	if float64(length) > float64(l.MaxAnswerLength)*0.8 {
		res.Warning = fmt.Sprintf(
			"Your answer is approaching the length limit: %d / %d characters.",
			length, l.MaxAnswerLength)
	}

	if sess.CandidateTurnCount() >= l.MaxResponsesPerTopic {
		return rejected("You've had plenty of practice on this topic. Shall we move on to the next one?")
	}

	if len(sess.CompletedTopics) >= l.MaxTopicsPerSession {
		remaining := sess.RemainingTopics()
		switch {
		case len(remaining) == 0:
			return rejected("Practice session complete! We recommend trying different topics in a new session. Would you like to review your results so far?")
		case len(remaining) > 1:
			return rejected("You've done plenty for this session. Take a short break and start a fresh session.")
		}
		// Exactly one topic left: let the user finish it.
	}

	return res
}
