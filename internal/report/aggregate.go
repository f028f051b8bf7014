// Package report summarizes a finished interview: it buckets topics by
// answer quality to steer the final-evaluation tone, and renders the
// plain-text transcript export.
package report

import (
	"strings"

	"github.com/abhisek/intervu/internal/interview"
)

// Strategy selects the framing of the final evaluation prompt.
type Strategy string

const (
	// StrategyCelebratory is used when most topics went well.
	StrategyCelebratory Strategy = "celebratory"
	// StrategyBalanced is the default mixed-feedback framing.
	StrategyBalanced Strategy = "balanced"
)

// TopicSignal carries the quality signals recorded for one completed topic.
type TopicSignal struct {
	Topic       string
	AnswerCount int
	Feedback    *interview.Feedback
}

// Signals extracts per-topic quality signals from a session's completed
// topics. The feedback is taken from the concluding interviewer turn.
func Signals(sess *interview.Session) []TopicSignal {
	signals := make([]TopicSignal, 0, len(sess.CompletedTopics))
	for _, topic := range sess.CompletedTopics {
		sig := TopicSignal{Topic: topic}
		for _, turn := range sess.Conversations[topic] {
			if turn.Role == interview.RoleCandidate {
				sig.AnswerCount++
			}
			if turn.Feedback != nil {
				sig.Feedback = turn.Feedback
			}
		}
		signals = append(signals, sig)
	}
	return signals
}

// strong scores one topic on engagement and recorded feedback. Engagement
// counts answers capped at 3; the understanding text contributes a keyword
// tier; each recorded strength adds a point, capped at 3. Six points out
// of the possible ten marks the topic strong.
func strong(sig TopicSignal) bool {
	score := sig.AnswerCount
	if score > 3 {
		score = 3
	}

	score += understandingTier(sig) * 2

	if sig.Feedback != nil {
		n := len(sig.Feedback.Strengths)
		if n > 3 {
			n = 3
		}
		score += n
	}

	return score >= 6
}

// understandingTier maps the understanding assessment onto 0..2.
func understandingTier(sig TopicSignal) int {
	if sig.Feedback == nil {
		return 0
	}
	text := strings.ToLower(sig.Feedback.Understanding)
	for _, kw := range []string{"excellent", "strong", "deep", "thorough", "solid"} {
		if strings.Contains(text, kw) {
			return 2
		}
	}
	for _, kw := range []string{"good", "adequate", "moderate", "reasonable", "basic"} {
		if strings.Contains(text, kw) {
			return 1
		}
	}
	return 0
}

// ChooseStrategy buckets topics into strong and weak and picks the
// celebratory framing when at least 60% are strong.
func ChooseStrategy(signals []TopicSignal) Strategy {
	if len(signals) == 0 {
		return StrategyBalanced
	}
	strongCount := 0
	for _, sig := range signals {
		if strong(sig) {
			strongCount++
		}
	}
	if float64(strongCount) >= 0.6*float64(len(signals)) {
		return StrategyCelebratory
	}
	return StrategyBalanced
}
