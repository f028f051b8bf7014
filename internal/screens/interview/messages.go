package interview

import (
	"time"

	"github.com/abhisek/intervu/internal/interviewer"
)

// topicStartedMsg is sent when the next topic's opening question is ready,
// or when the catalog is exhausted and the interview completed.
type topicStartedMsg struct {
	start *interviewer.TopicStart
	err   error
}

// replyMsg is sent when the interviewer has reacted to a submitted answer.
type replyMsg struct {
	reply *interviewer.Reply
	err   error
}

// refreshedMsg is sent when a replacement question is ready.
type refreshedMsg struct {
	question string
	err      error
}

// spinnerTickMsg animates the waiting indicator during oracle calls.
type spinnerTickMsg time.Time
