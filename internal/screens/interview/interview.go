package interview

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	iview "github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/interviewer"
	"github.com/abhisek/intervu/internal/screen"
	"github.com/abhisek/intervu/internal/screens/summary"
	"github.com/abhisek/intervu/internal/ui/components"
	"github.com/abhisek/intervu/internal/ui/layout"
)

const spinnerInterval = 120 * time.Millisecond

// InterviewScreen runs the question/answer loop for one interview.
// Oracle calls run one at a time: while busy is set, submissions and
// topic actions are ignored, which keeps session mutation serialized.
type InterviewScreen struct {
	iv   *interviewer.Interviewer
	sess *iview.Session

	input   components.AnswerInput
	spinner components.Spinner
	busy    string // label of the in-flight oracle call, empty when idle

	log    []logEntry
	notice notice
	scroll int // lines scrolled up from the transcript tail
}

var _ screen.Screen = (*InterviewScreen)(nil)
var _ screen.KeyHintProvider = (*InterviewScreen)(nil)
var _ screen.ProgressProvider = (*InterviewScreen)(nil)

// New creates the interview screen for a freshly started session.
func New(iv *interviewer.Interviewer, sess *iview.Session) *InterviewScreen {
	return &InterviewScreen{
		iv:    iv,
		sess:  sess,
		input: components.NewAnswerInput("Type your answer...", 3000),
	}
}

func (s *InterviewScreen) Title() string {
	if s.sess.CurrentTopic != "" {
		return s.sess.CurrentTopic
	}
	return "Interview"
}

func (s *InterviewScreen) Progress() string {
	total := len(iview.TopicsFor(s.sess.Position))
	current := len(s.sess.CompletedTopics)
	if s.sess.CurrentTopic != "" {
		current++
	}
	return fmt.Sprintf("Topic %d/%d", current, total)
}

func (s *InterviewScreen) KeyHints() []layout.KeyHint {
	if s.busy != "" {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+R", Description: "New question"},
		{Key: "Ctrl+S", Description: "Skip topic"},
		{Key: "Ctrl+E", Description: "End interview"},
	}
}

func (s *InterviewScreen) Init() tea.Cmd {
	s.busy = "Preparing the first topic..."
	return tea.Batch(s.startNextTopic(), spinnerTick(), s.input.Init())
}

func (s *InterviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if s.busy == "" {
			return s, nil
		}
		s.spinner.Advance()
		return s, spinnerTick()

	case topicStartedMsg:
		return s.handleTopicStarted(msg)

	case replyMsg:
		return s.handleReply(msg)

	case refreshedMsg:
		s.busy = ""
		if msg.err != nil {
			s.notice = errorNotice(msg.err.Error())
			return s, nil
		}
		s.appendBanner("New question")
		s.appendInterviewer(msg.question)
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.busy == "" {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *InterviewScreen) handleTopicStarted(msg topicStartedMsg) (screen.Screen, tea.Cmd) {
	s.busy = ""
	if msg.err != nil {
		s.notice = errorNotice(msg.err.Error())
		return s, nil
	}
	if msg.start.Done {
		return s, screen.Switch(summary.New(s.iv, s.sess))
	}

	s.appendBanner("Topic: " + msg.start.Topic)
	s.appendInterviewer(msg.start.Question)
	s.scroll = 0
	return s, nil
}

func (s *InterviewScreen) handleReply(msg replyMsg) (screen.Screen, tea.Cmd) {
	s.busy = ""
	if msg.err != nil {
		s.notice = errorNotice(msg.err.Error())
		return s, nil
	}

	reply := msg.reply
	if reply.Type == interviewer.ReplyRejected {
		// The answer stays in the input so the user can shorten it.
		s.notice = errorNotice(reply.Response)
		return s, nil
	}

	s.appendCandidate(s.input.Value())
	s.input.Reset()
	s.notice = notice{}
	if reply.Warning != "" {
		s.notice = warningNotice(reply.Warning)
	}

	s.appendInterviewer(reply.Response)
	if reply.Type == interviewer.ReplyConclude {
		s.appendFeedback(reply.Feedback)
		s.busy = "Preparing the next topic..."
		return s, tea.Batch(s.startNextTopic(), spinnerTick())
	}
	return s, nil
}

func (s *InterviewScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "pgup":
		s.scroll++
		return s, nil
	case "pgdown":
		if s.scroll > 0 {
			s.scroll--
		}
		return s, nil
	}

	if s.busy != "" {
		return s, nil
	}

	switch msg.String() {
	case "enter":
		return s.submit()

	case "ctrl+r":
		if s.sess.CurrentTopic == "" {
			return s, nil
		}
		s.busy = "Coming up with a different question..."
		return s, tea.Batch(s.refresh(), spinnerTick())

	case "ctrl+s":
		if s.sess.CurrentTopic == "" {
			return s, nil
		}
		topic, err := s.iv.Skip(s.sess)
		if err != nil {
			s.notice = errorNotice(err.Error())
			return s, nil
		}
		s.appendBanner("Skipped: " + topic)
		s.busy = "Preparing the next topic..."
		return s, tea.Batch(s.startNextTopic(), spinnerTick())

	case "ctrl+e":
		ok, rejection := s.iv.End(context.Background(), s.sess)
		if !ok {
			s.notice = errorNotice(rejection)
			return s, nil
		}
		return s, screen.Switch(summary.New(s.iv, s.sess))
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *InterviewScreen) submit() (screen.Screen, tea.Cmd) {
	answer := s.input.Value()
	s.busy = "The interviewer is thinking..."
	return s, tea.Batch(
		func() tea.Msg {
			reply, err := s.iv.SubmitAnswer(context.Background(), s.sess, answer)
			return replyMsg{reply: reply, err: err}
		},
		spinnerTick(),
	)
}

func (s *InterviewScreen) startNextTopic() tea.Cmd {
	return func() tea.Msg {
		start, err := s.iv.StartNextTopic(context.Background(), s.sess)
		return topicStartedMsg{start: start, err: err}
	}
}

func (s *InterviewScreen) refresh() tea.Cmd {
	return func() tea.Msg {
		question, err := s.iv.Refresh(context.Background(), s.sess)
		return refreshedMsg{question: question, err: err}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
