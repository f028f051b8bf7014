// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/intervu/ent/answerevent"
	"github.com/abhisek/intervu/ent/interviewevent"
	"github.com/abhisek/intervu/ent/llmrequestevent"
	"github.com/abhisek/intervu/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescPosition is the schema descriptor for position field.
	answereventDescPosition := answereventFields[1].Descriptor()
	// answerevent.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	answerevent.PositionValidator = answereventDescPosition.Validators[0].(func(string) error)
	// answereventDescTopic is the schema descriptor for topic field.
	answereventDescTopic := answereventFields[2].Descriptor()
	// answerevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	answerevent.TopicValidator = answereventDescTopic.Validators[0].(func(string) error)
	// answereventDescAction is the schema descriptor for action field.
	answereventDescAction := answereventFields[3].Descriptor()
	// answerevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	answerevent.ActionValidator = answereventDescAction.Validators[0].(func(string) error)
	// answereventDescAnswerChars is the schema descriptor for answer_chars field.
	answereventDescAnswerChars := answereventFields[6].Descriptor()
	// answerevent.DefaultAnswerChars holds the default value on creation for the answer_chars field.
	answerevent.DefaultAnswerChars = answereventDescAnswerChars.Default.(int)
	intervieweventMixin := schema.InterviewEvent{}.Mixin()
	intervieweventMixinFields0 := intervieweventMixin[0].Fields()
	_ = intervieweventMixinFields0
	intervieweventFields := schema.InterviewEvent{}.Fields()
	_ = intervieweventFields
	// intervieweventDescTimestamp is the schema descriptor for timestamp field.
	intervieweventDescTimestamp := intervieweventMixinFields0[1].Descriptor()
	// interviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	interviewevent.DefaultTimestamp = intervieweventDescTimestamp.Default.(func() time.Time)
	// intervieweventDescSessionID is the schema descriptor for session_id field.
	intervieweventDescSessionID := intervieweventFields[0].Descriptor()
	// interviewevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	interviewevent.SessionIDValidator = intervieweventDescSessionID.Validators[0].(func(string) error)
	// intervieweventDescAction is the schema descriptor for action field.
	intervieweventDescAction := intervieweventFields[1].Descriptor()
	// interviewevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	interviewevent.ActionValidator = intervieweventDescAction.Validators[0].(func(string) error)
	// intervieweventDescPosition is the schema descriptor for position field.
	intervieweventDescPosition := intervieweventFields[2].Descriptor()
	// interviewevent.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	interviewevent.PositionValidator = intervieweventDescPosition.Validators[0].(func(string) error)
	// intervieweventDescTopicsCompleted is the schema descriptor for topics_completed field.
	intervieweventDescTopicsCompleted := intervieweventFields[3].Descriptor()
	// interviewevent.DefaultTopicsCompleted holds the default value on creation for the topics_completed field.
	interviewevent.DefaultTopicsCompleted = intervieweventDescTopicsCompleted.Default.(int)
	// intervieweventDescMeanScore is the schema descriptor for mean_score field.
	intervieweventDescMeanScore := intervieweventFields[4].Descriptor()
	// interviewevent.DefaultMeanScore holds the default value on creation for the mean_score field.
	interviewevent.DefaultMeanScore = intervieweventDescMeanScore.Default.(float64)
	// intervieweventDescSuccess is the schema descriptor for success field.
	intervieweventDescSuccess := intervieweventFields[5].Descriptor()
	// interviewevent.DefaultSuccess holds the default value on creation for the success field.
	interviewevent.DefaultSuccess = intervieweventDescSuccess.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
}
