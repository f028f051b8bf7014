// Code generated by ent, DO NOT EDIT.

package interviewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/intervu/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldSessionID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldAction, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldPosition, v))
}

// TopicsCompleted applies equality check predicate on the "topics_completed" field. It's identical to TopicsCompletedEQ.
func TopicsCompleted(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldTopicsCompleted, v))
}

// MeanScore applies equality check predicate on the "mean_score" field. It's identical to MeanScoreEQ.
func MeanScore(v float64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldMeanScore, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldSuccess, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContainsFold(FieldAction, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldPosition, v))
}

// PositionContains applies the Contains predicate on the "position" field.
func PositionContains(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContains(FieldPosition, v))
}

// PositionHasPrefix applies the HasPrefix predicate on the "position" field.
func PositionHasPrefix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasPrefix(FieldPosition, v))
}

// PositionHasSuffix applies the HasSuffix predicate on the "position" field.
func PositionHasSuffix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasSuffix(FieldPosition, v))
}

// PositionEqualFold applies the EqualFold predicate on the "position" field.
func PositionEqualFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEqualFold(FieldPosition, v))
}

// PositionContainsFold applies the ContainsFold predicate on the "position" field.
func PositionContainsFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContainsFold(FieldPosition, v))
}

// TopicsCompletedEQ applies the EQ predicate on the "topics_completed" field.
func TopicsCompletedEQ(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldTopicsCompleted, v))
}

// TopicsCompletedNEQ applies the NEQ predicate on the "topics_completed" field.
func TopicsCompletedNEQ(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldTopicsCompleted, v))
}

// TopicsCompletedIn applies the In predicate on the "topics_completed" field.
func TopicsCompletedIn(vs ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldTopicsCompleted, vs...))
}

// TopicsCompletedNotIn applies the NotIn predicate on the "topics_completed" field.
func TopicsCompletedNotIn(vs ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldTopicsCompleted, vs...))
}

// TopicsCompletedGT applies the GT predicate on the "topics_completed" field.
func TopicsCompletedGT(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldTopicsCompleted, v))
}

// TopicsCompletedGTE applies the GTE predicate on the "topics_completed" field.
func TopicsCompletedGTE(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldTopicsCompleted, v))
}

// TopicsCompletedLT applies the LT predicate on the "topics_completed" field.
func TopicsCompletedLT(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldTopicsCompleted, v))
}

// TopicsCompletedLTE applies the LTE predicate on the "topics_completed" field.
func TopicsCompletedLTE(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldTopicsCompleted, v))
}

// MeanScoreEQ applies the EQ predicate on the "mean_score" field.
func MeanScoreEQ(v float64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldMeanScore, v))
}

// MeanScoreNEQ applies the NEQ predicate on the "mean_score" field.
func MeanScoreNEQ(v float64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldMeanScore, v))
}

// MeanScoreIn applies the In predicate on the "mean_score" field.
func MeanScoreIn(vs ...float64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldMeanScore, vs...))
}

// MeanScoreNotIn applies the NotIn predicate on the "mean_score" field.
func MeanScoreNotIn(vs ...float64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldMeanScore, vs...))
}

// MeanScoreGT applies the GT predicate on the "mean_score" field.
func MeanScoreGT(v float64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldMeanScore, v))
}

// MeanScoreGTE applies the GTE predicate on the "mean_score" field.
func MeanScoreGTE(v float64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldMeanScore, v))
}

// MeanScoreLT applies the LT predicate on the "mean_score" field.
func MeanScoreLT(v float64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldMeanScore, v))
}

// MeanScoreLTE applies the LTE predicate on the "mean_score" field.
func MeanScoreLTE(v float64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldMeanScore, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldSuccess, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InterviewEvent) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InterviewEvent) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InterviewEvent) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.NotPredicates(p))
}
