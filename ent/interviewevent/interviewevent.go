// Code generated by ent, DO NOT EDIT.

package interviewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the interviewevent type in the database.
	Label = "interview_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldTopicsCompleted holds the string denoting the topics_completed field in the database.
	FieldTopicsCompleted = "topics_completed"
	// FieldMeanScore holds the string denoting the mean_score field in the database.
	FieldMeanScore = "mean_score"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// Table holds the table name of the interviewevent in the database.
	Table = "interview_events"
)

// Columns holds all SQL columns for interviewevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldAction,
	FieldPosition,
	FieldTopicsCompleted,
	FieldMeanScore,
	FieldSuccess,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// PositionValidator is a validator for the "position" field. It is called by the builders before save.
	PositionValidator func(string) error
	// DefaultTopicsCompleted holds the default value on creation for the "topics_completed" field.
	DefaultTopicsCompleted int
	// DefaultMeanScore holds the default value on creation for the "mean_score" field.
	DefaultMeanScore float64
	// DefaultSuccess holds the default value on creation for the "success" field.
	DefaultSuccess bool
)

// OrderOption defines the ordering options for the InterviewEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByTopicsCompleted orders the results by the topics_completed field.
func ByTopicsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicsCompleted, opts...).ToFunc()
}

// ByMeanScore orders the results by the mean_score field.
func ByMeanScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeanScore, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}
