// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/intervu/ent/interviewevent"
)

// InterviewEvent is the model entity for the InterviewEvent schema.
type InterviewEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping events belonging to one interview
	SessionID string `json:"session_id,omitempty"`
	// start or complete
	Action string `json:"action,omitempty"`
	// Position slug: frontend, backend, fullstack
	Position string `json:"position,omitempty"`
	// Completed topic count (on complete only)
	TopicsCompleted int `json:"topics_completed,omitempty"`
	// Mean completion score across answers (on complete only)
	MeanScore float64 `json:"mean_score,omitempty"`
	// Completed with mean score >= 4.0 (on complete only)
	Success      bool `json:"success,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InterviewEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interviewevent.FieldSuccess:
			values[i] = new(sql.NullBool)
		case interviewevent.FieldMeanScore:
			values[i] = new(sql.NullFloat64)
		case interviewevent.FieldID, interviewevent.FieldSequence, interviewevent.FieldTopicsCompleted:
			values[i] = new(sql.NullInt64)
		case interviewevent.FieldSessionID, interviewevent.FieldAction, interviewevent.FieldPosition:
			values[i] = new(sql.NullString)
		case interviewevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InterviewEvent fields.
func (_m *InterviewEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interviewevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case interviewevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case interviewevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case interviewevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case interviewevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case interviewevent.FieldPosition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = value.String
			}
		case interviewevent.FieldTopicsCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topics_completed", values[i])
			} else if value.Valid {
				_m.TopicsCompleted = int(value.Int64)
			}
		case interviewevent.FieldMeanScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mean_score", values[i])
			} else if value.Valid {
				_m.MeanScore = value.Float64
			}
		case interviewevent.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InterviewEvent.
// This includes values selected through modifiers, order, etc.
func (_m *InterviewEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InterviewEvent.
// Note that you need to call InterviewEvent.Unwrap() before calling this method if this InterviewEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InterviewEvent) Update() *InterviewEventUpdateOne {
	return NewInterviewEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InterviewEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InterviewEvent) Unwrap() *InterviewEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InterviewEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InterviewEvent) String() string {
	var builder strings.Builder
	builder.WriteString("InterviewEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(_m.Position)
	builder.WriteString(", ")
	builder.WriteString("topics_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopicsCompleted))
	builder.WriteString(", ")
	builder.WriteString("mean_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MeanScore))
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteByte(')')
	return builder.String()
}

// InterviewEvents is a parsable slice of InterviewEvent.
type InterviewEvents []*InterviewEvent
