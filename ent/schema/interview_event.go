package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InterviewEvent records interview lifecycle events (start/complete).
// The daily statistics views are computed entirely from these rows.
type InterviewEvent struct {
	ent.Schema
}

func (InterviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (InterviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events belonging to one interview"),
		field.String("action").
			NotEmpty().
			Comment("start or complete"),
		field.String("position").
			NotEmpty().
			Comment("Position slug: frontend, backend, fullstack"),
		field.Int("topics_completed").
			Default(0).
			Comment("Completed topic count (on complete only)"),
		field.Float("mean_score").
			Default(0).
			Comment("Mean completion score across answers (on complete only)"),
		field.Bool("success").
			Default(false).
			Comment("Completed with mean score >= 4.0 (on complete only)"),
	}
}

func (InterviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
		index.Fields("position"),
	}
}
