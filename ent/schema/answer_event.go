package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one classified candidate answer.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the owning interview"),
		field.String("position").
			NotEmpty(),
		field.String("topic").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("Classifier decision after overrides: FOLLOW_UP, HINT, CONCLUDE"),
		field.Int("score").
			Comment("Completion score 1-5"),
		field.Int("depth").
			Comment("Interviewer turns on the topic before this answer"),
		field.Int("answer_chars").
			Default(0).
			Comment("Length of the candidate answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic"),
	}
}
