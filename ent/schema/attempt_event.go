package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one completed quiz run with its final score.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the quiz session"),
		field.String("quiz_id").
			Default("").
			Comment("Saved quiz this attempt belongs to, if any"),
		field.String("title").
			Default("").
			Comment("Quiz title at the time of the attempt"),
		field.String("category").
			Default("").
			Comment("Quiz category at the time of the attempt"),
		field.Int("total_questions").
			Default(0),
		field.Int("correct_answers").
			Default(0),
		field.Int("percentage").
			Default(0).
			Comment("Final score, rounded to a whole percent"),
		field.Int("duration_secs").
			Default(0),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("quiz_id"),
	}
}
