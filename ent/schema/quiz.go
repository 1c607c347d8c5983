package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionRecord is the serialized form of a generated question for
// persistence.
type QuestionRecord struct {
	ID            string   `json:"id"`
	Text          string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Quiz is a saved generated quiz. Unlike events, saved quizzes can be
// deleted by the user.
type Quiz struct {
	ent.Schema
}

func (Quiz) Fields() []ent.Field {
	return []ent.Field{
		field.String("quiz_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID assigned at save time"),
		field.String("title").
			NotEmpty().
			Comment("Display title, derived from the input topic or file name"),
		field.String("category").
			Comment("Quiz category label"),
		field.JSON("questions", []QuestionRecord{}).
			Comment("Full question set with answers"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Quiz) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_id"),
		index.Fields("category"),
		index.Fields("created_at"),
	}
}
