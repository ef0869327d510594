package schema

import (
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

var answerLetter = regexp.MustCompile(`^[A-D]$`)

// Quiz is one multiple-choice question. A subtopic's quiz set is written
// all-or-nothing: either the full fixed-size set exists or no rows do.
type Quiz struct {
	ent.Schema
}

func (Quiz) Fields() []ent.Field {
	return []ent.Field{
		field.Int("subtopic_id"),
		field.Text("question").
			NotEmpty(),
		field.String("option_a").
			NotEmpty(),
		field.String("option_b").
			NotEmpty(),
		field.String("option_c").
			NotEmpty(),
		field.String("option_d").
			NotEmpty(),
		field.String("correct_answer").
			MaxLen(1).
			Match(answerLetter).
			Comment("One of A, B, C, D"),
		field.Text("explanation").
			Optional(),
		field.Int("order_index").
			NonNegative(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Quiz) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("subtopic", Subtopic.Type).
			Ref("quizzes").
			Field("subtopic_id").
			Unique().
			Required(),
		edge.To("progress", Progress.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

func (Quiz) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subtopic_id", "order_index").
			Unique(),
	}
}
