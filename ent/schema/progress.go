package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Progress is an append-only record of one study or quiz attempt.
// Rows are never updated; each attempt inserts a new row, and aggregate
// completion is derived at query time.
//
// Progress history outlives content deletions: removing a subtopic or a quiz
// set nulls the references here instead of deleting the rows. Only deleting
// the owning user removes progress.
type Progress struct {
	ent.Schema
}

func (Progress) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id"),
		field.Int("subtopic_id").
			Optional().
			Nillable(),
		field.Int("quiz_id").
			Optional().
			Nillable(),
		field.UUID("attempt_id", uuid.UUID{}).
			Default(uuid.New).
			Unique().
			Immutable(),
		field.Float("score").
			Optional().
			Nillable().
			Min(0).
			Max(100).
			Comment("Percent score for quiz attempts, nil for plain study sessions"),
		field.Bool("completed").
			Default(false),
		field.Int("time_spent").
			Default(0).
			NonNegative().
			Comment("Seconds"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Progress) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("progress").
			Field("user_id").
			Unique().
			Required(),
		edge.From("subtopic", Subtopic.Type).
			Ref("progress").
			Field("subtopic_id").
			Unique(),
		edge.From("quiz", Quiz.Type).
			Ref("progress").
			Field("quiz_id").
			Unique(),
	}
}

func (Progress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "subtopic_id"),
		index.Fields("created_at"),
	}
}
