package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User identifies a learner by username. There is no password; the first
// login with an unknown username creates the row.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("username").
			NotEmpty().
			Unique().
			Comment("Case-sensitive identity key"),
		field.String("email").
			Optional().
			Comment("Optional contact address"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("courses", Course.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("progress", Progress.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
