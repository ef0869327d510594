package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Course is the root of a generated content tree. One course is created per
// outline-generation request; repeated requests for the same normalized topic
// return the existing course.
type Course struct {
	ent.Schema
}

func (Course) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id"),
		field.String("title").
			NotEmpty(),
		field.String("topic_key").
			NotEmpty().
			Comment("Lowercased, whitespace-collapsed topic used for cache lookup"),
		field.Text("description").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Course) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("courses").
			Field("user_id").
			Unique().
			Required(),
		edge.To("modules", Module.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Course) Indexes() []ent.Index {
	return []ent.Index{
		// One course per (user, normalized topic).
		index.Fields("user_id", "topic_key").
			Unique(),
	}
}
