package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Module is one chapter of a course. Modules are created during outline
// generation with dense, zero-based order indices.
type Module struct {
	ent.Schema
}

func (Module) Fields() []ent.Field {
	return []ent.Field{
		field.Int("course_id"),
		field.String("title").
			NotEmpty(),
		field.Text("description").
			Optional(),
		field.Int("order_index").
			NonNegative().
			Comment("Dense zero-based position within the course"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Module) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("course", Course.Type).
			Ref("modules").
			Field("course_id").
			Unique().
			Required(),
		edge.To("subtopics", Subtopic.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Module) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id", "order_index").
			Unique(),
	}
}
