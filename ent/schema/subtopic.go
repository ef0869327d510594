package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subtopic is a single lesson node. It is created with all nullable content
// fields empty; the lesson, video, and quiz generators only fill fields in,
// they never recreate the row.
//
// content is non-nil exactly when lesson generation has completed.
// video_checked records that video resolution ran, whether or not a
// qualifying candidate was found (video_url stays nil on a soft miss).
type Subtopic struct {
	ent.Schema
}

func (Subtopic) Fields() []ent.Field {
	return []ent.Field{
		field.Int("module_id"),
		field.String("title").
			NotEmpty(),
		field.Int("order_index").
			NonNegative().
			Comment("Dense zero-based position within the module"),
		field.Text("content").
			Optional().
			Nillable().
			Comment("Generated lesson text, markdown"),
		field.Int("reading_minutes").
			Optional().
			Nillable().
			Comment("ceil(word count / reading speed), set with content"),
		field.String("youtube_keywords").
			Optional().
			Nillable(),
		field.String("video_url").
			Optional().
			Nillable(),
		field.String("video_title").
			Optional().
			Nillable(),
		field.Bool("video_checked").
			Default(false),
		field.Bool("is_generated").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Subtopic) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("module", Module.Type).
			Ref("subtopics").
			Field("module_id").
			Unique().
			Required(),
		edge.To("quizzes", Quiz.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("progress", Progress.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

func (Subtopic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("module_id", "order_index").
			Unique(),
	}
}
