package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Visit holds the schema definition for the Visit entity:
// a field interaction with a prospect recorded by a rep.
type Visit struct {
	ent.Schema
}

// Fields of the Visit.
func (Visit) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.Time("visited_at").
			Default(time.Now),
		field.Int("duration_minutes").
			Optional().
			Nillable(),
		field.Text("objective").
			Optional(),
		field.Text("summary").
			Optional(),
		field.Int("score").
			Optional().
			Nillable().
			Comment("Visit rating (1-5)"),
		field.String("signed_by").
			Optional(),
		field.Text("signature_data").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Visit.
func (Visit) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("prospect", Prospect.Type).
			Ref("visits").
			Unique().
			Required(),
		edge.From("user", User.Type).
			Ref("visits").
			Unique().
			Required(),
		edge.From("tour", Tour.Type).
			Ref("visits").
			Unique(),
	}
}

// Indexes of the Visit.
func (Visit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("visited_at"),
		index.Fields("score"),
	}
}
