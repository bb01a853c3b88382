package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// TourStep holds the schema definition for the TourStep entity:
// one ordered stop inside a tour, pointing at a prospect.
type TourStep struct {
	ent.Schema
}

// Fields of the TourStep.
func (TourStep) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.Int("step_order").
			Positive().
			Comment("1-based position within the tour, kept dense"),
		field.Enum("status").
			Values("pending", "done", "skipped").
			Default("pending"),
		field.Time("eta").
			Optional().
			Nillable(),
		field.Float("distance_from_previous_km").
			Optional().
			Nillable(),
		field.Int("duration_from_previous_minutes").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the TourStep.
func (TourStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tour", Tour.Type).
			Ref("steps").
			Unique().
			Required(),
		edge.From("prospect", Prospect.Type).
			Ref("steps").
			Unique().
			Required(),
	}
}

// Indexes of the TourStep.
func (TourStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("tour").
			Fields("step_order").
			Unique(),
	}
}
