package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Tour holds the schema definition for the Tour entity:
// a planned multi-stop prospecting route for a given day.
type Tour struct {
	ent.Schema
}

// Fields of the Tour.
func (Tour) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("name").
			Optional(),
		field.Time("date").
			Default(time.Now),
		field.Enum("status").
			Values("planned", "in_progress", "completed", "cancelled").
			Default("planned"),
		field.Float("total_distance_km").
			Optional().
			Nillable(),
		field.Int("total_duration_minutes").
			Optional().
			Nillable(),
		field.JSON("route_data", map[string]interface{}{}).
			Optional().
			Comment("Raw optimized-route payload from the maps provider"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Tour.
func (Tour) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("tours").
			Unique(),
		edge.From("user", User.Type).
			Ref("tours").
			Unique().
			Required(),
		edge.To("steps", TourStep.Type),
		edge.To("visits", Visit.Type),
	}
}

// Indexes of the Tour.
func (Tour) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("date"),
		index.Fields("status"),
	}
}
