package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Prospect holds the schema definition for the Prospect entity:
// a sales-target establishment tracked through its lifecycle.
type Prospect struct {
	ent.Schema
}

// Fields of the Prospect.
func (Prospect) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("name").
			NotEmpty().
			Comment("Establishment name"),
		field.String("name_folded").
			Optional().
			Comment("Lowercased, accent-stripped copy of name kept in sync on writes"),
		field.Enum("type").
			Values("hotel", "restaurant", "traiteur", "ecole", "hopital", "autre").
			Optional().
			Comment("HORECA segment"),
		field.String("address").
			Optional(),
		field.String("postal_code").
			Optional(),
		field.String("city").
			Optional(),
		field.String("country").
			Default("France"),
		field.String("phone").
			Optional(),
		field.String("email").
			Optional(),
		field.String("website").
			Optional(),
		field.String("manager_name").
			Optional(),
		field.JSON("opening_hours", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("to_visit", "in_progress", "converted", "lost").
			Default("to_visit").
			Comment("Prospecting lifecycle status"),
		field.Float("note_avg").
			Default(0).
			Comment("Average visit score, recomputed on visit writes"),
		field.Int("visits_count").
			Default(0).
			Comment("Number of visits, recomputed on visit writes"),
		field.Float("latitude").
			Optional(),
		field.Float("longitude").
			Optional(),
		field.String("google_place_id").
			Optional(),
		field.JSON("ai_data", map[string]interface{}{}).
			Optional().
			Comment("AI enrichment payload"),
		field.Time("ai_enriched_at").
			Optional().
			Nillable(),
		field.Float("ai_score").
			Optional().
			Comment("AI relevance score (0-10)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Prospect.
func (Prospect) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("prospects").
			Unique(),
		edge.From("creator", User.Type).
			Ref("created_prospects").
			Unique(),
		edge.To("visits", Visit.Type),
		edge.To("steps", TourStep.Type),
	}
}

// Indexes of the Prospect.
func (Prospect) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("name_folded"),
		index.Fields("city"),
		index.Fields("type"),
		index.Fields("latitude", "longitude"),
		index.Fields("created_at"),
	}
}
