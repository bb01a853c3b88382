package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Company holds the schema definition for the Company entity.
// A company is the tenant boundary: users, prospects and tours
// are scoped to the company carried in the token claims.
type Company struct {
	ent.Schema
}

// Fields of the Company.
func (Company) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("name").
			NotEmpty().
			Comment("Company display name"),
		field.JSON("billing_contact", map[string]interface{}{}).
			Optional().
			Comment("Free-form billing contact details"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Company.
func (Company) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("users", User.Type),
		edge.To("prospects", Prospect.Type),
		edge.To("tours", Tour.Type),
	}
}
