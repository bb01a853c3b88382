package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("email").
			Unique().
			NotEmpty().
			Comment("User email address"),
		field.String("password_hash").
			Sensitive().
			NotEmpty().
			Comment("Bcrypt hashed password"),
		field.Enum("role").
			Values("admin", "manager", "rep").
			Default("rep").
			Comment("Role for access control"),
		field.String("first_name").
			Optional(),
		field.String("last_name").
			Optional(),
		field.String("phone").
			Optional(),
		field.String("avatar_url").
			Optional(),
		field.String("locale").
			Default("fr").
			Comment("Preferred UI locale"),
		field.Bool("is_active").
			Default(true).
			Comment("Soft-disable flag; inactive users cannot log in"),
		field.Time("last_login_at").
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

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("users").
			Unique(),
		edge.To("visits", Visit.Type),
		edge.To("tours", Tour.Type),
		edge.To("refresh_tokens", RefreshToken.Type),
		edge.To("audit_logs", AuditLog.Type),
		edge.To("created_prospects", Prospect.Type),
		edge.To("attachments", Attachment.Type),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
		index.Fields("role"),
		index.Fields("is_active"),
	}
}
