package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Attachment holds the schema definition for the Attachment entity:
// an S3 object (photo, document) linked to a prospect or visit.
type Attachment struct {
	ent.Schema
}

// Fields of the Attachment.
func (Attachment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("s3_key").
			NotEmpty(),
		field.String("file_name").
			NotEmpty(),
		field.String("content_type").
			Optional(),
		field.Int64("size_bytes").
			Optional(),
		field.Enum("owner_type").
			Values("prospect", "visit"),
		field.UUID("owner_id", uuid.UUID{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Attachment.
func (Attachment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("uploader", User.Type).
			Ref("attachments").
			Unique(),
	}
}

// Indexes of the Attachment.
func (Attachment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_type", "owner_id"),
		index.Fields("s3_key").
			Unique(),
	}
}
