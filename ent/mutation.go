// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/horeca-prospection/backend/ent/attachment"
	"github.com/horeca-prospection/backend/ent/auditlog"
	"github.com/horeca-prospection/backend/ent/company"
	"github.com/horeca-prospection/backend/ent/predicate"
	"github.com/horeca-prospection/backend/ent/prospect"
	"github.com/horeca-prospection/backend/ent/refreshtoken"
	"github.com/horeca-prospection/backend/ent/tour"
	"github.com/horeca-prospection/backend/ent/tourstep"
	"github.com/horeca-prospection/backend/ent/user"
	"github.com/horeca-prospection/backend/ent/visit"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttachment   = "Attachment"
	TypeAuditLog     = "AuditLog"
	TypeCompany      = "Company"
	TypeProspect     = "Prospect"
	TypeRefreshToken = "RefreshToken"
	TypeTour         = "Tour"
	TypeTourStep     = "TourStep"
	TypeUser         = "User"
	TypeVisit        = "Visit"
)

// AttachmentMutation represents an operation that mutates the Attachment nodes in the graph.
type AttachmentMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	s3_key          *string
	file_name       *string
	content_type    *string
	size_bytes      *int64
	addsize_bytes   *int64
	owner_type      *attachment.OwnerType
	owner_id        *uuid.UUID
	created_at      *time.Time
	clearedFields   map[string]struct{}
	uploader        *uuid.UUID
	cleareduploader bool
	done            bool
	oldValue        func(context.Context) (*Attachment, error)
	predicates      []predicate.Attachment
}

var _ ent.Mutation = (*AttachmentMutation)(nil)

// attachmentOption allows management of the mutation configuration using functional options.
type attachmentOption func(*AttachmentMutation)

// newAttachmentMutation creates new mutation for the Attachment entity.
func newAttachmentMutation(c config, op Op, opts ...attachmentOption) *AttachmentMutation {
	m := &AttachmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAttachment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttachmentID sets the ID field of the mutation.
func withAttachmentID(id uuid.UUID) attachmentOption {
	return func(m *AttachmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Attachment
		)
		m.oldValue = func(ctx context.Context) (*Attachment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Attachment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttachment sets the old Attachment of the mutation.
func withAttachment(node *Attachment) attachmentOption {
	return func(m *AttachmentMutation) {
		m.oldValue = func(context.Context) (*Attachment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttachmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttachmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Attachment entities.
func (m *AttachmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttachmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttachmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Attachment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetS3Key sets the "s3_key" field.
func (m *AttachmentMutation) SetS3Key(s string) {
	m.s3_key = &s
}

// S3Key returns the value of the "s3_key" field in the mutation.
func (m *AttachmentMutation) S3Key() (r string, exists bool) {
	v := m.s3_key
	if v == nil {
		return
	}
	return *v, true
}

// OldS3Key returns the old "s3_key" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldS3Key(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldS3Key is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldS3Key requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldS3Key: %w", err)
	}
	return oldValue.S3Key, nil
}

// ResetS3Key resets all changes to the "s3_key" field.
func (m *AttachmentMutation) ResetS3Key() {
	m.s3_key = nil
}

// SetFileName sets the "file_name" field.
func (m *AttachmentMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *AttachmentMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *AttachmentMutation) ResetFileName() {
	m.file_name = nil
}

// SetContentType sets the "content_type" field.
func (m *AttachmentMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *AttachmentMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ClearContentType clears the value of the "content_type" field.
func (m *AttachmentMutation) ClearContentType() {
	m.content_type = nil
	m.clearedFields[attachment.FieldContentType] = struct{}{}
}

// ContentTypeCleared returns if the "content_type" field was cleared in this mutation.
func (m *AttachmentMutation) ContentTypeCleared() bool {
	_, ok := m.clearedFields[attachment.FieldContentType]
	return ok
}

// ResetContentType resets all changes to the "content_type" field.
func (m *AttachmentMutation) ResetContentType() {
	m.content_type = nil
	delete(m.clearedFields, attachment.FieldContentType)
}

// SetSizeBytes sets the "size_bytes" field.
func (m *AttachmentMutation) SetSizeBytes(i int64) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *AttachmentMutation) SizeBytes() (r int64, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *AttachmentMutation) AddSizeBytes(i int64) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *AttachmentMutation) AddedSizeBytes() (r int64, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ClearSizeBytes clears the value of the "size_bytes" field.
func (m *AttachmentMutation) ClearSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
	m.clearedFields[attachment.FieldSizeBytes] = struct{}{}
}

// SizeBytesCleared returns if the "size_bytes" field was cleared in this mutation.
func (m *AttachmentMutation) SizeBytesCleared() bool {
	_, ok := m.clearedFields[attachment.FieldSizeBytes]
	return ok
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *AttachmentMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
	delete(m.clearedFields, attachment.FieldSizeBytes)
}

// SetOwnerType sets the "owner_type" field.
func (m *AttachmentMutation) SetOwnerType(at attachment.OwnerType) {
	m.owner_type = &at
}

// OwnerType returns the value of the "owner_type" field in the mutation.
func (m *AttachmentMutation) OwnerType() (r attachment.OwnerType, exists bool) {
	v := m.owner_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerType returns the old "owner_type" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldOwnerType(ctx context.Context) (v attachment.OwnerType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerType: %w", err)
	}
	return oldValue.OwnerType, nil
}

// ResetOwnerType resets all changes to the "owner_type" field.
func (m *AttachmentMutation) ResetOwnerType() {
	m.owner_type = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *AttachmentMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *AttachmentMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *AttachmentMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AttachmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AttachmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AttachmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUploaderID sets the "uploader" edge to the User entity by id.
func (m *AttachmentMutation) SetUploaderID(id uuid.UUID) {
	m.uploader = &id
}

// ClearUploader clears the "uploader" edge to the User entity.
func (m *AttachmentMutation) ClearUploader() {
	m.cleareduploader = true
}

// UploaderCleared reports if the "uploader" edge to the User entity was cleared.
func (m *AttachmentMutation) UploaderCleared() bool {
	return m.cleareduploader
}

// UploaderID returns the "uploader" edge ID in the mutation.
func (m *AttachmentMutation) UploaderID() (id uuid.UUID, exists bool) {
	if m.uploader != nil {
		return *m.uploader, true
	}
	return
}

// UploaderIDs returns the "uploader" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UploaderID instead. It exists only for internal usage by the builders.
func (m *AttachmentMutation) UploaderIDs() (ids []uuid.UUID) {
	if id := m.uploader; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUploader resets all changes to the "uploader" edge.
func (m *AttachmentMutation) ResetUploader() {
	m.uploader = nil
	m.cleareduploader = false
}

// Where appends a list predicates to the AttachmentMutation builder.
func (m *AttachmentMutation) Where(ps ...predicate.Attachment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttachmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttachmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Attachment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttachmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttachmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Attachment).
func (m *AttachmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttachmentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.s3_key != nil {
		fields = append(fields, attachment.FieldS3Key)
	}
	if m.file_name != nil {
		fields = append(fields, attachment.FieldFileName)
	}
	if m.content_type != nil {
		fields = append(fields, attachment.FieldContentType)
	}
	if m.size_bytes != nil {
		fields = append(fields, attachment.FieldSizeBytes)
	}
	if m.owner_type != nil {
		fields = append(fields, attachment.FieldOwnerType)
	}
	if m.owner_id != nil {
		fields = append(fields, attachment.FieldOwnerID)
	}
	if m.created_at != nil {
		fields = append(fields, attachment.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttachmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attachment.FieldS3Key:
		return m.S3Key()
	case attachment.FieldFileName:
		return m.FileName()
	case attachment.FieldContentType:
		return m.ContentType()
	case attachment.FieldSizeBytes:
		return m.SizeBytes()
	case attachment.FieldOwnerType:
		return m.OwnerType()
	case attachment.FieldOwnerID:
		return m.OwnerID()
	case attachment.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttachmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attachment.FieldS3Key:
		return m.OldS3Key(ctx)
	case attachment.FieldFileName:
		return m.OldFileName(ctx)
	case attachment.FieldContentType:
		return m.OldContentType(ctx)
	case attachment.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case attachment.FieldOwnerType:
		return m.OldOwnerType(ctx)
	case attachment.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case attachment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Attachment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttachmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attachment.FieldS3Key:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetS3Key(v)
		return nil
	case attachment.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case attachment.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case attachment.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case attachment.FieldOwnerType:
		v, ok := value.(attachment.OwnerType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerType(v)
		return nil
	case attachment.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case attachment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Attachment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttachmentMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, attachment.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttachmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attachment.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttachmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attachment.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown Attachment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttachmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attachment.FieldContentType) {
		fields = append(fields, attachment.FieldContentType)
	}
	if m.FieldCleared(attachment.FieldSizeBytes) {
		fields = append(fields, attachment.FieldSizeBytes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttachmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttachmentMutation) ClearField(name string) error {
	switch name {
	case attachment.FieldContentType:
		m.ClearContentType()
		return nil
	case attachment.FieldSizeBytes:
		m.ClearSizeBytes()
		return nil
	}
	return fmt.Errorf("unknown Attachment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttachmentMutation) ResetField(name string) error {
	switch name {
	case attachment.FieldS3Key:
		m.ResetS3Key()
		return nil
	case attachment.FieldFileName:
		m.ResetFileName()
		return nil
	case attachment.FieldContentType:
		m.ResetContentType()
		return nil
	case attachment.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case attachment.FieldOwnerType:
		m.ResetOwnerType()
		return nil
	case attachment.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case attachment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Attachment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttachmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.uploader != nil {
		edges = append(edges, attachment.EdgeUploader)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttachmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case attachment.EdgeUploader:
		if id := m.uploader; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttachmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttachmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttachmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduploader {
		edges = append(edges, attachment.EdgeUploader)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttachmentMutation) EdgeCleared(name string) bool {
	switch name {
	case attachment.EdgeUploader:
		return m.cleareduploader
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttachmentMutation) ClearEdge(name string) error {
	switch name {
	case attachment.EdgeUploader:
		m.ClearUploader()
		return nil
	}
	return fmt.Errorf("unknown Attachment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttachmentMutation) ResetEdge(name string) error {
	switch name {
	case attachment.EdgeUploader:
		m.ResetUploader()
		return nil
	}
	return fmt.Errorf("unknown Attachment edge %s", name)
}

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	action        *string
	entity_type   *string
	entity_id     *uuid.UUID
	changes       *map[string]interface{}
	ip_address    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	user          *uuid.UUID
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*AuditLog, error)
	predicates    []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id uuid.UUID) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAction sets the "action" field.
func (m *AuditLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditLogMutation) ResetAction() {
	m.action = nil
}

// SetEntityType sets the "entity_type" field.
func (m *AuditLogMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *AuditLogMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *AuditLogMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *AuditLogMutation) SetEntityID(u uuid.UUID) {
	m.entity_id = &u
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *AuditLogMutation) EntityID() (r uuid.UUID, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldEntityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ClearEntityID clears the value of the "entity_id" field.
func (m *AuditLogMutation) ClearEntityID() {
	m.entity_id = nil
	m.clearedFields[auditlog.FieldEntityID] = struct{}{}
}

// EntityIDCleared returns if the "entity_id" field was cleared in this mutation.
func (m *AuditLogMutation) EntityIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldEntityID]
	return ok
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *AuditLogMutation) ResetEntityID() {
	m.entity_id = nil
	delete(m.clearedFields, auditlog.FieldEntityID)
}

// SetChanges sets the "changes" field.
func (m *AuditLogMutation) SetChanges(value map[string]interface{}) {
	m.changes = &value
}

// Changes returns the value of the "changes" field in the mutation.
func (m *AuditLogMutation) Changes() (r map[string]interface{}, exists bool) {
	v := m.changes
	if v == nil {
		return
	}
	return *v, true
}

// OldChanges returns the old "changes" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldChanges(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChanges is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChanges requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChanges: %w", err)
	}
	return oldValue.Changes, nil
}

// ClearChanges clears the value of the "changes" field.
func (m *AuditLogMutation) ClearChanges() {
	m.changes = nil
	m.clearedFields[auditlog.FieldChanges] = struct{}{}
}

// ChangesCleared returns if the "changes" field was cleared in this mutation.
func (m *AuditLogMutation) ChangesCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldChanges]
	return ok
}

// ResetChanges resets all changes to the "changes" field.
func (m *AuditLogMutation) ResetChanges() {
	m.changes = nil
	delete(m.clearedFields, auditlog.FieldChanges)
}

// SetIPAddress sets the "ip_address" field.
func (m *AuditLogMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *AuditLogMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldIPAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ClearIPAddress clears the value of the "ip_address" field.
func (m *AuditLogMutation) ClearIPAddress() {
	m.ip_address = nil
	m.clearedFields[auditlog.FieldIPAddress] = struct{}{}
}

// IPAddressCleared returns if the "ip_address" field was cleared in this mutation.
func (m *AuditLogMutation) IPAddressCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldIPAddress]
	return ok
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *AuditLogMutation) ResetIPAddress() {
	m.ip_address = nil
	delete(m.clearedFields, auditlog.FieldIPAddress)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUserID sets the "user" edge to the User entity by id.
func (m *AuditLogMutation) SetUserID(id uuid.UUID) {
	m.user = &id
}

// ClearUser clears the "user" edge to the User entity.
func (m *AuditLogMutation) ClearUser() {
	m.cleareduser = true
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *AuditLogMutation) UserCleared() bool {
	return m.cleareduser
}

// UserID returns the "user" edge ID in the mutation.
func (m *AuditLogMutation) UserID() (id uuid.UUID, exists bool) {
	if m.user != nil {
		return *m.user, true
	}
	return
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *AuditLogMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *AuditLogMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.action != nil {
		fields = append(fields, auditlog.FieldAction)
	}
	if m.entity_type != nil {
		fields = append(fields, auditlog.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, auditlog.FieldEntityID)
	}
	if m.changes != nil {
		fields = append(fields, auditlog.FieldChanges)
	}
	if m.ip_address != nil {
		fields = append(fields, auditlog.FieldIPAddress)
	}
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldAction:
		return m.Action()
	case auditlog.FieldEntityType:
		return m.EntityType()
	case auditlog.FieldEntityID:
		return m.EntityID()
	case auditlog.FieldChanges:
		return m.Changes()
	case auditlog.FieldIPAddress:
		return m.IPAddress()
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldAction:
		return m.OldAction(ctx)
	case auditlog.FieldEntityType:
		return m.OldEntityType(ctx)
	case auditlog.FieldEntityID:
		return m.OldEntityID(ctx)
	case auditlog.FieldChanges:
		return m.OldChanges(ctx)
	case auditlog.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditlog.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case auditlog.FieldEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case auditlog.FieldChanges:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChanges(v)
		return nil
	case auditlog.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldEntityID) {
		fields = append(fields, auditlog.FieldEntityID)
	}
	if m.FieldCleared(auditlog.FieldChanges) {
		fields = append(fields, auditlog.FieldChanges)
	}
	if m.FieldCleared(auditlog.FieldIPAddress) {
		fields = append(fields, auditlog.FieldIPAddress)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldEntityID:
		m.ClearEntityID()
		return nil
	case auditlog.FieldChanges:
		m.ClearChanges()
		return nil
	case auditlog.FieldIPAddress:
		m.ClearIPAddress()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldAction:
		m.ResetAction()
		return nil
	case auditlog.FieldEntityType:
		m.ResetEntityType()
		return nil
	case auditlog.FieldEntityID:
		m.ResetEntityID()
		return nil
	case auditlog.FieldChanges:
		m.ResetChanges()
		return nil
	case auditlog.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, auditlog.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditlog.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, auditlog.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	switch name {
	case auditlog.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	switch name {
	case auditlog.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	switch name {
	case auditlog.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// CompanyMutation represents an operation that mutates the Company nodes in the graph.
type CompanyMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	billing_contact  *map[string]interface{}
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	users            map[uuid.UUID]struct{}
	removedusers     map[uuid.UUID]struct{}
	clearedusers     bool
	prospects        map[uuid.UUID]struct{}
	removedprospects map[uuid.UUID]struct{}
	clearedprospects bool
	tours            map[uuid.UUID]struct{}
	removedtours     map[uuid.UUID]struct{}
	clearedtours     bool
	done             bool
	oldValue         func(context.Context) (*Company, error)
	predicates       []predicate.Company
}

var _ ent.Mutation = (*CompanyMutation)(nil)

// companyOption allows management of the mutation configuration using functional options.
type companyOption func(*CompanyMutation)

// newCompanyMutation creates new mutation for the Company entity.
func newCompanyMutation(c config, op Op, opts ...companyOption) *CompanyMutation {
	m := &CompanyMutation{
		config:        c,
		op:            op,
		typ:           TypeCompany,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompanyID sets the ID field of the mutation.
func withCompanyID(id uuid.UUID) companyOption {
	return func(m *CompanyMutation) {
		var (
			err   error
			once  sync.Once
			value *Company
		)
		m.oldValue = func(ctx context.Context) (*Company, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Company.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompany sets the old Company of the mutation.
func withCompany(node *Company) companyOption {
	return func(m *CompanyMutation) {
		m.oldValue = func(context.Context) (*Company, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompanyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompanyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Company entities.
func (m *CompanyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompanyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompanyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Company.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CompanyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CompanyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CompanyMutation) ResetName() {
	m.name = nil
}

// SetBillingContact sets the "billing_contact" field.
func (m *CompanyMutation) SetBillingContact(value map[string]interface{}) {
	m.billing_contact = &value
}

// BillingContact returns the value of the "billing_contact" field in the mutation.
func (m *CompanyMutation) BillingContact() (r map[string]interface{}, exists bool) {
	v := m.billing_contact
	if v == nil {
		return
	}
	return *v, true
}

// OldBillingContact returns the old "billing_contact" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldBillingContact(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBillingContact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBillingContact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBillingContact: %w", err)
	}
	return oldValue.BillingContact, nil
}

// ClearBillingContact clears the value of the "billing_contact" field.
func (m *CompanyMutation) ClearBillingContact() {
	m.billing_contact = nil
	m.clearedFields[company.FieldBillingContact] = struct{}{}
}

// BillingContactCleared returns if the "billing_contact" field was cleared in this mutation.
func (m *CompanyMutation) BillingContactCleared() bool {
	_, ok := m.clearedFields[company.FieldBillingContact]
	return ok
}

// ResetBillingContact resets all changes to the "billing_contact" field.
func (m *CompanyMutation) ResetBillingContact() {
	m.billing_contact = nil
	delete(m.clearedFields, company.FieldBillingContact)
}

// SetCreatedAt sets the "created_at" field.
func (m *CompanyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompanyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompanyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CompanyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CompanyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CompanyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddUserIDs adds the "users" edge to the User entity by ids.
func (m *CompanyMutation) AddUserIDs(ids ...uuid.UUID) {
	if m.users == nil {
		m.users = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.users[ids[i]] = struct{}{}
	}
}

// ClearUsers clears the "users" edge to the User entity.
func (m *CompanyMutation) ClearUsers() {
	m.clearedusers = true
}

// UsersCleared reports if the "users" edge to the User entity was cleared.
func (m *CompanyMutation) UsersCleared() bool {
	return m.clearedusers
}

// RemoveUserIDs removes the "users" edge to the User entity by IDs.
func (m *CompanyMutation) RemoveUserIDs(ids ...uuid.UUID) {
	if m.removedusers == nil {
		m.removedusers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.users, ids[i])
		m.removedusers[ids[i]] = struct{}{}
	}
}

// RemovedUsers returns the removed IDs of the "users" edge to the User entity.
func (m *CompanyMutation) RemovedUsersIDs() (ids []uuid.UUID) {
	for id := range m.removedusers {
		ids = append(ids, id)
	}
	return
}

// UsersIDs returns the "users" edge IDs in the mutation.
func (m *CompanyMutation) UsersIDs() (ids []uuid.UUID) {
	for id := range m.users {
		ids = append(ids, id)
	}
	return
}

// ResetUsers resets all changes to the "users" edge.
func (m *CompanyMutation) ResetUsers() {
	m.users = nil
	m.clearedusers = false
	m.removedusers = nil
}

// AddProspectIDs adds the "prospects" edge to the Prospect entity by ids.
func (m *CompanyMutation) AddProspectIDs(ids ...uuid.UUID) {
	if m.prospects == nil {
		m.prospects = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.prospects[ids[i]] = struct{}{}
	}
}

// ClearProspects clears the "prospects" edge to the Prospect entity.
func (m *CompanyMutation) ClearProspects() {
	m.clearedprospects = true
}

// ProspectsCleared reports if the "prospects" edge to the Prospect entity was cleared.
func (m *CompanyMutation) ProspectsCleared() bool {
	return m.clearedprospects
}

// RemoveProspectIDs removes the "prospects" edge to the Prospect entity by IDs.
func (m *CompanyMutation) RemoveProspectIDs(ids ...uuid.UUID) {
	if m.removedprospects == nil {
		m.removedprospects = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.prospects, ids[i])
		m.removedprospects[ids[i]] = struct{}{}
	}
}

// RemovedProspects returns the removed IDs of the "prospects" edge to the Prospect entity.
func (m *CompanyMutation) RemovedProspectsIDs() (ids []uuid.UUID) {
	for id := range m.removedprospects {
		ids = append(ids, id)
	}
	return
}

// ProspectsIDs returns the "prospects" edge IDs in the mutation.
func (m *CompanyMutation) ProspectsIDs() (ids []uuid.UUID) {
	for id := range m.prospects {
		ids = append(ids, id)
	}
	return
}

// ResetProspects resets all changes to the "prospects" edge.
func (m *CompanyMutation) ResetProspects() {
	m.prospects = nil
	m.clearedprospects = false
	m.removedprospects = nil
}

// AddTourIDs adds the "tours" edge to the Tour entity by ids.
func (m *CompanyMutation) AddTourIDs(ids ...uuid.UUID) {
	if m.tours == nil {
		m.tours = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.tours[ids[i]] = struct{}{}
	}
}

// ClearTours clears the "tours" edge to the Tour entity.
func (m *CompanyMutation) ClearTours() {
	m.clearedtours = true
}

// ToursCleared reports if the "tours" edge to the Tour entity was cleared.
func (m *CompanyMutation) ToursCleared() bool {
	return m.clearedtours
}

// RemoveTourIDs removes the "tours" edge to the Tour entity by IDs.
func (m *CompanyMutation) RemoveTourIDs(ids ...uuid.UUID) {
	if m.removedtours == nil {
		m.removedtours = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.tours, ids[i])
		m.removedtours[ids[i]] = struct{}{}
	}
}

// RemovedTours returns the removed IDs of the "tours" edge to the Tour entity.
func (m *CompanyMutation) RemovedToursIDs() (ids []uuid.UUID) {
	for id := range m.removedtours {
		ids = append(ids, id)
	}
	return
}

// ToursIDs returns the "tours" edge IDs in the mutation.
func (m *CompanyMutation) ToursIDs() (ids []uuid.UUID) {
	for id := range m.tours {
		ids = append(ids, id)
	}
	return
}

// ResetTours resets all changes to the "tours" edge.
func (m *CompanyMutation) ResetTours() {
	m.tours = nil
	m.clearedtours = false
	m.removedtours = nil
}

// Where appends a list predicates to the CompanyMutation builder.
func (m *CompanyMutation) Where(ps ...predicate.Company) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompanyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompanyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Company, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompanyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompanyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Company).
func (m *CompanyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompanyMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, company.FieldName)
	}
	if m.billing_contact != nil {
		fields = append(fields, company.FieldBillingContact)
	}
	if m.created_at != nil {
		fields = append(fields, company.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, company.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompanyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case company.FieldName:
		return m.Name()
	case company.FieldBillingContact:
		return m.BillingContact()
	case company.FieldCreatedAt:
		return m.CreatedAt()
	case company.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompanyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case company.FieldName:
		return m.OldName(ctx)
	case company.FieldBillingContact:
		return m.OldBillingContact(ctx)
	case company.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case company.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Company field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case company.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case company.FieldBillingContact:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBillingContact(v)
		return nil
	case company.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case company.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompanyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompanyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Company numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompanyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(company.FieldBillingContact) {
		fields = append(fields, company.FieldBillingContact)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompanyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompanyMutation) ClearField(name string) error {
	switch name {
	case company.FieldBillingContact:
		m.ClearBillingContact()
		return nil
	}
	return fmt.Errorf("unknown Company nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompanyMutation) ResetField(name string) error {
	switch name {
	case company.FieldName:
		m.ResetName()
		return nil
	case company.FieldBillingContact:
		m.ResetBillingContact()
		return nil
	case company.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case company.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompanyMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.users != nil {
		edges = append(edges, company.EdgeUsers)
	}
	if m.prospects != nil {
		edges = append(edges, company.EdgeProspects)
	}
	if m.tours != nil {
		edges = append(edges, company.EdgeTours)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompanyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.users))
		for id := range m.users {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeProspects:
		ids := make([]ent.Value, 0, len(m.prospects))
		for id := range m.prospects {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeTours:
		ids := make([]ent.Value, 0, len(m.tours))
		for id := range m.tours {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompanyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedusers != nil {
		edges = append(edges, company.EdgeUsers)
	}
	if m.removedprospects != nil {
		edges = append(edges, company.EdgeProspects)
	}
	if m.removedtours != nil {
		edges = append(edges, company.EdgeTours)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompanyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.removedusers))
		for id := range m.removedusers {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeProspects:
		ids := make([]ent.Value, 0, len(m.removedprospects))
		for id := range m.removedprospects {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeTours:
		ids := make([]ent.Value, 0, len(m.removedtours))
		for id := range m.removedtours {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompanyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedusers {
		edges = append(edges, company.EdgeUsers)
	}
	if m.clearedprospects {
		edges = append(edges, company.EdgeProspects)
	}
	if m.clearedtours {
		edges = append(edges, company.EdgeTours)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompanyMutation) EdgeCleared(name string) bool {
	switch name {
	case company.EdgeUsers:
		return m.clearedusers
	case company.EdgeProspects:
		return m.clearedprospects
	case company.EdgeTours:
		return m.clearedtours
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompanyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Company unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompanyMutation) ResetEdge(name string) error {
	switch name {
	case company.EdgeUsers:
		m.ResetUsers()
		return nil
	case company.EdgeProspects:
		m.ResetProspects()
		return nil
	case company.EdgeTours:
		m.ResetTours()
		return nil
	}
	return fmt.Errorf("unknown Company edge %s", name)
}

// ProspectMutation represents an operation that mutates the Prospect nodes in the graph.
type ProspectMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	name            *string
	name_folded     *string
	_type           *prospect.Type
	address         *string
	postal_code     *string
	city            *string
	country         *string
	phone           *string
	email           *string
	website         *string
	manager_name    *string
	opening_hours   *map[string]interface{}
	status          *prospect.Status
	note_avg        *float64
	addnote_avg     *float64
	visits_count    *int
	addvisits_count *int
	latitude        *float64
	addlatitude     *float64
	longitude       *float64
	addlongitude    *float64
	google_place_id *string
	ai_data         *map[string]interface{}
	ai_enriched_at  *time.Time
	ai_score        *float64
	addai_score     *float64
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	company         *uuid.UUID
	clearedcompany  bool
	creator         *uuid.UUID
	clearedcreator  bool
	visits          map[uuid.UUID]struct{}
	removedvisits   map[uuid.UUID]struct{}
	clearedvisits   bool
	steps           map[uuid.UUID]struct{}
	removedsteps    map[uuid.UUID]struct{}
	clearedsteps    bool
	done            bool
	oldValue        func(context.Context) (*Prospect, error)
	predicates      []predicate.Prospect
}

var _ ent.Mutation = (*ProspectMutation)(nil)

// prospectOption allows management of the mutation configuration using functional options.
type prospectOption func(*ProspectMutation)

// newProspectMutation creates new mutation for the Prospect entity.
func newProspectMutation(c config, op Op, opts ...prospectOption) *ProspectMutation {
	m := &ProspectMutation{
		config:        c,
		op:            op,
		typ:           TypeProspect,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProspectID sets the ID field of the mutation.
func withProspectID(id uuid.UUID) prospectOption {
	return func(m *ProspectMutation) {
		var (
			err   error
			once  sync.Once
			value *Prospect
		)
		m.oldValue = func(ctx context.Context) (*Prospect, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Prospect.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProspect sets the old Prospect of the mutation.
func withProspect(node *Prospect) prospectOption {
	return func(m *ProspectMutation) {
		m.oldValue = func(context.Context) (*Prospect, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProspectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProspectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Prospect entities.
func (m *ProspectMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProspectMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProspectMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Prospect.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProspectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProspectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProspectMutation) ResetName() {
	m.name = nil
}

// SetNameFolded sets the "name_folded" field.
func (m *ProspectMutation) SetNameFolded(s string) {
	m.name_folded = &s
}

// NameFolded returns the value of the "name_folded" field in the mutation.
func (m *ProspectMutation) NameFolded() (r string, exists bool) {
	v := m.name_folded
	if v == nil {
		return
	}
	return *v, true
}

// OldNameFolded returns the old "name_folded" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldNameFolded(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNameFolded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNameFolded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNameFolded: %w", err)
	}
	return oldValue.NameFolded, nil
}

// ClearNameFolded clears the value of the "name_folded" field.
func (m *ProspectMutation) ClearNameFolded() {
	m.name_folded = nil
	m.clearedFields[prospect.FieldNameFolded] = struct{}{}
}

// NameFoldedCleared returns if the "name_folded" field was cleared in this mutation.
func (m *ProspectMutation) NameFoldedCleared() bool {
	_, ok := m.clearedFields[prospect.FieldNameFolded]
	return ok
}

// ResetNameFolded resets all changes to the "name_folded" field.
func (m *ProspectMutation) ResetNameFolded() {
	m.name_folded = nil
	delete(m.clearedFields, prospect.FieldNameFolded)
}

// SetType sets the "type" field.
func (m *ProspectMutation) SetType(pr prospect.Type) {
	m._type = &pr
}

// GetType returns the value of the "type" field in the mutation.
func (m *ProspectMutation) GetType() (r prospect.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldType(ctx context.Context) (v prospect.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ClearType clears the value of the "type" field.
func (m *ProspectMutation) ClearType() {
	m._type = nil
	m.clearedFields[prospect.FieldType] = struct{}{}
}

// TypeCleared returns if the "type" field was cleared in this mutation.
func (m *ProspectMutation) TypeCleared() bool {
	_, ok := m.clearedFields[prospect.FieldType]
	return ok
}

// ResetType resets all changes to the "type" field.
func (m *ProspectMutation) ResetType() {
	m._type = nil
	delete(m.clearedFields, prospect.FieldType)
}

// SetAddress sets the "address" field.
func (m *ProspectMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *ProspectMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *ProspectMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[prospect.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *ProspectMutation) AddressCleared() bool {
	_, ok := m.clearedFields[prospect.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *ProspectMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, prospect.FieldAddress)
}

// SetPostalCode sets the "postal_code" field.
func (m *ProspectMutation) SetPostalCode(s string) {
	m.postal_code = &s
}

// PostalCode returns the value of the "postal_code" field in the mutation.
func (m *ProspectMutation) PostalCode() (r string, exists bool) {
	v := m.postal_code
	if v == nil {
		return
	}
	return *v, true
}

// OldPostalCode returns the old "postal_code" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldPostalCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostalCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostalCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostalCode: %w", err)
	}
	return oldValue.PostalCode, nil
}

// ClearPostalCode clears the value of the "postal_code" field.
func (m *ProspectMutation) ClearPostalCode() {
	m.postal_code = nil
	m.clearedFields[prospect.FieldPostalCode] = struct{}{}
}

// PostalCodeCleared returns if the "postal_code" field was cleared in this mutation.
func (m *ProspectMutation) PostalCodeCleared() bool {
	_, ok := m.clearedFields[prospect.FieldPostalCode]
	return ok
}

// ResetPostalCode resets all changes to the "postal_code" field.
func (m *ProspectMutation) ResetPostalCode() {
	m.postal_code = nil
	delete(m.clearedFields, prospect.FieldPostalCode)
}

// SetCity sets the "city" field.
func (m *ProspectMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *ProspectMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *ProspectMutation) ClearCity() {
	m.city = nil
	m.clearedFields[prospect.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *ProspectMutation) CityCleared() bool {
	_, ok := m.clearedFields[prospect.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *ProspectMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, prospect.FieldCity)
}

// SetCountry sets the "country" field.
func (m *ProspectMutation) SetCountry(s string) {
	m.country = &s
}

// Country returns the value of the "country" field in the mutation.
func (m *ProspectMutation) Country() (r string, exists bool) {
	v := m.country
	if v == nil {
		return
	}
	return *v, true
}

// OldCountry returns the old "country" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldCountry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountry: %w", err)
	}
	return oldValue.Country, nil
}

// ResetCountry resets all changes to the "country" field.
func (m *ProspectMutation) ResetCountry() {
	m.country = nil
}

// SetPhone sets the "phone" field.
func (m *ProspectMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *ProspectMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *ProspectMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[prospect.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *ProspectMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[prospect.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *ProspectMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, prospect.FieldPhone)
}

// SetEmail sets the "email" field.
func (m *ProspectMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ProspectMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *ProspectMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[prospect.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *ProspectMutation) EmailCleared() bool {
	_, ok := m.clearedFields[prospect.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *ProspectMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, prospect.FieldEmail)
}

// SetWebsite sets the "website" field.
func (m *ProspectMutation) SetWebsite(s string) {
	m.website = &s
}

// Website returns the value of the "website" field in the mutation.
func (m *ProspectMutation) Website() (r string, exists bool) {
	v := m.website
	if v == nil {
		return
	}
	return *v, true
}

// OldWebsite returns the old "website" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldWebsite(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebsite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebsite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebsite: %w", err)
	}
	return oldValue.Website, nil
}

// ClearWebsite clears the value of the "website" field.
func (m *ProspectMutation) ClearWebsite() {
	m.website = nil
	m.clearedFields[prospect.FieldWebsite] = struct{}{}
}

// WebsiteCleared returns if the "website" field was cleared in this mutation.
func (m *ProspectMutation) WebsiteCleared() bool {
	_, ok := m.clearedFields[prospect.FieldWebsite]
	return ok
}

// ResetWebsite resets all changes to the "website" field.
func (m *ProspectMutation) ResetWebsite() {
	m.website = nil
	delete(m.clearedFields, prospect.FieldWebsite)
}

// SetManagerName sets the "manager_name" field.
func (m *ProspectMutation) SetManagerName(s string) {
	m.manager_name = &s
}

// ManagerName returns the value of the "manager_name" field in the mutation.
func (m *ProspectMutation) ManagerName() (r string, exists bool) {
	v := m.manager_name
	if v == nil {
		return
	}
	return *v, true
}

// OldManagerName returns the old "manager_name" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldManagerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManagerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManagerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManagerName: %w", err)
	}
	return oldValue.ManagerName, nil
}

// ClearManagerName clears the value of the "manager_name" field.
func (m *ProspectMutation) ClearManagerName() {
	m.manager_name = nil
	m.clearedFields[prospect.FieldManagerName] = struct{}{}
}

// ManagerNameCleared returns if the "manager_name" field was cleared in this mutation.
func (m *ProspectMutation) ManagerNameCleared() bool {
	_, ok := m.clearedFields[prospect.FieldManagerName]
	return ok
}

// ResetManagerName resets all changes to the "manager_name" field.
func (m *ProspectMutation) ResetManagerName() {
	m.manager_name = nil
	delete(m.clearedFields, prospect.FieldManagerName)
}

// SetOpeningHours sets the "opening_hours" field.
func (m *ProspectMutation) SetOpeningHours(value map[string]interface{}) {
	m.opening_hours = &value
}

// OpeningHours returns the value of the "opening_hours" field in the mutation.
func (m *ProspectMutation) OpeningHours() (r map[string]interface{}, exists bool) {
	v := m.opening_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldOpeningHours returns the old "opening_hours" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldOpeningHours(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpeningHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpeningHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpeningHours: %w", err)
	}
	return oldValue.OpeningHours, nil
}

// ClearOpeningHours clears the value of the "opening_hours" field.
func (m *ProspectMutation) ClearOpeningHours() {
	m.opening_hours = nil
	m.clearedFields[prospect.FieldOpeningHours] = struct{}{}
}

// OpeningHoursCleared returns if the "opening_hours" field was cleared in this mutation.
func (m *ProspectMutation) OpeningHoursCleared() bool {
	_, ok := m.clearedFields[prospect.FieldOpeningHours]
	return ok
}

// ResetOpeningHours resets all changes to the "opening_hours" field.
func (m *ProspectMutation) ResetOpeningHours() {
	m.opening_hours = nil
	delete(m.clearedFields, prospect.FieldOpeningHours)
}

// SetStatus sets the "status" field.
func (m *ProspectMutation) SetStatus(pr prospect.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProspectMutation) Status() (r prospect.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldStatus(ctx context.Context) (v prospect.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProspectMutation) ResetStatus() {
	m.status = nil
}

// SetNoteAvg sets the "note_avg" field.
func (m *ProspectMutation) SetNoteAvg(f float64) {
	m.note_avg = &f
	m.addnote_avg = nil
}

// NoteAvg returns the value of the "note_avg" field in the mutation.
func (m *ProspectMutation) NoteAvg() (r float64, exists bool) {
	v := m.note_avg
	if v == nil {
		return
	}
	return *v, true
}

// OldNoteAvg returns the old "note_avg" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldNoteAvg(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNoteAvg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNoteAvg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNoteAvg: %w", err)
	}
	return oldValue.NoteAvg, nil
}

// AddNoteAvg adds f to the "note_avg" field.
func (m *ProspectMutation) AddNoteAvg(f float64) {
	if m.addnote_avg != nil {
		*m.addnote_avg += f
	} else {
		m.addnote_avg = &f
	}
}

// AddedNoteAvg returns the value that was added to the "note_avg" field in this mutation.
func (m *ProspectMutation) AddedNoteAvg() (r float64, exists bool) {
	v := m.addnote_avg
	if v == nil {
		return
	}
	return *v, true
}

// ResetNoteAvg resets all changes to the "note_avg" field.
func (m *ProspectMutation) ResetNoteAvg() {
	m.note_avg = nil
	m.addnote_avg = nil
}

// SetVisitsCount sets the "visits_count" field.
func (m *ProspectMutation) SetVisitsCount(i int) {
	m.visits_count = &i
	m.addvisits_count = nil
}

// VisitsCount returns the value of the "visits_count" field in the mutation.
func (m *ProspectMutation) VisitsCount() (r int, exists bool) {
	v := m.visits_count
	if v == nil {
		return
	}
	return *v, true
}

// OldVisitsCount returns the old "visits_count" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldVisitsCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisitsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisitsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisitsCount: %w", err)
	}
	return oldValue.VisitsCount, nil
}

// AddVisitsCount adds i to the "visits_count" field.
func (m *ProspectMutation) AddVisitsCount(i int) {
	if m.addvisits_count != nil {
		*m.addvisits_count += i
	} else {
		m.addvisits_count = &i
	}
}

// AddedVisitsCount returns the value that was added to the "visits_count" field in this mutation.
func (m *ProspectMutation) AddedVisitsCount() (r int, exists bool) {
	v := m.addvisits_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetVisitsCount resets all changes to the "visits_count" field.
func (m *ProspectMutation) ResetVisitsCount() {
	m.visits_count = nil
	m.addvisits_count = nil
}

// SetLatitude sets the "latitude" field.
func (m *ProspectMutation) SetLatitude(f float64) {
	m.latitude = &f
	m.addlatitude = nil
}

// Latitude returns the value of the "latitude" field in the mutation.
func (m *ProspectMutation) Latitude() (r float64, exists bool) {
	v := m.latitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLatitude returns the old "latitude" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldLatitude(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatitude: %w", err)
	}
	return oldValue.Latitude, nil
}

// AddLatitude adds f to the "latitude" field.
func (m *ProspectMutation) AddLatitude(f float64) {
	if m.addlatitude != nil {
		*m.addlatitude += f
	} else {
		m.addlatitude = &f
	}
}

// AddedLatitude returns the value that was added to the "latitude" field in this mutation.
func (m *ProspectMutation) AddedLatitude() (r float64, exists bool) {
	v := m.addlatitude
	if v == nil {
		return
	}
	return *v, true
}

// ClearLatitude clears the value of the "latitude" field.
func (m *ProspectMutation) ClearLatitude() {
	m.latitude = nil
	m.addlatitude = nil
	m.clearedFields[prospect.FieldLatitude] = struct{}{}
}

// LatitudeCleared returns if the "latitude" field was cleared in this mutation.
func (m *ProspectMutation) LatitudeCleared() bool {
	_, ok := m.clearedFields[prospect.FieldLatitude]
	return ok
}

// ResetLatitude resets all changes to the "latitude" field.
func (m *ProspectMutation) ResetLatitude() {
	m.latitude = nil
	m.addlatitude = nil
	delete(m.clearedFields, prospect.FieldLatitude)
}

// SetLongitude sets the "longitude" field.
func (m *ProspectMutation) SetLongitude(f float64) {
	m.longitude = &f
	m.addlongitude = nil
}

// Longitude returns the value of the "longitude" field in the mutation.
func (m *ProspectMutation) Longitude() (r float64, exists bool) {
	v := m.longitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLongitude returns the old "longitude" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldLongitude(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongitude: %w", err)
	}
	return oldValue.Longitude, nil
}

// AddLongitude adds f to the "longitude" field.
func (m *ProspectMutation) AddLongitude(f float64) {
	if m.addlongitude != nil {
		*m.addlongitude += f
	} else {
		m.addlongitude = &f
	}
}

// AddedLongitude returns the value that was added to the "longitude" field in this mutation.
func (m *ProspectMutation) AddedLongitude() (r float64, exists bool) {
	v := m.addlongitude
	if v == nil {
		return
	}
	return *v, true
}

// ClearLongitude clears the value of the "longitude" field.
func (m *ProspectMutation) ClearLongitude() {
	m.longitude = nil
	m.addlongitude = nil
	m.clearedFields[prospect.FieldLongitude] = struct{}{}
}

// LongitudeCleared returns if the "longitude" field was cleared in this mutation.
func (m *ProspectMutation) LongitudeCleared() bool {
	_, ok := m.clearedFields[prospect.FieldLongitude]
	return ok
}

// ResetLongitude resets all changes to the "longitude" field.
func (m *ProspectMutation) ResetLongitude() {
	m.longitude = nil
	m.addlongitude = nil
	delete(m.clearedFields, prospect.FieldLongitude)
}

// SetGooglePlaceID sets the "google_place_id" field.
func (m *ProspectMutation) SetGooglePlaceID(s string) {
	m.google_place_id = &s
}

// GooglePlaceID returns the value of the "google_place_id" field in the mutation.
func (m *ProspectMutation) GooglePlaceID() (r string, exists bool) {
	v := m.google_place_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGooglePlaceID returns the old "google_place_id" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldGooglePlaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGooglePlaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGooglePlaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGooglePlaceID: %w", err)
	}
	return oldValue.GooglePlaceID, nil
}

// ClearGooglePlaceID clears the value of the "google_place_id" field.
func (m *ProspectMutation) ClearGooglePlaceID() {
	m.google_place_id = nil
	m.clearedFields[prospect.FieldGooglePlaceID] = struct{}{}
}

// GooglePlaceIDCleared returns if the "google_place_id" field was cleared in this mutation.
func (m *ProspectMutation) GooglePlaceIDCleared() bool {
	_, ok := m.clearedFields[prospect.FieldGooglePlaceID]
	return ok
}

// ResetGooglePlaceID resets all changes to the "google_place_id" field.
func (m *ProspectMutation) ResetGooglePlaceID() {
	m.google_place_id = nil
	delete(m.clearedFields, prospect.FieldGooglePlaceID)
}

// SetAiData sets the "ai_data" field.
func (m *ProspectMutation) SetAiData(value map[string]interface{}) {
	m.ai_data = &value
}

// AiData returns the value of the "ai_data" field in the mutation.
func (m *ProspectMutation) AiData() (r map[string]interface{}, exists bool) {
	v := m.ai_data
	if v == nil {
		return
	}
	return *v, true
}

// OldAiData returns the old "ai_data" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldAiData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiData: %w", err)
	}
	return oldValue.AiData, nil
}

// ClearAiData clears the value of the "ai_data" field.
func (m *ProspectMutation) ClearAiData() {
	m.ai_data = nil
	m.clearedFields[prospect.FieldAiData] = struct{}{}
}

// AiDataCleared returns if the "ai_data" field was cleared in this mutation.
func (m *ProspectMutation) AiDataCleared() bool {
	_, ok := m.clearedFields[prospect.FieldAiData]
	return ok
}

// ResetAiData resets all changes to the "ai_data" field.
func (m *ProspectMutation) ResetAiData() {
	m.ai_data = nil
	delete(m.clearedFields, prospect.FieldAiData)
}

// SetAiEnrichedAt sets the "ai_enriched_at" field.
func (m *ProspectMutation) SetAiEnrichedAt(t time.Time) {
	m.ai_enriched_at = &t
}

// AiEnrichedAt returns the value of the "ai_enriched_at" field in the mutation.
func (m *ProspectMutation) AiEnrichedAt() (r time.Time, exists bool) {
	v := m.ai_enriched_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAiEnrichedAt returns the old "ai_enriched_at" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldAiEnrichedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiEnrichedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiEnrichedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiEnrichedAt: %w", err)
	}
	return oldValue.AiEnrichedAt, nil
}

// ClearAiEnrichedAt clears the value of the "ai_enriched_at" field.
func (m *ProspectMutation) ClearAiEnrichedAt() {
	m.ai_enriched_at = nil
	m.clearedFields[prospect.FieldAiEnrichedAt] = struct{}{}
}

// AiEnrichedAtCleared returns if the "ai_enriched_at" field was cleared in this mutation.
func (m *ProspectMutation) AiEnrichedAtCleared() bool {
	_, ok := m.clearedFields[prospect.FieldAiEnrichedAt]
	return ok
}

// ResetAiEnrichedAt resets all changes to the "ai_enriched_at" field.
func (m *ProspectMutation) ResetAiEnrichedAt() {
	m.ai_enriched_at = nil
	delete(m.clearedFields, prospect.FieldAiEnrichedAt)
}

// SetAiScore sets the "ai_score" field.
func (m *ProspectMutation) SetAiScore(f float64) {
	m.ai_score = &f
	m.addai_score = nil
}

// AiScore returns the value of the "ai_score" field in the mutation.
func (m *ProspectMutation) AiScore() (r float64, exists bool) {
	v := m.ai_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAiScore returns the old "ai_score" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldAiScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiScore: %w", err)
	}
	return oldValue.AiScore, nil
}

// AddAiScore adds f to the "ai_score" field.
func (m *ProspectMutation) AddAiScore(f float64) {
	if m.addai_score != nil {
		*m.addai_score += f
	} else {
		m.addai_score = &f
	}
}

// AddedAiScore returns the value that was added to the "ai_score" field in this mutation.
func (m *ProspectMutation) AddedAiScore() (r float64, exists bool) {
	v := m.addai_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearAiScore clears the value of the "ai_score" field.
func (m *ProspectMutation) ClearAiScore() {
	m.ai_score = nil
	m.addai_score = nil
	m.clearedFields[prospect.FieldAiScore] = struct{}{}
}

// AiScoreCleared returns if the "ai_score" field was cleared in this mutation.
func (m *ProspectMutation) AiScoreCleared() bool {
	_, ok := m.clearedFields[prospect.FieldAiScore]
	return ok
}

// ResetAiScore resets all changes to the "ai_score" field.
func (m *ProspectMutation) ResetAiScore() {
	m.ai_score = nil
	m.addai_score = nil
	delete(m.clearedFields, prospect.FieldAiScore)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProspectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProspectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProspectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProspectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProspectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProspectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompanyID sets the "company" edge to the Company entity by id.
func (m *ProspectMutation) SetCompanyID(id uuid.UUID) {
	m.company = &id
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *ProspectMutation) ClearCompany() {
	m.clearedcompany = true
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *ProspectMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyID returns the "company" edge ID in the mutation.
func (m *ProspectMutation) CompanyID() (id uuid.UUID, exists bool) {
	if m.company != nil {
		return *m.company, true
	}
	return
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *ProspectMutation) CompanyIDs() (ids []uuid.UUID) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *ProspectMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// SetCreatorID sets the "creator" edge to the User entity by id.
func (m *ProspectMutation) SetCreatorID(id uuid.UUID) {
	m.creator = &id
}

// ClearCreator clears the "creator" edge to the User entity.
func (m *ProspectMutation) ClearCreator() {
	m.clearedcreator = true
}

// CreatorCleared reports if the "creator" edge to the User entity was cleared.
func (m *ProspectMutation) CreatorCleared() bool {
	return m.clearedcreator
}

// CreatorID returns the "creator" edge ID in the mutation.
func (m *ProspectMutation) CreatorID() (id uuid.UUID, exists bool) {
	if m.creator != nil {
		return *m.creator, true
	}
	return
}

// CreatorIDs returns the "creator" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CreatorID instead. It exists only for internal usage by the builders.
func (m *ProspectMutation) CreatorIDs() (ids []uuid.UUID) {
	if id := m.creator; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCreator resets all changes to the "creator" edge.
func (m *ProspectMutation) ResetCreator() {
	m.creator = nil
	m.clearedcreator = false
}

// AddVisitIDs adds the "visits" edge to the Visit entity by ids.
func (m *ProspectMutation) AddVisitIDs(ids ...uuid.UUID) {
	if m.visits == nil {
		m.visits = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.visits[ids[i]] = struct{}{}
	}
}

// ClearVisits clears the "visits" edge to the Visit entity.
func (m *ProspectMutation) ClearVisits() {
	m.clearedvisits = true
}

// VisitsCleared reports if the "visits" edge to the Visit entity was cleared.
func (m *ProspectMutation) VisitsCleared() bool {
	return m.clearedvisits
}

// RemoveVisitIDs removes the "visits" edge to the Visit entity by IDs.
func (m *ProspectMutation) RemoveVisitIDs(ids ...uuid.UUID) {
	if m.removedvisits == nil {
		m.removedvisits = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.visits, ids[i])
		m.removedvisits[ids[i]] = struct{}{}
	}
}

// RemovedVisits returns the removed IDs of the "visits" edge to the Visit entity.
func (m *ProspectMutation) RemovedVisitsIDs() (ids []uuid.UUID) {
	for id := range m.removedvisits {
		ids = append(ids, id)
	}
	return
}

// VisitsIDs returns the "visits" edge IDs in the mutation.
func (m *ProspectMutation) VisitsIDs() (ids []uuid.UUID) {
	for id := range m.visits {
		ids = append(ids, id)
	}
	return
}

// ResetVisits resets all changes to the "visits" edge.
func (m *ProspectMutation) ResetVisits() {
	m.visits = nil
	m.clearedvisits = false
	m.removedvisits = nil
}

// AddStepIDs adds the "steps" edge to the TourStep entity by ids.
func (m *ProspectMutation) AddStepIDs(ids ...uuid.UUID) {
	if m.steps == nil {
		m.steps = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the TourStep entity.
func (m *ProspectMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the TourStep entity was cleared.
func (m *ProspectMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the TourStep entity by IDs.
func (m *ProspectMutation) RemoveStepIDs(ids ...uuid.UUID) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the TourStep entity.
func (m *ProspectMutation) RemovedStepsIDs() (ids []uuid.UUID) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *ProspectMutation) StepsIDs() (ids []uuid.UUID) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *ProspectMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// Where appends a list predicates to the ProspectMutation builder.
func (m *ProspectMutation) Where(ps ...predicate.Prospect) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProspectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProspectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Prospect, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProspectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProspectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Prospect).
func (m *ProspectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProspectMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.name != nil {
		fields = append(fields, prospect.FieldName)
	}
	if m.name_folded != nil {
		fields = append(fields, prospect.FieldNameFolded)
	}
	if m._type != nil {
		fields = append(fields, prospect.FieldType)
	}
	if m.address != nil {
		fields = append(fields, prospect.FieldAddress)
	}
	if m.postal_code != nil {
		fields = append(fields, prospect.FieldPostalCode)
	}
	if m.city != nil {
		fields = append(fields, prospect.FieldCity)
	}
	if m.country != nil {
		fields = append(fields, prospect.FieldCountry)
	}
	if m.phone != nil {
		fields = append(fields, prospect.FieldPhone)
	}
	if m.email != nil {
		fields = append(fields, prospect.FieldEmail)
	}
	if m.website != nil {
		fields = append(fields, prospect.FieldWebsite)
	}
	if m.manager_name != nil {
		fields = append(fields, prospect.FieldManagerName)
	}
	if m.opening_hours != nil {
		fields = append(fields, prospect.FieldOpeningHours)
	}
	if m.status != nil {
		fields = append(fields, prospect.FieldStatus)
	}
	if m.note_avg != nil {
		fields = append(fields, prospect.FieldNoteAvg)
	}
	if m.visits_count != nil {
		fields = append(fields, prospect.FieldVisitsCount)
	}
	if m.latitude != nil {
		fields = append(fields, prospect.FieldLatitude)
	}
	if m.longitude != nil {
		fields = append(fields, prospect.FieldLongitude)
	}
	if m.google_place_id != nil {
		fields = append(fields, prospect.FieldGooglePlaceID)
	}
	if m.ai_data != nil {
		fields = append(fields, prospect.FieldAiData)
	}
	if m.ai_enriched_at != nil {
		fields = append(fields, prospect.FieldAiEnrichedAt)
	}
	if m.ai_score != nil {
		fields = append(fields, prospect.FieldAiScore)
	}
	if m.created_at != nil {
		fields = append(fields, prospect.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, prospect.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProspectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prospect.FieldName:
		return m.Name()
	case prospect.FieldNameFolded:
		return m.NameFolded()
	case prospect.FieldType:
		return m.GetType()
	case prospect.FieldAddress:
		return m.Address()
	case prospect.FieldPostalCode:
		return m.PostalCode()
	case prospect.FieldCity:
		return m.City()
	case prospect.FieldCountry:
		return m.Country()
	case prospect.FieldPhone:
		return m.Phone()
	case prospect.FieldEmail:
		return m.Email()
	case prospect.FieldWebsite:
		return m.Website()
	case prospect.FieldManagerName:
		return m.ManagerName()
	case prospect.FieldOpeningHours:
		return m.OpeningHours()
	case prospect.FieldStatus:
		return m.Status()
	case prospect.FieldNoteAvg:
		return m.NoteAvg()
	case prospect.FieldVisitsCount:
		return m.VisitsCount()
	case prospect.FieldLatitude:
		return m.Latitude()
	case prospect.FieldLongitude:
		return m.Longitude()
	case prospect.FieldGooglePlaceID:
		return m.GooglePlaceID()
	case prospect.FieldAiData:
		return m.AiData()
	case prospect.FieldAiEnrichedAt:
		return m.AiEnrichedAt()
	case prospect.FieldAiScore:
		return m.AiScore()
	case prospect.FieldCreatedAt:
		return m.CreatedAt()
	case prospect.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProspectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prospect.FieldName:
		return m.OldName(ctx)
	case prospect.FieldNameFolded:
		return m.OldNameFolded(ctx)
	case prospect.FieldType:
		return m.OldType(ctx)
	case prospect.FieldAddress:
		return m.OldAddress(ctx)
	case prospect.FieldPostalCode:
		return m.OldPostalCode(ctx)
	case prospect.FieldCity:
		return m.OldCity(ctx)
	case prospect.FieldCountry:
		return m.OldCountry(ctx)
	case prospect.FieldPhone:
		return m.OldPhone(ctx)
	case prospect.FieldEmail:
		return m.OldEmail(ctx)
	case prospect.FieldWebsite:
		return m.OldWebsite(ctx)
	case prospect.FieldManagerName:
		return m.OldManagerName(ctx)
	case prospect.FieldOpeningHours:
		return m.OldOpeningHours(ctx)
	case prospect.FieldStatus:
		return m.OldStatus(ctx)
	case prospect.FieldNoteAvg:
		return m.OldNoteAvg(ctx)
	case prospect.FieldVisitsCount:
		return m.OldVisitsCount(ctx)
	case prospect.FieldLatitude:
		return m.OldLatitude(ctx)
	case prospect.FieldLongitude:
		return m.OldLongitude(ctx)
	case prospect.FieldGooglePlaceID:
		return m.OldGooglePlaceID(ctx)
	case prospect.FieldAiData:
		return m.OldAiData(ctx)
	case prospect.FieldAiEnrichedAt:
		return m.OldAiEnrichedAt(ctx)
	case prospect.FieldAiScore:
		return m.OldAiScore(ctx)
	case prospect.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case prospect.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Prospect field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProspectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prospect.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case prospect.FieldNameFolded:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNameFolded(v)
		return nil
	case prospect.FieldType:
		v, ok := value.(prospect.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case prospect.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case prospect.FieldPostalCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostalCode(v)
		return nil
	case prospect.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case prospect.FieldCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountry(v)
		return nil
	case prospect.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case prospect.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case prospect.FieldWebsite:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebsite(v)
		return nil
	case prospect.FieldManagerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManagerName(v)
		return nil
	case prospect.FieldOpeningHours:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpeningHours(v)
		return nil
	case prospect.FieldStatus:
		v, ok := value.(prospect.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case prospect.FieldNoteAvg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNoteAvg(v)
		return nil
	case prospect.FieldVisitsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisitsCount(v)
		return nil
	case prospect.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatitude(v)
		return nil
	case prospect.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongitude(v)
		return nil
	case prospect.FieldGooglePlaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGooglePlaceID(v)
		return nil
	case prospect.FieldAiData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiData(v)
		return nil
	case prospect.FieldAiEnrichedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiEnrichedAt(v)
		return nil
	case prospect.FieldAiScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiScore(v)
		return nil
	case prospect.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case prospect.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Prospect field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProspectMutation) AddedFields() []string {
	var fields []string
	if m.addnote_avg != nil {
		fields = append(fields, prospect.FieldNoteAvg)
	}
	if m.addvisits_count != nil {
		fields = append(fields, prospect.FieldVisitsCount)
	}
	if m.addlatitude != nil {
		fields = append(fields, prospect.FieldLatitude)
	}
	if m.addlongitude != nil {
		fields = append(fields, prospect.FieldLongitude)
	}
	if m.addai_score != nil {
		fields = append(fields, prospect.FieldAiScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProspectMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case prospect.FieldNoteAvg:
		return m.AddedNoteAvg()
	case prospect.FieldVisitsCount:
		return m.AddedVisitsCount()
	case prospect.FieldLatitude:
		return m.AddedLatitude()
	case prospect.FieldLongitude:
		return m.AddedLongitude()
	case prospect.FieldAiScore:
		return m.AddedAiScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProspectMutation) AddField(name string, value ent.Value) error {
	switch name {
	case prospect.FieldNoteAvg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNoteAvg(v)
		return nil
	case prospect.FieldVisitsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVisitsCount(v)
		return nil
	case prospect.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatitude(v)
		return nil
	case prospect.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLongitude(v)
		return nil
	case prospect.FieldAiScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAiScore(v)
		return nil
	}
	return fmt.Errorf("unknown Prospect numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProspectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(prospect.FieldNameFolded) {
		fields = append(fields, prospect.FieldNameFolded)
	}
	if m.FieldCleared(prospect.FieldType) {
		fields = append(fields, prospect.FieldType)
	}
	if m.FieldCleared(prospect.FieldAddress) {
		fields = append(fields, prospect.FieldAddress)
	}
	if m.FieldCleared(prospect.FieldPostalCode) {
		fields = append(fields, prospect.FieldPostalCode)
	}
	if m.FieldCleared(prospect.FieldCity) {
		fields = append(fields, prospect.FieldCity)
	}
	if m.FieldCleared(prospect.FieldPhone) {
		fields = append(fields, prospect.FieldPhone)
	}
	if m.FieldCleared(prospect.FieldEmail) {
		fields = append(fields, prospect.FieldEmail)
	}
	if m.FieldCleared(prospect.FieldWebsite) {
		fields = append(fields, prospect.FieldWebsite)
	}
	if m.FieldCleared(prospect.FieldManagerName) {
		fields = append(fields, prospect.FieldManagerName)
	}
	if m.FieldCleared(prospect.FieldOpeningHours) {
		fields = append(fields, prospect.FieldOpeningHours)
	}
	if m.FieldCleared(prospect.FieldLatitude) {
		fields = append(fields, prospect.FieldLatitude)
	}
	if m.FieldCleared(prospect.FieldLongitude) {
		fields = append(fields, prospect.FieldLongitude)
	}
	if m.FieldCleared(prospect.FieldGooglePlaceID) {
		fields = append(fields, prospect.FieldGooglePlaceID)
	}
	if m.FieldCleared(prospect.FieldAiData) {
		fields = append(fields, prospect.FieldAiData)
	}
	if m.FieldCleared(prospect.FieldAiEnrichedAt) {
		fields = append(fields, prospect.FieldAiEnrichedAt)
	}
	if m.FieldCleared(prospect.FieldAiScore) {
		fields = append(fields, prospect.FieldAiScore)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProspectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProspectMutation) ClearField(name string) error {
	switch name {
	case prospect.FieldNameFolded:
		m.ClearNameFolded()
		return nil
	case prospect.FieldType:
		m.ClearType()
		return nil
	case prospect.FieldAddress:
		m.ClearAddress()
		return nil
	case prospect.FieldPostalCode:
		m.ClearPostalCode()
		return nil
	case prospect.FieldCity:
		m.ClearCity()
		return nil
	case prospect.FieldPhone:
		m.ClearPhone()
		return nil
	case prospect.FieldEmail:
		m.ClearEmail()
		return nil
	case prospect.FieldWebsite:
		m.ClearWebsite()
		return nil
	case prospect.FieldManagerName:
		m.ClearManagerName()
		return nil
	case prospect.FieldOpeningHours:
		m.ClearOpeningHours()
		return nil
	case prospect.FieldLatitude:
		m.ClearLatitude()
		return nil
	case prospect.FieldLongitude:
		m.ClearLongitude()
		return nil
	case prospect.FieldGooglePlaceID:
		m.ClearGooglePlaceID()
		return nil
	case prospect.FieldAiData:
		m.ClearAiData()
		return nil
	case prospect.FieldAiEnrichedAt:
		m.ClearAiEnrichedAt()
		return nil
	case prospect.FieldAiScore:
		m.ClearAiScore()
		return nil
	}
	return fmt.Errorf("unknown Prospect nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProspectMutation) ResetField(name string) error {
	switch name {
	case prospect.FieldName:
		m.ResetName()
		return nil
	case prospect.FieldNameFolded:
		m.ResetNameFolded()
		return nil
	case prospect.FieldType:
		m.ResetType()
		return nil
	case prospect.FieldAddress:
		m.ResetAddress()
		return nil
	case prospect.FieldPostalCode:
		m.ResetPostalCode()
		return nil
	case prospect.FieldCity:
		m.ResetCity()
		return nil
	case prospect.FieldCountry:
		m.ResetCountry()
		return nil
	case prospect.FieldPhone:
		m.ResetPhone()
		return nil
	case prospect.FieldEmail:
		m.ResetEmail()
		return nil
	case prospect.FieldWebsite:
		m.ResetWebsite()
		return nil
	case prospect.FieldManagerName:
		m.ResetManagerName()
		return nil
	case prospect.FieldOpeningHours:
		m.ResetOpeningHours()
		return nil
	case prospect.FieldStatus:
		m.ResetStatus()
		return nil
	case prospect.FieldNoteAvg:
		m.ResetNoteAvg()
		return nil
	case prospect.FieldVisitsCount:
		m.ResetVisitsCount()
		return nil
	case prospect.FieldLatitude:
		m.ResetLatitude()
		return nil
	case prospect.FieldLongitude:
		m.ResetLongitude()
		return nil
	case prospect.FieldGooglePlaceID:
		m.ResetGooglePlaceID()
		return nil
	case prospect.FieldAiData:
		m.ResetAiData()
		return nil
	case prospect.FieldAiEnrichedAt:
		m.ResetAiEnrichedAt()
		return nil
	case prospect.FieldAiScore:
		m.ResetAiScore()
		return nil
	case prospect.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case prospect.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Prospect field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProspectMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.company != nil {
		edges = append(edges, prospect.EdgeCompany)
	}
	if m.creator != nil {
		edges = append(edges, prospect.EdgeCreator)
	}
	if m.visits != nil {
		edges = append(edges, prospect.EdgeVisits)
	}
	if m.steps != nil {
		edges = append(edges, prospect.EdgeSteps)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProspectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case prospect.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case prospect.EdgeCreator:
		if id := m.creator; id != nil {
			return []ent.Value{*id}
		}
	case prospect.EdgeVisits:
		ids := make([]ent.Value, 0, len(m.visits))
		for id := range m.visits {
			ids = append(ids, id)
		}
		return ids
	case prospect.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProspectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedvisits != nil {
		edges = append(edges, prospect.EdgeVisits)
	}
	if m.removedsteps != nil {
		edges = append(edges, prospect.EdgeSteps)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProspectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case prospect.EdgeVisits:
		ids := make([]ent.Value, 0, len(m.removedvisits))
		for id := range m.removedvisits {
			ids = append(ids, id)
		}
		return ids
	case prospect.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProspectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedcompany {
		edges = append(edges, prospect.EdgeCompany)
	}
	if m.clearedcreator {
		edges = append(edges, prospect.EdgeCreator)
	}
	if m.clearedvisits {
		edges = append(edges, prospect.EdgeVisits)
	}
	if m.clearedsteps {
		edges = append(edges, prospect.EdgeSteps)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProspectMutation) EdgeCleared(name string) bool {
	switch name {
	case prospect.EdgeCompany:
		return m.clearedcompany
	case prospect.EdgeCreator:
		return m.clearedcreator
	case prospect.EdgeVisits:
		return m.clearedvisits
	case prospect.EdgeSteps:
		return m.clearedsteps
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProspectMutation) ClearEdge(name string) error {
	switch name {
	case prospect.EdgeCompany:
		m.ClearCompany()
		return nil
	case prospect.EdgeCreator:
		m.ClearCreator()
		return nil
	}
	return fmt.Errorf("unknown Prospect unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProspectMutation) ResetEdge(name string) error {
	switch name {
	case prospect.EdgeCompany:
		m.ResetCompany()
		return nil
	case prospect.EdgeCreator:
		m.ResetCreator()
		return nil
	case prospect.EdgeVisits:
		m.ResetVisits()
		return nil
	case prospect.EdgeSteps:
		m.ResetSteps()
		return nil
	}
	return fmt.Errorf("unknown Prospect edge %s", name)
}

// RefreshTokenMutation represents an operation that mutates the RefreshToken nodes in the graph.
type RefreshTokenMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	token_hash    *string
	expires_at    *time.Time
	revoked_at    *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	user          *uuid.UUID
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*RefreshToken, error)
	predicates    []predicate.RefreshToken
}

var _ ent.Mutation = (*RefreshTokenMutation)(nil)

// refreshtokenOption allows management of the mutation configuration using functional options.
type refreshtokenOption func(*RefreshTokenMutation)

// newRefreshTokenMutation creates new mutation for the RefreshToken entity.
func newRefreshTokenMutation(c config, op Op, opts ...refreshtokenOption) *RefreshTokenMutation {
	m := &RefreshTokenMutation{
		config:        c,
		op:            op,
		typ:           TypeRefreshToken,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRefreshTokenID sets the ID field of the mutation.
func withRefreshTokenID(id uuid.UUID) refreshtokenOption {
	return func(m *RefreshTokenMutation) {
		var (
			err   error
			once  sync.Once
			value *RefreshToken
		)
		m.oldValue = func(ctx context.Context) (*RefreshToken, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RefreshToken.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRefreshToken sets the old RefreshToken of the mutation.
func withRefreshToken(node *RefreshToken) refreshtokenOption {
	return func(m *RefreshTokenMutation) {
		m.oldValue = func(context.Context) (*RefreshToken, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RefreshTokenMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RefreshTokenMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RefreshToken entities.
func (m *RefreshTokenMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RefreshTokenMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RefreshTokenMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RefreshToken.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTokenHash sets the "token_hash" field.
func (m *RefreshTokenMutation) SetTokenHash(s string) {
	m.token_hash = &s
}

// TokenHash returns the value of the "token_hash" field in the mutation.
func (m *RefreshTokenMutation) TokenHash() (r string, exists bool) {
	v := m.token_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenHash returns the old "token_hash" field's value of the RefreshToken entity.
// If the RefreshToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefreshTokenMutation) OldTokenHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenHash: %w", err)
	}
	return oldValue.TokenHash, nil
}

// ResetTokenHash resets all changes to the "token_hash" field.
func (m *RefreshTokenMutation) ResetTokenHash() {
	m.token_hash = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *RefreshTokenMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *RefreshTokenMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the RefreshToken entity.
// If the RefreshToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefreshTokenMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *RefreshTokenMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetRevokedAt sets the "revoked_at" field.
func (m *RefreshTokenMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *RefreshTokenMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the RefreshToken entity.
// If the RefreshToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefreshTokenMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *RefreshTokenMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[refreshtoken.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *RefreshTokenMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[refreshtoken.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *RefreshTokenMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, refreshtoken.FieldRevokedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *RefreshTokenMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RefreshTokenMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RefreshToken entity.
// If the RefreshToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefreshTokenMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RefreshTokenMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUserID sets the "user" edge to the User entity by id.
func (m *RefreshTokenMutation) SetUserID(id uuid.UUID) {
	m.user = &id
}

// ClearUser clears the "user" edge to the User entity.
func (m *RefreshTokenMutation) ClearUser() {
	m.cleareduser = true
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *RefreshTokenMutation) UserCleared() bool {
	return m.cleareduser
}

// UserID returns the "user" edge ID in the mutation.
func (m *RefreshTokenMutation) UserID() (id uuid.UUID, exists bool) {
	if m.user != nil {
		return *m.user, true
	}
	return
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *RefreshTokenMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *RefreshTokenMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the RefreshTokenMutation builder.
func (m *RefreshTokenMutation) Where(ps ...predicate.RefreshToken) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RefreshTokenMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RefreshTokenMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RefreshToken, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RefreshTokenMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RefreshTokenMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RefreshToken).
func (m *RefreshTokenMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RefreshTokenMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.token_hash != nil {
		fields = append(fields, refreshtoken.FieldTokenHash)
	}
	if m.expires_at != nil {
		fields = append(fields, refreshtoken.FieldExpiresAt)
	}
	if m.revoked_at != nil {
		fields = append(fields, refreshtoken.FieldRevokedAt)
	}
	if m.created_at != nil {
		fields = append(fields, refreshtoken.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RefreshTokenMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case refreshtoken.FieldTokenHash:
		return m.TokenHash()
	case refreshtoken.FieldExpiresAt:
		return m.ExpiresAt()
	case refreshtoken.FieldRevokedAt:
		return m.RevokedAt()
	case refreshtoken.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RefreshTokenMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case refreshtoken.FieldTokenHash:
		return m.OldTokenHash(ctx)
	case refreshtoken.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case refreshtoken.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	case refreshtoken.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RefreshToken field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RefreshTokenMutation) SetField(name string, value ent.Value) error {
	switch name {
	case refreshtoken.FieldTokenHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenHash(v)
		return nil
	case refreshtoken.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case refreshtoken.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	case refreshtoken.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RefreshToken field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RefreshTokenMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RefreshTokenMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RefreshTokenMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RefreshToken numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RefreshTokenMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(refreshtoken.FieldRevokedAt) {
		fields = append(fields, refreshtoken.FieldRevokedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RefreshTokenMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RefreshTokenMutation) ClearField(name string) error {
	switch name {
	case refreshtoken.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown RefreshToken nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RefreshTokenMutation) ResetField(name string) error {
	switch name {
	case refreshtoken.FieldTokenHash:
		m.ResetTokenHash()
		return nil
	case refreshtoken.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case refreshtoken.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	case refreshtoken.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RefreshToken field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RefreshTokenMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, refreshtoken.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RefreshTokenMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case refreshtoken.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RefreshTokenMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RefreshTokenMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RefreshTokenMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, refreshtoken.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RefreshTokenMutation) EdgeCleared(name string) bool {
	switch name {
	case refreshtoken.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RefreshTokenMutation) ClearEdge(name string) error {
	switch name {
	case refreshtoken.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown RefreshToken unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RefreshTokenMutation) ResetEdge(name string) error {
	switch name {
	case refreshtoken.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown RefreshToken edge %s", name)
}

// TourMutation represents an operation that mutates the Tour nodes in the graph.
type TourMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	name                      *string
	date                      *time.Time
	status                    *tour.Status
	total_distance_km         *float64
	addtotal_distance_km      *float64
	total_duration_minutes    *int
	addtotal_duration_minutes *int
	route_data                *map[string]interface{}
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	company                   *uuid.UUID
	clearedcompany            bool
	user                      *uuid.UUID
	cleareduser               bool
	steps                     map[uuid.UUID]struct{}
	removedsteps              map[uuid.UUID]struct{}
	clearedsteps              bool
	visits                    map[uuid.UUID]struct{}
	removedvisits             map[uuid.UUID]struct{}
	clearedvisits             bool
	done                      bool
	oldValue                  func(context.Context) (*Tour, error)
	predicates                []predicate.Tour
}

var _ ent.Mutation = (*TourMutation)(nil)

// tourOption allows management of the mutation configuration using functional options.
type tourOption func(*TourMutation)

// newTourMutation creates new mutation for the Tour entity.
func newTourMutation(c config, op Op, opts ...tourOption) *TourMutation {
	m := &TourMutation{
		config:        c,
		op:            op,
		typ:           TypeTour,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTourID sets the ID field of the mutation.
func withTourID(id uuid.UUID) tourOption {
	return func(m *TourMutation) {
		var (
			err   error
			once  sync.Once
			value *Tour
		)
		m.oldValue = func(ctx context.Context) (*Tour, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tour.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTour sets the old Tour of the mutation.
func withTour(node *Tour) tourOption {
	return func(m *TourMutation) {
		m.oldValue = func(context.Context) (*Tour, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TourMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TourMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Tour entities.
func (m *TourMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TourMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TourMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tour.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TourMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TourMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Tour entity.
// If the Tour object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *TourMutation) ClearName() {
	m.name = nil
	m.clearedFields[tour.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *TourMutation) NameCleared() bool {
	_, ok := m.clearedFields[tour.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *TourMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, tour.FieldName)
}

// SetDate sets the "date" field.
func (m *TourMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *TourMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the Tour entity.
// If the Tour object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *TourMutation) ResetDate() {
	m.date = nil
}

// SetStatus sets the "status" field.
func (m *TourMutation) SetStatus(t tour.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TourMutation) Status() (r tour.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Tour entity.
// If the Tour object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourMutation) OldStatus(ctx context.Context) (v tour.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TourMutation) ResetStatus() {
	m.status = nil
}

// SetTotalDistanceKm sets the "total_distance_km" field.
func (m *TourMutation) SetTotalDistanceKm(f float64) {
	m.total_distance_km = &f
	m.addtotal_distance_km = nil
}

// TotalDistanceKm returns the value of the "total_distance_km" field in the mutation.
func (m *TourMutation) TotalDistanceKm() (r float64, exists bool) {
	v := m.total_distance_km
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalDistanceKm returns the old "total_distance_km" field's value of the Tour entity.
// If the Tour object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourMutation) OldTotalDistanceKm(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalDistanceKm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalDistanceKm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalDistanceKm: %w", err)
	}
	return oldValue.TotalDistanceKm, nil
}

// AddTotalDistanceKm adds f to the "total_distance_km" field.
func (m *TourMutation) AddTotalDistanceKm(f float64) {
	if m.addtotal_distance_km != nil {
		*m.addtotal_distance_km += f
	} else {
		m.addtotal_distance_km = &f
	}
}

// AddedTotalDistanceKm returns the value that was added to the "total_distance_km" field in this mutation.
func (m *TourMutation) AddedTotalDistanceKm() (r float64, exists bool) {
	v := m.addtotal_distance_km
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalDistanceKm clears the value of the "total_distance_km" field.
func (m *TourMutation) ClearTotalDistanceKm() {
	m.total_distance_km = nil
	m.addtotal_distance_km = nil
	m.clearedFields[tour.FieldTotalDistanceKm] = struct{}{}
}

// TotalDistanceKmCleared returns if the "total_distance_km" field was cleared in this mutation.
func (m *TourMutation) TotalDistanceKmCleared() bool {
	_, ok := m.clearedFields[tour.FieldTotalDistanceKm]
	return ok
}

// ResetTotalDistanceKm resets all changes to the "total_distance_km" field.
func (m *TourMutation) ResetTotalDistanceKm() {
	m.total_distance_km = nil
	m.addtotal_distance_km = nil
	delete(m.clearedFields, tour.FieldTotalDistanceKm)
}

// SetTotalDurationMinutes sets the "total_duration_minutes" field.
func (m *TourMutation) SetTotalDurationMinutes(i int) {
	m.total_duration_minutes = &i
	m.addtotal_duration_minutes = nil
}

// TotalDurationMinutes returns the value of the "total_duration_minutes" field in the mutation.
func (m *TourMutation) TotalDurationMinutes() (r int, exists bool) {
	v := m.total_duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalDurationMinutes returns the old "total_duration_minutes" field's value of the Tour entity.
// If the Tour object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourMutation) OldTotalDurationMinutes(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalDurationMinutes: %w", err)
	}
	return oldValue.TotalDurationMinutes, nil
}

// AddTotalDurationMinutes adds i to the "total_duration_minutes" field.
func (m *TourMutation) AddTotalDurationMinutes(i int) {
	if m.addtotal_duration_minutes != nil {
		*m.addtotal_duration_minutes += i
	} else {
		m.addtotal_duration_minutes = &i
	}
}

// AddedTotalDurationMinutes returns the value that was added to the "total_duration_minutes" field in this mutation.
func (m *TourMutation) AddedTotalDurationMinutes() (r int, exists bool) {
	v := m.addtotal_duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalDurationMinutes clears the value of the "total_duration_minutes" field.
func (m *TourMutation) ClearTotalDurationMinutes() {
	m.total_duration_minutes = nil
	m.addtotal_duration_minutes = nil
	m.clearedFields[tour.FieldTotalDurationMinutes] = struct{}{}
}

// TotalDurationMinutesCleared returns if the "total_duration_minutes" field was cleared in this mutation.
func (m *TourMutation) TotalDurationMinutesCleared() bool {
	_, ok := m.clearedFields[tour.FieldTotalDurationMinutes]
	return ok
}

// ResetTotalDurationMinutes resets all changes to the "total_duration_minutes" field.
func (m *TourMutation) ResetTotalDurationMinutes() {
	m.total_duration_minutes = nil
	m.addtotal_duration_minutes = nil
	delete(m.clearedFields, tour.FieldTotalDurationMinutes)
}

// SetRouteData sets the "route_data" field.
func (m *TourMutation) SetRouteData(value map[string]interface{}) {
	m.route_data = &value
}

// RouteData returns the value of the "route_data" field in the mutation.
func (m *TourMutation) RouteData() (r map[string]interface{}, exists bool) {
	v := m.route_data
	if v == nil {
		return
	}
	return *v, true
}

// OldRouteData returns the old "route_data" field's value of the Tour entity.
// If the Tour object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourMutation) OldRouteData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRouteData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRouteData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRouteData: %w", err)
	}
	return oldValue.RouteData, nil
}

// ClearRouteData clears the value of the "route_data" field.
func (m *TourMutation) ClearRouteData() {
	m.route_data = nil
	m.clearedFields[tour.FieldRouteData] = struct{}{}
}

// RouteDataCleared returns if the "route_data" field was cleared in this mutation.
func (m *TourMutation) RouteDataCleared() bool {
	_, ok := m.clearedFields[tour.FieldRouteData]
	return ok
}

// ResetRouteData resets all changes to the "route_data" field.
func (m *TourMutation) ResetRouteData() {
	m.route_data = nil
	delete(m.clearedFields, tour.FieldRouteData)
}

// SetCreatedAt sets the "created_at" field.
func (m *TourMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TourMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Tour entity.
// If the Tour object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TourMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TourMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TourMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Tour entity.
// If the Tour object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TourMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompanyID sets the "company" edge to the Company entity by id.
func (m *TourMutation) SetCompanyID(id uuid.UUID) {
	m.company = &id
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *TourMutation) ClearCompany() {
	m.clearedcompany = true
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *TourMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyID returns the "company" edge ID in the mutation.
func (m *TourMutation) CompanyID() (id uuid.UUID, exists bool) {
	if m.company != nil {
		return *m.company, true
	}
	return
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *TourMutation) CompanyIDs() (ids []uuid.UUID) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *TourMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// SetUserID sets the "user" edge to the User entity by id.
func (m *TourMutation) SetUserID(id uuid.UUID) {
	m.user = &id
}

// ClearUser clears the "user" edge to the User entity.
func (m *TourMutation) ClearUser() {
	m.cleareduser = true
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *TourMutation) UserCleared() bool {
	return m.cleareduser
}

// UserID returns the "user" edge ID in the mutation.
func (m *TourMutation) UserID() (id uuid.UUID, exists bool) {
	if m.user != nil {
		return *m.user, true
	}
	return
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *TourMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *TourMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddStepIDs adds the "steps" edge to the TourStep entity by ids.
func (m *TourMutation) AddStepIDs(ids ...uuid.UUID) {
	if m.steps == nil {
		m.steps = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the TourStep entity.
func (m *TourMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the TourStep entity was cleared.
func (m *TourMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the TourStep entity by IDs.
func (m *TourMutation) RemoveStepIDs(ids ...uuid.UUID) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the TourStep entity.
func (m *TourMutation) RemovedStepsIDs() (ids []uuid.UUID) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *TourMutation) StepsIDs() (ids []uuid.UUID) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *TourMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// AddVisitIDs adds the "visits" edge to the Visit entity by ids.
func (m *TourMutation) AddVisitIDs(ids ...uuid.UUID) {
	if m.visits == nil {
		m.visits = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.visits[ids[i]] = struct{}{}
	}
}

// ClearVisits clears the "visits" edge to the Visit entity.
func (m *TourMutation) ClearVisits() {
	m.clearedvisits = true
}

// VisitsCleared reports if the "visits" edge to the Visit entity was cleared.
func (m *TourMutation) VisitsCleared() bool {
	return m.clearedvisits
}

// RemoveVisitIDs removes the "visits" edge to the Visit entity by IDs.
func (m *TourMutation) RemoveVisitIDs(ids ...uuid.UUID) {
	if m.removedvisits == nil {
		m.removedvisits = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.visits, ids[i])
		m.removedvisits[ids[i]] = struct{}{}
	}
}

// RemovedVisits returns the removed IDs of the "visits" edge to the Visit entity.
func (m *TourMutation) RemovedVisitsIDs() (ids []uuid.UUID) {
	for id := range m.removedvisits {
		ids = append(ids, id)
	}
	return
}

// VisitsIDs returns the "visits" edge IDs in the mutation.
func (m *TourMutation) VisitsIDs() (ids []uuid.UUID) {
	for id := range m.visits {
		ids = append(ids, id)
	}
	return
}

// ResetVisits resets all changes to the "visits" edge.
func (m *TourMutation) ResetVisits() {
	m.visits = nil
	m.clearedvisits = false
	m.removedvisits = nil
}

// Where appends a list predicates to the TourMutation builder.
func (m *TourMutation) Where(ps ...predicate.Tour) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TourMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TourMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tour, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TourMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TourMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tour).
func (m *TourMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TourMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, tour.FieldName)
	}
	if m.date != nil {
		fields = append(fields, tour.FieldDate)
	}
	if m.status != nil {
		fields = append(fields, tour.FieldStatus)
	}
	if m.total_distance_km != nil {
		fields = append(fields, tour.FieldTotalDistanceKm)
	}
	if m.total_duration_minutes != nil {
		fields = append(fields, tour.FieldTotalDurationMinutes)
	}
	if m.route_data != nil {
		fields = append(fields, tour.FieldRouteData)
	}
	if m.created_at != nil {
		fields = append(fields, tour.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tour.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TourMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tour.FieldName:
		return m.Name()
	case tour.FieldDate:
		return m.Date()
	case tour.FieldStatus:
		return m.Status()
	case tour.FieldTotalDistanceKm:
		return m.TotalDistanceKm()
	case tour.FieldTotalDurationMinutes:
		return m.TotalDurationMinutes()
	case tour.FieldRouteData:
		return m.RouteData()
	case tour.FieldCreatedAt:
		return m.CreatedAt()
	case tour.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TourMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tour.FieldName:
		return m.OldName(ctx)
	case tour.FieldDate:
		return m.OldDate(ctx)
	case tour.FieldStatus:
		return m.OldStatus(ctx)
	case tour.FieldTotalDistanceKm:
		return m.OldTotalDistanceKm(ctx)
	case tour.FieldTotalDurationMinutes:
		return m.OldTotalDurationMinutes(ctx)
	case tour.FieldRouteData:
		return m.OldRouteData(ctx)
	case tour.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tour.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Tour field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TourMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tour.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tour.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case tour.FieldStatus:
		v, ok := value.(tour.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case tour.FieldTotalDistanceKm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalDistanceKm(v)
		return nil
	case tour.FieldTotalDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalDurationMinutes(v)
		return nil
	case tour.FieldRouteData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRouteData(v)
		return nil
	case tour.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tour.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Tour field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TourMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_distance_km != nil {
		fields = append(fields, tour.FieldTotalDistanceKm)
	}
	if m.addtotal_duration_minutes != nil {
		fields = append(fields, tour.FieldTotalDurationMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TourMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tour.FieldTotalDistanceKm:
		return m.AddedTotalDistanceKm()
	case tour.FieldTotalDurationMinutes:
		return m.AddedTotalDurationMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TourMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tour.FieldTotalDistanceKm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalDistanceKm(v)
		return nil
	case tour.FieldTotalDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalDurationMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown Tour numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TourMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tour.FieldName) {
		fields = append(fields, tour.FieldName)
	}
	if m.FieldCleared(tour.FieldTotalDistanceKm) {
		fields = append(fields, tour.FieldTotalDistanceKm)
	}
	if m.FieldCleared(tour.FieldTotalDurationMinutes) {
		fields = append(fields, tour.FieldTotalDurationMinutes)
	}
	if m.FieldCleared(tour.FieldRouteData) {
		fields = append(fields, tour.FieldRouteData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TourMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TourMutation) ClearField(name string) error {
	switch name {
	case tour.FieldName:
		m.ClearName()
		return nil
	case tour.FieldTotalDistanceKm:
		m.ClearTotalDistanceKm()
		return nil
	case tour.FieldTotalDurationMinutes:
		m.ClearTotalDurationMinutes()
		return nil
	case tour.FieldRouteData:
		m.ClearRouteData()
		return nil
	}
	return fmt.Errorf("unknown Tour nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TourMutation) ResetField(name string) error {
	switch name {
	case tour.FieldName:
		m.ResetName()
		return nil
	case tour.FieldDate:
		m.ResetDate()
		return nil
	case tour.FieldStatus:
		m.ResetStatus()
		return nil
	case tour.FieldTotalDistanceKm:
		m.ResetTotalDistanceKm()
		return nil
	case tour.FieldTotalDurationMinutes:
		m.ResetTotalDurationMinutes()
		return nil
	case tour.FieldRouteData:
		m.ResetRouteData()
		return nil
	case tour.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tour.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Tour field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TourMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.company != nil {
		edges = append(edges, tour.EdgeCompany)
	}
	if m.user != nil {
		edges = append(edges, tour.EdgeUser)
	}
	if m.steps != nil {
		edges = append(edges, tour.EdgeSteps)
	}
	if m.visits != nil {
		edges = append(edges, tour.EdgeVisits)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TourMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tour.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case tour.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case tour.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	case tour.EdgeVisits:
		ids := make([]ent.Value, 0, len(m.visits))
		for id := range m.visits {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TourMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedsteps != nil {
		edges = append(edges, tour.EdgeSteps)
	}
	if m.removedvisits != nil {
		edges = append(edges, tour.EdgeVisits)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TourMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case tour.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	case tour.EdgeVisits:
		ids := make([]ent.Value, 0, len(m.removedvisits))
		for id := range m.removedvisits {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TourMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedcompany {
		edges = append(edges, tour.EdgeCompany)
	}
	if m.cleareduser {
		edges = append(edges, tour.EdgeUser)
	}
	if m.clearedsteps {
		edges = append(edges, tour.EdgeSteps)
	}
	if m.clearedvisits {
		edges = append(edges, tour.EdgeVisits)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TourMutation) EdgeCleared(name string) bool {
	switch name {
	case tour.EdgeCompany:
		return m.clearedcompany
	case tour.EdgeUser:
		return m.cleareduser
	case tour.EdgeSteps:
		return m.clearedsteps
	case tour.EdgeVisits:
		return m.clearedvisits
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TourMutation) ClearEdge(name string) error {
	switch name {
	case tour.EdgeCompany:
		m.ClearCompany()
		return nil
	case tour.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Tour unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TourMutation) ResetEdge(name string) error {
	switch name {
	case tour.EdgeCompany:
		m.ResetCompany()
		return nil
	case tour.EdgeUser:
		m.ResetUser()
		return nil
	case tour.EdgeSteps:
		m.ResetSteps()
		return nil
	case tour.EdgeVisits:
		m.ResetVisits()
		return nil
	}
	return fmt.Errorf("unknown Tour edge %s", name)
}

// TourStepMutation represents an operation that mutates the TourStep nodes in the graph.
type TourStepMutation struct {
	config
	op                                Op
	typ                               string
	id                                *uuid.UUID
	step_order                        *int
	addstep_order                     *int
	status                            *tourstep.Status
	eta                               *time.Time
	distance_from_previous_km         *float64
	adddistance_from_previous_km      *float64
	duration_from_previous_minutes    *int
	addduration_from_previous_minutes *int
	completed_at                      *time.Time
	created_at                        *time.Time
	updated_at                        *time.Time
	clearedFields                     map[string]struct{}
	tour                              *uuid.UUID
	clearedtour                       bool
	prospect                          *uuid.UUID
	clearedprospect                   bool
	done                              bool
	oldValue                          func(context.Context) (*TourStep, error)
	predicates                        []predicate.TourStep
}

var _ ent.Mutation = (*TourStepMutation)(nil)

// tourstepOption allows management of the mutation configuration using functional options.
type tourstepOption func(*TourStepMutation)

// newTourStepMutation creates new mutation for the TourStep entity.
func newTourStepMutation(c config, op Op, opts ...tourstepOption) *TourStepMutation {
	m := &TourStepMutation{
		config:        c,
		op:            op,
		typ:           TypeTourStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTourStepID sets the ID field of the mutation.
func withTourStepID(id uuid.UUID) tourstepOption {
	return func(m *TourStepMutation) {
		var (
			err   error
			once  sync.Once
			value *TourStep
		)
		m.oldValue = func(ctx context.Context) (*TourStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TourStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTourStep sets the old TourStep of the mutation.
func withTourStep(node *TourStep) tourstepOption {
	return func(m *TourStepMutation) {
		m.oldValue = func(context.Context) (*TourStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TourStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TourStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TourStep entities.
func (m *TourStepMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TourStepMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TourStepMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TourStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStepOrder sets the "step_order" field.
func (m *TourStepMutation) SetStepOrder(i int) {
	m.step_order = &i
	m.addstep_order = nil
}

// StepOrder returns the value of the "step_order" field in the mutation.
func (m *TourStepMutation) StepOrder() (r int, exists bool) {
	v := m.step_order
	if v == nil {
		return
	}
	return *v, true
}

// OldStepOrder returns the old "step_order" field's value of the TourStep entity.
// If the TourStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourStepMutation) OldStepOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepOrder: %w", err)
	}
	return oldValue.StepOrder, nil
}

// AddStepOrder adds i to the "step_order" field.
func (m *TourStepMutation) AddStepOrder(i int) {
	if m.addstep_order != nil {
		*m.addstep_order += i
	} else {
		m.addstep_order = &i
	}
}

// AddedStepOrder returns the value that was added to the "step_order" field in this mutation.
func (m *TourStepMutation) AddedStepOrder() (r int, exists bool) {
	v := m.addstep_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepOrder resets all changes to the "step_order" field.
func (m *TourStepMutation) ResetStepOrder() {
	m.step_order = nil
	m.addstep_order = nil
}

// SetStatus sets the "status" field.
func (m *TourStepMutation) SetStatus(t tourstep.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TourStepMutation) Status() (r tourstep.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TourStep entity.
// If the TourStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourStepMutation) OldStatus(ctx context.Context) (v tourstep.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TourStepMutation) ResetStatus() {
	m.status = nil
}

// SetEta sets the "eta" field.
func (m *TourStepMutation) SetEta(t time.Time) {
	m.eta = &t
}

// Eta returns the value of the "eta" field in the mutation.
func (m *TourStepMutation) Eta() (r time.Time, exists bool) {
	v := m.eta
	if v == nil {
		return
	}
	return *v, true
}

// OldEta returns the old "eta" field's value of the TourStep entity.
// If the TourStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourStepMutation) OldEta(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEta: %w", err)
	}
	return oldValue.Eta, nil
}

// ClearEta clears the value of the "eta" field.
func (m *TourStepMutation) ClearEta() {
	m.eta = nil
	m.clearedFields[tourstep.FieldEta] = struct{}{}
}

// EtaCleared returns if the "eta" field was cleared in this mutation.
func (m *TourStepMutation) EtaCleared() bool {
	_, ok := m.clearedFields[tourstep.FieldEta]
	return ok
}

// ResetEta resets all changes to the "eta" field.
func (m *TourStepMutation) ResetEta() {
	m.eta = nil
	delete(m.clearedFields, tourstep.FieldEta)
}

// SetDistanceFromPreviousKm sets the "distance_from_previous_km" field.
func (m *TourStepMutation) SetDistanceFromPreviousKm(f float64) {
	m.distance_from_previous_km = &f
	m.adddistance_from_previous_km = nil
}

// DistanceFromPreviousKm returns the value of the "distance_from_previous_km" field in the mutation.
func (m *TourStepMutation) DistanceFromPreviousKm() (r float64, exists bool) {
	v := m.distance_from_previous_km
	if v == nil {
		return
	}
	return *v, true
}

// OldDistanceFromPreviousKm returns the old "distance_from_previous_km" field's value of the TourStep entity.
// If the TourStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourStepMutation) OldDistanceFromPreviousKm(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistanceFromPreviousKm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistanceFromPreviousKm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistanceFromPreviousKm: %w", err)
	}
	return oldValue.DistanceFromPreviousKm, nil
}

// AddDistanceFromPreviousKm adds f to the "distance_from_previous_km" field.
func (m *TourStepMutation) AddDistanceFromPreviousKm(f float64) {
	if m.adddistance_from_previous_km != nil {
		*m.adddistance_from_previous_km += f
	} else {
		m.adddistance_from_previous_km = &f
	}
}

// AddedDistanceFromPreviousKm returns the value that was added to the "distance_from_previous_km" field in this mutation.
func (m *TourStepMutation) AddedDistanceFromPreviousKm() (r float64, exists bool) {
	v := m.adddistance_from_previous_km
	if v == nil {
		return
	}
	return *v, true
}

// ClearDistanceFromPreviousKm clears the value of the "distance_from_previous_km" field.
func (m *TourStepMutation) ClearDistanceFromPreviousKm() {
	m.distance_from_previous_km = nil
	m.adddistance_from_previous_km = nil
	m.clearedFields[tourstep.FieldDistanceFromPreviousKm] = struct{}{}
}

// DistanceFromPreviousKmCleared returns if the "distance_from_previous_km" field was cleared in this mutation.
func (m *TourStepMutation) DistanceFromPreviousKmCleared() bool {
	_, ok := m.clearedFields[tourstep.FieldDistanceFromPreviousKm]
	return ok
}

// ResetDistanceFromPreviousKm resets all changes to the "distance_from_previous_km" field.
func (m *TourStepMutation) ResetDistanceFromPreviousKm() {
	m.distance_from_previous_km = nil
	m.adddistance_from_previous_km = nil
	delete(m.clearedFields, tourstep.FieldDistanceFromPreviousKm)
}

// SetDurationFromPreviousMinutes sets the "duration_from_previous_minutes" field.
func (m *TourStepMutation) SetDurationFromPreviousMinutes(i int) {
	m.duration_from_previous_minutes = &i
	m.addduration_from_previous_minutes = nil
}

// DurationFromPreviousMinutes returns the value of the "duration_from_previous_minutes" field in the mutation.
func (m *TourStepMutation) DurationFromPreviousMinutes() (r int, exists bool) {
	v := m.duration_from_previous_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationFromPreviousMinutes returns the old "duration_from_previous_minutes" field's value of the TourStep entity.
// If the TourStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourStepMutation) OldDurationFromPreviousMinutes(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationFromPreviousMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationFromPreviousMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationFromPreviousMinutes: %w", err)
	}
	return oldValue.DurationFromPreviousMinutes, nil
}

// AddDurationFromPreviousMinutes adds i to the "duration_from_previous_minutes" field.
func (m *TourStepMutation) AddDurationFromPreviousMinutes(i int) {
	if m.addduration_from_previous_minutes != nil {
		*m.addduration_from_previous_minutes += i
	} else {
		m.addduration_from_previous_minutes = &i
	}
}

// AddedDurationFromPreviousMinutes returns the value that was added to the "duration_from_previous_minutes" field in this mutation.
func (m *TourStepMutation) AddedDurationFromPreviousMinutes() (r int, exists bool) {
	v := m.addduration_from_previous_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationFromPreviousMinutes clears the value of the "duration_from_previous_minutes" field.
func (m *TourStepMutation) ClearDurationFromPreviousMinutes() {
	m.duration_from_previous_minutes = nil
	m.addduration_from_previous_minutes = nil
	m.clearedFields[tourstep.FieldDurationFromPreviousMinutes] = struct{}{}
}

// DurationFromPreviousMinutesCleared returns if the "duration_from_previous_minutes" field was cleared in this mutation.
func (m *TourStepMutation) DurationFromPreviousMinutesCleared() bool {
	_, ok := m.clearedFields[tourstep.FieldDurationFromPreviousMinutes]
	return ok
}

// ResetDurationFromPreviousMinutes resets all changes to the "duration_from_previous_minutes" field.
func (m *TourStepMutation) ResetDurationFromPreviousMinutes() {
	m.duration_from_previous_minutes = nil
	m.addduration_from_previous_minutes = nil
	delete(m.clearedFields, tourstep.FieldDurationFromPreviousMinutes)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TourStepMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TourStepMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the TourStep entity.
// If the TourStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourStepMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TourStepMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[tourstep.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TourStepMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[tourstep.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TourStepMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, tourstep.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TourStepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TourStepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TourStep entity.
// If the TourStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourStepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TourStepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TourStepMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TourStepMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TourStep entity.
// If the TourStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TourStepMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TourStepMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTourID sets the "tour" edge to the Tour entity by id.
func (m *TourStepMutation) SetTourID(id uuid.UUID) {
	m.tour = &id
}

// ClearTour clears the "tour" edge to the Tour entity.
func (m *TourStepMutation) ClearTour() {
	m.clearedtour = true
}

// TourCleared reports if the "tour" edge to the Tour entity was cleared.
func (m *TourStepMutation) TourCleared() bool {
	return m.clearedtour
}

// TourID returns the "tour" edge ID in the mutation.
func (m *TourStepMutation) TourID() (id uuid.UUID, exists bool) {
	if m.tour != nil {
		return *m.tour, true
	}
	return
}

// TourIDs returns the "tour" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TourID instead. It exists only for internal usage by the builders.
func (m *TourStepMutation) TourIDs() (ids []uuid.UUID) {
	if id := m.tour; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTour resets all changes to the "tour" edge.
func (m *TourStepMutation) ResetTour() {
	m.tour = nil
	m.clearedtour = false
}

// SetProspectID sets the "prospect" edge to the Prospect entity by id.
func (m *TourStepMutation) SetProspectID(id uuid.UUID) {
	m.prospect = &id
}

// ClearProspect clears the "prospect" edge to the Prospect entity.
func (m *TourStepMutation) ClearProspect() {
	m.clearedprospect = true
}

// ProspectCleared reports if the "prospect" edge to the Prospect entity was cleared.
func (m *TourStepMutation) ProspectCleared() bool {
	return m.clearedprospect
}

// ProspectID returns the "prospect" edge ID in the mutation.
func (m *TourStepMutation) ProspectID() (id uuid.UUID, exists bool) {
	if m.prospect != nil {
		return *m.prospect, true
	}
	return
}

// ProspectIDs returns the "prospect" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProspectID instead. It exists only for internal usage by the builders.
func (m *TourStepMutation) ProspectIDs() (ids []uuid.UUID) {
	if id := m.prospect; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProspect resets all changes to the "prospect" edge.
func (m *TourStepMutation) ResetProspect() {
	m.prospect = nil
	m.clearedprospect = false
}

// Where appends a list predicates to the TourStepMutation builder.
func (m *TourStepMutation) Where(ps ...predicate.TourStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TourStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TourStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TourStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TourStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TourStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TourStep).
func (m *TourStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TourStepMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.step_order != nil {
		fields = append(fields, tourstep.FieldStepOrder)
	}
	if m.status != nil {
		fields = append(fields, tourstep.FieldStatus)
	}
	if m.eta != nil {
		fields = append(fields, tourstep.FieldEta)
	}
	if m.distance_from_previous_km != nil {
		fields = append(fields, tourstep.FieldDistanceFromPreviousKm)
	}
	if m.duration_from_previous_minutes != nil {
		fields = append(fields, tourstep.FieldDurationFromPreviousMinutes)
	}
	if m.completed_at != nil {
		fields = append(fields, tourstep.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, tourstep.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tourstep.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TourStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tourstep.FieldStepOrder:
		return m.StepOrder()
	case tourstep.FieldStatus:
		return m.Status()
	case tourstep.FieldEta:
		return m.Eta()
	case tourstep.FieldDistanceFromPreviousKm:
		return m.DistanceFromPreviousKm()
	case tourstep.FieldDurationFromPreviousMinutes:
		return m.DurationFromPreviousMinutes()
	case tourstep.FieldCompletedAt:
		return m.CompletedAt()
	case tourstep.FieldCreatedAt:
		return m.CreatedAt()
	case tourstep.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TourStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tourstep.FieldStepOrder:
		return m.OldStepOrder(ctx)
	case tourstep.FieldStatus:
		return m.OldStatus(ctx)
	case tourstep.FieldEta:
		return m.OldEta(ctx)
	case tourstep.FieldDistanceFromPreviousKm:
		return m.OldDistanceFromPreviousKm(ctx)
	case tourstep.FieldDurationFromPreviousMinutes:
		return m.OldDurationFromPreviousMinutes(ctx)
	case tourstep.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case tourstep.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tourstep.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TourStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TourStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tourstep.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepOrder(v)
		return nil
	case tourstep.FieldStatus:
		v, ok := value.(tourstep.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case tourstep.FieldEta:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEta(v)
		return nil
	case tourstep.FieldDistanceFromPreviousKm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistanceFromPreviousKm(v)
		return nil
	case tourstep.FieldDurationFromPreviousMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationFromPreviousMinutes(v)
		return nil
	case tourstep.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case tourstep.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tourstep.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TourStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TourStepMutation) AddedFields() []string {
	var fields []string
	if m.addstep_order != nil {
		fields = append(fields, tourstep.FieldStepOrder)
	}
	if m.adddistance_from_previous_km != nil {
		fields = append(fields, tourstep.FieldDistanceFromPreviousKm)
	}
	if m.addduration_from_previous_minutes != nil {
		fields = append(fields, tourstep.FieldDurationFromPreviousMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TourStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tourstep.FieldStepOrder:
		return m.AddedStepOrder()
	case tourstep.FieldDistanceFromPreviousKm:
		return m.AddedDistanceFromPreviousKm()
	case tourstep.FieldDurationFromPreviousMinutes:
		return m.AddedDurationFromPreviousMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TourStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tourstep.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepOrder(v)
		return nil
	case tourstep.FieldDistanceFromPreviousKm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDistanceFromPreviousKm(v)
		return nil
	case tourstep.FieldDurationFromPreviousMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationFromPreviousMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown TourStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TourStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tourstep.FieldEta) {
		fields = append(fields, tourstep.FieldEta)
	}
	if m.FieldCleared(tourstep.FieldDistanceFromPreviousKm) {
		fields = append(fields, tourstep.FieldDistanceFromPreviousKm)
	}
	if m.FieldCleared(tourstep.FieldDurationFromPreviousMinutes) {
		fields = append(fields, tourstep.FieldDurationFromPreviousMinutes)
	}
	if m.FieldCleared(tourstep.FieldCompletedAt) {
		fields = append(fields, tourstep.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TourStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TourStepMutation) ClearField(name string) error {
	switch name {
	case tourstep.FieldEta:
		m.ClearEta()
		return nil
	case tourstep.FieldDistanceFromPreviousKm:
		m.ClearDistanceFromPreviousKm()
		return nil
	case tourstep.FieldDurationFromPreviousMinutes:
		m.ClearDurationFromPreviousMinutes()
		return nil
	case tourstep.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown TourStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TourStepMutation) ResetField(name string) error {
	switch name {
	case tourstep.FieldStepOrder:
		m.ResetStepOrder()
		return nil
	case tourstep.FieldStatus:
		m.ResetStatus()
		return nil
	case tourstep.FieldEta:
		m.ResetEta()
		return nil
	case tourstep.FieldDistanceFromPreviousKm:
		m.ResetDistanceFromPreviousKm()
		return nil
	case tourstep.FieldDurationFromPreviousMinutes:
		m.ResetDurationFromPreviousMinutes()
		return nil
	case tourstep.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case tourstep.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tourstep.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TourStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TourStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.tour != nil {
		edges = append(edges, tourstep.EdgeTour)
	}
	if m.prospect != nil {
		edges = append(edges, tourstep.EdgeProspect)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TourStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tourstep.EdgeTour:
		if id := m.tour; id != nil {
			return []ent.Value{*id}
		}
	case tourstep.EdgeProspect:
		if id := m.prospect; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TourStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TourStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TourStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtour {
		edges = append(edges, tourstep.EdgeTour)
	}
	if m.clearedprospect {
		edges = append(edges, tourstep.EdgeProspect)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TourStepMutation) EdgeCleared(name string) bool {
	switch name {
	case tourstep.EdgeTour:
		return m.clearedtour
	case tourstep.EdgeProspect:
		return m.clearedprospect
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TourStepMutation) ClearEdge(name string) error {
	switch name {
	case tourstep.EdgeTour:
		m.ClearTour()
		return nil
	case tourstep.EdgeProspect:
		m.ClearProspect()
		return nil
	}
	return fmt.Errorf("unknown TourStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TourStepMutation) ResetEdge(name string) error {
	switch name {
	case tourstep.EdgeTour:
		m.ResetTour()
		return nil
	case tourstep.EdgeProspect:
		m.ResetProspect()
		return nil
	}
	return fmt.Errorf("unknown TourStep edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	email                    *string
	password_hash            *string
	role                     *user.Role
	first_name               *string
	last_name                *string
	phone                    *string
	avatar_url               *string
	locale                   *string
	is_active                *bool
	last_login_at            *time.Time
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	company                  *uuid.UUID
	clearedcompany           bool
	visits                   map[uuid.UUID]struct{}
	removedvisits            map[uuid.UUID]struct{}
	clearedvisits            bool
	tours                    map[uuid.UUID]struct{}
	removedtours             map[uuid.UUID]struct{}
	clearedtours             bool
	refresh_tokens           map[uuid.UUID]struct{}
	removedrefresh_tokens    map[uuid.UUID]struct{}
	clearedrefresh_tokens    bool
	audit_logs               map[uuid.UUID]struct{}
	removedaudit_logs        map[uuid.UUID]struct{}
	clearedaudit_logs        bool
	created_prospects        map[uuid.UUID]struct{}
	removedcreated_prospects map[uuid.UUID]struct{}
	clearedcreated_prospects bool
	attachments              map[uuid.UUID]struct{}
	removedattachments       map[uuid.UUID]struct{}
	clearedattachments       bool
	done                     bool
	oldValue                 func(context.Context) (*User, error)
	predicates               []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetFirstName sets the "first_name" field.
func (m *UserMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *UserMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ClearFirstName clears the value of the "first_name" field.
func (m *UserMutation) ClearFirstName() {
	m.first_name = nil
	m.clearedFields[user.FieldFirstName] = struct{}{}
}

// FirstNameCleared returns if the "first_name" field was cleared in this mutation.
func (m *UserMutation) FirstNameCleared() bool {
	_, ok := m.clearedFields[user.FieldFirstName]
	return ok
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *UserMutation) ResetFirstName() {
	m.first_name = nil
	delete(m.clearedFields, user.FieldFirstName)
}

// SetLastName sets the "last_name" field.
func (m *UserMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *UserMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ClearLastName clears the value of the "last_name" field.
func (m *UserMutation) ClearLastName() {
	m.last_name = nil
	m.clearedFields[user.FieldLastName] = struct{}{}
}

// LastNameCleared returns if the "last_name" field was cleared in this mutation.
func (m *UserMutation) LastNameCleared() bool {
	_, ok := m.clearedFields[user.FieldLastName]
	return ok
}

// ResetLastName resets all changes to the "last_name" field.
func (m *UserMutation) ResetLastName() {
	m.last_name = nil
	delete(m.clearedFields, user.FieldLastName)
}

// SetPhone sets the "phone" field.
func (m *UserMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *UserMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *UserMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[user.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *UserMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[user.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *UserMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, user.FieldPhone)
}

// SetAvatarURL sets the "avatar_url" field.
func (m *UserMutation) SetAvatarURL(s string) {
	m.avatar_url = &s
}

// AvatarURL returns the value of the "avatar_url" field in the mutation.
func (m *UserMutation) AvatarURL() (r string, exists bool) {
	v := m.avatar_url
	if v == nil {
		return
	}
	return *v, true
}

// OldAvatarURL returns the old "avatar_url" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldAvatarURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvatarURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvatarURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvatarURL: %w", err)
	}
	return oldValue.AvatarURL, nil
}

// ClearAvatarURL clears the value of the "avatar_url" field.
func (m *UserMutation) ClearAvatarURL() {
	m.avatar_url = nil
	m.clearedFields[user.FieldAvatarURL] = struct{}{}
}

// AvatarURLCleared returns if the "avatar_url" field was cleared in this mutation.
func (m *UserMutation) AvatarURLCleared() bool {
	_, ok := m.clearedFields[user.FieldAvatarURL]
	return ok
}

// ResetAvatarURL resets all changes to the "avatar_url" field.
func (m *UserMutation) ResetAvatarURL() {
	m.avatar_url = nil
	delete(m.clearedFields, user.FieldAvatarURL)
}

// SetLocale sets the "locale" field.
func (m *UserMutation) SetLocale(s string) {
	m.locale = &s
}

// Locale returns the value of the "locale" field in the mutation.
func (m *UserMutation) Locale() (r string, exists bool) {
	v := m.locale
	if v == nil {
		return
	}
	return *v, true
}

// OldLocale returns the old "locale" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLocale(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocale: %w", err)
	}
	return oldValue.Locale, nil
}

// ResetLocale resets all changes to the "locale" field.
func (m *UserMutation) ResetLocale() {
	m.locale = nil
}

// SetIsActive sets the "is_active" field.
func (m *UserMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UserMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UserMutation) ResetIsActive() {
	m.is_active = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompanyID sets the "company" edge to the Company entity by id.
func (m *UserMutation) SetCompanyID(id uuid.UUID) {
	m.company = &id
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *UserMutation) ClearCompany() {
	m.clearedcompany = true
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *UserMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyID returns the "company" edge ID in the mutation.
func (m *UserMutation) CompanyID() (id uuid.UUID, exists bool) {
	if m.company != nil {
		return *m.company, true
	}
	return
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *UserMutation) CompanyIDs() (ids []uuid.UUID) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *UserMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// AddVisitIDs adds the "visits" edge to the Visit entity by ids.
func (m *UserMutation) AddVisitIDs(ids ...uuid.UUID) {
	if m.visits == nil {
		m.visits = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.visits[ids[i]] = struct{}{}
	}
}

// ClearVisits clears the "visits" edge to the Visit entity.
func (m *UserMutation) ClearVisits() {
	m.clearedvisits = true
}

// VisitsCleared reports if the "visits" edge to the Visit entity was cleared.
func (m *UserMutation) VisitsCleared() bool {
	return m.clearedvisits
}

// RemoveVisitIDs removes the "visits" edge to the Visit entity by IDs.
func (m *UserMutation) RemoveVisitIDs(ids ...uuid.UUID) {
	if m.removedvisits == nil {
		m.removedvisits = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.visits, ids[i])
		m.removedvisits[ids[i]] = struct{}{}
	}
}

// RemovedVisits returns the removed IDs of the "visits" edge to the Visit entity.
func (m *UserMutation) RemovedVisitsIDs() (ids []uuid.UUID) {
	for id := range m.removedvisits {
		ids = append(ids, id)
	}
	return
}

// VisitsIDs returns the "visits" edge IDs in the mutation.
func (m *UserMutation) VisitsIDs() (ids []uuid.UUID) {
	for id := range m.visits {
		ids = append(ids, id)
	}
	return
}

// ResetVisits resets all changes to the "visits" edge.
func (m *UserMutation) ResetVisits() {
	m.visits = nil
	m.clearedvisits = false
	m.removedvisits = nil
}

// AddTourIDs adds the "tours" edge to the Tour entity by ids.
func (m *UserMutation) AddTourIDs(ids ...uuid.UUID) {
	if m.tours == nil {
		m.tours = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.tours[ids[i]] = struct{}{}
	}
}

// ClearTours clears the "tours" edge to the Tour entity.
func (m *UserMutation) ClearTours() {
	m.clearedtours = true
}

// ToursCleared reports if the "tours" edge to the Tour entity was cleared.
func (m *UserMutation) ToursCleared() bool {
	return m.clearedtours
}

// RemoveTourIDs removes the "tours" edge to the Tour entity by IDs.
func (m *UserMutation) RemoveTourIDs(ids ...uuid.UUID) {
	if m.removedtours == nil {
		m.removedtours = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.tours, ids[i])
		m.removedtours[ids[i]] = struct{}{}
	}
}

// RemovedTours returns the removed IDs of the "tours" edge to the Tour entity.
func (m *UserMutation) RemovedToursIDs() (ids []uuid.UUID) {
	for id := range m.removedtours {
		ids = append(ids, id)
	}
	return
}

// ToursIDs returns the "tours" edge IDs in the mutation.
func (m *UserMutation) ToursIDs() (ids []uuid.UUID) {
	for id := range m.tours {
		ids = append(ids, id)
	}
	return
}

// ResetTours resets all changes to the "tours" edge.
func (m *UserMutation) ResetTours() {
	m.tours = nil
	m.clearedtours = false
	m.removedtours = nil
}

// AddRefreshTokenIDs adds the "refresh_tokens" edge to the RefreshToken entity by ids.
func (m *UserMutation) AddRefreshTokenIDs(ids ...uuid.UUID) {
	if m.refresh_tokens == nil {
		m.refresh_tokens = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.refresh_tokens[ids[i]] = struct{}{}
	}
}

// ClearRefreshTokens clears the "refresh_tokens" edge to the RefreshToken entity.
func (m *UserMutation) ClearRefreshTokens() {
	m.clearedrefresh_tokens = true
}

// RefreshTokensCleared reports if the "refresh_tokens" edge to the RefreshToken entity was cleared.
func (m *UserMutation) RefreshTokensCleared() bool {
	return m.clearedrefresh_tokens
}

// RemoveRefreshTokenIDs removes the "refresh_tokens" edge to the RefreshToken entity by IDs.
func (m *UserMutation) RemoveRefreshTokenIDs(ids ...uuid.UUID) {
	if m.removedrefresh_tokens == nil {
		m.removedrefresh_tokens = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.refresh_tokens, ids[i])
		m.removedrefresh_tokens[ids[i]] = struct{}{}
	}
}

// RemovedRefreshTokens returns the removed IDs of the "refresh_tokens" edge to the RefreshToken entity.
func (m *UserMutation) RemovedRefreshTokensIDs() (ids []uuid.UUID) {
	for id := range m.removedrefresh_tokens {
		ids = append(ids, id)
	}
	return
}

// RefreshTokensIDs returns the "refresh_tokens" edge IDs in the mutation.
func (m *UserMutation) RefreshTokensIDs() (ids []uuid.UUID) {
	for id := range m.refresh_tokens {
		ids = append(ids, id)
	}
	return
}

// ResetRefreshTokens resets all changes to the "refresh_tokens" edge.
func (m *UserMutation) ResetRefreshTokens() {
	m.refresh_tokens = nil
	m.clearedrefresh_tokens = false
	m.removedrefresh_tokens = nil
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by ids.
func (m *UserMutation) AddAuditLogIDs(ids ...uuid.UUID) {
	if m.audit_logs == nil {
		m.audit_logs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.audit_logs[ids[i]] = struct{}{}
	}
}

// ClearAuditLogs clears the "audit_logs" edge to the AuditLog entity.
func (m *UserMutation) ClearAuditLogs() {
	m.clearedaudit_logs = true
}

// AuditLogsCleared reports if the "audit_logs" edge to the AuditLog entity was cleared.
func (m *UserMutation) AuditLogsCleared() bool {
	return m.clearedaudit_logs
}

// RemoveAuditLogIDs removes the "audit_logs" edge to the AuditLog entity by IDs.
func (m *UserMutation) RemoveAuditLogIDs(ids ...uuid.UUID) {
	if m.removedaudit_logs == nil {
		m.removedaudit_logs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.audit_logs, ids[i])
		m.removedaudit_logs[ids[i]] = struct{}{}
	}
}

// RemovedAuditLogs returns the removed IDs of the "audit_logs" edge to the AuditLog entity.
func (m *UserMutation) RemovedAuditLogsIDs() (ids []uuid.UUID) {
	for id := range m.removedaudit_logs {
		ids = append(ids, id)
	}
	return
}

// AuditLogsIDs returns the "audit_logs" edge IDs in the mutation.
func (m *UserMutation) AuditLogsIDs() (ids []uuid.UUID) {
	for id := range m.audit_logs {
		ids = append(ids, id)
	}
	return
}

// ResetAuditLogs resets all changes to the "audit_logs" edge.
func (m *UserMutation) ResetAuditLogs() {
	m.audit_logs = nil
	m.clearedaudit_logs = false
	m.removedaudit_logs = nil
}

// AddCreatedProspectIDs adds the "created_prospects" edge to the Prospect entity by ids.
func (m *UserMutation) AddCreatedProspectIDs(ids ...uuid.UUID) {
	if m.created_prospects == nil {
		m.created_prospects = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.created_prospects[ids[i]] = struct{}{}
	}
}

// ClearCreatedProspects clears the "created_prospects" edge to the Prospect entity.
func (m *UserMutation) ClearCreatedProspects() {
	m.clearedcreated_prospects = true
}

// CreatedProspectsCleared reports if the "created_prospects" edge to the Prospect entity was cleared.
func (m *UserMutation) CreatedProspectsCleared() bool {
	return m.clearedcreated_prospects
}

// RemoveCreatedProspectIDs removes the "created_prospects" edge to the Prospect entity by IDs.
func (m *UserMutation) RemoveCreatedProspectIDs(ids ...uuid.UUID) {
	if m.removedcreated_prospects == nil {
		m.removedcreated_prospects = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.created_prospects, ids[i])
		m.removedcreated_prospects[ids[i]] = struct{}{}
	}
}

// RemovedCreatedProspects returns the removed IDs of the "created_prospects" edge to the Prospect entity.
func (m *UserMutation) RemovedCreatedProspectsIDs() (ids []uuid.UUID) {
	for id := range m.removedcreated_prospects {
		ids = append(ids, id)
	}
	return
}

// CreatedProspectsIDs returns the "created_prospects" edge IDs in the mutation.
func (m *UserMutation) CreatedProspectsIDs() (ids []uuid.UUID) {
	for id := range m.created_prospects {
		ids = append(ids, id)
	}
	return
}

// ResetCreatedProspects resets all changes to the "created_prospects" edge.
func (m *UserMutation) ResetCreatedProspects() {
	m.created_prospects = nil
	m.clearedcreated_prospects = false
	m.removedcreated_prospects = nil
}

// AddAttachmentIDs adds the "attachments" edge to the Attachment entity by ids.
func (m *UserMutation) AddAttachmentIDs(ids ...uuid.UUID) {
	if m.attachments == nil {
		m.attachments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.attachments[ids[i]] = struct{}{}
	}
}

// ClearAttachments clears the "attachments" edge to the Attachment entity.
func (m *UserMutation) ClearAttachments() {
	m.clearedattachments = true
}

// AttachmentsCleared reports if the "attachments" edge to the Attachment entity was cleared.
func (m *UserMutation) AttachmentsCleared() bool {
	return m.clearedattachments
}

// RemoveAttachmentIDs removes the "attachments" edge to the Attachment entity by IDs.
func (m *UserMutation) RemoveAttachmentIDs(ids ...uuid.UUID) {
	if m.removedattachments == nil {
		m.removedattachments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.attachments, ids[i])
		m.removedattachments[ids[i]] = struct{}{}
	}
}

// RemovedAttachments returns the removed IDs of the "attachments" edge to the Attachment entity.
func (m *UserMutation) RemovedAttachmentsIDs() (ids []uuid.UUID) {
	for id := range m.removedattachments {
		ids = append(ids, id)
	}
	return
}

// AttachmentsIDs returns the "attachments" edge IDs in the mutation.
func (m *UserMutation) AttachmentsIDs() (ids []uuid.UUID) {
	for id := range m.attachments {
		ids = append(ids, id)
	}
	return
}

// ResetAttachments resets all changes to the "attachments" edge.
func (m *UserMutation) ResetAttachments() {
	m.attachments = nil
	m.clearedattachments = false
	m.removedattachments = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.first_name != nil {
		fields = append(fields, user.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, user.FieldLastName)
	}
	if m.phone != nil {
		fields = append(fields, user.FieldPhone)
	}
	if m.avatar_url != nil {
		fields = append(fields, user.FieldAvatarURL)
	}
	if m.locale != nil {
		fields = append(fields, user.FieldLocale)
	}
	if m.is_active != nil {
		fields = append(fields, user.FieldIsActive)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldRole:
		return m.Role()
	case user.FieldFirstName:
		return m.FirstName()
	case user.FieldLastName:
		return m.LastName()
	case user.FieldPhone:
		return m.Phone()
	case user.FieldAvatarURL:
		return m.AvatarURL()
	case user.FieldLocale:
		return m.Locale()
	case user.FieldIsActive:
		return m.IsActive()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldFirstName:
		return m.OldFirstName(ctx)
	case user.FieldLastName:
		return m.OldLastName(ctx)
	case user.FieldPhone:
		return m.OldPhone(ctx)
	case user.FieldAvatarURL:
		return m.OldAvatarURL(ctx)
	case user.FieldLocale:
		return m.OldLocale(ctx)
	case user.FieldIsActive:
		return m.OldIsActive(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case user.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case user.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case user.FieldAvatarURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvatarURL(v)
		return nil
	case user.FieldLocale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocale(v)
		return nil
	case user.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldFirstName) {
		fields = append(fields, user.FieldFirstName)
	}
	if m.FieldCleared(user.FieldLastName) {
		fields = append(fields, user.FieldLastName)
	}
	if m.FieldCleared(user.FieldPhone) {
		fields = append(fields, user.FieldPhone)
	}
	if m.FieldCleared(user.FieldAvatarURL) {
		fields = append(fields, user.FieldAvatarURL)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldFirstName:
		m.ClearFirstName()
		return nil
	case user.FieldLastName:
		m.ClearLastName()
		return nil
	case user.FieldPhone:
		m.ClearPhone()
		return nil
	case user.FieldAvatarURL:
		m.ClearAvatarURL()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldFirstName:
		m.ResetFirstName()
		return nil
	case user.FieldLastName:
		m.ResetLastName()
		return nil
	case user.FieldPhone:
		m.ResetPhone()
		return nil
	case user.FieldAvatarURL:
		m.ResetAvatarURL()
		return nil
	case user.FieldLocale:
		m.ResetLocale()
		return nil
	case user.FieldIsActive:
		m.ResetIsActive()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 7)
	if m.company != nil {
		edges = append(edges, user.EdgeCompany)
	}
	if m.visits != nil {
		edges = append(edges, user.EdgeVisits)
	}
	if m.tours != nil {
		edges = append(edges, user.EdgeTours)
	}
	if m.refresh_tokens != nil {
		edges = append(edges, user.EdgeRefreshTokens)
	}
	if m.audit_logs != nil {
		edges = append(edges, user.EdgeAuditLogs)
	}
	if m.created_prospects != nil {
		edges = append(edges, user.EdgeCreatedProspects)
	}
	if m.attachments != nil {
		edges = append(edges, user.EdgeAttachments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case user.EdgeVisits:
		ids := make([]ent.Value, 0, len(m.visits))
		for id := range m.visits {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTours:
		ids := make([]ent.Value, 0, len(m.tours))
		for id := range m.tours {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeRefreshTokens:
		ids := make([]ent.Value, 0, len(m.refresh_tokens))
		for id := range m.refresh_tokens {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeAuditLogs:
		ids := make([]ent.Value, 0, len(m.audit_logs))
		for id := range m.audit_logs {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeCreatedProspects:
		ids := make([]ent.Value, 0, len(m.created_prospects))
		for id := range m.created_prospects {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeAttachments:
		ids := make([]ent.Value, 0, len(m.attachments))
		for id := range m.attachments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 7)
	if m.removedvisits != nil {
		edges = append(edges, user.EdgeVisits)
	}
	if m.removedtours != nil {
		edges = append(edges, user.EdgeTours)
	}
	if m.removedrefresh_tokens != nil {
		edges = append(edges, user.EdgeRefreshTokens)
	}
	if m.removedaudit_logs != nil {
		edges = append(edges, user.EdgeAuditLogs)
	}
	if m.removedcreated_prospects != nil {
		edges = append(edges, user.EdgeCreatedProspects)
	}
	if m.removedattachments != nil {
		edges = append(edges, user.EdgeAttachments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeVisits:
		ids := make([]ent.Value, 0, len(m.removedvisits))
		for id := range m.removedvisits {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTours:
		ids := make([]ent.Value, 0, len(m.removedtours))
		for id := range m.removedtours {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeRefreshTokens:
		ids := make([]ent.Value, 0, len(m.removedrefresh_tokens))
		for id := range m.removedrefresh_tokens {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeAuditLogs:
		ids := make([]ent.Value, 0, len(m.removedaudit_logs))
		for id := range m.removedaudit_logs {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeCreatedProspects:
		ids := make([]ent.Value, 0, len(m.removedcreated_prospects))
		for id := range m.removedcreated_prospects {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeAttachments:
		ids := make([]ent.Value, 0, len(m.removedattachments))
		for id := range m.removedattachments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 7)
	if m.clearedcompany {
		edges = append(edges, user.EdgeCompany)
	}
	if m.clearedvisits {
		edges = append(edges, user.EdgeVisits)
	}
	if m.clearedtours {
		edges = append(edges, user.EdgeTours)
	}
	if m.clearedrefresh_tokens {
		edges = append(edges, user.EdgeRefreshTokens)
	}
	if m.clearedaudit_logs {
		edges = append(edges, user.EdgeAuditLogs)
	}
	if m.clearedcreated_prospects {
		edges = append(edges, user.EdgeCreatedProspects)
	}
	if m.clearedattachments {
		edges = append(edges, user.EdgeAttachments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeCompany:
		return m.clearedcompany
	case user.EdgeVisits:
		return m.clearedvisits
	case user.EdgeTours:
		return m.clearedtours
	case user.EdgeRefreshTokens:
		return m.clearedrefresh_tokens
	case user.EdgeAuditLogs:
		return m.clearedaudit_logs
	case user.EdgeCreatedProspects:
		return m.clearedcreated_prospects
	case user.EdgeAttachments:
		return m.clearedattachments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeCompany:
		m.ResetCompany()
		return nil
	case user.EdgeVisits:
		m.ResetVisits()
		return nil
	case user.EdgeTours:
		m.ResetTours()
		return nil
	case user.EdgeRefreshTokens:
		m.ResetRefreshTokens()
		return nil
	case user.EdgeAuditLogs:
		m.ResetAuditLogs()
		return nil
	case user.EdgeCreatedProspects:
		m.ResetCreatedProspects()
		return nil
	case user.EdgeAttachments:
		m.ResetAttachments()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// VisitMutation represents an operation that mutates the Visit nodes in the graph.
type VisitMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	visited_at          *time.Time
	duration_minutes    *int
	addduration_minutes *int
	objective           *string
	summary             *string
	score               *int
	addscore            *int
	signed_by           *string
	signature_data      *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	prospect            *uuid.UUID
	clearedprospect     bool
	user                *uuid.UUID
	cleareduser         bool
	tour                *uuid.UUID
	clearedtour         bool
	done                bool
	oldValue            func(context.Context) (*Visit, error)
	predicates          []predicate.Visit
}

var _ ent.Mutation = (*VisitMutation)(nil)

// visitOption allows management of the mutation configuration using functional options.
type visitOption func(*VisitMutation)

// newVisitMutation creates new mutation for the Visit entity.
func newVisitMutation(c config, op Op, opts ...visitOption) *VisitMutation {
	m := &VisitMutation{
		config:        c,
		op:            op,
		typ:           TypeVisit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVisitID sets the ID field of the mutation.
func withVisitID(id uuid.UUID) visitOption {
	return func(m *VisitMutation) {
		var (
			err   error
			once  sync.Once
			value *Visit
		)
		m.oldValue = func(ctx context.Context) (*Visit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Visit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVisit sets the old Visit of the mutation.
func withVisit(node *Visit) visitOption {
	return func(m *VisitMutation) {
		m.oldValue = func(context.Context) (*Visit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VisitMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VisitMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Visit entities.
func (m *VisitMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VisitMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VisitMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Visit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVisitedAt sets the "visited_at" field.
func (m *VisitMutation) SetVisitedAt(t time.Time) {
	m.visited_at = &t
}

// VisitedAt returns the value of the "visited_at" field in the mutation.
func (m *VisitMutation) VisitedAt() (r time.Time, exists bool) {
	v := m.visited_at
	if v == nil {
		return
	}
	return *v, true
}

// OldVisitedAt returns the old "visited_at" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldVisitedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisitedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisitedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisitedAt: %w", err)
	}
	return oldValue.VisitedAt, nil
}

// ResetVisitedAt resets all changes to the "visited_at" field.
func (m *VisitMutation) ResetVisitedAt() {
	m.visited_at = nil
}

// SetDurationMinutes sets the "duration_minutes" field.
func (m *VisitMutation) SetDurationMinutes(i int) {
	m.duration_minutes = &i
	m.addduration_minutes = nil
}

// DurationMinutes returns the value of the "duration_minutes" field in the mutation.
func (m *VisitMutation) DurationMinutes() (r int, exists bool) {
	v := m.duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMinutes returns the old "duration_minutes" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldDurationMinutes(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMinutes: %w", err)
	}
	return oldValue.DurationMinutes, nil
}

// AddDurationMinutes adds i to the "duration_minutes" field.
func (m *VisitMutation) AddDurationMinutes(i int) {
	if m.addduration_minutes != nil {
		*m.addduration_minutes += i
	} else {
		m.addduration_minutes = &i
	}
}

// AddedDurationMinutes returns the value that was added to the "duration_minutes" field in this mutation.
func (m *VisitMutation) AddedDurationMinutes() (r int, exists bool) {
	v := m.addduration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMinutes clears the value of the "duration_minutes" field.
func (m *VisitMutation) ClearDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
	m.clearedFields[visit.FieldDurationMinutes] = struct{}{}
}

// DurationMinutesCleared returns if the "duration_minutes" field was cleared in this mutation.
func (m *VisitMutation) DurationMinutesCleared() bool {
	_, ok := m.clearedFields[visit.FieldDurationMinutes]
	return ok
}

// ResetDurationMinutes resets all changes to the "duration_minutes" field.
func (m *VisitMutation) ResetDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
	delete(m.clearedFields, visit.FieldDurationMinutes)
}

// SetObjective sets the "objective" field.
func (m *VisitMutation) SetObjective(s string) {
	m.objective = &s
}

// Objective returns the value of the "objective" field in the mutation.
func (m *VisitMutation) Objective() (r string, exists bool) {
	v := m.objective
	if v == nil {
		return
	}
	return *v, true
}

// OldObjective returns the old "objective" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldObjective(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjective is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjective requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjective: %w", err)
	}
	return oldValue.Objective, nil
}

// ClearObjective clears the value of the "objective" field.
func (m *VisitMutation) ClearObjective() {
	m.objective = nil
	m.clearedFields[visit.FieldObjective] = struct{}{}
}

// ObjectiveCleared returns if the "objective" field was cleared in this mutation.
func (m *VisitMutation) ObjectiveCleared() bool {
	_, ok := m.clearedFields[visit.FieldObjective]
	return ok
}

// ResetObjective resets all changes to the "objective" field.
func (m *VisitMutation) ResetObjective() {
	m.objective = nil
	delete(m.clearedFields, visit.FieldObjective)
}

// SetSummary sets the "summary" field.
func (m *VisitMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *VisitMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *VisitMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[visit.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *VisitMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[visit.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *VisitMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, visit.FieldSummary)
}

// SetScore sets the "score" field.
func (m *VisitMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *VisitMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldScore(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *VisitMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *VisitMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ClearScore clears the value of the "score" field.
func (m *VisitMutation) ClearScore() {
	m.score = nil
	m.addscore = nil
	m.clearedFields[visit.FieldScore] = struct{}{}
}

// ScoreCleared returns if the "score" field was cleared in this mutation.
func (m *VisitMutation) ScoreCleared() bool {
	_, ok := m.clearedFields[visit.FieldScore]
	return ok
}

// ResetScore resets all changes to the "score" field.
func (m *VisitMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
	delete(m.clearedFields, visit.FieldScore)
}

// SetSignedBy sets the "signed_by" field.
func (m *VisitMutation) SetSignedBy(s string) {
	m.signed_by = &s
}

// SignedBy returns the value of the "signed_by" field in the mutation.
func (m *VisitMutation) SignedBy() (r string, exists bool) {
	v := m.signed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldSignedBy returns the old "signed_by" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldSignedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignedBy: %w", err)
	}
	return oldValue.SignedBy, nil
}

// ClearSignedBy clears the value of the "signed_by" field.
func (m *VisitMutation) ClearSignedBy() {
	m.signed_by = nil
	m.clearedFields[visit.FieldSignedBy] = struct{}{}
}

// SignedByCleared returns if the "signed_by" field was cleared in this mutation.
func (m *VisitMutation) SignedByCleared() bool {
	_, ok := m.clearedFields[visit.FieldSignedBy]
	return ok
}

// ResetSignedBy resets all changes to the "signed_by" field.
func (m *VisitMutation) ResetSignedBy() {
	m.signed_by = nil
	delete(m.clearedFields, visit.FieldSignedBy)
}

// SetSignatureData sets the "signature_data" field.
func (m *VisitMutation) SetSignatureData(s string) {
	m.signature_data = &s
}

// SignatureData returns the value of the "signature_data" field in the mutation.
func (m *VisitMutation) SignatureData() (r string, exists bool) {
	v := m.signature_data
	if v == nil {
		return
	}
	return *v, true
}

// OldSignatureData returns the old "signature_data" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldSignatureData(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignatureData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignatureData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignatureData: %w", err)
	}
	return oldValue.SignatureData, nil
}

// ClearSignatureData clears the value of the "signature_data" field.
func (m *VisitMutation) ClearSignatureData() {
	m.signature_data = nil
	m.clearedFields[visit.FieldSignatureData] = struct{}{}
}

// SignatureDataCleared returns if the "signature_data" field was cleared in this mutation.
func (m *VisitMutation) SignatureDataCleared() bool {
	_, ok := m.clearedFields[visit.FieldSignatureData]
	return ok
}

// ResetSignatureData resets all changes to the "signature_data" field.
func (m *VisitMutation) ResetSignatureData() {
	m.signature_data = nil
	delete(m.clearedFields, visit.FieldSignatureData)
}

// SetCreatedAt sets the "created_at" field.
func (m *VisitMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VisitMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VisitMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VisitMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VisitMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Visit entity.
// If the Visit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VisitMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetProspectID sets the "prospect" edge to the Prospect entity by id.
func (m *VisitMutation) SetProspectID(id uuid.UUID) {
	m.prospect = &id
}

// ClearProspect clears the "prospect" edge to the Prospect entity.
func (m *VisitMutation) ClearProspect() {
	m.clearedprospect = true
}

// ProspectCleared reports if the "prospect" edge to the Prospect entity was cleared.
func (m *VisitMutation) ProspectCleared() bool {
	return m.clearedprospect
}

// ProspectID returns the "prospect" edge ID in the mutation.
func (m *VisitMutation) ProspectID() (id uuid.UUID, exists bool) {
	if m.prospect != nil {
		return *m.prospect, true
	}
	return
}

// ProspectIDs returns the "prospect" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProspectID instead. It exists only for internal usage by the builders.
func (m *VisitMutation) ProspectIDs() (ids []uuid.UUID) {
	if id := m.prospect; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProspect resets all changes to the "prospect" edge.
func (m *VisitMutation) ResetProspect() {
	m.prospect = nil
	m.clearedprospect = false
}

// SetUserID sets the "user" edge to the User entity by id.
func (m *VisitMutation) SetUserID(id uuid.UUID) {
	m.user = &id
}

// ClearUser clears the "user" edge to the User entity.
func (m *VisitMutation) ClearUser() {
	m.cleareduser = true
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *VisitMutation) UserCleared() bool {
	return m.cleareduser
}

// UserID returns the "user" edge ID in the mutation.
func (m *VisitMutation) UserID() (id uuid.UUID, exists bool) {
	if m.user != nil {
		return *m.user, true
	}
	return
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *VisitMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *VisitMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// SetTourID sets the "tour" edge to the Tour entity by id.
func (m *VisitMutation) SetTourID(id uuid.UUID) {
	m.tour = &id
}

// ClearTour clears the "tour" edge to the Tour entity.
func (m *VisitMutation) ClearTour() {
	m.clearedtour = true
}

// TourCleared reports if the "tour" edge to the Tour entity was cleared.
func (m *VisitMutation) TourCleared() bool {
	return m.clearedtour
}

// TourID returns the "tour" edge ID in the mutation.
func (m *VisitMutation) TourID() (id uuid.UUID, exists bool) {
	if m.tour != nil {
		return *m.tour, true
	}
	return
}

// TourIDs returns the "tour" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TourID instead. It exists only for internal usage by the builders.
func (m *VisitMutation) TourIDs() (ids []uuid.UUID) {
	if id := m.tour; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTour resets all changes to the "tour" edge.
func (m *VisitMutation) ResetTour() {
	m.tour = nil
	m.clearedtour = false
}

// Where appends a list predicates to the VisitMutation builder.
func (m *VisitMutation) Where(ps ...predicate.Visit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VisitMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VisitMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Visit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VisitMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VisitMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Visit).
func (m *VisitMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VisitMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.visited_at != nil {
		fields = append(fields, visit.FieldVisitedAt)
	}
	if m.duration_minutes != nil {
		fields = append(fields, visit.FieldDurationMinutes)
	}
	if m.objective != nil {
		fields = append(fields, visit.FieldObjective)
	}
	if m.summary != nil {
		fields = append(fields, visit.FieldSummary)
	}
	if m.score != nil {
		fields = append(fields, visit.FieldScore)
	}
	if m.signed_by != nil {
		fields = append(fields, visit.FieldSignedBy)
	}
	if m.signature_data != nil {
		fields = append(fields, visit.FieldSignatureData)
	}
	if m.created_at != nil {
		fields = append(fields, visit.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, visit.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VisitMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case visit.FieldVisitedAt:
		return m.VisitedAt()
	case visit.FieldDurationMinutes:
		return m.DurationMinutes()
	case visit.FieldObjective:
		return m.Objective()
	case visit.FieldSummary:
		return m.Summary()
	case visit.FieldScore:
		return m.Score()
	case visit.FieldSignedBy:
		return m.SignedBy()
	case visit.FieldSignatureData:
		return m.SignatureData()
	case visit.FieldCreatedAt:
		return m.CreatedAt()
	case visit.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VisitMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case visit.FieldVisitedAt:
		return m.OldVisitedAt(ctx)
	case visit.FieldDurationMinutes:
		return m.OldDurationMinutes(ctx)
	case visit.FieldObjective:
		return m.OldObjective(ctx)
	case visit.FieldSummary:
		return m.OldSummary(ctx)
	case visit.FieldScore:
		return m.OldScore(ctx)
	case visit.FieldSignedBy:
		return m.OldSignedBy(ctx)
	case visit.FieldSignatureData:
		return m.OldSignatureData(ctx)
	case visit.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case visit.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Visit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VisitMutation) SetField(name string, value ent.Value) error {
	switch name {
	case visit.FieldVisitedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisitedAt(v)
		return nil
	case visit.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMinutes(v)
		return nil
	case visit.FieldObjective:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjective(v)
		return nil
	case visit.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case visit.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case visit.FieldSignedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignedBy(v)
		return nil
	case visit.FieldSignatureData:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignatureData(v)
		return nil
	case visit.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case visit.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Visit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VisitMutation) AddedFields() []string {
	var fields []string
	if m.addduration_minutes != nil {
		fields = append(fields, visit.FieldDurationMinutes)
	}
	if m.addscore != nil {
		fields = append(fields, visit.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VisitMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case visit.FieldDurationMinutes:
		return m.AddedDurationMinutes()
	case visit.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VisitMutation) AddField(name string, value ent.Value) error {
	switch name {
	case visit.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMinutes(v)
		return nil
	case visit.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown Visit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VisitMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(visit.FieldDurationMinutes) {
		fields = append(fields, visit.FieldDurationMinutes)
	}
	if m.FieldCleared(visit.FieldObjective) {
		fields = append(fields, visit.FieldObjective)
	}
	if m.FieldCleared(visit.FieldSummary) {
		fields = append(fields, visit.FieldSummary)
	}
	if m.FieldCleared(visit.FieldScore) {
		fields = append(fields, visit.FieldScore)
	}
	if m.FieldCleared(visit.FieldSignedBy) {
		fields = append(fields, visit.FieldSignedBy)
	}
	if m.FieldCleared(visit.FieldSignatureData) {
		fields = append(fields, visit.FieldSignatureData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VisitMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VisitMutation) ClearField(name string) error {
	switch name {
	case visit.FieldDurationMinutes:
		m.ClearDurationMinutes()
		return nil
	case visit.FieldObjective:
		m.ClearObjective()
		return nil
	case visit.FieldSummary:
		m.ClearSummary()
		return nil
	case visit.FieldScore:
		m.ClearScore()
		return nil
	case visit.FieldSignedBy:
		m.ClearSignedBy()
		return nil
	case visit.FieldSignatureData:
		m.ClearSignatureData()
		return nil
	}
	return fmt.Errorf("unknown Visit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VisitMutation) ResetField(name string) error {
	switch name {
	case visit.FieldVisitedAt:
		m.ResetVisitedAt()
		return nil
	case visit.FieldDurationMinutes:
		m.ResetDurationMinutes()
		return nil
	case visit.FieldObjective:
		m.ResetObjective()
		return nil
	case visit.FieldSummary:
		m.ResetSummary()
		return nil
	case visit.FieldScore:
		m.ResetScore()
		return nil
	case visit.FieldSignedBy:
		m.ResetSignedBy()
		return nil
	case visit.FieldSignatureData:
		m.ResetSignatureData()
		return nil
	case visit.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case visit.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Visit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VisitMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.prospect != nil {
		edges = append(edges, visit.EdgeProspect)
	}
	if m.user != nil {
		edges = append(edges, visit.EdgeUser)
	}
	if m.tour != nil {
		edges = append(edges, visit.EdgeTour)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VisitMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case visit.EdgeProspect:
		if id := m.prospect; id != nil {
			return []ent.Value{*id}
		}
	case visit.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case visit.EdgeTour:
		if id := m.tour; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VisitMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VisitMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VisitMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedprospect {
		edges = append(edges, visit.EdgeProspect)
	}
	if m.cleareduser {
		edges = append(edges, visit.EdgeUser)
	}
	if m.clearedtour {
		edges = append(edges, visit.EdgeTour)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VisitMutation) EdgeCleared(name string) bool {
	switch name {
	case visit.EdgeProspect:
		return m.clearedprospect
	case visit.EdgeUser:
		return m.cleareduser
	case visit.EdgeTour:
		return m.clearedtour
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VisitMutation) ClearEdge(name string) error {
	switch name {
	case visit.EdgeProspect:
		m.ClearProspect()
		return nil
	case visit.EdgeUser:
		m.ClearUser()
		return nil
	case visit.EdgeTour:
		m.ClearTour()
		return nil
	}
	return fmt.Errorf("unknown Visit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VisitMutation) ResetEdge(name string) error {
	switch name {
	case visit.EdgeProspect:
		m.ResetProspect()
		return nil
	case visit.EdgeUser:
		m.ResetUser()
		return nil
	case visit.EdgeTour:
		m.ResetTour()
		return nil
	}
	return fmt.Errorf("unknown Visit edge %s", name)
}
