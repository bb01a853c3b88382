// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/horeca-prospection/backend/ent/company"
	"github.com/horeca-prospection/backend/ent/prospect"
	"github.com/horeca-prospection/backend/ent/tourstep"
	"github.com/horeca-prospection/backend/ent/user"
	"github.com/horeca-prospection/backend/ent/visit"
)

// ProspectCreate is the builder for creating a Prospect entity.
type ProspectCreate struct {
	config
	mutation *ProspectMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ProspectCreate) SetName(v string) *ProspectCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNameFolded sets the "name_folded" field.
func (_c *ProspectCreate) SetNameFolded(v string) *ProspectCreate {
	_c.mutation.SetNameFolded(v)
	return _c
}

// SetNillableNameFolded sets the "name_folded" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableNameFolded(v *string) *ProspectCreate {
	if v != nil {
		_c.SetNameFolded(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *ProspectCreate) SetType(v prospect.Type) *ProspectCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableType(v *prospect.Type) *ProspectCreate {
	if v != nil {
		_c.SetType(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *ProspectCreate) SetAddress(v string) *ProspectCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableAddress(v *string) *ProspectCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetPostalCode sets the "postal_code" field.
func (_c *ProspectCreate) SetPostalCode(v string) *ProspectCreate {
	_c.mutation.SetPostalCode(v)
	return _c
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_c *ProspectCreate) SetNillablePostalCode(v *string) *ProspectCreate {
	if v != nil {
		_c.SetPostalCode(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *ProspectCreate) SetCity(v string) *ProspectCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableCity(v *string) *ProspectCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetCountry sets the "country" field.
func (_c *ProspectCreate) SetCountry(v string) *ProspectCreate {
	_c.mutation.SetCountry(v)
	return _c
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableCountry(v *string) *ProspectCreate {
	if v != nil {
		_c.SetCountry(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ProspectCreate) SetPhone(v string) *ProspectCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *ProspectCreate) SetNillablePhone(v *string) *ProspectCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *ProspectCreate) SetEmail(v string) *ProspectCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableEmail(v *string) *ProspectCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetWebsite sets the "website" field.
func (_c *ProspectCreate) SetWebsite(v string) *ProspectCreate {
	_c.mutation.SetWebsite(v)
	return _c
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableWebsite(v *string) *ProspectCreate {
	if v != nil {
		_c.SetWebsite(*v)
	}
	return _c
}

// SetManagerName sets the "manager_name" field.
func (_c *ProspectCreate) SetManagerName(v string) *ProspectCreate {
	_c.mutation.SetManagerName(v)
	return _c
}

// SetNillableManagerName sets the "manager_name" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableManagerName(v *string) *ProspectCreate {
	if v != nil {
		_c.SetManagerName(*v)
	}
	return _c
}

// SetOpeningHours sets the "opening_hours" field.
func (_c *ProspectCreate) SetOpeningHours(v map[string]interface{}) *ProspectCreate {
	_c.mutation.SetOpeningHours(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProspectCreate) SetStatus(v prospect.Status) *ProspectCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableStatus(v *prospect.Status) *ProspectCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetNoteAvg sets the "note_avg" field.
func (_c *ProspectCreate) SetNoteAvg(v float64) *ProspectCreate {
	_c.mutation.SetNoteAvg(v)
	return _c
}

// SetNillableNoteAvg sets the "note_avg" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableNoteAvg(v *float64) *ProspectCreate {
	if v != nil {
		_c.SetNoteAvg(*v)
	}
	return _c
}

// SetVisitsCount sets the "visits_count" field.
func (_c *ProspectCreate) SetVisitsCount(v int) *ProspectCreate {
	_c.mutation.SetVisitsCount(v)
	return _c
}

// SetNillableVisitsCount sets the "visits_count" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableVisitsCount(v *int) *ProspectCreate {
	if v != nil {
		_c.SetVisitsCount(*v)
	}
	return _c
}

// SetLatitude sets the "latitude" field.
func (_c *ProspectCreate) SetLatitude(v float64) *ProspectCreate {
	_c.mutation.SetLatitude(v)
	return _c
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableLatitude(v *float64) *ProspectCreate {
	if v != nil {
		_c.SetLatitude(*v)
	}
	return _c
}

// SetLongitude sets the "longitude" field.
func (_c *ProspectCreate) SetLongitude(v float64) *ProspectCreate {
	_c.mutation.SetLongitude(v)
	return _c
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableLongitude(v *float64) *ProspectCreate {
	if v != nil {
		_c.SetLongitude(*v)
	}
	return _c
}

// SetGooglePlaceID sets the "google_place_id" field.
func (_c *ProspectCreate) SetGooglePlaceID(v string) *ProspectCreate {
	_c.mutation.SetGooglePlaceID(v)
	return _c
}

// SetNillableGooglePlaceID sets the "google_place_id" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableGooglePlaceID(v *string) *ProspectCreate {
	if v != nil {
		_c.SetGooglePlaceID(*v)
	}
	return _c
}

// SetAiData sets the "ai_data" field.
func (_c *ProspectCreate) SetAiData(v map[string]interface{}) *ProspectCreate {
	_c.mutation.SetAiData(v)
	return _c
}

// SetAiEnrichedAt sets the "ai_enriched_at" field.
func (_c *ProspectCreate) SetAiEnrichedAt(v time.Time) *ProspectCreate {
	_c.mutation.SetAiEnrichedAt(v)
	return _c
}

// SetNillableAiEnrichedAt sets the "ai_enriched_at" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableAiEnrichedAt(v *time.Time) *ProspectCreate {
	if v != nil {
		_c.SetAiEnrichedAt(*v)
	}
	return _c
}

// SetAiScore sets the "ai_score" field.
func (_c *ProspectCreate) SetAiScore(v float64) *ProspectCreate {
	_c.mutation.SetAiScore(v)
	return _c
}

// SetNillableAiScore sets the "ai_score" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableAiScore(v *float64) *ProspectCreate {
	if v != nil {
		_c.SetAiScore(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProspectCreate) SetCreatedAt(v time.Time) *ProspectCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableCreatedAt(v *time.Time) *ProspectCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProspectCreate) SetUpdatedAt(v time.Time) *ProspectCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableUpdatedAt(v *time.Time) *ProspectCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProspectCreate) SetID(v uuid.UUID) *ProspectCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableID(v *uuid.UUID) *ProspectCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCompanyID sets the "company" edge to the Company entity by ID.
func (_c *ProspectCreate) SetCompanyID(id uuid.UUID) *ProspectCreate {
	_c.mutation.SetCompanyID(id)
	return _c
}

// SetNillableCompanyID sets the "company" edge to the Company entity by ID if the given value is not nil.
func (_c *ProspectCreate) SetNillableCompanyID(id *uuid.UUID) *ProspectCreate {
	if id != nil {
		_c = _c.SetCompanyID(*id)
	}
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *ProspectCreate) SetCompany(v *Company) *ProspectCreate {
	return _c.SetCompanyID(v.ID)
}

// SetCreatorID sets the "creator" edge to the User entity by ID.
func (_c *ProspectCreate) SetCreatorID(id uuid.UUID) *ProspectCreate {
	_c.mutation.SetCreatorID(id)
	return _c
}

// SetNillableCreatorID sets the "creator" edge to the User entity by ID if the given value is not nil.
func (_c *ProspectCreate) SetNillableCreatorID(id *uuid.UUID) *ProspectCreate {
	if id != nil {
		_c = _c.SetCreatorID(*id)
	}
	return _c
}

// SetCreator sets the "creator" edge to the User entity.
func (_c *ProspectCreate) SetCreator(v *User) *ProspectCreate {
	return _c.SetCreatorID(v.ID)
}

// AddVisitIDs adds the "visits" edge to the Visit entity by IDs.
func (_c *ProspectCreate) AddVisitIDs(ids ...uuid.UUID) *ProspectCreate {
	_c.mutation.AddVisitIDs(ids...)
	return _c
}

// AddVisits adds the "visits" edges to the Visit entity.
func (_c *ProspectCreate) AddVisits(v ...*Visit) *ProspectCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVisitIDs(ids...)
}

// AddStepIDs adds the "steps" edge to the TourStep entity by IDs.
func (_c *ProspectCreate) AddStepIDs(ids ...uuid.UUID) *ProspectCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the TourStep entity.
func (_c *ProspectCreate) AddSteps(v ...*TourStep) *ProspectCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// Mutation returns the ProspectMutation object of the builder.
func (_c *ProspectCreate) Mutation() *ProspectMutation {
	return _c.mutation
}

// Save creates the Prospect in the database.
func (_c *ProspectCreate) Save(ctx context.Context) (*Prospect, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProspectCreate) SaveX(ctx context.Context) *Prospect {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProspectCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProspectCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProspectCreate) defaults() {
	if _, ok := _c.mutation.Country(); !ok {
		v := prospect.DefaultCountry
		_c.mutation.SetCountry(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := prospect.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.NoteAvg(); !ok {
		v := prospect.DefaultNoteAvg
		_c.mutation.SetNoteAvg(v)
	}
	if _, ok := _c.mutation.VisitsCount(); !ok {
		v := prospect.DefaultVisitsCount
		_c.mutation.SetVisitsCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := prospect.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := prospect.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := prospect.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProspectCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Prospect.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := prospect.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Prospect.name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := prospect.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Prospect.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Country(); !ok {
		return &ValidationError{Name: "country", err: errors.New(`ent: missing required field "Prospect.country"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Prospect.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := prospect.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Prospect.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NoteAvg(); !ok {
		return &ValidationError{Name: "note_avg", err: errors.New(`ent: missing required field "Prospect.note_avg"`)}
	}
	if _, ok := _c.mutation.VisitsCount(); !ok {
		return &ValidationError{Name: "visits_count", err: errors.New(`ent: missing required field "Prospect.visits_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Prospect.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Prospect.updated_at"`)}
	}
	return nil
}

func (_c *ProspectCreate) sqlSave(ctx context.Context) (*Prospect, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProspectCreate) createSpec() (*Prospect, *sqlgraph.CreateSpec) {
	var (
		_node = &Prospect{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prospect.Table, sqlgraph.NewFieldSpec(prospect.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(prospect.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.NameFolded(); ok {
		_spec.SetField(prospect.FieldNameFolded, field.TypeString, value)
		_node.NameFolded = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(prospect.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(prospect.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.PostalCode(); ok {
		_spec.SetField(prospect.FieldPostalCode, field.TypeString, value)
		_node.PostalCode = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(prospect.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.Country(); ok {
		_spec.SetField(prospect.FieldCountry, field.TypeString, value)
		_node.Country = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(prospect.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(prospect.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Website(); ok {
		_spec.SetField(prospect.FieldWebsite, field.TypeString, value)
		_node.Website = value
	}
	if value, ok := _c.mutation.ManagerName(); ok {
		_spec.SetField(prospect.FieldManagerName, field.TypeString, value)
		_node.ManagerName = value
	}
	if value, ok := _c.mutation.OpeningHours(); ok {
		_spec.SetField(prospect.FieldOpeningHours, field.TypeJSON, value)
		_node.OpeningHours = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(prospect.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.NoteAvg(); ok {
		_spec.SetField(prospect.FieldNoteAvg, field.TypeFloat64, value)
		_node.NoteAvg = value
	}
	if value, ok := _c.mutation.VisitsCount(); ok {
		_spec.SetField(prospect.FieldVisitsCount, field.TypeInt, value)
		_node.VisitsCount = value
	}
	if value, ok := _c.mutation.Latitude(); ok {
		_spec.SetField(prospect.FieldLatitude, field.TypeFloat64, value)
		_node.Latitude = value
	}
	if value, ok := _c.mutation.Longitude(); ok {
		_spec.SetField(prospect.FieldLongitude, field.TypeFloat64, value)
		_node.Longitude = value
	}
	if value, ok := _c.mutation.GooglePlaceID(); ok {
		_spec.SetField(prospect.FieldGooglePlaceID, field.TypeString, value)
		_node.GooglePlaceID = value
	}
	if value, ok := _c.mutation.AiData(); ok {
		_spec.SetField(prospect.FieldAiData, field.TypeJSON, value)
		_node.AiData = value
	}
	if value, ok := _c.mutation.AiEnrichedAt(); ok {
		_spec.SetField(prospect.FieldAiEnrichedAt, field.TypeTime, value)
		_node.AiEnrichedAt = &value
	}
	if value, ok := _c.mutation.AiScore(); ok {
		_spec.SetField(prospect.FieldAiScore, field.TypeFloat64, value)
		_node.AiScore = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(prospect.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(prospect.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prospect.CompanyTable,
			Columns: []string{prospect.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.company_prospects = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CreatorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prospect.CreatorTable,
			Columns: []string{prospect.CreatorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.user_created_prospects = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.VisitsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   prospect.VisitsTable,
			Columns: []string{prospect.VisitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(visit.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   prospect.StepsTable,
			Columns: []string{prospect.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tourstep.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProspectCreateBulk is the builder for creating many Prospect entities in bulk.
type ProspectCreateBulk struct {
	config
	err      error
	builders []*ProspectCreate
}

// Save creates the Prospect entities in the database.
func (_c *ProspectCreateBulk) Save(ctx context.Context) ([]*Prospect, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Prospect, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProspectMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProspectCreateBulk) SaveX(ctx context.Context) []*Prospect {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProspectCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProspectCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
