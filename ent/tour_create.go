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
	"github.com/horeca-prospection/backend/ent/tour"
	"github.com/horeca-prospection/backend/ent/tourstep"
	"github.com/horeca-prospection/backend/ent/user"
	"github.com/horeca-prospection/backend/ent/visit"
)

// TourCreate is the builder for creating a Tour entity.
type TourCreate struct {
	config
	mutation *TourMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *TourCreate) SetName(v string) *TourCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *TourCreate) SetNillableName(v *string) *TourCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetDate sets the "date" field.
func (_c *TourCreate) SetDate(v time.Time) *TourCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_c *TourCreate) SetNillableDate(v *time.Time) *TourCreate {
	if v != nil {
		_c.SetDate(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TourCreate) SetStatus(v tour.Status) *TourCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TourCreate) SetNillableStatus(v *tour.Status) *TourCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalDistanceKm sets the "total_distance_km" field.
func (_c *TourCreate) SetTotalDistanceKm(v float64) *TourCreate {
	_c.mutation.SetTotalDistanceKm(v)
	return _c
}

// SetNillableTotalDistanceKm sets the "total_distance_km" field if the given value is not nil.
func (_c *TourCreate) SetNillableTotalDistanceKm(v *float64) *TourCreate {
	if v != nil {
		_c.SetTotalDistanceKm(*v)
	}
	return _c
}

// SetTotalDurationMinutes sets the "total_duration_minutes" field.
func (_c *TourCreate) SetTotalDurationMinutes(v int) *TourCreate {
	_c.mutation.SetTotalDurationMinutes(v)
	return _c
}

// SetNillableTotalDurationMinutes sets the "total_duration_minutes" field if the given value is not nil.
func (_c *TourCreate) SetNillableTotalDurationMinutes(v *int) *TourCreate {
	if v != nil {
		_c.SetTotalDurationMinutes(*v)
	}
	return _c
}

// SetRouteData sets the "route_data" field.
func (_c *TourCreate) SetRouteData(v map[string]interface{}) *TourCreate {
	_c.mutation.SetRouteData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TourCreate) SetCreatedAt(v time.Time) *TourCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TourCreate) SetNillableCreatedAt(v *time.Time) *TourCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TourCreate) SetUpdatedAt(v time.Time) *TourCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TourCreate) SetNillableUpdatedAt(v *time.Time) *TourCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TourCreate) SetID(v uuid.UUID) *TourCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TourCreate) SetNillableID(v *uuid.UUID) *TourCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCompanyID sets the "company" edge to the Company entity by ID.
func (_c *TourCreate) SetCompanyID(id uuid.UUID) *TourCreate {
	_c.mutation.SetCompanyID(id)
	return _c
}

// SetNillableCompanyID sets the "company" edge to the Company entity by ID if the given value is not nil.
func (_c *TourCreate) SetNillableCompanyID(id *uuid.UUID) *TourCreate {
	if id != nil {
		_c = _c.SetCompanyID(*id)
	}
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *TourCreate) SetCompany(v *Company) *TourCreate {
	return _c.SetCompanyID(v.ID)
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_c *TourCreate) SetUserID(id uuid.UUID) *TourCreate {
	_c.mutation.SetUserID(id)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *TourCreate) SetUser(v *User) *TourCreate {
	return _c.SetUserID(v.ID)
}

// AddStepIDs adds the "steps" edge to the TourStep entity by IDs.
func (_c *TourCreate) AddStepIDs(ids ...uuid.UUID) *TourCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the TourStep entity.
func (_c *TourCreate) AddSteps(v ...*TourStep) *TourCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// AddVisitIDs adds the "visits" edge to the Visit entity by IDs.
func (_c *TourCreate) AddVisitIDs(ids ...uuid.UUID) *TourCreate {
	_c.mutation.AddVisitIDs(ids...)
	return _c
}

// AddVisits adds the "visits" edges to the Visit entity.
func (_c *TourCreate) AddVisits(v ...*Visit) *TourCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVisitIDs(ids...)
}

// Mutation returns the TourMutation object of the builder.
func (_c *TourCreate) Mutation() *TourMutation {
	return _c.mutation
}

// Save creates the Tour in the database.
func (_c *TourCreate) Save(ctx context.Context) (*Tour, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TourCreate) SaveX(ctx context.Context) *Tour {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TourCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TourCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TourCreate) defaults() {
	if _, ok := _c.mutation.Date(); !ok {
		v := tour.DefaultDate()
		_c.mutation.SetDate(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := tour.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tour.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tour.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := tour.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TourCreate) check() error {
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "Tour.date"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Tour.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := tour.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Tour.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Tour.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Tour.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Tour.user"`)}
	}
	return nil
}

func (_c *TourCreate) sqlSave(ctx context.Context) (*Tour, error) {
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

func (_c *TourCreate) createSpec() (*Tour, *sqlgraph.CreateSpec) {
	var (
		_node = &Tour{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tour.Table, sqlgraph.NewFieldSpec(tour.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(tour.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(tour.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(tour.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalDistanceKm(); ok {
		_spec.SetField(tour.FieldTotalDistanceKm, field.TypeFloat64, value)
		_node.TotalDistanceKm = &value
	}
	if value, ok := _c.mutation.TotalDurationMinutes(); ok {
		_spec.SetField(tour.FieldTotalDurationMinutes, field.TypeInt, value)
		_node.TotalDurationMinutes = &value
	}
	if value, ok := _c.mutation.RouteData(); ok {
		_spec.SetField(tour.FieldRouteData, field.TypeJSON, value)
		_node.RouteData = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tour.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tour.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tour.CompanyTable,
			Columns: []string{tour.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.company_tours = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tour.UserTable,
			Columns: []string{tour.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.user_tours = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tour.StepsTable,
			Columns: []string{tour.StepsColumn},
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
	if nodes := _c.mutation.VisitsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tour.VisitsTable,
			Columns: []string{tour.VisitsColumn},
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
	return _node, _spec
}

// TourCreateBulk is the builder for creating many Tour entities in bulk.
type TourCreateBulk struct {
	config
	err      error
	builders []*TourCreate
}

// Save creates the Tour entities in the database.
func (_c *TourCreateBulk) Save(ctx context.Context) ([]*Tour, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Tour, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TourMutation)
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
func (_c *TourCreateBulk) SaveX(ctx context.Context) []*Tour {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TourCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TourCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
