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
	"github.com/horeca-prospection/backend/ent/prospect"
	"github.com/horeca-prospection/backend/ent/tour"
	"github.com/horeca-prospection/backend/ent/user"
	"github.com/horeca-prospection/backend/ent/visit"
)

// VisitCreate is the builder for creating a Visit entity.
type VisitCreate struct {
	config
	mutation *VisitMutation
	hooks    []Hook
}

// SetVisitedAt sets the "visited_at" field.
func (_c *VisitCreate) SetVisitedAt(v time.Time) *VisitCreate {
	_c.mutation.SetVisitedAt(v)
	return _c
}

// SetNillableVisitedAt sets the "visited_at" field if the given value is not nil.
func (_c *VisitCreate) SetNillableVisitedAt(v *time.Time) *VisitCreate {
	if v != nil {
		_c.SetVisitedAt(*v)
	}
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *VisitCreate) SetDurationMinutes(v int) *VisitCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_c *VisitCreate) SetNillableDurationMinutes(v *int) *VisitCreate {
	if v != nil {
		_c.SetDurationMinutes(*v)
	}
	return _c
}

// SetObjective sets the "objective" field.
func (_c *VisitCreate) SetObjective(v string) *VisitCreate {
	_c.mutation.SetObjective(v)
	return _c
}

// SetNillableObjective sets the "objective" field if the given value is not nil.
func (_c *VisitCreate) SetNillableObjective(v *string) *VisitCreate {
	if v != nil {
		_c.SetObjective(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *VisitCreate) SetSummary(v string) *VisitCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *VisitCreate) SetNillableSummary(v *string) *VisitCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *VisitCreate) SetScore(v int) *VisitCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *VisitCreate) SetNillableScore(v *int) *VisitCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetSignedBy sets the "signed_by" field.
func (_c *VisitCreate) SetSignedBy(v string) *VisitCreate {
	_c.mutation.SetSignedBy(v)
	return _c
}

// SetNillableSignedBy sets the "signed_by" field if the given value is not nil.
func (_c *VisitCreate) SetNillableSignedBy(v *string) *VisitCreate {
	if v != nil {
		_c.SetSignedBy(*v)
	}
	return _c
}

// SetSignatureData sets the "signature_data" field.
func (_c *VisitCreate) SetSignatureData(v string) *VisitCreate {
	_c.mutation.SetSignatureData(v)
	return _c
}

// SetNillableSignatureData sets the "signature_data" field if the given value is not nil.
func (_c *VisitCreate) SetNillableSignatureData(v *string) *VisitCreate {
	if v != nil {
		_c.SetSignatureData(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VisitCreate) SetCreatedAt(v time.Time) *VisitCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VisitCreate) SetNillableCreatedAt(v *time.Time) *VisitCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *VisitCreate) SetUpdatedAt(v time.Time) *VisitCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *VisitCreate) SetNillableUpdatedAt(v *time.Time) *VisitCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VisitCreate) SetID(v uuid.UUID) *VisitCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VisitCreate) SetNillableID(v *uuid.UUID) *VisitCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProspectID sets the "prospect" edge to the Prospect entity by ID.
func (_c *VisitCreate) SetProspectID(id uuid.UUID) *VisitCreate {
	_c.mutation.SetProspectID(id)
	return _c
}

// SetProspect sets the "prospect" edge to the Prospect entity.
func (_c *VisitCreate) SetProspect(v *Prospect) *VisitCreate {
	return _c.SetProspectID(v.ID)
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_c *VisitCreate) SetUserID(id uuid.UUID) *VisitCreate {
	_c.mutation.SetUserID(id)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *VisitCreate) SetUser(v *User) *VisitCreate {
	return _c.SetUserID(v.ID)
}

// SetTourID sets the "tour" edge to the Tour entity by ID.
func (_c *VisitCreate) SetTourID(id uuid.UUID) *VisitCreate {
	_c.mutation.SetTourID(id)
	return _c
}

// SetNillableTourID sets the "tour" edge to the Tour entity by ID if the given value is not nil.
func (_c *VisitCreate) SetNillableTourID(id *uuid.UUID) *VisitCreate {
	if id != nil {
		_c = _c.SetTourID(*id)
	}
	return _c
}

// SetTour sets the "tour" edge to the Tour entity.
func (_c *VisitCreate) SetTour(v *Tour) *VisitCreate {
	return _c.SetTourID(v.ID)
}

// Mutation returns the VisitMutation object of the builder.
func (_c *VisitCreate) Mutation() *VisitMutation {
	return _c.mutation
}

// Save creates the Visit in the database.
func (_c *VisitCreate) Save(ctx context.Context) (*Visit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VisitCreate) SaveX(ctx context.Context) *Visit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VisitCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VisitCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VisitCreate) defaults() {
	if _, ok := _c.mutation.VisitedAt(); !ok {
		v := visit.DefaultVisitedAt()
		_c.mutation.SetVisitedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := visit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := visit.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := visit.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VisitCreate) check() error {
	if _, ok := _c.mutation.VisitedAt(); !ok {
		return &ValidationError{Name: "visited_at", err: errors.New(`ent: missing required field "Visit.visited_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Visit.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Visit.updated_at"`)}
	}
	if len(_c.mutation.ProspectIDs()) == 0 {
		return &ValidationError{Name: "prospect", err: errors.New(`ent: missing required edge "Visit.prospect"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Visit.user"`)}
	}
	return nil
}

func (_c *VisitCreate) sqlSave(ctx context.Context) (*Visit, error) {
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

func (_c *VisitCreate) createSpec() (*Visit, *sqlgraph.CreateSpec) {
	var (
		_node = &Visit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(visit.Table, sqlgraph.NewFieldSpec(visit.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.VisitedAt(); ok {
		_spec.SetField(visit.FieldVisitedAt, field.TypeTime, value)
		_node.VisitedAt = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(visit.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = &value
	}
	if value, ok := _c.mutation.Objective(); ok {
		_spec.SetField(visit.FieldObjective, field.TypeString, value)
		_node.Objective = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(visit.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(visit.FieldScore, field.TypeInt, value)
		_node.Score = &value
	}
	if value, ok := _c.mutation.SignedBy(); ok {
		_spec.SetField(visit.FieldSignedBy, field.TypeString, value)
		_node.SignedBy = value
	}
	if value, ok := _c.mutation.SignatureData(); ok {
		_spec.SetField(visit.FieldSignatureData, field.TypeString, value)
		_node.SignatureData = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(visit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(visit.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProspectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   visit.ProspectTable,
			Columns: []string{visit.ProspectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prospect.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.prospect_visits = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   visit.UserTable,
			Columns: []string{visit.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.user_visits = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TourIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   visit.TourTable,
			Columns: []string{visit.TourColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tour.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.tour_visits = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VisitCreateBulk is the builder for creating many Visit entities in bulk.
type VisitCreateBulk struct {
	config
	err      error
	builders []*VisitCreate
}

// Save creates the Visit entities in the database.
func (_c *VisitCreateBulk) Save(ctx context.Context) ([]*Visit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Visit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VisitMutation)
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
func (_c *VisitCreateBulk) SaveX(ctx context.Context) []*Visit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VisitCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VisitCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
