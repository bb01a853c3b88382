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
	"github.com/horeca-prospection/backend/ent/tourstep"
)

// TourStepCreate is the builder for creating a TourStep entity.
type TourStepCreate struct {
	config
	mutation *TourStepMutation
	hooks    []Hook
}

// SetStepOrder sets the "step_order" field.
func (_c *TourStepCreate) SetStepOrder(v int) *TourStepCreate {
	_c.mutation.SetStepOrder(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TourStepCreate) SetStatus(v tourstep.Status) *TourStepCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TourStepCreate) SetNillableStatus(v *tourstep.Status) *TourStepCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetEta sets the "eta" field.
func (_c *TourStepCreate) SetEta(v time.Time) *TourStepCreate {
	_c.mutation.SetEta(v)
	return _c
}

// SetNillableEta sets the "eta" field if the given value is not nil.
func (_c *TourStepCreate) SetNillableEta(v *time.Time) *TourStepCreate {
	if v != nil {
		_c.SetEta(*v)
	}
	return _c
}

// SetDistanceFromPreviousKm sets the "distance_from_previous_km" field.
func (_c *TourStepCreate) SetDistanceFromPreviousKm(v float64) *TourStepCreate {
	_c.mutation.SetDistanceFromPreviousKm(v)
	return _c
}

// SetNillableDistanceFromPreviousKm sets the "distance_from_previous_km" field if the given value is not nil.
func (_c *TourStepCreate) SetNillableDistanceFromPreviousKm(v *float64) *TourStepCreate {
	if v != nil {
		_c.SetDistanceFromPreviousKm(*v)
	}
	return _c
}

// SetDurationFromPreviousMinutes sets the "duration_from_previous_minutes" field.
func (_c *TourStepCreate) SetDurationFromPreviousMinutes(v int) *TourStepCreate {
	_c.mutation.SetDurationFromPreviousMinutes(v)
	return _c
}

// SetNillableDurationFromPreviousMinutes sets the "duration_from_previous_minutes" field if the given value is not nil.
func (_c *TourStepCreate) SetNillableDurationFromPreviousMinutes(v *int) *TourStepCreate {
	if v != nil {
		_c.SetDurationFromPreviousMinutes(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TourStepCreate) SetCompletedAt(v time.Time) *TourStepCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TourStepCreate) SetNillableCompletedAt(v *time.Time) *TourStepCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TourStepCreate) SetCreatedAt(v time.Time) *TourStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TourStepCreate) SetNillableCreatedAt(v *time.Time) *TourStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TourStepCreate) SetUpdatedAt(v time.Time) *TourStepCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TourStepCreate) SetNillableUpdatedAt(v *time.Time) *TourStepCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TourStepCreate) SetID(v uuid.UUID) *TourStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TourStepCreate) SetNillableID(v *uuid.UUID) *TourStepCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTourID sets the "tour" edge to the Tour entity by ID.
func (_c *TourStepCreate) SetTourID(id uuid.UUID) *TourStepCreate {
	_c.mutation.SetTourID(id)
	return _c
}

// SetTour sets the "tour" edge to the Tour entity.
func (_c *TourStepCreate) SetTour(v *Tour) *TourStepCreate {
	return _c.SetTourID(v.ID)
}

// SetProspectID sets the "prospect" edge to the Prospect entity by ID.
func (_c *TourStepCreate) SetProspectID(id uuid.UUID) *TourStepCreate {
	_c.mutation.SetProspectID(id)
	return _c
}

// SetProspect sets the "prospect" edge to the Prospect entity.
func (_c *TourStepCreate) SetProspect(v *Prospect) *TourStepCreate {
	return _c.SetProspectID(v.ID)
}

// Mutation returns the TourStepMutation object of the builder.
func (_c *TourStepCreate) Mutation() *TourStepMutation {
	return _c.mutation
}

// Save creates the TourStep in the database.
func (_c *TourStepCreate) Save(ctx context.Context) (*TourStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TourStepCreate) SaveX(ctx context.Context) *TourStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TourStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TourStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TourStepCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := tourstep.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tourstep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tourstep.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := tourstep.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TourStepCreate) check() error {
	if _, ok := _c.mutation.StepOrder(); !ok {
		return &ValidationError{Name: "step_order", err: errors.New(`ent: missing required field "TourStep.step_order"`)}
	}
	if v, ok := _c.mutation.StepOrder(); ok {
		if err := tourstep.StepOrderValidator(v); err != nil {
			return &ValidationError{Name: "step_order", err: fmt.Errorf(`ent: validator failed for field "TourStep.step_order": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TourStep.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := tourstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TourStep.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TourStep.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TourStep.updated_at"`)}
	}
	if len(_c.mutation.TourIDs()) == 0 {
		return &ValidationError{Name: "tour", err: errors.New(`ent: missing required edge "TourStep.tour"`)}
	}
	if len(_c.mutation.ProspectIDs()) == 0 {
		return &ValidationError{Name: "prospect", err: errors.New(`ent: missing required edge "TourStep.prospect"`)}
	}
	return nil
}

func (_c *TourStepCreate) sqlSave(ctx context.Context) (*TourStep, error) {
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

func (_c *TourStepCreate) createSpec() (*TourStep, *sqlgraph.CreateSpec) {
	var (
		_node = &TourStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tourstep.Table, sqlgraph.NewFieldSpec(tourstep.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.StepOrder(); ok {
		_spec.SetField(tourstep.FieldStepOrder, field.TypeInt, value)
		_node.StepOrder = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(tourstep.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Eta(); ok {
		_spec.SetField(tourstep.FieldEta, field.TypeTime, value)
		_node.Eta = &value
	}
	if value, ok := _c.mutation.DistanceFromPreviousKm(); ok {
		_spec.SetField(tourstep.FieldDistanceFromPreviousKm, field.TypeFloat64, value)
		_node.DistanceFromPreviousKm = &value
	}
	if value, ok := _c.mutation.DurationFromPreviousMinutes(); ok {
		_spec.SetField(tourstep.FieldDurationFromPreviousMinutes, field.TypeInt, value)
		_node.DurationFromPreviousMinutes = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(tourstep.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tourstep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tourstep.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TourIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tourstep.TourTable,
			Columns: []string{tourstep.TourColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tour.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.tour_steps = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProspectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tourstep.ProspectTable,
			Columns: []string{tourstep.ProspectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prospect.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.prospect_steps = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TourStepCreateBulk is the builder for creating many TourStep entities in bulk.
type TourStepCreateBulk struct {
	config
	err      error
	builders []*TourStepCreate
}

// Save creates the TourStep entities in the database.
func (_c *TourStepCreateBulk) Save(ctx context.Context) ([]*TourStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TourStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TourStepMutation)
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
func (_c *TourStepCreateBulk) SaveX(ctx context.Context) []*TourStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TourStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TourStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
