// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/horeca-prospection/backend/ent/predicate"
	"github.com/horeca-prospection/backend/ent/prospect"
	"github.com/horeca-prospection/backend/ent/tour"
	"github.com/horeca-prospection/backend/ent/tourstep"
)

// TourStepUpdate is the builder for updating TourStep entities.
type TourStepUpdate struct {
	config
	hooks    []Hook
	mutation *TourStepMutation
}

// Where appends a list predicates to the TourStepUpdate builder.
func (_u *TourStepUpdate) Where(ps ...predicate.TourStep) *TourStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepOrder sets the "step_order" field.
func (_u *TourStepUpdate) SetStepOrder(v int) *TourStepUpdate {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *TourStepUpdate) SetNillableStepOrder(v *int) *TourStepUpdate {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *TourStepUpdate) AddStepOrder(v int) *TourStepUpdate {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TourStepUpdate) SetStatus(v tourstep.Status) *TourStepUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TourStepUpdate) SetNillableStatus(v *tourstep.Status) *TourStepUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEta sets the "eta" field.
func (_u *TourStepUpdate) SetEta(v time.Time) *TourStepUpdate {
	_u.mutation.SetEta(v)
	return _u
}

// SetNillableEta sets the "eta" field if the given value is not nil.
func (_u *TourStepUpdate) SetNillableEta(v *time.Time) *TourStepUpdate {
	if v != nil {
		_u.SetEta(*v)
	}
	return _u
}

// ClearEta clears the value of the "eta" field.
func (_u *TourStepUpdate) ClearEta() *TourStepUpdate {
	_u.mutation.ClearEta()
	return _u
}

// SetDistanceFromPreviousKm sets the "distance_from_previous_km" field.
func (_u *TourStepUpdate) SetDistanceFromPreviousKm(v float64) *TourStepUpdate {
	_u.mutation.ResetDistanceFromPreviousKm()
	_u.mutation.SetDistanceFromPreviousKm(v)
	return _u
}

// SetNillableDistanceFromPreviousKm sets the "distance_from_previous_km" field if the given value is not nil.
func (_u *TourStepUpdate) SetNillableDistanceFromPreviousKm(v *float64) *TourStepUpdate {
	if v != nil {
		_u.SetDistanceFromPreviousKm(*v)
	}
	return _u
}

// AddDistanceFromPreviousKm adds value to the "distance_from_previous_km" field.
func (_u *TourStepUpdate) AddDistanceFromPreviousKm(v float64) *TourStepUpdate {
	_u.mutation.AddDistanceFromPreviousKm(v)
	return _u
}

// ClearDistanceFromPreviousKm clears the value of the "distance_from_previous_km" field.
func (_u *TourStepUpdate) ClearDistanceFromPreviousKm() *TourStepUpdate {
	_u.mutation.ClearDistanceFromPreviousKm()
	return _u
}

// SetDurationFromPreviousMinutes sets the "duration_from_previous_minutes" field.
func (_u *TourStepUpdate) SetDurationFromPreviousMinutes(v int) *TourStepUpdate {
	_u.mutation.ResetDurationFromPreviousMinutes()
	_u.mutation.SetDurationFromPreviousMinutes(v)
	return _u
}

// SetNillableDurationFromPreviousMinutes sets the "duration_from_previous_minutes" field if the given value is not nil.
func (_u *TourStepUpdate) SetNillableDurationFromPreviousMinutes(v *int) *TourStepUpdate {
	if v != nil {
		_u.SetDurationFromPreviousMinutes(*v)
	}
	return _u
}

// AddDurationFromPreviousMinutes adds value to the "duration_from_previous_minutes" field.
func (_u *TourStepUpdate) AddDurationFromPreviousMinutes(v int) *TourStepUpdate {
	_u.mutation.AddDurationFromPreviousMinutes(v)
	return _u
}

// ClearDurationFromPreviousMinutes clears the value of the "duration_from_previous_minutes" field.
func (_u *TourStepUpdate) ClearDurationFromPreviousMinutes() *TourStepUpdate {
	_u.mutation.ClearDurationFromPreviousMinutes()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TourStepUpdate) SetCompletedAt(v time.Time) *TourStepUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TourStepUpdate) SetNillableCompletedAt(v *time.Time) *TourStepUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TourStepUpdate) ClearCompletedAt() *TourStepUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TourStepUpdate) SetUpdatedAt(v time.Time) *TourStepUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTourID sets the "tour" edge to the Tour entity by ID.
func (_u *TourStepUpdate) SetTourID(id uuid.UUID) *TourStepUpdate {
	_u.mutation.SetTourID(id)
	return _u
}

// SetTour sets the "tour" edge to the Tour entity.
func (_u *TourStepUpdate) SetTour(v *Tour) *TourStepUpdate {
	return _u.SetTourID(v.ID)
}

// SetProspectID sets the "prospect" edge to the Prospect entity by ID.
func (_u *TourStepUpdate) SetProspectID(id uuid.UUID) *TourStepUpdate {
	_u.mutation.SetProspectID(id)
	return _u
}

// SetProspect sets the "prospect" edge to the Prospect entity.
func (_u *TourStepUpdate) SetProspect(v *Prospect) *TourStepUpdate {
	return _u.SetProspectID(v.ID)
}

// Mutation returns the TourStepMutation object of the builder.
func (_u *TourStepUpdate) Mutation() *TourStepMutation {
	return _u.mutation
}

// ClearTour clears the "tour" edge to the Tour entity.
func (_u *TourStepUpdate) ClearTour() *TourStepUpdate {
	_u.mutation.ClearTour()
	return _u
}

// ClearProspect clears the "prospect" edge to the Prospect entity.
func (_u *TourStepUpdate) ClearProspect() *TourStepUpdate {
	_u.mutation.ClearProspect()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TourStepUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TourStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TourStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TourStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TourStepUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tourstep.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TourStepUpdate) check() error {
	if v, ok := _u.mutation.StepOrder(); ok {
		if err := tourstep.StepOrderValidator(v); err != nil {
			return &ValidationError{Name: "step_order", err: fmt.Errorf(`ent: validator failed for field "TourStep.step_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := tourstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TourStep.status": %w`, err)}
		}
	}
	if _u.mutation.TourCleared() && len(_u.mutation.TourIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TourStep.tour"`)
	}
	if _u.mutation.ProspectCleared() && len(_u.mutation.ProspectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TourStep.prospect"`)
	}
	return nil
}

func (_u *TourStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tourstep.Table, tourstep.Columns, sqlgraph.NewFieldSpec(tourstep.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(tourstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(tourstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tourstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Eta(); ok {
		_spec.SetField(tourstep.FieldEta, field.TypeTime, value)
	}
	if _u.mutation.EtaCleared() {
		_spec.ClearField(tourstep.FieldEta, field.TypeTime)
	}
	if value, ok := _u.mutation.DistanceFromPreviousKm(); ok {
		_spec.SetField(tourstep.FieldDistanceFromPreviousKm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistanceFromPreviousKm(); ok {
		_spec.AddField(tourstep.FieldDistanceFromPreviousKm, field.TypeFloat64, value)
	}
	if _u.mutation.DistanceFromPreviousKmCleared() {
		_spec.ClearField(tourstep.FieldDistanceFromPreviousKm, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DurationFromPreviousMinutes(); ok {
		_spec.SetField(tourstep.FieldDurationFromPreviousMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationFromPreviousMinutes(); ok {
		_spec.AddField(tourstep.FieldDurationFromPreviousMinutes, field.TypeInt, value)
	}
	if _u.mutation.DurationFromPreviousMinutesCleared() {
		_spec.ClearField(tourstep.FieldDurationFromPreviousMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(tourstep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(tourstep.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tourstep.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TourCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TourIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProspectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProspectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tourstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TourStepUpdateOne is the builder for updating a single TourStep entity.
type TourStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TourStepMutation
}

// SetStepOrder sets the "step_order" field.
func (_u *TourStepUpdateOne) SetStepOrder(v int) *TourStepUpdateOne {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *TourStepUpdateOne) SetNillableStepOrder(v *int) *TourStepUpdateOne {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *TourStepUpdateOne) AddStepOrder(v int) *TourStepUpdateOne {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TourStepUpdateOne) SetStatus(v tourstep.Status) *TourStepUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TourStepUpdateOne) SetNillableStatus(v *tourstep.Status) *TourStepUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEta sets the "eta" field.
func (_u *TourStepUpdateOne) SetEta(v time.Time) *TourStepUpdateOne {
	_u.mutation.SetEta(v)
	return _u
}

// SetNillableEta sets the "eta" field if the given value is not nil.
func (_u *TourStepUpdateOne) SetNillableEta(v *time.Time) *TourStepUpdateOne {
	if v != nil {
		_u.SetEta(*v)
	}
	return _u
}

// ClearEta clears the value of the "eta" field.
func (_u *TourStepUpdateOne) ClearEta() *TourStepUpdateOne {
	_u.mutation.ClearEta()
	return _u
}

// SetDistanceFromPreviousKm sets the "distance_from_previous_km" field.
func (_u *TourStepUpdateOne) SetDistanceFromPreviousKm(v float64) *TourStepUpdateOne {
	_u.mutation.ResetDistanceFromPreviousKm()
	_u.mutation.SetDistanceFromPreviousKm(v)
	return _u
}

// SetNillableDistanceFromPreviousKm sets the "distance_from_previous_km" field if the given value is not nil.
func (_u *TourStepUpdateOne) SetNillableDistanceFromPreviousKm(v *float64) *TourStepUpdateOne {
	if v != nil {
		_u.SetDistanceFromPreviousKm(*v)
	}
	return _u
}

// AddDistanceFromPreviousKm adds value to the "distance_from_previous_km" field.
func (_u *TourStepUpdateOne) AddDistanceFromPreviousKm(v float64) *TourStepUpdateOne {
	_u.mutation.AddDistanceFromPreviousKm(v)
	return _u
}

// ClearDistanceFromPreviousKm clears the value of the "distance_from_previous_km" field.
func (_u *TourStepUpdateOne) ClearDistanceFromPreviousKm() *TourStepUpdateOne {
	_u.mutation.ClearDistanceFromPreviousKm()
	return _u
}

// SetDurationFromPreviousMinutes sets the "duration_from_previous_minutes" field.
func (_u *TourStepUpdateOne) SetDurationFromPreviousMinutes(v int) *TourStepUpdateOne {
	_u.mutation.ResetDurationFromPreviousMinutes()
	_u.mutation.SetDurationFromPreviousMinutes(v)
	return _u
}

// SetNillableDurationFromPreviousMinutes sets the "duration_from_previous_minutes" field if the given value is not nil.
func (_u *TourStepUpdateOne) SetNillableDurationFromPreviousMinutes(v *int) *TourStepUpdateOne {
	if v != nil {
		_u.SetDurationFromPreviousMinutes(*v)
	}
	return _u
}

// AddDurationFromPreviousMinutes adds value to the "duration_from_previous_minutes" field.
func (_u *TourStepUpdateOne) AddDurationFromPreviousMinutes(v int) *TourStepUpdateOne {
	_u.mutation.AddDurationFromPreviousMinutes(v)
	return _u
}

// ClearDurationFromPreviousMinutes clears the value of the "duration_from_previous_minutes" field.
func (_u *TourStepUpdateOne) ClearDurationFromPreviousMinutes() *TourStepUpdateOne {
	_u.mutation.ClearDurationFromPreviousMinutes()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TourStepUpdateOne) SetCompletedAt(v time.Time) *TourStepUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TourStepUpdateOne) SetNillableCompletedAt(v *time.Time) *TourStepUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TourStepUpdateOne) ClearCompletedAt() *TourStepUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TourStepUpdateOne) SetUpdatedAt(v time.Time) *TourStepUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTourID sets the "tour" edge to the Tour entity by ID.
func (_u *TourStepUpdateOne) SetTourID(id uuid.UUID) *TourStepUpdateOne {
	_u.mutation.SetTourID(id)
	return _u
}

// SetTour sets the "tour" edge to the Tour entity.
func (_u *TourStepUpdateOne) SetTour(v *Tour) *TourStepUpdateOne {
	return _u.SetTourID(v.ID)
}

// SetProspectID sets the "prospect" edge to the Prospect entity by ID.
func (_u *TourStepUpdateOne) SetProspectID(id uuid.UUID) *TourStepUpdateOne {
	_u.mutation.SetProspectID(id)
	return _u
}

// SetProspect sets the "prospect" edge to the Prospect entity.
func (_u *TourStepUpdateOne) SetProspect(v *Prospect) *TourStepUpdateOne {
	return _u.SetProspectID(v.ID)
}

// Mutation returns the TourStepMutation object of the builder.
func (_u *TourStepUpdateOne) Mutation() *TourStepMutation {
	return _u.mutation
}

// ClearTour clears the "tour" edge to the Tour entity.
func (_u *TourStepUpdateOne) ClearTour() *TourStepUpdateOne {
	_u.mutation.ClearTour()
	return _u
}

// ClearProspect clears the "prospect" edge to the Prospect entity.
func (_u *TourStepUpdateOne) ClearProspect() *TourStepUpdateOne {
	_u.mutation.ClearProspect()
	return _u
}

// Where appends a list predicates to the TourStepUpdate builder.
func (_u *TourStepUpdateOne) Where(ps ...predicate.TourStep) *TourStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TourStepUpdateOne) Select(field string, fields ...string) *TourStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TourStep entity.
func (_u *TourStepUpdateOne) Save(ctx context.Context) (*TourStep, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TourStepUpdateOne) SaveX(ctx context.Context) *TourStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TourStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TourStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TourStepUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tourstep.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TourStepUpdateOne) check() error {
	if v, ok := _u.mutation.StepOrder(); ok {
		if err := tourstep.StepOrderValidator(v); err != nil {
			return &ValidationError{Name: "step_order", err: fmt.Errorf(`ent: validator failed for field "TourStep.step_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := tourstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TourStep.status": %w`, err)}
		}
	}
	if _u.mutation.TourCleared() && len(_u.mutation.TourIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TourStep.tour"`)
	}
	if _u.mutation.ProspectCleared() && len(_u.mutation.ProspectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TourStep.prospect"`)
	}
	return nil
}

func (_u *TourStepUpdateOne) sqlSave(ctx context.Context) (_node *TourStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tourstep.Table, tourstep.Columns, sqlgraph.NewFieldSpec(tourstep.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TourStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tourstep.FieldID)
		for _, f := range fields {
			if !tourstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tourstep.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(tourstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(tourstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tourstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Eta(); ok {
		_spec.SetField(tourstep.FieldEta, field.TypeTime, value)
	}
	if _u.mutation.EtaCleared() {
		_spec.ClearField(tourstep.FieldEta, field.TypeTime)
	}
	if value, ok := _u.mutation.DistanceFromPreviousKm(); ok {
		_spec.SetField(tourstep.FieldDistanceFromPreviousKm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistanceFromPreviousKm(); ok {
		_spec.AddField(tourstep.FieldDistanceFromPreviousKm, field.TypeFloat64, value)
	}
	if _u.mutation.DistanceFromPreviousKmCleared() {
		_spec.ClearField(tourstep.FieldDistanceFromPreviousKm, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DurationFromPreviousMinutes(); ok {
		_spec.SetField(tourstep.FieldDurationFromPreviousMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationFromPreviousMinutes(); ok {
		_spec.AddField(tourstep.FieldDurationFromPreviousMinutes, field.TypeInt, value)
	}
	if _u.mutation.DurationFromPreviousMinutesCleared() {
		_spec.ClearField(tourstep.FieldDurationFromPreviousMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(tourstep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(tourstep.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tourstep.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TourCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TourIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProspectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProspectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TourStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tourstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
