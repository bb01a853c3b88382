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
	"github.com/horeca-prospection/backend/ent/user"
	"github.com/horeca-prospection/backend/ent/visit"
)

// VisitUpdate is the builder for updating Visit entities.
type VisitUpdate struct {
	config
	hooks    []Hook
	mutation *VisitMutation
}

// Where appends a list predicates to the VisitUpdate builder.
func (_u *VisitUpdate) Where(ps ...predicate.Visit) *VisitUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVisitedAt sets the "visited_at" field.
func (_u *VisitUpdate) SetVisitedAt(v time.Time) *VisitUpdate {
	_u.mutation.SetVisitedAt(v)
	return _u
}

// SetNillableVisitedAt sets the "visited_at" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableVisitedAt(v *time.Time) *VisitUpdate {
	if v != nil {
		_u.SetVisitedAt(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *VisitUpdate) SetDurationMinutes(v int) *VisitUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableDurationMinutes(v *int) *VisitUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *VisitUpdate) AddDurationMinutes(v int) *VisitUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// ClearDurationMinutes clears the value of the "duration_minutes" field.
func (_u *VisitUpdate) ClearDurationMinutes() *VisitUpdate {
	_u.mutation.ClearDurationMinutes()
	return _u
}

// SetObjective sets the "objective" field.
func (_u *VisitUpdate) SetObjective(v string) *VisitUpdate {
	_u.mutation.SetObjective(v)
	return _u
}

// SetNillableObjective sets the "objective" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableObjective(v *string) *VisitUpdate {
	if v != nil {
		_u.SetObjective(*v)
	}
	return _u
}

// ClearObjective clears the value of the "objective" field.
func (_u *VisitUpdate) ClearObjective() *VisitUpdate {
	_u.mutation.ClearObjective()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *VisitUpdate) SetSummary(v string) *VisitUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableSummary(v *string) *VisitUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *VisitUpdate) ClearSummary() *VisitUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetScore sets the "score" field.
func (_u *VisitUpdate) SetScore(v int) *VisitUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableScore(v *int) *VisitUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *VisitUpdate) AddScore(v int) *VisitUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *VisitUpdate) ClearScore() *VisitUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetSignedBy sets the "signed_by" field.
func (_u *VisitUpdate) SetSignedBy(v string) *VisitUpdate {
	_u.mutation.SetSignedBy(v)
	return _u
}

// SetNillableSignedBy sets the "signed_by" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableSignedBy(v *string) *VisitUpdate {
	if v != nil {
		_u.SetSignedBy(*v)
	}
	return _u
}

// ClearSignedBy clears the value of the "signed_by" field.
func (_u *VisitUpdate) ClearSignedBy() *VisitUpdate {
	_u.mutation.ClearSignedBy()
	return _u
}

// SetSignatureData sets the "signature_data" field.
func (_u *VisitUpdate) SetSignatureData(v string) *VisitUpdate {
	_u.mutation.SetSignatureData(v)
	return _u
}

// SetNillableSignatureData sets the "signature_data" field if the given value is not nil.
func (_u *VisitUpdate) SetNillableSignatureData(v *string) *VisitUpdate {
	if v != nil {
		_u.SetSignatureData(*v)
	}
	return _u
}

// ClearSignatureData clears the value of the "signature_data" field.
func (_u *VisitUpdate) ClearSignatureData() *VisitUpdate {
	_u.mutation.ClearSignatureData()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VisitUpdate) SetUpdatedAt(v time.Time) *VisitUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProspectID sets the "prospect" edge to the Prospect entity by ID.
func (_u *VisitUpdate) SetProspectID(id uuid.UUID) *VisitUpdate {
	_u.mutation.SetProspectID(id)
	return _u
}

// SetProspect sets the "prospect" edge to the Prospect entity.
func (_u *VisitUpdate) SetProspect(v *Prospect) *VisitUpdate {
	return _u.SetProspectID(v.ID)
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *VisitUpdate) SetUserID(id uuid.UUID) *VisitUpdate {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *VisitUpdate) SetUser(v *User) *VisitUpdate {
	return _u.SetUserID(v.ID)
}

// SetTourID sets the "tour" edge to the Tour entity by ID.
func (_u *VisitUpdate) SetTourID(id uuid.UUID) *VisitUpdate {
	_u.mutation.SetTourID(id)
	return _u
}

// SetNillableTourID sets the "tour" edge to the Tour entity by ID if the given value is not nil.
func (_u *VisitUpdate) SetNillableTourID(id *uuid.UUID) *VisitUpdate {
	if id != nil {
		_u = _u.SetTourID(*id)
	}
	return _u
}

// SetTour sets the "tour" edge to the Tour entity.
func (_u *VisitUpdate) SetTour(v *Tour) *VisitUpdate {
	return _u.SetTourID(v.ID)
}

// Mutation returns the VisitMutation object of the builder.
func (_u *VisitUpdate) Mutation() *VisitMutation {
	return _u.mutation
}

// ClearProspect clears the "prospect" edge to the Prospect entity.
func (_u *VisitUpdate) ClearProspect() *VisitUpdate {
	_u.mutation.ClearProspect()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *VisitUpdate) ClearUser() *VisitUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearTour clears the "tour" edge to the Tour entity.
func (_u *VisitUpdate) ClearTour() *VisitUpdate {
	_u.mutation.ClearTour()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VisitUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VisitUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VisitUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VisitUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VisitUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := visit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VisitUpdate) check() error {
	if _u.mutation.ProspectCleared() && len(_u.mutation.ProspectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Visit.prospect"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Visit.user"`)
	}
	return nil
}

func (_u *VisitUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(visit.Table, visit.Columns, sqlgraph.NewFieldSpec(visit.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VisitedAt(); ok {
		_spec.SetField(visit.FieldVisitedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(visit.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(visit.FieldDurationMinutes, field.TypeInt, value)
	}
	if _u.mutation.DurationMinutesCleared() {
		_spec.ClearField(visit.FieldDurationMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.Objective(); ok {
		_spec.SetField(visit.FieldObjective, field.TypeString, value)
	}
	if _u.mutation.ObjectiveCleared() {
		_spec.ClearField(visit.FieldObjective, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(visit.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(visit.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(visit.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(visit.FieldScore, field.TypeInt, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(visit.FieldScore, field.TypeInt)
	}
	if value, ok := _u.mutation.SignedBy(); ok {
		_spec.SetField(visit.FieldSignedBy, field.TypeString, value)
	}
	if _u.mutation.SignedByCleared() {
		_spec.ClearField(visit.FieldSignedBy, field.TypeString)
	}
	if value, ok := _u.mutation.SignatureData(); ok {
		_spec.SetField(visit.FieldSignatureData, field.TypeString, value)
	}
	if _u.mutation.SignatureDataCleared() {
		_spec.ClearField(visit.FieldSignatureData, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(visit.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProspectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProspectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TourCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TourIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{visit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VisitUpdateOne is the builder for updating a single Visit entity.
type VisitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VisitMutation
}

// SetVisitedAt sets the "visited_at" field.
func (_u *VisitUpdateOne) SetVisitedAt(v time.Time) *VisitUpdateOne {
	_u.mutation.SetVisitedAt(v)
	return _u
}

// SetNillableVisitedAt sets the "visited_at" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableVisitedAt(v *time.Time) *VisitUpdateOne {
	if v != nil {
		_u.SetVisitedAt(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *VisitUpdateOne) SetDurationMinutes(v int) *VisitUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableDurationMinutes(v *int) *VisitUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *VisitUpdateOne) AddDurationMinutes(v int) *VisitUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// ClearDurationMinutes clears the value of the "duration_minutes" field.
func (_u *VisitUpdateOne) ClearDurationMinutes() *VisitUpdateOne {
	_u.mutation.ClearDurationMinutes()
	return _u
}

// SetObjective sets the "objective" field.
func (_u *VisitUpdateOne) SetObjective(v string) *VisitUpdateOne {
	_u.mutation.SetObjective(v)
	return _u
}

// SetNillableObjective sets the "objective" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableObjective(v *string) *VisitUpdateOne {
	if v != nil {
		_u.SetObjective(*v)
	}
	return _u
}

// ClearObjective clears the value of the "objective" field.
func (_u *VisitUpdateOne) ClearObjective() *VisitUpdateOne {
	_u.mutation.ClearObjective()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *VisitUpdateOne) SetSummary(v string) *VisitUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableSummary(v *string) *VisitUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *VisitUpdateOne) ClearSummary() *VisitUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetScore sets the "score" field.
func (_u *VisitUpdateOne) SetScore(v int) *VisitUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableScore(v *int) *VisitUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *VisitUpdateOne) AddScore(v int) *VisitUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *VisitUpdateOne) ClearScore() *VisitUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetSignedBy sets the "signed_by" field.
func (_u *VisitUpdateOne) SetSignedBy(v string) *VisitUpdateOne {
	_u.mutation.SetSignedBy(v)
	return _u
}

// SetNillableSignedBy sets the "signed_by" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableSignedBy(v *string) *VisitUpdateOne {
	if v != nil {
		_u.SetSignedBy(*v)
	}
	return _u
}

// ClearSignedBy clears the value of the "signed_by" field.
func (_u *VisitUpdateOne) ClearSignedBy() *VisitUpdateOne {
	_u.mutation.ClearSignedBy()
	return _u
}

// SetSignatureData sets the "signature_data" field.
func (_u *VisitUpdateOne) SetSignatureData(v string) *VisitUpdateOne {
	_u.mutation.SetSignatureData(v)
	return _u
}

// SetNillableSignatureData sets the "signature_data" field if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableSignatureData(v *string) *VisitUpdateOne {
	if v != nil {
		_u.SetSignatureData(*v)
	}
	return _u
}

// ClearSignatureData clears the value of the "signature_data" field.
func (_u *VisitUpdateOne) ClearSignatureData() *VisitUpdateOne {
	_u.mutation.ClearSignatureData()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VisitUpdateOne) SetUpdatedAt(v time.Time) *VisitUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProspectID sets the "prospect" edge to the Prospect entity by ID.
func (_u *VisitUpdateOne) SetProspectID(id uuid.UUID) *VisitUpdateOne {
	_u.mutation.SetProspectID(id)
	return _u
}

// SetProspect sets the "prospect" edge to the Prospect entity.
func (_u *VisitUpdateOne) SetProspect(v *Prospect) *VisitUpdateOne {
	return _u.SetProspectID(v.ID)
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *VisitUpdateOne) SetUserID(id uuid.UUID) *VisitUpdateOne {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *VisitUpdateOne) SetUser(v *User) *VisitUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetTourID sets the "tour" edge to the Tour entity by ID.
func (_u *VisitUpdateOne) SetTourID(id uuid.UUID) *VisitUpdateOne {
	_u.mutation.SetTourID(id)
	return _u
}

// SetNillableTourID sets the "tour" edge to the Tour entity by ID if the given value is not nil.
func (_u *VisitUpdateOne) SetNillableTourID(id *uuid.UUID) *VisitUpdateOne {
	if id != nil {
		_u = _u.SetTourID(*id)
	}
	return _u
}

// SetTour sets the "tour" edge to the Tour entity.
func (_u *VisitUpdateOne) SetTour(v *Tour) *VisitUpdateOne {
	return _u.SetTourID(v.ID)
}

// Mutation returns the VisitMutation object of the builder.
func (_u *VisitUpdateOne) Mutation() *VisitMutation {
	return _u.mutation
}

// ClearProspect clears the "prospect" edge to the Prospect entity.
func (_u *VisitUpdateOne) ClearProspect() *VisitUpdateOne {
	_u.mutation.ClearProspect()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *VisitUpdateOne) ClearUser() *VisitUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearTour clears the "tour" edge to the Tour entity.
func (_u *VisitUpdateOne) ClearTour() *VisitUpdateOne {
	_u.mutation.ClearTour()
	return _u
}

// Where appends a list predicates to the VisitUpdate builder.
func (_u *VisitUpdateOne) Where(ps ...predicate.Visit) *VisitUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VisitUpdateOne) Select(field string, fields ...string) *VisitUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Visit entity.
func (_u *VisitUpdateOne) Save(ctx context.Context) (*Visit, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VisitUpdateOne) SaveX(ctx context.Context) *Visit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VisitUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VisitUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VisitUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := visit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VisitUpdateOne) check() error {
	if _u.mutation.ProspectCleared() && len(_u.mutation.ProspectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Visit.prospect"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Visit.user"`)
	}
	return nil
}

func (_u *VisitUpdateOne) sqlSave(ctx context.Context) (_node *Visit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(visit.Table, visit.Columns, sqlgraph.NewFieldSpec(visit.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Visit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, visit.FieldID)
		for _, f := range fields {
			if !visit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != visit.FieldID {
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
	if value, ok := _u.mutation.VisitedAt(); ok {
		_spec.SetField(visit.FieldVisitedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(visit.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(visit.FieldDurationMinutes, field.TypeInt, value)
	}
	if _u.mutation.DurationMinutesCleared() {
		_spec.ClearField(visit.FieldDurationMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.Objective(); ok {
		_spec.SetField(visit.FieldObjective, field.TypeString, value)
	}
	if _u.mutation.ObjectiveCleared() {
		_spec.ClearField(visit.FieldObjective, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(visit.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(visit.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(visit.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(visit.FieldScore, field.TypeInt, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(visit.FieldScore, field.TypeInt)
	}
	if value, ok := _u.mutation.SignedBy(); ok {
		_spec.SetField(visit.FieldSignedBy, field.TypeString, value)
	}
	if _u.mutation.SignedByCleared() {
		_spec.ClearField(visit.FieldSignedBy, field.TypeString)
	}
	if value, ok := _u.mutation.SignatureData(); ok {
		_spec.SetField(visit.FieldSignatureData, field.TypeString, value)
	}
	if _u.mutation.SignatureDataCleared() {
		_spec.ClearField(visit.FieldSignatureData, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(visit.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProspectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProspectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TourCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TourIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Visit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{visit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
