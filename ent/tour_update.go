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
	"github.com/horeca-prospection/backend/ent/company"
	"github.com/horeca-prospection/backend/ent/predicate"
	"github.com/horeca-prospection/backend/ent/tour"
	"github.com/horeca-prospection/backend/ent/tourstep"
	"github.com/horeca-prospection/backend/ent/user"
	"github.com/horeca-prospection/backend/ent/visit"
)

// TourUpdate is the builder for updating Tour entities.
type TourUpdate struct {
	config
	hooks    []Hook
	mutation *TourMutation
}

// Where appends a list predicates to the TourUpdate builder.
func (_u *TourUpdate) Where(ps ...predicate.Tour) *TourUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TourUpdate) SetName(v string) *TourUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TourUpdate) SetNillableName(v *string) *TourUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *TourUpdate) ClearName() *TourUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetDate sets the "date" field.
func (_u *TourUpdate) SetDate(v time.Time) *TourUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *TourUpdate) SetNillableDate(v *time.Time) *TourUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TourUpdate) SetStatus(v tour.Status) *TourUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TourUpdate) SetNillableStatus(v *tour.Status) *TourUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalDistanceKm sets the "total_distance_km" field.
func (_u *TourUpdate) SetTotalDistanceKm(v float64) *TourUpdate {
	_u.mutation.ResetTotalDistanceKm()
	_u.mutation.SetTotalDistanceKm(v)
	return _u
}

// SetNillableTotalDistanceKm sets the "total_distance_km" field if the given value is not nil.
func (_u *TourUpdate) SetNillableTotalDistanceKm(v *float64) *TourUpdate {
	if v != nil {
		_u.SetTotalDistanceKm(*v)
	}
	return _u
}

// AddTotalDistanceKm adds value to the "total_distance_km" field.
func (_u *TourUpdate) AddTotalDistanceKm(v float64) *TourUpdate {
	_u.mutation.AddTotalDistanceKm(v)
	return _u
}

// ClearTotalDistanceKm clears the value of the "total_distance_km" field.
func (_u *TourUpdate) ClearTotalDistanceKm() *TourUpdate {
	_u.mutation.ClearTotalDistanceKm()
	return _u
}

// SetTotalDurationMinutes sets the "total_duration_minutes" field.
func (_u *TourUpdate) SetTotalDurationMinutes(v int) *TourUpdate {
	_u.mutation.ResetTotalDurationMinutes()
	_u.mutation.SetTotalDurationMinutes(v)
	return _u
}

// SetNillableTotalDurationMinutes sets the "total_duration_minutes" field if the given value is not nil.
func (_u *TourUpdate) SetNillableTotalDurationMinutes(v *int) *TourUpdate {
	if v != nil {
		_u.SetTotalDurationMinutes(*v)
	}
	return _u
}

// AddTotalDurationMinutes adds value to the "total_duration_minutes" field.
func (_u *TourUpdate) AddTotalDurationMinutes(v int) *TourUpdate {
	_u.mutation.AddTotalDurationMinutes(v)
	return _u
}

// ClearTotalDurationMinutes clears the value of the "total_duration_minutes" field.
func (_u *TourUpdate) ClearTotalDurationMinutes() *TourUpdate {
	_u.mutation.ClearTotalDurationMinutes()
	return _u
}

// SetRouteData sets the "route_data" field.
func (_u *TourUpdate) SetRouteData(v map[string]interface{}) *TourUpdate {
	_u.mutation.SetRouteData(v)
	return _u
}

// ClearRouteData clears the value of the "route_data" field.
func (_u *TourUpdate) ClearRouteData() *TourUpdate {
	_u.mutation.ClearRouteData()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TourUpdate) SetUpdatedAt(v time.Time) *TourUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompanyID sets the "company" edge to the Company entity by ID.
func (_u *TourUpdate) SetCompanyID(id uuid.UUID) *TourUpdate {
	_u.mutation.SetCompanyID(id)
	return _u
}

// SetNillableCompanyID sets the "company" edge to the Company entity by ID if the given value is not nil.
func (_u *TourUpdate) SetNillableCompanyID(id *uuid.UUID) *TourUpdate {
	if id != nil {
		_u = _u.SetCompanyID(*id)
	}
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *TourUpdate) SetCompany(v *Company) *TourUpdate {
	return _u.SetCompanyID(v.ID)
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *TourUpdate) SetUserID(id uuid.UUID) *TourUpdate {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *TourUpdate) SetUser(v *User) *TourUpdate {
	return _u.SetUserID(v.ID)
}

// AddStepIDs adds the "steps" edge to the TourStep entity by IDs.
func (_u *TourUpdate) AddStepIDs(ids ...uuid.UUID) *TourUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the TourStep entity.
func (_u *TourUpdate) AddSteps(v ...*TourStep) *TourUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddVisitIDs adds the "visits" edge to the Visit entity by IDs.
func (_u *TourUpdate) AddVisitIDs(ids ...uuid.UUID) *TourUpdate {
	_u.mutation.AddVisitIDs(ids...)
	return _u
}

// AddVisits adds the "visits" edges to the Visit entity.
func (_u *TourUpdate) AddVisits(v ...*Visit) *TourUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVisitIDs(ids...)
}

// Mutation returns the TourMutation object of the builder.
func (_u *TourUpdate) Mutation() *TourMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *TourUpdate) ClearCompany() *TourUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *TourUpdate) ClearUser() *TourUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearSteps clears all "steps" edges to the TourStep entity.
func (_u *TourUpdate) ClearSteps() *TourUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to TourStep entities by IDs.
func (_u *TourUpdate) RemoveStepIDs(ids ...uuid.UUID) *TourUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to TourStep entities.
func (_u *TourUpdate) RemoveSteps(v ...*TourStep) *TourUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearVisits clears all "visits" edges to the Visit entity.
func (_u *TourUpdate) ClearVisits() *TourUpdate {
	_u.mutation.ClearVisits()
	return _u
}

// RemoveVisitIDs removes the "visits" edge to Visit entities by IDs.
func (_u *TourUpdate) RemoveVisitIDs(ids ...uuid.UUID) *TourUpdate {
	_u.mutation.RemoveVisitIDs(ids...)
	return _u
}

// RemoveVisits removes "visits" edges to Visit entities.
func (_u *TourUpdate) RemoveVisits(v ...*Visit) *TourUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVisitIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TourUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TourUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TourUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TourUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TourUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tour.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TourUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := tour.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Tour.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Tour.user"`)
	}
	return nil
}

func (_u *TourUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tour.Table, tour.Columns, sqlgraph.NewFieldSpec(tour.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(tour.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(tour.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(tour.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tour.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalDistanceKm(); ok {
		_spec.SetField(tour.FieldTotalDistanceKm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalDistanceKm(); ok {
		_spec.AddField(tour.FieldTotalDistanceKm, field.TypeFloat64, value)
	}
	if _u.mutation.TotalDistanceKmCleared() {
		_spec.ClearField(tour.FieldTotalDistanceKm, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalDurationMinutes(); ok {
		_spec.SetField(tour.FieldTotalDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalDurationMinutes(); ok {
		_spec.AddField(tour.FieldTotalDurationMinutes, field.TypeInt, value)
	}
	if _u.mutation.TotalDurationMinutesCleared() {
		_spec.ClearField(tour.FieldTotalDurationMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.RouteData(); ok {
		_spec.SetField(tour.FieldRouteData, field.TypeJSON, value)
	}
	if _u.mutation.RouteDataCleared() {
		_spec.ClearField(tour.FieldRouteData, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tour.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VisitsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVisitsIDs(); len(nodes) > 0 && !_u.mutation.VisitsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VisitsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tour.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TourUpdateOne is the builder for updating a single Tour entity.
type TourUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TourMutation
}

// SetName sets the "name" field.
func (_u *TourUpdateOne) SetName(v string) *TourUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TourUpdateOne) SetNillableName(v *string) *TourUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *TourUpdateOne) ClearName() *TourUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetDate sets the "date" field.
func (_u *TourUpdateOne) SetDate(v time.Time) *TourUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *TourUpdateOne) SetNillableDate(v *time.Time) *TourUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TourUpdateOne) SetStatus(v tour.Status) *TourUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TourUpdateOne) SetNillableStatus(v *tour.Status) *TourUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalDistanceKm sets the "total_distance_km" field.
func (_u *TourUpdateOne) SetTotalDistanceKm(v float64) *TourUpdateOne {
	_u.mutation.ResetTotalDistanceKm()
	_u.mutation.SetTotalDistanceKm(v)
	return _u
}

// SetNillableTotalDistanceKm sets the "total_distance_km" field if the given value is not nil.
func (_u *TourUpdateOne) SetNillableTotalDistanceKm(v *float64) *TourUpdateOne {
	if v != nil {
		_u.SetTotalDistanceKm(*v)
	}
	return _u
}

// AddTotalDistanceKm adds value to the "total_distance_km" field.
func (_u *TourUpdateOne) AddTotalDistanceKm(v float64) *TourUpdateOne {
	_u.mutation.AddTotalDistanceKm(v)
	return _u
}

// ClearTotalDistanceKm clears the value of the "total_distance_km" field.
func (_u *TourUpdateOne) ClearTotalDistanceKm() *TourUpdateOne {
	_u.mutation.ClearTotalDistanceKm()
	return _u
}

// SetTotalDurationMinutes sets the "total_duration_minutes" field.
func (_u *TourUpdateOne) SetTotalDurationMinutes(v int) *TourUpdateOne {
	_u.mutation.ResetTotalDurationMinutes()
	_u.mutation.SetTotalDurationMinutes(v)
	return _u
}

// SetNillableTotalDurationMinutes sets the "total_duration_minutes" field if the given value is not nil.
func (_u *TourUpdateOne) SetNillableTotalDurationMinutes(v *int) *TourUpdateOne {
	if v != nil {
		_u.SetTotalDurationMinutes(*v)
	}
	return _u
}

// AddTotalDurationMinutes adds value to the "total_duration_minutes" field.
func (_u *TourUpdateOne) AddTotalDurationMinutes(v int) *TourUpdateOne {
	_u.mutation.AddTotalDurationMinutes(v)
	return _u
}

// ClearTotalDurationMinutes clears the value of the "total_duration_minutes" field.
func (_u *TourUpdateOne) ClearTotalDurationMinutes() *TourUpdateOne {
	_u.mutation.ClearTotalDurationMinutes()
	return _u
}

// SetRouteData sets the "route_data" field.
func (_u *TourUpdateOne) SetRouteData(v map[string]interface{}) *TourUpdateOne {
	_u.mutation.SetRouteData(v)
	return _u
}

// ClearRouteData clears the value of the "route_data" field.
func (_u *TourUpdateOne) ClearRouteData() *TourUpdateOne {
	_u.mutation.ClearRouteData()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TourUpdateOne) SetUpdatedAt(v time.Time) *TourUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompanyID sets the "company" edge to the Company entity by ID.
func (_u *TourUpdateOne) SetCompanyID(id uuid.UUID) *TourUpdateOne {
	_u.mutation.SetCompanyID(id)
	return _u
}

// SetNillableCompanyID sets the "company" edge to the Company entity by ID if the given value is not nil.
func (_u *TourUpdateOne) SetNillableCompanyID(id *uuid.UUID) *TourUpdateOne {
	if id != nil {
		_u = _u.SetCompanyID(*id)
	}
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *TourUpdateOne) SetCompany(v *Company) *TourUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *TourUpdateOne) SetUserID(id uuid.UUID) *TourUpdateOne {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *TourUpdateOne) SetUser(v *User) *TourUpdateOne {
	return _u.SetUserID(v.ID)
}

// AddStepIDs adds the "steps" edge to the TourStep entity by IDs.
func (_u *TourUpdateOne) AddStepIDs(ids ...uuid.UUID) *TourUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the TourStep entity.
func (_u *TourUpdateOne) AddSteps(v ...*TourStep) *TourUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddVisitIDs adds the "visits" edge to the Visit entity by IDs.
func (_u *TourUpdateOne) AddVisitIDs(ids ...uuid.UUID) *TourUpdateOne {
	_u.mutation.AddVisitIDs(ids...)
	return _u
}

// AddVisits adds the "visits" edges to the Visit entity.
func (_u *TourUpdateOne) AddVisits(v ...*Visit) *TourUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVisitIDs(ids...)
}

// Mutation returns the TourMutation object of the builder.
func (_u *TourUpdateOne) Mutation() *TourMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *TourUpdateOne) ClearCompany() *TourUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *TourUpdateOne) ClearUser() *TourUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearSteps clears all "steps" edges to the TourStep entity.
func (_u *TourUpdateOne) ClearSteps() *TourUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to TourStep entities by IDs.
func (_u *TourUpdateOne) RemoveStepIDs(ids ...uuid.UUID) *TourUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to TourStep entities.
func (_u *TourUpdateOne) RemoveSteps(v ...*TourStep) *TourUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearVisits clears all "visits" edges to the Visit entity.
func (_u *TourUpdateOne) ClearVisits() *TourUpdateOne {
	_u.mutation.ClearVisits()
	return _u
}

// RemoveVisitIDs removes the "visits" edge to Visit entities by IDs.
func (_u *TourUpdateOne) RemoveVisitIDs(ids ...uuid.UUID) *TourUpdateOne {
	_u.mutation.RemoveVisitIDs(ids...)
	return _u
}

// RemoveVisits removes "visits" edges to Visit entities.
func (_u *TourUpdateOne) RemoveVisits(v ...*Visit) *TourUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVisitIDs(ids...)
}

// Where appends a list predicates to the TourUpdate builder.
func (_u *TourUpdateOne) Where(ps ...predicate.Tour) *TourUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TourUpdateOne) Select(field string, fields ...string) *TourUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Tour entity.
func (_u *TourUpdateOne) Save(ctx context.Context) (*Tour, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TourUpdateOne) SaveX(ctx context.Context) *Tour {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TourUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TourUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TourUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tour.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TourUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := tour.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Tour.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Tour.user"`)
	}
	return nil
}

func (_u *TourUpdateOne) sqlSave(ctx context.Context) (_node *Tour, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tour.Table, tour.Columns, sqlgraph.NewFieldSpec(tour.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Tour.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tour.FieldID)
		for _, f := range fields {
			if !tour.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tour.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(tour.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(tour.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(tour.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tour.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalDistanceKm(); ok {
		_spec.SetField(tour.FieldTotalDistanceKm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalDistanceKm(); ok {
		_spec.AddField(tour.FieldTotalDistanceKm, field.TypeFloat64, value)
	}
	if _u.mutation.TotalDistanceKmCleared() {
		_spec.ClearField(tour.FieldTotalDistanceKm, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalDurationMinutes(); ok {
		_spec.SetField(tour.FieldTotalDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalDurationMinutes(); ok {
		_spec.AddField(tour.FieldTotalDurationMinutes, field.TypeInt, value)
	}
	if _u.mutation.TotalDurationMinutesCleared() {
		_spec.ClearField(tour.FieldTotalDurationMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.RouteData(); ok {
		_spec.SetField(tour.FieldRouteData, field.TypeJSON, value)
	}
	if _u.mutation.RouteDataCleared() {
		_spec.ClearField(tour.FieldRouteData, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tour.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VisitsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVisitsIDs(); len(nodes) > 0 && !_u.mutation.VisitsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VisitsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Tour{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tour.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
