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
	"github.com/horeca-prospection/backend/ent/prospect"
	"github.com/horeca-prospection/backend/ent/tourstep"
	"github.com/horeca-prospection/backend/ent/user"
	"github.com/horeca-prospection/backend/ent/visit"
)

// ProspectUpdate is the builder for updating Prospect entities.
type ProspectUpdate struct {
	config
	hooks    []Hook
	mutation *ProspectMutation
}

// Where appends a list predicates to the ProspectUpdate builder.
func (_u *ProspectUpdate) Where(ps ...predicate.Prospect) *ProspectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ProspectUpdate) SetName(v string) *ProspectUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableName(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNameFolded sets the "name_folded" field.
func (_u *ProspectUpdate) SetNameFolded(v string) *ProspectUpdate {
	_u.mutation.SetNameFolded(v)
	return _u
}

// SetNillableNameFolded sets the "name_folded" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableNameFolded(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetNameFolded(*v)
	}
	return _u
}

// ClearNameFolded clears the value of the "name_folded" field.
func (_u *ProspectUpdate) ClearNameFolded() *ProspectUpdate {
	_u.mutation.ClearNameFolded()
	return _u
}

// SetType sets the "type" field.
func (_u *ProspectUpdate) SetType(v prospect.Type) *ProspectUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableType(v *prospect.Type) *ProspectUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// ClearType clears the value of the "type" field.
func (_u *ProspectUpdate) ClearType() *ProspectUpdate {
	_u.mutation.ClearType()
	return _u
}

// SetAddress sets the "address" field.
func (_u *ProspectUpdate) SetAddress(v string) *ProspectUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableAddress(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *ProspectUpdate) ClearAddress() *ProspectUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *ProspectUpdate) SetPostalCode(v string) *ProspectUpdate {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillablePostalCode(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *ProspectUpdate) ClearPostalCode() *ProspectUpdate {
	_u.mutation.ClearPostalCode()
	return _u
}

// SetCity sets the "city" field.
func (_u *ProspectUpdate) SetCity(v string) *ProspectUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableCity(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *ProspectUpdate) ClearCity() *ProspectUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetCountry sets the "country" field.
func (_u *ProspectUpdate) SetCountry(v string) *ProspectUpdate {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableCountry(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ProspectUpdate) SetPhone(v string) *ProspectUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillablePhone(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ProspectUpdate) ClearPhone() *ProspectUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProspectUpdate) SetEmail(v string) *ProspectUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableEmail(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ProspectUpdate) ClearEmail() *ProspectUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetWebsite sets the "website" field.
func (_u *ProspectUpdate) SetWebsite(v string) *ProspectUpdate {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableWebsite(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *ProspectUpdate) ClearWebsite() *ProspectUpdate {
	_u.mutation.ClearWebsite()
	return _u
}

// SetManagerName sets the "manager_name" field.
func (_u *ProspectUpdate) SetManagerName(v string) *ProspectUpdate {
	_u.mutation.SetManagerName(v)
	return _u
}

// SetNillableManagerName sets the "manager_name" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableManagerName(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetManagerName(*v)
	}
	return _u
}

// ClearManagerName clears the value of the "manager_name" field.
func (_u *ProspectUpdate) ClearManagerName() *ProspectUpdate {
	_u.mutation.ClearManagerName()
	return _u
}

// SetOpeningHours sets the "opening_hours" field.
func (_u *ProspectUpdate) SetOpeningHours(v map[string]interface{}) *ProspectUpdate {
	_u.mutation.SetOpeningHours(v)
	return _u
}

// ClearOpeningHours clears the value of the "opening_hours" field.
func (_u *ProspectUpdate) ClearOpeningHours() *ProspectUpdate {
	_u.mutation.ClearOpeningHours()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProspectUpdate) SetStatus(v prospect.Status) *ProspectUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableStatus(v *prospect.Status) *ProspectUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNoteAvg sets the "note_avg" field.
func (_u *ProspectUpdate) SetNoteAvg(v float64) *ProspectUpdate {
	_u.mutation.ResetNoteAvg()
	_u.mutation.SetNoteAvg(v)
	return _u
}

// SetNillableNoteAvg sets the "note_avg" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableNoteAvg(v *float64) *ProspectUpdate {
	if v != nil {
		_u.SetNoteAvg(*v)
	}
	return _u
}

// AddNoteAvg adds value to the "note_avg" field.
func (_u *ProspectUpdate) AddNoteAvg(v float64) *ProspectUpdate {
	_u.mutation.AddNoteAvg(v)
	return _u
}

// SetVisitsCount sets the "visits_count" field.
func (_u *ProspectUpdate) SetVisitsCount(v int) *ProspectUpdate {
	_u.mutation.ResetVisitsCount()
	_u.mutation.SetVisitsCount(v)
	return _u
}

// SetNillableVisitsCount sets the "visits_count" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableVisitsCount(v *int) *ProspectUpdate {
	if v != nil {
		_u.SetVisitsCount(*v)
	}
	return _u
}

// AddVisitsCount adds value to the "visits_count" field.
func (_u *ProspectUpdate) AddVisitsCount(v int) *ProspectUpdate {
	_u.mutation.AddVisitsCount(v)
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *ProspectUpdate) SetLatitude(v float64) *ProspectUpdate {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableLatitude(v *float64) *ProspectUpdate {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *ProspectUpdate) AddLatitude(v float64) *ProspectUpdate {
	_u.mutation.AddLatitude(v)
	return _u
}

// ClearLatitude clears the value of the "latitude" field.
func (_u *ProspectUpdate) ClearLatitude() *ProspectUpdate {
	_u.mutation.ClearLatitude()
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *ProspectUpdate) SetLongitude(v float64) *ProspectUpdate {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableLongitude(v *float64) *ProspectUpdate {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *ProspectUpdate) AddLongitude(v float64) *ProspectUpdate {
	_u.mutation.AddLongitude(v)
	return _u
}

// ClearLongitude clears the value of the "longitude" field.
func (_u *ProspectUpdate) ClearLongitude() *ProspectUpdate {
	_u.mutation.ClearLongitude()
	return _u
}

// SetGooglePlaceID sets the "google_place_id" field.
func (_u *ProspectUpdate) SetGooglePlaceID(v string) *ProspectUpdate {
	_u.mutation.SetGooglePlaceID(v)
	return _u
}

// SetNillableGooglePlaceID sets the "google_place_id" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableGooglePlaceID(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetGooglePlaceID(*v)
	}
	return _u
}

// ClearGooglePlaceID clears the value of the "google_place_id" field.
func (_u *ProspectUpdate) ClearGooglePlaceID() *ProspectUpdate {
	_u.mutation.ClearGooglePlaceID()
	return _u
}

// SetAiData sets the "ai_data" field.
func (_u *ProspectUpdate) SetAiData(v map[string]interface{}) *ProspectUpdate {
	_u.mutation.SetAiData(v)
	return _u
}

// ClearAiData clears the value of the "ai_data" field.
func (_u *ProspectUpdate) ClearAiData() *ProspectUpdate {
	_u.mutation.ClearAiData()
	return _u
}

// SetAiEnrichedAt sets the "ai_enriched_at" field.
func (_u *ProspectUpdate) SetAiEnrichedAt(v time.Time) *ProspectUpdate {
	_u.mutation.SetAiEnrichedAt(v)
	return _u
}

// SetNillableAiEnrichedAt sets the "ai_enriched_at" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableAiEnrichedAt(v *time.Time) *ProspectUpdate {
	if v != nil {
		_u.SetAiEnrichedAt(*v)
	}
	return _u
}

// ClearAiEnrichedAt clears the value of the "ai_enriched_at" field.
func (_u *ProspectUpdate) ClearAiEnrichedAt() *ProspectUpdate {
	_u.mutation.ClearAiEnrichedAt()
	return _u
}

// SetAiScore sets the "ai_score" field.
func (_u *ProspectUpdate) SetAiScore(v float64) *ProspectUpdate {
	_u.mutation.ResetAiScore()
	_u.mutation.SetAiScore(v)
	return _u
}

// SetNillableAiScore sets the "ai_score" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableAiScore(v *float64) *ProspectUpdate {
	if v != nil {
		_u.SetAiScore(*v)
	}
	return _u
}

// AddAiScore adds value to the "ai_score" field.
func (_u *ProspectUpdate) AddAiScore(v float64) *ProspectUpdate {
	_u.mutation.AddAiScore(v)
	return _u
}

// ClearAiScore clears the value of the "ai_score" field.
func (_u *ProspectUpdate) ClearAiScore() *ProspectUpdate {
	_u.mutation.ClearAiScore()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProspectUpdate) SetUpdatedAt(v time.Time) *ProspectUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompanyID sets the "company" edge to the Company entity by ID.
func (_u *ProspectUpdate) SetCompanyID(id uuid.UUID) *ProspectUpdate {
	_u.mutation.SetCompanyID(id)
	return _u
}

// SetNillableCompanyID sets the "company" edge to the Company entity by ID if the given value is not nil.
func (_u *ProspectUpdate) SetNillableCompanyID(id *uuid.UUID) *ProspectUpdate {
	if id != nil {
		_u = _u.SetCompanyID(*id)
	}
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *ProspectUpdate) SetCompany(v *Company) *ProspectUpdate {
	return _u.SetCompanyID(v.ID)
}

// SetCreatorID sets the "creator" edge to the User entity by ID.
func (_u *ProspectUpdate) SetCreatorID(id uuid.UUID) *ProspectUpdate {
	_u.mutation.SetCreatorID(id)
	return _u
}

// SetNillableCreatorID sets the "creator" edge to the User entity by ID if the given value is not nil.
func (_u *ProspectUpdate) SetNillableCreatorID(id *uuid.UUID) *ProspectUpdate {
	if id != nil {
		_u = _u.SetCreatorID(*id)
	}
	return _u
}

// SetCreator sets the "creator" edge to the User entity.
func (_u *ProspectUpdate) SetCreator(v *User) *ProspectUpdate {
	return _u.SetCreatorID(v.ID)
}

// AddVisitIDs adds the "visits" edge to the Visit entity by IDs.
func (_u *ProspectUpdate) AddVisitIDs(ids ...uuid.UUID) *ProspectUpdate {
	_u.mutation.AddVisitIDs(ids...)
	return _u
}

// AddVisits adds the "visits" edges to the Visit entity.
func (_u *ProspectUpdate) AddVisits(v ...*Visit) *ProspectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVisitIDs(ids...)
}

// AddStepIDs adds the "steps" edge to the TourStep entity by IDs.
func (_u *ProspectUpdate) AddStepIDs(ids ...uuid.UUID) *ProspectUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the TourStep entity.
func (_u *ProspectUpdate) AddSteps(v ...*TourStep) *ProspectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the ProspectMutation object of the builder.
func (_u *ProspectUpdate) Mutation() *ProspectMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *ProspectUpdate) ClearCompany() *ProspectUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// ClearCreator clears the "creator" edge to the User entity.
func (_u *ProspectUpdate) ClearCreator() *ProspectUpdate {
	_u.mutation.ClearCreator()
	return _u
}

// ClearVisits clears all "visits" edges to the Visit entity.
func (_u *ProspectUpdate) ClearVisits() *ProspectUpdate {
	_u.mutation.ClearVisits()
	return _u
}

// RemoveVisitIDs removes the "visits" edge to Visit entities by IDs.
func (_u *ProspectUpdate) RemoveVisitIDs(ids ...uuid.UUID) *ProspectUpdate {
	_u.mutation.RemoveVisitIDs(ids...)
	return _u
}

// RemoveVisits removes "visits" edges to Visit entities.
func (_u *ProspectUpdate) RemoveVisits(v ...*Visit) *ProspectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVisitIDs(ids...)
}

// ClearSteps clears all "steps" edges to the TourStep entity.
func (_u *ProspectUpdate) ClearSteps() *ProspectUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to TourStep entities by IDs.
func (_u *ProspectUpdate) RemoveStepIDs(ids ...uuid.UUID) *ProspectUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to TourStep entities.
func (_u *ProspectUpdate) RemoveSteps(v ...*TourStep) *ProspectUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProspectUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProspectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProspectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProspectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProspectUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prospect.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProspectUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := prospect.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Prospect.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := prospect.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Prospect.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := prospect.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Prospect.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProspectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prospect.Table, prospect.Columns, sqlgraph.NewFieldSpec(prospect.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(prospect.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NameFolded(); ok {
		_spec.SetField(prospect.FieldNameFolded, field.TypeString, value)
	}
	if _u.mutation.NameFoldedCleared() {
		_spec.ClearField(prospect.FieldNameFolded, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(prospect.FieldType, field.TypeEnum, value)
	}
	if _u.mutation.TypeCleared() {
		_spec.ClearField(prospect.FieldType, field.TypeEnum)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(prospect.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(prospect.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(prospect.FieldPostalCode, field.TypeString, value)
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(prospect.FieldPostalCode, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(prospect.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(prospect.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(prospect.FieldCountry, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(prospect.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(prospect.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(prospect.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(prospect.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(prospect.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(prospect.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.ManagerName(); ok {
		_spec.SetField(prospect.FieldManagerName, field.TypeString, value)
	}
	if _u.mutation.ManagerNameCleared() {
		_spec.ClearField(prospect.FieldManagerName, field.TypeString)
	}
	if value, ok := _u.mutation.OpeningHours(); ok {
		_spec.SetField(prospect.FieldOpeningHours, field.TypeJSON, value)
	}
	if _u.mutation.OpeningHoursCleared() {
		_spec.ClearField(prospect.FieldOpeningHours, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(prospect.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NoteAvg(); ok {
		_spec.SetField(prospect.FieldNoteAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNoteAvg(); ok {
		_spec.AddField(prospect.FieldNoteAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VisitsCount(); ok {
		_spec.SetField(prospect.FieldVisitsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVisitsCount(); ok {
		_spec.AddField(prospect.FieldVisitsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(prospect.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(prospect.FieldLatitude, field.TypeFloat64, value)
	}
	if _u.mutation.LatitudeCleared() {
		_spec.ClearField(prospect.FieldLatitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(prospect.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(prospect.FieldLongitude, field.TypeFloat64, value)
	}
	if _u.mutation.LongitudeCleared() {
		_spec.ClearField(prospect.FieldLongitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GooglePlaceID(); ok {
		_spec.SetField(prospect.FieldGooglePlaceID, field.TypeString, value)
	}
	if _u.mutation.GooglePlaceIDCleared() {
		_spec.ClearField(prospect.FieldGooglePlaceID, field.TypeString)
	}
	if value, ok := _u.mutation.AiData(); ok {
		_spec.SetField(prospect.FieldAiData, field.TypeJSON, value)
	}
	if _u.mutation.AiDataCleared() {
		_spec.ClearField(prospect.FieldAiData, field.TypeJSON)
	}
	if value, ok := _u.mutation.AiEnrichedAt(); ok {
		_spec.SetField(prospect.FieldAiEnrichedAt, field.TypeTime, value)
	}
	if _u.mutation.AiEnrichedAtCleared() {
		_spec.ClearField(prospect.FieldAiEnrichedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AiScore(); ok {
		_spec.SetField(prospect.FieldAiScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAiScore(); ok {
		_spec.AddField(prospect.FieldAiScore, field.TypeFloat64, value)
	}
	if _u.mutation.AiScoreCleared() {
		_spec.ClearField(prospect.FieldAiScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prospect.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CreatorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CreatorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VisitsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVisitsIDs(); len(nodes) > 0 && !_u.mutation.VisitsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VisitsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prospect.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProspectUpdateOne is the builder for updating a single Prospect entity.
type ProspectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProspectMutation
}

// SetName sets the "name" field.
func (_u *ProspectUpdateOne) SetName(v string) *ProspectUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableName(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNameFolded sets the "name_folded" field.
func (_u *ProspectUpdateOne) SetNameFolded(v string) *ProspectUpdateOne {
	_u.mutation.SetNameFolded(v)
	return _u
}

// SetNillableNameFolded sets the "name_folded" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableNameFolded(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetNameFolded(*v)
	}
	return _u
}

// ClearNameFolded clears the value of the "name_folded" field.
func (_u *ProspectUpdateOne) ClearNameFolded() *ProspectUpdateOne {
	_u.mutation.ClearNameFolded()
	return _u
}

// SetType sets the "type" field.
func (_u *ProspectUpdateOne) SetType(v prospect.Type) *ProspectUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableType(v *prospect.Type) *ProspectUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// ClearType clears the value of the "type" field.
func (_u *ProspectUpdateOne) ClearType() *ProspectUpdateOne {
	_u.mutation.ClearType()
	return _u
}

// SetAddress sets the "address" field.
func (_u *ProspectUpdateOne) SetAddress(v string) *ProspectUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableAddress(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *ProspectUpdateOne) ClearAddress() *ProspectUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *ProspectUpdateOne) SetPostalCode(v string) *ProspectUpdateOne {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillablePostalCode(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *ProspectUpdateOne) ClearPostalCode() *ProspectUpdateOne {
	_u.mutation.ClearPostalCode()
	return _u
}

// SetCity sets the "city" field.
func (_u *ProspectUpdateOne) SetCity(v string) *ProspectUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableCity(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *ProspectUpdateOne) ClearCity() *ProspectUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetCountry sets the "country" field.
func (_u *ProspectUpdateOne) SetCountry(v string) *ProspectUpdateOne {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableCountry(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ProspectUpdateOne) SetPhone(v string) *ProspectUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillablePhone(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ProspectUpdateOne) ClearPhone() *ProspectUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProspectUpdateOne) SetEmail(v string) *ProspectUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableEmail(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ProspectUpdateOne) ClearEmail() *ProspectUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetWebsite sets the "website" field.
func (_u *ProspectUpdateOne) SetWebsite(v string) *ProspectUpdateOne {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableWebsite(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *ProspectUpdateOne) ClearWebsite() *ProspectUpdateOne {
	_u.mutation.ClearWebsite()
	return _u
}

// SetManagerName sets the "manager_name" field.
func (_u *ProspectUpdateOne) SetManagerName(v string) *ProspectUpdateOne {
	_u.mutation.SetManagerName(v)
	return _u
}

// SetNillableManagerName sets the "manager_name" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableManagerName(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetManagerName(*v)
	}
	return _u
}

// ClearManagerName clears the value of the "manager_name" field.
func (_u *ProspectUpdateOne) ClearManagerName() *ProspectUpdateOne {
	_u.mutation.ClearManagerName()
	return _u
}

// SetOpeningHours sets the "opening_hours" field.
func (_u *ProspectUpdateOne) SetOpeningHours(v map[string]interface{}) *ProspectUpdateOne {
	_u.mutation.SetOpeningHours(v)
	return _u
}

// ClearOpeningHours clears the value of the "opening_hours" field.
func (_u *ProspectUpdateOne) ClearOpeningHours() *ProspectUpdateOne {
	_u.mutation.ClearOpeningHours()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProspectUpdateOne) SetStatus(v prospect.Status) *ProspectUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableStatus(v *prospect.Status) *ProspectUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNoteAvg sets the "note_avg" field.
func (_u *ProspectUpdateOne) SetNoteAvg(v float64) *ProspectUpdateOne {
	_u.mutation.ResetNoteAvg()
	_u.mutation.SetNoteAvg(v)
	return _u
}

// SetNillableNoteAvg sets the "note_avg" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableNoteAvg(v *float64) *ProspectUpdateOne {
	if v != nil {
		_u.SetNoteAvg(*v)
	}
	return _u
}

// AddNoteAvg adds value to the "note_avg" field.
func (_u *ProspectUpdateOne) AddNoteAvg(v float64) *ProspectUpdateOne {
	_u.mutation.AddNoteAvg(v)
	return _u
}

// SetVisitsCount sets the "visits_count" field.
func (_u *ProspectUpdateOne) SetVisitsCount(v int) *ProspectUpdateOne {
	_u.mutation.ResetVisitsCount()
	_u.mutation.SetVisitsCount(v)
	return _u
}

// SetNillableVisitsCount sets the "visits_count" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableVisitsCount(v *int) *ProspectUpdateOne {
	if v != nil {
		_u.SetVisitsCount(*v)
	}
	return _u
}

// AddVisitsCount adds value to the "visits_count" field.
func (_u *ProspectUpdateOne) AddVisitsCount(v int) *ProspectUpdateOne {
	_u.mutation.AddVisitsCount(v)
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *ProspectUpdateOne) SetLatitude(v float64) *ProspectUpdateOne {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableLatitude(v *float64) *ProspectUpdateOne {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *ProspectUpdateOne) AddLatitude(v float64) *ProspectUpdateOne {
	_u.mutation.AddLatitude(v)
	return _u
}

// ClearLatitude clears the value of the "latitude" field.
func (_u *ProspectUpdateOne) ClearLatitude() *ProspectUpdateOne {
	_u.mutation.ClearLatitude()
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *ProspectUpdateOne) SetLongitude(v float64) *ProspectUpdateOne {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableLongitude(v *float64) *ProspectUpdateOne {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *ProspectUpdateOne) AddLongitude(v float64) *ProspectUpdateOne {
	_u.mutation.AddLongitude(v)
	return _u
}

// ClearLongitude clears the value of the "longitude" field.
func (_u *ProspectUpdateOne) ClearLongitude() *ProspectUpdateOne {
	_u.mutation.ClearLongitude()
	return _u
}

// SetGooglePlaceID sets the "google_place_id" field.
func (_u *ProspectUpdateOne) SetGooglePlaceID(v string) *ProspectUpdateOne {
	_u.mutation.SetGooglePlaceID(v)
	return _u
}

// SetNillableGooglePlaceID sets the "google_place_id" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableGooglePlaceID(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetGooglePlaceID(*v)
	}
	return _u
}

// ClearGooglePlaceID clears the value of the "google_place_id" field.
func (_u *ProspectUpdateOne) ClearGooglePlaceID() *ProspectUpdateOne {
	_u.mutation.ClearGooglePlaceID()
	return _u
}

// SetAiData sets the "ai_data" field.
func (_u *ProspectUpdateOne) SetAiData(v map[string]interface{}) *ProspectUpdateOne {
	_u.mutation.SetAiData(v)
	return _u
}

// ClearAiData clears the value of the "ai_data" field.
func (_u *ProspectUpdateOne) ClearAiData() *ProspectUpdateOne {
	_u.mutation.ClearAiData()
	return _u
}

// SetAiEnrichedAt sets the "ai_enriched_at" field.
func (_u *ProspectUpdateOne) SetAiEnrichedAt(v time.Time) *ProspectUpdateOne {
	_u.mutation.SetAiEnrichedAt(v)
	return _u
}

// SetNillableAiEnrichedAt sets the "ai_enriched_at" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableAiEnrichedAt(v *time.Time) *ProspectUpdateOne {
	if v != nil {
		_u.SetAiEnrichedAt(*v)
	}
	return _u
}

// ClearAiEnrichedAt clears the value of the "ai_enriched_at" field.
func (_u *ProspectUpdateOne) ClearAiEnrichedAt() *ProspectUpdateOne {
	_u.mutation.ClearAiEnrichedAt()
	return _u
}

// SetAiScore sets the "ai_score" field.
func (_u *ProspectUpdateOne) SetAiScore(v float64) *ProspectUpdateOne {
	_u.mutation.ResetAiScore()
	_u.mutation.SetAiScore(v)
	return _u
}

// SetNillableAiScore sets the "ai_score" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableAiScore(v *float64) *ProspectUpdateOne {
	if v != nil {
		_u.SetAiScore(*v)
	}
	return _u
}

// AddAiScore adds value to the "ai_score" field.
func (_u *ProspectUpdateOne) AddAiScore(v float64) *ProspectUpdateOne {
	_u.mutation.AddAiScore(v)
	return _u
}

// ClearAiScore clears the value of the "ai_score" field.
func (_u *ProspectUpdateOne) ClearAiScore() *ProspectUpdateOne {
	_u.mutation.ClearAiScore()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProspectUpdateOne) SetUpdatedAt(v time.Time) *ProspectUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompanyID sets the "company" edge to the Company entity by ID.
func (_u *ProspectUpdateOne) SetCompanyID(id uuid.UUID) *ProspectUpdateOne {
	_u.mutation.SetCompanyID(id)
	return _u
}

// SetNillableCompanyID sets the "company" edge to the Company entity by ID if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableCompanyID(id *uuid.UUID) *ProspectUpdateOne {
	if id != nil {
		_u = _u.SetCompanyID(*id)
	}
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *ProspectUpdateOne) SetCompany(v *Company) *ProspectUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// SetCreatorID sets the "creator" edge to the User entity by ID.
func (_u *ProspectUpdateOne) SetCreatorID(id uuid.UUID) *ProspectUpdateOne {
	_u.mutation.SetCreatorID(id)
	return _u
}

// SetNillableCreatorID sets the "creator" edge to the User entity by ID if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableCreatorID(id *uuid.UUID) *ProspectUpdateOne {
	if id != nil {
		_u = _u.SetCreatorID(*id)
	}
	return _u
}

// SetCreator sets the "creator" edge to the User entity.
func (_u *ProspectUpdateOne) SetCreator(v *User) *ProspectUpdateOne {
	return _u.SetCreatorID(v.ID)
}

// AddVisitIDs adds the "visits" edge to the Visit entity by IDs.
func (_u *ProspectUpdateOne) AddVisitIDs(ids ...uuid.UUID) *ProspectUpdateOne {
	_u.mutation.AddVisitIDs(ids...)
	return _u
}

// AddVisits adds the "visits" edges to the Visit entity.
func (_u *ProspectUpdateOne) AddVisits(v ...*Visit) *ProspectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVisitIDs(ids...)
}

// AddStepIDs adds the "steps" edge to the TourStep entity by IDs.
func (_u *ProspectUpdateOne) AddStepIDs(ids ...uuid.UUID) *ProspectUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the TourStep entity.
func (_u *ProspectUpdateOne) AddSteps(v ...*TourStep) *ProspectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the ProspectMutation object of the builder.
func (_u *ProspectUpdateOne) Mutation() *ProspectMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *ProspectUpdateOne) ClearCompany() *ProspectUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// ClearCreator clears the "creator" edge to the User entity.
func (_u *ProspectUpdateOne) ClearCreator() *ProspectUpdateOne {
	_u.mutation.ClearCreator()
	return _u
}

// ClearVisits clears all "visits" edges to the Visit entity.
func (_u *ProspectUpdateOne) ClearVisits() *ProspectUpdateOne {
	_u.mutation.ClearVisits()
	return _u
}

// RemoveVisitIDs removes the "visits" edge to Visit entities by IDs.
func (_u *ProspectUpdateOne) RemoveVisitIDs(ids ...uuid.UUID) *ProspectUpdateOne {
	_u.mutation.RemoveVisitIDs(ids...)
	return _u
}

// RemoveVisits removes "visits" edges to Visit entities.
func (_u *ProspectUpdateOne) RemoveVisits(v ...*Visit) *ProspectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVisitIDs(ids...)
}

// ClearSteps clears all "steps" edges to the TourStep entity.
func (_u *ProspectUpdateOne) ClearSteps() *ProspectUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to TourStep entities by IDs.
func (_u *ProspectUpdateOne) RemoveStepIDs(ids ...uuid.UUID) *ProspectUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to TourStep entities.
func (_u *ProspectUpdateOne) RemoveSteps(v ...*TourStep) *ProspectUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Where appends a list predicates to the ProspectUpdate builder.
func (_u *ProspectUpdateOne) Where(ps ...predicate.Prospect) *ProspectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProspectUpdateOne) Select(field string, fields ...string) *ProspectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Prospect entity.
func (_u *ProspectUpdateOne) Save(ctx context.Context) (*Prospect, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProspectUpdateOne) SaveX(ctx context.Context) *Prospect {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProspectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProspectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProspectUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prospect.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProspectUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := prospect.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Prospect.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := prospect.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Prospect.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := prospect.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Prospect.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProspectUpdateOne) sqlSave(ctx context.Context) (_node *Prospect, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prospect.Table, prospect.Columns, sqlgraph.NewFieldSpec(prospect.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Prospect.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prospect.FieldID)
		for _, f := range fields {
			if !prospect.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != prospect.FieldID {
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
		_spec.SetField(prospect.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NameFolded(); ok {
		_spec.SetField(prospect.FieldNameFolded, field.TypeString, value)
	}
	if _u.mutation.NameFoldedCleared() {
		_spec.ClearField(prospect.FieldNameFolded, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(prospect.FieldType, field.TypeEnum, value)
	}
	if _u.mutation.TypeCleared() {
		_spec.ClearField(prospect.FieldType, field.TypeEnum)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(prospect.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(prospect.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(prospect.FieldPostalCode, field.TypeString, value)
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(prospect.FieldPostalCode, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(prospect.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(prospect.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(prospect.FieldCountry, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(prospect.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(prospect.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(prospect.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(prospect.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(prospect.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(prospect.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.ManagerName(); ok {
		_spec.SetField(prospect.FieldManagerName, field.TypeString, value)
	}
	if _u.mutation.ManagerNameCleared() {
		_spec.ClearField(prospect.FieldManagerName, field.TypeString)
	}
	if value, ok := _u.mutation.OpeningHours(); ok {
		_spec.SetField(prospect.FieldOpeningHours, field.TypeJSON, value)
	}
	if _u.mutation.OpeningHoursCleared() {
		_spec.ClearField(prospect.FieldOpeningHours, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(prospect.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NoteAvg(); ok {
		_spec.SetField(prospect.FieldNoteAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNoteAvg(); ok {
		_spec.AddField(prospect.FieldNoteAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VisitsCount(); ok {
		_spec.SetField(prospect.FieldVisitsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVisitsCount(); ok {
		_spec.AddField(prospect.FieldVisitsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(prospect.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(prospect.FieldLatitude, field.TypeFloat64, value)
	}
	if _u.mutation.LatitudeCleared() {
		_spec.ClearField(prospect.FieldLatitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(prospect.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(prospect.FieldLongitude, field.TypeFloat64, value)
	}
	if _u.mutation.LongitudeCleared() {
		_spec.ClearField(prospect.FieldLongitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GooglePlaceID(); ok {
		_spec.SetField(prospect.FieldGooglePlaceID, field.TypeString, value)
	}
	if _u.mutation.GooglePlaceIDCleared() {
		_spec.ClearField(prospect.FieldGooglePlaceID, field.TypeString)
	}
	if value, ok := _u.mutation.AiData(); ok {
		_spec.SetField(prospect.FieldAiData, field.TypeJSON, value)
	}
	if _u.mutation.AiDataCleared() {
		_spec.ClearField(prospect.FieldAiData, field.TypeJSON)
	}
	if value, ok := _u.mutation.AiEnrichedAt(); ok {
		_spec.SetField(prospect.FieldAiEnrichedAt, field.TypeTime, value)
	}
	if _u.mutation.AiEnrichedAtCleared() {
		_spec.ClearField(prospect.FieldAiEnrichedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AiScore(); ok {
		_spec.SetField(prospect.FieldAiScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAiScore(); ok {
		_spec.AddField(prospect.FieldAiScore, field.TypeFloat64, value)
	}
	if _u.mutation.AiScoreCleared() {
		_spec.ClearField(prospect.FieldAiScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prospect.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CreatorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CreatorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VisitsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVisitsIDs(); len(nodes) > 0 && !_u.mutation.VisitsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VisitsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Prospect{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prospect.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
