// Code generated by ent, DO NOT EDIT.

package tour

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/horeca-prospection/backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Tour {
	return predicate.Tour(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Tour {
	return predicate.Tour(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Tour {
	return predicate.Tour(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Tour {
	return predicate.Tour(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Tour {
	return predicate.Tour(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Tour {
	return predicate.Tour(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Tour {
	return predicate.Tour(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Tour {
	return predicate.Tour(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Tour {
	return predicate.Tour(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Tour {
	return predicate.Tour(sql.FieldEQ(FieldName, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldEQ(FieldDate, v))
}

// TotalDistanceKm applies equality check predicate on the "total_distance_km" field. It's identical to TotalDistanceKmEQ.
func TotalDistanceKm(v float64) predicate.Tour {
	return predicate.Tour(sql.FieldEQ(FieldTotalDistanceKm, v))
}

// TotalDurationMinutes applies equality check predicate on the "total_duration_minutes" field. It's identical to TotalDurationMinutesEQ.
func TotalDurationMinutes(v int) predicate.Tour {
	return predicate.Tour(sql.FieldEQ(FieldTotalDurationMinutes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Tour {
	return predicate.Tour(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Tour {
	return predicate.Tour(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Tour {
	return predicate.Tour(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Tour {
	return predicate.Tour(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Tour {
	return predicate.Tour(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Tour {
	return predicate.Tour(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Tour {
	return predicate.Tour(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Tour {
	return predicate.Tour(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Tour {
	return predicate.Tour(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Tour {
	return predicate.Tour(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Tour {
	return predicate.Tour(sql.FieldHasSuffix(FieldName, v))
}

// NameIsNil applies the IsNil predicate on the "name" field.
func NameIsNil() predicate.Tour {
	return predicate.Tour(sql.FieldIsNull(FieldName))
}

// NameNotNil applies the NotNil predicate on the "name" field.
func NameNotNil() predicate.Tour {
	return predicate.Tour(sql.FieldNotNull(FieldName))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Tour {
	return predicate.Tour(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Tour {
	return predicate.Tour(sql.FieldContainsFold(FieldName, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldLTE(FieldDate, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Tour {
	return predicate.Tour(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Tour {
	return predicate.Tour(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Tour {
	return predicate.Tour(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Tour {
	return predicate.Tour(sql.FieldNotIn(FieldStatus, vs...))
}

// TotalDistanceKmEQ applies the EQ predicate on the "total_distance_km" field.
func TotalDistanceKmEQ(v float64) predicate.Tour {
	return predicate.Tour(sql.FieldEQ(FieldTotalDistanceKm, v))
}

// TotalDistanceKmNEQ applies the NEQ predicate on the "total_distance_km" field.
func TotalDistanceKmNEQ(v float64) predicate.Tour {
	return predicate.Tour(sql.FieldNEQ(FieldTotalDistanceKm, v))
}

// TotalDistanceKmIn applies the In predicate on the "total_distance_km" field.
func TotalDistanceKmIn(vs ...float64) predicate.Tour {
	return predicate.Tour(sql.FieldIn(FieldTotalDistanceKm, vs...))
}

// TotalDistanceKmNotIn applies the NotIn predicate on the "total_distance_km" field.
func TotalDistanceKmNotIn(vs ...float64) predicate.Tour {
	return predicate.Tour(sql.FieldNotIn(FieldTotalDistanceKm, vs...))
}

// TotalDistanceKmGT applies the GT predicate on the "total_distance_km" field.
func TotalDistanceKmGT(v float64) predicate.Tour {
	return predicate.Tour(sql.FieldGT(FieldTotalDistanceKm, v))
}

// TotalDistanceKmGTE applies the GTE predicate on the "total_distance_km" field.
func TotalDistanceKmGTE(v float64) predicate.Tour {
	return predicate.Tour(sql.FieldGTE(FieldTotalDistanceKm, v))
}

// TotalDistanceKmLT applies the LT predicate on the "total_distance_km" field.
func TotalDistanceKmLT(v float64) predicate.Tour {
	return predicate.Tour(sql.FieldLT(FieldTotalDistanceKm, v))
}

// TotalDistanceKmLTE applies the LTE predicate on the "total_distance_km" field.
func TotalDistanceKmLTE(v float64) predicate.Tour {
	return predicate.Tour(sql.FieldLTE(FieldTotalDistanceKm, v))
}

// TotalDistanceKmIsNil applies the IsNil predicate on the "total_distance_km" field.
func TotalDistanceKmIsNil() predicate.Tour {
	return predicate.Tour(sql.FieldIsNull(FieldTotalDistanceKm))
}

// TotalDistanceKmNotNil applies the NotNil predicate on the "total_distance_km" field.
func TotalDistanceKmNotNil() predicate.Tour {
	return predicate.Tour(sql.FieldNotNull(FieldTotalDistanceKm))
}

// TotalDurationMinutesEQ applies the EQ predicate on the "total_duration_minutes" field.
func TotalDurationMinutesEQ(v int) predicate.Tour {
	return predicate.Tour(sql.FieldEQ(FieldTotalDurationMinutes, v))
}

// TotalDurationMinutesNEQ applies the NEQ predicate on the "total_duration_minutes" field.
func TotalDurationMinutesNEQ(v int) predicate.Tour {
	return predicate.Tour(sql.FieldNEQ(FieldTotalDurationMinutes, v))
}

// TotalDurationMinutesIn applies the In predicate on the "total_duration_minutes" field.
func TotalDurationMinutesIn(vs ...int) predicate.Tour {
	return predicate.Tour(sql.FieldIn(FieldTotalDurationMinutes, vs...))
}

// TotalDurationMinutesNotIn applies the NotIn predicate on the "total_duration_minutes" field.
func TotalDurationMinutesNotIn(vs ...int) predicate.Tour {
	return predicate.Tour(sql.FieldNotIn(FieldTotalDurationMinutes, vs...))
}

// TotalDurationMinutesGT applies the GT predicate on the "total_duration_minutes" field.
func TotalDurationMinutesGT(v int) predicate.Tour {
	return predicate.Tour(sql.FieldGT(FieldTotalDurationMinutes, v))
}

// TotalDurationMinutesGTE applies the GTE predicate on the "total_duration_minutes" field.
func TotalDurationMinutesGTE(v int) predicate.Tour {
	return predicate.Tour(sql.FieldGTE(FieldTotalDurationMinutes, v))
}

// TotalDurationMinutesLT applies the LT predicate on the "total_duration_minutes" field.
func TotalDurationMinutesLT(v int) predicate.Tour {
	return predicate.Tour(sql.FieldLT(FieldTotalDurationMinutes, v))
}

// TotalDurationMinutesLTE applies the LTE predicate on the "total_duration_minutes" field.
func TotalDurationMinutesLTE(v int) predicate.Tour {
	return predicate.Tour(sql.FieldLTE(FieldTotalDurationMinutes, v))
}

// TotalDurationMinutesIsNil applies the IsNil predicate on the "total_duration_minutes" field.
func TotalDurationMinutesIsNil() predicate.Tour {
	return predicate.Tour(sql.FieldIsNull(FieldTotalDurationMinutes))
}

// TotalDurationMinutesNotNil applies the NotNil predicate on the "total_duration_minutes" field.
func TotalDurationMinutesNotNil() predicate.Tour {
	return predicate.Tour(sql.FieldNotNull(FieldTotalDurationMinutes))
}

// RouteDataIsNil applies the IsNil predicate on the "route_data" field.
func RouteDataIsNil() predicate.Tour {
	return predicate.Tour(sql.FieldIsNull(FieldRouteData))
}

// RouteDataNotNil applies the NotNil predicate on the "route_data" field.
func RouteDataNotNil() predicate.Tour {
	return predicate.Tour(sql.FieldNotNull(FieldRouteData))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Tour {
	return predicate.Tour(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCompany applies the HasEdge predicate on the "company" edge.
func HasCompany() predicate.Tour {
	return predicate.Tour(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompanyWith applies the HasEdge predicate on the "company" edge with a given conditions (other predicates).
func HasCompanyWith(preds ...predicate.Company) predicate.Tour {
	return predicate.Tour(func(s *sql.Selector) {
		step := newCompanyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Tour {
	return predicate.Tour(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Tour {
	return predicate.Tour(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.Tour {
	return predicate.Tour(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.TourStep) predicate.Tour {
	return predicate.Tour(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVisits applies the HasEdge predicate on the "visits" edge.
func HasVisits() predicate.Tour {
	return predicate.Tour(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VisitsTable, VisitsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVisitsWith applies the HasEdge predicate on the "visits" edge with a given conditions (other predicates).
func HasVisitsWith(preds ...predicate.Visit) predicate.Tour {
	return predicate.Tour(func(s *sql.Selector) {
		step := newVisitsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Tour) predicate.Tour {
	return predicate.Tour(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Tour) predicate.Tour {
	return predicate.Tour(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Tour) predicate.Tour {
	return predicate.Tour(sql.NotPredicates(p))
}
