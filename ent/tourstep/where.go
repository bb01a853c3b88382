// Code generated by ent, DO NOT EDIT.

package tourstep

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/horeca-prospection/backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TourStep {
	return predicate.TourStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TourStep {
	return predicate.TourStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TourStep {
	return predicate.TourStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TourStep {
	return predicate.TourStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TourStep {
	return predicate.TourStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TourStep {
	return predicate.TourStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TourStep {
	return predicate.TourStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TourStep {
	return predicate.TourStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TourStep {
	return predicate.TourStep(sql.FieldLTE(FieldID, id))
}

// StepOrder applies equality check predicate on the "step_order" field. It's identical to StepOrderEQ.
func StepOrder(v int) predicate.TourStep {
	return predicate.TourStep(sql.FieldEQ(FieldStepOrder, v))
}

// Eta applies equality check predicate on the "eta" field. It's identical to EtaEQ.
func Eta(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldEQ(FieldEta, v))
}

// DistanceFromPreviousKm applies equality check predicate on the "distance_from_previous_km" field. It's identical to DistanceFromPreviousKmEQ.
func DistanceFromPreviousKm(v float64) predicate.TourStep {
	return predicate.TourStep(sql.FieldEQ(FieldDistanceFromPreviousKm, v))
}

// DurationFromPreviousMinutes applies equality check predicate on the "duration_from_previous_minutes" field. It's identical to DurationFromPreviousMinutesEQ.
func DurationFromPreviousMinutes(v int) predicate.TourStep {
	return predicate.TourStep(sql.FieldEQ(FieldDurationFromPreviousMinutes, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldEQ(FieldUpdatedAt, v))
}

// StepOrderEQ applies the EQ predicate on the "step_order" field.
func StepOrderEQ(v int) predicate.TourStep {
	return predicate.TourStep(sql.FieldEQ(FieldStepOrder, v))
}

// StepOrderNEQ applies the NEQ predicate on the "step_order" field.
func StepOrderNEQ(v int) predicate.TourStep {
	return predicate.TourStep(sql.FieldNEQ(FieldStepOrder, v))
}

// StepOrderIn applies the In predicate on the "step_order" field.
func StepOrderIn(vs ...int) predicate.TourStep {
	return predicate.TourStep(sql.FieldIn(FieldStepOrder, vs...))
}

// StepOrderNotIn applies the NotIn predicate on the "step_order" field.
func StepOrderNotIn(vs ...int) predicate.TourStep {
	return predicate.TourStep(sql.FieldNotIn(FieldStepOrder, vs...))
}

// StepOrderGT applies the GT predicate on the "step_order" field.
func StepOrderGT(v int) predicate.TourStep {
	return predicate.TourStep(sql.FieldGT(FieldStepOrder, v))
}

// StepOrderGTE applies the GTE predicate on the "step_order" field.
func StepOrderGTE(v int) predicate.TourStep {
	return predicate.TourStep(sql.FieldGTE(FieldStepOrder, v))
}

// StepOrderLT applies the LT predicate on the "step_order" field.
func StepOrderLT(v int) predicate.TourStep {
	return predicate.TourStep(sql.FieldLT(FieldStepOrder, v))
}

// StepOrderLTE applies the LTE predicate on the "step_order" field.
func StepOrderLTE(v int) predicate.TourStep {
	return predicate.TourStep(sql.FieldLTE(FieldStepOrder, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TourStep {
	return predicate.TourStep(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TourStep {
	return predicate.TourStep(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TourStep {
	return predicate.TourStep(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TourStep {
	return predicate.TourStep(sql.FieldNotIn(FieldStatus, vs...))
}

// EtaEQ applies the EQ predicate on the "eta" field.
func EtaEQ(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldEQ(FieldEta, v))
}

// EtaNEQ applies the NEQ predicate on the "eta" field.
func EtaNEQ(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldNEQ(FieldEta, v))
}

// EtaIn applies the In predicate on the "eta" field.
func EtaIn(vs ...time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldIn(FieldEta, vs...))
}

// EtaNotIn applies the NotIn predicate on the "eta" field.
func EtaNotIn(vs ...time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldNotIn(FieldEta, vs...))
}

// EtaGT applies the GT predicate on the "eta" field.
func EtaGT(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldGT(FieldEta, v))
}

// EtaGTE applies the GTE predicate on the "eta" field.
func EtaGTE(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldGTE(FieldEta, v))
}

// EtaLT applies the LT predicate on the "eta" field.
func EtaLT(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldLT(FieldEta, v))
}

// EtaLTE applies the LTE predicate on the "eta" field.
func EtaLTE(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldLTE(FieldEta, v))
}

// EtaIsNil applies the IsNil predicate on the "eta" field.
func EtaIsNil() predicate.TourStep {
	return predicate.TourStep(sql.FieldIsNull(FieldEta))
}

// EtaNotNil applies the NotNil predicate on the "eta" field.
func EtaNotNil() predicate.TourStep {
	return predicate.TourStep(sql.FieldNotNull(FieldEta))
}

// DistanceFromPreviousKmEQ applies the EQ predicate on the "distance_from_previous_km" field.
func DistanceFromPreviousKmEQ(v float64) predicate.TourStep {
	return predicate.TourStep(sql.FieldEQ(FieldDistanceFromPreviousKm, v))
}

// DistanceFromPreviousKmNEQ applies the NEQ predicate on the "distance_from_previous_km" field.
func DistanceFromPreviousKmNEQ(v float64) predicate.TourStep {
	return predicate.TourStep(sql.FieldNEQ(FieldDistanceFromPreviousKm, v))
}

// DistanceFromPreviousKmIn applies the In predicate on the "distance_from_previous_km" field.
func DistanceFromPreviousKmIn(vs ...float64) predicate.TourStep {
	return predicate.TourStep(sql.FieldIn(FieldDistanceFromPreviousKm, vs...))
}

// DistanceFromPreviousKmNotIn applies the NotIn predicate on the "distance_from_previous_km" field.
func DistanceFromPreviousKmNotIn(vs ...float64) predicate.TourStep {
	return predicate.TourStep(sql.FieldNotIn(FieldDistanceFromPreviousKm, vs...))
}

// DistanceFromPreviousKmGT applies the GT predicate on the "distance_from_previous_km" field.
func DistanceFromPreviousKmGT(v float64) predicate.TourStep {
	return predicate.TourStep(sql.FieldGT(FieldDistanceFromPreviousKm, v))
}

// DistanceFromPreviousKmGTE applies the GTE predicate on the "distance_from_previous_km" field.
func DistanceFromPreviousKmGTE(v float64) predicate.TourStep {
	return predicate.TourStep(sql.FieldGTE(FieldDistanceFromPreviousKm, v))
}

// DistanceFromPreviousKmLT applies the LT predicate on the "distance_from_previous_km" field.
func DistanceFromPreviousKmLT(v float64) predicate.TourStep {
	return predicate.TourStep(sql.FieldLT(FieldDistanceFromPreviousKm, v))
}

// DistanceFromPreviousKmLTE applies the LTE predicate on the "distance_from_previous_km" field.
func DistanceFromPreviousKmLTE(v float64) predicate.TourStep {
	return predicate.TourStep(sql.FieldLTE(FieldDistanceFromPreviousKm, v))
}

// DistanceFromPreviousKmIsNil applies the IsNil predicate on the "distance_from_previous_km" field.
func DistanceFromPreviousKmIsNil() predicate.TourStep {
	return predicate.TourStep(sql.FieldIsNull(FieldDistanceFromPreviousKm))
}

// DistanceFromPreviousKmNotNil applies the NotNil predicate on the "distance_from_previous_km" field.
func DistanceFromPreviousKmNotNil() predicate.TourStep {
	return predicate.TourStep(sql.FieldNotNull(FieldDistanceFromPreviousKm))
}

// DurationFromPreviousMinutesEQ applies the EQ predicate on the "duration_from_previous_minutes" field.
func DurationFromPreviousMinutesEQ(v int) predicate.TourStep {
	return predicate.TourStep(sql.FieldEQ(FieldDurationFromPreviousMinutes, v))
}

// DurationFromPreviousMinutesNEQ applies the NEQ predicate on the "duration_from_previous_minutes" field.
func DurationFromPreviousMinutesNEQ(v int) predicate.TourStep {
	return predicate.TourStep(sql.FieldNEQ(FieldDurationFromPreviousMinutes, v))
}

// DurationFromPreviousMinutesIn applies the In predicate on the "duration_from_previous_minutes" field.
func DurationFromPreviousMinutesIn(vs ...int) predicate.TourStep {
	return predicate.TourStep(sql.FieldIn(FieldDurationFromPreviousMinutes, vs...))
}

// DurationFromPreviousMinutesNotIn applies the NotIn predicate on the "duration_from_previous_minutes" field.
func DurationFromPreviousMinutesNotIn(vs ...int) predicate.TourStep {
	return predicate.TourStep(sql.FieldNotIn(FieldDurationFromPreviousMinutes, vs...))
}

// DurationFromPreviousMinutesGT applies the GT predicate on the "duration_from_previous_minutes" field.
func DurationFromPreviousMinutesGT(v int) predicate.TourStep {
	return predicate.TourStep(sql.FieldGT(FieldDurationFromPreviousMinutes, v))
}

// DurationFromPreviousMinutesGTE applies the GTE predicate on the "duration_from_previous_minutes" field.
func DurationFromPreviousMinutesGTE(v int) predicate.TourStep {
	return predicate.TourStep(sql.FieldGTE(FieldDurationFromPreviousMinutes, v))
}

// DurationFromPreviousMinutesLT applies the LT predicate on the "duration_from_previous_minutes" field.
func DurationFromPreviousMinutesLT(v int) predicate.TourStep {
	return predicate.TourStep(sql.FieldLT(FieldDurationFromPreviousMinutes, v))
}

// DurationFromPreviousMinutesLTE applies the LTE predicate on the "duration_from_previous_minutes" field.
func DurationFromPreviousMinutesLTE(v int) predicate.TourStep {
	return predicate.TourStep(sql.FieldLTE(FieldDurationFromPreviousMinutes, v))
}

// DurationFromPreviousMinutesIsNil applies the IsNil predicate on the "duration_from_previous_minutes" field.
func DurationFromPreviousMinutesIsNil() predicate.TourStep {
	return predicate.TourStep(sql.FieldIsNull(FieldDurationFromPreviousMinutes))
}

// DurationFromPreviousMinutesNotNil applies the NotNil predicate on the "duration_from_previous_minutes" field.
func DurationFromPreviousMinutesNotNil() predicate.TourStep {
	return predicate.TourStep(sql.FieldNotNull(FieldDurationFromPreviousMinutes))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.TourStep {
	return predicate.TourStep(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.TourStep {
	return predicate.TourStep(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TourStep {
	return predicate.TourStep(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTour applies the HasEdge predicate on the "tour" edge.
func HasTour() predicate.TourStep {
	return predicate.TourStep(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TourTable, TourColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTourWith applies the HasEdge predicate on the "tour" edge with a given conditions (other predicates).
func HasTourWith(preds ...predicate.Tour) predicate.TourStep {
	return predicate.TourStep(func(s *sql.Selector) {
		step := newTourStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProspect applies the HasEdge predicate on the "prospect" edge.
func HasProspect() predicate.TourStep {
	return predicate.TourStep(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProspectTable, ProspectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProspectWith applies the HasEdge predicate on the "prospect" edge with a given conditions (other predicates).
func HasProspectWith(preds ...predicate.Prospect) predicate.TourStep {
	return predicate.TourStep(func(s *sql.Selector) {
		step := newProspectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TourStep) predicate.TourStep {
	return predicate.TourStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TourStep) predicate.TourStep {
	return predicate.TourStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TourStep) predicate.TourStep {
	return predicate.TourStep(sql.NotPredicates(p))
}
