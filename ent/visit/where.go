// Code generated by ent, DO NOT EDIT.

package visit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/horeca-prospection/backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldID, id))
}

// VisitedAt applies equality check predicate on the "visited_at" field. It's identical to VisitedAtEQ.
func VisitedAt(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldVisitedAt, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v int) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldDurationMinutes, v))
}

// Objective applies equality check predicate on the "objective" field. It's identical to ObjectiveEQ.
func Objective(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldObjective, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldSummary, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldScore, v))
}

// SignedBy applies equality check predicate on the "signed_by" field. It's identical to SignedByEQ.
func SignedBy(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldSignedBy, v))
}

// SignatureData applies equality check predicate on the "signature_data" field. It's identical to SignatureDataEQ.
func SignatureData(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldSignatureData, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldUpdatedAt, v))
}

// VisitedAtEQ applies the EQ predicate on the "visited_at" field.
func VisitedAtEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldVisitedAt, v))
}

// VisitedAtNEQ applies the NEQ predicate on the "visited_at" field.
func VisitedAtNEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldVisitedAt, v))
}

// VisitedAtIn applies the In predicate on the "visited_at" field.
func VisitedAtIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldVisitedAt, vs...))
}

// VisitedAtNotIn applies the NotIn predicate on the "visited_at" field.
func VisitedAtNotIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldVisitedAt, vs...))
}

// VisitedAtGT applies the GT predicate on the "visited_at" field.
func VisitedAtGT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldVisitedAt, v))
}

// VisitedAtGTE applies the GTE predicate on the "visited_at" field.
func VisitedAtGTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldVisitedAt, v))
}

// VisitedAtLT applies the LT predicate on the "visited_at" field.
func VisitedAtLT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldVisitedAt, v))
}

// VisitedAtLTE applies the LTE predicate on the "visited_at" field.
func VisitedAtLTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldVisitedAt, v))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v int) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v int) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...int) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...int) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v int) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v int) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v int) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v int) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldDurationMinutes, v))
}

// DurationMinutesIsNil applies the IsNil predicate on the "duration_minutes" field.
func DurationMinutesIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldDurationMinutes))
}

// DurationMinutesNotNil applies the NotNil predicate on the "duration_minutes" field.
func DurationMinutesNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldDurationMinutes))
}

// ObjectiveEQ applies the EQ predicate on the "objective" field.
func ObjectiveEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldObjective, v))
}

// ObjectiveNEQ applies the NEQ predicate on the "objective" field.
func ObjectiveNEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldObjective, v))
}

// ObjectiveIn applies the In predicate on the "objective" field.
func ObjectiveIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldObjective, vs...))
}

// ObjectiveNotIn applies the NotIn predicate on the "objective" field.
func ObjectiveNotIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldObjective, vs...))
}

// ObjectiveGT applies the GT predicate on the "objective" field.
func ObjectiveGT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldObjective, v))
}

// ObjectiveGTE applies the GTE predicate on the "objective" field.
func ObjectiveGTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldObjective, v))
}

// ObjectiveLT applies the LT predicate on the "objective" field.
func ObjectiveLT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldObjective, v))
}

// ObjectiveLTE applies the LTE predicate on the "objective" field.
func ObjectiveLTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldObjective, v))
}

// ObjectiveContains applies the Contains predicate on the "objective" field.
func ObjectiveContains(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContains(FieldObjective, v))
}

// ObjectiveHasPrefix applies the HasPrefix predicate on the "objective" field.
func ObjectiveHasPrefix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasPrefix(FieldObjective, v))
}

// ObjectiveHasSuffix applies the HasSuffix predicate on the "objective" field.
func ObjectiveHasSuffix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasSuffix(FieldObjective, v))
}

// ObjectiveIsNil applies the IsNil predicate on the "objective" field.
func ObjectiveIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldObjective))
}

// ObjectiveNotNil applies the NotNil predicate on the "objective" field.
func ObjectiveNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldObjective))
}

// ObjectiveEqualFold applies the EqualFold predicate on the "objective" field.
func ObjectiveEqualFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEqualFold(FieldObjective, v))
}

// ObjectiveContainsFold applies the ContainsFold predicate on the "objective" field.
func ObjectiveContainsFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContainsFold(FieldObjective, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContainsFold(FieldSummary, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldScore, v))
}

// ScoreIsNil applies the IsNil predicate on the "score" field.
func ScoreIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldScore))
}

// ScoreNotNil applies the NotNil predicate on the "score" field.
func ScoreNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldScore))
}

// SignedByEQ applies the EQ predicate on the "signed_by" field.
func SignedByEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldSignedBy, v))
}

// SignedByNEQ applies the NEQ predicate on the "signed_by" field.
func SignedByNEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldSignedBy, v))
}

// SignedByIn applies the In predicate on the "signed_by" field.
func SignedByIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldSignedBy, vs...))
}

// SignedByNotIn applies the NotIn predicate on the "signed_by" field.
func SignedByNotIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldSignedBy, vs...))
}

// SignedByGT applies the GT predicate on the "signed_by" field.
func SignedByGT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldSignedBy, v))
}

// SignedByGTE applies the GTE predicate on the "signed_by" field.
func SignedByGTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldSignedBy, v))
}

// SignedByLT applies the LT predicate on the "signed_by" field.
func SignedByLT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldSignedBy, v))
}

// SignedByLTE applies the LTE predicate on the "signed_by" field.
func SignedByLTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldSignedBy, v))
}

// SignedByContains applies the Contains predicate on the "signed_by" field.
func SignedByContains(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContains(FieldSignedBy, v))
}

// SignedByHasPrefix applies the HasPrefix predicate on the "signed_by" field.
func SignedByHasPrefix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasPrefix(FieldSignedBy, v))
}

// SignedByHasSuffix applies the HasSuffix predicate on the "signed_by" field.
func SignedByHasSuffix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasSuffix(FieldSignedBy, v))
}

// SignedByIsNil applies the IsNil predicate on the "signed_by" field.
func SignedByIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldSignedBy))
}

// SignedByNotNil applies the NotNil predicate on the "signed_by" field.
func SignedByNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldSignedBy))
}

// SignedByEqualFold applies the EqualFold predicate on the "signed_by" field.
func SignedByEqualFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEqualFold(FieldSignedBy, v))
}

// SignedByContainsFold applies the ContainsFold predicate on the "signed_by" field.
func SignedByContainsFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContainsFold(FieldSignedBy, v))
}

// SignatureDataEQ applies the EQ predicate on the "signature_data" field.
func SignatureDataEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldSignatureData, v))
}

// SignatureDataNEQ applies the NEQ predicate on the "signature_data" field.
func SignatureDataNEQ(v string) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldSignatureData, v))
}

// SignatureDataIn applies the In predicate on the "signature_data" field.
func SignatureDataIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldSignatureData, vs...))
}

// SignatureDataNotIn applies the NotIn predicate on the "signature_data" field.
func SignatureDataNotIn(vs ...string) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldSignatureData, vs...))
}

// SignatureDataGT applies the GT predicate on the "signature_data" field.
func SignatureDataGT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldSignatureData, v))
}

// SignatureDataGTE applies the GTE predicate on the "signature_data" field.
func SignatureDataGTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldSignatureData, v))
}

// SignatureDataLT applies the LT predicate on the "signature_data" field.
func SignatureDataLT(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldSignatureData, v))
}

// SignatureDataLTE applies the LTE predicate on the "signature_data" field.
func SignatureDataLTE(v string) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldSignatureData, v))
}

// SignatureDataContains applies the Contains predicate on the "signature_data" field.
func SignatureDataContains(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContains(FieldSignatureData, v))
}

// SignatureDataHasPrefix applies the HasPrefix predicate on the "signature_data" field.
func SignatureDataHasPrefix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasPrefix(FieldSignatureData, v))
}

// SignatureDataHasSuffix applies the HasSuffix predicate on the "signature_data" field.
func SignatureDataHasSuffix(v string) predicate.Visit {
	return predicate.Visit(sql.FieldHasSuffix(FieldSignatureData, v))
}

// SignatureDataIsNil applies the IsNil predicate on the "signature_data" field.
func SignatureDataIsNil() predicate.Visit {
	return predicate.Visit(sql.FieldIsNull(FieldSignatureData))
}

// SignatureDataNotNil applies the NotNil predicate on the "signature_data" field.
func SignatureDataNotNil() predicate.Visit {
	return predicate.Visit(sql.FieldNotNull(FieldSignatureData))
}

// SignatureDataEqualFold applies the EqualFold predicate on the "signature_data" field.
func SignatureDataEqualFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldEqualFold(FieldSignatureData, v))
}

// SignatureDataContainsFold applies the ContainsFold predicate on the "signature_data" field.
func SignatureDataContainsFold(v string) predicate.Visit {
	return predicate.Visit(sql.FieldContainsFold(FieldSignatureData, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Visit {
	return predicate.Visit(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProspect applies the HasEdge predicate on the "prospect" edge.
func HasProspect() predicate.Visit {
	return predicate.Visit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProspectTable, ProspectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProspectWith applies the HasEdge predicate on the "prospect" edge with a given conditions (other predicates).
func HasProspectWith(preds ...predicate.Prospect) predicate.Visit {
	return predicate.Visit(func(s *sql.Selector) {
		step := newProspectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Visit {
	return predicate.Visit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Visit {
	return predicate.Visit(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTour applies the HasEdge predicate on the "tour" edge.
func HasTour() predicate.Visit {
	return predicate.Visit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TourTable, TourColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTourWith applies the HasEdge predicate on the "tour" edge with a given conditions (other predicates).
func HasTourWith(preds ...predicate.Tour) predicate.Visit {
	return predicate.Visit(func(s *sql.Selector) {
		step := newTourStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Visit) predicate.Visit {
	return predicate.Visit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Visit) predicate.Visit {
	return predicate.Visit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Visit) predicate.Visit {
	return predicate.Visit(sql.NotPredicates(p))
}
