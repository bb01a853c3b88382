// Code generated by ent, DO NOT EDIT.

package tourstep

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the tourstep type in the database.
	Label = "tour_step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStepOrder holds the string denoting the step_order field in the database.
	FieldStepOrder = "step_order"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldEta holds the string denoting the eta field in the database.
	FieldEta = "eta"
	// FieldDistanceFromPreviousKm holds the string denoting the distance_from_previous_km field in the database.
	FieldDistanceFromPreviousKm = "distance_from_previous_km"
	// FieldDurationFromPreviousMinutes holds the string denoting the duration_from_previous_minutes field in the database.
	FieldDurationFromPreviousMinutes = "duration_from_previous_minutes"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTour holds the string denoting the tour edge name in mutations.
	EdgeTour = "tour"
	// EdgeProspect holds the string denoting the prospect edge name in mutations.
	EdgeProspect = "prospect"
	// Table holds the table name of the tourstep in the database.
	Table = "tour_steps"
	// TourTable is the table that holds the tour relation/edge.
	TourTable = "tour_steps"
	// TourInverseTable is the table name for the Tour entity.
	// It exists in this package in order to avoid circular dependency with the "tour" package.
	TourInverseTable = "tours"
	// TourColumn is the table column denoting the tour relation/edge.
	TourColumn = "tour_steps"
	// ProspectTable is the table that holds the prospect relation/edge.
	ProspectTable = "tour_steps"
	// ProspectInverseTable is the table name for the Prospect entity.
	// It exists in this package in order to avoid circular dependency with the "prospect" package.
	ProspectInverseTable = "prospects"
	// ProspectColumn is the table column denoting the prospect relation/edge.
	ProspectColumn = "prospect_steps"
)

// Columns holds all SQL columns for tourstep fields.
var Columns = []string{
	FieldID,
	FieldStepOrder,
	FieldStatus,
	FieldEta,
	FieldDistanceFromPreviousKm,
	FieldDurationFromPreviousMinutes,
	FieldCompletedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "tour_steps"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"prospect_steps",
	"tour_steps",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// StepOrderValidator is a validator for the "step_order" field. It is called by the builders before save.
	StepOrderValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
	StatusSkipped Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusDone, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("tourstep: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the TourStep queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStepOrder orders the results by the step_order field.
func ByStepOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepOrder, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByEta orders the results by the eta field.
func ByEta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEta, opts...).ToFunc()
}

// ByDistanceFromPreviousKm orders the results by the distance_from_previous_km field.
func ByDistanceFromPreviousKm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDistanceFromPreviousKm, opts...).ToFunc()
}

// ByDurationFromPreviousMinutes orders the results by the duration_from_previous_minutes field.
func ByDurationFromPreviousMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationFromPreviousMinutes, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTourField orders the results by tour field.
func ByTourField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTourStep(), sql.OrderByField(field, opts...))
	}
}

// ByProspectField orders the results by prospect field.
func ByProspectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProspectStep(), sql.OrderByField(field, opts...))
	}
}
func newTourStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TourInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TourTable, TourColumn),
	)
}
func newProspectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProspectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProspectTable, ProspectColumn),
	)
}
