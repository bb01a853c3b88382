// Code generated by ent, DO NOT EDIT.

package visit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the visit type in the database.
	Label = "visit"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVisitedAt holds the string denoting the visited_at field in the database.
	FieldVisitedAt = "visited_at"
	// FieldDurationMinutes holds the string denoting the duration_minutes field in the database.
	FieldDurationMinutes = "duration_minutes"
	// FieldObjective holds the string denoting the objective field in the database.
	FieldObjective = "objective"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldSignedBy holds the string denoting the signed_by field in the database.
	FieldSignedBy = "signed_by"
	// FieldSignatureData holds the string denoting the signature_data field in the database.
	FieldSignatureData = "signature_data"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProspect holds the string denoting the prospect edge name in mutations.
	EdgeProspect = "prospect"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeTour holds the string denoting the tour edge name in mutations.
	EdgeTour = "tour"
	// Table holds the table name of the visit in the database.
	Table = "visits"
	// ProspectTable is the table that holds the prospect relation/edge.
	ProspectTable = "visits"
	// ProspectInverseTable is the table name for the Prospect entity.
	// It exists in this package in order to avoid circular dependency with the "prospect" package.
	ProspectInverseTable = "prospects"
	// ProspectColumn is the table column denoting the prospect relation/edge.
	ProspectColumn = "prospect_visits"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "visits"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_visits"
	// TourTable is the table that holds the tour relation/edge.
	TourTable = "visits"
	// TourInverseTable is the table name for the Tour entity.
	// It exists in this package in order to avoid circular dependency with the "tour" package.
	TourInverseTable = "tours"
	// TourColumn is the table column denoting the tour relation/edge.
	TourColumn = "tour_visits"
)

// Columns holds all SQL columns for visit fields.
var Columns = []string{
	FieldID,
	FieldVisitedAt,
	FieldDurationMinutes,
	FieldObjective,
	FieldSummary,
	FieldScore,
	FieldSignedBy,
	FieldSignatureData,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "visits"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"prospect_visits",
	"tour_visits",
	"user_visits",
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
	// DefaultVisitedAt holds the default value on creation for the "visited_at" field.
	DefaultVisitedAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Visit queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVisitedAt orders the results by the visited_at field.
func ByVisitedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitedAt, opts...).ToFunc()
}

// ByDurationMinutes orders the results by the duration_minutes field.
func ByDurationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMinutes, opts...).ToFunc()
}

// ByObjective orders the results by the objective field.
func ByObjective(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjective, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// BySignedBy orders the results by the signed_by field.
func BySignedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignedBy, opts...).ToFunc()
}

// BySignatureData orders the results by the signature_data field.
func BySignatureData(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignatureData, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProspectField orders the results by prospect field.
func ByProspectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProspectStep(), sql.OrderByField(field, opts...))
	}
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByTourField orders the results by tour field.
func ByTourField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTourStep(), sql.OrderByField(field, opts...))
	}
}
func newProspectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProspectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProspectTable, ProspectColumn),
	)
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
func newTourStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TourInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TourTable, TourColumn),
	)
}
