// Code generated by ent, DO NOT EDIT.

package prospect

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the prospect type in the database.
	Label = "prospect"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldNameFolded holds the string denoting the name_folded field in the database.
	FieldNameFolded = "name_folded"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldPostalCode holds the string denoting the postal_code field in the database.
	FieldPostalCode = "postal_code"
	// FieldCity holds the string denoting the city field in the database.
	FieldCity = "city"
	// FieldCountry holds the string denoting the country field in the database.
	FieldCountry = "country"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldWebsite holds the string denoting the website field in the database.
	FieldWebsite = "website"
	// FieldManagerName holds the string denoting the manager_name field in the database.
	FieldManagerName = "manager_name"
	// FieldOpeningHours holds the string denoting the opening_hours field in the database.
	FieldOpeningHours = "opening_hours"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldNoteAvg holds the string denoting the note_avg field in the database.
	FieldNoteAvg = "note_avg"
	// FieldVisitsCount holds the string denoting the visits_count field in the database.
	FieldVisitsCount = "visits_count"
	// FieldLatitude holds the string denoting the latitude field in the database.
	FieldLatitude = "latitude"
	// FieldLongitude holds the string denoting the longitude field in the database.
	FieldLongitude = "longitude"
	// FieldGooglePlaceID holds the string denoting the google_place_id field in the database.
	FieldGooglePlaceID = "google_place_id"
	// FieldAiData holds the string denoting the ai_data field in the database.
	FieldAiData = "ai_data"
	// FieldAiEnrichedAt holds the string denoting the ai_enriched_at field in the database.
	FieldAiEnrichedAt = "ai_enriched_at"
	// FieldAiScore holds the string denoting the ai_score field in the database.
	FieldAiScore = "ai_score"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCompany holds the string denoting the company edge name in mutations.
	EdgeCompany = "company"
	// EdgeCreator holds the string denoting the creator edge name in mutations.
	EdgeCreator = "creator"
	// EdgeVisits holds the string denoting the visits edge name in mutations.
	EdgeVisits = "visits"
	// EdgeSteps holds the string denoting the steps edge name in mutations.
	EdgeSteps = "steps"
	// Table holds the table name of the prospect in the database.
	Table = "prospects"
	// CompanyTable is the table that holds the company relation/edge.
	CompanyTable = "prospects"
	// CompanyInverseTable is the table name for the Company entity.
	// It exists in this package in order to avoid circular dependency with the "company" package.
	CompanyInverseTable = "companies"
	// CompanyColumn is the table column denoting the company relation/edge.
	CompanyColumn = "company_prospects"
	// CreatorTable is the table that holds the creator relation/edge.
	CreatorTable = "prospects"
	// CreatorInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	CreatorInverseTable = "users"
	// CreatorColumn is the table column denoting the creator relation/edge.
	CreatorColumn = "user_created_prospects"
	// VisitsTable is the table that holds the visits relation/edge.
	VisitsTable = "visits"
	// VisitsInverseTable is the table name for the Visit entity.
	// It exists in this package in order to avoid circular dependency with the "visit" package.
	VisitsInverseTable = "visits"
	// VisitsColumn is the table column denoting the visits relation/edge.
	VisitsColumn = "prospect_visits"
	// StepsTable is the table that holds the steps relation/edge.
	StepsTable = "tour_steps"
	// StepsInverseTable is the table name for the TourStep entity.
	// It exists in this package in order to avoid circular dependency with the "tourstep" package.
	StepsInverseTable = "tour_steps"
	// StepsColumn is the table column denoting the steps relation/edge.
	StepsColumn = "prospect_steps"
)

// Columns holds all SQL columns for prospect fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldNameFolded,
	FieldType,
	FieldAddress,
	FieldPostalCode,
	FieldCity,
	FieldCountry,
	FieldPhone,
	FieldEmail,
	FieldWebsite,
	FieldManagerName,
	FieldOpeningHours,
	FieldStatus,
	FieldNoteAvg,
	FieldVisitsCount,
	FieldLatitude,
	FieldLongitude,
	FieldGooglePlaceID,
	FieldAiData,
	FieldAiEnrichedAt,
	FieldAiScore,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "prospects"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"company_prospects",
	"user_created_prospects",
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultCountry holds the default value on creation for the "country" field.
	DefaultCountry string
	// DefaultNoteAvg holds the default value on creation for the "note_avg" field.
	DefaultNoteAvg float64
	// DefaultVisitsCount holds the default value on creation for the "visits_count" field.
	DefaultVisitsCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeHotel      Type = "hotel"
	TypeRestaurant Type = "restaurant"
	TypeTraiteur   Type = "traiteur"
	TypeEcole      Type = "ecole"
	TypeHopital    Type = "hopital"
	TypeAutre      Type = "autre"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeHotel, TypeRestaurant, TypeTraiteur, TypeEcole, TypeHopital, TypeAutre:
		return nil
	default:
		return fmt.Errorf("prospect: invalid enum value for type field: %q", _type)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusToVisit is the default value of the Status enum.
const DefaultStatus = StatusToVisit

// Status values.
const (
	StatusToVisit    Status = "to_visit"
	StatusInProgress Status = "in_progress"
	StatusConverted  Status = "converted"
	StatusLost       Status = "lost"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusToVisit, StatusInProgress, StatusConverted, StatusLost:
		return nil
	default:
		return fmt.Errorf("prospect: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Prospect queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByNameFolded orders the results by the name_folded field.
func ByNameFolded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNameFolded, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByPostalCode orders the results by the postal_code field.
func ByPostalCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostalCode, opts...).ToFunc()
}

// ByCity orders the results by the city field.
func ByCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCity, opts...).ToFunc()
}

// ByCountry orders the results by the country field.
func ByCountry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCountry, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByWebsite orders the results by the website field.
func ByWebsite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebsite, opts...).ToFunc()
}

// ByManagerName orders the results by the manager_name field.
func ByManagerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldManagerName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByNoteAvg orders the results by the note_avg field.
func ByNoteAvg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNoteAvg, opts...).ToFunc()
}

// ByVisitsCountField orders the results by the visits_count field.
func ByVisitsCountField(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitsCount, opts...).ToFunc()
}

// ByLatitude orders the results by the latitude field.
func ByLatitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatitude, opts...).ToFunc()
}

// ByLongitude orders the results by the longitude field.
func ByLongitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongitude, opts...).ToFunc()
}

// ByGooglePlaceID orders the results by the google_place_id field.
func ByGooglePlaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGooglePlaceID, opts...).ToFunc()
}

// ByAiEnrichedAt orders the results by the ai_enriched_at field.
func ByAiEnrichedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiEnrichedAt, opts...).ToFunc()
}

// ByAiScore orders the results by the ai_score field.
func ByAiScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiScore, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompanyField orders the results by company field.
func ByCompanyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCompanyStep(), sql.OrderByField(field, opts...))
	}
}

// ByCreatorField orders the results by creator field.
func ByCreatorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCreatorStep(), sql.OrderByField(field, opts...))
	}
}

// ByVisitsCount orders the results by visits count.
func ByVisitsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVisitsStep(), opts...)
	}
}

// ByVisits orders the results by visits terms.
func ByVisits(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVisitsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStepsCount orders the results by steps count.
func ByStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepsStep(), opts...)
	}
}

// BySteps orders the results by steps terms.
func BySteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCompanyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CompanyInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
	)
}
func newCreatorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CreatorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CreatorTable, CreatorColumn),
	)
}
func newVisitsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VisitsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VisitsTable, VisitsColumn),
	)
}
func newStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
	)
}
