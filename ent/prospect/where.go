// Code generated by ent, DO NOT EDIT.

package prospect

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/horeca-prospection/backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldName, v))
}

// NameFolded applies equality check predicate on the "name_folded" field. It's identical to NameFoldedEQ.
func NameFolded(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldNameFolded, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldAddress, v))
}

// PostalCode applies equality check predicate on the "postal_code" field. It's identical to PostalCodeEQ.
func PostalCode(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldPostalCode, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldCity, v))
}

// Country applies equality check predicate on the "country" field. It's identical to CountryEQ.
func Country(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldCountry, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldPhone, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldEmail, v))
}

// Website applies equality check predicate on the "website" field. It's identical to WebsiteEQ.
func Website(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldWebsite, v))
}

// ManagerName applies equality check predicate on the "manager_name" field. It's identical to ManagerNameEQ.
func ManagerName(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldManagerName, v))
}

// NoteAvg applies equality check predicate on the "note_avg" field. It's identical to NoteAvgEQ.
func NoteAvg(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldNoteAvg, v))
}

// VisitsCount applies equality check predicate on the "visits_count" field. It's identical to VisitsCountEQ.
func VisitsCount(v int) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldVisitsCount, v))
}

// Latitude applies equality check predicate on the "latitude" field. It's identical to LatitudeEQ.
func Latitude(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldLatitude, v))
}

// Longitude applies equality check predicate on the "longitude" field. It's identical to LongitudeEQ.
func Longitude(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldLongitude, v))
}

// GooglePlaceID applies equality check predicate on the "google_place_id" field. It's identical to GooglePlaceIDEQ.
func GooglePlaceID(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldGooglePlaceID, v))
}

// AiEnrichedAt applies equality check predicate on the "ai_enriched_at" field. It's identical to AiEnrichedAtEQ.
func AiEnrichedAt(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldAiEnrichedAt, v))
}

// AiScore applies equality check predicate on the "ai_score" field. It's identical to AiScoreEQ.
func AiScore(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldAiScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldName, v))
}

// NameFoldedEQ applies the EQ predicate on the "name_folded" field.
func NameFoldedEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldNameFolded, v))
}

// NameFoldedNEQ applies the NEQ predicate on the "name_folded" field.
func NameFoldedNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldNameFolded, v))
}

// NameFoldedIn applies the In predicate on the "name_folded" field.
func NameFoldedIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldNameFolded, vs...))
}

// NameFoldedNotIn applies the NotIn predicate on the "name_folded" field.
func NameFoldedNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldNameFolded, vs...))
}

// NameFoldedGT applies the GT predicate on the "name_folded" field.
func NameFoldedGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldNameFolded, v))
}

// NameFoldedGTE applies the GTE predicate on the "name_folded" field.
func NameFoldedGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldNameFolded, v))
}

// NameFoldedLT applies the LT predicate on the "name_folded" field.
func NameFoldedLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldNameFolded, v))
}

// NameFoldedLTE applies the LTE predicate on the "name_folded" field.
func NameFoldedLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldNameFolded, v))
}

// NameFoldedContains applies the Contains predicate on the "name_folded" field.
func NameFoldedContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldNameFolded, v))
}

// NameFoldedHasPrefix applies the HasPrefix predicate on the "name_folded" field.
func NameFoldedHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldNameFolded, v))
}

// NameFoldedHasSuffix applies the HasSuffix predicate on the "name_folded" field.
func NameFoldedHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldNameFolded, v))
}

// NameFoldedIsNil applies the IsNil predicate on the "name_folded" field.
func NameFoldedIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldNameFolded))
}

// NameFoldedNotNil applies the NotNil predicate on the "name_folded" field.
func NameFoldedNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldNameFolded))
}

// NameFoldedEqualFold applies the EqualFold predicate on the "name_folded" field.
func NameFoldedEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldNameFolded, v))
}

// NameFoldedContainsFold applies the ContainsFold predicate on the "name_folded" field.
func NameFoldedContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldNameFolded, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldType, vs...))
}

// TypeIsNil applies the IsNil predicate on the "type" field.
func TypeIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldType))
}

// TypeNotNil applies the NotNil predicate on the "type" field.
func TypeNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldType))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldAddress, v))
}

// PostalCodeEQ applies the EQ predicate on the "postal_code" field.
func PostalCodeEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldPostalCode, v))
}

// PostalCodeNEQ applies the NEQ predicate on the "postal_code" field.
func PostalCodeNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldPostalCode, v))
}

// PostalCodeIn applies the In predicate on the "postal_code" field.
func PostalCodeIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldPostalCode, vs...))
}

// PostalCodeNotIn applies the NotIn predicate on the "postal_code" field.
func PostalCodeNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldPostalCode, vs...))
}

// PostalCodeGT applies the GT predicate on the "postal_code" field.
func PostalCodeGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldPostalCode, v))
}

// PostalCodeGTE applies the GTE predicate on the "postal_code" field.
func PostalCodeGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldPostalCode, v))
}

// PostalCodeLT applies the LT predicate on the "postal_code" field.
func PostalCodeLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldPostalCode, v))
}

// PostalCodeLTE applies the LTE predicate on the "postal_code" field.
func PostalCodeLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldPostalCode, v))
}

// PostalCodeContains applies the Contains predicate on the "postal_code" field.
func PostalCodeContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldPostalCode, v))
}

// PostalCodeHasPrefix applies the HasPrefix predicate on the "postal_code" field.
func PostalCodeHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldPostalCode, v))
}

// PostalCodeHasSuffix applies the HasSuffix predicate on the "postal_code" field.
func PostalCodeHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldPostalCode, v))
}

// PostalCodeIsNil applies the IsNil predicate on the "postal_code" field.
func PostalCodeIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldPostalCode))
}

// PostalCodeNotNil applies the NotNil predicate on the "postal_code" field.
func PostalCodeNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldPostalCode))
}

// PostalCodeEqualFold applies the EqualFold predicate on the "postal_code" field.
func PostalCodeEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldPostalCode, v))
}

// PostalCodeContainsFold applies the ContainsFold predicate on the "postal_code" field.
func PostalCodeContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldPostalCode, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldCity, v))
}

// CityIsNil applies the IsNil predicate on the "city" field.
func CityIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldCity))
}

// CityNotNil applies the NotNil predicate on the "city" field.
func CityNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldCity))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldCity, v))
}

// CountryEQ applies the EQ predicate on the "country" field.
func CountryEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldCountry, v))
}

// CountryNEQ applies the NEQ predicate on the "country" field.
func CountryNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldCountry, v))
}

// CountryIn applies the In predicate on the "country" field.
func CountryIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldCountry, vs...))
}

// CountryNotIn applies the NotIn predicate on the "country" field.
func CountryNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldCountry, vs...))
}

// CountryGT applies the GT predicate on the "country" field.
func CountryGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldCountry, v))
}

// CountryGTE applies the GTE predicate on the "country" field.
func CountryGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldCountry, v))
}

// CountryLT applies the LT predicate on the "country" field.
func CountryLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldCountry, v))
}

// CountryLTE applies the LTE predicate on the "country" field.
func CountryLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldCountry, v))
}

// CountryContains applies the Contains predicate on the "country" field.
func CountryContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldCountry, v))
}

// CountryHasPrefix applies the HasPrefix predicate on the "country" field.
func CountryHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldCountry, v))
}

// CountryHasSuffix applies the HasSuffix predicate on the "country" field.
func CountryHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldCountry, v))
}

// CountryEqualFold applies the EqualFold predicate on the "country" field.
func CountryEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldCountry, v))
}

// CountryContainsFold applies the ContainsFold predicate on the "country" field.
func CountryContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldCountry, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldPhone, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldEmail, v))
}

// WebsiteEQ applies the EQ predicate on the "website" field.
func WebsiteEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldWebsite, v))
}

// WebsiteNEQ applies the NEQ predicate on the "website" field.
func WebsiteNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldWebsite, v))
}

// WebsiteIn applies the In predicate on the "website" field.
func WebsiteIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldWebsite, vs...))
}

// WebsiteNotIn applies the NotIn predicate on the "website" field.
func WebsiteNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldWebsite, vs...))
}

// WebsiteGT applies the GT predicate on the "website" field.
func WebsiteGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldWebsite, v))
}

// WebsiteGTE applies the GTE predicate on the "website" field.
func WebsiteGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldWebsite, v))
}

// WebsiteLT applies the LT predicate on the "website" field.
func WebsiteLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldWebsite, v))
}

// WebsiteLTE applies the LTE predicate on the "website" field.
func WebsiteLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldWebsite, v))
}

// WebsiteContains applies the Contains predicate on the "website" field.
func WebsiteContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldWebsite, v))
}

// WebsiteHasPrefix applies the HasPrefix predicate on the "website" field.
func WebsiteHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldWebsite, v))
}

// WebsiteHasSuffix applies the HasSuffix predicate on the "website" field.
func WebsiteHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldWebsite, v))
}

// WebsiteIsNil applies the IsNil predicate on the "website" field.
func WebsiteIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldWebsite))
}

// WebsiteNotNil applies the NotNil predicate on the "website" field.
func WebsiteNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldWebsite))
}

// WebsiteEqualFold applies the EqualFold predicate on the "website" field.
func WebsiteEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldWebsite, v))
}

// WebsiteContainsFold applies the ContainsFold predicate on the "website" field.
func WebsiteContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldWebsite, v))
}

// ManagerNameEQ applies the EQ predicate on the "manager_name" field.
func ManagerNameEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldManagerName, v))
}

// ManagerNameNEQ applies the NEQ predicate on the "manager_name" field.
func ManagerNameNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldManagerName, v))
}

// ManagerNameIn applies the In predicate on the "manager_name" field.
func ManagerNameIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldManagerName, vs...))
}

// ManagerNameNotIn applies the NotIn predicate on the "manager_name" field.
func ManagerNameNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldManagerName, vs...))
}

// ManagerNameGT applies the GT predicate on the "manager_name" field.
func ManagerNameGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldManagerName, v))
}

// ManagerNameGTE applies the GTE predicate on the "manager_name" field.
func ManagerNameGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldManagerName, v))
}

// ManagerNameLT applies the LT predicate on the "manager_name" field.
func ManagerNameLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldManagerName, v))
}

// ManagerNameLTE applies the LTE predicate on the "manager_name" field.
func ManagerNameLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldManagerName, v))
}

// ManagerNameContains applies the Contains predicate on the "manager_name" field.
func ManagerNameContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldManagerName, v))
}

// ManagerNameHasPrefix applies the HasPrefix predicate on the "manager_name" field.
func ManagerNameHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldManagerName, v))
}

// ManagerNameHasSuffix applies the HasSuffix predicate on the "manager_name" field.
func ManagerNameHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldManagerName, v))
}

// ManagerNameIsNil applies the IsNil predicate on the "manager_name" field.
func ManagerNameIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldManagerName))
}

// ManagerNameNotNil applies the NotNil predicate on the "manager_name" field.
func ManagerNameNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldManagerName))
}

// ManagerNameEqualFold applies the EqualFold predicate on the "manager_name" field.
func ManagerNameEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldManagerName, v))
}

// ManagerNameContainsFold applies the ContainsFold predicate on the "manager_name" field.
func ManagerNameContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldManagerName, v))
}

// OpeningHoursIsNil applies the IsNil predicate on the "opening_hours" field.
func OpeningHoursIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldOpeningHours))
}

// OpeningHoursNotNil applies the NotNil predicate on the "opening_hours" field.
func OpeningHoursNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldOpeningHours))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldStatus, vs...))
}

// NoteAvgEQ applies the EQ predicate on the "note_avg" field.
func NoteAvgEQ(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldNoteAvg, v))
}

// NoteAvgNEQ applies the NEQ predicate on the "note_avg" field.
func NoteAvgNEQ(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldNoteAvg, v))
}

// NoteAvgIn applies the In predicate on the "note_avg" field.
func NoteAvgIn(vs ...float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldNoteAvg, vs...))
}

// NoteAvgNotIn applies the NotIn predicate on the "note_avg" field.
func NoteAvgNotIn(vs ...float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldNoteAvg, vs...))
}

// NoteAvgGT applies the GT predicate on the "note_avg" field.
func NoteAvgGT(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldNoteAvg, v))
}

// NoteAvgGTE applies the GTE predicate on the "note_avg" field.
func NoteAvgGTE(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldNoteAvg, v))
}

// NoteAvgLT applies the LT predicate on the "note_avg" field.
func NoteAvgLT(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldNoteAvg, v))
}

// NoteAvgLTE applies the LTE predicate on the "note_avg" field.
func NoteAvgLTE(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldNoteAvg, v))
}

// VisitsCountEQ applies the EQ predicate on the "visits_count" field.
func VisitsCountEQ(v int) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldVisitsCount, v))
}

// VisitsCountNEQ applies the NEQ predicate on the "visits_count" field.
func VisitsCountNEQ(v int) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldVisitsCount, v))
}

// VisitsCountIn applies the In predicate on the "visits_count" field.
func VisitsCountIn(vs ...int) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldVisitsCount, vs...))
}

// VisitsCountNotIn applies the NotIn predicate on the "visits_count" field.
func VisitsCountNotIn(vs ...int) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldVisitsCount, vs...))
}

// VisitsCountGT applies the GT predicate on the "visits_count" field.
func VisitsCountGT(v int) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldVisitsCount, v))
}

// VisitsCountGTE applies the GTE predicate on the "visits_count" field.
func VisitsCountGTE(v int) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldVisitsCount, v))
}

// VisitsCountLT applies the LT predicate on the "visits_count" field.
func VisitsCountLT(v int) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldVisitsCount, v))
}

// VisitsCountLTE applies the LTE predicate on the "visits_count" field.
func VisitsCountLTE(v int) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldVisitsCount, v))
}

// LatitudeEQ applies the EQ predicate on the "latitude" field.
func LatitudeEQ(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldLatitude, v))
}

// LatitudeNEQ applies the NEQ predicate on the "latitude" field.
func LatitudeNEQ(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldLatitude, v))
}

// LatitudeIn applies the In predicate on the "latitude" field.
func LatitudeIn(vs ...float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldLatitude, vs...))
}

// LatitudeNotIn applies the NotIn predicate on the "latitude" field.
func LatitudeNotIn(vs ...float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldLatitude, vs...))
}

// LatitudeGT applies the GT predicate on the "latitude" field.
func LatitudeGT(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldLatitude, v))
}

// LatitudeGTE applies the GTE predicate on the "latitude" field.
func LatitudeGTE(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldLatitude, v))
}

// LatitudeLT applies the LT predicate on the "latitude" field.
func LatitudeLT(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldLatitude, v))
}

// LatitudeLTE applies the LTE predicate on the "latitude" field.
func LatitudeLTE(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldLatitude, v))
}

// LatitudeIsNil applies the IsNil predicate on the "latitude" field.
func LatitudeIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldLatitude))
}

// LatitudeNotNil applies the NotNil predicate on the "latitude" field.
func LatitudeNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldLatitude))
}

// LongitudeEQ applies the EQ predicate on the "longitude" field.
func LongitudeEQ(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldLongitude, v))
}

// LongitudeNEQ applies the NEQ predicate on the "longitude" field.
func LongitudeNEQ(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldLongitude, v))
}

// LongitudeIn applies the In predicate on the "longitude" field.
func LongitudeIn(vs ...float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldLongitude, vs...))
}

// LongitudeNotIn applies the NotIn predicate on the "longitude" field.
func LongitudeNotIn(vs ...float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldLongitude, vs...))
}

// LongitudeGT applies the GT predicate on the "longitude" field.
func LongitudeGT(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldLongitude, v))
}

// LongitudeGTE applies the GTE predicate on the "longitude" field.
func LongitudeGTE(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldLongitude, v))
}

// LongitudeLT applies the LT predicate on the "longitude" field.
func LongitudeLT(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldLongitude, v))
}

// LongitudeLTE applies the LTE predicate on the "longitude" field.
func LongitudeLTE(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldLongitude, v))
}

// LongitudeIsNil applies the IsNil predicate on the "longitude" field.
func LongitudeIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldLongitude))
}

// LongitudeNotNil applies the NotNil predicate on the "longitude" field.
func LongitudeNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldLongitude))
}

// GooglePlaceIDEQ applies the EQ predicate on the "google_place_id" field.
func GooglePlaceIDEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldGooglePlaceID, v))
}

// GooglePlaceIDNEQ applies the NEQ predicate on the "google_place_id" field.
func GooglePlaceIDNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldGooglePlaceID, v))
}

// GooglePlaceIDIn applies the In predicate on the "google_place_id" field.
func GooglePlaceIDIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldGooglePlaceID, vs...))
}

// GooglePlaceIDNotIn applies the NotIn predicate on the "google_place_id" field.
func GooglePlaceIDNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldGooglePlaceID, vs...))
}

// GooglePlaceIDGT applies the GT predicate on the "google_place_id" field.
func GooglePlaceIDGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldGooglePlaceID, v))
}

// GooglePlaceIDGTE applies the GTE predicate on the "google_place_id" field.
func GooglePlaceIDGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldGooglePlaceID, v))
}

// GooglePlaceIDLT applies the LT predicate on the "google_place_id" field.
func GooglePlaceIDLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldGooglePlaceID, v))
}

// GooglePlaceIDLTE applies the LTE predicate on the "google_place_id" field.
func GooglePlaceIDLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldGooglePlaceID, v))
}

// GooglePlaceIDContains applies the Contains predicate on the "google_place_id" field.
func GooglePlaceIDContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldGooglePlaceID, v))
}

// GooglePlaceIDHasPrefix applies the HasPrefix predicate on the "google_place_id" field.
func GooglePlaceIDHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldGooglePlaceID, v))
}

// GooglePlaceIDHasSuffix applies the HasSuffix predicate on the "google_place_id" field.
func GooglePlaceIDHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldGooglePlaceID, v))
}

// GooglePlaceIDIsNil applies the IsNil predicate on the "google_place_id" field.
func GooglePlaceIDIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldGooglePlaceID))
}

// GooglePlaceIDNotNil applies the NotNil predicate on the "google_place_id" field.
func GooglePlaceIDNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldGooglePlaceID))
}

// GooglePlaceIDEqualFold applies the EqualFold predicate on the "google_place_id" field.
func GooglePlaceIDEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldGooglePlaceID, v))
}

// GooglePlaceIDContainsFold applies the ContainsFold predicate on the "google_place_id" field.
func GooglePlaceIDContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldGooglePlaceID, v))
}

// AiDataIsNil applies the IsNil predicate on the "ai_data" field.
func AiDataIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldAiData))
}

// AiDataNotNil applies the NotNil predicate on the "ai_data" field.
func AiDataNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldAiData))
}

// AiEnrichedAtEQ applies the EQ predicate on the "ai_enriched_at" field.
func AiEnrichedAtEQ(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldAiEnrichedAt, v))
}

// AiEnrichedAtNEQ applies the NEQ predicate on the "ai_enriched_at" field.
func AiEnrichedAtNEQ(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldAiEnrichedAt, v))
}

// AiEnrichedAtIn applies the In predicate on the "ai_enriched_at" field.
func AiEnrichedAtIn(vs ...time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldAiEnrichedAt, vs...))
}

// AiEnrichedAtNotIn applies the NotIn predicate on the "ai_enriched_at" field.
func AiEnrichedAtNotIn(vs ...time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldAiEnrichedAt, vs...))
}

// AiEnrichedAtGT applies the GT predicate on the "ai_enriched_at" field.
func AiEnrichedAtGT(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldAiEnrichedAt, v))
}

// AiEnrichedAtGTE applies the GTE predicate on the "ai_enriched_at" field.
func AiEnrichedAtGTE(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldAiEnrichedAt, v))
}

// AiEnrichedAtLT applies the LT predicate on the "ai_enriched_at" field.
func AiEnrichedAtLT(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldAiEnrichedAt, v))
}

// AiEnrichedAtLTE applies the LTE predicate on the "ai_enriched_at" field.
func AiEnrichedAtLTE(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldAiEnrichedAt, v))
}

// AiEnrichedAtIsNil applies the IsNil predicate on the "ai_enriched_at" field.
func AiEnrichedAtIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldAiEnrichedAt))
}

// AiEnrichedAtNotNil applies the NotNil predicate on the "ai_enriched_at" field.
func AiEnrichedAtNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldAiEnrichedAt))
}

// AiScoreEQ applies the EQ predicate on the "ai_score" field.
func AiScoreEQ(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldAiScore, v))
}

// AiScoreNEQ applies the NEQ predicate on the "ai_score" field.
func AiScoreNEQ(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldAiScore, v))
}

// AiScoreIn applies the In predicate on the "ai_score" field.
func AiScoreIn(vs ...float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldAiScore, vs...))
}

// AiScoreNotIn applies the NotIn predicate on the "ai_score" field.
func AiScoreNotIn(vs ...float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldAiScore, vs...))
}

// AiScoreGT applies the GT predicate on the "ai_score" field.
func AiScoreGT(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldAiScore, v))
}

// AiScoreGTE applies the GTE predicate on the "ai_score" field.
func AiScoreGTE(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldAiScore, v))
}

// AiScoreLT applies the LT predicate on the "ai_score" field.
func AiScoreLT(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldAiScore, v))
}

// AiScoreLTE applies the LTE predicate on the "ai_score" field.
func AiScoreLTE(v float64) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldAiScore, v))
}

// AiScoreIsNil applies the IsNil predicate on the "ai_score" field.
func AiScoreIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldAiScore))
}

// AiScoreNotNil applies the NotNil predicate on the "ai_score" field.
func AiScoreNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldAiScore))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCompany applies the HasEdge predicate on the "company" edge.
func HasCompany() predicate.Prospect {
	return predicate.Prospect(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompanyWith applies the HasEdge predicate on the "company" edge with a given conditions (other predicates).
func HasCompanyWith(preds ...predicate.Company) predicate.Prospect {
	return predicate.Prospect(func(s *sql.Selector) {
		step := newCompanyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCreator applies the HasEdge predicate on the "creator" edge.
func HasCreator() predicate.Prospect {
	return predicate.Prospect(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CreatorTable, CreatorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCreatorWith applies the HasEdge predicate on the "creator" edge with a given conditions (other predicates).
func HasCreatorWith(preds ...predicate.User) predicate.Prospect {
	return predicate.Prospect(func(s *sql.Selector) {
		step := newCreatorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVisits applies the HasEdge predicate on the "visits" edge.
func HasVisits() predicate.Prospect {
	return predicate.Prospect(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VisitsTable, VisitsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVisitsWith applies the HasEdge predicate on the "visits" edge with a given conditions (other predicates).
func HasVisitsWith(preds ...predicate.Visit) predicate.Prospect {
	return predicate.Prospect(func(s *sql.Selector) {
		step := newVisitsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.Prospect {
	return predicate.Prospect(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.TourStep) predicate.Prospect {
	return predicate.Prospect(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Prospect) predicate.Prospect {
	return predicate.Prospect(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Prospect) predicate.Prospect {
	return predicate.Prospect(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Prospect) predicate.Prospect {
	return predicate.Prospect(sql.NotPredicates(p))
}
