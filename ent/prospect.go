// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/horeca-prospection/backend/ent/company"
	"github.com/horeca-prospection/backend/ent/prospect"
	"github.com/horeca-prospection/backend/ent/user"
)

// Prospect is the model entity for the Prospect schema.
type Prospect struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Establishment name
	Name string `json:"name,omitempty"`
	// Lowercased, accent-stripped copy of name kept in sync on writes
	NameFolded string `json:"name_folded,omitempty"`
	// HORECA segment
	Type prospect.Type `json:"type,omitempty"`
	// Address holds the value of the "address" field.
	Address string `json:"address,omitempty"`
	// PostalCode holds the value of the "postal_code" field.
	PostalCode string `json:"postal_code,omitempty"`
	// City holds the value of the "city" field.
	City string `json:"city,omitempty"`
	// Country holds the value of the "country" field.
	Country string `json:"country,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone string `json:"phone,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Website holds the value of the "website" field.
	Website string `json:"website,omitempty"`
	// ManagerName holds the value of the "manager_name" field.
	ManagerName string `json:"manager_name,omitempty"`
	// OpeningHours holds the value of the "opening_hours" field.
	OpeningHours map[string]interface{} `json:"opening_hours,omitempty"`
	// Prospecting lifecycle status
	Status prospect.Status `json:"status,omitempty"`
	// Average visit score, recomputed on visit writes
	NoteAvg float64 `json:"note_avg,omitempty"`
	// Number of visits, recomputed on visit writes
	VisitsCount int `json:"visits_count,omitempty"`
	// Latitude holds the value of the "latitude" field.
	Latitude float64 `json:"latitude,omitempty"`
	// Longitude holds the value of the "longitude" field.
	Longitude float64 `json:"longitude,omitempty"`
	// GooglePlaceID holds the value of the "google_place_id" field.
	GooglePlaceID string `json:"google_place_id,omitempty"`
	// AI enrichment payload
	AiData map[string]interface{} `json:"ai_data,omitempty"`
	// AiEnrichedAt holds the value of the "ai_enriched_at" field.
	AiEnrichedAt *time.Time `json:"ai_enriched_at,omitempty"`
	// AI relevance score (0-10)
	AiScore float64 `json:"ai_score,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProspectQuery when eager-loading is set.
	Edges                  ProspectEdges `json:"edges"`
	company_prospects      *uuid.UUID
	user_created_prospects *uuid.UUID
	selectValues           sql.SelectValues
}

// ProspectEdges holds the relations/edges for other nodes in the graph.
type ProspectEdges struct {
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// Creator holds the value of the creator edge.
	Creator *User `json:"creator,omitempty"`
	// Visits holds the value of the visits edge.
	Visits []*Visit `json:"visits,omitempty"`
	// Steps holds the value of the steps edge.
	Steps []*TourStep `json:"steps,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProspectEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// CreatorOrErr returns the Creator value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProspectEdges) CreatorOrErr() (*User, error) {
	if e.Creator != nil {
		return e.Creator, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "creator"}
}

// VisitsOrErr returns the Visits value or an error if the edge
// was not loaded in eager-loading.
func (e ProspectEdges) VisitsOrErr() ([]*Visit, error) {
	if e.loadedTypes[2] {
		return e.Visits, nil
	}
	return nil, &NotLoadedError{edge: "visits"}
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e ProspectEdges) StepsOrErr() ([]*TourStep, error) {
	if e.loadedTypes[3] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Prospect) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case prospect.FieldOpeningHours, prospect.FieldAiData:
			values[i] = new([]byte)
		case prospect.FieldNoteAvg, prospect.FieldLatitude, prospect.FieldLongitude, prospect.FieldAiScore:
			values[i] = new(sql.NullFloat64)
		case prospect.FieldVisitsCount:
			values[i] = new(sql.NullInt64)
		case prospect.FieldName, prospect.FieldNameFolded, prospect.FieldType, prospect.FieldAddress, prospect.FieldPostalCode, prospect.FieldCity, prospect.FieldCountry, prospect.FieldPhone, prospect.FieldEmail, prospect.FieldWebsite, prospect.FieldManagerName, prospect.FieldStatus, prospect.FieldGooglePlaceID:
			values[i] = new(sql.NullString)
		case prospect.FieldAiEnrichedAt, prospect.FieldCreatedAt, prospect.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case prospect.FieldID:
			values[i] = new(uuid.UUID)
		case prospect.ForeignKeys[0]: // company_prospects
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case prospect.ForeignKeys[1]: // user_created_prospects
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Prospect fields.
func (_m *Prospect) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case prospect.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case prospect.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case prospect.FieldNameFolded:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name_folded", values[i])
			} else if value.Valid {
				_m.NameFolded = value.String
			}
		case prospect.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = prospect.Type(value.String)
			}
		case prospect.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		case prospect.FieldPostalCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field postal_code", values[i])
			} else if value.Valid {
				_m.PostalCode = value.String
			}
		case prospect.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = value.String
			}
		case prospect.FieldCountry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country", values[i])
			} else if value.Valid {
				_m.Country = value.String
			}
		case prospect.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case prospect.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case prospect.FieldWebsite:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field website", values[i])
			} else if value.Valid {
				_m.Website = value.String
			}
		case prospect.FieldManagerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field manager_name", values[i])
			} else if value.Valid {
				_m.ManagerName = value.String
			}
		case prospect.FieldOpeningHours:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field opening_hours", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OpeningHours); err != nil {
					return fmt.Errorf("unmarshal field opening_hours: %w", err)
				}
			}
		case prospect.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = prospect.Status(value.String)
			}
		case prospect.FieldNoteAvg:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field note_avg", values[i])
			} else if value.Valid {
				_m.NoteAvg = value.Float64
			}
		case prospect.FieldVisitsCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field visits_count", values[i])
			} else if value.Valid {
				_m.VisitsCount = int(value.Int64)
			}
		case prospect.FieldLatitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field latitude", values[i])
			} else if value.Valid {
				_m.Latitude = value.Float64
			}
		case prospect.FieldLongitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field longitude", values[i])
			} else if value.Valid {
				_m.Longitude = value.Float64
			}
		case prospect.FieldGooglePlaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field google_place_id", values[i])
			} else if value.Valid {
				_m.GooglePlaceID = value.String
			}
		case prospect.FieldAiData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ai_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AiData); err != nil {
					return fmt.Errorf("unmarshal field ai_data: %w", err)
				}
			}
		case prospect.FieldAiEnrichedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ai_enriched_at", values[i])
			} else if value.Valid {
				_m.AiEnrichedAt = new(time.Time)
				*_m.AiEnrichedAt = value.Time
			}
		case prospect.FieldAiScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ai_score", values[i])
			} else if value.Valid {
				_m.AiScore = value.Float64
			}
		case prospect.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case prospect.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case prospect.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field company_prospects", values[i])
			} else if value.Valid {
				_m.company_prospects = new(uuid.UUID)
				*_m.company_prospects = *value.S.(*uuid.UUID)
			}
		case prospect.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field user_created_prospects", values[i])
			} else if value.Valid {
				_m.user_created_prospects = new(uuid.UUID)
				*_m.user_created_prospects = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Prospect.
// This includes values selected through modifiers, order, etc.
func (_m *Prospect) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompany queries the "company" edge of the Prospect entity.
func (_m *Prospect) QueryCompany() *CompanyQuery {
	return NewProspectClient(_m.config).QueryCompany(_m)
}

// QueryCreator queries the "creator" edge of the Prospect entity.
func (_m *Prospect) QueryCreator() *UserQuery {
	return NewProspectClient(_m.config).QueryCreator(_m)
}

// QueryVisits queries the "visits" edge of the Prospect entity.
func (_m *Prospect) QueryVisits() *VisitQuery {
	return NewProspectClient(_m.config).QueryVisits(_m)
}

// QuerySteps queries the "steps" edge of the Prospect entity.
func (_m *Prospect) QuerySteps() *TourStepQuery {
	return NewProspectClient(_m.config).QuerySteps(_m)
}

// Update returns a builder for updating this Prospect.
// Note that you need to call Prospect.Unwrap() before calling this method if this Prospect
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Prospect) Update() *ProspectUpdateOne {
	return NewProspectClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Prospect entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Prospect) Unwrap() *Prospect {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Prospect is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Prospect) String() string {
	var builder strings.Builder
	builder.WriteString("Prospect(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("name_folded=")
	builder.WriteString(_m.NameFolded)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("address=")
	builder.WriteString(_m.Address)
	builder.WriteString(", ")
	builder.WriteString("postal_code=")
	builder.WriteString(_m.PostalCode)
	builder.WriteString(", ")
	builder.WriteString("city=")
	builder.WriteString(_m.City)
	builder.WriteString(", ")
	builder.WriteString("country=")
	builder.WriteString(_m.Country)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("website=")
	builder.WriteString(_m.Website)
	builder.WriteString(", ")
	builder.WriteString("manager_name=")
	builder.WriteString(_m.ManagerName)
	builder.WriteString(", ")
	builder.WriteString("opening_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.OpeningHours))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("note_avg=")
	builder.WriteString(fmt.Sprintf("%v", _m.NoteAvg))
	builder.WriteString(", ")
	builder.WriteString("visits_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.VisitsCount))
	builder.WriteString(", ")
	builder.WriteString("latitude=")
	builder.WriteString(fmt.Sprintf("%v", _m.Latitude))
	builder.WriteString(", ")
	builder.WriteString("longitude=")
	builder.WriteString(fmt.Sprintf("%v", _m.Longitude))
	builder.WriteString(", ")
	builder.WriteString("google_place_id=")
	builder.WriteString(_m.GooglePlaceID)
	builder.WriteString(", ")
	builder.WriteString("ai_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiData))
	builder.WriteString(", ")
	if v := _m.AiEnrichedAt; v != nil {
		builder.WriteString("ai_enriched_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("ai_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiScore))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Prospects is a parsable slice of Prospect.
type Prospects []*Prospect
