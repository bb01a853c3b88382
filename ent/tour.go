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
	"github.com/horeca-prospection/backend/ent/tour"
	"github.com/horeca-prospection/backend/ent/user"
)

// Tour is the model entity for the Tour schema.
type Tour struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Date holds the value of the "date" field.
	Date time.Time `json:"date,omitempty"`
	// Status holds the value of the "status" field.
	Status tour.Status `json:"status,omitempty"`
	// TotalDistanceKm holds the value of the "total_distance_km" field.
	TotalDistanceKm *float64 `json:"total_distance_km,omitempty"`
	// TotalDurationMinutes holds the value of the "total_duration_minutes" field.
	TotalDurationMinutes *int `json:"total_duration_minutes,omitempty"`
	// Raw optimized-route payload from the maps provider
	RouteData map[string]interface{} `json:"route_data,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TourQuery when eager-loading is set.
	Edges         TourEdges `json:"edges"`
	company_tours *uuid.UUID
	user_tours    *uuid.UUID
	selectValues  sql.SelectValues
}

// TourEdges holds the relations/edges for other nodes in the graph.
type TourEdges struct {
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Steps holds the value of the steps edge.
	Steps []*TourStep `json:"steps,omitempty"`
	// Visits holds the value of the visits edge.
	Visits []*Visit `json:"visits,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TourEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TourEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e TourEdges) StepsOrErr() ([]*TourStep, error) {
	if e.loadedTypes[2] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// VisitsOrErr returns the Visits value or an error if the edge
// was not loaded in eager-loading.
func (e TourEdges) VisitsOrErr() ([]*Visit, error) {
	if e.loadedTypes[3] {
		return e.Visits, nil
	}
	return nil, &NotLoadedError{edge: "visits"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Tour) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tour.FieldRouteData:
			values[i] = new([]byte)
		case tour.FieldTotalDistanceKm:
			values[i] = new(sql.NullFloat64)
		case tour.FieldTotalDurationMinutes:
			values[i] = new(sql.NullInt64)
		case tour.FieldName, tour.FieldStatus:
			values[i] = new(sql.NullString)
		case tour.FieldDate, tour.FieldCreatedAt, tour.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case tour.FieldID:
			values[i] = new(uuid.UUID)
		case tour.ForeignKeys[0]: // company_tours
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case tour.ForeignKeys[1]: // user_tours
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Tour fields.
func (_m *Tour) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tour.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case tour.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case tour.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.Time
			}
		case tour.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = tour.Status(value.String)
			}
		case tour.FieldTotalDistanceKm:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_distance_km", values[i])
			} else if value.Valid {
				_m.TotalDistanceKm = new(float64)
				*_m.TotalDistanceKm = value.Float64
			}
		case tour.FieldTotalDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_duration_minutes", values[i])
			} else if value.Valid {
				_m.TotalDurationMinutes = new(int)
				*_m.TotalDurationMinutes = int(value.Int64)
			}
		case tour.FieldRouteData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field route_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RouteData); err != nil {
					return fmt.Errorf("unmarshal field route_data: %w", err)
				}
			}
		case tour.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tour.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case tour.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field company_tours", values[i])
			} else if value.Valid {
				_m.company_tours = new(uuid.UUID)
				*_m.company_tours = *value.S.(*uuid.UUID)
			}
		case tour.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field user_tours", values[i])
			} else if value.Valid {
				_m.user_tours = new(uuid.UUID)
				*_m.user_tours = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Tour.
// This includes values selected through modifiers, order, etc.
func (_m *Tour) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompany queries the "company" edge of the Tour entity.
func (_m *Tour) QueryCompany() *CompanyQuery {
	return NewTourClient(_m.config).QueryCompany(_m)
}

// QueryUser queries the "user" edge of the Tour entity.
func (_m *Tour) QueryUser() *UserQuery {
	return NewTourClient(_m.config).QueryUser(_m)
}

// QuerySteps queries the "steps" edge of the Tour entity.
func (_m *Tour) QuerySteps() *TourStepQuery {
	return NewTourClient(_m.config).QuerySteps(_m)
}

// QueryVisits queries the "visits" edge of the Tour entity.
func (_m *Tour) QueryVisits() *VisitQuery {
	return NewTourClient(_m.config).QueryVisits(_m)
}

// Update returns a builder for updating this Tour.
// Note that you need to call Tour.Unwrap() before calling this method if this Tour
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Tour) Update() *TourUpdateOne {
	return NewTourClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Tour entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Tour) Unwrap() *Tour {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Tour is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Tour) String() string {
	var builder strings.Builder
	builder.WriteString("Tour(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.TotalDistanceKm; v != nil {
		builder.WriteString("total_distance_km=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalDurationMinutes; v != nil {
		builder.WriteString("total_duration_minutes=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("route_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.RouteData))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Tours is a parsable slice of Tour.
type Tours []*Tour
