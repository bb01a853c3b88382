// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/horeca-prospection/backend/ent/prospect"
	"github.com/horeca-prospection/backend/ent/tour"
	"github.com/horeca-prospection/backend/ent/user"
	"github.com/horeca-prospection/backend/ent/visit"
)

// Visit is the model entity for the Visit schema.
type Visit struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// VisitedAt holds the value of the "visited_at" field.
	VisitedAt time.Time `json:"visited_at,omitempty"`
	// DurationMinutes holds the value of the "duration_minutes" field.
	DurationMinutes *int `json:"duration_minutes,omitempty"`
	// Objective holds the value of the "objective" field.
	Objective string `json:"objective,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// Visit rating (1-5)
	Score *int `json:"score,omitempty"`
	// SignedBy holds the value of the "signed_by" field.
	SignedBy string `json:"signed_by,omitempty"`
	// SignatureData holds the value of the "signature_data" field.
	SignatureData string `json:"signature_data,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VisitQuery when eager-loading is set.
	Edges           VisitEdges `json:"edges"`
	prospect_visits *uuid.UUID
	tour_visits     *uuid.UUID
	user_visits     *uuid.UUID
	selectValues    sql.SelectValues
}

// VisitEdges holds the relations/edges for other nodes in the graph.
type VisitEdges struct {
	// Prospect holds the value of the prospect edge.
	Prospect *Prospect `json:"prospect,omitempty"`
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Tour holds the value of the tour edge.
	Tour *Tour `json:"tour,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ProspectOrErr returns the Prospect value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VisitEdges) ProspectOrErr() (*Prospect, error) {
	if e.Prospect != nil {
		return e.Prospect, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: prospect.Label}
	}
	return nil, &NotLoadedError{edge: "prospect"}
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VisitEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// TourOrErr returns the Tour value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VisitEdges) TourOrErr() (*Tour, error) {
	if e.Tour != nil {
		return e.Tour, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: tour.Label}
	}
	return nil, &NotLoadedError{edge: "tour"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Visit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case visit.FieldDurationMinutes, visit.FieldScore:
			values[i] = new(sql.NullInt64)
		case visit.FieldObjective, visit.FieldSummary, visit.FieldSignedBy, visit.FieldSignatureData:
			values[i] = new(sql.NullString)
		case visit.FieldVisitedAt, visit.FieldCreatedAt, visit.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case visit.FieldID:
			values[i] = new(uuid.UUID)
		case visit.ForeignKeys[0]: // prospect_visits
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case visit.ForeignKeys[1]: // tour_visits
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case visit.ForeignKeys[2]: // user_visits
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Visit fields.
func (_m *Visit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case visit.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case visit.FieldVisitedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field visited_at", values[i])
			} else if value.Valid {
				_m.VisitedAt = value.Time
			}
		case visit.FieldDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_minutes", values[i])
			} else if value.Valid {
				_m.DurationMinutes = new(int)
				*_m.DurationMinutes = int(value.Int64)
			}
		case visit.FieldObjective:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field objective", values[i])
			} else if value.Valid {
				_m.Objective = value.String
			}
		case visit.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case visit.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = new(int)
				*_m.Score = int(value.Int64)
			}
		case visit.FieldSignedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signed_by", values[i])
			} else if value.Valid {
				_m.SignedBy = value.String
			}
		case visit.FieldSignatureData:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signature_data", values[i])
			} else if value.Valid {
				_m.SignatureData = value.String
			}
		case visit.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case visit.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case visit.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field prospect_visits", values[i])
			} else if value.Valid {
				_m.prospect_visits = new(uuid.UUID)
				*_m.prospect_visits = *value.S.(*uuid.UUID)
			}
		case visit.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field tour_visits", values[i])
			} else if value.Valid {
				_m.tour_visits = new(uuid.UUID)
				*_m.tour_visits = *value.S.(*uuid.UUID)
			}
		case visit.ForeignKeys[2]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field user_visits", values[i])
			} else if value.Valid {
				_m.user_visits = new(uuid.UUID)
				*_m.user_visits = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Visit.
// This includes values selected through modifiers, order, etc.
func (_m *Visit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProspect queries the "prospect" edge of the Visit entity.
func (_m *Visit) QueryProspect() *ProspectQuery {
	return NewVisitClient(_m.config).QueryProspect(_m)
}

// QueryUser queries the "user" edge of the Visit entity.
func (_m *Visit) QueryUser() *UserQuery {
	return NewVisitClient(_m.config).QueryUser(_m)
}

// QueryTour queries the "tour" edge of the Visit entity.
func (_m *Visit) QueryTour() *TourQuery {
	return NewVisitClient(_m.config).QueryTour(_m)
}

// Update returns a builder for updating this Visit.
// Note that you need to call Visit.Unwrap() before calling this method if this Visit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Visit) Update() *VisitUpdateOne {
	return NewVisitClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Visit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Visit) Unwrap() *Visit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Visit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Visit) String() string {
	var builder strings.Builder
	builder.WriteString("Visit(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("visited_at=")
	builder.WriteString(_m.VisitedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DurationMinutes; v != nil {
		builder.WriteString("duration_minutes=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("objective=")
	builder.WriteString(_m.Objective)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	if v := _m.Score; v != nil {
		builder.WriteString("score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("signed_by=")
	builder.WriteString(_m.SignedBy)
	builder.WriteString(", ")
	builder.WriteString("signature_data=")
	builder.WriteString(_m.SignatureData)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Visits is a parsable slice of Visit.
type Visits []*Visit
