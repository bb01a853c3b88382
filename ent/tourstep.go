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
	"github.com/horeca-prospection/backend/ent/tourstep"
)

// TourStep is the model entity for the TourStep schema.
type TourStep struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// 1-based position within the tour, kept dense
	StepOrder int `json:"step_order,omitempty"`
	// Status holds the value of the "status" field.
	Status tourstep.Status `json:"status,omitempty"`
	// Eta holds the value of the "eta" field.
	Eta *time.Time `json:"eta,omitempty"`
	// DistanceFromPreviousKm holds the value of the "distance_from_previous_km" field.
	DistanceFromPreviousKm *float64 `json:"distance_from_previous_km,omitempty"`
	// DurationFromPreviousMinutes holds the value of the "duration_from_previous_minutes" field.
	DurationFromPreviousMinutes *int `json:"duration_from_previous_minutes,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TourStepQuery when eager-loading is set.
	Edges          TourStepEdges `json:"edges"`
	prospect_steps *uuid.UUID
	tour_steps     *uuid.UUID
	selectValues   sql.SelectValues
}

// TourStepEdges holds the relations/edges for other nodes in the graph.
type TourStepEdges struct {
	// Tour holds the value of the tour edge.
	Tour *Tour `json:"tour,omitempty"`
	// Prospect holds the value of the prospect edge.
	Prospect *Prospect `json:"prospect,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TourOrErr returns the Tour value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TourStepEdges) TourOrErr() (*Tour, error) {
	if e.Tour != nil {
		return e.Tour, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tour.Label}
	}
	return nil, &NotLoadedError{edge: "tour"}
}

// ProspectOrErr returns the Prospect value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TourStepEdges) ProspectOrErr() (*Prospect, error) {
	if e.Prospect != nil {
		return e.Prospect, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: prospect.Label}
	}
	return nil, &NotLoadedError{edge: "prospect"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TourStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tourstep.FieldDistanceFromPreviousKm:
			values[i] = new(sql.NullFloat64)
		case tourstep.FieldStepOrder, tourstep.FieldDurationFromPreviousMinutes:
			values[i] = new(sql.NullInt64)
		case tourstep.FieldStatus:
			values[i] = new(sql.NullString)
		case tourstep.FieldEta, tourstep.FieldCompletedAt, tourstep.FieldCreatedAt, tourstep.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case tourstep.FieldID:
			values[i] = new(uuid.UUID)
		case tourstep.ForeignKeys[0]: // prospect_steps
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case tourstep.ForeignKeys[1]: // tour_steps
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TourStep fields.
func (_m *TourStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tourstep.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case tourstep.FieldStepOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_order", values[i])
			} else if value.Valid {
				_m.StepOrder = int(value.Int64)
			}
		case tourstep.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = tourstep.Status(value.String)
			}
		case tourstep.FieldEta:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field eta", values[i])
			} else if value.Valid {
				_m.Eta = new(time.Time)
				*_m.Eta = value.Time
			}
		case tourstep.FieldDistanceFromPreviousKm:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field distance_from_previous_km", values[i])
			} else if value.Valid {
				_m.DistanceFromPreviousKm = new(float64)
				*_m.DistanceFromPreviousKm = value.Float64
			}
		case tourstep.FieldDurationFromPreviousMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_from_previous_minutes", values[i])
			} else if value.Valid {
				_m.DurationFromPreviousMinutes = new(int)
				*_m.DurationFromPreviousMinutes = int(value.Int64)
			}
		case tourstep.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case tourstep.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tourstep.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case tourstep.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field prospect_steps", values[i])
			} else if value.Valid {
				_m.prospect_steps = new(uuid.UUID)
				*_m.prospect_steps = *value.S.(*uuid.UUID)
			}
		case tourstep.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field tour_steps", values[i])
			} else if value.Valid {
				_m.tour_steps = new(uuid.UUID)
				*_m.tour_steps = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TourStep.
// This includes values selected through modifiers, order, etc.
func (_m *TourStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTour queries the "tour" edge of the TourStep entity.
func (_m *TourStep) QueryTour() *TourQuery {
	return NewTourStepClient(_m.config).QueryTour(_m)
}

// QueryProspect queries the "prospect" edge of the TourStep entity.
func (_m *TourStep) QueryProspect() *ProspectQuery {
	return NewTourStepClient(_m.config).QueryProspect(_m)
}

// Update returns a builder for updating this TourStep.
// Note that you need to call TourStep.Unwrap() before calling this method if this TourStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TourStep) Update() *TourStepUpdateOne {
	return NewTourStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TourStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TourStep) Unwrap() *TourStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TourStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TourStep) String() string {
	var builder strings.Builder
	builder.WriteString("TourStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("step_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepOrder))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.Eta; v != nil {
		builder.WriteString("eta=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DistanceFromPreviousKm; v != nil {
		builder.WriteString("distance_from_previous_km=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DurationFromPreviousMinutes; v != nil {
		builder.WriteString("duration_from_previous_minutes=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TourSteps is a parsable slice of TourStep.
type TourSteps []*TourStep
