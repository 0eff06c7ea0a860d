// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fertitrack/fertitrack_backend/internal/repo/monitoringday"
	"github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	"github.com/google/uuid"
)

// MonitoringDay is the model entity for the MonitoringDay schema.
type MonitoringDay struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// TreatmentID holds the value of the "treatment_id" field.
	TreatmentID uuid.UUID `json:"treatment_id,omitempty"`
	// Date holds the value of the "date" field.
	Date time.Time `json:"date,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// Completed holds the value of the "completed" field.
	Completed bool `json:"completed,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MonitoringDayQuery when eager-loading is set.
	Edges        MonitoringDayEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MonitoringDayEdges holds the relations/edges for other nodes in the graph.
type MonitoringDayEdges struct {
	// Treatment holds the value of the treatment edge.
	Treatment *Treatment `json:"treatment,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TreatmentOrErr returns the Treatment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MonitoringDayEdges) TreatmentOrErr() (*Treatment, error) {
	if e.Treatment != nil {
		return e.Treatment, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: treatment.Label}
	}
	return nil, &NotLoadedError{edge: "treatment"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MonitoringDay) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case monitoringday.FieldCompleted:
			values[i] = new(sql.NullBool)
		case monitoringday.FieldNotes:
			values[i] = new(sql.NullString)
		case monitoringday.FieldCreatedAt, monitoringday.FieldUpdatedAt, monitoringday.FieldDate:
			values[i] = new(sql.NullTime)
		case monitoringday.FieldID, monitoringday.FieldTreatmentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MonitoringDay fields.
func (_m *MonitoringDay) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case monitoringday.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case monitoringday.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case monitoringday.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case monitoringday.FieldTreatmentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field treatment_id", values[i])
			} else if value != nil {
				_m.TreatmentID = *value
			}
		case monitoringday.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.Time
			}
		case monitoringday.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case monitoringday.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MonitoringDay.
// This includes values selected through modifiers, order, etc.
func (_m *MonitoringDay) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTreatment queries the "treatment" edge of the MonitoringDay entity.
func (_m *MonitoringDay) QueryTreatment() *TreatmentQuery {
	return NewMonitoringDayClient(_m.config).QueryTreatment(_m)
}

// Update returns a builder for updating this MonitoringDay.
// Note that you need to call MonitoringDay.Unwrap() before calling this method if this MonitoringDay
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MonitoringDay) Update() *MonitoringDayUpdateOne {
	return NewMonitoringDayClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MonitoringDay entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MonitoringDay) Unwrap() *MonitoringDay {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: MonitoringDay is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MonitoringDay) String() string {
	var builder strings.Builder
	builder.WriteString("MonitoringDay(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("treatment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TreatmentID))
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteByte(')')
	return builder.String()
}

// MonitoringDays is a parsable slice of MonitoringDay.
type MonitoringDays []*MonitoringDay
