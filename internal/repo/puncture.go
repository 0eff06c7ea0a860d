// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fertitrack/fertitrack_backend/internal/repo/puncture"
	"github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	"github.com/fertitrack/fertitrack_backend/internal/repo/user"
	"github.com/google/uuid"
)

// Puncture is the model entity for the Puncture schema.
type Puncture struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// TreatmentID holds the value of the "treatment_id" field.
	TreatmentID uuid.UUID `json:"treatment_id,omitempty"`
	// FK → users.id (the lab operator who performed it)
	OperatorID *uuid.UUID `json:"operator_id,omitempty"`
	// Date holds the value of the "date" field.
	Date time.Time `json:"date,omitempty"`
	// OperatingRoom holds the value of the "operating_room" field.
	OperatingRoom string `json:"operating_room,omitempty"`
	// Complications holds the value of the "complications" field.
	Complications *string `json:"complications,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PunctureQuery when eager-loading is set.
	Edges        PunctureEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PunctureEdges holds the relations/edges for other nodes in the graph.
type PunctureEdges struct {
	// Treatment holds the value of the treatment edge.
	Treatment *Treatment `json:"treatment,omitempty"`
	// Operator holds the value of the operator edge.
	Operator *User `json:"operator,omitempty"`
	// Oocytes holds the value of the oocytes edge.
	Oocytes []*Oocyte `json:"oocytes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// TreatmentOrErr returns the Treatment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PunctureEdges) TreatmentOrErr() (*Treatment, error) {
	if e.Treatment != nil {
		return e.Treatment, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: treatment.Label}
	}
	return nil, &NotLoadedError{edge: "treatment"}
}

// OperatorOrErr returns the Operator value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PunctureEdges) OperatorOrErr() (*User, error) {
	if e.Operator != nil {
		return e.Operator, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "operator"}
}

// OocytesOrErr returns the Oocytes value or an error if the edge
// was not loaded in eager-loading.
func (e PunctureEdges) OocytesOrErr() ([]*Oocyte, error) {
	if e.loadedTypes[2] {
		return e.Oocytes, nil
	}
	return nil, &NotLoadedError{edge: "oocytes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Puncture) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case puncture.FieldOperatorID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case puncture.FieldOperatingRoom, puncture.FieldComplications:
			values[i] = new(sql.NullString)
		case puncture.FieldCreatedAt, puncture.FieldDate:
			values[i] = new(sql.NullTime)
		case puncture.FieldID, puncture.FieldTreatmentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Puncture fields.
func (_m *Puncture) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case puncture.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case puncture.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case puncture.FieldTreatmentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field treatment_id", values[i])
			} else if value != nil {
				_m.TreatmentID = *value
			}
		case puncture.FieldOperatorID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field operator_id", values[i])
			} else if value.Valid {
				_m.OperatorID = new(uuid.UUID)
				*_m.OperatorID = *value.S.(*uuid.UUID)
			}
		case puncture.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.Time
			}
		case puncture.FieldOperatingRoom:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operating_room", values[i])
			} else if value.Valid {
				_m.OperatingRoom = value.String
			}
		case puncture.FieldComplications:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field complications", values[i])
			} else if value.Valid {
				_m.Complications = new(string)
				*_m.Complications = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Puncture.
// This includes values selected through modifiers, order, etc.
func (_m *Puncture) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTreatment queries the "treatment" edge of the Puncture entity.
func (_m *Puncture) QueryTreatment() *TreatmentQuery {
	return NewPunctureClient(_m.config).QueryTreatment(_m)
}

// QueryOperator queries the "operator" edge of the Puncture entity.
func (_m *Puncture) QueryOperator() *UserQuery {
	return NewPunctureClient(_m.config).QueryOperator(_m)
}

// QueryOocytes queries the "oocytes" edge of the Puncture entity.
func (_m *Puncture) QueryOocytes() *OocyteQuery {
	return NewPunctureClient(_m.config).QueryOocytes(_m)
}

// Update returns a builder for updating this Puncture.
// Note that you need to call Puncture.Unwrap() before calling this method if this Puncture
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Puncture) Update() *PunctureUpdateOne {
	return NewPunctureClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Puncture entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Puncture) Unwrap() *Puncture {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Puncture is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Puncture) String() string {
	var builder strings.Builder
	builder.WriteString("Puncture(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("treatment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TreatmentID))
	builder.WriteString(", ")
	if v := _m.OperatorID; v != nil {
		builder.WriteString("operator_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("operating_room=")
	builder.WriteString(_m.OperatingRoom)
	builder.WriteString(", ")
	if v := _m.Complications; v != nil {
		builder.WriteString("complications=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Punctures is a parsable slice of Puncture.
type Punctures []*Puncture
