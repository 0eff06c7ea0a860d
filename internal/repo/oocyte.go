// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fertitrack/fertitrack_backend/internal/repo/embryo"
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocyte"
	"github.com/fertitrack/fertitrack_backend/internal/repo/puncture"
	"github.com/google/uuid"
)

// Oocyte is the model entity for the Oocyte schema.
type Oocyte struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// PunctureID holds the value of the "puncture_id" field.
	PunctureID uuid.UUID `json:"puncture_id,omitempty"`
	// Business-facing oocyte identifier
	OocyteCode string `json:"oocyte_code,omitempty"`
	// InitialState holds the value of the "initial_state" field.
	InitialState oocyte.InitialState `json:"initial_state,omitempty"`
	// CurrentState holds the value of the "current_state" field.
	CurrentState oocyte.CurrentState `json:"current_state,omitempty"`
	// MaturationTimeHours holds the value of the "maturation_time_hours" field.
	MaturationTimeHours *int `json:"maturation_time_hours,omitempty"`
	// DiscardReason holds the value of the "discard_reason" field.
	DiscardReason *string `json:"discard_reason,omitempty"`
	// NitrogenTube holds the value of the "nitrogen_tube" field.
	NitrogenTube *string `json:"nitrogen_tube,omitempty"`
	// RackNumber holds the value of the "rack_number" field.
	RackNumber *string `json:"rack_number,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OocyteQuery when eager-loading is set.
	Edges        OocyteEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OocyteEdges holds the relations/edges for other nodes in the graph.
type OocyteEdges struct {
	// Puncture holds the value of the puncture edge.
	Puncture *Puncture `json:"puncture,omitempty"`
	// StateHistory holds the value of the state_history edge.
	StateHistory []*OocyteStateHistory `json:"state_history,omitempty"`
	// Embryo holds the value of the embryo edge.
	Embryo *Embryo `json:"embryo,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// PunctureOrErr returns the Puncture value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OocyteEdges) PunctureOrErr() (*Puncture, error) {
	if e.Puncture != nil {
		return e.Puncture, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: puncture.Label}
	}
	return nil, &NotLoadedError{edge: "puncture"}
}

// StateHistoryOrErr returns the StateHistory value or an error if the edge
// was not loaded in eager-loading.
func (e OocyteEdges) StateHistoryOrErr() ([]*OocyteStateHistory, error) {
	if e.loadedTypes[1] {
		return e.StateHistory, nil
	}
	return nil, &NotLoadedError{edge: "state_history"}
}

// EmbryoOrErr returns the Embryo value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OocyteEdges) EmbryoOrErr() (*Embryo, error) {
	if e.Embryo != nil {
		return e.Embryo, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: embryo.Label}
	}
	return nil, &NotLoadedError{edge: "embryo"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Oocyte) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case oocyte.FieldMaturationTimeHours:
			values[i] = new(sql.NullInt64)
		case oocyte.FieldOocyteCode, oocyte.FieldInitialState, oocyte.FieldCurrentState, oocyte.FieldDiscardReason, oocyte.FieldNitrogenTube, oocyte.FieldRackNumber:
			values[i] = new(sql.NullString)
		case oocyte.FieldCreatedAt, oocyte.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case oocyte.FieldID, oocyte.FieldPunctureID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Oocyte fields.
func (_m *Oocyte) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case oocyte.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case oocyte.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case oocyte.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case oocyte.FieldPunctureID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field puncture_id", values[i])
			} else if value != nil {
				_m.PunctureID = *value
			}
		case oocyte.FieldOocyteCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field oocyte_code", values[i])
			} else if value.Valid {
				_m.OocyteCode = value.String
			}
		case oocyte.FieldInitialState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field initial_state", values[i])
			} else if value.Valid {
				_m.InitialState = oocyte.InitialState(value.String)
			}
		case oocyte.FieldCurrentState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_state", values[i])
			} else if value.Valid {
				_m.CurrentState = oocyte.CurrentState(value.String)
			}
		case oocyte.FieldMaturationTimeHours:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field maturation_time_hours", values[i])
			} else if value.Valid {
				_m.MaturationTimeHours = new(int)
				*_m.MaturationTimeHours = int(value.Int64)
			}
		case oocyte.FieldDiscardReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field discard_reason", values[i])
			} else if value.Valid {
				_m.DiscardReason = new(string)
				*_m.DiscardReason = value.String
			}
		case oocyte.FieldNitrogenTube:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nitrogen_tube", values[i])
			} else if value.Valid {
				_m.NitrogenTube = new(string)
				*_m.NitrogenTube = value.String
			}
		case oocyte.FieldRackNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rack_number", values[i])
			} else if value.Valid {
				_m.RackNumber = new(string)
				*_m.RackNumber = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Oocyte.
// This includes values selected through modifiers, order, etc.
func (_m *Oocyte) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPuncture queries the "puncture" edge of the Oocyte entity.
func (_m *Oocyte) QueryPuncture() *PunctureQuery {
	return NewOocyteClient(_m.config).QueryPuncture(_m)
}

// QueryStateHistory queries the "state_history" edge of the Oocyte entity.
func (_m *Oocyte) QueryStateHistory() *OocyteStateHistoryQuery {
	return NewOocyteClient(_m.config).QueryStateHistory(_m)
}

// QueryEmbryo queries the "embryo" edge of the Oocyte entity.
func (_m *Oocyte) QueryEmbryo() *EmbryoQuery {
	return NewOocyteClient(_m.config).QueryEmbryo(_m)
}

// Update returns a builder for updating this Oocyte.
// Note that you need to call Oocyte.Unwrap() before calling this method if this Oocyte
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Oocyte) Update() *OocyteUpdateOne {
	return NewOocyteClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Oocyte entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Oocyte) Unwrap() *Oocyte {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Oocyte is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Oocyte) String() string {
	var builder strings.Builder
	builder.WriteString("Oocyte(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("puncture_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PunctureID))
	builder.WriteString(", ")
	builder.WriteString("oocyte_code=")
	builder.WriteString(_m.OocyteCode)
	builder.WriteString(", ")
	builder.WriteString("initial_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.InitialState))
	builder.WriteString(", ")
	builder.WriteString("current_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentState))
	builder.WriteString(", ")
	if v := _m.MaturationTimeHours; v != nil {
		builder.WriteString("maturation_time_hours=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DiscardReason; v != nil {
		builder.WriteString("discard_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.NitrogenTube; v != nil {
		builder.WriteString("nitrogen_tube=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RackNumber; v != nil {
		builder.WriteString("rack_number=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Oocytes is a parsable slice of Oocyte.
type Oocytes []*Oocyte
