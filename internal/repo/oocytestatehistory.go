// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocyte"
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocytestatehistory"
	"github.com/fertitrack/fertitrack_backend/internal/repo/user"
	"github.com/google/uuid"
)

// OocyteStateHistory is the model entity for the OocyteStateHistory schema.
type OocyteStateHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// OocyteID holds the value of the "oocyte_id" field.
	OocyteID uuid.UUID `json:"oocyte_id,omitempty"`
	// FromState holds the value of the "from_state" field.
	FromState string `json:"from_state,omitempty"`
	// ToState holds the value of the "to_state" field.
	ToState string `json:"to_state,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// ChangedByID holds the value of the "changed_by_id" field.
	ChangedByID *uuid.UUID `json:"changed_by_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OocyteStateHistoryQuery when eager-loading is set.
	Edges        OocyteStateHistoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OocyteStateHistoryEdges holds the relations/edges for other nodes in the graph.
type OocyteStateHistoryEdges struct {
	// Oocyte holds the value of the oocyte edge.
	Oocyte *Oocyte `json:"oocyte,omitempty"`
	// ChangedBy holds the value of the changed_by edge.
	ChangedBy *User `json:"changed_by,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// OocyteOrErr returns the Oocyte value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OocyteStateHistoryEdges) OocyteOrErr() (*Oocyte, error) {
	if e.Oocyte != nil {
		return e.Oocyte, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: oocyte.Label}
	}
	return nil, &NotLoadedError{edge: "oocyte"}
}

// ChangedByOrErr returns the ChangedBy value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OocyteStateHistoryEdges) ChangedByOrErr() (*User, error) {
	if e.ChangedBy != nil {
		return e.ChangedBy, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "changed_by"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OocyteStateHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case oocytestatehistory.FieldChangedByID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case oocytestatehistory.FieldFromState, oocytestatehistory.FieldToState, oocytestatehistory.FieldNotes:
			values[i] = new(sql.NullString)
		case oocytestatehistory.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case oocytestatehistory.FieldID, oocytestatehistory.FieldOocyteID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OocyteStateHistory fields.
func (_m *OocyteStateHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case oocytestatehistory.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case oocytestatehistory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case oocytestatehistory.FieldOocyteID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field oocyte_id", values[i])
			} else if value != nil {
				_m.OocyteID = *value
			}
		case oocytestatehistory.FieldFromState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_state", values[i])
			} else if value.Valid {
				_m.FromState = value.String
			}
		case oocytestatehistory.FieldToState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_state", values[i])
			} else if value.Valid {
				_m.ToState = value.String
			}
		case oocytestatehistory.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case oocytestatehistory.FieldChangedByID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field changed_by_id", values[i])
			} else if value.Valid {
				_m.ChangedByID = new(uuid.UUID)
				*_m.ChangedByID = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OocyteStateHistory.
// This includes values selected through modifiers, order, etc.
func (_m *OocyteStateHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOocyte queries the "oocyte" edge of the OocyteStateHistory entity.
func (_m *OocyteStateHistory) QueryOocyte() *OocyteQuery {
	return NewOocyteStateHistoryClient(_m.config).QueryOocyte(_m)
}

// QueryChangedBy queries the "changed_by" edge of the OocyteStateHistory entity.
func (_m *OocyteStateHistory) QueryChangedBy() *UserQuery {
	return NewOocyteStateHistoryClient(_m.config).QueryChangedBy(_m)
}

// Update returns a builder for updating this OocyteStateHistory.
// Note that you need to call OocyteStateHistory.Unwrap() before calling this method if this OocyteStateHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OocyteStateHistory) Update() *OocyteStateHistoryUpdateOne {
	return NewOocyteStateHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OocyteStateHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OocyteStateHistory) Unwrap() *OocyteStateHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: OocyteStateHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OocyteStateHistory) String() string {
	var builder strings.Builder
	builder.WriteString("OocyteStateHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("oocyte_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OocyteID))
	builder.WriteString(", ")
	builder.WriteString("from_state=")
	builder.WriteString(_m.FromState)
	builder.WriteString(", ")
	builder.WriteString("to_state=")
	builder.WriteString(_m.ToState)
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ChangedByID; v != nil {
		builder.WriteString("changed_by_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// OocyteStateHistories is a parsable slice of OocyteStateHistory.
type OocyteStateHistories []*OocyteStateHistory
