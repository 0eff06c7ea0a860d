// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fertitrack/fertitrack_backend/internal/repo/embryo"
	"github.com/fertitrack/fertitrack_backend/internal/repo/embryotransfer"
	"github.com/google/uuid"
)

// EmbryoTransfer is the model entity for the EmbryoTransfer schema.
type EmbryoTransfer struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// EmbryoID holds the value of the "embryo_id" field.
	EmbryoID uuid.UUID `json:"embryo_id,omitempty"`
	// ScheduledDate holds the value of the "scheduled_date" field.
	ScheduledDate time.Time `json:"scheduled_date,omitempty"`
	// PerformedDate holds the value of the "performed_date" field.
	PerformedDate *time.Time `json:"performed_date,omitempty"`
	// BetaPositive holds the value of the "beta_positive" field.
	BetaPositive *bool `json:"beta_positive,omitempty"`
	// GestationalSac holds the value of the "gestational_sac" field.
	GestationalSac *bool `json:"gestational_sac,omitempty"`
	// ClinicalPregnancy holds the value of the "clinical_pregnancy" field.
	ClinicalPregnancy *bool `json:"clinical_pregnancy,omitempty"`
	// LiveBirth holds the value of the "live_birth" field.
	LiveBirth *bool `json:"live_birth,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EmbryoTransferQuery when eager-loading is set.
	Edges        EmbryoTransferEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EmbryoTransferEdges holds the relations/edges for other nodes in the graph.
type EmbryoTransferEdges struct {
	// Embryo holds the value of the embryo edge.
	Embryo *Embryo `json:"embryo,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EmbryoOrErr returns the Embryo value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EmbryoTransferEdges) EmbryoOrErr() (*Embryo, error) {
	if e.Embryo != nil {
		return e.Embryo, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: embryo.Label}
	}
	return nil, &NotLoadedError{edge: "embryo"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EmbryoTransfer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case embryotransfer.FieldBetaPositive, embryotransfer.FieldGestationalSac, embryotransfer.FieldClinicalPregnancy, embryotransfer.FieldLiveBirth:
			values[i] = new(sql.NullBool)
		case embryotransfer.FieldNotes:
			values[i] = new(sql.NullString)
		case embryotransfer.FieldCreatedAt, embryotransfer.FieldUpdatedAt, embryotransfer.FieldScheduledDate, embryotransfer.FieldPerformedDate:
			values[i] = new(sql.NullTime)
		case embryotransfer.FieldID, embryotransfer.FieldEmbryoID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EmbryoTransfer fields.
func (_m *EmbryoTransfer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case embryotransfer.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case embryotransfer.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case embryotransfer.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case embryotransfer.FieldEmbryoID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field embryo_id", values[i])
			} else if value != nil {
				_m.EmbryoID = *value
			}
		case embryotransfer.FieldScheduledDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_date", values[i])
			} else if value.Valid {
				_m.ScheduledDate = value.Time
			}
		case embryotransfer.FieldPerformedDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field performed_date", values[i])
			} else if value.Valid {
				_m.PerformedDate = new(time.Time)
				*_m.PerformedDate = value.Time
			}
		case embryotransfer.FieldBetaPositive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field beta_positive", values[i])
			} else if value.Valid {
				_m.BetaPositive = new(bool)
				*_m.BetaPositive = value.Bool
			}
		case embryotransfer.FieldGestationalSac:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field gestational_sac", values[i])
			} else if value.Valid {
				_m.GestationalSac = new(bool)
				*_m.GestationalSac = value.Bool
			}
		case embryotransfer.FieldClinicalPregnancy:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field clinical_pregnancy", values[i])
			} else if value.Valid {
				_m.ClinicalPregnancy = new(bool)
				*_m.ClinicalPregnancy = value.Bool
			}
		case embryotransfer.FieldLiveBirth:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field live_birth", values[i])
			} else if value.Valid {
				_m.LiveBirth = new(bool)
				*_m.LiveBirth = value.Bool
			}
		case embryotransfer.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EmbryoTransfer.
// This includes values selected through modifiers, order, etc.
func (_m *EmbryoTransfer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEmbryo queries the "embryo" edge of the EmbryoTransfer entity.
func (_m *EmbryoTransfer) QueryEmbryo() *EmbryoQuery {
	return NewEmbryoTransferClient(_m.config).QueryEmbryo(_m)
}

// Update returns a builder for updating this EmbryoTransfer.
// Note that you need to call EmbryoTransfer.Unwrap() before calling this method if this EmbryoTransfer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EmbryoTransfer) Update() *EmbryoTransferUpdateOne {
	return NewEmbryoTransferClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EmbryoTransfer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EmbryoTransfer) Unwrap() *EmbryoTransfer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: EmbryoTransfer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EmbryoTransfer) String() string {
	var builder strings.Builder
	builder.WriteString("EmbryoTransfer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("embryo_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmbryoID))
	builder.WriteString(", ")
	builder.WriteString("scheduled_date=")
	builder.WriteString(_m.ScheduledDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.PerformedDate; v != nil {
		builder.WriteString("performed_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.BetaPositive; v != nil {
		builder.WriteString("beta_positive=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.GestationalSac; v != nil {
		builder.WriteString("gestational_sac=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ClinicalPregnancy; v != nil {
		builder.WriteString("clinical_pregnancy=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LiveBirth; v != nil {
		builder.WriteString("live_birth=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// EmbryoTransfers is a parsable slice of EmbryoTransfer.
type EmbryoTransfers []*EmbryoTransfer
