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
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocyte"
	"github.com/google/uuid"
)

// Embryo is the model entity for the Embryo schema.
type Embryo struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// OocyteID holds the value of the "oocyte_id" field.
	OocyteID uuid.UUID `json:"oocyte_id,omitempty"`
	// Business-facing embryo identifier
	EmbryoCode string `json:"embryo_code,omitempty"`
	// FertilizationTechnique holds the value of the "fertilization_technique" field.
	FertilizationTechnique embryo.FertilizationTechnique `json:"fertilization_technique,omitempty"`
	// SpermSource holds the value of the "sperm_source" field.
	SpermSource embryo.SpermSource `json:"sperm_source,omitempty"`
	// Quality holds the value of the "quality" field.
	Quality int `json:"quality,omitempty"`
	// CurrentState holds the value of the "current_state" field.
	CurrentState embryo.CurrentState `json:"current_state,omitempty"`
	// PgtPerformed holds the value of the "pgt_performed" field.
	PgtPerformed bool `json:"pgt_performed,omitempty"`
	// PgtResult holds the value of the "pgt_result" field.
	PgtResult *bool `json:"pgt_result,omitempty"`
	// NitrogenTube holds the value of the "nitrogen_tube" field.
	NitrogenTube *string `json:"nitrogen_tube,omitempty"`
	// RackNumber holds the value of the "rack_number" field.
	RackNumber *string `json:"rack_number,omitempty"`
	// DiscardReason holds the value of the "discard_reason" field.
	DiscardReason *string `json:"discard_reason,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EmbryoQuery when eager-loading is set.
	Edges        EmbryoEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EmbryoEdges holds the relations/edges for other nodes in the graph.
type EmbryoEdges struct {
	// Oocyte holds the value of the oocyte edge.
	Oocyte *Oocyte `json:"oocyte,omitempty"`
	// Transfer holds the value of the transfer edge.
	Transfer *EmbryoTransfer `json:"transfer,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// OocyteOrErr returns the Oocyte value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EmbryoEdges) OocyteOrErr() (*Oocyte, error) {
	if e.Oocyte != nil {
		return e.Oocyte, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: oocyte.Label}
	}
	return nil, &NotLoadedError{edge: "oocyte"}
}

// TransferOrErr returns the Transfer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EmbryoEdges) TransferOrErr() (*EmbryoTransfer, error) {
	if e.Transfer != nil {
		return e.Transfer, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: embryotransfer.Label}
	}
	return nil, &NotLoadedError{edge: "transfer"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Embryo) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case embryo.FieldPgtPerformed, embryo.FieldPgtResult:
			values[i] = new(sql.NullBool)
		case embryo.FieldQuality:
			values[i] = new(sql.NullInt64)
		case embryo.FieldEmbryoCode, embryo.FieldFertilizationTechnique, embryo.FieldSpermSource, embryo.FieldCurrentState, embryo.FieldNitrogenTube, embryo.FieldRackNumber, embryo.FieldDiscardReason:
			values[i] = new(sql.NullString)
		case embryo.FieldCreatedAt, embryo.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case embryo.FieldID, embryo.FieldOocyteID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Embryo fields.
func (_m *Embryo) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case embryo.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case embryo.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case embryo.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case embryo.FieldOocyteID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field oocyte_id", values[i])
			} else if value != nil {
				_m.OocyteID = *value
			}
		case embryo.FieldEmbryoCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field embryo_code", values[i])
			} else if value.Valid {
				_m.EmbryoCode = value.String
			}
		case embryo.FieldFertilizationTechnique:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fertilization_technique", values[i])
			} else if value.Valid {
				_m.FertilizationTechnique = embryo.FertilizationTechnique(value.String)
			}
		case embryo.FieldSpermSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sperm_source", values[i])
			} else if value.Valid {
				_m.SpermSource = embryo.SpermSource(value.String)
			}
		case embryo.FieldQuality:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quality", values[i])
			} else if value.Valid {
				_m.Quality = int(value.Int64)
			}
		case embryo.FieldCurrentState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_state", values[i])
			} else if value.Valid {
				_m.CurrentState = embryo.CurrentState(value.String)
			}
		case embryo.FieldPgtPerformed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field pgt_performed", values[i])
			} else if value.Valid {
				_m.PgtPerformed = value.Bool
			}
		case embryo.FieldPgtResult:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field pgt_result", values[i])
			} else if value.Valid {
				_m.PgtResult = new(bool)
				*_m.PgtResult = value.Bool
			}
		case embryo.FieldNitrogenTube:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nitrogen_tube", values[i])
			} else if value.Valid {
				_m.NitrogenTube = new(string)
				*_m.NitrogenTube = value.String
			}
		case embryo.FieldRackNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rack_number", values[i])
			} else if value.Valid {
				_m.RackNumber = new(string)
				*_m.RackNumber = value.String
			}
		case embryo.FieldDiscardReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field discard_reason", values[i])
			} else if value.Valid {
				_m.DiscardReason = new(string)
				*_m.DiscardReason = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Embryo.
// This includes values selected through modifiers, order, etc.
func (_m *Embryo) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOocyte queries the "oocyte" edge of the Embryo entity.
func (_m *Embryo) QueryOocyte() *OocyteQuery {
	return NewEmbryoClient(_m.config).QueryOocyte(_m)
}

// QueryTransfer queries the "transfer" edge of the Embryo entity.
func (_m *Embryo) QueryTransfer() *EmbryoTransferQuery {
	return NewEmbryoClient(_m.config).QueryTransfer(_m)
}

// Update returns a builder for updating this Embryo.
// Note that you need to call Embryo.Unwrap() before calling this method if this Embryo
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Embryo) Update() *EmbryoUpdateOne {
	return NewEmbryoClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Embryo entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Embryo) Unwrap() *Embryo {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Embryo is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Embryo) String() string {
	var builder strings.Builder
	builder.WriteString("Embryo(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("oocyte_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OocyteID))
	builder.WriteString(", ")
	builder.WriteString("embryo_code=")
	builder.WriteString(_m.EmbryoCode)
	builder.WriteString(", ")
	builder.WriteString("fertilization_technique=")
	builder.WriteString(fmt.Sprintf("%v", _m.FertilizationTechnique))
	builder.WriteString(", ")
	builder.WriteString("sperm_source=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpermSource))
	builder.WriteString(", ")
	builder.WriteString("quality=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quality))
	builder.WriteString(", ")
	builder.WriteString("current_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentState))
	builder.WriteString(", ")
	builder.WriteString("pgt_performed=")
	builder.WriteString(fmt.Sprintf("%v", _m.PgtPerformed))
	builder.WriteString(", ")
	if v := _m.PgtResult; v != nil {
		builder.WriteString("pgt_result=")
		builder.WriteString(fmt.Sprintf("%v", *v))
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
	builder.WriteString(", ")
	if v := _m.DiscardReason; v != nil {
		builder.WriteString("discard_reason=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Embryos is a parsable slice of Embryo.
type Embryos []*Embryo
