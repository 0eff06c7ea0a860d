// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fertitrack/fertitrack_backend/internal/repo/medicalorder"
	"github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	"github.com/google/uuid"
)

// MedicalOrder is the model entity for the MedicalOrder schema.
type MedicalOrder struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// TreatmentID holds the value of the "treatment_id" field.
	TreatmentID uuid.UUID `json:"treatment_id,omitempty"`
	// OrderType holds the value of the "order_type" field.
	OrderType string `json:"order_type,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MedicalOrderQuery when eager-loading is set.
	Edges        MedicalOrderEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MedicalOrderEdges holds the relations/edges for other nodes in the graph.
type MedicalOrderEdges struct {
	// Treatment holds the value of the treatment edge.
	Treatment *Treatment `json:"treatment,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TreatmentOrErr returns the Treatment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MedicalOrderEdges) TreatmentOrErr() (*Treatment, error) {
	if e.Treatment != nil {
		return e.Treatment, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: treatment.Label}
	}
	return nil, &NotLoadedError{edge: "treatment"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MedicalOrder) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case medicalorder.FieldOrderType, medicalorder.FieldDescription:
			values[i] = new(sql.NullString)
		case medicalorder.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case medicalorder.FieldID, medicalorder.FieldTreatmentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MedicalOrder fields.
func (_m *MedicalOrder) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case medicalorder.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case medicalorder.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case medicalorder.FieldTreatmentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field treatment_id", values[i])
			} else if value != nil {
				_m.TreatmentID = *value
			}
		case medicalorder.FieldOrderType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field order_type", values[i])
			} else if value.Valid {
				_m.OrderType = value.String
			}
		case medicalorder.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MedicalOrder.
// This includes values selected through modifiers, order, etc.
func (_m *MedicalOrder) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTreatment queries the "treatment" edge of the MedicalOrder entity.
func (_m *MedicalOrder) QueryTreatment() *TreatmentQuery {
	return NewMedicalOrderClient(_m.config).QueryTreatment(_m)
}

// Update returns a builder for updating this MedicalOrder.
// Note that you need to call MedicalOrder.Unwrap() before calling this method if this MedicalOrder
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MedicalOrder) Update() *MedicalOrderUpdateOne {
	return NewMedicalOrderClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MedicalOrder entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MedicalOrder) Unwrap() *MedicalOrder {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: MedicalOrder is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MedicalOrder) String() string {
	var builder strings.Builder
	builder.WriteString("MedicalOrder(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("treatment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TreatmentID))
	builder.WriteString(", ")
	builder.WriteString("order_type=")
	builder.WriteString(_m.OrderType)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteByte(')')
	return builder.String()
}

// MedicalOrders is a parsable slice of MedicalOrder.
type MedicalOrders []*MedicalOrder
