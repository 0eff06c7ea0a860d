// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fertitrack/fertitrack_backend/internal/repo/medicalhistory"
	"github.com/fertitrack/fertitrack_backend/internal/repo/patient"
	"github.com/google/uuid"
)

// MedicalHistory is the model entity for the MedicalHistory schema.
type MedicalHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// PatientID holds the value of the "patient_id" field.
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// ClinicalBackground holds the value of the "clinical_background" field.
	ClinicalBackground *string `json:"clinical_background,omitempty"`
	// SurgicalBackground holds the value of the "surgical_background" field.
	SurgicalBackground *string `json:"surgical_background,omitempty"`
	// PersonalBackground holds the value of the "personal_background" field.
	PersonalBackground *string `json:"personal_background,omitempty"`
	// FamilyBackground holds the value of the "family_background" field.
	FamilyBackground *string `json:"family_background,omitempty"`
	// GynecologicalBackground holds the value of the "gynecological_background" field.
	GynecologicalBackground *string `json:"gynecological_background,omitempty"`
	// PhysicalExam holds the value of the "physical_exam" field.
	PhysicalExam *string `json:"physical_exam,omitempty"`
	// Phenotype holds the value of the "phenotype" field.
	Phenotype *string `json:"phenotype,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MedicalHistoryQuery when eager-loading is set.
	Edges        MedicalHistoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MedicalHistoryEdges holds the relations/edges for other nodes in the graph.
type MedicalHistoryEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MedicalHistoryEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MedicalHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case medicalhistory.FieldClinicalBackground, medicalhistory.FieldSurgicalBackground, medicalhistory.FieldPersonalBackground, medicalhistory.FieldFamilyBackground, medicalhistory.FieldGynecologicalBackground, medicalhistory.FieldPhysicalExam, medicalhistory.FieldPhenotype:
			values[i] = new(sql.NullString)
		case medicalhistory.FieldCreatedAt, medicalhistory.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case medicalhistory.FieldID, medicalhistory.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MedicalHistory fields.
func (_m *MedicalHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case medicalhistory.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case medicalhistory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case medicalhistory.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case medicalhistory.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case medicalhistory.FieldClinicalBackground:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field clinical_background", values[i])
			} else if value.Valid {
				_m.ClinicalBackground = new(string)
				*_m.ClinicalBackground = value.String
			}
		case medicalhistory.FieldSurgicalBackground:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field surgical_background", values[i])
			} else if value.Valid {
				_m.SurgicalBackground = new(string)
				*_m.SurgicalBackground = value.String
			}
		case medicalhistory.FieldPersonalBackground:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field personal_background", values[i])
			} else if value.Valid {
				_m.PersonalBackground = new(string)
				*_m.PersonalBackground = value.String
			}
		case medicalhistory.FieldFamilyBackground:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field family_background", values[i])
			} else if value.Valid {
				_m.FamilyBackground = new(string)
				*_m.FamilyBackground = value.String
			}
		case medicalhistory.FieldGynecologicalBackground:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gynecological_background", values[i])
			} else if value.Valid {
				_m.GynecologicalBackground = new(string)
				*_m.GynecologicalBackground = value.String
			}
		case medicalhistory.FieldPhysicalExam:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field physical_exam", values[i])
			} else if value.Valid {
				_m.PhysicalExam = new(string)
				*_m.PhysicalExam = value.String
			}
		case medicalhistory.FieldPhenotype:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phenotype", values[i])
			} else if value.Valid {
				_m.Phenotype = new(string)
				*_m.Phenotype = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MedicalHistory.
// This includes values selected through modifiers, order, etc.
func (_m *MedicalHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the MedicalHistory entity.
func (_m *MedicalHistory) QueryPatient() *PatientQuery {
	return NewMedicalHistoryClient(_m.config).QueryPatient(_m)
}

// Update returns a builder for updating this MedicalHistory.
// Note that you need to call MedicalHistory.Unwrap() before calling this method if this MedicalHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MedicalHistory) Update() *MedicalHistoryUpdateOne {
	return NewMedicalHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MedicalHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MedicalHistory) Unwrap() *MedicalHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: MedicalHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MedicalHistory) String() string {
	var builder strings.Builder
	builder.WriteString("MedicalHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	if v := _m.ClinicalBackground; v != nil {
		builder.WriteString("clinical_background=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SurgicalBackground; v != nil {
		builder.WriteString("surgical_background=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PersonalBackground; v != nil {
		builder.WriteString("personal_background=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FamilyBackground; v != nil {
		builder.WriteString("family_background=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.GynecologicalBackground; v != nil {
		builder.WriteString("gynecological_background=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PhysicalExam; v != nil {
		builder.WriteString("physical_exam=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Phenotype; v != nil {
		builder.WriteString("phenotype=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// MedicalHistories is a parsable slice of MedicalHistory.
type MedicalHistories []*MedicalHistory
