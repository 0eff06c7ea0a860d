// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fertitrack/fertitrack_backend/internal/repo/patient"
	"github.com/fertitrack/fertitrack_backend/internal/repo/puncture"
	"github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	"github.com/fertitrack/fertitrack_backend/internal/repo/user"
	"github.com/google/uuid"
)

// Treatment is the model entity for the Treatment schema.
type Treatment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// PatientID holds the value of the "patient_id" field.
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// FK → users.id (role DOCTOR or MEDICAL_DIRECTOR)
	DoctorID uuid.UUID `json:"doctor_id,omitempty"`
	// Objective holds the value of the "objective" field.
	Objective treatment.Objective `json:"objective,omitempty"`
	// Status holds the value of the "status" field.
	Status treatment.Status `json:"status,omitempty"`
	// StimulationProtocol holds the value of the "stimulation_protocol" field.
	StimulationProtocol *string `json:"stimulation_protocol,omitempty"`
	// MedicationType holds the value of the "medication_type" field.
	MedicationType *string `json:"medication_type,omitempty"`
	// MedicationDose holds the value of the "medication_dose" field.
	MedicationDose *string `json:"medication_dose,omitempty"`
	// MedicationDuration holds the value of the "medication_duration" field.
	MedicationDuration *string `json:"medication_duration,omitempty"`
	// OocytesViable holds the value of the "oocytes_viable" field.
	OocytesViable *bool `json:"oocytes_viable,omitempty"`
	// SpermViable holds the value of the "sperm_viable" field.
	SpermViable *bool `json:"sperm_viable,omitempty"`
	// Object storage key of the signed consent document
	ConsentDocumentKey *string `json:"consent_document_key,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TreatmentQuery when eager-loading is set.
	Edges        TreatmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TreatmentEdges holds the relations/edges for other nodes in the graph.
type TreatmentEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// Doctor holds the value of the doctor edge.
	Doctor *User `json:"doctor,omitempty"`
	// MonitoringDays holds the value of the monitoring_days edge.
	MonitoringDays []*MonitoringDay `json:"monitoring_days,omitempty"`
	// StudyResults holds the value of the study_results edge.
	StudyResults []*StudyResult `json:"study_results,omitempty"`
	// MedicalOrders holds the value of the medical_orders edge.
	MedicalOrders []*MedicalOrder `json:"medical_orders,omitempty"`
	// Puncture holds the value of the puncture edge.
	Puncture *Puncture `json:"puncture,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TreatmentEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// DoctorOrErr returns the Doctor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TreatmentEdges) DoctorOrErr() (*User, error) {
	if e.Doctor != nil {
		return e.Doctor, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "doctor"}
}

// MonitoringDaysOrErr returns the MonitoringDays value or an error if the edge
// was not loaded in eager-loading.
func (e TreatmentEdges) MonitoringDaysOrErr() ([]*MonitoringDay, error) {
	if e.loadedTypes[2] {
		return e.MonitoringDays, nil
	}
	return nil, &NotLoadedError{edge: "monitoring_days"}
}

// StudyResultsOrErr returns the StudyResults value or an error if the edge
// was not loaded in eager-loading.
func (e TreatmentEdges) StudyResultsOrErr() ([]*StudyResult, error) {
	if e.loadedTypes[3] {
		return e.StudyResults, nil
	}
	return nil, &NotLoadedError{edge: "study_results"}
}

// MedicalOrdersOrErr returns the MedicalOrders value or an error if the edge
// was not loaded in eager-loading.
func (e TreatmentEdges) MedicalOrdersOrErr() ([]*MedicalOrder, error) {
	if e.loadedTypes[4] {
		return e.MedicalOrders, nil
	}
	return nil, &NotLoadedError{edge: "medical_orders"}
}

// PunctureOrErr returns the Puncture value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TreatmentEdges) PunctureOrErr() (*Puncture, error) {
	if e.Puncture != nil {
		return e.Puncture, nil
	} else if e.loadedTypes[5] {
		return nil, &NotFoundError{label: puncture.Label}
	}
	return nil, &NotLoadedError{edge: "puncture"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Treatment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case treatment.FieldOocytesViable, treatment.FieldSpermViable:
			values[i] = new(sql.NullBool)
		case treatment.FieldObjective, treatment.FieldStatus, treatment.FieldStimulationProtocol, treatment.FieldMedicationType, treatment.FieldMedicationDose, treatment.FieldMedicationDuration, treatment.FieldConsentDocumentKey:
			values[i] = new(sql.NullString)
		case treatment.FieldCreatedAt, treatment.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case treatment.FieldID, treatment.FieldPatientID, treatment.FieldDoctorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Treatment fields.
func (_m *Treatment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case treatment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case treatment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case treatment.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case treatment.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case treatment.FieldDoctorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value != nil {
				_m.DoctorID = *value
			}
		case treatment.FieldObjective:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field objective", values[i])
			} else if value.Valid {
				_m.Objective = treatment.Objective(value.String)
			}
		case treatment.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = treatment.Status(value.String)
			}
		case treatment.FieldStimulationProtocol:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stimulation_protocol", values[i])
			} else if value.Valid {
				_m.StimulationProtocol = new(string)
				*_m.StimulationProtocol = value.String
			}
		case treatment.FieldMedicationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field medication_type", values[i])
			} else if value.Valid {
				_m.MedicationType = new(string)
				*_m.MedicationType = value.String
			}
		case treatment.FieldMedicationDose:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field medication_dose", values[i])
			} else if value.Valid {
				_m.MedicationDose = new(string)
				*_m.MedicationDose = value.String
			}
		case treatment.FieldMedicationDuration:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field medication_duration", values[i])
			} else if value.Valid {
				_m.MedicationDuration = new(string)
				*_m.MedicationDuration = value.String
			}
		case treatment.FieldOocytesViable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field oocytes_viable", values[i])
			} else if value.Valid {
				_m.OocytesViable = new(bool)
				*_m.OocytesViable = value.Bool
			}
		case treatment.FieldSpermViable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field sperm_viable", values[i])
			} else if value.Valid {
				_m.SpermViable = new(bool)
				*_m.SpermViable = value.Bool
			}
		case treatment.FieldConsentDocumentKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field consent_document_key", values[i])
			} else if value.Valid {
				_m.ConsentDocumentKey = new(string)
				*_m.ConsentDocumentKey = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Treatment.
// This includes values selected through modifiers, order, etc.
func (_m *Treatment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the Treatment entity.
func (_m *Treatment) QueryPatient() *PatientQuery {
	return NewTreatmentClient(_m.config).QueryPatient(_m)
}

// QueryDoctor queries the "doctor" edge of the Treatment entity.
func (_m *Treatment) QueryDoctor() *UserQuery {
	return NewTreatmentClient(_m.config).QueryDoctor(_m)
}

// QueryMonitoringDays queries the "monitoring_days" edge of the Treatment entity.
func (_m *Treatment) QueryMonitoringDays() *MonitoringDayQuery {
	return NewTreatmentClient(_m.config).QueryMonitoringDays(_m)
}

// QueryStudyResults queries the "study_results" edge of the Treatment entity.
func (_m *Treatment) QueryStudyResults() *StudyResultQuery {
	return NewTreatmentClient(_m.config).QueryStudyResults(_m)
}

// QueryMedicalOrders queries the "medical_orders" edge of the Treatment entity.
func (_m *Treatment) QueryMedicalOrders() *MedicalOrderQuery {
	return NewTreatmentClient(_m.config).QueryMedicalOrders(_m)
}

// QueryPuncture queries the "puncture" edge of the Treatment entity.
func (_m *Treatment) QueryPuncture() *PunctureQuery {
	return NewTreatmentClient(_m.config).QueryPuncture(_m)
}

// Update returns a builder for updating this Treatment.
// Note that you need to call Treatment.Unwrap() before calling this method if this Treatment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Treatment) Update() *TreatmentUpdateOne {
	return NewTreatmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Treatment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Treatment) Unwrap() *Treatment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Treatment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Treatment) String() string {
	var builder strings.Builder
	builder.WriteString("Treatment(")
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
	builder.WriteString("doctor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DoctorID))
	builder.WriteString(", ")
	builder.WriteString("objective=")
	builder.WriteString(fmt.Sprintf("%v", _m.Objective))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.StimulationProtocol; v != nil {
		builder.WriteString("stimulation_protocol=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MedicationType; v != nil {
		builder.WriteString("medication_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MedicationDose; v != nil {
		builder.WriteString("medication_dose=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MedicationDuration; v != nil {
		builder.WriteString("medication_duration=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OocytesViable; v != nil {
		builder.WriteString("oocytes_viable=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SpermViable; v != nil {
		builder.WriteString("sperm_viable=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ConsentDocumentKey; v != nil {
		builder.WriteString("consent_document_key=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Treatments is a parsable slice of Treatment.
type Treatments []*Treatment
