// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fertitrack/fertitrack_backend/internal/repo/medicalhistory"
	"github.com/fertitrack/fertitrack_backend/internal/repo/partner"
	"github.com/fertitrack/fertitrack_backend/internal/repo/patient"
	"github.com/fertitrack/fertitrack_backend/internal/repo/user"
	"github.com/google/uuid"
)

// Patient is the model entity for the Patient schema.
type Patient struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id (the patient's user account)
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Occupation holds the value of the "occupation" field.
	Occupation *string `json:"occupation,omitempty"`
	// MedicalCoverageID holds the value of the "medical_coverage_id" field.
	MedicalCoverageID *int `json:"medical_coverage_id,omitempty"`
	// MedicalCoverageName holds the value of the "medical_coverage_name" field.
	MedicalCoverageName *string `json:"medical_coverage_name,omitempty"`
	// MemberNumber holds the value of the "member_number" field.
	MemberNumber *string `json:"member_number,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatientQuery when eager-loading is set.
	Edges        PatientEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatientEdges holds the relations/edges for other nodes in the graph.
type PatientEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// MedicalHistory holds the value of the medical_history edge.
	MedicalHistory *MedicalHistory `json:"medical_history,omitempty"`
	// Partner holds the value of the partner edge.
	Partner *Partner `json:"partner,omitempty"`
	// Treatments holds the value of the treatments edge.
	Treatments []*Treatment `json:"treatments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// MedicalHistoryOrErr returns the MedicalHistory value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientEdges) MedicalHistoryOrErr() (*MedicalHistory, error) {
	if e.MedicalHistory != nil {
		return e.MedicalHistory, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: medicalhistory.Label}
	}
	return nil, &NotLoadedError{edge: "medical_history"}
}

// PartnerOrErr returns the Partner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientEdges) PartnerOrErr() (*Partner, error) {
	if e.Partner != nil {
		return e.Partner, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: partner.Label}
	}
	return nil, &NotLoadedError{edge: "partner"}
}

// TreatmentsOrErr returns the Treatments value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) TreatmentsOrErr() ([]*Treatment, error) {
	if e.loadedTypes[3] {
		return e.Treatments, nil
	}
	return nil, &NotLoadedError{edge: "treatments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Patient) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patient.FieldMedicalCoverageID:
			values[i] = new(sql.NullInt64)
		case patient.FieldOccupation, patient.FieldMedicalCoverageName, patient.FieldMemberNumber:
			values[i] = new(sql.NullString)
		case patient.FieldCreatedAt, patient.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case patient.FieldID, patient.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Patient fields.
func (_m *Patient) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patient.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case patient.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case patient.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case patient.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case patient.FieldOccupation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field occupation", values[i])
			} else if value.Valid {
				_m.Occupation = new(string)
				*_m.Occupation = value.String
			}
		case patient.FieldMedicalCoverageID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field medical_coverage_id", values[i])
			} else if value.Valid {
				_m.MedicalCoverageID = new(int)
				*_m.MedicalCoverageID = int(value.Int64)
			}
		case patient.FieldMedicalCoverageName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field medical_coverage_name", values[i])
			} else if value.Valid {
				_m.MedicalCoverageName = new(string)
				*_m.MedicalCoverageName = value.String
			}
		case patient.FieldMemberNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field member_number", values[i])
			} else if value.Valid {
				_m.MemberNumber = new(string)
				*_m.MemberNumber = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Patient.
// This includes values selected through modifiers, order, etc.
func (_m *Patient) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Patient entity.
func (_m *Patient) QueryUser() *UserQuery {
	return NewPatientClient(_m.config).QueryUser(_m)
}

// QueryMedicalHistory queries the "medical_history" edge of the Patient entity.
func (_m *Patient) QueryMedicalHistory() *MedicalHistoryQuery {
	return NewPatientClient(_m.config).QueryMedicalHistory(_m)
}

// QueryPartner queries the "partner" edge of the Patient entity.
func (_m *Patient) QueryPartner() *PartnerQuery {
	return NewPatientClient(_m.config).QueryPartner(_m)
}

// QueryTreatments queries the "treatments" edge of the Patient entity.
func (_m *Patient) QueryTreatments() *TreatmentQuery {
	return NewPatientClient(_m.config).QueryTreatments(_m)
}

// Update returns a builder for updating this Patient.
// Note that you need to call Patient.Unwrap() before calling this method if this Patient
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Patient) Update() *PatientUpdateOne {
	return NewPatientClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Patient entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Patient) Unwrap() *Patient {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Patient is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Patient) String() string {
	var builder strings.Builder
	builder.WriteString("Patient(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	if v := _m.Occupation; v != nil {
		builder.WriteString("occupation=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MedicalCoverageID; v != nil {
		builder.WriteString("medical_coverage_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MedicalCoverageName; v != nil {
		builder.WriteString("medical_coverage_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MemberNumber; v != nil {
		builder.WriteString("member_number=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Patients is a parsable slice of Patient.
type Patients []*Patient
