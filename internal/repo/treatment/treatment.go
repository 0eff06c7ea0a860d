// Code generated by ent, DO NOT EDIT.

package treatment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the treatment type in the database.
	Label = "treatment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldDoctorID holds the string denoting the doctor_id field in the database.
	FieldDoctorID = "doctor_id"
	// FieldObjective holds the string denoting the objective field in the database.
	FieldObjective = "objective"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStimulationProtocol holds the string denoting the stimulation_protocol field in the database.
	FieldStimulationProtocol = "stimulation_protocol"
	// FieldMedicationType holds the string denoting the medication_type field in the database.
	FieldMedicationType = "medication_type"
	// FieldMedicationDose holds the string denoting the medication_dose field in the database.
	FieldMedicationDose = "medication_dose"
	// FieldMedicationDuration holds the string denoting the medication_duration field in the database.
	FieldMedicationDuration = "medication_duration"
	// FieldOocytesViable holds the string denoting the oocytes_viable field in the database.
	FieldOocytesViable = "oocytes_viable"
	// FieldSpermViable holds the string denoting the sperm_viable field in the database.
	FieldSpermViable = "sperm_viable"
	// FieldConsentDocumentKey holds the string denoting the consent_document_key field in the database.
	FieldConsentDocumentKey = "consent_document_key"
	// EdgePatient holds the string denoting the patient edge name in mutations.
	EdgePatient = "patient"
	// EdgeDoctor holds the string denoting the doctor edge name in mutations.
	EdgeDoctor = "doctor"
	// EdgeMonitoringDays holds the string denoting the monitoring_days edge name in mutations.
	EdgeMonitoringDays = "monitoring_days"
	// EdgeStudyResults holds the string denoting the study_results edge name in mutations.
	EdgeStudyResults = "study_results"
	// EdgeMedicalOrders holds the string denoting the medical_orders edge name in mutations.
	EdgeMedicalOrders = "medical_orders"
	// EdgePuncture holds the string denoting the puncture edge name in mutations.
	EdgePuncture = "puncture"
	// Table holds the table name of the treatment in the database.
	Table = "treatments"
	// PatientTable is the table that holds the patient relation/edge.
	PatientTable = "treatments"
	// PatientInverseTable is the table name for the Patient entity.
	// It exists in this package in order to avoid circular dependency with the "patient" package.
	PatientInverseTable = "patients"
	// PatientColumn is the table column denoting the patient relation/edge.
	PatientColumn = "patient_id"
	// DoctorTable is the table that holds the doctor relation/edge.
	DoctorTable = "treatments"
	// DoctorInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	DoctorInverseTable = "users"
	// DoctorColumn is the table column denoting the doctor relation/edge.
	DoctorColumn = "doctor_id"
	// MonitoringDaysTable is the table that holds the monitoring_days relation/edge.
	MonitoringDaysTable = "monitoring_days"
	// MonitoringDaysInverseTable is the table name for the MonitoringDay entity.
	// It exists in this package in order to avoid circular dependency with the "monitoringday" package.
	MonitoringDaysInverseTable = "monitoring_days"
	// MonitoringDaysColumn is the table column denoting the monitoring_days relation/edge.
	MonitoringDaysColumn = "treatment_id"
	// StudyResultsTable is the table that holds the study_results relation/edge.
	StudyResultsTable = "study_results"
	// StudyResultsInverseTable is the table name for the StudyResult entity.
	// It exists in this package in order to avoid circular dependency with the "studyresult" package.
	StudyResultsInverseTable = "study_results"
	// StudyResultsColumn is the table column denoting the study_results relation/edge.
	StudyResultsColumn = "treatment_id"
	// MedicalOrdersTable is the table that holds the medical_orders relation/edge.
	MedicalOrdersTable = "medical_orders"
	// MedicalOrdersInverseTable is the table name for the MedicalOrder entity.
	// It exists in this package in order to avoid circular dependency with the "medicalorder" package.
	MedicalOrdersInverseTable = "medical_orders"
	// MedicalOrdersColumn is the table column denoting the medical_orders relation/edge.
	MedicalOrdersColumn = "treatment_id"
	// PunctureTable is the table that holds the puncture relation/edge.
	PunctureTable = "punctures"
	// PunctureInverseTable is the table name for the Puncture entity.
	// It exists in this package in order to avoid circular dependency with the "puncture" package.
	PunctureInverseTable = "punctures"
	// PunctureColumn is the table column denoting the puncture relation/edge.
	PunctureColumn = "treatment_id"
)

// Columns holds all SQL columns for treatment fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPatientID,
	FieldDoctorID,
	FieldObjective,
	FieldStatus,
	FieldStimulationProtocol,
	FieldMedicationType,
	FieldMedicationDose,
	FieldMedicationDuration,
	FieldOocytesViable,
	FieldSpermViable,
	FieldConsentDocumentKey,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// MedicationTypeValidator is a validator for the "medication_type" field. It is called by the builders before save.
	MedicationTypeValidator func(string) error
	// MedicationDoseValidator is a validator for the "medication_dose" field. It is called by the builders before save.
	MedicationDoseValidator func(string) error
	// MedicationDurationValidator is a validator for the "medication_duration" field. It is called by the builders before save.
	MedicationDurationValidator func(string) error
	// ConsentDocumentKeyValidator is a validator for the "consent_document_key" field. It is called by the builders before save.
	ConsentDocumentKeyValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Objective defines the type for the "objective" enum field.
type Objective string

// Objective values.
const (
	ObjectivePREGNANCY           Objective = "PREGNANCY"
	ObjectiveOOCYTE_PRESERVATION Objective = "OOCYTE_PRESERVATION"
)

func (o Objective) String() string {
	return string(o)
}

// ObjectiveValidator is a validator for the "objective" field enum values. It is called by the builders before save.
func ObjectiveValidator(o Objective) error {
	switch o {
	case ObjectivePREGNANCY, ObjectiveOOCYTE_PRESERVATION:
		return nil
	default:
		return fmt.Errorf("treatment: invalid enum value for objective field: %q", o)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusACTIVE is the default value of the Status enum.
const DefaultStatus = StatusACTIVE

// Status values.
const (
	StatusACTIVE    Status = "ACTIVE"
	StatusCOMPLETED Status = "COMPLETED"
	StatusCANCELLED Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusACTIVE, StatusCOMPLETED, StatusCANCELLED:
		return nil
	default:
		return fmt.Errorf("treatment: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Treatment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByDoctorID orders the results by the doctor_id field.
func ByDoctorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoctorID, opts...).ToFunc()
}

// ByObjective orders the results by the objective field.
func ByObjective(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjective, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStimulationProtocol orders the results by the stimulation_protocol field.
func ByStimulationProtocol(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStimulationProtocol, opts...).ToFunc()
}

// ByMedicationType orders the results by the medication_type field.
func ByMedicationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMedicationType, opts...).ToFunc()
}

// ByMedicationDose orders the results by the medication_dose field.
func ByMedicationDose(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMedicationDose, opts...).ToFunc()
}

// ByMedicationDuration orders the results by the medication_duration field.
func ByMedicationDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMedicationDuration, opts...).ToFunc()
}

// ByOocytesViable orders the results by the oocytes_viable field.
func ByOocytesViable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOocytesViable, opts...).ToFunc()
}

// BySpermViable orders the results by the sperm_viable field.
func BySpermViable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpermViable, opts...).ToFunc()
}

// ByConsentDocumentKey orders the results by the consent_document_key field.
func ByConsentDocumentKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsentDocumentKey, opts...).ToFunc()
}

// ByPatientField orders the results by patient field.
func ByPatientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatientStep(), sql.OrderByField(field, opts...))
	}
}

// ByDoctorField orders the results by doctor field.
func ByDoctorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDoctorStep(), sql.OrderByField(field, opts...))
	}
}

// ByMonitoringDaysCount orders the results by monitoring_days count.
func ByMonitoringDaysCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMonitoringDaysStep(), opts...)
	}
}

// ByMonitoringDays orders the results by monitoring_days terms.
func ByMonitoringDays(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMonitoringDaysStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStudyResultsCount orders the results by study_results count.
func ByStudyResultsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStudyResultsStep(), opts...)
	}
}

// ByStudyResults orders the results by study_results terms.
func ByStudyResults(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStudyResultsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMedicalOrdersCount orders the results by medical_orders count.
func ByMedicalOrdersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMedicalOrdersStep(), opts...)
	}
}

// ByMedicalOrders orders the results by medical_orders terms.
func ByMedicalOrders(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMedicalOrdersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPunctureField orders the results by puncture field.
func ByPunctureField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPunctureStep(), sql.OrderByField(field, opts...))
	}
}
func newPatientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
	)
}
func newDoctorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DoctorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, DoctorTable, DoctorColumn),
	)
}
func newMonitoringDaysStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MonitoringDaysInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MonitoringDaysTable, MonitoringDaysColumn),
	)
}
func newStudyResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StudyResultsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StudyResultsTable, StudyResultsColumn),
	)
}
func newMedicalOrdersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MedicalOrdersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MedicalOrdersTable, MedicalOrdersColumn),
	)
}
func newPunctureStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PunctureInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, PunctureTable, PunctureColumn),
	)
}
