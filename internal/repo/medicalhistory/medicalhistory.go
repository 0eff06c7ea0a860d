// Code generated by ent, DO NOT EDIT.

package medicalhistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the medicalhistory type in the database.
	Label = "medical_history"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldClinicalBackground holds the string denoting the clinical_background field in the database.
	FieldClinicalBackground = "clinical_background"
	// FieldSurgicalBackground holds the string denoting the surgical_background field in the database.
	FieldSurgicalBackground = "surgical_background"
	// FieldPersonalBackground holds the string denoting the personal_background field in the database.
	FieldPersonalBackground = "personal_background"
	// FieldFamilyBackground holds the string denoting the family_background field in the database.
	FieldFamilyBackground = "family_background"
	// FieldGynecologicalBackground holds the string denoting the gynecological_background field in the database.
	FieldGynecologicalBackground = "gynecological_background"
	// FieldPhysicalExam holds the string denoting the physical_exam field in the database.
	FieldPhysicalExam = "physical_exam"
	// FieldPhenotype holds the string denoting the phenotype field in the database.
	FieldPhenotype = "phenotype"
	// EdgePatient holds the string denoting the patient edge name in mutations.
	EdgePatient = "patient"
	// Table holds the table name of the medicalhistory in the database.
	Table = "medical_histories"
	// PatientTable is the table that holds the patient relation/edge.
	PatientTable = "medical_histories"
	// PatientInverseTable is the table name for the Patient entity.
	// It exists in this package in order to avoid circular dependency with the "patient" package.
	PatientInverseTable = "patients"
	// PatientColumn is the table column denoting the patient relation/edge.
	PatientColumn = "patient_id"
)

// Columns holds all SQL columns for medicalhistory fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPatientID,
	FieldClinicalBackground,
	FieldSurgicalBackground,
	FieldPersonalBackground,
	FieldFamilyBackground,
	FieldGynecologicalBackground,
	FieldPhysicalExam,
	FieldPhenotype,
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
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the MedicalHistory queries.
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

// ByClinicalBackground orders the results by the clinical_background field.
func ByClinicalBackground(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClinicalBackground, opts...).ToFunc()
}

// BySurgicalBackground orders the results by the surgical_background field.
func BySurgicalBackground(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSurgicalBackground, opts...).ToFunc()
}

// ByPersonalBackground orders the results by the personal_background field.
func ByPersonalBackground(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonalBackground, opts...).ToFunc()
}

// ByFamilyBackground orders the results by the family_background field.
func ByFamilyBackground(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFamilyBackground, opts...).ToFunc()
}

// ByGynecologicalBackground orders the results by the gynecological_background field.
func ByGynecologicalBackground(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGynecologicalBackground, opts...).ToFunc()
}

// ByPhysicalExam orders the results by the physical_exam field.
func ByPhysicalExam(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhysicalExam, opts...).ToFunc()
}

// ByPhenotype orders the results by the phenotype field.
func ByPhenotype(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhenotype, opts...).ToFunc()
}

// ByPatientField orders the results by patient field.
func ByPatientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatientStep(), sql.OrderByField(field, opts...))
	}
}
func newPatientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, PatientTable, PatientColumn),
	)
}
