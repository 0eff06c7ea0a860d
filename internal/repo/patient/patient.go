// Code generated by ent, DO NOT EDIT.

package patient

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the patient type in the database.
	Label = "patient"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldOccupation holds the string denoting the occupation field in the database.
	FieldOccupation = "occupation"
	// FieldMedicalCoverageID holds the string denoting the medical_coverage_id field in the database.
	FieldMedicalCoverageID = "medical_coverage_id"
	// FieldMedicalCoverageName holds the string denoting the medical_coverage_name field in the database.
	FieldMedicalCoverageName = "medical_coverage_name"
	// FieldMemberNumber holds the string denoting the member_number field in the database.
	FieldMemberNumber = "member_number"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeMedicalHistory holds the string denoting the medical_history edge name in mutations.
	EdgeMedicalHistory = "medical_history"
	// EdgePartner holds the string denoting the partner edge name in mutations.
	EdgePartner = "partner"
	// EdgeTreatments holds the string denoting the treatments edge name in mutations.
	EdgeTreatments = "treatments"
	// Table holds the table name of the patient in the database.
	Table = "patients"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "patients"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// MedicalHistoryTable is the table that holds the medical_history relation/edge.
	MedicalHistoryTable = "medical_histories"
	// MedicalHistoryInverseTable is the table name for the MedicalHistory entity.
	// It exists in this package in order to avoid circular dependency with the "medicalhistory" package.
	MedicalHistoryInverseTable = "medical_histories"
	// MedicalHistoryColumn is the table column denoting the medical_history relation/edge.
	MedicalHistoryColumn = "patient_id"
	// PartnerTable is the table that holds the partner relation/edge.
	PartnerTable = "partners"
	// PartnerInverseTable is the table name for the Partner entity.
	// It exists in this package in order to avoid circular dependency with the "partner" package.
	PartnerInverseTable = "partners"
	// PartnerColumn is the table column denoting the partner relation/edge.
	PartnerColumn = "patient_id"
	// TreatmentsTable is the table that holds the treatments relation/edge.
	TreatmentsTable = "treatments"
	// TreatmentsInverseTable is the table name for the Treatment entity.
	// It exists in this package in order to avoid circular dependency with the "treatment" package.
	TreatmentsInverseTable = "treatments"
	// TreatmentsColumn is the table column denoting the treatments relation/edge.
	TreatmentsColumn = "patient_id"
)

// Columns holds all SQL columns for patient fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldOccupation,
	FieldMedicalCoverageID,
	FieldMedicalCoverageName,
	FieldMemberNumber,
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
	// OccupationValidator is a validator for the "occupation" field. It is called by the builders before save.
	OccupationValidator func(string) error
	// MedicalCoverageNameValidator is a validator for the "medical_coverage_name" field. It is called by the builders before save.
	MedicalCoverageNameValidator func(string) error
	// MemberNumberValidator is a validator for the "member_number" field. It is called by the builders before save.
	MemberNumberValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Patient queries.
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

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByOccupation orders the results by the occupation field.
func ByOccupation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccupation, opts...).ToFunc()
}

// ByMedicalCoverageID orders the results by the medical_coverage_id field.
func ByMedicalCoverageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMedicalCoverageID, opts...).ToFunc()
}

// ByMedicalCoverageName orders the results by the medical_coverage_name field.
func ByMedicalCoverageName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMedicalCoverageName, opts...).ToFunc()
}

// ByMemberNumber orders the results by the member_number field.
func ByMemberNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemberNumber, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByMedicalHistoryField orders the results by medical_history field.
func ByMedicalHistoryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMedicalHistoryStep(), sql.OrderByField(field, opts...))
	}
}

// ByPartnerField orders the results by partner field.
func ByPartnerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPartnerStep(), sql.OrderByField(field, opts...))
	}
}

// ByTreatmentsCount orders the results by treatments count.
func ByTreatmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTreatmentsStep(), opts...)
	}
}

// ByTreatments orders the results by treatments terms.
func ByTreatments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTreatmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, UserTable, UserColumn),
	)
}
func newMedicalHistoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MedicalHistoryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, MedicalHistoryTable, MedicalHistoryColumn),
	)
}
func newPartnerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PartnerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, PartnerTable, PartnerColumn),
	)
}
func newTreatmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TreatmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TreatmentsTable, TreatmentsColumn),
	)
}
