// Code generated by ent, DO NOT EDIT.

package studyresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the studyresult type in the database.
	Label = "study_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldTreatmentID holds the string denoting the treatment_id field in the database.
	FieldTreatmentID = "treatment_id"
	// FieldStudyType holds the string denoting the study_type field in the database.
	FieldStudyType = "study_type"
	// FieldStudyName holds the string denoting the study_name field in the database.
	FieldStudyName = "study_name"
	// FieldResultFileKey holds the string denoting the result_file_key field in the database.
	FieldResultFileKey = "result_file_key"
	// FieldResultText holds the string denoting the result_text field in the database.
	FieldResultText = "result_text"
	// EdgeTreatment holds the string denoting the treatment edge name in mutations.
	EdgeTreatment = "treatment"
	// Table holds the table name of the studyresult in the database.
	Table = "study_results"
	// TreatmentTable is the table that holds the treatment relation/edge.
	TreatmentTable = "study_results"
	// TreatmentInverseTable is the table name for the Treatment entity.
	// It exists in this package in order to avoid circular dependency with the "treatment" package.
	TreatmentInverseTable = "treatments"
	// TreatmentColumn is the table column denoting the treatment relation/edge.
	TreatmentColumn = "treatment_id"
)

// Columns holds all SQL columns for studyresult fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldTreatmentID,
	FieldStudyType,
	FieldStudyName,
	FieldResultFileKey,
	FieldResultText,
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
	// StudyTypeValidator is a validator for the "study_type" field. It is called by the builders before save.
	StudyTypeValidator func(string) error
	// StudyNameValidator is a validator for the "study_name" field. It is called by the builders before save.
	StudyNameValidator func(string) error
	// ResultFileKeyValidator is a validator for the "result_file_key" field. It is called by the builders before save.
	ResultFileKeyValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the StudyResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTreatmentID orders the results by the treatment_id field.
func ByTreatmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTreatmentID, opts...).ToFunc()
}

// ByStudyType orders the results by the study_type field.
func ByStudyType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudyType, opts...).ToFunc()
}

// ByStudyName orders the results by the study_name field.
func ByStudyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudyName, opts...).ToFunc()
}

// ByResultFileKey orders the results by the result_file_key field.
func ByResultFileKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultFileKey, opts...).ToFunc()
}

// ByResultText orders the results by the result_text field.
func ByResultText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultText, opts...).ToFunc()
}

// ByTreatmentField orders the results by treatment field.
func ByTreatmentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTreatmentStep(), sql.OrderByField(field, opts...))
	}
}
func newTreatmentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TreatmentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TreatmentTable, TreatmentColumn),
	)
}
