// Code generated by ent, DO NOT EDIT.

package puncture

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the puncture type in the database.
	Label = "puncture"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldTreatmentID holds the string denoting the treatment_id field in the database.
	FieldTreatmentID = "treatment_id"
	// FieldOperatorID holds the string denoting the operator_id field in the database.
	FieldOperatorID = "operator_id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldOperatingRoom holds the string denoting the operating_room field in the database.
	FieldOperatingRoom = "operating_room"
	// FieldComplications holds the string denoting the complications field in the database.
	FieldComplications = "complications"
	// EdgeTreatment holds the string denoting the treatment edge name in mutations.
	EdgeTreatment = "treatment"
	// EdgeOperator holds the string denoting the operator edge name in mutations.
	EdgeOperator = "operator"
	// EdgeOocytes holds the string denoting the oocytes edge name in mutations.
	EdgeOocytes = "oocytes"
	// Table holds the table name of the puncture in the database.
	Table = "punctures"
	// TreatmentTable is the table that holds the treatment relation/edge.
	TreatmentTable = "punctures"
	// TreatmentInverseTable is the table name for the Treatment entity.
	// It exists in this package in order to avoid circular dependency with the "treatment" package.
	TreatmentInverseTable = "treatments"
	// TreatmentColumn is the table column denoting the treatment relation/edge.
	TreatmentColumn = "treatment_id"
	// OperatorTable is the table that holds the operator relation/edge.
	OperatorTable = "punctures"
	// OperatorInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	OperatorInverseTable = "users"
	// OperatorColumn is the table column denoting the operator relation/edge.
	OperatorColumn = "operator_id"
	// OocytesTable is the table that holds the oocytes relation/edge.
	OocytesTable = "oocytes"
	// OocytesInverseTable is the table name for the Oocyte entity.
	// It exists in this package in order to avoid circular dependency with the "oocyte" package.
	OocytesInverseTable = "oocytes"
	// OocytesColumn is the table column denoting the oocytes relation/edge.
	OocytesColumn = "puncture_id"
)

// Columns holds all SQL columns for puncture fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldTreatmentID,
	FieldOperatorID,
	FieldDate,
	FieldOperatingRoom,
	FieldComplications,
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
	// OperatingRoomValidator is a validator for the "operating_room" field. It is called by the builders before save.
	OperatingRoomValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Puncture queries.
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

// ByOperatorID orders the results by the operator_id field.
func ByOperatorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperatorID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByOperatingRoom orders the results by the operating_room field.
func ByOperatingRoom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperatingRoom, opts...).ToFunc()
}

// ByComplications orders the results by the complications field.
func ByComplications(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComplications, opts...).ToFunc()
}

// ByTreatmentField orders the results by treatment field.
func ByTreatmentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTreatmentStep(), sql.OrderByField(field, opts...))
	}
}

// ByOperatorField orders the results by operator field.
func ByOperatorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOperatorStep(), sql.OrderByField(field, opts...))
	}
}

// ByOocytesCount orders the results by oocytes count.
func ByOocytesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOocytesStep(), opts...)
	}
}

// ByOocytes orders the results by oocytes terms.
func ByOocytes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOocytesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTreatmentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TreatmentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, TreatmentTable, TreatmentColumn),
	)
}
func newOperatorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OperatorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, OperatorTable, OperatorColumn),
	)
}
func newOocytesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OocytesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OocytesTable, OocytesColumn),
	)
}
