// Code generated by ent, DO NOT EDIT.

package oocytestatehistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the oocytestatehistory type in the database.
	Label = "oocyte_state_history"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldOocyteID holds the string denoting the oocyte_id field in the database.
	FieldOocyteID = "oocyte_id"
	// FieldFromState holds the string denoting the from_state field in the database.
	FieldFromState = "from_state"
	// FieldToState holds the string denoting the to_state field in the database.
	FieldToState = "to_state"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldChangedByID holds the string denoting the changed_by_id field in the database.
	FieldChangedByID = "changed_by_id"
	// EdgeOocyte holds the string denoting the oocyte edge name in mutations.
	EdgeOocyte = "oocyte"
	// EdgeChangedBy holds the string denoting the changed_by edge name in mutations.
	EdgeChangedBy = "changed_by"
	// Table holds the table name of the oocytestatehistory in the database.
	Table = "oocyte_state_histories"
	// OocyteTable is the table that holds the oocyte relation/edge.
	OocyteTable = "oocyte_state_histories"
	// OocyteInverseTable is the table name for the Oocyte entity.
	// It exists in this package in order to avoid circular dependency with the "oocyte" package.
	OocyteInverseTable = "oocytes"
	// OocyteColumn is the table column denoting the oocyte relation/edge.
	OocyteColumn = "oocyte_id"
	// ChangedByTable is the table that holds the changed_by relation/edge.
	ChangedByTable = "oocyte_state_histories"
	// ChangedByInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	ChangedByInverseTable = "users"
	// ChangedByColumn is the table column denoting the changed_by relation/edge.
	ChangedByColumn = "changed_by_id"
)

// Columns holds all SQL columns for oocytestatehistory fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldOocyteID,
	FieldFromState,
	FieldToState,
	FieldNotes,
	FieldChangedByID,
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
	// FromStateValidator is a validator for the "from_state" field. It is called by the builders before save.
	FromStateValidator func(string) error
	// ToStateValidator is a validator for the "to_state" field. It is called by the builders before save.
	ToStateValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the OocyteStateHistory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByOocyteID orders the results by the oocyte_id field.
func ByOocyteID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOocyteID, opts...).ToFunc()
}

// ByFromState orders the results by the from_state field.
func ByFromState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromState, opts...).ToFunc()
}

// ByToState orders the results by the to_state field.
func ByToState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToState, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByChangedByID orders the results by the changed_by_id field.
func ByChangedByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChangedByID, opts...).ToFunc()
}

// ByOocyteField orders the results by oocyte field.
func ByOocyteField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOocyteStep(), sql.OrderByField(field, opts...))
	}
}

// ByChangedByField orders the results by changed_by field.
func ByChangedByField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChangedByStep(), sql.OrderByField(field, opts...))
	}
}
func newOocyteStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OocyteInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OocyteTable, OocyteColumn),
	)
}
func newChangedByStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChangedByInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, ChangedByTable, ChangedByColumn),
	)
}
