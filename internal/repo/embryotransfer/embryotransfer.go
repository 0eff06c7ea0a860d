// Code generated by ent, DO NOT EDIT.

package embryotransfer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the embryotransfer type in the database.
	Label = "embryo_transfer"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldEmbryoID holds the string denoting the embryo_id field in the database.
	FieldEmbryoID = "embryo_id"
	// FieldScheduledDate holds the string denoting the scheduled_date field in the database.
	FieldScheduledDate = "scheduled_date"
	// FieldPerformedDate holds the string denoting the performed_date field in the database.
	FieldPerformedDate = "performed_date"
	// FieldBetaPositive holds the string denoting the beta_positive field in the database.
	FieldBetaPositive = "beta_positive"
	// FieldGestationalSac holds the string denoting the gestational_sac field in the database.
	FieldGestationalSac = "gestational_sac"
	// FieldClinicalPregnancy holds the string denoting the clinical_pregnancy field in the database.
	FieldClinicalPregnancy = "clinical_pregnancy"
	// FieldLiveBirth holds the string denoting the live_birth field in the database.
	FieldLiveBirth = "live_birth"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// EdgeEmbryo holds the string denoting the embryo edge name in mutations.
	EdgeEmbryo = "embryo"
	// Table holds the table name of the embryotransfer in the database.
	Table = "embryo_transfers"
	// EmbryoTable is the table that holds the embryo relation/edge.
	EmbryoTable = "embryo_transfers"
	// EmbryoInverseTable is the table name for the Embryo entity.
	// It exists in this package in order to avoid circular dependency with the "embryo" package.
	EmbryoInverseTable = "embryos"
	// EmbryoColumn is the table column denoting the embryo relation/edge.
	EmbryoColumn = "embryo_id"
)

// Columns holds all SQL columns for embryotransfer fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldEmbryoID,
	FieldScheduledDate,
	FieldPerformedDate,
	FieldBetaPositive,
	FieldGestationalSac,
	FieldClinicalPregnancy,
	FieldLiveBirth,
	FieldNotes,
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

// OrderOption defines the ordering options for the EmbryoTransfer queries.
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

// ByEmbryoID orders the results by the embryo_id field.
func ByEmbryoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmbryoID, opts...).ToFunc()
}

// ByScheduledDate orders the results by the scheduled_date field.
func ByScheduledDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledDate, opts...).ToFunc()
}

// ByPerformedDate orders the results by the performed_date field.
func ByPerformedDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPerformedDate, opts...).ToFunc()
}

// ByBetaPositive orders the results by the beta_positive field.
func ByBetaPositive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBetaPositive, opts...).ToFunc()
}

// ByGestationalSac orders the results by the gestational_sac field.
func ByGestationalSac(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGestationalSac, opts...).ToFunc()
}

// ByClinicalPregnancy orders the results by the clinical_pregnancy field.
func ByClinicalPregnancy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClinicalPregnancy, opts...).ToFunc()
}

// ByLiveBirth orders the results by the live_birth field.
func ByLiveBirth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLiveBirth, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByEmbryoField orders the results by embryo field.
func ByEmbryoField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEmbryoStep(), sql.OrderByField(field, opts...))
	}
}
func newEmbryoStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EmbryoInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, EmbryoTable, EmbryoColumn),
	)
}
