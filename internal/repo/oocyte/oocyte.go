// Code generated by ent, DO NOT EDIT.

package oocyte

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the oocyte type in the database.
	Label = "oocyte"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPunctureID holds the string denoting the puncture_id field in the database.
	FieldPunctureID = "puncture_id"
	// FieldOocyteCode holds the string denoting the oocyte_code field in the database.
	FieldOocyteCode = "oocyte_code"
	// FieldInitialState holds the string denoting the initial_state field in the database.
	FieldInitialState = "initial_state"
	// FieldCurrentState holds the string denoting the current_state field in the database.
	FieldCurrentState = "current_state"
	// FieldMaturationTimeHours holds the string denoting the maturation_time_hours field in the database.
	FieldMaturationTimeHours = "maturation_time_hours"
	// FieldDiscardReason holds the string denoting the discard_reason field in the database.
	FieldDiscardReason = "discard_reason"
	// FieldNitrogenTube holds the string denoting the nitrogen_tube field in the database.
	FieldNitrogenTube = "nitrogen_tube"
	// FieldRackNumber holds the string denoting the rack_number field in the database.
	FieldRackNumber = "rack_number"
	// EdgePuncture holds the string denoting the puncture edge name in mutations.
	EdgePuncture = "puncture"
	// EdgeStateHistory holds the string denoting the state_history edge name in mutations.
	EdgeStateHistory = "state_history"
	// EdgeEmbryo holds the string denoting the embryo edge name in mutations.
	EdgeEmbryo = "embryo"
	// Table holds the table name of the oocyte in the database.
	Table = "oocytes"
	// PunctureTable is the table that holds the puncture relation/edge.
	PunctureTable = "oocytes"
	// PunctureInverseTable is the table name for the Puncture entity.
	// It exists in this package in order to avoid circular dependency with the "puncture" package.
	PunctureInverseTable = "punctures"
	// PunctureColumn is the table column denoting the puncture relation/edge.
	PunctureColumn = "puncture_id"
	// StateHistoryTable is the table that holds the state_history relation/edge.
	StateHistoryTable = "oocyte_state_histories"
	// StateHistoryInverseTable is the table name for the OocyteStateHistory entity.
	// It exists in this package in order to avoid circular dependency with the "oocytestatehistory" package.
	StateHistoryInverseTable = "oocyte_state_histories"
	// StateHistoryColumn is the table column denoting the state_history relation/edge.
	StateHistoryColumn = "oocyte_id"
	// EmbryoTable is the table that holds the embryo relation/edge.
	EmbryoTable = "embryos"
	// EmbryoInverseTable is the table name for the Embryo entity.
	// It exists in this package in order to avoid circular dependency with the "embryo" package.
	EmbryoInverseTable = "embryos"
	// EmbryoColumn is the table column denoting the embryo relation/edge.
	EmbryoColumn = "oocyte_id"
)

// Columns holds all SQL columns for oocyte fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPunctureID,
	FieldOocyteCode,
	FieldInitialState,
	FieldCurrentState,
	FieldMaturationTimeHours,
	FieldDiscardReason,
	FieldNitrogenTube,
	FieldRackNumber,
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
	// OocyteCodeValidator is a validator for the "oocyte_code" field. It is called by the builders before save.
	OocyteCodeValidator func(string) error
	// NitrogenTubeValidator is a validator for the "nitrogen_tube" field. It is called by the builders before save.
	NitrogenTubeValidator func(string) error
	// RackNumberValidator is a validator for the "rack_number" field. It is called by the builders before save.
	RackNumberValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// InitialState defines the type for the "initial_state" enum field.
type InitialState string

// InitialState values.
const (
	InitialStateVERY_IMMATURE InitialState = "VERY_IMMATURE"
	InitialStateIMMATURE      InitialState = "IMMATURE"
	InitialStateMATURE        InitialState = "MATURE"
	InitialStateFERTILIZED    InitialState = "FERTILIZED"
	InitialStateDISCARDED     InitialState = "DISCARDED"
	InitialStateCRYOPRESERVED InitialState = "CRYOPRESERVED"
)

func (is InitialState) String() string {
	return string(is)
}

// InitialStateValidator is a validator for the "initial_state" field enum values. It is called by the builders before save.
func InitialStateValidator(is InitialState) error {
	switch is {
	case InitialStateVERY_IMMATURE, InitialStateIMMATURE, InitialStateMATURE, InitialStateFERTILIZED, InitialStateDISCARDED, InitialStateCRYOPRESERVED:
		return nil
	default:
		return fmt.Errorf("oocyte: invalid enum value for initial_state field: %q", is)
	}
}

// CurrentState defines the type for the "current_state" enum field.
type CurrentState string

// CurrentState values.
const (
	CurrentStateVERY_IMMATURE CurrentState = "VERY_IMMATURE"
	CurrentStateIMMATURE      CurrentState = "IMMATURE"
	CurrentStateMATURE        CurrentState = "MATURE"
	CurrentStateFERTILIZED    CurrentState = "FERTILIZED"
	CurrentStateDISCARDED     CurrentState = "DISCARDED"
	CurrentStateCRYOPRESERVED CurrentState = "CRYOPRESERVED"
)

func (cs CurrentState) String() string {
	return string(cs)
}

// CurrentStateValidator is a validator for the "current_state" field enum values. It is called by the builders before save.
func CurrentStateValidator(cs CurrentState) error {
	switch cs {
	case CurrentStateVERY_IMMATURE, CurrentStateIMMATURE, CurrentStateMATURE, CurrentStateFERTILIZED, CurrentStateDISCARDED, CurrentStateCRYOPRESERVED:
		return nil
	default:
		return fmt.Errorf("oocyte: invalid enum value for current_state field: %q", cs)
	}
}

// OrderOption defines the ordering options for the Oocyte queries.
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

// ByPunctureID orders the results by the puncture_id field.
func ByPunctureID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPunctureID, opts...).ToFunc()
}

// ByOocyteCode orders the results by the oocyte_code field.
func ByOocyteCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOocyteCode, opts...).ToFunc()
}

// ByInitialState orders the results by the initial_state field.
func ByInitialState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInitialState, opts...).ToFunc()
}

// ByCurrentState orders the results by the current_state field.
func ByCurrentState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentState, opts...).ToFunc()
}

// ByMaturationTimeHours orders the results by the maturation_time_hours field.
func ByMaturationTimeHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaturationTimeHours, opts...).ToFunc()
}

// ByDiscardReason orders the results by the discard_reason field.
func ByDiscardReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscardReason, opts...).ToFunc()
}

// ByNitrogenTube orders the results by the nitrogen_tube field.
func ByNitrogenTube(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNitrogenTube, opts...).ToFunc()
}

// ByRackNumber orders the results by the rack_number field.
func ByRackNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRackNumber, opts...).ToFunc()
}

// ByPunctureField orders the results by puncture field.
func ByPunctureField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPunctureStep(), sql.OrderByField(field, opts...))
	}
}

// ByStateHistoryCount orders the results by state_history count.
func ByStateHistoryCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStateHistoryStep(), opts...)
	}
}

// ByStateHistory orders the results by state_history terms.
func ByStateHistory(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStateHistoryStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEmbryoField orders the results by embryo field.
func ByEmbryoField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEmbryoStep(), sql.OrderByField(field, opts...))
	}
}
func newPunctureStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PunctureInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PunctureTable, PunctureColumn),
	)
}
func newStateHistoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StateHistoryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StateHistoryTable, StateHistoryColumn),
	)
}
func newEmbryoStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EmbryoInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, EmbryoTable, EmbryoColumn),
	)
}
