// Code generated by ent, DO NOT EDIT.

package embryo

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the embryo type in the database.
	Label = "embryo"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldOocyteID holds the string denoting the oocyte_id field in the database.
	FieldOocyteID = "oocyte_id"
	// FieldEmbryoCode holds the string denoting the embryo_code field in the database.
	FieldEmbryoCode = "embryo_code"
	// FieldFertilizationTechnique holds the string denoting the fertilization_technique field in the database.
	FieldFertilizationTechnique = "fertilization_technique"
	// FieldSpermSource holds the string denoting the sperm_source field in the database.
	FieldSpermSource = "sperm_source"
	// FieldQuality holds the string denoting the quality field in the database.
	FieldQuality = "quality"
	// FieldCurrentState holds the string denoting the current_state field in the database.
	FieldCurrentState = "current_state"
	// FieldPgtPerformed holds the string denoting the pgt_performed field in the database.
	FieldPgtPerformed = "pgt_performed"
	// FieldPgtResult holds the string denoting the pgt_result field in the database.
	FieldPgtResult = "pgt_result"
	// FieldNitrogenTube holds the string denoting the nitrogen_tube field in the database.
	FieldNitrogenTube = "nitrogen_tube"
	// FieldRackNumber holds the string denoting the rack_number field in the database.
	FieldRackNumber = "rack_number"
	// FieldDiscardReason holds the string denoting the discard_reason field in the database.
	FieldDiscardReason = "discard_reason"
	// EdgeOocyte holds the string denoting the oocyte edge name in mutations.
	EdgeOocyte = "oocyte"
	// EdgeTransfer holds the string denoting the transfer edge name in mutations.
	EdgeTransfer = "transfer"
	// Table holds the table name of the embryo in the database.
	Table = "embryos"
	// OocyteTable is the table that holds the oocyte relation/edge.
	OocyteTable = "embryos"
	// OocyteInverseTable is the table name for the Oocyte entity.
	// It exists in this package in order to avoid circular dependency with the "oocyte" package.
	OocyteInverseTable = "oocytes"
	// OocyteColumn is the table column denoting the oocyte relation/edge.
	OocyteColumn = "oocyte_id"
	// TransferTable is the table that holds the transfer relation/edge.
	TransferTable = "embryo_transfers"
	// TransferInverseTable is the table name for the EmbryoTransfer entity.
	// It exists in this package in order to avoid circular dependency with the "embryotransfer" package.
	TransferInverseTable = "embryo_transfers"
	// TransferColumn is the table column denoting the transfer relation/edge.
	TransferColumn = "embryo_id"
)

// Columns holds all SQL columns for embryo fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldOocyteID,
	FieldEmbryoCode,
	FieldFertilizationTechnique,
	FieldSpermSource,
	FieldQuality,
	FieldCurrentState,
	FieldPgtPerformed,
	FieldPgtResult,
	FieldNitrogenTube,
	FieldRackNumber,
	FieldDiscardReason,
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
	// EmbryoCodeValidator is a validator for the "embryo_code" field. It is called by the builders before save.
	EmbryoCodeValidator func(string) error
	// QualityValidator is a validator for the "quality" field. It is called by the builders before save.
	QualityValidator func(int) error
	// DefaultPgtPerformed holds the default value on creation for the "pgt_performed" field.
	DefaultPgtPerformed bool
	// NitrogenTubeValidator is a validator for the "nitrogen_tube" field. It is called by the builders before save.
	NitrogenTubeValidator func(string) error
	// RackNumberValidator is a validator for the "rack_number" field. It is called by the builders before save.
	RackNumberValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// FertilizationTechnique defines the type for the "fertilization_technique" enum field.
type FertilizationTechnique string

// FertilizationTechnique values.
const (
	FertilizationTechniqueIVF  FertilizationTechnique = "IVF"
	FertilizationTechniqueICSI FertilizationTechnique = "ICSI"
)

func (ft FertilizationTechnique) String() string {
	return string(ft)
}

// FertilizationTechniqueValidator is a validator for the "fertilization_technique" field enum values. It is called by the builders before save.
func FertilizationTechniqueValidator(ft FertilizationTechnique) error {
	switch ft {
	case FertilizationTechniqueIVF, FertilizationTechniqueICSI:
		return nil
	default:
		return fmt.Errorf("embryo: invalid enum value for fertilization_technique field: %q", ft)
	}
}

// SpermSource defines the type for the "sperm_source" enum field.
type SpermSource string

// SpermSource values.
const (
	SpermSourcePARTNER SpermSource = "PARTNER"
	SpermSourceDONOR   SpermSource = "DONOR"
)

func (ss SpermSource) String() string {
	return string(ss)
}

// SpermSourceValidator is a validator for the "sperm_source" field enum values. It is called by the builders before save.
func SpermSourceValidator(ss SpermSource) error {
	switch ss {
	case SpermSourcePARTNER, SpermSourceDONOR:
		return nil
	default:
		return fmt.Errorf("embryo: invalid enum value for sperm_source field: %q", ss)
	}
}

// CurrentState defines the type for the "current_state" enum field.
type CurrentState string

// CurrentStateDEVELOPING is the default value of the CurrentState enum.
const DefaultCurrentState = CurrentStateDEVELOPING

// CurrentState values.
const (
	CurrentStateDEVELOPING    CurrentState = "DEVELOPING"
	CurrentStateTRANSFERRED   CurrentState = "TRANSFERRED"
	CurrentStateCRYOPRESERVED CurrentState = "CRYOPRESERVED"
	CurrentStateDISCARDED     CurrentState = "DISCARDED"
)

func (cs CurrentState) String() string {
	return string(cs)
}

// CurrentStateValidator is a validator for the "current_state" field enum values. It is called by the builders before save.
func CurrentStateValidator(cs CurrentState) error {
	switch cs {
	case CurrentStateDEVELOPING, CurrentStateTRANSFERRED, CurrentStateCRYOPRESERVED, CurrentStateDISCARDED:
		return nil
	default:
		return fmt.Errorf("embryo: invalid enum value for current_state field: %q", cs)
	}
}

// OrderOption defines the ordering options for the Embryo queries.
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

// ByOocyteID orders the results by the oocyte_id field.
func ByOocyteID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOocyteID, opts...).ToFunc()
}

// ByEmbryoCode orders the results by the embryo_code field.
func ByEmbryoCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmbryoCode, opts...).ToFunc()
}

// ByFertilizationTechnique orders the results by the fertilization_technique field.
func ByFertilizationTechnique(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFertilizationTechnique, opts...).ToFunc()
}

// BySpermSource orders the results by the sperm_source field.
func BySpermSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpermSource, opts...).ToFunc()
}

// ByQuality orders the results by the quality field.
func ByQuality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuality, opts...).ToFunc()
}

// ByCurrentState orders the results by the current_state field.
func ByCurrentState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentState, opts...).ToFunc()
}

// ByPgtPerformed orders the results by the pgt_performed field.
func ByPgtPerformed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPgtPerformed, opts...).ToFunc()
}

// ByPgtResult orders the results by the pgt_result field.
func ByPgtResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPgtResult, opts...).ToFunc()
}

// ByNitrogenTube orders the results by the nitrogen_tube field.
func ByNitrogenTube(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNitrogenTube, opts...).ToFunc()
}

// ByRackNumber orders the results by the rack_number field.
func ByRackNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRackNumber, opts...).ToFunc()
}

// ByDiscardReason orders the results by the discard_reason field.
func ByDiscardReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscardReason, opts...).ToFunc()
}

// ByOocyteField orders the results by oocyte field.
func ByOocyteField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOocyteStep(), sql.OrderByField(field, opts...))
	}
}

// ByTransferField orders the results by transfer field.
func ByTransferField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTransferStep(), sql.OrderByField(field, opts...))
	}
}
func newOocyteStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OocyteInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, OocyteTable, OocyteColumn),
	)
}
func newTransferStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TransferInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, TransferTable, TransferColumn),
	)
}
