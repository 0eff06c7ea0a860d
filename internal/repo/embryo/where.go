// Code generated by ent, DO NOT EDIT.

package embryo

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Embryo {
	return predicate.Embryo(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Embryo {
	return predicate.Embryo(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Embryo {
	return predicate.Embryo(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Embryo {
	return predicate.Embryo(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Embryo {
	return predicate.Embryo(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Embryo {
	return predicate.Embryo(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Embryo {
	return predicate.Embryo(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Embryo {
	return predicate.Embryo(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Embryo {
	return predicate.Embryo(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Embryo {
	return predicate.Embryo(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Embryo {
	return predicate.Embryo(sql.FieldEQ(FieldUpdatedAt, v))
}

// OocyteID applies equality check predicate on the "oocyte_id" field. It's identical to OocyteIDEQ.
func OocyteID(v uuid.UUID) predicate.Embryo {
	return predicate.Embryo(sql.FieldEQ(FieldOocyteID, v))
}

// EmbryoCode applies equality check predicate on the "embryo_code" field. It's identical to EmbryoCodeEQ.
func EmbryoCode(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldEQ(FieldEmbryoCode, v))
}

// Quality applies equality check predicate on the "quality" field. It's identical to QualityEQ.
func Quality(v int) predicate.Embryo {
	return predicate.Embryo(sql.FieldEQ(FieldQuality, v))
}

// PgtPerformed applies equality check predicate on the "pgt_performed" field. It's identical to PgtPerformedEQ.
func PgtPerformed(v bool) predicate.Embryo {
	return predicate.Embryo(sql.FieldEQ(FieldPgtPerformed, v))
}

// PgtResult applies equality check predicate on the "pgt_result" field. It's identical to PgtResultEQ.
func PgtResult(v bool) predicate.Embryo {
	return predicate.Embryo(sql.FieldEQ(FieldPgtResult, v))
}

// NitrogenTube applies equality check predicate on the "nitrogen_tube" field. It's identical to NitrogenTubeEQ.
func NitrogenTube(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldEQ(FieldNitrogenTube, v))
}

// RackNumber applies equality check predicate on the "rack_number" field. It's identical to RackNumberEQ.
func RackNumber(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldEQ(FieldRackNumber, v))
}

// DiscardReason applies equality check predicate on the "discard_reason" field. It's identical to DiscardReasonEQ.
func DiscardReason(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldEQ(FieldDiscardReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Embryo {
	return predicate.Embryo(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Embryo {
	return predicate.Embryo(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Embryo {
	return predicate.Embryo(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Embryo {
	return predicate.Embryo(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Embryo {
	return predicate.Embryo(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Embryo {
	return predicate.Embryo(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Embryo {
	return predicate.Embryo(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Embryo {
	return predicate.Embryo(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Embryo {
	return predicate.Embryo(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Embryo {
	return predicate.Embryo(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Embryo {
	return predicate.Embryo(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Embryo {
	return predicate.Embryo(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Embryo {
	return predicate.Embryo(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Embryo {
	return predicate.Embryo(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Embryo {
	return predicate.Embryo(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Embryo {
	return predicate.Embryo(sql.FieldLTE(FieldUpdatedAt, v))
}

// OocyteIDEQ applies the EQ predicate on the "oocyte_id" field.
func OocyteIDEQ(v uuid.UUID) predicate.Embryo {
	return predicate.Embryo(sql.FieldEQ(FieldOocyteID, v))
}

// OocyteIDNEQ applies the NEQ predicate on the "oocyte_id" field.
func OocyteIDNEQ(v uuid.UUID) predicate.Embryo {
	return predicate.Embryo(sql.FieldNEQ(FieldOocyteID, v))
}

// OocyteIDIn applies the In predicate on the "oocyte_id" field.
func OocyteIDIn(vs ...uuid.UUID) predicate.Embryo {
	return predicate.Embryo(sql.FieldIn(FieldOocyteID, vs...))
}

// OocyteIDNotIn applies the NotIn predicate on the "oocyte_id" field.
func OocyteIDNotIn(vs ...uuid.UUID) predicate.Embryo {
	return predicate.Embryo(sql.FieldNotIn(FieldOocyteID, vs...))
}

// EmbryoCodeEQ applies the EQ predicate on the "embryo_code" field.
func EmbryoCodeEQ(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldEQ(FieldEmbryoCode, v))
}

// EmbryoCodeNEQ applies the NEQ predicate on the "embryo_code" field.
func EmbryoCodeNEQ(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldNEQ(FieldEmbryoCode, v))
}

// EmbryoCodeIn applies the In predicate on the "embryo_code" field.
func EmbryoCodeIn(vs ...string) predicate.Embryo {
	return predicate.Embryo(sql.FieldIn(FieldEmbryoCode, vs...))
}

// EmbryoCodeNotIn applies the NotIn predicate on the "embryo_code" field.
func EmbryoCodeNotIn(vs ...string) predicate.Embryo {
	return predicate.Embryo(sql.FieldNotIn(FieldEmbryoCode, vs...))
}

// EmbryoCodeGT applies the GT predicate on the "embryo_code" field.
func EmbryoCodeGT(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldGT(FieldEmbryoCode, v))
}

// EmbryoCodeGTE applies the GTE predicate on the "embryo_code" field.
func EmbryoCodeGTE(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldGTE(FieldEmbryoCode, v))
}

// EmbryoCodeLT applies the LT predicate on the "embryo_code" field.
func EmbryoCodeLT(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldLT(FieldEmbryoCode, v))
}

// EmbryoCodeLTE applies the LTE predicate on the "embryo_code" field.
func EmbryoCodeLTE(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldLTE(FieldEmbryoCode, v))
}

// EmbryoCodeContains applies the Contains predicate on the "embryo_code" field.
func EmbryoCodeContains(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldContains(FieldEmbryoCode, v))
}

// EmbryoCodeHasPrefix applies the HasPrefix predicate on the "embryo_code" field.
func EmbryoCodeHasPrefix(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldHasPrefix(FieldEmbryoCode, v))
}

// EmbryoCodeHasSuffix applies the HasSuffix predicate on the "embryo_code" field.
func EmbryoCodeHasSuffix(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldHasSuffix(FieldEmbryoCode, v))
}

// EmbryoCodeEqualFold applies the EqualFold predicate on the "embryo_code" field.
func EmbryoCodeEqualFold(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldEqualFold(FieldEmbryoCode, v))
}

// EmbryoCodeContainsFold applies the ContainsFold predicate on the "embryo_code" field.
func EmbryoCodeContainsFold(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldContainsFold(FieldEmbryoCode, v))
}

// FertilizationTechniqueEQ applies the EQ predicate on the "fertilization_technique" field.
func FertilizationTechniqueEQ(v FertilizationTechnique) predicate.Embryo {
	return predicate.Embryo(sql.FieldEQ(FieldFertilizationTechnique, v))
}

// FertilizationTechniqueNEQ applies the NEQ predicate on the "fertilization_technique" field.
func FertilizationTechniqueNEQ(v FertilizationTechnique) predicate.Embryo {
	return predicate.Embryo(sql.FieldNEQ(FieldFertilizationTechnique, v))
}

// FertilizationTechniqueIn applies the In predicate on the "fertilization_technique" field.
func FertilizationTechniqueIn(vs ...FertilizationTechnique) predicate.Embryo {
	return predicate.Embryo(sql.FieldIn(FieldFertilizationTechnique, vs...))
}

// FertilizationTechniqueNotIn applies the NotIn predicate on the "fertilization_technique" field.
func FertilizationTechniqueNotIn(vs ...FertilizationTechnique) predicate.Embryo {
	return predicate.Embryo(sql.FieldNotIn(FieldFertilizationTechnique, vs...))
}

// SpermSourceEQ applies the EQ predicate on the "sperm_source" field.
func SpermSourceEQ(v SpermSource) predicate.Embryo {
	return predicate.Embryo(sql.FieldEQ(FieldSpermSource, v))
}

// SpermSourceNEQ applies the NEQ predicate on the "sperm_source" field.
func SpermSourceNEQ(v SpermSource) predicate.Embryo {
	return predicate.Embryo(sql.FieldNEQ(FieldSpermSource, v))
}

// SpermSourceIn applies the In predicate on the "sperm_source" field.
func SpermSourceIn(vs ...SpermSource) predicate.Embryo {
	return predicate.Embryo(sql.FieldIn(FieldSpermSource, vs...))
}

// SpermSourceNotIn applies the NotIn predicate on the "sperm_source" field.
func SpermSourceNotIn(vs ...SpermSource) predicate.Embryo {
	return predicate.Embryo(sql.FieldNotIn(FieldSpermSource, vs...))
}

// QualityEQ applies the EQ predicate on the "quality" field.
func QualityEQ(v int) predicate.Embryo {
	return predicate.Embryo(sql.FieldEQ(FieldQuality, v))
}

// QualityNEQ applies the NEQ predicate on the "quality" field.
func QualityNEQ(v int) predicate.Embryo {
	return predicate.Embryo(sql.FieldNEQ(FieldQuality, v))
}

// QualityIn applies the In predicate on the "quality" field.
func QualityIn(vs ...int) predicate.Embryo {
	return predicate.Embryo(sql.FieldIn(FieldQuality, vs...))
}

// QualityNotIn applies the NotIn predicate on the "quality" field.
func QualityNotIn(vs ...int) predicate.Embryo {
	return predicate.Embryo(sql.FieldNotIn(FieldQuality, vs...))
}

// QualityGT applies the GT predicate on the "quality" field.
func QualityGT(v int) predicate.Embryo {
	return predicate.Embryo(sql.FieldGT(FieldQuality, v))
}

// QualityGTE applies the GTE predicate on the "quality" field.
func QualityGTE(v int) predicate.Embryo {
	return predicate.Embryo(sql.FieldGTE(FieldQuality, v))
}

// QualityLT applies the LT predicate on the "quality" field.
func QualityLT(v int) predicate.Embryo {
	return predicate.Embryo(sql.FieldLT(FieldQuality, v))
}

// QualityLTE applies the LTE predicate on the "quality" field.
func QualityLTE(v int) predicate.Embryo {
	return predicate.Embryo(sql.FieldLTE(FieldQuality, v))
}

// CurrentStateEQ applies the EQ predicate on the "current_state" field.
func CurrentStateEQ(v CurrentState) predicate.Embryo {
	return predicate.Embryo(sql.FieldEQ(FieldCurrentState, v))
}

// CurrentStateNEQ applies the NEQ predicate on the "current_state" field.
func CurrentStateNEQ(v CurrentState) predicate.Embryo {
	return predicate.Embryo(sql.FieldNEQ(FieldCurrentState, v))
}

// CurrentStateIn applies the In predicate on the "current_state" field.
func CurrentStateIn(vs ...CurrentState) predicate.Embryo {
	return predicate.Embryo(sql.FieldIn(FieldCurrentState, vs...))
}

// CurrentStateNotIn applies the NotIn predicate on the "current_state" field.
func CurrentStateNotIn(vs ...CurrentState) predicate.Embryo {
	return predicate.Embryo(sql.FieldNotIn(FieldCurrentState, vs...))
}

// PgtPerformedEQ applies the EQ predicate on the "pgt_performed" field.
func PgtPerformedEQ(v bool) predicate.Embryo {
	return predicate.Embryo(sql.FieldEQ(FieldPgtPerformed, v))
}

// PgtPerformedNEQ applies the NEQ predicate on the "pgt_performed" field.
func PgtPerformedNEQ(v bool) predicate.Embryo {
	return predicate.Embryo(sql.FieldNEQ(FieldPgtPerformed, v))
}

// PgtResultEQ applies the EQ predicate on the "pgt_result" field.
func PgtResultEQ(v bool) predicate.Embryo {
	return predicate.Embryo(sql.FieldEQ(FieldPgtResult, v))
}

// PgtResultNEQ applies the NEQ predicate on the "pgt_result" field.
func PgtResultNEQ(v bool) predicate.Embryo {
	return predicate.Embryo(sql.FieldNEQ(FieldPgtResult, v))
}

// PgtResultIsNil applies the IsNil predicate on the "pgt_result" field.
func PgtResultIsNil() predicate.Embryo {
	return predicate.Embryo(sql.FieldIsNull(FieldPgtResult))
}

// PgtResultNotNil applies the NotNil predicate on the "pgt_result" field.
func PgtResultNotNil() predicate.Embryo {
	return predicate.Embryo(sql.FieldNotNull(FieldPgtResult))
}

// NitrogenTubeEQ applies the EQ predicate on the "nitrogen_tube" field.
func NitrogenTubeEQ(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldEQ(FieldNitrogenTube, v))
}

// NitrogenTubeNEQ applies the NEQ predicate on the "nitrogen_tube" field.
func NitrogenTubeNEQ(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldNEQ(FieldNitrogenTube, v))
}

// NitrogenTubeIn applies the In predicate on the "nitrogen_tube" field.
func NitrogenTubeIn(vs ...string) predicate.Embryo {
	return predicate.Embryo(sql.FieldIn(FieldNitrogenTube, vs...))
}

// NitrogenTubeNotIn applies the NotIn predicate on the "nitrogen_tube" field.
func NitrogenTubeNotIn(vs ...string) predicate.Embryo {
	return predicate.Embryo(sql.FieldNotIn(FieldNitrogenTube, vs...))
}

// NitrogenTubeGT applies the GT predicate on the "nitrogen_tube" field.
func NitrogenTubeGT(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldGT(FieldNitrogenTube, v))
}

// NitrogenTubeGTE applies the GTE predicate on the "nitrogen_tube" field.
func NitrogenTubeGTE(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldGTE(FieldNitrogenTube, v))
}

// NitrogenTubeLT applies the LT predicate on the "nitrogen_tube" field.
func NitrogenTubeLT(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldLT(FieldNitrogenTube, v))
}

// NitrogenTubeLTE applies the LTE predicate on the "nitrogen_tube" field.
func NitrogenTubeLTE(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldLTE(FieldNitrogenTube, v))
}

// NitrogenTubeContains applies the Contains predicate on the "nitrogen_tube" field.
func NitrogenTubeContains(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldContains(FieldNitrogenTube, v))
}

// NitrogenTubeHasPrefix applies the HasPrefix predicate on the "nitrogen_tube" field.
func NitrogenTubeHasPrefix(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldHasPrefix(FieldNitrogenTube, v))
}

// NitrogenTubeHasSuffix applies the HasSuffix predicate on the "nitrogen_tube" field.
func NitrogenTubeHasSuffix(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldHasSuffix(FieldNitrogenTube, v))
}

// NitrogenTubeIsNil applies the IsNil predicate on the "nitrogen_tube" field.
func NitrogenTubeIsNil() predicate.Embryo {
	return predicate.Embryo(sql.FieldIsNull(FieldNitrogenTube))
}

// NitrogenTubeNotNil applies the NotNil predicate on the "nitrogen_tube" field.
func NitrogenTubeNotNil() predicate.Embryo {
	return predicate.Embryo(sql.FieldNotNull(FieldNitrogenTube))
}

// NitrogenTubeEqualFold applies the EqualFold predicate on the "nitrogen_tube" field.
func NitrogenTubeEqualFold(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldEqualFold(FieldNitrogenTube, v))
}

// NitrogenTubeContainsFold applies the ContainsFold predicate on the "nitrogen_tube" field.
func NitrogenTubeContainsFold(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldContainsFold(FieldNitrogenTube, v))
}

// RackNumberEQ applies the EQ predicate on the "rack_number" field.
func RackNumberEQ(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldEQ(FieldRackNumber, v))
}

// RackNumberNEQ applies the NEQ predicate on the "rack_number" field.
func RackNumberNEQ(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldNEQ(FieldRackNumber, v))
}

// RackNumberIn applies the In predicate on the "rack_number" field.
func RackNumberIn(vs ...string) predicate.Embryo {
	return predicate.Embryo(sql.FieldIn(FieldRackNumber, vs...))
}

// RackNumberNotIn applies the NotIn predicate on the "rack_number" field.
func RackNumberNotIn(vs ...string) predicate.Embryo {
	return predicate.Embryo(sql.FieldNotIn(FieldRackNumber, vs...))
}

// RackNumberGT applies the GT predicate on the "rack_number" field.
func RackNumberGT(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldGT(FieldRackNumber, v))
}

// RackNumberGTE applies the GTE predicate on the "rack_number" field.
func RackNumberGTE(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldGTE(FieldRackNumber, v))
}

// RackNumberLT applies the LT predicate on the "rack_number" field.
func RackNumberLT(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldLT(FieldRackNumber, v))
}

// RackNumberLTE applies the LTE predicate on the "rack_number" field.
func RackNumberLTE(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldLTE(FieldRackNumber, v))
}

// RackNumberContains applies the Contains predicate on the "rack_number" field.
func RackNumberContains(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldContains(FieldRackNumber, v))
}

// RackNumberHasPrefix applies the HasPrefix predicate on the "rack_number" field.
func RackNumberHasPrefix(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldHasPrefix(FieldRackNumber, v))
}

// RackNumberHasSuffix applies the HasSuffix predicate on the "rack_number" field.
func RackNumberHasSuffix(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldHasSuffix(FieldRackNumber, v))
}

// RackNumberIsNil applies the IsNil predicate on the "rack_number" field.
func RackNumberIsNil() predicate.Embryo {
	return predicate.Embryo(sql.FieldIsNull(FieldRackNumber))
}

// RackNumberNotNil applies the NotNil predicate on the "rack_number" field.
func RackNumberNotNil() predicate.Embryo {
	return predicate.Embryo(sql.FieldNotNull(FieldRackNumber))
}

// RackNumberEqualFold applies the EqualFold predicate on the "rack_number" field.
func RackNumberEqualFold(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldEqualFold(FieldRackNumber, v))
}

// RackNumberContainsFold applies the ContainsFold predicate on the "rack_number" field.
func RackNumberContainsFold(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldContainsFold(FieldRackNumber, v))
}

// DiscardReasonEQ applies the EQ predicate on the "discard_reason" field.
func DiscardReasonEQ(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldEQ(FieldDiscardReason, v))
}

// DiscardReasonNEQ applies the NEQ predicate on the "discard_reason" field.
func DiscardReasonNEQ(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldNEQ(FieldDiscardReason, v))
}

// DiscardReasonIn applies the In predicate on the "discard_reason" field.
func DiscardReasonIn(vs ...string) predicate.Embryo {
	return predicate.Embryo(sql.FieldIn(FieldDiscardReason, vs...))
}

// DiscardReasonNotIn applies the NotIn predicate on the "discard_reason" field.
func DiscardReasonNotIn(vs ...string) predicate.Embryo {
	return predicate.Embryo(sql.FieldNotIn(FieldDiscardReason, vs...))
}

// DiscardReasonGT applies the GT predicate on the "discard_reason" field.
func DiscardReasonGT(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldGT(FieldDiscardReason, v))
}

// DiscardReasonGTE applies the GTE predicate on the "discard_reason" field.
func DiscardReasonGTE(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldGTE(FieldDiscardReason, v))
}

// DiscardReasonLT applies the LT predicate on the "discard_reason" field.
func DiscardReasonLT(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldLT(FieldDiscardReason, v))
}

// DiscardReasonLTE applies the LTE predicate on the "discard_reason" field.
func DiscardReasonLTE(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldLTE(FieldDiscardReason, v))
}

// DiscardReasonContains applies the Contains predicate on the "discard_reason" field.
func DiscardReasonContains(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldContains(FieldDiscardReason, v))
}

// DiscardReasonHasPrefix applies the HasPrefix predicate on the "discard_reason" field.
func DiscardReasonHasPrefix(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldHasPrefix(FieldDiscardReason, v))
}

// DiscardReasonHasSuffix applies the HasSuffix predicate on the "discard_reason" field.
func DiscardReasonHasSuffix(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldHasSuffix(FieldDiscardReason, v))
}

// DiscardReasonIsNil applies the IsNil predicate on the "discard_reason" field.
func DiscardReasonIsNil() predicate.Embryo {
	return predicate.Embryo(sql.FieldIsNull(FieldDiscardReason))
}

// DiscardReasonNotNil applies the NotNil predicate on the "discard_reason" field.
func DiscardReasonNotNil() predicate.Embryo {
	return predicate.Embryo(sql.FieldNotNull(FieldDiscardReason))
}

// DiscardReasonEqualFold applies the EqualFold predicate on the "discard_reason" field.
func DiscardReasonEqualFold(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldEqualFold(FieldDiscardReason, v))
}

// DiscardReasonContainsFold applies the ContainsFold predicate on the "discard_reason" field.
func DiscardReasonContainsFold(v string) predicate.Embryo {
	return predicate.Embryo(sql.FieldContainsFold(FieldDiscardReason, v))
}

// HasOocyte applies the HasEdge predicate on the "oocyte" edge.
func HasOocyte() predicate.Embryo {
	return predicate.Embryo(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, OocyteTable, OocyteColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOocyteWith applies the HasEdge predicate on the "oocyte" edge with a given conditions (other predicates).
func HasOocyteWith(preds ...predicate.Oocyte) predicate.Embryo {
	return predicate.Embryo(func(s *sql.Selector) {
		step := newOocyteStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTransfer applies the HasEdge predicate on the "transfer" edge.
func HasTransfer() predicate.Embryo {
	return predicate.Embryo(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, TransferTable, TransferColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTransferWith applies the HasEdge predicate on the "transfer" edge with a given conditions (other predicates).
func HasTransferWith(preds ...predicate.EmbryoTransfer) predicate.Embryo {
	return predicate.Embryo(func(s *sql.Selector) {
		step := newTransferStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Embryo) predicate.Embryo {
	return predicate.Embryo(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Embryo) predicate.Embryo {
	return predicate.Embryo(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Embryo) predicate.Embryo {
	return predicate.Embryo(sql.NotPredicates(p))
}
