// Code generated by ent, DO NOT EDIT.

package oocyte

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldEQ(FieldUpdatedAt, v))
}

// PunctureID applies equality check predicate on the "puncture_id" field. It's identical to PunctureIDEQ.
func PunctureID(v uuid.UUID) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldEQ(FieldPunctureID, v))
}

// OocyteCode applies equality check predicate on the "oocyte_code" field. It's identical to OocyteCodeEQ.
func OocyteCode(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldEQ(FieldOocyteCode, v))
}

// MaturationTimeHours applies equality check predicate on the "maturation_time_hours" field. It's identical to MaturationTimeHoursEQ.
func MaturationTimeHours(v int) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldEQ(FieldMaturationTimeHours, v))
}

// DiscardReason applies equality check predicate on the "discard_reason" field. It's identical to DiscardReasonEQ.
func DiscardReason(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldEQ(FieldDiscardReason, v))
}

// NitrogenTube applies equality check predicate on the "nitrogen_tube" field. It's identical to NitrogenTubeEQ.
func NitrogenTube(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldEQ(FieldNitrogenTube, v))
}

// RackNumber applies equality check predicate on the "rack_number" field. It's identical to RackNumberEQ.
func RackNumber(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldEQ(FieldRackNumber, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldLTE(FieldUpdatedAt, v))
}

// PunctureIDEQ applies the EQ predicate on the "puncture_id" field.
func PunctureIDEQ(v uuid.UUID) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldEQ(FieldPunctureID, v))
}

// PunctureIDNEQ applies the NEQ predicate on the "puncture_id" field.
func PunctureIDNEQ(v uuid.UUID) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNEQ(FieldPunctureID, v))
}

// PunctureIDIn applies the In predicate on the "puncture_id" field.
func PunctureIDIn(vs ...uuid.UUID) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldIn(FieldPunctureID, vs...))
}

// PunctureIDNotIn applies the NotIn predicate on the "puncture_id" field.
func PunctureIDNotIn(vs ...uuid.UUID) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNotIn(FieldPunctureID, vs...))
}

// OocyteCodeEQ applies the EQ predicate on the "oocyte_code" field.
func OocyteCodeEQ(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldEQ(FieldOocyteCode, v))
}

// OocyteCodeNEQ applies the NEQ predicate on the "oocyte_code" field.
func OocyteCodeNEQ(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNEQ(FieldOocyteCode, v))
}

// OocyteCodeIn applies the In predicate on the "oocyte_code" field.
func OocyteCodeIn(vs ...string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldIn(FieldOocyteCode, vs...))
}

// OocyteCodeNotIn applies the NotIn predicate on the "oocyte_code" field.
func OocyteCodeNotIn(vs ...string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNotIn(FieldOocyteCode, vs...))
}

// OocyteCodeGT applies the GT predicate on the "oocyte_code" field.
func OocyteCodeGT(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldGT(FieldOocyteCode, v))
}

// OocyteCodeGTE applies the GTE predicate on the "oocyte_code" field.
func OocyteCodeGTE(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldGTE(FieldOocyteCode, v))
}

// OocyteCodeLT applies the LT predicate on the "oocyte_code" field.
func OocyteCodeLT(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldLT(FieldOocyteCode, v))
}

// OocyteCodeLTE applies the LTE predicate on the "oocyte_code" field.
func OocyteCodeLTE(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldLTE(FieldOocyteCode, v))
}

// OocyteCodeContains applies the Contains predicate on the "oocyte_code" field.
func OocyteCodeContains(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldContains(FieldOocyteCode, v))
}

// OocyteCodeHasPrefix applies the HasPrefix predicate on the "oocyte_code" field.
func OocyteCodeHasPrefix(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldHasPrefix(FieldOocyteCode, v))
}

// OocyteCodeHasSuffix applies the HasSuffix predicate on the "oocyte_code" field.
func OocyteCodeHasSuffix(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldHasSuffix(FieldOocyteCode, v))
}

// OocyteCodeEqualFold applies the EqualFold predicate on the "oocyte_code" field.
func OocyteCodeEqualFold(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldEqualFold(FieldOocyteCode, v))
}

// OocyteCodeContainsFold applies the ContainsFold predicate on the "oocyte_code" field.
func OocyteCodeContainsFold(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldContainsFold(FieldOocyteCode, v))
}

// InitialStateEQ applies the EQ predicate on the "initial_state" field.
func InitialStateEQ(v InitialState) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldEQ(FieldInitialState, v))
}

// InitialStateNEQ applies the NEQ predicate on the "initial_state" field.
func InitialStateNEQ(v InitialState) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNEQ(FieldInitialState, v))
}

// InitialStateIn applies the In predicate on the "initial_state" field.
func InitialStateIn(vs ...InitialState) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldIn(FieldInitialState, vs...))
}

// InitialStateNotIn applies the NotIn predicate on the "initial_state" field.
func InitialStateNotIn(vs ...InitialState) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNotIn(FieldInitialState, vs...))
}

// CurrentStateEQ applies the EQ predicate on the "current_state" field.
func CurrentStateEQ(v CurrentState) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldEQ(FieldCurrentState, v))
}

// CurrentStateNEQ applies the NEQ predicate on the "current_state" field.
func CurrentStateNEQ(v CurrentState) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNEQ(FieldCurrentState, v))
}

// CurrentStateIn applies the In predicate on the "current_state" field.
func CurrentStateIn(vs ...CurrentState) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldIn(FieldCurrentState, vs...))
}

// CurrentStateNotIn applies the NotIn predicate on the "current_state" field.
func CurrentStateNotIn(vs ...CurrentState) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNotIn(FieldCurrentState, vs...))
}

// MaturationTimeHoursEQ applies the EQ predicate on the "maturation_time_hours" field.
func MaturationTimeHoursEQ(v int) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldEQ(FieldMaturationTimeHours, v))
}

// MaturationTimeHoursNEQ applies the NEQ predicate on the "maturation_time_hours" field.
func MaturationTimeHoursNEQ(v int) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNEQ(FieldMaturationTimeHours, v))
}

// MaturationTimeHoursIn applies the In predicate on the "maturation_time_hours" field.
func MaturationTimeHoursIn(vs ...int) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldIn(FieldMaturationTimeHours, vs...))
}

// MaturationTimeHoursNotIn applies the NotIn predicate on the "maturation_time_hours" field.
func MaturationTimeHoursNotIn(vs ...int) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNotIn(FieldMaturationTimeHours, vs...))
}

// MaturationTimeHoursGT applies the GT predicate on the "maturation_time_hours" field.
func MaturationTimeHoursGT(v int) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldGT(FieldMaturationTimeHours, v))
}

// MaturationTimeHoursGTE applies the GTE predicate on the "maturation_time_hours" field.
func MaturationTimeHoursGTE(v int) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldGTE(FieldMaturationTimeHours, v))
}

// MaturationTimeHoursLT applies the LT predicate on the "maturation_time_hours" field.
func MaturationTimeHoursLT(v int) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldLT(FieldMaturationTimeHours, v))
}

// MaturationTimeHoursLTE applies the LTE predicate on the "maturation_time_hours" field.
func MaturationTimeHoursLTE(v int) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldLTE(FieldMaturationTimeHours, v))
}

// MaturationTimeHoursIsNil applies the IsNil predicate on the "maturation_time_hours" field.
func MaturationTimeHoursIsNil() predicate.Oocyte {
	return predicate.Oocyte(sql.FieldIsNull(FieldMaturationTimeHours))
}

// MaturationTimeHoursNotNil applies the NotNil predicate on the "maturation_time_hours" field.
func MaturationTimeHoursNotNil() predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNotNull(FieldMaturationTimeHours))
}

// DiscardReasonEQ applies the EQ predicate on the "discard_reason" field.
func DiscardReasonEQ(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldEQ(FieldDiscardReason, v))
}

// DiscardReasonNEQ applies the NEQ predicate on the "discard_reason" field.
func DiscardReasonNEQ(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNEQ(FieldDiscardReason, v))
}

// DiscardReasonIn applies the In predicate on the "discard_reason" field.
func DiscardReasonIn(vs ...string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldIn(FieldDiscardReason, vs...))
}

// DiscardReasonNotIn applies the NotIn predicate on the "discard_reason" field.
func DiscardReasonNotIn(vs ...string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNotIn(FieldDiscardReason, vs...))
}

// DiscardReasonGT applies the GT predicate on the "discard_reason" field.
func DiscardReasonGT(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldGT(FieldDiscardReason, v))
}

// DiscardReasonGTE applies the GTE predicate on the "discard_reason" field.
func DiscardReasonGTE(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldGTE(FieldDiscardReason, v))
}

// DiscardReasonLT applies the LT predicate on the "discard_reason" field.
func DiscardReasonLT(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldLT(FieldDiscardReason, v))
}

// DiscardReasonLTE applies the LTE predicate on the "discard_reason" field.
func DiscardReasonLTE(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldLTE(FieldDiscardReason, v))
}

// DiscardReasonContains applies the Contains predicate on the "discard_reason" field.
func DiscardReasonContains(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldContains(FieldDiscardReason, v))
}

// DiscardReasonHasPrefix applies the HasPrefix predicate on the "discard_reason" field.
func DiscardReasonHasPrefix(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldHasPrefix(FieldDiscardReason, v))
}

// DiscardReasonHasSuffix applies the HasSuffix predicate on the "discard_reason" field.
func DiscardReasonHasSuffix(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldHasSuffix(FieldDiscardReason, v))
}

// DiscardReasonIsNil applies the IsNil predicate on the "discard_reason" field.
func DiscardReasonIsNil() predicate.Oocyte {
	return predicate.Oocyte(sql.FieldIsNull(FieldDiscardReason))
}

// DiscardReasonNotNil applies the NotNil predicate on the "discard_reason" field.
func DiscardReasonNotNil() predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNotNull(FieldDiscardReason))
}

// DiscardReasonEqualFold applies the EqualFold predicate on the "discard_reason" field.
func DiscardReasonEqualFold(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldEqualFold(FieldDiscardReason, v))
}

// DiscardReasonContainsFold applies the ContainsFold predicate on the "discard_reason" field.
func DiscardReasonContainsFold(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldContainsFold(FieldDiscardReason, v))
}

// NitrogenTubeEQ applies the EQ predicate on the "nitrogen_tube" field.
func NitrogenTubeEQ(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldEQ(FieldNitrogenTube, v))
}

// NitrogenTubeNEQ applies the NEQ predicate on the "nitrogen_tube" field.
func NitrogenTubeNEQ(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNEQ(FieldNitrogenTube, v))
}

// NitrogenTubeIn applies the In predicate on the "nitrogen_tube" field.
func NitrogenTubeIn(vs ...string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldIn(FieldNitrogenTube, vs...))
}

// NitrogenTubeNotIn applies the NotIn predicate on the "nitrogen_tube" field.
func NitrogenTubeNotIn(vs ...string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNotIn(FieldNitrogenTube, vs...))
}

// NitrogenTubeGT applies the GT predicate on the "nitrogen_tube" field.
func NitrogenTubeGT(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldGT(FieldNitrogenTube, v))
}

// NitrogenTubeGTE applies the GTE predicate on the "nitrogen_tube" field.
func NitrogenTubeGTE(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldGTE(FieldNitrogenTube, v))
}

// NitrogenTubeLT applies the LT predicate on the "nitrogen_tube" field.
func NitrogenTubeLT(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldLT(FieldNitrogenTube, v))
}

// NitrogenTubeLTE applies the LTE predicate on the "nitrogen_tube" field.
func NitrogenTubeLTE(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldLTE(FieldNitrogenTube, v))
}

// NitrogenTubeContains applies the Contains predicate on the "nitrogen_tube" field.
func NitrogenTubeContains(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldContains(FieldNitrogenTube, v))
}

// NitrogenTubeHasPrefix applies the HasPrefix predicate on the "nitrogen_tube" field.
func NitrogenTubeHasPrefix(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldHasPrefix(FieldNitrogenTube, v))
}

// NitrogenTubeHasSuffix applies the HasSuffix predicate on the "nitrogen_tube" field.
func NitrogenTubeHasSuffix(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldHasSuffix(FieldNitrogenTube, v))
}

// NitrogenTubeIsNil applies the IsNil predicate on the "nitrogen_tube" field.
func NitrogenTubeIsNil() predicate.Oocyte {
	return predicate.Oocyte(sql.FieldIsNull(FieldNitrogenTube))
}

// NitrogenTubeNotNil applies the NotNil predicate on the "nitrogen_tube" field.
func NitrogenTubeNotNil() predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNotNull(FieldNitrogenTube))
}

// NitrogenTubeEqualFold applies the EqualFold predicate on the "nitrogen_tube" field.
func NitrogenTubeEqualFold(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldEqualFold(FieldNitrogenTube, v))
}

// NitrogenTubeContainsFold applies the ContainsFold predicate on the "nitrogen_tube" field.
func NitrogenTubeContainsFold(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldContainsFold(FieldNitrogenTube, v))
}

// RackNumberEQ applies the EQ predicate on the "rack_number" field.
func RackNumberEQ(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldEQ(FieldRackNumber, v))
}

// RackNumberNEQ applies the NEQ predicate on the "rack_number" field.
func RackNumberNEQ(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNEQ(FieldRackNumber, v))
}

// RackNumberIn applies the In predicate on the "rack_number" field.
func RackNumberIn(vs ...string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldIn(FieldRackNumber, vs...))
}

// RackNumberNotIn applies the NotIn predicate on the "rack_number" field.
func RackNumberNotIn(vs ...string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNotIn(FieldRackNumber, vs...))
}

// RackNumberGT applies the GT predicate on the "rack_number" field.
func RackNumberGT(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldGT(FieldRackNumber, v))
}

// RackNumberGTE applies the GTE predicate on the "rack_number" field.
func RackNumberGTE(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldGTE(FieldRackNumber, v))
}

// RackNumberLT applies the LT predicate on the "rack_number" field.
func RackNumberLT(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldLT(FieldRackNumber, v))
}

// RackNumberLTE applies the LTE predicate on the "rack_number" field.
func RackNumberLTE(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldLTE(FieldRackNumber, v))
}

// RackNumberContains applies the Contains predicate on the "rack_number" field.
func RackNumberContains(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldContains(FieldRackNumber, v))
}

// RackNumberHasPrefix applies the HasPrefix predicate on the "rack_number" field.
func RackNumberHasPrefix(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldHasPrefix(FieldRackNumber, v))
}

// RackNumberHasSuffix applies the HasSuffix predicate on the "rack_number" field.
func RackNumberHasSuffix(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldHasSuffix(FieldRackNumber, v))
}

// RackNumberIsNil applies the IsNil predicate on the "rack_number" field.
func RackNumberIsNil() predicate.Oocyte {
	return predicate.Oocyte(sql.FieldIsNull(FieldRackNumber))
}

// RackNumberNotNil applies the NotNil predicate on the "rack_number" field.
func RackNumberNotNil() predicate.Oocyte {
	return predicate.Oocyte(sql.FieldNotNull(FieldRackNumber))
}

// RackNumberEqualFold applies the EqualFold predicate on the "rack_number" field.
func RackNumberEqualFold(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldEqualFold(FieldRackNumber, v))
}

// RackNumberContainsFold applies the ContainsFold predicate on the "rack_number" field.
func RackNumberContainsFold(v string) predicate.Oocyte {
	return predicate.Oocyte(sql.FieldContainsFold(FieldRackNumber, v))
}

// HasPuncture applies the HasEdge predicate on the "puncture" edge.
func HasPuncture() predicate.Oocyte {
	return predicate.Oocyte(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PunctureTable, PunctureColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPunctureWith applies the HasEdge predicate on the "puncture" edge with a given conditions (other predicates).
func HasPunctureWith(preds ...predicate.Puncture) predicate.Oocyte {
	return predicate.Oocyte(func(s *sql.Selector) {
		step := newPunctureStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStateHistory applies the HasEdge predicate on the "state_history" edge.
func HasStateHistory() predicate.Oocyte {
	return predicate.Oocyte(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StateHistoryTable, StateHistoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStateHistoryWith applies the HasEdge predicate on the "state_history" edge with a given conditions (other predicates).
func HasStateHistoryWith(preds ...predicate.OocyteStateHistory) predicate.Oocyte {
	return predicate.Oocyte(func(s *sql.Selector) {
		step := newStateHistoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEmbryo applies the HasEdge predicate on the "embryo" edge.
func HasEmbryo() predicate.Oocyte {
	return predicate.Oocyte(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, EmbryoTable, EmbryoColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEmbryoWith applies the HasEdge predicate on the "embryo" edge with a given conditions (other predicates).
func HasEmbryoWith(preds ...predicate.Embryo) predicate.Oocyte {
	return predicate.Oocyte(func(s *sql.Selector) {
		step := newEmbryoStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Oocyte) predicate.Oocyte {
	return predicate.Oocyte(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Oocyte) predicate.Oocyte {
	return predicate.Oocyte(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Oocyte) predicate.Oocyte {
	return predicate.Oocyte(sql.NotPredicates(p))
}
