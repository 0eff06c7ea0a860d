// Code generated by ent, DO NOT EDIT.

package treatment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldPatientID, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldDoctorID, v))
}

// StimulationProtocol applies equality check predicate on the "stimulation_protocol" field. It's identical to StimulationProtocolEQ.
func StimulationProtocol(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldStimulationProtocol, v))
}

// MedicationType applies equality check predicate on the "medication_type" field. It's identical to MedicationTypeEQ.
func MedicationType(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldMedicationType, v))
}

// MedicationDose applies equality check predicate on the "medication_dose" field. It's identical to MedicationDoseEQ.
func MedicationDose(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldMedicationDose, v))
}

// MedicationDuration applies equality check predicate on the "medication_duration" field. It's identical to MedicationDurationEQ.
func MedicationDuration(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldMedicationDuration, v))
}

// OocytesViable applies equality check predicate on the "oocytes_viable" field. It's identical to OocytesViableEQ.
func OocytesViable(v bool) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldOocytesViable, v))
}

// SpermViable applies equality check predicate on the "sperm_viable" field. It's identical to SpermViableEQ.
func SpermViable(v bool) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldSpermViable, v))
}

// ConsentDocumentKey applies equality check predicate on the "consent_document_key" field. It's identical to ConsentDocumentKeyEQ.
func ConsentDocumentKey(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldConsentDocumentKey, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldPatientID, vs...))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldDoctorID, vs...))
}

// ObjectiveEQ applies the EQ predicate on the "objective" field.
func ObjectiveEQ(v Objective) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldObjective, v))
}

// ObjectiveNEQ applies the NEQ predicate on the "objective" field.
func ObjectiveNEQ(v Objective) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldObjective, v))
}

// ObjectiveIn applies the In predicate on the "objective" field.
func ObjectiveIn(vs ...Objective) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldObjective, vs...))
}

// ObjectiveNotIn applies the NotIn predicate on the "objective" field.
func ObjectiveNotIn(vs ...Objective) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldObjective, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldStatus, vs...))
}

// StimulationProtocolEQ applies the EQ predicate on the "stimulation_protocol" field.
func StimulationProtocolEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldStimulationProtocol, v))
}

// StimulationProtocolNEQ applies the NEQ predicate on the "stimulation_protocol" field.
func StimulationProtocolNEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldStimulationProtocol, v))
}

// StimulationProtocolIn applies the In predicate on the "stimulation_protocol" field.
func StimulationProtocolIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldStimulationProtocol, vs...))
}

// StimulationProtocolNotIn applies the NotIn predicate on the "stimulation_protocol" field.
func StimulationProtocolNotIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldStimulationProtocol, vs...))
}

// StimulationProtocolGT applies the GT predicate on the "stimulation_protocol" field.
func StimulationProtocolGT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldStimulationProtocol, v))
}

// StimulationProtocolGTE applies the GTE predicate on the "stimulation_protocol" field.
func StimulationProtocolGTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldStimulationProtocol, v))
}

// StimulationProtocolLT applies the LT predicate on the "stimulation_protocol" field.
func StimulationProtocolLT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldStimulationProtocol, v))
}

// StimulationProtocolLTE applies the LTE predicate on the "stimulation_protocol" field.
func StimulationProtocolLTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldStimulationProtocol, v))
}

// StimulationProtocolContains applies the Contains predicate on the "stimulation_protocol" field.
func StimulationProtocolContains(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContains(FieldStimulationProtocol, v))
}

// StimulationProtocolHasPrefix applies the HasPrefix predicate on the "stimulation_protocol" field.
func StimulationProtocolHasPrefix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasPrefix(FieldStimulationProtocol, v))
}

// StimulationProtocolHasSuffix applies the HasSuffix predicate on the "stimulation_protocol" field.
func StimulationProtocolHasSuffix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasSuffix(FieldStimulationProtocol, v))
}

// StimulationProtocolIsNil applies the IsNil predicate on the "stimulation_protocol" field.
func StimulationProtocolIsNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldIsNull(FieldStimulationProtocol))
}

// StimulationProtocolNotNil applies the NotNil predicate on the "stimulation_protocol" field.
func StimulationProtocolNotNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldNotNull(FieldStimulationProtocol))
}

// StimulationProtocolEqualFold applies the EqualFold predicate on the "stimulation_protocol" field.
func StimulationProtocolEqualFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEqualFold(FieldStimulationProtocol, v))
}

// StimulationProtocolContainsFold applies the ContainsFold predicate on the "stimulation_protocol" field.
func StimulationProtocolContainsFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContainsFold(FieldStimulationProtocol, v))
}

// MedicationTypeEQ applies the EQ predicate on the "medication_type" field.
func MedicationTypeEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldMedicationType, v))
}

// MedicationTypeNEQ applies the NEQ predicate on the "medication_type" field.
func MedicationTypeNEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldMedicationType, v))
}

// MedicationTypeIn applies the In predicate on the "medication_type" field.
func MedicationTypeIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldMedicationType, vs...))
}

// MedicationTypeNotIn applies the NotIn predicate on the "medication_type" field.
func MedicationTypeNotIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldMedicationType, vs...))
}

// MedicationTypeGT applies the GT predicate on the "medication_type" field.
func MedicationTypeGT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldMedicationType, v))
}

// MedicationTypeGTE applies the GTE predicate on the "medication_type" field.
func MedicationTypeGTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldMedicationType, v))
}

// MedicationTypeLT applies the LT predicate on the "medication_type" field.
func MedicationTypeLT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldMedicationType, v))
}

// MedicationTypeLTE applies the LTE predicate on the "medication_type" field.
func MedicationTypeLTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldMedicationType, v))
}

// MedicationTypeContains applies the Contains predicate on the "medication_type" field.
func MedicationTypeContains(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContains(FieldMedicationType, v))
}

// MedicationTypeHasPrefix applies the HasPrefix predicate on the "medication_type" field.
func MedicationTypeHasPrefix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasPrefix(FieldMedicationType, v))
}

// MedicationTypeHasSuffix applies the HasSuffix predicate on the "medication_type" field.
func MedicationTypeHasSuffix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasSuffix(FieldMedicationType, v))
}

// MedicationTypeIsNil applies the IsNil predicate on the "medication_type" field.
func MedicationTypeIsNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldIsNull(FieldMedicationType))
}

// MedicationTypeNotNil applies the NotNil predicate on the "medication_type" field.
func MedicationTypeNotNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldNotNull(FieldMedicationType))
}

// MedicationTypeEqualFold applies the EqualFold predicate on the "medication_type" field.
func MedicationTypeEqualFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEqualFold(FieldMedicationType, v))
}

// MedicationTypeContainsFold applies the ContainsFold predicate on the "medication_type" field.
func MedicationTypeContainsFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContainsFold(FieldMedicationType, v))
}

// MedicationDoseEQ applies the EQ predicate on the "medication_dose" field.
func MedicationDoseEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldMedicationDose, v))
}

// MedicationDoseNEQ applies the NEQ predicate on the "medication_dose" field.
func MedicationDoseNEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldMedicationDose, v))
}

// MedicationDoseIn applies the In predicate on the "medication_dose" field.
func MedicationDoseIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldMedicationDose, vs...))
}

// MedicationDoseNotIn applies the NotIn predicate on the "medication_dose" field.
func MedicationDoseNotIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldMedicationDose, vs...))
}

// MedicationDoseGT applies the GT predicate on the "medication_dose" field.
func MedicationDoseGT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldMedicationDose, v))
}

// MedicationDoseGTE applies the GTE predicate on the "medication_dose" field.
func MedicationDoseGTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldMedicationDose, v))
}

// MedicationDoseLT applies the LT predicate on the "medication_dose" field.
func MedicationDoseLT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldMedicationDose, v))
}

// MedicationDoseLTE applies the LTE predicate on the "medication_dose" field.
func MedicationDoseLTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldMedicationDose, v))
}

// MedicationDoseContains applies the Contains predicate on the "medication_dose" field.
func MedicationDoseContains(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContains(FieldMedicationDose, v))
}

// MedicationDoseHasPrefix applies the HasPrefix predicate on the "medication_dose" field.
func MedicationDoseHasPrefix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasPrefix(FieldMedicationDose, v))
}

// MedicationDoseHasSuffix applies the HasSuffix predicate on the "medication_dose" field.
func MedicationDoseHasSuffix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasSuffix(FieldMedicationDose, v))
}

// MedicationDoseIsNil applies the IsNil predicate on the "medication_dose" field.
func MedicationDoseIsNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldIsNull(FieldMedicationDose))
}

// MedicationDoseNotNil applies the NotNil predicate on the "medication_dose" field.
func MedicationDoseNotNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldNotNull(FieldMedicationDose))
}

// MedicationDoseEqualFold applies the EqualFold predicate on the "medication_dose" field.
func MedicationDoseEqualFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEqualFold(FieldMedicationDose, v))
}

// MedicationDoseContainsFold applies the ContainsFold predicate on the "medication_dose" field.
func MedicationDoseContainsFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContainsFold(FieldMedicationDose, v))
}

// MedicationDurationEQ applies the EQ predicate on the "medication_duration" field.
func MedicationDurationEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldMedicationDuration, v))
}

// MedicationDurationNEQ applies the NEQ predicate on the "medication_duration" field.
func MedicationDurationNEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldMedicationDuration, v))
}

// MedicationDurationIn applies the In predicate on the "medication_duration" field.
func MedicationDurationIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldMedicationDuration, vs...))
}

// MedicationDurationNotIn applies the NotIn predicate on the "medication_duration" field.
func MedicationDurationNotIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldMedicationDuration, vs...))
}

// MedicationDurationGT applies the GT predicate on the "medication_duration" field.
func MedicationDurationGT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldMedicationDuration, v))
}

// MedicationDurationGTE applies the GTE predicate on the "medication_duration" field.
func MedicationDurationGTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldMedicationDuration, v))
}

// MedicationDurationLT applies the LT predicate on the "medication_duration" field.
func MedicationDurationLT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldMedicationDuration, v))
}

// MedicationDurationLTE applies the LTE predicate on the "medication_duration" field.
func MedicationDurationLTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldMedicationDuration, v))
}

// MedicationDurationContains applies the Contains predicate on the "medication_duration" field.
func MedicationDurationContains(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContains(FieldMedicationDuration, v))
}

// MedicationDurationHasPrefix applies the HasPrefix predicate on the "medication_duration" field.
func MedicationDurationHasPrefix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasPrefix(FieldMedicationDuration, v))
}

// MedicationDurationHasSuffix applies the HasSuffix predicate on the "medication_duration" field.
func MedicationDurationHasSuffix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasSuffix(FieldMedicationDuration, v))
}

// MedicationDurationIsNil applies the IsNil predicate on the "medication_duration" field.
func MedicationDurationIsNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldIsNull(FieldMedicationDuration))
}

// MedicationDurationNotNil applies the NotNil predicate on the "medication_duration" field.
func MedicationDurationNotNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldNotNull(FieldMedicationDuration))
}

// MedicationDurationEqualFold applies the EqualFold predicate on the "medication_duration" field.
func MedicationDurationEqualFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEqualFold(FieldMedicationDuration, v))
}

// MedicationDurationContainsFold applies the ContainsFold predicate on the "medication_duration" field.
func MedicationDurationContainsFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContainsFold(FieldMedicationDuration, v))
}

// OocytesViableEQ applies the EQ predicate on the "oocytes_viable" field.
func OocytesViableEQ(v bool) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldOocytesViable, v))
}

// OocytesViableNEQ applies the NEQ predicate on the "oocytes_viable" field.
func OocytesViableNEQ(v bool) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldOocytesViable, v))
}

// OocytesViableIsNil applies the IsNil predicate on the "oocytes_viable" field.
func OocytesViableIsNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldIsNull(FieldOocytesViable))
}

// OocytesViableNotNil applies the NotNil predicate on the "oocytes_viable" field.
func OocytesViableNotNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldNotNull(FieldOocytesViable))
}

// SpermViableEQ applies the EQ predicate on the "sperm_viable" field.
func SpermViableEQ(v bool) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldSpermViable, v))
}

// SpermViableNEQ applies the NEQ predicate on the "sperm_viable" field.
func SpermViableNEQ(v bool) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldSpermViable, v))
}

// SpermViableIsNil applies the IsNil predicate on the "sperm_viable" field.
func SpermViableIsNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldIsNull(FieldSpermViable))
}

// SpermViableNotNil applies the NotNil predicate on the "sperm_viable" field.
func SpermViableNotNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldNotNull(FieldSpermViable))
}

// ConsentDocumentKeyEQ applies the EQ predicate on the "consent_document_key" field.
func ConsentDocumentKeyEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEQ(FieldConsentDocumentKey, v))
}

// ConsentDocumentKeyNEQ applies the NEQ predicate on the "consent_document_key" field.
func ConsentDocumentKeyNEQ(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNEQ(FieldConsentDocumentKey, v))
}

// ConsentDocumentKeyIn applies the In predicate on the "consent_document_key" field.
func ConsentDocumentKeyIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldIn(FieldConsentDocumentKey, vs...))
}

// ConsentDocumentKeyNotIn applies the NotIn predicate on the "consent_document_key" field.
func ConsentDocumentKeyNotIn(vs ...string) predicate.Treatment {
	return predicate.Treatment(sql.FieldNotIn(FieldConsentDocumentKey, vs...))
}

// ConsentDocumentKeyGT applies the GT predicate on the "consent_document_key" field.
func ConsentDocumentKeyGT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGT(FieldConsentDocumentKey, v))
}

// ConsentDocumentKeyGTE applies the GTE predicate on the "consent_document_key" field.
func ConsentDocumentKeyGTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldGTE(FieldConsentDocumentKey, v))
}

// ConsentDocumentKeyLT applies the LT predicate on the "consent_document_key" field.
func ConsentDocumentKeyLT(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLT(FieldConsentDocumentKey, v))
}

// ConsentDocumentKeyLTE applies the LTE predicate on the "consent_document_key" field.
func ConsentDocumentKeyLTE(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldLTE(FieldConsentDocumentKey, v))
}

// ConsentDocumentKeyContains applies the Contains predicate on the "consent_document_key" field.
func ConsentDocumentKeyContains(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContains(FieldConsentDocumentKey, v))
}

// ConsentDocumentKeyHasPrefix applies the HasPrefix predicate on the "consent_document_key" field.
func ConsentDocumentKeyHasPrefix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasPrefix(FieldConsentDocumentKey, v))
}

// ConsentDocumentKeyHasSuffix applies the HasSuffix predicate on the "consent_document_key" field.
func ConsentDocumentKeyHasSuffix(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldHasSuffix(FieldConsentDocumentKey, v))
}

// ConsentDocumentKeyIsNil applies the IsNil predicate on the "consent_document_key" field.
func ConsentDocumentKeyIsNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldIsNull(FieldConsentDocumentKey))
}

// ConsentDocumentKeyNotNil applies the NotNil predicate on the "consent_document_key" field.
func ConsentDocumentKeyNotNil() predicate.Treatment {
	return predicate.Treatment(sql.FieldNotNull(FieldConsentDocumentKey))
}

// ConsentDocumentKeyEqualFold applies the EqualFold predicate on the "consent_document_key" field.
func ConsentDocumentKeyEqualFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldEqualFold(FieldConsentDocumentKey, v))
}

// ConsentDocumentKeyContainsFold applies the ContainsFold predicate on the "consent_document_key" field.
func ConsentDocumentKeyContainsFold(v string) predicate.Treatment {
	return predicate.Treatment(sql.FieldContainsFold(FieldConsentDocumentKey, v))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.Treatment {
	return predicate.Treatment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.Treatment {
	return predicate.Treatment(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDoctor applies the HasEdge predicate on the "doctor" edge.
func HasDoctor() predicate.Treatment {
	return predicate.Treatment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, DoctorTable, DoctorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDoctorWith applies the HasEdge predicate on the "doctor" edge with a given conditions (other predicates).
func HasDoctorWith(preds ...predicate.User) predicate.Treatment {
	return predicate.Treatment(func(s *sql.Selector) {
		step := newDoctorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMonitoringDays applies the HasEdge predicate on the "monitoring_days" edge.
func HasMonitoringDays() predicate.Treatment {
	return predicate.Treatment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MonitoringDaysTable, MonitoringDaysColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMonitoringDaysWith applies the HasEdge predicate on the "monitoring_days" edge with a given conditions (other predicates).
func HasMonitoringDaysWith(preds ...predicate.MonitoringDay) predicate.Treatment {
	return predicate.Treatment(func(s *sql.Selector) {
		step := newMonitoringDaysStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStudyResults applies the HasEdge predicate on the "study_results" edge.
func HasStudyResults() predicate.Treatment {
	return predicate.Treatment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StudyResultsTable, StudyResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStudyResultsWith applies the HasEdge predicate on the "study_results" edge with a given conditions (other predicates).
func HasStudyResultsWith(preds ...predicate.StudyResult) predicate.Treatment {
	return predicate.Treatment(func(s *sql.Selector) {
		step := newStudyResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMedicalOrders applies the HasEdge predicate on the "medical_orders" edge.
func HasMedicalOrders() predicate.Treatment {
	return predicate.Treatment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MedicalOrdersTable, MedicalOrdersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMedicalOrdersWith applies the HasEdge predicate on the "medical_orders" edge with a given conditions (other predicates).
func HasMedicalOrdersWith(preds ...predicate.MedicalOrder) predicate.Treatment {
	return predicate.Treatment(func(s *sql.Selector) {
		step := newMedicalOrdersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPuncture applies the HasEdge predicate on the "puncture" edge.
func HasPuncture() predicate.Treatment {
	return predicate.Treatment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, PunctureTable, PunctureColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPunctureWith applies the HasEdge predicate on the "puncture" edge with a given conditions (other predicates).
func HasPunctureWith(preds ...predicate.Puncture) predicate.Treatment {
	return predicate.Treatment(func(s *sql.Selector) {
		step := newPunctureStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Treatment) predicate.Treatment {
	return predicate.Treatment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Treatment) predicate.Treatment {
	return predicate.Treatment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Treatment) predicate.Treatment {
	return predicate.Treatment(sql.NotPredicates(p))
}
