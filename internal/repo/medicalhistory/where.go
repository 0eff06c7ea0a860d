// Code generated by ent, DO NOT EDIT.

package medicalhistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldPatientID, v))
}

// ClinicalBackground applies equality check predicate on the "clinical_background" field. It's identical to ClinicalBackgroundEQ.
func ClinicalBackground(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldClinicalBackground, v))
}

// SurgicalBackground applies equality check predicate on the "surgical_background" field. It's identical to SurgicalBackgroundEQ.
func SurgicalBackground(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldSurgicalBackground, v))
}

// PersonalBackground applies equality check predicate on the "personal_background" field. It's identical to PersonalBackgroundEQ.
func PersonalBackground(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldPersonalBackground, v))
}

// FamilyBackground applies equality check predicate on the "family_background" field. It's identical to FamilyBackgroundEQ.
func FamilyBackground(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldFamilyBackground, v))
}

// GynecologicalBackground applies equality check predicate on the "gynecological_background" field. It's identical to GynecologicalBackgroundEQ.
func GynecologicalBackground(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldGynecologicalBackground, v))
}

// PhysicalExam applies equality check predicate on the "physical_exam" field. It's identical to PhysicalExamEQ.
func PhysicalExam(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldPhysicalExam, v))
}

// Phenotype applies equality check predicate on the "phenotype" field. It's identical to PhenotypeEQ.
func Phenotype(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldPhenotype, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotIn(FieldPatientID, vs...))
}

// ClinicalBackgroundEQ applies the EQ predicate on the "clinical_background" field.
func ClinicalBackgroundEQ(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldClinicalBackground, v))
}

// ClinicalBackgroundNEQ applies the NEQ predicate on the "clinical_background" field.
func ClinicalBackgroundNEQ(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNEQ(FieldClinicalBackground, v))
}

// ClinicalBackgroundIn applies the In predicate on the "clinical_background" field.
func ClinicalBackgroundIn(vs ...string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIn(FieldClinicalBackground, vs...))
}

// ClinicalBackgroundNotIn applies the NotIn predicate on the "clinical_background" field.
func ClinicalBackgroundNotIn(vs ...string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotIn(FieldClinicalBackground, vs...))
}

// ClinicalBackgroundGT applies the GT predicate on the "clinical_background" field.
func ClinicalBackgroundGT(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGT(FieldClinicalBackground, v))
}

// ClinicalBackgroundGTE applies the GTE predicate on the "clinical_background" field.
func ClinicalBackgroundGTE(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGTE(FieldClinicalBackground, v))
}

// ClinicalBackgroundLT applies the LT predicate on the "clinical_background" field.
func ClinicalBackgroundLT(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLT(FieldClinicalBackground, v))
}

// ClinicalBackgroundLTE applies the LTE predicate on the "clinical_background" field.
func ClinicalBackgroundLTE(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLTE(FieldClinicalBackground, v))
}

// ClinicalBackgroundContains applies the Contains predicate on the "clinical_background" field.
func ClinicalBackgroundContains(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldContains(FieldClinicalBackground, v))
}

// ClinicalBackgroundHasPrefix applies the HasPrefix predicate on the "clinical_background" field.
func ClinicalBackgroundHasPrefix(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldHasPrefix(FieldClinicalBackground, v))
}

// ClinicalBackgroundHasSuffix applies the HasSuffix predicate on the "clinical_background" field.
func ClinicalBackgroundHasSuffix(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldHasSuffix(FieldClinicalBackground, v))
}

// ClinicalBackgroundIsNil applies the IsNil predicate on the "clinical_background" field.
func ClinicalBackgroundIsNil() predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIsNull(FieldClinicalBackground))
}

// ClinicalBackgroundNotNil applies the NotNil predicate on the "clinical_background" field.
func ClinicalBackgroundNotNil() predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotNull(FieldClinicalBackground))
}

// ClinicalBackgroundEqualFold applies the EqualFold predicate on the "clinical_background" field.
func ClinicalBackgroundEqualFold(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEqualFold(FieldClinicalBackground, v))
}

// ClinicalBackgroundContainsFold applies the ContainsFold predicate on the "clinical_background" field.
func ClinicalBackgroundContainsFold(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldContainsFold(FieldClinicalBackground, v))
}

// SurgicalBackgroundEQ applies the EQ predicate on the "surgical_background" field.
func SurgicalBackgroundEQ(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldSurgicalBackground, v))
}

// SurgicalBackgroundNEQ applies the NEQ predicate on the "surgical_background" field.
func SurgicalBackgroundNEQ(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNEQ(FieldSurgicalBackground, v))
}

// SurgicalBackgroundIn applies the In predicate on the "surgical_background" field.
func SurgicalBackgroundIn(vs ...string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIn(FieldSurgicalBackground, vs...))
}

// SurgicalBackgroundNotIn applies the NotIn predicate on the "surgical_background" field.
func SurgicalBackgroundNotIn(vs ...string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotIn(FieldSurgicalBackground, vs...))
}

// SurgicalBackgroundGT applies the GT predicate on the "surgical_background" field.
func SurgicalBackgroundGT(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGT(FieldSurgicalBackground, v))
}

// SurgicalBackgroundGTE applies the GTE predicate on the "surgical_background" field.
func SurgicalBackgroundGTE(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGTE(FieldSurgicalBackground, v))
}

// SurgicalBackgroundLT applies the LT predicate on the "surgical_background" field.
func SurgicalBackgroundLT(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLT(FieldSurgicalBackground, v))
}

// SurgicalBackgroundLTE applies the LTE predicate on the "surgical_background" field.
func SurgicalBackgroundLTE(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLTE(FieldSurgicalBackground, v))
}

// SurgicalBackgroundContains applies the Contains predicate on the "surgical_background" field.
func SurgicalBackgroundContains(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldContains(FieldSurgicalBackground, v))
}

// SurgicalBackgroundHasPrefix applies the HasPrefix predicate on the "surgical_background" field.
func SurgicalBackgroundHasPrefix(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldHasPrefix(FieldSurgicalBackground, v))
}

// SurgicalBackgroundHasSuffix applies the HasSuffix predicate on the "surgical_background" field.
func SurgicalBackgroundHasSuffix(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldHasSuffix(FieldSurgicalBackground, v))
}

// SurgicalBackgroundIsNil applies the IsNil predicate on the "surgical_background" field.
func SurgicalBackgroundIsNil() predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIsNull(FieldSurgicalBackground))
}

// SurgicalBackgroundNotNil applies the NotNil predicate on the "surgical_background" field.
func SurgicalBackgroundNotNil() predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotNull(FieldSurgicalBackground))
}

// SurgicalBackgroundEqualFold applies the EqualFold predicate on the "surgical_background" field.
func SurgicalBackgroundEqualFold(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEqualFold(FieldSurgicalBackground, v))
}

// SurgicalBackgroundContainsFold applies the ContainsFold predicate on the "surgical_background" field.
func SurgicalBackgroundContainsFold(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldContainsFold(FieldSurgicalBackground, v))
}

// PersonalBackgroundEQ applies the EQ predicate on the "personal_background" field.
func PersonalBackgroundEQ(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldPersonalBackground, v))
}

// PersonalBackgroundNEQ applies the NEQ predicate on the "personal_background" field.
func PersonalBackgroundNEQ(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNEQ(FieldPersonalBackground, v))
}

// PersonalBackgroundIn applies the In predicate on the "personal_background" field.
func PersonalBackgroundIn(vs ...string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIn(FieldPersonalBackground, vs...))
}

// PersonalBackgroundNotIn applies the NotIn predicate on the "personal_background" field.
func PersonalBackgroundNotIn(vs ...string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotIn(FieldPersonalBackground, vs...))
}

// PersonalBackgroundGT applies the GT predicate on the "personal_background" field.
func PersonalBackgroundGT(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGT(FieldPersonalBackground, v))
}

// PersonalBackgroundGTE applies the GTE predicate on the "personal_background" field.
func PersonalBackgroundGTE(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGTE(FieldPersonalBackground, v))
}

// PersonalBackgroundLT applies the LT predicate on the "personal_background" field.
func PersonalBackgroundLT(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLT(FieldPersonalBackground, v))
}

// PersonalBackgroundLTE applies the LTE predicate on the "personal_background" field.
func PersonalBackgroundLTE(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLTE(FieldPersonalBackground, v))
}

// PersonalBackgroundContains applies the Contains predicate on the "personal_background" field.
func PersonalBackgroundContains(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldContains(FieldPersonalBackground, v))
}

// PersonalBackgroundHasPrefix applies the HasPrefix predicate on the "personal_background" field.
func PersonalBackgroundHasPrefix(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldHasPrefix(FieldPersonalBackground, v))
}

// PersonalBackgroundHasSuffix applies the HasSuffix predicate on the "personal_background" field.
func PersonalBackgroundHasSuffix(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldHasSuffix(FieldPersonalBackground, v))
}

// PersonalBackgroundIsNil applies the IsNil predicate on the "personal_background" field.
func PersonalBackgroundIsNil() predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIsNull(FieldPersonalBackground))
}

// PersonalBackgroundNotNil applies the NotNil predicate on the "personal_background" field.
func PersonalBackgroundNotNil() predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotNull(FieldPersonalBackground))
}

// PersonalBackgroundEqualFold applies the EqualFold predicate on the "personal_background" field.
func PersonalBackgroundEqualFold(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEqualFold(FieldPersonalBackground, v))
}

// PersonalBackgroundContainsFold applies the ContainsFold predicate on the "personal_background" field.
func PersonalBackgroundContainsFold(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldContainsFold(FieldPersonalBackground, v))
}

// FamilyBackgroundEQ applies the EQ predicate on the "family_background" field.
func FamilyBackgroundEQ(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldFamilyBackground, v))
}

// FamilyBackgroundNEQ applies the NEQ predicate on the "family_background" field.
func FamilyBackgroundNEQ(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNEQ(FieldFamilyBackground, v))
}

// FamilyBackgroundIn applies the In predicate on the "family_background" field.
func FamilyBackgroundIn(vs ...string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIn(FieldFamilyBackground, vs...))
}

// FamilyBackgroundNotIn applies the NotIn predicate on the "family_background" field.
func FamilyBackgroundNotIn(vs ...string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotIn(FieldFamilyBackground, vs...))
}

// FamilyBackgroundGT applies the GT predicate on the "family_background" field.
func FamilyBackgroundGT(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGT(FieldFamilyBackground, v))
}

// FamilyBackgroundGTE applies the GTE predicate on the "family_background" field.
func FamilyBackgroundGTE(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGTE(FieldFamilyBackground, v))
}

// FamilyBackgroundLT applies the LT predicate on the "family_background" field.
func FamilyBackgroundLT(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLT(FieldFamilyBackground, v))
}

// FamilyBackgroundLTE applies the LTE predicate on the "family_background" field.
func FamilyBackgroundLTE(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLTE(FieldFamilyBackground, v))
}

// FamilyBackgroundContains applies the Contains predicate on the "family_background" field.
func FamilyBackgroundContains(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldContains(FieldFamilyBackground, v))
}

// FamilyBackgroundHasPrefix applies the HasPrefix predicate on the "family_background" field.
func FamilyBackgroundHasPrefix(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldHasPrefix(FieldFamilyBackground, v))
}

// FamilyBackgroundHasSuffix applies the HasSuffix predicate on the "family_background" field.
func FamilyBackgroundHasSuffix(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldHasSuffix(FieldFamilyBackground, v))
}

// FamilyBackgroundIsNil applies the IsNil predicate on the "family_background" field.
func FamilyBackgroundIsNil() predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIsNull(FieldFamilyBackground))
}

// FamilyBackgroundNotNil applies the NotNil predicate on the "family_background" field.
func FamilyBackgroundNotNil() predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotNull(FieldFamilyBackground))
}

// FamilyBackgroundEqualFold applies the EqualFold predicate on the "family_background" field.
func FamilyBackgroundEqualFold(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEqualFold(FieldFamilyBackground, v))
}

// FamilyBackgroundContainsFold applies the ContainsFold predicate on the "family_background" field.
func FamilyBackgroundContainsFold(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldContainsFold(FieldFamilyBackground, v))
}

// GynecologicalBackgroundEQ applies the EQ predicate on the "gynecological_background" field.
func GynecologicalBackgroundEQ(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldGynecologicalBackground, v))
}

// GynecologicalBackgroundNEQ applies the NEQ predicate on the "gynecological_background" field.
func GynecologicalBackgroundNEQ(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNEQ(FieldGynecologicalBackground, v))
}

// GynecologicalBackgroundIn applies the In predicate on the "gynecological_background" field.
func GynecologicalBackgroundIn(vs ...string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIn(FieldGynecologicalBackground, vs...))
}

// GynecologicalBackgroundNotIn applies the NotIn predicate on the "gynecological_background" field.
func GynecologicalBackgroundNotIn(vs ...string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotIn(FieldGynecologicalBackground, vs...))
}

// GynecologicalBackgroundGT applies the GT predicate on the "gynecological_background" field.
func GynecologicalBackgroundGT(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGT(FieldGynecologicalBackground, v))
}

// GynecologicalBackgroundGTE applies the GTE predicate on the "gynecological_background" field.
func GynecologicalBackgroundGTE(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGTE(FieldGynecologicalBackground, v))
}

// GynecologicalBackgroundLT applies the LT predicate on the "gynecological_background" field.
func GynecologicalBackgroundLT(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLT(FieldGynecologicalBackground, v))
}

// GynecologicalBackgroundLTE applies the LTE predicate on the "gynecological_background" field.
func GynecologicalBackgroundLTE(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLTE(FieldGynecologicalBackground, v))
}

// GynecologicalBackgroundContains applies the Contains predicate on the "gynecological_background" field.
func GynecologicalBackgroundContains(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldContains(FieldGynecologicalBackground, v))
}

// GynecologicalBackgroundHasPrefix applies the HasPrefix predicate on the "gynecological_background" field.
func GynecologicalBackgroundHasPrefix(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldHasPrefix(FieldGynecologicalBackground, v))
}

// GynecologicalBackgroundHasSuffix applies the HasSuffix predicate on the "gynecological_background" field.
func GynecologicalBackgroundHasSuffix(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldHasSuffix(FieldGynecologicalBackground, v))
}

// GynecologicalBackgroundIsNil applies the IsNil predicate on the "gynecological_background" field.
func GynecologicalBackgroundIsNil() predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIsNull(FieldGynecologicalBackground))
}

// GynecologicalBackgroundNotNil applies the NotNil predicate on the "gynecological_background" field.
func GynecologicalBackgroundNotNil() predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotNull(FieldGynecologicalBackground))
}

// GynecologicalBackgroundEqualFold applies the EqualFold predicate on the "gynecological_background" field.
func GynecologicalBackgroundEqualFold(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEqualFold(FieldGynecologicalBackground, v))
}

// GynecologicalBackgroundContainsFold applies the ContainsFold predicate on the "gynecological_background" field.
func GynecologicalBackgroundContainsFold(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldContainsFold(FieldGynecologicalBackground, v))
}

// PhysicalExamEQ applies the EQ predicate on the "physical_exam" field.
func PhysicalExamEQ(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldPhysicalExam, v))
}

// PhysicalExamNEQ applies the NEQ predicate on the "physical_exam" field.
func PhysicalExamNEQ(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNEQ(FieldPhysicalExam, v))
}

// PhysicalExamIn applies the In predicate on the "physical_exam" field.
func PhysicalExamIn(vs ...string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIn(FieldPhysicalExam, vs...))
}

// PhysicalExamNotIn applies the NotIn predicate on the "physical_exam" field.
func PhysicalExamNotIn(vs ...string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotIn(FieldPhysicalExam, vs...))
}

// PhysicalExamGT applies the GT predicate on the "physical_exam" field.
func PhysicalExamGT(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGT(FieldPhysicalExam, v))
}

// PhysicalExamGTE applies the GTE predicate on the "physical_exam" field.
func PhysicalExamGTE(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGTE(FieldPhysicalExam, v))
}

// PhysicalExamLT applies the LT predicate on the "physical_exam" field.
func PhysicalExamLT(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLT(FieldPhysicalExam, v))
}

// PhysicalExamLTE applies the LTE predicate on the "physical_exam" field.
func PhysicalExamLTE(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLTE(FieldPhysicalExam, v))
}

// PhysicalExamContains applies the Contains predicate on the "physical_exam" field.
func PhysicalExamContains(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldContains(FieldPhysicalExam, v))
}

// PhysicalExamHasPrefix applies the HasPrefix predicate on the "physical_exam" field.
func PhysicalExamHasPrefix(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldHasPrefix(FieldPhysicalExam, v))
}

// PhysicalExamHasSuffix applies the HasSuffix predicate on the "physical_exam" field.
func PhysicalExamHasSuffix(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldHasSuffix(FieldPhysicalExam, v))
}

// PhysicalExamIsNil applies the IsNil predicate on the "physical_exam" field.
func PhysicalExamIsNil() predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIsNull(FieldPhysicalExam))
}

// PhysicalExamNotNil applies the NotNil predicate on the "physical_exam" field.
func PhysicalExamNotNil() predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotNull(FieldPhysicalExam))
}

// PhysicalExamEqualFold applies the EqualFold predicate on the "physical_exam" field.
func PhysicalExamEqualFold(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEqualFold(FieldPhysicalExam, v))
}

// PhysicalExamContainsFold applies the ContainsFold predicate on the "physical_exam" field.
func PhysicalExamContainsFold(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldContainsFold(FieldPhysicalExam, v))
}

// PhenotypeEQ applies the EQ predicate on the "phenotype" field.
func PhenotypeEQ(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEQ(FieldPhenotype, v))
}

// PhenotypeNEQ applies the NEQ predicate on the "phenotype" field.
func PhenotypeNEQ(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNEQ(FieldPhenotype, v))
}

// PhenotypeIn applies the In predicate on the "phenotype" field.
func PhenotypeIn(vs ...string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIn(FieldPhenotype, vs...))
}

// PhenotypeNotIn applies the NotIn predicate on the "phenotype" field.
func PhenotypeNotIn(vs ...string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotIn(FieldPhenotype, vs...))
}

// PhenotypeGT applies the GT predicate on the "phenotype" field.
func PhenotypeGT(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGT(FieldPhenotype, v))
}

// PhenotypeGTE applies the GTE predicate on the "phenotype" field.
func PhenotypeGTE(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldGTE(FieldPhenotype, v))
}

// PhenotypeLT applies the LT predicate on the "phenotype" field.
func PhenotypeLT(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLT(FieldPhenotype, v))
}

// PhenotypeLTE applies the LTE predicate on the "phenotype" field.
func PhenotypeLTE(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldLTE(FieldPhenotype, v))
}

// PhenotypeContains applies the Contains predicate on the "phenotype" field.
func PhenotypeContains(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldContains(FieldPhenotype, v))
}

// PhenotypeHasPrefix applies the HasPrefix predicate on the "phenotype" field.
func PhenotypeHasPrefix(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldHasPrefix(FieldPhenotype, v))
}

// PhenotypeHasSuffix applies the HasSuffix predicate on the "phenotype" field.
func PhenotypeHasSuffix(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldHasSuffix(FieldPhenotype, v))
}

// PhenotypeIsNil applies the IsNil predicate on the "phenotype" field.
func PhenotypeIsNil() predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldIsNull(FieldPhenotype))
}

// PhenotypeNotNil applies the NotNil predicate on the "phenotype" field.
func PhenotypeNotNil() predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldNotNull(FieldPhenotype))
}

// PhenotypeEqualFold applies the EqualFold predicate on the "phenotype" field.
func PhenotypeEqualFold(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldEqualFold(FieldPhenotype, v))
}

// PhenotypeContainsFold applies the ContainsFold predicate on the "phenotype" field.
func PhenotypeContainsFold(v string) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.FieldContainsFold(FieldPhenotype, v))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.MedicalHistory {
	return predicate.MedicalHistory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.MedicalHistory {
	return predicate.MedicalHistory(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MedicalHistory) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MedicalHistory) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MedicalHistory) predicate.MedicalHistory {
	return predicate.MedicalHistory(sql.NotPredicates(p))
}
